package io

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrInputEmpty   = errors.New(f("input empty"))
	ErrInputClosed  = errors.New(f("input closed"))
	ErrOutputFull   = errors.New(f("output full"))
	ErrOutputClosed = errors.New(f("output closed"))
)

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not an input value", string(err))
}
