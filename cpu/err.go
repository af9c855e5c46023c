package cpu

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Cpu faults
	ErrOpcodeInvalid  = errors.New(f("opcode invalid"))
	ErrWriteImmediate = errors.New(f("write target in immediate mode"))
	ErrAddressInvalid = errors.New(f("address invalid"))
	ErrChannelInvalid = errors.New(f("channel invalid"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrVariableSyntax     = errors.New(f("var syntax"))
	ErrVariableDuplicate  = errors.New(f("var duplicated"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrOpcode locates a cpu fault.
type ErrOpcode struct {
	Pc   int64 // Address of the faulting instruction.
	Word int64 // Opcode word at that address.
}

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v (%v) at %v", eo.Word, Code(eo.Word).String(), eo.Pc)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrIdentifierInvalid string

func (ei ErrIdentifierInvalid) Error() string {
	return f("'%v' is not a valid identifier", string(ei))
}

// ErrArgCount reports an instruction given the wrong number of parameters.
type ErrArgCount struct {
	Mnemonic string
	Expected int
	Actual   int
}

func (err ErrArgCount) Error() string {
	return f("%v expects %v arguments, got %v", err.Mnemonic, err.Expected, err.Actual)
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseParameter string

func (err ErrParseParameter) Error() string {
	return f("'%v' is not a parameter", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("(%v) is not a valid expression", string(err))
}
