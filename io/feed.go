package io

import (
	"iter"
)

// Feed is an Input pulling values from a sequence.
//
// Each yielded error is returned by the Receive that pulls it. Once the
// sequence ends, Receive reports ErrInputClosed.
type Feed struct {
	next func() (int64, error, bool)
	stop func()
}

var _ Input = (*Feed)(nil)

// NewFeed creates a feed over the sequence. The sequence is not started
// until the first Receive.
func NewFeed(seq iter.Seq2[int64, error]) *Feed {
	next, stop := iter.Pull2(seq)
	return &Feed{
		next: next,
		stop: stop,
	}
}

// Values returns a sequence yielding each value without error.
func Values(values ...int64) iter.Seq2[int64, error] {
	return func(yield func(int64, error) bool) {
		for _, value := range values {
			if !yield(value, nil) {
				return
			}
		}
	}
}

// Receive pulls the next value.
func (fd *Feed) Receive() (value int64, err error) {
	value, err, ok := fd.next()
	if !ok {
		err = ErrInputClosed
	}

	return
}

// Close stops the underlying sequence.
func (fd *Feed) Close() (err error) {
	fd.stop()
	return
}
