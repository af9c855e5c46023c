package io

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeed_Values(t *testing.T) {
	assert := assert.New(t)

	feed := NewFeed(Values(5, 6))
	defer feed.Close()

	value, err := feed.Receive()
	assert.NoError(err)
	assert.Equal(int64(5), value)

	value, err = feed.Receive()
	assert.NoError(err)
	assert.Equal(int64(6), value)

	_, err = feed.Receive()
	assert.ErrorIs(err, ErrInputClosed)

	_, err = feed.Receive()
	assert.ErrorIs(err, ErrInputClosed)
}

func TestFeed_Error(t *testing.T) {
	assert := assert.New(t)

	errBroken := errors.New("broken")
	var seq iter.Seq2[int64, error] = func(yield func(int64, error) bool) {
		if !yield(1, nil) {
			return
		}
		yield(0, errBroken)
	}

	feed := NewFeed(seq)
	defer feed.Close()

	value, err := feed.Receive()
	assert.NoError(err)
	assert.Equal(int64(1), value)

	_, err = feed.Receive()
	assert.ErrorIs(err, errBroken)
}

func TestFeed_Close(t *testing.T) {
	assert := assert.New(t)

	stopped := false
	var seq iter.Seq2[int64, error] = func(yield func(int64, error) bool) {
		defer func() { stopped = true }()
		for n := int64(0); ; n++ {
			if !yield(n, nil) {
				return
			}
		}
	}

	feed := NewFeed(seq)
	value, err := feed.Receive()
	assert.NoError(err)
	assert.Equal(int64(0), value)

	assert.NoError(feed.Close())
	assert.True(stopped)

	_, err = feed.Receive()
	assert.ErrorIs(err, ErrInputClosed)
}
