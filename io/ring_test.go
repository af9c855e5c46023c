package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing_Order(t *testing.T) {
	assert := assert.New(t)

	ring := NewRing(3, 1, 2)
	assert.Equal(2, ring.Len())

	assert.NoError(ring.Send(3))
	assert.ErrorIs(ring.Send(4), ErrOutputFull)

	for _, expected := range []int64{1, 2, 3} {
		value, err := ring.Receive()
		assert.NoError(err)
		assert.Equal(expected, value)
	}

	_, err := ring.Receive()
	assert.ErrorIs(err, ErrInputEmpty)
}

func TestRing_Initial(t *testing.T) {
	assert := assert.New(t)

	ring := NewRing(2, 1, 2, 3)
	assert.Equal(3, ring.Capacity)
	assert.Equal(3, ring.Len())
	assert.ErrorIs(ring.Send(4), ErrOutputFull)

	for _, expected := range []int64{1, 2, 3} {
		value, err := ring.Receive()
		assert.NoError(err)
		assert.Equal(expected, value)
	}

	assert.NoError(ring.Send(4))
	value, err := ring.Receive()
	assert.NoError(err)
	assert.Equal(int64(4), value)

	// No values and no capacity uses the default.
	ring = NewRing(0)
	assert.Equal(RING_DEFAULT_CAPACITY, ring.Capacity)
	assert.Equal(0, ring.Len())
}

func TestRing_Wrap(t *testing.T) {
	assert := assert.New(t)

	ring := NewRing(2)

	for n := range int64(10) {
		assert.NoError(ring.Send(n))
		value, err := ring.Receive()
		assert.NoError(err)
		assert.Equal(n, value)
	}
	assert.Equal(0, ring.Len())
}

func TestRing_Default(t *testing.T) {
	assert := assert.New(t)

	ring := &Ring{}
	assert.NoError(ring.Send(9))
	assert.Equal(RING_DEFAULT_CAPACITY, ring.Capacity)

	ring.Rewind()
	assert.Equal(0, ring.Len())
	_, err := ring.Receive()
	assert.ErrorIs(err, ErrInputEmpty)
}
