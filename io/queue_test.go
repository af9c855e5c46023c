package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_Receive(t *testing.T) {
	assert := assert.New(t)

	q := NewQueue(1, 2)

	value, err := q.Receive()
	assert.NoError(err)
	assert.Equal(int64(1), value)

	value, err = q.Receive()
	assert.NoError(err)
	assert.Equal(int64(2), value)

	_, err = q.Receive()
	assert.ErrorIs(err, ErrInputEmpty)

	q.Push(3)
	value, err = q.Receive()
	assert.NoError(err)
	assert.Equal(int64(3), value)
}

func TestQueue_Send(t *testing.T) {
	assert := assert.New(t)

	var seen []int64
	q := &Queue{
		Capacity: 2,
		OnSend:   func(value int64) { seen = append(seen, value) },
	}

	assert.NoError(q.Send(10))
	assert.NoError(q.Send(20))
	assert.ErrorIs(q.Send(30), ErrOutputFull)

	assert.Equal([]int64{10, 20}, seen)
	assert.Equal([]int64{10, 20}, q.Drain())
	assert.Nil(q.Output)

	assert.NoError(q.Send(30))
	assert.Equal([]int64{30}, q.Output)
}

func TestQueue_Reset(t *testing.T) {
	assert := assert.New(t)

	q := NewQueue(1, 2, 3)
	q.Send(4)
	q.Reset()

	assert.Nil(q.Input)
	assert.Nil(q.Output)
}
