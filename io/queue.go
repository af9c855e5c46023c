package io

// Queue is a scripted channel. Input values are consumed in order and
// output values are recorded.
//
// An empty input reports ErrInputEmpty, so a driver may Push more values and
// resume the computer.
type Queue struct {
	Input    []int64 // Pending input values.
	Output   []int64 // Recorded output values.
	Capacity int     // Maximum recorded outputs, or 0 for no limit.

	// OnSend, if set, is called after each recorded output.
	OnSend func(value int64)
}

var _ Channel = (*Queue)(nil)

// NewQueue creates a queue with pending input values.
func NewQueue(input ...int64) *Queue {
	return &Queue{
		Input: input,
	}
}

// Reset drops all pending input and recorded output.
func (q *Queue) Reset() {
	q.Input = nil
	q.Output = nil
}

// Push appends pending input values.
func (q *Queue) Push(values ...int64) {
	q.Input = append(q.Input, values...)
}

// Receive consumes the next pending input value.
func (q *Queue) Receive() (value int64, err error) {
	if len(q.Input) == 0 {
		err = ErrInputEmpty
		return
	}

	value = q.Input[0]
	q.Input = q.Input[1:]

	return
}

// Send records an output value.
func (q *Queue) Send(value int64) (err error) {
	if q.Capacity > 0 && len(q.Output) >= q.Capacity {
		err = ErrOutputFull
		return
	}

	q.Output = append(q.Output, value)

	if q.OnSend != nil {
		q.OnSend(value)
	}

	return
}

// Drain returns and clears the recorded output.
func (q *Queue) Drain() (values []int64) {
	values = q.Output
	q.Output = nil
	return
}
