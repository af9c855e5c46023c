// Package io provides the input and output collaborators of the intcode
// computer.
//
// The IN instruction receives one value from an Input, and the OUT
// instruction sends one value to an Output. Sources and sinks include
// scripted queues (Queue), pulled value sequences (Feed), text streams
// (Tape), and interactive terminals (Console).
package io

// Input supplies values to the IN instruction.
type Input interface {
	// Receive returns the next input value.
	//
	// ErrInputEmpty reports that no value is available yet; the computer
	// pauses and retries the instruction when resumed.
	Receive() (value int64, err error)
}

// Output collects values from the OUT instruction.
type Output interface {
	// Send delivers one output value.
	Send(value int64) error
}

// Channel is both an Input and an Output.
type Channel interface {
	Input
	Output
}
