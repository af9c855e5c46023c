package io

import (
	"io"
	"iter"
	"os"

	"golang.org/x/term"
)

const (
	CONSOLE_PROMPT = "> " // Default prompt for input values.
)

// Console is a Tape attached to a user. When the input is a terminal, a
// prompt is written to the output before each value is read.
type Console struct {
	Tape
	Prompt string // Prompt text, or CONSOLE_PROMPT if empty.
}

var _ Channel = (*Console)(nil)

// NewConsole creates a console on the process standard input and output.
func NewConsole() *Console {
	return &Console{
		Tape: Tape{
			Input:  os.Stdin,
			Output: os.Stdout,
		},
	}
}

// Interactive reports whether the console input is a terminal.
func (cc *Console) Interactive() bool {
	file, ok := cc.Input.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}

// Receive prompts if interactive, then reads the next value.
func (cc *Console) Receive() (value int64, err error) {
	if cc.Output != nil && cc.Interactive() {
		prompt := cc.Prompt
		if len(prompt) == 0 {
			prompt = CONSOLE_PROMPT
		}
		_, err = io.WriteString(cc.Output, prompt)
		if err != nil {
			return
		}
	}

	return cc.Tape.Receive()
}

// Values returns a sequence of input values, prompting for each.
func (cc *Console) Values() iter.Seq2[int64, error] {
	return func(yield func(int64, error) bool) {
		for {
			value, err := cc.Receive()
			if err == ErrInputClosed {
				return
			}
			if !yield(value, err) || err != nil {
				return
			}
		}
	}
}
