package io

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"unicode/utf8"
)

// Tape provides sequential text I/O. Input values are decimal integers
// separated by whitespace or commas; each output value is written as a
// decimal integer on its own line.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
}

var _ Channel = (*Tape)(nil)

// isSeparator reports whether r separates input values.
func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f', ',':
		return true
	}
	return false
}

// scanValues is a bufio.SplitFunc returning each separated token.
func scanValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		r, width := utf8.DecodeRune(data[start:])
		if !isSeparator(r) {
			break
		}
		start += width
	}

	for n := start; n < len(data); {
		r, width := utf8.DecodeRune(data[n:])
		if isSeparator(r) {
			return n + width, data[start:n], nil
		}
		n += width
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	return start, nil, nil
}

// Rewind restarts reading from the current position of the input.
func (tc *Tape) Rewind() {
	tc.scanner = nil
}

// Receive reads the next value from the input.
func (tc *Tape) Receive() (value int64, err error) {
	if tc.Input == nil {
		err = ErrInputClosed
		return
	}

	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.scanner.Split(scanValues)
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		if err == nil {
			err = ErrInputClosed
		}
		return
	}

	text := tc.scanner.Text()
	value, err = strconv.ParseInt(text, 10, 64)
	if err != nil {
		err = ErrParseValue(text)
	}

	return
}

// Values returns a sequence of the remaining input values, ending at the
// end of the input or after the first error.
func (tc *Tape) Values() iter.Seq2[int64, error] {
	return func(yield func(int64, error) bool) {
		for {
			value, err := tc.Receive()
			if err == ErrInputClosed {
				return
			}
			if !yield(value, err) || err != nil {
				return
			}
		}
	}
}

// Send writes a value to the output.
func (tc *Tape) Send(value int64) (err error) {
	if tc.Output == nil {
		err = ErrOutputClosed
		return
	}

	line := strconv.AppendInt(nil, value, 10)
	line = append(line, '\n')
	_, err = tc.Output.Write(line)

	return
}
