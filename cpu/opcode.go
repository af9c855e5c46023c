package cpu

import (
	"fmt"
)

// Opcode is a base instruction number, with the mode digits removed.
type Opcode int64

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(1)  // ADD
	OP_MULT = Opcode(2)  // MULT
	OP_IN   = Opcode(3)  // IN
	OP_OUT  = Opcode(4)  // OUT
	OP_JMPT = Opcode(5)  // JMPT
	OP_JMPF = Opcode(6)  // JMPF
	OP_LT   = Opcode(7)  // LT
	OP_EQ   = Opcode(8)  // EQ
	OP_ADJR = Opcode(9)  // ADJR
	OP_END  = Opcode(99) // END
)

// Mode is a parameter addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION  = Mode(0) // position
	MODE_IMMEDIATE = Mode(1) // immediate
	MODE_RELATIVE  = Mode(2) // relative
)

const (
	MODE_PARAMS = 3   // Parameters with a mode digit.
	MODE_PLACE  = 100 // Decimal place of the first parameter mode.
)

// modePlace holds the decimal place of each parameter's mode digit.
var modePlace = [MODE_PARAMS]int64{100, 1_000, 10_000}

// modeOf maps a non-zero mode digit to its mode.
func modeOf(digit int64) Mode {
	if digit == int64(MODE_IMMEDIATE) {
		return MODE_IMMEDIATE
	}

	return MODE_RELATIVE
}

// Code is a single opcode word: a base opcode plus per-parameter mode digits.
type Code int64

// MakeCode encodes an opcode with the addressing modes of its parameters,
// first parameter first.
func MakeCode(op Opcode, modes ...Mode) Code {
	word := int64(op)

	for n, mode := range modes {
		if n >= MODE_PARAMS {
			panic(fmt.Sprintf("too many parameter modes for %v", op))
		}
		word += int64(mode) * modePlace[n]
	}

	return Code(word)
}

// Decode splits the word into the base opcode and parameter modes.
//
// Digits are consumed from the highest place down. The highest place
// absorbs everything above it, and any digit other than 0 or 1 selects
// relative mode.
func (code Code) Decode() (op Opcode, modes [MODE_PARAMS]Mode) {
	word := int64(code)

	if word >= MODE_PLACE {
		for n := MODE_PARAMS - 1; n >= 0; n-- {
			place := modePlace[n]
			digit := word / place
			if digit != 0 {
				modes[n] = modeOf(digit)
				word -= digit * place
			}
		}
	}

	op = Opcode(word)

	return
}

// String returns the disassembled opcode and modes.
func (code Code) String() string {
	op, modes := code.Decode()

	return fmt.Sprintf("%v.%v.%v.%v", op, modes[0], modes[1], modes[2])
}
