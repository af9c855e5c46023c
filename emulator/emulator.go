// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/io"
)

// Emulator state. CPU + program listing + IO channels.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Input  io.Input  // Input channel, attached on Reset.
	Output io.Output // Output channel, attached on Reset.
}

// NewEmulator creates a new emulator for a program listing.
func NewEmulator(prog *cpu.Program) (emu *Emulator) {
	if prog == nil {
		prog = &cpu.Program{}
	}

	emu = &Emulator{
		Program: prog,
	}

	emu.Reset()

	return
}

// Load replaces the program listing with raw words, and resets.
func (emu *Emulator) Load(words []int64) {
	emu.Program = &cpu.Program{
		Statements: []cpu.Statement{
			{LineNo: 0, Address: 0, Codes: words},
		},
	}

	emu.Reset()
}

// Reset reloads the program into a fresh CPU.
func (emu *Emulator) Reset() {
	emu.Cpu = cpu.NewCpu(emu.Program.Binary())
	emu.Cpu.Input = emu.Input
	emu.Cpu.Output = emu.Output
	emu.Cpu.Verbose = emu.Verbose

	if emu.Verbose {
		log.Printf("emulator: reset, %v words", emu.Cpu.Memory.Len())
	}
}

// Attach sets the IO channels of the emulator and its CPU.
func (emu *Emulator) Attach(input io.Input, output io.Output) {
	emu.Input = input
	emu.Output = output
	emu.Cpu.Input = input
	emu.Cpu.Output = output
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int64 {
	return emu.Cpu.Pc
}

// Code returns the current instruction code, or 0 if the program counter
// is invalid.
func (emu *Emulator) Code() cpu.Code {
	if emu.Cpu.Pc < 0 || emu.Cpu.Pc >= cpu.MEMORY_LIMIT {
		return 0
	}
	return cpu.Code(emu.Cpu.Memory.Get(emu.Cpu.Pc))
}

// LineNo returns the current line number for the executing statement, or
// 0 if the program counter is outside of the listing.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Statement == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
//
// done is set when the program has finished, or has halted waiting for
// input.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Pc: emu.Cpu.Pc, Err: err}
		}
	}()

	if emu.Cpu.Finished() || emu.Cpu.Halted() {
		done = true
		return
	}

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Finished() || emu.Cpu.Halted()

	return
}

// Run ticks until the program finishes, halts, or faults.
func (emu *Emulator) Run() error {
	for {
		done, err := emu.Tick()
		if err != nil || done {
			return err
		}
	}
}

// Resume continues a halted program until it finishes, halts again, or
// faults.
func (emu *Emulator) Resume() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	_, err = emu.Cpu.Resume()
	if err != nil {
		err = &ErrRuntime{LineNo: emu.LineNo(), Pc: emu.Cpu.Pc, Err: err}
	}

	return
}
