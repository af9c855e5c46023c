package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/intcode/io"
)

// Cpu is the simulation context of the intcode computer.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory       *Memory // Program and data memory.
	Pc           int64   // Program counter.
	RelativeBase int64   // Base address of relative mode parameters.

	Input  io.Input  // Source of IN values.
	Output io.Output // Sink of OUT values.

	Ticks int // Instructions executed.

	halted   bool
	finished bool
}

// NewCpu creates a computer loaded with a copy of the program.
func NewCpu(program []int64) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: NewMemory(program),
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("   pc: %v\n", cpu.Pc)
	text += fmt.Sprintf("  rel: %v\n", cpu.RelativeBase)
	text += fmt.Sprintf("  len: %v\n", cpu.Memory.Len())
	if validAddress(cpu.Pc) {
		text += fmt.Sprintf(" code: %v\n", Code(cpu.Memory.Get(cpu.Pc)))
	}
	text += fmt.Sprintf("state: halted=%v finished=%v\n", cpu.halted, cpu.finished)

	return
}

// Halted returns true if execution is paused.
func (cpu *Cpu) Halted() bool {
	return cpu.halted
}

// Finished returns true if the END instruction has executed.
func (cpu *Cpu) Finished() bool {
	return cpu.finished
}

// Halt pauses execution before the next instruction is fetched.
func (cpu *Cpu) Halt() {
	cpu.halted = true
}

// Resume clears a pause and continues execution.
func (cpu *Cpu) Resume() (mem []int64, err error) {
	cpu.halted = false

	return cpu.Run()
}

// Run executes instructions until the program finishes, is halted, or
// faults, and returns a snapshot of the memory.
//
// Running a finished program does nothing.
func (cpu *Cpu) Run() (mem []int64, err error) {
	for !cpu.finished && !cpu.halted {
		err = cpu.Tick()
		if err != nil {
			break
		}
	}

	mem = cpu.Memory.Words()

	return
}

// Tick executes a single instruction.
func (cpu *Cpu) Tick() (err error) {
	if cpu.finished {
		return
	}

	pc := cpu.Pc
	if !validAddress(pc) {
		err = errors.Join(ErrOpcode{Pc: pc}, ErrAddressInvalid)
		return
	}

	word := cpu.Memory.Get(pc)

	defer func() {
		if err != nil {
			// Leave the faulting instruction for diagnosis.
			cpu.Pc = pc
			err = errors.Join(ErrOpcode{Pc: pc, Word: word}, err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%v: %v", pc, Code(word))
	}

	err = cpu.Execute(Code(word))
	if err != nil {
		return
	}

	if cpu.halted && cpu.Pc == pc {
		// Awaiting input; nothing was executed.
		return
	}

	cpu.Ticks++

	return
}

// decoder fetches the parameters of one instruction.
type decoder struct {
	cpu   *Cpu
	modes [MODE_PARAMS]Mode
	param int
}

// raw fetches the next parameter word, advancing the program counter.
func (dec *decoder) raw() (mode Mode, word int64) {
	if dec.param < MODE_PARAMS {
		mode = dec.modes[dec.param]
	}
	dec.param++

	word = dec.cpu.Memory.Get(dec.cpu.Pc)
	dec.cpu.Pc++

	return
}

// value fetches the value of the next parameter.
func (dec *decoder) value() (value int64, err error) {
	mode, word := dec.raw()

	switch mode {
	case MODE_IMMEDIATE:
		value = word
	case MODE_RELATIVE:
		value, err = dec.cpu.load(dec.cpu.RelativeBase + word)
	default:
		value, err = dec.cpu.load(word)
	}

	return
}

// target fetches the write address of the next parameter.
func (dec *decoder) target() (addr int64, err error) {
	mode, word := dec.raw()

	switch mode {
	case MODE_IMMEDIATE:
		err = ErrWriteImmediate
		return
	case MODE_RELATIVE:
		addr = dec.cpu.RelativeBase + word
	default:
		addr = word
	}

	if !validAddress(addr) {
		err = ErrAddressInvalid
	}

	return
}

// validAddress returns true if addr is within memory.
func validAddress(addr int64) bool {
	return addr >= 0 && addr < MEMORY_LIMIT
}

// load reads memory at a checked address.
func (cpu *Cpu) load(addr int64) (value int64, err error) {
	if !validAddress(addr) {
		err = ErrAddressInvalid
		return
	}

	value = cpu.Memory.Get(addr)

	return
}

// Execute executes the instruction at the program counter, given its
// opcode word.
//
// On error no memory has been written, and the program counter is left
// somewhere within the instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	op, modes := code.Decode()

	start := cpu.Pc
	cpu.Pc++

	dec := &decoder{cpu: cpu, modes: modes}

	var a, b, addr int64

	// Fetch a, b, and the target address.
	binary := func() (err error) {
		a, err = dec.value()
		if err != nil {
			return
		}
		b, err = dec.value()
		if err != nil {
			return
		}
		addr, err = dec.target()
		return
	}

	switch op {
	case OP_ADD:
		err = binary()
		if err != nil {
			return
		}
		cpu.Memory.Set(addr, a+b)
	case OP_MULT:
		err = binary()
		if err != nil {
			return
		}
		cpu.Memory.Set(addr, a*b)
	case OP_LT:
		err = binary()
		if err != nil {
			return
		}
		cpu.Memory.Set(addr, boolWord(a < b))
	case OP_EQ:
		err = binary()
		if err != nil {
			return
		}
		cpu.Memory.Set(addr, boolWord(a == b))
	case OP_IN:
		addr, err = dec.target()
		if err != nil {
			return
		}
		if cpu.Input == nil {
			err = ErrChannelInvalid
			return
		}
		var value int64
		value, err = cpu.Input.Receive()
		if errors.Is(err, io.ErrInputEmpty) {
			// Wait for input: retry this instruction on resume.
			if cpu.Verbose {
				log.Printf("%v: awaiting input", start)
			}
			cpu.Pc = start
			cpu.halted = true
			err = nil
			return
		}
		if err != nil {
			return
		}
		cpu.Memory.Set(addr, value)
	case OP_OUT:
		a, err = dec.value()
		if err != nil {
			return
		}
		if cpu.Output == nil {
			err = ErrChannelInvalid
			return
		}
		err = cpu.Output.Send(a)
	case OP_JMPT:
		a, err = dec.value()
		if err != nil {
			return
		}
		b, err = dec.value()
		if err != nil {
			return
		}
		if a != 0 {
			cpu.Pc = b
		}
	case OP_JMPF:
		a, err = dec.value()
		if err != nil {
			return
		}
		b, err = dec.value()
		if err != nil {
			return
		}
		if a == 0 {
			cpu.Pc = b
		}
	case OP_ADJR:
		a, err = dec.value()
		if err != nil {
			return
		}
		cpu.RelativeBase += a
	case OP_END:
		cpu.finished = true
	default:
		err = ErrOpcodeInvalid
	}

	return
}

// boolWord converts a comparison into a word.
func boolWord(cond bool) int64 {
	if cond {
		return 1
	}
	return 0
}
