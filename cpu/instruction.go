package cpu

import (
	"slices"
)

// Instruction describes one kind of assembler instruction.
type Instruction struct {
	Mnemonic string // Source mnemonic.
	Opcode   Opcode // Base opcode.
	Params   int    // Required parameter count.
	Targets  []int  // Indexes of write target parameters.
}

// Size returns the encoded word count.
func (in *Instruction) Size() int {
	return 1 + in.Params
}

// Encode returns the opcode word, with parameter modes, followed by the
// raw parameter values.
func (in *Instruction) Encode(params ...Parameter) (codes []int64, err error) {
	if len(params) != in.Params {
		err = ErrArgCount{Mnemonic: in.Mnemonic, Expected: in.Params, Actual: len(params)}
		return
	}

	for _, n := range in.Targets {
		if params[n].Mode == MODE_IMMEDIATE {
			err = ErrWriteImmediate
			return
		}
	}

	modes := make([]Mode, len(params))
	codes = make([]int64, 0, in.Size())
	codes = append(codes, 0)
	for n, param := range params {
		modes[n] = param.Mode
		codes = append(codes, param.Value)
	}
	codes[0] = int64(MakeCode(in.Opcode, modes...))

	return
}

// Instructions is the instruction catalog, in opcode order.
var Instructions = []*Instruction{
	{Mnemonic: "ADD", Opcode: OP_ADD, Params: 3, Targets: []int{2}},
	{Mnemonic: "MULT", Opcode: OP_MULT, Params: 3, Targets: []int{2}},
	{Mnemonic: "IN", Opcode: OP_IN, Params: 1, Targets: []int{0}},
	{Mnemonic: "OUT", Opcode: OP_OUT, Params: 1},
	{Mnemonic: "JMPT", Opcode: OP_JMPT, Params: 2},
	{Mnemonic: "JMPF", Opcode: OP_JMPF, Params: 2},
	{Mnemonic: "LT", Opcode: OP_LT, Params: 3, Targets: []int{2}},
	{Mnemonic: "EQ", Opcode: OP_EQ, Params: 3, Targets: []int{2}},
	{Mnemonic: "ADJR", Opcode: OP_ADJR, Params: 1},
	{Mnemonic: "END", Opcode: OP_END, Params: 0},
}

// Catalog maps mnemonics to instructions.
var Catalog = func() map[string]*Instruction {
	catalog := make(map[string]*Instruction, len(Instructions))
	for _, in := range Instructions {
		catalog[in.Mnemonic] = in
	}
	return catalog
}()

// Writes returns true if parameter n is a write target.
func (in *Instruction) Writes(n int) bool {
	return slices.Contains(in.Targets, n)
}
