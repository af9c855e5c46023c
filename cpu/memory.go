package cpu

import (
	"slices"
)

const (
	MEMORY_LIMIT = 1 << 24 // Maximum words of memory.
)

// Memory is the word addressable store of the computer.
//
// Any index in [0, MEMORY_LIMIT) may be accessed; the store grows to cover
// it first, keeping existing words and zero filling the new ones.
type Memory struct {
	data []int64
}

// NewMemory creates a memory holding a copy of the program.
func NewMemory(program []int64) (mem *Memory) {
	mem = &Memory{
		data: slices.Clone(program),
	}

	return
}

// grow makes sure index is addressable.
func (mem *Memory) grow(index int64) {
	if index < int64(len(mem.data)) {
		return
	}

	size := len(mem.data)
	need := int(index + 1)
	mem.data = slices.Grow(mem.data, need-size)[:need]
	clear(mem.data[size:])
}

// Get returns the word at index.
func (mem *Memory) Get(index int64) int64 {
	mem.grow(index)
	return mem.data[index]
}

// Set stores value at index.
func (mem *Memory) Set(index int64, value int64) {
	mem.grow(index)
	mem.data[index] = value
}

// Len returns the current size of the memory.
func (mem *Memory) Len() int {
	return len(mem.data)
}

// Words returns a snapshot of the memory contents.
func (mem *Memory) Words() []int64 {
	return slices.Clone(mem.data)
}
