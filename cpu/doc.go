// Package cpu implements the intcode computer and its assembler.
//
// The computer has no registers beyond a program counter (Pc) and a relative
// base. Every instruction addresses a single auto-growing memory of signed
// 64-bit words, and each parameter selects one of three addressing modes
// (position, immediate, relative) through the decimal digits of the opcode
// word. Programs may read and rewrite their own code.
//
// The assembler translates mnemonic source into the word stream consumed by
// the computer. It supports labels with forward references, variables,
// equates, and compile-time expression evaluation.
package cpu
