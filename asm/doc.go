// Package asm encodes Prism programs into the Prism binary format.
//
// A program is an ordered list of Instruction values. Every instruction
// encodes to a header byte, holding the opcode in the upper six bits and the
// A/B indirect addressing flags in the lower two, followed by a fixed number
// of operand bytes determined only by the instruction's tag.
//
// Encoding never fails. The only fallible step is building an Array2 or
// Array3 operand group out of a list of the wrong length.
package asm
