package asm

import (
	"iter"

	"github.com/ezrec/prism/internal"
)

// Program is an ordered list of instructions.
type Program struct {
	Instructions []Instruction
}

// Debug locates the instruction covering a byte offset.
type Debug struct {
	Instruction
	Index  int // Instruction index within the program.
	Offset int // Byte offset of the instruction header.
}

// Append adds instructions to the end of the program.
func (prog *Program) Append(ins ...Instruction) {
	prog.Instructions = append(prog.Instructions, ins...)
}

// Codes iterates over each instruction with its byte offset.
func (prog *Program) Codes() iter.Seq2[int, Instruction] {
	return func(yield func(offset int, ins Instruction) bool) {
		offset := 0
		for _, ins := range prog.Instructions {
			if !yield(offset, ins) {
				return
			}
			offset += Size(ins)
		}
	}
}

// Debug returns the instruction covering offset, or a zero Debug.
func (prog *Program) Debug(offset int) (dbg Debug) {
	index := 0
	for start, ins := range prog.Codes() {
		if offset >= start && offset < start+Size(ins) {
			dbg = Debug{
				Instruction: ins,
				Index:       index,
				Offset:      start,
			}
			break
		}
		index++
	}

	return
}

// Check verifies the addressing of every instruction.
func (prog *Program) Check() (err error) {
	for n, ins := range prog.Instructions {
		err = Check(ins)
		if err != nil {
			return &ErrInstruction{Index: n, Err: err}
		}
	}

	return
}

// Binary returns the program's byte stream.
func (prog *Program) Binary(enc *Encoder) []byte {
	return enc.Assemble(prog.Instructions)
}

// Bytes iterates over the program's byte stream, encoding on demand.
func (prog *Program) Bytes(enc *Encoder) iter.Seq[byte] {
	return internal.IterSeqFlatten(func(yield func([]byte) bool) {
		for _, ins := range prog.Instructions {
			if !yield(enc.Encode(ins)) {
				return
			}
		}
	})
}
