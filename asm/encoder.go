package asm

import (
	"log"

	"github.com/ezrec/prism/opcode"
)

// Encoder turns instructions into the Prism binary format.
type Encoder struct {
	Registry opcode.Registry // Numbering to encode with, opcode.Standard if nil.
	Verbose  bool            // If set, logs every encoded instruction.
}

func (enc *Encoder) registry() opcode.Registry {
	if enc == nil || enc.Registry == nil {
		return opcode.Standard
	}
	return enc.Registry
}

// Append encodes an instruction onto the end of dst.
func (enc *Encoder) Append(dst []byte, ins Instruction) []byte {
	reg := enc.registry()

	at := len(dst)
	h := header(reg.Opcode(ins.Code()) << 2)
	dst = append(dst, 0)

	for _, fl := range ins.fields() {
		var value uint8
		switch fl.kind {
		case fieldOperand:
			h, value = h.with(reg, fl.slot, fl.operand)
		case fieldRegister:
			value = fl.register.Address(reg)
		case fieldDelay:
			value = fl.delay.Byte(reg)
		default:
			value = fl.literal
		}
		dst = append(dst, value)
	}

	dst[at] = byte(h)

	if enc != nil && enc.Verbose {
		log.Printf("%v: % x", ins, dst[at:])
	}

	return dst
}

// Encode returns the bytes of a single instruction.
func (enc *Encoder) Encode(ins Instruction) []byte {
	return enc.Append(make([]byte, 0, Size(ins)), ins)
}

// Assemble concatenates the encoding of every instruction, in order.
func (enc *Encoder) Assemble(prog []Instruction) []byte {
	size := 0
	for _, ins := range prog {
		size += Size(ins)
	}

	out := make([]byte, 0, size)
	for _, ins := range prog {
		out = enc.Append(out, ins)
	}

	return out
}

// Encode returns the bytes of a single instruction with the standard numbering.
func Encode(ins Instruction) []byte {
	return (*Encoder)(nil).Encode(ins)
}

// Assemble encodes a program with the standard numbering.
func Assemble(prog []Instruction) []byte {
	return (*Encoder)(nil).Assemble(prog)
}
