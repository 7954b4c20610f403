package asm

import (
	"fmt"

	"github.com/ezrec/prism/opcode"
)

// Mode is an operand addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_IMMEDIATE = Mode(0) // immediate
	MODE_INDIRECT  = Mode(1) // indirect
)

// Slot is the positional role of an operand, selecting its header flag.
type Slot int

//go:generate go tool stringer -linecomment -type=Slot
const (
	SLOT_A = Slot(0) // A
	SLOT_B = Slot(1) // B
)

// Flag returns the registry flag tag of the slot.
func (slot Slot) Flag() opcode.Flag {
	switch slot {
	case SLOT_B:
		return opcode.FLAG_B_INDIRECT
	default:
		return opcode.FLAG_A_INDIRECT
	}
}

// Operand is either an immediate byte or an indirect register reference.
type Operand struct {
	Mode     Mode
	Value    uint8    // Literal, for MODE_IMMEDIATE.
	Register Register // Source register, for MODE_INDIRECT.
}

// Immediate returns a literal operand.
func Immediate(value uint8) Operand {
	return Operand{Mode: MODE_IMMEDIATE, Value: value}
}

// Indirect returns an operand read from a register at run time.
func Indirect(reg Register) Operand {
	return Operand{Mode: MODE_INDIRECT, Register: reg}
}

// Encode returns the operand byte, and the header flag bit the operand sets
// for slot. Immediate operands never set a flag.
func (op Operand) Encode(reg opcode.Registry, slot Slot) (value uint8, flag uint8) {
	if op.Mode == MODE_INDIRECT {
		return op.Register.Address(reg), reg.Flag(slot.Flag())
	}
	return op.Value, 0
}

// String returns the assembly form of the operand.
func (op Operand) String() string {
	if op.Mode == MODE_INDIRECT {
		return op.Register.String()
	}
	return fmt.Sprintf("%d", op.Value)
}

// header accumulates the first byte of an instruction.
type header uint8

// with folds an operand into the header. The operand's slot flag is
// overwritten, so the last operand of a slot decides its flag.
func (h header) with(reg opcode.Registry, slot Slot, op Operand) (header, uint8) {
	value, flag := op.Encode(reg, slot)
	h &^= header(reg.Flag(slot.Flag()))
	h |= header(flag)
	return h, value
}
