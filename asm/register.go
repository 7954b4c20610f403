package asm

import (
	"fmt"

	"github.com/ezrec/prism/opcode"
)

// Register names a memory slot of the execution state.
type Register struct {
	Code  opcode.Reg // Register tag.
	Index uint8      // General purpose index, only used by REG_GENERAL.
}

var (
	SC = Register{Code: opcode.REG_SC} // Status code, 0 for success.
	SF = Register{Code: opcode.REG_SF} // Status flags bitmask.
	PC = Register{Code: opcode.REG_PC} // Program counter.
	PP = Register{Code: opcode.REG_PP} // Previous program counter, saved on jumps.
	RV = Register{Code: opcode.REG_RV} // Return value of the last RET.
	R0 = Register{Code: opcode.REG_R0} // Inclusive range start.
	R1 = Register{Code: opcode.REG_R1} // Exclusive range end.
	PO = Register{Code: opcode.REG_PO} // Pending operation count.
)

// GP returns the general purpose register at index.
//
// Indexes above 31 are not rejected; their address runs past the
// general block.
func GP(index uint8) Register {
	return Register{Code: opcode.REG_GENERAL, Index: index}
}

// General returns true for general purpose registers.
func (r Register) General() bool {
	return r.Code == opcode.REG_GENERAL
}

// Valid returns true if a general purpose index is within the register bank.
func (r Register) Valid() bool {
	return !r.General() || int(r.Index) < opcode.GENERAL_COUNT
}

// Address returns the absolute memory address of the register.
func (r Register) Address(reg opcode.Registry) uint8 {
	addr := reg.Register(r.Code)
	if r.General() {
		addr += r.Index
	}
	return addr
}

// String returns the assembly form of the register, $pc or $3.
func (r Register) String() string {
	if r.General() {
		return fmt.Sprintf("$%d", r.Index)
	}
	return "$" + r.Code.String()
}
