package opcode

import (
	"fmt"
	"iter"
)

// Registry maps instruction set tags onto their canonical integers.
type Registry interface {
	Opcode(code Code) uint8
	Register(reg Reg) uint8
	Delay(delay Delay) uint8
	Flag(flag Flag) uint8
}

// Table is a Registry backed by fixed lookup arrays.
type Table struct {
	Name      string
	Opcodes   [OP_COUNT]uint8
	Registers [REG_COUNT]uint8 // REG_GENERAL holds the base of the general block.
	Delays    [DELAY_COUNT]uint8
	Flags     [FLAG_COUNT]uint8
}

var _ Registry = (*Table)(nil)

// Standard is the numbering shipped with the device firmware.
var Standard = &Table{
	Name: "prism",
	Opcodes: [OP_COUNT]uint8{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
		10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
		20, 21, 22, 23, 24, 25, 26, 27, 28, 29,
	},
	Registers: [REG_COUNT]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8},
	Delays:    [DELAY_COUNT]uint8{0, 1, 2, 3},
	Flags:     [FLAG_COUNT]uint8{1, 2},
}

func (t *Table) Opcode(code Code) uint8 {
	return t.Opcodes[code]
}

func (t *Table) Register(reg Reg) uint8 {
	return t.Registers[reg]
}

func (t *Table) Delay(delay Delay) uint8 {
	return t.Delays[delay]
}

func (t *Table) Flag(flag Flag) uint8 {
	return t.Flags[flag]
}

// Codes iterates over every instruction tag.
func Codes() iter.Seq[Code] {
	return func(yield func(Code) bool) {
		for n := range OP_COUNT {
			if !yield(Code(n)) {
				return
			}
		}
	}
}

func (t *Table) fail(entry fmt.Stringer, err error) error {
	return &ErrTable{Table: t.Name, Entry: entry.String(), Err: err}
}

// Validate checks the table against the header and address space contract.
func (t *Table) Validate() (err error) {
	seen := map[uint8]Code{}
	for code := range Codes() {
		value := t.Opcodes[code]
		if int(value) >= OPCODE_LIMIT {
			return t.fail(code, ErrOpcodeRange)
		}
		if _, ok := seen[value]; ok {
			return t.fail(code, ErrOpcodeDuplicate)
		}
		seen[value] = code
	}

	var flags uint8
	for n := range FLAG_COUNT {
		flag := Flag(n)
		value := t.Flags[flag]
		if value == 0 || value&^FLAG_MASK != 0 {
			return t.fail(flag, ErrFlagInvalid)
		}
		if flags&value != 0 {
			return t.fail(flag, ErrFlagOverlap)
		}
		flags |= value
	}

	base := int(t.Registers[REG_GENERAL])
	if base+GENERAL_COUNT > 0x100 {
		return t.fail(REG_GENERAL, ErrRegisterRange)
	}
	addrs := map[uint8]Reg{}
	for n := range REG_GENERAL {
		reg := Reg(n)
		addr := t.Registers[reg]
		if _, ok := addrs[addr]; ok {
			return t.fail(reg, ErrRegisterOverlap)
		}
		if int(addr) >= base && int(addr) < base+GENERAL_COUNT {
			return t.fail(reg, ErrRegisterOverlap)
		}
		addrs[addr] = reg
	}

	delays := map[uint8]Delay{}
	for n := range DELAY_COUNT {
		delay := Delay(n)
		value := t.Delays[delay]
		if _, ok := delays[value]; ok {
			return t.fail(delay, ErrDelayDuplicate)
		}
		delays[value] = delay
	}

	return
}
