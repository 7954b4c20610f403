package asm

import (
	"strconv"
	"strings"
)

type fieldKind int

const (
	fieldOperand  fieldKind = iota // Addressing encoded operand.
	fieldRegister                  // Raw register address.
	fieldLiteral                   // Raw byte, a label or an effect code.
	fieldDelay                     // Delay unit, resolved by the registry.
)

// field is one byte following the instruction header.
type field struct {
	kind     fieldKind
	slot     Slot
	group    int // Non-zero for elements of an Array2 or Array3.
	operand  Operand
	register Register
	literal  uint8
	delay    DelayCode
}

func operandField(slot Slot, op Operand) field {
	return field{kind: fieldOperand, slot: slot, operand: op}
}

func groupFields(slot Slot, group int, ops ...Operand) (fields []field) {
	fields = make([]field, len(ops))
	for n, op := range ops {
		fields[n] = field{kind: fieldOperand, slot: slot, group: group, operand: op}
	}
	return
}

func registerField(reg Register) field {
	return field{kind: fieldRegister, register: reg}
}

func literalField(value uint8) field {
	return field{kind: fieldLiteral, literal: value}
}

func delayField(code DelayCode) field {
	return field{kind: fieldDelay, delay: code}
}

func (fl field) String() string {
	switch fl.kind {
	case fieldOperand:
		return fl.operand.String()
	case fieldRegister:
		return fl.register.String()
	case fieldDelay:
		return fl.delay.String()
	default:
		return strconv.Itoa(int(fl.literal))
	}
}

// format returns the assembly text of an instruction.
func format(ins Instruction) string {
	var sb strings.Builder

	sb.WriteString(ins.Code().String())

	fields := ins.fields()
	for n, fl := range fields {
		opens := fl.group != 0 && (n == 0 || fields[n-1].group != fl.group)
		closes := fl.group != 0 && (n == len(fields)-1 || fields[n+1].group != fl.group)

		sb.WriteString(" ")
		if opens {
			sb.WriteString("[")
		}
		sb.WriteString(fl.String())
		if closes {
			sb.WriteString("]")
		}
	}

	return sb.String()
}

// Size returns the number of bytes an instruction encodes to.
func Size(ins Instruction) int {
	return 1 + len(ins.fields())
}
