package opcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandard(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(Standard.Validate())

	assert.Equal(uint8(0), Standard.Opcode(OP_NOP))
	assert.Equal(uint8(14), Standard.Opcode(OP_LOAD))
	assert.Equal(uint8(29), Standard.Opcode(OP_RESET))
	assert.Equal(uint8(2), Standard.Register(REG_PC))
	assert.Equal(uint8(8), Standard.Register(REG_GENERAL))
	assert.Equal(uint8(2), Standard.Delay(DELAY_MIN))
	assert.Equal(uint8(1), Standard.Flag(FLAG_A_INDIRECT))
	assert.Equal(uint8(2), Standard.Flag(FLAG_B_INDIRECT))
}

func TestStandard_OpcodesFitHeader(t *testing.T) {
	assert := assert.New(t)

	for code := range Codes() {
		op := Standard.Opcode(code)
		assert.Less(int(op), OPCODE_LIMIT, code.String())
		assert.Zero((op<<2)&FLAG_MASK, code.String())
	}
}

func TestCodes(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for code := range Codes() {
		assert.Equal(Code(count), code)
		count++
	}
	assert.Equal(OP_COUNT, count)

	count = 0
	for range Codes() {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestStrings(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("nop", OP_NOP.String())
	assert.Equal("hfill", OP_HFILL.String())
	assert.Equal("reset", OP_RESET.String())
	assert.Equal("Code(30)", Code(30).String())
	assert.Equal("pc", REG_PC.String())
	assert.Equal("general", REG_GENERAL.String())
	assert.Equal("min", DELAY_MIN.String())
	assert.Equal("b_indirect", FLAG_B_INDIRECT.String())
}

func clone(t *Table) *Table {
	c := *t
	return &c
}

func TestTable_Validate(t *testing.T) {
	assert := assert.New(t)

	table := clone(Standard)
	table.Opcodes[OP_RESET] = 64
	err := table.Validate()
	assert.ErrorIs(err, ErrOpcodeRange)
	assert.ErrorContains(err, "reset")

	table = clone(Standard)
	table.Opcodes[OP_RESET] = table.Opcodes[OP_NOP]
	assert.ErrorIs(table.Validate(), ErrOpcodeDuplicate)

	table = clone(Standard)
	table.Flags[FLAG_B_INDIRECT] = 4
	assert.ErrorIs(table.Validate(), ErrFlagInvalid)

	table = clone(Standard)
	table.Flags[FLAG_A_INDIRECT] = 0
	assert.ErrorIs(table.Validate(), ErrFlagInvalid)

	table = clone(Standard)
	table.Flags[FLAG_B_INDIRECT] = 3
	assert.ErrorIs(table.Validate(), ErrFlagOverlap)

	table = clone(Standard)
	table.Registers[REG_GENERAL] = 0xf0
	assert.ErrorIs(table.Validate(), ErrRegisterRange)

	table = clone(Standard)
	table.Registers[REG_PO] = 20
	assert.ErrorIs(table.Validate(), ErrRegisterOverlap)

	table = clone(Standard)
	table.Registers[REG_PC] = table.Registers[REG_SC]
	assert.ErrorIs(table.Validate(), ErrRegisterOverlap)

	table = clone(Standard)
	table.Delays[DELAY_HRS] = table.Delays[DELAY_MS]
	assert.ErrorIs(table.Validate(), ErrDelayDuplicate)

	var terr *ErrTable
	assert.ErrorAs(table.Validate(), &terr)
	assert.Equal("prism", terr.Table)
	assert.Equal("hrs", terr.Entry)
}
