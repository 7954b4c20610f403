package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/prism/opcode"
)

func TestRegister_Address(t *testing.T) {
	assert := assert.New(t)

	reg := opcode.Standard

	named := []Register{SC, SF, PC, PP, RV, R0, R1, PO}
	seen := map[uint8]Register{}
	for n, r := range named {
		addr := r.Address(reg)
		assert.Equal(uint8(n), addr, r.String())
		_, dup := seen[addr]
		assert.False(dup, r.String())
		seen[addr] = r
	}

	base := reg.Register(opcode.REG_GENERAL)
	for n := range uint8(opcode.GENERAL_COUNT) {
		addr := GP(n).Address(reg)
		assert.Equal(base+n, addr)
		_, dup := seen[addr]
		assert.False(dup, GP(n).String())
		seen[addr] = GP(n)
	}
}

func TestRegister_Valid(t *testing.T) {
	assert := assert.New(t)

	assert.True(PC.Valid())
	assert.True(GP(0).Valid())
	assert.True(GP(31).Valid())
	assert.False(GP(32).Valid())

	// Out of range indexes are still addressable.
	assert.Equal(uint8(8+32), GP(32).Address(opcode.Standard))
}

func TestRegister_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("$sc", SC.String())
	assert.Equal("$pc", PC.String())
	assert.Equal("$r0", R0.String())
	assert.Equal("$0", GP(0).String())
	assert.Equal("$31", GP(31).String())
}
