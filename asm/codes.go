package asm

import (
	"github.com/ezrec/prism/opcode"
)

// EffectCode selects a device effect. It is passed through unchanged.
type EffectCode uint8

// DelayCode is the time unit of a delay.
type DelayCode opcode.Delay

const (
	MS  = DelayCode(opcode.DELAY_MS)
	SEC = DelayCode(opcode.DELAY_SEC)
	MIN = DelayCode(opcode.DELAY_MIN)
	HRS = DelayCode(opcode.DELAY_HRS)
)

// Byte returns the canonical value of the delay unit.
func (code DelayCode) Byte(reg opcode.Registry) uint8 {
	return reg.Delay(opcode.Delay(code))
}

func (code DelayCode) String() string {
	return opcode.Delay(code).String()
}
