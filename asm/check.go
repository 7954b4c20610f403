package asm

// Check reports operands sharing a slot with different addressing modes.
//
// The header has one flag per slot, so the encoder lets the last operand of
// a slot decide it. A range with an immediate start and an indirect end
// encodes both bytes as indirect; Check rejects such instructions before
// they reach the encoder.
func Check(ins Instruction) (err error) {
	var seen [2]bool
	var mode [2]Mode

	for _, fl := range ins.fields() {
		if fl.kind != fieldOperand {
			continue
		}
		if seen[fl.slot] && mode[fl.slot] != fl.operand.Mode {
			return &ErrMixed{Code: ins.Code(), Slot: fl.slot}
		}
		seen[fl.slot] = true
		mode[fl.slot] = fl.operand.Mode
	}

	return
}
