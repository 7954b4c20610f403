package opcode

// Code is an instruction tag.
type Code int

//go:generate go tool stringer -linecomment -type=Code
const (
	OP_NOP      = Code(0)  // nop
	OP_BEGIN    = Code(1)  // begin
	OP_RUN      = Code(2)  // run
	OP_TRANSMIT = Code(3)  // transmit
	OP_HALT     = Code(4)  // halt
	OP_AIDX     = Code(5)  // aidx
	OP_RIDX     = Code(6)  // ridx
	OP_HOLD     = Code(7)  // hold
	OP_NHOLD    = Code(8)  // nhold
	OP_UPDATE   = Code(9)  // update
	OP_JMP      = Code(10) // jmp
	OP_RET      = Code(11) // ret
	OP_BEQ      = Code(12) // beq
	OP_BNE      = Code(13) // bne
	OP_LOAD     = Code(14) // load
	OP_ADD      = Code(15) // add
	OP_SUB      = Code(16) // sub
	OP_FILL     = Code(17) // fill
	OP_HFILL    = Code(18) // hfill
	OP_SFILL    = Code(19) // sfill
	OP_LFILL    = Code(20) // lfill
	OP_PAINT    = Code(21) // paint
	OP_HPAINT   = Code(22) // hpaint
	OP_SPAINT   = Code(23) // spaint
	OP_LPAINT   = Code(24) // lpaint
	OP_EFFECT   = Code(25) // effect
	OP_DELAY    = Code(26) // delay
	OP_PAUSE    = Code(27) // pause
	OP_GET      = Code(28) // get
	OP_RESET    = Code(29) // reset
)

// OP_COUNT is the number of instruction tags.
const OP_COUNT = int(OP_RESET) + 1

// Reg is a register tag.
type Reg int

//go:generate go tool stringer -linecomment -type=Reg
const (
	REG_SC      = Reg(0) // sc
	REG_SF      = Reg(1) // sf
	REG_PC      = Reg(2) // pc
	REG_PP      = Reg(3) // pp
	REG_RV      = Reg(4) // rv
	REG_R0      = Reg(5) // r0
	REG_R1      = Reg(6) // r1
	REG_PO      = Reg(7) // po
	REG_GENERAL = Reg(8) // general
)

// REG_COUNT is the number of register tags.
const REG_COUNT = int(REG_GENERAL) + 1

// GENERAL_COUNT is the number of general purpose registers.
const GENERAL_COUNT = 32

// Delay is a delay time unit tag.
type Delay int

//go:generate go tool stringer -linecomment -type=Delay
const (
	DELAY_MS  = Delay(0) // ms
	DELAY_SEC = Delay(1) // sec
	DELAY_MIN = Delay(2) // min
	DELAY_HRS = Delay(3) // hrs
)

// DELAY_COUNT is the number of delay unit tags.
const DELAY_COUNT = int(DELAY_HRS) + 1

// Flag is an addressing mode flag tag.
type Flag int

//go:generate go tool stringer -linecomment -type=Flag
const (
	FLAG_A_INDIRECT = Flag(0) // a_indirect
	FLAG_B_INDIRECT = Flag(1) // b_indirect
)

// FLAG_COUNT is the number of addressing flag tags.
const FLAG_COUNT = int(FLAG_B_INDIRECT) + 1

// FLAG_MASK covers the header bits left free by the opcode shift.
const FLAG_MASK = 0x3

// OPCODE_LIMIT is the first opcode that no longer fits the header.
const OPCODE_LIMIT = 1 << 6
