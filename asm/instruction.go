package asm

import (
	"github.com/ezrec/prism/opcode"
)

// Instruction is one of the closed set of Prism instructions.
//
// The set is sealed: only the types of this package implement it, and each
// of them declares its byte layout.
type Instruction interface {
	Code() opcode.Code
	String() string

	fields() []field
}

const (
	groupRange = 1
	groupColor = 2
)

// Nop does nothing.
type Nop struct{}

// Begin clears the machine state and starts recording a script.
// It must be the first instruction of a script.
type Begin struct{}

// Run marks the end of a script and starts running it.
type Run struct{}

// Transmit disables the state machine for real time data.
// Branching is not available in transmit mode.
type Transmit struct{}

// Halt stops execution and stores Status in $sc.
type Halt struct {
	Status Operand
}

// AbsoluteIndex addresses pixels by absolute index.
type AbsoluteIndex struct{}

// RelativeIndex addresses pixels as 0-100% of the buffer.
type RelativeIndex struct{}

// Hold defers drawing until an Update.
type Hold struct{}

// NoHold makes drawing immediate, dropping held operations.
type NoHold struct{}

// Update applies held operations.
type Update struct{}

// Jump copies $pc into $pp, then continues at Target.
type Jump struct {
	Target uint8
}

// Return copies $pp into $pc and stores Value in $rv.
type Return struct {
	Value Operand
}

// BranchEqual jumps to Target when A equals B.
type BranchEqual struct {
	A      Operand
	B      Operand
	Target uint8
}

// BranchNotEqual jumps to Target when A differs from B.
type BranchNotEqual struct {
	A      Operand
	B      Operand
	Target uint8
}

// Load stores Value into Register.
type Load struct {
	Register Register
	Value    Operand
}

// Add adds Value to Register.
type Add struct {
	Register Register
	Value    Operand
}

// Sub subtracts Value from Register.
type Sub struct {
	Register Register
	Value    Operand
}

// Fill paints a range of pixels with a full HSL color.
type Fill struct {
	Range Range
	Color Color
}

// HueFill sets the hue of a range of pixels.
type HueFill struct {
	Range Range
	Hue   Operand
}

// SaturationFill sets the saturation of a range of pixels.
type SaturationFill struct {
	Range      Range
	Saturation Operand
}

// LevelFill sets the level of a range of pixels.
type LevelFill struct {
	Range Range
	Level Operand
}

// Paint sets one pixel to a full HSL color.
type Paint struct {
	Index Operand
	Color Color
}

// HuePaint sets the hue of one pixel.
type HuePaint struct {
	Index Operand
	Hue   Operand
}

// SaturationPaint sets the saturation of one pixel.
type SaturationPaint struct {
	Index      Operand
	Saturation Operand
}

// LevelPaint sets the level of one pixel.
type LevelPaint struct {
	Index Operand
	Level Operand
}

// Effect applies a device effect to a range of pixels.
type Effect struct {
	Effect EffectCode
	Range  Range
	Value  Operand
}

// Delay suspends execution for Amount units.
type Delay struct {
	Unit   DelayCode
	Amount Operand
}

// Pause suspends the script until the next Run.
type Pause struct{}

// Get reports the contents of a register to the host.
type Get struct {
	Register Register
}

// Reset restarts all registers, flags and memory.
type Reset struct{}

func (Nop) Code() opcode.Code             { return opcode.OP_NOP }
func (Begin) Code() opcode.Code           { return opcode.OP_BEGIN }
func (Run) Code() opcode.Code             { return opcode.OP_RUN }
func (Transmit) Code() opcode.Code        { return opcode.OP_TRANSMIT }
func (Halt) Code() opcode.Code            { return opcode.OP_HALT }
func (AbsoluteIndex) Code() opcode.Code   { return opcode.OP_AIDX }
func (RelativeIndex) Code() opcode.Code   { return opcode.OP_RIDX }
func (Hold) Code() opcode.Code            { return opcode.OP_HOLD }
func (NoHold) Code() opcode.Code          { return opcode.OP_NHOLD }
func (Update) Code() opcode.Code          { return opcode.OP_UPDATE }
func (Jump) Code() opcode.Code            { return opcode.OP_JMP }
func (Return) Code() opcode.Code          { return opcode.OP_RET }
func (BranchEqual) Code() opcode.Code     { return opcode.OP_BEQ }
func (BranchNotEqual) Code() opcode.Code  { return opcode.OP_BNE }
func (Load) Code() opcode.Code            { return opcode.OP_LOAD }
func (Add) Code() opcode.Code             { return opcode.OP_ADD }
func (Sub) Code() opcode.Code             { return opcode.OP_SUB }
func (Fill) Code() opcode.Code            { return opcode.OP_FILL }
func (HueFill) Code() opcode.Code         { return opcode.OP_HFILL }
func (SaturationFill) Code() opcode.Code  { return opcode.OP_SFILL }
func (LevelFill) Code() opcode.Code       { return opcode.OP_LFILL }
func (Paint) Code() opcode.Code           { return opcode.OP_PAINT }
func (HuePaint) Code() opcode.Code        { return opcode.OP_HPAINT }
func (SaturationPaint) Code() opcode.Code { return opcode.OP_SPAINT }
func (LevelPaint) Code() opcode.Code      { return opcode.OP_LPAINT }
func (Effect) Code() opcode.Code          { return opcode.OP_EFFECT }
func (Delay) Code() opcode.Code           { return opcode.OP_DELAY }
func (Pause) Code() opcode.Code           { return opcode.OP_PAUSE }
func (Get) Code() opcode.Code             { return opcode.OP_GET }
func (Reset) Code() opcode.Code           { return opcode.OP_RESET }

// Layouts. Fields follow the header in emission order.

func (Nop) fields() []field           { return nil }
func (Begin) fields() []field         { return nil }
func (Run) fields() []field           { return nil }
func (Transmit) fields() []field      { return nil }
func (AbsoluteIndex) fields() []field { return nil }
func (RelativeIndex) fields() []field { return nil }
func (Hold) fields() []field          { return nil }
func (NoHold) fields() []field        { return nil }
func (Update) fields() []field        { return nil }
func (Pause) fields() []field         { return nil }
func (Reset) fields() []field         { return nil }

func (ins Halt) fields() []field {
	return []field{operandField(SLOT_A, ins.Status)}
}

func (ins Return) fields() []field {
	return []field{operandField(SLOT_A, ins.Value)}
}

func (ins Get) fields() []field {
	return []field{registerField(ins.Register)}
}

func (ins Jump) fields() []field {
	return []field{literalField(ins.Target)}
}

func branchFields(a, b Operand, target uint8) []field {
	return []field{operandField(SLOT_A, a), operandField(SLOT_B, b), literalField(target)}
}

func (ins BranchEqual) fields() []field {
	return branchFields(ins.A, ins.B, ins.Target)
}

func (ins BranchNotEqual) fields() []field {
	return branchFields(ins.A, ins.B, ins.Target)
}

func registerFields(reg Register, value Operand) []field {
	return []field{registerField(reg), operandField(SLOT_B, value)}
}

func (ins Load) fields() []field {
	return registerFields(ins.Register, ins.Value)
}

func (ins Add) fields() []field {
	return registerFields(ins.Register, ins.Value)
}

func (ins Sub) fields() []field {
	return registerFields(ins.Register, ins.Value)
}

func (ins Fill) fields() []field {
	return append(groupFields(SLOT_A, groupRange, ins.Range.Slice()...),
		groupFields(SLOT_B, groupColor, ins.Color.Slice()...)...)
}

func channelFill(rng Range, value Operand) []field {
	return append(groupFields(SLOT_A, groupRange, rng.Slice()...), operandField(SLOT_B, value))
}

func (ins HueFill) fields() []field {
	return channelFill(ins.Range, ins.Hue)
}

func (ins SaturationFill) fields() []field {
	return channelFill(ins.Range, ins.Saturation)
}

func (ins LevelFill) fields() []field {
	return channelFill(ins.Range, ins.Level)
}

func (ins Paint) fields() []field {
	return append([]field{operandField(SLOT_A, ins.Index)},
		groupFields(SLOT_B, groupColor, ins.Color.Slice()...)...)
}

func channelPaint(index Operand, value Operand) []field {
	return []field{operandField(SLOT_A, index), operandField(SLOT_B, value)}
}

func (ins HuePaint) fields() []field {
	return channelPaint(ins.Index, ins.Hue)
}

func (ins SaturationPaint) fields() []field {
	return channelPaint(ins.Index, ins.Saturation)
}

func (ins LevelPaint) fields() []field {
	return channelPaint(ins.Index, ins.Level)
}

func (ins Effect) fields() []field {
	return append([]field{literalField(uint8(ins.Effect))}, channelFill(ins.Range, ins.Value)...)
}

func (ins Delay) fields() []field {
	return []field{delayField(ins.Unit), operandField(SLOT_A, ins.Amount)}
}

func (ins Nop) String() string             { return format(ins) }
func (ins Begin) String() string           { return format(ins) }
func (ins Run) String() string             { return format(ins) }
func (ins Transmit) String() string        { return format(ins) }
func (ins Halt) String() string            { return format(ins) }
func (ins AbsoluteIndex) String() string   { return format(ins) }
func (ins RelativeIndex) String() string   { return format(ins) }
func (ins Hold) String() string            { return format(ins) }
func (ins NoHold) String() string          { return format(ins) }
func (ins Update) String() string          { return format(ins) }
func (ins Jump) String() string            { return format(ins) }
func (ins Return) String() string          { return format(ins) }
func (ins BranchEqual) String() string     { return format(ins) }
func (ins BranchNotEqual) String() string  { return format(ins) }
func (ins Load) String() string            { return format(ins) }
func (ins Add) String() string             { return format(ins) }
func (ins Sub) String() string             { return format(ins) }
func (ins Fill) String() string            { return format(ins) }
func (ins HueFill) String() string         { return format(ins) }
func (ins SaturationFill) String() string  { return format(ins) }
func (ins LevelFill) String() string       { return format(ins) }
func (ins Paint) String() string           { return format(ins) }
func (ins HuePaint) String() string        { return format(ins) }
func (ins SaturationPaint) String() string { return format(ins) }
func (ins LevelPaint) String() string      { return format(ins) }
func (ins Effect) String() string          { return format(ins) }
func (ins Delay) String() string           { return format(ins) }
func (ins Pause) String() string           { return format(ins) }
func (ins Get) String() string             { return format(ins) }
func (ins Reset) String() string           { return format(ins) }
