// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package script

import (
	"io"
	"log"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/prism/asm"
	"github.com/ezrec/prism/opcode"
)

// build converts the arguments of a call into an instruction.
type build struct {
	arity int
	make  func(a *args) asm.Instruction
}

var builds = map[opcode.Code]build{
	opcode.OP_NOP:      {0, func(a *args) asm.Instruction { return asm.Nop{} }},
	opcode.OP_BEGIN:    {0, func(a *args) asm.Instruction { return asm.Begin{} }},
	opcode.OP_RUN:      {0, func(a *args) asm.Instruction { return asm.Run{} }},
	opcode.OP_TRANSMIT: {0, func(a *args) asm.Instruction { return asm.Transmit{} }},
	opcode.OP_HALT:     {1, func(a *args) asm.Instruction { return asm.Halt{Status: a.operand(0)} }},
	opcode.OP_AIDX:     {0, func(a *args) asm.Instruction { return asm.AbsoluteIndex{} }},
	opcode.OP_RIDX:     {0, func(a *args) asm.Instruction { return asm.RelativeIndex{} }},
	opcode.OP_HOLD:     {0, func(a *args) asm.Instruction { return asm.Hold{} }},
	opcode.OP_NHOLD:    {0, func(a *args) asm.Instruction { return asm.NoHold{} }},
	opcode.OP_UPDATE:   {0, func(a *args) asm.Instruction { return asm.Update{} }},
	opcode.OP_JMP:      {1, func(a *args) asm.Instruction { return asm.Jump{Target: a.target(0)} }},
	opcode.OP_RET:      {1, func(a *args) asm.Instruction { return asm.Return{Value: a.operand(0)} }},
	opcode.OP_BEQ: {3, func(a *args) asm.Instruction {
		return asm.BranchEqual{A: a.operand(0), B: a.operand(1), Target: a.target(2)}
	}},
	opcode.OP_BNE: {3, func(a *args) asm.Instruction {
		return asm.BranchNotEqual{A: a.operand(0), B: a.operand(1), Target: a.target(2)}
	}},
	opcode.OP_LOAD: {2, func(a *args) asm.Instruction { return asm.Load{Register: a.register(0), Value: a.operand(1)} }},
	opcode.OP_ADD:  {2, func(a *args) asm.Instruction { return asm.Add{Register: a.register(0), Value: a.operand(1)} }},
	opcode.OP_SUB:  {2, func(a *args) asm.Instruction { return asm.Sub{Register: a.register(0), Value: a.operand(1)} }},
	opcode.OP_FILL: {2, func(a *args) asm.Instruction { return asm.Fill{Range: a.rng(0), Color: a.color(1)} }},
	opcode.OP_HFILL: {2, func(a *args) asm.Instruction {
		return asm.HueFill{Range: a.rng(0), Hue: a.operand(1)}
	}},
	opcode.OP_SFILL: {2, func(a *args) asm.Instruction {
		return asm.SaturationFill{Range: a.rng(0), Saturation: a.operand(1)}
	}},
	opcode.OP_LFILL: {2, func(a *args) asm.Instruction {
		return asm.LevelFill{Range: a.rng(0), Level: a.operand(1)}
	}},
	opcode.OP_PAINT: {2, func(a *args) asm.Instruction { return asm.Paint{Index: a.operand(0), Color: a.color(1)} }},
	opcode.OP_HPAINT: {2, func(a *args) asm.Instruction {
		return asm.HuePaint{Index: a.operand(0), Hue: a.operand(1)}
	}},
	opcode.OP_SPAINT: {2, func(a *args) asm.Instruction {
		return asm.SaturationPaint{Index: a.operand(0), Saturation: a.operand(1)}
	}},
	opcode.OP_LPAINT: {2, func(a *args) asm.Instruction {
		return asm.LevelPaint{Index: a.operand(0), Level: a.operand(1)}
	}},
	opcode.OP_EFFECT: {3, func(a *args) asm.Instruction {
		return asm.Effect{Effect: asm.EffectCode(a.literal(0)), Range: a.rng(1), Value: a.operand(2)}
	}},
	opcode.OP_DELAY: {2, func(a *args) asm.Instruction { return asm.Delay{Unit: a.delay(0), Amount: a.operand(1)} }},
	opcode.OP_PAUSE: {0, func(a *args) asm.Instruction { return asm.Pause{} }},
	opcode.OP_GET:   {1, func(a *args) asm.Instruction { return asm.Get{Register: a.register(0)} }},
	opcode.OP_RESET: {0, func(a *args) asm.Instruction { return asm.Reset{} }},
}

// link is a label reference waiting for the label's index.
type link struct {
	index int
	label string
}

// Builder runs Prism program scripts.
//
// A script is Starlark code calling one builtin per instruction, named by
// the upper case mnemonic:
//
//	BEGIN()
//	LOAD(GP(0), 0)
//	LABEL("loop")
//	HFILL([0, 10], GP(0))
//	ADD(GP(0), 1)
//	BNE(GP(0), 255, "loop")
//	RUN()
//
// Ints are immediate operands and registers are indirect operands. Each
// instruction builtin returns the index of the instruction it added.
type Builder struct {
	Verbose bool           // If set, logs every instruction added.
	Label   map[string]int // Map of labels to instruction indexes.

	program *asm.Program
	links   []link
}

// instruction returns the builtin adding code to the program.
func (b *Builder) instruction(code opcode.Code) *starlark.Builtin {
	bld := builds[code]
	name := strings.ToUpper(code.String())

	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, values starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if len(kwargs) != 0 {
			return nil, ErrArgumentKeyword
		}
		if len(values) != bld.arity {
			return nil, ErrArgumentCount
		}

		index := len(b.program.Instructions)

		a := &args{
			name:   name,
			values: values,
			link: func(label string) {
				b.links = append(b.links, link{index: index, label: label})
			},
		}

		ins := bld.make(a)
		if a.err != nil {
			return nil, a.err
		}

		err := asm.Check(ins)
		if err != nil {
			return nil, err
		}

		if b.Verbose {
			log.Printf("%v: %v", index, ins)
		}

		b.program.Append(ins)

		return starlark.MakeInt(index), nil
	})
}

// label marks the index of the next instruction.
func (b *Builder) label(thread *starlark.Thread, fn *starlark.Builtin, values starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 {
		return nil, ErrArgumentKeyword
	}
	if len(values) != 1 {
		return nil, ErrArgumentCount
	}
	name, ok := values[0].(starlark.String)
	if !ok {
		return nil, ErrLabelSyntax
	}
	if _, ok := b.Label[string(name)]; ok {
		return nil, ErrLabelDuplicate
	}

	index := len(b.program.Instructions)
	b.Label[string(name)] = index

	return starlark.MakeInt(index), nil
}

// gp returns a general purpose register.
func (b *Builder) gp(thread *starlark.Thread, fn *starlark.Builtin, values starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 {
		return nil, ErrArgumentKeyword
	}
	if len(values) != 1 {
		return nil, ErrArgumentCount
	}
	index, err := starlark.AsInt32(values[0])
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= opcode.GENERAL_COUNT {
		return nil, ErrRegisterInvalid
	}

	return register{asm.GP(uint8(index))}, nil
}

// predeclared returns the names visible to a script.
func (b *Builder) predeclared() starlark.StringDict {
	dict := starlark.StringDict{
		"LABEL": starlark.NewBuiltin("LABEL", b.label),
		"GP":    starlark.NewBuiltin("GP", b.gp),
	}

	for name, value := range constants {
		dict[name] = value
	}

	for code := range opcode.Codes() {
		fn := b.instruction(code)
		dict[fn.Name()] = fn
	}

	return dict
}

// retarget returns a copy of a jump or branch with a new target.
func retarget(ins asm.Instruction, target uint8) asm.Instruction {
	switch ins := ins.(type) {
	case asm.Jump:
		ins.Target = target
		return ins
	case asm.BranchEqual:
		ins.Target = target
		return ins
	case asm.BranchNotEqual:
		ins.Target = target
		return ins
	}
	return ins
}

// Compile runs a script and returns the program it built, with every label
// target resolved.
func (b *Builder) Compile(filename string, input io.Reader) (prog *asm.Program, err error) {
	src, err := io.ReadAll(input)
	if err != nil {
		return
	}

	b.program = &asm.Program{}
	b.links = b.links[:0]
	if b.Label == nil {
		b.Label = make(map[string]int)
	}
	clear(b.Label)

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{
		TopLevelControl: true,
		While:           true,
	}

	_, err = starlark.ExecFileOptions(&opts, thread, filename, src, b.predeclared())
	if err != nil {
		return
	}

	// Final linking of label targets.
	for _, ln := range b.links {
		index, ok := b.Label[ln.label]
		if !ok {
			err = &ErrLink{Index: ln.index, Label: ln.label, Err: ErrLabelMissing(ln.label)}
			return
		}
		if index > 0xff {
			err = &ErrLink{Index: ln.index, Label: ln.label, Err: ErrTargetRange}
			return
		}
		b.program.Instructions[ln.index] = retarget(b.program.Instructions[ln.index], uint8(index))
	}

	prog = b.program

	return
}
