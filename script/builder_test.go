package script

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/prism/asm"
	"github.com/ezrec/prism/opcode"
)

func compile(t *testing.T, lines ...string) (prog *asm.Program, err error) {
	b := &Builder{}
	return b.Compile("test.star", strings.NewReader(strings.Join(lines, "\n")))
}

func TestBuilder_Empty(t *testing.T) {
	assert := assert.New(t)

	prog, err := compile(t, "")
	assert.NoError(err)
	assert.Empty(prog.Instructions)
	assert.Equal([]byte{}, prog.Binary(nil))
}

func TestBuilder_Instructions(t *testing.T) {
	assert := assert.New(t)

	prog, err := compile(t,
		"BEGIN()",
		"TRANSMIT()",
		"AIDX()",
		"RIDX()",
		"HOLD()",
		"NHOLD()",
		"UPDATE()",
		"LOAD(GP(3), 42)",
		"LOAD(GP(3), PC)",
		"ADD(SC, 1)",
		"SUB(GP(31), GP(30))",
		"FILL([R0, R1], [120, 255, 128])",
		"HFILL([0, 10], R0)",
		"SFILL((0, 10), 50)",
		"LFILL([0, 10], 9)",
		"PAINT(GP(5), (120, 255, 128))",
		"HPAINT(3, 60)",
		"SPAINT(3, PO)",
		"LPAINT(SF, 9)",
		"EFFECT(7, [0, 10], GP(0))",
		"DELAY(MIN, 5)",
		"HALT(RV)",
		"RET(GP(0))",
		"GET(PC)",
		"PAUSE()",
		"RESET()",
		"NOP()",
		"RUN()",
	)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []asm.Instruction{
		asm.Begin{},
		asm.Transmit{},
		asm.AbsoluteIndex{},
		asm.RelativeIndex{},
		asm.Hold{},
		asm.NoHold{},
		asm.Update{},
		asm.Load{Register: asm.GP(3), Value: asm.Immediate(42)},
		asm.Load{Register: asm.GP(3), Value: asm.Indirect(asm.PC)},
		asm.Add{Register: asm.SC, Value: asm.Immediate(1)},
		asm.Sub{Register: asm.GP(31), Value: asm.Indirect(asm.GP(30))},
		asm.Fill{
			Range: asm.Range{asm.Indirect(asm.R0), asm.Indirect(asm.R1)},
			Color: asm.Color{asm.Immediate(120), asm.Immediate(255), asm.Immediate(128)},
		},
		asm.HueFill{Range: asm.Range{asm.Immediate(0), asm.Immediate(10)}, Hue: asm.Indirect(asm.R0)},
		asm.SaturationFill{Range: asm.Range{asm.Immediate(0), asm.Immediate(10)}, Saturation: asm.Immediate(50)},
		asm.LevelFill{Range: asm.Range{asm.Immediate(0), asm.Immediate(10)}, Level: asm.Immediate(9)},
		asm.Paint{
			Index: asm.Indirect(asm.GP(5)),
			Color: asm.Color{asm.Immediate(120), asm.Immediate(255), asm.Immediate(128)},
		},
		asm.HuePaint{Index: asm.Immediate(3), Hue: asm.Immediate(60)},
		asm.SaturationPaint{Index: asm.Immediate(3), Saturation: asm.Indirect(asm.PO)},
		asm.LevelPaint{Index: asm.Indirect(asm.SF), Level: asm.Immediate(9)},
		asm.Effect{Effect: 7, Range: asm.Range{asm.Immediate(0), asm.Immediate(10)}, Value: asm.Indirect(asm.GP(0))},
		asm.Delay{Unit: asm.MIN, Amount: asm.Immediate(5)},
		asm.Halt{Status: asm.Indirect(asm.RV)},
		asm.Return{Value: asm.Indirect(asm.GP(0))},
		asm.Get{Register: asm.PC},
		asm.Pause{},
		asm.Reset{},
		asm.Nop{},
		asm.Run{},
	}

	assert.Equal(expected, prog.Instructions)
}

func TestBuilder_Labels(t *testing.T) {
	assert := assert.New(t)

	b := &Builder{}
	prog, err := b.Compile("labels.star", strings.NewReader(strings.Join([]string{
		"BEGIN()",
		"LOAD(GP(0), 0)",
		`LABEL("loop")`,
		"HFILL([0, 10], GP(0))",
		"ADD(GP(0), 1)",
		`BNE(GP(0), 255, "loop")`,
		`BEQ(GP(0), 255, "done")`,
		"NOP()",
		`LABEL("done")`,
		`JMP("end")`,
		`LABEL("end")`,
		"RUN()",
	}, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(map[string]int{"loop": 2, "done": 7, "end": 8}, b.Label)
	assert.Equal(asm.BranchNotEqual{A: asm.Indirect(asm.GP(0)), B: asm.Immediate(255), Target: 2}, prog.Instructions[4])
	assert.Equal(asm.BranchEqual{A: asm.Indirect(asm.GP(0)), B: asm.Immediate(255), Target: 7}, prog.Instructions[5])
	assert.Equal(asm.Jump{Target: 8}, prog.Instructions[7])
}

func TestBuilder_Starlark(t *testing.T) {
	assert := assert.New(t)

	prog, err := compile(t,
		"def stripe(start, hue):",
		"    HFILL([start, start + 4], hue)",
		"",
		"top = NOP()",
		"for n in range(3):",
		"    stripe(n * 4, n * 60)",
		"JMP(top)",
	)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(5, len(prog.Instructions))
	assert.Equal(asm.HueFill{Range: asm.Range{asm.Immediate(8), asm.Immediate(12)}, Hue: asm.Immediate(120)}, prog.Instructions[3])
	assert.Equal(asm.Jump{Target: 0}, prog.Instructions[4])
}

func TestBuilder_Reuse(t *testing.T) {
	assert := assert.New(t)

	b := &Builder{}
	_, err := b.Compile("a.star", strings.NewReader(`LABEL("x")`+"\nNOP()"))
	assert.NoError(err)

	prog, err := b.Compile("b.star", strings.NewReader(`LABEL("x")`+"\nRUN()"))
	assert.NoError(err)
	assert.Equal([]asm.Instruction{asm.Run{}}, prog.Instructions)
}

func TestBuilder_Binary(t *testing.T) {
	assert := assert.New(t)

	prog, err := compile(t,
		"LOAD(GP(3), 42)",
		"LOAD(GP(3), PC)",
		"HFILL([0, 10], R0)",
		"DELAY(MIN, 5)",
	)
	assert.NoError(err)

	expected := []byte{
		14 << 2, 11, 42,
		14<<2 | 2, 11, 2,
		18<<2 | 2, 0, 10, 5,
		26 << 2, 2, 5,
	}
	assert.Equal(expected, prog.Binary(&asm.Encoder{}))
}

func TestBuilder_Testdata(t *testing.T) {
	assert := assert.New(t)

	inf, err := os.Open("testdata/rainbow.star")
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	defer inf.Close()

	b := &Builder{Verbose: true}
	prog, err := b.Compile("rainbow.star", inf)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.NoError(prog.Check())
	assert.Equal(16, len(prog.Instructions))
	assert.Equal(9, b.Label["sweep"])
	assert.Equal(asm.Jump{Target: 9}, prog.Instructions[14])
	assert.Equal("fill [75 100] [180 255 128]", prog.Instructions[6].String())

	bin := prog.Binary(&asm.Encoder{})
	dbg := prog.Debug(len(bin) - 1)
	assert.Equal(asm.Run{}, dbg.Instruction)
	assert.Equal(15, dbg.Index)
}

func TestBuilder_Predeclared(t *testing.T) {
	assert := assert.New(t)

	b := &Builder{}
	dict := b.predeclared()

	for code := range opcode.Codes() {
		_, ok := builds[code]
		assert.True(ok, code.String())

		fn, ok := dict[strings.ToUpper(code.String())]
		assert.True(ok, code.String())
		assert.Equal("builtin_function_or_method", fn.Type())
	}

	for _, name := range []string{"SC", "SF", "PC", "PP", "RV", "R0", "R1", "PO", "MS", "SEC", "MIN", "HRS", "GP", "LABEL"} {
		_, ok := dict[name]
		assert.True(ok, name)
	}

	assert.Equal("register", dict["PC"].Type())
	assert.Equal("$pc", dict["PC"].String())
	assert.Equal("delay", dict["MIN"].Type())
	assert.Equal("min", dict["MIN"].String())
}
