package script

import (
	"go.starlark.net/starlark"

	"github.com/ezrec/prism/asm"
)

// args converts the arguments of one builtin call, keeping the first error.
type args struct {
	name   string
	values starlark.Tuple
	link   func(label string) // Records a label target of the call.
	err    error
}

func (a *args) fail(n int, err error) {
	if a.err == nil {
		a.err = &ErrArgument{Builtin: a.name, Index: n, Err: err}
	}
}

// byteOf converts a Starlark int into a byte.
func byteOf(value starlark.Value) (b uint8, err error) {
	num, ok := value.(starlark.Int)
	if !ok {
		err = ErrArgumentType
		return
	}
	v64, ok := num.Int64()
	if !ok || v64 < 0 || v64 > 0xff {
		err = ErrValueRange
		return
	}
	b = uint8(v64)
	return
}

// operandOf converts an int into an immediate and a register into an indirect operand.
func operandOf(value starlark.Value) (op asm.Operand, err error) {
	if r, ok := value.(register); ok {
		if !r.reg.Valid() {
			err = ErrRegisterInvalid
			return
		}
		op = asm.Indirect(r.reg)
		return
	}

	b, err := byteOf(value)
	if err != nil {
		return
	}
	op = asm.Immediate(b)
	return
}

// operandsOf converts a list or tuple of operands.
func operandsOf(value starlark.Value) (ops []asm.Operand, err error) {
	list, ok := value.(starlark.Indexable)
	if !ok {
		err = ErrArgumentType
		return
	}
	if _, ok := value.(starlark.String); ok {
		err = ErrArgumentType
		return
	}

	ops = make([]asm.Operand, list.Len())
	for n := range ops {
		ops[n], err = operandOf(list.Index(n))
		if err != nil {
			return
		}
	}
	return
}

func (a *args) operand(n int) (op asm.Operand) {
	op, err := operandOf(a.values[n])
	if err != nil {
		a.fail(n, err)
	}
	return
}

func (a *args) register(n int) (reg asm.Register) {
	r, ok := a.values[n].(register)
	if !ok {
		a.fail(n, ErrArgumentType)
		return
	}
	if !r.reg.Valid() {
		a.fail(n, ErrRegisterInvalid)
		return
	}
	return r.reg
}

func (a *args) literal(n int) (b uint8) {
	b, err := byteOf(a.values[n])
	if err != nil {
		a.fail(n, err)
	}
	return
}

// target accepts an absolute instruction index or a label name.
func (a *args) target(n int) (b uint8) {
	if label, ok := a.values[n].(starlark.String); ok {
		a.link(string(label))
		return
	}

	b, err := byteOf(a.values[n])
	if err == ErrValueRange {
		err = ErrTargetRange
	}
	if err != nil {
		a.fail(n, err)
	}
	return
}

func (a *args) rng(n int) (array asm.Range) {
	ops, err := operandsOf(a.values[n])
	if err == nil {
		array, err = asm.NewArray2(ops)
	}
	if err != nil {
		a.fail(n, err)
	}
	return
}

func (a *args) color(n int) (array asm.Color) {
	ops, err := operandsOf(a.values[n])
	if err == nil {
		array, err = asm.NewArray3(ops)
	}
	if err != nil {
		a.fail(n, err)
	}
	return
}

func (a *args) delay(n int) (code asm.DelayCode) {
	d, ok := a.values[n].(delay)
	if !ok {
		a.fail(n, ErrArgumentType)
		return
	}
	return d.code
}
