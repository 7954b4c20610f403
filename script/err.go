package script

import (
	"errors"

	"github.com/ezrec/prism/translate"
)

var f = translate.From

var (
	ErrArgumentCount   = errors.New(f("wrong number of arguments"))
	ErrArgumentKeyword = errors.New(f("keyword arguments not supported"))
	ErrArgumentType    = errors.New(f("wrong argument type"))
	ErrValueRange      = errors.New(f("value out of byte range"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrLabelSyntax     = errors.New(f("label must be a string"))
	ErrTargetRange     = errors.New(f("target beyond instruction 255"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrArgument locates a bad argument of a builtin call.
type ErrArgument struct {
	Builtin string
	Index   int
	Err     error
}

func (err *ErrArgument) Error() string {
	return f("%v argument %d: %v", err.Builtin, err.Index+1, err.Err)
}

func (err *ErrArgument) Unwrap() error {
	return err.Err
}

// ErrLink reports a label that could not be linked into an instruction.
type ErrLink struct {
	Index int
	Label string
	Err   error
}

func (err *ErrLink) Error() string {
	return f("instruction %d target %v: %v", err.Index, err.Label, err.Err)
}

func (err *ErrLink) Unwrap() error {
	return err.Err
}
