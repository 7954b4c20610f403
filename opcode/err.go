package opcode

import (
	"errors"

	"github.com/ezrec/prism/translate"
)

var f = translate.From

var (
	// Registry contract errors
	ErrOpcodeRange     = errors.New(f("opcode does not fit the header"))
	ErrOpcodeDuplicate = errors.New(f("opcode duplicated"))
	ErrFlagInvalid     = errors.New(f("flag outside the addressing bits"))
	ErrFlagOverlap     = errors.New(f("flags overlap"))
	ErrRegisterOverlap = errors.New(f("register address overlaps"))
	ErrRegisterRange   = errors.New(f("general registers exceed the address space"))
	ErrDelayDuplicate  = errors.New(f("delay code duplicated"))

	// Registry file errors
	ErrEntryMissing = errors.New(f("entry missing"))
	ErrEntryUnknown = errors.New(f("entry unknown"))
)

// ErrTable reports which entry of a registry table broke the contract.
type ErrTable struct {
	Table string
	Entry string
	Err   error
}

func (err *ErrTable) Error() string {
	return f("registry %v: %v: %v", err.Table, err.Entry, err.Err)
}

func (err *ErrTable) Unwrap() error {
	return err.Err
}
