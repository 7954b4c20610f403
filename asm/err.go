package asm

import (
	"errors"

	"github.com/ezrec/prism/opcode"
	"github.com/ezrec/prism/translate"
)

var f = translate.From

var (
	ErrArraySize       = errors.New(f("array size mismatch"))
	ErrMixedAddressing = errors.New(f("mixed addressing modes in one slot"))
)

// ErrArray reports a list that does not match a fixed size group.
type ErrArray struct {
	Want int
	Got  int
}

func (err *ErrArray) Error() string {
	return f("array of %d elements from a list of %d", err.Want, err.Got)
}

func (err *ErrArray) Unwrap() error {
	return ErrArraySize
}

// ErrMixed reports the slot whose operands disagree in addressing mode.
type ErrMixed struct {
	Code opcode.Code
	Slot Slot
}

func (err *ErrMixed) Error() string {
	return f("%v: slot %v mixes immediate and indirect operands", err.Code, err.Slot)
}

func (err *ErrMixed) Unwrap() error {
	return ErrMixedAddressing
}

// ErrInstruction locates an error within a program.
type ErrInstruction struct {
	Index int
	Err   error
}

func (err *ErrInstruction) Error() string {
	return f("instruction %d %v", err.Index, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
