package asm

// Array2 is a fixed two element group, used for range selections.
type Array2[T any] [2]T

// Array3 is a fixed three element group, used for HSL colors.
type Array3[T any] [3]T

// Range is a start (inclusive) and end (exclusive) pixel selection.
type Range = Array2[Operand]

// Color is a hue, saturation and level triple.
type Color = Array3[Operand]

// NewArray2 copies a list of exactly two elements into an Array2.
func NewArray2[T any](list []T) (array Array2[T], err error) {
	if len(list) != len(array) {
		err = &ErrArray{Want: len(array), Got: len(list)}
		return
	}
	copy(array[:], list)
	return
}

// Slice returns the elements as a list.
func (array Array2[T]) Slice() []T {
	return []T{array[0], array[1]}
}

// NewArray3 copies a list of exactly three elements into an Array3.
func NewArray3[T any](list []T) (array Array3[T], err error) {
	if len(list) != len(array) {
		err = &ErrArray{Want: len(array), Got: len(list)}
		return
	}
	copy(array[:], list)
	return
}

// Slice returns the elements as a list.
func (array Array3[T]) Slice() []T {
	return []T{array[0], array[1], array[2]}
}
