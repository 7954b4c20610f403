package internal

import (
	"iter"
)

// IterSeqFlatten yields every element of every slice produced by seq.
func IterSeqFlatten[T any](seq iter.Seq[[]T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for vals := range seq {
			for _, val := range vals {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}
