package mslices

import "slices"

// This package complements the Go standard library’s package of the
// same name with broadly-useful tools that the standard library lacks.

// Of returns a slice out of the given arguments. It’s syntactic sugar
// to capitalize on Go’s type inference, similar to
// [this declined feature proposal](https://github.com/golang/go/issues/47709).
func Of[T any](pieces ...T) []T {
	return slices.Clone(pieces)
}

// Indexes is like slices.Index but returns every matching index, in
// ascending order. If nothing matches it returns an empty, non-nil slice.
func Indexes[S ~[]E, E comparable](s S, v E) []int {
	indexes := []int{}

	for i, el := range s {
		if el == v {
			indexes = append(indexes, i)
		}
	}

	return indexes
}
