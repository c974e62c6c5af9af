package mseq

import "iter"

// FromSlice returns a sequence over the given slice’s elements. The
// sequence is restartable; each iteration reads the slice afresh.
func FromSlice[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}
