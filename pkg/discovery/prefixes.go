package discovery

import "iter"

// PrefixSeq is a lazy view over the non-empty prefixes of a slice,
// shortest first. Yielded prefixes alias the original slice rather than
// copying it. A PrefixSeq may be iterated any number of times, from
// either end.
type PrefixSeq[T any] struct {
	s []T
}

// IterPrefixes returns the sequence of prefixes of s: the first element,
// the first two elements, and so on up to all of s. An empty or nil slice
// yields an empty sequence.
func IterPrefixes[T any](s []T) PrefixSeq[T] {
	return PrefixSeq[T]{s: s}
}

// Len returns the number of prefixes, which equals the length of the
// underlying slice.
func (p PrefixSeq[T]) Len() int { return len(p.s) }

// All iterates the prefixes from shortest to longest.
func (p PrefixSeq[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for n := 1; n <= len(p.s); n++ {
			if !yield(p.s[:n]) {
				return
			}
		}
	}
}

// Backward iterates the prefixes from longest to shortest.
func (p PrefixSeq[T]) Backward() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for n := len(p.s); n >= 1; n-- {
			if !yield(p.s[:n]) {
				return
			}
		}
	}
}
