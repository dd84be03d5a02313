// Package nonempty defines the List type, the Pair helper and the numeric
// constraint used by the aggregate functions.
//
// Errors:
//
//	ErrEmptySlice - MustFromSlice was given an empty slice.
package nonempty

import (
	"errors"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// ErrEmptySlice is the panic value of MustFromSlice on empty input.
var ErrEmptySlice = errors.New("nonempty: slice is empty")

// List is an immutable sequence with at least one element.
//
// The representation is a guaranteed head plus an ordinary (possibly empty)
// rest. It is kept unexported so that callers cannot build a List that
// breaks its own invariants.
//
// Invariants:
//   - rest is never written in place once stored.
//   - rest is always clipped (len == cap), so appending to it reallocates
//     and two Lists sharing a backing array cannot clobber each other.
//   - an empty rest is stored as nil.
type List[T any] struct {
	// head is the guaranteed first element.
	head T

	// rest holds the elements after head, in order.
	rest []T
}

// Pair is a two-element tuple used by Zip and Unzip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Number is satisfied by every type that supports + and *.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// build wraps head and an already-owned rest slice.
// The caller must not keep a reference to rest that it writes through later.
func build[T any](head T, rest []T) List[T] {
	if len(rest) == 0 {
		return List[T]{head: head}
	}

	return List[T]{head: head, rest: slices.Clip(rest)}
}

// fromOwned splits a non-empty owned slice into head and rest.
// It reports false for an empty slice.
func fromOwned[T any](all []T) (List[T], bool) {
	if len(all) == 0 {
		return List[T]{}, false
	}

	return build(all[0], all[1:]), true
}
