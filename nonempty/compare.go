package nonempty

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b List[T]) bool {
	return a.head == b.head && slices.Equal(a.rest, b.rest)
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[A, B any](a List[A], b List[B], eq func(A, B) bool) bool {
	return eq(a.head, b.head) && slices.EqualFunc(a.rest, b.rest, eq)
}

// String formats l the way fmt formats a slice: "[1 2 3]".
func (l List[T]) String() string {
	return fmt.Sprint(l.ToSlice())
}
