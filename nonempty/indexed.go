// File: indexed.go
// Role: zero-based positional access and mutation.
// Contract:
//   - GetAt is the only operation here that signals absence.
//   - UpdateAt, RemoveAt and InsertAt never fail; out-of-range indexes
//     clamp or no-op.
//   - Index 0 always addresses the head and never walks the rest.

package nonempty

import "golang.org/x/exp/slices"

// GetAt returns the element at index i.
// It reports false when i is negative or i >= Len().
// Complexity: O(1).
func (l List[T]) GetAt(i int) (T, bool) {
	switch {
	case i == 0:
		return l.head, true
	case i < 0 || i > len(l.rest):
		var zero T
		return zero, false
	default:
		return l.rest[i-1], true
	}
}

// UpdateAt returns l with f applied to the element at index i only.
// i <= 0 updates the head; i >= Len() returns l unchanged.
// Complexity: O(n) when an element of the rest is updated, O(1) otherwise.
func (l List[T]) UpdateAt(i int, f func(T) T) List[T] {
	if i <= 0 {
		return List[T]{head: f(l.head), rest: l.rest}
	}
	if i > len(l.rest) {
		return l
	}
	rest := slices.Clone(l.rest)
	rest[i-1] = f(rest[i-1])

	return build(l.head, rest)
}

// RemoveAt returns l without the element at index i.
//
// Removing index 0 promotes the first element of the rest to head. The one
// refused case is removing the only element (i == 0 on a singleton): l is
// returned unchanged so the result stays non-empty. Negative indexes and
// indexes >= Len() are no-ops as well.
// Complexity: O(n).
func (l List[T]) RemoveAt(i int) List[T] {
	switch {
	case i < 0 || i > len(l.rest):
		return l
	case i == 0:
		if len(l.rest) == 0 {
			return l
		}
		return build(l.rest[0], l.rest[1:])
	default:
		rest := slices.Delete(slices.Clone(l.rest), i-1, i)
		return build(l.head, rest)
	}
}

// InsertAt returns l with x inserted at index i; later elements shift right.
// i <= 0 makes x the new head, pushing the old head into the rest.
// i >= Len() appends x at the end.
// Complexity: O(n).
func (l List[T]) InsertAt(i int, x T) List[T] {
	if i <= 0 {
		return l.Cons(x)
	}
	pos := min(i-1, len(l.rest))
	rest := make([]T, 0, len(l.rest)+1)
	rest = append(rest, l.rest...)
	rest = slices.Insert(rest, pos, x)

	return build(l.head, rest)
}
