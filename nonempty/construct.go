package nonempty

import (
	"iter"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Singleton returns the one-element list [x].
// Complexity: O(1).
func Singleton[T any](x T) List[T] {
	return List[T]{head: x}
}

// New returns the list [head, rest...].
// rest may be empty; head alone satisfies the non-empty guarantee.
// The rest slice is copied, so later writes to it do not affect the List.
// Complexity: O(len(rest)).
func New[T any](head T, rest ...T) List[T] {
	return build(head, slices.Clone(rest))
}

// Repeat returns a list of n copies of x.
// For n < 1 the result still holds exactly one x.
// Complexity: O(n).
func Repeat[T any](n int, x T) List[T] {
	if n <= 1 {
		return Singleton(x)
	}
	rest := make([]T, n-1)
	for i := range rest {
		rest[i] = x
	}

	return build(x, rest)
}

// Range returns the inclusive integer range [a, a+1, ..., b].
// When b < a the result is [a]: the head is always included.
// Complexity: O(b-a).
func Range[T constraints.Integer](a, b T) List[T] {
	if b <= a {
		return Singleton(a)
	}
	var rest []T
	// Stepping with x < b before incrementing keeps the loop safe at the
	// upper bound of T.
	for x := a; x < b; {
		x++
		rest = append(rest, x)
	}

	return build(a, rest)
}

// FromSlice converts an ordinary slice into a List.
// It reports false when s is empty. The slice is copied.
// Complexity: O(len(s)).
func FromSlice[T any](s []T) (List[T], bool) {
	return fromOwned(slices.Clone(s))
}

// MustFromSlice is like FromSlice but panics with ErrEmptySlice when s is
// empty. Use it only where non-emptiness is already established.
func MustFromSlice[T any](s []T) List[T] {
	l, ok := FromSlice(s)
	if !ok {
		panic(ErrEmptySlice)
	}

	return l
}

// WithDefault converts s into a List, falling back to [def] when s is empty.
func WithDefault[T any](def T, s []T) List[T] {
	if l, ok := FromSlice(s); ok {
		return l
	}

	return Singleton(def)
}

// WithExample converts s into a List, returning example unchanged when s is
// empty.
func WithExample[T any](example List[T], s []T) List[T] {
	if l, ok := FromSlice(s); ok {
		return l
	}

	return example
}

// FromSeq collects seq into a List. It reports false when seq yields nothing.
func FromSeq[T any](seq iter.Seq[T]) (List[T], bool) {
	var all []T
	for v := range seq {
		all = append(all, v)
	}

	return fromOwned(all)
}

// Cons returns a new list with x as its head; the old head becomes the first
// element of the rest.
// Complexity: O(n).
func (l List[T]) Cons(x T) List[T] {
	rest := make([]T, 0, len(l.rest)+1)
	rest = append(rest, l.head)
	rest = append(rest, l.rest...)

	return build(x, rest)
}

// Generate applies f to every pair of adjacent elements, in order:
// [f(a0, a1), f(a1, a2), ...]. The result is empty for a singleton.
// Complexity: O(n).
func Generate[T, U any](l List[T], f func(a, b T) U) []U {
	if len(l.rest) == 0 {
		return nil
	}
	out := make([]U, 0, len(l.rest))
	prev := l.head
	for _, x := range l.rest {
		out = append(out, f(prev, x))
		prev = x
	}

	return out
}
