package nonempty

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// IsEmpty always reports false. It exists so List reads like other
// collections at call sites.
func (l List[T]) IsEmpty() bool {
	return false
}

// IsSingleton reports whether l holds exactly one element.
func (l List[T]) IsSingleton() bool {
	return len(l.rest) == 0
}

// Len returns the number of elements, always >= 1.
func (l List[T]) Len() int {
	return 1 + len(l.rest)
}

// Head returns the first element.
func (l List[T]) Head() T {
	return l.head
}

// Tail returns every element after the head as a fresh slice.
// The result is empty (nil) for a singleton.
func (l List[T]) Tail() []T {
	return slices.Clone(l.rest)
}

// Uncons returns the head and the tail in one call.
func (l List[T]) Uncons() (T, []T) {
	return l.head, l.Tail()
}

// Last returns the final element.
func (l List[T]) Last() T {
	if len(l.rest) == 0 {
		return l.head
	}

	return l.rest[len(l.rest)-1]
}

// ToSlice returns all elements, head first, as a fresh slice of length Len().
func (l List[T]) ToSlice() []T {
	all := make([]T, 0, l.Len())
	all = append(all, l.head)

	return append(all, l.rest...)
}

// Take keeps the head and then at most n-1 further elements.
// The head is kept even when n <= 0, so the result is never empty.
//
// Note: l.Take(n).Append(l.Drop(n)) is not l in general; see the package
// documentation.
func (l List[T]) Take(n int) List[T] {
	k := min(max(n-1, 0), len(l.rest))

	return build(l.head, l.rest[:k])
}

// Drop removes up to n leading elements, one at a time, while a next
// element exists. The last element is never dropped: when n reaches Len()
// the final element survives as the head. n <= 0 returns l unchanged.
func (l List[T]) Drop(n int) List[T] {
	k := min(max(n, 0), len(l.rest))
	if k == 0 {
		return l
	}

	return build(l.rest[k-1], l.rest[k:])
}

// Pop drops the head unless l is a singleton, in which case l is returned.
func (l List[T]) Pop() List[T] {
	return l.Drop(1)
}

// DropTail returns the singleton [l.Head()].
func (l List[T]) DropTail() List[T] {
	return Singleton(l.head)
}

// ReplaceHead returns l with its head replaced by x.
func (l List[T]) ReplaceHead(x T) List[T] {
	return List[T]{head: x, rest: l.rest}
}

// ReplaceTail returns l with everything after the head replaced by a copy
// of rest.
func (l List[T]) ReplaceTail(rest []T) List[T] {
	return New(l.head, rest...)
}

// Reverse returns the elements in reverse order.
// Complexity: O(n).
func (l List[T]) Reverse() List[T] {
	all := l.ToSlice()
	slices.Reverse(all)
	reversed, _ := fromOwned(all)

	return reversed
}

// All reports whether every element satisfies pred.
func (l List[T]) All(pred func(T) bool) bool {
	for x := range l.Values() {
		if !pred(x) {
			return false
		}
	}

	return true
}

// Any reports whether at least one element satisfies pred.
func (l List[T]) Any(pred func(T) bool) bool {
	for x := range l.Values() {
		if pred(x) {
			return true
		}
	}

	return false
}

// Member reports whether x occurs in l.
func Member[T comparable](l List[T], x T) bool {
	return l.head == x || slices.Contains(l.rest, x)
}

// Minimum returns the smallest element. It never fails.
func Minimum[T constraints.Ordered](l List[T]) T {
	return l.Reduce(func(acc, x T) T { return min(acc, x) })
}

// Maximum returns the largest element. It never fails.
func Maximum[T constraints.Ordered](l List[T]) T {
	return l.Reduce(func(acc, x T) T { return max(acc, x) })
}

// Sum returns the sum of all elements.
func Sum[T Number](l List[T]) T {
	return l.Reduce(func(acc, x T) T { return acc + x })
}

// Product returns the product of all elements.
func Product[T Number](l List[T]) T {
	return l.Reduce(func(acc, x T) T { return acc * x })
}

// Dedup collapses runs of equal adjacent elements into one.
//
//	Dedup([1 1 2 2 2 1]) == [1 2 1]
func Dedup[T comparable](l List[T]) List[T] {
	var rest []T
	prev := l.head
	for _, x := range l.rest {
		if x != prev {
			rest = append(rest, x)
			prev = x
		}
	}

	return build(l.head, rest)
}

// Uniq keeps only the first occurrence of every value, in order.
//
//	Uniq([1 2 1 3 2]) == [1 2 3]
func Uniq[T comparable](l List[T]) List[T] {
	seen := map[T]struct{}{l.head: {}}
	var rest []T
	for _, x := range l.rest {
		if _, dup := seen[x]; dup {
			continue
		}
		seen[x] = struct{}{}
		rest = append(rest, x)
	}

	return build(l.head, rest)
}
