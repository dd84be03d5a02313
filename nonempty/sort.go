package nonempty

import (
	"cmp"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Sort returns the elements in ascending natural order.
// The sort is stable.
// Complexity: O(n·log n).
func Sort[T constraints.Ordered](l List[T]) List[T] {
	return l.SortWith(cmp.Compare[T])
}

// SortBy returns the elements ordered by key(x) ascending.
// Elements with equal keys keep their relative order.
// Complexity: O(n·log n) comparisons, each calling key twice.
func SortBy[T any, K constraints.Ordered](l List[T], key func(T) K) List[T] {
	return l.SortWith(func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}

// SortWith returns the elements ordered by compare, which follows the
// cmp.Compare convention (negative, zero, positive). The sort is stable.
// Complexity: O(n·log n).
func (l List[T]) SortWith(compare func(a, b T) int) List[T] {
	all := l.ToSlice()
	slices.SortStableFunc(all, compare)
	sorted, ok := fromOwned(all)
	if !ok {
		// unreachable: sorting preserves length
		return l
	}

	return sorted
}
