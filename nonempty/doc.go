// Package nonempty provides List[T], an immutable sequence that is
// guaranteed by construction to hold at least one element.
//
// 🚀 Why a non-empty list?
//
//	Code that already knows a collection cannot be empty still pays for
//	"what if it is?" checks on every Head, Max or Reduce. List moves that
//	knowledge into the type: Head, Last, Reduce, Minimum, Maximum, Sum and
//	Product are total functions and never return an absence signal.
//
// ✨ Key properties:
//   - No empty state: the zero value List[T]{} is the one-element list
//     holding T's zero value.
//   - Value semantics: every operation returns a new List and leaves its
//     inputs untouched. Slices handed in are copied, slices handed out are
//     fresh copies.
//   - Emptiness is tracked by the return type: operations that cannot empty
//     the list (Map, Sort, Reverse, Append, Cons, InsertAt, UpdateAt, Take,
//     Drop, ...) return a List; operations that can (Filter, FilterMap,
//     Partition, Tail) return an ordinary []T.
//   - Indexed mutation never fails: UpdateAt, RemoveAt and InsertAt either
//     clamp or no-op on out-of-range indices. RemoveAt refuses to remove the
//     last remaining element.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nelist/nonempty"
//
//	l := nonempty.New(3, 1, 2)              // [3 1 2]
//	top := nonempty.Maximum(l)              // 3, no ok-flag needed
//	sorted := nonempty.Sort(l)              // [1 2 3]
//	evens := l.Filter(func(x int) bool {    // []int{2}, may be empty
//		return x%2 == 0
//	})
//
//	if l2, ok := nonempty.FromSlice(input); ok {
//		fmt.Println(l2.Head())
//	}
//
// Methods vs. functions:
//
//	Operations that keep the element type are methods (l.Take, l.Filter,
//	l.InsertAt, ...). Operations that change the element type or need a
//	tighter constraint than any are package functions (Map, Foldl, Sort,
//	Sum, Member, ...), since Go methods cannot declare type parameters.
//
// Take / Drop asymmetry:
//
//	Take always keeps the head, even for n <= 0, while Drop removes leading
//	elements but never the last one. As a result
//
//	    l.Take(n).Append(l.Drop(n))
//
//	does NOT rebuild l in general (Take(0) keeps the head that Drop(0) also
//	keeps). Callers rely on both behaviors, so they are kept as they are.
//
// Complexity:
//
//   - Head, IsEmpty, Cons, GetAt(0), UpdateAt(0): O(1) plus the copy of rest
//     where a new List is built.
//   - Indexed operations: O(n) worst case, bounded by the index for lookups.
//   - Sort, SortBy, SortWith: O(n·log n), stable.
//
// See example_test.go for runnable walkthroughs.
package nonempty
