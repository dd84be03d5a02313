package nonempty

// Append returns l followed by other. The head of l stays the head.
// Complexity: O(n + m).
func (l List[T]) Append(other List[T]) List[T] {
	rest := make([]T, 0, len(l.rest)+1+len(other.rest))
	rest = append(rest, l.rest...)
	rest = append(rest, other.head)
	rest = append(rest, other.rest...)

	return build(l.head, rest)
}

// Concat flattens a list of lists. The head of the first inner list is the
// head of the result.
// Complexity: O(total elements).
func Concat[T any](ls List[List[T]]) List[T] {
	first := ls.head
	var rest []T
	rest = append(rest, first.rest...)
	for _, inner := range ls.rest {
		rest = append(rest, inner.head)
		rest = append(rest, inner.rest...)
	}

	return build(first.head, rest)
}

// ConcatMap maps every element to a list and flattens the results.
// It is equivalent to Concat(Map(l, f)).
func ConcatMap[T, U any](l List[T], f func(T) List[U]) List[U] {
	return Concat(Map(l, f))
}

// Intersperse places sep between every two adjacent elements.
// There is no leading or trailing separator; a singleton is returned as is.
// Complexity: O(n).
func (l List[T]) Intersperse(sep T) List[T] {
	if len(l.rest) == 0 {
		return l
	}
	rest := make([]T, 0, 2*len(l.rest))
	for _, x := range l.rest {
		rest = append(rest, sep, x)
	}

	return build(l.head, rest)
}

// Zip pairs the elements of a and b by position, truncating to the shorter
// input.
func Zip[A, B any](a List[A], b List[B]) List[Pair[A, B]] {
	return Map2(a, b, func(x A, y B) Pair[A, B] {
		return Pair[A, B]{First: x, Second: y}
	})
}

// Unzip splits a list of pairs into two lists of equal length.
// Complexity: O(n).
func Unzip[A, B any](l List[Pair[A, B]]) (List[A], List[B]) {
	return Map(l, func(p Pair[A, B]) A { return p.First }),
		Map(l, func(p Pair[A, B]) B { return p.Second })
}
