package nonempty

// Map applies f to every element, keeping order.
// Complexity: O(n).
func Map[T, U any](l List[T], f func(T) U) List[U] {
	return IndexedMap(l, func(_ int, x T) U { return f(x) })
}

// IndexedMap applies f to every element together with its index.
// The head has index 0; indexes increase by one across the rest.
// Complexity: O(n).
func IndexedMap[T, U any](l List[T], f func(i int, x T) U) List[U] {
	head := f(0, l.head)
	if len(l.rest) == 0 {
		return Singleton(head)
	}
	rest := make([]U, len(l.rest))
	for i, x := range l.rest {
		rest[i] = f(i+1, x)
	}

	return build(head, rest)
}

// Map2 combines two lists position by position.
// The heads are always combined; the result is as long as the shorter input.
// Complexity: O(min(n1, n2)).
func Map2[A, B, U any](la List[A], lb List[B], f func(A, B) U) List[U] {
	n := min(len(la.rest), len(lb.rest))
	rest := make([]U, n)
	for i := range rest {
		rest[i] = f(la.rest[i], lb.rest[i])
	}

	return build(f(la.head, lb.head), rest)
}

// Map3 is Map2 over three lists.
func Map3[A, B, C, U any](la List[A], lb List[B], lc List[C], f func(A, B, C) U) List[U] {
	n := min(len(la.rest), len(lb.rest), len(lc.rest))
	rest := make([]U, n)
	for i := range rest {
		rest[i] = f(la.rest[i], lb.rest[i], lc.rest[i])
	}

	return build(f(la.head, lb.head, lc.head), rest)
}

// Map4 is Map2 over four lists.
func Map4[A, B, C, D, U any](
	la List[A], lb List[B], lc List[C], ld List[D],
	f func(A, B, C, D) U,
) List[U] {
	n := min(len(la.rest), len(lb.rest), len(lc.rest), len(ld.rest))
	rest := make([]U, n)
	for i := range rest {
		rest[i] = f(la.rest[i], lb.rest[i], lc.rest[i], ld.rest[i])
	}

	return build(f(la.head, lb.head, lc.head, ld.head), rest)
}

// Map5 is Map2 over five lists.
func Map5[A, B, C, D, E, U any](
	la List[A], lb List[B], lc List[C], ld List[D], le List[E],
	f func(A, B, C, D, E) U,
) List[U] {
	n := min(len(la.rest), len(lb.rest), len(lc.rest), len(ld.rest), len(le.rest))
	rest := make([]U, n)
	for i := range rest {
		rest[i] = f(la.rest[i], lb.rest[i], lc.rest[i], ld.rest[i], le.rest[i])
	}

	return build(f(la.head, lb.head, lc.head, ld.head, le.head), rest)
}

// Foldl folds from the left starting at seed: the head is folded first,
// then every element of the rest in order.
//
//	Foldl([a b c], s, f) == f(f(f(s, a), b), c)
func Foldl[T, A any](l List[T], seed A, f func(acc A, x T) A) A {
	acc := f(seed, l.head)
	for _, x := range l.rest {
		acc = f(acc, x)
	}

	return acc
}

// Foldr folds the rest from the right starting at seed, then folds the head
// in last.
//
//	Foldr([a b c], s, f) == f(a, f(b, f(c, s)))
func Foldr[T, A any](l List[T], seed A, f func(x T, acc A) A) A {
	acc := seed
	for i := len(l.rest) - 1; i >= 0; i-- {
		acc = f(l.rest[i], acc)
	}

	return f(l.head, acc)
}

// Reduce folds from the left using the head as the initial accumulator.
// It is total: there is always a head to start from.
//
//	[a b c].Reduce(f) == f(f(a, b), c)
func (l List[T]) Reduce(f func(acc, x T) T) T {
	acc := l.head
	for _, x := range l.rest {
		acc = f(acc, x)
	}

	return acc
}

// Scanl returns every intermediate accumulator of a left fold, starting with
// seed itself, so the result has Len()+1 elements.
func Scanl[T, A any](l List[T], seed A, f func(acc A, x T) A) List[A] {
	rest := make([]A, 0, len(l.rest)+1)
	acc := f(seed, l.head)
	rest = append(rest, acc)
	for _, x := range l.rest {
		acc = f(acc, x)
		rest = append(rest, acc)
	}

	return build(seed, rest)
}
