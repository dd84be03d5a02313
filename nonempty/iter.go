package nonempty

import "iter"

// Values returns an iterator over the elements, head first.
//
//	for x := range l.Values() { ... }
func (l List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(l.head) {
			return
		}
		for _, x := range l.rest {
			if !yield(x) {
				return
			}
		}
	}
}

// Indexed returns an iterator over (index, element) pairs; the head has
// index 0.
func (l List[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if !yield(0, l.head) {
			return
		}
		for i, x := range l.rest {
			if !yield(i+1, x) {
				return
			}
		}
	}
}
