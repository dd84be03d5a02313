package nonempty

// Filter returns the elements that satisfy pred, in order.
// The head is tested like any other element, so the result may be empty.
// Complexity: O(n).
func (l List[T]) Filter(pred func(T) bool) []T {
	var out []T
	for x := range l.Values() {
		if pred(x) {
			out = append(out, x)
		}
	}

	return out
}

// FilterMap applies f to every element and keeps the results f reports as
// present, in order. The result may be empty.
// Complexity: O(n).
func FilterMap[T, U any](l List[T], f func(T) (U, bool)) []U {
	var out []U
	for x := range l.Values() {
		if y, ok := f(x); ok {
			out = append(out, y)
		}
	}

	return out
}

// Partition splits the elements into those satisfying pred and those that
// do not. Both slices keep the original order; either may be empty.
// Complexity: O(n).
func (l List[T]) Partition(pred func(T) bool) (matching, rest []T) {
	for x := range l.Values() {
		if pred(x) {
			matching = append(matching, x)
		} else {
			rest = append(rest, x)
		}
	}

	return matching, rest
}
