// Package nelist is the home of nonempty, a generic list type that can never
// be empty.
//
// 🚀 What is nelist?
//
//	A small, dependency-light library that moves "this collection has at
//	least one element" from a runtime check into the type system:
//		• List[T]: head plus ordinary rest, immutable, value semantics
//		• Total accessors: Head, Last, Reduce, Minimum, Maximum, Sum, Product
//		• Emptiness in the return type: List when the result cannot be empty,
//		  []T when it can (Filter, FilterMap, Partition, Tail)
//		• Forgiving indexed edits: UpdateAt, RemoveAt, InsertAt clamp or no-op
//		• Go 1.23 iterators: Values, Indexed, FromSeq
//
// ✨ Why choose nelist?
//
//   - No more "if len(xs) == 0" before every xs[0]
//   - Pure functions: no operation mutates its inputs
//   - Interoperates with plain slices in both directions
//
// Under the hood:
//
//	nonempty/  the List type and its full operation catalog
//
// Quick example:
//
//	l := nonempty.Range(1, 5)   // [1 2 3 4 5]
//	l.Drop(100)                 // [5], never empty
//	l.Take(0)                   // [1], the head is always kept
//
//	go get github.com/katalvlaran/nelist/nonempty
package nelist
