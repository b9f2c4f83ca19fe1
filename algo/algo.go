// Package algo provides sequence algorithms over [first, last) ranges of
// stl.Cursor. They depend only on cursor arithmetic and comparison, never on
// the container the cursors came from.
package algo

import (
	"cmp"
	"sort"

	"github.com/d3phys/stl"
)

// Distance returns the number of elements in [first, last).
func Distance[T any](first, last stl.Cursor[T]) int {
	return last.Diff(first)
}

// ForEach calls fn with a pointer to every element of [first, last) in order.
func ForEach[T any](first, last stl.Cursor[T], fn func(*T)) {
	for it := first; it.Less(last); it = it.Next() {
		fn(it.Ptr())
	}
}

// Sort sorts [first, last) in ascending order.
func Sort[T cmp.Ordered](first, last stl.Cursor[T]) {
	SortFunc(first, last, cmp.Less[T])
}

// SortFunc sorts [first, last) by less. The sort is not stable.
func SortFunc[T any](first, last stl.Cursor[T], less func(a, b T) bool) {
	sort.Sort(span[T]{first: first, n: Distance(first, last), less: less})
}

// IsSorted reports whether [first, last) is in ascending order.
func IsSorted[T cmp.Ordered](first, last stl.Cursor[T]) bool {
	return sort.IsSorted(span[T]{first: first, n: Distance(first, last), less: cmp.Less[T]})
}

// Find returns the first cursor in [first, last) whose element equals v, or
// last when there is none.
func Find[T comparable](first, last stl.Cursor[T], v T) stl.Cursor[T] {
	return FindIf(first, last, func(e T) bool { return e == v })
}

// FindIf returns the first cursor in [first, last) whose element satisfies
// pred, or last when there is none.
func FindIf[T any](first, last stl.Cursor[T], pred func(T) bool) stl.Cursor[T] {
	for it := first; it.Less(last); it = it.Next() {
		if pred(it.Get()) {
			return it
		}
	}
	return last
}

// LowerBound returns the first cursor in the sorted range [first, last) whose
// element is not less than v, or last when every element is less.
func LowerBound[T cmp.Ordered](first, last stl.Cursor[T], v T) stl.Cursor[T] {
	n := sort.Search(Distance(first, last), func(i int) bool {
		return *first.At(i) >= v
	})
	return first.Add(n)
}

// span adapts a cursor range to sort.Interface.
type span[T any] struct {
	first stl.Cursor[T]
	n     int
	less  func(a, b T) bool
}

func (s span[T]) Len() int {
	return s.n
}

func (s span[T]) Less(i, j int) bool {
	return s.less(*s.first.At(i), *s.first.At(j))
}

func (s span[T]) Swap(i, j int) {
	a, b := s.first.At(i), s.first.At(j)
	*a, *b = *b, *a
}
