package stl

import (
	"cmp"
	"unsafe"
)

// Cursor is a random-access position in a Vector's block: an element, or one
// past the last live element. It does not own anything and does no bounds
// checking; indexing outside the block panics like any slice access, indexing
// raw slots reads zero values.
//
// A Cursor is valid until the Vector it came from reallocates (Reserve, a
// growing Append or Resize) or drops elements (Clear, a shrinking Resize,
// Release). Using it afterwards reads a stale block. Cursors from different
// vectors must not be compared or subtracted.
type Cursor[T any] struct {
	block []T
	pos   int
}

// Get returns the element under the cursor.
func (c Cursor[T]) Get() T {
	return c.block[c.pos]
}

// Ptr returns a pointer to the element under the cursor.
func (c Cursor[T]) Ptr() *T {
	return &c.block[c.pos]
}

// Set overwrites the element under the cursor.
func (c Cursor[T]) Set(v T) {
	c.block[c.pos] = v
}

// At returns a pointer to the element n positions away from the cursor.
func (c Cursor[T]) At(n int) *T {
	return &c.block[c.pos+n]
}

// Next returns the cursor one element forward.
func (c Cursor[T]) Next() Cursor[T] {
	return c.Add(1)
}

// Prev returns the cursor one element back.
func (c Cursor[T]) Prev() Cursor[T] {
	return c.Add(-1)
}

// Add returns the cursor moved by n elements; n may be negative.
func (c Cursor[T]) Add(n int) Cursor[T] {
	c.pos += n
	return c
}

// Sub returns the cursor moved back by n elements.
func (c Cursor[T]) Sub(n int) Cursor[T] {
	return c.Add(-n)
}

// Diff returns the signed number of elements from o to c, so that
// o.Add(c.Diff(o)) equals c.
func (c Cursor[T]) Diff(o Cursor[T]) int {
	return c.pos - o.pos
}

// Offset returns the index of the cursor within its block.
func (c Cursor[T]) Offset() int {
	return c.pos
}

// Equal reports whether both cursors point at the same slot of the same block.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.pos == o.pos && unsafe.SliceData(c.block) == unsafe.SliceData(o.block)
}

// Less reports whether c is before o.
func (c Cursor[T]) Less(o Cursor[T]) bool {
	return c.pos < o.pos
}

// Compare returns -1, 0 or +1 as c is before, at or after o.
func (c Cursor[T]) Compare(o Cursor[T]) int {
	return cmp.Compare(c.pos, o.pos)
}
