package stl

import "github.com/cockroachdb/errors"

// Storage owns one block of capacity element slots and the count of live
// elements in it. Slots [0, Len()) hold live elements, slots [Len(), Cap())
// are raw: they hold the zero value and are never observed as elements.
//
// Storage does no bounds checking and never grows; it only ties the block's
// lifetime to the lifetime of the elements in it. Ownership of a block is
// exclusive and is transferred, never duplicated.
type Storage[T any] struct {
	block  []T
	size   int
	traits Traits[T]
	memory Memory
}

// NewStorage allocates a block for capacity elements without constructing any
// of them. A zero capacity yields no block. The block is admitted by memory
// (HeapMemory when nil) and its live elements are destroyed through traits
// (DefaultTraits when nil).
func NewStorage[T any](capacity int, traits Traits[T], memory Memory) (Storage[T], error) {
	if traits == nil {
		traits = DefaultTraits[T]()
	}
	if memory == nil {
		memory = HeapMemory()
	}

	s := Storage[T]{traits: traits, memory: memory}
	if capacity == 0 {
		return s, nil
	}

	sz, err := blockBytes[T](capacity)
	if err != nil {
		return s, err
	}
	if err := memory.Alloc(sz); err != nil {
		if !errors.Is(err, ErrAllocation) {
			err = errors.Mark(err, ErrAllocation)
		}
		return s, err
	}
	s.block = make([]T, capacity)
	return s, nil
}

// Len returns the number of live elements.
func (s *Storage[T]) Len() int {
	return s.size
}

// Cap returns the number of slots in the block.
func (s *Storage[T]) Cap() int {
	return len(s.block)
}

// Release destroys every live element in index order, then returns the block
// to its Memory. Releasing an empty or already released Storage does nothing.
func (s *Storage[T]) Release() {
	s.destroy(0, s.size)
	s.size = 0
	if s.block == nil {
		return
	}
	sz, _ := blockBytes[T](len(s.block))
	s.block = nil
	s.memory.Free(sz)
}

// destroy ends the lifetime of the elements in [from, to) and returns their
// slots to the raw state.
func (s *Storage[T]) destroy(from, to int) {
	for i := from; i < to; i++ {
		s.traits.Destroy(&s.block[i])
	}
	clear(s.block[from:to])
}

// forget returns the live elements to the raw state without destroying them,
// after their ownership moved elsewhere.
func (s *Storage[T]) forget() {
	clear(s.block[:s.size])
	s.size = 0
}

// swap exchanges the blocks and sizes of two storages sharing traits and memory.
func (s *Storage[T]) swap(o *Storage[T]) {
	s.block, o.block = o.block, s.block
	s.size, o.size = o.size, s.size
}
