// Package stl provides a growable contiguous Vector with explicit element
// lifetimes, the Storage owning its block, and random-access Cursors over it.
package stl

import (
	"iter"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

var nopLogger = zap.NewNop()

// options holds configuration settings for a Vector
type options struct {
	memory Memory
	logger *zap.Logger
	traits any
}

// Option defines a function type for configuring Vector parameters
type Option func(*options)

// WithMemory sets the Memory admitting the vector's blocks.
// Default: HeapMemory.
func WithMemory(memory Memory) Option {
	return func(o *options) {
		o.memory = memory
	}
}

// WithLogger sets the logger reporting growth and rollbacks.
// Default: no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTraits sets the element traits. The type argument must match the
// vector's element type.
// Default: DefaultTraits.
func WithTraits[T any](traits Traits[T]) Option {
	return func(o *options) {
		o.traits = traits
	}
}

// Vector is a growable contiguous array with explicit element lifetimes.
// The zero value is an empty vector without a block, ready to use.
//
// Operations that reallocate either complete or leave the vector unchanged,
// except growing Resize which may keep the grown capacity after a failed
// construction. A Vector is not safe for concurrent use.
type Vector[T any] struct {
	storage Storage[T]
	logger  *zap.Logger
}

// NewVector creates a vector holding count default-constructed elements in a
// block of exactly count slots.
func NewVector[T any](count int, ops ...Option) (*Vector[T], error) {
	var opts options
	for _, op := range ops {
		op(&opts)
	}

	var traits Traits[T]
	if opts.traits != nil {
		t, ok := opts.traits.(Traits[T])
		if !ok {
			var zero T
			return nil, errors.AssertionFailedf("stl: traits %T do not describe %T", opts.traits, zero)
		}
		traits = t
	}

	s, err := NewStorage(count, traits, opts.memory)
	if err != nil {
		return nil, err
	}
	v := &Vector[T]{storage: s, logger: opts.logger}
	for v.storage.size < count {
		i := v.storage.size
		if err := v.storage.traits.Construct(&v.storage.block[i]); err != nil {
			clear(v.storage.block[i : i+1])
			v.storage.Release()
			return nil, constructionFailed(err, "constructing", i)
		}
		v.storage.size++
	}
	return v, nil
}

func (v *Vector[T]) init() {
	if v.storage.traits == nil {
		v.storage.traits = DefaultTraits[T]()
	}
	if v.storage.memory == nil {
		v.storage.memory = HeapMemory()
	}
}

func (v *Vector[T]) log() *zap.Logger {
	if v.logger == nil {
		return nopLogger
	}
	return v.logger
}

// Len returns the current number of elements in the vector.
func (v *Vector[T]) Len() int {
	return v.storage.Len()
}

// Cap returns the current capacity of the vector.
func (v *Vector[T]) Cap() int {
	return v.storage.Cap()
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.storage.size == 0
}

// At retrieves the element at the specified index.
// Fails with ErrOutOfRange unless 0 <= index < Len().
func (v *Vector[T]) At(index int) (T, error) {
	if index < 0 || index >= v.storage.size {
		var zero T
		return zero, outOfRange(index, v.storage.size)
	}
	return v.storage.block[index], nil
}

// Ref returns a pointer to the element at the specified index, valid until the
// vector reallocates. Same bound as At: raw slots past Len() are never handed
// out.
func (v *Vector[T]) Ref(index int) (*T, error) {
	if index < 0 || index >= v.storage.size {
		return nil, outOfRange(index, v.storage.size)
	}
	return &v.storage.block[index], nil
}

// Set replaces the element at the specified index, destroying the old one.
func (v *Vector[T]) Set(index int, value T) error {
	p, err := v.Ref(index)
	if err != nil {
		return err
	}
	v.storage.traits.Destroy(p)
	*p = value
	return nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	return v.At(0)
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	return v.At(v.storage.size - 1)
}

// Begin returns a cursor at the first element.
func (v *Vector[T]) Begin() Cursor[T] {
	return Cursor[T]{block: v.storage.block}
}

// End returns a cursor one past the last element.
func (v *Vector[T]) End() Cursor[T] {
	return Cursor[T]{block: v.storage.block, pos: v.storage.size}
}

// Range iterates over elements using a callback function.
func (v *Vector[T]) Range(fn func(index int, v T) bool) {
	for i := 0; i < v.storage.size; i++ {
		if !fn(i, v.storage.block[i]) {
			return
		}
	}
}

// Iter provides an iterator function compatible with range loops.
//
// Example:
//
//	for index, v := range v.Iter() {
//		// do something
//	}
func (v *Vector[T]) Iter() iter.Seq2[int, T] {
	return v.Range
}

// Append moves values to the end of the vector one by one. When the vector is
// full it first grows to (1 + Cap()) * 2 slots; the incoming value is placed in
// the new block as part of the same step, so a failed growth leaves the vector
// as it was before that value. Values appended before a failure stay.
func (v *Vector[T]) Append(values ...T) error {
	for i := range values {
		if v.storage.size == v.Cap() {
			if err := v.grow((1+v.Cap())*2, &values[i]); err != nil {
				return err
			}
			continue
		}
		v.storage.block[v.storage.size] = values[i]
		v.storage.size++
	}
	return nil
}

// Reserve grows the block to exactly newCapacity slots, relocating every
// element. It does nothing when newCapacity <= Cap(). On failure the vector is
// unchanged.
//
// Allocation failure is reported by the vector's Memory. With HeapMemory a
// block the process cannot hold aborts the program, so vectors that may grow
// large should be given a Budget.
func (v *Vector[T]) Reserve(newCapacity int) error {
	if newCapacity <= v.Cap() {
		return nil
	}
	return v.grow(newCapacity, nil)
}

// grow builds a block of newCapacity slots holding the relocated elements and
// the optional incoming value, then swaps it in. Nothing observable changes
// until the swap.
func (v *Vector[T]) grow(newCapacity int, value *T) error {
	v.init()
	next, err := NewStorage(newCapacity, v.storage.traits, v.storage.memory)
	if err != nil {
		return v.rollback(err)
	}

	relocator, rebuild := v.storage.traits.(Relocator[T])
	if rebuild {
		for next.size < v.storage.size {
			i := next.size
			if err := relocator.Relocate(&next.block[i], &v.storage.block[i]); err != nil {
				clear(next.block[i : i+1])
				next.Release()
				return v.rollback(constructionFailed(err, "relocating", i))
			}
			next.size++
		}
	} else {
		next.size = copy(next.block, v.storage.block[:v.storage.size])
	}
	if value != nil {
		next.block[next.size] = *value
		next.size++
	}

	oldCapacity := v.Cap()
	v.storage.swap(&next)

	// next holds the previous block now.
	if !rebuild {
		next.forget()
	}
	next.Release()

	if ce := v.log().Check(zap.DebugLevel, "vector grown"); ce != nil {
		ce.Write(
			zap.Int("from", oldCapacity),
			zap.Int("to", newCapacity),
			zap.Int("len", v.storage.size),
		)
	}
	return nil
}

func (v *Vector[T]) rollback(err error) error {
	if ce := v.log().Check(zap.WarnLevel, "vector growth rolled back"); ce != nil {
		ce.Write(
			zap.Int("cap", v.Cap()),
			zap.Int("len", v.storage.size),
			zap.Error(err),
		)
	}
	return err
}

// Resize changes the number of elements to newSize. Shrinking destroys the
// tail. Growing reserves newSize slots and default-constructs the new
// elements.
//
// Growing does not roll back: if a construction fails, the elements built so
// far stay, and the capacity stays grown.
func (v *Vector[T]) Resize(newSize int) error {
	return v.resize(newSize, nil)
}

// ResizeFill is Resize with new elements copied from fill.
func (v *Vector[T]) ResizeFill(newSize int, fill T) error {
	return v.resize(newSize, &fill)
}

func (v *Vector[T]) resize(newSize int, fill *T) error {
	if newSize < 0 {
		return errors.Wrapf(ErrAllocation, "negative size %d", newSize)
	}
	if newSize <= v.storage.size {
		v.storage.destroy(newSize, v.storage.size)
		v.storage.size = newSize
		return nil
	}

	if err := v.Reserve(newSize); err != nil {
		return err
	}
	traits := v.storage.traits
	for v.storage.size < newSize {
		i := v.storage.size
		slot := &v.storage.block[i]
		var err error
		if fill != nil {
			err = traits.Copy(slot, fill)
		} else {
			err = traits.Construct(slot)
		}
		if err != nil {
			clear(v.storage.block[i : i+1])
			v.log().Warn("vector resize stopped",
				zap.Int("len", v.storage.size),
				zap.Int("want", newSize),
				zap.Error(err),
			)
			if fill != nil {
				return constructionFailed(err, "copying", i)
			}
			return constructionFailed(err, "constructing", i)
		}
		v.storage.size++
	}
	return nil
}

// Clear destroys all elements. The block and capacity are kept.
func (v *Vector[T]) Clear() {
	v.storage.destroy(0, v.storage.size)
	v.storage.size = 0
}

// Clone returns an independent copy: a block of the same capacity holding a
// copy of every element. On failure the partial copy is destroyed and the
// source is untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	v.init()
	s, err := NewStorage(v.Cap(), v.storage.traits, v.storage.memory)
	if err != nil {
		return nil, err
	}
	for s.size < v.storage.size {
		i := s.size
		if err := s.traits.Copy(&s.block[i], &v.storage.block[i]); err != nil {
			clear(s.block[i : i+1])
			s.Release()
			return nil, constructionFailed(err, "copying", i)
		}
		s.size++
	}
	return &Vector[T]{storage: s, logger: v.logger}, nil
}

// Move transfers the vector's block and elements to a new Vector. The receiver
// is left empty, without a block, and usable.
func (v *Vector[T]) Move() *Vector[T] {
	v.init()
	moved := &Vector[T]{
		storage: Storage[T]{traits: v.storage.traits, memory: v.storage.memory},
		logger:  v.logger,
	}
	moved.storage.swap(&v.storage)
	return moved
}

// MoveFrom releases the vector's own elements and takes over src's block and
// elements. src is left empty, without a block.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Release()
	src.init()
	v.storage.traits = src.storage.traits
	v.storage.memory = src.storage.memory
	v.storage.swap(&src.storage)
}

// Release destroys all elements and frees the block. The vector stays usable
// as an empty vector.
func (v *Vector[T]) Release() {
	v.storage.Release()
}
