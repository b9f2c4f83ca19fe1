package stl

// Traits describe how a container constructs, copies and destroys elements of
// type T in raw slots. A slot handed to Construct or Copy holds the zero value
// and is not yet live; a slot handed to Destroy is live. Destroy must not fail.
//
// Relocation (moving live elements into a larger block) is not part of Traits:
// by default an element is moved by plain assignment, which cannot fail. Types
// that cannot be moved that way implement Relocator on their traits instead.
type Traits[T any] interface {
	Construct(slot *T) error
	Copy(dst, src *T) error
	Destroy(slot *T)
}

// Relocator is implemented by traits whose elements must be rebuilt, not moved,
// when a container grows. Relocate builds dst from src and leaves src intact;
// the originals are destroyed only after every element was relocated.
type Relocator[T any] interface {
	Relocate(dst, src *T) error
}

// Initializer is implemented by element types that need work beyond the zero
// value to become live. Init is called on a zeroed slot.
type Initializer interface {
	Init() error
}

// Copier is implemented by element types whose copies must not share state
// with the source. CopyFrom is called on a zeroed slot.
type Copier[T any] interface {
	CopyFrom(src *T) error
}

// Destroyer is implemented by element types that hold resources released at
// the end of their lifetime.
type Destroyer interface {
	Destroy()
}

// DefaultTraits returns the traits derived from the element type's method set:
// Initializer, Copier and Destroyer are honoured when *T implements them,
// everything else is plain zeroing and assignment.
func DefaultTraits[T any]() Traits[T] {
	var p *T
	_, init := any(p).(Initializer)
	_, copier := any(p).(Copier[T])
	_, destroyer := any(p).(Destroyer)
	return defaultTraits[T]{init: init, copier: copier, destroyer: destroyer}
}

type defaultTraits[T any] struct {
	init      bool
	copier    bool
	destroyer bool
}

func (t defaultTraits[T]) Construct(slot *T) error {
	var zero T
	*slot = zero
	if t.init {
		return any(slot).(Initializer).Init()
	}
	return nil
}

func (t defaultTraits[T]) Copy(dst, src *T) error {
	if t.copier {
		var zero T
		*dst = zero
		return any(dst).(Copier[T]).CopyFrom(src)
	}
	*dst = *src
	return nil
}

func (t defaultTraits[T]) Destroy(slot *T) {
	if t.destroyer {
		any(slot).(Destroyer).Destroy()
	}
}

// FuncTraits builds Traits from plain functions. A nil function falls back to
// DefaultTraits for that operation.
type FuncTraits[T any] struct {
	ConstructFunc func(slot *T) error
	CopyFunc      func(dst, src *T) error
	DestroyFunc   func(slot *T)
}

// Construct calls ConstructFunc.
func (f FuncTraits[T]) Construct(slot *T) error {
	if f.ConstructFunc == nil {
		return DefaultTraits[T]().Construct(slot)
	}
	return f.ConstructFunc(slot)
}

// Copy calls CopyFunc.
func (f FuncTraits[T]) Copy(dst, src *T) error {
	if f.CopyFunc == nil {
		return DefaultTraits[T]().Copy(dst, src)
	}
	return f.CopyFunc(dst, src)
}

// Destroy calls DestroyFunc.
func (f FuncTraits[T]) Destroy(slot *T) {
	if f.DestroyFunc == nil {
		DefaultTraits[T]().Destroy(slot)
		return
	}
	f.DestroyFunc(slot)
}

// DeepTraits returns traits whose Copy is a recursive deep copy of the source:
// pointers, slices, maps, interfaces and structs (unexported fields included)
// are duplicated so the copy shares no mutable state with the source. Copying
// a value that holds a non-nil channel, func or unsafe.Pointer fails.
func DeepTraits[T any]() Traits[T] {
	return deepTraits[T]{defaultTraits: DefaultTraits[T]().(defaultTraits[T])}
}

type deepTraits[T any] struct {
	defaultTraits[T]
}

func (t deepTraits[T]) Copy(dst, src *T) error {
	return DeepCopy(dst, src)
}
