package stl

import (
	"reflect"
	"unsafe"
)

const (
	flagStickyRO = 1 << 5
	flagEmbedRO  = 1 << 6
	flagRO       = flagStickyRO | flagEmbedRO
)

// writable clears the read-only flag a reflect.Value carries when it was
// reached through an unexported struct field, so deep copies can read and
// assign such fields.
// WARNING: This bypasses Go's type safety and relies on reflect internals.
func writable(v reflect.Value) reflect.Value {
	rv := reflect.ValueOf(&v)
	flag := rv.Elem().FieldByName("flag")
	ptrFlag := (*uintptr)(unsafe.Pointer(flag.UnsafeAddr()))
	*ptrFlag &^= flagRO
	return v
}
