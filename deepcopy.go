package stl

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// DeepCopy copies *src into *dst recursively. Shared and cyclic pointers in the
// source are preserved as shared and cyclic pointers in the copy.
func DeepCopy[T any](dst, src *T) error {
	visited := make(map[visit]reflect.Value)
	return deepCopy(reflect.ValueOf(src).Elem(), reflect.ValueOf(dst).Elem(), visited)
}

type visit struct {
	ptr uintptr
	typ reflect.Type
}

func deepCopy(src, dst reflect.Value, visited map[visit]reflect.Value) error {
	switch src.Kind() {
	case reflect.Ptr:
		if src.IsNil() {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}

		// 指针去重，保持共享与循环引用
		key := visit{ptr: src.Pointer(), typ: src.Type()}
		if exist, ok := visited[key]; ok {
			dst.Set(exist)
			return nil
		}
		newPtr := reflect.New(src.Type().Elem())
		visited[key] = newPtr
		dst.Set(newPtr)
		return deepCopy(src.Elem(), newPtr.Elem(), visited)

	case reflect.Array:
		for i := 0; i < src.Len(); i++ {
			if err := deepCopy(src.Index(i), dst.Index(i), visited); err != nil {
				return err
			}
		}
		return nil

	case reflect.Slice:
		if src.IsNil() {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		newSlice := reflect.MakeSlice(src.Type(), src.Len(), src.Cap())
		for i := 0; i < src.Len(); i++ {
			if err := deepCopy(src.Index(i), newSlice.Index(i), visited); err != nil {
				return err
			}
		}
		dst.Set(newSlice)
		return nil

	case reflect.Map:
		if src.IsNil() {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		newMap := reflect.MakeMapWithSize(src.Type(), src.Len())
		iter := src.MapRange()
		for iter.Next() {
			key := reflect.New(src.Type().Key()).Elem()
			if err := deepCopy(iter.Key(), key, visited); err != nil {
				return err
			}
			value := reflect.New(src.Type().Elem()).Elem()
			if err := deepCopy(iter.Value(), value, visited); err != nil {
				return err
			}
			newMap.SetMapIndex(key, value)
		}
		dst.Set(newMap)
		return nil

	case reflect.Struct:
		for i := 0; i < src.NumField(); i++ {
			dstField := dst.Field(i)
			if !dstField.CanSet() {
				dstField = writable(dstField)
			}
			if err := deepCopy(src.Field(i), dstField, visited); err != nil {
				return err
			}
		}
		return nil

	case reflect.Interface:
		if src.IsNil() {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		elem := src.Elem()
		newElem := reflect.New(elem.Type()).Elem()
		if err := deepCopy(elem, newElem, visited); err != nil {
			return err
		}
		dst.Set(newElem)
		return nil

	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if !src.IsNil() {
			return errors.Newf("stl: cannot deep copy a %s", src.Type())
		}
		dst.Set(reflect.Zero(dst.Type()))
		return nil

	default:
		// 值类型直接拷贝
		if !src.CanInterface() {
			src = writable(src)
		}
		dst.Set(src)
		return nil
	}
}
