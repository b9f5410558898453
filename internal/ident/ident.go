// Package ident decides whether two compile-time type parameters name the
// same concrete type. Both checks are pure, allocation-free and run in
// constant time against runtime type descriptors; nothing is registered or
// looked up in any table.
package ident

import (
	"reflect"
	"unsafe"
)

// Static reports whether T and U are the same type.
//
// The reflect descriptor comparison is the source of truth: the runtime
// never hands out one descriptor for two distinct types. The size,
// alignment, trace-obligation and name comparisons are a second signal in
// case that guarantee is ever broken. A descriptor match where all
// secondary signals also match is accepted as true equality.
func Static[T, U any]() bool {
	t, u := reflect.TypeFor[T](), reflect.TypeFor[U]()
	return unsafe.Sizeof(*new(T)) == unsafe.Sizeof(*new(U)) &&
		unsafe.Alignof(*new(T)) == unsafe.Alignof(*new(U)) &&
		pointerBearing(t) == pointerBearing(u) &&
		t == u &&
		t.String() == u.String()
}

// Erased reports whether T and U are the same type without comparing
// reflect descriptors. Identity comes from the raw runtime type words of
// the *T and *U probes: every instantiation of the probe captures the
// address of a distinct descriptor at the binary level, so equal words mean
// equal types. The name comparison is a sanity signal on top, not a
// substitute.
//
// Alias spellings are invisible here, as everywhere: a `type B = A` probe
// is an A probe. Distinct defined types compare unequal even when their
// structure matches.
func Erased[T, U any]() bool {
	if unsafe.Sizeof(*new(T)) != unsafe.Sizeof(*new(U)) ||
		unsafe.Alignof(*new(T)) != unsafe.Alignof(*new(U)) {
		return false
	}
	if word[T]() != word[U]() {
		return false
	}
	return reflect.TypeFor[T]().String() == reflect.TypeFor[U]().String()
}

// eface mirrors the runtime layout of an empty interface value.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// word returns the runtime identity word for T. Boxing a nil *T stores the
// descriptor address for *T in the interface type word without allocating;
// that address is unique per T and is never merged by the linker.
func word[T any]() unsafe.Pointer {
	var probe any = (*T)(nil)
	return (*eface)(unsafe.Pointer(&probe)).typ
}

// pointerBearing reports whether values of t embed pointers the garbage
// collector must trace. Two identical types always agree on this; it is
// the obligation half of the identity fingerprint.
func pointerBearing(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && pointerBearing(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if pointerBearing(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
