package ident

import "unsafe"

// The reinterpret primitives below perform no checks of their own. Callers
// must have proven T and U identical through Static or Erased first; on
// unproven types they corrupt memory. The target type parameter comes
// first so call sites only have to name it.

// As reinterprets the bits of v as a U. Ownership of the bits moves to the
// result: v must not be used afterwards. The load through the punned
// pointer is the only copy involved.
func As[U, T any](v T) U {
	return *(*U)(unsafe.Pointer(&v))
}

// AsPtr rebinds p as a *U without touching the pointee. No value moves;
// the result aliases exactly the storage p did.
func AsPtr[U, T any](p *T) *U {
	return (*U)(unsafe.Pointer(p))
}

// AsSlice rebinds the header of s as a []U sharing the same backing array.
// Length and capacity carry over unscaled: element sizes are already equal
// when the item types are identical.
func AsSlice[U, T any](s []T) []U {
	return *(*[]U)(unsafe.Pointer(&s))
}
