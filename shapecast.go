// Package shapecast downcasts values of generic type parameters to concrete
// types without interface boxing, heap allocation or reflection on the hot
// path. A cast succeeds only when source and target name the same type; on
// mismatch the input comes back untouched. The identity checks are a few
// descriptor comparisons; a successful cast is a move, a by-reference cast
// rewrites only the pointer or slice header.
//
// This is not a runtime conversion library: it never converts between
// distinct types, however compatible their layouts. For that kind of work
// see encoding packages; shapecast only removes the cost of asking "is T
// actually a string?" inside generic code.
package shapecast

import (
	"reflect"

	"github.com/rawbytedev/shapecast/internal/ident"
	"github.com/rawbytedev/shapecast/internal/shape"
	"github.com/rawbytedev/shapecast/viewfree"
)

// To casts v to U, resolving the strategy from the shapes of both type
// parameters: pointer-to-pointer and slice-to-slice requests rebind the
// view, anything else moves owned bits. This is the general entry point a
// syntax front-end would expand to; the shape-specific functions below are
// cheaper to read at call sites that already know their shape.
func To[U, T any](v T) Outcome[U, T] {
	req := shape.Request{
		Target: shape.FormOf(reflect.TypeFor[U]()),
		Source: shape.FormOf(reflect.TypeFor[T]()),
		Life:   shape.Static,
	}
	if _, ok := shape.Select(req); !ok {
		return failed[U](v)
	}
	// Whatever row was selected, the type parameters here carry the full
	// shape, so item-level identity and whole-type identity coincide and
	// one owned bit-move covers every non-erased strategy.
	if ident.Static[T, U]() {
		return succeeded[U, T](ident.As[U](v))
	}
	return failed[U](v)
}

// Value attempts an owned cast of v to U. On success ownership of the bits
// moves into the outcome; on failure the outcome holds v unchanged.
func Value[U, T any](v T) Outcome[U, T] {
	if s, ok := shape.Select(shape.Request{
		Target: shape.Owned,
		Source: shape.FormOf(reflect.TypeFor[T]()),
		Life:   shape.Static,
	}); ok && s == shape.OwnedValue && ident.Static[T, U]() {
		return succeeded[U, T](ident.As[U](v))
	}
	return failed[U](v)
}

// Ref attempts to rebind p as a *U. The pointee is never touched and no
// value moves: on success the result aliases exactly the storage p did,
// valid for as long as p was.
func Ref[U, T any](p *T) Outcome[*U, *T] {
	if s, ok := shape.Select(shape.Request{
		Target: shape.Ref,
		Source: shape.Ref,
		Life:   shape.Bounded,
	}); ok && s == shape.RefItem && ident.Static[T, U]() {
		return succeeded[*U, *T](ident.AsPtr[U](p))
	}
	return failed[*U](p)
}

// Mut is Ref for call sites that intend to write through the result. Go
// pointers carry no mutability, so the two differ only in the dispatch row
// they occupy and in what they tell the reader.
func Mut[U, T any](p *T) Outcome[*U, *T] {
	if s, ok := shape.Select(shape.Request{
		Target: shape.MutRef,
		Source: shape.MutRef,
		Life:   shape.Bounded,
	}); ok && s == shape.MutItem && ident.Static[T, U]() {
		return succeeded[*U, *T](ident.AsPtr[U](p))
	}
	return failed[*U](p)
}

// Slice attempts to rebind s as a []U sharing the same backing array.
// Only the header is rewritten: length, capacity and element addresses all
// carry over.
func Slice[U, T any](s []T) Outcome[[]U, []T] {
	if st, ok := shape.Select(shape.Request{
		Target: shape.Slice,
		Source: shape.Slice,
		Life:   shape.Bounded,
	}); ok && st == shape.SliceItem && ident.Static[T, U]() {
		return succeeded[[]U, []T](ident.AsSlice[U](s))
	}
	return failed[[]U](s)
}

// MutSlice is Slice for call sites that intend to write through the
// result, on the same terms as Mut.
func MutSlice[U, T any](s []T) Outcome[[]U, []T] {
	if st, ok := shape.Select(shape.Request{
		Target: shape.MutSlice,
		Source: shape.MutSlice,
		Life:   shape.Bounded,
	}); ok && st == shape.MutSliceItem && ident.Static[T, U]() {
		return succeeded[[]U, []T](ident.AsSlice[U](s))
	}
	return failed[[]U](s)
}

// Erased attempts an owned cast of v to U using erased identity: the one
// path that never compares reflect descriptors. The certificate is the
// caller's proof that U holds no borrowed views (see package viewfree);
// when identity holds, a view-free U means v was view-free too, so the
// move is sound. Erased is total as a fallback — any certified target
// resolves to some strategy, success then depending only on identity.
func Erased[U, T any](v T, _ viewfree.Cert[U]) Outcome[U, T] {
	if s, ok := shape.Select(shape.Request{
		Target:    shape.Owned,
		Source:    shape.FormOf(reflect.TypeFor[T]()),
		Life:      shape.Bounded,
		Certified: true,
	}); ok && s == shape.ErasedValue && ident.Erased[T, U]() {
		return succeeded[U, T](ident.As[U](v))
	}
	return failed[U](v)
}
