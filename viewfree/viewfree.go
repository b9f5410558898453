// Package viewfree certifies types as holding no borrowed views: no field,
// anywhere in the type's structure, may alias memory owned by someone
// else (for example strings or slices built over foreign storage with
// unsafe.String or unsafe.Slice). Certified types unlock the erased cast
// path, which establishes identity without consulting reflect descriptors.
//
// Certification is a trust boundary, not a validated contract. Whether a
// value borrows is not observable at runtime, so nothing here checks
// anything: a false certificate is undefined behavior at the cast site,
// not a reportable error. The Unsafe constructors exist to make the point
// where that burden is taken on explicit and greppable.
package viewfree

// Scalar is the built-in catalog: types whose values can never alias
// caller-owned storage through hidden views. Strings are included on the
// same terms as everywhere else in Go — a string built over foreign bytes
// with unsafe.String was already outside its own contract.
type Scalar interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Cert is a zero-size certificate that values of T hold no borrowed views.
// Obtain one through For, one of the composite builders, or UnsafeAssert.
// Constructing a Cert literal directly asserts the same contract as
// UnsafeAssert without saying so; don't.
type Cert[T any] struct{}

// For certifies a catalog scalar. Always safe.
func For[T Scalar]() Cert[T] {
	return Cert[T]{}
}

// SliceOf lifts a certificate over the element type to the slice type. A
// slice owns its backing array for certification purposes, the same as any
// other heap container of certified items.
func SliceOf[T any](Cert[T]) Cert[[]T] {
	return Cert[[]T]{}
}

// PtrOf lifts a certificate to the pointer type. The pointer is treated as
// owning its referent; a pointer into storage owned elsewhere voids the
// certificate.
func PtrOf[T any](Cert[T]) Cert[*T] {
	return Cert[*T]{}
}

// MapOf lifts certificates over the key and element types to the map type.
func MapOf[K comparable, V any](Cert[K], Cert[V]) Cert[map[K]V] {
	return Cert[map[K]V]{}
}

// UnsafeAssert certifies an arbitrary type. The caller vouches that T
// holds no borrowed views through any field, transitively; a wrong answer
// is undefined behavior. Fixed-size arrays and structs of certified types
// are certified this way, since Go cannot express those compositions as
// constraints.
func UnsafeAssert[T any]() Cert[T] {
	return Cert[T]{}
}

// Asserted is a transparent single-field wrapper certifying its contents
// for the duration of one cast. It has exactly the layout of T, so
// reinterpreting across it is a no-op. Intended use: wrap a value of a
// generic type with UnsafeWrap, cast Asserted[T] to Asserted[Concrete]
// with the certificate from Certificate, then Unwrap.
type Asserted[T any] struct {
	value T
}

// UnsafeWrap wraps v, taking on the same contract as UnsafeAssert for the
// wrapped type.
func UnsafeWrap[T any](v T) Asserted[T] {
	return Asserted[T]{value: v}
}

// Unwrap returns the wrapped value.
func (a Asserted[T]) Unwrap() T {
	return a.value
}

// Certificate returns the certificate every Asserted wrapper carries by
// construction. Safe: the caller already took on the contract in
// UnsafeWrap.
func Certificate[T any]() Cert[Asserted[T]] {
	return Cert[Asserted[T]]{}
}
