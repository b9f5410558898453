package viewfree

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	A, B uint8
}

func TestCatalog(t *testing.T) {
	// catalog and composite builders are compile-time facts; this pins
	// them against accidental narrowing
	_ = For[bool]()
	_ = For[string]()
	_ = For[uint8]()
	_ = For[uintptr]()
	_ = For[complex128]()

	type wrapped uint16
	_ = For[wrapped]() // ~-derived types are catalog members too

	_ = SliceOf(For[uint8]())
	_ = SliceOf(SliceOf(For[string]()))
	_ = PtrOf(For[int64]())
	_ = MapOf(For[string](), For[float64]())
	_ = MapOf(For[int](), SliceOf(For[byte]()))
}

func TestUnsafeAssert(t *testing.T) {
	_ = UnsafeAssert[pair]()
	_ = UnsafeAssert[[16]byte]()
}

func TestWrapUnwrap(t *testing.T) {
	v := pair{A: 1, B: 2}
	w := UnsafeWrap(v)
	require.Equal(t, v, w.Unwrap())
	_ = Certificate[pair]()
}

func TestAssertedIsTransparent(t *testing.T) {
	// same layout as the wrapped value, so reinterpreting across the
	// wrapper is a no-op
	assert.Equal(t, unsafe.Sizeof(pair{}), unsafe.Sizeof(Asserted[pair]{}))
	assert.Equal(t, unsafe.Alignof(pair{}), unsafe.Alignof(Asserted[pair]{}))
	assert.Equal(t, unsafe.Sizeof(""), unsafe.Sizeof(Asserted[string]{}))

	var w Asserted[uint64]
	assert.Equal(t, unsafe.Sizeof(uint64(0)), unsafe.Sizeof(w))
}

func TestCertIsZeroSize(t *testing.T) {
	assert.Equal(t, uintptr(0), unsafe.Sizeof(Cert[pair]{}))
	assert.Equal(t, uintptr(0), unsafe.Sizeof(Cert[string]{}))
}
