package shape

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTable(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		want Strategy
		ok   bool
	}{
		{"owned static", Request{Target: Owned, Life: Static}, OwnedValue, true},
		{"owned bounded uncertified", Request{Target: Owned, Life: Bounded}, None, false},
		{"owned bounded certified", Request{Target: Owned, Life: Bounded, Certified: true}, ErasedValue, true},

		{"ref static from owned", Request{Target: Ref, Life: Static}, OwnedValue, true},
		{"ref bounded from ref", Request{Target: Ref, Life: Bounded, Source: Ref}, RefItem, true},
		{"ref bounded from mutref", Request{Target: Ref, Life: Bounded, Source: MutRef}, RefItem, true},
		{"ref bounded from owned", Request{Target: Ref, Life: Bounded, Source: Owned}, None, false},
		{"ref bounded from owned certified", Request{Target: Ref, Life: Bounded, Source: Owned, Certified: true}, ErasedValue, true},

		{"mutref static", Request{Target: MutRef, Life: Static}, OwnedValue, true},
		{"mutref bounded from mutref", Request{Target: MutRef, Life: Bounded, Source: MutRef}, MutItem, true},
		{"mutref bounded from ref", Request{Target: MutRef, Life: Bounded, Source: Ref}, MutItem, true},
		{"mutref bounded from slice", Request{Target: MutRef, Life: Bounded, Source: Slice}, None, false},

		{"slice from slice", Request{Target: Slice, Source: Slice}, SliceItem, true},
		{"slice from mutslice", Request{Target: Slice, Source: MutSlice}, SliceItem, true},
		{"slice from owned", Request{Target: Slice, Source: Owned}, None, false},
		{"mutslice from mutslice", Request{Target: MutSlice, Source: MutSlice}, MutSliceItem, true},
		{"mutslice from slice", Request{Target: MutSlice, Source: Slice}, MutSliceItem, true},
		{"mutslice from ref", Request{Target: MutSlice, Source: Ref}, None, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Select(tc.req)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got, "want %v got %v", tc.want, got)
		})
	}
}

func TestSelectDeterministic(t *testing.T) {
	// the walk is a pure function of the request
	for target := Owned; target <= MutSlice; target++ {
		for source := Owned; source <= MutSlice; source++ {
			for _, life := range []Life{Bounded, Static} {
				for _, cert := range []bool{false, true} {
					req := Request{Target: target, Life: life, Source: source, Certified: cert}
					s1, ok1 := Select(req)
					s2, ok2 := Select(req)
					require.Equal(t, s1, s2)
					require.Equal(t, ok1, ok2)
				}
			}
		}
	}
}

func TestSelectCertifiedIsTotal(t *testing.T) {
	// a certified target can never come back without a strategy
	for target := Owned; target <= MutSlice; target++ {
		for source := Owned; source <= MutSlice; source++ {
			for _, life := range []Life{Bounded, Static} {
				req := Request{Target: target, Life: life, Source: source, Certified: true}
				s, ok := Select(req)
				require.True(t, ok, "no strategy for %+v", req)
				require.NotEqual(t, None, s)
			}
		}
	}
}

func TestSelectCertifiedKeepsSpecificRows(t *testing.T) {
	// certification must not steal requests a more specific row serves
	s, ok := Select(Request{Target: Owned, Life: Static, Certified: true})
	require.True(t, ok)
	assert.Equal(t, OwnedValue, s)

	s, ok = Select(Request{Target: Slice, Source: Slice, Certified: true})
	require.True(t, ok)
	assert.Equal(t, SliceItem, s)
}

func TestFormOf(t *testing.T) {
	assert.Equal(t, Owned, FormOf(reflect.TypeFor[uint8]()))
	assert.Equal(t, Owned, FormOf(reflect.TypeFor[string]()))
	assert.Equal(t, Owned, FormOf(reflect.TypeFor[[4]byte]()))
	assert.Equal(t, Ref, FormOf(reflect.TypeFor[*uint8]()))
	assert.Equal(t, Slice, FormOf(reflect.TypeFor[[]uint8]()))
	assert.Equal(t, Owned, FormOf(reflect.TypeFor[map[int]int]()))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "owned", Owned.String())
	assert.Equal(t, "mutslice", MutSlice.String())
	assert.Equal(t, "erased-value", ErasedValue.String())
	assert.Equal(t, "none", None.String())
}
