// Package shape resolves a requested cast shape to the single strategy that
// serves it. Resolution is a fixed priority walk over the strategy table:
// the most specific applicable row wins, exactly one row ever fires, and a
// certified target always has the erased row to fall back on.
package shape

import "reflect"

// Form is the syntactic shape of a cast operand or target.
type Form uint8

const (
	Owned Form = iota
	Ref
	MutRef
	Slice
	MutSlice
)

func (f Form) String() string {
	switch f {
	case Owned:
		return "owned"
	case Ref:
		return "ref"
	case MutRef:
		return "mutref"
	case Slice:
		return "slice"
	case MutSlice:
		return "mutslice"
	}
	return "unknown"
}

// Life qualifies how long the requested view may be held: Bounded views
// stay tied to the source form they were derived from, Static ones do not.
type Life uint8

const (
	Bounded Life = iota
	Static
)

// Request describes one cast attempt: the form the caller asked for, the
// life qualifier on that form, the form the source actually has, and
// whether the target type carries a view-free certificate.
type Request struct {
	Target    Form
	Life      Life
	Source    Form
	Certified bool
}

// Strategy names the one casting path selected for a request.
type Strategy uint8

const (
	None Strategy = iota
	OwnedValue
	MutItem
	RefItem
	SliceItem
	MutSliceItem
	ErasedValue
)

func (s Strategy) String() string {
	switch s {
	case None:
		return "none"
	case OwnedValue:
		return "owned-value"
	case MutItem:
		return "mut-item"
	case RefItem:
		return "ref-item"
	case SliceItem:
		return "slice-item"
	case MutSliceItem:
		return "mutslice-item"
	case ErasedValue:
		return "erased-value"
	}
	return "unknown"
}

// pointerFormed reports whether f presents a single-item view.
func pointerFormed(f Form) bool { return f == Ref || f == MutRef }

// sliceFormed reports whether f presents a multi-item view.
func sliceFormed(f Form) bool { return f == Slice || f == MutSlice }

// Select returns the most specific strategy whose requirements hold for
// req. Rows are walked in fixed order from most to least specific; the
// certified erased row applies to any request, so a certified request can
// never come back without a strategy.
func Select(req Request) (Strategy, bool) {
	switch req.Target {
	case MutRef:
		// A static-life view request carries no tie to the source, so the
		// whole value, pointer included, moves as owned bits.
		if req.Life == Static {
			return OwnedValue, true
		}
		if pointerFormed(req.Source) {
			return MutItem, true
		}
	case Ref:
		if req.Life == Static {
			return OwnedValue, true
		}
		if pointerFormed(req.Source) {
			return RefItem, true
		}
	case MutSlice:
		if sliceFormed(req.Source) {
			return MutSliceItem, true
		}
	case Slice:
		if sliceFormed(req.Source) {
			return SliceItem, true
		}
	case Owned:
		if req.Life == Static {
			return OwnedValue, true
		}
	}
	if req.Certified {
		return ErasedValue, true
	}
	return None, false
}

// FormOf classifies a concrete type by the cast form its values present.
// Mutability is a caller intent, not a property of a Go type, so FormOf
// never reports the mut forms.
func FormOf(t reflect.Type) Form {
	switch t.Kind() {
	case reflect.Pointer:
		return Ref
	case reflect.Slice:
		return Slice
	default:
		return Owned
	}
}
