package shapecast

// Outcome is the result of one cast attempt. Exactly one arm is ever live:
// on success the target-shaped value, with ownership or the view
// transferred; on failure the input, bit-for-bit as it was given, so the
// caller can fall through to another interpretation. There is no partially
// constructed state in between.
type Outcome[U, T any] struct {
	value U
	orig  T
	ok    bool
}

func succeeded[U, T any](v U) Outcome[U, T] {
	return Outcome[U, T]{value: v, ok: true}
}

func failed[U, T any](orig T) Outcome[U, T] {
	return Outcome[U, T]{orig: orig}
}

// Ok reports whether the cast succeeded.
func (o Outcome[U, T]) Ok() bool { return o.ok }

// Value returns the reinterpreted value and whether it is live.
func (o Outcome[U, T]) Value() (U, bool) { return o.value, o.ok }

// Orig returns the untouched input and whether it is live (the inverse of
// Ok).
func (o Outcome[U, T]) Orig() (T, bool) { return o.orig, !o.ok }
