package kdtree

// Index is the capability a Tree needs from its caller: the number of
// ordered coordinates each value carries, and a strict weak ordering along
// any one of them. The core never inspects a value directly. It only ever
// asks an Index whether one value is "less than" another along a given
// axis.
//
// Two values are considered equal by Find (see Tree.Find) iff neither is
// Less than the other on every axis. Implementations must keep Less
// consistent with that definition: a comparator that is a strict weak
// ordering along each axis in isolation, but inconsistent with the
// "neither-less" equality test across axes, will make Find unable to
// locate values that Insert placed on the far side of an equal key (Open
// Question 3, see DESIGN.md).
//
// Index is a Go generic type parameter, not a runtime interface: dispatch
// is resolved at compile time via monomorphisation, matching §4.4/§9's
// requirement that the capability be a compile-time parameter.
type Index[V any] interface {
	// Dims returns K, the number of ordered coordinates a value carries.
	// It must be constant for the lifetime of an Index value.
	Dims() int

	// Less reports whether a is strictly less than b along axis d, where
	// 0 <= d < Dims(). It must be a strict weak ordering for every fixed
	// d.
	Less(d int, a, b V) bool
}

// Accessor extracts the coordinate of a value along a given axis.
type Accessor[V, C any] func(d int, v V) C

// Comparator is a strict weak ordering over coordinates.
type Comparator[C any] func(a, b C) bool

// Composed builds an Index out of a coordinate accessor and a coordinate
// comparator, for callers who'd rather not hand-write a combined
// access-and-compare predicate. The core only ever consumes the combined
// shape (Index.Less); Composed collapses the two-function shape into it.
type Composed[V, C any] struct {
	K   int
	Get Accessor[V, C]
	Cmp Comparator[C]
}

func (c Composed[V, C]) Dims() int { return c.K }

func (c Composed[V, C]) Less(d int, a, b V) bool {
	return c.Cmp(c.Get(d, a), c.Get(d, b))
}

// Func adapts a combined access-and-compare predicate directly into an
// Index, for callers who already have one function shaped like
// Index.Less.
type Func[V any] struct {
	K      int
	LessFn func(d int, a, b V) bool
}

func (f Func[V]) Dims() int { return f.K }

func (f Func[V]) Less(d int, a, b V) bool { return f.LessFn(d, a, b) }

// equal reports whether a and b compare equal on every axis under idx, per
// the definition in Index's doc comment.
func equal[V any](idx Index[V], a, b V) bool {
	for d := 0; d < idx.Dims(); d++ {
		if idx.Less(d, a, b) || idx.Less(d, b, a) {
			return false
		}
	}
	return true
}
