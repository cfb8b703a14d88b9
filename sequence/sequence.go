// Package sequence implements the array utilities of lstd over 1-based, hole-terminated
// sequences, including a stable merge sort driven by a fallible comparator.
package sequence

// Sequence is a mapping from 1-based integer index to a value. The length of a sequence
// is the largest prefix 1..N of indices that all hold a value; the first absent index
// (a hole) ends enumeration.
type Sequence[V any] interface {
	// Get returns the value stored at index i and whether one is present.
	Get(i int) (V, bool)

	// Set stores v at index i.
	Set(i int, v V)

	// Delete removes the value at index i, leaving a hole.
	Delete(i int)
}

// Lener is implemented by sequences that already track their hole-terminated length.
// Len uses it instead of scanning.
type Lener interface {
	Len() int
}

// Compare is a function type for ordering two items of type V.
// Returns a negative integer if a should be ordered before b, zero if they rank equally,
// and a positive integer if a should be ordered after b. A non-nil error aborts the
// operation that invoked the comparator and is returned to its caller unchanged.
type Compare[V any] func(a, b V) (int, error)

// Predicate reports whether v satisfies a condition.
type Predicate[V any] func(v V) (bool, error)

// Mapper transforms a value of type V into a value of type W.
type Mapper[V, W any] func(v V) (W, error)

// Len returns the number of values before the first hole.
func Len[V any](seq Sequence[V]) int {
	if l, ok := seq.(Lener); ok {
		return l.Len()
	}
	n := 0
	for {
		if _, ok := seq.Get(n + 1); !ok {
			return n
		}
		n++
	}
}

// Push appends each value after the current end of seq, in call order, and returns the
// new length.
func Push[V any](seq Sequence[V], values ...V) int {
	n := Len(seq)
	for _, v := range values {
		n++
		seq.Set(n, v)
	}
	return n
}

// Pop removes and returns the last value of seq. The boolean is false when seq is empty.
func Pop[V any](seq Sequence[V]) (V, bool) {
	n := Len(seq)
	if n == 0 {
		var zero V
		return zero, false
	}
	v, _ := seq.Get(n)
	seq.Delete(n)
	return v, true
}

// Reverse reverses seq in place.
func Reverse[V any](seq Sequence[V]) {
	n := Len(seq)
	for i := 1; i <= n/2; i++ {
		a, _ := seq.Get(i)
		b, _ := seq.Get(n + 1 - i)
		seq.Set(i, b)
		seq.Set(n+1-i, a)
	}
}

// Concat appends the elements of every source to dst in argument order and returns the
// length of dst. Called with an empty dst it builds a fresh sequence indexed from 1.
func Concat[V any](dst Sequence[V], srcs ...Sequence[V]) int {
	n := Len(dst)
	for _, src := range srcs {
		m := Len(src)
		for i := 1; i <= m; i++ {
			v, _ := src.Get(i)
			n++
			dst.Set(n, v)
		}
	}
	return n
}

// Contains reports whether any value of seq is equal to v under eq.
func Contains[V any](seq Sequence[V], v V, eq func(a, b V) bool) bool {
	n := Len(seq)
	for i := 1; i <= n; i++ {
		e, _ := seq.Get(i)
		if eq(e, v) {
			return true
		}
	}
	return false
}

// Values returns the values of seq up to its length as a slice.
func Values[V any](seq Sequence[V]) []V {
	n := Len(seq)
	out := make([]V, n)
	for i := range out {
		out[i], _ = seq.Get(i + 1)
	}
	return out
}
