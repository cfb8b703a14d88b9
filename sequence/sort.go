package sequence

// buffer is one side of the merge ping-pong, addressed with 0-based positions.
type buffer[V any] interface {
	at(i int) V
	put(i int, v V)
}

// seqBuffer exposes a Sequence as a 0-based buffer.
type seqBuffer[V any] struct {
	seq Sequence[V]
}

func (b seqBuffer[V]) at(i int) V {
	v, _ := b.seq.Get(i + 1)
	return v
}

func (b seqBuffer[V]) put(i int, v V) {
	b.seq.Set(i+1, v)
}

// sliceBuffer is the auxiliary buffer allocated once per Sort call.
type sliceBuffer[V any] []V

func (b sliceBuffer[V]) at(i int) V {
	return b[i]
}

func (b sliceBuffer[V]) put(i int, v V) {
	b[i] = v
}

// merger carries the comparator through the recursion.
type merger[V any] struct {
	cmp Compare[V]
}

// Sort sorts seq in place using cmp. The sort is stable: values that compare equal keep
// their original relative order. It is a top-down merge sort that copies seq once into an
// auxiliary buffer and then alternates the roles of source and destination between the two
// at each level of recursion, so no further allocation happens.
//
// The first error returned by cmp stops the sort and is returned unchanged. Every slot of
// seq still holds one of its original values afterwards, but their order is unspecified.
// A panic raised by cmp is recovered and returned as a *ComparisonError.
//
// Sequences of zero or one element return without calling cmp. An inconsistent comparator
// yields an unspecified order.
func Sort[V any](seq Sequence[V], cmp Compare[V]) (err error) {
	n := Len(seq)
	if n < 2 {
		return nil
	}

	aux := make(sliceBuffer[V], n)
	for i := range aux {
		aux[i], _ = seq.Get(i + 1)
	}

	defer func() {
		// Recover from panics in the comparison function
		if r := recover(); r != nil {
			err = NewComparisonError(r, "Sort")
		}
	}()

	m := merger[V]{cmp: cmp}
	return m.splitMerge(aux, seqBuffer[V]{seq: seq}, 0, n)
}

// SortFunc sorts seq in place with a comparator that cannot fail. It is Sort without the
// error plumbing, except that a panic in cmp is still reported as a *ComparisonError.
func SortFunc[V any](seq Sequence[V], cmp func(a, b V) int) error {
	return Sort(seq, func(a, b V) (int, error) {
		return cmp(a, b), nil
	})
}

// splitMerge sorts the run [begin, end) into dst using src as scratch space.
// On entry src and dst hold the same values in that run.
func (m *merger[V]) splitMerge(src, dst buffer[V], begin, end int) error {
	if end-begin <= 1 {
		return nil
	}
	mid := (begin + end) / 2

	// sort both halves into src, swapping roles
	if err := m.splitMerge(dst, src, begin, mid); err != nil {
		return err
	}
	if err := m.splitMerge(dst, src, mid, end); err != nil {
		return err
	}

	return m.merge(src, dst, begin, mid, end)
}

// merge combines the sorted runs src[begin, mid) and src[mid, end) into dst[begin, end).
// Ties go to the left run, which keeps the sort stable.
func (m *merger[V]) merge(src, dst buffer[V], begin, mid, end int) error {
	i, j := begin, mid
	for k := begin; k < end; k++ {
		if i < mid && j < end {
			c, err := m.cmp(src.at(i), src.at(j))
			if err != nil {
				return err
			}
			if c <= 0 {
				dst.put(k, src.at(i))
				i++
			} else {
				dst.put(k, src.at(j))
				j++
			}
			continue
		}
		if i < mid {
			dst.put(k, src.at(i))
			i++
		} else {
			dst.put(k, src.at(j))
			j++
		}
	}
	return nil
}
