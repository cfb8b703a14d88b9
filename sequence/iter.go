package sequence

// Every reports whether pred holds for every value of seq. Iteration stops at the first
// value that does not satisfy pred, or at the first error, which is returned unchanged.
func Every[V any](seq Sequence[V], pred Predicate[V]) (bool, error) {
	n := Len(seq)
	for i := 1; i <= n; i++ {
		v, _ := seq.Get(i)
		ok, err := pred(v)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Some reports whether pred holds for at least one value of seq. Iteration stops at the
// first match, or at the first error, which is returned unchanged.
func Some[V any](seq Sequence[V], pred Predicate[V]) (bool, error) {
	n := Len(seq)
	for i := 1; i <= n; i++ {
		v, _ := seq.Get(i)
		ok, err := pred(v)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Map stores fn(seq[i]) at dst[i] for every i in 1..Len(seq). The first error from fn
// stops the walk and is returned unchanged; dst then holds the results produced so far.
func Map[V, W any](seq Sequence[V], dst Sequence[W], fn Mapper[V, W]) error {
	n := Len(seq)
	for i := 1; i <= n; i++ {
		v, _ := seq.Get(i)
		w, err := fn(v)
		if err != nil {
			return err
		}
		dst.Set(i, w)
	}
	return nil
}
