package sequence

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

// dense is a slice-backed Sequence that reports its own length
type dense struct {
	items []string
	scans int
}

func (d *dense) Get(i int) (string, bool) {
	d.scans++
	if i < 1 || i > len(d.items) {
		return "", false
	}
	return d.items[i-1], true
}

func (d *dense) Set(i int, v string) {
	if i == len(d.items)+1 {
		d.items = append(d.items, v)
		return
	}
	d.items[i-1] = v
}

func (d *dense) Delete(i int) {
	if i == len(d.items) {
		d.items = d.items[:i-1]
	}
}

func (d *dense) Len() int { return len(d.items) }

func TestLenStopsAtFirstHole(t *testing.T) {
	tests := []struct {
		name string
		seq  Table[int]
		want int
	}{
		{"empty", Table[int]{}, 0},
		{"dense", Of(1, 2, 3), 3},
		{"hole at 2", Table[int]{1: 1, 3: 3}, 1},
		{"missing 1", Table[int]{2: 2, 3: 3}, 0},
		{"non-positive keys", Table[int]{0: 0, -1: -1, 1: 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Len[int](tt.seq); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLenUsesLener(t *testing.T) {
	d := &dense{items: []string{"a", "b", "c"}}
	if got := Len[string](d); got != 3 {
		t.Fatalf("Len() = %d", got)
	}
	if d.scans != 0 {
		t.Errorf("expected Len to skip scanning, got %d Get calls", d.scans)
	}
}

func TestPushThenIndex(t *testing.T) {
	seq := Table[string]{}
	if n := Push[string](seq, "a"); n != 1 {
		t.Fatalf("first push returned %d", n)
	}
	if n := Push[string](seq, "b"); n != 2 {
		t.Fatalf("second push returned %d", n)
	}
	if got := Len[string](seq); got != 2 {
		t.Fatalf("Len() = %d", got)
	}
	if v, _ := seq.Get(1); v != "a" {
		t.Errorf("index 1 = %q", v)
	}
	if v, _ := seq.Get(2); v != "b" {
		t.Errorf("index 2 = %q", v)
	}

	if n := Push[string](seq, "c", "d", "e"); n != 5 {
		t.Errorf("variadic push returned %d", n)
	}
	if got := Values[string](seq); !slices.Equal(got, []string{"a", "b", "c", "d", "e"}) {
		t.Errorf("got %v", got)
	}
}

func TestPushFillsFirstHole(t *testing.T) {
	seq := Table[int]{1: 1, 3: 3}
	if n := Push[int](seq, 2); n != 2 {
		t.Errorf("push returned %d, want 2", n)
	}
	if got := Len[int](seq); got != 3 {
		t.Errorf("Len() after filling the hole = %d, want 3", got)
	}
}

func TestPop(t *testing.T) {
	seq := Of("x", "y")
	v, ok := Pop[string](seq)
	if !ok || v != "y" {
		t.Fatalf("Pop() = %q, %v", v, ok)
	}
	v, ok = Pop[string](seq)
	if !ok || v != "x" {
		t.Fatalf("Pop() = %q, %v", v, ok)
	}
	v, ok = Pop[string](seq)
	if ok || v != "" {
		t.Errorf("Pop() on empty = %q, %v", v, ok)
	}
}

func TestReverse(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 6} {
		want := make([]int, n)
		in := make([]int, n)
		for i := 0; i < n; i++ {
			in[i] = i
			want[n-1-i] = i
		}
		seq := Of(in...)
		Reverse[int](seq)
		if got := Values[int](seq); !slices.Equal(got, want) {
			t.Errorf("n=%d: got %v want %v", n, got, want)
		}
	}
}

func TestConcat(t *testing.T) {
	dst := Table[string]{}
	n := Concat[string](dst, Of("a", "b"), Table[string]{}, Table[string]{1: "c", 3: "skipped"}, Of("d"))
	if n != 4 {
		t.Fatalf("Concat returned %d", n)
	}
	if got := Values[string](dst); !slices.Equal(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("got %v", got)
	}
	if _, ok := dst[5]; ok {
		t.Errorf("value beyond a source hole was copied")
	}
}

func TestContains(t *testing.T) {
	seq := Of("Go", "Lua")
	fold := func(a, b string) bool { return strings.EqualFold(a, b) }
	if !Contains[string](seq, "lua", fold) {
		t.Error("expected lua to be found")
	}
	if Contains[string](seq, "rust", fold) {
		t.Error("did not expect rust to be found")
	}
	if Contains[string](Table[string]{2: "Go"}, "Go", fold) {
		t.Error("values after a hole must not be visited")
	}
}

func TestEverySomeShortCircuit(t *testing.T) {
	seq := Of(2, 4, 5, 6)
	var seen []int
	even := func(v int) (bool, error) {
		seen = append(seen, v)
		return v%2 == 0, nil
	}

	ok, err := Every[int](seq, even)
	if err != nil || ok {
		t.Fatalf("Every() = %v, %v", ok, err)
	}
	if !slices.Equal(seen, []int{2, 4, 5}) {
		t.Errorf("Every visited %v", seen)
	}

	seen = nil
	ok, err = Some[int](seq, func(v int) (bool, error) {
		seen = append(seen, v)
		return v > 3, nil
	})
	if err != nil || !ok {
		t.Fatalf("Some() = %v, %v", ok, err)
	}
	if !slices.Equal(seen, []int{2, 4}) {
		t.Errorf("Some visited %v", seen)
	}

	ok, err = Every[int](Table[int]{}, even)
	if err != nil || !ok {
		t.Errorf("Every on empty = %v, %v", ok, err)
	}
	ok, err = Some[int](Table[int]{}, even)
	if err != nil || ok {
		t.Errorf("Some on empty = %v, %v", ok, err)
	}
}

func TestCallbackErrorsPropagate(t *testing.T) {
	errStop := errors.New("stop")
	seq := Of(1, 2, 3)
	calls := 0
	fail := func(v int) (bool, error) {
		calls++
		if v == 2 {
			return false, errStop
		}
		return v == 1, nil
	}

	if _, err := Every[int](seq, fail); err != errStop {
		t.Errorf("Every error = %v", err)
	}
	calls = 0
	if _, err := Some[int](Of(0, 2, 1), fail); err != errStop || calls != 2 {
		t.Errorf("Some error = %v after %d calls", err, calls)
	}

	dst := Table[string]{}
	err := Map[int, string](seq, dst, func(v int) (string, error) {
		if v == 3 {
			return "", errStop
		}
		return strings.Repeat("*", v), nil
	})
	if err != errStop {
		t.Fatalf("Map error = %v", err)
	}
	if got := Values[string](dst); !slices.Equal(got, []string{"*", "**"}) {
		t.Errorf("partial map result %v", got)
	}
}
