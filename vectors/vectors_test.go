package vectors

import (
	"errors"
	"testing"
)

func assertPanic(t *testing.T, msg string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal(msg)
		}
	}()
	f()
}

func expectValues(t *testing.T, got Reader[float64], want ...float64) {
	t.Helper()
	if !Equal(got, SliceOf(want)) {
		out := make([]float64, got.Len())
		for i := range out {
			out[i] = got.At(i)
		}
		t.Fatalf("expected %v, got %v", want, out)
	}
}

func assertPanicErr(t *testing.T, sentinel error, f func()) {
	t.Helper()
	defer func() {
		recovered := recover()
		if recovered == nil {
			t.Fatal("a panic was expected")
		}
		err, ok := recovered.(error)
		if !ok {
			t.Fatalf("expected an error value, got %v", recovered)
		}
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected %v, got %v", sentinel, err)
		}
	}()
	f()
}

// opaqueReader implements Reader outside of the package containers, so
// operations on it go through the interface fallback paths.
type opaqueReader struct{ data []float64 }

func (r opaqueReader) Len() int         { return len(r.data) }
func (r opaqueReader) At(i int) float64 { return r.data[i] }

type opaqueWriter struct{ data []float64 }

func (w opaqueWriter) Len() int             { return len(w.data) }
func (w opaqueWriter) At(i int) float64     { return w.data[i] }
func (w opaqueWriter) Set(i int, v float64) { w.data[i] = v }

func TestSliceOf(t *testing.T) {
	s := SliceOf([]float64{1, 2, 3})
	if s.Len() != 3 {
		t.Fatalf("expected 3 elements, got %d", s.Len())
	} else if s.At(0) != 1 || s.At(1) != 2 || s.At(2) != 3 {
		t.Fatal("unexpected elements")
	}
}

func TestSliceOfAtOutOfRange(t *testing.T) {
	s := SliceOf([]float64{1, 2, 3})
	assertPanicErr(t, ErrIndexOutOfRange, func() { s.At(3) })
	assertPanicErr(t, ErrIndexOutOfRange, func() { s.At(-1) })
}

func TestMutSliceOfSet(t *testing.T) {
	data := []float64{1, 2, 3}
	s := MutSliceOf(data)

	s.Set(1, 5)

	if data[1] != 5 {
		t.Fatal("the write did not reach the backing slice")
	}
	assertPanicErr(t, ErrIndexOutOfRange, func() { s.Set(3, 0) })
}

func TestViewValuesAreACopy(t *testing.T) {
	data := []float64{1, 2, 3}

	values := MutSliceOf(data).Values()
	values[0] = 666

	if data[0] != 1 {
		t.Fatal("mutating the returned values should not touch the view")
	}
}

func TestViewSlice(t *testing.T) {
	s := SliceOf([]float64{1, 2, 3, 4})

	sub := s.Slice(1, 3)
	if sub.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", sub.Len())
	} else if sub.At(0) != 2 || sub.At(1) != 3 {
		t.Fatal("unexpected elements")
	}

	empty := s.Slice(2, 2)
	if empty.Len() != 0 {
		t.Fatalf("expected an empty view, got %d elements", empty.Len())
	}
}

func TestViewSliceOutOfRange(t *testing.T) {
	s := SliceOf([]float64{1, 2, 3, 4})
	assertPanicErr(t, ErrIndexOutOfRange, func() { s.Slice(2, 5) })
	assertPanicErr(t, ErrIndexOutOfRange, func() { s.Slice(-1, 2) })
	assertPanicErr(t, ErrIndexOutOfRange, func() { s.Slice(3, 2) })
}

func TestViewString(t *testing.T) {
	if s := SliceOf([]float64{1, 2, 3}).String(); s != "[1, 2, 3]" {
		t.Fatalf("unexpected format: %s", s)
	}
	if s := MutSliceOf([]int{}).String(); s != "[]" {
		t.Fatalf("unexpected format: %s", s)
	}
}

func TestUntrackedViewsDoNotConflict(t *testing.T) {
	data := []float64{1, 2, 3, 4}

	// over a plain slice there is no owner and no ledger, the caller is
	// on their own
	a := MutSliceOf(data)
	b := MutSliceOf(data)

	a.Set(0, 5)
	if b.At(0) != 5 {
		t.Fatal("views over the same slice should alias it")
	}
}
