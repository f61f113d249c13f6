//go:build !noheap

package vectors

import "testing"

func TestNewMut(t *testing.T) {
	m := NewMut(1.0, 2.0, 3.0)
	if m.Len() != 3 {
		t.Fatalf("expected 3 elements, got %d", m.Len())
	} else if m.At(0) != 1 || m.At(1) != 2 || m.At(2) != 3 {
		t.Fatal("unexpected elements")
	}
}

func TestMutVectorSet(t *testing.T) {
	m := RepeatMut(0.0, 3)

	for i := 0; i < m.Len(); i++ {
		m.Set(i, float64(i)*2)
	}

	if m.At(0) != 0 || m.At(1) != 2 || m.At(2) != 4 {
		t.Fatal("unexpected elements")
	}
	assertPanicErr(t, ErrIndexOutOfRange, func() { m.Set(3, 0) })
}

func TestMutFromSliceAliasesStorage(t *testing.T) {
	data := []float64{1, 2, 3}
	m := MutFromSlice(data)

	m.Set(0, 666)

	if data[0] != 666 {
		t.Fatal("the vector should have taken the slice over, not copied it")
	}
}

func TestMutVectorAppend(t *testing.T) {
	m := NewMut(1.0, 2.0)

	if back := m.Append(3.0, 4.0); back != m {
		t.Fatal("append should return the same vector")
	}

	if m.Len() != 4 {
		t.Fatalf("expected 4 elements, got %d", m.Len())
	} else if m.At(2) != 3 || m.At(3) != 4 {
		t.Fatal("unexpected elements")
	}
}

func TestMutVectorClone(t *testing.T) {
	m := NewMut(1.0, 2.0, 3.0)

	c := m.Clone()
	c.Set(0, 666)

	if m.At(0) != 1 {
		t.Fatal("clone should be independent of the original storage")
	}
}

func TestMutVectorValuesAreACopy(t *testing.T) {
	m := NewMut(1.0, 2.0, 3.0)

	values := m.Values()
	values[0] = 666

	if m.At(0) != 1 {
		t.Fatal("mutating the returned values should not touch the vector")
	}
}

func TestMutVectorMapMutForm(t *testing.T) {
	m := NewMut(1.0, 2.0, 3.0)

	if back := m.MapMut(func(x float64) float64 { return x * x }); back != m {
		t.Fatal("the in place form should return the same vector")
	}
	if m.At(0) != 1 || m.At(1) != 4 || m.At(2) != 9 {
		t.Fatal("unexpected elements")
	}

	m.MapIndexMut(func(i int) float64 { return float64(i) })
	if m.At(0) != 0 || m.At(1) != 1 || m.At(2) != 2 {
		t.Fatal("unexpected elements")
	}

	m.MapEnumerateMut(func(i int, x float64) float64 { return x + float64(i) })
	if m.At(0) != 0 || m.At(1) != 2 || m.At(2) != 4 {
		t.Fatal("unexpected elements")
	}
}

func TestMutVectorCombineMutForm(t *testing.T) {
	m := NewMut(1.0, 2.0, 3.0)
	other := New(3.0, 2.0, 1.0)

	m.CombineMut(other, func(a, b float64) float64 { return a * b })
	if m.At(0) != 3 || m.At(1) != 4 || m.At(2) != 3 {
		t.Fatal("unexpected elements")
	}

	m.CombineEnumerateMut(other, func(i int, a, b float64) float64 { return float64(i) })
	if m.At(0) != 0 || m.At(1) != 1 || m.At(2) != 2 {
		t.Fatal("unexpected elements")
	}
}
