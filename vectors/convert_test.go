//go:build !noheap

package vectors

import "testing"

func TestAsMutMovesStorage(t *testing.T) {
	data := []float64{1, 2, 3}
	v := FromSlice(data)

	m := v.AsMut()
	m.Set(0, 10)

	// the storage changed hands instead of being copied
	if data[0] != 10 {
		t.Fatal("expected the original storage to back the new vector")
	}
	expectValues(t, m, 10, 2, 3)
}

func TestAsVectorMovesStorage(t *testing.T) {
	data := []float64{1, 2, 3}
	m := MutFromSlice(data)

	v := m.AsVector()

	data[2] = 30
	if v.At(2) != 30 {
		t.Fatal("expected the original storage to back the new vector")
	}
	expectValues(t, v, 1, 2, 30)
}

func TestMovedSourcePanics(t *testing.T) {
	v := New(1.0, 2.0, 3.0)
	v.AsMut()

	assertPanicErr(t, ErrBorrowConflict, func() { v.At(0) })
	assertPanicErr(t, ErrBorrowConflict, func() { v.Len() })
	assertPanicErr(t, ErrBorrowConflict, func() { v.Values() })
	assertPanicErr(t, ErrBorrowConflict, func() { v.Slice(0, 1) })
	assertPanicErr(t, ErrBorrowConflict, func() { v.Clone() })
	assertPanicErr(t, ErrBorrowConflict, func() { _ = v.String() })

	m := NewMut(1.0, 2.0, 3.0)
	m.AsVector()

	assertPanicErr(t, ErrBorrowConflict, func() { m.Set(0, 10) })
	assertPanicErr(t, ErrBorrowConflict, func() { m.Append(4) })
	assertPanicErr(t, ErrBorrowConflict, func() { m.SliceMut(0, 1) })
}

func TestMoveWithLiveViewsPanics(t *testing.T) {
	v := New(1.0, 2.0, 3.0)
	s := v.Slice(0, 2)

	assertPanicErr(t, ErrBorrowConflict, func() { v.AsMut() })

	s.Release()
	m := v.AsMut()

	ms := m.SliceMut(0, 2)
	assertPanicErr(t, ErrBorrowConflict, func() { m.AsVector() })

	ms.Release()
	frozen := m.AsVector()
	expectValues(t, frozen, 1, 2, 3)
}

func TestMoveRoundTrip(t *testing.T) {
	v := New(1.0, 2.0, 3.0)

	frozen := v.AsMut().MapMut(func(x float64) float64 { return x * 10 }).AsVector()

	expectValues(t, frozen, 10, 20, 30)
	assertPanicErr(t, ErrBorrowConflict, func() { v.Len() })
}
