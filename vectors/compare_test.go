package vectors

import "testing"

func TestEqualAcrossFlavors(t *testing.T) {
	data := []float64{1, 2, 3}

	a := SliceOf(data)
	b := MutSliceOf([]float64{1, 2, 3})
	c := opaqueReader{data: []float64{1, 2, 3}}

	if !Equal[float64](a, b) {
		t.Fatal("expected the views to compare equal")
	} else if !Equal[float64](a, c) {
		t.Fatal("expected the interface only operand to compare equal")
	} else if !Equal[float64](c, c) {
		t.Fatal("expected an operand to equal itself")
	}
}

func TestEqualMismatches(t *testing.T) {
	a := SliceOf([]float64{1, 2, 3})

	if Equal[float64](a, SliceOf([]float64{1, 2, 4})) {
		t.Fatal("expected differing elements to compare not equal")
	} else if Equal[float64](a, SliceOf([]float64{1, 2})) {
		t.Fatal("expected differing lengths to compare not equal")
	} else if !Equal[float64](SliceOf[float64](nil), SliceOf([]float64{})) {
		t.Fatal("expected two empty operands to compare equal")
	}
}

func TestEqualInts(t *testing.T) {
	a := SliceOf([]int{1, 2, 3})
	b := MutSliceOf([]int{1, 2, 3})

	if !Equal[int](a, b) {
		t.Fatal("expected the int views to compare equal")
	}
}

func TestCompareOrderings(t *testing.T) {
	units := []struct {
		a, b []float64
		want int
	}{
		{[]float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{[]float64{1, 2, 3}, []float64{1, 2, 4}, -1},
		{[]float64{1, 3, 0}, []float64{1, 2, 9}, 1},
		// a prefix sorts before its extension
		{[]float64{1, 2}, []float64{1, 2, 3}, -1},
		{[]float64{1, 2, 3}, []float64{1, 2}, 1},
		{[]float64{}, []float64{1}, -1},
		{nil, nil, 0},
	}

	for _, u := range units {
		if got := Compare[float64](SliceOf(u.a), SliceOf(u.b)); got != u.want {
			t.Fatalf("Compare(%v, %v) = %d, expected %d", u.a, u.b, got, u.want)
		}
	}
}

func TestCompareFirstDifferenceWins(t *testing.T) {
	// the longer operand still sorts first when an earlier element decides
	if Compare[int](SliceOf([]int{2}), SliceOf([]int{1, 9, 9})) != 1 {
		t.Fatal("expected the first differing element to decide")
	}
}
