package vectors

import "golang.org/x/exp/constraints"

// Equal reports whether a and b hold the same elements in the same
// order, whatever their flavors. Lengths differing means not equal, it
// is not an error.
func Equal[T comparable](a, b Reader[T]) bool {
	n := a.Len()
	if b.Len() != n {
		return false
	}
	x, y := sourceOf(a), sourceOf(b)
	for i := 0; i < n; i++ {
		if x.at(i) != y.at(i) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically: the first differing element
// decides, a prefix sorts before its extension. The result is -1, 0
// or +1.
func Compare[T constraints.Ordered](a, b Reader[T]) int {
	n, m := a.Len(), b.Len()
	x, y := sourceOf(a), sourceOf(b)
	for i := 0; i < min(n, m); i++ {
		xv, yv := x.at(i), y.at(i)
		switch {
		case xv < yv:
			return -1
		case xv > yv:
			return 1
		}
	}
	switch {
	case n < m:
		return -1
	case n > m:
		return 1
	}
	return 0
}
