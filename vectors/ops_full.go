//go:build !noheap

package vectors

import "github.com/adv-linalg/advec/backend"

// Operator dispatch over the full flavor set. For every ordered pairing
// of the four flavors the policy is resolved the same way, from the
// capabilities the operands expose rather than from their concrete
// types: a writable left operand supplies the result storage, else a
// writable right operand does, else a fresh Vector is allocated. The
// table of pairings collapses into this one rule.

type reuse int

const (
	reuseNone reuse = iota
	reuseLeft
	reuseRight
)

func decide[T any](lhs, rhs Reader[T]) reuse {
	if _, ok := lhs.(Writer[T]); ok {
		return reuseLeft
	}
	if _, ok := rhs.(Writer[T]); ok {
		return reuseRight
	}
	return reuseNone
}

// Add computes the elementwise sum of two equal length operands. The
// returned handle is the mutated left operand if it is writable, else
// the mutated right operand if that one is, else a new Vector.
func Add[T Element](lhs, rhs Reader[T]) Reader[T] {
	return arith(lhs, rhs, false)
}

// Sub computes the elementwise difference lhs - rhs of two equal length
// operands, reusing storage under the same policy as Add.
func Sub[T Element](lhs, rhs Reader[T]) Reader[T] {
	return arith(lhs, rhs, true)
}

func arith[T Element](lhs, rhs Reader[T], sub bool) Reader[T] {
	switch decide(lhs, rhs) {
	case reuseLeft:
		dst := lhs.(Writer[T])
		accumulate(dst, rhs, sub)
		return dst
	case reuseRight:
		dst := rhs.(Writer[T])
		if sub {
			accumulateRev(dst, lhs)
		} else {
			accumulate(dst, lhs, false)
		}
		return dst
	default:
		return freshArith(lhs, rhs, sub)
	}
}

// freshArith computes the result into a single new allocation, leaving
// both operands untouched.
func freshArith[T Element](lhs, rhs Reader[T], sub bool) *Vector[T] {
	n := checkSameLen[T, T](lhs, rhs)
	if v, ok := fastFresh(lhs, rhs, sub, n); ok {
		return v
	}
	out := make([]T, n)
	x, y := sourceOf(lhs), sourceOf(rhs)
	if sub {
		for i := range out {
			out[i] = x.at(i) - y.at(i)
		}
	} else {
		for i := range out {
			out[i] = x.at(i) + y.at(i)
		}
	}
	return &Vector[T]{values: out}
}

func fastFresh[T Element](lhs, rhs Reader[T], sub bool, n int) (*Vector[T], bool) {
	if x, y, ok := rawPair[float32](lhs, rhs); ok {
		out := make([]float32, n)
		backend.Copy32(out, x)
		alpha := float32(1)
		if sub {
			alpha = -1
		}
		backend.Axpy32(alpha, y, out)
		return any(&Vector[float32]{values: out}).(*Vector[T]), true
	}
	if x, y, ok := rawPair[float64](lhs, rhs); ok {
		out := make([]float64, n)
		if sub {
			backend.SubTo64(out, x, y)
		} else {
			backend.AddTo64(out, x, y)
		}
		return any(&Vector[float64]{values: out}).(*Vector[T]), true
	}
	return nil, false
}
