package vectors

import "github.com/adv-linalg/advec/backend"

// Float operands whose storage we can reach directly are routed to the
// backend package instead of the generic element loops. Semantics are
// the same either way; only the kernels differ.

func rawPair[E any, T any](lhs, rhs Reader[T]) ([]E, []E, bool) {
	l, ok := any(lhs).(rawReader[E])
	if !ok {
		return nil, nil, false
	}
	r, ok := any(rhs).(rawReader[E])
	if !ok {
		return nil, nil, false
	}
	return l.rawRead(), r.rawRead(), true
}

func fastDot[T Element](lhs, rhs Reader[T]) (T, bool) {
	if x, y, ok := rawPair[float32](lhs, rhs); ok {
		return any(backend.Dot32(x, y)).(T), true
	}
	if x, y, ok := rawPair[float64](lhs, rhs); ok {
		return any(backend.Dot64(x, y)).(T), true
	}
	var zero T
	return zero, false
}

func fastAccumulate[T Element](dst Writer[T], src Reader[T], sub bool) bool {
	if d, ok := any(dst).(rawWriter[float32]); ok {
		s, ok := any(src).(rawReader[float32])
		if !ok {
			return false
		}
		alpha := float32(1)
		if sub {
			alpha = -1
		}
		backend.Axpy32(alpha, s.rawRead(), d.rawWrite())
		return true
	}
	if d, ok := any(dst).(rawWriter[float64]); ok {
		s, ok := any(src).(rawReader[float64])
		if !ok {
			return false
		}
		if sub {
			backend.Sub64(d.rawWrite(), s.rawRead())
		} else {
			backend.Add64(d.rawWrite(), s.rawRead())
		}
		return true
	}
	return false
}

func fastAccumulateRev[T Element](dst Writer[T], src Reader[T]) bool {
	if d, ok := any(dst).(rawWriter[float32]); ok {
		s, ok := any(src).(rawReader[float32])
		if !ok {
			return false
		}
		out := d.rawWrite()
		backend.Scal32(-1, out)
		backend.Axpy32(1, s.rawRead(), out)
		return true
	}
	if d, ok := any(dst).(rawWriter[float64]); ok {
		s, ok := any(src).(rawReader[float64])
		if !ok {
			return false
		}
		out := d.rawWrite()
		backend.Scale64(-1, out)
		backend.Add64(out, s.rawRead())
		return true
	}
	return false
}
