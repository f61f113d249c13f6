package vectors

import "fmt"

// MutVectorSlice is the borrowed mutable flavor: an exclusive, fixed
// length window over storage owned by someone else. For its whole
// lifetime it is the only live accessor of the region it covers, which
// is what makes writing through it safe.
type MutVectorSlice[T any] struct {
	values []T
	led    *ledger
	base   int
	tk     *ticket
}

// MutSliceOf builds a mutable view over a plain slice. The caller keeps
// ownership of the storage and is responsible for not touching it while
// the view is in use.
func MutSliceOf[T any](values []T) *MutVectorSlice[T] {
	return &MutVectorSlice[T]{values: values}
}

func (s *MutVectorSlice[T]) use() []T {
	if s.tk != nil && s.tk.released {
		panic(borrowConflict("use of a released view"))
	}
	return s.values
}

func (s *MutVectorSlice[T]) rawRead() []T {
	values := s.use()
	if s.led != nil && s.led.exclusiveOver(span{s.base, s.base + len(values)}, s.tk) {
		panic(borrowConflict("region has a live mutable sub-view"))
	}
	return values
}

func (s *MutVectorSlice[T]) rawWrite() []T {
	values := s.use()
	if s.led != nil && s.led.busyOver(span{s.base, s.base + len(values)}, s.tk) {
		panic(borrowConflict("region has live sub-views"))
	}
	return values
}

// Len returns the number of elements in the window.
func (s *MutVectorSlice[T]) Len() int {
	return len(s.use())
}

// At returns the i-th element of the window.
func (s *MutVectorSlice[T]) At(i int) T {
	values := s.use()
	checkIndex(i, len(values))
	if s.led != nil && s.led.exclusiveOver(span{s.base + i, s.base + i + 1}, s.tk) {
		panic(borrowConflict(fmt.Sprintf("element %d is borrowed mutably", i)))
	}
	return values[i]
}

// Set overwrites the i-th element of the window.
func (s *MutVectorSlice[T]) Set(i int, v T) {
	values := s.use()
	checkIndex(i, len(values))
	if s.led != nil && s.led.busyOver(span{s.base + i, s.base + i + 1}, s.tk) {
		panic(borrowConflict(fmt.Sprintf("element %d has a live sub-view", i)))
	}
	values[i] = v
}

// Values returns a copy of the windowed elements.
func (s *MutVectorSlice[T]) Values() []T {
	values := s.rawRead()
	out := make([]T, len(values))
	copy(out, values)
	return out
}

// Slice returns a read only sub-view of the half-open range [from:to).
// While the sub-view is alive this view cannot write the covered
// elements.
func (s *MutVectorSlice[T]) Slice(from, to int) *VectorSlice[T] {
	values := s.use()
	checkRange(from, to, len(values))
	out := &VectorSlice[T]{values: values[from:to:to]}
	if s.led != nil {
		tk, err := s.led.register(span{s.base + from, s.base + to}, false, s.tk)
		if err != nil {
			panic(err)
		}
		out.led, out.base, out.tk = s.led, s.base+from, tk
	}
	return out
}

// SliceMut carves an exclusive sub-view out of this view. While the
// sub-view is alive this view cannot touch the covered elements at all.
func (s *MutVectorSlice[T]) SliceMut(from, to int) *MutVectorSlice[T] {
	values := s.use()
	checkRange(from, to, len(values))
	out := &MutVectorSlice[T]{values: values[from:to:to]}
	if s.led != nil {
		tk, err := s.led.register(span{s.base + from, s.base + to}, true, s.tk)
		if err != nil {
			panic(err)
		}
		out.led, out.base, out.tk = s.led, s.base+from, tk
	}
	return out
}

// Release gives the borrowed region back to the owner. The view must
// not be used afterwards.
func (s *MutVectorSlice[T]) Release() {
	if s.tk != nil {
		s.tk.released = true
	}
}

func (s *MutVectorSlice[T]) String() string {
	return formatValues(s.rawRead())
}
