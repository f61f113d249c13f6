package vectors

// VectorSlice is the borrowed immutable flavor: a read only window over
// storage owned by someone else. Views created from an owned vector
// carry a ticket on the owner's ledger and become unusable once
// released; views over plain slices are not tracked.
type VectorSlice[T any] struct {
	values []T
	led    *ledger
	base   int
	tk     *ticket
}

// SliceOf builds a read only view over a plain slice. The caller keeps
// ownership of the storage and is responsible for not mutating it while
// the view is in use.
func SliceOf[T any](values []T) *VectorSlice[T] {
	return &VectorSlice[T]{values: values}
}

func (s *VectorSlice[T]) use() []T {
	if s.tk != nil && s.tk.released {
		panic(borrowConflict("use of a released view"))
	}
	return s.values
}

func (s *VectorSlice[T]) rawRead() []T {
	return s.use()
}

// Len returns the number of elements in the window.
func (s *VectorSlice[T]) Len() int {
	return len(s.use())
}

// At returns the i-th element of the window.
func (s *VectorSlice[T]) At(i int) T {
	values := s.use()
	checkIndex(i, len(values))
	return values[i]
}

// Values returns a copy of the windowed elements.
func (s *VectorSlice[T]) Values() []T {
	values := s.use()
	out := make([]T, len(values))
	copy(out, values)
	return out
}

// Slice returns a narrower view of the half-open range [from:to),
// registered on the same owner as this view.
func (s *VectorSlice[T]) Slice(from, to int) *VectorSlice[T] {
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

// Release gives the borrowed region back to the owner. The view must
// not be used afterwards.
func (s *VectorSlice[T]) Release() {
	if s.tk != nil {
		s.tk.released = true
	}
}

func (s *VectorSlice[T]) String() string {
	return formatValues(s.use())
}
