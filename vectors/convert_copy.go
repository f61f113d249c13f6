//go:build !noheap && !moveonly

package vectors

// The costly conversions: a view's elements are duplicated into fresh
// owned storage. Compiled out entirely under the moveonly tag, so that
// builds which opt into moves-only cannot copy by accident.

// ToOwned copies the windowed elements into a new Vector.
func (s *VectorSlice[T]) ToOwned() *Vector[T] {
	values := s.use()
	out := make([]T, len(values))
	copy(out, values)
	return &Vector[T]{values: out}
}

// ToMut copies the windowed elements into a new MutVector.
func (s *VectorSlice[T]) ToMut() *MutVector[T] {
	values := s.use()
	out := make([]T, len(values))
	copy(out, values)
	return &MutVector[T]{values: out}
}

// ToOwned copies the windowed elements into a new Vector.
func (s *MutVectorSlice[T]) ToOwned() *Vector[T] {
	values := s.rawRead()
	out := make([]T, len(values))
	copy(out, values)
	return &Vector[T]{values: out}
}

// ToMut copies the windowed elements into a new MutVector.
func (s *MutVectorSlice[T]) ToMut() *MutVector[T] {
	values := s.rawRead()
	out := make([]T, len(values))
	copy(out, values)
	return &MutVector[T]{values: out}
}
