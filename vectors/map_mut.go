package vectors

// The in place transform family, available on the mutable flavors only.
// Nothing here allocates and nothing changes the operand's length; the
// mutated operand itself is returned as the result handle. The length
// precondition of the pairwise forms is validated before the first
// element is written, so a failed call never leaves the target half
// overwritten.

// MapMut overwrites every element of v with f applied to its current
// value, in index order.
func MapMut[T any](v Writer[T], f func(T) T) Writer[T] {
	n := v.Len()
	d := sinkOf(v)
	for i := 0; i < n; i++ {
		d.set(i, f(d.at(i)))
	}
	return v
}

// MapIndexMut overwrites every element of v with f applied to its
// position, ignoring the current values.
func MapIndexMut[T any](v Writer[T], f func(int) T) Writer[T] {
	n := v.Len()
	d := sinkOf(v)
	for i := 0; i < n; i++ {
		d.set(i, f(i))
	}
	return v
}

// MapEnumerateMut overwrites every element of v with f applied to its
// position and current value.
func MapEnumerateMut[T any](v Writer[T], f func(int, T) T) Writer[T] {
	n := v.Len()
	d := sinkOf(v)
	for i := 0; i < n; i++ {
		d.set(i, f(i, d.at(i)))
	}
	return v
}

// CombineMut overwrites every element of v with f applied to the
// current value and the paired element of other. The operands must have
// the same length.
func CombineMut[T, U any](v Writer[T], other Reader[U], f func(T, U) T) Writer[T] {
	n := checkSameLen[T, U](v, other)
	d := sinkOf(v)
	s := sourceOf(other)
	for i := 0; i < n; i++ {
		d.set(i, f(d.at(i), s.at(i)))
	}
	return v
}

// CombineEnumerateMut is CombineMut with the shared index handed to f
// as well.
func CombineEnumerateMut[T, U any](v Writer[T], other Reader[U], f func(int, T, U) T) Writer[T] {
	n := checkSameLen[T, U](v, other)
	d := sinkOf(v)
	s := sourceOf(other)
	for i := 0; i < n; i++ {
		d.set(i, f(i, d.at(i), s.at(i)))
	}
	return v
}

// Method forms, element type preserved. The MutVector ones live next to
// the type, since it is not part of every build.

func (s *MutVectorSlice[T]) MapMut(f func(T) T) *MutVectorSlice[T] {
	MapMut[T](s, f)
	return s
}

func (s *MutVectorSlice[T]) MapIndexMut(f func(int) T) *MutVectorSlice[T] {
	MapIndexMut[T](s, f)
	return s
}

func (s *MutVectorSlice[T]) MapEnumerateMut(f func(int, T) T) *MutVectorSlice[T] {
	MapEnumerateMut[T](s, f)
	return s
}

func (s *MutVectorSlice[T]) CombineMut(other Reader[T], f func(T, T) T) *MutVectorSlice[T] {
	CombineMut[T, T](s, other, f)
	return s
}

func (s *MutVectorSlice[T]) CombineEnumerateMut(other Reader[T], f func(int, T, T) T) *MutVectorSlice[T] {
	CombineEnumerateMut[T, T](s, other, f)
	return s
}
