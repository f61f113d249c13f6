//go:build !noheap

package vectors

// The allocating transform family. Whatever the operand flavor, these
// always produce a fresh Vector, since the output element type is free
// to differ from the input one. The method forms below fix the output
// type to the input type; the package functions are the general case.

// Map applies f to every element in index order and collects the
// results into a new Vector.
func Map[T, O any](v Reader[T], f func(T) O) *Vector[O] {
	src := sourceOf(v)
	out := make([]O, v.Len())
	for i := range out {
		out[i] = f(src.at(i))
	}
	return &Vector[O]{values: out}
}

// MapIndex collects f applied to every position, ignoring the element
// values.
func MapIndex[T, O any](v Reader[T], f func(int) O) *Vector[O] {
	out := make([]O, v.Len())
	for i := range out {
		out[i] = f(i)
	}
	return &Vector[O]{values: out}
}

// MapEnumerate collects f applied to every position and element pair.
func MapEnumerate[T, O any](v Reader[T], f func(int, T) O) *Vector[O] {
	src := sourceOf(v)
	out := make([]O, v.Len())
	for i := range out {
		out[i] = f(i, src.at(i))
	}
	return &Vector[O]{values: out}
}

// Combine zips a and b pairwise by index through f into a new Vector.
// The operands must have the same length.
func Combine[T, U, O any](a Reader[T], b Reader[U], f func(T, U) O) *Vector[O] {
	n := checkSameLen(a, b)
	x, y := sourceOf(a), sourceOf(b)
	out := make([]O, n)
	for i := range out {
		out[i] = f(x.at(i), y.at(i))
	}
	return &Vector[O]{values: out}
}

// CombineEnumerate is Combine with the shared index handed to f as
// well.
func CombineEnumerate[T, U, O any](a Reader[T], b Reader[U], f func(int, T, U) O) *Vector[O] {
	n := checkSameLen(a, b)
	x, y := sourceOf(a), sourceOf(b)
	out := make([]O, n)
	for i := range out {
		out[i] = f(i, x.at(i), y.at(i))
	}
	return &Vector[O]{values: out}
}

// Method forms, element type preserved.

func (v *Vector[T]) Map(f func(T) T) *Vector[T]               { return Map[T, T](v, f) }
func (v *Vector[T]) MapIndex(f func(int) T) *Vector[T]        { return MapIndex[T, T](v, f) }
func (v *Vector[T]) MapEnumerate(f func(int, T) T) *Vector[T] { return MapEnumerate[T, T](v, f) }

func (v *Vector[T]) Combine(other Reader[T], f func(T, T) T) *Vector[T] {
	return Combine[T, T, T](v, other, f)
}

func (v *Vector[T]) CombineEnumerate(other Reader[T], f func(int, T, T) T) *Vector[T] {
	return CombineEnumerate[T, T, T](v, other, f)
}

func (m *MutVector[T]) Map(f func(T) T) *Vector[T]               { return Map[T, T](m, f) }
func (m *MutVector[T]) MapIndex(f func(int) T) *Vector[T]        { return MapIndex[T, T](m, f) }
func (m *MutVector[T]) MapEnumerate(f func(int, T) T) *Vector[T] { return MapEnumerate[T, T](m, f) }

func (m *MutVector[T]) Combine(other Reader[T], f func(T, T) T) *Vector[T] {
	return Combine[T, T, T](m, other, f)
}

func (m *MutVector[T]) CombineEnumerate(other Reader[T], f func(int, T, T) T) *Vector[T] {
	return CombineEnumerate[T, T, T](m, other, f)
}

func (s *VectorSlice[T]) Map(f func(T) T) *Vector[T]               { return Map[T, T](s, f) }
func (s *VectorSlice[T]) MapIndex(f func(int) T) *Vector[T]        { return MapIndex[T, T](s, f) }
func (s *VectorSlice[T]) MapEnumerate(f func(int, T) T) *Vector[T] { return MapEnumerate[T, T](s, f) }

func (s *VectorSlice[T]) Combine(other Reader[T], f func(T, T) T) *Vector[T] {
	return Combine[T, T, T](s, other, f)
}

func (s *VectorSlice[T]) CombineEnumerate(other Reader[T], f func(int, T, T) T) *Vector[T] {
	return CombineEnumerate[T, T, T](s, other, f)
}

func (s *MutVectorSlice[T]) Map(f func(T) T) *Vector[T]        { return Map[T, T](s, f) }
func (s *MutVectorSlice[T]) MapIndex(f func(int) T) *Vector[T] { return MapIndex[T, T](s, f) }

func (s *MutVectorSlice[T]) MapEnumerate(f func(int, T) T) *Vector[T] {
	return MapEnumerate[T, T](s, f)
}

func (s *MutVectorSlice[T]) Combine(other Reader[T], f func(T, T) T) *Vector[T] {
	return Combine[T, T, T](s, other, f)
}

func (s *MutVectorSlice[T]) CombineEnumerate(other Reader[T], f func(int, T, T) T) *Vector[T] {
	return CombineEnumerate[T, T, T](s, other, f)
}
