//go:build !noheap

package vectors

// Vector is the owned immutable flavor: it holds its own storage and no
// operation ever changes an element after construction. It is the
// default result type of everything that allocates.
type Vector[T any] struct {
	values []T
	led    ledger
	moved  bool
}

// New builds a Vector from the given elements. The storage backing a
// spread slice argument is taken over, not copied.
func New[T any](values ...T) *Vector[T] {
	return &Vector[T]{values: values}
}

// FromSlice wraps an existing slice without copying it. The caller must
// not keep using the slice afterwards.
func FromSlice[T any](values []T) *Vector[T] {
	return &Vector[T]{values: values}
}

// Repeat builds a Vector of n copies of value.
func Repeat[T any](value T, n int) *Vector[T] {
	values := make([]T, n)
	for i := range values {
		values[i] = value
	}
	return &Vector[T]{values: values}
}

func (v *Vector[T]) use() []T {
	if v.moved {
		panic(borrowConflict("use of a vector whose storage was moved"))
	}
	return v.values
}

func (v *Vector[T]) rawRead() []T {
	return v.use()
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.use())
}

// At returns the i-th element.
func (v *Vector[T]) At(i int) T {
	values := v.use()
	checkIndex(i, len(values))
	return values[i]
}

// Values returns a copy of the elements.
func (v *Vector[T]) Values() []T {
	values := v.use()
	out := make([]T, len(values))
	copy(out, values)
	return out
}

// Slice returns a read only view of the half-open range [from:to). The
// view keeps the vector from being moved until it is released.
func (v *Vector[T]) Slice(from, to int) *VectorSlice[T] {
	values := v.use()
	checkRange(from, to, len(values))
	tk, _ := v.led.register(span{from, to}, false, nil)
	return &VectorSlice[T]{
		values: values[from:to:to],
		led:    &v.led,
		base:   from,
		tk:     tk,
	}
}

// Clone returns a new Vector with its own copy of the elements.
func (v *Vector[T]) Clone() *Vector[T] {
	values := v.use()
	out := make([]T, len(values))
	copy(out, values)
	return &Vector[T]{values: out}
}

func (v *Vector[T]) String() string {
	return formatValues(v.use())
}
