//go:build !noheap

package vectors

import "fmt"

// MutVector is the owned mutable flavor: operations are allowed to
// overwrite its elements in place and Append may grow its storage. It
// hands out borrowed views of itself and refuses any mutation while a
// view is alive over the region being touched.
type MutVector[T any] struct {
	values []T
	led    ledger
	moved  bool
}

// NewMut builds a MutVector from the given elements. The storage
// backing a spread slice argument is taken over, not copied.
func NewMut[T any](values ...T) *MutVector[T] {
	return &MutVector[T]{values: values}
}

// MutFromSlice wraps an existing slice without copying it. The caller
// must not keep using the slice afterwards.
func MutFromSlice[T any](values []T) *MutVector[T] {
	return &MutVector[T]{values: values}
}

// RepeatMut builds a MutVector of n copies of value.
func RepeatMut[T any](value T, n int) *MutVector[T] {
	values := make([]T, n)
	for i := range values {
		values[i] = value
	}
	return &MutVector[T]{values: values}
}

func (m *MutVector[T]) use() []T {
	if m.moved {
		panic(borrowConflict("use of a vector whose storage was moved"))
	}
	return m.values
}

func (m *MutVector[T]) rawRead() []T {
	values := m.use()
	if m.led.exclusiveOver(span{0, len(values)}, nil) {
		panic(borrowConflict("storage has a live mutable view"))
	}
	return values
}

func (m *MutVector[T]) rawWrite() []T {
	values := m.use()
	if m.led.busyOver(span{0, len(values)}, nil) {
		panic(borrowConflict("storage has live views"))
	}
	return values
}

// Len returns the number of elements.
func (m *MutVector[T]) Len() int {
	return len(m.use())
}

// At returns the i-th element. It fails while a mutable view covers
// that element.
func (m *MutVector[T]) At(i int) T {
	values := m.use()
	checkIndex(i, len(values))
	if m.led.exclusiveOver(span{i, i + 1}, nil) {
		panic(borrowConflict(fmt.Sprintf("element %d is borrowed mutably", i)))
	}
	return values[i]
}

// Set overwrites the i-th element. It fails while any view covers that
// element.
func (m *MutVector[T]) Set(i int, v T) {
	values := m.use()
	checkIndex(i, len(values))
	if m.led.busyOver(span{i, i + 1}, nil) {
		panic(borrowConflict(fmt.Sprintf("element %d has a live view", i)))
	}
	values[i] = v
}

// Values returns a copy of the elements.
func (m *MutVector[T]) Values() []T {
	values := m.rawRead()
	out := make([]T, len(values))
	copy(out, values)
	return out
}

// Append grows the vector with the given elements. The storage may be
// reallocated, so no view may be alive.
func (m *MutVector[T]) Append(values ...T) *MutVector[T] {
	current := m.use()
	if m.led.busy() {
		panic(borrowConflict("append with live views"))
	}
	m.values = append(current, values...)
	return m
}

// Slice returns a read only view of the half-open range [from:to).
// While the view is alive the covered elements cannot be overwritten
// and the vector cannot be moved or grown.
func (m *MutVector[T]) Slice(from, to int) *VectorSlice[T] {
	values := m.use()
	checkRange(from, to, len(values))
	tk, err := m.led.register(span{from, to}, false, nil)
	if err != nil {
		panic(err)
	}
	return &VectorSlice[T]{
		values: values[from:to:to],
		led:    &m.led,
		base:   from,
		tk:     tk,
	}
}

// SliceMut returns a mutable view of the half-open range [from:to). The
// view is the only way to touch the covered elements until it is
// released.
func (m *MutVector[T]) SliceMut(from, to int) *MutVectorSlice[T] {
	values := m.use()
	checkRange(from, to, len(values))
	tk, err := m.led.register(span{from, to}, true, nil)
	if err != nil {
		panic(err)
	}
	return &MutVectorSlice[T]{
		values: values[from:to:to],
		led:    &m.led,
		base:   from,
		tk:     tk,
	}
}

// Clone returns a new MutVector with its own copy of the elements.
func (m *MutVector[T]) Clone() *MutVector[T] {
	values := m.rawRead()
	out := make([]T, len(values))
	copy(out, values)
	return &MutVector[T]{values: out}
}

// In place transform method forms, element type preserved.

func (m *MutVector[T]) MapMut(f func(T) T) *MutVector[T] {
	MapMut[T](m, f)
	return m
}

func (m *MutVector[T]) MapIndexMut(f func(int) T) *MutVector[T] {
	MapIndexMut[T](m, f)
	return m
}

func (m *MutVector[T]) MapEnumerateMut(f func(int, T) T) *MutVector[T] {
	MapEnumerateMut[T](m, f)
	return m
}

func (m *MutVector[T]) CombineMut(other Reader[T], f func(T, T) T) *MutVector[T] {
	CombineMut[T, T](m, other, f)
	return m
}

func (m *MutVector[T]) CombineEnumerateMut(other Reader[T], f func(int, T, T) T) *MutVector[T] {
	CombineEnumerateMut[T, T](m, other, f)
	return m
}

func (m *MutVector[T]) String() string {
	return formatValues(m.rawRead())
}
