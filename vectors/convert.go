//go:build !noheap

package vectors

// The cheap conversions: storage changes hands, no element is copied.
// The source is invalidated and must not be used afterwards; moving
// with live views is a borrow conflict, since every view aliases the
// storage being handed over.

// AsMut moves the vector's storage into a new MutVector.
func (v *Vector[T]) AsMut() *MutVector[T] {
	values := v.use()
	if v.led.busy() {
		panic(borrowConflict("move with live views"))
	}
	v.values = nil
	v.moved = true
	return &MutVector[T]{values: values}
}

// AsVector moves the vector's storage into a new immutable Vector,
// freezing the current contents.
func (m *MutVector[T]) AsVector() *Vector[T] {
	values := m.use()
	if m.led.busy() {
		panic(borrowConflict("move with live views"))
	}
	m.values = nil
	m.moved = true
	return &Vector[T]{values: values}
}
