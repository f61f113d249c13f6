//go:build noheap

package vectors

// Operator dispatch for the reduced build. With the owned flavors
// compiled out there is no storage to allocate a fresh result into, so
// the left operand must be writable and always supplies the result
// storage. Dot is unchanged, a scalar needs no heap.

// Add computes the elementwise sum in place on lhs and returns it.
func Add[T Element](lhs Writer[T], rhs Reader[T]) Writer[T] {
	accumulate(lhs, rhs, false)
	return lhs
}

// Sub computes the elementwise difference lhs - rhs in place on lhs and
// returns it.
func Sub[T Element](lhs Writer[T], rhs Reader[T]) Writer[T] {
	accumulate(lhs, rhs, true)
	return lhs
}
