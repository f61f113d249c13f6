package vectors

import (
	"errors"
	"fmt"
)

// Every failure in this package signals a programming error, not a
// runtime condition to recover from: operations panic with an error
// wrapping one of these sentinels, before any element of any operand
// has been touched.
var (
	// ErrSizeMismatch is raised when a pairwise operation is invoked on
	// operands of different lengths.
	ErrSizeMismatch = errors.New("vectors: size mismatch")
	// ErrIndexOutOfRange is raised by element access or slicing outside
	// of the container bounds.
	ErrIndexOutOfRange = errors.New("vectors: index out of range")
	// ErrBorrowConflict is raised when a view would alias storage that
	// is already mutably borrowed, when storage with live views would
	// be mutated or moved, or when a released view is used again.
	ErrBorrowConflict = errors.New("vectors: borrow conflict")
)

func sizeMismatch(n, m int) error {
	return fmt.Errorf("%w: %d elements on one side, %d on the other", ErrSizeMismatch, n, m)
}

func indexOutOfRange(i, n int) error {
	return fmt.Errorf("%w: index %d on %d elements", ErrIndexOutOfRange, i, n)
}

func rangeOutOfRange(from, to, n int) error {
	return fmt.Errorf("%w: range [%d:%d) on %d elements", ErrIndexOutOfRange, from, to, n)
}

func borrowConflict(what string) error {
	return fmt.Errorf("%w: %s", ErrBorrowConflict, what)
}
