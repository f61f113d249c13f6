package vectors

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Element gathers the scalar types the arithmetic operations accept.
type Element interface {
	constraints.Integer | constraints.Float
}

// Reader is the read side of every container flavor: forward iteration
// by index over a sequence of known length.
type Reader[T any] interface {
	Len() int
	At(i int) T
}

// Writer is the write side, implemented only by the mutable flavors.
type Writer[T any] interface {
	Reader[T]
	Set(i int, v T)
}

// rawReader is implemented by the in-package containers so that bulk
// operations can validate access once and then work on the storage
// directly instead of revalidating element by element.
type rawReader[T any] interface {
	rawRead() []T
}

type rawWriter[T any] interface {
	rawWrite() []T
}

// source adapts a Reader for tight loops: direct storage when the
// operand is one of ours, interface calls otherwise.
type source[T any] struct {
	raw []T
	r   Reader[T]
}

func sourceOf[T any](r Reader[T]) source[T] {
	if rr, ok := r.(rawReader[T]); ok {
		return source[T]{raw: rr.rawRead()}
	}
	return source[T]{r: r}
}

func (s source[T]) at(i int) T {
	if s.raw != nil {
		return s.raw[i]
	}
	return s.r.At(i)
}

type sink[T any] struct {
	raw []T
	w   Writer[T]
}

func sinkOf[T any](w Writer[T]) sink[T] {
	if rw, ok := w.(rawWriter[T]); ok {
		return sink[T]{raw: rw.rawWrite()}
	}
	return sink[T]{w: w}
}

func (s sink[T]) at(i int) T {
	if s.raw != nil {
		return s.raw[i]
	}
	return s.w.At(i)
}

func (s sink[T]) set(i int, v T) {
	if s.raw != nil {
		s.raw[i] = v
		return
	}
	s.w.Set(i, v)
}

func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(indexOutOfRange(i, n))
	}
}

func checkRange(from, to, n int) {
	if from < 0 || to < from || to > n {
		panic(rangeOutOfRange(from, to, n))
	}
}

// checkSameLen validates the equal-length precondition shared by every
// pairwise operation and returns the common length.
func checkSameLen[T, U any](a Reader[T], b Reader[U]) int {
	n := a.Len()
	if m := b.Len(); m != n {
		panic(sizeMismatch(n, m))
	}
	return n
}

func formatValues[T any](values []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(']')
	return sb.String()
}
