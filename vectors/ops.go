package vectors

// Shared arithmetic kernels. The operators themselves live in
// ops_full.go and ops_noheap.go, whichever the build selects; both
// funnel into these.

// Dot folds the pairwise products of lhs and rhs, in index order,
// starting from the zero value. It never mutates either operand,
// whatever their flavors. The operands must have the same length.
func Dot[T Element](lhs, rhs Reader[T]) T {
	n := checkSameLen(lhs, rhs)
	if v, ok := fastDot(lhs, rhs); ok {
		return v
	}
	x, y := sourceOf(lhs), sourceOf(rhs)
	var sum T
	for i := 0; i < n; i++ {
		sum = sum + x.at(i)*y.at(i)
	}
	return sum
}

// accumulate computes dst = dst + src or dst = dst - src in place.
func accumulate[T Element](dst Writer[T], src Reader[T], sub bool) {
	n := checkSameLen[T, T](dst, src)
	if fastAccumulate(dst, src, sub) {
		return
	}
	d := sinkOf(dst)
	s := sourceOf(src)
	if sub {
		for i := 0; i < n; i++ {
			d.set(i, d.at(i)-s.at(i))
		}
	} else {
		for i := 0; i < n; i++ {
			d.set(i, d.at(i)+s.at(i))
		}
	}
}

// accumulateRev computes dst = src - dst in place, for subtraction
// reusing the right operand's storage.
func accumulateRev[T Element](dst Writer[T], src Reader[T]) {
	n := checkSameLen[T, T](dst, src)
	if fastAccumulateRev(dst, src) {
		return
	}
	d := sinkOf(dst)
	s := sourceOf(src)
	for i := 0; i < n; i++ {
		d.set(i, s.at(i)-d.at(i))
	}
}
