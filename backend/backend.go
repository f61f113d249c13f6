package backend

import "runtime"

// TODO: pick at runtime the best backend available ( CUDA, OpenCL or BLAS ).
var impl = blas{}

// Name returns the name of the backend in use.
func Name() string {
	return impl.Name()
}

// Space returns the total amount of memory available to the backend, in
// bytes.
func Space() uint64 {
	return impl.Space()
}

// Used returns the amount of memory currently obtained from the system,
// in bytes.
func Used() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Sys
}

// Dot32 computes the dot product of two float32 vectors of the same
// length.
func Dot32(x, y []float32) float32 {
	return impl.Dot32(x, y)
}

// Axpy32 computes y += alpha * x in place.
func Axpy32(alpha float32, x, y []float32) {
	impl.Axpy32(alpha, x, y)
}

// Scal32 computes x *= alpha in place.
func Scal32(alpha float32, x []float32) {
	impl.Scal32(alpha, x)
}

// Copy32 copies s into dst, both of the same length.
func Copy32(dst, s []float32) {
	impl.Copy32(dst, s)
}

// Dot64 computes the dot product of two float64 vectors of the same
// length.
func Dot64(x, y []float64) float64 {
	return impl.Dot64(x, y)
}

// Add64 computes dst += s in place.
func Add64(dst, s []float64) {
	impl.Add64(dst, s)
}

// Sub64 computes dst -= s in place.
func Sub64(dst, s []float64) {
	impl.Sub64(dst, s)
}

// AddTo64 computes dst = s + t, all three of the same length.
func AddTo64(dst, s, t []float64) {
	impl.AddTo64(dst, s, t)
}

// SubTo64 computes dst = s - t, all three of the same length.
func SubTo64(dst, s, t []float64) {
	impl.SubTo64(dst, s, t)
}

// Scale64 computes dst *= c in place.
func Scale64(c float64, dst []float64) {
	impl.Scale64(c, dst)
}
