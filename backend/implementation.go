package backend

// each backend must implement these methods.
type implementation interface {
	Name() string
	Space() uint64

	// float32 kernels
	Dot32(x, y []float32) float32
	Axpy32(alpha float32, x, y []float32)
	Scal32(alpha float32, x []float32)
	Copy32(dst, s []float32)

	// float64 kernels
	Dot64(x, y []float64) float64
	Add64(dst, s []float64)
	Sub64(dst, s []float64)
	AddTo64(dst, s, t []float64)
	SubTo64(dst, s, t []float64)
	Scale64(c float64, dst []float64)
}
