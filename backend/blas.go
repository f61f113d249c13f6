package backend

import (
	"github.com/pbnjay/memory"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/floats"
)

type blas struct {
}

func asBlas32(data []float32) blas32.Vector {
	return blas32.Vector{
		N:    len(data),
		Inc:  1,
		Data: data,
	}
}

func (impl blas) Name() string {
	return "blas"
}

func (impl blas) Space() uint64 {
	return memory.TotalMemory()
}

func (impl blas) Dot32(x, y []float32) float32 {
	return blas32.Dot(asBlas32(x), asBlas32(y))
}

func (impl blas) Axpy32(alpha float32, x, y []float32) {
	blas32.Axpy(alpha, asBlas32(x), asBlas32(y))
}

func (impl blas) Scal32(alpha float32, x []float32) {
	blas32.Scal(alpha, asBlas32(x))
}

func (impl blas) Copy32(dst, s []float32) {
	blas32.Copy(asBlas32(s), asBlas32(dst))
}

func (impl blas) Dot64(x, y []float64) float64 {
	return floats.Dot(x, y)
}

func (impl blas) Add64(dst, s []float64) {
	floats.Add(dst, s)
}

func (impl blas) Sub64(dst, s []float64) {
	floats.Sub(dst, s)
}

func (impl blas) AddTo64(dst, s, t []float64) {
	floats.AddTo(dst, s, t)
}

func (impl blas) SubTo64(dst, s, t []float64) {
	floats.SubTo(dst, s, t)
}

func (impl blas) Scale64(c float64, dst []float64) {
	floats.Scale(c, dst)
}
