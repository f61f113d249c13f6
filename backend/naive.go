package backend

import (
	"github.com/pbnjay/memory"
)

type naive struct {
}

func (impl naive) Name() string {
	return "naive"
}

func (impl naive) Space() uint64 {
	return memory.TotalMemory()
}

func (impl naive) Dot32(x, y []float32) float32 {
	dot := float32(0.0)
	for i, vx := range x {
		dot += vx * y[i]
	}
	return dot
}

func (impl naive) Axpy32(alpha float32, x, y []float32) {
	for i, vx := range x {
		y[i] += alpha * vx
	}
}

func (impl naive) Scal32(alpha float32, x []float32) {
	for i := range x {
		x[i] *= alpha
	}
}

func (impl naive) Copy32(dst, s []float32) {
	copy(dst, s)
}

func (impl naive) Dot64(x, y []float64) float64 {
	dot := float64(0.0)
	for i, vx := range x {
		dot += vx * y[i]
	}
	return dot
}

func (impl naive) Add64(dst, s []float64) {
	for i, v := range s {
		dst[i] += v
	}
}

func (impl naive) Sub64(dst, s []float64) {
	for i, v := range s {
		dst[i] -= v
	}
}

func (impl naive) AddTo64(dst, s, t []float64) {
	for i, v := range s {
		dst[i] = v + t[i]
	}
}

func (impl naive) SubTo64(dst, s, t []float64) {
	for i, v := range s {
		dst[i] = v - t[i]
	}
}

func (impl naive) Scale64(c float64, dst []float64) {
	for i := range dst {
		dst[i] *= c
	}
}
