//go:build !noheap

package vectors

import "testing"

const benchSize = 1024

var benchSink float64

func benchData(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i%7) + 0.5
	}
	return data
}

func BenchmarkDot64(b *testing.B) {
	x := FromSlice(benchData(benchSize))
	y := FromSlice(benchData(benchSize))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = Dot[float64](x, y)
	}
}

func BenchmarkDot32(b *testing.B) {
	data := make([]float32, benchSize)
	for i := range data {
		data[i] = float32(i%7) + 0.5
	}
	x := FromSlice(data)
	y := x.Clone()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = float64(Dot[float32](x, y))
	}
}

func BenchmarkDotInt(b *testing.B) {
	data := make([]int, benchSize)
	for i := range data {
		data[i] = i % 7
	}
	x := FromSlice(data)
	y := x.Clone()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = float64(Dot[int](x, y))
	}
}

func BenchmarkAddInPlace64(b *testing.B) {
	dst := MutFromSlice(benchData(benchSize))
	src := FromSlice(make([]float64, benchSize))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Add[float64](dst, src)
	}
}

func BenchmarkAddFresh64(b *testing.B) {
	x := FromSlice(benchData(benchSize))
	y := FromSlice(benchData(benchSize))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Add[float64](x, y)
	}
}

func BenchmarkMapMut(b *testing.B) {
	dst := MutFromSlice(benchData(benchSize))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst.MapMut(func(x float64) float64 { return x + 1 })
	}
}
