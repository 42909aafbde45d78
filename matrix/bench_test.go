// Package matrix_test provides benchmarks for the hot paths of the engine's
// inner loop: checked addition, comparison and flat element access.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/apsp/matrix"
)

func BenchmarkDistance_AddLess(b *testing.B) {
	b.ReportAllocs()
	x, y, best := matrix.Finite(17), matrix.Finite(-3), matrix.Unreachable
	for i := 0; i < b.N; i++ {
		if s, ok := x.Add(y); ok && s.Less(best) {
			best = s
		}
	}
	_ = best
}

func BenchmarkDense_At(b *testing.B) {
	const n = 128
	m, err := matrix.NewDistanceMatrix(n)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.At(i%n, (i*7)%n)
	}
}
