package floydwarshall_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/katalvlaran/apsp/builder"
	"github.com/katalvlaran/apsp/floydwarshall"
)

// BenchmarkCompute_Ring measures the sequential kernel on circulant graphs
// with three out-edges per vertex.
func BenchmarkCompute_Ring(b *testing.B) {
	for _, n := range []int{32, 128, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			order, edges, err := builder.Build(
				[]builder.Option{builder.WithSeed(1), builder.WithUniformWeight(1, 10)},
				builder.Ring(n, 3),
			)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = floydwarshall.Compute(order, edges)
			}
		})
	}
}

// BenchmarkCompute_Parallel compares worker counts on a dense random graph.
func BenchmarkCompute_Parallel(b *testing.B) {
	const n = 256
	order, edges, err := builder.Build(
		[]builder.Option{builder.WithSeed(7), builder.WithUniformWeight(1, 100)},
		builder.RandomSparse(n, 0.05),
	)
	if err != nil {
		b.Fatal(err)
	}

	for _, w := range []int{1, 2, runtime.GOMAXPROCS(0)} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = floydwarshall.Compute(order, edges, floydwarshall.WithWorkers(w))
			}
		})
	}
}
