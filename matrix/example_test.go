package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/apsp/matrix"
)

// ExampleDistance_Add shows that sentinels never enter arithmetic and that
// wrapping sums are rejected.
func ExampleDistance_Add() {
	a, b := matrix.Finite(4), matrix.Finite(-1)
	sum, ok := a.Add(b)
	fmt.Println(sum, ok)

	_, ok = a.Add(matrix.Unreachable)
	fmt.Println(ok)

	_, ok = matrix.Finite(math.MaxInt64).Add(matrix.Finite(1))
	fmt.Println(ok)
	// Output:
	// 3 true
	// false
	// false
}

func ExampleNewDistanceMatrix() {
	dist, _ := matrix.NewDistanceMatrix(3)
	_ = dist.Set(0, 2, matrix.Finite(7))
	fmt.Print(dist)
	// Output:
	// [0, INF, 7]
	// [INF, 0, INF]
	// [INF, INF, 0]
}
