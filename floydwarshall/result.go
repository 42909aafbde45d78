package floydwarshall

import (
	"fmt"

	"github.com/katalvlaran/apsp/matrix"
)

// Path reconstructs a shortest i→j path from r.Next. See ReconstructPath.
func (r *Result) Path(i, j int) ([]int, error) {
	return ReconstructPath(r.Next, i, j)
}

// Distance returns Dist[i][j]. Bad indices yield an error matching both
// ErrVertexOutOfRange and matrix.ErrOutOfRange.
func (r *Result) Distance(i, j int) (matrix.Distance, error) {
	d, err := r.Dist.At(i, j)
	if err != nil {
		return matrix.Unreachable, fmt.Errorf("Distance: %w: %w", ErrVertexOutOfRange, err)
	}

	return d, nil
}

// NegativeCycleVertices lists, in ascending order, the vertices whose
// diagonal distance is negative, i.e. that lie on a negative cycle found by
// the pass. Empty when NegativeCycle is false.
func (r *Result) NegativeCycleVertices() []int {
	var out []int
	n := r.Dist.Order()
	raw := r.Dist.Raw()
	for i := 0; i < n; i++ {
		if w, _ := raw[i*n+i].Value(); w < 0 {
			out = append(out, i)
		}
	}

	return out
}
