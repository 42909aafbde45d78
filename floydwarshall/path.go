package floydwarshall

import (
	"fmt"

	"github.com/katalvlaran/apsp/matrix"
)

// ReconstructPath returns the vertices of a shortest i→j path, both ends
// included, by following next[cur][j] from i.
//
//   - i == j          → []int{i}
//   - no path         → nil, nil
//   - more than n hops → nil, ErrPathLoop (matrix corrupted by a negative cycle)
//
// Errors: matrix.ErrNilMatrix for a nil matrix, ErrVertexOutOfRange for bad endpoints.
// Complexity: O(n) time, O(path) space.
func ReconstructPath(next *matrix.NextMatrix, i, j int) ([]int, error) {
	if next == nil {
		return nil, fmt.Errorf("%s: %w", opPath, matrix.ErrNilMatrix)
	}
	n := next.Order()
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, fmt.Errorf("%s: (%d,%d) with n=%d: %w", opPath, i, j, n, ErrVertexOutOfRange)
	}
	if i == j {
		return []int{i}, nil
	}

	raw := next.Raw()
	path := []int{i}
	cur := i
	for step := 0; step < n; step++ {
		v, ok := raw[cur*n+j].Vertex()
		if !ok {
			return nil, nil
		}
		path = append(path, v)
		if v == j {
			return path, nil
		}
		cur = v
	}

	return nil, fmt.Errorf("%s: %d→%d exceeded %d hops: %w", opPath, i, j, n, ErrPathLoop)
}

// PathWeight sums the weights of consecutive hops of path, resolving each hop
// against edges with the same last-edge-wins rule Compute uses.
//
// An empty path weighs Unreachable, a single vertex weighs 0. A sum that
// would overflow int64 is reported as Unreachable, not as an error.
// Complexity: O(E + len(path)).
func PathWeight(edges []Edge, path []int) (matrix.Distance, error) {
	if len(path) == 0 {
		return matrix.Unreachable, nil
	}

	type pair struct{ u, v int }
	last := make(map[pair]int64, len(edges))
	for _, e := range edges {
		last[pair{e.From, e.To}] = e.Weight
	}

	total := matrix.Finite(0)
	var ok bool
	for idx := 1; idx < len(path); idx++ {
		w, found := last[pair{path[idx-1], path[idx]}]
		if !found {
			return matrix.Unreachable, fmt.Errorf("%s: hop %d→%d: %w", opWeight, path[idx-1], path[idx], ErrNoSuchEdge)
		}
		if total, ok = total.Add(matrix.Finite(w)); !ok {
			return matrix.Unreachable, nil
		}
	}

	return total, nil
}
