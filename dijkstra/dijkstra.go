package dijkstra

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/apsp/floydwarshall"
	"github.com/katalvlaran/apsp/matrix"
)

// Result holds distances and predecessors from one source.
type Result struct {
	Source int
	// Dist[v] is the shortest distance source→v, or matrix.Unreachable.
	Dist []matrix.Distance
	// Prev[v] is the vertex before v on the shortest path; NoHop for the
	// source and for unreachable vertices.
	Prev []matrix.Hop
}

// ShortestFrom computes shortest distances from source to every vertex.
//
// Validation order:
//  1. Option errors (ErrBadMaxDistance).
//  2. n ≥ 0 (floydwarshall.ErrInvalidVertexCount).
//  3. Endpoints in [0, n) (floydwarshall.ErrEdgeOutOfRange).
//  4. Source in [0, n) (ErrSourceOutOfRange).
//  5. No negative weight (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestFrom(n int, edges []floydwarshall.Edge, source int, opts ...Option) (*Result, error) {
	cfg, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("ShortestFrom: n=%d: %w", n, floydwarshall.ErrInvalidVertexCount)
	}
	if err = floydwarshall.ValidateEdges(n, edges); err != nil {
		return nil, fmt.Errorf("ShortestFrom: %w", err)
	}
	if source < 0 || source >= n {
		return nil, fmt.Errorf("ShortestFrom: source=%d (n=%d): %w", source, n, ErrSourceOutOfRange)
	}
	for idx, e := range edges {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge #%d %d→%d weight=%d", ErrNegativeWeight, idx, e.From, e.To, e.Weight)
		}
	}

	r := &runner{
		adj:     adjacency(n, edges),
		options: cfg,
		dist:    make([]matrix.Distance, n),
		prev:    make([]matrix.Hop, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(source)
	r.process()

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// PathTo walks Prev back from v. It returns [source] for v == source and nil
// when v is unreachable.
func (r *Result) PathTo(v int) ([]int, error) {
	n := len(r.Dist)
	if v < 0 || v >= n {
		return nil, fmt.Errorf("PathTo: v=%d (n=%d): %w", v, n, floydwarshall.ErrVertexOutOfRange)
	}
	if !r.Dist[v].IsFinite() {
		return nil, nil
	}

	var rev []int
	for cur := v; ; {
		rev = append(rev, cur)
		if cur == r.Source {
			break
		}
		p, ok := r.Prev[cur].Vertex()
		if !ok || len(rev) > n {
			return nil, fmt.Errorf("PathTo: broken predecessor chain at %d: %w", cur, floydwarshall.ErrPathLoop)
		}
		cur = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// CrossCheck runs ShortestFrom from every source and compares the result
// with the matching row of dist, an all-pairs distance matrix for the same
// graph. The first differing cell is reported as ErrMismatch, together with
// the path Dijkstra found. ctx is checked before each source.
//
// With WithMaxDistance(d), cells of dist holding a finite value above d are
// not compared; everything at or below d still must match exactly.
//
// Complexity: O(V·(V + E) log V).
func CrossCheck(ctx context.Context, n int, edges []floydwarshall.Edge, dist *matrix.DistanceMatrix, opts ...Option) error {
	cfg, err := newOptions(opts)
	if err != nil {
		return fmt.Errorf("CrossCheck: %w", err)
	}
	if dist == nil {
		return fmt.Errorf("CrossCheck: %w", matrix.ErrNilMatrix)
	}
	if dist.Order() != n {
		return fmt.Errorf("CrossCheck: order %d, want %d: %w", dist.Order(), n, matrix.ErrDimensionMismatch)
	}

	for src := 0; src < n; src++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("CrossCheck: source %d: %w", src, err)
		}
		res, err := ShortestFrom(n, edges, src, opts...)
		if err != nil {
			return fmt.Errorf("CrossCheck: %w", err)
		}
		row, _ := dist.Row(src)
		for v, want := range res.Dist {
			have := row[v]
			if w, ok := have.Value(); ok && w > cfg.MaxDistance {
				continue
			}
			if have != want {
				path, _ := res.PathTo(v)
				return fmt.Errorf("CrossCheck: %d→%d: have %s, dijkstra %s via %v: %w",
					src, v, have, want, path, ErrMismatch)
			}
		}
	}

	return nil
}

// arc is one outgoing edge in the adjacency list.
type arc struct {
	to int
	w  int64
}

// adjacency builds out-lists keeping the last weight of a repeated pair.
// Self-loops are dropped: with non-negative weights they never shorten a path.
func adjacency(n int, edges []floydwarshall.Edge) [][]arc {
	adj := make([][]arc, n)
	pos := make(map[[2]int]int, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		key := [2]int{e.From, e.To}
		if i, ok := pos[key]; ok {
			adj[e.From][i].w = e.Weight
			continue
		}
		pos[key] = len(adj[e.From])
		adj[e.From] = append(adj[e.From], arc{to: e.To, w: e.Weight})
	}

	return adj
}

// runner holds the mutable state for a single execution.
type runner struct {
	adj     [][]arc
	options Options
	dist    []matrix.Distance
	prev    []matrix.Hop
	visited []bool
	pq      nodePQ
}

// init seeds the source at distance 0. All other entries are already
// Unreachable / NoHop as zero values.
func (r *runner) init(source int) {
	r.dist[source] = matrix.Finite(0)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process pops vertices in distance order until the heap is empty or the
// next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax improves the neighbours of the finalized vertex u.
func (r *runner) relax(u int) {
	for _, a := range r.adj[u] {
		cand, ok := r.dist[u].Add(matrix.Finite(a.w))
		if !ok {
			continue
		}
		w, _ := cand.Value()
		if w > r.options.MaxDistance || !cand.Less(r.dist[a.to]) {
			continue
		}
		r.dist[a.to] = cand
		r.prev[a.to] = matrix.HopTo(u)
		heap.Push(&r.pq, &nodeItem{id: a.to, dist: w})
	}
}

// nodeItem is a heap entry; stale entries are skipped via visited.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
