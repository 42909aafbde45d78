// Package matrix provides core containers for the shortest path engine.
// Dense is a square, row-major matrix storing its elements in a flat slice
// for cache friendliness in O(n³) loops.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Element is the set of cell types a Dense may hold.
type Element interface {
	comparable
	String() string
}

// Dense is an n×n row-major matrix.
// n is the order and data holds n*n elements in row-major order.
type Dense[T Element] struct {
	n    int // order (rows == cols)
	data []T // flat backing storage, length == n*n
}

// DistanceMatrix holds shortest-path weights; dist[i][j] is At(i, j).
type DistanceMatrix = Dense[Distance]

// NextMatrix holds next hops; next[i][j] is At(i, j).
type NextMatrix = Dense[Hop]

// newDense allocates an n×n matrix filled with fill.
// Complexity: O(n²) time and memory.
func newDense[T Element](n int, fill T) (*Dense[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("newDense: order %d: %w", n, ErrBadShape)
	}
	data := make([]T, n*n)
	var zero T
	if fill != zero {
		for i := range data {
			data[i] = fill
		}
	}

	return &Dense[T]{n: n, data: data}, nil
}

// NewDistanceMatrix returns an n×n distance matrix with 0 on the diagonal and
// Unreachable everywhere else. n == 0 yields a valid empty matrix.
// Complexity: O(n²).
func NewDistanceMatrix(n int) (*DistanceMatrix, error) {
	m, err := newDense(n, Unreachable)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = Finite(0)
	}

	return m, nil
}

// NewNextMatrix returns an n×n next-hop matrix filled with NoHop.
// Complexity: O(n²).
func NewNextMatrix(n int) (*NextMatrix, error) {
	return newDense(n, NoHop)
}

// FromRows builds a Dense from a square slice of rows, copying the values.
// Intended for fixtures and decoded data.
// Complexity: O(n²).
func FromRows[T Element](rows [][]T) (*Dense[T], error) {
	n := len(rows)
	m := &Dense[T]{n: n, data: make([]T, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), n, ErrDimensionMismatch)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// Order returns n, the number of rows (and columns).
func (m *Dense[T]) Order() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(n).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.n {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]T, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// Rows returns a deep copy of the matrix as a slice of rows.
// Complexity: O(n²).
func (m *Dense[T]) Rows() [][]T {
	out := make([][]T, m.n)
	for i := range out {
		out[i], _ = m.Row(i)
	}

	return out
}

// Raw exposes the live row-major backing slice (length n*n).
// Writes through it mutate the matrix; it is meant for O(n³) kernels that
// already validated their indices.
func (m *Dense[T]) Raw() []T {
	return m.data
}

// Clone returns a deep copy.
// Complexity: O(n²).
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{n: m.n, data: data}
}

// Equal reports whether o has the same order and identical cells.
// Sentinels compare sentinel-for-sentinel.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging: one bracketed row per line.
// Complexity: O(n²).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		b.WriteByte('[')
		for j = 0; j < m.n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.data[i*m.n+j].String())
		}
		b.WriteString("]\n")
	}

	return b.String()
}
