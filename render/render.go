// Package render turns shortest-path results into text: lipgloss tables for
// terminals and a plain layout for pipes and golden files.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/apsp/floydwarshall"
	"github.com/katalvlaran/apsp/matrix"
)

// Unreachable is what Path returns for a nil path.
const Unreachable = "unreachable"

const pathArrow = " -> "

var (
	colorCyan = lipgloss.Color("36")
	colorDim  = lipgloss.Color("240")
	colorRed  = lipgloss.Color("167")

	styleHeader   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleCell     = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	styleSentinel = styleCell.Foreground(colorDim)
	styleNegative = styleCell.Foreground(colorRed)
	styleBorder   = lipgloss.NewStyle().Foreground(colorDim)
)

// Distances renders dist as a table with vertex headers. Unreachable cells
// show matrix.InfToken, negative diagonal cells are highlighted.
func Distances(dist *matrix.DistanceMatrix) string {
	return grid(dist, func(i, j int, d matrix.Distance) lipgloss.Style {
		if !d.IsFinite() {
			return styleSentinel
		}
		if w, _ := d.Value(); i == j && w < 0 {
			return styleNegative
		}
		return styleCell
	})
}

// Next renders next as a table with vertex headers; empty hops show matrix.NoneToken.
func Next(next *matrix.NextMatrix) string {
	return grid(next, func(_, _ int, h matrix.Hop) lipgloss.Style {
		if h.IsNone() {
			return styleSentinel
		}
		return styleCell
	})
}

// grid lays m out with a leading header column. cellStyle picks the style
// of the cell at (i, j) from its value.
func grid[T matrix.Element](m *matrix.Dense[T], cellStyle func(i, j int, v T) lipgloss.Style) string {
	if m == nil || m.Order() == 0 {
		return ""
	}
	n := m.Order()

	headers := make([]string, n+1)
	for j := 0; j < n; j++ {
		headers[j+1] = strconv.Itoa(j)
	}
	rows := make([][]string, n)
	for i, row := range m.Rows() {
		cells := make([]string, n+1)
		cells[0] = strconv.Itoa(i)
		for j, v := range row {
			cells[j+1] = v.String()
		}
		rows[i] = cells
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return styleHeader
			}
			if row < 0 || row >= n || col > n {
				return styleCell
			}
			v, err := m.At(row, col-1)
			if err != nil {
				return styleCell
			}
			return cellStyle(row, col-1, v)
		})

	return t.String()
}

// Plain writes res in the classic three-block layout: the distance matrix,
// the next matrix and the negative-cycle verdict, each cell followed by a
// single space.
func Plain(w io.Writer, res *floydwarshall.Result) error {
	if res == nil {
		return fmt.Errorf("render: %w", matrix.ErrNilMatrix)
	}

	var b strings.Builder
	b.WriteString("Distance Matrix:\n")
	writeRows(&b, res.Dist)
	b.WriteString("\nNext Matrix:\n")
	writeRows(&b, res.Next)
	b.WriteString("\nNegative Cycle: ")
	b.WriteString(YesNo(res.NegativeCycle))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRows[T matrix.Element](b *strings.Builder, m *matrix.Dense[T]) {
	if m == nil {
		return
	}
	for _, row := range m.Rows() {
		for _, v := range row {
			b.WriteString(v.String())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
}

// Path joins the vertices of path with arrows: "0 -> 3 -> 1".
// A nil path renders as Unreachable.
func Path(path []int) string {
	if path == nil {
		return Unreachable
	}
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, pathArrow)
}

// YesNo renders a boolean verdict.
func YesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
