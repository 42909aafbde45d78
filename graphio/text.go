package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/apsp/floydwarshall"
)

const commentPrefix = "#"

// decodeText parses the plain edge-list format line by line.
func decodeText(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	var (
		g         Graph
		line      int
		haveCount bool
	)
	for sc.Scan() {
		line++
		text := sc.Text()
		if idx := strings.Index(text, commentPrefix); idx >= 0 {
			text = text[:idx]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		if !haveCount {
			if len(fields) != 1 {
				return nil, fmt.Errorf("graphio: text line %d: want vertex count, got %d fields: %w", line, len(fields), ErrSyntax)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("graphio: text line %d: vertex count: %v: %w", line, err, ErrSyntax)
			}
			g.Vertices = n
			haveCount = true
			continue
		}

		e, err := parseEdge(fields)
		if err != nil {
			return nil, fmt.Errorf("graphio: text line %d: %v: %w", line, err, ErrSyntax)
		}
		g.Edges = append(g.Edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: text: %w", err)
	}
	if !haveCount {
		return nil, fmt.Errorf("graphio: text: missing vertex count: %w", ErrSyntax)
	}

	return &g, nil
}

// parseEdge converts "from to weight".
func parseEdge(fields []string) (floydwarshall.Edge, error) {
	if len(fields) != 3 {
		return floydwarshall.Edge{}, fmt.Errorf("want 3 fields, got %d", len(fields))
	}
	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return floydwarshall.Edge{}, fmt.Errorf("from: %w", err)
	}
	to, err := strconv.Atoi(fields[1])
	if err != nil {
		return floydwarshall.Edge{}, fmt.Errorf("to: %w", err)
	}
	w, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return floydwarshall.Edge{}, fmt.Errorf("weight: %w", err)
	}

	return floydwarshall.Edge{From: from, To: to, Weight: w}, nil
}

// encodeText writes the plain edge-list format.
func encodeText(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", g.Vertices)
	for _, e := range g.Edges {
		fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Weight)
	}

	return bw.Flush()
}
