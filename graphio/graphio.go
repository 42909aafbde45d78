package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/apsp/floydwarshall"
)

// Sentinel errors for decoding.
var (
	// ErrUnknownFormat is returned for an unrecognised format name or extension.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrSyntax is returned when input cannot be parsed.
	ErrSyntax = errors.New("graphio: syntax error")
)

// Format identifies an on-disk encoding.
type Format int

const (
	// FormatYAML is gopkg.in/yaml.v3.
	FormatYAML Format = iota
	// FormatTOML is github.com/BurntSushi/toml.
	FormatTOML
	// FormatText is the whitespace-separated edge list.
	FormatText
)

// String returns the canonical format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatText:
		return "text"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a name ("yaml", "yml", "toml", "text", "txt", "edges") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "text", "txt", "edges":
		return FormatText, nil
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Graph is a vertex count plus an ordered edge list.
type Graph struct {
	Vertices int                  `yaml:"vertices" toml:"vertices"`
	Edges    []floydwarshall.Edge `yaml:"edges" toml:"edges"`
}

// Validate enforces the engine's input contract: a non-negative vertex count
// and endpoints in [0, Vertices). Errors wrap floydwarshall sentinels.
func (g *Graph) Validate() error {
	if g.Vertices < 0 {
		return fmt.Errorf("graphio: vertices=%d: %w", g.Vertices, floydwarshall.ErrInvalidVertexCount)
	}
	if err := floydwarshall.ValidateEdges(g.Vertices, g.Edges); err != nil {
		return fmt.Errorf("graphio: %w", err)
	}

	return nil
}

// Decode reads a graph in format f. The result is not validated; see Validate.
func Decode(r io.Reader, f Format) (*Graph, error) {
	var g Graph
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&g); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("graphio: yaml: %v: %w", err, ErrSyntax)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&g)
		if err != nil {
			return nil, fmt.Errorf("graphio: toml: %v: %w", err, ErrSyntax)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("graphio: toml: unknown key %q: %w", undecoded[0].String(), ErrSyntax)
		}
	case FormatText:
		return decodeText(r)
	default:
		return nil, fmt.Errorf("graphio: %s: %w", f, ErrUnknownFormat)
	}

	return &g, nil
}

// Encode writes g in format f.
func Encode(w io.Writer, g *Graph, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			return fmt.Errorf("graphio: yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(g); err != nil {
			return fmt.Errorf("graphio: toml: %w", err)
		}
		return nil
	case FormatText:
		return encodeText(w, g)
	}

	return fmt.Errorf("graphio: %s: %w", f, ErrUnknownFormat)
}

// Load reads and validates the graph stored at path; the format comes from
// the extension.
func Load(path string) (*Graph, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer file.Close()

	g, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err = g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Save writes g to path in the format implied by its extension.
func Save(path string, g *Graph) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("graphio: %w", cerr)
		}
	}()

	return Encode(file, g, f)
}
