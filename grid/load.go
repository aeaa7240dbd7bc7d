package grid

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a grid.
//
//	rows:
//	  - "S..#"
//	  - ".#.G"
//	legend:        # optional extra symbols, by tile name; not 'S' or 'G'
//	  "x": wall
//	costs:         # optional cost overrides, by tile name
//	  mud: 2
//	start: [0, 0]  # optional, overrides an 'S' marker
//	goal: [3, 1]   # optional, overrides a 'G' marker
type Document struct {
	Rows   []string           `yaml:"rows"`
	Legend map[string]string  `yaml:"legend,omitempty"`
	Costs  map[string]float64 `yaml:"costs,omitempty"`
	Start  []int              `yaml:"start,omitempty"`
	Goal   []int              `yaml:"goal,omitempty"`
}

// Load decodes a YAML Document from r and builds a Grid from it.
func Load(r io.Reader, opts ...Option) (*Grid, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("grid: decode document: %w", err)
	}

	return doc.Grid(opts...)
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string, opts ...Option) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// Grid builds the Grid described by d. Cost overrides in d are applied
// after opts.
func (d Document) Grid(opts ...Option) (*Grid, error) {
	symbols := make(map[rune]TileType, len(legend)+len(d.Legend))
	for r, t := range legend {
		symbols[r] = t
	}
	for sym, name := range d.Legend {
		r, size := utf8.DecodeRuneInString(sym)
		if size == 0 || size != len(sym) {
			return nil, fmt.Errorf("%w: legend symbol %q must be a single character", ErrUnknownTile, sym)
		}
		if r == 'S' || r == 'G' {
			return nil, fmt.Errorf("%w: legend symbol %q", ErrReservedSymbol, sym)
		}
		t, err := ParseTileType(name)
		if err != nil {
			return nil, err
		}
		symbols[r] = t
	}
	for name, cost := range d.Costs {
		t, err := ParseTileType(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithCost(t, cost))
	}

	g, err := parseRows(d.Rows, symbols, opts)
	if err != nil {
		return nil, err
	}
	if err := g.setMarker('S', d.Start); err != nil {
		return nil, err
	}
	if err := g.setMarker('G', d.Goal); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *Grid) setMarker(r rune, xy []int) error {
	if len(xy) == 0 {
		return nil
	}
	if len(xy) != 2 || !g.InBounds(xy[0], xy[1]) {
		return fmt.Errorf("%w: marker %q at %v", ErrOutOfBounds, r, xy)
	}
	g.markers[r] = Point{X: xy[0], Y: xy[1]}

	return nil
}
