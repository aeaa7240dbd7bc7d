package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/tilegraph"
)

var (
	errNoGrid     = errors.New("tilepath: --grid is required")
	errBadPoint   = errors.New("tilepath: point must be x,y")
	errNoEndpoint = errors.New("tilepath: endpoint not given and not marked in grid")
)

// app holds the persistent flags shared by every subcommand.
type app struct {
	gridPath string
	logLevel string
	jsonOut  bool
	conn4    bool

	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "tilepath",
		Short: "Incremental A* pathfinding over tile grids",
		Long: `Load a grid from a YAML document and query paths over it.

Grid document:
  rows:            # '.' floor, '#' wall, ',' mud, '~' water, 'S' start, 'G' goal
    - "S..#"
    - ".#.G"
  costs:           # optional overrides
    mud: 2

Subcommands:
  find     - Find one path, optionally after placing walls
  step     - Run a search step by step and print the frontier
  regions  - List connected regions of passable cells
  batch    - Answer several queries in parallel`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.gridPath, "grid", "g", "", "path to the YAML grid document")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.BoolVar(&a.jsonOut, "json", false, "write JSON instead of text")
	pf.BoolVar(&a.conn4, "conn4", false, "disable diagonal moves")

	root.AddCommand(
		newFindCmd(a),
		newStepCmd(a),
		newRegionsCmd(a),
		newBatchCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("tilepath: --log-level: %w", err)
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}

// load reads the grid document and builds a graph over it.
func (a *app) load() (*grid.Grid, *tilegraph.Graph, error) {
	if a.gridPath == "" {
		return nil, nil, errNoGrid
	}
	gr, err := grid.LoadFile(a.gridPath)
	if err != nil {
		return nil, nil, err
	}
	conn := grid.Conn8
	if a.conn4 {
		conn = grid.Conn4
	}
	g, err := tilegraph.Build(gr, tilegraph.WithConnectivity(conn), tilegraph.WithLogger(a.log))
	if err != nil {
		return nil, nil, err
	}
	a.log.Info("grid loaded", "path", a.gridPath, "width", gr.Width(), "height", gr.Height(), "nodes", g.Len())

	return gr, g, nil
}

// endpoints resolves --from/--to, falling back to the grid's S and G markers.
func endpoints(gr *grid.Grid, from, to string) (grid.Point, grid.Point, error) {
	start, err := pointOr(from, gr.Start)
	if err != nil {
		return grid.Point{}, grid.Point{}, fmt.Errorf("--from: %w", err)
	}
	goal, err := pointOr(to, gr.Goal)
	if err != nil {
		return grid.Point{}, grid.Point{}, fmt.Errorf("--to: %w", err)
	}

	return start, goal, nil
}

func pointOr(s string, marker func() (grid.Point, bool)) (grid.Point, error) {
	if s != "" {
		return parsePoint(s)
	}
	p, ok := marker()
	if !ok {
		return grid.Point{}, errNoEndpoint
	}

	return p, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (grid.Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return grid.Point{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Point{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Point{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}

	return grid.Point{X: x, Y: y}, nil
}

// pathView is the JSON form of a query outcome.
type pathView struct {
	From  grid.Point   `json:"from"`
	To    grid.Point   `json:"to"`
	Found bool         `json:"found"`
	Cost  float64      `json:"cost,omitempty"`
	Path  []grid.Point `json:"path,omitempty"`
	Error string       `json:"error,omitempty"`
}

func newPathView(from, to grid.Point, path *tilegraph.Path, err error) pathView {
	v := pathView{From: from, To: to, Found: path != nil}
	if path != nil {
		v.Cost = path.Cost()
		v.Path = path.Cells()
	}
	if err != nil {
		v.Error = err.Error()
	}

	return v
}

func (v pathView) String() string {
	switch {
	case v.Error != "":
		return fmt.Sprintf("%s -> %s: error: %s", v.From, v.To, v.Error)
	case !v.Found:
		return fmt.Sprintf("%s -> %s: no path", v.From, v.To)
	}
	parts := make([]string, len(v.Path))
	for i, p := range v.Path {
		parts[i] = p.String()
	}

	return fmt.Sprintf("%s -> %s: cost=%.2f len=%d\n  %s",
		v.From, v.To, v.Cost, len(v.Path), strings.Join(parts, " -> "))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
