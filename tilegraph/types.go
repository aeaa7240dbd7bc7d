// Package tilegraph defines core types, configuration options and sentinel
// errors for graph construction and A* search over a tile grid.
package tilegraph

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tilepath/grid"
)

// Sentinel errors returned by the tilegraph implementation.
var (
	// ErrNilSource indicates that Build was called without a grid source.
	ErrNilSource = errors.New("tilegraph: grid source is nil")

	// ErrNilGraph indicates that a nil *Graph was passed to a search.
	ErrNilGraph = errors.New("tilegraph: graph is nil")

	// ErrUnknownCell indicates that a start or goal coordinate has no node
	// in the graph.
	ErrUnknownCell = errors.New("tilegraph: cell not in graph")

	// ErrCorruptState indicates that the search state machine attempted to
	// expand a node with an empty frontier. It signals a programming error.
	ErrCorruptState = errors.New("tilegraph: search state corrupted")
)

// NodeID addresses a Node inside a Graph's arena. It is the row-major index
// of the node's cell (y*width + x) and stays stable for the Graph's lifetime.
type NodeID int

// Edge is an outgoing, weighted link to another node. Cost is the movement
// cost of the target cell, so the cost of u→v may differ from v→u.
type Edge struct {
	Cost float64 // movement cost of entering To
	To   NodeID  // target node
}

// Node is one cell of the graph together with its outgoing edges.
//
// Edges is nil until first generated. Regeneration replaces the slice
// wholesale and never modifies a published slice in place, so a slice read
// from a Node may be retained safely.
type Node struct {
	ID    NodeID
	Point grid.Point
	Edges []Edge
}

// Costs are the search bookkeeping for one node within one Pathfinder.
//
// G – cost of the best known route from the start.
// H – straight-line distance to the goal.
// F – G + H, the frontier priority.
type Costs struct {
	G, H, F float64
}

// State is the lifecycle stage of a Pathfinder.
type State int

const (
	// Initialized: the frontier holds only the start node.
	Initialized State = iota
	// Stepping: at least one node has been expanded and the search continues.
	Stepping
	// Found: the goal was dequeued and a path reconstructed. Terminal.
	Found
	// Exhausted: the frontier emptied without reaching the goal. Terminal.
	Exhausted
)

// String returns the name of s.
func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Stepping:
		return "stepping"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no further steps will change the search.
func (s State) Terminal() bool { return s == Found || s == Exhausted }

// Options configures graph construction.
//
// Connectivity – grid.Conn8 (default) admits diagonal edges; grid.Conn4
// restricts edges to the four cardinal neighbors.
// Logger       – destination for caller-error reports and debug traces.
type Options struct {
	Connectivity grid.Connectivity
	Logger       *slog.Logger
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithConnectivity selects 4- or 8-directional edges.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *Options) {
		o.Connectivity = conn
	}
}

// WithLogger sets the logger. A nil logger leaves the default in place.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with 8-directional edges and slog.Default().
func DefaultOptions() Options {
	return Options{
		Connectivity: grid.Conn8,
		Logger:       slog.Default(),
	}
}
