// Package scenario loads search problems from YAML: either an ASCII grid or
// an edge list, plus start, goal and a preferred heuristic.
//
// Grid scenario:
//
//	grid:
//	  connectivity: 8
//	  diagonal_cost: 1.5
//	  rows:
//	    - "S..#"
//	    - ".#.G"
//
// Graph scenario:
//
//	graph:
//	  directed: false
//	  start: A
//	  goal: D
//	  edges:
//	    - {from: A, to: B, weight: 2}
//	    - {from: B, to: D, weight: 1, directed: true}
//
// Grid start and goal come from the S and G markers unless given explicitly.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepstar/core"
	"github.com/katalvlaran/stepstar/gridgraph"
	"github.com/katalvlaran/stepstar/heuristic"
)

// Sentinel errors.
var (
	// ErrInvalid wraps structural problems found while decoding or validating.
	ErrInvalid = errors.New("scenario: invalid")

	// ErrMissingEndpoint indicates a grid without start or goal.
	ErrMissingEndpoint = errors.New("scenario: start or goal missing")
)

var validate = validator.New()

// Scenario is a decoded scenario file. Exactly one of Grid and Graph is set.
type Scenario struct {
	Name      string     `yaml:"name"`
	Heuristic string     `yaml:"heuristic" validate:"omitempty,oneof=zero manhattan euclidean squared-euclidean chebyshev octile hops exact"`
	Grid      *GridSpec  `yaml:"grid"`
	Graph     *GraphSpec `yaml:"graph"`
}

// GridSpec describes a grid host.
type GridSpec struct {
	Rows          []string `yaml:"rows" validate:"required,min=1"`
	Connectivity  int      `yaml:"connectivity" validate:"omitempty,oneof=4 8"`
	DiagonalCost  *float64 `yaml:"diagonal_cost" validate:"omitempty,gte=0"`
	OpenThreshold *int     `yaml:"open_threshold"`
	Start         *[2]int  `yaml:"start"`
	Goal          *[2]int  `yaml:"goal"`
}

// GraphSpec describes a core.Graph host.
type GraphSpec struct {
	Directed bool       `yaml:"directed"`
	Start    string     `yaml:"start" validate:"required"`
	Goal     string     `yaml:"goal" validate:"required"`
	Vertices []string   `yaml:"vertices" validate:"dive,required"`
	Edges    []EdgeSpec `yaml:"edges" validate:"dive"`
}

// EdgeSpec is one edge. Weight defaults to 1; Directed defaults to GraphSpec.Directed.
type EdgeSpec struct {
	From     string   `yaml:"from" validate:"required"`
	To       string   `yaml:"to" validate:"required"`
	Weight   *float64 `yaml:"weight" validate:"omitempty,gte=0"`
	Directed *bool    `yaml:"directed"`
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}

	return s, nil
}

// Decode reads one scenario document from r and validates it.
func Decode(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if (s.Grid == nil) == (s.Graph == nil) {
		return nil, fmt.Errorf("%w: exactly one of grid and graph is required", ErrInvalid)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return &s, nil
}

// Policy resolves the heuristic: override if non-empty, else the scenario's
// own choice, else manhattan for 4-connected grids, octile for 8-connected
// grids and hops for graphs.
func (s *Scenario) Policy(override string) (heuristic.Policy, error) {
	switch {
	case override != "":
		return heuristic.ParsePolicy(override)
	case s.Heuristic != "":
		return heuristic.ParsePolicy(s.Heuristic)
	case s.Grid != nil && s.Grid.Connectivity == 8:
		return heuristic.Octile, nil
	case s.Grid != nil:
		return heuristic.Manhattan, nil
	}
	return heuristic.Hops, nil
}

// BuildGrid constructs the grid host and its endpoints.
func (g *GridSpec) BuildGrid() (*gridgraph.GridGraph, gridgraph.Point, gridgraph.Point, error) {
	var zero gridgraph.Point

	opts := gridgraph.DefaultGridOptions()
	if g.Connectivity == 8 {
		opts.Conn = gridgraph.Conn8
	}
	if g.DiagonalCost != nil {
		opts.DiagonalCost = *g.DiagonalCost
	}
	if g.OpenThreshold != nil {
		opts.OpenThreshold = *g.OpenThreshold
	}

	gg, m, err := gridgraph.Parse(g.Rows, opts)
	if err != nil {
		return nil, zero, zero, err
	}
	if g.Start != nil {
		m.Start, m.HasStart = gridgraph.Point{Row: g.Start[0], Col: g.Start[1]}, true
	}
	if g.Goal != nil {
		m.Goal, m.HasGoal = gridgraph.Point{Row: g.Goal[0], Col: g.Goal[1]}, true
	}
	if !m.HasStart || !m.HasGoal {
		return nil, zero, zero, ErrMissingEndpoint
	}

	return gg, m.Start, m.Goal, nil
}

// BuildGraph constructs the graph host. The graph is weighted if any edge
// carries a weight; edges without one cost 1 in that case.
func (g *GraphSpec) BuildGraph() (*core.Graph, error) {
	weighted := false
	for _, e := range g.Edges {
		if e.Weight != nil {
			weighted = true
			break
		}
	}

	opts := []core.GraphOption{core.WithDirected(g.Directed), core.WithMultiEdges(), core.WithLoops()}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	cg := core.NewMixedGraph(opts...)

	for _, v := range g.Vertices {
		if err := cg.AddVertex(v); err != nil {
			return nil, fmt.Errorf("%w: vertex %q: %v", ErrInvalid, v, err)
		}
	}
	for i, e := range g.Edges {
		w := 0.0
		if weighted {
			w = 1
			if e.Weight != nil {
				w = *e.Weight
			}
		}
		var eopts []core.EdgeOption
		if e.Directed != nil {
			eopts = append(eopts, core.WithEdgeDirected(*e.Directed))
		}
		if _, err := cg.AddEdge(e.From, e.To, w, eopts...); err != nil {
			return nil, fmt.Errorf("%w: edge %d %s→%s: %v", ErrInvalid, i, e.From, e.To, err)
		}
	}

	return cg, nil
}
