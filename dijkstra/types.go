package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	// Hop distances on unweighted graphs are the job of package bfs.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a non-positive or NaN InfEdgeThreshold,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("dijkstra: destination not reached")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – vertices farther than this are not explored. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable. Default +Inf.
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are considered non-traversable.
// Panics with ErrBadInfThreshold on a non-positive or NaN value.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex ID: no predecessor map, no distance cap,
// no impassable edges.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
