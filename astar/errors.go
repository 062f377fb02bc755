package astar

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig matches every error returned by Initialize.
var ErrInvalidConfig = errors.New("astar: invalid configuration")

// Specific configuration failures. Initialize wraps them in a *ConfigError.
var (
	// ErrNilGraph indicates Initialize received a nil Graph.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates the Search was built without a heuristic.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrStartNotFound indicates the start position is not part of the graph.
	ErrStartNotFound = errors.New("astar: start position not in graph")

	// ErrGoalNotFound indicates the goal position is not part of the graph.
	ErrGoalNotFound = errors.New("astar: goal position not in graph")

	// ErrStartIsGoal indicates start and goal are the same position.
	ErrStartIsGoal = errors.New("astar: start equals goal")

	// ErrNegativeCost indicates an arc with a negative or NaN cost.
	ErrNegativeCost = errors.New("astar: negative edge cost")

	// ErrNotInitialized indicates Run was called before a successful Initialize.
	ErrNotInitialized = errors.New("astar: search not initialized")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// ErrSearchExhausted is returned by Run when the search ends Failed.
// It is deliberately not an ErrInvalidConfig.
var ErrSearchExhausted = errors.New("astar: search exhausted without reaching goal")

// ConfigError describes which part of the configuration was rejected.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrInvalidConfig, e.Field, e.Err)
}

// Unwrap exposes the specific sentinel.
func (e *ConfigError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrInvalidConfig) match any ConfigError.
func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfig }

func configErr(field string, err error) error {
	return &ConfigError{Field: field, Err: err}
}
