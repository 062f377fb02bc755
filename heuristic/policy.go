package heuristic

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/stepstar/gridgraph"
)

// Sentinel errors.
var (
	// ErrUnknownPolicy is returned by ParsePolicy for an unrecognized name.
	ErrUnknownPolicy = errors.New("heuristic: unknown policy")

	// ErrPolicyHost indicates a policy that cannot serve the requested host,
	// such as a geometric policy on a general graph.
	ErrPolicyHost = errors.New("heuristic: policy not supported for this host")

	// ErrNilHost indicates a nil grid or graph.
	ErrNilHost = errors.New("heuristic: host is nil")
)

// Policy selects a heuristic.
type Policy int

const (
	Zero Policy = iota
	Manhattan
	Euclidean
	SquaredEuclidean
	Chebyshev
	Octile
	Hops
	Exact
)

var policyNames = [...]string{
	Zero:             "zero",
	Manhattan:        "manhattan",
	Euclidean:        "euclidean",
	SquaredEuclidean: "squared-euclidean",
	Chebyshev:        "chebyshev",
	Octile:           "octile",
	Hops:             "hops",
	Exact:            "exact",
}

// String returns the policy name accepted by ParsePolicy.
func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}
	return policyNames[p]
}

// ParsePolicy maps a name (case-insensitive) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range policyNames {
		if n == name {
			return Policy(i), nil
		}
	}

	return Zero, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Policies lists every policy in declaration order.
func Policies() []Policy {
	out := make([]Policy, len(policyNames))
	for i := range out {
		out[i] = Policy(i)
	}
	return out
}

// Geometric reports whether p needs grid coordinates.
func (p Policy) Geometric() bool {
	switch p {
	case Manhattan, Euclidean, SquaredEuclidean, Chebyshev, Octile:
		return true
	}
	return false
}

// Admissible reports whether p never overestimates the remaining cost on a
// grid with the given connectivity and diagonal cost (orthogonal steps cost 1).
// Graph policies are admissible on every host.
func (p Policy) Admissible(conn gridgraph.Connectivity, diagonalCost float64) bool {
	if conn == gridgraph.Conn4 {
		return p != SquaredEuclidean
	}
	switch p {
	case Zero, Octile, Hops, Exact:
		return true
	case Manhattan:
		return diagonalCost >= 2
	case Euclidean:
		return diagonalCost >= math.Sqrt2
	case Chebyshev:
		return diagonalCost >= 1
	}

	return false
}
