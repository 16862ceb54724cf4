package builder

import "errors"

var (
	// ErrTooFewVertices indicates a constructor received a vertex count
	// below its minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability must lie in [0,1]")

	// ErrNeedRandSource indicates a stochastic constructor ran without
	// an RNG; supply WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: random source required")

	// ErrInvalidArity indicates a tree constructor received a
	// non-positive arity or depth.
	ErrInvalidArity = errors.New("builder: arity and depth must be positive")

	// ErrConstructFailed indicates a nil or failing constructor inside
	// BuildGraph.
	ErrConstructFailed = errors.New("builder: construction failed")
)
