// Package simulate declares the Result model, resource-guard options,
// and sentinel errors of the broadcast simulator.
package simulate

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for simulator invocation.
var (
	// ErrGraphNil is returned if a nil tree pointer is passed.
	ErrGraphNil = errors.New("simulate: tree is nil")

	// ErrRootNotFound is returned when the root vertex is absent.
	ErrRootNotFound = errors.New("simulate: root vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("simulate: invalid option supplied")
)

// Status tags the outcome of a simulation run.
type Status int

const (
	// StatusOK: the run completed; Rounds is the telephone-model answer.
	StatusOK Status = iota

	// StatusTimeout: the wall-clock budget (or context) expired first.
	StatusTimeout

	// StatusRoundLimit: the hard round cap was hit with terminals still
	// uninformed.
	StatusRoundLimit

	// StatusIterationLimit: the depth computation needed more stack
	// steps than its iteration cap allows.
	StatusIterationLimit
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusTimeout:
		return "timeout"
	case StatusRoundLimit:
		return "round-limit"
	case StatusIterationLimit:
		return "iteration-limit"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the simulator outcome. Rounds is meaningful only when
// Status is StatusOK.
type Result struct {
	Rounds int    `json:"rounds"`
	Status Status `json:"status"`
}

// Default resource guards.
const (
	// DefaultTimeout bounds one simulation run.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxRounds is the hard cap on simulated rounds.
	DefaultMaxRounds = 1000

	// DefaultMaxIterations caps the iterative depth computation.
	DefaultMaxIterations = 1_000_000
)

// Option configures the simulator via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Simulate is invoked.
type Option func(*Options)

// Options holds the simulator's resource guards.
type Options struct {
	// Ctx allows external cancellation; expiry reports StatusTimeout.
	Ctx context.Context

	// Timeout is the wall-clock budget for one run.
	Timeout time.Duration

	// MaxRounds caps the number of simulated rounds.
	MaxRounds int

	// MaxIterations caps the stack steps of the depth computation.
	MaxIterations int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the guards used when no Option is supplied.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Timeout:       DefaultTimeout,
		MaxRounds:     DefaultMaxRounds,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithContext sets a custom context; cancellation surfaces as
// StatusTimeout in the Result.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeout sets the wall-clock budget (must be > 0).
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: Timeout must be positive (%v)", ErrOptionViolation, d)

			return
		}
		o.Timeout = d
	}
}

// WithMaxRounds sets the round cap (must be > 0).
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxRounds must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxRounds = n
	}
}

// WithMaxIterations sets the depth-computation cap (must be > 0).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxIterations = n
	}
}
