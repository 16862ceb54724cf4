// Package packing declares the Pack type and sentinel errors for the
// greedy packing stage.
package packing

import (
	"errors"
	"math"
)

// Sentinel errors for greedy packing.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("packing: graph is nil")

	// ErrRootNotFound is returned when the root vertex is absent.
	ErrRootNotFound = errors.New("packing: root vertex not found")

	// ErrBadK is returned when k ≤ 0 or k exceeds the terminal count.
	ErrBadK = errors.New("packing: k must satisfy 1 ≤ k ≤ |terminals|")

	// ErrBadDepth is returned when the depth cap is not positive.
	ErrBadDepth = errors.New("packing: depth cap must be positive")

	// ErrTerminalNotFound is returned when a terminal is outside the
	// graph or equals the root.
	ErrTerminalNotFound = errors.New("packing: terminal not in graph or equals root")
)

// Pack is the list of terminals covered by one discovery subtree, in
// BFS discovery order. The first element is the pack representative.
type Pack []string

// Rep returns the pack representative (its first terminal).
func (p Pack) Rep() string { return p[0] }

// Rho returns ⌈√k⌉ for k ≥ 1, the shared structural bound of the
// pipeline: maximum pack count, pack-size target, and per-source
// budget in PMCover. Returns 0 for k ≤ 0.
func Rho(k int) int {
	if k <= 0 {
		return 0
	}

	return int(math.Ceil(math.Sqrt(float64(k))))
}
