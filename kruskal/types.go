// SPDX-License-Identifier: MIT

package kruskal

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/mazes/grid"
	"github.com/katalvlaran/mazes/topology"
)

// ErrNilGrid indicates that a builder was handed a nil grid.
var ErrNilGrid = errors.New("kruskal: grid is nil")

// ErrNeedRandSource indicates that weights must be drawn but neither an RNG
// nor a custom weight function was configured.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply WithSeed */ }.
var ErrNeedRandSource = errors.New("kruskal: rng is required")

// ErrTopologyMismatch indicates an edge whose endpoints are not adjacent cells
// of the grid it is applied to.
var ErrTopologyMismatch = errors.New("kruskal: edge does not fit the grid")

// ErrUnknownMethod indicates an Options.Method other than MethodKruskal or
// MethodPrim.
var ErrUnknownMethod = errors.New("kruskal: unknown method")

// MethodKruskal selects Kruskal's algorithm (stable sort + union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects randomized Prim (grow from the start cell with a min-heap).
const MethodPrim = "prim"

// DefaultMaxWeight is the exclusive upper bound of random edge weights: the
// largest square grid's cell count, 100·60.
const DefaultMaxWeight = topology.MaxSquareWidth * topology.MaxSquareHeight

// Edge is a candidate passage between two adjacent cells. From, To and Dir
// come from grid.Grid.HalfEdges; Weight decides the order in which edges are
// considered.
type Edge struct {
	From, To int
	Dir      topology.Direction
	Weight   int
}

// WeightFn returns the weight of one half-edge. It receives the configured
// RNG, which may be nil.
type WeightFn func(l grid.Link, r *rand.Rand) int

// Options configures edge weighting and the tree-building method.
// Use DefaultOptions() and the With* helpers.
type Options struct {
	// Method is MethodKruskal or MethodPrim.
	Method string

	// MaxWeight is the exclusive bound of drawn weights. A biased axis draws
	// from [0, MaxWeight/2) instead, so its edges tend to be picked earlier.
	MaxWeight int

	// VerticalBias halves the bound for every non-horizontal edge (square
	// down, hex rightDown/leftDown).
	VerticalBias bool

	// HorizontalBias halves the bound for left/right edges.
	HorizontalBias bool

	// Rand draws weights. Required unless WeightFn is set.
	Rand *rand.Rand

	// WeightFn, when non-nil, replaces random drawing entirely.
	WeightFn WeightFn
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Kruskal with DefaultMaxWeight, no bias and no RNG.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Method:    MethodKruskal,
		MaxWeight: DefaultMaxWeight,
	}
}

// WithMethod sets the tree-building method. Unknown values surface as
// ErrUnknownMethod from Compute.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithRand sets an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("kruskal: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed seeds a fresh RNG, making weights reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithMaxWeight sets the exclusive weight bound. Panics if w < 2, since a
// biased bound of w/2 must stay positive.
func WithMaxWeight(w int) Option {
	if w < 2 {
		panic("kruskal: WithMaxWeight(w<2)")
	}
	return func(o *Options) {
		o.MaxWeight = w
	}
}

// WithVerticalBias toggles the vertical (and diagonal) weight bias.
func WithVerticalBias(on bool) Option {
	return func(o *Options) {
		o.VerticalBias = on
	}
}

// WithHorizontalBias toggles the horizontal weight bias.
func WithHorizontalBias(on bool) Option {
	return func(o *Options) {
		o.HorizontalBias = on
	}
}

// WithWeightFn replaces random weights with fn. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("kruskal: WithWeightFn(nil)")
	}
	return func(o *Options) {
		o.WeightFn = fn
	}
}
