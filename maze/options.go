// SPDX-License-Identifier: MIT

package maze

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/mazes/kruskal"
)

// DefaultTileSize is the pixel size hint handed to renderers.
const DefaultTileSize = 20

// Option customizes a Maze before its spanning tree is built.
type Option func(*config)

// config collects the tree-builder options plus the engine's own settings.
type config struct {
	tree     []kruskal.Option
	seeded   bool
	tileSize int
}

func newConfig(opts []Option) config {
	c := config{tileSize: DefaultTileSize}
	for _, opt := range opts {
		opt(&c)
	}
	if !c.seeded {
		// Clock seed goes first so explicit options still win.
		c.tree = append([]kruskal.Option{kruskal.WithSeed(time.Now().UnixNano())}, c.tree...)
	}
	return c
}

// WithSeed makes wall generation reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.tree = append(c.tree, kruskal.WithSeed(seed))
		c.seeded = true
	}
}

// WithRand supplies the RNG used for edge weights. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *config) {
		c.tree = append(c.tree, kruskal.WithRand(r))
		c.seeded = true
	}
}

// WithMethod selects kruskal.MethodKruskal (default) or kruskal.MethodPrim.
func WithMethod(m string) Option {
	return func(c *config) {
		c.tree = append(c.tree, kruskal.WithMethod(m))
	}
}

// WithVerticalBias favors vertical (and hex diagonal) corridors.
func WithVerticalBias(on bool) Option {
	return func(c *config) {
		c.tree = append(c.tree, kruskal.WithVerticalBias(on))
	}
}

// WithHorizontalBias favors horizontal corridors.
func WithHorizontalBias(on bool) Option {
	return func(c *config) {
		c.tree = append(c.tree, kruskal.WithHorizontalBias(on))
	}
}

// WithWeightFn replaces random edge weights. Panics on nil.
func WithWeightFn(fn kruskal.WeightFn) Option {
	if fn == nil {
		panic("maze: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.tree = append(c.tree, kruskal.WithWeightFn(fn))
		c.seeded = true
	}
}

// WithTileSize stores a rendering hint. Panics if size < 1.
func WithTileSize(size int) Option {
	if size < 1 {
		panic("maze: WithTileSize(size<1)")
	}
	return func(c *config) {
		c.tileSize = size
	}
}
