// SPDX-License-Identifier: MIT

package heat

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for heat labeling.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("heat: grid is nil")

	// ErrSourceNotFound is returned when the source id is not a cell.
	ErrSourceNotFound = errors.New("heat: source cell not found")

	// ErrUnreachable is returned by PathTo for a cell the BFS never reached.
	ErrUnreachable = errors.New("heat: cell not reachable from source")
)

// Option configures a labeling run.
type Option func(*Options)

// Options holds the cancellation context and the visit hook.
type Options struct {
	// Ctx allows cancellation on very large grids.
	Ctx context.Context

	// OnVisit is called for every dequeued cell with its distance.
	OnVisit func(id, depth int)
}

// DefaultOptions returns context.Background() and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every dequeue.
func WithOnVisit(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a distance run:
//   - Order:  cells in dequeue order.
//   - Depth:  distance from Source per cell id, -1 if unreachable.
//   - Parent: predecessor on the BFS tree per cell id, -1 for Source and
//     unreachable cells.
//   - Max:    the largest distance reached.
type Result struct {
	Source int
	Order  []int
	Depth  []int
	Parent []int
	Max    int
}

// Reached reports whether id was labeled.
func (r *Result) Reached(id int) bool {
	return id >= 0 && id < len(r.Depth) && r.Depth[id] >= 0
}

// PathTo reconstructs the tree path from Source to dest, both included.
// In a perfect maze it is the only path.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
