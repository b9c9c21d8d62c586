// Package dfs defines types and options for depth-first traversal of the
// road network: reachability (DFS) and simple-path enumeration (SimplePaths).
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or SimplePaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the DFS start city does not
	// exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrNilVisitor is returned by SimplePaths when visit is nil.
	ErrNilVisitor = errors.New("dfs: path visitor is nil")

	// ErrStopEnumeration may be returned by a path visitor to end
	// enumeration early. SimplePaths then returns nil.
	ErrStopEnumeration = errors.New("dfs: stop enumeration")
)

// Option configures optional behavior of DFS and SimplePaths.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for a traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is checked once per visited city.
	Ctx context.Context

	// MaxDepth, if non-negative, limits how many roads deep the traversal
	// may go. 0 visits only the start city. Default is -1 (no limit).
	MaxDepth int

	// MaxPaths, if positive, stops SimplePaths after that many paths have
	// been emitted. DFS ignores it.
	MaxPaths int
}

// DefaultOptions returns DFSOptions with a background context, no depth
// limit and no path limit.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for traversal.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits traversal depth to limit roads.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithMaxPaths stops SimplePaths after n emitted paths. n <= 0 means no limit.
func WithMaxPaths(n int) Option {
	return func(o *DFSOptions) {
		o.MaxPaths = n
	}
}

// DFSResult captures the outcome of a reachability traversal.
type DFSResult struct {
	// Depth maps each city to its discovery depth (#roads) from the start.
	Depth map[string]int

	// Parent maps each city to the city it was first discovered from.
	// The start city has no entry.
	Parent map[string]string

	// Visited flags which cities were reached.
	Visited map[string]bool
}

// PathTo returns the discovery chain start→…→id recorded in Parent, or nil
// when id was not visited. The chain is a path of the graph but not
// necessarily the one with the fewest roads.
func (r *DFSResult) PathTo(id string) []string {
	if !r.Visited[id] {
		return nil
	}
	path := make([]string, r.Depth[id]+1)
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = id
		id = r.Parent[id]
	}

	return path
}

func applyOptions(opts []Option) DFSOptions {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
