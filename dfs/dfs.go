// Package dfs implements depth-first search over a core.Graph road network.
//
// Key features:
//   - DFS(g, startID, opts...): reachability traversal from one city
//   - Reachable: discovery chain between two cities, nil when unreachable
//   - SimplePaths / AllSimplePaths: every simple directed path between two cities
//   - Limits: MaxDepth, MaxPaths
//   - Cancellation via context.Context
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if DFS startID is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by a path visitor.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/fuelroute/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs a depth-first reachability traversal from startID.
// Returns DFSResult or an error if aborted by context.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := applyOptions(opts)
	if !g.HasCity(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.CityCount()
	res := &DFSResult{
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}
	if err := walker.traverse(startID, 0); err != nil {
		return res, err
	}

	return res, nil
}

// Reachable returns the chain of cities through which DFS from from first
// discovered to, or nil when to cannot be reached. Every city reaches itself,
// including one that is not in the graph, and yields [from].
func Reachable(g *core.Graph, from, to string, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if from == to {
		return []string{from}, nil
	}
	if !g.HasCity(from) || !g.HasCity(to) {
		return nil, nil
	}
	res, err := DFS(g, from, opts...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(to), nil
}

// traverse visits city id at the given depth, recursing to neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}

	for _, r := range nbs {
		if r.To == id {
			continue // self-loop
		}
		if !w.res.Visited[r.To] {
			w.res.Parent[r.To] = id
			if err = w.traverse(r.To, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}
