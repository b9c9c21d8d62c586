// File: paths.go
// Role: Simple-path enumeration between two cities.
// Determinism:
//   - Paths are emitted in DFS order, neighbors visited by ascending city ID.
// Concurrency:
//   - The walker is single-goroutine; visit is never called concurrently.

package dfs

import (
	"errors"

	"github.com/katalvlaran/fuelroute/core"
)

// errPathLimit ends enumeration once MaxPaths paths were emitted.
var errPathLimit = errors.New("dfs: path limit reached")

// pathWalker carries the partial path down the recursion. onPath mirrors
// path as a set; both are pushed on descend and popped on backtrack so no
// branch ever observes another branch's cities.
type pathWalker struct {
	graph   *core.Graph
	dest    string
	opts    DFSOptions
	visit   func(path []string) error
	path    []string
	onPath  map[string]bool
	emitted int
}

// SimplePaths calls visit once for every simple directed path from origin to
// dest. Each call receives its own copy of the path; visit may keep it.
//
// Rules:
//   - origin == dest yields the single path [origin], even when origin is not
//     part of the graph.
//   - origin or dest missing from the graph yields no paths and no error.
//   - A city already on the partial path is never entered again, so the
//     search depth is bounded by the number of cities.
//   - Reaching dest emits the path and stops that branch.
//
// If visit returns ErrStopEnumeration, enumeration ends and SimplePaths
// returns nil. Any other visit error is returned as is.
//
// Complexity: exponential in the worst case (dense graphs); O(V) memory
// besides what visit retains.
func SimplePaths(g *core.Graph, origin, dest string, visit func(path []string) error, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	if visit == nil {
		return ErrNilVisitor
	}
	dopts := applyOptions(opts)

	w := &pathWalker{
		graph:  g,
		dest:   dest,
		opts:   dopts,
		visit:  visit,
		path:   make([]string, 0, g.CityCount()+1),
		onPath: make(map[string]bool, g.CityCount()+1),
	}

	var err error
	switch {
	case origin == dest:
		err = w.emit(append(w.path, origin))
	case !g.HasCity(origin) || !g.HasCity(dest):
		return nil
	default:
		err = w.walk(origin)
	}

	if errors.Is(err, ErrStopEnumeration) || errors.Is(err, errPathLimit) {
		return nil
	}

	return err
}

// AllSimplePaths collects every simple path from origin to dest.
// The result is empty (not nil-error) when dest is unreachable.
func AllSimplePaths(g *core.Graph, origin, dest string, opts ...Option) ([][]string, error) {
	var paths [][]string
	err := SimplePaths(g, origin, dest, func(path []string) error {
		paths = append(paths, path)

		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return paths, nil
}

func (w *pathWalker) walk(id string) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.path = append(w.path, id)
	w.onPath[id] = true
	err := w.expand(id)
	delete(w.onPath, id)
	w.path = w.path[:len(w.path)-1]

	return err
}

func (w *pathWalker) expand(id string) error {
	if id == w.dest {
		return w.emit(w.path)
	}
	// len(path)-1 roads travelled so far
	if w.opts.MaxDepth >= 0 && len(w.path)-1 >= w.opts.MaxDepth {
		return nil
	}

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return err
	}
	for _, r := range nbs {
		if w.onPath[r.To] {
			continue
		}
		if err = w.walk(r.To); err != nil {
			return err
		}
	}

	return nil
}

func (w *pathWalker) emit(path []string) error {
	snapshot := make([]string, len(path))
	copy(snapshot, path)
	if err := w.visit(snapshot); err != nil {
		return err
	}
	w.emitted++
	if w.opts.MaxPaths > 0 && w.emitted >= w.opts.MaxPaths {
		return errPathLimit
	}

	return nil
}
