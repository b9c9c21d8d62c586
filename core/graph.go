// File: graph.go
// Role: Read-only queries over a built Graph (cities, roads, neighborhoods).
// Determinism:
//   - Cities() is sorted lexicographically.
//   - Neighbors() is sorted by destination city ID.
//   - Roads() is sorted by (From, To).
// Concurrency:
//   - All methods are safe for concurrent use; only the neighbor cache mutates.

package core

import (
	"fmt"
	"sort"
)

// HasCity reports whether id is an endpoint of at least one road.
// Complexity: O(1).
func (g *Graph) HasCity(id string) bool {
	_, ok := g.cities[id]

	return ok
}

// Cities returns every city ID in lexicographic order.
// Complexity: O(V log V).
func (g *Graph) Cities() []string {
	out := make([]string, 0, len(g.cities))
	for id := range g.cities {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// CityCount returns the number of distinct cities.
func (g *Graph) CityCount() int { return len(g.cities) }

// RoadCount returns the number of directed roads.
func (g *Graph) RoadCount() int { return len(g.fuel) }

// Fuel returns the fuel requirement of the road from→to and whether that
// road exists.
// Complexity: O(1).
func (g *Graph) Fuel(from, to string) (float64, bool) {
	need, ok := g.fuel[Leg{From: from, To: to}]

	return need, ok
}

// Neighbors returns the outgoing roads of id sorted by destination ID.
//
// A city that only appears as a destination has no outgoing roads and yields
// an empty slice. An unknown city yields ErrCityNotFound.
//
// The returned slice is shared with the cache; callers must not modify it.
//
// Complexity: O(d log d) on first call for id, O(1) afterwards.
func (g *Graph) Neighbors(id string) ([]Road, error) {
	if !g.HasCity(id) {
		return nil, fmt.Errorf("%w: %q", ErrCityNotFound, id)
	}

	g.mu.RLock()
	cached, ok := g.sorted[id]
	g.mu.RUnlock()
	if ok {
		return cached, nil
	}

	out := make([]Road, 0, len(g.adj[id]))
	for to := range g.adj[id] {
		out = append(out, Road{From: id, To: to, Fuel: g.fuel[Leg{From: id, To: to}]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	g.mu.Lock()
	g.sorted[id] = out
	g.mu.Unlock()

	return out, nil
}

// Roads returns every road sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Roads() []Road {
	out := make([]Road, 0, len(g.fuel))
	for leg, need := range g.fuel {
		out = append(out, Road{From: leg.From, To: leg.To, Fuel: need})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// PathFuel sums the fuel requirement along path. A consecutive pair without a
// road yields ErrEdgeMissing wrapped with the pair.
// Complexity: O(len(path)).
func (g *Graph) PathFuel(path []string) (float64, error) {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		need, ok := g.Fuel(path[i], path[i+1])
		if !ok {
			return 0, fmtLegErr(ErrEdgeMissing, Leg{From: path[i], To: path[i+1]})
		}
		total += need
	}

	return total, nil
}

func fmtLegErr(err error, leg Leg) error {
	return fmt.Errorf("%w: %q→%q", err, leg.From, leg.To)
}
