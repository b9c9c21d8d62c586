// Package core defines the road network the rest of fuelroute works on:
// cities, one-way roads with a fixed fuel requirement, and the derived
// directed Graph built from an edge set.
//
// This file declares Leg, Road, Graph, the sentinel errors and BuildGraph.
//
// Errors:
//
//	ErrEmptyCityID   - a road references a city with an empty ID.
//	ErrNegativeFuel  - a road carries a negative fuel requirement.
//	ErrCityNotFound  - requested city does not exist.
//	ErrEdgeMissing   - a path step has no road in the edge set.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyCityID indicates that a road endpoint has an empty ID.
	ErrEmptyCityID = errors.New("core: city ID is empty")

	// ErrNegativeFuel indicates a road with a fuel requirement below zero.
	ErrNegativeFuel = errors.New("core: negative fuel requirement")

	// ErrCityNotFound indicates an operation referenced a non-existent city.
	ErrCityNotFound = errors.New("core: city not found")

	// ErrEdgeMissing indicates two consecutive path cities with no road between them.
	ErrEdgeMissing = errors.New("core: no road between consecutive cities")
)

// Leg is an ordered pair of cities. It keys the edge set: a Leg present in
// the map is a one-way road From→To.
type Leg struct {
	From string
	To   string
}

// Road is one directed edge of the network together with the fuel a vehicle
// burns travelling it.
type Road struct {
	// From is the source city ID.
	From string

	// To is the destination city ID.
	To string

	// Fuel is the amount of fuel consumed on this road. Never negative.
	Fuel float64
}

// Leg returns the ordered pair identifying r.
func (r Road) Leg() Leg { return Leg{From: r.From, To: r.To} }

// Graph is the directed adjacency derived from an edge set.
//
// A Graph is immutable once BuildGraph returns; the RWMutex only guards the
// lazily sorted neighbor cache so that many goroutines can read at once.
type Graph struct {
	mu sync.RWMutex

	cities map[string]struct{}            // every city seen as an endpoint
	fuel   map[Leg]float64                // leg → fuel requirement
	adj    map[string]map[string]struct{} // from → set of to
	sorted map[string][]Road              // cached Neighbors result, sorted by To
}

// BuildGraph derives the directed adjacency from edges. It is a pure function:
// edges is copied and never retained.
//
// Both endpoints of every leg become cities of the graph. Self-loops are kept
// in the edge set but can never appear on a simple path.
//
// Complexity: O(E) time and space.
func BuildGraph(edges map[Leg]float64) (*Graph, error) {
	g := &Graph{
		cities: make(map[string]struct{}, len(edges)),
		fuel:   make(map[Leg]float64, len(edges)),
		adj:    make(map[string]map[string]struct{}, len(edges)),
		sorted: make(map[string][]Road),
	}

	var (
		leg  Leg
		need float64
	)
	for leg, need = range edges {
		if leg.From == "" || leg.To == "" {
			return nil, ErrEmptyCityID
		}
		if need < 0 {
			return nil, fmtLegErr(ErrNegativeFuel, leg)
		}

		g.cities[leg.From] = struct{}{}
		g.cities[leg.To] = struct{}{}
		g.fuel[leg] = need

		out, ok := g.adj[leg.From]
		if !ok {
			out = make(map[string]struct{})
			g.adj[leg.From] = out
		}
		out[leg.To] = struct{}{}
	}

	return g, nil
}

// BuildGraphFromRoads is BuildGraph over a road slice. A repeated leg keeps
// the last fuel value, matching map assignment semantics.
func BuildGraphFromRoads(roads []Road) (*Graph, error) {
	edges := make(map[Leg]float64, len(roads))
	for _, r := range roads {
		edges[r.Leg()] = r.Fuel
	}

	return BuildGraph(edges)
}
