// Package core models the road network as a small, read-only directed graph.
//
// Cities are opaque string IDs. A road is a one-way Leg{From, To} carrying
// the fuel a vehicle burns on it. The edge set map[Leg]float64 is the single
// source of connectivity; BuildGraph derives the adjacency used for traversal
// from it once and both the path enumerator (package dfs) and the route
// coster (package fuel) read the same Graph.
//
// Core functions:
//
//	BuildGraph(edges map[Leg]float64) (*Graph, error)   // O(E)
//	BuildGraphFromRoads(roads []Road) (*Graph, error)   // O(E)
//
//	HasCity(id string) bool                  // O(1)
//	Fuel(from, to string) (float64, bool)    // O(1)
//	Neighbors(id string) ([]Road, error)     // sorted by To
//	Cities() []string, Roads() []Road        // sorted snapshots
//	PathFuel(path []string) (float64, error) // sum of legs
//
// Errors:
//
//	ErrEmptyCityID, ErrNegativeFuel, ErrCityNotFound, ErrEdgeMissing
//
// A Graph never changes after BuildGraph returns and is safe for concurrent
// readers.
package core
