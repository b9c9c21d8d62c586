// SPDX-License-Identifier: MIT
// Package: fuelroute/builder
//
// api.go - public entry point for synthetic road networks.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Resolves config, runs cons in order.
//   - Constructors add roads and stations to a Network; they never panic.
//   - Determinism: same options/seed and constructor order ⇒ identical networks.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fuelroute/core"
	"github.com/katalvlaran/fuelroute/fuel"
)

// Network is a generated trip fixture: the edge set, the station table and
// the city IDs in creation order.
type Network struct {
	Roads    map[core.Leg]float64
	Stations fuel.Stations
	Cities   []string
}

// Constructor applies a deterministic mutation to n using the resolved config.
type Constructor func(n *Network, cfg builderConfig) error

// Build resolves opts and applies every constructor in order. Constructor
// errors are wrapped with "builder: %w".
func Build(opts []Option, cons ...Constructor) (*Network, error) {
	cfg := newBuilderConfig(opts...)
	n := &Network{
		Roads:    make(map[core.Leg]float64),
		Stations: make(fuel.Stations),
	}
	for _, c := range cons {
		if err := c(n, cfg); err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
	}

	return n, nil
}

// Graph builds the core.Graph of n.
func (n *Network) Graph() (*core.Graph, error) {
	return core.BuildGraph(n.Roads)
}

// addCity registers id once, preserving creation order, and rolls a station
// for it.
func (n *Network) addCity(id string, cfg builderConfig) {
	for _, c := range n.Cities {
		if c == id {
			return
		}
	}
	n.Cities = append(n.Cities, id)
	if cfg.rng == nil || cfg.rng.Float64() < cfg.stationProb {
		n.Stations[id] = cfg.priceFn(cfg.rng)
	}
}

func (n *Network) addRoad(from, to string, cfg builderConfig) {
	n.Roads[core.Leg{From: from, To: to}] = cfg.fuelFn(cfg.rng)
}
