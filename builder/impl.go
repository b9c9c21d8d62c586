// SPDX-License-Identifier: MIT
// Package: fuelroute/builder
//
// impl.go - Chain, Complete and RandomSparse constructors.
//
// Determinism:
//   - Cities are created in index order 0..n-1.
//   - Road trials run for i asc, j asc.

package builder

import "fmt"

const (
	methodChain        = "Chain"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
)

// Chain adds the one-way road sequence 0→1→…→n-1.
func Chain(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d: %w", methodChain, n, ErrTooFewCities)
		}
		for i := 0; i < n; i++ {
			net.addCity(cfg.idFn(i), cfg)
		}
		for i := 0; i+1 < n; i++ {
			net.addRoad(cfg.idFn(i), cfg.idFn(i+1), cfg)
		}

		return nil
	}
}

// Complete adds a road for every ordered pair of distinct cities.
func Complete(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d: %w", methodComplete, n, ErrTooFewCities)
		}
		for i := 0; i < n; i++ {
			net.addCity(cfg.idFn(i), cfg)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					net.addRoad(cfg.idFn(i), cfg.idFn(j), cfg)
				}
			}
		}

		return nil
	}
}

// RandomSparse includes every ordered pair (i,j), i≠j, independently with
// probability p. An RNG is required unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d: %w", methodRandomSparse, n, ErrTooFewCities)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			net.addCity(cfg.idFn(i), cfg)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					net.addRoad(cfg.idFn(i), cfg.idFn(j), cfg)
				}
			}
		}

		return nil
	}
}
