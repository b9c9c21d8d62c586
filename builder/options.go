// SPDX-License-Identifier: MIT
// Package: fuelroute/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"errors"
	"math/rand"
	"strconv"
)

// Sentinel errors returned by constructors.
var (
	ErrTooFewCities       = errors.New("builder: too few cities")
	ErrInvalidProbability = errors.New("builder: probability must be in [0,1]")
	ErrNeedRandSource     = errors.New("builder: random source required")
)

// Option customizes a builderConfig before construction begins.
type Option func(*builderConfig)

type builderConfig struct {
	rng         *rand.Rand
	idFn        func(int) string
	fuelFn      func(*rand.Rand) float64
	priceFn     func(*rand.Rand) float64
	stationProb float64
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:        strconv.Itoa,
		fuelFn:      UniformRange(1, 10),
		priceFn:     UniformRange(1, 10),
		stationProb: 1,
	}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithIDScheme sets the city ID generator: index → ID. Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithFuelFn overrides the per-road fuel generator. Panics on nil.
func WithFuelFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("builder: WithFuelFn(nil)")
	}
	return func(c *builderConfig) { c.fuelFn = fn }
}

// WithPriceFn overrides the per-station price generator. Panics on nil.
func WithPriceFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("builder: WithPriceFn(nil)")
	}
	return func(c *builderConfig) { c.priceFn = fn }
}

// WithStationProbability sets the chance that a city gets a station. It has
// no effect without an RNG (every city then gets one). Panics outside [0,1].
func WithStationProbability(p float64) Option {
	if p < 0 || p > 1 {
		panic("builder: WithStationProbability(p∉[0,1])")
	}
	return func(c *builderConfig) { c.stationProb = p }
}

// UniformRange returns a generator of whole numbers in [lo, hi]. Without an
// RNG it always yields lo.
func UniformRange(lo, hi int) func(*rand.Rand) float64 {
	if hi < lo {
		panic("builder: UniformRange(hi<lo)")
	}
	return func(r *rand.Rand) float64 {
		if r == nil {
			return float64(lo)
		}
		return float64(lo + r.Intn(hi-lo+1))
	}
}
