// Package planner finds the cheapest way to fuel a trip across the road
// network: it enumerates every simple path, prices each one with the greedy
// purchase rule and keeps the minimum.
package planner

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/fuelroute/core"
	"github.com/katalvlaran/fuelroute/fuel"
)

// ErrNoRoute is returned when no simple path exists or none can be fueled.
// It is distinct from a successful zero-cost result.
var ErrNoRoute = errors.New("planner: no route from origin to destination")

// ErrBadWorkers is returned for a negative worker count.
var ErrBadWorkers = errors.New("planner: worker count must not be negative")

// Input is one min-cost query. Roads and Stations are read, never modified.
type Input struct {
	Roads       map[core.Leg]float64
	Stations    fuel.Stations
	Capacity    float64
	Origin      string
	Destination string
}

// Result is the cheapest feasible route plus enumeration statistics.
type Result struct {
	// Best is the cheapest route. Ties go to the path enumerated first.
	Best fuel.Route

	// PathsEvaluated counts simple paths priced.
	PathsEvaluated int

	// FeasiblePaths counts paths that could be fueled.
	FeasiblePaths int
}

// Options configures MinCost.
type Options struct {
	// Logger receives per-query info and per-path debug entries.
	Logger logrus.FieldLogger

	// Workers > 1 prices paths concurrently on a pool of that size.
	Workers int

	// MaxPaths, if positive, stops enumeration after that many paths.
	MaxPaths int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the standard logger, one worker and no path limit.
func DefaultOptions() Options {
	return Options{
		Logger:  logrus.StandardLogger(),
		Workers: 1,
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers sets the number of goroutines pricing paths. 0 and 1 both mean
// sequential evaluation.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithMaxPaths caps the number of enumerated paths.
func WithMaxPaths(n int) Option {
	return func(o *Options) { o.MaxPaths = n }
}
