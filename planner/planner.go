// File: planner.go
// Role: Orchestrates enumeration (dfs) and pricing (fuel) for one query.
// Determinism:
//   - The winner is the lowest cost, ties broken by enumeration order, so the
//     answer does not depend on the worker count.

package planner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/fuelroute/core"
	"github.com/katalvlaran/fuelroute/dfs"
	"github.com/katalvlaran/fuelroute/fuel"
)

// MinCost returns the cheapest feasible route from in.Origin to
// in.Destination.
//
// The graph is built once from in.Roads. Unless origin and destination are
// the same city, a reachability pass runs first so that an unreachable
// destination is answered without enumerating paths. Every simple path is
// then priced with fuel.CostRoute; infeasible paths are skipped. ErrNoRoute
// is returned when nothing remains. A path that references a road missing
// from the network aborts the query with fuel.ErrMissingRoad.
func MinCost(ctx context.Context, in Input, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Workers < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadWorkers, o.Workers)
	}
	if !(in.Capacity > 0) || math.IsInf(in.Capacity, 0) {
		return nil, fmt.Errorf("%w: %v", fuel.ErrBadCapacity, in.Capacity)
	}
	if err := in.Stations.Validate(); err != nil {
		return nil, err
	}

	g, err := core.BuildGraph(in.Roads)
	if err != nil {
		return nil, err
	}

	logger := o.Logger.WithFields(logrus.Fields{
		"origin":      in.Origin,
		"destination": in.Destination,
		"capacity":    in.Capacity,
	})

	via, err := dfs.Reachable(g, in.Origin, in.Destination, dfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	if via == nil {
		logger.Info("destination not reachable")
		return nil, ErrNoRoute
	}
	logger.WithFields(logrus.Fields{
		"hops": len(via) - 1,
		"via":  via,
	}).Debug("destination reachable")

	c := &collector{
		graph:    g,
		stations: in.Stations,
		capacity: in.Capacity,
		logger:   logger,
	}

	if o.Workers > 1 {
		err = c.runPooled(ctx, in.Origin, in.Destination, o)
	} else {
		err = c.runSequential(ctx, in.Origin, in.Destination, o)
	}
	if err != nil {
		return nil, err
	}

	if c.best == nil {
		logger.WithField("paths", c.evaluated).Info("no path can be fueled")
		return nil, ErrNoRoute
	}

	logger.WithFields(logrus.Fields{
		"paths":    c.evaluated,
		"feasible": c.feasible,
		"cost":     c.best.Cost,
	}).Info("cheapest route found")

	return &Result{
		Best:           *c.best,
		PathsEvaluated: c.evaluated,
		FeasiblePaths:  c.feasible,
	}, nil
}

// collector prices paths and keeps the running minimum. Its fields after
// graph are guarded by mu.
type collector struct {
	graph    *core.Graph
	stations fuel.Stations
	capacity float64
	logger   logrus.FieldLogger

	mu        sync.Mutex
	best      *fuel.Route
	bestIdx   int
	evaluated int
	feasible  int
	err       error
}

func (c *collector) runSequential(ctx context.Context, origin, dest string, o Options) error {
	idx := 0
	return dfs.SimplePaths(c.graph, origin, dest, func(path []string) error {
		idx++
		return c.price(idx, path)
	}, dfs.WithContext(ctx), dfs.WithMaxPaths(o.MaxPaths))
}

func (c *collector) runPooled(ctx context.Context, origin, dest string, o Options) error {
	pool, err := NewPool(PoolConfig{MaxWorkers: o.Workers})
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		wg  sync.WaitGroup
		idx int
	)
	err = dfs.SimplePaths(c.graph, origin, dest, func(path []string) error {
		if ferr := c.failure(); ferr != nil {
			return ferr
		}
		idx++
		i := idx
		wg.Add(1)
		if serr := pool.Submit(func() {
			defer wg.Done()
			_ = c.price(i, path)
		}); serr != nil {
			wg.Done()
			return fmt.Errorf("planner: submit path: %w", serr)
		}

		return nil
	}, dfs.WithContext(ctx), dfs.WithMaxPaths(o.MaxPaths))
	wg.Wait()

	if err != nil {
		return err
	}

	return c.failure()
}

// price costs one path and folds it into the minimum. Only hard errors are
// returned; infeasible paths are logged and dropped.
func (c *collector) price(idx int, path []string) error {
	route, err := fuel.CostRoute(c.graph, c.stations, c.capacity, path)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.evaluated++

	switch {
	case errors.Is(err, fuel.ErrInfeasible):
		c.logger.WithField("path", path).Debugf("skipping path: %v", err)
		return nil
	case err != nil:
		if c.err == nil {
			c.err = err
		}
		return err
	}

	c.feasible++
	c.logger.WithFields(logrus.Fields{"path": path, "cost": route.Cost}).Debug("path priced")
	if c.best == nil || route.Cost < c.best.Cost || (route.Cost == c.best.Cost && idx < c.bestIdx) {
		c.best = &route
		c.bestIdx = idx
	}

	return nil
}

func (c *collector) failure() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.err
}

// FormatResult renders the outcome of MinCost as one human-readable line.
func FormatResult(res *Result, err error) string {
	switch {
	case errors.Is(err, ErrNoRoute) || (err == nil && res == nil):
		return "Not possible to travel from origin to destination"
	case err != nil:
		return "Error: " + err.Error()
	}

	return "Minimum Cost is " + strconv.FormatFloat(res.Best.Cost, 'f', -1, 64) + "."
}
