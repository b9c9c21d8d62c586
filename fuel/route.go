// File: route.go
// Role: Greedy fuel purchase simulation over one path.

package fuel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fuelroute/core"
)

// fuelTolerance is the relative shortfall, against the path's total fuel,
// that is treated as float rounding rather than an empty tank.
const fuelTolerance = 1e-9

// CostRoute simulates driving path with an initially empty tank of the given
// capacity, buying fuel city by city with BuyAmount.
//
// Per leg (cur → next):
//  1. look up the leg; a missing road is ErrMissingRoad.
//  2. decide the purchase with BuyAmount.
//  3. a positive purchase at a city without a station is infeasible.
//  4. pay, fill, drive; running dry before next is infeasible.
//  5. once nothing remains to be bought the rest of the path is already
//     in the tank and the simulation stops.
//
// A single-city path costs 0. Infeasibility is reported as an error wrapping
// ErrInfeasible; callers exclude such paths rather than failing.
//
// Complexity: O(len(path)).
func CostRoute(g *core.Graph, stations Stations, capacity float64, path []string) (Route, error) {
	if g == nil {
		return Route{}, ErrGraphNil
	}
	if !(capacity > 0) || math.IsInf(capacity, 0) {
		return Route{}, ErrBadCapacity
	}
	if len(path) == 0 {
		return Route{}, ErrEmptyPath
	}

	total, err := g.PathFuel(path)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %w", ErrMissingRoad, err)
	}

	route := Route{
		Path:      append([]string(nil), path...),
		TotalFuel: total,
	}

	var (
		tank      float64
		remaining = total
		slack     = fuelTolerance * math.Max(total, 1)
	)
	for i := 0; i+1 < len(path); i++ {
		cur, next := path[i], path[i+1]
		leg, ok := g.Fuel(cur, next)
		if !ok {
			return Route{}, fmt.Errorf("%w: %q→%q", ErrMissingRoad, cur, next)
		}

		price, hasCur := stations.Price(cur)
		nextPrice, hasNext := stations.Price(next)
		buy := BuyAmount(Decision{
			CurrentPrice: price,
			HasCurrent:   hasCur,
			NextPrice:    nextPrice,
			HasNext:      hasNext,
			Leg:          leg,
			Remaining:    remaining,
			Capacity:     capacity,
			Tank:         tank,
		})

		if buy > 0 {
			if !hasCur {
				return Route{}, infeasible(ErrNoStation, cur)
			}
			route.Cost += buy * price
			route.Purchases = append(route.Purchases, Purchase{
				City:   cur,
				Amount: buy,
				Price:  price,
				Cost:   buy * price,
			})
		}

		tank += buy - leg
		if tank < -slack {
			return Route{}, infeasible(ErrOutOfFuel, next)
		}
		if tank < 0 {
			tank = 0
		}

		remaining -= buy
		if remaining == 0 {
			break
		}
	}

	return route, nil
}
