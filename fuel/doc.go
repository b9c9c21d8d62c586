// Package fuel prices a single path through the road network.
//
// A vehicle starts with an empty tank of fixed capacity and drives the path
// leg by leg. In every city it decides how much to buy with a greedy rule
// (BuyAmount) that compares only the local price with the price one city
// ahead:
//
//   - next city dearer: buy the whole remaining need, at most a full tank.
//   - otherwise: buy only what the coming leg needs beyond the tank.
//
// CostRoute runs that rule over a path and returns a Route with the total
// cost and each purchase, or an error:
//
//   - ErrInfeasible (wrapping ErrNoStation or ErrOutOfFuel):
//     the path cannot be fueled and should simply be skipped.
//   - ErrMissingRoad: the path steps over a road the graph does not have.
//     This is an inconsistency, not a property of the path.
//   - ErrBadCapacity, ErrEmptyPath, ErrGraphNil: bad arguments.
//
// The rule only looks one city ahead, so a path's cost is not necessarily
// the cheapest possible way to fuel that path.
package fuel
