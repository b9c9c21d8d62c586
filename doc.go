// Package fuelroute computes the cheapest way to fuel a trip across a
// directed road network with a bounded fuel tank.
//
// Every road needs a fixed amount of fuel and some cities sell fuel at a
// known unit price. The answer is found by brute force over simple paths
// combined with a greedy purchase rule per path:
//
//	core/     — road network: Leg, Road, Graph, BuildGraph
//	dfs/      — reachability DFS and simple-path enumeration
//	fuel/     — station prices, the BuyAmount rule, CostRoute
//	planner/  — MinCost: enumerate, price, keep the minimum (optional worker pool)
//	config/   — TOML configuration record
//	cmd/fuelroute — command line wrapper
//
// Quick example (the built-in scenario):
//
//	1 ──900──▶ 2 ──900──▶ 3 ──200──▶ 5
//	$5         $10        $7
//
// With a 1000 unit tank the greedy rule fills up at city 1, buys 800 at
// city 2 and 200 at city 3, for a total of 14400.
//
// The purchase rule compares only the current price with the next city's
// price; it is a heuristic and does not guarantee the global optimum.
//
//	go run ./cmd/fuelroute -example
package fuelroute
