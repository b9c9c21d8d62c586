package fuel

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when CostRoute receives a nil graph.
	ErrGraphNil = errors.New("fuel: graph is nil")

	// ErrEmptyPath is returned for a path without cities.
	ErrEmptyPath = errors.New("fuel: path is empty")

	// ErrBadCapacity indicates a tank capacity that is not a positive finite number.
	ErrBadCapacity = errors.New("fuel: tank capacity must be positive")

	// ErrNegativePrice indicates a station with a price below zero.
	ErrNegativePrice = errors.New("fuel: negative station price")

	// ErrMissingRoad marks a path step with no road in the edge set. It means
	// the path and the graph disagree and is never recovered from.
	ErrMissingRoad = errors.New("fuel: path uses a road missing from the network")

	// ErrInfeasible marks a path that cannot be fueled. The concrete reason
	// (ErrNoStation or ErrOutOfFuel) is wrapped alongside.
	ErrInfeasible = errors.New("fuel: path is infeasible")

	// ErrNoStation: fuel must be bought at a city without a station.
	ErrNoStation = errors.New("no fuel station")

	// ErrOutOfFuel: the tank would run dry before the end of a leg, including
	// a leg longer than a full tank.
	ErrOutOfFuel = errors.New("out of fuel")
)

// Stations maps a city to its unit fuel price. A city absent from the map
// has no station.
type Stations map[string]float64

// Price returns the unit price at city and whether city has a station.
func (s Stations) Price(city string) (float64, bool) {
	p, ok := s[city]

	return p, ok
}

// Validate rejects negative or non-finite prices.
func (s Stations) Validate() error {
	for _, city := range s.Cities() {
		p := s[city]
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: %q=%v", ErrNegativePrice, city, p)
		}
	}

	return nil
}

// Cities returns the cities with a station in lexicographic order.
func (s Stations) Cities() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Strings(out)

	return out
}

// Purchase is one stop where fuel was bought.
type Purchase struct {
	City   string
	Amount float64
	Price  float64
	Cost   float64
}

// Route is the outcome of costing one feasible path.
type Route struct {
	// Path is the costed city sequence, origin first.
	Path []string

	// Cost is the total amount paid for fuel.
	Cost float64

	// TotalFuel is the fuel burnt over the whole path.
	TotalFuel float64

	// Purchases lists every stop with a non-zero purchase, in path order.
	Purchases []Purchase
}

func infeasible(reason error, city string) error {
	return fmt.Errorf("%w: %w at %q", ErrInfeasible, reason, city)
}
