package planner_test

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/fuelroute/core"
	"github.com/katalvlaran/fuelroute/fuel"
	"github.com/katalvlaran/fuelroute/planner"
)

// ExampleMinCost prices the five city trip 1→2→3→5 with a 1000 unit tank.
// City 1 is cheaper than city 2, so the tank is filled there; city 3 is
// cheaper than city 2, so only the next leg is bought at city 2.
func ExampleMinCost() {
	in := planner.Input{
		Roads: map[core.Leg]float64{
			{From: "1", To: "2"}: 900,
			{From: "2", To: "3"}: 900,
			{From: "3", To: "5"}: 200,
		},
		Stations:    fuel.Stations{"1": 5, "2": 10, "3": 7},
		Capacity:    1000,
		Origin:      "1",
		Destination: "5",
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	res, err := planner.MinCost(context.Background(), in, planner.WithLogger(logger))
	fmt.Println(planner.FormatResult(res, err))
	for _, p := range res.Best.Purchases {
		fmt.Printf("city %s: %.0f × %.0f = %.0f\n", p.City, p.Amount, p.Price, p.Cost)
	}

	// Output:
	// Minimum Cost is 14400.
	// city 1: 1000 × 5 = 5000
	// city 2: 800 × 10 = 8000
	// city 3: 200 × 7 = 1400
}
