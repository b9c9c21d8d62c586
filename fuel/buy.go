package fuel

import "math"

// Decision is everything the greedy rule looks at when the vehicle stands in
// a city about to drive the next leg.
type Decision struct {
	// CurrentPrice is the unit price where the vehicle stands; HasCurrent is
	// false when the city has no station.
	CurrentPrice float64
	HasCurrent   bool

	// NextPrice is the unit price at the next city on the path; HasNext is
	// false when that city has no station.
	NextPrice float64
	HasNext   bool

	// Leg is the fuel the next road needs.
	Leg float64

	// Remaining is the fuel still to be bought for the rest of the path
	// (fuel needed by all unconsumed legs minus what is in the tank).
	Remaining float64

	// Capacity is the tank size.
	Capacity float64

	// Tank is the fuel currently held.
	Tank float64
}

// BuyAmount returns how much fuel to buy in the current city.
//
// When the next city sells fuel at a strictly higher price, buy as much as is
// useful now: the whole remaining need, capped by the free space in the tank.
// Otherwise wait for the next city and buy just enough to drive this leg, or
// the remaining need if the leg is longer than that.
//
// No branch buys more than the free space in the tank, so the fuel held never
// exceeds Capacity. A leg longer than a full tank therefore leaves the vehicle
// short, which CostRoute reports as ErrOutOfFuel.
//
// Only the immediately next price is compared. Cheaper stations further down
// the path are not considered, so the rule is a local heuristic and can miss
// the global optimum.
//
// The result is never negative.
func BuyAmount(d Decision) float64 {
	var buy float64
	if d.HasNext && d.HasCurrent && d.NextPrice > d.CurrentPrice {
		buy = d.Remaining
	} else if d.Leg > d.Remaining {
		buy = d.Remaining
	} else {
		buy = d.Leg - d.Tank
	}
	buy = math.Min(buy, d.Capacity-d.Tank)

	return math.Max(buy, 0)
}
