package fuel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/fuelroute/fuel"
)

func TestBuyAmount(t *testing.T) {
	cases := []struct {
		name string
		in   fuel.Decision
		want float64
	}{
		{
			name: "next dearer fills a tank",
			in: fuel.Decision{CurrentPrice: 5, HasCurrent: true, NextPrice: 10, HasNext: true,
				Leg: 900, Remaining: 2000, Capacity: 1000},
			want: 1000,
		},
		{
			name: "next dearer capped by remaining need",
			in: fuel.Decision{CurrentPrice: 5, HasCurrent: true, NextPrice: 10, HasNext: true,
				Leg: 100, Remaining: 300, Capacity: 1000},
			want: 300,
		},
		{
			name: "next dearer respects fuel already held",
			in: fuel.Decision{CurrentPrice: 5, HasCurrent: true, NextPrice: 10, HasNext: true,
				Leg: 900, Remaining: 2000, Capacity: 1000, Tank: 100},
			want: 900,
		},
		{
			name: "next cheaper tops up for the leg",
			in: fuel.Decision{CurrentPrice: 10, HasCurrent: true, NextPrice: 7, HasNext: true,
				Leg: 900, Remaining: 1000, Capacity: 1000, Tank: 100},
			want: 800,
		},
		{
			name: "equal price waits",
			in: fuel.Decision{CurrentPrice: 7, HasCurrent: true, NextPrice: 7, HasNext: true,
				Leg: 50, Remaining: 500, Capacity: 1000},
			want: 50,
		},
		{
			name: "no station ahead waits",
			in: fuel.Decision{CurrentPrice: 7, HasCurrent: true,
				Leg: 200, Remaining: 200, Capacity: 1000},
			want: 200,
		},
		{
			name: "tank already covers the leg",
			in: fuel.Decision{CurrentPrice: 7, HasCurrent: true,
				Leg: 200, Remaining: 300, Capacity: 1000, Tank: 500},
			want: 0,
		},
		{
			name: "leg longer than remaining need buys the remainder",
			in: fuel.Decision{CurrentPrice: 7, HasCurrent: true,
				Leg: 500, Remaining: 200, Capacity: 1000, Tank: 300},
			want: 200,
		},
		{
			name: "no station here compares as waiting",
			in: fuel.Decision{NextPrice: 9, HasNext: true,
				Leg: 40, Remaining: 100, Capacity: 1000},
			want: 40,
		},
		{
			name: "waiting never overfills the tank",
			in: fuel.Decision{CurrentPrice: 5, HasCurrent: true, NextPrice: 3, HasNext: true,
				Leg: 60, Remaining: 30, Capacity: 100, Tank: 90},
			want: 10,
		},
		{
			name: "leg longer than a full tank buys a full tank",
			in: fuel.Decision{CurrentPrice: 5, HasCurrent: true,
				Leg: 150, Remaining: 150, Capacity: 100},
			want: 100,
		},
		{
			name: "full tank and dearer next buys nothing",
			in: fuel.Decision{CurrentPrice: 1, HasCurrent: true, NextPrice: 2, HasNext: true,
				Leg: 10, Remaining: 50, Capacity: 100, Tank: 100},
			want: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, fuel.BuyAmount(tc.in))
		})
	}
}
