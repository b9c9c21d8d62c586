package main

import (
	"sort"

	"github.com/katalvlaran/fuelroute/builder"
	"github.com/katalvlaran/fuelroute/config"
)

// randomConfig turns a seeded sparse network of n cities into a record that
// plans from the first city to the last one.
func randomConfig(n int, seed int64) (*config.Config, error) {
	net, err := builder.Build([]builder.Option{
		builder.WithSeed(seed),
		builder.WithStationProbability(0.8),
		builder.WithFuelFn(builder.UniformRange(50, 400)),
		builder.WithPriceFn(builder.UniformRange(3, 12)),
	}, builder.RandomSparse(n, 0.35))
	if err != nil {
		return nil, err
	}

	cfg := config.Example()
	cfg.NoFuelStations = len(net.Stations)
	cfg.NoCities = len(net.Cities)
	cfg.NoRoads = len(net.Roads)
	cfg.Origin = net.Cities[0]
	cfg.Destination = net.Cities[len(net.Cities)-1]
	cfg.Stations = net.Stations
	cfg.Roads = cfg.Roads[:0]
	for leg, need := range net.Roads {
		cfg.Roads = append(cfg.Roads, config.Road{From: leg.From, To: leg.To, Fuel: need})
	}
	sort.Slice(cfg.Roads, func(i, j int) bool {
		if cfg.Roads[i].From != cfg.Roads[j].From {
			return cfg.Roads[i].From < cfg.Roads[j].From
		}
		return cfg.Roads[i].To < cfg.Roads[j].To
	})

	return cfg, cfg.Validate()
}
