// Command fuelroute prints the minimum fuel cost of a trip described by a
// TOML configuration record.
//
//	fuelroute -config trip.toml
//	fuelroute -example
//	fuelroute -print-example > trip.toml
//	fuelroute -random 8 -seed 3
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/fuelroute/config"
	"github.com/katalvlaran/fuelroute/planner"
)

func main() {
	configPath := flag.String("config", "fuelroute.toml", "Path to configuration file")
	useExample := flag.Bool("example", false, "Run the built-in five city scenario instead of -config")
	printExample := flag.Bool("print-example", false, "Write the built-in scenario as TOML to stdout and exit")
	workers := flag.Int("workers", 0, "Override the configured number of pricing workers")
	level := flag.String("log-level", "", "Override the configured log level")
	random := flag.Int("random", 0, "Plan over a random network of this many cities instead of -config")
	seed := flag.Int64("seed", 1, "Seed for -random")
	flag.Parse()

	if *printExample {
		if err := config.Example().Encode(os.Stdout); err != nil {
			log.Fatalf("encoding example failed: %v", err)
		}
		return
	}

	var (
		cfg *config.Config
		err error
	)
	switch {
	case *random > 0:
		cfg, err = randomConfig(*random, *seed)
	case *useExample:
		cfg = config.Example()
	default:
		cfg, err = config.Load(*configPath)
	}
	if err != nil {
		log.Fatalf("preparing configuration failed, err:%v", err)
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *level != "" {
		cfg.Log.Level = *level
	}
	SetupLogger(cfg.Log)

	log.WithFields(log.Fields{
		"roads":    len(cfg.Roads),
		"stations": len(cfg.Stations),
		"tank":     cfg.FuelTank,
		"workers":  cfg.Workers,
	}).Infof("planning %s → %s", cfg.Origin, cfg.Destination)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := planner.MinCost(ctx, planner.Input{
		Roads:       cfg.Edges(),
		Stations:    cfg.StationPrices(),
		Capacity:    cfg.FuelTank,
		Origin:      cfg.Origin,
		Destination: cfg.Destination,
	},
		planner.WithLogger(log.StandardLogger()),
		planner.WithWorkers(cfg.Workers),
		planner.WithMaxPaths(cfg.MaxPaths),
	)
	if err != nil && !errors.Is(err, planner.ErrNoRoute) {
		log.Fatalf("planning failed, err:%v", err)
	}

	if err == nil {
		for _, p := range res.Best.Purchases {
			log.Debugf("buy %v at %s for %v each", p.Amount, p.City, p.Price)
		}
	}
	fmt.Println(planner.FormatResult(res, err))
}
