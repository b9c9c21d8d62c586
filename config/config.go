// Package config loads the fuel route configuration record from TOML.
//
// A record carries the road network, the station prices, the tank capacity
// and the trip endpoints, plus a few informational counts and the logging
// setup used by the command line tool.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/fuelroute/core"
	"github.com/katalvlaran/fuelroute/fuel"
)

// Validation errors.
var (
	ErrNotFound       = errors.New("config: file not found")
	ErrBadTank        = errors.New("config: fuel_tank must be a positive number")
	ErrNoOrigin       = errors.New("config: origin is required")
	ErrNoDestination  = errors.New("config: destination is required")
	ErrBadRoad        = errors.New("config: invalid road")
	ErrBadStation     = errors.New("config: invalid station")
	ErrBadWorkerCount = errors.New("config: workers must not be negative")
)

// Config is the configuration record.
type Config struct {
	// Informational counts. A mismatch with the actual data is only logged.
	NoFuelStations int `toml:"no_fuel_stations"`
	NoCities       int `toml:"no_cities"`
	NoRoads        int `toml:"roads"`

	FuelTank    float64 `toml:"fuel_tank"`
	Origin      string  `toml:"origin"`
	Destination string  `toml:"destination"`

	// Workers > 1 costs paths on a goroutine pool of that size.
	Workers int `toml:"workers"`
	// MaxPaths caps enumeration; 0 means every simple path.
	MaxPaths int `toml:"max_paths"`

	Roads    []Road             `toml:"road"`
	Stations map[string]float64 `toml:"stations"`

	Log LogConfig `toml:"log"`
}

// Road is one [[road]] table.
type Road struct {
	From string  `toml:"from"`
	To   string  `toml:"to"`
	Fuel float64 `toml:"fuel"`
}

// LogConfig controls the command line logger. An empty File logs to stdout
// only; otherwise the file is rotated.
type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// Load reads, defaults and validates the TOML file at path.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	warnUndecoded(md)

	return finish(&cfg)
}

// Decode parses a TOML document held in memory.
func Decode(data string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to decode: %w", err)
	}
	warnUndecoded(md)

	return finish(&cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.CheckCounts()

	return cfg, nil
}

func warnUndecoded(md toml.MetaData) {
	for _, key := range md.Undecoded() {
		log.Warnf("config: unknown key %q ignored", key.String())
	}
}

func (c *Config) applyDefaults() {
	if c.Workers == 0 {
		c.Workers = 1
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 100
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 7
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = 30
	}
}

// Validate checks every field the computation depends on.
func (c *Config) Validate() error {
	if !(c.FuelTank > 0) || math.IsInf(c.FuelTank, 0) {
		return fmt.Errorf("%w: %v", ErrBadTank, c.FuelTank)
	}
	if c.Origin == "" {
		return ErrNoOrigin
	}
	if c.Destination == "" {
		return ErrNoDestination
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrBadWorkerCount, c.Workers)
	}
	for i, r := range c.Roads {
		if r.From == "" || r.To == "" {
			return fmt.Errorf("%w: road #%d has an empty endpoint", ErrBadRoad, i+1)
		}
		if r.Fuel < 0 || math.IsNaN(r.Fuel) || math.IsInf(r.Fuel, 0) {
			return fmt.Errorf("%w: road %s→%s fuel %v", ErrBadRoad, r.From, r.To, r.Fuel)
		}
	}
	if err := c.StationPrices().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadStation, err)
	}

	return nil
}

// CheckCounts logs a warning for every informational count that disagrees
// with the data. Zero counts are treated as unset.
func (c *Config) CheckCounts() {
	edges := c.Edges()
	cities := make(map[string]struct{})
	for leg := range edges {
		cities[leg.From] = struct{}{}
		cities[leg.To] = struct{}{}
	}
	for s := range c.Stations {
		cities[s] = struct{}{}
	}
	cities[c.Origin] = struct{}{}
	cities[c.Destination] = struct{}{}

	check := func(name string, declared, actual int) {
		if declared != 0 && declared != actual {
			log.WithFields(log.Fields{"declared": declared, "actual": actual}).
				Warnf("config: %s does not match the data", name)
		}
	}
	check("no_fuel_stations", c.NoFuelStations, len(c.Stations))
	check("roads", c.NoRoads, len(edges))
	// cities may exist without any road; only more cities than declared is suspicious
	if c.NoCities != 0 && len(cities) > c.NoCities {
		log.WithFields(log.Fields{"declared": c.NoCities, "actual": len(cities)}).
			Warn("config: no_cities is lower than the cities referenced")
	}
}

// Edges returns the edge set keyed by ordered city pair.
func (c *Config) Edges() map[core.Leg]float64 {
	edges := make(map[core.Leg]float64, len(c.Roads))
	for _, r := range c.Roads {
		edges[core.Leg{From: r.From, To: r.To}] = r.Fuel
	}

	return edges
}

// StationPrices returns a copy of the station table.
func (c *Config) StationPrices() fuel.Stations {
	st := make(fuel.Stations, len(c.Stations))
	for city, p := range c.Stations {
		st[city] = p
	}

	return st
}

// Example returns the built-in five city scenario: tank 1000, roads
// 1→2 (900), 2→3 (900), 3→5 (200) and stations 1:5, 2:10, 3:7.
func Example() *Config {
	cfg := &Config{
		NoFuelStations: 3,
		NoCities:       5,
		NoRoads:        3,
		FuelTank:       1000,
		Origin:         "1",
		Destination:    "5",
		Roads: []Road{
			{From: "1", To: "2", Fuel: 900},
			{From: "2", To: "3", Fuel: 900},
			{From: "3", To: "5", Fuel: 200},
		},
		Stations: map[string]float64{"1": 5, "2": 10, "3": 7},
	}
	cfg.applyDefaults()

	return cfg
}

// Encode writes cfg as TOML, roads sorted by (from, to).
func (c *Config) Encode(w io.Writer) error {
	out := *c
	out.Roads = append([]Road(nil), c.Roads...)
	sort.SliceStable(out.Roads, func(i, j int) bool {
		if out.Roads[i].From != out.Roads[j].From {
			return out.Roads[i].From < out.Roads[j].From
		}
		return out.Roads[i].To < out.Roads[j].To
	})

	return toml.NewEncoder(w).Encode(out)
}
