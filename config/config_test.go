package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuelroute/config"
	"github.com/katalvlaran/fuelroute/core"
	"github.com/katalvlaran/fuelroute/fuel"
)

const fiveCityTOML = `
no_fuel_stations = 3
no_cities = 5
roads = 3
fuel_tank = 1000.0
origin = "1"
destination = "5"

[[road]]
from = "1"
to = "2"
fuel = 900.0

[[road]]
from = "2"
to = "3"
fuel = 900.0

[[road]]
from = "3"
to = "5"
fuel = 200.0

[stations]
"1" = 5.0
"2" = 10.0
"3" = 7.0
`

func TestDecode_FiveCity(t *testing.T) {
	cfg, err := config.Decode(fiveCityTOML)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, cfg.FuelTank)
	assert.Equal(t, "1", cfg.Origin)
	assert.Equal(t, "5", cfg.Destination)
	assert.Equal(t, map[core.Leg]float64{
		{From: "1", To: "2"}: 900,
		{From: "2", To: "3"}: 900,
		{From: "3", To: "5"}: 200,
	}, cfg.Edges())
	assert.Equal(t, fuel.Stations{"1": 5, "2": 10, "3": 7}, cfg.StationPrices())
}

func TestDecode_Defaults(t *testing.T) {
	cfg, err := config.Decode(fiveCityTOML)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Workers)
	assert.Zero(t, cfg.MaxPaths)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, 100, cfg.Log.MaxSizeMB)
	assert.Equal(t, 7, cfg.Log.MaxBackups)
	assert.Equal(t, 30, cfg.Log.MaxAgeDays)
}

func TestDecode_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"zero tank", `fuel_tank = 0.0
origin = "a"
destination = "b"`, config.ErrBadTank},
		{"missing origin", `fuel_tank = 1.0
destination = "b"`, config.ErrNoOrigin},
		{"missing destination", `fuel_tank = 1.0
origin = "a"`, config.ErrNoDestination},
		{"negative workers", `fuel_tank = 1.0
origin = "a"
destination = "b"
workers = -2`, config.ErrBadWorkerCount},
		{"negative road", `fuel_tank = 1.0
origin = "a"
destination = "b"
[[road]]
from = "a"
to = "b"
fuel = -1.0`, config.ErrBadRoad},
		{"empty endpoint", `fuel_tank = 1.0
origin = "a"
destination = "b"
[[road]]
from = "a"
fuel = 1.0`, config.ErrBadRoad},
		{"negative price", `fuel_tank = 1.0
origin = "a"
destination = "b"
[stations]
a = -3.0`, config.ErrBadStation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Decode(tc.doc)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := config.Decode("fuel_tank = = 3")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "route.toml")
	require.NoError(t, os.WriteFile(path, []byte(fiveCityTOML), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Roads, 3)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, config.ErrNotFound)
}

func TestCheckCounts_WarnsOnMismatch(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	cfg := config.Example()
	cfg.NoRoads = 5
	cfg.NoCities = 2
	cfg.CheckCounts()

	require.Len(t, hook.AllEntries(), 2)
	for _, e := range hook.AllEntries() {
		assert.Equal(t, logrus.WarnLevel, e.Level)
	}

	hook.Reset()
	config.Example().CheckCounts()
	assert.Empty(t, hook.AllEntries())
}

func TestDecode_UnknownKeyWarns(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	_, err := config.Decode("colour = \"red\"\n" + fiveCityTOML)
	require.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "colour")
}

func TestExample_EncodesToLoadableTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, config.Example().Encode(&buf))

	cfg, err := config.Decode(buf.String())
	require.NoError(t, err)
	assert.Equal(t, config.Example().Edges(), cfg.Edges())
	assert.Equal(t, config.Example().StationPrices(), cfg.StationPrices())
}
