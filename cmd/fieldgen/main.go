// Wind grid exporter - samples the synthetic wind field onto a regular
// lon/lat grid and writes it as CSV for field.GridField.
//
// Usage: go run ./cmd/fieldgen -out wind.csv -nlon 144 -nlat 72
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/danielpeter/earth.tomo.viewer/field"
)

func main() {
	out := flag.String("out", "wind.csv", "Output CSV path")
	nLon := flag.Int("nlon", 144, "Grid columns (longitude)")
	nLat := flag.Int("nlat", 72, "Grid rows (latitude)")
	seed := flag.Int64("seed", 12345, "Noise seed")
	jet := flag.Float64("jet", 0.35, "Jet band strength")
	eddyScale := flag.Float64("eddy-scale", 2.5, "Eddy noise frequency")
	eddyStrength := flag.Float64("eddy-strength", 0.25, "Eddy strength")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	wind := field.NewWindField(field.WindConfig{
		Seed:         *seed,
		JetStrength:  *jet,
		EddyScale:    *eddyScale,
		EddyStrength: *eddyStrength,
	})

	dLon := 360 / float64(*nLon)
	dLat := 180 / float64(*nLat)

	rows := make([]field.GridSample, 0, *nLon**nLat)
	for j := 0; j < *nLat; j++ {
		lat := -90 + (float64(j)+0.5)*dLat
		for i := 0; i < *nLon; i++ {
			lon := -180 + (float64(i)+0.5)*dLon
			vx, vy := wind.Sample(lon, lat)
			rows = append(rows, field.GridSample{Lon: lon, Lat: lat, VX: vx, VY: vy})
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		slog.Error("creating output file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		slog.Error("writing grid csv", "error", err)
		os.Exit(1)
	}

	slog.Info("wrote wind grid", "path", *out, "cells", len(rows))
}
