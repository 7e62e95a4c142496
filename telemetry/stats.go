// Package telemetry collects and exports statistics about streamline
// generation passes.
package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/danielpeter/earth.tomo.viewer/streamline"
)

// PassStats summarizes one generation pass over the streamline buffer.
type PassStats struct {
	Tick       int32   `csv:"tick"`
	Paths      int     `csv:"paths"`
	Records    int     `csv:"records"`
	Empty      int     `csv:"empty_records"` // records with no velocity data
	DurationMs float64 `csv:"duration_ms"`

	// Velocity magnitude distribution, stretch undone (≈ [0, 1] domain)
	VelMean float64 `csv:"vel_mean"`
	VelStd  float64 `csv:"vel_std"`
	VelP10  float64 `csv:"vel_p10"`
	VelP50  float64 `csv:"vel_p50"`
	VelP90  float64 `csv:"vel_p90"`
}

// Collect computes pass statistics from the buffer contents. Records whose
// velocity is zero count as empty; a path aborted mid-generation may leave
// stale non-zero records behind, which are counted like any other data.
func Collect(buf []streamline.Record, pathLen int, stretch float64, tick int32, durationMs float64) PassStats {
	s := PassStats{
		Tick:       tick,
		Records:    len(buf),
		DurationMs: durationMs,
	}
	if pathLen > 0 {
		s.Paths = len(buf) / pathLen
	}
	if len(buf) == 0 || stretch == 0 {
		return s
	}

	mags := make([]float64, 0, len(buf))
	for i := range buf {
		vx, vy := float64(buf[i].VX), float64(buf[i].VY)
		if vx == 0 && vy == 0 {
			s.Empty++
			continue
		}
		mags = append(mags, math.Hypot(vx, vy)/stretch)
	}
	if len(mags) == 0 {
		return s
	}

	s.VelMean = stat.Mean(mags, nil)
	s.VelStd = stat.StdDev(mags, nil)

	sort.Float64s(mags)
	s.VelP10 = stat.Quantile(0.10, stat.Empirical, mags, nil)
	s.VelP50 = stat.Quantile(0.50, stat.Empirical, mags, nil)
	s.VelP90 = stat.Quantile(0.90, stat.Empirical, mags, nil)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s PassStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("tick", int(s.Tick)),
		slog.Int("paths", s.Paths),
		slog.Int("records", s.Records),
		slog.Int("empty_records", s.Empty),
		slog.Float64("duration_ms", s.DurationMs),
		slog.Float64("vel_mean", s.VelMean),
		slog.Float64("vel_std", s.VelStd),
		slog.Float64("vel_p10", s.VelP10),
		slog.Float64("vel_p50", s.VelP50),
		slog.Float64("vel_p90", s.VelP90),
	)
}

// LogStats logs the pass stats using slog.
func (s PassStats) LogStats() {
	slog.Info("generation pass", "stats", s)
}
