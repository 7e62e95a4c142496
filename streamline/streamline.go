// Package streamline generates and renders short particle paths advected
// through a vector field on the globe. A generation pass seeds every path
// (regular grid or random), walks it forward through the field for a fixed
// number of steps, and writes the resulting records into a flat buffer the
// renderer consumes each frame.
package streamline

import (
	"math"
	"math/rand"

	"github.com/danielpeter/earth.tomo.viewer/field"
)

// Record is one advection step of one path: the particle position in
// degrees and the stretched displacement that carries it to the next step.
type Record struct {
	Lon, Lat float32
	VX, VY   float32
}

// Defaults applied by New for zero-valued Config fields.
const (
	DefaultNumPaths     = 64800
	DefaultPathLen      = 6
	DefaultStretch      = 4.0
	DefaultLineWidth    = 1.0
	DefaultColorBuckets = 10
	DefaultColorLow     = "rgba(0, 51, 102, 1.0)"
	DefaultColorHigh    = "rgba(0, 204, 255, 1.0)"
)

// maxSeedRetries bounds the re-randomization of a degenerate random seed.
const maxSeedRetries = 8

// Config holds the streamline parameters. These are startup settings, not
// runtime-tunable; the adaptive width toggle is the one exception.
type Config struct {
	NumPaths     int     // paths seeded per generation pass
	PathLen      int     // advection steps per path
	Regular      bool    // regular grid seeding instead of random
	Stretch      float64 // per-step displacement multiplier
	LineWidth    float32 // base stroke width in pixels
	AdaptWidth   bool    // derive stroke width from the zoom scale
	ColorBuckets int
	ColorLow     string // rgba(...) endpoint for |v| = 0
	ColorHigh    string // rgba(...) endpoint for |v| = 1
}

func (c *Config) applyDefaults() {
	if c.NumPaths <= 0 {
		c.NumPaths = DefaultNumPaths
	}
	if c.PathLen <= 0 {
		c.PathLen = DefaultPathLen
	}
	if c.Stretch == 0 {
		c.Stretch = DefaultStretch
	}
	if c.LineWidth <= 0 {
		c.LineWidth = DefaultLineWidth
	}
	if c.ColorBuckets <= 0 {
		c.ColorBuckets = DefaultColorBuckets
	}
	if c.ColorLow == "" {
		c.ColorLow = DefaultColorLow
	}
	if c.ColorHigh == "" {
		c.ColorHigh = DefaultColorHigh
	}
}

// Field owns the record buffer, the regular-mode seed cursor, and the color
// scale. It is the sole writer of the buffer; Render only reads it.
type Field struct {
	cfg   Config
	buf   []Record // nil until Initialize, length NumPaths*PathLen after
	scale *ColorScale
	rng   *rand.Rand
	zoom  ZoomProvider

	// Regular-mode seed cursor, reset whenever path 0 is generated.
	nLon, nLat     int
	dLon, dLat     float64
	curLon, curLat float64
}

// New creates a streamline field. The seed drives random-mode placement
// only; regular mode is deterministic.
func New(cfg Config, seed int64) *Field {
	cfg.applyDefaults()
	return &Field{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Initialize lazily allocates the buffer, builds the color scale, and runs a
// full generation pass. No-op when the sampler is absent or not ready.
func (f *Field) Initialize(s field.Sampler) {
	if s == nil || !s.Ready() {
		return
	}
	if f.buf == nil {
		f.buf = make([]Record, f.cfg.NumPaths*f.cfg.PathLen)
	}
	if f.scale == nil {
		f.scale = NewColorScale(f.cfg.ColorBuckets, f.cfg.ColorLow, f.cfg.ColorHigh)
	}
	for n := 0; n < f.cfg.NumPaths; n++ {
		f.generate(n, s)
	}
}

// Clear drops the buffer. The next Initialize allocates a fresh one.
func (f *Field) Clear() {
	f.buf = nil
}

// Update regenerates every path in place. Regular-mode buffers are
// generated once and never refreshed, so Update is a no-op there, as it is
// when the buffer is absent or the sampler not ready.
func (f *Field) Update(s field.Sampler) {
	if f.cfg.Regular || f.buf == nil || s == nil || !s.Ready() {
		return
	}
	for n := 0; n < f.cfg.NumPaths; n++ {
		f.generate(n, s)
	}
}

// Buffer exposes the record buffer for telemetry. Callers must not mutate
// it; nil means uninitialized.
func (f *Field) Buffer() []Record { return f.buf }

// PathLen returns the number of records per path.
func (f *Field) PathLen() int { return f.cfg.PathLen }

// Stretch returns the displacement multiplier applied to field samples.
func (f *Field) Stretch() float64 { return f.cfg.Stretch }

// SetAdaptiveWidth toggles zoom-derived stroke width.
func (f *Field) SetAdaptiveWidth(on bool) { f.cfg.AdaptWidth = on }

// AdaptiveWidth reports whether zoom-derived stroke width is enabled.
func (f *Field) AdaptiveWidth() bool { return f.cfg.AdaptWidth }

// SetZoomProvider attaches the view transform consulted for adaptive width.
func (f *Field) SetZoomProvider(zp ZoomProvider) { f.zoom = zp }

// generate computes the records of path n. Failures never surface to the
// caller: a degenerate or missing sample stops the path early and leaves
// the remaining records holding whatever a previous pass wrote. That stale
// tail is a known quirk, kept deliberately.
func (f *Field) generate(n int, s field.Sampler) {
	var lon, lat, vx, vy float64
	ok := false
	if f.cfg.Regular {
		lon, lat = f.seedRegular(n)
		vx, vy, ok = f.sampleStretched(s, lon, lat)
		// The fixed grid is authoritative: no retry on a dead cell.
	} else {
		for try := 0; try < maxSeedRetries; try++ {
			lon = Clamp(-180+360*f.rng.Float64(), -180, 180)
			lat = Clamp(-90+180*f.rng.Float64(), -90, 90)
			if vx, vy, ok = f.sampleStretched(s, lon, lat); ok {
				break
			}
		}
	}
	if !ok {
		return
	}

	base := n * f.cfg.PathLen
	for m := 0; m < f.cfg.PathLen; m++ {
		rec := &f.buf[base+m]
		rec.Lon, rec.Lat = float32(lon), float32(lat)
		rec.VX, rec.VY = float32(vx), float32(vy)

		lon += vx
		lat += vy
		if vx, vy, ok = f.sampleStretched(s, lon, lat); !ok {
			return
		}
	}
}

// seedRegular returns the seed for path n and advances the grid cursor.
// Path 0 derives the grid: the smallest nLon x nLat cover of NumPaths with
// a 2:1 lon/lat aspect, seeds offset half a cell so neither the poles nor
// the antimeridian are sampled exactly.
func (f *Field) seedRegular(n int) (lon, lat float64) {
	if n == 0 {
		f.nLon = int(math.Ceil(math.Sqrt(float64(2 * f.cfg.NumPaths))))
		f.nLat = (f.cfg.NumPaths + f.nLon - 1) / f.nLon
		f.dLon = 360 / float64(f.nLon)
		f.dLat = 180 / float64(f.nLat)
		f.curLon = -180 + f.dLon*0.5
		f.curLat = -90 + f.dLat*0.5
	} else {
		f.curLon += f.dLon
		if f.curLon > 180 {
			f.curLon = -180 + f.dLon*0.5
			f.curLat += f.dLat
			if f.curLat > 90 {
				// Retract rather than wrap: the last row repeats
				// near the pole when the grid overshoots.
				f.curLat -= f.dLat
			}
		}
	}
	return Clamp(f.curLon, -180, 180), Clamp(f.curLat, -90, 90)
}

// sampleStretched samples the field and applies the stretch factor. ok is
// false when either component is zero or NaN, the "no data" signal.
func (f *Field) sampleStretched(s field.Sampler, lon, lat float64) (vx, vy float64, ok bool) {
	vx, vy = s.Sample(lon, lat)
	vx *= f.cfg.Stretch
	vy *= f.cfg.Stretch
	if vx == 0 || vy == 0 || math.IsNaN(vx) || math.IsNaN(vy) {
		return 0, 0, false
	}
	return vx, vy, true
}

// GridDims returns the regular seed grid dimensions derived on the last
// generation pass (zero before any pass).
func (f *Field) GridDims() (nLon, nLat int) { return f.nLon, f.nLat }

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
