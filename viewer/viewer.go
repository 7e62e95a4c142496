// Package viewer wires the camera, projection, vector field, and streamline
// field into the frame loop.
package viewer

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/danielpeter/earth.tomo.viewer/camera"
	"github.com/danielpeter/earth.tomo.viewer/config"
	"github.com/danielpeter/earth.tomo.viewer/field"
	"github.com/danielpeter/earth.tomo.viewer/geo"
	"github.com/danielpeter/earth.tomo.viewer/renderer"
	"github.com/danielpeter/earth.tomo.viewer/streamline"
	"github.com/danielpeter/earth.tomo.viewer/telemetry"
	"github.com/danielpeter/earth.tomo.viewer/ui"
)

// Options configure a viewer at startup.
type Options struct {
	Seed      int64
	OutputDir string
	LogStats  bool
}

// Viewer owns the complete visualization state. Everything runs on the
// frame-loop goroutine; a generation pass and a render pass never
// interleave.
type Viewer struct {
	cfg  *config.Config
	opts Options

	cam    *camera.Camera
	proj   *geo.Orthographic
	wind   *field.WindField
	lines  *streamline.Field
	globe  *renderer.GlobeRenderer
	canvas *renderer.Canvas
	hud    *ui.HUD
	out    *telemetry.OutputManager

	tick   int32
	paused bool

	dragging  bool
	lastMouse rl.Vector2
}

// New creates a viewer from the loaded configuration and runs the initial
// generation pass.
func New(opts Options) *Viewer {
	cfg := config.Cfg()

	cam := camera.New(
		cfg.Globe.StartLon, cfg.Globe.StartLat,
		cfg.Globe.Scale, cfg.Globe.MinScale, cfg.Globe.MaxScale,
	)
	cam.SpinRate = cfg.Globe.SpinDegPerSec

	proj := geo.NewOrthographic(cam.Scale, cfg.Derived.CenterX, cfg.Derived.CenterY)
	proj.SetRotation(cam.Lon, cam.Lat)

	wind := field.NewWindField(field.WindConfig{
		Seed:         cfg.Wind.Seed,
		JetStrength:  cfg.Wind.JetStrength,
		EddyScale:    cfg.Wind.EddyScale,
		EddyStrength: cfg.Wind.EddyStrength,
		DriftSpeed:   cfg.Wind.DriftSpeed,
	})

	lines := streamline.New(streamline.Config{
		NumPaths:     cfg.Streamlines.NumPaths,
		PathLen:      cfg.Streamlines.PathLength,
		Regular:      cfg.Streamlines.RegularLocations,
		Stretch:      cfg.Streamlines.StretchFactor,
		LineWidth:    float32(cfg.Streamlines.LineWidth),
		AdaptWidth:   cfg.Streamlines.AdaptLineWidth,
		ColorBuckets: cfg.Streamlines.ColorBuckets,
		ColorLow:     cfg.Streamlines.ColorLow,
		ColorHigh:    cfg.Streamlines.ColorHigh,
	}, opts.Seed)
	lines.SetZoomProvider(cam)

	out, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("telemetry output disabled", "error", err)
		out = nil
	}
	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("writing config snapshot", "error", err)
	}

	v := &Viewer{
		cfg:    cfg,
		opts:   opts,
		cam:    cam,
		proj:   proj,
		wind:   wind,
		lines:  lines,
		globe:  renderer.NewGlobeRenderer(cfg.Globe.GraticuleDeg),
		canvas: renderer.NewCanvas(int32(cfg.Screen.Width), int32(cfg.Screen.Height)),
		hud:    ui.NewHUD(),
		out:    out,
	}

	v.regenerate()
	return v
}

// Tick returns the current frame counter.
func (v *Viewer) Tick() int32 { return v.tick }

// Update advances one frame: input, auto-spin, field drift, and the
// periodic refresh of random-mode paths.
func (v *Viewer) Update() {
	dt := float64(rl.GetFrameTime())
	v.handleInput()

	if !v.paused {
		v.cam.Spin(dt)
		v.wind.Advance(dt)

		interval := int32(v.cfg.Streamlines.UpdateInterval)
		if interval > 0 && v.tick%interval == 0 {
			v.refresh()
		}
	}

	v.proj.SetRotation(v.cam.Lon, v.cam.Lat)
	v.proj.SetScale(v.cam.Scale)
	v.tick++
}

// UpdateHeadless advances one tick without raylib, refreshing the paths
// every tick. Used for benchmarking generation throughput.
func (v *Viewer) UpdateHeadless() {
	v.wind.Advance(1.0 / 60)
	v.refresh()
	v.tick++
}

// Draw renders the frame.
func (v *Viewer) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	v.globe.Draw(v.proj, v.cfg.Derived.CenterX, v.cfg.Derived.CenterY)
	v.lines.Render(v.proj, v.canvas)

	mode := "random"
	if v.cfg.Streamlines.RegularLocations {
		mode = "regular"
	}
	v.hud.Draw(ui.HUDData{
		Title:       "Earth Tomo Viewer",
		NumPaths:    v.cfg.Streamlines.NumPaths,
		PathLength:  v.cfg.Streamlines.PathLength,
		Mode:        mode,
		Lon:         v.cam.Lon,
		Lat:         v.cam.Lat,
		Scale:       v.cam.Scale,
		FPS:         rl.GetFPS(),
		Paused:      v.paused,
		AdaptWidth:  v.lines.AdaptiveWidth(),
		FieldLoaded: v.wind.Ready(),
	})
	v.hud.DrawControls(int32(v.cfg.Screen.Height),
		"drag: rotate | wheel: zoom | space: pause | R: regenerate | C: clear | A: adaptive width | home: reset view")

	rl.EndDrawing()
}

// Unload releases resources.
func (v *Viewer) Unload() {
	if err := v.out.Close(); err != nil {
		slog.Error("closing telemetry output", "error", err)
	}
}

// regenerate drops the buffer and runs a full initialization pass.
func (v *Viewer) regenerate() {
	v.lines.Clear()
	start := time.Now()
	v.lines.Initialize(v.wind)
	v.recordPass(time.Since(start))
}

// refresh reruns generation in place; a no-op in regular mode.
func (v *Viewer) refresh() {
	start := time.Now()
	v.lines.Update(v.wind)
	if !v.cfg.Streamlines.RegularLocations {
		v.recordPass(time.Since(start))
	}
}

func (v *Viewer) recordPass(d time.Duration) {
	logStats := v.opts.LogStats || v.cfg.Telemetry.LogPasses
	if v.out == nil && !logStats {
		return
	}
	stats := telemetry.Collect(
		v.lines.Buffer(), v.lines.PathLen(), v.lines.Stretch(),
		v.tick, float64(d.Microseconds())/1000,
	)
	if logStats {
		stats.LogStats()
	}
	if err := v.out.WritePass(stats); err != nil {
		slog.Error("writing pass stats", "error", err)
	}
}
