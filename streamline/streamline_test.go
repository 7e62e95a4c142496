package streamline

import (
	"math"
	"testing"
)

// stubSampler is a scriptable vector field for tests.
type stubSampler struct {
	ready bool
	calls int
	fn    func(lon, lat float64) (float64, float64)
}

func (s *stubSampler) Sample(lon, lat float64) (float64, float64) {
	s.calls++
	return s.fn(lon, lat)
}

func (s *stubSampler) Ready() bool { return s.ready }

func constField(vx, vy float64) *stubSampler {
	return &stubSampler{
		ready: true,
		fn:    func(_, _ float64) (float64, float64) { return vx, vy },
	}
}

func TestInitializeBufferSize(t *testing.T) {
	f := New(Config{NumPaths: 10, PathLen: 6, Regular: true}, 1)
	f.Initialize(constField(1, 1))

	if got := len(f.Buffer()); got != 60 {
		t.Errorf("expected buffer length 60, got %d", got)
	}
}

func TestInitializeNotReady(t *testing.T) {
	f := New(Config{NumPaths: 4, PathLen: 6, Regular: true}, 1)
	s := constField(1, 1)
	s.ready = false

	f.Initialize(s)

	if f.Buffer() != nil {
		t.Error("expected no buffer when sampler is not ready")
	}
	if s.calls != 0 {
		t.Errorf("expected no samples taken, got %d", s.calls)
	}
}

func TestRegularSeedGrid(t *testing.T) {
	const numPaths = 100
	f := New(Config{NumPaths: numPaths, PathLen: 2, Regular: true}, 1)
	f.Initialize(constField(1, 1))

	nLon, nLat := f.GridDims()
	if nLon*nLat < numPaths {
		t.Fatalf("grid %dx%d does not cover %d paths", nLon, nLat, numPaths)
	}
	// nLat is the smallest row count for this column count.
	if nLon*(nLat-1) >= numPaths {
		t.Errorf("grid %dx%d is not minimal for %d paths", nLon, nLat, numPaths)
	}

	buf := f.Buffer()
	for n := 0; n < numPaths; n++ {
		seed := buf[n*f.PathLen()]
		if seed.Lon < -180 || seed.Lon > 180 || seed.Lat < -90 || seed.Lat > 90 {
			t.Errorf("path %d seed (%f, %f) out of range", n, seed.Lon, seed.Lat)
		}
	}
}

func TestRegularFourPathScenario(t *testing.T) {
	// 4 paths on a 3x2 grid with 120°x90° cells: seeds at the first four
	// cell centers. A constant (1,1) field with stretch 4 advances each
	// path 4° per axis per step.
	f := New(Config{NumPaths: 4, PathLen: 6, Regular: true, Stretch: 4}, 1)
	f.Initialize(constField(1, 1))

	wantSeeds := [][2]float32{
		{-120, -45},
		{0, -45},
		{120, -45},
		{-120, 45},
	}

	buf := f.Buffer()
	for n, want := range wantSeeds {
		for m := 0; m < 6; m++ {
			rec := buf[n*6+m]
			wantLon := want[0] + 4*float32(m)
			wantLat := want[1] + 4*float32(m)
			if !close32(rec.Lon, wantLon) || !close32(rec.Lat, wantLat) {
				t.Errorf("path %d step %d: got (%f, %f), want (%f, %f)",
					n, m, rec.Lon, rec.Lat, wantLon, wantLat)
			}
			if !close32(rec.VX, 4) || !close32(rec.VY, 4) {
				t.Errorf("path %d step %d: got velocity (%f, %f), want (4, 4)",
					n, m, rec.VX, rec.VY)
			}
		}
	}
}

func TestDegenerateFirstSampleWritesNothing(t *testing.T) {
	f := New(Config{NumPaths: 4, PathLen: 6, Regular: true}, 1)
	f.Initialize(constField(0, 0))

	for i, rec := range f.Buffer() {
		if rec != (Record{}) {
			t.Fatalf("record %d written despite degenerate field: %+v", i, rec)
		}
	}
}

func TestRandomSeedRetryIsBounded(t *testing.T) {
	const numPaths = 5
	s := constField(0, 0)
	f := New(Config{NumPaths: numPaths, PathLen: 6, Regular: false}, 1)

	f.Initialize(s) // must terminate

	if max := numPaths * maxSeedRetries; s.calls > max {
		t.Errorf("expected at most %d samples for a dead field, got %d", max, s.calls)
	}
	for i, rec := range f.Buffer() {
		if rec != (Record{}) {
			t.Fatalf("record %d written despite degenerate field: %+v", i, rec)
		}
	}
}

func TestMidPathDegenerateStopsEarly(t *testing.T) {
	// One path seeded at (-90, 0); the field dies east of -88, so only the
	// first record is written and the tail keeps its prior contents.
	s := &stubSampler{
		ready: true,
		fn: func(lon, _ float64) (float64, float64) {
			if lon < -88 {
				return 1, 1
			}
			return 0, 0
		},
	}
	f := New(Config{NumPaths: 1, PathLen: 6, Regular: true, Stretch: 4}, 1)
	f.Initialize(s)

	buf := f.Buffer()
	first := buf[0]
	if !close32(first.Lon, -90) || !close32(first.Lat, 0) || !close32(first.VX, 4) {
		t.Errorf("unexpected first record: %+v", first)
	}
	for m := 1; m < 6; m++ {
		if buf[m] != (Record{}) {
			t.Errorf("record %d written past the degenerate sample: %+v", m, buf[m])
		}
	}
}

func TestNaNSampleStopsPath(t *testing.T) {
	s := &stubSampler{
		ready: true,
		fn:    func(_, _ float64) (float64, float64) { return math.NaN(), 1 },
	}
	f := New(Config{NumPaths: 2, PathLen: 4, Regular: true}, 1)
	f.Initialize(s)

	for i, rec := range f.Buffer() {
		if rec != (Record{}) {
			t.Fatalf("record %d written despite NaN samples: %+v", i, rec)
		}
	}
}

func TestUpdateIsNoopInRegularMode(t *testing.T) {
	f := New(Config{NumPaths: 4, PathLen: 6, Regular: true, Stretch: 4}, 1)
	f.Initialize(constField(1, 1))

	before := append([]Record(nil), f.Buffer()...)
	f.Update(constField(2, 2))

	for i, rec := range f.Buffer() {
		if rec != before[i] {
			t.Fatalf("record %d changed by Update in regular mode", i)
		}
	}
}

func TestUpdateRegeneratesRandomMode(t *testing.T) {
	f := New(Config{NumPaths: 8, PathLen: 4, Regular: false, Stretch: 4}, 7)
	f.Initialize(constField(1, 1))
	f.Update(constField(2, 2))

	for i, rec := range f.Buffer() {
		if !close32(rec.VX, 8) || !close32(rec.VY, 8) {
			t.Fatalf("record %d not regenerated: %+v", i, rec)
		}
	}
}

func TestUpdateNoopWithoutBuffer(t *testing.T) {
	s := constField(1, 1)
	f := New(Config{NumPaths: 4, PathLen: 6, Regular: false}, 1)

	f.Update(s) // never initialized

	if f.Buffer() != nil || s.calls != 0 {
		t.Error("expected Update before Initialize to be a no-op")
	}
}

func TestClearDropsBuffer(t *testing.T) {
	f := New(Config{NumPaths: 4, PathLen: 6, Regular: true}, 1)
	f.Initialize(constField(1, 1))
	f.Clear()

	if f.Buffer() != nil {
		t.Error("expected nil buffer after Clear")
	}

	// Re-initialize allocates a fresh buffer.
	f.Initialize(constField(1, 1))
	if got := len(f.Buffer()); got != 24 {
		t.Errorf("expected buffer length 24 after re-initialize, got %d", got)
	}
}

func TestRandomSeedsInRange(t *testing.T) {
	f := New(Config{NumPaths: 200, PathLen: 2, Regular: false}, 42)
	f.Initialize(constField(0.5, 0.5))

	buf := f.Buffer()
	for n := 0; n < 200; n++ {
		seed := buf[n*2]
		if seed.Lon < -180 || seed.Lon >= 180 || seed.Lat < -90 || seed.Lat >= 90 {
			t.Errorf("path %d seed (%f, %f) out of range", n, seed.Lon, seed.Lat)
		}
	}
}

func TestDefaultsApplied(t *testing.T) {
	f := New(Config{}, 1)

	if f.cfg.NumPaths != DefaultNumPaths {
		t.Errorf("expected default NumPaths %d, got %d", DefaultNumPaths, f.cfg.NumPaths)
	}
	if f.cfg.PathLen != DefaultPathLen {
		t.Errorf("expected default PathLen %d, got %d", DefaultPathLen, f.cfg.PathLen)
	}
	if f.cfg.Stretch != DefaultStretch {
		t.Errorf("expected default Stretch %f, got %f", DefaultStretch, f.cfg.Stretch)
	}
	if f.cfg.ColorBuckets != DefaultColorBuckets {
		t.Errorf("expected default ColorBuckets %d, got %d", DefaultColorBuckets, f.cfg.ColorBuckets)
	}
}

func close32(got, want float32) bool {
	return math.Abs(float64(got-want)) < 1e-3
}
