package field

import (
	"fmt"
	"math"
	"os"

	"github.com/gocarina/gocsv"
)

// GridSample is one cell of a gridded field on disk.
type GridSample struct {
	Lon float64 `csv:"lon"`
	Lat float64 `csv:"lat"`
	VX  float64 `csv:"vx"`
	VY  float64 `csv:"vy"`
}

// GridField samples a regular lon/lat grid with bilinear interpolation.
// Cell centers sit half a cell in from the domain edges, matching the
// layout written by cmd/fieldgen. The field reports not ready until a grid
// has been loaded.
type GridField struct {
	nLon, nLat int
	dLon, dLat float64
	u, v       []float64
	loaded     bool
}

// NewGridField creates an empty grid with the given resolution.
func NewGridField(nLon, nLat int) *GridField {
	if nLon < 1 {
		nLon = 1
	}
	if nLat < 1 {
		nLat = 1
	}
	return &GridField{
		nLon: nLon,
		nLat: nLat,
		dLon: 360 / float64(nLon),
		dLat: 180 / float64(nLat),
		u:    make([]float64, nLon*nLat),
		v:    make([]float64, nLon*nLat),
	}
}

// LoadCSV fills the grid from a CSV of lon,lat,vx,vy rows. Rows outside the
// grid are dropped; cells with no row keep zero velocity ("no data").
func (g *GridField) LoadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening grid csv: %w", err)
	}
	defer f.Close()

	var rows []GridSample
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return fmt.Errorf("parsing grid csv: %w", err)
	}

	for _, r := range rows {
		i := int(math.Floor((r.Lon + 180) / g.dLon))
		j := int(math.Floor((r.Lat + 90) / g.dLat))
		if i < 0 || i >= g.nLon || j < 0 || j >= g.nLat {
			continue
		}
		g.u[j*g.nLon+i] = r.VX
		g.v[j*g.nLon+i] = r.VY
	}
	g.loaded = true
	return nil
}

// SetCell writes one grid cell directly. Used by tests and by callers that
// build grids in memory; marks the field ready.
func (g *GridField) SetCell(i, j int, vx, vy float64) {
	if i < 0 || i >= g.nLon || j < 0 || j >= g.nLat {
		return
	}
	g.u[j*g.nLon+i] = vx
	g.v[j*g.nLon+i] = vy
	g.loaded = true
}

// Ready implements Sampler.
func (g *GridField) Ready() bool { return g != nil && g.loaded }

// Sample implements Sampler with bilinear interpolation between cell
// centers. Longitude wraps; latitude clamps to the outermost rows.
func (g *GridField) Sample(lon, lat float64) (vx, vy float64) {
	if !g.Ready() {
		return 0, 0
	}

	// Fractional cell coordinates relative to cell centers.
	fx := (lon+180)/g.dLon - 0.5
	fy := (lat+90)/g.dLat - 0.5

	i0 := int(math.Floor(fx))
	j0 := int(math.Floor(fy))
	tx := fx - float64(i0)
	ty := fy - float64(j0)

	i1 := i0 + 1
	j1 := j0 + 1

	i0 = wrapIndex(i0, g.nLon)
	i1 = wrapIndex(i1, g.nLon)
	j0 = clampIndex(j0, g.nLat)
	j1 = clampIndex(j1, g.nLat)

	u00, v00 := g.u[j0*g.nLon+i0], g.v[j0*g.nLon+i0]
	u10, v10 := g.u[j0*g.nLon+i1], g.v[j0*g.nLon+i1]
	u01, v01 := g.u[j1*g.nLon+i0], g.v[j1*g.nLon+i0]
	u11, v11 := g.u[j1*g.nLon+i1], g.v[j1*g.nLon+i1]

	vx = lerp(lerp(u00, u10, tx), lerp(u01, u11, tx), ty)
	vy = lerp(lerp(v00, v10, tx), lerp(v01, v11, tx), ty)
	return vx, vy
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
