package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// TectonicPlates partitions the world into plates with a jittered grid
// Voronoi diagram and reports the proximity to the nearest plate boundary.
type TectonicPlates struct {
	Seed     int64
	CellSize float64 // average plate diameter in world units
	Jitter   float64 // 0 = regular grid, 1 = centers anywhere in the cell
	Perturb  float64 // amplitude of the boundary wobble
	wobble   *perlin.Perlin
}

// NewTectonicPlates returns the default plate layer.
func NewTectonicPlates(seed int64) *TectonicPlates {
	return &TectonicPlates{
		Seed:     seed,
		CellSize: 96,
		Jitter:   0.8,
		Perturb:  0.08,
		wobble:   perlin.NewPerlin(2, 2, 3, seed),
	}
}

// Generate returns the boundary distance: 0 on a plate boundary, 1 at the
// center of a plate.
func (t *TectonicPlates) Generate(x, y float64, detail int) float64 {
	_, dist := t.Plate(x, y, detail)
	return dist
}

// Plate returns the identifier of the plate containing the point and the
// normalized distance to its boundary.
func (t *TectonicPlates) Plate(x, y float64, detail int) (uint64, float64) {
	px := x / t.CellSize
	py := y / t.CellSize
	cx := int64(math.Floor(px))
	cy := int64(math.Floor(py))

	d1, d2 := math.Inf(1), math.Inf(1)
	var plate uint64
	for j := int64(-1); j <= 1; j++ {
		for i := int64(-1); i <= 1; i++ {
			h := hashCell(cx+i, cy+j, t.Seed)
			ox, oy := t.cellOffset(h)
			dx := float64(cx+i) + ox - px
			dy := float64(cy+j) + oy - py
			d := math.Sqrt(dx*dx + dy*dy)
			if d < d1 {
				d2 = d1
				d1 = d
				plate = h
			} else if d < d2 {
				d2 = d
			}
		}
	}

	dist := 1.0
	if d2 > 0 && !math.IsInf(d2, 1) {
		dist = 1 - d1/d2
	}
	return plate, clamp01(dist + t.wobbleAt(px, py, detail)*t.Perturb)
}

// wobbleAt returns perlin noise used to break up straight plate edges.
// Extra detail levels add finer octaves.
func (t *TectonicPlates) wobbleAt(px, py float64, detail int) float64 {
	v := t.wobble.Noise2D(px*4, py*4)
	amp, freq := 0.5, 8.0
	for i := 0; i < detail; i++ {
		v += amp * t.wobble.Noise2D(px*freq, py*freq)
		amp *= 0.5
		freq *= 2
	}
	return v
}

// cellOffset derives the jittered center of a cell from its hash.
func (t *TectonicPlates) cellOffset(h uint64) (float64, float64) {
	lo := float64(h&0xffffffff) / float64(0xffffffff)
	hi := float64(h>>32) / float64(0xffffffff)
	margin := (1 - t.Jitter) / 2
	return margin + lo*t.Jitter, margin + hi*t.Jitter
}

func (t *TectonicPlates) Name() string {
	return "TectonicPlates"
}

// hashCell mixes integer cell coordinates and a seed (splitmix64 finalizer).
func hashCell(cx, cy, seed int64) uint64 {
	h := uint64(seed)*0x9e3779b97f4a7c15 ^ uint64(cx)*0xbf58476d1ce4e5b9 ^ uint64(cy)*0x94d049bb133111eb
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}
