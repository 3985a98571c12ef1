// Package noise provides the seeded coherent noise layers the world is
// built from. Every layer is a pure function of its seed, the position and
// the detail level; higher detail levels add octaves for zoomed-in tiers.
package noise

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Strategy is a single noise layer.
type Strategy interface {
	// Generate returns the layer value at the given world position.
	// Each detail level adds one octave.
	Generate(x, y float64, detail int) float64
	// Name returns the layer name for diagnostics and cache keys.
	Name() string
}

// Noise is a wrapper for opensimplex.Noise, initialized with
// a given seed and the fractal parameters.
type Noise struct {
	Octaves     int
	Frequency   float64 // starting frequency multiplier
	Persistence float64 // amplitude decay per octave
	Lacunarity  float64 // frequency growth per octave
	Scale       float64 // world units to noise space
	Seed        int64
	OS          opensimplex.Noise
}

// NewNoise returns a new Noise.
func NewNoise(seed int64, octaves int, frequency, persistence, lacunarity, scale float64) *Noise {
	return &Noise{
		Octaves:     octaves,
		Frequency:   frequency,
		Persistence: persistence,
		Lacunarity:  lacunarity,
		Scale:       scale,
		Seed:        seed,
		OS:          opensimplex.New(seed),
	}
}

// Fbm returns fractal brownian motion at the given point, normalized by
// the summed amplitude to roughly [-1, 1].
func (n *Noise) Fbm(x, y float64, detail int) float64 {
	var sum, sumOfAmplitudes float64
	amp := 1.0
	freq := n.Frequency
	for octave := 0; octave < n.Octaves+detail; octave++ {
		sum += amp * n.OS.Eval2(x*freq*n.Scale, y*freq*n.Scale)
		sumOfAmplitudes += amp
		amp *= n.Persistence
		freq *= n.Lacunarity
	}
	if sumOfAmplitudes == 0 {
		return 0
	}
	return sum / sumOfAmplitudes
}

// Ridged returns ridged multifractal noise in [-1, 1]. Each octave is
// weighted by the signal of the previous one, which sharpens ridgelines.
func (n *Noise) Ridged(x, y float64, detail int) float64 {
	var sum, sumOfAmplitudes float64
	amp := 1.0
	freq := n.Frequency
	weight := 1.0
	for octave := 0; octave < n.Octaves+detail; octave++ {
		signal := 1 - math.Abs(n.OS.Eval2(x*freq*n.Scale, y*freq*n.Scale))
		signal *= signal
		signal *= weight
		weight = clamp(signal*2, 0, 1)

		sum += signal * amp
		sumOfAmplitudes += amp
		amp *= n.Persistence
		freq *= n.Lacunarity
	}
	if sumOfAmplitudes == 0 {
		return 0
	}
	return clamp((sum/sumOfAmplitudes)*2-1, -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
