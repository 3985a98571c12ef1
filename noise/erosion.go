package noise

import "math"

// Erosion estimates how worn down the terrain is (0-1).
type Erosion struct {
	*Noise
	RidgedScale float64 // scale of the channel pattern
}

// NewErosion returns the default erosion layer.
func NewErosion(seed int64) *Erosion {
	return &Erosion{
		Noise:       NewNoise(seed, 6, 2.0, 0.55, 2.2, 0.01),
		RidgedScale: 0.015,
	}
}

// Generate returns the raw channel pattern: squared ridged noise, each
// octave weighted by the previous signal.
func (e *Erosion) Generate(x, y float64, detail int) float64 {
	var sum float64
	amp := 1.0
	freq := e.Frequency
	weight := 1.0
	for octave := 0; octave < e.Octaves+detail; octave++ {
		signal := 1 - math.Abs(e.OS.Eval2(x*freq*e.RidgedScale, y*freq*e.RidgedScale))
		signal *= signal
		sum += signal * weight * amp
		weight = clamp01(signal)
		amp *= e.Persistence
		freq *= e.Lacunarity
	}
	return clamp01(sum * 0.5)
}

// WithContinentalness returns erosion weighted by elevation. Land just
// above sea level erodes most, high ground erodes least.
func (e *Erosion) WithContinentalness(x, y float64, detail int, cont float64) float64 {
	base := (e.Fbm(x, y, detail) + 1) * 0.5

	var elevFactor float64
	switch {
	case cont < -0.025:
		elevFactor = 0.5
	case cont < 0.2:
		elevFactor = 0.8 + 0.2*(1-(cont+0.025)/0.225)
	default:
		elevFactor = 0.3 + 0.5*math.Max(0, 1-(cont-0.2)/0.8)
	}
	return clamp01(base*0.4 + elevFactor*0.6)
}

func (e *Erosion) Name() string {
	return "Erosion"
}
