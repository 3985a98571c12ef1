package noise

import "math"

// Humidity is the moisture layer (0-1).
type Humidity struct {
	*Noise
}

// NewHumidity returns the default humidity layer.
func NewHumidity(seed int64) *Humidity {
	return &Humidity{
		Noise: NewNoise(seed, 5, 1.0, 0.5, 2.0, 0.008),
	}
}

func (h *Humidity) Generate(x, y float64, detail int) float64 {
	return clamp01((h.Fbm(x, y, detail) + 1) * 0.5)
}

// WithWaterDistance blends the noise with an exponential falloff from the
// nearest water, where 'dist' is the normalized distance.
func (h *Humidity) WithWaterDistance(x, y float64, detail int, dist float64) float64 {
	base := h.Generate(x, y, detail)
	return clamp01(base*0.4 + math.Exp(-3*dist)*0.6)
}

// WithContinentalness uses continentalness as a proxy for the distance
// to water. Oceans and coasts skew wet, inland skews dry.
func (h *Humidity) WithContinentalness(x, y float64, detail int, cont float64) float64 {
	base := h.Generate(x, y, detail)

	var waterFactor float64
	switch {
	case cont < -0.025:
		waterFactor = 1.0
	case cont < 0.1:
		waterFactor = 0.9 - (cont+0.025)*2
	default:
		waterFactor = 0.5 - (cont-0.1)*0.5
	}
	return clamp01(base*0.3 + math.Max(waterFactor, 0.1)*0.7)
}

func (h *Humidity) Name() string {
	return "Humidity"
}
