package noise

// LatitudeTemperature models a cold pole at the top of the map (y=0) and a
// hot equator at the bottom, with fractal noise for irregularity.
type LatitudeTemperature struct {
	*Noise
	MapHeight      float64 // total map height used to normalize latitude
	MinTemp        float64 // temperature at y=0
	MaxTemp        float64 // temperature at y=MapHeight
	NoiseInfluence float64 // weight of the noisy term
}

// NewLatitudeTemperature returns the default temperature layer for a map
// of the given height.
func NewLatitudeTemperature(seed int64, mapHeight float64) *LatitudeTemperature {
	return NewLatitudeTemperatureWithParams(seed, mapHeight, 6, 0.5)
}

// NewLatitudeTemperatureWithParams returns a temperature layer with the
// given fractal parameters for its noisy term.
func NewLatitudeTemperatureWithParams(seed int64, mapHeight float64, octaves int, persistence float64) *LatitudeTemperature {
	return &LatitudeTemperature{
		Noise:          NewNoise(seed, octaves, 1.0, persistence, 2.0, 1.0/150),
		MapHeight:      mapHeight,
		MinTemp:        -50,
		MaxTemp:        100,
		NoiseInfluence: 0.3,
	}
}

func (t *LatitudeTemperature) Generate(x, y float64, detail int) float64 {
	lat := 0.0
	if t.MapHeight > 0 {
		lat = clamp01(y / t.MapHeight)
	}
	latTemp := t.MinTemp + lat*(t.MaxTemp-t.MinTemp)
	noiseTemp := t.Fbm(x, y, detail) * 50

	temp := latTemp*(1-t.NoiseInfluence) + (latTemp+noiseTemp)*t.NoiseInfluence
	return clamp(temp, -100, 120)
}

func (t *LatitudeTemperature) Name() string {
	return "LatitudeTemperature"
}
