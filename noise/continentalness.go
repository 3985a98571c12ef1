package noise

// Continentalness is the land elevation proxy. Negative values are ocean,
// positive values are land.
type Continentalness struct {
	*Noise
}

// NewContinentalness returns the default continentalness layer.
func NewContinentalness(seed int64) *Continentalness {
	return NewContinentalnessWithParams(seed, 8, 0.59, 2.0, 100)
}

// NewContinentalnessWithParams returns a continentalness layer where one
// noise unit spans 'scale' world units.
func NewContinentalnessWithParams(seed int64, octaves int, persistence, lacunarity, scale float64) *Continentalness {
	return &Continentalness{
		Noise: NewNoise(seed, octaves, 1.0, persistence, lacunarity, 1/scale),
	}
}

func (c *Continentalness) Generate(x, y float64, detail int) float64 {
	return clamp(c.Fbm(x, y, detail), -1, 1)
}

func (c *Continentalness) Name() string {
	return "Continentalness"
}
