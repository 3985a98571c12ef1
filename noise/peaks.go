package noise

// PeaksValleys produces sharp ridgelines in [-1, 1] using ridged
// multifractal noise.
type PeaksValleys struct {
	*Noise
}

// NewPeaksValleys returns the default peaks and valleys layer.
func NewPeaksValleys(seed int64) *PeaksValleys {
	return &PeaksValleys{
		Noise: NewNoise(seed, 8, 1.5, 0.6, 2.0, 0.01),
	}
}

func (p *PeaksValleys) Generate(x, y float64, detail int) float64 {
	return p.Ridged(x, y, detail)
}

func (p *PeaksValleys) Name() string {
	return "PeaksValleys"
}
