package noise

import "github.com/rjh-mopjones/randlebrot/biome"

// ResourceThreshold is the biased noise level below which no resource is
// present.
const ResourceThreshold = 0.55

// ResourceNoise is the abundance layer of a single resource type.
type ResourceNoise struct {
	*Noise
	Type biome.ResourceType
}

// NewResourceNoise returns the layer for the given resource. The seed is
// offset per type so that deposits of different resources don't overlap.
func NewResourceNoise(seed int64, rt biome.ResourceType) *ResourceNoise {
	return &ResourceNoise{
		Noise: NewNoise(seed+rt.SeedOffset(), 4, 2.0, 0.5, 2.0, 0.015),
		Type:  rt,
	}
}

// Generate returns the abundance without any terrain bias.
func (r *ResourceNoise) Generate(x, y float64, detail int) float64 {
	return threshold((r.Fbm(x, y, detail) + 1) * 0.5)
}

// WithContext returns the abundance (0-1) after applying the terrain bias
// of the resource type.
func (r *ResourceNoise) WithContext(x, y float64, detail int, ctx biome.ResourceContext) float64 {
	base := (r.Fbm(x, y, detail) + 1) * 0.5
	return threshold(base * r.Type.Bias().Multiplier(ctx))
}

func (r *ResourceNoise) Name() string {
	return "Resource" + r.Type.String()
}

func threshold(v float64) float64 {
	if v <= ResourceThreshold {
		return 0
	}
	return clamp01((v - ResourceThreshold) / (1 - ResourceThreshold))
}
