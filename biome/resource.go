package biome

import (
	"fmt"
	"image/color"
	"math"
)

// ResourceType is a natural resource that can be found in the world.
type ResourceType uint8

// The different resource types.
const (
	Iron ResourceType = iota
	Gold
	Copper
	Silver
	Gems
	Coal
	Stone
	Salt
	Timber
	Fish
	FertileSoil
	WildGame
	numResourceTypes
)

// NumResourceTypes is the size of the resource set.
const NumResourceTypes = int(numResourceTypes)

// AllResources returns all resource types in declaration order.
func AllResources() []ResourceType {
	res := make([]ResourceType, 0, NumResourceTypes)
	for r := Iron; r < numResourceTypes; r++ {
		res = append(res, r)
	}
	return res
}

func (r ResourceType) String() string {
	switch r {
	case Iron:
		return "Iron"
	case Gold:
		return "Gold"
	case Copper:
		return "Copper"
	case Silver:
		return "Silver"
	case Gems:
		return "Gems"
	case Coal:
		return "Coal"
	case Stone:
		return "Stone"
	case Salt:
		return "Salt"
	case Timber:
		return "Timber"
	case Fish:
		return "Fish"
	case FertileSoil:
		return "FertileSoil"
	case WildGame:
		return "WildGame"
	}
	return "Unknown"
}

// ParseResource returns the resource type with the given name.
func ParseResource(s string) (ResourceType, error) {
	for _, r := range AllResources() {
		if r.String() == s {
			return r, nil
		}
	}
	return Iron, fmt.Errorf("unknown resource %q", s)
}

// ResourceCategory groups resource types.
type ResourceCategory uint8

const (
	CategoryMetal ResourceCategory = iota
	CategoryMineral
	CategoryOrganic
)

func (c ResourceCategory) String() string {
	switch c {
	case CategoryMetal:
		return "Metal"
	case CategoryMineral:
		return "Mineral"
	}
	return "Organic"
}

// Category returns the group the resource belongs to.
func (r ResourceType) Category() ResourceCategory {
	switch r {
	case Iron, Gold, Copper, Silver:
		return CategoryMetal
	case Gems, Coal, Stone, Salt:
		return CategoryMineral
	}
	return CategoryOrganic
}

// SeedOffset is added to the world seed so that every resource type
// samples independent noise.
func (r ResourceType) SeedOffset() int64 {
	return int64(r+1) * 1000
}

// Color returns the display color of the resource.
func (r ResourceType) Color() color.RGBA {
	switch r {
	case Iron:
		return color.RGBA{139, 69, 19, 255}
	case Gold:
		return color.RGBA{255, 215, 0, 255}
	case Copper:
		return color.RGBA{184, 115, 51, 255}
	case Silver:
		return color.RGBA{192, 192, 192, 255}
	case Gems:
		return color.RGBA{148, 0, 211, 255}
	case Coal:
		return color.RGBA{30, 30, 30, 255}
	case Stone:
		return color.RGBA{128, 128, 128, 255}
	case Salt:
		return color.RGBA{255, 250, 250, 255}
	case Timber:
		return color.RGBA{34, 139, 34, 255}
	case Fish:
		return color.RGBA{0, 191, 255, 255}
	case FertileSoil:
		return color.RGBA{139, 90, 43, 255}
	case WildGame:
		return color.RGBA{160, 82, 45, 255}
	}
	return color.RGBA{255, 0, 255, 255}
}

// BiasKind is the terrain feature a resource gravitates towards.
type BiasKind uint8

const (
	BiasMountain BiasKind = iota
	BiasTectonic
	BiasCoastal
	BiasBiome
)

// TerrainBias scales raw resource noise by how well the terrain suits
// the resource.
type TerrainBias struct {
	Kind   BiasKind
	Weight float64 // 0 = no influence, 1 = terrain fully decides
	Biomes []Biome // only used by BiasBiome
}

// ResourceContext is the terrain information at a sample position.
type ResourceContext struct {
	Continentalness float64
	TectonicDist    float64 // 0 = plate boundary, 1 = plate center
	WaterDist       float64 // 0 = at water
	Biome           Biome
}

// DefaultResourceContext returns a neutral lowland context.
func DefaultResourceContext() ResourceContext {
	return ResourceContext{
		Continentalness: 0.1,
		TectonicDist:    0.5,
		WaterDist:       0.5,
		Biome:           Plains,
	}
}

// Bias returns the terrain bias of the resource type.
func (r ResourceType) Bias() TerrainBias {
	switch r {
	case Iron:
		return TerrainBias{Kind: BiasMountain, Weight: 0.7}
	case Gold:
		return TerrainBias{Kind: BiasTectonic, Weight: 0.8}
	case Copper:
		return TerrainBias{Kind: BiasMountain, Weight: 0.5}
	case Silver:
		return TerrainBias{Kind: BiasTectonic, Weight: 0.6}
	case Gems:
		return TerrainBias{Kind: BiasTectonic, Weight: 0.9}
	case Coal:
		return TerrainBias{Kind: BiasMountain, Weight: 0.6}
	case Stone:
		return TerrainBias{Kind: BiasMountain, Weight: 0.3}
	case Salt:
		return TerrainBias{Kind: BiasCoastal, Weight: 0.7}
	case Timber:
		return TerrainBias{Kind: BiasBiome, Weight: 0.9, Biomes: []Biome{Forest}}
	case Fish:
		return TerrainBias{Kind: BiasCoastal, Weight: 0.95}
	case FertileSoil:
		return TerrainBias{Kind: BiasBiome, Weight: 0.8, Biomes: []Biome{Plains}}
	case WildGame:
		return TerrainBias{Kind: BiasBiome, Weight: 0.7, Biomes: []Biome{Forest, Plains}}
	}
	return TerrainBias{Kind: BiasBiome, Weight: 0}
}

// Multiplier returns the factor (1-w..1) applied to raw resource noise.
func (b TerrainBias) Multiplier(ctx ResourceContext) float64 {
	w := b.Weight
	switch b.Kind {
	case BiasMountain:
		// Steep ramp above the lowlands, plus a shallow term so that
		// higher ground always scores higher.
		f := 0.9*clamp01((ctx.Continentalness-0.1)/0.4) + 0.1*clamp01((ctx.Continentalness+1)/2)
		return 1 - w + w*f
	case BiasTectonic:
		return 1 - w + w*(1-clamp01(ctx.TectonicDist))
	case BiasCoastal:
		return 1 - w + w*(1-math.Min(ctx.WaterDist, 1))
	case BiasBiome:
		for _, bb := range b.Biomes {
			if bb == ctx.Biome {
				return 1
			}
		}
		return 1 - w
	}
	return 1
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
