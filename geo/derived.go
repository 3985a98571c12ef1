package geo

import (
	"math"

	"github.com/rjh-mopjones/randlebrot/biome"
)

// PoliticalScoreSimple returns the settlement suitability (0-1) of a cell
// from its biome fertility and climate comfort. Water is never suitable.
func PoliticalScoreSimple(b biome.Biome, temp, humid float64) float64 {
	if b.IsWater() {
		return 0
	}
	return 0.5*b.Fertility() + 0.5*climateComfort(temp, humid)
}

// PoliticalScore is the full suitability estimate. It adds access to
// water (waterDist, 0 = at water), the share of nearby rugged terrain
// (mountainFactor, 0-1) and the local resource value (0-1).
func PoliticalScore(b biome.Biome, temp, humid, cont, waterDist, mountainFactor, resourceValue float64) float64 {
	if b.IsWater() {
		return 0
	}
	fert := b.Fertility()
	if b == biome.Beach {
		fert = 0.5
	}
	water := 0.0
	if cont >= SeaLevel {
		water = math.Max(1-waterDist, 0)
	}
	score := 0.35*fert +
		0.25*climateComfort(temp, humid) +
		0.20*water +
		0.10*mountainFactor +
		0.10*resourceValue
	return math.Min(math.Max(score, 0), 1)
}

// climateComfort peaks at 20 degrees and 50% humidity.
func climateComfort(temp, humid float64) float64 {
	tempComfort := 1 - math.Min(math.Abs(temp-20)/50, 1)
	humComfort := 1 - math.Min(math.Abs(humid-0.5)/0.5, 1)
	return tempComfort*0.6 + humComfort*0.4
}

// TradeCost returns the cost of moving goods through a cell. Eroded
// terrain is up to 20% cheaper; water is impassable (+Inf).
func TradeCost(b biome.Biome, erosion float64) float64 {
	base := b.BaseTradeCost()
	if math.IsInf(base, 1) {
		return base
	}
	return base * (1 - math.Min(math.Max(erosion, 0), 1)*0.2)
}

// IsPassable returns true if goods can cross the biome by land.
func IsPassable(b biome.Biome) bool {
	return !math.IsInf(b.BaseTradeCost(), 1)
}

// TerrainDifficulty returns a human readable label for crossing the biome.
func TerrainDifficulty(b biome.Biome) string {
	switch b {
	case biome.Sea, biome.Ice:
		return "Impassable"
	case biome.Plains, biome.Beach:
		return "Easy"
	case biome.Forest:
		return "Moderate"
	case biome.Desert, biome.Sahara:
		return "Hard"
	case biome.Plateau, biome.Snow:
		return "Difficult"
	}
	return "Very Difficult"
}
