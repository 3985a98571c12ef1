package randlebrot

import (
	"fmt"

	"github.com/rjh-mopjones/randlebrot/biome"
)

// TradeGood is a commodity exchanged along trade routes.
type TradeGood int

// The different trade goods.
const (
	TradeGoodFood TradeGood = iota
	TradeGoodOre
	TradeGoodTimber
	TradeGoodTextiles
	TradeGoodLuxury
	TradeGoodWeapons
	TradeGoodSalt
	TradeGoodFish
	TradeGoodFurs
	numTradeGoods
)

// String returns the string representation of the good.
func (g TradeGood) String() string {
	switch g {
	case TradeGoodFood:
		return "Food"
	case TradeGoodOre:
		return "Ore"
	case TradeGoodTimber:
		return "Timber"
	case TradeGoodTextiles:
		return "Textiles"
	case TradeGoodLuxury:
		return "Luxury Goods"
	case TradeGoodWeapons:
		return "Weapons"
	case TradeGoodSalt:
		return "Salt"
	case TradeGoodFish:
		return "Fish"
	case TradeGoodFurs:
		return "Furs"
	default:
		return "Unknown"
	}
}

func (g TradeGood) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *TradeGood) UnmarshalText(text []byte) error {
	for v := TradeGoodFood; v < numTradeGoods; v++ {
		if v.String() == string(text) {
			*g = v
			return nil
		}
	}
	return fmt.Errorf("unknown trade good %q", text)
}

// Industry returns the trade producing the good.
func (g TradeGood) Industry() string {
	switch g {
	case TradeGoodFood:
		return "farming"
	case TradeGoodOre:
		return "mining"
	case TradeGoodTimber:
		return "logging"
	case TradeGoodTextiles:
		return "weaving"
	case TradeGoodLuxury:
		return "trade"
	case TradeGoodWeapons:
		return "smithing"
	case TradeGoodSalt:
		return "salt works"
	case TradeGoodFish:
		return "fishing"
	case TradeGoodFurs:
		return "trapping"
	default:
		return "crafts"
	}
}

// TradeGoodsFromBiome returns the goods a settlement in the biome produces.
func TradeGoodsFromBiome(b biome.Biome) []TradeGood {
	switch b {
	case biome.Plains:
		return []TradeGood{TradeGoodFood, TradeGoodTextiles}
	case biome.Forest:
		return []TradeGood{TradeGoodTimber, TradeGoodFurs}
	case biome.Mountain:
		return []TradeGood{TradeGoodOre, TradeGoodWeapons}
	case biome.Plateau:
		return []TradeGood{TradeGoodOre, TradeGoodFood}
	case biome.Beach:
		return []TradeGood{TradeGoodFish, TradeGoodSalt}
	case biome.Sea:
		return []TradeGood{TradeGoodFish}
	case biome.Desert:
		return []TradeGood{TradeGoodSalt, TradeGoodLuxury}
	case biome.Sahara:
		return []TradeGood{TradeGoodLuxury}
	case biome.Snow:
		return []TradeGood{TradeGoodFurs}
	case biome.Ice:
		return []TradeGood{TradeGoodFish, TradeGoodFurs}
	}
	return nil
}

// industriesFromBiome returns the industries of a settlement in the biome.
func industriesFromBiome(b biome.Biome) []string {
	var res []string
	for _, g := range TradeGoodsFromBiome(b) {
		res = append(res, g.Industry())
	}
	return res
}
