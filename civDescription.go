package randlebrot

import (
	"strings"

	"github.com/rjh-mopjones/randlebrot/biome"
	"github.com/rjh-mopjones/randlebrot/geo"
)

const (
	minPopCity = 50000
	minPopTown = 5000
)

// CityFlavorText returns a description of the city, its people and its
// surroundings. factions may be nil.
func CityFlavorText(bm *geo.BiomeMap, factions []*Faction, c *City) string {
	str := c.Name + " is a "
	switch {
	case c.Population >= minPopCity*4:
		str += "sprawling city"
	case c.Population >= minPopCity:
		str += "large city"
	case c.Population >= minPopTown:
		str += "market town"
	case c.Population >= 1000:
		str += "large village"
	default:
		str += "small village"
	}

	x, y := c.cell()
	p, ok := bm.CellPropertyAt(x, y)
	if ok {
		switch {
		case p.Biome == biome.Mountain:
			str += " high in the mountains"
		case p.Biome == biome.Plateau:
			str += " on a plateau"
		case p.DistanceToWater >= 0 && p.DistanceToWater <= 1:
			str += " on the coast"
		case p.DistanceToMountain > 0 && p.DistanceToMountain < 3:
			str += " at the foot of the mountains"
		}
	}
	str += ".\n"

	str += "It is home to the " + c.Culture.String() + " people"
	if f := FactionOfCity(factions, c.ID); f != nil {
		if f.CapitalID == c.ID {
			str += " and the seat of the " + f.Name
		} else {
			str += " and part of the " + f.Name
		}
	}
	str += "."
	if len(c.Industries) > 0 {
		str += " Its people live from " + joinWords(c.Industries) + "."
	}
	str += "\n"

	if ok {
		str += geo.CellPropertyDescription(p) + "\n"
	}
	return str + geo.GenerateFlavorTextForBiome(int64(c.ID), c.Biome)
}

// joinWords joins the words as an enumeration: "a", "a and b",
// "a, b and c".
func joinWords(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	}
	return strings.Join(words[:len(words)-1], ", ") + " and " + words[len(words)-1]
}
