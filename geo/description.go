package geo

import (
	"math/rand/v2"
	"strings"

	"github.com/rjh-mopjones/randlebrot/biome"
)

// CellProperty summarizes the surroundings of a cell for descriptions.
type CellProperty struct {
	Biome              biome.Biome
	DistanceToWater    int // cells to the closest water, -1 if none within range
	DistanceToMountain int // cells to the closest mountain, -1 if none within range
	NearFaultline      bool
	Eroded             bool
	Humidity           float64
}

// propertyRadius is the search radius of CellPropertyAt.
const propertyRadius = 4

// CellPropertyAt returns the properties of the cell. ok is false out of
// bounds.
func (m *BiomeMap) CellPropertyAt(x, y int) (CellProperty, bool) {
	if !m.InBounds(x, y) {
		return CellProperty{}, false
	}
	i := m.Index(x, y)
	p := CellProperty{
		Biome:              m.Biomes[i],
		DistanceToWater:    -1,
		DistanceToMountain: -1,
		NearFaultline:      m.Tectonic[i] < 0.1,
		Eroded:             m.Erosion[i] > 0.7,
		Humidity:           m.Humidity[i],
	}
	for r := 0; r <= propertyRadius; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r {
					continue // ring only
				}
				b, ok := m.BiomeAt(x+dx, y+dy)
				if !ok {
					continue
				}
				if p.DistanceToWater < 0 && b.IsWater() {
					p.DistanceToWater = r
				}
				if p.DistanceToMountain < 0 && b == biome.Mountain {
					p.DistanceToMountain = r
				}
			}
		}
	}
	return p, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DescribeCell returns a short description of the surroundings of a cell.
func (m *BiomeMap) DescribeCell(x, y int) string {
	p, ok := m.CellPropertyAt(x, y)
	if !ok {
		return ""
	}
	return CellPropertyDescription(p)
}

// CellPropertyDescription describes the given cell properties.
func CellPropertyDescription(p CellProperty) string {
	var sb strings.Builder
	sb.WriteString("The region is covered by " + biomeNoun(p.Biome) + ".")
	if p.NearFaultline {
		if p.DistanceToMountain == 0 {
			sb.WriteString(" The exposed location on a faultline poses a constant danger of earthquakes.")
		} else {
			sb.WriteString(" The proximity to a faultline poses a looming threat of earthquakes.")
		}
	} else if p.DistanceToMountain > 0 && p.DistanceToMountain < 3 {
		if p.Eroded {
			sb.WriteString(" The nearby slopes are worn and loose, and rockslides are common.")
		} else {
			sb.WriteString(" Mountains rise close by.")
		}
	}
	if p.DistanceToWater > 0 && p.DistanceToWater <= 1 {
		sb.WriteString(" The sea is only a stone's throw away")
		if p.Humidity > 0.7 {
			sb.WriteString(" and the air is heavy with its salt")
		}
		sb.WriteString(".")
	}
	return sb.String()
}

func biomeNoun(b biome.Biome) string {
	switch b {
	case biome.Sea:
		return "open water"
	case biome.Ice:
		return "pack ice"
	case biome.Beach:
		return "sandy shores"
	case biome.Snow:
		return "snowfields"
	case biome.Plains:
		return "grassland"
	case biome.Forest:
		return "forest"
	case biome.Desert:
		return "dry scrubland"
	case biome.Sahara:
		return "sand dunes"
	case biome.Mountain:
		return "mountains"
	case biome.Plateau:
		return "high plateaus"
	}
	return "wilderness"
}

// BiomeDescription holds the building blocks of a biome's flavor text.
type BiomeDescription struct {
	Adjectives []string
	Nouns      []string
	Parts      [][]string // one sentence is picked per part
}

// GenerateFlavorText assembles a flavor text from the description.
func GenerateFlavorText(rng *rand.Rand, desc BiomeDescription) string {
	text := "The " + pick(rng, desc.Adjectives) + " " + pick(rng, desc.Nouns) + " stretches out as far as the eye can see.\n"
	for _, part := range desc.Parts {
		if len(part) > 0 {
			text += pick(rng, part) + "\n"
		}
	}
	return text
}

func pick(rng *rand.Rand, s []string) string {
	return s[rng.IntN(len(s))]
}

// GenerateFlavorTextForBiome returns a flavor text for the biome. The same
// seed always yields the same text.
func GenerateFlavorTextForBiome(seed int64, b biome.Biome) string {
	desc, ok := biomeDescriptions[b]
	if !ok {
		return "The " + biomeNoun(b) + " stretches out as far as the eye can see."
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(b)))
	return GenerateFlavorText(rng, desc)
}

var biomeDescriptions = map[biome.Biome]BiomeDescription{
	biome.Beach: {
		Adjectives: []string{"sandy", "windswept", "sunlit", "pebbled"},
		Nouns:      []string{"shore", "coast", "strand"},
		Parts: [][]string{
			{
				"Waves roll in without pause, leaving lines of foam and kelp on the sand.",
				"Gulls circle overhead, crying over the catch of the fishing boats.",
			},
			{
				"The air tastes of salt and tar.",
				"Driftwood and broken shells mark the reach of the last storm.",
			},
		},
	},
	biome.Snow: {
		Adjectives: []string{"frozen", "glacial", "icy", "snowy"},
		Nouns:      []string{"plain", "waste", "landscape"},
		Parts: [][]string{
			{
				"The ground is frozen solid, with a layer of snow covering the surface.",
				"The snow is deep and drifts are piled high, making it difficult to traverse the terrain.",
			},
			{
				"The air is crisp and cold, biting at the exposed skin.",
				"The air is still and silent, with a chill that seeps into the bones.",
			},
		},
	},
	biome.Plains: {
		Adjectives: []string{"flat", "grassy", "rolling", "verdant"},
		Nouns:      []string{"grassland", "meadow", "prairie"},
		Parts: [][]string{
			{
				"The grass sways gently in the breeze, creating a sea of green that stretches out to the horizon.",
				"The ground is flat and open, with only a few scattered clusters of bushes and trees.",
			},
			{
				"The air is fresh and clean, carrying the scent of wildflowers.",
				"Herds graze in the distance, unbothered by the occasional traveler.",
			},
		},
	},
	biome.Forest: {
		Adjectives: []string{"dense", "lush", "shadowy", "ancient"},
		Nouns:      []string{"forest", "woods", "woodland"},
		Parts: [][]string{
			{
				"The canopy overhead is dense, with a riot of leaves and branches creating a green ceiling.",
				"The light filters through the leaves in dappled patterns.",
			},
			{
				"The ground is soft, covered by a thick layer of leaves and moss.",
				"Birdsong and the creak of old trunks fill the air.",
			},
		},
	},
	biome.Desert: {
		Adjectives: []string{"arid", "bleak", "dry", "cracked"},
		Nouns:      []string{"scrubland", "badland", "steppe"},
		Parts: [][]string{
			{
				"The ground is dry and rocky, with patches of scrubby grass and scattered bushes.",
				"The ground is cracked and parched, with only a few hardy plants able to survive.",
			},
			{
				"The wind carries a fine dust that settles on everything.",
				"Bleached bones mark the paths between the rare waterholes.",
			},
		},
	},
	biome.Sahara: {
		Adjectives: []string{"scorching", "sizzling", "torrid", "endless"},
		Nouns:      []string{"dunes", "sands", "wasteland"},
		Parts: [][]string{
			{
				"The sun beats down relentlessly, baking the sand and sapping the strength of all who venture out.",
				"Mirages dance on the horizon, promising water and shade that never come.",
			},
			{
				"Only the scarce oases offer a brief moment of coolness.",
				"Only the most resilient creatures survive in the glare.",
			},
		},
	},
	biome.Mountain: {
		Adjectives: []string{"jagged", "towering", "craggy", "snowcapped"},
		Nouns:      []string{"range", "peaks", "highlands"},
		Parts: [][]string{
			{
				"Narrow passes wind between sheer cliffs.",
				"Loose scree makes every step treacherous.",
			},
			{
				"The thin air makes it hard to catch one's breath.",
				"Eagles ride the updrafts high above the valleys.",
			},
		},
	},
	biome.Plateau: {
		Adjectives: []string{"wide", "windswept", "barren", "lofty"},
		Nouns:      []string{"plateau", "tableland", "mesa"},
		Parts: [][]string{
			{
				"The flat top ends abruptly in steep cliffs on every side.",
				"Tough grasses cling to the thin soil.",
			},
			{
				"The wind never rests up here.",
				"From the edge, the lowlands spread out like a map.",
			},
		},
	},
}
