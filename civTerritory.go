package randlebrot

import (
	"image"
	"image/color"
	"math"

	"github.com/mazznoer/colorgrad"
	"github.com/rjh-mopjones/randlebrot/geo"
)

// maxTerritoryIterations caps the influence flood fill.
const maxTerritoryIterations = 200

// TerritoryMap holds the owning faction and its influence per cell.
// Owner 0 means unclaimed.
type TerritoryMap struct {
	Width     int
	Height    int
	Owners    []uint32
	Influence []float64
}

// NewTerritoryMap returns an unclaimed territory map.
func NewTerritoryMap(width, height int) *TerritoryMap {
	return &TerritoryMap{
		Width:     width,
		Height:    height,
		Owners:    make([]uint32, width*height),
		Influence: make([]float64, width*height),
	}
}

func (m *TerritoryMap) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// Owner returns the faction owning the cell, 0 if unclaimed or out of
// bounds.
func (m *TerritoryMap) Owner(x, y int) uint32 {
	if !m.inBounds(x, y) {
		return 0
	}
	return m.Owners[y*m.Width+x]
}

// InfluenceAt returns the influence of the owner at the cell.
func (m *TerritoryMap) InfluenceAt(x, y int) float64 {
	if !m.inBounds(x, y) {
		return 0
	}
	return m.Influence[y*m.Width+x]
}

// Set claims the cell for the faction.
func (m *TerritoryMap) Set(x, y int, factionID uint32, influence float64) {
	if !m.inBounds(x, y) {
		return
	}
	m.Owners[y*m.Width+x] = factionID
	m.Influence[y*m.Width+x] = influence
}

func (m *TerritoryMap) IsClaimed(x, y int) bool {
	return m.Owner(x, y) != 0
}

// Neighbors returns the 4-connected neighbors of the cell within the map.
func (m *TerritoryMap) Neighbors(x, y int) []image.Point {
	res := make([]image.Point, 0, 4)
	if x > 0 {
		res = append(res, image.Pt(x-1, y))
	}
	if x+1 < m.Width {
		res = append(res, image.Pt(x+1, y))
	}
	if y > 0 {
		res = append(res, image.Pt(x, y-1))
	}
	if y+1 < m.Height {
		res = append(res, image.Pt(x, y+1))
	}
	return res
}

// ToImage renders the territory. Claimed cells take their faction's color
// with the alpha scaled by influence; factions without a color are gray.
// Unclaimed cells are transparent.
func (m *TerritoryMap) ToImage(colors map[uint32]color.RGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			i := y*m.Width + x
			id := m.Owners[i]
			if id == 0 {
				continue
			}
			inf := math.Min(math.Max(m.Influence[i], 0), 1)
			c, ok := colors[id]
			if !ok {
				img.SetNRGBA(x, y, color.NRGBA{128, 128, 128, uint8(inf * 128)})
				continue
			}
			img.SetNRGBA(x, y, color.NRGBA{c.R, c.G, c.B, uint8(inf * float64(c.A))})
		}
	}
	return img
}

// CountByFaction returns the number of claimed cells per faction.
func (m *TerritoryMap) CountByFaction() map[uint32]int {
	res := make(map[uint32]int)
	for _, id := range m.Owners {
		if id != 0 {
			res[id]++
		}
	}
	return res
}

// TotalClaimedArea returns the number of claimed cells.
func (m *TerritoryMap) TotalClaimedArea() int {
	var n int
	for _, id := range m.Owners {
		if id != 0 {
			n++
		}
	}
	return n
}

// FactionColors returns the display color of each faction. Factions
// without a color get one from a rainbow palette.
func FactionColors(factions []*Faction) map[uint32]color.RGBA {
	res := make(map[uint32]color.RGBA, len(factions))
	var palette []color.Color
	for i, f := range factions {
		if f.Color.A != 0 {
			res[f.ID] = f.Color
			continue
		}
		if palette == nil {
			palette = colorgrad.Rainbow().Colors(uint(len(factions)))
		}
		r, g, b, _ := palette[i].RGBA()
		res[f.ID] = color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 200}
	}
	return res
}

// generateTerritory seeds every settlement with its influence and floods
// it over the map. In every iteration each unclaimed cell adopts the
// strongest claimed 4-neighbor (lower faction id on ties), decayed by the
// cell's biome, if the result exceeds the threshold. Iterations read the
// previous state only, so the result does not depend on scan order.
func generateTerritory(bm *geo.BiomeMap, cities []*City, factions []*Faction, threshold float64) *TerritoryMap {
	cur := NewTerritoryMap(bm.Width, bm.Height)
	byID := make(map[uint32]*City, len(cities))
	for _, c := range cities {
		byID[c.ID] = c
	}
	for _, f := range factions {
		for _, id := range f.SettlementIDs {
			c := byID[id]
			if c == nil {
				continue
			}
			inf := c.Tier.Influence()
			if f.CapitalID == id {
				inf = 1.0
			}
			x, y := c.cell()
			cur.Set(x, y, f.ID, inf)
		}
	}

	next := NewTerritoryMap(bm.Width, bm.Height)
	for iter := 0; iter < maxTerritoryIterations; iter++ {
		copy(next.Owners, cur.Owners)
		copy(next.Influence, cur.Influence)
		changed := false
		for y := 0; y < cur.Height; y++ {
			for x := 0; x < cur.Width; x++ {
				i := y*cur.Width + x
				if cur.Owners[i] != 0 {
					continue
				}
				decay := bm.Biomes[i].InfluenceDecay()
				if decay == 0 {
					continue
				}
				var bestID uint32
				var bestInf float64
				for _, n := range cur.Neighbors(x, y) {
					j := n.Y*cur.Width + n.X
					id, inf := cur.Owners[j], cur.Influence[j]
					if id == 0 {
						continue
					}
					if inf > bestInf || (inf == bestInf && id < bestID) {
						bestID, bestInf = id, inf
					}
				}
				if bestID == 0 {
					continue
				}
				if v := bestInf * decay; v > threshold {
					next.Owners[i] = bestID
					next.Influence[i] = v
					changed = true
				}
			}
		}
		cur, next = next, cur
		if !changed {
			break
		}
	}
	return cur
}
