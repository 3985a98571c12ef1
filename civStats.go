package randlebrot

import (
	"log"
	"sort"
)

// CivStats contains statistics about the civilization of a world, like the
// number of settlements per culture or the share of land each faction
// controls.
type CivStats struct {
	Settlements      int
	Cultures         map[CultureType]int // Number of settlements per culture.
	Tiers            map[CityTier]int    // Number of settlements per tier.
	Factions         []FactionStats
	Roads            map[RoadType]int // Number of roads per type.
	RoadLength       float64          // Combined length of all roads.
	TradeRoutes      int
	International    int // Trade routes between factions.
	TerritoryClaimed int // Number of claimed cells.
	TerritoryShare   float64
}

// FactionStats summarizes a single faction.
type FactionStats struct {
	Name        string
	Settlements int
	Population  int
	Territory   int // Number of claimed cells.
	Hostile     int // Number of hostile factions.
	Allied      int // Number of allied factions.
}

// GetCivStats computes the statistics of the world. If the territory has
// not been generated, the territory counts are zero.
func GetCivStats(w *WorldDefinition) *CivStats {
	res := &CivStats{
		Settlements: len(w.Cities),
		Cultures:    make(map[CultureType]int),
		Tiers:       make(map[CityTier]int),
		Roads:       make(map[RoadType]int),
		TradeRoutes: len(w.TradeRoutes),
	}
	for _, c := range w.Cities {
		res.Cultures[c.Culture]++
		res.Tiers[c.Tier]++
	}
	for _, r := range w.Roads {
		res.Roads[r.Type]++
		res.RoadLength += r.Length()
	}
	for _, t := range w.TradeRoutes {
		if t.IsInternational() {
			res.International++
		}
	}

	var claimed map[uint32]int
	if w.Territory != nil {
		claimed = w.Territory.CountByFaction()
		res.TerritoryClaimed = w.Territory.TotalClaimedArea()
		if n := w.Territory.Width * w.Territory.Height; n > 0 {
			res.TerritoryShare = float64(res.TerritoryClaimed) / float64(n)
		}
	}
	ids := factionIDs(w.Factions)
	for _, f := range w.Factions {
		fs := FactionStats{
			Name:        f.Name,
			Settlements: f.SettlementCount(),
			Territory:   claimed[f.ID],
		}
		for _, id := range f.SettlementIDs {
			if c := w.CityByID(id); c != nil {
				fs.Population += c.Population
			}
		}
		for _, id := range ids {
			if id == f.ID {
				continue
			}
			if f.IsHostile(id) {
				fs.Hostile++
			} else if f.IsAllied(id) {
				fs.Allied++
			}
		}
		res.Factions = append(res.Factions, fs)
	}
	sort.SliceStable(res.Factions, func(i, j int) bool {
		return res.Factions[i].Territory > res.Factions[j].Territory
	})
	return res
}

// Log writes the statistics to the standard logger.
func (s *CivStats) Log() {
	log.Printf("Settlements: %d", s.Settlements)
	for _, ct := range CultureTypes() {
		if n := s.Cultures[ct]; n > 0 {
			log.Printf("  %s: %d", ct, n)
		}
	}
	for _, t := range []CityTier{CityTierCapital, CityTierTown, CityTierVillage} {
		log.Printf("  %s: %d", t, s.Tiers[t])
	}
	log.Println("Factions:")
	for _, f := range s.Factions {
		log.Printf("  %s: %d settlements, %d people, %d cells, %d allies, %d rivals",
			f.Name, f.Settlements, f.Population, f.Territory, f.Allied, f.Hostile)
	}
	log.Printf("Roads: %d imperial, %d provincial, %d trails (%.0f cells)",
		s.Roads[RoadTypeImperial], s.Roads[RoadTypeProvincial], s.Roads[RoadTypeTrail], s.RoadLength)
	log.Printf("Trade routes: %d (%d international)", s.TradeRoutes, s.International)
	log.Printf("Territory: %d cells (%.1f%%)", s.TerritoryClaimed, s.TerritoryShare*100)
}
