package randlebrot

// tradeRouteImportance is the weight of capital to capital routes.
const tradeRouteImportance = 0.7

// TradeRoute is a flow of goods between factions along roads.
type TradeRoute struct {
	ID            uint32      `yaml:"id"`
	RoadIDs       []uint32    `yaml:"road_ids"`
	FactionIDs    []uint32    `yaml:"faction_ids"`
	SettlementIDs []uint32    `yaml:"settlement_ids"`
	Goods         []TradeGood `yaml:"goods"`
	Importance    float64     `yaml:"importance"`
}

// InvolvesFaction returns true if the faction takes part in the route.
func (r *TradeRoute) InvolvesFaction(factionID uint32) bool {
	for _, id := range r.FactionIDs {
		if id == factionID {
			return true
		}
	}
	return false
}

// IsInternational returns true if more than one faction takes part.
func (r *TradeRoute) IsInternational() bool {
	return len(r.FactionIDs) > 1
}

// generateTradeRoutes creates a route for every pair of factions whose
// capitals are directly connected by a road. The route carries the goods
// of both capitals. Trading partners grow closer.
func generateTradeRoutes(roads []*Road, cities []*City, factions []*Faction) []*TradeRoute {
	byID := make(map[uint32]*City, len(cities))
	for _, c := range cities {
		byID[c.ID] = c
	}

	var routes []*TradeRoute
	for i, fa := range factions {
		for _, fb := range factions[i+1:] {
			if !fa.HasCapital() || !fb.HasCapital() {
				continue
			}
			road := directRoad(roads, fa.CapitalID, fb.CapitalID)
			if road == nil {
				continue
			}
			routes = append(routes, &TradeRoute{
				ID:            uint32(len(routes) + 1),
				RoadIDs:       []uint32{road.ID},
				FactionIDs:    []uint32{fa.ID, fb.ID},
				SettlementIDs: []uint32{fa.CapitalID, fb.CapitalID},
				Goods:         mergeGoods(byID[fa.CapitalID], byID[fb.CapitalID]),
				Importance:    tradeRouteImportance,
			})
			improveRelation(fa, fb, 0.2*tradeRouteImportance)
		}
	}
	return routes
}

// directRoad returns the road connecting the two settlements (if any).
func directRoad(roads []*Road, a, b uint32) *Road {
	for _, r := range roads {
		if (r.Connects[0] == a && r.Connects[1] == b) || (r.Connects[0] == b && r.Connects[1] == a) {
			return r
		}
	}
	return nil
}

// mergeGoods returns the union of the goods produced at the settlements
// in order of first appearance.
func mergeGoods(cities ...*City) []TradeGood {
	var res []TradeGood
	seen := make(map[TradeGood]bool)
	for _, c := range cities {
		if c == nil {
			continue
		}
		for _, g := range TradeGoodsFromBiome(c.Biome) {
			if !seen[g] {
				seen[g] = true
				res = append(res, g)
			}
		}
	}
	return res
}

// TradeRoutesOfFaction returns the routes the faction takes part in.
func TradeRoutesOfFaction(routes []*TradeRoute, factionID uint32) []*TradeRoute {
	var res []*TradeRoute
	for _, r := range routes {
		if r.InvolvesFaction(factionID) {
			res = append(res, r)
		}
	}
	return res
}
