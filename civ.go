package randlebrot

import (
	"time"

	"github.com/rjh-mopjones/randlebrot/geo"
	"github.com/rjh-mopjones/randlebrot/various"
)

// Generator runs the civilization pipeline on top of a biome map.
type Generator struct {
	*CivConfig
	Seed int64
}

// Result summarizes a civilization run.
type Result struct {
	SettlementsPlaced  int
	FactionsCreated    int
	RoadsBuilt         int
	TradeRoutesCreated int
	TerritoryCells     int
}

// NewGenerator returns a new generator. A nil config uses the defaults.
func NewGenerator(seed int64, cfg *CivConfig) *Generator {
	if cfg == nil {
		cfg = NewCivConfig()
	}
	return &Generator{
		CivConfig: cfg,
		Seed:      seed,
	}
}

// Generate places cultures, settlements, factions, roads, trade routes and
// territory (in that order) and stores them in the world definition. Each
// stage only reads the output of the previous ones. Generate never fails;
// a map without suitable land yields an empty civilization.
func (m *Generator) Generate(bm *geo.BiomeMap, w *WorldDefinition) Result {
	var res Result

	start := time.Now()
	w.Cultures = DefaultCultures()
	placement := PlaceSettlements(bm, w.Cultures, m.Seed, m.MaxSettlements)
	w.Cities = placement.Settlements
	res.SettlementsPlaced = len(w.Cities)
	various.Logf("Done settlements in %s (%d of %d candidates)", time.Since(start),
		placement.CandidatesPlaced, placement.CandidatesEvaluated)

	start = time.Now()
	w.Factions = createFactions(w.Cities, w.Cultures, m.Seed)
	res.FactionsCreated = len(w.Factions)
	various.Logf("Done factions in %s", time.Since(start))

	w.Roads = nil
	if m.GenerateRoads {
		start = time.Now()
		w.Roads = generateRoads(bm, w.Cities)
		res.RoadsBuilt = len(w.Roads)
		various.Logf("Done roads in %s", time.Since(start))
	}

	w.TradeRoutes = nil
	if m.GenerateTradeRoutes && len(w.Roads) > 0 {
		start = time.Now()
		w.TradeRoutes = generateTradeRoutes(w.Roads, w.Cities, w.Factions)
		res.TradeRoutesCreated = len(w.TradeRoutes)
		various.Logf("Done trade routes in %s", time.Since(start))
	}

	w.Territory = nil
	if m.GenerateTerritories {
		start = time.Now()
		w.Territory = generateTerritory(bm, w.Cities, w.Factions, m.TerritoryThreshold)
		res.TerritoryCells = w.Territory.TotalClaimedArea()
		various.Logf("Done territory in %s", time.Since(start))
	}

	w.IDs.SyncWith(w)
	return res
}
