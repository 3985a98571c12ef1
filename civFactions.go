package randlebrot

import (
	"image/color"
	"math"
	"sort"

	"github.com/rjh-mopjones/randlebrot/various"
)

// Disposition describes the temperament of a faction (all 0-1).
type Disposition struct {
	Aggressiveness float64 `yaml:"aggressiveness"`
	TradeOpenness  float64 `yaml:"trade_openness"`
	Isolationism   float64 `yaml:"isolationism"`
}

// NewDisposition derives a disposition from the culture's base values with
// up to ±0.2 of variation per trait taken from the hashed seed.
func NewDisposition(ct CultureType, seed uint32) Disposition {
	hash := seed * 2654435761
	r1 := float64(hash&0xFF) / 255
	r2 := float64((hash>>8)&0xFF) / 255
	r3 := float64((hash>>16)&0xFF) / 255

	var agg, trade, iso float64
	switch ct {
	case CultureTypeTwilightDweller:
		agg, trade, iso = 0.4, 0.7, 0.2
	case CultureTypeFrostKin:
		agg, trade, iso = 0.6, 0.3, 0.6
	case CultureTypeSunForged:
		agg, trade, iso = 0.5, 0.5, 0.4
	case CultureTypeTideWalker:
		agg, trade, iso = 0.3, 0.9, 0.1
	default:
		agg, trade, iso = 0.5, 0.4, 0.5
	}
	return Disposition{
		Aggressiveness: various.Clamp01(agg + (r1-0.5)*0.4),
		TradeOpenness:  various.Clamp01(trade + (r2-0.5)*0.4),
		Isolationism:   various.Clamp01(iso + (r3-0.5)*0.4),
	}
}

// Faction is a political entity formed around a culture's capital.
type Faction struct {
	ID            uint32             `yaml:"id"`
	Name          string             `yaml:"name"`
	Culture       CultureType        `yaml:"culture"`
	Color         color.RGBA         `yaml:"color"`
	CapitalID     uint32             `yaml:"capital_id,omitempty"` // 0 if the faction has no capital
	SettlementIDs []uint32           `yaml:"settlement_ids"`
	Relations     map[uint32]float64 `yaml:"relations,omitempty"`
	Disposition   Disposition        `yaml:"disposition"`
}

// NewFaction returns a new faction without settlements.
func NewFaction(id uint32, name string, ct CultureType) *Faction {
	return &Faction{
		ID:        id,
		Name:      name,
		Culture:   ct,
		Color:     ct.Color(),
		Relations: make(map[uint32]float64),
	}
}

// AddSettlement adds a settlement to the faction (once).
func (f *Faction) AddSettlement(cityID uint32) {
	for _, id := range f.SettlementIDs {
		if id == cityID {
			return
		}
	}
	f.SettlementIDs = append(f.SettlementIDs, cityID)
}

// SetCapital makes the settlement the capital of the faction.
func (f *Faction) SetCapital(cityID uint32) {
	f.CapitalID = cityID
	f.AddSettlement(cityID)
}

// HasCapital returns true if the faction has a capital.
func (f *Faction) HasCapital() bool {
	return f.CapitalID != 0
}

// Relation returns the relation to another faction (-1 to 1, 0 is neutral).
func (f *Faction) Relation(other uint32) float64 {
	return f.Relations[other]
}

// SetRelation sets the relation to another faction, clamped to [-1, 1].
func (f *Faction) SetRelation(other uint32, v float64) {
	if f.Relations == nil {
		f.Relations = make(map[uint32]float64)
	}
	f.Relations[other] = various.Clamp(v, -1, 1)
}

func (f *Faction) IsHostile(other uint32) bool {
	return f.Relation(other) < -0.3
}

func (f *Faction) IsAllied(other uint32) bool {
	return f.Relation(other) > 0.5
}

// SettlementCount returns the number of settlements of the faction.
func (f *Faction) SettlementCount() int {
	return len(f.SettlementIDs)
}

// createFactions forms one faction per culture that has a capital, in the
// order of the given cultures. Each capital leads its culture's faction,
// all other settlements are dealt round-robin over the factions.
func createFactions(cities []*City, cultures []*Culture, seed int64) []*Faction {
	var factions []*Faction
	isCapital := make(map[uint32]bool)
	for _, c := range cultures {
		var capital *City
		for _, city := range cities {
			if city.Tier == CityTierCapital && city.Culture == c.Type {
				capital = city
				break
			}
		}
		if capital == nil {
			continue
		}
		id := uint32(len(factions) + 1)
		f := NewFaction(id, c.FactionName(), c.Type)
		f.Color = c.Color
		f.Disposition = NewDisposition(c.Type, uint32(seed)+id)
		f.SetCapital(capital.ID)
		isCapital[capital.ID] = true
		factions = append(factions, f)
	}
	if len(factions) == 0 {
		return nil
	}

	var i int
	for _, city := range cities {
		if isCapital[city.ID] {
			continue
		}
		factions[i%len(factions)].AddSettlement(city.ID)
		i++
	}
	initRelations(factions)
	return factions
}

// initRelations seeds the relations between all factions from their
// dispositions. Open traders get along, aggressive and isolationist
// factions don't.
func initRelations(factions []*Faction) {
	for i, a := range factions {
		for _, b := range factions[i+1:] {
			da, db := a.Disposition, b.Disposition
			v := 0.5*(da.TradeOpenness+db.TradeOpenness) -
				0.5*(da.Aggressiveness+db.Aggressiveness) -
				0.25*(da.Isolationism+db.Isolationism)
			v = various.RoundToDecimals(v, 3)
			a.SetRelation(b.ID, v)
			b.SetRelation(a.ID, v)
		}
	}
}

// FactionOfCity returns the faction a settlement belongs to (if any).
func FactionOfCity(factions []*Faction, cityID uint32) *Faction {
	for _, f := range factions {
		for _, id := range f.SettlementIDs {
			if id == cityID {
				return f
			}
		}
	}
	return nil
}

// factionIDs returns the sorted ids of the factions.
func factionIDs(factions []*Faction) []uint32 {
	res := make([]uint32, 0, len(factions))
	for _, f := range factions {
		res = append(res, f.ID)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// improveRelation shifts the mutual relation of two factions.
func improveRelation(a, b *Faction, delta float64) {
	v := math.Round((a.Relation(b.ID)+delta)*1000) / 1000
	a.SetRelation(b.ID, v)
	b.SetRelation(a.ID, v)
}
