// Package randlebrot generates tidally locked planets: layered noise
// terrain classified into biomes, and a civilization of cultures,
// settlements, factions, roads and territories placed on top of it.
package randlebrot

import (
	"errors"
	"time"

	"github.com/rjh-mopjones/randlebrot/chunk"
	"github.com/rjh-mopjones/randlebrot/geo"
	"github.com/rjh-mopjones/randlebrot/noise"
	"github.com/rjh-mopjones/randlebrot/various"
)

// Map is a generated world.
type Map struct {
	*geo.BiomeMap // Terrain, climate and derived metrics

	World  *WorldDefinition // Parameters and civilization
	Result Result           // Summary of the civilization run
	Chunks *chunk.Hierarchy // Cached detail samples
	cont   *noise.Continentalness
}

// NewMapFromConfig generates the terrain and the civilization of a world.
func NewMapFromConfig(seed int64, cfg *Config) (*Map, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if cfg.MapConfig == nil || cfg.CivConfig == nil {
		return nil, errors.New("incomplete config")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("map size must be positive")
	}
	w := NewWorldDefinition()
	w.Seed = seed
	w.Width = cfg.Width
	w.Height = cfg.Height
	w.SeaLevel = cfg.SeaLevel
	w.NoiseParams = cfg.Noise
	w.TerminatorX = float64(cfg.Width) / 2
	return newMap(w, cfg, true), nil
}

// NewMap generates a world of the given size with the default config.
func NewMap(seed int64, width, height int) (*Map, error) {
	cfg := NewConfig()
	cfg.Width = width
	cfg.Height = height
	return NewMapFromConfig(seed, cfg)
}

// NewMapFromWorld regenerates the terrain of a (loaded) world. The
// settlements, factions and roads of the world are kept; only the
// territory is recomputed. A nil config uses the defaults.
func NewMapFromWorld(w *WorldDefinition, cfg *Config) *Map {
	if cfg == nil {
		cfg = NewConfig()
	}
	return newMap(w, cfg, false)
}

func newMap(w *WorldDefinition, cfg *Config, generateCiv bool) *Map {
	mc := w.MapConfig()
	mc.GenerateResources = cfg.GenerateResources

	start := time.Now()
	m := &Map{
		BiomeMap: geo.GenerateWithConfig(w.Seed, mc),
		World:    w,
		Chunks:   chunk.NewHierarchy(cfg.CacheConfig),
		cont:     geo.NewContinentalnessLayer(w.Seed, w.NoiseParams),
	}
	various.Logf("Done terrain in %s", time.Since(start))

	if generateCiv {
		m.Result = NewGenerator(w.Seed, cfg.CivConfig).Generate(m.BiomeMap, w)
	} else {
		m.RegenerateTerritory(cfg.TerritoryThreshold)
	}
	return m
}

// RegenerateTerritory recomputes the territory of the current settlements
// and factions, e.g. after they have been edited.
func (m *Map) RegenerateTerritory(threshold float64) {
	start := time.Now()
	m.World.Territory = generateTerritory(m.BiomeMap, m.World.Cities, m.World.Factions, threshold)
	m.Result.TerritoryCells = m.World.Territory.TotalClaimedArea()
	various.Logf("Done territory in %s", time.Since(start))
}

// ContinentalnessAtDetail samples continentalness through the chunk cache
// at the given detail level. Positions are world cells and may lie
// outside of the map.
func (m *Map) ContinentalnessAtDetail(x, y float64, detail int) float64 {
	return m.Chunks.Sample(x, y, detail, m.cont)
}

// Stats returns the civilization statistics of the world.
func (m *Map) Stats() *CivStats {
	return GetCivStats(m.World)
}

// CityDescription returns the flavor text of the city or an empty string
// if there is no such city.
func (m *Map) CityDescription(cityID uint32) string {
	c := m.World.CityByID(cityID)
	if c == nil {
		return ""
	}
	return CityFlavorText(m.BiomeMap, m.World.Factions, c)
}
