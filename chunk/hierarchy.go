package chunk

import "github.com/rjh-mopjones/randlebrot/noise"

// Chunk side lengths of the tiers.
const (
	MacroSize = 32
	MesoSize  = 64
	MicroSize = 128
)

// Detail levels of the tiers.
const (
	DetailMacro = 0
	DetailMeso  = 1
	DetailMicro = 2
)

// CacheConfig holds the capacities of the tiers in chunks.
type CacheConfig struct {
	MacroCapacity int `yaml:"macro_capacity"`
	MesoCapacity  int `yaml:"meso_capacity"`
	MicroCapacity int `yaml:"micro_capacity"`
}

// NewCacheConfig returns the default tier capacities.
func NewCacheConfig() *CacheConfig {
	return &CacheConfig{
		MacroCapacity: 64,
		MesoCapacity:  256,
		MicroCapacity: 1024,
	}
}

// Hierarchy routes samples to the tier of the requested detail level.
// It is not safe for concurrent use.
type Hierarchy struct {
	macro *Cache
}

// Stats holds the number of cached chunks per tier.
type Stats struct {
	Macro, Meso, Micro int
}

// NewHierarchy returns an empty hierarchy. A nil config uses the defaults.
func NewHierarchy(cfg *CacheConfig) *Hierarchy {
	if cfg == nil {
		cfg = NewCacheConfig()
	}
	micro := NewCache(cfg.MicroCapacity, MicroSize, DetailMicro)
	meso := NewCache(cfg.MesoCapacity, MesoSize, DetailMeso)
	meso.child = micro
	macro := NewCache(cfg.MacroCapacity, MacroSize, DetailMacro)
	macro.child = meso
	return &Hierarchy{macro: macro}
}

// Sample returns the value of the strategy at (x, y). Detail 0 reads the
// macro tier, 1 the meso tier and anything higher the micro tier.
func (m *Hierarchy) Sample(x, y float64, detail int, s noise.Strategy) float64 {
	return m.tier(detail).Sample(x, y, s)
}

func (m *Hierarchy) tier(detail int) *Cache {
	switch {
	case detail <= DetailMacro:
		return m.Macro()
	case detail == DetailMeso:
		return m.Meso()
	}
	return m.Micro()
}

func (m *Hierarchy) Macro() *Cache { return m.macro }

func (m *Hierarchy) Meso() *Cache { return m.macro.child }

func (m *Hierarchy) Micro() *Cache { return m.macro.child.child }

// Stats returns the current chunk counts.
func (m *Hierarchy) Stats() Stats {
	return Stats{
		Macro: m.Macro().Len(),
		Meso:  m.Meso().Len(),
		Micro: m.Micro().Len(),
	}
}

// Clear drops every cached chunk of every tier.
func (m *Hierarchy) Clear() {
	m.macro.Clear()
}
