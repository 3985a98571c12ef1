package randlebrot

import (
	"fmt"
	"os"

	"github.com/rjh-mopjones/randlebrot/chunk"
	"github.com/rjh-mopjones/randlebrot/geo"
	"gopkg.in/yaml.v3"
)

// Config is a struct that holds all configuration options for the world
// generation.
type Config struct {
	*geo.MapConfig     `yaml:"map"`
	*CivConfig         `yaml:"civ"`
	*chunk.CacheConfig `yaml:"cache"`

	Verbose bool `yaml:"verbose"` // Log the duration of every stage (applied by the commands)
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		MapConfig:   geo.NewMapConfig(),
		CivConfig:   NewCivConfig(),
		CacheConfig: chunk.NewCacheConfig(),
		Verbose:     true,
	}
}

// LoadConfig reads a YAML config file. Options missing from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// CivConfig is a struct that holds all configuration options for
// civilization generation.
type CivConfig struct {
	MaxSettlements      int     `yaml:"max_settlements"`       // Upper bound of placed settlements
	GenerateRoads       bool    `yaml:"generate_roads"`        // Connect settlements with roads
	GenerateTradeRoutes bool    `yaml:"generate_trade_routes"` // Derive trade routes from roads
	GenerateTerritories bool    `yaml:"generate_territories"`  // Flood fill faction territory
	TerritoryThreshold  float64 `yaml:"territory_threshold"`   // Minimum influence to claim a cell
}

// NewCivConfig returns a new config for civilization generation.
func NewCivConfig() *CivConfig {
	return &CivConfig{
		MaxSettlements:      50,
		GenerateRoads:       true,
		GenerateTradeRoutes: true,
		GenerateTerritories: true,
		TerritoryThreshold:  0.1,
	}
}
