package geo

// MapConfig is a struct that holds all configuration options for the
// terrain / climate generation.
type MapConfig struct {
	Width             int         `yaml:"width"`              // Width of the map in cells
	Height            int         `yaml:"height"`             // Height of the map in cells
	SeaLevel          float64     `yaml:"sea_level"`          // Continentalness separating water from land
	GenerateResources bool        `yaml:"generate_resources"` // Run the (expensive) resource pass
	Noise             NoiseParams `yaml:"noise"`
}

// NewMapConfig returns a new config for terrain / climate generation.
func NewMapConfig() *MapConfig {
	return &MapConfig{
		Width:             1024,
		Height:            512,
		SeaLevel:          SeaLevel,
		GenerateResources: true,
		Noise:             NewNoiseParams(),
	}
}

// NoiseParams tune the fractal noise of the continentalness and
// temperature layers.
type NoiseParams struct {
	ContinentalnessOctaves     int     `yaml:"continentalness_octaves"`
	ContinentalnessPersistence float64 `yaml:"continentalness_persistence"`
	ContinentalnessLacunarity  float64 `yaml:"continentalness_lacunarity"`
	ContinentalnessScale       float64 `yaml:"continentalness_scale"` // world units per noise unit
	TemperatureOctaves         int     `yaml:"temperature_octaves"`
	TemperaturePersistence     float64 `yaml:"temperature_persistence"`
}

// NewNoiseParams returns the default noise parameters.
func NewNoiseParams() NoiseParams {
	return NoiseParams{
		ContinentalnessOctaves:     8,
		ContinentalnessPersistence: 0.59,
		ContinentalnessLacunarity:  2.0,
		ContinentalnessScale:       100,
		TemperatureOctaves:         6,
		TemperaturePersistence:     0.5,
	}
}

// withDefaults replaces unset (zero) parameters with the defaults.
func (p NoiseParams) withDefaults() NoiseParams {
	def := NewNoiseParams()
	if p.ContinentalnessOctaves <= 0 {
		p.ContinentalnessOctaves = def.ContinentalnessOctaves
	}
	if p.ContinentalnessPersistence <= 0 {
		p.ContinentalnessPersistence = def.ContinentalnessPersistence
	}
	if p.ContinentalnessLacunarity <= 0 {
		p.ContinentalnessLacunarity = def.ContinentalnessLacunarity
	}
	if p.ContinentalnessScale <= 0 {
		p.ContinentalnessScale = def.ContinentalnessScale
	}
	if p.TemperatureOctaves <= 0 {
		p.TemperatureOctaves = def.TemperatureOctaves
	}
	if p.TemperaturePersistence <= 0 {
		p.TemperaturePersistence = def.TemperaturePersistence
	}
	return p
}
