package geo

import (
	"time"

	"github.com/rjh-mopjones/randlebrot/biome"
	"github.com/rjh-mopjones/randlebrot/noise"
	"github.com/rjh-mopjones/randlebrot/various"
)

// BiomeMap is a grid of every terrain layer, the classified biome and the
// derived metrics. All dense slices share the same y*Width+x indexing.
//
// A BiomeMap is immutable once generated; regenerate to change it.
type BiomeMap struct {
	Width  int
	Height int

	Biomes          []biome.Biome
	Continentalness []float64 // [-1, 1], below SeaLevel is water
	Temperature     []float64 // raw (latitude + noise) temperature
	Tectonic        []float64 // 0 = plate boundary, 1 = plate center
	Erosion         []float64 // [0, 1]
	PeaksValleys    []float64 // [-1, 1]
	Humidity        []float64 // [0, 1]

	Political []float64 // settlement suitability [0, 1]
	TradeCost []float64 // >= 0.8, +Inf for water

	Resources *ResourceMap
}

func newBiomeMap(width, height int) *BiomeMap {
	n := width * height
	return &BiomeMap{
		Width:           width,
		Height:          height,
		Biomes:          make([]biome.Biome, n),
		Continentalness: make([]float64, n),
		Temperature:     make([]float64, n),
		Tectonic:        make([]float64, n),
		Erosion:         make([]float64, n),
		PeaksValleys:    make([]float64, n),
		Humidity:        make([]float64, n),
		Political:       make([]float64, n),
		TradeCost:       make([]float64, n),
		Resources:       NewResourceMap(width, height),
	}
}

// layers holds the noise strategies of one world, seeded per layer.
type layers struct {
	cont  *noise.Continentalness
	temp  *noise.LatitudeTemperature
	tect  *noise.TectonicPlates
	eros  *noise.Erosion
	peaks *noise.PeaksValleys
	humid *noise.Humidity
}

func newLayers(seed int64, worldHeight float64, p NoiseParams) *layers {
	p = p.withDefaults()
	temp := noise.NewLatitudeTemperatureWithParams(seed+1, worldHeight, p.TemperatureOctaves, p.TemperaturePersistence)
	return &layers{
		cont:  NewContinentalnessLayer(seed, p),
		temp:  temp,
		tect:  noise.NewTectonicPlates(seed + 2),
		eros:  noise.NewErosion(seed + 3),
		peaks: noise.NewPeaksValleys(seed + 4),
		humid: noise.NewHumidity(seed + 5),
	}
}

// NewContinentalnessLayer returns the continentalness strategy the map
// generators use for the seed and parameters.
func NewContinentalnessLayer(seed int64, p NoiseParams) *noise.Continentalness {
	p = p.withDefaults()
	return noise.NewContinentalnessWithParams(seed, p.ContinentalnessOctaves,
		p.ContinentalnessPersistence, p.ContinentalnessLacunarity, p.ContinentalnessScale)
}

// sampling describes how output pixels map to world coordinates.
type sampling struct {
	originX, originY float64
	scale            float64
	detail           int
	seaLevel         float64
	batch            int
	progress         *Progress
}

func (s *sampling) world(m *BiomeMap, i int) (float64, float64) {
	px := float64(i % m.Width)
	py := float64(i / m.Width)
	return s.originX + px*s.scale, s.originY + py*s.scale
}

// Generate returns the full map of the given size. Each cell is one world
// unit and the latitude gradient spans the map height.
func Generate(seed int64, width, height int) *BiomeMap {
	cfg := NewMapConfig()
	cfg.Width = width
	cfg.Height = height
	return GenerateWithConfig(seed, cfg)
}

// GenerateWithConfig returns the full map as configured.
func GenerateWithConfig(seed int64, cfg *MapConfig) *BiomeMap {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return newBiomeMap(0, 0)
	}
	m := newBiomeMap(cfg.Width, cfg.Height)
	total := cfg.Width * cfg.Height
	m.fill(newLayers(seed, float64(cfg.Height), cfg.Noise), &sampling{
		scale:    1,
		seaLevel: cfg.SeaLevel,
		batch:    total,
	})
	if cfg.GenerateResources {
		start := time.Now()
		m.generateResources(seed, cfg.SeaLevel)
		various.Logf("Done resources in %s (%d cells)", time.Since(start), m.Resources.CellsWithResources())
	}
	return m
}

// GenerateRegion renders the square world window starting at (worldX,
// worldY) with side length worldSize at outputSize x outputSize cells.
// worldHeight is the height of the whole world for the latitude gradient.
// Resources are skipped.
func GenerateRegion(seed int64, worldX, worldY, worldSize float64, outputSize int, worldHeight float64, detail int) *BiomeMap {
	return GenerateMesoFull(seed, worldX, worldY, worldSize, outputSize, worldHeight, detail, nil)
}

// GenerateMesoFull is GenerateRegion with per-layer progress reporting.
// The tracker is reset first and counters are bumped once per batch of
// cells; progress may be nil.
func GenerateMesoFull(seed int64, worldX, worldY, worldSize float64, outputSize int, worldHeight float64, detail int, progress *Progress) *BiomeMap {
	progress.Reset()
	if outputSize <= 0 {
		return newBiomeMap(0, 0)
	}
	m := newBiomeMap(outputSize, outputSize)
	total := outputSize * outputSize
	batch := total / 100
	if batch < 256 {
		batch = 256
	}
	m.fill(newLayers(seed, worldHeight, NewNoiseParams()), &sampling{
		originX:  worldX,
		originY:  worldY,
		scale:    worldSize / float64(outputSize),
		detail:   detail,
		seaLevel: SeaLevel,
		batch:    batch,
		progress: progress,
	})

	// Resources are not generated for regions, but pollers wait for
	// every layer to complete.
	progress.Add(LayerProgressResources, total)
	return m
}

// fill runs the two data parallel passes and the sequential
// classification. The second pass depends on continentalness from the
// first one, the return of ForEachBatch is the barrier between them.
func (m *BiomeMap) fill(l *layers, s *sampling) {
	total := m.Width * m.Height

	start := time.Now()
	various.ForEachBatch(total, s.batch, func(from, to int) {
		for i := from; i < to; i++ {
			x, y := s.world(m, i)
			m.Continentalness[i] = l.cont.Generate(x, y, s.detail)
			m.Temperature[i] = l.temp.Generate(x, y, s.detail)
			m.Tectonic[i] = l.tect.Generate(x, y, s.detail)
			m.PeaksValleys[i] = l.peaks.Generate(x, y, s.detail)
		}
		n := to - from
		s.progress.Add(LayerProgressContinentalness, n)
		s.progress.Add(LayerProgressTemperature, n)
		s.progress.Add(LayerProgressTectonic, n)
		s.progress.Add(LayerProgressPeaksValleys, n)
	})
	various.Logf("Done base layers in %s", time.Since(start))

	start = time.Now()
	various.ForEachBatch(total, s.batch, func(from, to int) {
		for i := from; i < to; i++ {
			x, y := s.world(m, i)
			c := m.Continentalness[i]
			m.Erosion[i] = l.eros.WithContinentalness(x, y, s.detail, c)
			m.Humidity[i] = l.humid.WithContinentalness(x, y, s.detail, c)
		}
		n := to - from
		s.progress.Add(LayerProgressErosion, n)
		s.progress.Add(LayerProgressHumidity, n)
	})
	various.Logf("Done dependent layers in %s", time.Since(start))

	splines := NewBiomeSplines(s.seaLevel)
	for i := 0; i < total; i++ {
		b := splines.Evaluate(m.Continentalness[i], m.Temperature[i], m.Tectonic[i],
			m.Erosion[i], m.PeaksValleys[i], m.Humidity[i])
		m.Biomes[i] = b
		m.Political[i] = PoliticalScoreSimple(b, m.Temperature[i], m.Humidity[i])
		m.TradeCost[i] = TradeCost(b, m.Erosion[i])
	}
}

// generateResources samples every resource type for every cell and keeps
// the abundances above MinAbundance.
func (m *BiomeMap) generateResources(seed int64, seaLevel float64) {
	total := m.Width * m.Height
	strategies := make([]*noise.ResourceNoise, biome.NumResourceTypes)
	abundance := make([][]float32, biome.NumResourceTypes)
	for i, rt := range biome.AllResources() {
		strategies[i] = noise.NewResourceNoise(seed, rt)
		abundance[i] = make([]float32, total)
	}

	various.ForEachRange(total, func(from, to int) {
		for i := from; i < to; i++ {
			ctx := m.resourceContext(i, seaLevel)
			x, y := float64(i%m.Width), float64(i/m.Width)
			for r, s := range strategies {
				abundance[r][i] = float32(s.WithContext(x, y, 0, ctx))
			}
		}
	})

	// The sparse map is not safe for concurrent writes.
	for r, rt := range biome.AllResources() {
		for i, a := range abundance[r] {
			if a > MinAbundance {
				m.Resources.Set(i%m.Width, i/m.Width, rt, a)
			}
		}
	}
}

// resourceContext derives the terrain context of a cell. Continentalness
// stands in for the distance to water.
func (m *BiomeMap) resourceContext(i int, seaLevel float64) biome.ResourceContext {
	c := m.Continentalness[i]
	waterDist := 0.0
	if c >= seaLevel {
		waterDist = various.Clamp01((c - seaLevel) * 5)
	}
	return biome.ResourceContext{
		Continentalness: c,
		TectonicDist:    m.Tectonic[i],
		WaterDist:       waterDist,
		Biome:           m.Biomes[i],
	}
}

// GenerateBiomeOnly renders a region straight to RGBA bytes using only
// continentalness and temperature. It is much cheaper than GenerateRegion
// and meant for previews.
func GenerateBiomeOnly(seed int64, worldX, worldY, worldSize float64, outputSize int, worldHeight float64, detail int) []byte {
	if outputSize <= 0 {
		return nil
	}
	cont := noise.NewContinentalness(seed)
	temp := noise.NewLatitudeTemperature(seed+1, worldHeight)
	scale := worldSize / float64(outputSize)

	data := make([]byte, outputSize*outputSize*4)
	various.ForEachRange(outputSize*outputSize, func(from, to int) {
		for i := from; i < to; i++ {
			x := worldX + float64(i%outputSize)*scale
			y := worldY + float64(i/outputSize)*scale
			b := ClassifyClimate(cont.Generate(x, y, detail), temp.Generate(x, y, detail), SeaLevel)
			c := b.Color()
			copy(data[i*4:], []byte{c.R, c.G, c.B, c.A})
		}
	})
	return data
}

// InBounds returns true if (x, y) is a cell of the map.
func (m *BiomeMap) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// Index returns the slice index of the cell (x, y).
func (m *BiomeMap) Index(x, y int) int {
	return y*m.Width + x
}

func cellAt[T any](m *BiomeMap, s []T, x, y int) (T, bool) {
	if !m.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return s[m.Index(x, y)], true
}

// BiomeAt returns the biome of the cell, ok is false out of bounds.
func (m *BiomeMap) BiomeAt(x, y int) (biome.Biome, bool) {
	return cellAt(m, m.Biomes, x, y)
}

func (m *BiomeMap) ContinentalnessAt(x, y int) (float64, bool) {
	return cellAt(m, m.Continentalness, x, y)
}

func (m *BiomeMap) TemperatureAt(x, y int) (float64, bool) {
	return cellAt(m, m.Temperature, x, y)
}

func (m *BiomeMap) TectonicAt(x, y int) (float64, bool) {
	return cellAt(m, m.Tectonic, x, y)
}

func (m *BiomeMap) ErosionAt(x, y int) (float64, bool) {
	return cellAt(m, m.Erosion, x, y)
}

func (m *BiomeMap) PeaksValleysAt(x, y int) (float64, bool) {
	return cellAt(m, m.PeaksValleys, x, y)
}

func (m *BiomeMap) HumidityAt(x, y int) (float64, bool) {
	return cellAt(m, m.Humidity, x, y)
}

func (m *BiomeMap) PoliticalAt(x, y int) (float64, bool) {
	return cellAt(m, m.Political, x, y)
}

func (m *BiomeMap) TradeCostAt(x, y int) (float64, bool) {
	return cellAt(m, m.TradeCost, x, y)
}
