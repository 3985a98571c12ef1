package geo

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"strings"
	"sync"

	"github.com/mazznoer/colorgrad"
	"github.com/rjh-mopjones/randlebrot/biome"
)

// Layer selects what ToLayerImage renders.
type Layer int

// The different layers. Resource layers follow LayerTradeCost, one per
// resource type (see ResourceLayer).
const (
	LayerBiome Layer = iota
	LayerContinentalness
	LayerTemperature
	LayerTectonic
	LayerErosion
	LayerPeaksValleys
	LayerHumidity
	LayerPolitical
	LayerTradeCost
	layerResourceStart
)

// ResourceLayer returns the layer showing the abundance of a resource.
func ResourceLayer(rt biome.ResourceType) Layer {
	return layerResourceStart + Layer(rt)
}

// AllLayers returns every layer, terrain layers first.
func AllLayers() []Layer {
	res := make([]Layer, 0, int(layerResourceStart)+biome.NumResourceTypes)
	for l := LayerBiome; l < layerResourceStart; l++ {
		res = append(res, l)
	}
	for _, rt := range biome.AllResources() {
		res = append(res, ResourceLayer(rt))
	}
	return res
}

// IsResource returns true for the resource abundance layers.
func (l Layer) IsResource() bool {
	return l >= layerResourceStart && int(l-layerResourceStart) < biome.NumResourceTypes
}

// ResourceType returns the resource shown by a resource layer.
func (l Layer) ResourceType() (biome.ResourceType, bool) {
	if !l.IsResource() {
		return 0, false
	}
	return biome.ResourceType(l - layerResourceStart), true
}

func (l Layer) String() string {
	switch l {
	case LayerBiome:
		return "biome"
	case LayerContinentalness:
		return "continentalness"
	case LayerTemperature:
		return "temperature"
	case LayerTectonic:
		return "tectonic"
	case LayerErosion:
		return "erosion"
	case LayerPeaksValleys:
		return "peaks"
	case LayerHumidity:
		return "humidity"
	case LayerPolitical:
		return "political"
	case LayerTradeCost:
		return "trade"
	}
	if rt, ok := l.ResourceType(); ok {
		return "resource-" + strings.ToLower(rt.String())
	}
	return "unknown"
}

// ParseLayer returns the layer with the given name (see Layer.String).
func ParseLayer(name string) (Layer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, l := range AllLayers() {
		if l.String() == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown layer %q", name)
}

// ToBiomeImage returns the biome colors as RGBA bytes.
func (m *BiomeMap) ToBiomeImage() []byte {
	return m.ToLayerImage(LayerBiome)
}

// ToLayerImage returns the layer as row-major RGBA bytes, 4 per cell.
func (m *BiomeMap) ToLayerImage(l Layer) []byte {
	return m.ToImage(l).Pix
}

// ToImage renders the layer into an image.
func (m *BiomeMap) ToImage(l Layer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	colorFunc := m.layerColorFunc(l)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			img.SetRGBA(x, y, colorFunc(x, y, m.Index(x, y)))
		}
	}
	return img
}

func (m *BiomeMap) layerColorFunc(l Layer) func(x, y, i int) color.RGBA {
	switch l {
	case LayerBiome:
		return func(x, y, i int) color.RGBA { return m.Biomes[i].Color() }
	case LayerContinentalness:
		return func(x, y, i int) color.RGBA { return grayscale(m.Continentalness[i], -1, 1) }
	case LayerTemperature:
		return func(x, y, i int) color.RGBA { return temperatureColor(m.Temperature[i]) }
	case LayerTectonic:
		return func(x, y, i int) color.RGBA { return tectonicColor(m.Tectonic[i]) }
	case LayerErosion:
		return func(x, y, i int) color.RGBA { return grayscale(m.Erosion[i], 0, 1) }
	case LayerPeaksValleys:
		return func(x, y, i int) color.RGBA { return peaksColor(m.PeaksValleys[i]) }
	case LayerHumidity:
		return func(x, y, i int) color.RGBA { return humidityColor(m.Humidity[i]) }
	case LayerPolitical:
		return func(x, y, i int) color.RGBA { return politicalColor(m.Political[i]) }
	case LayerTradeCost:
		return func(x, y, i int) color.RGBA { return tradeColor(m.TradeCost[i]) }
	}
	if rt, ok := l.ResourceType(); ok {
		return func(x, y, i int) color.RGBA {
			return resourceColor(float64(m.Resources.Get(x, y, rt)), rt)
		}
	}
	return func(x, y, i int) color.RGBA { return color.RGBA{0, 0, 0, 255} }
}

var (
	gradOnce  sync.Once
	tempGrad  colorgrad.Gradient
	humidGrad colorgrad.Gradient
)

func initGradients() {
	var err error
	tempGrad, err = colorgrad.NewGradient().
		Colors(
			color.RGBA{0, 0, 255, 255},
			color.RGBA{128, 180, 128, 255},
			color.RGBA{255, 0, 0, 255},
		).
		Build()
	if err != nil {
		log.Fatal(err)
	}
	humidGrad, err = colorgrad.NewGradient().
		Colors(
			color.RGBA{139, 90, 43, 255},
			color.RGBA{200, 200, 120, 255},
			color.RGBA{30, 100, 220, 255},
		).
		Build()
	if err != nil {
		log.Fatal(err)
	}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, _ := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255}
}

func grayscale(v, min, max float64) color.RGBA {
	n := (v - min) / (max - min)
	g := uint8(math.Max(0, math.Min(1, n)) * 255)
	return color.RGBA{g, g, g, 255}
}

// temperatureColor maps [-100, 120] from blue through green to red.
func temperatureColor(t float64) color.RGBA {
	gradOnce.Do(initGradients)
	return toRGBA(tempGrad.At(math.Max(0, math.Min(1, (t+100)/200))))
}

func humidityColor(h float64) color.RGBA {
	gradOnce.Do(initGradients)
	return toRGBA(humidGrad.At(math.Max(0, math.Min(1, h))))
}

func tectonicColor(d float64) color.RGBA {
	d = math.Max(0, math.Min(1, d))
	return color.RGBA{uint8((1 - d) * 255), uint8(d * 128), uint8(d * 128), 255}
}

func peaksColor(v float64) color.RGBA {
	v = math.Max(-1, math.Min(1, v))
	if v < 0 {
		c := uint8((1 + v) * 200)
		return color.RGBA{c, c, 255, 255}
	}
	g := uint8(128 + v*127)
	return color.RGBA{g, g, g, 255}
}

func politicalColor(s float64) color.RGBA {
	if s < 0.01 {
		return color.RGBA{20, 20, 30, 255}
	}
	s = math.Min(s, 1)
	return color.RGBA{uint8(50 - 30*s), uint8(50 + 200*s), uint8(50 - 30*s), 255}
}

func tradeColor(c float64) color.RGBA {
	if math.IsInf(c, 1) {
		return color.RGBA{10, 10, 30, 255}
	}
	n := math.Max(0, math.Min(1, (c-1)/9))
	i := (1-n)*200 + 30
	return color.RGBA{uint8(i), uint8(i), uint8(i * 0.9), 255}
}

func resourceColor(a float64, rt biome.ResourceType) color.RGBA {
	if a < 0.01 {
		return color.RGBA{30, 30, 30, 255}
	}
	base := rt.Color()
	f := 0.5 + math.Min(a, 1)*0.5
	return color.RGBA{uint8(float64(base.R) * f), uint8(float64(base.G) * f), uint8(float64(base.B) * f), 255}
}
