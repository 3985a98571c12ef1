package randlebrot

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/rjh-mopjones/randlebrot/biome"
	"github.com/rjh-mopjones/randlebrot/geo"
)

const (
	settlementGridStep    = 8    // candidate grid and local maximum radius
	settlementThreshold   = 0.3  // minimum site suitability of a candidate
	minSettlementDistance = 40.0 // lower bound for every culture's spacing

	resourceRadius = 5
	waterRadius    = 15
	defenseRadius  = 8
)

// SettlementCandidate is a site considered for a settlement.
type SettlementCandidate struct {
	X, Y            int
	Suitability     float64
	Culture         *Culture
	Biome           biome.Biome
	Temperature     float64
	Continentalness float64
}

// PlacementResult is the outcome of PlaceSettlements.
type PlacementResult struct {
	Settlements         []*City
	CandidatesEvaluated int
	CandidatesPlaced    int
}

// PlaceSettlements places up to maxSettlements settlements on the map.
// Candidates are the local maxima of the site suitability on a coarse
// grid; the best ones are accepted greedily as long as they respect the
// spacing of their culture. The first settlement of each culture becomes
// its capital.
func PlaceSettlements(bm *geo.BiomeMap, cultures []*Culture, seed int64, maxSettlements int) PlacementResult {
	var res PlacementResult
	if len(cultures) == 0 || bm.Width == 0 || bm.Height == 0 {
		return res
	}
	sc := newSiteScorer(bm)
	candidates := sc.findLocalMaxima(cultures, settlementGridStep)
	res.CandidatesEvaluated = len(candidates)

	// Best sites first; equal scores keep their scan order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Suitability > candidates[j].Suitability
	})

	rng := newNameRand(seed)
	hasCapital := make(map[CultureType]bool)
	nextID := uint32(1)
	for _, c := range candidates {
		if len(res.Settlements) >= maxSettlements {
			break
		}
		pos := Point{X: float64(c.X), Y: float64(c.Y)}
		minDist := math.Max(c.Culture.Traits.Spacing, minSettlementDistance)
		if !respectsSpacing(res.Settlements, pos, minDist) {
			continue
		}
		isCapital := !hasCapital[c.Culture.Type]
		hasCapital[c.Culture.Type] = true

		tier := settlementTier(c.Suitability, isCapital, c.Biome)
		city := NewCity(nextID, settlementName(rng, c.Culture.Type, c.Biome, tier), pos, tier)
		city.Culture = c.Culture.Type
		city.Biome = c.Biome
		city.Industries = industriesFromBiome(c.Biome)
		res.Settlements = append(res.Settlements, city)
		nextID++
	}
	res.CandidatesPlaced = len(res.Settlements)
	return res
}

// respectsSpacing returns false if any settlement is closer than minDist.
func respectsSpacing(settlements []*City, pos Point, minDist float64) bool {
	for _, s := range settlements {
		if s.Position.Dist(pos) < minDist {
			return false
		}
	}
	return true
}

// settlementTier picks the tier of a newly placed settlement.
func settlementTier(suitability float64, isCapital bool, b biome.Biome) CityTier {
	switch {
	case isCapital:
		return CityTierCapital
	case suitability > 0.7:
		return CityTierTown
	case suitability > 0.5 && b == biome.Beach:
		return CityTierTown
	}
	return CityTierVillage
}

// siteScorer computes site suitabilities. Window counts come from summed
// area tables and the culture independent part of each site is memoized,
// so evaluating overlapping neighborhoods stays cheap.
type siteScorer struct {
	bm      *geo.BiomeMap
	stride  int                      // Width + 1
	counts  [biome.NumBiomes][]int32 // summed area table per biome
	waterDX []int                    // horizontal distance to water in the same row
	base    []float64
	known   []bool
}

func newSiteScorer(bm *geo.BiomeMap) *siteScorer {
	w, h := bm.Width, bm.Height
	sc := &siteScorer{
		bm:      bm,
		stride:  w + 1,
		waterDX: make([]int, w*h),
		base:    make([]float64, w*h),
		known:   make([]bool, w*h),
	}
	for b := range sc.counts {
		sc.counts[b] = make([]int32, (w+1)*(h+1))
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cur := int(bm.Biomes[bm.Index(x, y)])
			for b := range sc.counts {
				v := sc.counts[b][y*sc.stride+x+1] + sc.counts[b][(y+1)*sc.stride+x] - sc.counts[b][y*sc.stride+x]
				if b == cur {
					v++
				}
				sc.counts[b][(y+1)*sc.stride+x+1] = v
			}
		}
	}

	// Two sweeps per row give the distance to the closest water cell on
	// either side.
	far := w + h
	for y := 0; y < h; y++ {
		row := sc.waterDX[y*w : (y+1)*w]
		d := far
		for x := 0; x < w; x++ {
			if isWaterAccess(bm.Biomes[bm.Index(x, y)]) {
				d = 0
			} else if d < far {
				d++
			}
			row[x] = d
		}
		d = far
		for x := w - 1; x >= 0; x-- {
			if isWaterAccess(bm.Biomes[bm.Index(x, y)]) {
				d = 0
			} else if d < far {
				d++
			}
			if d < row[x] {
				row[x] = d
			}
		}
	}
	return sc
}

// isWaterAccess returns true for cells that provide access to water.
func isWaterAccess(b biome.Biome) bool {
	return b == biome.Sea || b == biome.Beach
}

// window returns the map-clipped square of the given radius around (x, y).
func (m *siteScorer) window(x, y, r int) (x0, y0, x1, y1 int) {
	x0, y0 = max(x-r, 0), max(y-r, 0)
	x1, y1 = min(x+r, m.bm.Width-1), min(y+r, m.bm.Height-1)
	return
}

// count returns the number of cells of biome b in the inclusive rectangle.
func (m *siteScorer) count(b biome.Biome, x0, y0, x1, y1 int) int {
	s := m.counts[b]
	return int(s[(y1+1)*m.stride+x1+1] - s[y0*m.stride+x1+1] - s[(y1+1)*m.stride+x0] + s[y0*m.stride+x0])
}

// resourceScore rewards biome diversity (40%) and the share of productive
// land (60%) around the site.
func (m *siteScorer) resourceScore(x, y int) float64 {
	x0, y0, x1, y1 := m.window(x, y, resourceRadius)
	total := (x1 - x0 + 1) * (y1 - y0 + 1)
	var distinct, good int
	for _, b := range biome.All() {
		n := m.count(b, x0, y0, x1, y1)
		if n > 0 {
			distinct++
		}
		if b == biome.Plains || b == biome.Forest || b == biome.Beach {
			good += n
		}
	}
	diversity := math.Min(float64(distinct)/5, 1)
	return 0.4*diversity + 0.6*float64(good)/float64(total)
}

// waterScore is 1 on water and falls off linearly with the distance to the
// nearest sea or beach cell, reaching 0 at waterRadius.
func (m *siteScorer) waterScore(x, y int) float64 {
	w := m.bm.Width
	best := math.Inf(1)
	_, y0, _, y1 := m.window(x, y, waterRadius)
	for ny := y0; ny <= y1; ny++ {
		dx := m.waterDX[ny*w+x]
		if dx > waterRadius {
			continue
		}
		dy := ny - y
		if d := math.Sqrt(float64(dx*dx + dy*dy)); d < best {
			best = d
		}
	}
	if best > waterRadius {
		return 0
	}
	return 1 - best/waterRadius
}

// defenseScore peaks when a quarter to half of the surroundings are
// mountains or plateaus. Sites buried in highlands score lower again.
func (m *siteScorer) defenseScore(x, y int) float64 {
	x0, y0, x1, y1 := m.window(x, y, defenseRadius)
	total := (x1 - x0 + 1) * (y1 - y0 + 1)
	n := m.count(biome.Mountain, x0, y0, x1, y1) + m.count(biome.Plateau, x0, y0, x1, y1)
	ratio := float64(n) / float64(total)
	if ratio > 0.5 {
		return 0.5 - (ratio - 0.5)
	}
	return ratio * 2
}

// flatLandScore returns how easy the biome is to build on.
func flatLandScore(b biome.Biome) float64 {
	switch b {
	case biome.Plains:
		return 1.0
	case biome.Beach:
		return 0.9
	case biome.Forest:
		return 0.7
	case biome.Desert:
		return 0.6
	case biome.Plateau:
		return 0.4
	}
	return 0.3
}

// baseScore returns the culture independent part of the site suitability.
func (m *siteScorer) baseScore(x, y int) float64 {
	i := m.bm.Index(x, y)
	if m.known[i] {
		return m.base[i]
	}
	b := m.bm.Biomes[i]
	s := 0.25*flatLandScore(b) +
		0.20*m.resourceScore(x, y) +
		0.10*m.waterScore(x, y) +
		0.05*m.defenseScore(x, y)
	m.base[i] = s
	m.known[i] = true
	return s
}

// suitability returns the site suitability of (x, y) for the culture.
// Water cells and cells outside the map are never suitable.
func (m *siteScorer) suitability(x, y int, c *Culture) float64 {
	if !m.bm.InBounds(x, y) {
		return 0
	}
	i := m.bm.Index(x, y)
	b := m.bm.Biomes[i]
	if b.IsWater() {
		return 0
	}
	return 0.40*c.Suitability(b, m.bm.Temperature[i], m.bm.Continentalness[i]) + m.baseScore(x, y)
}

// SiteScorer evaluates the settlement suitability of many sites on the
// same map. Building one costs O(width*height); every query after that is
// O(1) amortized. A SiteScorer is not safe for concurrent use.
type SiteScorer struct {
	sc *siteScorer
}

// NewSiteScorer prepares the window tables of the map.
func NewSiteScorer(bm *geo.BiomeMap) *SiteScorer {
	return &SiteScorer{sc: newSiteScorer(bm)}
}

// Suitability returns the settlement suitability (0-1) of the cell for
// the given culture.
func (m *SiteScorer) Suitability(x, y int, c *Culture) float64 {
	return m.sc.suitability(x, y, c)
}

// SiteSuitability returns the settlement suitability (0-1) of the cell
// for the given culture. It builds a SiteScorer for the single query, so
// it costs O(width*height); use NewSiteScorer to score many sites.
func SiteSuitability(bm *geo.BiomeMap, x, y int, c *Culture) float64 {
	return NewSiteScorer(bm).Suitability(x, y, c)
}

// findLocalMaxima samples the map every 'step' cells and returns the land
// cells above the threshold whose suitability for their best fitting
// culture is not exceeded by any cell within 'step'.
func (m *siteScorer) findLocalMaxima(cultures []*Culture, step int) []SettlementCandidate {
	var res []SettlementCandidate
	for y := 0; y < m.bm.Height; y += step {
		for x := 0; x < m.bm.Width; x += step {
			i := m.bm.Index(x, y)
			b := m.bm.Biomes[i]
			if b.IsWater() {
				continue
			}
			temp, cont := m.bm.Temperature[i], m.bm.Continentalness[i]
			c, _ := BestCulture(cultures, b, temp, cont)
			s := m.suitability(x, y, c)
			if s <= settlementThreshold || !m.isLocalMaximum(x, y, c, s, step) {
				continue
			}
			res = append(res, SettlementCandidate{
				X:               x,
				Y:               y,
				Suitability:     s,
				Culture:         c,
				Biome:           b,
				Temperature:     temp,
				Continentalness: cont,
			})
		}
	}
	return res
}

func (m *siteScorer) isLocalMaximum(x, y int, c *Culture, s float64, r int) bool {
	x0, y0, x1, y1 := m.window(x, y, r)
	for ny := y0; ny <= y1; ny++ {
		for nx := x0; nx <= x1; nx++ {
			if nx == x && ny == y {
				continue
			}
			if m.suitability(nx, ny, c) > s {
				return false
			}
		}
	}
	return true
}

// newNameRand returns the deterministic generator used for names.
func newNameRand(seed int64) *rand.Rand {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], uint64(seed))
	return rand.New(rand.NewChaCha8(s))
}

// settlementName combines a culture prefix, a biome root and a tier suffix.
func settlementName(rng *rand.Rand, ct CultureType, b biome.Biome, tier CityTier) string {
	var prefixes []string
	switch ct {
	case CultureTypeTwilightDweller:
		prefixes = []string{"New ", "Old ", "Great ", ""}
	case CultureTypeFrostKin:
		prefixes = []string{"North", "Ice", "Frost", "Winter"}
	case CultureTypeSunForged:
		prefixes = []string{"Sun", "Gold", "Bright", "Fire"}
	case CultureTypeTideWalker:
		prefixes = []string{"Port ", "Sea", "Harbor ", ""}
	default:
		prefixes = []string{"High", "Stone", "Iron", "Mount "}
	}

	var roots []string
	switch b {
	case biome.Plains:
		roots = []string{"field", "dale", "meadow", "green"}
	case biome.Forest:
		roots = []string{"wood", "grove", "glen", "shade"}
	case biome.Mountain:
		roots = []string{"peak", "crag", "tor", "hold"}
	case biome.Beach:
		roots = []string{"haven", "cove", "bay", "shore"}
	case biome.Desert:
		roots = []string{"oasis", "dune", "sand", "mirage"}
	case biome.Snow:
		roots = []string{"frost", "ice", "white", "cold"}
	default:
		roots = []string{"town", "stead", "burg", "haven"}
	}

	var suffixes []string
	switch tier {
	case CityTierCapital:
		suffixes = []string{" City", " Capital", "", " Prime"}
	case CityTierTown:
		suffixes = []string{"ton", "ville", "burg", ""}
	default:
		suffixes = []string{"", " Village", " Hamlet", ""}
	}

	prefix := prefixes[rng.IntN(len(prefixes))]
	root := roots[rng.IntN(len(roots))]
	suffix := suffixes[rng.IntN(len(suffixes))]
	name := prefix + root + suffix
	return strings.ToUpper(name[:1]) + name[1:]
}
