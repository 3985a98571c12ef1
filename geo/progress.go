package geo

import "sync/atomic"

// LayerID identifies a layer category for progress reporting.
type LayerID int

// The different layer categories.
const (
	LayerProgressContinentalness LayerID = iota
	LayerProgressTemperature
	LayerProgressTectonic
	LayerProgressPeaksValleys
	LayerProgressErosion
	LayerProgressHumidity
	LayerProgressResources
	numProgressLayers
)

func (l LayerID) String() string {
	switch l {
	case LayerProgressContinentalness:
		return "Continentalness"
	case LayerProgressTemperature:
		return "Temperature"
	case LayerProgressTectonic:
		return "Tectonic"
	case LayerProgressPeaksValleys:
		return "PeaksValleys"
	case LayerProgressErosion:
		return "Erosion"
	case LayerProgressHumidity:
		return "Humidity"
	case LayerProgressResources:
		return "Resources"
	}
	return "Unknown"
}

// ProgressLayers returns all layer categories.
func ProgressLayers() []LayerID {
	res := make([]LayerID, 0, numProgressLayers)
	for l := LayerID(0); l < numProgressLayers; l++ {
		res = append(res, l)
	}
	return res
}

// Progress tracks per-layer completion of a long running generation.
// All methods are safe for concurrent use; a poller may read while
// workers add.
type Progress struct {
	done  [numProgressLayers]atomic.Uint64
	total uint64
}

// NewProgress returns a tracker where each layer is complete after
// 'total' items.
func NewProgress(total int) *Progress {
	if total < 0 {
		total = 0
	}
	return &Progress{total: uint64(total)}
}

// Add marks n more items of the layer as done.
func (p *Progress) Add(layer LayerID, n int) {
	if p == nil || layer < 0 || layer >= numProgressLayers || n <= 0 {
		return
	}
	p.done[layer].Add(uint64(n))
}

// Get returns the number of completed items of the layer.
func (p *Progress) Get(layer LayerID) uint64 {
	if layer < 0 || layer >= numProgressLayers {
		return 0
	}
	return p.done[layer].Load()
}

// Fraction returns the completion of the layer in [0, 1].
func (p *Progress) Fraction(layer LayerID) float64 {
	if p.total == 0 {
		return 0
	}
	f := float64(p.Get(layer)) / float64(p.total)
	if f > 1 {
		return 1
	}
	return f
}

// Overall returns the mean completion of all layers.
func (p *Progress) Overall() float64 {
	var sum float64
	for _, l := range ProgressLayers() {
		sum += p.Fraction(l)
	}
	return sum / float64(numProgressLayers)
}

// Done returns true if every layer is complete.
func (p *Progress) Done() bool {
	if p.total == 0 {
		return false
	}
	for _, l := range ProgressLayers() {
		if p.Get(l) < p.total {
			return false
		}
	}
	return true
}

// Total returns the number of items per layer.
func (p *Progress) Total() uint64 {
	return p.total
}

// Reset zeroes all counters. Only call this before a run starts.
func (p *Progress) Reset() {
	if p == nil {
		return
	}
	for i := range p.done {
		p.done[i].Store(0)
	}
}
