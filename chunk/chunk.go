// Package chunk caches noise samples in square chunks at three detail
// tiers. The macro tier owns the meso tier, which owns the micro tier.
package chunk

import (
	"container/list"

	"github.com/rjh-mopjones/randlebrot/noise"
)

// ChunkCoord is the integer coordinate of a chunk within its tier.
type ChunkCoord struct {
	X, Y int
}

// WorldToChunk returns the chunk containing the world cell (x, y) and the
// local offset of the cell within that chunk. Offsets are always in
// [0, size), also for negative world coordinates.
func WorldToChunk(x, y, size int) (ChunkCoord, int, int) {
	cx, lx := floorDiv(x, size)
	cy, ly := floorDiv(y, size)
	return ChunkCoord{X: cx, Y: cy}, lx, ly
}

func floorDiv(v, size int) (int, int) {
	q := v / size
	r := v % size
	if r < 0 {
		q--
		r += size
	}
	return q, r
}

// Origin returns the world coordinate of the chunk's first cell.
func (c ChunkCoord) Origin(size int) (int, int) {
	return c.X * size, c.Y * size
}

// Chunk is a size x size block of samples of a single strategy.
type Chunk struct {
	Coord    ChunkCoord
	Size     int
	Detail   int
	Strategy string
	Data     []float64 // row-major, Size*Size

	touched uint64
}

func newChunk(coord ChunkCoord, size, detail int, s noise.Strategy) *Chunk {
	ox, oy := coord.Origin(size)
	data := make([]float64, size*size)
	for ly := 0; ly < size; ly++ {
		for lx := 0; lx < size; lx++ {
			data[ly*size+lx] = s.Generate(float64(ox+lx), float64(oy+ly), detail)
		}
	}
	return &Chunk{
		Coord:    coord,
		Size:     size,
		Detail:   detail,
		Strategy: s.Name(),
		Data:     data,
	}
}

// At returns the sample at the local offset (lx, ly).
func (c *Chunk) At(lx, ly int) float64 {
	return c.Data[ly*c.Size+lx]
}

// LastTouched returns the cache tick of the last access.
func (c *Chunk) LastTouched() uint64 {
	return c.touched
}

type key struct {
	coord    ChunkCoord
	strategy string
}

// Cache is a single LRU tier. Recency is tracked with a logical clock, so
// eviction order only depends on the access sequence.
type Cache struct {
	Capacity int
	Size     int // chunk side length in cells
	Detail   int

	entries map[key]*list.Element
	order   *list.List // front is the most recently touched
	tick    uint64
	child   *Cache
}

// NewCache returns an empty tier. A capacity below 1 is raised to 1.
func NewCache(capacity, size, detail int) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	if size < 1 {
		size = 1
	}
	return &Cache{
		Capacity: capacity,
		Size:     size,
		Detail:   detail,
		entries:  make(map[key]*list.Element),
		order:    list.New(),
	}
}

// Get returns the chunk of the strategy at coord, synthesizing it on a
// miss. If the tier is full, the least recently touched chunk is evicted
// first.
func (m *Cache) Get(coord ChunkCoord, s noise.Strategy) *Chunk {
	m.tick++
	k := key{coord, s.Name()}
	if el, ok := m.entries[k]; ok {
		m.order.MoveToFront(el)
		c := el.Value.(*Chunk)
		c.touched = m.tick
		return c
	}
	if m.order.Len() >= m.Capacity {
		m.evictOldest()
	}
	c := newChunk(coord, m.Size, m.Detail, s)
	c.touched = m.tick
	m.entries[k] = m.order.PushFront(c)
	return c
}

func (m *Cache) evictOldest() {
	el := m.order.Back()
	if el == nil {
		return
	}
	c := m.order.Remove(el).(*Chunk)
	delete(m.entries, key{c.Coord, c.Strategy})
}

// Sample returns the strategy value at the world cell containing (x, y).
func (m *Cache) Sample(x, y float64, s noise.Strategy) float64 {
	coord, lx, ly := WorldToChunk(floorInt(x), floorInt(y), m.Size)
	return m.Get(coord, s).At(lx, ly)
}

// Contains returns true if the chunk of the named strategy is cached. It
// does not count as an access.
func (m *Cache) Contains(coord ChunkCoord, strategy string) bool {
	_, ok := m.entries[key{coord, strategy}]
	return ok
}

// Len returns the number of cached chunks.
func (m *Cache) Len() int {
	return m.order.Len()
}

// Clear drops all chunks of this tier and the tiers it owns.
func (m *Cache) Clear() {
	m.entries = make(map[key]*list.Element)
	m.order.Init()
	m.tick = 0
	if m.child != nil {
		m.child.Clear()
	}
}

func floorInt(v float64) int {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return i
}
