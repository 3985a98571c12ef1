package geo

import (
	"sort"

	"github.com/rjh-mopjones/randlebrot/biome"
)

// MinAbundance is the smallest abundance stored in a ResourceMap.
const MinAbundance = 0.01

// ResourceDeposit is a single resource entry of a cell.
type ResourceDeposit struct {
	Type      biome.ResourceType
	Abundance float32
}

// ResourceMap is a sparse table of resource abundances keyed by cell.
// Only abundances of at least MinAbundance are stored.
type ResourceMap struct {
	Width, Height int
	cells         map[int][]ResourceDeposit
}

// NewResourceMap returns an empty resource map.
func NewResourceMap(width, height int) *ResourceMap {
	return &ResourceMap{
		Width:  width,
		Height: height,
		cells:  make(map[int][]ResourceDeposit),
	}
}

func (m *ResourceMap) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0, false
	}
	return y*m.Width + x, true
}

// Set stores the abundance of a resource at the given cell. Values below
// MinAbundance are ignored.
func (m *ResourceMap) Set(x, y int, rt biome.ResourceType, abundance float32) {
	if abundance < MinAbundance {
		return
	}
	idx, ok := m.index(x, y)
	if !ok {
		return
	}
	deposits := m.cells[idx]
	for i := range deposits {
		if deposits[i].Type == rt {
			deposits[i].Abundance = abundance
			return
		}
	}
	deposits = append(deposits, ResourceDeposit{Type: rt, Abundance: abundance})
	sort.Slice(deposits, func(i, j int) bool { return deposits[i].Type < deposits[j].Type })
	m.cells[idx] = deposits
}

// Get returns the abundance of a resource at the given cell, or 0.
func (m *ResourceMap) Get(x, y int, rt biome.ResourceType) float32 {
	idx, ok := m.index(x, y)
	if !ok {
		return 0
	}
	for _, d := range m.cells[idx] {
		if d.Type == rt {
			return d.Abundance
		}
	}
	return 0
}

// GetAll returns all deposits of the given cell ordered by type.
func (m *ResourceMap) GetAll(x, y int) []ResourceDeposit {
	idx, ok := m.index(x, y)
	if !ok {
		return nil
	}
	return append([]ResourceDeposit(nil), m.cells[idx]...)
}

// HasResources returns true if the cell has at least one deposit.
func (m *ResourceMap) HasResources(x, y int) bool {
	idx, ok := m.index(x, y)
	return ok && len(m.cells[idx]) > 0
}

// CellsWithResources returns the number of cells with deposits.
func (m *ResourceMap) CellsWithResources() int {
	return len(m.cells)
}

// LocationsWithResource returns the sorted cell indices that hold the
// given resource.
func (m *ResourceMap) LocationsWithResource(rt biome.ResourceType) []int {
	var res []int
	for idx, deposits := range m.cells {
		for _, d := range deposits {
			if d.Type == rt {
				res = append(res, idx)
				break
			}
		}
	}
	sort.Ints(res)
	return res
}

// Clear removes all deposits.
func (m *ResourceMap) Clear() {
	m.cells = make(map[int][]ResourceDeposit)
}

// Len returns the total number of deposits.
func (m *ResourceMap) Len() int {
	var n int
	for _, deposits := range m.cells {
		n += len(deposits)
	}
	return n
}
