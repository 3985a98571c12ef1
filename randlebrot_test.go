package randlebrot

import (
	"testing"

	"github.com/rjh-mopjones/randlebrot/chunk"
	"github.com/rjh-mopjones/randlebrot/various"
)

func TestNewMapInvalid(t *testing.T) {
	testCases := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"negative height", 10, -1},
	}
	for _, tc := range testCases {
		if _, err := NewMap(1, tc.width, tc.height); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
	cfg := NewConfig()
	cfg.CivConfig = nil
	if _, err := NewMapFromConfig(1, cfg); err == nil {
		t.Error("expected error for incomplete config")
	}
}

func TestNewMapLeavesLoggingAlone(t *testing.T) {
	various.Verbose = false
	cfg := NewConfig()
	cfg.Width, cfg.Height = 24, 12
	cfg.GenerateResources = false
	cfg.MaxSettlements = 0
	cfg.Verbose = true
	m, err := NewMapFromConfig(3, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if various.Verbose {
		t.Error("NewMapFromConfig changed the logging switch")
	}
	NewMapFromWorld(m.World, nil)
	if various.Verbose {
		t.Error("NewMapFromWorld changed the logging switch")
	}
}

func TestNewMap(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full generation in short mode")
	}
	cfg := NewConfig()
	cfg.Width, cfg.Height = 128, 64
	cfg.GenerateResources = false
	cfg.Verbose = false
	m, err := NewMapFromConfig(5, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if m.Width != 128 || m.World.Width != 128 || m.World.Seed != 5 {
		t.Errorf("unexpected size or seed")
	}
	if m.World.Territory == nil || m.Result.SettlementsPlaced != len(m.World.Cities) {
		t.Errorf("civilization not generated: %+v", m.Result)
	}

	// The chunk cache serves the same continentalness as the full map.
	for _, p := range [][2]int{{0, 0}, {37, 21}, {127, 63}} {
		want, _ := m.ContinentalnessAt(p[0], p[1])
		got := m.ContinentalnessAtDetail(float64(p[0]), float64(p[1]), chunk.DetailMacro)
		if got != want {
			t.Errorf("(%d, %d): cache %v, map %v", p[0], p[1], got, want)
		}
	}
	if m.Chunks.Stats().Macro == 0 {
		t.Errorf("no macro chunks cached")
	}

	for _, c := range m.World.Cities {
		if m.CityDescription(c.ID) == "" {
			t.Errorf("%s has no description", c.Name)
		}
	}
	if m.CityDescription(9999) != "" {
		t.Errorf("unknown city should have no description")
	}

	// Rebuilding from the world keeps the authored civilization.
	again := NewMapFromWorld(m.World, cfg)
	if len(again.World.Cities) != len(m.World.Cities) {
		t.Errorf("cities changed")
	}
	if again.World.Territory.TotalClaimedArea() != m.Result.TerritoryCells {
		t.Errorf("territory differs after regeneration")
	}
}
