package main

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	randlebrot "github.com/rjh-mopjones/randlebrot"
)

func newTestRouter(t *testing.T) (*server, *mux.Router) {
	t.Helper()
	cfg := randlebrot.NewConfig()
	cfg.Verbose = false
	cfg.Width = 64
	cfg.Height = 32
	cfg.MaxSettlements = 4
	cfg.GenerateRoads = false
	m, err := randlebrot.NewMapFromConfig(7, cfg)
	if err != nil {
		t.Fatal(err)
	}
	s := newServer(m)
	return s, newRouter(s)
}

func get(t *testing.T, r http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestStatusCodes(t *testing.T) {
	_, r := newTestRouter(t)
	tests := []struct {
		url  string
		want int
	}{
		{"/layers", http.StatusOK},
		{"/layer/biome", http.StatusOK},
		{"/layer/temperature", http.StatusOK},
		{"/layer/nonsense", http.StatusNotFound},
		{"/region/0/0/16/biome?res=32", http.StatusOK},
		{"/region/0/0/16/biome?res=32&detail=2", http.StatusOK},
		{"/region/a/0/16/biome", http.StatusBadRequest},
		{"/region/0/0/0/biome", http.StatusBadRequest},
		{"/region/0/0/16/nonsense", http.StatusNotFound},
		{"/region/0/0/16/biome?res=0", http.StatusBadRequest},
		{"/region/0/0/16/biome?res=4096", http.StatusBadRequest},
		{"/region/0/0/16/biome?detail=-1", http.StatusBadRequest},
		{"/region/0/0/16/biome?res=8&detail=6", http.StatusOK},
		{"/region/0/0/16/biome?detail=7", http.StatusBadRequest},
		{"/region/0/0/16/biome?detail=1000000000", http.StatusBadRequest},
		{"/progress", http.StatusOK},
		{"/world", http.StatusOK},
		{"/city/abc", http.StatusBadRequest},
		{"/city/99999", http.StatusNotFound},
		{"/sample/3/4", http.StatusOK},
		{"/sample/x/4", http.StatusBadRequest},
	}
	for _, tt := range tests {
		if rec := get(t, r, tt.url); rec.Code != tt.want {
			t.Errorf("%s: got status %d, want %d", tt.url, rec.Code, tt.want)
		}
	}
}

func TestLayerImage(t *testing.T) {
	_, r := newTestRouter(t)
	rec := get(t, r, "/layer/biome")
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("got content type %q", ct)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("got bounds %v, want 64x32", b)
	}
}

func TestRegionProgress(t *testing.T) {
	_, r := newTestRouter(t)
	rec := get(t, r, "/region/10/10/8/temperature?res=20")
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Errorf("got bounds %v, want 20x20", b)
	}

	var p progressResponse
	if err := json.NewDecoder(get(t, r, "/progress").Body).Decode(&p); err != nil {
		t.Fatal(err)
	}
	if !p.Done || p.Overall != 1 {
		t.Errorf("got progress %+v, want done", p)
	}
	if len(p.Layers) == 0 {
		t.Error("no layers in progress")
	}
}

func TestWorldSummary(t *testing.T) {
	s, r := newTestRouter(t)
	var sum worldSummary
	if err := json.NewDecoder(get(t, r, "/world").Body).Decode(&sum); err != nil {
		t.Fatal(err)
	}
	w := s.m.World
	if sum.Seed != 7 || sum.Width != 64 || sum.Height != 32 {
		t.Errorf("got %+v", sum)
	}
	if sum.Settlements != len(w.Cities) || len(sum.Factions) != len(w.Factions) {
		t.Errorf("got %d settlements and %d factions, want %d and %d",
			sum.Settlements, len(sum.Factions), len(w.Cities), len(w.Factions))
	}
}

func TestCityDescription(t *testing.T) {
	s, r := newTestRouter(t)
	w := s.m.World
	c := randlebrot.NewCity(w.IDs.NextCityID(), "Testford", randlebrot.Point{X: 5, Y: 5}, randlebrot.CityTierVillage)
	w.Cities = append(w.Cities, c)

	rec := get(t, r, "/city/"+strconv.FormatUint(uint64(c.ID), 10))
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d", rec.Code)
	}
	if !strings.HasPrefix(rec.Body.String(), "Testford is a ") {
		t.Errorf("got %q", rec.Body.String())
	}
}

func TestSampleMatchesMap(t *testing.T) {
	s, r := newTestRouter(t)
	var out sampleResponse
	if err := json.NewDecoder(get(t, r, "/sample/3/4").Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	want, _ := s.m.ContinentalnessAt(3, 4)
	if got := out.Continentalness["macro"]; got != want {
		t.Errorf("got macro continentalness %v, want %v", got, want)
	}
	if b, _ := s.m.BiomeAt(3, 4); out.Biome != b.String() {
		t.Errorf("got biome %q, want %q", out.Biome, b)
	}
}
