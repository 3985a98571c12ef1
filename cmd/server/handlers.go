package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gorilla/mux"
	randlebrot "github.com/rjh-mopjones/randlebrot"
	"github.com/rjh-mopjones/randlebrot/chunk"
	"github.com/rjh-mopjones/randlebrot/geo"
)

const (
	defaultRegionResolution = 256
	maxRegionResolution     = 1024

	// Every detail level adds an octave to the noise layers.
	maxRegionDetail = chunk.DetailMicro + 4
)

// server serves previews of a generated world.
type server struct {
	m *randlebrot.Map

	// mu guards the chunk cache, which is not safe for concurrent use.
	mu sync.Mutex

	// progress reports the most recent region build.
	progress atomic.Pointer[geo.Progress]
}

func newServer(m *randlebrot.Map) *server {
	s := &server{m: m}
	s.progress.Store(geo.NewProgress(0))
	return s
}

func newRouter(s *server) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/layers", s.layersHandler).Methods(http.MethodGet)
	router.HandleFunc("/layer/{name}", s.layerHandler).Methods(http.MethodGet)
	router.HandleFunc("/region/{x}/{y}/{size}/{layer}", s.regionHandler).Methods(http.MethodGet)
	router.HandleFunc("/progress", s.progressHandler).Methods(http.MethodGet)
	router.HandleFunc("/territory", s.territoryHandler).Methods(http.MethodGet)
	router.HandleFunc("/world", s.worldHandler).Methods(http.MethodGet)
	router.HandleFunc("/city/{id}", s.cityHandler).Methods(http.MethodGet)
	router.HandleFunc("/sample/{x}/{y}", s.sampleHandler).Methods(http.MethodGet)
	return router
}

func (s *server) layersHandler(res http.ResponseWriter, req *http.Request) {
	var names []string
	for _, l := range geo.AllLayers() {
		names = append(names, l.String())
	}
	writeJSON(res, names)
}

func (s *server) layerHandler(res http.ResponseWriter, req *http.Request) {
	l, err := geo.ParseLayer(mux.Vars(req)["name"])
	if err != nil {
		http.Error(res, err.Error(), http.StatusNotFound)
		return
	}
	writeImage(res, s.m.ToImage(l))
}

// regionHandler renders a square window of the world at the resolution
// given by the 'res' parameter and the detail level given by 'detail'.
func (s *server) regionHandler(res http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	x, errX := strconv.ParseFloat(vars["x"], 64)
	y, errY := strconv.ParseFloat(vars["y"], 64)
	size, errS := strconv.ParseFloat(vars["size"], 64)
	if errX != nil || errY != nil || errS != nil || size <= 0 {
		http.Error(res, "invalid region", http.StatusBadRequest)
		return
	}
	l, err := geo.ParseLayer(vars["layer"])
	if err != nil {
		http.Error(res, err.Error(), http.StatusNotFound)
		return
	}
	resolution, err := queryInt(req, "res", defaultRegionResolution)
	if err != nil || resolution <= 0 || resolution > maxRegionResolution {
		http.Error(res, "invalid resolution", http.StatusBadRequest)
		return
	}
	detail, err := queryInt(req, "detail", chunk.DetailMeso)
	if err != nil || detail < 0 || detail > maxRegionDetail {
		http.Error(res, "invalid detail", http.StatusBadRequest)
		return
	}

	progress := geo.NewProgress(resolution * resolution)
	s.progress.Store(progress)
	w := s.m.World
	bm := geo.GenerateMesoFull(w.Seed, x, y, size, resolution, float64(w.Height), detail, progress)
	writeImage(res, bm.ToImage(l))
}

type progressResponse struct {
	Layers  map[string]float64 `json:"layers"`
	Overall float64            `json:"overall"`
	Done    bool               `json:"done"`
}

func (s *server) progressHandler(res http.ResponseWriter, req *http.Request) {
	progress := s.progress.Load()
	p := progressResponse{
		Layers:  make(map[string]float64),
		Overall: progress.Overall(),
		Done:    progress.Done(),
	}
	for _, l := range geo.ProgressLayers() {
		p.Layers[l.String()] = progress.Fraction(l)
	}
	writeJSON(res, p)
}

func (s *server) territoryHandler(res http.ResponseWriter, req *http.Request) {
	w := s.m.World
	if w.Territory == nil {
		http.Error(res, "no territory generated", http.StatusNotFound)
		return
	}
	writeImage(res, w.Territory.ToImage(randlebrot.FactionColors(w.Factions)))
}

type factionSummary struct {
	ID          uint32 `json:"id"`
	Name        string `json:"name"`
	Culture     string `json:"culture"`
	Capital     string `json:"capital,omitempty"`
	Settlements int    `json:"settlements"`
	Territory   int    `json:"territory"`
}

type worldSummary struct {
	Name        string           `json:"name"`
	Seed        int64            `json:"seed"`
	Width       int              `json:"width"`
	Height      int              `json:"height"`
	Settlements int              `json:"settlements"`
	Roads       int              `json:"roads"`
	TradeRoutes int              `json:"trade_routes"`
	Factions    []factionSummary `json:"factions"`
}

func (s *server) worldHandler(res http.ResponseWriter, req *http.Request) {
	w := s.m.World
	sum := worldSummary{
		Name:        w.Name,
		Seed:        w.Seed,
		Width:       w.Width,
		Height:      w.Height,
		Settlements: len(w.Cities),
		Roads:       len(w.Roads),
		TradeRoutes: len(w.TradeRoutes),
		Factions:    []factionSummary{},
	}
	var claimed map[uint32]int
	if w.Territory != nil {
		claimed = w.Territory.CountByFaction()
	}
	for _, f := range w.Factions {
		fs := factionSummary{
			ID:          f.ID,
			Name:        f.Name,
			Culture:     f.Culture.String(),
			Settlements: f.SettlementCount(),
			Territory:   claimed[f.ID],
		}
		if c := w.CityByID(f.CapitalID); c != nil {
			fs.Capital = c.Name
		}
		sum.Factions = append(sum.Factions, fs)
	}
	writeJSON(res, sum)
}

func (s *server) cityHandler(res http.ResponseWriter, req *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(req)["id"], 10, 32)
	if err != nil {
		http.Error(res, "invalid city id", http.StatusBadRequest)
		return
	}
	text := s.m.CityDescription(uint32(id))
	if text == "" {
		http.Error(res, "no such city", http.StatusNotFound)
		return
	}
	res.Header().Set("Content-Type", "text/plain; charset=utf-8")
	res.Write([]byte(text))
}

type sampleResponse struct {
	Continentalness map[string]float64 `json:"continentalness"`
	Biome           string             `json:"biome,omitempty"`
}

// sampleHandler returns the continentalness of a world cell at every
// detail level, served from the chunk cache.
func (s *server) sampleHandler(res http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	x, errX := strconv.ParseFloat(vars["x"], 64)
	y, errY := strconv.ParseFloat(vars["y"], 64)
	if errX != nil || errY != nil {
		http.Error(res, "invalid position", http.StatusBadRequest)
		return
	}
	out := sampleResponse{Continentalness: make(map[string]float64)}
	s.mu.Lock()
	for detail, name := range []string{"macro", "meso", "micro"} {
		out.Continentalness[name] = s.m.ContinentalnessAtDetail(x, y, detail)
	}
	s.mu.Unlock()
	if b, ok := s.m.BiomeAt(int(x), int(y)); ok {
		out.Biome = b.String()
	}
	writeJSON(res, out)
}

func queryInt(req *http.Request, key string, def int) (int, error) {
	v := req.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err := w.Write(data); err != nil {
		log.Println("unable to write response.")
	}
}

// writeImage writes the image to the response writer.
func writeImage(w http.ResponseWriter, img image.Image) {
	buffer := new(bytes.Buffer)
	if err := png.Encode(buffer, img); err != nil {
		log.Println("unable to encode image.")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(buffer.Bytes())))
	if _, err := w.Write(buffer.Bytes()); err != nil {
		log.Println("unable to write image.")
	}
}
