package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"

	randlebrot "github.com/rjh-mopjones/randlebrot"
	"github.com/rjh-mopjones/randlebrot/geo"
	"github.com/rjh-mopjones/randlebrot/various"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentWrites limits the number of PNG encoders running at once.
const maxConcurrentWrites = 4

type profiler struct {
	cpu, mem string
	cpuFile  *os.File
}

func (p *profiler) start() error {
	if p.cpu == "" {
		return nil
	}
	f, err := os.Create(p.cpu)
	if err != nil {
		return fmt.Errorf("creating cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("starting cpu profile: %w", err)
	}
	p.cpuFile = f
	return nil
}

func (p *profiler) stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
	}
	if p.mem == "" {
		return nil
	}
	f, err := os.Create(p.mem)
	if err != nil {
		return fmt.Errorf("creating memory profile: %w", err)
	}
	defer f.Close()
	return pprof.WriteHeapProfile(f)
}

type generateOptions struct {
	seed           int64
	width, height  int
	maxSettlements int
	name           string
	out            string
	config         string

	// Flags explicitly set override the config file.
	widthSet, heightSet, maxSet bool
}

// runGenerate generates and saves a world, returning the file path.
func runGenerate(opts generateOptions) (string, error) {
	cfg := randlebrot.NewConfig()
	if opts.config != "" {
		var err error
		if cfg, err = randlebrot.LoadConfig(opts.config); err != nil {
			return "", err
		}
		if !cfg.Verbose {
			various.Verbose = false
		}
	}
	if opts.config == "" || opts.widthSet {
		cfg.Width = opts.width
	}
	if opts.config == "" || opts.heightSet {
		cfg.Height = opts.height
	}
	if opts.config == "" || opts.maxSet {
		cfg.MaxSettlements = opts.maxSettlements
	}

	m, err := randlebrot.NewMapFromConfig(opts.seed, cfg)
	if err != nil {
		return "", fmt.Errorf("generating world: %w", err)
	}
	m.World.Name = opts.name
	path, err := randlebrot.SaveWorld(opts.out, m.World)
	if err != nil {
		return "", fmt.Errorf("saving world: %w", err)
	}
	log.Printf("Saved %s (%d settlements, %d factions, %d roads, %d trade routes)", path,
		m.Result.SettlementsPlaced, m.Result.FactionsCreated, m.Result.RoadsBuilt, m.Result.TradeRoutesCreated)
	return path, nil
}

type layersOptions struct {
	seed          int64
	width, height int
	dir           string
	layers        []string
	territory     bool
}

// runLayers renders the requested layers and returns the written files.
func runLayers(opts layersOptions) ([]string, error) {
	layers := geo.AllLayers()
	if len(opts.layers) > 0 {
		layers = layers[:0:0]
		for _, name := range opts.layers {
			l, err := geo.ParseLayer(name)
			if err != nil {
				return nil, err
			}
			layers = append(layers, l)
		}
	}
	if err := os.MkdirAll(opts.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	cfg := randlebrot.NewConfig()
	cfg.Width, cfg.Height = opts.width, opts.height
	cfg.GenerateRoads = false
	cfg.GenerateTerritories = opts.territory
	if !opts.territory {
		cfg.MaxSettlements = 0
	}
	m, err := randlebrot.NewMapFromConfig(opts.seed, cfg)
	if err != nil {
		return nil, fmt.Errorf("generating world: %w", err)
	}

	type job struct {
		path string
		img  func() image.Image
	}
	var jobs []job
	for _, l := range layers {
		jobs = append(jobs, job{
			path: filepath.Join(opts.dir, l.String()+".png"),
			img:  func() image.Image { return m.ToImage(l) },
		})
	}
	if opts.territory {
		jobs = append(jobs, job{
			path: filepath.Join(opts.dir, "territory.png"),
			img: func() image.Image {
				return m.World.Territory.ToImage(randlebrot.FactionColors(m.World.Factions))
			},
		})
	}

	var g errgroup.Group
	g.SetLimit(maxConcurrentWrites)
	paths := make([]string, len(jobs))
	for i, j := range jobs {
		paths[i] = j.path
		g.Go(func() error {
			return writePNG(j.path, j.img())
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Printf("Wrote %d layers to %s", len(paths), opts.dir)
	return paths, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// runInfo prints the statistics of a saved world. The terrain is
// regenerated to recompute the territory.
func runInfo(w io.Writer, path string, describe bool) error {
	world, err := randlebrot.LoadWorld(path)
	if err != nil {
		return err
	}
	m := randlebrot.NewMapFromWorld(world, nil)
	s := m.Stats()

	fmt.Fprintf(w, "%s (seed %d, %dx%d)\n", world.Name, world.Seed, world.Width, world.Height)
	fmt.Fprintf(w, "Settlements: %d\n", s.Settlements)
	for _, f := range s.Factions {
		fmt.Fprintf(w, "  %s: %d settlements, %d people, %d cells\n", f.Name, f.Settlements, f.Population, f.Territory)
	}
	fmt.Fprintf(w, "Roads: %d (%.0f cells)\n", len(world.Roads), s.RoadLength)
	fmt.Fprintf(w, "Trade routes: %d (%d international)\n", s.TradeRoutes, s.International)
	fmt.Fprintf(w, "Territory: %.1f%%\n", s.TerritoryShare*100)
	if describe {
		for _, c := range world.Cities {
			fmt.Fprintf(w, "\n%s\n", m.CityDescription(c.ID))
		}
	}
	return nil
}
