package main

import (
	"flag"
	"log"
	"net/http"
	"strconv"

	randlebrot "github.com/rjh-mopjones/randlebrot"
	"github.com/rjh-mopjones/randlebrot/various"
)

var (
	seed   int64 = 12345
	width  int   = 1024
	height int   = 512
	port   int   = 3333
	config string
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the world seed")
	flag.IntVar(&width, "width", width, "map width in cells")
	flag.IntVar(&height, "height", height, "map height in cells")
	flag.IntVar(&port, "port", port, "HTTP server port")
	flag.StringVar(&config, "config", "", "YAML config file")
}

func main() {
	flag.Parse()

	// Initialize the config.
	cfg := randlebrot.NewConfig()
	if config != "" {
		var err error
		if cfg, err = randlebrot.LoadConfig(config); err != nil {
			log.Fatal(err)
		}
	}
	cfg.Width = width
	cfg.Height = height
	various.Verbose = cfg.Verbose

	// Initialize the world.
	m, err := randlebrot.NewMapFromConfig(seed, cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Start the server.
	addr := ":" + strconv.Itoa(port)
	log.Printf("Serving world %d on %s", seed, addr)
	log.Fatal(http.ListenAndServe(addr, newRouter(newServer(m))))
}
