// Command kdtree-server is a small HTTP demo of the flat-array k-d tree:
// insert points, find one by exact coordinates, and query the per-axis
// extrema.
package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"

	"github.com/flatkd/kdtree/kdtree"
	"github.com/flatkd/kdtree/metrics"
	"github.com/flatkd/kdtree/snapshot"
	"github.com/flatkd/kdtree/snapshot/memory"
)

var (
	configFile = flag.String("config", "", "Location of config file.")

	// Set via -ldflags at build time; left at these defaults otherwise.
	Version   = "dev"
	GoVersion = "unknown"
)

func openStore(config *Config) (snapshot.Store, error) {
	if config.DatabaseFile == "" {
		return memory.NewStore(), nil
	}
	return snapshot.OpenLevelDBStore(config.DatabaseFile)
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.LUTC)
	flag.Parse()

	if *configFile == "" {
		log.Fatalf("No config file provided, see --help.")
	}
	config, err := ReadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}

	store, err := openStore(config)
	if err != nil {
		log.Fatalf("Failed to open snapshot store: %v", err)
	}
	idx := PointIndex{K: config.Dims}
	mgr := snapshot.NewManager[Point](store, idx, PointCodec{K: config.Dims})

	var tree *kdtree.Tree[Point]
	if _, restored, err := mgr.Load(config.SnapshotName); err == nil {
		tree = restored
		log.Printf("Restored %d points from snapshot %q.", tree.Size(), config.SnapshotName)
	} else if errors.Is(err, snapshot.ErrNotFound) {
		tree = kdtree.New[Point](0, idx)
	} else {
		log.Fatalf("Failed to load snapshot: %v", err)
	}

	current := new(atomic.Pointer[kdtree.Tree[Point]])
	current.Store(tree.Copy())

	insertCh := make(chan InsertRequest)
	eraseCh := make(chan EraseRequest)
	go inserter(tree, current, mgr, config.SnapshotName, insertCh, eraseCh)

	metrics.Register(Version, GoVersion)
	if config.MetricsAddr != "" {
		go func() {
			log.Fatal(metrics.Serve(config.MetricsAddr))
		}()
	}

	h := &Handler{config: config, current: current, insertCh: insertCh, eraseCh: eraseCh}
	r := mux.NewRouter()
	r.Use(requestCounterMiddleware)
	r.HandleFunc("/", h.Home)
	r.HandleFunc("/v1/insert", h.Insert).Methods("POST")
	r.HandleFunc("/v1/find", h.Find).Methods("GET")
	r.HandleFunc("/v1/erase", h.Erase).Methods("DELETE")
	r.HandleFunc("/v1/min/{axis:[0-9]+}", h.Min).Methods("GET")
	r.HandleFunc("/v1/max/{axis:[0-9]+}", h.Max).Methods("GET")

	srv := &http.Server{
		Addr:    config.ServerAddr,
		Handler: r,

		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	log.Println("Starting API server.")
	log.Fatal(srv.ListenAndServe())
}
