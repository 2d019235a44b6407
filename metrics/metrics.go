// Package metrics exposes a Prometheus registry for a kdtree server: counts
// and latencies for the operations exposed over the API, plus a gauge for
// the tree's live size so capacity growth is visible from the outside.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BuildInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "build_info",
			Help: "A metric with a constant '1' value labeled by version and goversion.",
		},
		[]string{"version", "goversion"},
	)
	InsertOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insert_operations",
			Help: "Incremented for each insert operation, labeled by success or failure.",
		},
		[]string{"success"},
	)
	InsertDur = prometheus.NewSummary(
		prometheus.SummaryOpts{
			Name: "insert_duration_microseconds",
			Help: "Summary of how long an insert operation takes to complete.",
		},
	)
	FindOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "find_operations",
			Help: "Incremented for each find operation, labeled by hit or miss.",
		},
		[]string{"result"},
	)
	EraseOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "erase_operations",
			Help: "Incremented for each erase operation, labeled by success or failure.",
		},
		[]string{"success"},
	)
	TreeSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tree_size",
			Help: "Number of live values currently held in the tree.",
		},
	)
	TreeCapacity = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tree_capacity",
			Help: "Size of the tree's backing array.",
		},
	)
	Requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "requests",
			Help: "Incremented for each API request received.",
		},
		[]string{"path", "status"},
	)
)

// Register adds every collector declared in this package to the default
// Prometheus registry. It panics on a duplicate registration, same as
// prometheus.MustRegister, since that can only happen from a programming
// error.
func Register(version, goVersion string) {
	BuildInfo.WithLabelValues(version, goVersion).Set(1)
	prometheus.MustRegister(BuildInfo)
	prometheus.MustRegister(InsertOps)
	prometheus.MustRegister(InsertDur)
	prometheus.MustRegister(FindOps)
	prometheus.MustRegister(EraseOps)
	prometheus.MustRegister(TreeSize)
	prometheus.MustRegister(TreeCapacity)
	prometheus.MustRegister(Requests)
}

// Serve starts a standalone metrics server at addr, exposing /metrics for
// Prometheus scraping. It blocks and only returns on error.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(rw http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/" {
			fmt.Fprintln(rw, "Hi, I'm a kdtree metrics and debugging server!")
		} else {
			rw.WriteHeader(http.StatusNotFound)
			fmt.Fprintln(rw, "404 not found")
		}
	})
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	return srv.ListenAndServe()
}
