package main

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/flatkd/kdtree/metrics"
)

// statusRecorder wraps a ResponseWriter to capture the status code a
// handler ultimately wrote, since http.ResponseWriter doesn't expose it
// after the fact.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestCounterMiddleware increments metrics.Requests for every request
// that reaches the router, labeled by route template and status code. It
// uses the route's template rather than the raw path so a point with
// arbitrary coordinates in /v1/find's query string doesn't blow up label
// cardinality.
func requestCounterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rec := &statusRecorder{ResponseWriter: rw, status: http.StatusOK}
		next.ServeHTTP(rec, req)

		path := req.URL.Path
		if route := mux.CurrentRoute(req); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				path = tmpl
			}
		}
		metrics.Requests.WithLabelValues(path, strconv.Itoa(rec.status)).Inc()
	})
}
