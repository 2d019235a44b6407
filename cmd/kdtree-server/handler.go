package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/gorilla/mux"

	"github.com/flatkd/kdtree/kdtree"
	"github.com/flatkd/kdtree/metrics"
)

type Handler struct {
	config *Config

	current  *atomic.Pointer[kdtree.Tree[Point]]
	insertCh chan<- InsertRequest
	eraseCh  chan<- EraseRequest
}

// Home reports the current tree's size and capacity as JSON.
func (h *Handler) Home(rw http.ResponseWriter, req *http.Request) {
	tr := h.current.Load()
	rw.Header().Set("Content-Type", "application/json")
	json.NewEncoder(rw).Encode(map[string]int{
		"size":     tr.Size(),
		"capacity": tr.Capacity(),
	})
}

type InsertBody struct {
	Point Point `json:"point"`
}

type InsertResult struct {
	Size int `json:"size"`
}

// Insert adds a point to the tree by handing it to the inserter goroutine
// and waiting for confirmation that it landed.
func (h *Handler) Insert(rw http.ResponseWriter, req *http.Request) {
	var body InsertBody
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(rw, http.StatusBadRequest, err)
		return
	}
	if len(body.Point) != h.config.Dims {
		writeError(rw, http.StatusBadRequest, errWrongDims(h.config.Dims, len(body.Point)))
		return
	}

	resp := make(chan InsertResponse, 1)
	h.insertCh <- InsertRequest{Point: body.Point, Resp: resp}
	res := <-resp
	if res.Err != nil {
		metrics.InsertOps.WithLabelValues("false").Inc()
		writeError(rw, http.StatusInternalServerError, res.Err)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	json.NewEncoder(rw).Encode(InsertResult{Size: res.Size})
}

type FindResult struct {
	Found bool `json:"found"`
}

// Find reports whether a point equal to the one given, on every axis, is
// currently live in the tree.
func (h *Handler) Find(rw http.ResponseWriter, req *http.Request) {
	point, err := parsePointQuery(req, h.config.Dims)
	if err != nil {
		writeError(rw, http.StatusBadRequest, err)
		return
	}

	it := h.current.Load().Find(point)
	found := it.IsValid()
	metrics.FindOps.WithLabelValues(resultLabel(found)).Inc()

	rw.Header().Set("Content-Type", "application/json")
	json.NewEncoder(rw).Encode(FindResult{Found: found})
}

type EraseResult struct {
	Erased bool `json:"erased"`
	Size   int  `json:"size"`
}

// Erase removes a point equal to the one given, on every axis, from the
// tree by handing it to the inserter goroutine, the same way Insert does.
func (h *Handler) Erase(rw http.ResponseWriter, req *http.Request) {
	point, err := parsePointQuery(req, h.config.Dims)
	if err != nil {
		writeError(rw, http.StatusBadRequest, err)
		return
	}

	resp := make(chan EraseResponse, 1)
	h.eraseCh <- EraseRequest{Point: point, Resp: resp}
	res := <-resp

	rw.Header().Set("Content-Type", "application/json")
	json.NewEncoder(rw).Encode(EraseResult{Erased: res.Erased, Size: res.Size})
}

type ExtremumResult struct {
	Point Point `json:"point"`
}

// Min returns the point with the smallest value on the given axis.
func (h *Handler) Min(rw http.ResponseWriter, req *http.Request) {
	h.extremum(rw, req, true)
}

// Max returns the point with the largest value on the given axis.
func (h *Handler) Max(rw http.ResponseWriter, req *http.Request) {
	h.extremum(rw, req, false)
}

func (h *Handler) extremum(rw http.ResponseWriter, req *http.Request, wantMin bool) {
	axis, err := strconv.Atoi(mux.Vars(req)["axis"])
	if err != nil || axis < 0 || axis >= h.config.Dims {
		writeError(rw, http.StatusBadRequest, errBadAxis(axis, h.config.Dims))
		return
	}

	tr := h.current.Load()
	if tr.Empty() {
		writeError(rw, http.StatusNotFound, errEmptyTree)
		return
	}

	var v Point
	if wantMin {
		v = kdtree.Min(tr, axis)
	} else {
		v = kdtree.Max(tr, axis)
	}

	rw.Header().Set("Content-Type", "application/json")
	json.NewEncoder(rw).Encode(ExtremumResult{Point: v})
}

func writeError(rw http.ResponseWriter, status int, err error) {
	rw.WriteHeader(status)
	if encErr := json.NewEncoder(rw).Encode(map[string]string{"error": err.Error()}); encErr != nil {
		log.Println(encErr)
	}
}

func resultLabel(ok bool) string {
	if ok {
		return "hit"
	}
	return "miss"
}
