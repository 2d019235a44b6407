package main

import (
	"log"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/flatkd/kdtree/kdtree"
	"github.com/flatkd/kdtree/metrics"
	"github.com/flatkd/kdtree/snapshot"
)

// InsertRequest is a request to add a point to the tree, sent to the
// inserter goroutine over a channel so every mutation of the tree happens
// on a single goroutine.
type InsertRequest struct {
	Point Point
	Resp  chan<- InsertResponse
}

type InsertResponse struct {
	Size int
	Err  error
}

// EraseRequest is a request to remove a point from the tree, sent to the
// inserter goroutine over a separate channel so an erase is serialized
// against inserts the same way two inserts are serialized against each
// other.
type EraseRequest struct {
	Point Point
	Resp  chan<- EraseResponse
}

type EraseResponse struct {
	Erased bool
	Size   int
}

// inserter is a goroutine that receives insertion and erase requests and
// applies them to the only mutable copy of the tree, publishing a fresh
// read-only copy to current after every mutation. Handlers never touch the
// mutable tree directly, so a Find or Min/Max query never observes a tree
// mid-rotation. Selecting between insertCh and eraseCh in one loop keeps
// every mutation on this single goroutine regardless of which kind it is.
func inserter(tree *kdtree.Tree[Point], current *atomic.Pointer[kdtree.Tree[Point]], mgr *snapshot.Manager[Point], snapshotName string, insertCh <-chan InsertRequest, eraseCh <-chan EraseRequest) {
	publish := func() {
		current.Store(tree.Copy())
		metrics.TreeSize.Set(float64(tree.Size()))
		metrics.TreeCapacity.Set(float64(tree.Capacity()))
		if mgr != nil {
			if _, err := mgr.Save(snapshotName, tree); err != nil {
				log.Printf("failed to persist snapshot: %v", err)
			}
		}
	}

	for {
		select {
		case req, ok := <-insertCh:
			if !ok {
				insertCh = nil
				break
			}
			start := time.Now()
			tree.Insert(req.Point)
			publish()

			metrics.InsertOps.WithLabelValues("true").Inc()
			metrics.InsertDur.Observe(float64(time.Since(start).Microseconds()))

			select {
			case req.Resp <- InsertResponse{Size: tree.Size()}:
			default:
			}

		case req, ok := <-eraseCh:
			if !ok {
				eraseCh = nil
				break
			}
			erased := tree.Erase(req.Point)
			if erased {
				publish()
			}
			metrics.EraseOps.WithLabelValues(strconv.FormatBool(erased)).Inc()

			select {
			case req.Resp <- EraseResponse{Erased: erased, Size: tree.Size()}:
			default:
			}
		}

		if insertCh == nil && eraseCh == nil {
			return
		}
	}
}

// TODO: Restart goroutine in case of panic.
