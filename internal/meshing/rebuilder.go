package meshing

import (
	"context"
	"sync"

	"mini-voxel/internal/world"
)

// Result is a finished mesh for a given grid revision. The buffer is owned by
// the receiver and never touched again by the Rebuilder.
type Result struct {
	Revision uint64
	Vertices VertexBuffer
}

// Rebuilder meshes grid snapshots on a background goroutine.
// Only the most recent pending snapshot is kept; older ones are dropped.
type Rebuilder struct {
	jobs    chan *world.Grid
	results chan Result
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewRebuilder starts the worker goroutine.
func NewRebuilder() *Rebuilder {
	ctx, cancel := context.WithCancel(context.Background())
	r := &Rebuilder{
		jobs:    make(chan *world.Grid, 1),
		results: make(chan Result, 1),
		ctx:     ctx,
		cancel:  cancel,
	}
	r.wg.Add(1)
	go r.worker()
	return r
}

// Submit queues a snapshot for meshing. The caller must not mutate snap
// afterwards; pass grid.Clone(). Returns false after Close.
func (r *Rebuilder) Submit(snap *world.Grid) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false
	}
	for {
		select {
		case r.jobs <- snap:
			return true
		default:
		}
		// replace the stale pending snapshot
		select {
		case <-r.jobs:
		default:
		}
	}
}

// Results delivers finished meshes in submission order.
func (r *Rebuilder) Results() <-chan Result {
	return r.results
}

// Latest drains the result channel without blocking and returns the newest result.
func (r *Rebuilder) Latest() (Result, bool) {
	var (
		res Result
		ok  bool
	)
	for {
		select {
		case next := <-r.results:
			res, ok = next, true
		default:
			return res, ok
		}
	}
}

func (r *Rebuilder) worker() {
	defer r.wg.Done()

	for {
		select {
		case snap := <-r.jobs:
			result := Result{
				Revision: snap.Revision(),
				Vertices: BuildMesh(snap),
			}
			select {
			case r.results <- result:
			case <-r.ctx.Done():
				return
			}
		case <-r.ctx.Done():
			return
		}
	}
}

// Close stops the worker and waits for it to exit.
func (r *Rebuilder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	r.cancel()
	r.wg.Wait()
}
