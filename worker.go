package sprig

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Worker is a long-running background job started alongside the game.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to Worker.
type WorkerFunc func(ctx context.Context) error

// Run implements Worker.
func (f WorkerFunc) Run(ctx context.Context) error { return f(ctx) }

// WorkerHost starts a set of workers exactly once. The first worker to fail
// cancels the context shared by the others.
type WorkerHost struct {
	mu       sync.Mutex
	launched bool
	group    *errgroup.Group
}

// Launch starts every worker on its own goroutine under ctx. Calling it a
// second time returns ErrAlreadyLaunched.
func (h *WorkerHost) Launch(ctx context.Context, workers ...Worker) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.launched {
		return ErrAlreadyLaunched
	}
	h.launched = true

	g, gctx := errgroup.WithContext(ctx)
	for _, w := range workers {
		g.Go(func() error {
			return w.Run(gctx)
		})
	}
	h.group = g
	return nil
}

// LaunchRegistry builds one worker per key in reg, in key order, and
// launches them all. A factory error aborts before any worker starts.
func (h *WorkerHost) LaunchRegistry(ctx context.Context, reg *Registry[Worker]) error {
	keys := reg.Keys()
	workers := make([]Worker, 0, len(keys))
	for _, k := range keys {
		w, err := reg.New(k)
		if err != nil {
			return fmt.Errorf("build worker %q: %w", k, err)
		}
		workers = append(workers, w)
	}
	return h.Launch(ctx, workers...)
}

// Launched reports whether Launch has run.
func (h *WorkerHost) Launched() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.launched
}

// Wait blocks until every worker returns and reports the first error. It
// returns nil immediately when nothing was launched.
func (h *WorkerHost) Wait() error {
	h.mu.Lock()
	g := h.group
	h.mu.Unlock()
	if g == nil {
		return nil
	}
	return g.Wait()
}
