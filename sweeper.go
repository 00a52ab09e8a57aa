package sprig

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultSweepInterval is how much frame time a TaskSweeper accumulates
// between sweeps.
const DefaultSweepInterval = 500 * time.Millisecond

// TaskSweeper runs fire-and-forget tasks and collects their results from the
// game loop. Tasks start immediately on Go; Tick removes finished ones once
// more than SweepInterval of frame time has accumulated, gathering their
// errors for Err.
//
// Once the sweeper's context is cancelled it is disabled: Go rejects new
// tasks, and already running tasks see the cancellation through their ctx.
type TaskSweeper struct {
	ctx   context.Context
	timer ValueTimer

	mu       sync.Mutex
	tasks    []*sweptTask
	errs     []error
	disabled bool
}

type sweptTask struct {
	done chan struct{}
	err  error
}

func (t *sweptTask) finished() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// NewTaskSweeper returns a sweeper whose tasks receive ctx. A zero
// interval uses DefaultSweepInterval.
func NewTaskSweeper(ctx context.Context, interval time.Duration) *TaskSweeper {
	if ctx == nil {
		ctx = context.Background()
	}
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &TaskSweeper{ctx: ctx, timer: NewValueTimerDuration(interval)}
}

// Go starts fn on a new goroutine. It returns false, without running fn,
// once the sweeper is disabled.
func (s *TaskSweeper) Go(fn func(ctx context.Context) error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disabled || s.ctx.Err() != nil {
		s.disabled = true
		return false
	}
	t := &sweptTask{done: make(chan struct{})}
	s.tasks = append(s.tasks, t)
	go func() {
		defer close(t.done)
		t.err = fn(s.ctx)
	}()
	return true
}

// Tick implements Ticker.
func (s *TaskSweeper) Tick(dt float64) {
	if s.ctx.Err() != nil {
		s.mu.Lock()
		s.disabled = true
		s.mu.Unlock()
	}

	s.timer.Add(dt)
	if !s.timer.IsElapsed() {
		return
	}
	s.timer.Reset()
	s.Sweep()
}

// Sweep removes finished tasks immediately and returns how many were removed.
func (s *TaskSweeper) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if !t.finished() {
			kept = append(kept, t)
			continue
		}
		removed++
		if t.err != nil {
			s.errs = append(s.errs, t.err)
			debugf("swept task failed: %v", t.err)
		}
	}
	clear(s.tasks[len(kept):])
	s.tasks = kept
	return removed
}

// Pending returns the number of tasks not yet swept, finished or not.
func (s *TaskSweeper) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Disabled reports whether the sweeper rejects new tasks.
func (s *TaskSweeper) Disabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disabled
}

// Err returns the errors of every swept task since the last call, joined
// with errors.Join, and clears them.
func (s *TaskSweeper) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := errors.Join(s.errs...)
	s.errs = nil
	return err
}
