package sprig

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestTaskSweeperSweepsOnInterval(t *testing.T) {
	s := NewTaskSweeper(context.Background(), time.Second)

	var wg sync.WaitGroup
	wg.Add(2)
	boom := errors.New("boom")
	s.Go(func(context.Context) error { defer wg.Done(); return nil })
	s.Go(func(context.Context) error { defer wg.Done(); return boom })
	wg.Wait()
	// wg.Done runs before the task's result is published.
	waitFinished(t, s)

	// 4 x 0.25s is exactly the interval, which is not past it.
	for range 4 {
		s.Tick(0.25)
	}
	if s.Pending() != 2 {
		t.Fatalf("Pending = %d before the interval passed, want 2", s.Pending())
	}

	s.Tick(0.25)
	if s.Pending() != 0 {
		t.Errorf("Pending = %d after sweep, want 0", s.Pending())
	}
	if err := s.Err(); !errors.Is(err, boom) {
		t.Errorf("Err = %v, want boom", err)
	}
	if err := s.Err(); err != nil {
		t.Errorf("second Err = %v, want nil", err)
	}
}

func TestTaskSweeperKeepsRunningTasks(t *testing.T) {
	s := NewTaskSweeper(context.Background(), 0)
	release := make(chan struct{})
	s.Go(func(context.Context) error { <-release; return nil })

	if n := s.Sweep(); n != 0 {
		t.Errorf("swept %d running tasks", n)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", s.Pending())
	}

	close(release)
	waitFinished(t, s)
	if n := s.Sweep(); n != 1 {
		t.Errorf("swept %d, want 1", n)
	}
}

func TestTaskSweeperDisabledOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewTaskSweeper(ctx, 0)

	seen := make(chan error, 1)
	if !s.Go(func(ctx context.Context) error {
		<-ctx.Done()
		seen <- ctx.Err()
		return nil
	}) {
		t.Fatal("Go rejected a task before cancel")
	}

	cancel()
	s.Tick(0.1)
	if !s.Disabled() {
		t.Error("sweeper not disabled after cancel")
	}
	if s.Go(func(context.Context) error { return nil }) {
		t.Error("Go accepted a task after cancel")
	}
	select {
	case err := <-seen:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("task saw %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("running task never saw the cancellation")
	}
}

func TestNewTaskSweeperDefaults(t *testing.T) {
	s := NewTaskSweeper(nil, 0)
	if s.timer.TargetDuration() != DefaultSweepInterval {
		t.Errorf("interval = %v, want %v", s.timer.TargetDuration(), DefaultSweepInterval)
	}
	if s.Disabled() {
		t.Error("new sweeper is disabled")
	}
}

// waitFinished waits until every pending task has closed its done channel.
func waitFinished(t *testing.T, s *TaskSweeper) {
	t.Helper()
	s.mu.Lock()
	tasks := append([]*sweptTask(nil), s.tasks...)
	s.mu.Unlock()
	for _, task := range tasks {
		select {
		case <-task.done:
		case <-time.After(time.Second):
			t.Fatal("task did not finish")
		}
	}
}
