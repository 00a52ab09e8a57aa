package sprig

import (
	"context"
	"time"
)

// Ticker is anything advanced once per frame by dt seconds.
type Ticker interface {
	Tick(dt float64)
}

// TickerFunc adapts a function to Ticker.
type TickerFunc func(dt float64)

// Tick implements Ticker.
func (f TickerFunc) Tick(dt float64) { f(dt) }

// Updatable does one frame's worth of work off the game loop.
type Updatable interface {
	UpdateAsync(ctx context.Context, dt float64) error
}

// UpdatableFunc adapts a function to Updatable.
type UpdatableFunc func(ctx context.Context, dt float64) error

// UpdateAsync implements Updatable.
func (f UpdatableFunc) UpdateAsync(ctx context.Context, dt float64) error { return f(ctx, dt) }

// BackgroundUpdater runs an Updatable on its own goroutine, at most one
// update at a time. Each Tick checks whether the previous update finished;
// if it did, its error is reported and the next update starts with the
// current frame's dt. A Tick never blocks. Ticks that arrive while an update
// is still running are dropped.
type BackgroundUpdater struct {
	Updatable Updatable

	// OnError receives every failed update. When nil, failures are kept in
	// Err and logged in debug mode.
	OnError func(error)

	ctx  context.Context
	done <-chan error
	err  error
}

// NewBackgroundUpdater returns an updater whose updates receive ctx.
func NewBackgroundUpdater(ctx context.Context, u Updatable) *BackgroundUpdater {
	return &BackgroundUpdater{Updatable: u, ctx: ctx}
}

// Tick implements Ticker.
func (b *BackgroundUpdater) Tick(dt float64) {
	if b.done != nil {
		ok, err := b.poll()
		if !ok {
			return
		}
		b.finish(err)
	}
	b.launch(dt)
}

// Running reports whether an update is in flight.
func (b *BackgroundUpdater) Running() bool {
	return b.done != nil
}

// Err returns the error of the most recently finished update.
func (b *BackgroundUpdater) Err() error {
	return b.err
}

func (b *BackgroundUpdater) context() context.Context {
	if b.ctx == nil {
		return context.Background()
	}
	return b.ctx
}

func (b *BackgroundUpdater) poll() (bool, error) {
	select {
	case err := <-b.done:
		return true, err
	default:
		return false, nil
	}
}

func (b *BackgroundUpdater) finish(err error) {
	b.done = nil
	b.err = err
	if err == nil {
		return
	}
	if b.OnError != nil {
		b.OnError(err)
		return
	}
	debugf("background update failed: %v", err)
}

func (b *BackgroundUpdater) launch(dt float64) {
	if b.Updatable == nil {
		return
	}
	ctx := b.context()
	if ctx.Err() != nil {
		return
	}
	ch := make(chan error, 1)
	b.done = ch
	u := b.Updatable
	go func() {
		ch <- u.UpdateAsync(ctx, dt)
	}()
}

// BlockingUpdater is a BackgroundUpdater that stops letting the game loop
// run ahead. Once an update has been late for more than
// DelayFramesBeforeBlock ticks, Tick waits for it to finish.
type BlockingUpdater struct {
	BackgroundUpdater

	DelayFramesBeforeBlock int

	// OnDelayed is called repeatedly while Tick is blocked, with the number
	// of prior calls during this wait and the time spent waiting. Returning
	// false gives up for this tick; the update keeps running and is checked
	// again next tick.
	OnDelayed func(timesWaited int, waited time.Duration) bool

	framesDelayed int
}

// NewBlockingUpdater returns a BlockingUpdater that blocks after
// delayFrames late ticks.
func NewBlockingUpdater(ctx context.Context, u Updatable, delayFrames int) *BlockingUpdater {
	return &BlockingUpdater{
		BackgroundUpdater:      BackgroundUpdater{Updatable: u, ctx: ctx},
		DelayFramesBeforeBlock: delayFrames,
	}
}

// FramesDelayed returns how many consecutive ticks the current update has
// been late.
func (b *BlockingUpdater) FramesDelayed() int {
	return b.framesDelayed
}

// Tick implements Ticker.
func (b *BlockingUpdater) Tick(dt float64) {
	if b.done != nil {
		ok, err := b.poll()
		if !ok {
			b.framesDelayed++
			if b.framesDelayed <= b.DelayFramesBeforeBlock {
				return
			}
			if ok, err = b.block(); !ok {
				return
			}
		}
		b.framesDelayed = 0
		b.finish(err)
	}
	b.launch(dt)
}

func (b *BlockingUpdater) block() (bool, error) {
	ctx := b.context()
	start := time.Now()
	for times := 0; ; times++ {
		if ok, err := b.poll(); ok {
			return true, err
		}
		if b.OnDelayed != nil && !b.OnDelayed(times, time.Since(start)) {
			return false, nil
		}
		select {
		case err := <-b.done:
			return true, err
		case <-ctx.Done():
			return false, nil
		case <-time.After(time.Millisecond):
		}
	}
}
