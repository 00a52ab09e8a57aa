package sprig

import (
	"math/rand/v2"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// TickerID identifies a ticker added to a Host.
type TickerID uint32

type hostTicker struct {
	id TickerID
	t  Ticker
}

// HostStats is a snapshot of the host's frame counters.
type HostStats struct {
	TPS     float64 // ebiten.ActualTPS
	FPS     float64 // ebiten.ActualFPS
	Frame   uint64
	Tickers int
}

// Host is an ebiten.Game that ticks every added Ticker once per Update with
// the fixed frame delta 1/TPS, then delegates to the wrapped game. Draw and
// Layout go straight to the wrapped game.
//
//	host := sprig.NewHost(game)
//	host.Add(sprig.NewMoverTicker(&m, bounds, sprig.ReactionBounce, 8))
//	ebiten.RunGame(host)
//
// Tickers run in the order they were added. There is no global host; the
// game owns it.
type Host struct {
	Game ebiten.Game

	// TPS returns the ticks per second used to derive dt. Nil uses
	// ebiten.TPS.
	TPS func() int

	// OnStats, if set, receives a HostStats snapshot roughly every
	// StatsInterval seconds of frame time.
	OnStats       func(HostStats)
	StatsInterval float64

	tickers    []hostTicker
	nextID     TickerID
	frame      uint64
	statsTimer ValueTimer
}

// NewHost wraps game. game may be nil for headless use, in which case Draw is
// a no-op and Layout returns the outside size.
func NewHost(game ebiten.Game, tickers ...Ticker) *Host {
	h := &Host{Game: game, StatsInterval: 0.5}
	for _, t := range tickers {
		h.Add(t)
	}
	return h
}

// Add appends t and returns an ID for Remove.
func (h *Host) Add(t Ticker) TickerID {
	h.nextID++
	h.tickers = append(h.tickers, hostTicker{id: h.nextID, t: t})
	return h.nextID
}

// Remove drops the ticker with id. It reports whether one was found.
//
// Remove is safe to call from a Tick. The ticker list is replaced rather than
// shifted, so the Update in progress still visits every ticker it started
// with exactly once; the removal takes effect from the next Update.
func (h *Host) Remove(id TickerID) bool {
	for i, ht := range h.tickers {
		if ht.id == id {
			h.tickers = slices.Concat(h.tickers[:i:i], h.tickers[i+1:])
			return true
		}
	}
	return false
}

// Len returns the number of tickers.
func (h *Host) Len() int { return len(h.tickers) }

// Frame returns the number of completed Update calls.
func (h *Host) Frame() uint64 { return h.frame }

// DeltaSeconds returns the dt passed to tickers, 1/TPS. A non-positive TPS
// yields 0.
func (h *Host) DeltaSeconds() float64 {
	tps := h.TPS
	if tps == nil {
		tps = ebiten.TPS
	}
	n := tps()
	if n <= 0 {
		return 0
	}
	return 1 / float64(n)
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	dt := h.DeltaSeconds()
	for _, ht := range h.tickers {
		ht.t.Tick(dt)
	}
	h.frame++
	h.reportStats(dt)
	if h.Game != nil {
		return h.Game.Update()
	}
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.Game != nil {
		h.Game.Draw(screen)
	}
}

// Layout implements ebiten.Game.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.Game != nil {
		return h.Game.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Stats returns the current frame counters.
func (h *Host) Stats() HostStats {
	return HostStats{
		TPS:     ebiten.ActualTPS(),
		FPS:     ebiten.ActualFPS(),
		Frame:   h.frame,
		Tickers: len(h.tickers),
	}
}

func (h *Host) reportStats(dt float64) {
	if h.OnStats == nil {
		return
	}
	h.statsTimer.Target = h.StatsInterval
	h.statsTimer.Add(dt)
	if !h.statsTimer.IsElapsed() {
		return
	}
	h.statsTimer.Reset()
	h.OnStats(h.Stats())
}

// RunConfig holds window options for Run.
type RunConfig struct {
	Title         string
	Width, Height int
}

// Run opens a window and runs the host's game loop until it exits.
func Run(h *Host, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	return ebiten.RunGame(h)
}

// MoverTicker steps a Mover within bounds at a fixed rate. With a
// non-positive rate it steps once per tick.
type MoverTicker struct {
	Mover    *Mover
	Bounds   RectI
	Reaction BoundsReaction

	// Rand is the source for ReactionResetAndChangeDirection; nil uses the
	// shared source.
	Rand *rand.Rand

	// OnStep, if set, is called after every step.
	OnStep func(m *Mover)

	timer ValueTimer
}

// NewMoverTicker returns a ticker stepping m cellsPerSecond times a second.
func NewMoverTicker(m *Mover, bounds RectI, reaction BoundsReaction, cellsPerSecond float64) *MoverTicker {
	t := &MoverTicker{Mover: m, Bounds: bounds, Reaction: reaction}
	if cellsPerSecond > 0 {
		t.timer = NewValueTimer(1 / cellsPerSecond)
	}
	return t
}

// Tick implements Ticker. Long frames take several steps at once so the
// mover keeps its rate.
func (t *MoverTicker) Tick(dt float64) {
	if t.timer.Target <= 0 {
		t.step()
		return
	}
	t.timer.Add(dt)
	for t.timer.Accumulated >= t.timer.Target {
		t.timer.Accumulated -= t.timer.Target
		t.step()
	}
}

func (t *MoverTicker) step() {
	t.Mover.MoveWithinBoundsRand(t.Bounds, t.Reaction, t.Rand)
	if t.OnStep != nil {
		t.OnStep(t.Mover)
	}
}
