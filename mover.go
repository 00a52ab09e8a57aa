package sprig

import (
	"math/rand/v2"
)

// Mover tracks an integer grid position and a compass heading, stepping one
// cell per call along that heading. It is a plain value: the owner keeps it,
// mutates it once per tick, and copies it freely.
//
// Cell deltas follow the engine convention, which mirrors the usual screen
// axes: West increases X, East decreases X, North decreases Y and South
// increases Y. Diagonals combine both deltas.
//
// A Mover is not safe for concurrent use.
type Mover struct {
	// InitialX and InitialY are the spawn cell, used as the target of the
	// Reset reactions.
	InitialX, InitialY int

	// X and Y are the current cell.
	X, Y int

	Heading CardinalDirection
}

// NewMover returns a Mover spawned at (x, y) facing heading.
func NewMover(x, y int, heading CardinalDirection) Mover {
	return Mover{InitialX: x, InitialY: y, X: x, Y: y, Heading: heading}
}

// Position returns the current cell.
func (m *Mover) Position() Point {
	return Point{m.X, m.Y}
}

// SetPosition moves the mover to p without touching its spawn cell.
func (m *Mover) SetPosition(p Point) {
	m.X, m.Y = p.X, p.Y
}

// Initial returns the spawn cell.
func (m *Mover) Initial() Point {
	return Point{m.InitialX, m.InitialY}
}

// Delta returns the per-step cell offset for the heading. It panics with
// ErrInvalidHeading for a value outside the eight headings.
func (d CardinalDirection) Delta() (dx, dy int) {
	switch d {
	case West:
		return 1, 0
	case East:
		return -1, 0
	case South:
		return 0, 1
	case North:
		return 0, -1
	case NorthWest:
		return 1, -1
	case SouthWest:
		return 1, 1
	case SouthEast:
		return -1, 1
	case NorthEast:
		return -1, -1
	}
	mustValid(d)
	return 0, 0
}

// directionFromDelta is the inverse of Delta. (0, 0) has no heading.
func directionFromDelta(dx, dy int) (CardinalDirection, bool) {
	for _, d := range CardinalDirections {
		if ddx, ddy := d.Delta(); ddx == dx && ddy == dy {
			return d, true
		}
	}
	return 0, false
}

// Move advances one cell along the heading unconditionally.
func (m *Mover) Move() {
	dx, dy := m.Heading.Delta()
	m.X += dx
	m.Y += dy
}

// MoveWithinBounds steps once and, if the step leaves [0, rect.Width) x
// [0, rect.Height), applies reaction. ReactionResetAndChangeDirection draws
// from the shared random source.
func (m *Mover) MoveWithinBounds(rect RectI, reaction BoundsReaction) {
	m.MoveWithinBoundsRand(rect, reaction, nil)
}

// MoveWithinBoundsRand is MoveWithinBounds with an explicit random source for
// ReactionResetAndChangeDirection. A nil rng uses the shared source.
//
// The final position is not guaranteed to be inside rect: a reaction's second
// step can leave it again (a one-cell-wide rect, or a Stop whose forward edge
// allows the step). In debug mode such positions are reported to stderr.
// Unknown reactions behave like ReactionStop.
func (m *Mover) MoveWithinBoundsRand(rect RectI, reaction BoundsReaction, rng *rand.Rand) {
	prev := m.Position()
	m.Move()
	if m.inBounds(rect) {
		return
	}

	horizontal, vertical := m.overflow(rect)

	switch reaction {
	case ReactionBounce:
		m.SetPosition(prev)
		m.Heading = bounced(m.Heading, horizontal, vertical)
		m.Move()
	case ReactionSlide:
		m.SetPosition(prev)
		if horizontal {
			if m.Y-rect.Top() > rect.Bottom()-m.Y {
				m.Heading = North
			} else {
				m.Heading = South
			}
		} else {
			if m.X-rect.Left() > rect.Right()-m.X {
				m.Heading = East
			} else {
				m.Heading = West
			}
		}
		m.Move()
	case ReactionReset, ReactionResetAndChangeDirection:
		m.X, m.Y = m.InitialX, m.InitialY
		if reaction == ReactionResetAndChangeDirection {
			m.RandomizeHeading(rng)
		}
		m.Move()
	default:
		if !m.forwardEdgeHolds(rect) {
			m.SetPosition(prev)
		}
	}

	debugCheckInBounds(m, rect, reaction)
}

// TryMoveWithinBounds steps once and keeps the step only if the heading's
// forward edge still holds: East needs X >= rect.Left(), West X <
// rect.Right(), North Y >= rect.Top() and South Y < rect.Bottom(). Diagonal
// headings need both of their component edges. On failure the position is
// restored and false is returned.
func (m *Mover) TryMoveWithinBounds(rect RectI) bool {
	prev := m.Position()
	m.Move()
	if m.forwardEdgeHolds(rect) {
		return true
	}
	m.SetPosition(prev)
	return false
}

// TruncatePositionWithinBounds returns the current cell clamped into
// [0, rect.Width] x [0, rect.Height]. The upper bounds are inclusive, so the
// result can sit one cell past the last one MoveWithinBounds accepts. The
// mover is not modified.
func (m *Mover) TruncatePositionWithinBounds(rect RectI) Point {
	return Point{
		X: min(max(m.X, 0), rect.Width),
		Y: min(max(m.Y, 0), rect.Height),
	}
}

// MoveWithinRect is MoveWithinBounds for a float rectangle; each component is
// truncated to an int first.
func (m *Mover) MoveWithinRect(rect Rect, reaction BoundsReaction) {
	m.MoveWithinBounds(rect.ToRectI(), reaction)
}

// TryMoveWithinRect is TryMoveWithinBounds for a float rectangle.
func (m *Mover) TryMoveWithinRect(rect Rect) bool {
	return m.TryMoveWithinBounds(rect.ToRectI())
}

// TruncatePositionWithinRect is TruncatePositionWithinBounds for a float
// rectangle.
func (m *Mover) TruncatePositionWithinRect(rect Rect) Point {
	return m.TruncatePositionWithinBounds(rect.ToRectI())
}

// RandomizeHeading picks one of the eight headings uniformly. A nil rng uses
// the shared source.
func (m *Mover) RandomizeHeading(rng *rand.Rand) {
	var n int
	if rng == nil {
		n = rand.IntN(len(CardinalDirections))
	} else {
		n = rng.IntN(len(CardinalDirections))
	}
	m.Heading = CardinalDirections[n]
}

// Reset returns the mover to its spawn cell, keeping the heading.
func (m *Mover) Reset() {
	m.X, m.Y = m.InitialX, m.InitialY
}

func (m *Mover) inBounds(rect RectI) bool {
	return m.X >= 0 && m.Y >= 0 && m.X < rect.Width && m.Y < rect.Height
}

// overflow reports which axes the last step carried out of [0, Width) x
// [0, Height). An axis the heading does not move along never counts.
func (m *Mover) overflow(rect RectI) (horizontal, vertical bool) {
	dx, dy := m.Heading.Delta()
	horizontal = dx != 0 && (m.X < 0 || m.X >= rect.Width)
	vertical = dy != 0 && (m.Y < 0 || m.Y >= rect.Height)
	return horizontal, vertical
}

// forwardEdgeHolds is the single edge test shared by Stop and
// TryMoveWithinBounds. Only the edges the heading moves towards are checked.
func (m *Mover) forwardEdgeHolds(rect RectI) bool {
	dx, dy := m.Heading.Delta()
	ok := true
	switch {
	case dx < 0:
		ok = m.X >= rect.Left()
	case dx > 0:
		ok = m.X < rect.Right()
	}
	switch {
	case dy < 0:
		ok = ok && m.Y >= rect.Top()
	case dy > 0:
		ok = ok && m.Y < rect.Bottom()
	}
	return ok
}

// bounced flips the heading's delta on each overflowed axis. With neither
// axis flagged (the mover was already outside on an axis it does not travel)
// the heading is fully reversed.
func bounced(d CardinalDirection, horizontal, vertical bool) CardinalDirection {
	if !horizontal && !vertical {
		return d.Opposite()
	}
	dx, dy := d.Delta()
	if horizontal {
		dx = -dx
	}
	if vertical {
		dy = -dy
	}
	nd, _ := directionFromDelta(dx, dy)
	return nd
}
