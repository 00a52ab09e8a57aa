package sprig

import (
	"fmt"
	"strings"
)

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

// Point is an integer 2D coordinate. Grid cells and mover positions are
// expressed as Points.
type Point struct {
	X, Y int
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectI is the integer counterpart of Rect. Mover bounds and grid cell
// ranges are RectI values.
type RectI struct {
	X, Y, Width, Height int
}

// CardinalDirection is one of the eight compass headings. Values are ordered
// clockwise starting at North, so the zero value is North.
type CardinalDirection uint8

const (
	North     CardinalDirection = iota // dy -1
	NorthWest                          // dx +1, dy -1
	West                               // dx +1
	SouthWest                          // dx +1, dy +1
	South                              // dy +1
	SouthEast                          // dx -1, dy +1
	East                               // dx -1
	NorthEast                          // dx -1, dy -1
)

// CardinalDirections lists every valid heading in clockwise order from North.
var CardinalDirections = [8]CardinalDirection{
	North, NorthWest, West, SouthWest, South, SouthEast, East, NorthEast,
}

// BoundsReaction selects what a Mover does when a step leaves its bounding
// rectangle.
type BoundsReaction uint8

const (
	ReactionStop                    BoundsReaction = iota // stay put unless the forward edge allows the step
	ReactionBounce                                        // reverse heading on the overflowed axis
	ReactionSlide                                         // turn along the edge, away from the nearer side
	ReactionReset                                         // return to the spawn cell and step again
	ReactionResetAndChangeDirection                       // return to spawn with a new random heading
)

var reactionNames = [...]string{
	ReactionStop:                    "stop",
	ReactionBounce:                  "bounce",
	ReactionSlide:                   "slide",
	ReactionReset:                   "reset",
	ReactionResetAndChangeDirection: "reset_and_change_direction",
}

// String returns the reaction's snake_case name, as used in config files.
func (r BoundsReaction) String() string {
	if int(r) >= len(reactionNames) {
		return fmt.Sprintf("BoundsReaction(%d)", uint8(r))
	}
	return reactionNames[r]
}

// ParseBoundsReaction parses a reaction name. Matching ignores case and
// underscores, so "ResetAndChangeDirection" is accepted too.
func ParseBoundsReaction(s string) (BoundsReaction, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for i, name := range reactionNames {
		if strings.ReplaceAll(name, "_", "") == key {
			return BoundsReaction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidReaction, s)
}
