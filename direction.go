package sprig

import (
	"fmt"
	"math"
	"strings"
)

const (
	twoPi    = 2 * math.Pi
	coneSize = math.Pi / 4 // 45 degrees
)

var directionNames = [8]string{
	"North", "NorthWest", "West", "SouthWest", "South", "SouthEast", "East", "NorthEast",
}

// Valid reports whether d is one of the eight defined headings.
func (d CardinalDirection) Valid() bool {
	return d < 8
}

// String returns the heading name, e.g. "NorthWest".
func (d CardinalDirection) String() string {
	if !d.Valid() {
		return fmt.Sprintf("CardinalDirection(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseCardinalDirection parses a heading name. Matching ignores case and
// underscores, so "north_west", "northwest" and "NorthWest" are equivalent.
func ParseCardinalDirection(s string) (CardinalDirection, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for i, name := range directionNames {
		if strings.ToLower(name) == key {
			return CardinalDirection(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidHeading, s)
}

// Opposite returns the heading 180 degrees away.
func (d CardinalDirection) Opposite() CardinalDirection {
	mustValid(d)
	return (d + 4) % 8
}

// Angle returns the heading as an angle in radians, counter-clockwise from
// North: North 0, NorthWest 45 degrees, ... NorthEast 315 degrees.
func (d CardinalDirection) Angle() float64 {
	mustValid(d)
	return float64(d) * coneSize
}

// DirectionFromAngle maps an angle in radians to the heading whose 45 degree
// cone contains it. Each cone is centred on its heading, so North covers
// [-22.5, 22.5) degrees. Angles outside [0, 2pi) wrap.
func DirectionFromAngle(rad float64) CardinalDirection {
	a := math.Mod(rad, twoPi)
	if a < 0 {
		a += twoPi
	}
	return CardinalDirection(int(math.Floor((a+coneSize/2)/coneSize)) % 8)
}

var (
	invSqrt2         = 1 / math.Sqrt2
	directionVectors = [8]Vec2{
		North:     {0, -1},
		NorthWest: {-invSqrt2, -invSqrt2},
		West:      {-1, 0},
		SouthWest: {-invSqrt2, invSqrt2},
		South:     {0, 1},
		SouthEast: {invSqrt2, invSqrt2},
		East:      {1, 0},
		NorthEast: {invSqrt2, -invSqrt2},
	}
)

// Vector returns the normalised horizontal unit vector for the heading in
// screen space (X right, Y down). This is the rendering convention and is
// independent of the cell deltas applied by Mover.Move.
func (d CardinalDirection) Vector() Vec2 {
	mustValid(d)
	return directionVectors[d]
}

// Vector3 returns the heading on the horizontal plane of a Y-up 3D space,
// with North pointing towards -Z.
func (d CardinalDirection) Vector3() Vec3 {
	v := d.Vector()
	return Vec3{X: v.X, Y: 0, Z: v.Y}
}

func mustValid(d CardinalDirection) {
	if !d.Valid() {
		panic(fmt.Errorf("%w: %d", ErrInvalidHeading, uint8(d)))
	}
}

// Facing pairs an angle with the heading it falls in. Build one with
// FacingFromAngle or FacingFromDirection; there is no implicit conversion
// between the two representations.
type Facing struct {
	angle     float64
	direction CardinalDirection
}

// FacingFromAngle keeps rad as the exact angle and derives the heading.
func FacingFromAngle(rad float64) Facing {
	return Facing{angle: rad, direction: DirectionFromAngle(rad)}
}

// FacingFromDirection uses the heading's canonical angle.
func FacingFromDirection(d CardinalDirection) Facing {
	return Facing{angle: d.Angle(), direction: d}
}

// Angle returns the facing angle in radians.
func (f Facing) Angle() float64 { return f.angle }

// Direction returns the heading the facing angle falls in.
func (f Facing) Direction() CardinalDirection { return f.direction }
