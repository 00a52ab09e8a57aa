package sprig

import (
	"math"
	"slices"
)

// DefaultTolerance is the tolerance used by the approximate comparisons when
// callers have no better value.
const DefaultTolerance = 0.01

// ApproxEqual reports whether a and b differ by strictly less than tol.
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// ApproxEqual reports whether both components are within tol of o.
func (v Vec2) ApproxEqual(o Vec2, tol float64) bool {
	return ApproxEqual(v.X, o.X, tol) && ApproxEqual(v.Y, o.Y, tol)
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Reversed swaps X and Y.
func (v Vec2) Reversed() Vec2 { return Vec2{v.Y, v.X} }

// ToPoint truncates both components towards zero.
func (v Vec2) ToPoint() Point { return Point{int(v.X), int(v.Y)} }

// PositionFromDistanceAndAngle returns the offset dist away from the origin
// at angle radians.
func PositionFromDistanceAndAngle(angle, dist float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{dist * cos, dist * sin}
}

// Ahead returns the point dist away from v at angle radians.
func (v Vec2) Ahead(angle, dist float64) Vec2 {
	return PositionFromDistanceAndAngle(angle, dist).Add(v)
}

// RotatedAround rotates v by angle radians about origin.
func (v Vec2) RotatedAround(origin Vec2, angle float64) Vec2 {
	d := v.Sub(origin)
	sin, cos := math.Sincos(angle)
	return Vec2{d.X*cos - d.Y*sin, d.X*sin + d.Y*cos}.Add(origin)
}

// ToVec2 converts p to float components.
func (p Point) ToVec2() Vec2 { return Vec2{float64(p.X), float64(p.Y)} }

// Pack stores a in the low and b in the high 32 bits of a uint64.
func Pack(a, b int32) uint64 {
	return uint64(uint32(a)) | uint64(uint32(b))<<32
}

// Unpack reverses Pack.
func Unpack(packed uint64) (a, b int32) {
	return int32(uint32(packed)), int32(uint32(packed >> 32))
}

// Pack packs the point into a map-friendly key. Components are truncated to
// 32 bits.
func (p Point) Pack() uint64 {
	return Pack(int32(p.X), int32(p.Y))
}

// PointFromPacked reverses Point.Pack.
func PointFromPacked(packed uint64) Point {
	a, b := Unpack(packed)
	return Point{int(a), int(b)}
}

// Centroid returns the integer average of points. It returns the zero Point
// for an empty slice.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var x, y int
	for _, p := range points {
		x += p.X
		y += p.Y
	}
	return Point{x / len(points), y / len(points)}
}

// SortVertices orders points in place by their angle around the
// centroid, measured from +Y towards +X in degrees [0, 360).
func SortVertices(points []Point) {
	c := Centroid(points)
	angle := func(p Point) float64 {
		deg := math.Atan2(float64(p.X-c.X), float64(p.Y-c.Y)) * 180 / math.Pi
		return math.Mod(deg+360, 360)
	}
	slices.SortStableFunc(points, func(a, b Point) int {
		aa, ab := angle(a), angle(b)
		switch {
		case aa < ab:
			return -1
		case aa > ab:
			return 1
		}
		return 0
	})
}
