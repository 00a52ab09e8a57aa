package sprig

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ToRectI truncates every component towards zero.
func (r Rect) ToRectI() RectI {
	return RectI{int(r.X), int(r.Y), int(r.Width), int(r.Height)}
}

// Left returns the X coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the X coordinate of the right edge, X + Width.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the Y coordinate of the bottom edge, Y + Height.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Vec2 { return Vec2{r.X, r.Y} }

// TopRight returns the top-right corner.
func (r Rect) TopRight() Vec2 { return Vec2{r.Right(), r.Y} }

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Vec2 { return Vec2{r.X, r.Bottom()} }

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Vec2 { return Vec2{r.Right(), r.Bottom()} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width*0.5, r.Y + r.Height*0.5}
}

// CenterTop returns the midpoint of the top edge.
func (r Rect) CenterTop() Vec2 { return Vec2{r.X + r.Width*0.5, r.Y} }

// CenterBottom returns the midpoint of the bottom edge.
func (r Rect) CenterBottom() Vec2 { return Vec2{r.X + r.Width*0.5, r.Bottom()} }

// CenterLeft returns the midpoint of the left edge.
func (r Rect) CenterLeft() Vec2 { return Vec2{r.X, r.Y + r.Height*0.5} }

// CenterRight returns the midpoint of the right edge.
func (r Rect) CenterRight() Vec2 { return Vec2{r.Right(), r.Y + r.Height*0.5} }

// Scaled returns r with position and size multiplied by mult, e.g. to turn a
// cell rectangle into pixels.
func (r Rect) Scaled(mult float64) Rect {
	return Rect{r.X * mult, r.Y * mult, r.Width * mult, r.Height * mult}
}

// Contains reports whether the cell (x, y) lies inside the rectangle. The
// right and bottom edges are exclusive.
func (r RectI) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Left returns the X coordinate of the left edge.
func (r RectI) Left() int { return r.X }

// Right returns the X coordinate of the right edge, X + Width.
func (r RectI) Right() int { return r.X + r.Width }

// Top returns the Y coordinate of the top edge.
func (r RectI) Top() int { return r.Y }

// Bottom returns the Y coordinate of the bottom edge, Y + Height.
func (r RectI) Bottom() int { return r.Y + r.Height }

// TopLeft returns the top-left corner.
func (r RectI) TopLeft() Point { return Point{r.X, r.Y} }

// TopRight returns the top-right corner.
func (r RectI) TopRight() Point { return Point{r.Right(), r.Y} }

// BottomLeft returns the bottom-left corner.
func (r RectI) BottomLeft() Point { return Point{r.X, r.Bottom()} }

// BottomRight returns the bottom-right corner.
func (r RectI) BottomRight() Point { return Point{r.Right(), r.Bottom()} }

// Center returns the midpoint, rounded towards the top-left.
func (r RectI) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// CenterTop returns the midpoint of the top edge.
func (r RectI) CenterTop() Point { return Point{r.X + r.Width/2, r.Y} }

// CenterBottom returns the midpoint of the bottom edge.
func (r RectI) CenterBottom() Point { return Point{r.X + r.Width/2, r.Bottom()} }

// CenterLeft returns the midpoint of the left edge.
func (r RectI) CenterLeft() Point { return Point{r.X, r.Y + r.Height/2} }

// CenterRight returns the midpoint of the right edge.
func (r RectI) CenterRight() Point { return Point{r.Right(), r.Y + r.Height/2} }

// Scaled returns r with position and size multiplied by mult.
func (r RectI) Scaled(mult int) RectI {
	return RectI{r.X * mult, r.Y * mult, r.Width * mult, r.Height * mult}
}

// ToRect converts r to a float rectangle.
func (r RectI) ToRect() Rect {
	return Rect{float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height)}
}
