package sprig

import (
	"fmt"
	"iter"
)

// GridOffset selects where inside a cell a grid coordinate resolves to.
type GridOffset uint8

const (
	OffsetNone     GridOffset = iota // the cell's top-left corner
	OffsetCenter                     // half a cell in
	OffsetCellSize                   // a full cell in, i.e. the far corner
)

// Offset returns the distance the offset adds for a cell of the given size.
func (o GridOffset) Offset(scale float64) (float64, error) {
	switch o {
	case OffsetNone:
		return 0, nil
	case OffsetCenter:
		return scale / 2, nil
	case OffsetCellSize:
		return scale, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidOffset, uint8(o))
}

// mustOffset is Offset for internal callers that received a validated offset
// from an exported constant. An unknown value is a programming error.
func mustOffset(o GridOffset, scale float64) float64 {
	v, err := o.Offset(scale)
	if err != nil {
		panic(err)
	}
	return v
}

// SquareGrid maps integer cell coordinates to world positions, with
// independent cell sizes per axis. It is unbounded; see BoundedSquareGrid.
type SquareGrid struct {
	XScale, YScale float64
}

// NewSquareGrid returns a grid of square cells of the given size.
func NewSquareGrid(scale float64) SquareGrid {
	return SquareGrid{XScale: scale, YScale: scale}
}

// Position returns the world position of cell (x, y) adjusted by the offsets.
// It panics on an unknown GridOffset.
func (g SquareGrid) Position(x, y int, xo, yo GridOffset) Vec2 {
	return Vec2{
		X: float64(x)*g.XScale + mustOffset(xo, g.XScale),
		Y: float64(y)*g.YScale + mustOffset(yo, g.YScale),
	}
}

// Area returns the world rectangle spanned from cell (x1, y1) to cell
// (x2, y2), each coordinate adjusted by its own offset. The usual call passes
// OffsetNone for the first corner and OffsetCellSize for the second so both
// cells are fully covered. It panics on an unknown GridOffset.
func (g SquareGrid) Area(x1, y1, x2, y2 int, x1o, y1o, x2o, y2o GridOffset) Rect {
	tl := g.Position(x1, y1, x1o, y1o)
	br := g.Position(x2, y2, x2o, y2o)
	return Rect{X: tl.X, Y: tl.Y, Width: br.X - tl.X, Height: br.Y - tl.Y}
}

// BoundedSquareGrid is a SquareGrid limited to XCells by YCells cells.
type BoundedSquareGrid struct {
	Grid           SquareGrid
	XCells, YCells int
}

// NewBoundedSquareGrid returns a grid of xCells by yCells square cells.
func NewBoundedSquareGrid(scale float64, xCells, yCells int) BoundedSquareGrid {
	return BoundedSquareGrid{Grid: NewSquareGrid(scale), XCells: xCells, YCells: yCells}
}

// checkCell accepts coordinates up to and including the cell count, so the
// grid's far edge can be addressed.
func (b BoundedSquareGrid) checkCell(x, y int) error {
	if x < 0 || y < 0 || x > b.XCells || y > b.YCells {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrCellOutOfRange, x, y, b.XCells, b.YCells)
	}
	return nil
}

// Position is SquareGrid.Position with range checking.
func (b BoundedSquareGrid) Position(x, y int, xo, yo GridOffset) (Vec2, error) {
	if err := b.checkCell(x, y); err != nil {
		return Vec2{}, err
	}
	return b.Grid.Position(x, y, xo, yo), nil
}

// Area is SquareGrid.Area with range checking on both corners.
func (b BoundedSquareGrid) Area(x1, y1, x2, y2 int, x1o, y1o, x2o, y2o GridOffset) (Rect, error) {
	if err := b.checkCell(x1, y1); err != nil {
		return Rect{}, err
	}
	if err := b.checkCell(x2, y2); err != nil {
		return Rect{}, err
	}
	return b.Grid.Area(x1, y1, x2, y2, x1o, y1o, x2o, y2o), nil
}

// TotalCells returns XCells * YCells.
func (b BoundedSquareGrid) TotalCells() int { return b.XCells * b.YCells }

// TotalArea returns the grid's world-space area.
func (b BoundedSquareGrid) TotalArea() float64 {
	return float64(b.XCells) * b.Grid.XScale * float64(b.YCells) * b.Grid.YScale
}

// AreaRect returns the grid's world-space rectangle anchored at the origin.
func (b BoundedSquareGrid) AreaRect() Rect {
	return Rect{0, 0, float64(b.XCells) * b.Grid.XScale, float64(b.YCells) * b.Grid.YScale}
}

// CellsRect returns the grid in cell units anchored at the origin.
func (b BoundedSquareGrid) CellsRect() RectI {
	return RectI{0, 0, b.XCells, b.YCells}
}

// MoverBounds is CellsRect, named for its use as Mover bounds.
func (b BoundedSquareGrid) MoverBounds() RectI { return b.CellsRect() }

// CompareHorizontal returns -1 if x is left of the grid, 1 if at or past its
// right edge and 0 if inside.
func (b BoundedSquareGrid) CompareHorizontal(x int) int {
	return compareRange(x, b.XCells)
}

// CompareVertical is CompareHorizontal for rows.
func (b BoundedSquareGrid) CompareVertical(y int) int {
	return compareRange(y, b.YCells)
}

func compareRange(v, n int) int {
	switch {
	case v < 0:
		return -1
	case v >= n:
		return 1
	}
	return 0
}

// InBounds reports whether (x, y) is a cell of the grid.
func (b BoundedSquareGrid) InBounds(x, y int) bool {
	return compareRange(x, b.XCells) == 0 && compareRange(y, b.YCells) == 0
}

// cells yields every cell coordinate column by column.
func (b BoundedSquareGrid) cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for x := 0; x < b.XCells; x++ {
			for y := 0; y < b.YCells; y++ {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

// Cells yields the world position of every cell, column by column.
func (b BoundedSquareGrid) Cells(xo, yo GridOffset) iter.Seq[Vec2] {
	// Validate once so a bad offset panics before iteration starts.
	mustOffset(xo, b.Grid.XScale)
	mustOffset(yo, b.Grid.YScale)
	return func(yield func(Vec2) bool) {
		for x, y := range b.cells() {
			if !yield(b.Grid.Position(x, y, xo, yo)) {
				return
			}
		}
	}
}

// CellRects yields the world rectangle of every cell, column by column.
func (b BoundedSquareGrid) CellRects() iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		for x, y := range b.cells() {
			r := Rect{float64(x) * b.Grid.XScale, float64(y) * b.Grid.YScale, b.Grid.XScale, b.Grid.YScale}
			if !yield(r) {
				return
			}
		}
	}
}

// CellRectsI is CellRects with every component truncated to an int.
func (b BoundedSquareGrid) CellRectsI() iter.Seq[RectI] {
	return func(yield func(RectI) bool) {
		for r := range b.CellRects() {
			if !yield(r.ToRectI()) {
				return
			}
		}
	}
}
