package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection over a
// bounded field. Rectangles are inserted into every cell they cover, so a
// query only has to visit the cells under the query rectangle.
//
// Positions outside the field are clamped to the border cells. Clamping is
// monotonic, so two rectangles that overlap always share at least one cell.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell

	// seen[i] == stamp marks index i as already reported by the current query.
	seen  []uint32
	stamp uint32
}

// gridCell stores the indices of objects that fall within a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a spatial grid covering the given field dimensions.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by a non-negative index) to every cell
// the rectangle covers.
func (g *SpatialGrid) Insert(r Rect, index int) {
	if index >= len(g.seen) {
		grown := make([]uint32, index+1)
		copy(grown, g.seen)
		g.seen = grown
	}

	c0, r0 := g.posToCell(r.X, r.Y)
	c1, r1 := g.posToCell(r.X+r.W, r.Y+r.H)
	for row := r0; row <= r1; row++ {
		rowOffset := row * g.cols
		for col := c0; col <= c1; col++ {
			g.cells[rowOffset+col].items = append(g.cells[rowOffset+col].items, index)
		}
	}
}

// QueryRect calls fn once for each item sharing a cell with the rectangle.
// Items are candidates only; callers still run the exact overlap test.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryRect(r Rect, fn func(index int) bool) {
	g.stamp++
	if g.stamp == 0 {
		clear(g.seen)
		g.stamp = 1
	}

	c0, r0 := g.posToCell(r.X, r.Y)
	c1, r1 := g.posToCell(r.X+r.W, r.Y+r.H)
	for row := r0; row <= r1; row++ {
		rowOffset := row * g.cols
		for col := c0; col <= c1; col++ {
			for _, itemIdx := range g.cells[rowOffset+col].items {
				if g.seen[itemIdx] == g.stamp {
					continue
				}
				g.seen[itemIdx] = g.stamp
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts field coordinates to grid cell coordinates.
// Clamps to valid range to handle positions outside the field.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor(y * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
