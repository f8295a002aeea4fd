package core

import "fmt"

// Grid stores a rows×cols matrix of byte-sized cell values in row-major order.
type Grid struct {
	Rows, Cols int
	data       []uint8
}

// NewGrid allocates a zeroed grid. Non-positive dimensions are raised to 1.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for row r, column c.
func (g *Grid) Index(r, c int) int { return r*g.Cols + c }

// InBounds reports whether (r, c) addresses a cell of the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// At returns the value at (r, c), treating anything off the grid as zero.
func (g *Grid) At(r, c int) uint8 {
	if !g.InBounds(r, c) {
		return 0
	}
	return g.data[r*g.Cols+c]
}

// Get returns the value at (r, c). It panics when (r, c) is off the grid.
func (g *Grid) Get(r, c int) uint8 {
	g.mustContain(r, c)
	return g.data[r*g.Cols+c]
}

// Set stores v at (r, c). It panics when (r, c) is off the grid.
func (g *Grid) Set(r, c int, v uint8) {
	g.mustContain(r, c)
	g.data[r*g.Cols+c] = v
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// CopyFrom overwrites g with the contents of src. Shapes must match.
func (g *Grid) CopyFrom(src *Grid) {
	if src.Rows != g.Rows || src.Cols != g.Cols {
		panic(fmt.Sprintf("core: copy %dx%d grid into %dx%d", src.Rows, src.Cols, g.Rows, g.Cols))
	}
	copy(g.data, src.data)
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.Rows != o.Rows || g.Cols != o.Cols {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

func (g *Grid) mustContain(r, c int) {
	if !g.InBounds(r, c) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", r, c, g.Rows, g.Cols))
	}
}
