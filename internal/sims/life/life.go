// Package life implements Conway's Game of Life on a bounded board.
package life

import (
	"fmt"
	"time"

	"conway-life/internal/core"
)

const (
	// MinDelay and MaxDelay bound the pause between generations, in milliseconds.
	MinDelay = 20
	MaxDelay = 1000
	// DefaultDelay is used when nothing else sets the delay.
	DefaultDelay = 100
)

// Board is a rows×columns Life grid plus its generation delay. Cells beyond
// the edge are permanently dead.
type Board struct {
	cur   *core.Grid
	nxt   *core.Grid
	delay int
}

// New returns an all-dead board with the default delay. Non-positive
// dimensions are raised to 1.
func New(rows, columns int) *Board {
	cur := core.NewGrid(rows, columns)
	return &Board{
		cur:   cur,
		nxt:   core.NewGrid(cur.Rows, cur.Cols),
		delay: DefaultDelay,
	}
}

// Name returns the simulation identifier.
func (b *Board) Name() string { return "life" }

// Size returns the grid dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.cur.Cols, H: b.cur.Rows} }

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.cur.Rows }

// Columns returns the number of columns.
func (b *Board) Columns() int { return b.cur.Cols }

// Cells exposes the current generation in row-major order. The slice is
// replaced on every Step, so callers must not keep it across generations.
func (b *Board) Cells() []uint8 { return b.cur.Cells() }

// Get returns 1 if the cell at (r, c) is alive and 0 otherwise. It panics when
// (r, c) is off the board.
func (b *Board) Get(r, c int) uint8 { return b.cur.Get(r, c) }

// Set stores v at (r, c). It panics when (r, c) is off the board or v is
// neither 0 nor 1.
func (b *Board) Set(r, c int, v uint8) {
	if v > 1 {
		panic(fmt.Sprintf("life: cell value %d is not 0 or 1", v))
	}
	b.cur.Set(r, c, v)
}

// ClearAll kills every cell. The delay is kept.
func (b *Board) ClearAll() { b.cur.Clear() }

// Delay returns the delay between generations in milliseconds.
func (b *Board) Delay() int { return b.delay }

// Interval returns the delay as a time.Duration.
func (b *Board) Interval() time.Duration { return time.Duration(b.delay) * time.Millisecond }

// SetDelay changes the delay. Values outside [MinDelay, MaxDelay] are
// rejected and leave the delay unchanged.
func (b *Board) SetDelay(ms int) bool {
	if ms < MinDelay || ms > MaxDelay {
		return false
	}
	b.delay = ms
	return true
}

// Population returns the number of live cells.
func (b *Board) Population() int {
	n := 0
	for _, v := range b.cur.Cells() {
		n += int(v)
	}
	return n
}

// Equal reports whether both boards have the same shape, cells and delay.
func (b *Board) Equal(o *Board) bool {
	return b.delay == o.delay && b.cur.Equal(o.cur)
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := New(b.Rows(), b.Columns())
	c.cur.CopyFrom(b.cur)
	c.delay = b.delay
	return c
}

// Reset randomizes the board using the provided seed.
func (b *Board) Reset(seed int64) {
	core.NewRNG(seed).FillBinary(b.cur.Cells())
}

// Randomize clears the board and brings exactly living cells to life, chosen
// by rng.
func (b *Board) Randomize(rng *core.RNG, living int) {
	rng.Scatter(b.cur.Cells(), living)
}

// Step advances the simulation by one generation.
func (b *Board) Step() {
	rows, cols := b.cur.Rows, b.cur.Cols
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			neighbors := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					neighbors += int(b.cur.At(r+dr, c+dc))
				}
			}
			alive := b.cur.Get(r, c) == 1
			var next uint8
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				next = 1
			}
			b.nxt.Set(r, c, next)
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

var _ core.Sim = (*Board)(nil)
