// Package view maps window pixels to board cells.
package view

import "image"

const (
	// FooterHeight is the band below the board for status text and the
	// play/pause control.
	FooterHeight = 40

	playControlW       = 20
	playControlH       = 24
	playControlOffsetX = 36
	playControlOffsetY = 32

	// MinWidth keeps the play control inside the window for narrow boards.
	MinWidth = playControlOffsetX
)

// Viewport holds the window geometry derived from the board shape.
type Viewport struct {
	CellSize int
	Width    int
	Height   int
	Rows     int
	Columns  int
}

// New derives the window size for a rows×columns board drawn with the given
// cell size. Non-positive values are raised to 1 and the width to MinWidth.
func New(rows, columns, cellSize int) Viewport {
	if rows <= 0 {
		rows = 1
	}
	if columns <= 0 {
		columns = 1
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	return Viewport{
		CellSize: cellSize,
		Width:    max(columns*cellSize, MinWidth),
		Height:   rows*cellSize + FooterHeight,
		Rows:     rows,
		Columns:  columns,
	}
}

// FitCellSize returns the largest cell size for which the board still fits in
// a target×target window, never less than 1.
func FitCellSize(rows, columns, target int) int {
	longest := rows
	if columns > longest {
		longest = columns
	}
	if longest <= 0 || target <= 0 {
		return 1
	}
	if s := target / longest; s > 1 {
		return s
	}
	return 1
}

// Board returns the pixel rectangle covered by cells.
func (v Viewport) Board() image.Rectangle {
	return image.Rect(0, 0, v.Columns*v.CellSize, v.Rows*v.CellSize)
}

// Footer returns the band below the board.
func (v Viewport) Footer() image.Rectangle {
	return image.Rect(0, v.Rows*v.CellSize, v.Width, v.Height)
}

// PixelToCell returns the column and row under (px, py). ok is false when the
// point is not over the board.
func (v Viewport) PixelToCell(px, py int) (c, r int, ok bool) {
	if !image.Pt(px, py).In(v.Board()) {
		return 0, 0, false
	}
	return px / v.CellSize, py / v.CellSize, true
}

// CellRect returns the window rectangle of cell (r, c).
func (v Viewport) CellRect(r, c int) image.Rectangle {
	x, y := c*v.CellSize, r*v.CellSize
	return image.Rect(x, y, x+v.CellSize, y+v.CellSize)
}

// PlayControl returns the hit rectangle of the play/pause control.
func (v Viewport) PlayControl() image.Rectangle {
	x, y := v.Width-playControlOffsetX, v.Height-playControlOffsetY
	return image.Rect(x, y, x+playControlW, y+playControlH)
}

// InPlayControl reports whether (px, py) hits the play/pause control.
func (v Viewport) InPlayControl(px, py int) bool {
	return image.Pt(px, py).In(v.PlayControl())
}
