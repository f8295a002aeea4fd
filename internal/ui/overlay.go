//go:build ebiten

package ui

import (
	"image/color"

	"conway-life/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional editing aids on top of the board: grid lines and a
// highlight on the cell under the cursor.
type Overlay struct {
	view     view.Viewport
	showGrid bool
	pixel    *ebiten.Image
}

var (
	gridColor  = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	hoverColor = color.RGBA{R: 40, G: 70, B: 100, A: 110}
)

// minGridCell is the smallest cell size that still leaves room for lines.
const minGridCell = 4

// NewOverlay constructs a new overlay instance.
func NewOverlay(v view.Viewport, showGrid bool) *Overlay {
	o := &Overlay{view: v, showGrid: showGrid}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles grid lines with G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// ShowGrid reports whether grid lines are drawn.
func (o *Overlay) ShowGrid() bool { return o.showGrid }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showGrid && o.view.CellSize >= minGridCell {
		o.drawGrid(screen)
	}
	mx, my := ebiten.CursorPosition()
	if c, r, ok := o.view.PixelToCell(mx, my); ok {
		rect := o.view.CellRect(r, c)
		o.fill(screen, float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), hoverColor)
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image) {
	board := o.view.Board()
	h := float64(board.Dy())
	w := float64(board.Dx())
	for c := 1; c < o.view.Columns; c++ {
		o.fill(screen, float64(c*o.view.CellSize), 0, 1, h, gridColor)
	}
	for r := 1; r < o.view.Rows; r++ {
		o.fill(screen, 0, float64(r*o.view.CellSize), w, 1, gridColor)
	}
}

func (o *Overlay) fill(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
