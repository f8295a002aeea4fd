package session

import (
	"fmt"
	"image"
	"image/color"
)

// Icon names a decoded image the renderer can blit.
type Icon string

const (
	IconPlay  Icon = "play"
	IconPause Icon = "pause"
)

var (
	LivingColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	DeadColor       = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	BackgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	FooterColor     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	TextColor       = color.RGBA{R: 200, G: 200, B: 210, A: 255}
)

// Renderer is the drawing backend used for one frame.
type Renderer interface {
	Clear(bg color.RGBA)
	FillRect(r image.Rectangle, c color.RGBA)
	// Text draws s with its baseline at y.
	Text(s string, x, y int, c color.RGBA) error
	Icon(name Icon, x, y int) error
	Present()
}

// GridBlitter is implemented by renderers that can paint the whole board in
// one upload instead of one rectangle per cell.
type GridBlitter interface {
	BlitGrid(cells []uint8, columns, rows, cellSize int, on, off color.RGBA)
}

const (
	statusX        = 8
	statusBaseline = 25
)

// Draw renders the board, the status line and the play/pause control. Text
// and icon failures skip the affected element.
func (s *Session) Draw(r Renderer) {
	r.Clear(BackgroundColor)

	b := s.board
	if gb, ok := r.(GridBlitter); ok {
		gb.BlitGrid(b.Cells(), b.Columns(), b.Rows(), s.view.CellSize, LivingColor, DeadColor)
	} else {
		for row := 0; row < b.Rows(); row++ {
			for col := 0; col < b.Columns(); col++ {
				c := DeadColor
				if b.Get(row, col) == 1 {
					c = LivingColor
				}
				r.FillRect(s.view.CellRect(row, col), c)
			}
		}
	}

	footer := s.view.Footer()
	r.FillRect(footer, FooterColor)
	_ = r.Text(s.Status(), statusX, footer.Min.Y+statusBaseline, TextColor)

	icon := IconPause
	if s.paused {
		icon = IconPlay
	}
	ctrl := s.view.PlayControl()
	_ = r.Icon(icon, ctrl.Min.X, ctrl.Min.Y)

	r.Present()
}

// Status returns the footer text.
func (s *Session) Status() string {
	gen := fmt.Sprintf("Gen %d", s.iteration)
	if s.pre > 0 {
		gen = fmt.Sprintf("Gen %d/%d", s.iteration, s.pre)
	}
	return fmt.Sprintf("%s  %dms  Alive %d", gen, s.board.Delay(), s.board.Population())
}

// Title returns the window title for the current state.
func (s *Session) Title() string {
	t := fmt.Sprintf("Conway's Game of Life (%d x %d)", s.board.Rows(), s.board.Columns())
	if s.paused {
		t += " - Paused"
	}
	return t
}
