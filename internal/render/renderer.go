//go:build ebiten

package render

import (
	"image"
	"image/color"

	apperrors "conway-life/internal/errors"
	"conway-life/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it scaled
// so each cell covers scale×scale pixels.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// Screen draws session frames onto an ebiten image. Fonts, icons and the grid
// painter are created once and reused across frames.
type Screen struct {
	dst     *ebiten.Image
	painter *GridPainter
	icons   map[session.Icon]*ebiten.Image
	face    font.Face
}

// NewScreen uploads the decoded icons. Missing icons are skipped at draw time.
func NewScreen(icons map[session.Icon]image.Image) *Screen {
	s := &Screen{icons: make(map[session.Icon]*ebiten.Image, len(icons)), face: basicfont.Face7x13}
	for name, img := range icons {
		s.icons[name] = ebiten.NewImageFromImage(img)
	}
	return s
}

// Begin targets dst for the next frame.
func (s *Screen) Begin(dst *ebiten.Image) { s.dst = dst }

// Target returns the image the current frame is drawn on.
func (s *Screen) Target() *ebiten.Image { return s.dst }

func (s *Screen) Clear(bg color.RGBA) { s.dst.Fill(bg) }

func (s *Screen) FillRect(r image.Rectangle, c color.RGBA) {
	vector.DrawFilledRect(s.dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func (s *Screen) Text(str string, x, y int, c color.RGBA) error {
	if s.face == nil {
		return apperrors.New(apperrors.CodeResourceLoad, "no font loaded")
	}
	text.Draw(s.dst, str, s.face, x, y, c)
	return nil
}

func (s *Screen) Icon(name session.Icon, x, y int) error {
	img, ok := s.icons[name]
	if !ok {
		return apperrors.Newf(apperrors.CodeResourceLoad, "icon %q not loaded", name)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	s.dst.DrawImage(img, op)
	return nil
}

// Present is a no-op: ebiten presents the frame once Draw returns.
func (s *Screen) Present() {}

// BlitGrid paints the board through the GridPainter.
func (s *Screen) BlitGrid(cells []uint8, columns, rows, cellSize int, on, off color.RGBA) {
	if s.painter == nil {
		s.painter = NewGridPainter(columns, rows)
	}
	if w, h := s.painter.Size(); w != columns || h != rows {
		s.painter = NewGridPainter(columns, rows)
	}
	s.painter.Blit(s.dst, cells, on, off, cellSize)
}

var (
	_ session.Renderer    = (*Screen)(nil)
	_ session.GridBlitter = (*Screen)(nil)
)
