//go:build ebiten

package app

import (
	"image"
	"time"

	"conway-life/internal/render"
	"conway-life/internal/session"
	"conway-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *session.Session
	screen  *render.Screen
	overlay *ui.Overlay

	pointer *Pointer

	title string
}

// New constructs a Game for the provided session.
func New(s *session.Session, icons map[session.Icon]image.Image, showGrid bool) *Game {
	p := NewPointer(s.View())
	p.SetInputFuncs(ebiten.CursorPosition, func(b MouseButton) bool {
		return inpututil.IsMouseButtonJustPressed(ebitenButton(b))
	}, func(b MouseButton) bool {
		return ebiten.IsMouseButtonPressed(ebitenButton(b))
	})
	return &Game{
		session: s,
		screen:  render.NewScreen(icons),
		overlay: ui.NewOverlay(s.View(), showGrid),
		pointer: p,
	}
}

func ebitenButton(b MouseButton) ebiten.MouseButton {
	if b == MouseRight {
		return ebiten.MouseButtonRight
	}
	return ebiten.MouseButtonLeft
}

// Update drains input, feeds it to the session and advances the board.
func (g *Game) Update() error {
	if err := g.session.Update(time.Now(), g.pollEvents()); err != nil {
		return err
	}
	if g.session.Done() {
		return ebiten.Termination
	}
	g.overlay.Update()
	if t := g.session.Title(); t != g.title {
		g.title = t
		ebiten.SetWindowTitle(t)
	}
	return nil
}

// Draw renders the current session state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Begin(screen)
	g.session.Draw(g.screen)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	v := g.session.View()
	return v.Width, v.Height
}

func (g *Game) pollEvents() []session.Event {
	var events []session.Event
	push := func(a session.Action) { events = append(events, session.Event{Action: a}) }

	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		push(session.ActionQuit)
		return events
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		push(session.ActionTogglePause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		push(session.ActionClear)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		push(session.ActionFaster)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		push(session.ActionSlower)
	}
	return append(events, g.pointer.Poll()...)
}
