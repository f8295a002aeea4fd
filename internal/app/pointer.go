package app

import (
	"image"

	"conway-life/internal/session"
	"conway-life/internal/view"
)

// MouseButton identifies a button independently of the window backend.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
)

var buttonActions = [...]struct {
	button MouseButton
	action session.Action
}{
	{MouseLeft, session.ActionPrimary},
	{MouseRight, session.ActionSecondary},
}

// Pointer turns mouse state into session events. A press emits one event; a
// held button emits a drag event only when the cursor enters a new cell.
type Pointer struct {
	view view.Viewport

	cursorFn      func() (int, int)
	justPressedFn func(MouseButton) bool
	pressedFn     func(MouseButton) bool

	dragCell  image.Point
	dragValid bool
}

// NewPointer returns a Pointer that reads nothing until its input funcs are
// set.
func NewPointer(v view.Viewport) *Pointer {
	return &Pointer{
		view:          v,
		cursorFn:      func() (int, int) { return -1, -1 },
		justPressedFn: func(MouseButton) bool { return false },
		pressedFn:     func(MouseButton) bool { return false },
	}
}

// SetInputFuncs overrides the cursor and button queries.
func (p *Pointer) SetInputFuncs(cursor func() (int, int), justPressed, pressed func(MouseButton) bool) {
	p.cursorFn = cursor
	p.justPressedFn = justPressed
	p.pressedFn = pressed
}

// Poll returns the mouse events for this tick.
func (p *Pointer) Poll() []session.Event {
	var events []session.Event
	mx, my := p.cursorFn()
	held := false
	for _, b := range buttonActions {
		if p.justPressedFn(b.button) {
			events = append(events, session.Event{Action: b.action, X: mx, Y: my})
			p.markDrag(mx, my)
			held = true
			continue
		}
		if !p.pressedFn(b.button) {
			continue
		}
		held = true
		if p.enteredNewCell(mx, my) {
			events = append(events, session.Event{Action: b.action, X: mx, Y: my, Drag: true})
			p.markDrag(mx, my)
		}
	}
	if !held {
		p.dragValid = false
	}
	return events
}

func (p *Pointer) markDrag(mx, my int) {
	c, r, ok := p.view.PixelToCell(mx, my)
	p.dragCell, p.dragValid = image.Pt(c, r), ok
}

func (p *Pointer) enteredNewCell(mx, my int) bool {
	c, r, ok := p.view.PixelToCell(mx, my)
	if !ok {
		return false
	}
	return !p.dragValid || p.dragCell != image.Pt(c, r)
}
