// Package session holds the interaction state machine: pause and run,
// editing, delay control and the bounded pre-run. It is driven one tick at a
// time by whatever backend owns the window.
package session

import (
	"time"

	"conway-life/internal/core"
	apperrors "conway-life/internal/errors"
	"conway-life/internal/sims/life"
	"conway-life/internal/view"
)

const (
	// MaxPre is the largest accepted pre-run count.
	MaxPre = 9999
	// DelayStep is the delay change per arrow key press, in milliseconds.
	DelayStep = 20
)

// Action enumerates input events.
type Action uint8

const (
	ActionNone Action = iota
	ActionTogglePause
	ActionPrimary   // left button at (X, Y)
	ActionSecondary // right button at (X, Y)
	ActionClear
	ActionFaster
	ActionSlower
	ActionQuit
)

// Event is one input event. X and Y are window pixels for button actions;
// Drag marks a held button moving onto a new cell.
type Event struct {
	Action Action
	X, Y   int
	Drag   bool
}

// SaveFunc persists the board on quit.
type SaveFunc func(b *life.Board, cellSize int) error

// Options configures a new Session.
type Options struct {
	Board *life.Board
	View  view.Viewport
	// Pre stops playback after that many generations; 0 means unbounded.
	Pre  int
	Now  time.Time
	Save SaveFunc
}

// Session owns the playback state for one board.
type Session struct {
	board *life.Board
	view  view.Viewport
	pacer *core.Pacer
	save  SaveFunc

	paused    bool
	iteration int
	pre       int
	done      bool
}

// New returns a paused session at iteration 0.
func New(opts Options) (*Session, error) {
	if opts.Board == nil {
		return nil, apperrors.New(apperrors.CodeInvalidArguments, "session needs a board")
	}
	if opts.Pre < 0 || opts.Pre > MaxPre {
		return nil, apperrors.Newf(apperrors.CodeInvalidArguments, "pre-run count %d outside [0, %d]", opts.Pre, MaxPre)
	}
	return &Session{
		board:  opts.Board,
		view:   opts.View,
		pacer:  core.NewPacer(opts.Now),
		save:   opts.Save,
		paused: true,
		pre:    opts.Pre,
	}, nil
}

// Board returns the board being edited.
func (s *Session) Board() *life.Board { return s.board }

// View returns the window geometry.
func (s *Session) View() view.Viewport { return s.view }

// Paused reports whether playback is stopped.
func (s *Session) Paused() bool { return s.paused }

// Iteration returns the number of generations advanced since the start or
// the last clear.
func (s *Session) Iteration() int { return s.iteration }

// Pre returns the pre-run bound, 0 when unbounded.
func (s *Session) Pre() int { return s.pre }

// Done reports whether a quit event has been handled.
func (s *Session) Done() bool { return s.done }

// Update handles the events drained this tick, then advances one generation
// if the session is running and the delay has elapsed. It returns the save
// error, if any, once a quit event is seen.
func (s *Session) Update(now time.Time, events []Event) error {
	for _, ev := range events {
		if err := s.Handle(ev); err != nil {
			return err
		}
		if s.done {
			return nil
		}
	}
	s.advance(now)
	return nil
}

// Handle applies a single event.
func (s *Session) Handle(ev Event) error {
	if s.done {
		return nil
	}
	switch ev.Action {
	case ActionTogglePause:
		s.toggle()
	case ActionPrimary, ActionSecondary:
		if !ev.Drag && s.view.InPlayControl(ev.X, ev.Y) {
			s.toggle()
			return nil
		}
		c, r, ok := s.view.PixelToCell(ev.X, ev.Y)
		if !ok {
			return nil
		}
		var v uint8
		if ev.Action == ActionPrimary {
			v = 1
		}
		s.board.Set(r, c, v)
		s.paused = true
	case ActionClear:
		s.board.ClearAll()
		s.iteration = 0
		s.paused = true
	case ActionFaster:
		s.board.SetDelay(max(life.MinDelay, s.board.Delay()-DelayStep))
	case ActionSlower:
		s.board.SetDelay(min(life.MaxDelay, s.board.Delay()+DelayStep))
	case ActionQuit:
		s.done = true
		if s.save != nil {
			return s.save(s.board, s.view.CellSize)
		}
	}
	return nil
}

func (s *Session) limitReached() bool {
	return s.pre > 0 && s.iteration >= s.pre
}

func (s *Session) toggle() {
	if s.paused && s.limitReached() {
		return
	}
	s.paused = !s.paused
}

func (s *Session) advance(now time.Time) {
	if s.paused || s.done {
		return
	}
	if !s.pacer.Due(now, s.board.Interval()) {
		return
	}
	s.board.Step()
	s.iteration++
	if s.limitReached() {
		s.paused = true
	}
}
