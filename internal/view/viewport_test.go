package view

import (
	"image"
	"testing"
)

func TestNewDerivesWindow(t *testing.T) {
	v := New(5, 8, 10)
	if v.Width != 80 || v.Height != 50+FooterHeight {
		t.Fatalf("unexpected window %dx%d", v.Width, v.Height)
	}
	if v.Footer() != image.Rect(0, 50, 80, 50+FooterHeight) {
		t.Fatalf("unexpected footer %v", v.Footer())
	}
}

func TestPixelToCell(t *testing.T) {
	v := New(5, 5, 10)
	c, r, ok := v.PixelToCell(15, 15)
	if !ok || c != 1 || r != 1 {
		t.Fatalf("expected cell (1,1), got (%d,%d) ok=%v", r, c, ok)
	}
	c, r, ok = v.PixelToCell(49, 0)
	if !ok || c != 4 || r != 0 {
		t.Fatalf("expected column 4 row 0, got (%d,%d) ok=%v", r, c, ok)
	}
	for _, p := range []image.Point{{-1, 3}, {50, 3}, {3, 50}, {3, 89}} {
		if _, _, ok := v.PixelToCell(p.X, p.Y); ok {
			t.Fatalf("point %v should be outside the board", p)
		}
	}
}

func TestCellRect(t *testing.T) {
	v := New(4, 4, 12)
	if got := v.CellRect(2, 3); got != image.Rect(36, 24, 48, 36) {
		t.Fatalf("unexpected rect %v", got)
	}
	c, r, ok := v.PixelToCell(v.CellRect(2, 3).Min.X, v.CellRect(2, 3).Min.Y)
	if !ok || r != 2 || c != 3 {
		t.Fatal("top-left pixel of a cell rect must map back to the cell")
	}
}

func TestPlayControl(t *testing.T) {
	v := New(20, 20, 10)
	want := image.Rect(200-36, 240-32, 200-36+20, 240-32+24)
	if v.PlayControl() != want {
		t.Fatalf("expected %v, got %v", want, v.PlayControl())
	}
	if !v.InPlayControl(want.Min.X, want.Min.Y) || v.InPlayControl(want.Max.X, want.Min.Y) {
		t.Fatal("hit test must be half-open on the control rectangle")
	}
	if !want.In(v.Footer()) {
		t.Fatal("play control must lie inside the footer")
	}
}

func TestFitCellSize(t *testing.T) {
	if got := FitCellSize(32, 64, 640); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := FitCellSize(2000, 10, 640); got != 1 {
		t.Fatalf("expected floor of 1, got %d", got)
	}
}

func TestNarrowBoardKeepsPlayControlInWindow(t *testing.T) {
	v := New(3, 2, 5)
	if v.Width != MinWidth {
		t.Fatalf("expected width %d, got %d", MinWidth, v.Width)
	}
	ctrl := v.PlayControl()
	if !ctrl.In(image.Rect(0, 0, v.Width, v.Height)) {
		t.Fatalf("control %v outside %dx%d window", ctrl, v.Width, v.Height)
	}
	if !v.InPlayControl(ctrl.Min.X, ctrl.Min.Y) {
		t.Fatal("control must be clickable")
	}
	if v.Board() != image.Rect(0, 0, 10, 15) {
		t.Fatalf("board region must stop at the last column, got %v", v.Board())
	}
	if _, _, ok := v.PixelToCell(20, 5); ok {
		t.Fatal("padding right of the board is not a cell")
	}
}
