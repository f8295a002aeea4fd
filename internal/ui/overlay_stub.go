//go:build !ebiten

package ui

import "conway-life/internal/view"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{ showGrid bool }

// NewOverlay constructs a stub overlay.
func NewOverlay(_ view.Viewport, showGrid bool) *Overlay { return &Overlay{showGrid: showGrid} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// ShowGrid reports the initial grid setting.
func (o *Overlay) ShowGrid() bool { return o.showGrid }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
