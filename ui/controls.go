package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Tuning holds the live-adjustable field parameters. The game pushes
// changed values into the running system between ticks without
// touching the particle pool.
type Tuning struct {
	NoiseScale      float32
	AngleMultiplier float32
	TimeStep        float32
}

// ControlsPanel renders a right-side tuning panel with sliders.
type ControlsPanel struct {
	x, y    float32
	width   float32
	visible bool
}

// NewControlsPanel creates a tuning panel anchored at x, y.
func NewControlsPanel(x, y, width float32) *ControlsPanel {
	return &ControlsPanel{x: x, y: y, width: width}
}

// Toggle switches panel visibility and returns the new state.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Draw renders the sliders and mutates t in place. Returns true when
// any value changed this frame.
func (c *ControlsPanel) Draw(t *Tuning) bool {
	if !c.visible {
		return false
	}

	rl.DrawRectangle(int32(c.x)-10, int32(c.y)-10, int32(c.width)+20, 150,
		rl.Color{R: 20, G: 20, B: 20, A: 200})
	rl.DrawText("Field Tuning", int32(c.x), int32(c.y), 14, rl.White)

	changed := false
	y := c.y + 28

	newScale := gui.SliderBar(
		rl.Rectangle{X: c.x + 60, Y: y, Width: c.width - 120, Height: 18},
		"scale", fmt.Sprintf("%.3f", t.NoiseScale),
		t.NoiseScale, 0.005, 0.2)
	if newScale != t.NoiseScale {
		t.NoiseScale = newScale
		changed = true
	}
	y += 28

	newMult := gui.SliderBar(
		rl.Rectangle{X: c.x + 60, Y: y, Width: c.width - 120, Height: 18},
		"swirl", fmt.Sprintf("%.2f", t.AngleMultiplier),
		t.AngleMultiplier, 0.5, 4)
	if newMult != t.AngleMultiplier {
		t.AngleMultiplier = newMult
		changed = true
	}
	y += 28

	newStep := gui.SliderBar(
		rl.Rectangle{X: c.x + 60, Y: y, Width: c.width - 120, Height: 18},
		"speed", fmt.Sprintf("%.4f", t.TimeStep),
		t.TimeStep, 0.0005, 0.01)
	if newStep != t.TimeStep {
		t.TimeStep = newStep
		changed = true
	}

	return changed
}
