// Package renderer provides raylib-backed rendering for the simulation.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/MichailSemoglou/encre/systems"
)

// RaylibCanvas implements systems.Canvas on top of raylib draw calls.
// All calls must happen between rl.BeginDrawing and rl.EndDrawing.
type RaylibCanvas struct{}

// NewRaylibCanvas creates a raylib canvas.
func NewRaylibCanvas() *RaylibCanvas {
	return &RaylibCanvas{}
}

var _ systems.Canvas = (*RaylibCanvas)(nil)

// DrawLine draws a straight stroke at the given alpha and width.
func (RaylibCanvas) DrawLine(x0, y0, x1, y1 float64, c color.RGBA, alpha uint8, width float64) {
	rl.DrawLineEx(
		rl.Vector2{X: float32(x0), Y: float32(y0)},
		rl.Vector2{X: float32(x1), Y: float32(y1)},
		float32(width),
		rl.Color{R: c.R, G: c.G, B: c.B, A: alpha},
	)
}

// DrawPoint draws a filled dot at the given alpha and diameter.
func (RaylibCanvas) DrawPoint(x, y float64, c color.RGBA, alpha uint8, size float64) {
	rl.DrawCircleV(
		rl.Vector2{X: float32(x), Y: float32(y)},
		float32(size)/2,
		rl.Color{R: c.R, G: c.G, B: c.B, A: alpha},
	)
}
