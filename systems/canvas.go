package systems

import "image/color"

// Canvas is the drawing surface the particle system renders to.
// Implemented by the raylib renderer in graphical mode and by a
// recording canvas in tests. Alpha is supplied separately so the
// same palette color can be drawn at per-particle opacity.
type Canvas interface {
	DrawLine(x0, y0, x1, y1 float64, c color.RGBA, alpha uint8, width float64)
	DrawPoint(x, y float64, c color.RGBA, alpha uint8, size float64)
}

// NullCanvas discards all draw requests. Used in headless runs.
type NullCanvas struct{}

func (NullCanvas) DrawLine(x0, y0, x1, y1 float64, c color.RGBA, alpha uint8, width float64) {}
func (NullCanvas) DrawPoint(x, y float64, c color.RGBA, alpha uint8, size float64)           {}
