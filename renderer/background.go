package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Background paints the canvas between frames. With trails enabled it
// draws a translucent rect in the profile's background color so old
// strokes fade out gradually instead of being cleared.
type Background struct {
	width  int32
	height int32
}

// NewBackground creates a background painter for the given screen size.
func NewBackground(width, height int32) *Background {
	return &Background{width: width, height: height}
}

// FadeAlpha is the per-frame fade strength when trails are enabled.
// Low values leave long, soft trails.
const FadeAlpha = 10

// Draw paints the background. trails selects fade vs full clear.
func (b *Background) Draw(bg color.RGBA, trails bool) {
	if trails {
		rl.DrawRectangle(0, 0, b.width, b.height,
			rl.Color{R: bg.R, G: bg.G, B: bg.B, A: FadeAlpha})
	} else {
		rl.ClearBackground(rl.Color{R: bg.R, G: bg.G, B: bg.B, A: 255})
	}
}

// Clear fully repaints the background, erasing all trails.
func (b *Background) Clear(bg color.RGBA) {
	rl.ClearBackground(rl.Color{R: bg.R, G: bg.G, B: bg.B, A: 255})
}
