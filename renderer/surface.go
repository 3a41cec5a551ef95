package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TrailSurface is an offscreen render target that accumulates particle
// strokes across frames. Double buffering would otherwise discard the
// previous frame, which is what trail rendering depends on.
type TrailSurface struct {
	target rl.RenderTexture2D
	width  int32
	height int32
}

// NewTrailSurface creates the render target. Must be called after the
// raylib window exists.
func NewTrailSurface(width, height int32, bg color.RGBA) *TrailSurface {
	s := &TrailSurface{
		target: rl.LoadRenderTexture(width, height),
		width:  width,
		height: height,
	}
	s.Clear(bg)
	return s
}

// Begin redirects draw calls into the surface.
func (s *TrailSurface) Begin() {
	rl.BeginTextureMode(s.target)
}

// End restores the default render target.
func (s *TrailSurface) End() {
	rl.EndTextureMode()
}

// Clear repaints the whole surface in the background color.
func (s *TrailSurface) Clear(bg color.RGBA) {
	rl.BeginTextureMode(s.target)
	rl.ClearBackground(rl.Color{R: bg.R, G: bg.G, B: bg.B, A: 255})
	rl.EndTextureMode()
}

// Blit draws the accumulated surface to the screen. Render textures
// are stored upside down, so the source rect flips vertically.
func (s *TrailSurface) Blit() {
	rl.DrawTextureRec(
		s.target.Texture,
		rl.Rectangle{X: 0, Y: 0, Width: float32(s.width), Height: -float32(s.height)},
		rl.Vector2{X: 0, Y: 0},
		rl.White,
	)
}

// Unload frees the render target.
func (s *TrailSurface) Unload() {
	rl.UnloadRenderTexture(s.target)
}
