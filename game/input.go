package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	// Profile selection on number keys, in config order
	for i := range g.profiles {
		if i >= 9 {
			break
		}
		if rl.IsKeyPressed(int32(rl.KeyOne) + int32(i)) {
			g.switchProfile(i)
		}
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-frame control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerFrame > 1 {
		g.stepsPerFrame--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerFrame < 10 {
		g.stepsPerFrame++
	}

	if rl.IsKeyPressed(rl.KeyF) {
		g.system.ToggleFieldOverlay(!g.system.FieldOverlayEnabled())
	}
	if rl.IsKeyPressed(rl.KeyT) {
		g.system.ToggleTrails(!g.system.TrailsEnabled())
		// Stale trails would linger under point rendering
		g.surface.Clear(g.system.Profile().Background)
	}
	if rl.IsKeyPressed(rl.KeyI) {
		g.hud.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		g.controls.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.system.Reset()
		g.surface.Clear(g.system.Profile().Background)
	}
	if rl.IsKeyPressed(rl.KeyS) {
		g.saveImage()
	}
}
