// Package ui renders the on-screen info panel and tuning controls.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/MichailSemoglou/encre/systems"
)

// HUD renders the artist info panel in the top-left corner.
type HUD struct {
	visible bool
}

// NewHUD creates the info panel, visible by default.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Toggle switches panel visibility and returns the new state.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// Draw renders the panel for the active profile.
func (h *HUD) Draw(profile systems.Profile, tick int, trails, fieldOverlay, paused bool) {
	if !h.visible {
		return
	}

	rl.DrawRectangleRounded(rl.Rectangle{X: 15, Y: 15, Width: 290, Height: 130}, 0.15, 8,
		rl.Color{R: 255, G: 255, B: 255, A: 220})

	rl.DrawText(profile.Name, 25, 27, 18, rl.Black)
	rl.DrawText(profile.Movement, 25, 50, 12, rl.Gray)

	rl.DrawText(fmt.Sprintf("Particles: %d  Tick: %d", profile.PoolSize, tick), 25, 72, 11, rl.DarkGray)
	rl.DrawText(onOff("Trails", trails), 130, 72, 11, rl.DarkGray)
	rl.DrawText(onOff("Field", fieldOverlay), 210, 72, 11, rl.DarkGray)

	// Palette swatches
	rl.DrawText("Palette:", 25, 95, 11, rl.DarkGray)
	for i, c := range profile.Palette {
		rl.DrawRectangleRounded(
			rl.Rectangle{X: float32(78 + i*26), Y: 92, Width: 20, Height: 15}, 0.3, 4,
			rl.Color{R: c.R, G: c.G, B: c.B, A: 255})
	}

	rl.DrawText("1-4 artists | f field | t trails | s save", 25, 120, 10, rl.Gray)

	if paused {
		rl.DrawText("PAUSED", 25, 150, 14, rl.Orange)
	}
}

func onOff(label string, v bool) string {
	if v {
		return label + ": ON"
	}
	return label + ": OFF"
}
