// Flow field preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/MichailSemoglou/encre/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 640
	panelWidth   = windowWidth - previewSize - 30
)

// FieldParams holds the tunable flow field parameters.
type FieldParams struct {
	CellSize        float32
	NoiseScale      float32
	AngleMultiplier float32
	TimeStep        float32
	Seed            int64
	Simplex         bool
}

func defaultParams() FieldParams {
	return FieldParams{
		CellSize:        20,
		NoiseScale:      0.05,
		AngleMultiplier: 1,
		TimeStep:        0.002,
		Seed:            12345,
	}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Flow Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := defaultParams()
	grid, noise := rebuild(params)
	animating := true

	for !rl.WindowShouldClose() {
		if animating {
			grid.Advance(float64(params.TimeStep))
		}
		grid.Update(noise, float64(params.NoiseScale), float64(params.AngleMultiplier))

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawField(grid)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Grid: %dx%d  Time: %.2f", grid.Cols(), grid.Rows(), grid.TimeOffset()),
			15, statsY, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Flow Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		rl.DrawText("Cell size (canvas units per cell)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newCell := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"5", "60",
			params.CellSize, 5, 60,
		)
		rl.DrawText(fmt.Sprintf("%.0f", params.CellSize), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newCell != params.CellSize {
			params.CellSize = newCell
			grid, noise = rebuild(params)
		}
		panelY += 35

		rl.DrawText("Noise scale (smaller = smoother swirls)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newScale := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.005", "0.2",
			params.NoiseScale, 0.005, 0.2,
		)
		rl.DrawText(fmt.Sprintf("%.3f", params.NoiseScale), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newScale != params.NoiseScale {
			params.NoiseScale = newScale
		}
		panelY += 35

		rl.DrawText("Angle multiplier (swirl tightness)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newMult := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.5", "4.0",
			params.AngleMultiplier, 0.5, 4.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.AngleMultiplier), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newMult != params.AngleMultiplier {
			params.AngleMultiplier = newMult
		}
		panelY += 35

		rl.DrawText("Time step (animation speed)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newStep := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.0005", "0.0100",
			params.TimeStep, 0.0005, 0.01,
		)
		rl.DrawText(fmt.Sprintf("%.4f", params.TimeStep), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newStep != params.TimeStep {
			params.TimeStep = newStep
		}
		panelY += 45

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 99999))
			grid, noise = rebuild(params)
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(params.Simplex, "Simplex", "Perlin")) {
			params.Simplex = !params.Simplex
			grid, noise = rebuild(params)
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			grid, noise = rebuild(params)
		}
		panelY += 55

		// Profile YAML snippet for copy into config
		rl.DrawText("Profile YAML:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		yamlLines := []string{
			fmt.Sprintf("noise_scale: %.3f", params.NoiseScale),
			fmt.Sprintf("angle_multiplier: %.2f", params.AngleMultiplier),
			"field:",
			fmt.Sprintf("  cell_size: %.0f", params.CellSize),
			fmt.Sprintf("  time_step: %.4f", params.TimeStep),
		}
		for _, line := range yamlLines {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.EndDrawing()
	}
}

// rebuild recreates the grid and noise after a structural change.
func rebuild(params FieldParams) (*systems.FlowGrid, systems.NoiseField) {
	algorithm := systems.NoisePerlin
	if params.Simplex {
		algorithm = systems.NoiseSimplex
	}
	noise, err := systems.NewNoiseField(algorithm, params.Seed)
	if err != nil {
		panic(err)
	}
	grid, err := systems.NewFlowGrid(previewSize, previewSize, float64(params.CellSize))
	if err != nil {
		panic(err)
	}
	return grid, noise
}

// drawField renders one direction arrow per cell inside the preview rect.
func drawField(grid *systems.FlowGrid) {
	cell := grid.CellSize()
	for j := 0; j < grid.Rows(); j++ {
		for i := 0; i < grid.Cols(); i++ {
			cx := 10 + float64(i)*cell + cell/2
			cy := 10 + float64(j)*cell + cell/2
			angle := grid.AngleAt(float64(i)*cell, float64(j)*cell)

			tipX := cx + math.Cos(angle)*cell*0.4
			tipY := cy + math.Sin(angle)*cell*0.4

			rl.DrawLineEx(
				rl.Vector2{X: float32(cx), Y: float32(cy)},
				rl.Vector2{X: float32(tipX), Y: float32(tipY)},
				1.5,
				rl.Color{R: 60, G: 60, B: 80, A: 180},
			)
			rl.DrawCircleV(rl.Vector2{X: float32(tipX), Y: float32(tipY)}, 1.5,
				rl.Color{R: 60, G: 60, B: 80, A: 220})
		}
	}
}

func toggleText(cond bool, whenTrue, whenFalse string) string {
	if cond {
		return whenTrue
	}
	return whenFalse
}
