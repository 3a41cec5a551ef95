package systems

import (
	"math"
	"testing"
)

// constNoise returns a fixed value everywhere.
type constNoise float64

func (c constNoise) Sample(x, y, z float64) float64 { return float64(c) }

func TestNewFlowGridDimensions(t *testing.T) {
	tests := []struct {
		name     string
		w, h     float64
		cellSize float64
		cols     int
		rows     int
	}{
		{"exact fit", 800, 600, 20, 40, 30},
		{"partial cell rounds up", 810, 605, 20, 41, 31},
		{"single cell", 10, 10, 15, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewFlowGrid(tt.w, tt.h, tt.cellSize)
			if err != nil {
				t.Fatalf("NewFlowGrid error: %v", err)
			}
			if g.Cols() != tt.cols || g.Rows() != tt.rows {
				t.Errorf("grid = %dx%d, want %dx%d", g.Cols(), g.Rows(), tt.cols, tt.rows)
			}
		})
	}
}

func TestNewFlowGridConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		w, h     float64
		cellSize float64
	}{
		{"zero width", 0, 600, 15},
		{"negative width", -800, 600, 15},
		{"zero height", 800, 0, 15},
		{"negative height", 800, -600, 15},
		{"zero cell size", 800, 600, 0},
		{"negative cell size", 800, 600, -15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFlowGrid(tt.w, tt.h, tt.cellSize); err == nil {
				t.Error("expected configuration error, got nil")
			}
		})
	}
}

func TestFlowGridUpdateAngle(t *testing.T) {
	g, err := NewFlowGrid(100, 100, 10)
	if err != nil {
		t.Fatal(err)
	}

	// With constant noise 0.5 and multiplier 2, every cell angle is
	// 0.5 * 2pi * 2 = 2pi.
	g.Update(constNoise(0.5), 0.1, 2)

	want := 0.5 * 2 * math.Pi * 2
	for y := 0.0; y < 100; y += 10 {
		for x := 0.0; x < 100; x += 10 {
			if got := g.AngleAt(x, y); math.Abs(got-want) > 1e-12 {
				t.Fatalf("AngleAt(%g, %g) = %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestFlowGridAngleAtBounds(t *testing.T) {
	g, err := NewFlowGrid(800, 600, 15)
	if err != nil {
		t.Fatal(err)
	}
	g.Update(constNoise(0.25), 0.1, 1)

	// Coordinates on and beyond every edge must clamp, never panic.
	coords := [][2]float64{
		{0, 0},
		{799, 599},
		{800, 600},
		{1000, 1000},
		{-5, -5},
		{-5, 599},
		{799, -5},
	}
	for _, c := range coords {
		got := g.AngleAt(c[0], c[1])
		want := 0.25 * 2 * math.Pi
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("AngleAt(%g, %g) = %g, want %g", c[0], c[1], got, want)
		}
	}
}

func TestFlowGridAdvance(t *testing.T) {
	g, err := NewFlowGrid(100, 100, 10)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		g.Advance(0.002)
	}
	if math.Abs(g.TimeOffset()-0.02) > 1e-12 {
		t.Errorf("TimeOffset = %g, want 0.02", g.TimeOffset())
	}
}

func TestFlowGridAnimatesOverTime(t *testing.T) {
	g, err := NewFlowGrid(200, 200, 20)
	if err != nil {
		t.Fatal(err)
	}
	noise := NewPerlinNoise(99)

	g.Update(noise, 0.1, 1)
	before := make([]float64, 0, g.Cols()*g.Rows())
	for j := 0; j < g.Rows(); j++ {
		for i := 0; i < g.Cols(); i++ {
			before = append(before, g.AngleAt(float64(i*20), float64(j*20)))
		}
	}

	g.Advance(0.5)
	g.Update(noise, 0.1, 1)

	changed := 0
	idx := 0
	for j := 0; j < g.Rows(); j++ {
		for i := 0; i < g.Cols(); i++ {
			if g.AngleAt(float64(i*20), float64(j*20)) != before[idx] {
				changed++
			}
			idx++
		}
	}
	if changed == 0 {
		t.Error("no cell changed after advancing the time offset")
	}
}
