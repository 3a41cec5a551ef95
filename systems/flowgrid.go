package systems

import (
	"fmt"
	"math"
)

// FlowGrid is a 2D grid of direction angles covering the canvas.
// Angles are recomputed in place every tick from a NoiseField; the
// grid is sized once at construction and never resized.
type FlowGrid struct {
	width    float64
	height   float64
	cellSize float64
	cols     int
	rows     int

	timeOffset float64
	angles     []float64 // row-major, radians
}

// NewFlowGrid creates a grid covering a width x height canvas.
// Returns a configuration error for non-positive dimensions or cell size.
func NewFlowGrid(width, height, cellSize float64) (*FlowGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("flow grid: canvas dimensions must be positive, got %gx%g", width, height)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("flow grid: cell size must be positive, got %g", cellSize)
	}

	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))

	return &FlowGrid{
		width:    width,
		height:   height,
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		angles:   make([]float64, cols*rows),
	}, nil
}

// Cols returns the number of grid columns.
func (g *FlowGrid) Cols() int { return g.cols }

// Rows returns the number of grid rows.
func (g *FlowGrid) Rows() int { return g.rows }

// CellSize returns the canvas units per cell.
func (g *FlowGrid) CellSize() float64 { return g.cellSize }

// TimeOffset returns the current temporal coordinate.
func (g *FlowGrid) TimeOffset() float64 { return g.timeOffset }

// Advance moves the temporal coordinate forward. Called once per tick
// by the owning system; dt is small (0.002-0.008) so the swirl
// animates slowly.
func (g *FlowGrid) Advance(dt float64) {
	g.timeOffset += dt
}

// Update recomputes every cell angle from the noise field at the
// current time offset. noiseScale controls spatial smoothness,
// angleMultiplier tightens or loosens the swirl.
func (g *FlowGrid) Update(noise NoiseField, noiseScale, angleMultiplier float64) {
	for j := 0; j < g.rows; j++ {
		for i := 0; i < g.cols; i++ {
			n := noise.Sample(float64(i)*noiseScale, float64(j)*noiseScale, g.timeOffset)
			g.angles[j*g.cols+i] = n * 2 * math.Pi * angleMultiplier
		}
	}
}

// AngleAt maps a canvas coordinate to its owning cell and returns that
// cell's angle. Indices are clamped so coordinates on or beyond the
// canvas edge never read out of bounds.
func (g *FlowGrid) AngleAt(x, y float64) float64 {
	col := int(x / g.cellSize)
	row := int(y / g.cellSize)

	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return g.angles[row*g.cols+col]
}

// angleAtCell returns the angle for a cell index without bounds checks.
// Callers iterate over [0,cols) x [0,rows).
func (g *FlowGrid) angleAtCell(col, row int) float64 {
	return g.angles[row*g.cols+col]
}
