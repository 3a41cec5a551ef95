package systems

import (
	"image/color"
	"math"
	"testing"
)

// recordingCanvas captures draw requests for assertions.
type recordingCanvas struct {
	lines  []recordedLine
	points []recordedPoint
}

type recordedLine struct {
	x0, y0, x1, y1 float64
	color          color.RGBA
	alpha          uint8
}

type recordedPoint struct {
	x, y  float64
	color color.RGBA
}

func (r *recordingCanvas) DrawLine(x0, y0, x1, y1 float64, c color.RGBA, alpha uint8, width float64) {
	r.lines = append(r.lines, recordedLine{x0, y0, x1, y1, c, alpha})
}

func (r *recordingCanvas) DrawPoint(x, y float64, c color.RGBA, alpha uint8, size float64) {
	r.points = append(r.points, recordedPoint{x, y, c})
}

func (r *recordingCanvas) reset() {
	r.lines = r.lines[:0]
	r.points = r.points[:0]
}

func testProfile(id string, palette []color.RGBA, poolSize int) Profile {
	return Profile{
		ID:               id,
		Name:             id,
		Movement:         "test",
		Palette:          palette,
		Background:       color.RGBA{A: 255},
		SpeedRange:       [2]float64{1.5, 3},
		StrokeWidthRange: [2]float64{1, 3},
		LifespanRange:    [2]int{100, 300},
		Opacity:          80,
		NoiseScale:       0.03,
		AngleMultiplier:  1,
		PoolSize:         poolSize,
	}
}

func testOptions() Options {
	return Options{
		Width:    800,
		Height:   600,
		CellSize: 15,
		TimeStep: 0.002,
		Noise:    NewPerlinNoise(11),
		Seed:     11,
	}
}

var (
	redPalette  = []color.RGBA{{R: 200, G: 50, B: 50, A: 255}}
	bluePalette = []color.RGBA{{R: 50, G: 100, B: 180, A: 255}}
)

func TestParticleSystemPoolInvariant(t *testing.T) {
	s, err := NewParticleSystem(testOptions(), testProfile("red", redPalette, 200))
	if err != nil {
		t.Fatal(err)
	}

	if len(s.Pool()) != 200 {
		t.Fatalf("initial pool size = %d, want 200", len(s.Pool()))
	}
	canvas := NullCanvas{}
	for i := 0; i < 1000; i++ {
		s.Tick(canvas)
		if len(s.Pool()) != 200 {
			t.Fatalf("pool size = %d after tick %d, want 200", len(s.Pool()), i+1)
		}
	}
}

func TestParticleSystemZeroPoolNoOp(t *testing.T) {
	s, err := NewParticleSystem(testOptions(), testProfile("empty", redPalette, 0))
	if err != nil {
		t.Fatal(err)
	}

	canvas := &recordingCanvas{}
	for i := 0; i < 10; i++ {
		stats := s.Tick(canvas)
		if stats.Respawns != 0 || stats.Wraps != 0 {
			t.Fatalf("empty system produced stats %+v", stats)
		}
	}
	if len(canvas.lines) != 0 || len(canvas.points) != 0 {
		t.Error("empty system produced draw requests")
	}
	// The field must stay inert too, including via the split path.
	s.AdvanceField()
	if got := s.Grid().TimeOffset(); got != 0 {
		t.Errorf("time offset = %g after empty-system ticks, want 0", got)
	}
}

func TestParticleSystemSplitTickPhases(t *testing.T) {
	s, err := NewParticleSystem(testOptions(), testProfile("red", redPalette, 50))
	if err != nil {
		t.Fatal(err)
	}

	// AdvanceField animates the grid, StepParticles moves the pool;
	// the pair is equivalent to one Tick call.
	s.AdvanceField()
	if got := s.Grid().TimeOffset(); math.Abs(got-0.002) > 1e-12 {
		t.Errorf("time offset = %g after AdvanceField, want 0.002", got)
	}

	canvas := &recordingCanvas{}
	stats := s.StepParticles(canvas)
	if len(canvas.lines) != 50 {
		t.Errorf("drew %d lines, want 50", len(canvas.lines))
	}
	if stats.Respawns != 0 {
		t.Errorf("respawns = %d on first step, want 0", stats.Respawns)
	}
	if got := s.Grid().TimeOffset(); math.Abs(got-0.002) > 1e-12 {
		t.Errorf("StepParticles moved the time offset to %g", got)
	}
}

func TestParticleSystemProfileSwitchResetsPool(t *testing.T) {
	s, err := NewParticleSystem(testOptions(), testProfile("red", redPalette, 150))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		s.Tick(NullCanvas{})
	}

	if err := s.SetProfile(testProfile("blue", bluePalette, 150)); err != nil {
		t.Fatal(err)
	}

	for i, p := range s.Pool() {
		if p.Color != bluePalette[0] {
			t.Fatalf("particle %d kept old palette color %v", i, p.Color)
		}
		if p.Age != 0 {
			t.Fatalf("particle %d kept age %d after profile switch", i, p.Age)
		}
	}
}

func TestParticleSystemSetProfileRejectsInvalid(t *testing.T) {
	s, err := NewParticleSystem(testOptions(), testProfile("red", redPalette, 10))
	if err != nil {
		t.Fatal(err)
	}

	bad := testProfile("bad", nil, 10)
	if err := s.SetProfile(bad); err == nil {
		t.Error("expected error for empty palette")
	}
	// The old profile must survive a rejected switch
	if s.Profile().ID != "red" {
		t.Errorf("active profile = %q, want red", s.Profile().ID)
	}
}

func TestParticleSystemTrailSegmentsStayShort(t *testing.T) {
	profile := testProfile("red", redPalette, 100)
	s, err := NewParticleSystem(testOptions(), profile)
	if err != nil {
		t.Fatal(err)
	}

	canvas := &recordingCanvas{}
	maxLen := profile.SpeedRange[1] + 1e-9
	for i := 0; i < 300; i++ {
		canvas.reset()
		s.Tick(canvas)
		for _, l := range canvas.lines {
			d := math.Hypot(l.x1-l.x0, l.y1-l.y0)
			if d > maxLen {
				t.Fatalf("tick %d drew a %g-long segment, max speed is %g (wrap streak?)",
					i, d, profile.SpeedRange[1])
			}
		}
	}
}

func TestParticleSystemPointModeDrawsPoints(t *testing.T) {
	s, err := NewParticleSystem(testOptions(), testProfile("red", redPalette, 50))
	if err != nil {
		t.Fatal(err)
	}
	s.ToggleTrails(false)

	canvas := &recordingCanvas{}
	s.Tick(canvas)

	if len(canvas.lines) != 0 {
		t.Errorf("point mode drew %d lines", len(canvas.lines))
	}
	if len(canvas.points) != 50 {
		t.Errorf("drew %d points, want 50", len(canvas.points))
	}
}

func TestParticleSystemFieldOverlay(t *testing.T) {
	s, err := NewParticleSystem(testOptions(), testProfile("red", redPalette, 1))
	if err != nil {
		t.Fatal(err)
	}
	s.ToggleFieldOverlay(true)

	canvas := &recordingCanvas{}
	s.Tick(canvas)

	// One shaft plus two arrowhead barbs per cell, plus one trail line.
	cells := s.Grid().Cols() * s.Grid().Rows()
	want := cells*3 + 1
	if len(canvas.lines) != want {
		t.Errorf("drew %d lines with overlay enabled, want %d", len(canvas.lines), want)
	}
}

func TestParticleSystemConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		opts func(Options) Options
	}{
		{"zero width", func(o Options) Options { o.Width = 0; return o }},
		{"negative height", func(o Options) Options { o.Height = -600; return o }},
		{"zero cell size", func(o Options) Options { o.CellSize = 0; return o }},
		{"nil noise", func(o Options) Options { o.Noise = nil; return o }},
		{"zero time step", func(o Options) Options { o.TimeStep = 0; return o }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParticleSystem(tt.opts(testOptions()), testProfile("red", redPalette, 10))
			if err == nil {
				t.Error("expected configuration error, got nil")
			}
		})
	}
}

func TestParticleSystemEndToEnd(t *testing.T) {
	s, err := NewParticleSystem(testOptions(), testProfile("red", redPalette, 200))
	if err != nil {
		t.Fatal(err)
	}

	respawns := 0
	for i := 0; i < 400; i++ {
		stats := s.Tick(NullCanvas{})
		respawns += stats.Respawns
	}

	if len(s.Pool()) != 200 {
		t.Errorf("pool size = %d, want 200", len(s.Pool()))
	}
	for i, p := range s.Pool() {
		if p.X < 0 || p.X >= 800 || p.Y < 0 || p.Y >= 600 {
			t.Errorf("particle %d at (%g, %g), outside [0,800)x[0,600)", i, p.X, p.Y)
		}
		if p.Age < 0 || p.Age > p.Lifespan {
			t.Errorf("particle %d age %d outside [0, %d]", i, p.Age, p.Lifespan)
		}
	}
	// 400 ticks with lifespans in [100, 300] must cycle the pool at least once
	if respawns == 0 {
		t.Error("no respawns over 400 ticks")
	}
}
