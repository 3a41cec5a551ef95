package systems

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
)

// TickStats summarizes one simulation tick for telemetry.
type TickStats struct {
	Respawns int
	Wraps    int
}

// ParticleSystem owns a fixed-size pool of particles advected through a
// noise-driven flow grid. One Tick call per animation frame; all state
// is mutated sequentially within that call.
type ParticleSystem struct {
	width  float64
	height float64

	grid    *FlowGrid
	noise   NoiseField
	profile Profile
	rng     *rand.Rand

	pool     []Particle
	timeStep float64

	trails       bool
	fieldOverlay bool
}

// Options configures a new particle system.
type Options struct {
	Width    float64
	Height   float64
	CellSize float64
	TimeStep float64 // time offset increment per tick
	Noise    NoiseField
	Seed     int64
}

// NewParticleSystem constructs a system with the given profile.
// Configuration errors (bad dimensions, bad cell size, invalid
// profile) are fatal here; Tick never fails afterwards.
func NewParticleSystem(opts Options, profile Profile) (*ParticleSystem, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if opts.Noise == nil {
		return nil, fmt.Errorf("particle system: noise field is required")
	}
	if opts.TimeStep <= 0 {
		return nil, fmt.Errorf("particle system: time step must be positive, got %g", opts.TimeStep)
	}

	grid, err := NewFlowGrid(opts.Width, opts.Height, opts.CellSize)
	if err != nil {
		return nil, err
	}

	s := &ParticleSystem{
		width:    opts.Width,
		height:   opts.Height,
		grid:     grid,
		noise:    opts.Noise,
		profile:  profile,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		timeStep: opts.TimeStep,
		trails:   true,
	}
	s.rebuildPool()
	return s, nil
}

// rebuildPool reconstructs every particle from the active profile.
func (s *ParticleSystem) rebuildPool() {
	s.pool = make([]Particle, s.profile.PoolSize)
	for i := range s.pool {
		s.pool[i] = newParticle(&s.profile, s.width, s.height, s.rng)
	}
}

// Profile returns the active profile.
func (s *ParticleSystem) Profile() Profile { return s.profile }

// Pool returns the particle pool for inspection. Callers must not
// mutate it; telemetry reads ages and speeds between ticks.
func (s *ParticleSystem) Pool() []Particle { return s.pool }

// Grid returns the owned flow grid.
func (s *ParticleSystem) Grid() *FlowGrid { return s.grid }

// TrailsEnabled reports whether trail rendering is active.
func (s *ParticleSystem) TrailsEnabled() bool { return s.trails }

// FieldOverlayEnabled reports whether the field overlay is active.
func (s *ParticleSystem) FieldOverlayEnabled() bool { return s.fieldOverlay }

// ToggleTrails switches between trail-line and point rendering.
func (s *ParticleSystem) ToggleTrails(enabled bool) { s.trails = enabled }

// ToggleFieldOverlay switches the per-cell direction arrows.
func (s *ParticleSystem) ToggleFieldOverlay(enabled bool) { s.fieldOverlay = enabled }

// SetProfile swaps the active profile and rebuilds the entire pool.
// Old particles are never carried over into a new style.
func (s *ParticleSystem) SetProfile(profile Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	s.profile = profile
	s.rebuildPool()
	return nil
}

// Reset rebuilds the pool under the current profile.
func (s *ParticleSystem) Reset() {
	s.rebuildPool()
}

// SetTimeStep adjusts the per-tick time offset increment.
func (s *ParticleSystem) SetTimeStep(dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("particle system: time step must be positive, got %g", dt)
	}
	s.timeStep = dt
	return nil
}

// SetFieldParams adjusts the noise scale and angle multiplier of the
// active profile between ticks. Unlike SetProfile this is a tuning
// path: grid parameters change, the particle pool is left alone.
func (s *ParticleSystem) SetFieldParams(noiseScale, angleMultiplier float64) error {
	if noiseScale <= 0 {
		return fmt.Errorf("particle system: noise scale must be positive, got %g", noiseScale)
	}
	if angleMultiplier <= 0 {
		return fmt.Errorf("particle system: angle multiplier must be positive, got %g", angleMultiplier)
	}
	s.profile.NoiseScale = noiseScale
	s.profile.AngleMultiplier = angleMultiplier
	return nil
}

// Tick advances the simulation one frame: animate the field, advect
// and age every particle, render it, and replace it in place when
// expired. The pool length is invariant across the call. A zero-size
// pool makes Tick a no-op.
func (s *ParticleSystem) Tick(canvas Canvas) TickStats {
	s.AdvanceField()
	return s.StepParticles(canvas)
}

// AdvanceField animates the flow grid one time step. Split out of
// Tick so the host loop can time it separately.
func (s *ParticleSystem) AdvanceField() {
	if len(s.pool) == 0 {
		return
	}
	s.grid.Advance(s.timeStep)
	s.grid.Update(s.noise, s.profile.NoiseScale, s.profile.AngleMultiplier)
}

// StepParticles advects, ages, and renders the pool against the
// current field state.
func (s *ParticleSystem) StepParticles(canvas Canvas) TickStats {
	var stats TickStats
	if len(s.pool) == 0 {
		return stats
	}

	if s.fieldOverlay {
		s.drawFieldOverlay(canvas)
	}

	for i := range s.pool {
		p := &s.pool[i]
		p.Advect(s.grid)
		if p.Step(s.width, s.height) {
			stats.Wraps++
		}
		s.drawParticle(canvas, p)

		if p.Expired() {
			s.pool[i] = newParticle(&s.profile, s.width, s.height, s.rng)
			stats.Respawns++
		}
	}
	return stats
}

func (s *ParticleSystem) drawParticle(canvas Canvas, p *Particle) {
	alpha := p.RenderAlpha(s.profile.Opacity)
	if s.trails {
		canvas.DrawLine(p.PrevX, p.PrevY, p.X, p.Y, p.Color, alpha, p.StrokeWidth)
	} else {
		canvas.DrawPoint(p.X, p.Y, p.Color, alpha, p.StrokeWidth*2)
	}
}

// drawFieldOverlay renders a direction arrow for every cell.
func (s *ParticleSystem) drawFieldOverlay(canvas Canvas) {
	overlay := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	cell := s.grid.CellSize()

	for j := 0; j < s.grid.Rows(); j++ {
		for i := 0; i < s.grid.Cols(); i++ {
			angle := s.grid.angleAtCell(i, j)
			cx := float64(i)*cell + cell/2
			cy := float64(j)*cell + cell/2

			dx := math.Cos(angle)
			dy := math.Sin(angle)
			tipX := cx + dx*cell*0.4
			tipY := cy + dy*cell*0.4

			canvas.DrawLine(cx, cy, tipX, tipY, overlay, 100, 1)

			// Arrow head: two short barbs off the tip
			backX := cx + dx*cell*0.3
			backY := cy + dy*cell*0.3
			canvas.DrawLine(tipX, tipY, backX-dy*3, backY+dx*3, overlay, 100, 1)
			canvas.DrawLine(tipX, tipY, backX+dy*3, backY-dx*3, overlay, 100, 1)
		}
	}
}
