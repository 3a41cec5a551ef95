package systems

import (
	"image/color"
	"math"
	"math/rand"
)

// Particle is a single advected particle. It carries its previous
// position so trail-rendering consumers can draw one segment per tick.
type Particle struct {
	X, Y         float64
	PrevX, PrevY float64
	VelX, VelY   float64

	MaxSpeed    float64
	Color       color.RGBA
	StrokeWidth float64

	Age      int
	Lifespan int
}

// newParticle constructs a particle with randomized position and
// visual attributes drawn from the profile.
func newParticle(p *Profile, width, height float64, rng *rand.Rand) Particle {
	x := rng.Float64() * width
	y := rng.Float64() * height

	return Particle{
		X:           x,
		Y:           y,
		PrevX:       x,
		PrevY:       y,
		MaxSpeed:    randRange(rng, p.SpeedRange),
		Color:       p.Palette[rng.Intn(len(p.Palette))],
		StrokeWidth: randRange(rng, p.StrokeWidthRange),
		Lifespan:    p.LifespanRange[0] + rng.Intn(p.LifespanRange[1]-p.LifespanRange[0]+1),
	}
}

func randRange(rng *rand.Rand, r [2]float64) float64 {
	return r[0] + rng.Float64()*(r[1]-r[0])
}

// Advect sets velocity from the flow field angle at the particle's
// current cell.
func (p *Particle) Advect(grid *FlowGrid) {
	angle := grid.AngleAt(p.X, p.Y)
	p.VelX = math.Cos(angle) * p.MaxSpeed
	p.VelY = math.Sin(angle) * p.MaxSpeed
}

// Step advances the particle one tick and applies toroidal wrap.
// When an axis wraps, the previous position on that axis is reset to
// the wrapped value so a trail consumer never draws a streak across
// the canvas. Reports whether any wrap occurred.
func (p *Particle) Step(width, height float64) bool {
	p.PrevX = p.X
	p.PrevY = p.Y

	p.X += p.VelX
	p.Y += p.VelY
	p.Age++

	wrapped := false
	if p.X < 0 {
		p.X += width
		p.PrevX = p.X
		wrapped = true
	} else if p.X >= width {
		p.X -= width
		p.PrevX = p.X
		wrapped = true
	}
	if p.Y < 0 {
		p.Y += height
		p.PrevY = p.Y
		wrapped = true
	} else if p.Y >= height {
		p.Y -= height
		p.PrevY = p.Y
		wrapped = true
	}
	return wrapped
}

// Expired reports whether the particle has reached its lifespan.
func (p *Particle) Expired() bool {
	return p.Age >= p.Lifespan
}

// RenderAlpha maps age linearly from [0, lifespan] onto [opacity, 0]
// so particles fade out instead of disappearing abruptly.
func (p *Particle) RenderAlpha(opacity uint8) uint8 {
	lifeLeft := 1 - float64(p.Age)/float64(p.Lifespan)
	if lifeLeft < 0 {
		lifeLeft = 0
	}
	return uint8(float64(opacity) * lifeLeft)
}
