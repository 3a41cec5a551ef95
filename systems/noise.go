// Package systems implements the flow-field particle simulation core.
package systems

import (
	"fmt"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// NoiseField is a smooth scalar noise function of two spatial coordinates
// and one temporal coordinate. Sample returns values in [0, 1) and is
// deterministic for a given seed.
type NoiseField interface {
	Sample(x, y, z float64) float64
}

// Noise algorithm names accepted by NewNoiseField.
const (
	NoisePerlin  = "perlin"
	NoiseSimplex = "simplex"
)

// NewNoiseField creates a noise backend by algorithm name.
func NewNoiseField(algorithm string, seed int64) (NoiseField, error) {
	switch algorithm {
	case NoisePerlin:
		return NewPerlinNoise(seed), nil
	case NoiseSimplex:
		return &simplexNoise{noise: opensimplex.NewNormalized(seed)}, nil
	default:
		return nil, fmt.Errorf("unknown noise algorithm %q", algorithm)
	}
}

// simplexNoise wraps opensimplex, which already produces [0, 1] output.
type simplexNoise struct {
	noise opensimplex.Noise
}

func (s *simplexNoise) Sample(x, y, z float64) float64 {
	v := s.noise.Eval3(x, y, z)
	if v >= 1 {
		v = math.Nextafter(1, 0)
	}
	return v
}

// PerlinNoise generates coherent noise from a seeded permutation table.
type PerlinNoise struct {
	perm [512]int
}

// NewPerlinNoise creates a new Perlin noise generator.
func NewPerlinNoise(seed int64) *PerlinNoise {
	p := &PerlinNoise{}
	rng := rand.New(rand.NewSource(seed))

	var perm [256]int
	for i := range perm {
		perm[i] = i
	}

	// Shuffle
	for i := len(perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	// Duplicate to avoid index wrapping in the hash lookups
	for i := 0; i < 256; i++ {
		p.perm[i] = perm[i]
		p.perm[i+256] = perm[i]
	}

	return p
}

// Sample returns a noise value in [0, 1) for 3D coordinates.
func (p *PerlinNoise) Sample(x, y, z float64) float64 {
	// Raw Perlin output lies in [-1, 1]; remap into [0, 1)
	v := (p.noise3D(x, y, z) + 1) * 0.5
	if v < 0 {
		v = 0
	}
	if v >= 1 {
		v = math.Nextafter(1, 0)
	}
	return v
}

func (p *PerlinNoise) noise3D(x, y, z float64) float64 {
	// Find unit cube
	X := int(math.Floor(x)) & 255
	Y := int(math.Floor(y)) & 255
	Z := int(math.Floor(z)) & 255

	// Find relative position in cube
	x -= math.Floor(x)
	y -= math.Floor(y)
	z -= math.Floor(z)

	// Compute fade curves
	u := fade(x)
	v := fade(y)
	w := fade(z)

	// Hash coordinates of cube corners
	A := p.perm[X] + Y
	AA := p.perm[A] + Z
	AB := p.perm[A+1] + Z
	B := p.perm[X+1] + Y
	BA := p.perm[B] + Z
	BB := p.perm[B+1] + Z

	// Blend results from 8 corners
	return lerp(w, lerp(v, lerp(u, grad3D(p.perm[AA], x, y, z),
		grad3D(p.perm[BA], x-1, y, z)),
		lerp(u, grad3D(p.perm[AB], x, y-1, z),
			grad3D(p.perm[BB], x-1, y-1, z))),
		lerp(v, lerp(u, grad3D(p.perm[AA+1], x, y, z-1),
			grad3D(p.perm[BA+1], x-1, y, z-1)),
			lerp(u, grad3D(p.perm[AB+1], x, y-1, z-1),
				grad3D(p.perm[BB+1], x-1, y-1, z-1))))
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad3D(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
