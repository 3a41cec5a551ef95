package systems

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Profile is a named bundle of visual and behavioral parameters
// selecting a generative style. All fields are required; Validate
// rejects incomplete or inconsistent profiles.
type Profile struct {
	ID       string
	Name     string
	Movement string

	Palette    []color.RGBA
	Background color.RGBA

	SpeedRange       [2]float64
	StrokeWidthRange [2]float64
	LifespanRange    [2]int
	Opacity          uint8

	NoiseScale      float64
	AngleMultiplier float64
	PoolSize        int
}

// Validate checks the profile for configuration errors.
func (p *Profile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("profile: missing id")
	}
	if p.Name == "" {
		return fmt.Errorf("profile %q: missing name", p.ID)
	}
	if len(p.Palette) == 0 {
		return fmt.Errorf("profile %q: empty palette", p.ID)
	}
	if p.SpeedRange[0] <= 0 || p.SpeedRange[0] > p.SpeedRange[1] {
		return fmt.Errorf("profile %q: invalid speed range [%g, %g]", p.ID, p.SpeedRange[0], p.SpeedRange[1])
	}
	if p.StrokeWidthRange[0] <= 0 || p.StrokeWidthRange[0] > p.StrokeWidthRange[1] {
		return fmt.Errorf("profile %q: invalid stroke width range [%g, %g]", p.ID, p.StrokeWidthRange[0], p.StrokeWidthRange[1])
	}
	if p.LifespanRange[0] < 1 || p.LifespanRange[0] > p.LifespanRange[1] {
		return fmt.Errorf("profile %q: invalid lifespan range [%d, %d]", p.ID, p.LifespanRange[0], p.LifespanRange[1])
	}
	if p.NoiseScale <= 0 {
		return fmt.Errorf("profile %q: noise scale must be positive, got %g", p.ID, p.NoiseScale)
	}
	if p.AngleMultiplier <= 0 {
		return fmt.Errorf("profile %q: angle multiplier must be positive, got %g", p.ID, p.AngleMultiplier)
	}
	if p.PoolSize < 0 {
		return fmt.Errorf("profile %q: pool size must be non-negative, got %d", p.ID, p.PoolSize)
	}
	return nil
}

// ParseHexColor parses a "#RRGGBB" or "RRGGBB" string into an opaque RGBA.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
