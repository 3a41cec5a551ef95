package game

import (
	"fmt"
	"image/color"

	"github.com/MichailSemoglou/encre/config"
	"github.com/MichailSemoglou/encre/systems"
)

// profileFromConfig converts a raw YAML profile into a validated
// runtime profile.
func profileFromConfig(pc config.ProfileConfig) (systems.Profile, error) {
	palette := make([]color.RGBA, 0, len(pc.Palette))
	for _, hex := range pc.Palette {
		c, err := systems.ParseHexColor(hex)
		if err != nil {
			return systems.Profile{}, fmt.Errorf("profile %q: %w", pc.ID, err)
		}
		palette = append(palette, c)
	}

	bg := color.RGBA{A: 255}
	if pc.Background != "" {
		c, err := systems.ParseHexColor(pc.Background)
		if err != nil {
			return systems.Profile{}, fmt.Errorf("profile %q background: %w", pc.ID, err)
		}
		bg = c
	}

	p := systems.Profile{
		ID:               pc.ID,
		Name:             pc.Name,
		Movement:         pc.Movement,
		Palette:          palette,
		Background:       bg,
		SpeedRange:       pc.SpeedRange,
		StrokeWidthRange: pc.StrokeWidthRange,
		LifespanRange:    pc.LifespanRange,
		Opacity:          uint8(pc.Opacity),
		NoiseScale:       pc.NoiseScale,
		AngleMultiplier:  pc.AngleMultiplier,
		PoolSize:         pc.PoolSize,
	}
	if err := p.Validate(); err != nil {
		return systems.Profile{}, err
	}
	return p, nil
}

// BuildProfiles converts every configured profile, preserving order.
func BuildProfiles(cfg *config.Config) ([]systems.Profile, error) {
	profiles := make([]systems.Profile, 0, len(cfg.Profiles))
	for _, pc := range cfg.Profiles {
		p, err := profileFromConfig(pc)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
