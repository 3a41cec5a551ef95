package game

import (
	"testing"

	"github.com/MichailSemoglou/encre/config"
)

func TestBuildProfilesFromDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	profiles, err := BuildProfiles(cfg)
	if err != nil {
		t.Fatalf("BuildProfiles: %v", err)
	}
	if len(profiles) != 4 {
		t.Fatalf("got %d profiles, want 4", len(profiles))
	}

	monet := profiles[0]
	if monet.ID != "monet" {
		t.Errorf("first profile = %q, want monet (config order)", monet.ID)
	}
	if len(monet.Palette) != 5 {
		t.Errorf("monet palette = %d colors, want 5", len(monet.Palette))
	}
	// #8EB2C5 sky blue
	if c := monet.Palette[0]; c.R != 0x8E || c.G != 0xB2 || c.B != 0xC5 || c.A != 255 {
		t.Errorf("monet palette[0] = %v", c)
	}
	if monet.Background.R != 0xD2 {
		t.Errorf("monet background = %v", monet.Background)
	}

	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			t.Errorf("profile %q invalid: %v", p.ID, err)
		}
	}
}

func TestProfileFromConfigRejectsBadColor(t *testing.T) {
	pc := config.ProfileConfig{
		ID:               "bad",
		Name:             "Bad",
		Palette:          []string{"#GGGGGG"},
		SpeedRange:       [2]float64{1, 2},
		StrokeWidthRange: [2]float64{1, 2},
		LifespanRange:    [2]int{10, 20},
		Opacity:          100,
		NoiseScale:       0.05,
		AngleMultiplier:  1,
		PoolSize:         10,
	}
	if _, err := profileFromConfig(pc); err == nil {
		t.Error("expected error for malformed hex color")
	}
}

func TestProfileFromConfigRejectsMissingFields(t *testing.T) {
	// A profile missing any required field must be rejected
	pc := config.ProfileConfig{ID: "sparse", Name: "Sparse"}
	if _, err := profileFromConfig(pc); err == nil {
		t.Error("expected error for profile with missing fields")
	}
}
