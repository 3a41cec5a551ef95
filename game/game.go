// Package game wires the particle system, rendering, input and
// telemetry into the host animation loop.
package game

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/MichailSemoglou/encre/config"
	"github.com/MichailSemoglou/encre/renderer"
	"github.com/MichailSemoglou/encre/systems"
	"github.com/MichailSemoglou/encre/telemetry"
	"github.com/MichailSemoglou/encre/ui"
)

// Options configures a new game.
type Options struct {
	Seed      int64
	Profile   string // starting profile id ("" = config default)
	Headless  bool
	LogStats  bool
	OutputDir string
}

// Game owns the simulation and everything around it.
type Game struct {
	cfg *config.Config

	system   *systems.ParticleSystem
	profiles []systems.Profile
	active   int

	canvas     systems.Canvas
	surface    *renderer.TrailSurface
	background *renderer.Background
	hud        *ui.HUD
	controls   *ui.ControlsPanel
	tuning     ui.Tuning

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	tick          int
	paused        bool
	stepsPerFrame int
	headless      bool
	logStats      bool
}

// NewGameWithOptions builds a game from the loaded config. All
// configuration errors surface here; the frame loop never fails.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	profiles, err := BuildProfiles(cfg)
	if err != nil {
		return nil, err
	}

	startID := opts.Profile
	if startID == "" {
		startID = cfg.DefaultProfile
	}
	active, ok := cfg.Derived.ProfileIndex[startID]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q", startID)
	}

	noise, err := systems.NewNoiseField(cfg.Noise.Algorithm, opts.Seed)
	if err != nil {
		return nil, err
	}

	system, err := systems.NewParticleSystem(systems.Options{
		Width:    cfg.Derived.ScreenW,
		Height:   cfg.Derived.ScreenH,
		CellSize: cfg.Field.CellSize,
		TimeStep: cfg.Field.TimeStep,
		Noise:    noise,
		Seed:     opts.Seed,
	}, profiles[active])
	if err != nil {
		return nil, err
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	dt := 1.0 / float64(cfg.Screen.TargetFPS)
	g := &Game{
		cfg:           cfg,
		system:        system,
		profiles:      profiles,
		active:        active,
		canvas:        systems.NullCanvas{},
		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow, dt),
		perf:          telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		output:        output,
		stepsPerFrame: 1,
		headless:      opts.Headless,
		logStats:      opts.LogStats,
	}
	g.tuning = tuningFromProfile(profiles[active], cfg.Field.TimeStep)

	if !opts.Headless {
		w := int32(cfg.Screen.Width)
		h := int32(cfg.Screen.Height)
		g.canvas = renderer.NewRaylibCanvas()
		g.surface = renderer.NewTrailSurface(w, h, profiles[active].Background)
		g.background = renderer.NewBackground(w, h)
		g.hud = ui.NewHUD()
		g.controls = ui.NewControlsPanel(float32(w)-260, 20, 240)

		if cfg.Export.Dir != "" {
			if err := os.MkdirAll(cfg.Export.Dir, 0755); err != nil {
				return nil, fmt.Errorf("creating export directory: %w", err)
			}
		}
	}

	slog.Info("game initialized",
		"profile", profiles[active].ID,
		"pool_size", profiles[active].PoolSize,
		"noise", cfg.Noise.Algorithm,
		"grid", fmt.Sprintf("%dx%d", system.Grid().Cols(), system.Grid().Rows()),
	)
	return g, nil
}

func tuningFromProfile(p systems.Profile, timeStep float64) ui.Tuning {
	return ui.Tuning{
		NoiseScale:      float32(p.NoiseScale),
		AngleMultiplier: float32(p.AngleMultiplier),
		TimeStep:        float32(timeStep),
	}
}

// Tick returns the number of completed simulation ticks.
func (g *Game) Tick() int {
	return g.tick
}

// step advances the simulation once, drawing through the given canvas,
// and feeds telemetry.
func (g *Game) step(canvas systems.Canvas) {
	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseField)
	g.system.AdvanceField()
	g.perf.StartPhase(telemetry.PhaseParticles)
	stats := g.system.StepParticles(canvas)
	g.tick++

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordTick(stats)
	if g.collector.ShouldFlush(g.tick) {
		g.flushTelemetry()
	}
	g.perf.EndTick()
}

func (g *Game) flushTelemetry() {
	w := g.collector.Flush(g.tick, g.system)
	if g.logStats {
		w.Log()
	}
	if err := g.output.WriteTelemetry(w); err != nil {
		slog.Error("telemetry write failed", "error", err)
	}
	if err := g.output.WritePerf(g.perf.Stats(), g.tick); err != nil {
		slog.Error("perf write failed", "error", err)
	}
}

// UpdateHeadless advances the simulation without any rendering.
func (g *Game) UpdateHeadless() {
	g.step(systems.NullCanvas{})
}

// Update processes input. Simulation and rendering happen together in
// Draw because particles render through the canvas as they tick.
func (g *Game) Update() {
	g.handleInput()
}

// Draw runs the simulation steps for this frame into the trail surface
// and presents it with the UI on top.
func (g *Game) Draw() {
	g.perf.RecordFrame()

	rl.BeginDrawing()

	if !g.paused {
		for i := 0; i < g.stepsPerFrame; i++ {
			g.surface.Begin()
			g.background.Draw(g.system.Profile().Background, g.system.TrailsEnabled())
			g.step(g.canvas)
			g.surface.End()
		}
	}

	renderStart := time.Now()
	rl.ClearBackground(rl.Black)
	g.surface.Blit()

	g.hud.Draw(g.system.Profile(), g.tick,
		g.system.TrailsEnabled(), g.system.FieldOverlayEnabled(), g.paused)
	if g.controls.Draw(&g.tuning) {
		g.applyTuning()
	}

	rl.EndDrawing()
	if !g.paused {
		g.perf.RecordPhase(telemetry.PhaseRender, time.Since(renderStart))
	}
}

// applyTuning pushes slider values into the running system.
func (g *Game) applyTuning() {
	if err := g.system.SetFieldParams(float64(g.tuning.NoiseScale), float64(g.tuning.AngleMultiplier)); err != nil {
		slog.Error("tuning rejected", "error", err)
	}
	if err := g.system.SetTimeStep(float64(g.tuning.TimeStep)); err != nil {
		slog.Error("tuning rejected", "error", err)
	}
}

// switchProfile activates the profile at index i, resetting the pool
// and clearing the trail surface.
func (g *Game) switchProfile(i int) {
	if i < 0 || i >= len(g.profiles) || i == g.active {
		return
	}
	if err := g.system.SetProfile(g.profiles[i]); err != nil {
		slog.Error("profile switch failed", "profile", g.profiles[i].ID, "error", err)
		return
	}
	g.active = i
	g.tuning = tuningFromProfile(g.profiles[i], float64(g.tuning.TimeStep))
	g.applyTuning()
	if g.surface != nil {
		g.surface.Clear(g.profiles[i].Background)
	}
	slog.Info("profile switched", "profile", g.profiles[i].ID, "name", g.profiles[i].Name)
}

// saveImage screenshots the window into the export directory.
func (g *Game) saveImage() {
	name := fmt.Sprintf("%s_%d.png", g.system.Profile().ID, time.Now().UnixMilli())
	path := filepath.Join(g.cfg.Export.Dir, name)
	rl.TakeScreenshot(path)
	slog.Info("image saved", "path", path)
}

// Unload flushes telemetry and frees GPU resources.
func (g *Game) Unload() {
	g.flushTelemetry()
	if err := g.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
	if g.surface != nil {
		g.surface.Unload()
	}
}
