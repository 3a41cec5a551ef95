package telemetry

import (
	"math"

	"github.com/MichailSemoglou/encre/systems"
)

// Collector accumulates per-tick events within time windows and
// produces WindowStats when a window closes.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int
	dt                  float64

	windowStartTick int

	// Event counters for the current window
	respawns int
	wraps    int
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds.
// dt: seconds per tick (used for tick-to-time conversion).
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordTick accumulates one tick's event counts.
func (c *Collector) RecordTick(stats systems.TickStats) {
	c.respawns += stats.Respawns
	c.wraps += stats.Wraps
}

// ShouldFlush returns true if enough ticks have passed to close the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats from the particle pool and resets the
// counters for the next window.
func (c *Collector) Flush(currentTick int, sys *systems.ParticleSystem) WindowStats {
	pool := sys.Pool()
	ages := make([]float64, len(pool))
	speeds := make([]float64, len(pool))
	for i := range pool {
		ages[i] = float64(pool[i].Age)
		speeds[i] = math.Hypot(pool[i].VelX, pool[i].VelY)
	}

	w := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,
		Profile:         sys.Profile().ID,
		PoolSize:        len(pool),
		Respawns:        c.respawns,
		Wraps:           c.wraps,
	}
	w.AgeMean, w.AgeP10, w.AgeP50, w.AgeP90 = DistStats(ages)
	w.SpeedMean, w.SpeedP10, w.SpeedP50, w.SpeedP90 = DistStats(speeds)

	c.windowStartTick = currentTick
	c.respawns = 0
	c.wraps = 0

	return w
}
