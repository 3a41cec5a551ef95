// Package telemetry aggregates simulation statistics over time windows
// and writes them to structured logs and CSV files.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int     `csv:"-"`
	WindowEndTick   int     `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Active profile at window end
	Profile string `csv:"profile"`

	// Pool state at window end
	PoolSize int `csv:"pool_size"`

	// Events during window
	Respawns int `csv:"respawns"`
	Wraps    int `csv:"wraps"`

	// Age distribution (ticks, sampled at window end)
	AgeMean float64 `csv:"age_mean"`
	AgeP10  float64 `csv:"age_p10"`
	AgeP50  float64 `csv:"age_p50"`
	AgeP90  float64 `csv:"age_p90"`

	// Speed distribution (canvas units per tick)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
}

// DistStats computes mean and the 10/50/90 percentiles of values.
// Returns zeros for an empty slice.
func DistStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p10, p50, p90
}

// Log emits the window stats as a structured log event.
func (w WindowStats) Log() {
	slog.Info("window_stats",
		"window_end", w.WindowEndTick,
		"sim_time", w.SimTimeSec,
		"profile", w.Profile,
		"pool_size", w.PoolSize,
		"respawns", w.Respawns,
		"wraps", w.Wraps,
		"age_mean", w.AgeMean,
		"age_p50", w.AgeP50,
		"speed_mean", w.SpeedMean,
	)
}
