package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one telemetry window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	TimeSec         float64 `csv:"time"`

	// Population at window end
	Live int `csv:"live"`
	Peak int `csv:"peak"`

	// Events during the window
	Spawned   int `csv:"spawned"`
	Died      int `csv:"died"`
	Truncated int `csv:"truncated"`

	// Effective alpha distribution at window end
	AlphaMean float64 `csv:"alpha_mean"`
	AlphaStd  float64 `csv:"alpha_std"`
	AlphaP10  float64 `csv:"alpha_p10"`
	AlphaP50  float64 `csv:"alpha_p50"`
	AlphaP90  float64 `csv:"alpha_p90"`

	// Live count sampled every tick
	LiveMean float64 `csv:"live_mean"`
	LiveStd  float64 `csv:"live_std"`

	// Active settings at window end
	Tracking   string `csv:"tracking"`
	Background string `csv:"background"`
	Style      string `csv:"style"`
}

// Summary is the mean, standard deviation and 10/50/90th percentiles of a
// sample.
type Summary struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// Summarize computes a Summary. An empty sample summarizes to zeros and a
// single value has zero deviation.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var s Summary
	if len(sorted) == 1 {
		s.Mean = sorted[0]
	} else {
		s.Mean, s.Std = stat.MeanStdDev(sorted, nil)
	}
	s.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	s.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("time", s.TimeSec),
		slog.Int("live", s.Live),
		slog.Int("peak", s.Peak),
		slog.Int("spawned", s.Spawned),
		slog.Int("died", s.Died),
		slog.Int("truncated", s.Truncated),
		slog.Float64("alpha_mean", s.AlphaMean),
		slog.Float64("alpha_p50", s.AlphaP50),
		slog.Float64("live_mean", s.LiveMean),
		slog.String("tracking", s.Tracking),
		slog.String("background", s.Background),
		slog.String("style", s.Style),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"time", s.TimeSec,
		"live", s.Live,
		"peak", s.Peak,
		"spawned", s.Spawned,
		"died", s.Died,
		"truncated", s.Truncated,
		"alpha_mean", s.AlphaMean,
		"alpha_std", s.AlphaStd,
		"alpha_p10", s.AlphaP10,
		"alpha_p50", s.AlphaP50,
		"alpha_p90", s.AlphaP90,
		"live_mean", s.LiveMean,
		"live_std", s.LiveStd,
		"tracking", s.Tracking,
		"background", s.Background,
		"style", s.Style,
	)
}
