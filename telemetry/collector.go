// Package telemetry collects particle population statistics and tick
// timings, logs them and writes them to CSV.
package telemetry

import "math"

// Collector accumulates events within fixed tick windows and produces
// WindowStats.
type Collector struct {
	windowDurationTicks int32
	dt                  float64

	windowStartTick int32

	spawned     int
	died        int
	truncated   int
	peak        int
	liveSamples []float64
}

// NewCollector creates a collector. windowDurationSec is the window length
// in seconds and dt the seconds per tick.
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticks := int32(math.Round(windowDurationSec / dt))
	if ticks < 1 {
		ticks = 1
	}
	return &Collector{
		windowDurationTicks: ticks,
		dt:                  dt,
		liveSamples:         make([]float64, 0, ticks),
	}
}

// RecordSpawn records n newly spawned particles.
func (c *Collector) RecordSpawn(n int) {
	c.spawned += n
}

// RecordDeaths records n particles that faded out.
func (c *Collector) RecordDeaths(n int) {
	c.died += n
}

// RecordTruncated records n particles dropped by a population cap.
func (c *Collector) RecordTruncated(n int) {
	c.truncated += n
}

// SampleLive records the live count after a tick.
func (c *Collector) SampleLive(live int) {
	if live > c.peak {
		c.peak = live
	}
	c.liveSamples = append(c.liveSamples, float64(live))
}

// ShouldFlush reports whether the current window is complete.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}

// Flush produces the stats for the window ending at currentTick and resets
// the counters. alphas holds the effective alpha of every live particle.
func (c *Collector) Flush(currentTick int32, alphas []float64, tracking, background, style string) WindowStats {
	alpha := Summarize(alphas)
	live := Summarize(c.liveSamples)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		TimeSec:         float64(currentTick) * c.dt,

		Live:      len(alphas),
		Peak:      max(c.peak, len(alphas)),
		Spawned:   c.spawned,
		Died:      c.died,
		Truncated: c.truncated,

		AlphaMean: alpha.Mean,
		AlphaStd:  alpha.Std,
		AlphaP10:  alpha.P10,
		AlphaP50:  alpha.P50,
		AlphaP90:  alpha.P90,

		LiveMean: live.Mean,
		LiveStd:  live.Std,

		Tracking:   tracking,
		Background: background,
		Style:      style,
	}

	c.windowStartTick = currentTick
	c.spawned = 0
	c.died = 0
	c.truncated = 0
	c.peak = 0
	c.liveSamples = c.liveSamples[:0]

	return stats
}
