package engine

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/trails/camera"
	"github.com/pthm-cable/trails/config"
	"github.com/pthm-cable/trails/systems"
	"github.com/pthm-cable/trails/telemetry"
)

// SessionOptions holds the per-run choices a front end makes.
type SessionOptions struct {
	Seed      int64
	LogStats  bool
	OutputDir string         // CSV output, empty to disable
	Clock     func() float64 // milliseconds
}

// Session wires a driver, a dispatcher and the telemetry around one
// viewport. A front end frame is BeginFrame, input polling into Input,
// Advance with the particle surface bound, its own drawing, then EndFrame.
type Session struct {
	Camera    *camera.Camera
	Driver    *Driver
	Input     *Dispatcher
	Scheduler *LoopScheduler
	Perf      *telemetry.PerfCollector
	Stats     *telemetry.Collector
	Output    *telemetry.OutputManager

	logStats bool
}

// NewSession builds a session for cfg reading settings from src.
func NewSession(cfg *config.Config, src SettingsSource, opts SessionOptions) (*Session, error) {
	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("telemetry output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing run config: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	dt := 1.0 / float64(cfg.Screen.TargetFPS)

	s := &Session{
		Camera:    camera.New(cfg.Derived.ScreenW, cfg.Derived.ScreenH),
		Scheduler: NewLoopScheduler(),
		Perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		Stats:     telemetry.NewCollector(cfg.Telemetry.StatsWindowSec, dt),
		Output:    output,
		logStats:  opts.LogStats,
	}

	s.Driver = NewDriver(rng, s.Camera, src, DriverOptions{
		Fade:      FadeColors{Dark: cfg.FadeColor(true), Light: cfg.FadeColor(false)},
		Capacity:  cfg.Simulation.Capacity,
		Clock:     opts.Clock,
		Scheduler: s.Scheduler,
		Perf:      s.Perf,
		Stats:     s.Stats,
		OnWindow:  s.flushTelemetry,
	})
	s.Input = NewDispatcher(
		systems.NewFactory(rng, opts.Clock),
		s.Driver.System(),
		s.Camera,
		src,
		DispatcherOptions{
			Population:   cfg.Population,
			SpawnOnHover: cfg.Input.SpawnOnHover,
			Stats:        s.Stats,
		},
	)
	return s, nil
}

// BeginFrame starts timing a frame. Input polling that follows is counted
// as the input phase.
func (s *Session) BeginFrame() {
	s.Perf.StartTick()
	s.Perf.StartPhase(telemetry.PhaseInput)
}

// Phase starts timing a front end phase such as the backdrop.
func (s *Session) Phase(name string) {
	s.Perf.StartPhase(name)
}

// Advance runs the frame callbacks queued by the driver. It reports how
// many ran; zero means the driver is stopped.
func (s *Session) Advance() int {
	return s.Scheduler.RunPending()
}

// EndFrame closes the frame's timing.
func (s *Session) EndFrame() {
	s.Perf.EndTick()
	s.Perf.RecordFrame()
}

// flushTelemetry logs and writes a finished stats window.
func (s *Session) flushTelemetry(stats telemetry.WindowStats) {
	perf := s.Perf.Stats()
	if s.logStats {
		stats.LogStats()
		perf.LogStats()
	}
	if err := s.Output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := s.Output.WritePerf(perf, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// Close stops the driver, detaches input and closes the output files.
func (s *Session) Close() error {
	s.Driver.Detach()
	s.Input.Detach()
	return s.Output.Close()
}
