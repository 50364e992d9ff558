// Package engine runs the particle canvas: the per-frame driver, the
// pointer and touch dispatcher, and the synthetic pointer for headless runs.
package engine

import (
	"math/rand"

	"github.com/pthm-cable/trails/camera"
	"github.com/pthm-cable/trails/components"
	"github.com/pthm-cable/trails/renderer"
	"github.com/pthm-cable/trails/settings"
	"github.com/pthm-cable/trails/systems"
	"github.com/pthm-cable/trails/telemetry"
)

// SettingsSource supplies the style settings. Core types read a snapshot
// once per tick or event and never hold on to it.
type SettingsSource interface {
	Snapshot() settings.Settings
}

// FadeColors are the #rrggbbaa fills painted over the surface every tick.
type FadeColors struct {
	Dark  string
	Light string
}

// DriverOptions configures a Driver.
type DriverOptions struct {
	Fade      FadeColors
	Capacity  int
	Clock     func() float64 // milliseconds, feeds time-varying styles
	Scheduler FrameScheduler

	// Optional telemetry hooks
	Perf     *telemetry.PerfCollector
	Stats    *telemetry.Collector
	OnWindow func(telemetry.WindowStats)
}

// Driver owns the live particle collection and advances it once per frame.
type Driver struct {
	system   *systems.ParticleSystem
	physics  *systems.Physics
	renderer *renderer.ParticleRenderer
	camera   *camera.Camera
	settings SettingsSource

	fade  FadeColors
	clock func() float64

	surface renderer.Surface

	scheduler FrameScheduler
	frame     FrameID
	running   bool

	tick     int32
	perf     *telemetry.PerfCollector
	stats    *telemetry.Collector
	onWindow func(telemetry.WindowStats)
}

// NewDriver creates a driver for the viewport described by cam.
func NewDriver(rng *rand.Rand, cam *camera.Camera, src SettingsSource, opts DriverOptions) *Driver {
	clock := opts.Clock
	if clock == nil {
		clock = func() float64 { return 0 }
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = NewLoopScheduler()
	}
	return &Driver{
		system:    systems.NewParticleSystem(opts.Capacity),
		physics:   systems.NewPhysics(rng, cam.W, cam.H),
		renderer:  renderer.NewParticleRenderer(rng),
		camera:    cam,
		settings:  src,
		fade:      opts.Fade,
		clock:     clock,
		scheduler: sched,
		perf:      opts.Perf,
		stats:     opts.Stats,
		onWindow:  opts.OnWindow,
	}
}

// System exposes the live collection for the input dispatcher.
func (d *Driver) System() *systems.ParticleSystem {
	return d.system
}

// Particles returns the live particles. Callers must not modify them.
func (d *Driver) Particles() []components.Particle {
	return d.system.Particles
}

// Ticks returns the number of ticks run so far.
func (d *Driver) Ticks() int32 {
	return d.tick
}

// Attach sets the surface particles are drawn on and sizes the viewport
// to it.
func (d *Driver) Attach(s renderer.Surface) {
	d.surface = s
	if s != nil {
		d.Resize(s.Size())
	}
}

// Detach stops the loop and forgets the surface.
func (d *Driver) Detach() {
	d.Stop()
	d.surface = nil
}

// Resize updates the viewport and the bounds galaxy motion orbits within.
func (d *Driver) Resize(w, h float64) {
	d.camera.Resize(w, h)
	d.physics.Resize(w, h)
}

// Tick runs one frame: paint the trail fade over the whole surface, advance
// every particle, drop the dead and draw the survivors. Without a surface
// it does nothing and returns false.
func (d *Driver) Tick() bool {
	if d.surface == nil {
		return false
	}
	st := d.settings.Snapshot()

	d.phase(telemetry.PhaseFade)
	w, h := d.surface.Size()
	d.surface.FillRect(0, 0, w, h, renderer.Color(d.fadeColor(st.DarkMode)))

	d.phase(telemetry.PhasePhysics)
	res := d.system.Step(d.physics, nil)

	d.phase(telemetry.PhaseRender)
	frame := renderer.Frame{
		NowMS:      d.clock(),
		DarkMode:   st.DarkMode,
		Background: st.Background,
		Style:      st.Style,
	}
	for i := range d.system.Particles {
		d.renderer.Draw(d.surface, &d.system.Particles[i], frame)
	}

	d.phase(telemetry.PhaseTelemetry)
	d.tick++
	d.recordTick(res, st)
	return true
}

func (d *Driver) fadeColor(dark bool) string {
	if dark {
		return d.fade.Dark
	}
	return d.fade.Light
}

func (d *Driver) phase(name string) {
	if d.perf != nil {
		d.perf.StartPhase(name)
	}
}

func (d *Driver) recordTick(res systems.StepResult, st settings.Settings) {
	if d.stats == nil {
		return
	}
	d.stats.RecordDeaths(res.Died)
	d.stats.SampleLive(res.Survived)
	if !d.stats.ShouldFlush(d.tick) {
		return
	}

	alphas := make([]float64, len(d.system.Particles))
	for i := range d.system.Particles {
		alphas[i] = d.system.Particles[i].Alpha()
	}
	ws := d.stats.Flush(d.tick, alphas, st.Tracking.String(), st.Background.String(), st.Style.String())
	if d.onWindow != nil {
		d.onWindow(ws)
	}
}

// Start requests frames until Stop. Each frame runs Tick and requests the
// next one.
func (d *Driver) Start() {
	if d.running {
		return
	}
	d.running = true
	d.frame = d.scheduler.RequestFrame(d.onFrame)
}

func (d *Driver) onFrame() {
	if !d.running {
		return
	}
	d.Tick()
	if d.running {
		d.frame = d.scheduler.RequestFrame(d.onFrame)
	}
}

// Stop cancels the pending frame request.
func (d *Driver) Stop() {
	if !d.running {
		return
	}
	d.running = false
	d.scheduler.CancelFrame(d.frame)
}

// Running reports whether frames are being requested.
func (d *Driver) Running() bool {
	return d.running
}
