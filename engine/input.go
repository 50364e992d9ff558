package engine

import (
	"log/slog"

	"github.com/pthm-cable/trails/camera"
	"github.com/pthm-cable/trails/components"
	"github.com/pthm-cable/trails/config"
	"github.com/pthm-cable/trails/settings"
	"github.com/pthm-cable/trails/systems"
	"github.com/pthm-cable/trails/telemetry"
)

// Touch is one contact point of a touch event, in client coordinates. ID is
// stable for the lifetime of the contact.
type Touch struct {
	ID   int
	X, Y float64
}

// ParticleSink is the live collection the dispatcher spawns into.
type ParticleSink interface {
	Append(particles ...components.Particle)
	Cap(threshold, keep int) int
	Count() int
}

// DispatcherOptions configures a Dispatcher.
type DispatcherOptions struct {
	Population   config.PopulationConfig
	SpawnOnHover bool // spawn on move without a pressed button
	Stats        *telemetry.Collector
}

// Dispatcher turns pointer and touch events into spawn requests and
// enforces the population caps. Events arrive in client coordinates.
type Dispatcher struct {
	factory  *systems.Factory
	sink     ParticleSink
	camera   *camera.Camera
	settings SettingsSource
	opts     DispatcherOptions

	pointer components.Point
	pressed bool
	touches map[int]components.Point

	detached bool
}

// NewDispatcher creates a dispatcher spawning into sink.
func NewDispatcher(f *systems.Factory, sink ParticleSink, cam *camera.Camera, src SettingsSource, opts DispatcherOptions) *Dispatcher {
	return &Dispatcher{
		factory:  f,
		sink:     sink,
		camera:   cam,
		settings: src,
		opts:     opts,
		touches:  make(map[int]components.Point),
	}
}

// PointerDown presses the pointer and spawns a burst of twice the move
// count.
func (d *Dispatcher) PointerDown(cx, cy float64) {
	if d.detached {
		return
	}
	d.pointer = d.toSurface(cx, cy)
	d.pressed = true

	st := d.settings.Snapshot()
	d.spawn(d.pointer, 2*systems.ParticleCount(st.Tracking), st)
}

// PointerMove records the pointer position. While pressed it spawns the
// move count and then applies the mouse population cap.
func (d *Dispatcher) PointerMove(cx, cy float64) {
	if d.detached {
		return
	}
	d.pointer = d.toSurface(cx, cy)
	if !d.pressed && !d.opts.SpawnOnHover {
		return
	}

	st := d.settings.Snapshot()
	if d.spawn(d.pointer, systems.ParticleCount(st.Tracking), st) > 0 {
		d.enforceCap("mouse", d.opts.Population.MoveCap, d.opts.Population.MoveKeep)
	}
}

// PointerUp releases the pointer.
func (d *Dispatcher) PointerUp() {
	if d.detached {
		return
	}
	d.pressed = false
}

// PointerLeave releases the pointer when it leaves the surface.
func (d *Dispatcher) PointerLeave() {
	d.PointerUp()
}

// TouchStart records each new contact and spawns a burst at it.
func (d *Dispatcher) TouchStart(touches []Touch) {
	if d.detached || len(touches) == 0 {
		return
	}

	st := d.settings.Snapshot()
	count := 2 * systems.ParticleCount(st.Tracking)
	for _, t := range touches {
		pos := d.toSurface(t.X, t.Y)
		d.touches[t.ID] = pos
		d.spawn(pos, count, st)
	}
}

// TouchMove updates each moved contact and spawns at it. The touch cap is
// applied after every contact's spawn.
func (d *Dispatcher) TouchMove(touches []Touch) {
	if d.detached {
		return
	}

	st := d.settings.Snapshot()
	count := systems.ParticleCount(st.Tracking)
	for _, t := range touches {
		pos := d.toSurface(t.X, t.Y)
		d.touches[t.ID] = pos
		if d.spawn(pos, count, st) > 0 {
			d.enforceCap("touch", d.opts.Population.TouchCap, d.opts.Population.TouchKeep)
		}
	}
}

// TouchEnd forgets the ended contacts.
func (d *Dispatcher) TouchEnd(touches []Touch) {
	if d.detached {
		return
	}
	for _, t := range touches {
		delete(d.touches, t.ID)
	}
}

// Detach stops the dispatcher from reacting to any further event.
func (d *Dispatcher) Detach() {
	d.detached = true
	d.pressed = false
	clear(d.touches)
}

// IsTouch reports whether any touch contact is active.
func (d *Dispatcher) IsTouch() bool {
	return len(d.touches) > 0
}

// TouchCount returns the number of active contacts.
func (d *Dispatcher) TouchCount() int {
	return len(d.touches)
}

// Pressed reports whether the pointer is down.
func (d *Dispatcher) Pressed() bool {
	return d.pressed
}

// Pointer returns the last pointer position in surface coordinates.
func (d *Dispatcher) Pointer() components.Point {
	return d.pointer
}

func (d *Dispatcher) toSurface(cx, cy float64) components.Point {
	x, y := d.camera.ClientToSurface(cx, cy)
	return components.Point{X: x, Y: y}
}

// spawn appends count particles at pos. Tracking none never reaches the
// factory.
func (d *Dispatcher) spawn(pos components.Point, count int, st settings.Settings) int {
	if st.Tracking == components.TrackingNone || count <= 0 {
		return 0
	}
	particles := d.factory.CreateMultipleParticles(pos.X, pos.Y, count, st.Tracking, st.Background)
	d.sink.Append(particles...)
	if d.opts.Stats != nil {
		d.opts.Stats.RecordSpawn(len(particles))
	}
	return len(particles)
}

func (d *Dispatcher) enforceCap(source string, threshold, keep int) {
	dropped := d.sink.Cap(threshold, keep)
	if dropped == 0 {
		return
	}
	slog.Debug("population capped", "source", source, "dropped", dropped, "live", d.sink.Count())
	if d.opts.Stats != nil {
		d.opts.Stats.RecordTruncated(dropped)
	}
}
