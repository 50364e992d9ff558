package engine

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/pthm-cable/trails/camera"
	"github.com/pthm-cable/trails/config"
)

// Pointer receives pointer events in client coordinates.
type Pointer interface {
	PointerDown(cx, cy float64)
	PointerMove(cx, cy float64)
	PointerUp()
}

// Autopilot drives a synthetic pointer around the middle of the surface for
// headless runs. The orbit radius wobbles with Perlin noise, and the button
// alternates between pressed and released every PressTicks ticks.
type Autopilot struct {
	noise  *perlin.Perlin
	cfg    config.AutopilotConfig
	camera *camera.Camera

	tick    int
	pressed bool
}

// NewAutopilot creates an autopilot orbiting cam's centre.
func NewAutopilot(seed int64, cam *camera.Camera, cfg config.AutopilotConfig) *Autopilot {
	if cfg.PressTicks <= 0 {
		cfg.PressTicks = 1
	}
	return &Autopilot{
		noise:  perlin.NewPerlin(2, 2, 3, seed),
		cfg:    cfg,
		camera: cam,
	}
}

// Position returns the path point for tick in surface coordinates.
func (a *Autopilot) Position(tick int) (x, y float64) {
	cx, cy := a.camera.Center()
	r := a.cfg.Radius * math.Min(a.camera.W, a.camera.H)
	r *= 1 + a.cfg.Wobble*a.noise.Noise1D(float64(tick)*0.02+0.37)

	angle := float64(tick) * a.cfg.Speed
	return cx + r*math.Cos(angle), cy + r*math.Sin(angle)
}

// Step moves the pointer one tick along the path, pressing or releasing it
// at phase boundaries.
func (a *Autopilot) Step(p Pointer) {
	cx, cy := a.camera.SurfaceToClient(a.Position(a.tick))

	press := (a.tick/a.cfg.PressTicks)%2 == 0
	switch {
	case press && !a.pressed:
		p.PointerDown(cx, cy)
		a.pressed = true
	case !press && a.pressed:
		p.PointerUp()
		a.pressed = false
	}
	p.PointerMove(cx, cy)
	a.tick++
}

// Pressed reports whether the synthetic button is down.
func (a *Autopilot) Pressed() bool {
	return a.pressed
}
