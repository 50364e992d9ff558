// Package components defines the particle entity and the style enums that
// parameterize spawning, physics and rendering.
package components

// DeathAlpha is the effective alpha at or below which a particle is dead.
const DeathAlpha = 0.01

// Point is a 2D screen position.
type Point struct {
	X, Y float64
}

// Particle is one simulated particle. Physics returns an updated copy each
// tick; the renderer only reads it.
type Particle struct {
	X, Y   float64
	VX, VY float64 // pixels per tick

	// Life counts down from MaxLife. It is not clamped, so the effective
	// alpha may exceed 1. MaxLife is always > 0.
	Life    float64
	MaxLife float64

	Size    float64 // base radius in pixels
	Hue     float64 // 0-360
	Opacity float64

	Tracking TrackingType
	Color    string // resolved #rrggbb

	// Trail is reserved for trail-rendering styles; physics never reads it.
	Trail []Point

	Energy float64
}

// Alpha returns the effective alpha: opacity scaled by remaining life.
func (p *Particle) Alpha() float64 {
	return p.Opacity * (p.Life / p.MaxLife)
}

// IsAlive reports whether the effective alpha is still above DeathAlpha.
func (p *Particle) IsAlive() bool {
	alpha := p.Alpha()
	if alpha < 0 {
		alpha = 0
	}
	return alpha > DeathAlpha
}
