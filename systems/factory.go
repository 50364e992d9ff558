package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/trails/components"
	"github.com/pthm-cable/trails/palette"
)

// spawnJitter is the half-width of the position offset applied to each
// particle of a multi-spawn, before the background spread multiplier.
const spawnJitter = 10.0

// Factory builds particles at screen points. Tracking style only affects
// colour and bookkeeping here; motion differences live in Physics.
type Factory struct {
	rng   *rand.Rand
	clock func() float64 // milliseconds
}

// NewFactory creates a factory. clock returns the current time in
// milliseconds and drives time-varying spawn modifiers.
func NewFactory(rng *rand.Rand, clock func() float64) *Factory {
	if clock == nil {
		clock = func() float64 { return 0 }
	}
	return &Factory{rng: rng, clock: clock}
}

// CreateParticle builds one particle at (x, y).
func (f *Factory) CreateParticle(x, y float64, tt components.TrackingType, bg components.BackgroundType) components.Particle {
	p := components.Particle{
		X:        x,
		Y:        y,
		VX:       f.rng.Float64()*2 - 1,
		VY:       f.rng.Float64()*2 - 1,
		Life:     1.0,
		MaxLife:  1.0,
		Size:     f.rng.Float64()*3 + 1,
		Hue:      f.rng.Float64() * 360,
		Opacity:  1.0,
		Tracking: tt,
		Trail:    []components.Point{},
		Energy:   f.rng.Float64()*0.5 + 0.5,
	}
	p.Color = palette.Resolve(f.rng, tt, bg)

	return f.ApplyBackgroundBehavior(p, bg)
}

// CreateParticlesForType returns exactly one particle at (x, y).
func (f *Factory) CreateParticlesForType(x, y float64, tt components.TrackingType, bg components.BackgroundType) []components.Particle {
	return []components.Particle{f.CreateParticle(x, y, tt, bg)}
}

// CreateMultipleParticles returns count particles jittered around (x, y).
// Themed backgrounds spread the burst 1.5x wider.
func (f *Factory) CreateMultipleParticles(x, y float64, count int, tt components.TrackingType, bg components.BackgroundType) []components.Particle {
	if count <= 0 {
		return []components.Particle{}
	}

	spread := 1.0
	if bg != components.BackgroundNone {
		spread = 1.5
	}

	particles := make([]components.Particle, 0, count)
	for i := 0; i < count; i++ {
		offsetX := (f.rng.Float64() - 0.5) * 2 * spawnJitter * spread
		offsetY := (f.rng.Float64() - 0.5) * 2 * spawnJitter * spread
		particles = append(particles, f.CreateParticle(x+offsetX, y+offsetY, tt, bg))
	}
	return particles
}

// ApplyBackgroundBehavior rescales velocity, lifetime and size for the
// active background theme. Unthemed backgrounds reset life to 1.
func (f *Factory) ApplyBackgroundBehavior(p components.Particle, bg components.BackgroundType) components.Particle {
	switch bg {
	case components.BackgroundCyberpunk:
		p.VX *= 1.5
		p.VY *= 1.5
		p.MaxLife = 2.0
		p.Size *= 1.2
		p.Energy *= 1.2

	case components.BackgroundMatrix:
		// Falling code: mostly downward, little sideways drift
		p.VY = math.Abs(p.VY)*2.5 + 1
		p.VX *= 0.2
		p.MaxLife = 3.0
		p.Size = f.rng.Float64()*1.5 + 1

	case components.BackgroundNebula:
		p.VX *= 0.5
		p.VY *= 0.5
		p.MaxLife = 3.5
		p.Size *= 1.5

	case components.BackgroundAurora:
		p.VX += math.Sin(f.clock()/1000) * 0.8
		p.VY *= 0.4
		p.MaxLife = 3.0
		p.Size *= 1.4

	case components.BackgroundSynthwave:
		p.VX *= 2.0
		p.VY *= 0.3
		p.MaxLife = 2.5
		p.Size *= 1.1
		p.Energy *= 1.5

	default:
		p.MaxLife = 1.0
	}

	p.Life = p.MaxLife
	return p
}

// ParticleCount returns how many particles one move event spawns for a
// tracking style.
func ParticleCount(tt components.TrackingType) int {
	switch tt {
	case components.TrackingNone:
		return 0
	case components.TrackingSubtle, components.TrackingComet, components.TrackingNeon:
		return 1
	case components.TrackingFireworks:
		return 3
	case components.TrackingLightning, components.TrackingGalaxy,
		components.TrackingWatercolor, components.TrackingGeometric:
		return 2
	default:
		return 1
	}
}
