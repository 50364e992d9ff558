package systems

import (
	"math/rand"

	"github.com/pthm-cable/trails/components"
)

// spiralForce scales the galaxy swirl around the viewport centre.
const spiralForce = 0.001

// Physics advances particles one frame at a time. Constants are tuned for
// ~60Hz and are not scaled by frame time.
type Physics struct {
	rng           *rand.Rand
	width, height float64
}

// NewPhysics creates a physics stepper for a viewport of the given size.
func NewPhysics(rng *rand.Rand, width, height float64) *Physics {
	return &Physics{rng: rng, width: width, height: height}
}

// Resize updates the viewport used for the galaxy centre.
func (ph *Physics) Resize(width, height float64) {
	ph.width = width
	ph.height = height
}

// Update returns p advanced by one tick according to its tracking style.
// Position always integrates with the velocity from before this tick.
func (ph *Physics) Update(p components.Particle) components.Particle {
	switch p.Tracking {
	case components.TrackingNone:
		p.Life = 0

	case components.TrackingComet:
		p.X += p.VX
		p.Y += p.VY
		p.Life -= 0.015
		p.VY += 0.005
		p.VX *= 0.995

	case components.TrackingFireworks:
		p.X += p.VX
		p.Y += p.VY
		p.Life -= 0.025
		p.VY += 0.02
		p.VX *= 0.98

	case components.TrackingLightning:
		p.X += p.VX + (ph.rng.Float64()-0.5)*2
		p.Y += p.VY + (ph.rng.Float64()-0.5)*2
		p.Life -= 0.03
		p.VY *= 0.95
		p.VX *= 0.95

	case components.TrackingGalaxy:
		dx := p.X - ph.width/2
		dy := p.Y - ph.height/2
		p.X += p.VX - dy*spiralForce
		p.Y += p.VY + dx*spiralForce
		p.Life -= 0.01
		p.VX *= 0.999
		p.VY *= 0.999

	case components.TrackingNeon:
		p.X += p.VX
		p.Y += p.VY
		p.Life -= 0.02
		p.VY += 0.008
		p.VX *= 0.992

	case components.TrackingWatercolor:
		p.X += p.VX + (ph.rng.Float64()-0.5)*0.5
		p.Y += p.VY + (ph.rng.Float64()-0.5)*0.5
		p.Life -= 0.01
		p.VY += 0.002
		p.VX *= 0.998

	case components.TrackingGeometric:
		p.X += p.VX
		p.Y += p.VY
		p.Life -= 0.02
		p.VY += 0.015
		p.VX *= 0.985

	default: // subtle, and anything unrecognized
		p.X += p.VX
		p.Y += p.VY
		p.Life -= 0.02
		p.VY += 0.01
		p.VX *= 0.99
	}
	return p
}
