package renderer

import (
	"math/rand"

	"github.com/pthm-cable/trails/components"
)

// Highlight colours for cores and glyphs.
const (
	highlightDark  = "#ffffff"
	highlightLight = "#1e293b"
)

// Frame carries the per-tick inputs every particle draw shares.
type Frame struct {
	NowMS      float64 // monotonic clock, milliseconds
	DarkMode   bool
	Background components.BackgroundType
	Style      components.ParticleStyle
}

func (f Frame) highlight() string {
	if f.DarkMode {
		return highlightDark
	}
	return highlightLight
}

// ParticleRenderer draws one particle per call: a style pass chosen by the
// frame's particle style, then an overlay pass for themed backgrounds.
type ParticleRenderer struct {
	rng *rand.Rand
}

// NewParticleRenderer creates a particle renderer. rng drives the random
// sparks, tendrils and glyphs.
func NewParticleRenderer(rng *rand.Rand) *ParticleRenderer {
	return &ParticleRenderer{rng: rng}
}

// Draw renders p. Particles with no remaining alpha are skipped.
func (r *ParticleRenderer) Draw(s Surface, p *components.Particle, f Frame) {
	if s == nil || p == nil {
		return
	}
	alpha := p.Alpha()
	if !(alpha > 0) {
		return
	}

	s.Save()
	r.drawStyle(s, p, alpha, f)
	s.Restore()

	if f.Background != components.BackgroundNone {
		s.Save()
		r.drawOverlay(s, p, alpha, f)
		s.Restore()
	}
}

func (r *ParticleRenderer) drawStyle(s Surface, p *components.Particle, alpha float64, f Frame) {
	switch f.Style {
	case components.StyleGlow:
		r.drawGlow(s, p, alpha, f)
	case components.StyleCrystalline:
		r.drawCrystalline(s, p, alpha, f)
	case components.StylePlasma:
		r.drawPlasma(s, p, alpha, f)
	case components.StyleStardust:
		r.drawStardust(s, p, alpha, f)
	case components.StyleEnergy:
		r.drawEnergy(s, p, alpha, f)
	case components.StyleEthereal:
		r.drawEthereal(s, p, alpha, f)
	case components.StyleDigital:
		r.drawDigital(s, p, alpha, f)
	case components.StyleFlame:
		r.drawFlame(s, p, alpha, f)
	case components.StyleElectric:
		r.drawElectric(s, p, alpha, f)
	default:
		r.drawDefault(s, p, alpha)
	}
}

func (r *ParticleRenderer) drawOverlay(s Surface, p *components.Particle, alpha float64, f Frame) {
	switch f.Background {
	case components.BackgroundCyberpunk:
		r.overlayCyberpunk(s, p, alpha)
	case components.BackgroundMatrix:
		r.overlayMatrix(s, p, alpha, f)
	case components.BackgroundNebula:
		r.overlayNebula(s, p, alpha, f)
	case components.BackgroundAurora:
		r.overlayAurora(s, p, alpha, f)
	case components.BackgroundSynthwave:
		r.overlaySynthwave(s, p, alpha)
	case components.BackgroundOcean:
		r.overlayOcean(s, p, alpha, f)
	}
}
