package renderer

import (
	"math"

	"github.com/pthm-cable/trails/components"
	"github.com/pthm-cable/trails/palette"
)

const (
	sparkChance   = 0.1
	sparkleChance = 0.05
	matrixGhosts  = 8
)

// overlayCyberpunk layers three neon glows and occasionally throws sparks.
func (r *ParticleRenderer) overlayCyberpunk(s Surface, p *components.Particle, alpha float64) {
	layers := [3]string{p.Color, "#00ffff", "#ff00ff"}
	for i, c := range layers {
		radius := p.Size * (2 + float64(i)*1.5)
		g := NewRadialGradient(p.X, p.Y, 0, p.X, p.Y, radius).
			AddStop(0, withAlpha(c, alpha*(0.3-float64(i)*0.08))).
			AddStop(1, withAlpha(c, 0))
		s.FillCircle(p.X, p.Y, radius, g)
	}

	if r.rng.Float64() >= sparkChance {
		return
	}
	spark := Color(withAlpha("#00ffff", alpha*0.8))
	for i := 0; i < 2; i++ {
		angle := r.rng.Float64() * tau
		length := p.Size * (3 + r.rng.Float64()*4)
		s.StrokePolyline([]components.Point{
			{X: p.X, Y: p.Y},
			{X: p.X + math.Cos(angle)*length, Y: p.Y + math.Sin(angle)*length},
		}, 1, spark)
	}
}

// overlayMatrix draws a binary glyph with a column of fading ghosts above it.
func (r *ParticleRenderer) overlayMatrix(s Surface, p *components.Particle, alpha float64, f Frame) {
	size := math.Max(8, p.Size*4)

	s.SetGlobalAlpha(alpha)
	s.FillText(r.bit(), p.X, p.Y, size, Color(f.highlight()))

	green := palette.BackgroundPalette(components.BackgroundMatrix)[0]
	for i := 1; i <= matrixGhosts; i++ {
		fade := 1 - float64(i)/(matrixGhosts+1)
		s.FillText(r.bit(), p.X, p.Y-float64(i)*size, size, Color(withAlpha(green, alpha*fade*0.7)))
	}
}

func (r *ParticleRenderer) bit() string {
	if r.rng.Float64() < 0.5 {
		return "1"
	}
	return "0"
}

// overlayNebula swirls three dust puffs around the particle.
func (r *ParticleRenderer) overlayNebula(s Surface, p *components.Particle, alpha float64, f Frame) {
	colors := palette.BackgroundPalette(components.BackgroundNebula)
	time := f.NowMS * 0.001
	for i, c := range colors {
		angle := time + float64(i)*tau/float64(len(colors)) + p.X*0.01
		cx := p.X + math.Cos(angle)*p.Size*1.5
		cy := p.Y + math.Sin(angle)*p.Size*1.5
		g := NewRadialGradient(cx, cy, 0, cx, cy, p.Size*3).
			AddStop(0, withAlpha(c, alpha*0.25)).
			AddStop(1, withAlpha(c, 0))
		s.FillCircle(cx, cy, p.Size*3, g)
	}

	if r.rng.Float64() >= sparkleChance {
		return
	}
	ox := (r.rng.Float64() - 0.5) * p.Size * 4
	oy := (r.rng.Float64() - 0.5) * p.Size * 4
	s.FillCircle(p.X+ox, p.Y+oy, p.Size*0.4, Color(withAlpha(highlightDark, alpha)))
}

// overlayAurora draws a tall curtain that sways with time and position.
func (r *ParticleRenderer) overlayAurora(s Surface, p *components.Particle, alpha float64, f Frame) {
	wave := math.Sin(f.NowMS*0.002 + p.X*0.01)
	cy := p.Y + wave*p.Size*2
	half := p.Size * 5

	g := NewLinearGradient(p.X, cy-half, p.X, cy+half).
		AddStop(0, withAlpha("#00ff7f", 0)).
		AddStop(0.5, withAlpha(p.Color, alpha*0.4)).
		AddStop(1, withAlpha("#8a2be2", 0))
	s.FillEllipse(p.X, cy, p.Size*1.5, half, wave*0.3, g)
}

// overlaySynthwave draws a blurred neon core and a trail behind the motion.
func (r *ParticleRenderer) overlaySynthwave(s Surface, p *components.Particle, alpha float64) {
	s.SetShadow(p.Color, p.Size*3)
	s.FillCircle(p.X, p.Y, p.Size*0.8, Color(withAlpha(p.Color, alpha)))
	s.SetShadow("", 0)

	tx, ty := p.X-p.VX*6, p.Y-p.VY*6
	trail := NewLinearGradient(tx, ty, p.X, p.Y).
		AddStop(0, withAlpha("#ff1493", 0)).
		AddStop(1, withAlpha(p.Color, alpha*0.8))
	s.StrokePolyline([]components.Point{{X: tx, Y: ty}, {X: p.X, Y: p.Y}}, p.Size*0.6, trail)
}

// overlayOcean draws a bubble displaced by a travelling wave, with a glint.
func (r *ParticleRenderer) overlayOcean(s Surface, p *components.Particle, alpha float64, f Frame) {
	wave := math.Sin(f.NowMS*0.004+p.X*0.02) * p.Size
	bx, by := p.X+wave, p.Y
	radius := p.Size * 2.5

	g := NewRadialGradient(bx, by, 0, bx, by, radius).
		AddStop(0, withAlpha(p.Color, 0)).
		AddStop(0.7, withAlpha("#00bfff", alpha*0.25)).
		AddStop(1, withAlpha("#1e90ff", alpha*0.5))
	s.FillCircle(bx, by, radius, g)

	s.FillCircle(bx-p.Size*0.7, by-p.Size*0.7, p.Size*0.4, Color(withAlpha(f.highlight(), alpha*0.6)))
}
