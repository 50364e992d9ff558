package renderer

import (
	"math"

	"github.com/pthm-cable/trails/components"
	"github.com/pthm-cable/trails/palette"
)

const tau = 2 * math.Pi

// withAlpha is shorthand for the hex+alpha stop colours every style uses.
func withAlpha(color string, a float64) string {
	return palette.WithAlpha(color, a)
}

// drawDefault is a plain disc with a faint halo.
func (r *ParticleRenderer) drawDefault(s Surface, p *components.Particle, alpha float64) {
	halo := NewRadialGradient(p.X, p.Y, 0, p.X, p.Y, p.Size*2).
		AddStop(0, withAlpha(p.Color, alpha*0.3)).
		AddStop(1, withAlpha(p.Color, 0))
	s.FillCircle(p.X, p.Y, p.Size*2, halo)

	s.SetGlobalAlpha(alpha)
	s.FillCircle(p.X, p.Y, p.Size, Color(p.Color))
}

func (r *ParticleRenderer) drawGlow(s Surface, p *components.Particle, alpha float64, f Frame) {
	for i := 0; i < 3; i++ {
		radius := p.Size * float64(3+i*2)
		opacity := alpha * (0.4 - float64(i)*0.1)

		g := NewRadialGradient(p.X, p.Y, 0, p.X, p.Y, radius).
			AddStop(0, withAlpha(p.Color, opacity)).
			AddStop(0.3, withAlpha(p.Color, opacity*0.5)).
			AddStop(1, withAlpha(p.Color, 0))
		s.FillCircle(p.X, p.Y, radius, g)
	}

	s.SetGlobalAlpha(alpha * 0.8)
	s.FillCircle(p.X, p.Y, p.Size*0.3, Color(f.highlight()))
}

func (r *ParticleRenderer) drawCrystalline(s Surface, p *components.Particle, alpha float64, f Frame) {
	const sides = 8
	step := tau / sides

	s.SetGlobalAlpha(alpha)
	s.Translate(p.X, p.Y)
	s.Rotate(p.Life * 0.05)

	outline := make([]components.Point, 0, sides+1)
	for i := 0; i < sides; i++ {
		radius := p.Size * 1.2
		if i%2 == 0 {
			radius = p.Size * 2
		}
		outline = append(outline, components.Point{
			X: math.Cos(float64(i)*step) * radius,
			Y: math.Sin(float64(i)*step) * radius,
		})
	}
	s.FillPolygon(outline, Color(withAlpha(p.Color, 0.25)))
	s.StrokePolyline(append(outline, outline[0]), 2, Color(p.Color))

	// Facets join opposite vertices of the inner ring
	inner := p.Size * 0.5
	for i := 0; i < sides; i += 2 {
		a1, a2 := float64(i)*step, float64(i+4)*step
		s.StrokePolyline([]components.Point{
			{X: math.Cos(a1) * inner, Y: math.Sin(a1) * inner},
			{X: math.Cos(a2) * inner, Y: math.Sin(a2) * inner},
		}, 1, Color(f.highlight()))
	}
}

func (r *ParticleRenderer) drawPlasma(s Surface, p *components.Particle, alpha float64, f Frame) {
	time := f.NowMS * 0.01
	pulse1 := math.Sin(time+p.X*0.01)*0.5 + 0.7
	pulse2 := math.Cos(time*1.3+p.Y*0.01)*0.3 + 0.8

	g := NewRadialGradient(
		p.X+math.Sin(time)*2, p.Y+math.Cos(time*1.2)*2, 0,
		p.X, p.Y, p.Size*4,
	).
		AddStop(0, withAlpha(f.highlight(), alpha*pulse1)).
		AddStop(0.2, withAlpha(p.Color, alpha*pulse2*0.86)).
		AddStop(0.5, withAlpha(p.Color, alpha*pulse1*0.59)).
		AddStop(1, withAlpha(p.Color, 0))
	s.FillCircle(p.X, p.Y, p.Size*4, g)

	if r.rng.Float64() >= 0.4 {
		return
	}
	tendril := Color(withAlpha(p.Color, alpha*0.7))
	for i := 0; i < 3; i++ {
		angle := tau*float64(i)/3 + time
		length := p.Size * (2 + math.Sin(time+float64(i))*1.5)
		s.StrokePolyline([]components.Point{
			{X: p.X, Y: p.Y},
			{X: p.X + math.Cos(angle)*length, Y: p.Y + math.Sin(angle)*length},
		}, p.Size*0.3, tendril)
	}
}

func (r *ParticleRenderer) drawStardust(s Surface, p *components.Particle, alpha float64, f Frame) {
	const spikes = 12
	twinkle := math.Sin(f.NowMS*0.02+p.X)*0.7 + 0.3
	outer := p.Size * 2
	inner := p.Size * 0.6

	s.SetGlobalAlpha(alpha * twinkle)
	s.Translate(p.X, p.Y)
	s.Rotate(p.Life * 0.08)

	g := NewRadialGradient(0, 0, 0, 0, 0, outer*2).
		AddStop(0, withAlpha(p.Color, alpha*0.59)).
		AddStop(0.5, withAlpha(p.Color, alpha*0.38)).
		AddStop(1, withAlpha(p.Color, 0))
	s.FillCircle(0, 0, outer*2, g)

	star := make([]components.Point, 0, spikes*2)
	for i := 0; i < spikes*2; i++ {
		radius := inner
		if i%2 == 0 {
			radius = outer
		}
		angle := float64(i) * math.Pi / spikes
		star = append(star, components.Point{X: math.Cos(angle) * radius, Y: math.Sin(angle) * radius})
	}
	s.FillPolygon(star, Color(p.Color))

	s.FillCircle(0, 0, p.Size*0.3, Color(f.highlight()))
}

func (r *ParticleRenderer) drawEnergy(s Surface, p *components.Particle, alpha float64, f Frame) {
	time := f.NowMS * 0.02
	energy := math.Sin(time+p.X*0.01)*0.5 + 0.6

	core := NewRadialGradient(p.X, p.Y, 0, p.X, p.Y, p.Size*3).
		AddStop(0, withAlpha(f.highlight(), alpha*energy)).
		AddStop(0.2, withAlpha(p.Color, alpha*0.86)).
		AddStop(0.6, withAlpha(p.Color, alpha*0.47)).
		AddStop(1, withAlpha(p.Color, 0))
	s.FillCircle(p.X, p.Y, p.Size*3, core)

	for i := 1; i <= 3; i++ {
		ringAlpha := alpha * (0.6 - float64(i)*0.15) * energy
		radius := p.Size * (1 + float64(i)*1.5)
		s.StrokeCircle(p.X, p.Y, radius, p.Size*0.2, Color(withAlpha(p.Color, ringAlpha)))
	}
}

func (r *ParticleRenderer) drawEthereal(s Surface, p *components.Particle, alpha float64, f Frame) {
	time := f.NowMS * 0.003
	flow := math.Sin(time+p.X*0.005)*0.4 + 0.6

	s.SetGlobalAlpha(alpha * 0.7 * flow)
	s.SetShadow(p.Color, p.Size*4)

	for i := 0; i < 4; i++ {
		fi := float64(i)
		cx := p.X + math.Sin(time+fi)*p.Size*2
		cy := p.Y + math.Cos(time*0.7+fi)*p.Size*1.5

		g := NewRadialGradient(cx, cy, 0, cx, cy, p.Size*6).
			AddStop(0, withAlpha(p.Color, alpha*0.31*flow)).
			AddStop(0.4, withAlpha(p.Color, alpha*0.16*flow)).
			AddStop(1, withAlpha(p.Color, 0))
		s.FillCircle(cx, cy, p.Size*6, g)
	}

	s.SetShadow("", 0)
}

func (r *ParticleRenderer) drawDigital(s Surface, p *components.Particle, alpha float64, f Frame) {
	const grid = 5
	pixel := p.Size * 0.8
	reach := p.Size * 3

	s.SetGlobalAlpha(alpha)
	s.Translate(p.X, p.Y)
	s.Rotate(p.Life * 0.02)

	fill := Color(p.Color)
	for gx := -grid; gx <= grid; gx++ {
		for gy := -grid; gy <= grid; gy++ {
			if r.rng.Float64() >= 0.7 {
				continue
			}
			px, py := float64(gx)*pixel, float64(gy)*pixel
			dist := math.Hypot(px, py)
			if dist < reach {
				s.SetGlobalAlpha(alpha * (1 - dist/reach))
				s.FillRect(px-pixel/2, py-pixel/2, pixel, pixel, fill)
			}
		}
	}

	glyph := "0"
	if r.rng.Float64() < 0.5 {
		glyph = "1"
	}
	s.SetGlobalAlpha(alpha * 0.8)
	s.FillText(glyph, 0, p.Size*0.3, p.Size, Color(f.highlight()))
}

func (r *ParticleRenderer) drawFlame(s Surface, p *components.Particle, alpha float64, f Frame) {
	const curveSegments = 6
	time := f.NowMS * 0.02
	flicker := math.Sin(time+p.X*0.1)*0.3 + 0.7

	g := NewRadialGradient(p.X, p.Y+p.Size, 0, p.X, p.Y-p.Size, p.Size*4).
		AddStop(0, withAlpha("#ffff00", alpha*flicker)).
		AddStop(0.3, withAlpha("#ff8800", alpha*flicker*0.78)).
		AddStop(0.6, withAlpha("#ff0000", alpha*flicker*0.59)).
		AddStop(1, withAlpha("#aa0000", alpha*flicker*0.20))

	height := p.Size * 4
	width := p.Size * 2

	start := components.Point{X: p.X - width/2, Y: p.Y + p.Size}
	leftMid := components.Point{X: p.X + math.Sin(time*2)*3, Y: p.Y - height/2}
	tip := components.Point{X: p.X, Y: p.Y - height}
	rightMid := components.Point{X: p.X - math.Sin(time*2)*3, Y: p.Y - height/2}
	end := components.Point{X: p.X + width/2, Y: p.Y + p.Size}

	path := []components.Point{start}
	path = append(path, QuadraticPoints(start,
		components.Point{X: p.X - width/3 + math.Sin(time)*2, Y: p.Y}, leftMid, curveSegments)...)
	path = append(path, QuadraticPoints(leftMid,
		components.Point{X: p.X + math.Sin(time*1.5)*2, Y: p.Y - height*0.8}, tip, curveSegments)...)
	path = append(path, QuadraticPoints(tip,
		components.Point{X: p.X - math.Sin(time*1.5)*2, Y: p.Y - height*0.8}, rightMid, curveSegments)...)
	path = append(path, QuadraticPoints(rightMid,
		components.Point{X: p.X + width/3 - math.Sin(time)*2, Y: p.Y}, end, curveSegments)...)

	s.FillPolygon(path, g)
}

func (r *ParticleRenderer) drawElectric(s Surface, p *components.Particle, alpha float64, f Frame) {
	const (
		arcs     = 6
		segments = 8
	)

	s.SetGlobalAlpha(alpha)
	s.FillCircle(p.X, p.Y, p.Size*0.5, Color(f.highlight()))

	arc := Color(withAlpha("#00ffff", alpha))
	for i := 0; i < arcs; i++ {
		angle := tau*float64(i)/arcs + f.NowMS*0.01
		length := p.Size * (3 + r.rng.Float64()*2)

		pts := make([]components.Point, 0, segments+1)
		pts = append(pts, components.Point{X: p.X, Y: p.Y})
		for j := 1; j <= segments; j++ {
			progress := float64(j) / segments
			jx := (r.rng.Float64() - 0.5) * p.Size * 2 * progress
			jy := (r.rng.Float64() - 0.5) * p.Size * 2 * progress
			pts = append(pts, components.Point{
				X: p.X + math.Cos(angle)*length*progress + jx,
				Y: p.Y + math.Sin(angle)*length*progress + jy,
			})
		}
		s.StrokePolyline(pts, 2, arc)
	}

	glow := NewRadialGradient(p.X, p.Y, 0, p.X, p.Y, p.Size*6).
		AddStop(0, withAlpha("#00ffff", alpha*0.39)).
		AddStop(0.5, withAlpha("#0088ff", alpha*0.24)).
		AddStop(1, withAlpha("#0088ff", 0))
	s.FillCircle(p.X, p.Y, p.Size*6, glow)
}
