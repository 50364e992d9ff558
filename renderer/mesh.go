package renderer

import (
	"math"

	"github.com/pthm-cable/trails/components"
	"github.com/pthm-cable/trails/palette"
)

// RGBA is a non-premultiplied 8-bit colour.
type RGBA struct {
	R, G, B, A uint8
}

// Triangle is a flat-shaded triangle in surface coordinates.
type Triangle struct {
	P     [3]components.Point
	Color RGBA
}

// SignedArea returns twice the signed area; negative means the vertices
// run anticlockwise on a y-down surface.
func (t Triangle) SignedArea() float64 {
	a, b, c := t.P[0], t.P[1], t.P[2]
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Mesh tessellates Surface shapes into flat-shaded triangles for back ends
// that only draw solid triangles. Gradients are sampled per triangle, so
// shapes painted with one are subdivided more finely.
type Mesh struct {
	Tris []Triangle
}

// Reset drops the triangles while keeping the backing array.
func (m *Mesh) Reset() { m.Tris = m.Tris[:0] }

const (
	gradientCells = 16
	maxRings      = 24
	segmentLength = 6.0 // target arc length per circle segment, in pixels
)

// Rect adds the rectangle (x, y, w, h) drawn under st.
func (m *Mesh) Rect(st State, x, y, w, h float64, paint Paint) {
	cells := 1
	if _, ok := paint.(*Gradient); ok {
		cells = gradientCells
	}
	cw, ch := w/float64(cells), h/float64(cells)
	for i := 0; i < cells; i++ {
		for j := 0; j < cells; j++ {
			x0, y0 := x+float64(i)*cw, y+float64(j)*ch
			m.quad(st, paint,
				components.Point{X: x0, Y: y0},
				components.Point{X: x0 + cw, Y: y0},
				components.Point{X: x0 + cw, Y: y0 + ch},
				components.Point{X: x0, Y: y0 + ch},
			)
		}
	}
}

// Circle adds a filled circle. Radial gradients are drawn as concentric
// rings so the colour varies with distance from the centre.
func (m *Mesh) Circle(st State, x, y, r float64, paint Paint) {
	if r <= 0 {
		return
	}
	screenR := r * st.Transform.Scale()
	segs := segmentsFor(screenR)
	rings := 1
	if _, ok := paint.(*Gradient); ok {
		rings = clampInt(int(screenR/4), 4, maxRings)
	}
	m.annulus(st, paint, x, y, 0, r, rings, segs)
}

// Ring adds a circle outline of the given stroke width.
func (m *Mesh) Ring(st State, x, y, r, width float64, paint Paint) {
	inner := math.Max(0, r-width/2)
	outer := r + width/2
	m.annulus(st, paint, x, y, inner, outer, 1, segmentsFor(outer*st.Transform.Scale()))
}

// Ellipse adds an ellipse with radii rx, ry rotated by rotation radians.
func (m *Mesh) Ellipse(st State, x, y, rx, ry, rotation float64, paint Paint) {
	if rx <= 0 || ry <= 0 {
		return
	}
	segs := segmentsFor(math.Max(rx, ry) * st.Transform.Scale())
	sin, cos := math.Sincos(rotation)
	pts := make([]components.Point, segs)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segs)
		ex, ey := rx*math.Cos(a), ry*math.Sin(a)
		pts[i] = components.Point{X: x + ex*cos - ey*sin, Y: y + ex*sin + ey*cos}
	}
	m.fan(st, paint, components.Point{X: x, Y: y}, pts)
}

// Polygon adds a closed polygon fanned from its vertex centroid, which
// covers convex and star-shaped outlines.
func (m *Mesh) Polygon(st State, pts []components.Point, paint Paint) {
	if len(pts) < 3 {
		return
	}
	var c components.Point
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= float64(len(pts))
	c.Y /= float64(len(pts))
	m.fan(st, paint, c, pts)
}

// Polyline adds a stroked open path with round joins.
func (m *Mesh) Polyline(st State, pts []components.Point, width float64, paint Paint) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	half := width / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half
		m.quad(st, paint,
			components.Point{X: a.X + nx, Y: a.Y + ny},
			components.Point{X: b.X + nx, Y: b.Y + ny},
			components.Point{X: b.X - nx, Y: b.Y - ny},
			components.Point{X: a.X - nx, Y: a.Y - ny},
		)
	}
	if half*st.Transform.Scale() < 1.5 {
		return
	}
	for _, p := range pts[1 : len(pts)-1] {
		m.annulus(st, paint, p.X, p.Y, 0, half, 1, 8)
	}
}

// Halo adds the soft shadow st describes around a shape of radius r
// centred at (x, y). It adds nothing when st has no shadow.
func (m *Mesh) Halo(st State, x, y, r float64) {
	if st.ShadowBlur <= 0 || len(st.ShadowColor) < 7 {
		return
	}
	base := st.ShadowColor[:7]
	outer := r + st.ShadowBlur
	g := NewRadialGradient(x, y, 0, x, y, outer).
		AddStop(0, palette.WithAlpha(base, 0.6)).
		AddStop(r/outer, palette.WithAlpha(base, 0.35)).
		AddStop(1, palette.WithAlpha(base, 0))
	st.ShadowBlur = 0
	m.Circle(st, x, y, outer, g)
}

// annulus adds rings between radii r0 and r1 with segs segments each.
func (m *Mesh) annulus(st State, paint Paint, x, y, r0, r1 float64, rings, segs int) {
	step := (r1 - r0) / float64(rings)
	for k := 0; k < rings; k++ {
		ri, ro := r0+float64(k)*step, r0+float64(k+1)*step
		for i := 0; i < segs; i++ {
			a0 := 2 * math.Pi * float64(i) / float64(segs)
			a1 := 2 * math.Pi * float64(i+1) / float64(segs)
			s0, c0 := math.Sincos(a0)
			s1, c1 := math.Sincos(a1)
			outer0 := components.Point{X: x + ro*c0, Y: y + ro*s0}
			outer1 := components.Point{X: x + ro*c1, Y: y + ro*s1}
			if ri == 0 {
				m.tri(st, paint, components.Point{X: x, Y: y}, outer0, outer1)
				continue
			}
			m.quad(st, paint,
				components.Point{X: x + ri*c0, Y: y + ri*s0},
				outer0, outer1,
				components.Point{X: x + ri*c1, Y: y + ri*s1},
			)
		}
	}
}

func (m *Mesh) fan(st State, paint Paint, c components.Point, pts []components.Point) {
	for i := range pts {
		m.tri(st, paint, c, pts[i], pts[(i+1)%len(pts)])
	}
}

// quad adds a-b-c-d as two triangles sharing one colour sampled at the
// quad's centre.
func (m *Mesh) quad(st State, paint Paint, a, b, c, d components.Point) {
	col := sample(paint, (a.X+b.X+c.X+d.X)/4, (a.Y+b.Y+c.Y+d.Y)/4, st.Alpha)
	if col.A == 0 {
		return
	}
	pa, pb, pc, pd := apply(st, a), apply(st, b), apply(st, c), apply(st, d)
	m.Tris = append(m.Tris,
		Triangle{P: [3]components.Point{pa, pb, pc}, Color: col},
		Triangle{P: [3]components.Point{pa, pc, pd}, Color: col},
	)
}

func (m *Mesh) tri(st State, paint Paint, a, b, c components.Point) {
	col := sample(paint, (a.X+b.X+c.X)/3, (a.Y+b.Y+c.Y)/3, st.Alpha)
	if col.A == 0 {
		return
	}
	m.Tris = append(m.Tris, Triangle{P: [3]components.Point{apply(st, a), apply(st, b), apply(st, c)}, Color: col})
}

func apply(st State, p components.Point) components.Point {
	x, y := st.Transform.Apply(p.X, p.Y)
	return components.Point{X: x, Y: y}
}

// sample resolves paint at local point (x, y) and scales its alpha.
func sample(paint Paint, x, y, alpha float64) RGBA {
	var r, g, b, a uint8
	switch p := paint.(type) {
	case Color:
		r, g, b, a = colorOf(string(p))
	case *Gradient:
		r, g, b, a = p.ColorAt(x, y)
	default:
		return RGBA{}
	}
	return RGBA{R: r, G: g, B: b, A: uint8(math.Round(float64(a) * clamp01(alpha)))}
}

// Sample is sample for back ends that draw some shapes natively.
func Sample(paint Paint, x, y, alpha float64) RGBA { return sample(paint, x, y, alpha) }

func segmentsFor(screenR float64) int {
	return clampInt(int(math.Ceil(2*math.Pi*screenR/segmentLength)), 12, 96)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
