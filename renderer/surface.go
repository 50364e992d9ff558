// Package renderer draws particles and themed backdrops onto a 2D Surface.
package renderer

import (
	"math"
	"sort"

	"github.com/pthm-cable/trails/components"
	"github.com/pthm-cable/trails/palette"
)

// Surface is a 2D drawing context. Transforms, global alpha and shadow are
// part of the state saved by Save and restored by Restore.
type Surface interface {
	Size() (w, h float64)

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(radians float64)
	SetGlobalAlpha(a float64)
	GlobalAlpha() float64
	SetShadow(color string, blur float64)

	FillRect(x, y, w, h float64, paint Paint)
	FillCircle(x, y, r float64, paint Paint)
	StrokeCircle(x, y, r, width float64, paint Paint)
	FillEllipse(x, y, rx, ry, rotation float64, paint Paint)
	FillPolygon(pts []components.Point, paint Paint)
	StrokePolyline(pts []components.Point, width float64, paint Paint)
	// FillText draws text centred on x with its baseline at y.
	FillText(text string, x, y, size float64, paint Paint)
}

// Paint is a fill or stroke source: a Color or a *Gradient.
type Paint interface {
	paint()
}

// Color is a solid "#rrggbb" or "#rrggbbaa" colour.
type Color string

func (Color) paint() {}

// GradientKind selects linear or radial interpolation.
type GradientKind uint8

const (
	GradientLinear GradientKind = iota
	GradientRadial
)

// Stop is one colour stop of a gradient.
type Stop struct {
	Offset float64
	Color  string
}

// Gradient is a multi-stop linear or two-circle radial gradient.
type Gradient struct {
	Kind   GradientKind
	X0, Y0 float64
	R0     float64
	X1, Y1 float64
	R1     float64
	Stops  []Stop
}

func (*Gradient) paint() {}

// NewLinearGradient creates a gradient along the line (x0, y0)-(x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *Gradient {
	return &Gradient{Kind: GradientLinear, X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// NewRadialGradient creates a gradient between two circles.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) *Gradient {
	return &Gradient{Kind: GradientRadial, X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1}
}

// AddStop appends a colour stop and returns g for chaining.
func (g *Gradient) AddStop(offset float64, color string) *Gradient {
	g.Stops = append(g.Stops, Stop{Offset: clamp01(offset), Color: color})
	return g
}

// Param returns the gradient parameter t at (x, y), clamped to [0, 1].
// ok is false where a radial gradient is undefined.
func (g *Gradient) Param(x, y float64) (t float64, ok bool) {
	switch g.Kind {
	case GradientRadial:
		return g.radialParam(x, y)
	default:
		dx, dy := g.X1-g.X0, g.Y1-g.Y0
		l2 := dx*dx + dy*dy
		if l2 == 0 {
			return 0, true
		}
		return clamp01(((x-g.X0)*dx + (y-g.Y0)*dy) / l2), true
	}
}

// radialParam solves |p - c(t)| = r(t) for the largest t with r(t) >= 0,
// where c and r interpolate between the start and end circles.
func (g *Gradient) radialParam(x, y float64) (float64, bool) {
	cdx, cdy := g.X1-g.X0, g.Y1-g.Y0
	dr := g.R1 - g.R0
	qx, qy := x-g.X0, y-g.Y0

	a := cdx*cdx + cdy*cdy - dr*dr
	b := -2 * (qx*cdx + qy*cdy + g.R0*dr)
	c := qx*qx + qy*qy - g.R0*g.R0

	var t float64
	if math.Abs(a) < 1e-12 {
		if b == 0 {
			return 0, false
		}
		t = -c / b
	} else {
		disc := b*b - 4*a*c
		if disc < 0 {
			return 0, false
		}
		sq := math.Sqrt(disc)
		t1 := (-b + sq) / (2 * a)
		t2 := (-b - sq) / (2 * a)
		t = math.Max(t1, t2)
		if g.R0+t*dr < 0 {
			t = math.Min(t1, t2)
		}
	}
	if g.R0+t*dr < 0 {
		return 0, false
	}
	return clamp01(t), true
}

// ColorAt evaluates the gradient at (x, y) as non-premultiplied RGBA.
func (g *Gradient) ColorAt(x, y float64) (r, gr, b, a uint8) {
	t, ok := g.Param(x, y)
	if !ok || len(g.Stops) == 0 {
		return 0, 0, 0, 0
	}
	return g.colorAtParam(t)
}

func (g *Gradient) colorAtParam(t float64) (r, gr, b, a uint8) {
	stops := g.Stops
	if !sort.SliceIsSorted(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset }) {
		stops = append([]Stop(nil), stops...)
		sort.SliceStable(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset })
	}

	if t <= stops[0].Offset {
		return colorOf(stops[0].Color)
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return colorOf(last.Color)
	}

	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if t > hi.Offset {
			continue
		}
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return colorOf(hi.Color)
		}
		f := (t - lo.Offset) / span
		r0, g0, b0, a0 := colorOf(lo.Color)
		r1, g1, b1, a1 := colorOf(hi.Color)
		return lerp8(r0, r1, f), lerp8(g0, g1, f), lerp8(b0, b1, f), lerp8(a0, a1, f)
	}
	return colorOf(last.Color)
}

func colorOf(s string) (r, g, b, a uint8) {
	r, g, b, a, ok := palette.ParseHex(s)
	if !ok {
		return 0, 0, 0, 0
	}
	return r, g, b, a
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// QuadraticPoints flattens a quadratic Bezier into segments points, excluding
// the start point so consecutive curves can be appended to one path.
func QuadraticPoints(from, ctrl, to components.Point, segments int) []components.Point {
	if segments < 1 {
		segments = 1
	}
	pts := make([]components.Point, 0, segments)
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		mt := 1 - t
		pts = append(pts, components.Point{
			X: mt*mt*from.X + 2*mt*t*ctrl.X + t*t*to.X,
			Y: mt*mt*from.Y + 2*mt*t*ctrl.Y + t*t*to.Y,
		})
	}
	return pts
}

// Matrix is a 2D affine transform: x' = A*x + C*y + E, y' = B*x + D*y + F.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix{A: 1, D: 1}

// Translate returns m followed by a translation in local coordinates.
func (m Matrix) Translate(x, y float64) Matrix {
	m.E += m.A*x + m.C*y
	m.F += m.B*x + m.D*y
	return m
}

// Rotate returns m followed by a rotation in local coordinates.
func (m Matrix) Rotate(rad float64) Matrix {
	sin, cos := math.Sincos(rad)
	return Matrix{
		A: m.A*cos + m.C*sin,
		B: m.B*cos + m.D*sin,
		C: m.C*cos - m.A*sin,
		D: m.D*cos - m.B*sin,
		E: m.E,
		F: m.F,
	}
}

// Apply transforms a point.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Scale returns the uniform scale factor of m.
func (m Matrix) Scale() float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}

// Angle returns the rotation of m in radians.
func (m Matrix) Angle() float64 {
	return math.Atan2(m.B, m.A)
}

// State is the saveable drawing state shared by Surface implementations.
type State struct {
	Transform   Matrix
	Alpha       float64
	ShadowColor string
	ShadowBlur  float64
}

// StateStack implements the Save/Restore bookkeeping for a Surface.
type StateStack struct {
	Cur   State
	saved []State
}

// NewStateStack returns a stack at identity transform and full alpha.
func NewStateStack() StateStack {
	return StateStack{Cur: State{Transform: Identity, Alpha: 1}}
}

func (s *StateStack) Save() { s.saved = append(s.saved, s.Cur) }

// Restore pops the last saved state. Unbalanced calls are ignored.
func (s *StateStack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.Cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *StateStack) Translate(x, y float64) { s.Cur.Transform = s.Cur.Transform.Translate(x, y) }
func (s *StateStack) Rotate(rad float64)     { s.Cur.Transform = s.Cur.Transform.Rotate(rad) }

// SetGlobalAlpha clamps a to [0, 1]. NaN is ignored.
func (s *StateStack) SetGlobalAlpha(a float64) {
	if math.IsNaN(a) {
		return
	}
	s.Cur.Alpha = clamp01(a)
}

func (s *StateStack) GlobalAlpha() float64 { return s.Cur.Alpha }

func (s *StateStack) SetShadow(color string, blur float64) {
	s.Cur.ShadowColor = color
	s.Cur.ShadowBlur = math.Max(0, blur)
}

// Depth returns the number of saved states.
func (s *StateStack) Depth() int { return len(s.saved) }
