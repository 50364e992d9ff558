package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/trails/components"
	"github.com/pthm-cable/trails/renderer"
)

// RaylibSurface draws renderer shapes with raylib. Shapes are tessellated
// on the CPU so gradients, global alpha and the transform stack behave the
// same as on a canvas; each triangle is then a single DrawTriangle call.
// It draws to whatever target is bound, screen or render texture.
type RaylibSurface struct {
	renderer.StateStack

	w, h float64
	mesh renderer.Mesh

	font   rl.Font
	loaded bool
}

// NewRaylibSurface creates a w x h surface. The window must be open before
// the first FillText.
func NewRaylibSurface(w, h float64) *RaylibSurface {
	return &RaylibSurface{StateStack: renderer.NewStateStack(), w: w, h: h}
}

// Size returns the surface dimensions.
func (s *RaylibSurface) Size() (float64, float64) { return s.w, s.h }

// Resize changes the surface dimensions.
func (s *RaylibSurface) Resize(w, h float64) {
	s.w, s.h = w, h
}

// FillRect fills a rectangle.
func (s *RaylibSurface) FillRect(x, y, w, h float64, paint renderer.Paint) {
	s.mesh.Rect(s.Cur, x, y, w, h, paint)
	s.flush()
}

// FillCircle fills a circle, with its shadow halo first.
func (s *RaylibSurface) FillCircle(x, y, r float64, paint renderer.Paint) {
	s.mesh.Halo(s.Cur, x, y, r)
	s.mesh.Circle(s.Cur, x, y, r, paint)
	s.flush()
}

// StrokeCircle outlines a circle.
func (s *RaylibSurface) StrokeCircle(x, y, r, width float64, paint renderer.Paint) {
	s.mesh.Halo(s.Cur, x, y, r)
	s.mesh.Ring(s.Cur, x, y, r, width, paint)
	s.flush()
}

// FillEllipse fills a rotated ellipse.
func (s *RaylibSurface) FillEllipse(x, y, rx, ry, rotation float64, paint renderer.Paint) {
	s.mesh.Halo(s.Cur, x, y, math.Max(rx, ry))
	s.mesh.Ellipse(s.Cur, x, y, rx, ry, rotation, paint)
	s.flush()
}

// FillPolygon fills a closed polygon. The halo is centred on the vertex
// centroid and reaches the farthest vertex.
func (s *RaylibSurface) FillPolygon(pts []components.Point, paint renderer.Paint) {
	if len(pts) >= 3 && s.Cur.ShadowBlur > 0 {
		var cx, cy float64
		for _, p := range pts {
			cx += p.X
			cy += p.Y
		}
		cx /= float64(len(pts))
		cy /= float64(len(pts))
		var r float64
		for _, p := range pts {
			r = math.Max(r, math.Hypot(p.X-cx, p.Y-cy))
		}
		s.mesh.Halo(s.Cur, cx, cy, r)
	}
	s.mesh.Polygon(s.Cur, pts, paint)
	s.flush()
}

// StrokePolyline strokes an open path. A shadow becomes a wider faint
// stroke underneath.
func (s *RaylibSurface) StrokePolyline(pts []components.Point, width float64, paint renderer.Paint) {
	if st := s.Cur; st.ShadowBlur > 0 && len(st.ShadowColor) >= 7 {
		blur := st.ShadowBlur
		st.Alpha *= 0.35
		st.ShadowBlur = 0
		s.mesh.Polyline(st, pts, width+blur, renderer.Color(st.ShadowColor[:7]))
	}
	s.mesh.Polyline(s.Cur, pts, width, paint)
	s.flush()
}

// FillText draws text centred on x with its baseline at y, rotated with
// the current transform.
func (s *RaylibSurface) FillText(text string, x, y, size float64, paint renderer.Paint) {
	if !s.loaded {
		s.font = rl.GetFontDefault()
		s.loaded = true
	}
	c := renderer.Sample(paint, x, y, s.Cur.Alpha)
	if c.A == 0 {
		return
	}
	px, py := s.Cur.Transform.Apply(x, y)
	fontSize := float32(size * s.Cur.Transform.Scale())
	spacing := fontSize / 10
	m := rl.MeasureTextEx(s.font, text, fontSize, spacing)

	rl.DrawTextPro(s.font, text,
		rl.Vector2{X: float32(px), Y: float32(py)},
		rl.Vector2{X: m.X / 2, Y: fontSize * 0.8},
		float32(s.Cur.Transform.Angle()*180/math.Pi),
		fontSize, spacing,
		rl.Color{R: c.R, G: c.G, B: c.B, A: c.A},
	)
}

// flush draws the tessellated triangles. Raylib culls clockwise triangles,
// so windings are flipped to anticlockwise on screen.
func (s *RaylibSurface) flush() {
	for _, t := range s.mesh.Tris {
		a, b, c := t.P[0], t.P[1], t.P[2]
		if t.SignedArea() > 0 {
			b, c = c, b
		}
		rl.DrawTriangle(vec(a), vec(b), vec(c), rl.Color{R: t.Color.R, G: t.Color.G, B: t.Color.B, A: t.Color.A})
	}
	s.mesh.Reset()
}

func vec(p components.Point) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}
