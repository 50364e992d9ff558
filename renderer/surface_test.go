package renderer

import (
	"math"
	"testing"

	"github.com/pthm-cable/trails/components"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestLinearGradientColorAt(t *testing.T) {
	g := NewLinearGradient(0, 0, 100, 0).
		AddStop(0, "#000000").
		AddStop(1, "#ffffff")

	tests := []struct {
		x    float64
		want uint8
	}{
		{-10, 0},
		{0, 0},
		{50, 128},
		{100, 255},
		{200, 255},
	}
	for _, tc := range tests {
		r, gr, b, a := g.ColorAt(tc.x, 25)
		if r != tc.want || gr != tc.want || b != tc.want || a != 255 {
			t.Errorf("ColorAt(%v) = (%d,%d,%d,%d), want grey %d", tc.x, r, gr, b, a, tc.want)
		}
	}
}

func TestRadialGradientParam(t *testing.T) {
	g := NewRadialGradient(50, 50, 0, 50, 50, 10).
		AddStop(0, "#ff000080").
		AddStop(1, "#ff000000")

	tests := []struct {
		x, y float64
		t    float64
	}{
		{50, 50, 0},
		{55, 50, 0.5},
		{50, 58, 0.8},
		{70, 50, 1},
	}
	for _, tc := range tests {
		got, ok := g.Param(tc.x, tc.y)
		if !ok || !near(got, tc.t) {
			t.Errorf("Param(%v, %v) = %v, %v; want %v", tc.x, tc.y, got, ok, tc.t)
		}
	}

	if _, _, _, a := g.ColorAt(55, 50); a != 64 {
		t.Errorf("alpha at midpoint = %d, want 64", a)
	}
}

func TestRadialGradientOffsetCentres(t *testing.T) {
	// Focal point inside the end circle: every point inside is defined
	g := NewRadialGradient(52, 50, 0, 50, 50, 12).AddStop(0, "#ffffff").AddStop(1, "#000000")
	for _, pt := range [][2]float64{{50, 50}, {60, 50}, {40, 45}, {52, 50}} {
		if _, ok := g.Param(pt[0], pt[1]); !ok {
			t.Errorf("Param(%v) undefined inside end circle", pt)
		}
	}
	if got, _ := g.Param(52, 50); !near(got, 0) {
		t.Errorf("focal point t = %v, want 0", got)
	}
}

func TestGradientWithoutStops(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 10)
	if r, gr, b, a := g.ColorAt(5, 5); r|gr|b|a != 0 {
		t.Errorf("empty gradient should be transparent, got (%d,%d,%d,%d)", r, gr, b, a)
	}
}

func TestGradientUnsortedStops(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0).
		AddStop(1, "#0000ff").
		AddStop(0, "#ff0000")
	if r, _, b, _ := g.ColorAt(0, 0); r != 255 || b != 0 {
		t.Errorf("start colour = (%d, _, %d), want red", r, b)
	}
}

func TestMatrix(t *testing.T) {
	m := Identity.Translate(10, 20).Rotate(math.Pi / 2)
	x, y := m.Apply(1, 0)
	if !near(x, 10) || !near(y, 21) {
		t.Errorf("Apply(1, 0) = (%v, %v), want (10, 21)", x, y)
	}
	if !near(m.Angle(), math.Pi/2) {
		t.Errorf("angle = %v, want pi/2", m.Angle())
	}
	if !near(m.Scale(), 1) {
		t.Errorf("scale = %v, want 1", m.Scale())
	}
}

func TestQuadraticPoints(t *testing.T) {
	from := components.Point{X: 0, Y: 0}
	ctrl := components.Point{X: 1, Y: 1}
	to := components.Point{X: 2, Y: 0}

	pts := QuadraticPoints(from, ctrl, to, 2)
	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(pts))
	}
	if !near(pts[0].X, 1) || !near(pts[0].Y, 0.5) {
		t.Errorf("midpoint = %+v, want (1, 0.5)", pts[0])
	}
	if pts[1] != to {
		t.Errorf("last point = %+v, want %+v", pts[1], to)
	}

	if got := QuadraticPoints(from, ctrl, to, 0); len(got) != 1 || got[0] != to {
		t.Errorf("zero segments should yield the end point, got %v", got)
	}
}

func TestStateStack(t *testing.T) {
	s := NewStateStack()

	s.SetGlobalAlpha(0.5)
	s.Save()
	s.SetGlobalAlpha(1.5)
	if s.GlobalAlpha() != 1 {
		t.Errorf("alpha should clamp to 1, got %v", s.GlobalAlpha())
	}
	s.SetGlobalAlpha(-0.2)
	if s.GlobalAlpha() != 0 {
		t.Errorf("alpha should clamp to 0, got %v", s.GlobalAlpha())
	}
	s.Translate(5, 5)
	s.SetShadow("#ff00ff", 4)
	s.Restore()

	if s.GlobalAlpha() != 0.5 {
		t.Errorf("restored alpha = %v, want 0.5", s.GlobalAlpha())
	}
	if s.Cur.Transform != Identity {
		t.Errorf("restored transform = %+v, want identity", s.Cur.Transform)
	}
	if s.Cur.ShadowBlur != 0 || s.Cur.ShadowColor != "" {
		t.Errorf("shadow not restored: %+v", s.Cur)
	}

	// Unbalanced restore is a no-op
	s.Restore()
	if s.Depth() != 0 || s.GlobalAlpha() != 0.5 {
		t.Errorf("unbalanced restore changed state: %+v", s.Cur)
	}
}
