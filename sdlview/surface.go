// Package sdlview runs the particle canvas in an SDL window drawn with an
// HTML5-style canvas. Gradients, shadows and the transform stack map onto
// the canvas directly, so no tessellation is needed.
package sdlview

import (
	"fmt"
	"math"

	"github.com/tfriedel6/canvas"

	"github.com/pthm-cable/trails/components"
	"github.com/pthm-cable/trails/renderer"
)

// CanvasSurface adapts a *canvas.Canvas to renderer.Surface. The embedded
// StateStack mirrors the canvas state so GlobalAlpha can be read back.
type CanvasSurface struct {
	renderer.StateStack
	cv   *canvas.Canvas
	font *canvas.Font
}

// NewCanvasSurface wraps cv. Text is only drawn once a font is loaded.
func NewCanvasSurface(cv *canvas.Canvas) *CanvasSurface {
	cv.SetTextAlign(canvas.Center)
	cv.SetTextBaseline(canvas.Alphabetic)
	return &CanvasSurface{StateStack: renderer.NewStateStack(), cv: cv}
}

// LoadFont loads the TTF file used by FillText.
func (s *CanvasSurface) LoadFont(path string) error {
	font, err := s.cv.LoadFont(path)
	if err != nil {
		return fmt.Errorf("loading font %s: %w", path, err)
	}
	s.font = font
	return nil
}

// Size returns the canvas dimensions.
func (s *CanvasSurface) Size() (float64, float64) {
	return float64(s.cv.Width()), float64(s.cv.Height())
}

func (s *CanvasSurface) Save() {
	s.StateStack.Save()
	s.cv.Save()
}

func (s *CanvasSurface) Restore() {
	s.StateStack.Restore()
	s.cv.Restore()
}

func (s *CanvasSurface) Translate(x, y float64) {
	s.StateStack.Translate(x, y)
	s.cv.Translate(x, y)
}

func (s *CanvasSurface) Rotate(rad float64) {
	s.StateStack.Rotate(rad)
	s.cv.Rotate(rad)
}

func (s *CanvasSurface) SetGlobalAlpha(a float64) {
	s.StateStack.SetGlobalAlpha(a)
	s.cv.SetGlobalAlpha(s.Cur.Alpha)
}

func (s *CanvasSurface) SetShadow(color string, blur float64) {
	s.StateStack.SetShadow(color, blur)
	if blur <= 0 || color == "" {
		s.cv.SetShadowBlur(0)
		s.cv.SetShadowColor("#00000000")
		return
	}
	s.cv.SetShadowColor(color)
	s.cv.SetShadowBlur(blur)
}

func (s *CanvasSurface) FillRect(x, y, w, h float64, paint renderer.Paint) {
	if !s.fill(paint) {
		return
	}
	s.cv.FillRect(x, y, w, h)
}

func (s *CanvasSurface) FillCircle(x, y, r float64, paint renderer.Paint) {
	if r <= 0 || !s.fill(paint) {
		return
	}
	s.cv.BeginPath()
	s.cv.Arc(x, y, r, 0, 2*math.Pi, false)
	s.cv.Fill()
}

func (s *CanvasSurface) StrokeCircle(x, y, r, width float64, paint renderer.Paint) {
	if r <= 0 || !s.stroke(paint) {
		return
	}
	s.cv.SetLineWidth(width)
	s.cv.BeginPath()
	s.cv.Arc(x, y, r, 0, 2*math.Pi, false)
	s.cv.Stroke()
}

func (s *CanvasSurface) FillEllipse(x, y, rx, ry, rotation float64, paint renderer.Paint) {
	if rx <= 0 || ry <= 0 || !s.fill(paint) {
		return
	}
	s.cv.BeginPath()
	s.cv.Ellipse(x, y, rx, ry, rotation, 0, 2*math.Pi, false)
	s.cv.Fill()
}

func (s *CanvasSurface) FillPolygon(pts []components.Point, paint renderer.Paint) {
	if len(pts) < 3 || !s.fill(paint) {
		return
	}
	s.path(pts)
	s.cv.ClosePath()
	s.cv.Fill()
}

func (s *CanvasSurface) StrokePolyline(pts []components.Point, width float64, paint renderer.Paint) {
	if len(pts) < 2 || !s.stroke(paint) {
		return
	}
	s.cv.SetLineWidth(width)
	s.path(pts)
	s.cv.Stroke()
}

func (s *CanvasSurface) FillText(text string, x, y, size float64, paint renderer.Paint) {
	if s.font == nil || !s.fill(paint) {
		return
	}
	s.cv.SetFont(s.font, size)
	s.cv.FillText(text, x, y)
}

func (s *CanvasSurface) path(pts []components.Point) {
	s.cv.BeginPath()
	s.cv.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.cv.LineTo(p.X, p.Y)
	}
}

// fill sets paint as the fill style. It reports false for paints that
// draw nothing.
func (s *CanvasSurface) fill(paint renderer.Paint) bool {
	style, ok := s.style(paint)
	if ok {
		s.cv.SetFillStyle(style)
	}
	return ok
}

func (s *CanvasSurface) stroke(paint renderer.Paint) bool {
	style, ok := s.style(paint)
	if ok {
		s.cv.SetStrokeStyle(style)
	}
	return ok
}

func (s *CanvasSurface) style(paint renderer.Paint) (interface{}, bool) {
	if s.Cur.Alpha <= 0 {
		return nil, false
	}
	switch p := paint.(type) {
	case renderer.Color:
		return string(p), true
	case *renderer.Gradient:
		if p.Kind == renderer.GradientRadial {
			g := s.cv.CreateRadialGradient(p.X0, p.Y0, p.R0, p.X1, p.Y1, p.R1)
			for _, st := range p.Stops {
				g.AddColorStop(st.Offset, st.Color)
			}
			return g, true
		}
		g := s.cv.CreateLinearGradient(p.X0, p.Y0, p.X1, p.Y1)
		for _, st := range p.Stops {
			g.AddColorStop(st.Offset, st.Color)
		}
		return g, true
	}
	return nil, false
}
