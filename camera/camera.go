// Package camera maps pointer coordinates onto the drawing surface.
package camera

// Camera describes where the drawing surface sits inside the client area.
// Pointer events arrive in client coordinates; particles live in surface
// coordinates.
type Camera struct {
	// Bounding-rect offset of the surface within the client area
	Left, Top float64

	// Surface dimensions
	W, H float64

	// Client pixels per surface pixel (1 unless the surface is scaled)
	Scale float64
}

// New creates a camera for a w x h surface at the client origin.
func New(w, h float64) *Camera {
	return &Camera{W: w, H: h, Scale: 1}
}

// SetOffset moves the surface's bounding rect within the client area.
func (c *Camera) SetOffset(left, top float64) {
	c.Left = left
	c.Top = top
}

// SetScale sets the client-to-surface pixel ratio. Non-positive values
// reset it to 1.
func (c *Camera) SetScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	c.Scale = scale
}

// ClientToSurface converts a client point to surface coordinates by
// subtracting the bounding-rect offset.
func (c *Camera) ClientToSurface(cx, cy float64) (x, y float64) {
	return (cx - c.Left) / c.Scale, (cy - c.Top) / c.Scale
}

// SurfaceToClient is the inverse of ClientToSurface.
func (c *Camera) SurfaceToClient(x, y float64) (cx, cy float64) {
	return x*c.Scale + c.Left, y*c.Scale + c.Top
}

// Resize updates the surface dimensions. It reports whether they changed.
func (c *Camera) Resize(w, h float64) bool {
	if w == c.W && h == c.H {
		return false
	}
	c.W = w
	c.H = h
	return true
}

// Center returns the middle of the surface.
func (c *Camera) Center() (x, y float64) {
	return c.W / 2, c.H / 2
}

// Contains reports whether a surface point lies within the surface grown
// by margin on every side.
func (c *Camera) Contains(x, y, margin float64) bool {
	return x >= -margin && y >= -margin && x <= c.W+margin && y <= c.H+margin
}

// Clamp restricts a surface point to the surface bounds.
func (c *Camera) Clamp(x, y float64) (float64, float64) {
	return clamp(x, 0, c.W), clamp(y, 0, c.H)
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
