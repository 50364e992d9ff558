package renderer

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/pthm-cable/trails/components"
	"github.com/pthm-cable/trails/palette"
)

const (
	// CrossFadeMS is how long a theme switch takes to blend in.
	CrossFadeMS = 300.0

	gridSpacing = 20.0

	driftRate   = 0.00005 // noise units per millisecond
	driftAmount = 0.04    // fraction of surface width
)

// glow is a radial wash positioned in surface fractions. Its radius is a
// fraction of the distance to the farthest corner.
type glow struct {
	cx, cy float64
	extent float64
	color  string
}

// theme describes one backdrop variant.
type theme struct {
	angle float64 // CSS degrees; 0 points up, 90 points right
	base  []Stop
	glows []glow
	grid  string // matrix grid line colour, empty for none

	// vignette draws base as a centred radial gradient instead of linear.
	vignette bool

	// follow positions glows relative to the focus point instead of the
	// surface origin.
	follow bool
}

type themePair struct {
	dark, light theme
}

func rgba(hex string, a float64) string { return palette.WithAlpha(hex, a) }

var vignette = themePair{
	dark:  theme{vignette: true, base: []Stop{{0, "#0c1220"}, {1, "#080c14"}}},
	light: theme{vignette: true, base: []Stop{{0, "#f8fafc"}, {1, "#e2e8f0"}}},
}

var themes = map[components.BackgroundType]themePair{
	components.BackgroundFluid: {
		dark: theme{
			vignette: true,
			follow:   true,
			base:     vignette.dark.base,
			glows: []glow{
				{0, 0, 0.35, rgba("#a78bfa", 0.18)},
				{0.08, 0.06, 0.25, rgba("#67e8f9", 0.12)},
				{-0.06, 0.05, 0.3, rgba("#f9a8d4", 0.12)},
			},
		},
		light: theme{
			vignette: true,
			follow:   true,
			base:     vignette.light.base,
			glows: []glow{
				{0, 0, 0.35, rgba("#c4b5fd", 0.25)},
				{0.08, 0.06, 0.25, rgba("#a5f3fc", 0.2)},
				{-0.06, 0.05, 0.3, rgba("#fbcfe8", 0.2)},
			},
		},
	},
	components.BackgroundCyberpunk: {
		dark: theme{
			angle: 45,
			base:  []Stop{{0, "#0a0a0a"}, {0.5, "#1a0a1a"}, {1, "#0a1a1a"}},
			glows: []glow{
				{0.2, 0.5, 0.5, rgba("#00ffff", 0.1)},
				{0.8, 0.2, 0.5, rgba("#ff00ff", 0.1)},
				{0.4, 0.8, 0.5, rgba("#ffff00", 0.05)},
			},
		},
		light: theme{
			angle: 45,
			base:  []Stop{{0, "#f0f4f8"}, {0.5, "#e6f2ff"}, {1, "#f0f8ff"}},
			glows: []glow{
				{0.2, 0.5, 0.5, rgba("#00c8ff", 0.15)},
				{0.8, 0.2, 0.5, rgba("#c800ff", 0.15)},
			},
		},
	},
	components.BackgroundNebula: {
		dark: theme{
			angle: 135,
			base:  []Stop{{0, "#0c0c1e"}, {0.5, "#1a1a2e"}, {1, "#16213e"}},
			glows: []glow{
				{0.3, 0.4, 0.7, rgba("#8a2be2", 0.2)},
				{0.7, 0.6, 0.7, rgba("#4b0082", 0.15)},
				{0.5, 0.2, 0.7, rgba("#00bfff", 0.1)},
			},
		},
		light: theme{
			angle: 135,
			base:  []Stop{{0, "#f8fafc"}, {0.5, "#e2e8f0"}, {1, "#cbd5e1"}},
			glows: []glow{
				{0.3, 0.4, 0.7, rgba("#8a2be2", 0.08)},
				{0.7, 0.6, 0.7, rgba("#4b0082", 0.06)},
			},
		},
	},
	components.BackgroundMatrix: {
		dark: theme{
			angle: 180,
			base:  []Stop{{0, "#000000"}, {1, "#001100"}},
			glows: []glow{{0.5, 0.5, 0.7, rgba("#00ff00", 0.05)}},
			grid:  rgba("#00ff00", 0.03),
		},
		light: theme{
			angle: 180,
			base:  []Stop{{0, "#f8fafc"}, {1, "#f0f9f0"}},
			grid:  rgba("#009600", 0.05),
		},
	},
	components.BackgroundAurora: {
		dark: theme{
			angle: 180,
			base:  []Stop{{0, "#0a0a1a"}, {1, "#001122"}},
			glows: []glow{
				{0.2, 0.1, 0.6, rgba("#00ff7f", 0.15)},
				{0.8, 0.3, 0.6, rgba("#40e0d0", 0.1)},
				{0.4, 0.7, 0.6, rgba("#8a2be2", 0.1)},
			},
		},
		light: theme{
			angle: 180,
			base:  []Stop{{0, "#f0f9ff"}, {1, "#e0f2fe"}},
			glows: []glow{
				{0.2, 0.1, 0.6, rgba("#00ff7f", 0.08)},
				{0.8, 0.3, 0.6, rgba("#40e0d0", 0.06)},
			},
		},
	},
	components.BackgroundSynthwave: {
		dark: theme{
			angle: 180,
			base:  []Stop{{0, "#1a0033"}, {0.5, "#330066"}, {1, "#000033"}},
			glows: []glow{
				{0.5, 0, 0.7, rgba("#ff1493", 0.2)},
				{0, 1, 0.7, rgba("#00ffff", 0.15)},
				{1, 1, 0.7, rgba("#ff4500", 0.1)},
			},
		},
		light: theme{
			angle: 180,
			base:  []Stop{{0, "#fdf4ff"}, {1, "#f3e8ff"}},
			glows: []glow{
				{0.5, 0, 0.7, rgba("#ff1493", 0.1)},
				{0, 1, 0.7, rgba("#00ffff", 0.08)},
			},
		},
	},
	components.BackgroundOcean: {
		dark: theme{
			angle: 180,
			base:  []Stop{{0, "#001122"}, {0.5, "#002244"}, {1, "#001133"}},
			glows: []glow{
				{0.3, 0.2, 0.7, rgba("#00bfff", 0.15)},
				{0.7, 0.8, 0.7, rgba("#1e90ff", 0.1)},
				{0.5, 0.5, 0.7, rgba("#0064c8", 0.05)},
			},
		},
		light: theme{
			angle: 180,
			base:  []Stop{{0, "#f0f9ff"}, {1, "#e0f2fe"}},
			glows: []glow{
				{0.3, 0.2, 0.7, rgba("#00bfff", 0.1)},
				{0.7, 0.8, 0.7, rgba("#1e90ff", 0.08)},
			},
		},
	},
}

func themeFor(bg components.BackgroundType, dark bool) theme {
	pair, ok := themes[bg]
	if !ok {
		pair = vignette
	}
	if dark {
		return pair.dark
	}
	return pair.light
}

// Backdrop paints the themed background beneath the particle layer. Glow
// centres drift slowly along Perlin noise and theme switches cross-fade.
type Backdrop struct {
	noise *perlin.Perlin

	current    components.BackgroundType
	previous   components.BackgroundType
	switchedAt float64
	started    bool

	focusX, focusY float64
	focused        bool
}

// NewBackdrop creates a backdrop whose drift is seeded by seed.
func NewBackdrop(seed int64) *Backdrop {
	return &Backdrop{noise: perlin.NewPerlin(2, 2, 3, seed)}
}

// SetFocus moves the point the fluid theme's glows gather around, in
// surface coordinates. Until it is called they sit at the centre.
func (b *Backdrop) SetFocus(x, y float64) {
	b.focusX, b.focusY = x, y
	b.focused = true
}

// focus returns the focus point as surface fractions.
func (b *Backdrop) focus(w, h float64) (float64, float64) {
	if !b.focused || w <= 0 || h <= 0 {
		return 0.5, 0.5
	}
	return clamp01(b.focusX / w), clamp01(b.focusY / h)
}

// Transition reports the cross-fade progress in [0, 1]; 1 means settled.
func (b *Backdrop) Transition(nowMS float64) float64 {
	if !b.started {
		return 1
	}
	return clamp01((nowMS - b.switchedAt) / CrossFadeMS)
}

// Draw paints the backdrop for background bg at time nowMS.
func (b *Backdrop) Draw(s Surface, bg components.BackgroundType, dark bool, nowMS float64) {
	if s == nil {
		return
	}
	switch {
	case !b.started:
		b.current, b.previous = bg, bg
		b.switchedAt = nowMS - CrossFadeMS
		b.started = true
	case bg != b.current:
		b.switchTo(bg, nowMS)
	}

	progress := b.Transition(nowMS)
	if progress < 1 {
		b.drawTheme(s, themeFor(b.previous, dark), nowMS, 1)
		b.drawTheme(s, themeFor(b.current, dark), nowMS, progress)
		return
	}
	b.drawTheme(s, themeFor(b.current, dark), nowMS, 1)
}

// switchTo starts a cross-fade to bg. A switch during a running fade
// continues from the visible blend: going back reverses the fade, and a
// third theme takes over the incoming layer at its current alpha.
func (b *Backdrop) switchTo(bg components.BackgroundType, nowMS float64) {
	progress := b.Transition(nowMS)
	switch {
	case progress >= 1:
		b.previous = b.current
		b.current = bg
		b.switchedAt = nowMS
	case bg == b.previous:
		b.previous, b.current = b.current, b.previous
		b.switchedAt = nowMS - (1-progress)*CrossFadeMS
	default:
		b.current = bg
		b.switchedAt = nowMS - progress*CrossFadeMS
	}
}

func (b *Backdrop) drawTheme(s Surface, t theme, nowMS, alpha float64) {
	if alpha <= 0 {
		return
	}
	w, h := s.Size()

	s.Save()
	defer s.Restore()
	s.SetGlobalAlpha(alpha)

	var base *Gradient
	if t.vignette {
		base = NewRadialGradient(w/2, h/2, 0, w/2, h/2, math.Hypot(w/2, h/2))
	} else {
		x0, y0, x1, y1 := gradientLine(t.angle, w, h)
		base = NewLinearGradient(x0, y0, x1, y1)
	}
	for _, st := range t.base {
		base.AddStop(st.Offset, st.Color)
	}
	s.FillRect(0, 0, w, h, base)

	if t.grid != "" {
		line := Color(t.grid)
		for x := 0.0; x < w; x += gridSpacing {
			s.FillRect(x, 0, 1, h, line)
		}
		for y := 0.0; y < h; y += gridSpacing {
			s.FillRect(0, y, w, 1, line)
		}
	}

	var ox, oy float64
	if t.follow {
		ox, oy = b.focus(w, h)
	}
	for i, g := range t.glows {
		dx, dy := b.drift(i, nowMS)
		cx := (ox + g.cx + dx) * w
		cy := (oy + g.cy + dy) * h
		radius := g.extent * farthestCorner(cx, cy, w, h)

		rg := NewRadialGradient(cx, cy, 0, cx, cy, radius).
			AddStop(0, g.color).
			AddStop(1, transparent(g.color))
		s.FillCircle(cx, cy, radius, rg)
	}
}

// drift returns the noise offset for glow i in surface fractions.
func (b *Backdrop) drift(i int, nowMS float64) (float64, float64) {
	t := nowMS * driftRate
	k := float64(i)*7.31 + 0.37
	return b.noise.Noise2D(t, k) * driftAmount, b.noise.Noise2D(k, t) * driftAmount
}

// gradientLine returns the endpoints of a CSS linear-gradient line at angle
// degrees across a w x h box.
func gradientLine(angle, w, h float64) (x0, y0, x1, y1 float64) {
	rad := angle * math.Pi / 180
	dx, dy := math.Sin(rad), -math.Cos(rad)
	half := (math.Abs(w*dx) + math.Abs(h*dy)) / 2
	cx, cy := w/2, h/2
	return cx - dx*half, cy - dy*half, cx + dx*half, cy + dy*half
}

func farthestCorner(x, y, w, h float64) float64 {
	return math.Hypot(math.Max(x, w-x), math.Max(y, h-y))
}

// transparent returns c with zero alpha, keeping its hue for interpolation.
func transparent(c string) string {
	if len(c) == 9 {
		c = c[:7]
	}
	return palette.WithAlpha(c, 0)
}
