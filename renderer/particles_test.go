package renderer

import (
	"math"
	"math/rand"
	"reflect"
	"regexp"
	"testing"

	"github.com/pthm-cable/trails/components"
)

// constSource makes every rand.Float64 call return v.
type constSource struct{ v float64 }

func (s constSource) Int63() int64 { return int64(s.v * (1 << 63)) }
func (s constSource) Seed(int64)   {}

func constRand(v float64) *rand.Rand { return rand.New(constSource{v}) }

var (
	hexAlpha = regexp.MustCompile(`^#[0-9a-f]{8}$`)
	hexAny   = regexp.MustCompile(`^#[0-9a-f]{6}([0-9a-f]{2})?$`)
)

func sampleParticle() *components.Particle {
	return &components.Particle{
		X: 100, Y: 200,
		VX: 1, VY: 1,
		Life: 0.8, MaxLife: 1.0,
		Size: 3, Hue: 180, Opacity: 1.0,
		Tracking: components.TrackingSubtle,
		Color:    "#3366ff",
		Trail:    []components.Point{},
		Energy:   0.5,
	}
}

func darkFrame(style components.ParticleStyle, bg components.BackgroundType) Frame {
	return Frame{NowMS: 1234, DarkMode: true, Background: bg, Style: style}
}

func TestDrawSkipsInvisible(t *testing.T) {
	r := NewParticleRenderer(rand.New(rand.NewSource(1)))

	p := sampleParticle()
	p.Life = 0
	rec := NewRecorder(800, 600)
	r.Draw(rec, p, darkFrame(components.StyleGlow, components.BackgroundCyberpunk))
	if rec.Count() != 0 {
		t.Errorf("expected no ops for zero alpha, got %d", rec.Count())
	}

	p.Life = -0.5
	r.Draw(rec, p, darkFrame(components.StyleDefault, components.BackgroundNone))
	if rec.Count() != 0 {
		t.Errorf("expected no ops for negative alpha, got %d", rec.Count())
	}

	// nil surface and particle must not panic
	r.Draw(nil, sampleParticle(), darkFrame(components.StyleDefault, components.BackgroundNone))
	r.Draw(rec, nil, darkFrame(components.StyleDefault, components.BackgroundNone))
}

func TestDrawEveryCombination(t *testing.T) {
	r := NewParticleRenderer(rand.New(rand.NewSource(7)))

	styles := append(components.ParticleStyles(), components.ParticleStyle(99))
	backgrounds := append(components.BackgroundTypes(), components.BackgroundType(99))

	for _, style := range styles {
		for _, bg := range backgrounds {
			for _, dark := range []bool{true, false} {
				rec := NewRecorder(800, 600)
				r.Draw(rec, sampleParticle(), Frame{NowMS: 5000, DarkMode: dark, Background: bg, Style: style})

				if rec.Count() == 0 {
					t.Errorf("%v/%v: nothing drawn", style, bg)
				}
				if rec.Depth() != 0 {
					t.Errorf("%v/%v: unbalanced save/restore, depth %d", style, bg, rec.Depth())
				}
				for _, op := range rec.Ops {
					switch paint := op.Paint.(type) {
					case *Gradient:
						for _, st := range paint.Stops {
							if !hexAlpha.MatchString(st.Color) {
								t.Errorf("%v/%v: gradient stop %q is not hex+alpha", style, bg, st.Color)
							}
						}
					case Color:
						if !hexAny.MatchString(string(paint)) {
							t.Errorf("%v/%v: colour %q is not hex", style, bg, paint)
						}
					default:
						t.Errorf("%v/%v: unexpected paint %T", style, bg, op.Paint)
					}
				}
			}
		}
	}
}

func TestDefaultStyle(t *testing.T) {
	r := NewParticleRenderer(constRand(0.5))
	rec := NewRecorder(800, 600)
	r.Draw(rec, sampleParticle(), darkFrame(components.StyleDefault, components.BackgroundNone))

	if len(rec.Ops) != 2 {
		t.Fatalf("expected halo and disc, got %d ops", len(rec.Ops))
	}

	halo := rec.Ops[0]
	g, ok := halo.Paint.(*Gradient)
	if !ok || g.Kind != GradientRadial {
		t.Fatalf("halo paint = %T, want radial gradient", halo.Paint)
	}
	// alpha 0.8 * 0.3 = 0.24 -> round(61.2) = 61 = 0x3d
	if g.Stops[0].Color != "#3366ff3d" || g.Stops[1].Color != "#3366ff00" {
		t.Errorf("halo stops = %+v", g.Stops)
	}
	if halo.Args[2] != 6 {
		t.Errorf("halo radius = %v, want 6", halo.Args[2])
	}

	disc := rec.Ops[1]
	if disc.Paint != Color("#3366ff") || disc.Args[2] != 3 {
		t.Errorf("disc = %+v", disc)
	}
	if !near(disc.State.Alpha, 0.8) {
		t.Errorf("disc alpha = %v, want 0.8", disc.State.Alpha)
	}
}

func TestAlphaAboveOneIsClamped(t *testing.T) {
	r := NewParticleRenderer(constRand(0.5))
	p := sampleParticle()
	p.Opacity = 2
	p.Life = 1

	rec := NewRecorder(800, 600)
	r.Draw(rec, p, darkFrame(components.StyleGlow, components.BackgroundNone))

	first := rec.Gradients()[0]
	// 2 * 0.4 = 0.8 -> 0xcc
	if first.Stops[0].Color != "#3366ffcc" {
		t.Errorf("first stop = %q, want #3366ffcc", first.Stops[0].Color)
	}
	core := rec.Ops[len(rec.Ops)-1]
	if core.State.Alpha != 1 {
		t.Errorf("core alpha = %v, want clamped 1", core.State.Alpha)
	}
}

func TestHighlightFollowsDarkMode(t *testing.T) {
	r := NewParticleRenderer(constRand(0.5))

	for _, tc := range []struct {
		dark bool
		want Color
	}{
		{true, "#ffffff"},
		{false, "#1e293b"},
	} {
		rec := NewRecorder(800, 600)
		f := darkFrame(components.StyleGlow, components.BackgroundNone)
		f.DarkMode = tc.dark
		r.Draw(rec, sampleParticle(), f)

		core := rec.Ops[len(rec.Ops)-1]
		if core.Paint != tc.want {
			t.Errorf("dark=%v: core paint = %v, want %v", tc.dark, core.Paint, tc.want)
		}
		if !near(core.State.Alpha, 0.64) {
			t.Errorf("dark=%v: core alpha = %v, want 0.64", tc.dark, core.State.Alpha)
		}
	}
}

func TestOverlayPass(t *testing.T) {
	// rand=0.99 suppresses every probabilistic spark
	tests := []struct {
		bg    components.BackgroundType
		extra int
	}{
		{components.BackgroundNone, 0},
		{components.BackgroundCyberpunk, 3},
		{components.BackgroundMatrix, 9},
		{components.BackgroundNebula, 3},
		{components.BackgroundAurora, 1},
		{components.BackgroundSynthwave, 2},
		{components.BackgroundOcean, 2},
		{components.BackgroundFluid, 0},
		{components.BackgroundType(42), 0},
	}

	for _, tc := range tests {
		t.Run(tc.bg.String(), func(t *testing.T) {
			r := NewParticleRenderer(constRand(0.99))
			rec := NewRecorder(800, 600)
			r.Draw(rec, sampleParticle(), darkFrame(components.StyleDefault, tc.bg))
			if got := len(rec.Ops) - 2; got != tc.extra {
				t.Errorf("overlay ops = %d, want %d", got, tc.extra)
			}
		})
	}
}

func TestCyberpunkSparks(t *testing.T) {
	r := NewParticleRenderer(constRand(0.05))
	rec := NewRecorder(800, 600)
	r.Draw(rec, sampleParticle(), darkFrame(components.StyleDefault, components.BackgroundCyberpunk))

	if n := rec.CountKind(OpStrokePolyline); n != 2 {
		t.Errorf("expected 2 spark lines, got %d", n)
	}
}

func TestMatrixGhostsTrailUpward(t *testing.T) {
	r := NewParticleRenderer(constRand(0.99))
	rec := NewRecorder(800, 600)
	r.Draw(rec, sampleParticle(), darkFrame(components.StyleDefault, components.BackgroundMatrix))

	var glyphs []Op
	for _, op := range rec.Ops {
		if op.Kind == OpFillText {
			glyphs = append(glyphs, op)
		}
	}
	if len(glyphs) != 1+matrixGhosts {
		t.Fatalf("expected %d glyphs, got %d", 1+matrixGhosts, len(glyphs))
	}
	if glyphs[0].Paint != Color("#ffffff") || glyphs[0].Text != "0" {
		t.Errorf("head glyph = %+v", glyphs[0])
	}

	prevY := glyphs[0].Args[1]
	prevAlpha := 256
	for _, g := range glyphs[1:] {
		if g.Args[1] >= prevY {
			t.Errorf("ghost at y=%v not above %v", g.Args[1], prevY)
		}
		prevY = g.Args[1]

		c := string(g.Paint.(Color))
		a := hexByte(c[7:9])
		if a >= prevAlpha {
			t.Errorf("ghost alpha %d did not fade below %d", a, prevAlpha)
		}
		prevAlpha = a
	}
}

func hexByte(s string) int {
	v := 0
	for _, c := range s {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= int(c - '0')
		case c >= 'a' && c <= 'f':
			v |= int(c-'a') + 10
		}
	}
	return v
}

func TestPlasmaTendrils(t *testing.T) {
	f := darkFrame(components.StylePlasma, components.BackgroundNone)

	rec := NewRecorder(800, 600)
	NewParticleRenderer(constRand(0.3)).Draw(rec, sampleParticle(), f)
	if n := rec.CountKind(OpStrokePolyline); n != 3 {
		t.Errorf("expected 3 tendrils at rand=0.3, got %d", n)
	}

	rec = NewRecorder(800, 600)
	NewParticleRenderer(constRand(0.5)).Draw(rec, sampleParticle(), f)
	if n := rec.CountKind(OpStrokePolyline); n != 0 {
		t.Errorf("expected no tendrils at rand=0.5, got %d", n)
	}
}

func TestDigitalGrid(t *testing.T) {
	rec := NewRecorder(800, 600)
	NewParticleRenderer(constRand(0.2)).Draw(rec, sampleParticle(), darkFrame(components.StyleDigital, components.BackgroundNone))

	// size 3: pixel 2.4, reach 9 -> lattice points with |(x,y)|*2.4 < 9
	if n := rec.CountKind(OpFillRect); n != 45 {
		t.Errorf("expected 45 pixels, got %d", n)
	}
	last := rec.Ops[len(rec.Ops)-1]
	if last.Kind != OpFillText || last.Text != "1" {
		t.Errorf("expected binary glyph 1 last, got %+v", last)
	}
	if !near(last.State.Transform.Angle(), 0.8*0.02) {
		t.Errorf("glyph rotation = %v, want %v", last.State.Transform.Angle(), 0.8*0.02)
	}
}

func TestCrystallineTransform(t *testing.T) {
	rec := NewRecorder(800, 600)
	NewParticleRenderer(constRand(0.5)).Draw(rec, sampleParticle(), darkFrame(components.StyleCrystalline, components.BackgroundNone))

	if len(rec.Ops) != 2+4 {
		t.Fatalf("expected fill, outline and 4 facets, got %d ops", len(rec.Ops))
	}
	for _, op := range rec.Ops {
		m := op.State.Transform
		if !near(m.E, 100) || !near(m.F, 200) || !near(m.Angle(), 0.8*0.05) {
			t.Errorf("op %v drawn under %+v", op.Kind, m)
		}
	}
	if rec.Ops[0].Paint != Color("#3366ff40") {
		t.Errorf("crystal fill = %v, want #3366ff40", rec.Ops[0].Paint)
	}
	if n := len(rec.Ops[1].Points); n != 9 {
		t.Errorf("outline should close with 9 points, got %d", n)
	}
}

func TestFlameSilhouette(t *testing.T) {
	rec := NewRecorder(800, 600)
	NewParticleRenderer(constRand(0.5)).Draw(rec, sampleParticle(), darkFrame(components.StyleFlame, components.BackgroundNone))

	if len(rec.Ops) != 1 || rec.Ops[0].Kind != OpFillPolygon {
		t.Fatalf("expected a single polygon, got %+v", rec.Ops)
	}
	pts := rec.Ops[0].Points
	if len(pts) != 25 {
		t.Fatalf("expected 25 path points, got %d", len(pts))
	}
	if !near(pts[0].X, 97) || !near(pts[0].Y, 203) {
		t.Errorf("flame base left = %+v, want (97, 203)", pts[0])
	}
	if end := pts[len(pts)-1]; !near(end.X, 103) || !near(end.Y, 203) {
		t.Errorf("flame base right = %+v, want (103, 203)", end)
	}
	tip := pts[12]
	if !near(tip.X, 100) || !near(tip.Y, 188) {
		t.Errorf("flame tip = %+v, want (100, 188)", tip)
	}
}

func TestElectricArcs(t *testing.T) {
	rec := NewRecorder(800, 600)
	NewParticleRenderer(constRand(0.5)).Draw(rec, sampleParticle(), darkFrame(components.StyleElectric, components.BackgroundNone))

	if n := rec.CountKind(OpStrokePolyline); n != 6 {
		t.Fatalf("expected 6 arcs, got %d", n)
	}
	for _, op := range rec.Ops {
		if op.Kind == OpStrokePolyline && len(op.Points) != 9 {
			t.Errorf("arc has %d points, want 9", len(op.Points))
		}
	}
}

func TestEtherealShadow(t *testing.T) {
	rec := NewRecorder(800, 600)
	NewParticleRenderer(constRand(0.5)).Draw(rec, sampleParticle(), darkFrame(components.StyleEthereal, components.BackgroundNone))

	if len(rec.Ops) != 4 {
		t.Fatalf("expected 4 wisps, got %d", len(rec.Ops))
	}
	for _, op := range rec.Ops {
		if op.State.ShadowColor != "#3366ff" || op.State.ShadowBlur != 12 {
			t.Errorf("wisp shadow = %q/%v", op.State.ShadowColor, op.State.ShadowBlur)
		}
	}
}

func TestEnergyRings(t *testing.T) {
	rec := NewRecorder(800, 600)
	NewParticleRenderer(constRand(0.5)).Draw(rec, sampleParticle(), darkFrame(components.StyleEnergy, components.BackgroundNone))

	if n := rec.CountKind(OpStrokeCircle); n != 3 {
		t.Fatalf("expected 3 rings, got %d", n)
	}
	wantRadii := []float64{7.5, 12, 16.5}
	i := 0
	for _, op := range rec.Ops {
		if op.Kind != OpStrokeCircle {
			continue
		}
		if !near(op.Args[2], wantRadii[i]) {
			t.Errorf("ring %d radius = %v, want %v", i, op.Args[2], wantRadii[i])
		}
		i++
	}
}

func TestRenderingIsDeterministic(t *testing.T) {
	f := Frame{NowMS: 98765, DarkMode: true, Background: components.BackgroundCyberpunk, Style: components.StyleElectric}

	a := NewRecorder(800, 600)
	b := NewRecorder(800, 600)
	NewParticleRenderer(rand.New(rand.NewSource(3))).Draw(a, sampleParticle(), f)
	NewParticleRenderer(rand.New(rand.NewSource(3))).Draw(b, sampleParticle(), f)

	if !reflect.DeepEqual(a.Ops, b.Ops) {
		t.Error("same seed and clock produced different ops")
	}
}

func TestTimeMovesAnimation(t *testing.T) {
	p := sampleParticle()
	r := NewParticleRenderer(constRand(0.5))

	at := func(ms float64) float64 {
		rec := NewRecorder(800, 600)
		r.Draw(rec, p, Frame{NowMS: ms, DarkMode: true, Style: components.StylePlasma})
		return rec.Gradients()[0].X0
	}
	if math.Abs(at(0)-at(100)) < 1e-6 {
		t.Error("plasma centre did not move with the clock")
	}
}
