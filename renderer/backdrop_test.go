package renderer

import (
	"math"
	"testing"

	"github.com/pthm-cable/trails/components"
)

func TestBackdropFirstDrawIsSettled(t *testing.T) {
	b := NewBackdrop(1)
	rec := NewRecorder(400, 300)
	b.Draw(rec, components.BackgroundNebula, true, 1000)

	if b.Transition(1000) != 1 {
		t.Errorf("first draw should not cross-fade, got %v", b.Transition(1000))
	}
	base := rec.Ops[0]
	g, ok := base.Paint.(*Gradient)
	if base.Kind != OpFillRect || !ok || g.Kind != GradientLinear {
		t.Fatalf("expected linear base fill first, got %+v", base)
	}
	if g.Stops[0].Color != "#0c0c1e" || g.Stops[2].Color != "#16213e" {
		t.Errorf("nebula base stops = %+v", g.Stops)
	}
	// base + 3 glows
	if len(rec.Ops) != 4 {
		t.Errorf("expected 4 ops, got %d", len(rec.Ops))
	}
	if rec.Depth() != 0 {
		t.Errorf("unbalanced save/restore, depth %d", rec.Depth())
	}
}

func TestBackdropCrossFade(t *testing.T) {
	b := NewBackdrop(1)
	rec := NewRecorder(400, 300)
	b.Draw(rec, components.BackgroundNone, true, 0)

	rec.Reset()
	b.Draw(rec, components.BackgroundCyberpunk, true, 1000)
	if b.Transition(1000) != 0 {
		t.Errorf("transition at switch = %v, want 0", b.Transition(1000))
	}
	// Only the outgoing vignette is visible at the moment of the switch
	if len(rec.Ops) != 1 {
		t.Errorf("expected only the old theme at switch time, got %d ops", len(rec.Ops))
	}

	rec.Reset()
	b.Draw(rec, components.BackgroundCyberpunk, true, 1150)
	if got := b.Transition(1150); got != 0.5 {
		t.Errorf("transition = %v, want 0.5", got)
	}
	if len(rec.Ops) != 1+4 {
		t.Fatalf("expected old vignette plus new theme, got %d ops", len(rec.Ops))
	}
	if rec.Ops[0].State.Alpha != 1 {
		t.Errorf("outgoing theme alpha = %v, want 1", rec.Ops[0].State.Alpha)
	}
	for _, op := range rec.Ops[1:] {
		if op.State.Alpha != 0.5 {
			t.Errorf("incoming theme alpha = %v, want 0.5", op.State.Alpha)
		}
	}

	rec.Reset()
	b.Draw(rec, components.BackgroundCyberpunk, true, 1400)
	if b.Transition(1400) != 1 || len(rec.Ops) != 4 {
		t.Errorf("expected settled cyberpunk, transition %v, %d ops", b.Transition(1400), len(rec.Ops))
	}
}

func TestBackdropInterruptedCrossFade(t *testing.T) {
	tests := []struct {
		name      string
		next      components.BackgroundType
		at        float64
		wantTrans float64
		baseOps   int     // ops drawn at full alpha
		topAlpha  float64 // alpha of the incoming layer
		settledAt float64
	}{
		// vignette is 1 op, cyberpunk is base + 3 glows
		{"reverse", components.BackgroundNone, 1075, 0.75, 4, 0.75, 1150},
		{"third theme", components.BackgroundMatrix, 1150, 0.5, 1, 0.5, 1300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBackdrop(1)
			rec := NewRecorder(400, 300)
			b.Draw(rec, components.BackgroundNone, true, 0)
			b.Draw(rec, components.BackgroundCyberpunk, true, 1000)

			rec.Reset()
			b.Draw(rec, tc.next, true, tc.at)
			if got := b.Transition(tc.at); got != tc.wantTrans {
				t.Errorf("transition after switch = %v, want %v", got, tc.wantTrans)
			}
			if len(rec.Ops) <= tc.baseOps {
				t.Fatalf("expected both layers, got %d ops", len(rec.Ops))
			}
			for i, op := range rec.Ops {
				want := tc.topAlpha
				if i < tc.baseOps {
					want = 1
				}
				if op.State.Alpha != want {
					t.Errorf("op %d alpha = %v, want %v", i, op.State.Alpha, want)
				}
			}

			if got := b.Transition(tc.settledAt); got != 1 {
				t.Errorf("transition at %v = %v, want settled", tc.settledAt, got)
			}
		})
	}
}

func TestBackdropMatrixGrid(t *testing.T) {
	b := NewBackdrop(1)
	rec := NewRecorder(100, 60)
	b.Draw(rec, components.BackgroundMatrix, true, 0)

	lines := 0
	for _, op := range rec.Ops {
		if _, solid := op.Paint.(Color); op.Kind == OpFillRect && solid {
			lines++
			if op.Args[2] != 1 && op.Args[3] != 1 {
				t.Errorf("grid line should be 1px, got %vx%v", op.Args[2], op.Args[3])
			}
		}
	}
	// columns at 0,20,40,60,80 and rows at 0,20,40
	if lines != 8 {
		t.Errorf("expected 8 grid lines, got %d", lines)
	}
}

func TestBackdropVignette(t *testing.T) {
	for _, bg := range []components.BackgroundType{components.BackgroundNone, components.BackgroundType(99)} {
		for _, dark := range []bool{true, false} {
			rec := NewRecorder(200, 100)
			NewBackdrop(3).Draw(rec, bg, dark, 0)

			if len(rec.Ops) != 1 {
				t.Fatalf("%v: expected a single vignette fill, got %d ops", bg, len(rec.Ops))
			}
			g := rec.Ops[0].Paint.(*Gradient)
			if g.Kind != GradientRadial || g.X0 != 100 || g.Y0 != 50 {
				t.Errorf("%v: vignette = %+v", bg, g)
			}
			want := "#080c14"
			if !dark {
				want = "#e2e8f0"
			}
			if g.Stops[1].Color != want {
				t.Errorf("%v dark=%v: outer stop = %q, want %q", bg, dark, g.Stops[1].Color, want)
			}
		}
	}
}

func TestBackdropGlowsDrift(t *testing.T) {
	b := NewBackdrop(42)
	centre := func(ms float64) (float64, float64) {
		rec := NewRecorder(1000, 1000)
		b.Draw(rec, components.BackgroundOcean, true, ms)
		op := rec.Ops[1]
		return op.Args[0], op.Args[1]
	}

	x0, y0 := centre(0)
	if x0 < 300-80 || x0 > 300+80 || y0 < 200-80 || y0 > 200+80 {
		t.Errorf("glow drifted too far: (%v, %v)", x0, y0)
	}
	moved := false
	for _, ms := range []float64{12345, 123456, 600000} {
		if x, y := centre(ms); x != x0 || y != y0 {
			moved = true
		}
	}
	if !moved {
		t.Error("glow did not drift over time")
	}
}

func TestGradientLine(t *testing.T) {
	tests := []struct {
		angle          float64
		x0, y0, x1, y1 float64
	}{
		{180, 50, 0, 50, 50},
		{90, 0, 25, 100, 25},
		{0, 50, 50, 50, 0},
	}
	for _, tc := range tests {
		x0, y0, x1, y1 := gradientLine(tc.angle, 100, 50)
		if !near(x0, tc.x0) || !near(y0, tc.y0) || !near(x1, tc.x1) || !near(y1, tc.y1) {
			t.Errorf("angle %v: got (%v,%v)-(%v,%v)", tc.angle, x0, y0, x1, y1)
		}
	}
}

func TestBackdropFluidFollowsFocus(t *testing.T) {
	b := NewBackdrop(8)
	rec := NewRecorder(400, 200)

	b.Draw(rec, components.BackgroundFluid, true, 0)
	if len(rec.Ops) != 4 {
		t.Fatalf("expected vignette + 3 glows, got %d ops", len(rec.Ops))
	}
	if g := rec.Ops[0].Paint.(*Gradient); g.Kind != GradientRadial || g.Stops[1].Color != "#080c14" {
		t.Errorf("fluid base = %+v, want the dark vignette", g)
	}
	centre := rec.Ops[1].Args
	if math.Abs(centre[0]-200) > 0.04*400+1e-9 || math.Abs(centre[1]-100) > 0.04*200+1e-9 {
		t.Errorf("unfocused glow at (%v, %v), want near the centre", centre[0], centre[1])
	}

	b.SetFocus(40, 160)
	rec.Reset()
	b.Draw(rec, components.BackgroundFluid, true, 0)
	moved := rec.Ops[1].Args
	if math.Abs(moved[0]-40) > 0.04*400+1e-9 || math.Abs(moved[1]-160) > 0.04*200+1e-9 {
		t.Errorf("focused glow at (%v, %v), want near (40, 160)", moved[0], moved[1])
	}
}
