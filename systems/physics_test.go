package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/trails/components"
)

func testParticle(tt components.TrackingType) components.Particle {
	return components.Particle{
		X: 100, Y: 100,
		VX: 1, VY: 1,
		Life: 1.0, MaxLife: 1.0,
		Size: 2, Hue: 180, Opacity: 1.0,
		Tracking: tt,
		Color:    "#ffffff",
		Energy:   0.5,
	}
}

func TestUpdateSubtleExact(t *testing.T) {
	ph := NewPhysics(rand.New(rand.NewSource(1)), 1024, 768)

	p := testParticle(components.TrackingSubtle)
	p.X, p.Y, p.VX, p.VY = 50, 60, 2, 3

	got := ph.Update(p)
	if got.X != 52 || got.Y != 63 {
		t.Errorf("position = (%v, %v), want (52, 63)", got.X, got.Y)
	}
	if !approx(got.VY, 3.01) {
		t.Errorf("vy = %v, want 3.01", got.VY)
	}
	if !approx(got.VX, 1.98) {
		t.Errorf("vx = %v, want 1.98", got.VX)
	}
	if !approx(got.Life, 0.98) {
		t.Errorf("life = %v, want 0.98", got.Life)
	}
}

func TestUpdateDeterministicStyles(t *testing.T) {
	tests := []struct {
		tt     components.TrackingType
		life   float64
		vx, vy float64
	}{
		{components.TrackingSubtle, 0.98, 0.99, 1.01},
		{components.TrackingComet, 0.985, 0.995, 1.005},
		{components.TrackingFireworks, 0.975, 0.98, 1.02},
		{components.TrackingNeon, 0.98, 0.992, 1.008},
		{components.TrackingGeometric, 0.98, 0.985, 1.015},
		{components.TrackingType(200), 0.98, 0.99, 1.01}, // unknown falls back to subtle
	}

	ph := NewPhysics(rand.New(rand.NewSource(1)), 1024, 768)
	for _, tc := range tests {
		t.Run(tc.tt.String(), func(t *testing.T) {
			got := ph.Update(testParticle(tc.tt))
			if got.X != 101 || got.Y != 101 {
				t.Errorf("position = (%v, %v), want (101, 101)", got.X, got.Y)
			}
			if !approx(got.Life, tc.life) {
				t.Errorf("life = %v, want %v", got.Life, tc.life)
			}
			if !approx(got.VX, tc.vx) || !approx(got.VY, tc.vy) {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", got.VX, got.VY, tc.vx, tc.vy)
			}
			if got.Tracking != tc.tt {
				t.Errorf("tracking changed from %v to %v", tc.tt, got.Tracking)
			}
		})
	}
}

func TestUpdateNoneKillsImmediately(t *testing.T) {
	ph := NewPhysics(rand.New(rand.NewSource(1)), 1024, 768)
	p := testParticle(components.TrackingNone)
	p.X, p.Y, p.VX, p.VY = 10, 20, 3, 4

	got := ph.Update(p)
	if got.Life != 0 {
		t.Errorf("life = %v, want 0", got.Life)
	}
	if got.X != 10 || got.Y != 20 || got.VX != 3 || got.VY != 4 {
		t.Errorf("none particle moved: %+v", got)
	}
	if got.IsAlive() {
		t.Error("none particle should be dead after one tick")
	}
}

func TestUpdateGalaxySpiral(t *testing.T) {
	ph := NewPhysics(rand.New(rand.NewSource(1)), 1024, 768)
	p := testParticle(components.TrackingGalaxy)
	p.X, p.Y = 600, 300

	got := ph.Update(p)
	if math.Abs(got.X-601.084) > 1e-9 || math.Abs(got.Y-301.088) > 1e-9 {
		t.Errorf("position = (%v, %v), want (601.084, 301.088)", got.X, got.Y)
	}
	if !approx(got.VX, 0.999) || !approx(got.VY, 0.999) {
		t.Errorf("velocity = (%v, %v), want 0.999 damping", got.VX, got.VY)
	}
	if !approx(got.Life, 0.99) {
		t.Errorf("life = %v, want 0.99", got.Life)
	}

	// Resize moves the spiral centre
	ph.Resize(1200, 600)
	got = ph.Update(testParticle(components.TrackingGalaxy))
	// dx = 100-600 = -500, dy = 100-300 = -200
	if math.Abs(got.X-101.2) > 1e-9 || math.Abs(got.Y-100.5) > 1e-9 {
		t.Errorf("after resize position = (%v, %v), want (101.2, 100.5)", got.X, got.Y)
	}
}

func TestUpdateLightningJitter(t *testing.T) {
	ph := NewPhysics(rand.New(rand.NewSource(3)), 1024, 768)
	for i := 0; i < 200; i++ {
		got := ph.Update(testParticle(components.TrackingLightning))
		if math.Abs(got.X-101) > 1 || math.Abs(got.Y-101) > 1 {
			t.Fatalf("jitter exceeds ±1px: (%v, %v)", got.X, got.Y)
		}
		if !approx(got.Life, 0.97) {
			t.Fatalf("life = %v, want 0.97", got.Life)
		}
		if !approx(got.VX, 0.95) || !approx(got.VY, 0.95) {
			t.Fatalf("velocity = (%v, %v), want 0.95 damping", got.VX, got.VY)
		}
	}

	// rand=0 gives the full negative jitter
	edge := NewPhysics(constRand(0), 1024, 768)
	got := edge.Update(testParticle(components.TrackingLightning))
	if got.X != 100 || got.Y != 100 {
		t.Errorf("expected (100, 100) at rand=0, got (%v, %v)", got.X, got.Y)
	}
}

func TestUpdateWatercolorDrift(t *testing.T) {
	ph := NewPhysics(rand.New(rand.NewSource(4)), 1024, 768)
	for i := 0; i < 200; i++ {
		got := ph.Update(testParticle(components.TrackingWatercolor))
		if math.Abs(got.X-101) > 0.25 || math.Abs(got.Y-101) > 0.25 {
			t.Fatalf("drift exceeds ±0.25px: (%v, %v)", got.X, got.Y)
		}
		if !approx(got.Life, 0.99) || !approx(got.VY, 1.002) || !approx(got.VX, 0.998) {
			t.Fatalf("unexpected watercolor state %+v", got)
		}
	}
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	ph := NewPhysics(rand.New(rand.NewSource(1)), 1024, 768)
	p := testParticle(components.TrackingFireworks)
	_ = ph.Update(p)
	if p.X != 100 || p.Life != 1.0 {
		t.Errorf("input particle was modified: %+v", p)
	}
}
