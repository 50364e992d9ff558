package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1280, 720)

	if cam.Left != 0 || cam.Top != 0 {
		t.Errorf("expected origin offset, got (%f, %f)", cam.Left, cam.Top)
	}
	if cam.Scale != 1.0 {
		t.Errorf("expected scale 1.0, got %f", cam.Scale)
	}
	if x, y := cam.Center(); x != 640 || y != 360 {
		t.Errorf("expected center (640, 360), got (%f, %f)", x, y)
	}
}

func TestClientToSurfaceSubtractsOffset(t *testing.T) {
	cam := New(800, 600)
	cam.SetOffset(20, 50)

	x, y := cam.ClientToSurface(120, 250)
	if x != 100 || y != 200 {
		t.Errorf("expected (100, 200), got (%f, %f)", x, y)
	}

	// Points left of the rect map to negative coordinates
	x, y = cam.ClientToSurface(0, 0)
	if x != -20 || y != -50 {
		t.Errorf("expected (-20, -50), got (%f, %f)", x, y)
	}
}

func TestClientSurfaceRoundtrip(t *testing.T) {
	cam := New(1280, 720)
	cam.SetOffset(13, 7)
	cam.SetScale(2)

	testCases := []struct{ cx, cy float64 }{
		{13, 7},     // rect origin
		{653, 367},  // middle
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		x, y := cam.ClientToSurface(tc.cx, tc.cy)
		cx, cy := cam.SurfaceToClient(x, y)
		if math.Abs(cx-tc.cx) > 1e-9 || math.Abs(cy-tc.cy) > 1e-9 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.cx, tc.cy, x, y, cx, cy)
		}
	}
}

func TestSetScaleRejectsNonPositive(t *testing.T) {
	cam := New(100, 100)
	cam.SetScale(0)
	if cam.Scale != 1 {
		t.Errorf("expected scale reset to 1, got %f", cam.Scale)
	}
	cam.SetScale(-3)
	if cam.Scale != 1 {
		t.Errorf("expected scale reset to 1, got %f", cam.Scale)
	}
}

func TestResize(t *testing.T) {
	cam := New(800, 600)

	if cam.Resize(800, 600) {
		t.Error("same size should report no change")
	}
	if !cam.Resize(1024, 768) {
		t.Error("new size should report a change")
	}
	if x, y := cam.Center(); x != 512 || y != 384 {
		t.Errorf("expected center (512, 384), got (%f, %f)", x, y)
	}
}

func TestContains(t *testing.T) {
	cam := New(1280, 720)

	if !cam.Contains(640, 360, 0) {
		t.Error("center should be inside")
	}
	if cam.Contains(1300, 360, 10) {
		t.Error("far point should be outside")
	}
	if !cam.Contains(-40, 360, 50) {
		t.Error("edge point within margin should be inside")
	}
}

func TestClamp(t *testing.T) {
	cam := New(200, 100)
	x, y := cam.Clamp(-5, 150)
	if x != 0 || y != 100 {
		t.Errorf("expected (0, 100), got (%f, %f)", x, y)
	}
}
