package ui

import (
	"reflect"
	"testing"
)

func TestHint(t *testing.T) {
	if got := Hint(false); got != "Move and click to create" {
		t.Errorf("pointer hint = %q", got)
	}
	if got := Hint(true); got != "Touch with multiple fingers" {
		t.Errorf("touch hint = %q", got)
	}
}

func TestCounts(t *testing.T) {
	tests := []struct {
		name      string
		particles int
		touches   int
		want      []string
	}{
		{"no touches", 12, 0, []string{"Active: 12"}},
		{"with touches", 300, 2, []string{"Active: 300", "Touches: 2"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Counts(tc.particles, tc.touches); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Counts = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPlace(t *testing.T) {
	tests := []struct {
		anchor PanelAnchor
		x, y   int32
	}{
		{AnchorTopLeft, 10, 10},
		{AnchorTopRight, 690, 10},
		{AnchorBottomLeft, 10, 490},
		{AnchorBottomRight, 690, 490},
	}
	for _, tc := range tests {
		x, y := Place(tc.anchor, 100, 100, 800, 600, 10)
		if x != tc.x || y != tc.y {
			t.Errorf("anchor %d: (%d, %d), want (%d, %d)", tc.anchor, x, y, tc.x, tc.y)
		}
	}
}

func TestOverlayRegistry(t *testing.T) {
	reg := NewOverlayRegistry()
	if !reg.IsEnabled(OverlayHUD) {
		t.Error("HUD should start visible")
	}
	if reg.IsEnabled(OverlaySettings) || reg.IsEnabled(OverlayPerf) {
		t.Error("panels should start hidden")
	}

	if !reg.Toggle(OverlayControls) {
		t.Fatal("toggle should enable controls")
	}
	reg.Toggle(OverlayPerf)
	if reg.IsEnabled(OverlayControls) {
		t.Error("perf should hide the exclusive controls panel")
	}
	if reg.Toggle("missing") {
		t.Error("unknown overlay toggled on")
	}

	if got := reg.Categories(); !reflect.DeepEqual(got, []string{"panels", "debug"}) {
		t.Errorf("categories = %v", got)
	}
	if got := len(reg.ByCategory("panels")); got != 3 {
		t.Errorf("panels = %d, want 3", got)
	}
}
