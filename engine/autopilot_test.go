package engine

import (
	"math"
	"testing"

	"github.com/pthm-cable/trails/camera"
	"github.com/pthm-cable/trails/config"
)

type pointerEvent struct {
	kind string
	x, y float64
}

type pointerLog struct{ events []pointerEvent }

func (l *pointerLog) PointerDown(x, y float64) { l.events = append(l.events, pointerEvent{"down", x, y}) }
func (l *pointerLog) PointerMove(x, y float64) { l.events = append(l.events, pointerEvent{"move", x, y}) }
func (l *pointerLog) PointerUp()               { l.events = append(l.events, pointerEvent{kind: "up"}) }

var testAutopilot = config.AutopilotConfig{Radius: 0.3, Speed: 0.1, Wobble: 0.25, PressTicks: 3}

func TestAutopilotStaysOnAnnulus(t *testing.T) {
	cam := camera.New(1000, 600)
	a := NewAutopilot(5, cam, testAutopilot)

	base := 0.3 * 600
	for tick := 0; tick < 500; tick++ {
		x, y := a.Position(tick)
		r := math.Hypot(x-500, y-300)
		if r < base*0.75-1e-9 || r > base*1.25+1e-9 {
			t.Fatalf("tick %d: radius %v outside [%v, %v]", tick, r, base*0.75, base*1.25)
		}
	}
}

func TestAutopilotPressPhases(t *testing.T) {
	cam := camera.New(800, 600)
	cam.SetOffset(40, 0)
	a := NewAutopilot(5, cam, testAutopilot)
	log := &pointerLog{}

	for i := 0; i < 8; i++ {
		a.Step(log)
	}

	var kinds []string
	for _, e := range log.events {
		kinds = append(kinds, e.kind)
	}
	want := []string{
		"down", "move", "move", "move", // ticks 0-2 pressed
		"up", "move", "move", "move", // ticks 3-5 released
		"down", "move", "move", // ticks 6-7 pressed again
	}
	if len(kinds) != len(want) {
		t.Fatalf("events = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("events = %v, want %v", kinds, want)
		}
	}
	if !a.Pressed() {
		t.Error("autopilot should be pressed in the third phase")
	}

	// Events are in client coordinates
	x, y := a.Position(0)
	if first := log.events[0]; first.x != x+40 || first.y != y {
		t.Errorf("first event at (%v, %v), want (%v, %v)", first.x, first.y, x+40, y)
	}
}

func TestAutopilotDeterministic(t *testing.T) {
	cam := camera.New(800, 600)
	a := NewAutopilot(9, cam, testAutopilot)
	b := NewAutopilot(9, cam, testAutopilot)
	for tick := 0; tick < 50; tick++ {
		ax, ay := a.Position(tick)
		bx, by := b.Position(tick)
		if ax != bx || ay != by {
			t.Fatalf("tick %d differs: (%v, %v) vs (%v, %v)", tick, ax, ay, bx, by)
		}
	}
}
