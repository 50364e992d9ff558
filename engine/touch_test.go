package engine

import (
	"testing"

	"github.com/pthm-cable/trails/components"
)

func touchIDs(ts []Touch) []int {
	ids := make([]int, len(ts))
	for i, t := range ts {
		ids[i] = t.ID
	}
	return ids
}

func sameIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDiffTouches(t *testing.T) {
	tests := []struct {
		name                  string
		prev, cur             map[int]Touch
		started, moved, ended []int
	}{
		{
			name:    "first contacts",
			cur:     map[int]Touch{3: {ID: 3}, 1: {ID: 1}},
			started: []int{1, 3},
		},
		{
			name:  "one moves, one rests",
			prev:  map[int]Touch{1: {ID: 1, X: 5}, 2: {ID: 2, X: 5}},
			cur:   map[int]Touch{1: {ID: 1, X: 6}, 2: {ID: 2, X: 5}},
			moved: []int{1},
		},
		{
			name:    "lift and replace",
			prev:    map[int]Touch{1: {ID: 1}, 2: {ID: 2}},
			cur:     map[int]Touch{2: {ID: 2, Y: 1}, 4: {ID: 4}},
			started: []int{4},
			moved:   []int{2},
			ended:   []int{1},
		},
		{
			name:  "all lifted",
			prev:  map[int]Touch{7: {ID: 7}, 5: {ID: 5}},
			ended: []int{5, 7},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			started, moved, ended := DiffTouches(tc.prev, tc.cur)
			if got := touchIDs(started); !sameIDs(got, tc.started) {
				t.Errorf("started = %v, want %v", got, tc.started)
			}
			if got := touchIDs(moved); !sameIDs(got, tc.moved) {
				t.Errorf("moved = %v, want %v", got, tc.moved)
			}
			if got := touchIDs(ended); !sameIDs(got, tc.ended) {
				t.Errorf("ended = %v, want %v", got, tc.ended)
			}
		})
	}
}

func TestDiffTouchesFeedsDispatcher(t *testing.T) {
	f := newDispatcherFixture(components.TrackingSubtle, DispatcherOptions{})

	prev := map[int]Touch{}
	cur := map[int]Touch{1: {ID: 1, X: 20, Y: 30}}
	started, _, _ := DiffTouches(prev, cur)
	f.d.TouchStart(started)

	prev, cur = cur, map[int]Touch{}
	_, _, ended := DiffTouches(prev, cur)
	f.d.TouchEnd(ended)

	if f.ps.Count() != 2 || f.d.IsTouch() {
		t.Errorf("count = %d, touch = %v; want 2, false", f.ps.Count(), f.d.IsTouch())
	}
}

func TestFingerTouch(t *testing.T) {
	tests := []struct {
		name         string
		id           int64
		nx, ny, w, h float64
		wantX, wantY float64
	}{
		{"origin", 4, 0, 0, 800, 600, 0, 0},
		{"centre", 9, 0.5, 0.5, 800, 600, 400, 300},
		{"corner", 1, 1, 1, 1024, 768, 1024, 768},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FingerTouch(tc.id, tc.nx, tc.ny, tc.w, tc.h)
			if got.ID != int(tc.id) || got.X != tc.wantX || got.Y != tc.wantY {
				t.Errorf("got %+v, want id %d at (%v, %v)", got, tc.id, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestFingerEventsOneAtATime(t *testing.T) {
	f := newDispatcherFixture(components.TrackingSubtle, DispatcherOptions{})

	// Finger events arrive one contact per event.
	f.d.TouchStart([]Touch{FingerTouch(11, 0.25, 0.5, 800, 600)})
	f.d.TouchStart([]Touch{FingerTouch(12, 0.75, 0.5, 800, 600)})
	f.d.TouchMove([]Touch{FingerTouch(11, 0.3, 0.5, 800, 600)})
	if f.d.TouchCount() != 2 {
		t.Fatalf("contacts = %d, want 2", f.d.TouchCount())
	}
	// two bursts of 2 plus one move of 1
	if f.ps.Count() != 5 {
		t.Errorf("particles = %d, want 5", f.ps.Count())
	}

	f.d.TouchEnd([]Touch{FingerTouch(11, 0.3, 0.5, 800, 600)})
	if f.d.TouchCount() != 1 || !f.d.IsTouch() {
		t.Errorf("after one lift: contacts = %d, touch = %v", f.d.TouchCount(), f.d.IsTouch())
	}
	f.d.TouchEnd([]Touch{FingerTouch(12, 0.75, 0.5, 800, 600)})
	if f.d.IsTouch() {
		t.Error("touch still active after every finger lifted")
	}
}
