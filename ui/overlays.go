package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayHUD      OverlayID = "hud"
	OverlaySettings OverlayID = "settings"
	OverlayControls OverlayID = "controls"
	OverlayPerf     OverlayID = "perf"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID        OverlayID   // Unique identifier
	Name      string      // Display name
	Key       int32       // Keyboard key to toggle (0 = no key)
	KeyLabel  string      // Key label for display (e.g., "H")
	Category  string      // Grouping (e.g., "panels", "debug")
	Exclusive []OverlayID // Other overlays to disable when this is enabled
}

// Shortcut is a key binding that triggers an action rather than a toggle.
type Shortcut struct {
	Key      int32
	KeyLabel string
	Name     string
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with the default overlays. The HUD
// starts visible; everything else starts hidden.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.registerDefaults()
	reg.SetEnabled(OverlayHUD, true)
	return reg
}

func (r *OverlayRegistry) registerDefaults() {
	r.Register(OverlayDescriptor{
		ID:       OverlayHUD,
		Name:     "Hint & Counts",
		Key:      rl.KeyH,
		KeyLabel: "H",
		Category: "panels",
	})

	r.Register(OverlayDescriptor{
		ID:       OverlaySettings,
		Name:     "Settings",
		Key:      rl.KeyM,
		KeyLabel: "M",
		Category: "panels",
	})

	r.Register(OverlayDescriptor{
		ID:        OverlayControls,
		Name:      "Key Bindings",
		Key:       rl.KeyF1,
		KeyLabel:  "F1",
		Category:  "panels",
		Exclusive: []OverlayID{OverlayPerf},
	})

	r.Register(OverlayDescriptor{
		ID:        OverlayPerf,
		Name:      "Frame Timing",
		Key:       rl.KeyF3,
		KeyLabel:  "F3",
		Category:  "debug",
		Exclusive: []OverlayID{OverlayControls},
	})
}

// Register adds an overlay to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = false
}

// Toggle switches an overlay on/off and handles exclusivity.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.SetEnabled(id, !r.enabled[id])
	return r.enabled[id]
}

// SetEnabled explicitly sets an overlay's state.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	desc, ok := r.byID[id]
	if !ok {
		return
	}

	r.enabled[id] = enabled
	if enabled {
		for _, excl := range desc.Exclusive {
			r.enabled[excl] = false
		}
	}
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// ByCategory returns overlays filtered by category.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var result []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns all unique categories in order.
func (r *OverlayRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// PollKeys toggles every overlay whose key was pressed this frame.
func (r *OverlayRegistry) PollKeys() {
	for _, desc := range r.descriptors {
		if desc.Key != 0 && rl.IsKeyPressed(desc.Key) {
			r.Toggle(desc.ID)
		}
	}
}
