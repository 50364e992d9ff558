package ui

import (
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/trails/components"
	"github.com/pthm-cable/trails/settings"
)

// ControlsPanel renders the key binding legend: overlay toggles grouped by
// category, then action shortcuts.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(r *Renderer, x, y, width int32) *ControlsPanel {
	return &ControlsPanel{renderer: r, x: x, y: y, width: width}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Height returns the panel height for the given content.
func (c *ControlsPanel) Height(overlays *OverlayRegistry, actions []Shortcut) int32 {
	t := c.renderer.Theme
	lines := int32(len(actions)) + 2 // title + actions header
	for _, cat := range overlays.Categories() {
		lines += int32(len(overlays.ByCategory(cat))) + 1
	}
	return lines*t.LineHeight + t.Padding*2 + 4
}

// Draw renders the controls panel.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry, actions []Shortcut) int32 {
	r := c.renderer
	padding := r.Theme.Padding
	inner := c.width - padding*2

	r.DrawPanel(c.x, c.y, c.width, c.Height(overlays, actions))

	x := c.x + padding
	y := c.y + padding
	rl.DrawText("Controls", x, y, 16, r.Theme.ValueColor)
	y += r.Theme.LineHeight + 4

	for _, category := range overlays.Categories() {
		y = r.DrawSectionHeader(x, y, categoryLabel(category))
		for _, desc := range overlays.ByCategory(category) {
			y = r.DrawKey(x, y, desc.Name, desc.KeyLabel, overlays.IsEnabled(desc.ID), inner)
		}
	}

	y = r.DrawSectionHeader(x, y, "Canvas")
	for _, a := range actions {
		y = r.DrawKey(x, y, a.Name, a.KeyLabel, false, inner)
	}
	return y
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "panels":
		return "Panels"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}

// SettingsEditor applies changes made in the settings panel.
type SettingsEditor interface {
	SetTracking(components.TrackingType)
	SetBackground(components.BackgroundType)
	SetStyle(components.ParticleStyle)
	SetDarkMode(bool)
}

// SettingsPanel is the raygui menu for the style settings: a combo box per
// enum with the selected option's description underneath, and a dark mode
// check box.
type SettingsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32

	trackingItems   string
	backgroundItems string
	styleItems      string
}

const settingsPanelHeight = 256

// NewSettingsPanel creates a settings panel.
func NewSettingsPanel(r *Renderer, x, y, width int32) *SettingsPanel {
	p := &SettingsPanel{renderer: r, x: x, y: y, width: width}

	var labels []string
	for _, t := range components.TrackingTypes() {
		labels = append(labels, settings.TrackingOption(t).Label)
	}
	p.trackingItems = strings.Join(labels, ";")

	labels = labels[:0]
	for _, b := range components.BackgroundTypes() {
		labels = append(labels, settings.BackgroundOption(b).Label)
	}
	p.backgroundItems = strings.Join(labels, ";")

	labels = labels[:0]
	for _, s := range components.ParticleStyles() {
		labels = append(labels, settings.StyleOption(s).Label)
	}
	p.styleItems = strings.Join(labels, ";")
	return p
}

// SetPosition updates the panel position.
func (p *SettingsPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Bounds returns the screen area the panel covers, so pointer presses on
// it are not passed to the canvas.
func (p *SettingsPanel) Bounds() rl.Rectangle {
	return rl.Rectangle{X: float32(p.x), Y: float32(p.y), Width: float32(p.width), Height: settingsPanelHeight}
}

// Draw renders the panel for cur and applies any change through ed. It
// reports whether Save was clicked.
func (p *SettingsPanel) Draw(cur settings.Settings, ed SettingsEditor) (save bool) {
	r := p.renderer
	padding := r.Theme.Padding
	r.DrawPanel(p.x, p.y, p.width, settingsPanelHeight)

	x := p.x + padding
	y := p.y + padding
	w := float32(p.width - padding*2)

	rl.DrawText("Settings", x, y, 16, r.Theme.ValueColor)
	y += r.Theme.LineHeight + 6

	y = r.DrawSectionHeader(x, y, "Cursor Tracking")
	if next := gui.ComboBox(p.row(x, y, w), p.trackingItems, int32(cur.Tracking)); next != int32(cur.Tracking) {
		ed.SetTracking(components.TrackingType(next))
	}
	y = r.DrawHint(x, y+28, settings.TrackingOption(cur.Tracking).Description)

	y = r.DrawSectionHeader(x, y+4, "Background")
	if next := gui.ComboBox(p.row(x, y, w), p.backgroundItems, int32(cur.Background)); next != int32(cur.Background) {
		ed.SetBackground(components.BackgroundType(next))
	}
	y = r.DrawHint(x, y+28, settings.BackgroundOption(cur.Background).Description)

	y = r.DrawSectionHeader(x, y+4, "Particle Style")
	if next := gui.ComboBox(p.row(x, y, w), p.styleItems, int32(cur.Style)); next != int32(cur.Style) {
		ed.SetStyle(components.ParticleStyle(next))
	}
	y = r.DrawHint(x, y+28, settings.StyleOption(cur.Style).Description)

	y += 8
	mode := "Light Mode"
	if cur.DarkMode {
		mode = "Dark Mode"
	}
	if dark := gui.CheckBox(rl.Rectangle{X: float32(x), Y: float32(y), Width: 16, Height: 16}, mode, cur.DarkMode); dark != cur.DarkMode {
		ed.SetDarkMode(dark)
	}

	return gui.Button(rl.Rectangle{X: float32(x) + w - 80, Y: float32(y) - 4, Width: 80, Height: 24}, "Save")
}

func (p *SettingsPanel) row(x, y int32, w float32) rl.Rectangle {
	return rl.Rectangle{X: float32(x), Y: float32(y), Width: w, Height: 24}
}
