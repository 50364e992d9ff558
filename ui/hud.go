package ui

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/trails/settings"
	"github.com/pthm-cable/trails/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	ParticleCount int
	TouchCount    int
	IsTouch       bool
	Paused        bool
	FPS           int32
	Time          float64 // seconds, drives the hint pulse
	ScreenWidth   int32
	ScreenHeight  int32
	Settings      settings.Settings
}

// HUD renders the hint, the live counts and the canvas signature.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a HUD drawing with the shared renderer.
func NewHUD(r *Renderer) *HUD {
	return &HUD{renderer: r}
}

// Hint returns the interaction hint for the input mode.
func Hint(isTouch bool) string {
	if isTouch {
		return "Touch with multiple fingers"
	}
	return "Move and click to create"
}

// Counts returns the top-right count lines. The touch line only appears
// while fingers are down.
func Counts(particles, touches int) []string {
	lines := []string{fmt.Sprintf("Active: %d", particles)}
	if touches > 0 {
		lines = append(lines, fmt.Sprintf("Touches: %d", touches))
	}
	return lines
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	t := h.renderer.Theme
	margin := t.Padding * 2
	size := t.FontSize + 2

	// Pulsing dot before the hint
	pulse := 0.5 + 0.5*math.Sin(data.Time*3)
	dot := t.Accent
	dot.A = uint8(80 + 120*pulse)
	rl.DrawCircle(margin+4, margin+size/2, 4, dot)
	rl.DrawText(Hint(data.IsTouch), margin+16, margin, size, t.HintColor)

	if data.Paused {
		rl.DrawText("PAUSED", margin+16, margin+size+6, size, t.BarFillHigh)
	}

	y := margin
	for _, line := range Counts(data.ParticleCount, data.TouchCount) {
		w := rl.MeasureText(line, size)
		rl.DrawText(line, data.ScreenWidth-margin-w, y, size, t.LabelColor)
		y += size + 4
	}
	fps := fmt.Sprintf("%d FPS", data.FPS)
	rl.DrawText(fps, data.ScreenWidth-margin-rl.MeasureText(fps, t.FontSize), y, t.FontSize, t.HintColor)

	sig := "Interactive Canvas"
	sigSize := t.FontSize - 2
	rl.DrawText(sig, data.ScreenWidth-margin-rl.MeasureText(sig, sigSize), data.ScreenHeight-margin-sigSize, sigSize, t.HintColor)

	style := fmt.Sprintf("%s / %s / %s",
		settings.StyleOption(data.Settings.Style).Label,
		settings.BackgroundOption(data.Settings.Background).Label,
		settings.TrackingOption(data.Settings.Tracking).Label,
	)
	rl.DrawText(style, margin, data.ScreenHeight-margin-sigSize, sigSize, t.HintColor)
}

// PerfPanel renders the per-phase frame timing breakdown.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(r *Renderer, x, y, width int32) *PerfPanel {
	return &PerfPanel{renderer: r, x: x, y: y, width: width}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Height returns the panel height.
func (p *PerfPanel) Height() int32 {
	t := p.renderer.Theme
	lines := int32(len(telemetry.Phases)) + 4
	return lines*(t.LineHeight+2) + t.Padding*2
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	padding := r.Theme.Padding
	inner := p.width - padding*2
	r.DrawPanel(p.x, p.y, p.width, p.Height())

	x := p.x + padding
	y := p.y + padding
	rl.DrawText("Frame Timing", x, y, 16, r.Theme.ValueColor)
	y += r.Theme.LineHeight + 4

	y = r.DrawLabelValue(x, y, "Tick", stats.AvgTickDuration.Round(time.Microsecond).String())
	y = r.DrawLabelValue(x, y, "Range", fmt.Sprintf("%s - %s",
		stats.MinTickDuration.Round(time.Microsecond), stats.MaxTickDuration.Round(time.Microsecond)))
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%.0f (%.0f t/s)", stats.FPS, stats.TicksPerSecond))

	for _, phase := range telemetry.Phases {
		pct := stats.PhasePct[phase]
		y = r.DrawBar(x, y, phase, float32(pct/100), 0.4, fmt.Sprintf("%4.1f%%", pct), inner)
	}
}
