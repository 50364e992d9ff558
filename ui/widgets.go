package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// SetDark switches between the dark and light themes.
func (r *Renderer) SetDark(dark bool) {
	r.Theme = ThemeFor(dark)
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawHint draws faint explanatory text and returns the new Y position.
func (r *Renderer) DrawHint(x, y int32, text string) int32 {
	rl.DrawText(text, x, y, r.Theme.FontSize-2, r.Theme.HintColor)
	return y + r.Theme.LineHeight - 2
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawBar draws a labelled [0, 1] bar followed by text. Values above warn
// use the high fill colour.
func (r *Renderer) DrawBar(x, y int32, label string, value, warn float32, text string, width int32) int32 {
	value = max(0, min(1, value))

	barX := x + r.Theme.LabelWidth
	barWidth := width - r.Theme.LabelWidth - 60

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawRectangle(barX, y+2, barWidth, r.Theme.BarHeight, r.Theme.BarBg)

	fill := r.Theme.BarFill
	if value > warn {
		fill = r.Theme.BarFillHigh
	}
	rl.DrawRectangle(barX, y+2, int32(float32(barWidth)*value), r.Theme.BarHeight, fill)
	rl.DrawText(text, barX+barWidth+6, y, r.Theme.FontSize, r.Theme.ValueColor)

	return y + r.Theme.LineHeight + 2
}

// DrawKey draws a key binding line: a status square, a name and the key
// label right-aligned within width.
func (r *Renderer) DrawKey(x, y int32, name, key string, enabled bool, width int32) int32 {
	status := r.Theme.BarBg
	nameColor := r.Theme.LabelColor
	if enabled {
		status = r.Theme.BarFill
		nameColor = r.Theme.ValueColor
	}
	rl.DrawRectangle(x, y+2, 8, 8, status)
	rl.DrawText(name, x+14, y, r.Theme.FontSize, nameColor)

	if key != "" {
		keyText := fmt.Sprintf("[%s]", key)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, r.Theme.HintColor)
	}
	return y + r.Theme.LineHeight
}
