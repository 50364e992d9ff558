// Package ui draws the raylib HUD and panels over the particle canvas.
// Panels share one Renderer so a theme change restyles all of them.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// PanelAnchor specifies where a panel is anchored on screen.
type PanelAnchor int

const (
	AnchorTopLeft PanelAnchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
)

// Place returns the top-left corner of a w x h panel anchored a inside a
// screen of the given size, inset by margin.
func Place(a PanelAnchor, w, h, screenW, screenH, margin int32) (x, y int32) {
	switch a {
	case AnchorTopRight:
		return screenW - w - margin, margin
	case AnchorBottomLeft:
		return margin, screenH - h - margin
	case AnchorBottomRight:
		return screenW - w - margin, screenH - h - margin
	default:
		return margin, margin
	}
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	HintColor      rl.Color
	Accent         rl.Color
	BarBg          rl.Color
	BarFill        rl.Color
	BarFillHigh    rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the dark-mode theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 12, G: 18, B: 32, A: 220},
		PanelBorder:    rl.Color{R: 51, G: 65, B: 85, A: 255},
		SectionHeader:  rl.Color{R: 147, G: 197, B: 253, A: 255},
		LabelColor:     rl.Color{R: 203, G: 213, B: 225, A: 255},
		ValueColor:     rl.White,
		HintColor:      rl.Color{R: 255, G: 255, B: 255, A: 102},
		Accent:         rl.Color{R: 147, G: 197, B: 253, A: 153},
		BarBg:          rl.Color{R: 30, G: 41, B: 59, A: 255},
		BarFill:        rl.Color{R: 96, G: 165, B: 250, A: 255},
		BarFillHigh:    rl.Color{R: 248, G: 113, B: 113, A: 255},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     80,
		BarHeight:      10,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}

// LightTheme returns the light-mode theme.
func LightTheme() Theme {
	t := DefaultTheme()
	t.PanelBg = rl.Color{R: 248, G: 250, B: 252, A: 230}
	t.PanelBorder = rl.Color{R: 203, G: 213, B: 225, A: 255}
	t.SectionHeader = rl.Color{R: 37, G: 99, B: 235, A: 255}
	t.LabelColor = rl.Color{R: 71, G: 85, B: 105, A: 255}
	t.ValueColor = rl.Color{R: 30, G: 41, B: 59, A: 255}
	t.HintColor = rl.Color{R: 30, G: 41, B: 59, A: 102}
	t.Accent = rl.Color{R: 37, G: 99, B: 235, A: 153}
	t.BarBg = rl.Color{R: 226, G: 232, B: 240, A: 255}
	return t
}

// ThemeFor picks the theme matching the canvas mode.
func ThemeFor(dark bool) Theme {
	if dark {
		return DefaultTheme()
	}
	return LightTheme()
}
