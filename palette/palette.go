// Package palette resolves particle colours from the active background theme
// and tracking style, and provides the hex helpers the renderers share.
package palette

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/trails/components"
)

// backgroundColors are the base colours a themed background draws from.
var backgroundColors = map[components.BackgroundType][]string{
	components.BackgroundCyberpunk: {"#00ffff", "#ff00ff", "#ffff00"},
	components.BackgroundNebula:    {"#8a2be2", "#4b0082", "#00bfff"},
	components.BackgroundMatrix:    {"#00ff41", "#008f11", "#003b00"},
	components.BackgroundAurora:    {"#00ff7f", "#40e0d0", "#8a2be2"},
	components.BackgroundSynthwave: {"#ff1493", "#00ffff", "#ff4500"},
	components.BackgroundOcean:     {"#00bfff", "#1e90ff", "#0064c8"},
	components.BackgroundFluid:     {"#38bdf8", "#818cf8", "#f472b6"},
}

// trackingAccents are the two-colour accents per tracking style.
var trackingAccents = map[components.TrackingType][2]string{
	components.TrackingSubtle:     {"#60a5fa", "#93c5fd"},
	components.TrackingComet:      {"#c084fc", "#f0abfc"},
	components.TrackingFireworks:  {"#f97316", "#facc15"},
	components.TrackingLightning:  {"#22d3ee", "#e0f2fe"},
	components.TrackingGalaxy:     {"#a855f7", "#ec4899"},
	components.TrackingNeon:       {"#39ff14", "#ff073a"},
	components.TrackingWatercolor: {"#f9a8d4", "#a5b4fc"},
	components.TrackingGeometric:  {"#f59e0b", "#10b981"},
}

// BackgroundPalette returns the palette for a theme, or nil for unthemed
// backgrounds.
func BackgroundPalette(bg components.BackgroundType) []string {
	return backgroundColors[bg]
}

// BackgroundBase picks a base colour for the background. Unthemed
// backgrounds get a random hue at 70% saturation, 60% lightness.
func BackgroundBase(rng *rand.Rand, bg components.BackgroundType) string {
	if colors := backgroundColors[bg]; len(colors) > 0 {
		return colors[rng.Intn(len(colors))]
	}
	return HSLToHex(rng.Float64()*360, 0.7, 0.6)
}

// TrackingAccent picks one of the tracking style's accent colours.
// ok is false for none and unknown styles.
func TrackingAccent(rng *rand.Rand, tt components.TrackingType) (string, bool) {
	accents, ok := trackingAccents[tt]
	if !ok {
		return "", false
	}
	return accents[rng.Intn(len(accents))], true
}

// Resolve computes a particle colour that contrasts with the background:
// the complement of the background base, averaged with the tracking accent
// when there is one.
func Resolve(rng *rand.Rand, tt components.TrackingType, bg components.BackgroundType) string {
	complement := Complement(BackgroundBase(rng, bg))
	accent, ok := TrackingAccent(rng, tt)
	if !ok {
		return complement
	}
	return Blend(accent, complement)
}

// HSLToHex converts hue in degrees and saturation/lightness in [0,1].
func HSLToHex(h, s, l float64) string {
	return colorful.Hsl(math.Mod(h, 360), s, l).Clamped().Hex()
}

// Complement rotates the hue of a hex colour by 180 degrees.
func Complement(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	return HSLToHex(math.Mod(h+180, 360), s, l)
}

// Blend averages two hex colours per channel with rounding.
func Blend(a, b string) string {
	r1, g1, b1, _, ok1 := ParseHex(a)
	r2, g2, b2, _, ok2 := ParseHex(b)
	switch {
	case !ok1:
		return b
	case !ok2:
		return a
	}
	avg := func(x, y uint8) uint8 { return uint8((int(x) + int(y) + 1) / 2) }
	return fmt.Sprintf("#%02x%02x%02x", avg(r1, r2), avg(g1, g2), avg(b1, b2))
}

// WithAlpha appends a two-digit hex alpha to a #rrggbb colour. Alpha is
// clamped to [0,1].
func WithAlpha(color string, alpha float64) string {
	if alpha < 0 || math.IsNaN(alpha) {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return fmt.Sprintf("%s%02x", color, int(math.Round(alpha*255)))
}

// ParseHex parses #rgb, #rrggbb or #rrggbbaa. Missing alpha is 255.
func ParseHex(s string) (r, g, b, a uint8, ok bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 && len(s) != 8 {
		return 0, 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, 0, false
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
