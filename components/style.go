package components

import "strings"

// TrackingType selects the physics a particle follows for its whole life.
type TrackingType uint8

const (
	TrackingNone TrackingType = iota
	TrackingSubtle
	TrackingComet
	TrackingFireworks
	TrackingLightning
	TrackingGalaxy
	TrackingNeon
	TrackingWatercolor
	TrackingGeometric
)

var trackingNames = [...]string{
	TrackingNone:       "none",
	TrackingSubtle:     "subtle",
	TrackingComet:      "comet",
	TrackingFireworks:  "fireworks",
	TrackingLightning:  "lightning",
	TrackingGalaxy:     "galaxy",
	TrackingNeon:       "neon",
	TrackingWatercolor: "watercolor",
	TrackingGeometric:  "geometric",
}

// TrackingTypes lists every tracking style in menu order.
func TrackingTypes() []TrackingType {
	out := make([]TrackingType, len(trackingNames))
	for i := range trackingNames {
		out[i] = TrackingType(i)
	}
	return out
}

// String returns the settings-file name of t.
func (t TrackingType) String() string {
	if int(t) < len(trackingNames) {
		return trackingNames[t]
	}
	return "unknown"
}

// ParseTrackingType maps a persisted name to a tracking style.
// Unrecognized names yield TrackingSubtle and ok=false.
func ParseTrackingType(s string) (TrackingType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range trackingNames {
		if name == s {
			return TrackingType(i), true
		}
	}
	return TrackingSubtle, false
}

// MarshalText implements encoding.TextMarshaler.
func (t TrackingType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names fall
// back to subtle so stale settings files keep loading.
func (t *TrackingType) UnmarshalText(b []byte) error {
	*t, _ = ParseTrackingType(string(b))
	return nil
}

// BackgroundType selects the animated backdrop and the spawn modifiers.
type BackgroundType uint8

const (
	BackgroundNone BackgroundType = iota
	BackgroundCyberpunk
	BackgroundNebula
	BackgroundMatrix
	BackgroundAurora
	BackgroundSynthwave
	BackgroundOcean
	BackgroundFluid
)

var backgroundNames = [...]string{
	BackgroundNone:      "none",
	BackgroundCyberpunk: "cyberpunk",
	BackgroundNebula:    "nebula",
	BackgroundMatrix:    "matrix",
	BackgroundAurora:    "aurora",
	BackgroundSynthwave: "synthwave",
	BackgroundOcean:     "ocean",
	BackgroundFluid:     "fluid",
}

// BackgroundTypes lists every background theme in menu order.
func BackgroundTypes() []BackgroundType {
	out := make([]BackgroundType, len(backgroundNames))
	for i := range backgroundNames {
		out[i] = BackgroundType(i)
	}
	return out
}

// String returns the settings-file name of b.
func (b BackgroundType) String() string {
	if int(b) < len(backgroundNames) {
		return backgroundNames[b]
	}
	return "unknown"
}

// ParseBackgroundType maps a persisted name to a background theme.
// Unrecognized names yield BackgroundNone and ok=false.
func ParseBackgroundType(s string) (BackgroundType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range backgroundNames {
		if name == s {
			return BackgroundType(i), true
		}
	}
	return BackgroundNone, false
}

// MarshalText implements encoding.TextMarshaler.
func (b BackgroundType) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BackgroundType) UnmarshalText(text []byte) error {
	*b, _ = ParseBackgroundType(string(text))
	return nil
}

// ParticleStyle selects the primary draw routine.
type ParticleStyle uint8

const (
	StyleDefault ParticleStyle = iota
	StyleGlow
	StyleCrystalline
	StylePlasma
	StyleStardust
	StyleEnergy
	StyleEthereal
	StyleDigital
	StyleFlame
	StyleElectric
)

var styleNames = [...]string{
	StyleDefault:     "default",
	StyleGlow:        "glow",
	StyleCrystalline: "crystalline",
	StylePlasma:      "plasma",
	StyleStardust:    "stardust",
	StyleEnergy:      "energy",
	StyleEthereal:    "ethereal",
	StyleDigital:     "digital",
	StyleFlame:       "flame",
	StyleElectric:    "electric",
}

// ParticleStyles lists every particle style in menu order.
func ParticleStyles() []ParticleStyle {
	out := make([]ParticleStyle, len(styleNames))
	for i := range styleNames {
		out[i] = ParticleStyle(i)
	}
	return out
}

// String returns the settings-file name of s.
func (s ParticleStyle) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "unknown"
}

// ParseParticleStyle maps a persisted name to a particle style.
// Unrecognized names yield StyleDefault and ok=false.
func ParseParticleStyle(s string) (ParticleStyle, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range styleNames {
		if name == s {
			return ParticleStyle(i), true
		}
	}
	return StyleDefault, false
}

// MarshalText implements encoding.TextMarshaler.
func (s ParticleStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ParticleStyle) UnmarshalText(text []byte) error {
	*s, _ = ParseParticleStyle(string(text))
	return nil
}
