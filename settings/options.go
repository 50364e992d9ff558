package settings

import "github.com/pthm-cable/trails/components"

// Option is a menu entry for one enum value.
type Option struct {
	Label       string
	Description string
}

var trackingOptions = map[components.TrackingType]Option{
	components.TrackingNone:       {"None", "No tracking animations"},
	components.TrackingSubtle:     {"Subtle Trail", "Gentle floating particles"},
	components.TrackingComet:      {"Trailing Comet", "Elongated glowing trails"},
	components.TrackingFireworks:  {"Fireworks", "Explosive bursts of color"},
	components.TrackingLightning:  {"Lightning", "Electric branching effects"},
	components.TrackingGalaxy:     {"Galaxy Spiral", "Swirling cosmic patterns"},
	components.TrackingNeon:       {"Neon Glow", "Bright electric lines"},
	components.TrackingWatercolor: {"Watercolor", "Soft paint-like blending"},
	components.TrackingGeometric:  {"Geometric", "Sharp angular shapes"},
}

var backgroundOptions = map[components.BackgroundType]Option{
	components.BackgroundNone:      {"Default", "Clean minimal background"},
	components.BackgroundCyberpunk: {"Cyberpunk", "Neon grid with electric pulses"},
	components.BackgroundNebula:    {"Cosmic Nebula", "Swirling space clouds"},
	components.BackgroundMatrix:    {"Digital Matrix", "Flowing code patterns"},
	components.BackgroundAurora:    {"Aurora Borealis", "Dancing northern lights"},
	components.BackgroundSynthwave: {"Synthwave", "Retro 80s neon vibes"},
	components.BackgroundOcean:     {"Deep Ocean", "Underwater light rays"},
	components.BackgroundFluid:     {"Fluid", "Soft pastel flow"},
}

var styleOptions = map[components.ParticleStyle]Option{
	components.StyleDefault:     {"Classic Dots", "Simple circular particles"},
	components.StyleGlow:        {"Radiant Orbs", "Multi-layered glowing spheres"},
	components.StyleCrystalline: {"Crystal Shards", "Faceted geometric crystals"},
	components.StylePlasma:      {"Plasma Energy", "Turbulent energy with tendrils"},
	components.StyleStardust:    {"Stellar Bursts", "Twinkling star-shaped particles"},
	components.StyleEnergy:      {"Power Cores", "Pulsing rings with bright cores"},
	components.StyleEthereal:    {"Ghost Wisps", "Flowing translucent forms"},
	components.StyleDigital:     {"Pixel Matrix", "Blocky digital grid patterns"},
	components.StyleFlame:       {"Fire Tongues", "Flickering flame-like shapes"},
	components.StyleElectric:    {"Lightning Bolts", "Jagged electric arcs"},
}

// TrackingOption returns the menu entry for t.
func TrackingOption(t components.TrackingType) Option {
	if o, ok := trackingOptions[t]; ok {
		return o
	}
	return Option{Label: t.String()}
}

// BackgroundOption returns the menu entry for b.
func BackgroundOption(b components.BackgroundType) Option {
	if o, ok := backgroundOptions[b]; ok {
		return o
	}
	return Option{Label: b.String()}
}

// StyleOption returns the menu entry for s.
func StyleOption(s components.ParticleStyle) Option {
	if o, ok := styleOptions[s]; ok {
		return o
	}
	return Option{Label: s.String()}
}
