package game

import rl "github.com/gen2brain/raylib-go/raylib"

// ParticleLayer is the persistent render target the driver paints trails
// into. It starts transparent; the trail fade also blends the alpha
// channel, so old trails fade out to show the backdrop drawn beneath it.
type ParticleLayer struct {
	target        rl.RenderTexture2D
	width, height int32
	loaded        bool
}

// NewParticleLayer creates a cleared layer of the given size.
func NewParticleLayer(width, height int32) *ParticleLayer {
	l := &ParticleLayer{}
	l.Resize(width, height)
	return l
}

// Resize recreates the render target at the new size. Existing trails are
// dropped.
func (l *ParticleLayer) Resize(width, height int32) {
	if l.loaded && width == l.width && height == l.height {
		return
	}
	l.Unload()
	l.target = rl.LoadRenderTexture(width, height)
	rl.SetTextureFilter(l.target.Texture, rl.FilterBilinear)
	l.width, l.height = width, height
	l.loaded = true
	l.Clear()
}

// Begin binds the layer as the draw target.
func (l *ParticleLayer) Begin() {
	rl.BeginTextureMode(l.target)
}

// End restores the screen as the draw target.
func (l *ParticleLayer) End() {
	rl.EndTextureMode()
}

// Clear erases every trail.
func (l *ParticleLayer) Clear() {
	l.Begin()
	rl.ClearBackground(rl.Blank)
	l.End()
}

// Draw composites the layer over the screen.
func (l *ParticleLayer) Draw() {
	// Render textures are stored bottom-up
	srcRect := rl.Rectangle{X: 0, Y: 0, Width: float32(l.width), Height: -float32(l.height)}
	dstRect := rl.Rectangle{X: 0, Y: 0, Width: float32(l.width), Height: float32(l.height)}
	rl.DrawTexturePro(l.target.Texture, srcRect, dstRect, rl.Vector2{}, 0, rl.White)
}

// Unload releases GPU resources.
func (l *ParticleLayer) Unload() {
	if !l.loaded {
		return
	}
	rl.UnloadRenderTexture(l.target)
	l.loaded = false
}
