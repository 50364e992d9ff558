package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/trails/telemetry"
	"github.com/pthm-cable/trails/ui"
)

// Draw renders one frame: the backdrop to the screen, the driver's tick
// into the particle layer, the layer over the backdrop, then the UI.
func (g *Game) Draw() {
	s := g.session
	st := g.store.Snapshot()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	s.Phase(telemetry.PhaseBackdrop)
	g.backdrop.Draw(g.surface, st.Background, st.DarkMode, g.nowMS())

	g.layer.Begin()
	s.Advance()
	g.layer.End()
	g.layer.Draw()

	g.drawUI()

	rl.EndDrawing()
	s.EndFrame()
	g.frames++
}

// drawUI draws the HUD and whichever panels are enabled.
func (g *Game) drawUI() {
	st := g.store.Snapshot()
	in := g.session.Input

	if g.overlays.IsEnabled(ui.OverlayHUD) {
		g.hud.Draw(ui.HUDData{
			ParticleCount: len(g.session.Driver.Particles()),
			TouchCount:    in.TouchCount(),
			IsTouch:       in.IsTouch(),
			Paused:        !g.session.Driver.Running(),
			FPS:           rl.GetFPS(),
			Time:          rl.GetTime(),
			ScreenWidth:   g.width,
			ScreenHeight:  g.height,
			Settings:      st,
		})
	}

	if g.overlays.IsEnabled(ui.OverlaySettings) {
		if save := g.settingsPanel.Draw(st, g.store); save {
			g.saveSettings()
		}
	}
	if g.overlays.IsEnabled(ui.OverlayControls) {
		g.controlsPanel.Draw(g.overlays, shortcuts)
	}
	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.perfPanel.Draw(g.session.Perf.Stats())
	}
}
