package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/trails/engine"
	"github.com/pthm-cable/trails/ui"
)

// handleInput processes keyboard, mouse and touch input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.togglePause()
	}

	if rl.IsKeyPressed(rl.KeyT) {
		g.store.CycleTracking()
	}
	if rl.IsKeyPressed(rl.KeyB) {
		g.store.CycleBackground()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.store.CycleStyle()
	}
	if rl.IsKeyPressed(rl.KeyD) {
		g.store.ToggleDarkMode()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		g.saveSettings()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		g.layer.Clear()
	}

	g.overlays.PollKeys()

	g.handlePointer()
	if g.cfg.Input.Touch {
		g.handleTouches()
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	if w == g.width && h == g.height {
		return
	}
	g.width, g.height = w, h

	g.surface.Resize(float64(w), float64(h))
	g.session.Driver.Resize(float64(w), float64(h))
	g.layer.Resize(w, h)
	g.layoutUI()
}

func (g *Game) togglePause() {
	d := g.session.Driver
	if d.Running() {
		d.Stop()
	} else {
		d.Start()
	}
}

func (g *Game) saveSettings() {
	if err := g.store.Save(g.opts.SettingsPath); err != nil {
		slog.Error("failed to save settings", "path", g.opts.SettingsPath, "error", err)
		return
	}
	slog.Info("settings saved", "path", g.opts.SettingsPath)
}

// handlePointer turns mouse state changes into dispatcher events. Presses
// on the settings panel belong to the panel.
func (g *Game) handlePointer() {
	in := g.session.Input
	if !rl.IsCursorOnScreen() {
		if g.cursorInside {
			in.PointerLeave()
			g.cursorInside = false
		}
		return
	}
	g.cursorInside = true

	pos := rl.GetMousePosition()
	x, y := float64(pos.X), float64(pos.Y)

	overPanel := g.overlays.IsEnabled(ui.OverlaySettings) &&
		rl.CheckCollisionPointRec(pos, g.settingsPanel.Bounds())
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !overPanel {
		in.PointerDown(x, y)
	}
	if pos != g.lastMouse {
		g.lastMouse = pos
		in.PointerMove(x, y)
		g.backdrop.SetFocus(g.session.Camera.ClientToSurface(x, y))
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		in.PointerUp()
	}
}

// handleTouches polls the touch points and forwards what changed since the
// last frame.
func (g *Game) handleTouches() {
	n := rl.GetTouchPointCount()
	cur := make(map[int]engine.Touch, n)
	for i := int32(0); i < n; i++ {
		p := rl.GetTouchPosition(i)
		id := int(rl.GetTouchPointId(i))
		cur[id] = engine.Touch{ID: id, X: float64(p.X), Y: float64(p.Y)}
	}

	started, moved, ended := engine.DiffTouches(g.touches, cur)
	in := g.session.Input
	if len(started) > 0 {
		in.TouchStart(started)
	}
	if len(moved) > 0 {
		in.TouchMove(moved)
	}
	if len(ended) > 0 {
		in.TouchEnd(ended)
	}
	g.touches = cur
}
