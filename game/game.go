// Package game runs the particle canvas in a raylib window: it owns the
// session, the particle layer, the backdrop and the HUD panels.
package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/trails/config"
	"github.com/pthm-cable/trails/engine"
	"github.com/pthm-cable/trails/renderer"
	"github.com/pthm-cable/trails/settings"
	"github.com/pthm-cable/trails/telemetry"
	"github.com/pthm-cable/trails/ui"
)

// Options holds the per-run choices made on the command line.
type Options struct {
	Seed         int64
	LogStats     bool
	OutputDir    string // CSV output, empty to disable
	Headless     bool   // no window; an autopilot drives the pointer
	SettingsPath string // where S saves the style settings
}

// Game holds the complete canvas state.
type Game struct {
	cfg     *config.Config
	store   *settings.Store
	opts    Options
	session *engine.Session

	backdrop *renderer.Backdrop

	// Graphical mode
	surface       *RaylibSurface
	layer         *ParticleLayer
	uiRenderer    *ui.Renderer
	hud           *ui.HUD
	perfPanel     *ui.PerfPanel
	controlsPanel *ui.ControlsPanel
	settingsPanel *ui.SettingsPanel
	overlays      *ui.OverlayRegistry

	// Input state between frames
	touches      map[int]engine.Touch
	lastMouse    rl.Vector2
	cursorInside bool

	// Headless mode
	pilot       *engine.Autopilot
	backdropRec *renderer.Recorder

	frames        int64
	width, height int32
}

// shortcuts are the action keys listed in the controls panel.
var shortcuts = []ui.Shortcut{
	{Key: rl.KeySpace, KeyLabel: "Space", Name: "Pause"},
	{Key: rl.KeyT, KeyLabel: "T", Name: "Next tracking"},
	{Key: rl.KeyB, KeyLabel: "B", Name: "Next background"},
	{Key: rl.KeyP, KeyLabel: "P", Name: "Next style"},
	{Key: rl.KeyD, KeyLabel: "D", Name: "Dark / light"},
	{Key: rl.KeyS, KeyLabel: "S", Name: "Save settings"},
	{Key: rl.KeyC, KeyLabel: "C", Name: "Clear trails"},
	{Key: rl.KeyF11, KeyLabel: "F11", Name: "Fullscreen"},
}

// NewGame creates a canvas for cfg reading style settings from store. In
// graphical mode the raylib window must already be open.
func NewGame(cfg *config.Config, store *settings.Store, opts Options) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		store:    store,
		opts:     opts,
		backdrop: renderer.NewBackdrop(opts.Seed),
		touches:  make(map[int]engine.Touch),
		width:    int32(cfg.Screen.Width),
		height:   int32(cfg.Screen.Height),
	}
	if g.opts.SettingsPath == "" {
		g.opts.SettingsPath = cfg.Settings.Path
	}

	session, err := engine.NewSession(cfg, store, engine.SessionOptions{
		Seed:      opts.Seed,
		LogStats:  opts.LogStats,
		OutputDir: opts.OutputDir,
		Clock:     g.nowMS,
	})
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	g.session = session

	if opts.Headless {
		rec := renderer.NewRecorder(cfg.Derived.ScreenW, cfg.Derived.ScreenH)
		rec.Discard = true
		g.backdropRec = renderer.NewRecorder(cfg.Derived.ScreenW, cfg.Derived.ScreenH)
		g.backdropRec.Discard = true
		g.pilot = engine.NewAutopilot(opts.Seed, session.Camera, cfg.Autopilot)
		session.Driver.Attach(rec)
	} else {
		g.width, g.height = int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
		g.surface = NewRaylibSurface(float64(g.width), float64(g.height))
		g.layer = NewParticleLayer(g.width, g.height)
		g.initUI()
		session.Driver.Attach(g.surface)
	}
	session.Driver.Start()

	slog.Info("canvas started",
		"seed", opts.Seed,
		"headless", opts.Headless,
		"width", g.width,
		"height", g.height,
	)
	return g, nil
}

// initUI creates the HUD panels, all sharing one themed renderer.
func (g *Game) initUI() {
	g.uiRenderer = ui.NewRenderer()
	g.uiRenderer.SetDark(g.store.Snapshot().DarkMode)
	g.overlays = ui.NewOverlayRegistry()
	g.hud = ui.NewHUD(g.uiRenderer)
	g.perfPanel = ui.NewPerfPanel(g.uiRenderer, 0, 0, 300)
	g.controlsPanel = ui.NewControlsPanel(g.uiRenderer, 0, 0, 240)
	g.settingsPanel = ui.NewSettingsPanel(g.uiRenderer, 0, 0, 280)
	g.layoutUI()
}

// layoutUI anchors the panels for the current window size.
func (g *Game) layoutUI() {
	margin := int32(16)
	top := int32(72) // below the hint and counts
	g.settingsPanel.SetPosition(margin, top)
	x, _ := ui.Place(ui.AnchorTopRight, 300, 0, g.width, g.height, margin)
	g.perfPanel.SetPosition(x, top)
	x, _ = ui.Place(ui.AnchorTopRight, 240, 0, g.width, g.height, margin)
	g.controlsPanel.SetPosition(x, top)
}

// nowMS is the session clock. Headless runs advance it by one frame per
// tick so output does not depend on machine speed.
func (g *Game) nowMS() float64 {
	if g.opts.Headless {
		return float64(g.frames) * 1000 / float64(g.cfg.Screen.TargetFPS)
	}
	return rl.GetTime() * 1000
}

// Update polls input for one frame. Timing for the frame starts here and
// ends in Draw.
func (g *Game) Update() {
	g.session.BeginFrame()
	g.uiRenderer.SetDark(g.store.Snapshot().DarkMode)
	g.handleInput()
}

// UpdateHeadless runs one frame without graphics: the autopilot moves the
// pointer, the backdrop is recorded and the driver ticks.
func (g *Game) UpdateHeadless() {
	s := g.session
	s.BeginFrame()
	g.pilot.Step(s.Input)

	st := g.store.Snapshot()
	s.Phase(telemetry.PhaseBackdrop)
	g.backdrop.SetFocus(s.Input.Pointer().X, s.Input.Pointer().Y)
	g.backdrop.Draw(g.backdropRec, st.Background, st.DarkMode, g.nowMS())

	s.Advance()
	s.EndFrame()
	g.frames++
}

// Tick returns the number of driver ticks run.
func (g *Game) Tick() int32 {
	return g.session.Driver.Ticks()
}

// Unload stops the canvas and releases resources.
func (g *Game) Unload() {
	if err := g.session.Close(); err != nil {
		slog.Error("closing session", "error", err)
	}
	if g.layer != nil {
		g.layer.Unload()
	}
}
