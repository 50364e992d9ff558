package sdlview

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/tfriedel6/canvas/sdlcanvas"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/pthm-cable/trails/config"
	"github.com/pthm-cable/trails/engine"
	"github.com/pthm-cable/trails/palette"
	"github.com/pthm-cable/trails/renderer"
	"github.com/pthm-cable/trails/settings"
	"github.com/pthm-cable/trails/telemetry"
	"github.com/pthm-cable/trails/ui"
)

// Options holds the per-run choices made on the command line.
type Options struct {
	Seed         int64
	LogStats     bool
	OutputDir    string
	SettingsPath string
	MaxTicks     int // close the window after N ticks, 0 for no limit
}

// View is the SDL front end. The canvas keeps its pixels between frames,
// so trails and the backdrop share one buffer: the backdrop is repainted
// at start-up, on resize and while a theme switch is fading in, and the
// trail fade settles over it otherwise.
type View struct {
	cfg   *config.Config
	store *settings.Store
	opts  Options

	wnd      *sdlcanvas.Window
	surface  *CanvasSurface
	session  *engine.Session
	backdrop *renderer.Backdrop
	start    time.Time

	// Set by the settings subscription, which may run on the watcher
	// goroutine.
	repaint      atomic.Bool
	repaintUntil float64
	unsubscribe  func()
}

// New opens the window and builds the session around its canvas.
func New(cfg *config.Config, store *settings.Store, opts Options) (*View, error) {
	// Touches arrive as finger events; without this SDL also reports them
	// as mouse clicks and every contact would spawn twice.
	sdl.SetHint(sdl.HINT_TOUCH_MOUSE_EVENTS, "0")

	wnd, cv, err := sdlcanvas.CreateWindow(cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.Title)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	v := &View{
		cfg:      cfg,
		store:    store,
		opts:     opts,
		wnd:      wnd,
		surface:  NewCanvasSurface(cv),
		backdrop: renderer.NewBackdrop(opts.Seed),
		start:    time.Now(),
	}
	if cfg.SDL.Font != "" {
		if err := v.surface.LoadFont(cfg.SDL.Font); err != nil {
			slog.Warn("text disabled", "error", err)
		}
	}

	v.session, err = engine.NewSession(cfg, store, engine.SessionOptions{
		Seed:      opts.Seed,
		LogStats:  opts.LogStats,
		OutputDir: opts.OutputDir,
		Clock:     v.nowMS,
	})
	if err != nil {
		wnd.Destroy()
		return nil, fmt.Errorf("creating session: %w", err)
	}
	v.session.Driver.Attach(v.surface)
	v.repaint.Store(true)
	v.unsubscribe = store.Subscribe(func(settings.Settings) { v.repaint.Store(true) })
	v.bindInput()
	v.session.Driver.Start()
	return v, nil
}

func (v *View) nowMS() float64 {
	return float64(time.Since(v.start)) / float64(time.Millisecond)
}

// Run drives frames until the window closes.
func (v *View) Run() {
	v.wnd.MainLoop(v.frame)
}

// Close stops the session and destroys the window.
func (v *View) Close() error {
	v.unsubscribe()
	err := v.session.Close()
	v.wnd.Destroy()
	return err
}

func (v *View) frame() {
	s := v.session
	s.BeginFrame()

	st := v.store.Snapshot()
	now := v.nowMS()
	if v.repaint.Swap(false) {
		v.repaintUntil = now + renderer.CrossFadeMS
	}

	s.Phase(telemetry.PhaseBackdrop)
	if now <= v.repaintUntil {
		v.backdrop.Draw(v.surface, st.Background, st.DarkMode, now)
	}

	s.Advance()
	v.drawHUD(st)
	s.EndFrame()

	if v.opts.MaxTicks > 0 && int(s.Driver.Ticks()) >= v.opts.MaxTicks {
		v.wnd.Close()
	}
}

// drawHUD draws the hint and counts on a strip of the fade colour so
// last frame's text does not smear.
func (v *View) drawHUD(st settings.Settings) {
	if v.surface.font == nil {
		return
	}
	w, _ := v.surface.Size()
	in := v.session.Input
	base := palette.WithAlpha(v.cfg.FadeColor(st.DarkMode)[:7], 1)
	text := renderer.Color(palette.WithAlpha("#ffffff", 0.6))
	if !st.DarkMode {
		text = renderer.Color(palette.WithAlpha("#1e293b", 0.6))
	}

	v.surface.FillRect(0, 0, w, 28, renderer.Color(base))
	v.surface.FillText(ui.Hint(in.IsTouch()), 120, 20, 14, text)
	counts := strings.Join(ui.Counts(len(v.session.Driver.Particles()), in.TouchCount()), "   ")
	v.surface.FillText(counts, w-100, 20, 14, text)
}

// bindInput wires the window callbacks to the dispatcher and the settings.
func (v *View) bindInput() {
	in := v.session.Input

	v.wnd.MouseDown = func(button, x, y int) {
		if button == sdl.BUTTON_LEFT {
			in.PointerDown(float64(x), float64(y))
		}
	}
	v.wnd.MouseMove = func(x, y int) {
		in.PointerMove(float64(x), float64(y))
		v.backdrop.SetFocus(v.session.Camera.ClientToSurface(float64(x), float64(y)))
	}
	v.wnd.MouseUp = func(button, x, y int) {
		if button == sdl.BUTTON_LEFT {
			in.PointerUp()
		}
	}
	v.wnd.SizeChange = func(w, h int) {
		v.session.Driver.Resize(float64(w), float64(h))
		v.repaint.Store(true)
	}
	v.wnd.KeyDown = func(scancode int, rn rune, name string) {
		v.handleKey(name)
	}
	v.wnd.Event = v.handleEvent
}

// handleEvent forwards SDL finger events to the dispatcher, one contact per
// event, keyed by the finger id.
func (v *View) handleEvent(ev sdl.Event) {
	e, ok := ev.(*sdl.TouchFingerEvent)
	if !ok {
		return
	}
	w, h := v.surface.Size()
	touch := []engine.Touch{engine.FingerTouch(int64(e.FingerID), float64(e.X), float64(e.Y), w, h)}

	in := v.session.Input
	switch e.Type {
	case sdl.FINGERDOWN:
		in.TouchStart(touch)
	case sdl.FINGERMOTION:
		in.TouchMove(touch)
		v.backdrop.SetFocus(v.session.Camera.ClientToSurface(touch[0].X, touch[0].Y))
	case sdl.FINGERUP:
		in.TouchEnd(touch)
	}
}

// handleKey maps key names to actions. Both "KeyT" and "T" style names
// are accepted.
func (v *View) handleKey(name string) {
	switch strings.ToUpper(strings.TrimPrefix(name, "Key")) {
	case "ESCAPE":
		v.wnd.Close()
	case "SPACE":
		d := v.session.Driver
		if d.Running() {
			d.Stop()
		} else {
			d.Start()
		}
	case "T":
		v.store.CycleTracking()
	case "B":
		v.store.CycleBackground()
	case "P":
		v.store.CycleStyle()
	case "D":
		v.store.ToggleDarkMode()
	case "S":
		if err := v.store.Save(v.opts.SettingsPath); err != nil {
			slog.Error("failed to save settings", "path", v.opts.SettingsPath, "error", err)
		}
	}
}
