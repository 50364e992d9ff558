// Style preview tool - every particle style side by side, each fed by an
// orbiting emitter, with the settings menu controlling tracking, background
// and mode for all of them.
//
// Usage: go run ./cmd/stylepreview
package main

import (
	"fmt"
	"math"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/trails/components"
	"github.com/pthm-cable/trails/config"
	"github.com/pthm-cable/trails/game"
	"github.com/pthm-cable/trails/renderer"
	"github.com/pthm-cable/trails/settings"
	"github.com/pthm-cable/trails/systems"
	"github.com/pthm-cable/trails/ui"
)

const (
	windowWidth  = 1280
	windowHeight = 760
	panelWidth   = 280
	cols         = 5
	cellGap      = 8

	cellCap  = 300
	cellKeep = 240
)

// cell is one style's preview pane, in layer coordinates.
type cell struct {
	style      components.ParticleStyle
	system     *systems.ParticleSystem
	physics    *systems.Physics
	x, y, w, h float64
}

func main() {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, "Particle Style Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	cfg, err := config.Defaults()
	if err != nil {
		panic(err)
	}

	rng := rand.New(rand.NewSource(1))
	store := settings.NewStore(settings.Defaults())
	factory := systems.NewFactory(rng, func() float64 { return rl.GetTime() * 1000 })
	particles := renderer.NewParticleRenderer(rng)

	previewW := float64(windowWidth - panelWidth - 30)
	styles := components.ParticleStyles()
	rows := (len(styles) + cols - 1) / cols
	cw := (previewW - cellGap*(cols-1)) / cols
	ch := (windowHeight - 20 - cellGap*float64(rows-1)) / float64(rows)

	cells := make([]*cell, len(styles))
	for i, style := range styles {
		cells[i] = &cell{
			style:   style,
			system:  systems.NewParticleSystem(cellCap),
			physics: systems.NewPhysics(rng, cw, ch),
			x:       10 + float64(i%cols)*(cw+cellGap),
			y:       10 + float64(i/cols)*(ch+cellGap),
			w:       cw,
			h:       ch,
		}
	}

	surface := game.NewRaylibSurface(windowWidth, windowHeight)
	layer := game.NewParticleLayer(windowWidth, windowHeight)
	defer layer.Unload()

	uiRenderer := ui.NewRenderer()
	menu := ui.NewSettingsPanel(uiRenderer, windowWidth-panelWidth-10, 10, panelWidth)

	var rate float32 = 2
	paused := false
	var t float64

	for !rl.WindowShouldClose() {
		st := store.Snapshot()
		uiRenderer.SetDark(st.DarkMode)

		if !paused {
			t += float64(rl.GetFrameTime())
			frame := renderer.Frame{
				NowMS:      rl.GetTime() * 1000,
				DarkMode:   st.DarkMode,
				Background: st.Background,
			}
			fade := renderer.Color(cfg.FadeColor(st.DarkMode))

			layer.Begin()
			for i, c := range cells {
				// Emitter orbits the cell centre, phase-shifted per cell
				a := t*1.8 + float64(i)*0.6
				ex := c.w/2 + math.Cos(a)*c.w*0.28
				ey := c.h/2 + math.Sin(a*1.3)*c.h*0.28
				if st.Tracking != components.TrackingNone {
					c.system.Append(factory.CreateMultipleParticles(ex, ey, int(rate), st.Tracking, st.Background)...)
					c.system.Cap(cellCap, cellKeep)
				}

				frame.Style = c.style
				surface.Save()
				surface.Translate(c.x, c.y)
				surface.FillRect(0, 0, c.w, c.h, fade)
				c.system.Step(c.physics, func(p *components.Particle) {
					particles.Draw(surface, p, frame)
				})
				surface.Restore()
			}
			layer.End()
		}

		rl.BeginDrawing()
		rl.ClearBackground(uiRenderer.Theme.PanelBg)
		layer.Draw()

		for _, c := range cells {
			border := uiRenderer.Theme.PanelBorder
			if c.style == st.Style {
				border = uiRenderer.Theme.SectionHeader
			}
			rl.DrawRectangleLines(int32(c.x), int32(c.y), int32(c.w), int32(c.h), border)
			label := fmt.Sprintf("%s (%d)", settings.StyleOption(c.style).Label, c.system.Count())
			rl.DrawText(label, int32(c.x)+6, int32(c.y+c.h)-18, 12, uiRenderer.Theme.LabelColor)
		}

		menu.Draw(st, store)

		// Emitter controls below the settings menu
		bounds := menu.Bounds()
		panelX := bounds.X
		panelY := bounds.Y + bounds.Height + 10
		uiRenderer.DrawPanel(int32(panelX), int32(panelY), panelWidth, 110)
		panelX += 10
		panelY += 10

		rl.DrawText("Particles per frame", int32(panelX), int32(panelY), 12, uiRenderer.Theme.LabelColor)
		panelY += 16
		rate = gui.SliderBar(rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 70, Height: 18}, "", "", rate, 1, 10)
		rl.DrawText(fmt.Sprintf("%d", int(rate)), int32(panelX+panelWidth-60), int32(panelY+2), 14, uiRenderer.Theme.ValueColor)
		panelY += 30

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 28}, toggleText(paused, "Resume", "Pause")) {
			paused = !paused
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 28}, "Clear") {
			for _, c := range cells {
				c.system.Clear()
			}
			layer.Clear()
		}

		rl.EndDrawing()
	}
}

func toggleText(cond bool, whenTrue, whenFalse string) string {
	if cond {
		return whenTrue
	}
	return whenFalse
}
