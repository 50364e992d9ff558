// Command trails-sdl runs the particle canvas in an SDL window.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/trails/config"
	"github.com/pthm-cable/trails/sdlview"
	"github.com/pthm-cable/trails/settings"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = config, then time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Close after N ticks (0 = unlimited)")
	settingsPath := flag.String("settings", "", "Style settings file (empty = use config)")
	font := flag.String("font", "", "TTF font for glyphs and text (empty = use config)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *font != "" {
		cfg.SDL.Font = *font
	}
	if *settingsPath == "" {
		*settingsPath = cfg.Settings.Path
	}
	if *outputDir == "" {
		*outputDir = cfg.Telemetry.OutputDir
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = cfg.Simulation.Seed
	}
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	store := settings.NewStore(settings.Defaults())
	if err := store.LoadOrDefault(*settingsPath); err != nil {
		slog.Error("failed to load settings", "path", *settingsPath, "error", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Settings.Watch {
		if err := store.Watch(ctx, *settingsPath); err != nil {
			slog.Warn("settings will not reload on change", "error", err)
		}
	}

	view, err := sdlview.New(cfg, store, sdlview.Options{
		Seed:         rngSeed,
		LogStats:     *logStats,
		OutputDir:    *outputDir,
		SettingsPath: *settingsPath,
		MaxTicks:     *maxTicks,
	})
	if err != nil {
		slog.Error("failed to start canvas", "error", err)
		os.Exit(1)
	}
	slog.Info("sdl canvas started", "seed", rngSeed)

	view.Run()
	if err := view.Close(); err != nil {
		slog.Error("closing canvas", "error", err)
	}
}
