package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/trails/config"
	"github.com/pthm-cable/trails/game"
	"github.com/pthm-cable/trails/settings"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = config, then time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	settingsPath := flag.String("settings", "", "Style settings file (empty = use config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *statsWindow > 0 {
		cfg.Telemetry.StatsWindowSec = *statsWindow
	}
	if *outputDir == "" {
		*outputDir = cfg.Telemetry.OutputDir
	}
	if *settingsPath == "" {
		*settingsPath = cfg.Settings.Path
	}

	// Set up seed
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
	if cfg.Settings.Watch && !*headless {
		if err := store.Watch(ctx, *settingsPath); err != nil {
			slog.Warn("settings will not reload on change", "error", err)
		}
	}

	opts := game.Options{
		Seed:         rngSeed,
		LogStats:     *logStats,
		OutputDir:    *outputDir,
		Headless:     *headless,
		SettingsPath: *settingsPath,
	}

	if *headless {
		// Headless mode - recorded surfaces, no raylib window
		g, err := game.NewGame(cfg, store, opts)
		if err != nil {
			slog.Error("failed to start canvas", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"stats_window", cfg.Telemetry.StatsWindowSec,
			"max_ticks", *maxTicks,
		)

		for {
			g.UpdateHeadless()

			if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", g.Tick())
				return
			}
		}
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	if cfg.Screen.Fullscreen {
		rl.ToggleFullscreen()
	}

	g, err := game.NewGame(cfg, store, opts)
	if err != nil {
		slog.Error("failed to start canvas", "error", err)
		return
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}
}
