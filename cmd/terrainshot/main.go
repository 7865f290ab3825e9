// Command terrainshot renders one terrain frame to a PNG file without
// opening a window.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/resonantdoghouse/p5-perlin-terrain/internal/config"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/engine"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/terrain"
)

// Upper bound on camera ticks; a full zoom settles well before this.
const maxSettleTicks = 1000

func main() {
	cfg := config.DefaultConfig()
	fs := flag.CommandLine
	configPath := config.Bind(fs, cfg)
	out := fs.String("out", "terrain.png", "output PNG path")
	zoom := fs.Float64("zoom", 1, "camera zoom, anchored at the canvas center")
	raw := fs.Bool("raw", false, "write one pixel per cell instead of canvas size")
	flag.Parse()

	if err := config.Resolve(fs, cfg, *configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	for _, w := range cfg.Validate() {
		log.Warn("config corrected", "detail", w)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid, err := render(cfg, seed, *zoom, log)
	if err != nil {
		log.Error("render failed", "error", err)
		os.Exit(1)
	}
	if err := writePNG(*out, grid, !*raw); err != nil {
		log.Error("write failed", "error", err)
		os.Exit(1)
	}
	log.Info("wrote terrain", "path", *out, "seed", seed, "cols", grid.Cols, "rows", grid.Rows)
}

// render drives the engine until the camera settles and returns the last
// frame.
func render(cfg *config.Config, seed int64, zoom float64, log *slog.Logger) (*terrain.Grid, error) {
	e := engine.New(engine.Options{
		Width:            cfg.Width,
		Height:           cfg.Height,
		Settings:         cfg.Settings(),
		NoiseKind:        cfg.Noise,
		Seed:             seed,
		ResizeDelay:      cfg.ResizeDelay.Duration,
		WheelSensitivity: cfg.WheelSensitivity,
		Logger:           log,
	})
	e.Post(engine.ZoomIntent{
		Target:  zoom,
		AnchorX: float64(cfg.Width) / 2,
		AnchorY: float64(cfg.Height) / 2,
	})

	now := time.Now()
	for i := 0; i < maxSettleTicks; i++ {
		e.Tick(now)
		if e.State() == engine.Idle {
			return e.Grid(), nil
		}
	}
	return nil, fmt.Errorf("camera did not settle after %d ticks", maxSettleTicks)
}

func writePNG(path string, grid *terrain.Grid, upscale bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := grid.WritePNG(f, upscale); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
