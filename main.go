package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/resonantdoghouse/p5-perlin-terrain/internal/config"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/engine"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/terrain"
)

const WindowTitle = "Perlin Terrain"

var backgroundColor = color.RGBA{20, 20, 24, 255}

type Game struct {
	cfg *config.Config
	log *slog.Logger

	// Core
	engine *engine.Engine

	// Systems
	presenter *Presenter
	hud       *HUD
	panel     *Panel
	pointer   *Pointer
	mode      ViewMode
	help      *HelpScreen

	// Outside size reported by Layout
	outsideW, outsideH int
	postedW, postedH   int

	// Debug
	showDebug bool
}

func NewGame(cfg *config.Config, seed int64, log *slog.Logger) *Game {
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

	g := &Game{
		cfg:       cfg,
		log:       log,
		engine:    e,
		presenter: NewPresenter(),
		hud:       NewHUD(),
		pointer:   &Pointer{},
		help:      NewHelpScreen(),
		outsideW:  cfg.Width,
		outsideH:  cfg.Height,
		postedW:   cfg.Width,
		postedH:   cfg.Height,
	}
	g.panel = NewPanel(e, cfg.ShowPanel)
	g.hud.AddNotification(fmt.Sprintf("Seed %d  |  H for help", seed))
	return g
}

// Update runs one tick
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.mode == ModeHelp {
			g.mode = ModeExplore
		} else {
			return ebiten.Termination
		}
	}

	g.postResize()

	if g.mode == ModeHelp {
		g.help.Update()
		if g.help.Done() {
			g.mode = ModeExplore
		}
	} else {
		g.handleKeys()
		g.panel.Update()
		g.pointer.Update(g.engine, g.panel.Contains)
	}

	grid, rendered := g.engine.Tick(time.Now())
	if rendered {
		g.presenter.Upload(grid)
	}

	g.panel.Sync()
	g.hud.Update(g.engine.Settings().Biome.String())
	return nil
}

// Canvas size follows the window
func (g *Game) postResize() {
	if g.outsideW == g.postedW && g.outsideH == g.postedH {
		return
	}
	g.postedW, g.postedH = g.outsideW, g.outsideH
	g.engine.Post(engine.ResizeIntent{Width: g.outsideW, Height: g.outsideH})
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showDebug = !g.showDebug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.mode = ModeHelp
		g.help.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.panel.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		next := g.engine.Settings().Biome.Next()
		g.engine.Post(engine.ParameterUpdate{Update: terrain.Update{Biome: terrain.String(next.String())}})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		seed := time.Now().UnixNano()
		g.engine.Post(engine.ReseedIntent{Seed: seed})
		g.hud.AddNotification(fmt.Sprintf("Reseeded: %d", seed))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		w, h := g.engine.Size()
		g.engine.Post(engine.ZoomIntent{Target: 1, AnchorX: float64(w) / 2, AnchorY: float64(h) / 2})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.takeSnapshot()
	}
}

func (g *Game) takeSnapshot() {
	if !snapshotSupported() {
		g.hud.AddNotification("Snapshots are not available here")
		return
	}
	path, err := saveSnapshot(g.cfg.SnapshotDir, g.engine.Grid(), g.engine.Seed(), time.Now())
	if err != nil {
		g.log.Error("snapshot failed", "error", err)
		g.hud.AddNotification("Snapshot failed")
		return
	}
	g.log.Info("snapshot saved", "path", path)
	g.hud.AddNotification("Saved " + path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.presenter.Draw(screen)

	if g.mode == ModeHelp {
		g.help.Draw(screen)
		return
	}

	g.hud.Draw(screen, g.engine)
	g.panel.Draw(screen)

	if g.showDebug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	cam := g.engine.Camera()
	grid := g.engine.Grid()
	mx, my := ebiten.CursorPosition()
	height, band := g.engine.Probe(float64(mx), float64(my))

	msg := fmt.Sprintf("FPS: %0.2f\nTPS: %0.2f\nZoom: %0.3f -> %0.3f\nPos: %0.1f, %0.1f\nAnchor: %0.1f, %0.1f\nGrid: %dx%d @%d\nFrames: %d\nState: %s\nNoise: %s\nCursor: %0.1f %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		cam.Zoom, cam.Target,
		cam.Position.X, cam.Position.Y,
		cam.Anchor.X, cam.Anchor.Y,
		grid.Cols, grid.Rows, grid.Step,
		g.engine.Frames(), g.engine.State(), g.engine.NoiseKind(),
		height, band)
	w, _ := g.engine.Size()
	ebitenutil.DebugPrintAt(screen, msg, w-220, 10)
}

func (g *Game) Layout(w, h int) (int, int) {
	if w > 0 && h > 0 {
		g.outsideW, g.outsideH = w, h
	}
	return g.outsideW, g.outsideH
}

func main() {
	cfg := config.DefaultConfig()
	configPath := config.Bind(flag.CommandLine, cfg)
	flag.Parse()

	if err := config.Resolve(flag.CommandLine, cfg, *configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()}))
	for _, w := range cfg.Validate() {
		log.Warn("config corrected", "detail", w)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("starting viewer", "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), "noise", cfg.Noise, "seed", seed)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := NewGame(cfg, seed, log)

	if err := ebiten.RunGame(game); err != nil {
		if err != ebiten.Termination {
			log.Error("run game", "error", err)
			os.Exit(1)
		}
	}
}
