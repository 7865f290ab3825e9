// Package engine runs the single-threaded tick loop: it drains queued input
// intents, advances the camera, debounces resizes and renders the terrain
// grid when the scheduler asks for a frame.
package engine

import (
	"errors"
	"log/slog"
	"time"

	"github.com/resonantdoghouse/p5-perlin-terrain/internal/biome"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/camera"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/noise"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/terrain"
)

// Options configure a new Engine.
type Options struct {
	Width, Height    int
	Settings         terrain.Settings
	NoiseKind        string
	Seed             int64
	ResizeDelay      time.Duration
	WheelSensitivity float64
	Logger           *slog.Logger
}

// Engine owns the settings, camera and grid. It is not safe for concurrent
// use; every call must come from the tick goroutine.
type Engine struct {
	log *slog.Logger

	settings terrain.Settings
	camera   *camera.Camera
	renderer *terrain.Renderer
	grid     *terrain.Grid

	sched  *Scheduler
	resize *Debouncer
	inbox  []Intent

	width, height    int
	dragging         bool
	noiseKind        string
	seed             int64
	wheelSensitivity float64
	frames           uint64
}

// New creates an engine for a width x height canvas. The first Tick renders.
func New(opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if opts.WheelSensitivity <= 0 {
		opts.WheelSensitivity = camera.WheelSensitivity
	}

	settings := opts.Settings.Normalize()
	e := &Engine{
		log:              log,
		settings:         settings,
		camera:           camera.New(),
		grid:             terrain.NewGrid(opts.Width, opts.Height, settings.Step),
		sched:            NewScheduler(),
		resize:           NewDebouncer(opts.ResizeDelay),
		width:            opts.Width,
		height:           opts.Height,
		noiseKind:        opts.NoiseKind,
		wheelSensitivity: opts.WheelSensitivity,
	}
	e.camera.CenterAnchor(opts.Width, opts.Height)
	e.reseed(opts.Seed)
	return e
}

// Post queues an intent for the next tick.
func (e *Engine) Post(in Intent) {
	e.inbox = append(e.inbox, in)
}

// Tick runs one frame step. It returns the grid and true when a new frame was
// rendered, or the previous grid and false when nothing changed.
func (e *Engine) Tick(now time.Time) (*terrain.Grid, bool) {
	for _, in := range e.inbox {
		e.apply(in, now)
	}
	clear(e.inbox)
	e.inbox = e.inbox[:0]

	if r, ok := e.resize.Poll(now); ok {
		e.applyResize(r)
	}

	motion := e.camera.Animating() || e.dragging
	e.camera.Step()

	prev := e.sched.State()
	render := e.sched.Next(motion)
	if state := e.sched.State(); state != prev {
		e.log.Debug("redraw policy changed", "from", prev, "to", state, "zoom", e.camera.Zoom)
	}
	if !render {
		return e.grid, false
	}

	e.renderer.Render(e.settings, e.camera, e.grid)
	e.frames++
	return e.grid, true
}

func (e *Engine) apply(in Intent, now time.Time) {
	switch in := in.(type) {
	case ParameterUpdate:
		next := e.settings.Apply(in.Update)
		if next != e.settings {
			e.settings = next
			e.sched.Invalidate()
		}
	case ZoomIntent:
		e.camera.SetTarget(in.Target, in.AnchorX, in.AnchorY)
	case WheelIntent:
		target := camera.WheelTarget(e.camera.Target, in.Delta, e.wheelSensitivity)
		e.camera.SetTarget(target, in.AnchorX, in.AnchorY)
	case PanIntent:
		if e.camera.Pan(in.DX, in.DY, in.X, in.Y, e.width, e.height) {
			e.sched.Invalidate()
		}
	case DragIntent:
		e.dragging = in.Active
	case ResizeIntent:
		e.width, e.height = max(in.Width, 0), max(in.Height, 0)
		e.resize.Push(in, now)
	case ReseedIntent:
		e.reseed(in.Seed)
		e.sched.Invalidate()
	}
}

func (e *Engine) applyResize(r ResizeIntent) {
	w, h := max(r.Width, 0), max(r.Height, 0)
	if w == e.grid.Width && h == e.grid.Height {
		return
	}
	e.grid.Resize(w, h, e.settings.Step)
	e.camera.CenterAnchor(w, h)
	e.sched.Invalidate()
	e.log.Debug("canvas resized", "width", w, "height", h, "cols", e.grid.Cols, "rows", e.grid.Rows)
}

func (e *Engine) reseed(seed int64) {
	field, err := noise.New(e.noiseKind, seed)
	if errors.Is(err, noise.ErrUnknownKind) {
		e.log.Warn("unknown noise kind, using perlin", "kind", e.noiseKind)
		e.noiseKind = noise.KindPerlin
	}
	e.seed = seed
	e.renderer = terrain.NewRenderer(field)
	e.log.Debug("noise field seeded", "kind", e.noiseKind, "seed", seed)
}

// Settings returns the current terrain settings.
func (e *Engine) Settings() terrain.Settings { return e.settings }

// Camera returns a copy of the camera state.
func (e *Engine) Camera() camera.Camera { return *e.camera }

// Grid returns the frame buffer. Callers must not keep it across ticks.
func (e *Engine) Grid() *terrain.Grid { return e.grid }

// State returns the redraw policy.
func (e *Engine) State() State { return e.sched.State() }

// Seed returns the current noise seed.
func (e *Engine) Seed() int64 { return e.seed }

// NoiseKind returns the name of the noise field in use.
func (e *Engine) NoiseKind() string {
	if e.noiseKind == "" {
		return noise.KindPerlin
	}
	return e.noiseKind
}

// Size returns the live canvas size. The grid lags behind it while a
// resize is pending.
func (e *Engine) Size() (int, int) { return e.width, e.height }

// Frames returns how many frames have been rendered.
func (e *Engine) Frames() uint64 { return e.frames }

// ResizePending reports whether a debounced resize is waiting.
func (e *Engine) ResizePending() bool { return e.resize.Pending() }

// Probe returns the height and band under a screen point.
func (e *Engine) Probe(sx, sy float64) (float64, biome.Band) {
	h := e.renderer.Height(e.settings, e.camera, sx, sy)
	return h, biome.Classify(h, e.settings.SeaLevel)
}
