package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/ebitenui/ebitenui"
	uiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/resonantdoghouse/p5-perlin-terrain/internal/biome"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/camera"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/engine"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/terrain"
)

// Positions per float slider
const sliderSteps = 100

var zoomRange = terrain.Range{Min: camera.MinZoom, Max: camera.MaxZoom}

// binding ties one slider to a live value. pos reads the engine's value as
// a slider position; post sends a new position back as an intent.
type binding struct {
	slider *widget.Slider
	label  *widget.Text
	pos    func() int
	format func(pos int) string
	post   func(pos int)
}

// Panel is the parameter panel. Every slider edit becomes an engine intent;
// Sync moves the sliders when values change from elsewhere.
type Panel struct {
	ui       *ebitenui.UI
	panel    *widget.Container
	visible  bool
	fontFace text.Face
	engine   *engine.Engine
	bindings []*binding
}

func NewPanel(e *engine.Engine, visible bool) *Panel {
	p := &Panel{
		engine:  e,
		visible: visible,
	}
	p.fontFace = p.loadFont()
	p.ui = p.buildUI()
	p.Sync()
	return p
}

func (p *Panel) loadFont() text.Face {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	return &text.GoTextFace{
		Source: source,
		Size:   14,
	}
}

func (p *Panel) buildUI() *ebitenui.UI {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	p.panel = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.BackgroundImage(p.createPanelBackground()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				Padding:            widget.NewInsetsSimple(10),
			}),
			widget.WidgetOpts.MinSize(320, 0),
		),
	)

	e := p.engine
	p.panel.AddChild(p.createLabel("TERRAIN", color.RGBA{255, 220, 100, 255}))

	p.panel.AddChild(p.createFloatSlider("World size", terrain.WorldSizeRange,
		func() float64 { return e.Settings().WorldSize },
		func(v float64) { p.postUpdate(terrain.Update{WorldSize: terrain.Float64(v)}) },
		func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) },
	))
	p.panel.AddChild(p.createFloatSlider("Zoom", zoomRange,
		func() float64 { return e.Camera().Target },
		func(v float64) {
			w, h := e.Size()
			e.Post(engine.ZoomIntent{Target: v, AnchorX: float64(w) / 2, AnchorY: float64(h) / 2})
		},
		func(v float64) string { return fmt.Sprintf("x%.2f", v) },
	))
	p.panel.AddChild(p.createFloatSlider("Elevation", terrain.ElevationRange,
		func() float64 { return e.Settings().Elevation },
		func(v float64) { p.postUpdate(terrain.Update{Elevation: terrain.Float64(v)}) },
		func(v float64) string { return strconv.FormatFloat(v, 'f', 0, 64) },
	))
	p.panel.AddChild(p.createIntSlider("Octaves", terrain.MinOctaves, terrain.MaxOctaves,
		func() int { return e.Settings().Octaves },
		func(v int) { p.postUpdate(terrain.Update{Octaves: terrain.Int(v)}) },
		strconv.Itoa,
	))
	p.panel.AddChild(p.createFloatSlider("Sea level", terrain.SeaLevelRange,
		func() float64 { return e.Settings().SeaLevel },
		func(v float64) { p.postUpdate(terrain.Update{SeaLevel: terrain.Float64(v)}) },
		func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
	))
	p.panel.AddChild(p.createIntSlider("Block size", terrain.MinStep, terrain.MaxStep,
		func() int { return e.Settings().Step },
		func(v int) { p.postUpdate(terrain.Update{Step: terrain.Int(v)}) },
		func(v int) string { return strconv.Itoa(v) + "px" },
	))

	biomes := biome.Biomes()
	p.panel.AddChild(p.createIntSlider("Biome", 0, len(biomes)-1,
		func() int { return int(e.Settings().Biome) - int(biomes[0]) },
		func(v int) { p.postUpdate(terrain.Update{Biome: terrain.String(biomes[v].String())}) },
		func(v int) string { return biomes[v].String() },
	))

	p.panel.AddChild(p.createLabel("Wheel zooms, drag pans", color.RGBA{128, 128, 128, 255}))
	p.panel.AddChild(p.createLabel("Press P to toggle panel", color.RGBA{128, 128, 128, 255}))

	rootContainer.AddChild(p.panel)

	return &ebitenui.UI{Container: rootContainer}
}

func (p *Panel) postUpdate(u terrain.Update) {
	p.engine.Post(engine.ParameterUpdate{Update: u})
}

func (p *Panel) createPanelBackground() *uiimage.NineSlice {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.RGBA{30, 35, 45, 230})
	return uiimage.NewNineSliceSimple(img, 0, 0)
}

func (p *Panel) createLabel(label string, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, p.fontFace, clr),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch: true,
			}),
		),
	)
}

// createIntSlider maps slider positions 0..max-min onto the integer range.
func (p *Panel) createIntSlider(label string, min, max int, get func() int, set func(int), format func(int) string) *widget.Container {
	return p.createSlider(label, &binding{
		pos:    func() int { return get() - min },
		format: func(pos int) string { return format(pos + min) },
		post:   func(pos int) { set(pos + min) },
	}, max-min)
}

// createFloatSlider maps slider positions 0..sliderSteps onto r.
func (p *Panel) createFloatSlider(label string, r terrain.Range, get func() float64, set func(float64), format func(float64) string) *widget.Container {
	return p.createSlider(label, &binding{
		pos:    func() int { return r.Pos(get(), sliderSteps) },
		format: func(pos int) string { return format(r.Value(pos, sliderSteps)) },
		post:   func(pos int) { set(r.Value(pos, sliderSteps)) },
	}, sliderSteps)
}

func (p *Panel) createSlider(label string, b *binding, steps int) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	labelWidget := widget.NewText(
		widget.TextOpts.Text(label, p.fontFace, color.RGBA{200, 200, 200, 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(100, 0),
		),
	)
	container.AddChild(labelWidget)

	b.label = widget.NewText(
		widget.TextOpts.Text(b.format(b.pos()), p.fontFace, color.RGBA{255, 255, 255, 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(70, 0),
		),
	)

	b.slider = widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(0, steps),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 24),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.SliderOpts.Images(p.createSliderImages(), p.createSliderHandleImages()),
		widget.SliderOpts.PageSizeFunc(func() int {
			return 1
		}),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			b.label.Label = b.format(args.Current)
			// Echo of Sync or of the value already in effect
			if args.Current == b.pos() {
				return
			}
			b.post(args.Current)
		}),
	)
	b.slider.Current = b.pos()
	p.bindings = append(p.bindings, b)

	container.AddChild(b.slider)
	container.AddChild(b.label)

	return container
}

func (p *Panel) createSliderImages() *widget.SliderTrackImage {
	idle := ebiten.NewImage(32, 8)
	idle.Fill(color.RGBA{80, 80, 100, 255})

	hover := ebiten.NewImage(32, 8)
	hover.Fill(color.RGBA{100, 100, 120, 255})

	return &widget.SliderTrackImage{
		Idle:  uiimage.NewNineSliceSimple(idle, 4, 4),
		Hover: uiimage.NewNineSliceSimple(hover, 4, 4),
	}
}

func (p *Panel) createSliderHandleImages() *widget.ButtonImage {
	idle := ebiten.NewImage(20, 20)
	idle.Fill(color.RGBA{150, 150, 180, 255})

	hover := ebiten.NewImage(20, 20)
	hover.Fill(color.RGBA{180, 180, 220, 255})

	pressed := ebiten.NewImage(20, 20)
	pressed.Fill(color.RGBA{200, 200, 255, 255})

	return &widget.ButtonImage{
		Idle:    uiimage.NewNineSliceSimple(idle, 4, 4),
		Hover:   uiimage.NewNineSliceSimple(hover, 4, 4),
		Pressed: uiimage.NewNineSliceSimple(pressed, 4, 4),
	}
}

func (p *Panel) Toggle() {
	p.visible = !p.visible
}

// Contains reports whether a screen point is over the visible panel.
func (p *Panel) Contains(x, y int) bool {
	if !p.visible {
		return false
	}
	return image.Pt(x, y).In(p.panel.GetWidget().Rect)
}

func (p *Panel) Update() {
	if p.visible {
		p.ui.Update()
	}
}

// Sync moves sliders to the engine's current values after keyboard edits,
// clamping and zoom animation.
func (p *Panel) Sync() {
	for _, b := range p.bindings {
		pos := b.pos()
		if b.slider.Current != pos {
			b.slider.Current = pos
			b.label.Label = b.format(pos)
		}
	}
}

func (p *Panel) Draw(screen *ebiten.Image) {
	if p.visible {
		p.ui.Draw(screen)
	}
}
