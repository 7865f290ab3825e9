package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type ViewMode int

const (
	ModeExplore ViewMode = iota
	ModeHelp
)

var helpLines = [...]string{
	"Mouse wheel   zoom toward cursor",
	"Left drag     pan",
	"P             toggle parameter panel",
	"B             next biome",
	"R             new seed",
	"Z             reset zoom",
	"S             save PNG snapshot",
	"F1            debug overlay",
	"H / Esc       close help",
	"Esc           quit",
}

// HelpScreen lists the controls over the dimmed terrain.
type HelpScreen struct {
	fadeIn float64
	done   bool
}

func NewHelpScreen() *HelpScreen {
	return &HelpScreen{}
}

func (hs *HelpScreen) Reset() {
	hs.fadeIn = 0
	hs.done = false
}

func (hs *HelpScreen) Update() {
	if hs.fadeIn < 1 {
		hs.fadeIn = min(hs.fadeIn+0.08, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		hs.done = true
	}
}

func (hs *HelpScreen) Done() bool {
	return hs.done
}

func (hs *HelpScreen) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	alpha := uint8(170 * hs.fadeIn)
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{0, 0, 0, alpha}, false)

	face := basicfont.Face7x13
	cx := b.Dx() / 2
	y := b.Dy()/2 - len(helpLines)*22/2 - 40

	drawScaledText(screen, "CONTROLS", cx, y, 2, face, color.RGBA{255, 220, 100, uint8(255 * hs.fadeIn)})

	x := cx - len(helpLines[0])*glyphW/2
	for i, line := range helpLines {
		text.Draw(screen, line, face, x, y+50+i*22, color.RGBA{230, 230, 230, uint8(255 * hs.fadeIn)})
	}
}

// Centered text scaled up through an offscreen image
func drawScaledText(screen *ebiten.Image, s string, cx, y int, scale float64, face font.Face, clr color.Color) {
	w := len(s) * glyphW
	img := ebiten.NewImage(w, glyphH+4)
	defer img.Deallocate()
	text.Draw(img, s, face, 0, glyphH, clr)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(cx)-float64(w)*scale/2, float64(y)-float64(glyphH)*scale)
	screen.DrawImage(img, op)
}
