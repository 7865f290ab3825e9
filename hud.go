package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/resonantdoghouse/p5-perlin-terrain/internal/biome"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/engine"
)

// Pool size
const MaxNotifications = 8

// Timers in ticks
const (
	notificationTicks = 180
	biomeBannerTicks  = 120
	fadeTicks         = 30
)

// Glyph size of basicfont.Face7x13
const (
	glyphW = 7
	glyphH = 13
)

// HUD draws the status line, palette legend, biome banner and notifications
// over the terrain.
type HUD struct {
	// Biome banner
	currentBiome     string
	biomeChangeTimer int

	// Notifications
	notifications     [MaxNotifications]Notification
	activeNotifyCount int
}

type Notification struct {
	Text  string
	Timer int
}

func NewHUD() *HUD {
	return &HUD{}
}

func (h *HUD) Update(biomeName string) {
	// Banner on palette change, not at start
	if biomeName != h.currentBiome {
		if h.currentBiome != "" {
			h.biomeChangeTimer = biomeBannerTicks
		}
		h.currentBiome = biomeName
	}
	if h.biomeChangeTimer > 0 {
		h.biomeChangeTimer--
	}

	// Expire notifications in place
	writeIdx := 0
	for i := 0; i < h.activeNotifyCount; i++ {
		n := h.notifications[i]
		n.Timer--
		if n.Timer <= 0 {
			continue
		}
		h.notifications[writeIdx] = n
		writeIdx++
	}
	for i := writeIdx; i < h.activeNotifyCount; i++ {
		h.notifications[i] = Notification{}
	}
	h.activeNotifyCount = writeIdx
}

func (h *HUD) AddNotification(msg string) {
	if h.activeNotifyCount == MaxNotifications {
		// Drop oldest
		copy(h.notifications[:], h.notifications[1:])
		h.activeNotifyCount--
	}
	h.notifications[h.activeNotifyCount] = Notification{
		Text:  msg,
		Timer: notificationTicks,
	}
	h.activeNotifyCount++
}

func (h *HUD) Draw(screen *ebiten.Image, e *engine.Engine) {
	face := basicfont.Face7x13
	w, hgt := e.Size()

	h.drawStatus(screen, e, face, hgt)
	h.drawLegend(screen, e, face, w)
	if h.biomeChangeTimer > 0 {
		h.drawBiomeBanner(screen, face, w)
	}
	h.drawNotifications(screen, face, w, hgt)
}

func (h *HUD) drawStatus(screen *ebiten.Image, e *engine.Engine, face font.Face, screenH int) {
	cam := e.Camera()
	s := e.Settings()
	status := fmt.Sprintf("%s  |  seed %d  |  zoom x%.2f  |  octaves %d  |  %s",
		s.Biome, e.Seed(), cam.Zoom, s.Octaves, e.State())

	y := screenH - 12
	vector.DrawFilledRect(screen, 0, float32(y-glyphH-4), float32(len(status)*glyphW+20), float32(glyphH+10), color.RGBA{0, 0, 0, 160}, false)
	text.Draw(screen, status, face, 10, y, color.RGBA{230, 230, 230, 255})
}

// Palette swatches, one per band
func (h *HUD) drawLegend(screen *ebiten.Image, e *engine.Engine, face font.Face, screenW int) {
	colors := e.Settings().Palette().Colors()

	const swatch = 12
	x := screenW - 110
	y := 12
	vector.DrawFilledRect(screen, float32(x-8), float32(y-6), 104, float32(len(colors)*(swatch+6)+8), color.RGBA{0, 0, 0, 160}, false)

	for i, c := range colors {
		row := y + i*(swatch+6)
		vector.DrawFilledRect(screen, float32(x), float32(row), swatch, swatch, c.RGBA(), false)
		vector.StrokeRect(screen, float32(x), float32(row), swatch, swatch, 1, color.RGBA{255, 255, 255, 120}, false)
		text.Draw(screen, biome.Band(i).String(), face, x+swatch+8, row+swatch-1, color.RGBA{220, 220, 220, 255})
	}
}

func (h *HUD) drawBiomeBanner(screen *ebiten.Image, face font.Face, screenW int) {
	alpha := fadeAlpha(h.biomeChangeTimer, biomeBannerTicks)

	banner := "~ " + h.currentBiome + " ~"
	textWidth := len(banner) * glyphW
	x := screenW/2 - textWidth/2
	y := 60

	vector.DrawFilledRect(screen, float32(x-20), float32(y-15), float32(textWidth+40), 25, color.RGBA{0, 0, 0, uint8(alpha / 2)}, false)
	text.Draw(screen, banner, face, x, y, color.RGBA{255, 230, 160, uint8(alpha)})
}

func (h *HUD) drawNotifications(screen *ebiten.Image, face font.Face, screenW, screenH int) {
	startY := screenH - 50
	for i := h.activeNotifyCount - 1; i >= 0; i-- {
		n := &h.notifications[i]
		y := startY - (h.activeNotifyCount-1-i)*20

		alpha := 255
		if n.Timer < fadeTicks {
			alpha = n.Timer * 255 / fadeTicks
		}

		textWidth := len(n.Text) * glyphW
		x := screenW/2 - textWidth/2
		text.Draw(screen, n.Text, face, x, y, color.RGBA{255, 255, 200, uint8(alpha)})
	}
}

// Fade in over the first ticks, out over the last
func fadeAlpha(timer, total int) int {
	alpha := 255
	if timer > total-fadeTicks {
		alpha = (total - timer) * 255 / fadeTicks
	} else if timer < fadeTicks {
		alpha = timer * 255 / fadeTicks
	}
	return max(0, min(alpha, 255))
}
