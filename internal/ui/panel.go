// internal/ui/panel.go
package ui

import (
	"image/color"

	"go-bean-farm/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 16

// DefaultFace is the bitmap font every overlay uses unless told otherwise.
var DefaultFace font.Face = basicfont.Face7x13

// drawPanel fills a translucent box and writes lines into it, one per row.
func drawPanel(screen *ebiten.Image, face font.Face, x, y float32, lines []string) {
	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}
	pad := float32(config.OverlayPadding)
	h := float32(len(lines)*lineHeight) + pad*2
	vector.DrawFilledRect(screen, x, y, float32(width)+pad*2, h, config.PanelColor, false)
	for i, l := range lines {
		drawOutlined(screen, face, l, int(x+pad), int(y+pad)+lineHeight*(i+1)-3, config.TextLightColor)
	}
}

// drawOutlined рисует текст с тёмной обводкой в 1 пиксель
func drawOutlined(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, face, x+dx, y+dy, color.Black)
		}
	}
	text.Draw(screen, s, face, x, y, clr)
}
