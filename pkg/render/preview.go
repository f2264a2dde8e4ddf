package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/richard-dennehy/raytracer-go/pkg/canvas"
)

// Preview adapts an in-progress canvas to ultraviolet's Screen drawing
// interface, for a live terminal view of a render as it fills in. Each
// terminal row packs two canvas rows via the ▀ half-block trick: foreground
// carries the top pixel, background the bottom.
type Preview struct {
	Canvas *canvas.Canvas
}

// NewPreview wraps cv for terminal display.
func NewPreview(cv *canvas.Canvas) Preview {
	return Preview{Canvas: cv}
}

// Draw implements ultraviolet's drawable surface.
func (p Preview) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1
		if topY >= p.Canvas.Height() {
			break
		}

		for col := area.Min.X; col < area.Max.X && col < p.Canvas.Width(); col++ {
			top := pixelColor(p.Canvas, col, topY)
			bot := pixelColor(p.Canvas, col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: top,
					Bg: bot,
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

func pixelColor(cv *canvas.Canvas, x, y int) color.Color {
	if y >= cv.Height() {
		return nil
	}
	r, g, b := cv.Get(x, y).RGBA8()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
