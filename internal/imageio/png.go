// Package imageio writes a rendered canvas to disk. It is an external
// collaborator to the core (spec.md §6 "Image output"): the core only
// guarantees finite, non-negative pixel colors.
package imageio

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/richard-dennehy/raytracer-go/pkg/canvas"
)

// ToImage converts a rendered canvas to a standard Go image.RGBA, clamping
// each component to [0, 255] via Color.RGBA8.
func ToImage(cv *canvas.Canvas) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cv.Width(), cv.Height()))
	for y := 0; y < cv.Height(); y++ {
		for x := 0; x < cv.Width(); x++ {
			r, g, b := cv.Get(x, y).RGBA8()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// SavePNG renders cv and writes it as a PNG file at path.
func SavePNG(cv *canvas.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, ToImage(cv))
}
