// Package canvas implements the rendered pixel buffer and its parallel
// per-row write interface (spec.md §4.J).
package canvas

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
)

// Canvas is a fixed-size row-major grid of colors.
type Canvas struct {
	width, height int
	pixels        []math3d.Color
}

// New allocates an empty (black) canvas.
func New(width, height int) *Canvas {
	return &Canvas{width: width, height: height, pixels: make([]math3d.Color, width*height)}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Set writes the color at (x, y).
func (c *Canvas) Set(x, y int, col math3d.Color) {
	c.pixels[y*c.width+x] = col
}

// Get reads the color at (x, y).
func (c *Canvas) Get(x, y int) math3d.Color {
	return c.pixels[y*c.width+x]
}

// ParForEach dispatches one task per row to a worker pool sized to
// GOMAXPROCS; rowFn is responsible for writing every pixel of its row
// (typically via Set), and distinct rows never alias so no synchronization
// is needed between tasks (spec.md §5 "Shared resources"). Task order does
// not affect output. Returns the first error encountered, if any, and stops
// dispatching further rows once ctx is canceled.
func (c *Canvas) ParForEach(ctx context.Context, rowFn func(y int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	rows := make(chan int)

	workers := runtime.GOMAXPROCS(0)
	if workers > c.height {
		workers = c.height
	}
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for y := range rows {
				if err := rowFn(y); err != nil {
					return err
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(rows)
		for y := 0; y < c.height; y++ {
			select {
			case rows <- y:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	return g.Wait()
}
