// Package render implements the parallel rendering loop: per-pixel adaptive
// anti-aliasing with a corner-perceptibility early exit, dispatched one task
// per canvas row (spec.md §4.I).
package render

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/richard-dennehy/raytracer-go/pkg/camera"
	"github.com/richard-dennehy/raytracer-go/pkg/canvas"
	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
	"github.com/richard-dennehy/raytracer-go/pkg/rng"
	"github.com/richard-dennehy/raytracer-go/pkg/scene"
	"github.com/richard-dennehy/raytracer-go/pkg/shading"
)

// perceptibilityTolerance is the per-channel absolute tolerance below which
// two sample colors are considered indistinguishable (spec.md §9 "Adaptive
// AA perceptibility").
const perceptibilityTolerance = 1.0 / 255.0

// Options configures a single render pass.
type Options struct {
	// Samples is the per-pixel sample budget; must be a perfect square
	// (1, 4, 16, 64, ...). Values <= 1 disable supersampling.
	Samples int
	// MaxDepth bounds reflection/refraction recursion. Zero selects
	// shading.DefaultDepth.
	MaxDepth int
	// Seed is the base RNG seed; per-row substreams are derived from it so
	// output is independent of scheduling (spec.md §4.K).
	Seed uint64
}

// Stats summarizes a completed render.
type Stats struct {
	Pixels   int
	Rays     int64
	Duration time.Duration
}

// Render fills cv with the rendered image of world as seen by cam. It
// returns early with the first error encountered (typically ctx
// cancellation) and partial Stats.
func Render(ctx context.Context, world scene.World, cam *camera.Camera, cv *canvas.Canvas, opts Options) (Stats, error) {
	if opts.Samples <= 0 {
		opts.Samples = 1
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = shading.DefaultDepth
	}

	start := time.Now()
	var rays int64

	err := cv.ParForEach(ctx, func(y int) error {
		source := rng.NewSubstream(opts.Seed, uint64(y))
		for x := 0; x < cv.Width(); x++ {
			col, n := samplePixel(world, cam, source, x, y, opts)
			atomic.AddInt64(&rays, int64(n))
			cv.Set(x, y, col)
		}
		return ctx.Err()
	})

	return Stats{Pixels: cv.Width() * cv.Height(), Rays: atomic.LoadInt64(&rays), Duration: time.Since(start)}, err
}

func samplePixel(world scene.World, cam *camera.Camera, source *rng.Source, x, y int, opts Options) (math3d.Color, int) {
	if opts.Samples <= 1 {
		return traceAt(world, cam, source, x, y, 0.5, 0.5, opts.MaxDepth), 1
	}

	corners := [4]math3d.Color{
		traceAt(world, cam, source, x, y, 0, 0, opts.MaxDepth),
		traceAt(world, cam, source, x, y, 1, 0, opts.MaxDepth),
		traceAt(world, cam, source, x, y, 0, 1, opts.MaxDepth),
		traceAt(world, cam, source, x, y, 1, 1, opts.MaxDepth),
	}
	if opts.Samples <= 4 || perceptiblyEqual(corners) {
		return averageColors(corners[:]), 4
	}

	n := int(math.Sqrt(float64(opts.Samples)))
	sum := math3d.Black
	rays := 4
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			subx := (float64(i) + source.Float64()) / float64(n)
			suby := (float64(j) + source.Float64()) / float64(n)
			sum = sum.Add(traceAt(world, cam, source, x, y, subx, suby, opts.MaxDepth))
			rays++
		}
	}
	return sum.Scale(1 / float64(n*n)), rays
}

func traceAt(world scene.World, cam *camera.Camera, source *rng.Source, x, y int, subx, suby float64, maxDepth int) math3d.Color {
	r := cam.RayForPixel(x, y, subx, suby)
	return shading.ColorAt(world, r, maxDepth, source)
}

func perceptiblyEqual(corners [4]math3d.Color) bool {
	for i := 1; i < 4; i++ {
		if math.Abs(corners[0].R-corners[i].R) >= perceptibilityTolerance ||
			math.Abs(corners[0].G-corners[i].G) >= perceptibilityTolerance ||
			math.Abs(corners[0].B-corners[i].B) >= perceptibilityTolerance {
			return false
		}
	}
	return true
}

func averageColors(colors []math3d.Color) math3d.Color {
	sum := math3d.Black
	for _, c := range colors {
		sum = sum.Add(c)
	}
	return sum.Scale(1 / float64(len(colors)))
}
