// raytrace renders a demo scene with the CPU ray tracer core and writes it
// to a PNG file, optionally showing a live half-block preview in the
// terminal while it renders.
//
// Usage: raytrace [options] output.png
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/richard-dennehy/raytracer-go/internal/imageio"
	"github.com/richard-dennehy/raytracer-go/pkg/camera"
	"github.com/richard-dennehy/raytracer-go/pkg/canvas"
	"github.com/richard-dennehy/raytracer-go/pkg/light"
	"github.com/richard-dennehy/raytracer-go/pkg/material"
	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
	"github.com/richard-dennehy/raytracer-go/pkg/pattern"
	"github.com/richard-dennehy/raytracer-go/pkg/render"
	"github.com/richard-dennehy/raytracer-go/pkg/scene"
	"github.com/richard-dennehy/raytracer-go/pkg/shape"
)

var (
	width    = flag.Int("width", 400, "Output image width in pixels")
	height   = flag.Int("height", 300, "Output image height in pixels")
	samples  = flag.Int("samples", 4, "Per-pixel sample budget; must be a perfect square")
	maxDepth = flag.Int("max-depth", 5, "Maximum reflection/refraction recursion depth")
	seed     = flag.Uint64("seed", 0, "Base RNG seed for area-light sampling and AA jitter (0 picks a random seed)")
	preview  = flag.Bool("preview", false, "Show a live terminal preview while rendering")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "raytrace - CPU ray tracer demo renderer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: raytrace [options] output.png\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	outputPath := flag.Arg(0)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(logger, outputPath); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, outputPath string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("interrupt received, canceling render")
		cancel()
	}()

	world := demoWorld()
	cam, err := demoCamera(*width, *height)
	if err != nil {
		return fmt.Errorf("build camera: %w", err)
	}

	cv := canvas.New(*width, *height)
	renderSeed := *seed
	if renderSeed == 0 {
		renderSeed = rand.Uint64()
		logger.Info("no seed given, picked one", "seed", renderSeed)
	}
	opts := render.Options{Samples: *samples, MaxDepth: *maxDepth, Seed: renderSeed}

	logger.Info("rendering", "width", *width, "height", *height, "samples", *samples, "max_depth", *maxDepth)

	var stats render.Stats
	if *preview {
		stats, err = renderWithPreview(ctx, world, cam, cv, opts)
	} else {
		stats, err = render.Render(ctx, world, cam, cv, opts)
	}
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	logger.Info("render complete", "pixels", stats.Pixels, "rays", stats.Rays, "duration", stats.Duration)

	if err := imageio.SavePNG(cv, outputPath); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	logger.Info("wrote image", "path", outputPath)
	return nil
}

// renderWithPreview drives the render in a goroutine while redrawing the
// terminal from the in-progress canvas every tick, following the teacher's
// alt-screen lifecycle (enter, hide cursor, draw loop, restore on exit).
func renderWithPreview(ctx context.Context, world scene.World, cam *camera.Camera, cv *canvas.Canvas, opts render.Options) (render.Stats, error) {
	term := uv.DefaultTerminal()
	if err := term.Start(); err != nil {
		return render.Stats{}, fmt.Errorf("start terminal: %w", err)
	}
	defer term.Shutdown(ctx)

	if err := term.EnterAltScreen(); err != nil {
		return render.Stats{}, fmt.Errorf("enter alt screen: %w", err)
	}
	defer term.ExitAltScreen()
	term.HideCursor()
	defer term.ShowCursor()

	w, h, err := term.GetSize()
	if err != nil {
		return render.Stats{}, fmt.Errorf("get terminal size: %w", err)
	}
	term.Resize(w, h)
	area := uv.Rect(0, 0, w, h)

	prev := render.NewPreview(cv)
	redraw := func() {
		prev.Draw(term, area)
		term.Display()
	}

	type result struct {
		stats render.Stats
		err   error
	}
	done := make(chan result, 1)
	go func() {
		stats, err := render.Render(ctx, world, cam, cv, opts)
		done <- result{stats, err}
	}()

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case r := <-done:
			redraw()
			return r.stats, r.err
		case <-ticker.C:
			redraw()
		case ev := <-term.Events():
			if _, ok := ev.(uv.KeyPressEvent); ok {
				return render.Stats{}, fmt.Errorf("render canceled by user")
			}
		}
	}
}

// demoWorld builds the scene used by every invocation: a checkered floor,
// three spheres (two diffuse, one reflective glass), and a single area
// light, following the classic
// default-world layout from spec.md §8 scenario 2 extended with patterns,
// reflection and refraction.
func demoWorld() scene.World {
	floorMaterial := material.Default()
	checkers := pattern.NewCheckers3D(math3d.NewColor(0.9, 0.9, 0.9), math3d.NewColor(0.1, 0.1, 0.1))
	floorMaterial.Pattern = checkers
	floorMaterial.Specular = 0
	floorMaterial.Reflective = 0.1

	floor := shape.NewPlane()
	floor.SetMaterial(floorMaterial)

	middle := shape.NewSphere()
	_ = middle.SetTransform(math3d.Translate(-0.5, 1, 0.5))
	middleMaterial := material.Default()
	middleMaterial.Color = math3d.NewColor(0.1, 1, 0.5)
	middleMaterial.Diffuse = 0.7
	middleMaterial.Specular = 0.3
	middle.SetMaterial(middleMaterial)

	right := shape.NewSphere()
	_ = right.SetTransform(math3d.Translate(1.5, 0.5, -0.5), math3d.ScaleUniform(0.5))
	rightMaterial := material.Default()
	rightMaterial.Color = math3d.NewColor(0.2, 0.2, 0.9)
	rightMaterial.Reflective = 0.9
	rightMaterial.Transparency = 0.9
	rightMaterial.RefractiveIndex = 1.52
	right.SetMaterial(rightMaterial)

	left := shape.NewSphere()
	_ = left.SetTransform(math3d.Translate(-1.5, 0.33, -0.75), math3d.ScaleUniform(0.33))
	leftMaterial := material.Default()
	leftMaterial.Color = math3d.NewColor(1, 0.8, 0.1)
	leftMaterial.Diffuse = 0.7
	leftMaterial.Specular = 0.3
	left.SetMaterial(leftMaterial)

	root := shape.NewGroup(floor, middle, right, left)

	areaLight, err := light.NewAreaLight(
		math3d.Point(-5, 5, -5),
		math3d.Vector(2, 0, 0),
		math3d.Vector(0, 2, 0),
		4, 4,
		math3d.NewColor(1.5, 1.5, 1.5),
		1,
	)
	if err != nil {
		// 4x4 is always valid; this is unreachable.
		areaLight = light.NewPointLight(math3d.Point(-5, 5, -5), math3d.NewColor(1.5, 1.5, 1.5))
	}

	return scene.New(root, areaLight)
}

func demoCamera(w, h int) (*camera.Camera, error) {
	from := math3d.Point(0, 1.5, -5)
	to := math3d.Point(0, 1, 0)
	up := math3d.Vector(0, 1, 0)
	return camera.New(w, h, math.Pi/3, viewTransform(from, to, up))
}

// viewTransform builds the world-to-camera transform for a camera at from,
// looking toward to, with the given up direction (spec.md §4.H).
func viewTransform(from, to, up math3d.Tuple) math3d.Mat4 {
	forward := to.Sub(from).Normalize()
	upn := up.Normalize()
	left := forward.Cross(upn)
	trueUp := left.Cross(forward)

	orientation := math3d.Identity()
	orientation.Set(0, 0, left.X)
	orientation.Set(0, 1, left.Y)
	orientation.Set(0, 2, left.Z)
	orientation.Set(1, 0, trueUp.X)
	orientation.Set(1, 1, trueUp.Y)
	orientation.Set(1, 2, trueUp.Z)
	orientation.Set(2, 0, -forward.X)
	orientation.Set(2, 1, -forward.Y)
	orientation.Set(2, 2, -forward.Z)

	return orientation.Mul(math3d.Translate(-from.X, -from.Y, -from.Z))
}
