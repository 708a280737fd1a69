package renderer

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/core"
)

// FrameInput carries the per-frame state supplied by the input-handling
// collaborator: camera orbit, elapsed simulation time, viewport size, and
// the requested sample count. It is passed by value into Update each
// frame; the core never reaches back into the windowing layer.
type FrameInput struct {
	AngleX          float64 // Camera orbit angle around the vertical axis (radians)
	AngleY          float64 // Camera elevation angle (radians)
	Distance        float64 // Camera orbit distance, clamped to the configured range
	Elapsed         float64 // Monotonically increasing simulation time (seconds)
	Width           int     // Viewport width in pixels
	Height          int     // Viewport height in pixels
	SamplesPerPixel int     // Requested rays per pixel, clamped not rejected
}

// Update applies per-frame input: it animates the scene and light for the
// elapsed time and rebuilds the orbit camera. This is the single scene
// mutation for the frame; no mutation happens while sampling is in
// progress. Returns the camera and the effective (clamped) sample count.
func (rt *Raytracer) Update(input FrameInput) (*Camera, int) {
	rt.scene.Animate(input.Elapsed)

	distance := rt.config.ClampDistance(input.Distance)
	camera := NewOrbitCamera(input.AngleX, input.AngleY, distance, input.Width, input.Height)

	return camera, rt.config.ClampSamples(input.SamplesPerPixel)
}

// RenderFrame renders the scene snapshot into a row-major RGB byte buffer
// of size width*height*3. Each pixel accumulates samplesPerPixel jittered
// rays and averages them; a single-sample render shoots the exact pixel
// center, so its output equals a direct Shade evaluation of that ray.
func (rt *Raytracer) RenderFrame(camera *Camera, samplesPerPixel int, random *rand.Rand) []byte {
	width, height := camera.Size()
	buffer := make([]byte, width*height*3)
	samplesPerPixel = rt.config.ClampSamples(samplesPerPixel)

	rt.renderRows(camera, 0, height, samplesPerPixel, random, buffer)
	return buffer
}

// RenderFrameParallel renders the frame with row bands distributed across
// workers. Every pixel is independent given the frame's scene snapshot, so
// the only cross-worker difference from RenderFrame is RNG draw ordering:
// each band gets its own generator seeded deterministically from seed.
func (rt *Raytracer) RenderFrameParallel(camera *Camera, samplesPerPixel, workers int, seed int64) ([]byte, error) {
	width, height := camera.Size()
	buffer := make([]byte, width*height*3)
	samplesPerPixel = rt.config.ClampSamples(samplesPerPixel)

	if workers <= 0 {
		return nil, fmt.Errorf("renderer: worker count must be positive, got %d", workers)
	}

	bandHeight := (height + workers - 1) / workers

	var g errgroup.Group
	for band := 0; band < workers; band++ {
		yStart := band * bandHeight
		yEnd := min(yStart+bandHeight, height)
		if yStart >= yEnd {
			break
		}

		random := rand.New(rand.NewSource(seed + int64(band)))
		g.Go(func() error {
			rt.renderRows(camera, yStart, yEnd, samplesPerPixel, random, buffer)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buffer, nil
}

// renderRows samples the pixel rows [yStart, yEnd) into the shared buffer.
// Bands are non-overlapping, so concurrent calls never write the same byte.
func (rt *Raytracer) renderRows(camera *Camera, yStart, yEnd, samplesPerPixel int, random *rand.Rand, buffer []byte) {
	width, _ := camera.Size()

	for y := yStart; y < yEnd; y++ {
		for x := 0; x < width; x++ {
			pixel := rt.samplePixel(camera, x, y, samplesPerPixel, random)

			r, g, b := pixel.RGB8()
			index := (y*width + x) * 3
			buffer[index] = r
			buffer[index+1] = g
			buffer[index+2] = b
		}
	}
}

// samplePixel averages the jittered sample colors for one pixel
func (rt *Raytracer) samplePixel(camera *Camera, x, y, samplesPerPixel int, random *rand.Rand) core.Color {
	if samplesPerPixel <= 1 {
		return rt.Shade(camera.GetRay(x, y, 0, 0), 0, random)
	}

	var accum core.Color
	for sample := 0; sample < samplesPerPixel; sample++ {
		jitterX := random.Float64() - 0.5
		jitterY := random.Float64() - 0.5
		ray := camera.GetRay(x, y, jitterX, jitterY)
		accum = accum.Add(rt.Shade(ray, 0, random))
	}

	return accum.Scale(1.0 / float64(samplesPerPixel))
}
