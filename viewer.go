package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/renderer"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/scene"
)

// Viewer is the interactive presentation layer: it gathers input into a
// FrameInput each tick and blits the rendered frame. All rendering state
// lives in the raytracer; the viewer only produces inputs and consumes
// pixel buffers.
type Viewer struct {
	rt      *renderer.Raytracer
	width   int
	height  int
	workers int

	angleX   float64
	angleY   float64
	distance float64
	samples  int

	start      time.Time
	lastMouseX int
	lastMouseY int

	rgba []byte
}

// NewViewer creates a windowed viewer at the given render resolution
func NewViewer(width, height, samples, workers int) *Viewer {
	rt := renderer.NewRaytracer(scene.NewDefaultScene(), renderer.DefaultConfig())

	return &Viewer{
		rt:       rt,
		width:    width,
		height:   height,
		workers:  workers,
		distance: 5,
		samples:  samples,
		start:    time.Now(),
		rgba:     make([]byte, width*height*4),
	}
}

// Update gathers camera and sampling input for the next frame
func (v *Viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	mouseX, mouseY := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		v.angleX += float64(mouseX-v.lastMouseX) * 0.01
		v.angleY += float64(mouseY-v.lastMouseY) * 0.01
	}
	v.lastMouseX = mouseX
	v.lastMouseY = mouseY

	if ebiten.IsKeyPressed(ebiten.KeyA) {
		v.angleX -= 0.02
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		v.angleX += 0.02
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		v.angleY += 0.02
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		v.angleY -= 0.02
	}

	_, wheelY := ebiten.Wheel()
	v.distance -= wheelY * 0.5

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		v.samples++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		v.samples--
	}

	return nil
}

// Draw renders the current frame and writes it to the screen
func (v *Viewer) Draw(screen *ebiten.Image) {
	camera, spp := v.rt.Update(renderer.FrameInput{
		AngleX:          v.angleX,
		AngleY:          v.angleY,
		Distance:        v.distance,
		Elapsed:         time.Since(v.start).Seconds(),
		Width:           v.width,
		Height:          v.height,
		SamplesPerPixel: v.samples,
	})
	v.samples = spp
	v.distance = v.rt.Config().ClampDistance(v.distance)

	buffer, err := v.rt.RenderFrameParallel(camera, spp, v.workers, time.Now().UnixNano())
	if err != nil {
		// Fall back to the sequential path rather than dropping the frame
		buffer = v.rt.RenderFrame(camera, spp, rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	for i := 0; i < v.width*v.height; i++ {
		v.rgba[i*4] = buffer[i*3]
		v.rgba[i*4+1] = buffer[i*3+1]
		v.rgba[i*4+2] = buffer[i*3+2]
		v.rgba[i*4+3] = 255
	}
	screen.WritePixels(v.rgba)
}

// Layout reports the render resolution; ebiten scales it to the window
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}
