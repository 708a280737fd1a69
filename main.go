package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/renderer"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/scene"
)

func main() {
	width := flag.Int("width", 320, "Render width in pixels")
	height := flag.Int("height", 240, "Render height in pixels")
	samples := flag.Int("samples", 2, "Anti-aliasing samples per pixel (clamped to 1-8)")
	workers := flag.Int("workers", 0, "Render workers (0 = one per CPU)")
	pngMode := flag.Bool("png", false, "Render an animation sequence to PNG files instead of opening a window")
	frames := flag.Int("frames", 1, "Number of frames to render in -png mode")
	fps := flag.Float64("fps", 30, "Animation rate for -png mode frame timestamps")
	outputDir := flag.String("output", "output", "Output directory for -png mode")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Real-Time Ray Tracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Window controls:")
		fmt.Println("- Left mouse drag: rotate camera")
		fmt.Println("- Scroll: zoom in/out")
		fmt.Println("- W/A/S/D: rotate camera")
		fmt.Println("- Up/Down arrows: adjust samples per pixel")
		fmt.Println("- Escape: exit")
		return
	}

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	if *pngMode {
		if err := renderSequence(*width, *height, *samples, *workers, *frames, *fps, *outputDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	viewer := NewViewer(*width, *height, *samples, *workers)
	ebiten.SetWindowSize(*width*2, *height*2)
	ebiten.SetWindowTitle("Real-Time Ray Tracer")
	if err := ebiten.RunGame(viewer); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// renderSequence renders an animation sequence offline, one PNG per frame
func renderSequence(width, height, samples, workers, frames int, fps float64, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	rt := renderer.NewRaytracer(scene.NewDefaultScene(), renderer.DefaultConfig())

	for frame := 0; frame < frames; frame++ {
		elapsed := float64(frame) / fps

		camera, spp := rt.Update(renderer.FrameInput{
			Distance:        5,
			Elapsed:         elapsed,
			Width:           width,
			Height:          height,
			SamplesPerPixel: samples,
		})

		buffer, err := rt.RenderFrameParallel(camera, spp, workers, int64(frame))
		if err != nil {
			return fmt.Errorf("rendering frame %d: %w", frame, err)
		}

		filename := filepath.Join(outputDir, fmt.Sprintf("frame_%04d.png", frame))
		if err := writePNG(filename, buffer, width, height); err != nil {
			return fmt.Errorf("writing frame %d: %w", frame, err)
		}

		fmt.Printf("Rendered %s (t=%.2fs)\n", filename, elapsed)
	}

	return nil
}

// writePNG saves a row-major RGB buffer as a PNG file
func writePNG(filename string, buffer []byte, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[i*4] = buffer[i*3]
		img.Pix[i*4+1] = buffer[i*3+1]
		img.Pix[i*4+2] = buffer[i*3+2]
		img.Pix[i*4+3] = 255
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
