package material

import (
	"math"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/core"
)

// Texture is a width×height grid of colors sampled by (u,v) coordinates
// with wrap-around indexing. Textures are owned by the scene; spheres hold
// non-owning references.
type Texture struct {
	width  int
	height int
	pixels []core.Color
}

// NewCheckerTexture creates a texture filled with a checkerboard pattern of
// two colors, with square cells of cellSize texels.
func NewCheckerTexture(width, height, cellSize int, a, b core.Color) *Texture {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	if cellSize <= 0 {
		cellSize = 1
	}

	tex := &Texture{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/cellSize+y/cellSize)%2 == 0 {
				tex.pixels[y*width+x] = a
			} else {
				tex.pixels[y*width+x] = b
			}
		}
	}

	return tex
}

// Sample returns the texel at (u,v). Coordinates outside [0,1) wrap around.
func (t *Texture) Sample(u, v float64) core.Color {
	u -= math.Floor(u)
	v -= math.Floor(v)

	x := int(u * float64(t.width))
	y := int(v * float64(t.height))
	if x >= t.width {
		x = t.width - 1
	}
	if y >= t.height {
		y = t.height - 1
	}

	return t.pixels[y*t.width+x]
}

// Size returns the texture dimensions in texels
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}
