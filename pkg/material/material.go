package material

import (
	"math"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/core"
)

// Material describes how a surface responds to light. Metallic and
// Transparency are blend weights in [0,1]: metallic mixes in a recursively
// traced mirror reflection, transparency mixes in a Fresnel-weighted
// refraction/reflection pair. RefractiveIndex only matters when
// Transparency > 0.
type Material struct {
	BaseColor       core.Color
	Metallic        float64
	Transparency    float64
	RefractiveIndex float64
}

// NewMaterial creates a material, clamping the blend weights to [0,1]
// and the refractive index to at least 1.
func NewMaterial(baseColor core.Color, metallic, transparency, refractiveIndex float64) Material {
	return Material{
		BaseColor:       baseColor,
		Metallic:        math.Max(0, math.Min(1, metallic)),
		Transparency:    math.Max(0, math.Min(1, transparency)),
		RefractiveIndex: math.Max(1, refractiveIndex),
	}
}

// NewDiffuse creates a fully diffuse material with the given color
func NewDiffuse(baseColor core.Color) Material {
	return NewMaterial(baseColor, 0, 0, 1)
}

// NewMetallic creates a reflective material with the given mirror weight
func NewMetallic(baseColor core.Color, metallic float64) Material {
	return NewMaterial(baseColor, metallic, 0, 1)
}

// NewGlass creates a transparent material with the given transparency
// weight and refractive index
func NewGlass(baseColor core.Color, transparency, refractiveIndex float64) Material {
	return NewMaterial(baseColor, 0, transparency, refractiveIndex)
}
