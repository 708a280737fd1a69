package renderer

import "github.com/Mnajm6201/RealTimeRayTracer/pkg/core"

// Config contains rendering configuration. Out-of-range inputs are
// clamped, never rejected: the tracer is a deterministic numeric function
// with no recoverable-error taxonomy.
type Config struct {
	MaxDepth        int        // Hard recursion cap for any ray
	GIDepth         int        // Tighter cap below which indirect bounces are traced
	GIStrength      float64    // Weight of the single indirect-light bounce
	AmbientFloor    float64    // Minimum light intensity, also the shadow intensity
	Epsilon         float64    // Self-intersection threshold and offset distance
	SkyColor        core.Color // Returned on miss or recursion cap
	SamplesPerPixel int        // Jittered rays per pixel, clamped to [MinSamples, MaxSamples]
	MinSamples      int
	MaxSamples      int
	MinDistance     float64 // Camera distance clamp range
	MaxDistance     float64
}

// DefaultConfig returns the reference configuration
func DefaultConfig() Config {
	return Config{
		MaxDepth:        8,
		GIDepth:         3,
		GIStrength:      0.1,
		AmbientFloor:    0.1,
		Epsilon:         0.001,
		SkyColor:        core.NewColor(0.1, 0.1, 0.2),
		SamplesPerPixel: 2,
		MinSamples:      1,
		MaxSamples:      8,
		MinDistance:     1,
		MaxDistance:     20,
	}
}

// ClampSamples bounds a requested per-pixel sample count
func (c Config) ClampSamples(samples int) int {
	if samples < c.MinSamples {
		return c.MinSamples
	}
	if samples > c.MaxSamples {
		return c.MaxSamples
	}
	return samples
}

// ClampDistance bounds a requested camera orbit distance
func (c Config) ClampDistance(distance float64) float64 {
	if distance < c.MinDistance {
		return c.MinDistance
	}
	if distance > c.MaxDistance {
		return c.MaxDistance
	}
	return distance
}
