package core

import "math"

// Color represents an RGB color with float components in [0, ∞).
// Values are only clamped to [0,1] when a color becomes a final pixel
// value or is returned from the tracer.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mul returns the component-wise product of two colors
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns the color with each channel clamped to [0,1]
func (c Color) Clamp() Color {
	return Color{
		R: math.Max(0, math.Min(1, c.R)),
		G: math.Max(0, math.Min(1, c.G)),
		B: math.Max(0, math.Min(1, c.B)),
	}
}

// Lerp linearly interpolates between c and other: c*(1-t) + other*t
func (c Color) Lerp(other Color, t float64) Color {
	return c.Scale(1 - t).Add(other.Scale(t))
}

// RGB8 quantizes the color to 8-bit channels, clamping first
func (c Color) RGB8() (uint8, uint8, uint8) {
	clamped := c.Clamp()
	return uint8(math.Round(clamped.R * 255)),
		uint8(math.Round(clamped.G * 255)),
		uint8(math.Round(clamped.B * 255))
}
