package material

import (
	"testing"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/core"
)

func TestCheckerTexture_Alternation(t *testing.T) {
	white := core.NewColor(1, 1, 1)
	black := core.NewColor(0, 0, 0)

	// 8x8 texture with 2-texel cells: cells alternate every 0.25 in UV space
	tex := NewCheckerTexture(8, 8, 2, white, black)

	tests := []struct {
		name     string
		u, v     float64
		expected core.Color
	}{
		{"origin cell", 0.0, 0.0, white},
		{"next cell over", 0.25, 0.0, black},
		{"two cells over", 0.5, 0.0, white},
		{"next cell down", 0.0, 0.25, black},
		{"diagonal cell", 0.25, 0.25, white},
		{"interior of first cell", 0.1, 0.1, white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tex.Sample(tt.u, tt.v); result != tt.expected {
				t.Errorf("Sample(%v, %v): expected %v, got %v", tt.u, tt.v, tt.expected, result)
			}
		})
	}
}

func TestCheckerTexture_WrapAround(t *testing.T) {
	white := core.NewColor(1, 1, 1)
	black := core.NewColor(0, 0, 0)
	tex := NewCheckerTexture(8, 8, 2, white, black)

	tests := []struct {
		name               string
		u, v               float64
		wrappedU, wrappedV float64
	}{
		{"u above one", 1.25, 0.0, 0.25, 0.0},
		{"v above one", 0.0, 2.5, 0.0, 0.5},
		{"negative u", -0.75, 0.0, 0.25, 0.0},
		{"both out of range", 3.1, -1.9, 0.1, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tex.Sample(tt.u, tt.v)
			want := tex.Sample(tt.wrappedU, tt.wrappedV)
			if got != want {
				t.Errorf("Sample(%v, %v)=%v, expected same as Sample(%v, %v)=%v",
					tt.u, tt.v, got, tt.wrappedU, tt.wrappedV, want)
			}
		})
	}
}

func TestNewMaterial_ClampsParameters(t *testing.T) {
	m := NewMaterial(core.NewColor(1, 0, 0), 1.5, -0.2, 0.5)

	if m.Metallic != 1.0 {
		t.Errorf("Expected metallic clamped to 1.0, got %v", m.Metallic)
	}
	if m.Transparency != 0.0 {
		t.Errorf("Expected transparency clamped to 0.0, got %v", m.Transparency)
	}
	if m.RefractiveIndex != 1.0 {
		t.Errorf("Expected refractive index clamped to 1.0, got %v", m.RefractiveIndex)
	}
}
