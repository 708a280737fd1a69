package geometry

import (
	"math"
	"testing"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/core"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/material"
)

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, material.NewDiffuse(core.NewColor(1, 1, 1)))

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectedT float64
	}{
		{
			name:      "Direct hit from the front",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			expectHit: true,
			expectedT: 4.0,
		},
		{
			name:      "Miss to the side",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
			expectHit: false,
		},
		{
			name:      "Sphere behind the ray is rejected",
			ray:       core.NewRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, -1)),
			expectHit: false,
		},
		{
			name:      "Ray from inside uses the far surface",
			ray:       core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, -1)),
			expectHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Grazing tangent ray",
			ray:       core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 0, -1)),
			expectHit: true,
			expectedT: 5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hitT, ok := sphere.Hit(tt.ray, 0.001)

			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, ok)
			}
			if !ok {
				return
			}

			const tolerance = 1e-9
			if math.Abs(hitT-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%v, got %v", tt.expectedT, hitT)
			}
		})
	}
}

func TestSphere_HitPointOnSurface(t *testing.T) {
	center := core.NewVec3(1, 2, -7)
	sphere := NewSphere(center, 2.5, material.NewDiffuse(core.NewColor(1, 1, 1)))

	// Aim directly at the center from several positions outside the sphere
	origins := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(10, -3, 4),
		core.NewVec3(-5, 8, -7),
	}

	const tolerance = 1e-9
	for _, origin := range origins {
		ray := core.NewRay(origin, center.Subtract(origin))

		hitT, ok := sphere.Hit(ray, 0.001)
		if !ok {
			t.Fatalf("Ray from %v aimed at center should hit", origin)
		}

		point := ray.At(hitT)
		if math.Abs(point.Subtract(center).Length()-sphere.Radius) > tolerance {
			t.Errorf("Hit point %v is not on the sphere surface", point)
		}

		normal := sphere.Normal(point)
		expected := point.Subtract(center).Normalize()
		if normal.Subtract(expected).Length() > tolerance {
			t.Errorf("Expected normal %v, got %v", expected, normal)
		}
		if math.Abs(normal.Length()-1.0) > tolerance {
			t.Errorf("Normal %v is not unit length", normal)
		}
	}
}

func TestSphere_EpsilonRejectsSelfIntersection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, material.NewDiffuse(core.NewColor(1, 1, 1)))

	// Ray starting exactly on the surface, leaving the sphere: the near root
	// is ~0 and must be rejected, and the far root is behind the ray.
	ray := core.NewRay(core.NewVec3(0, 0, -4), core.NewVec3(0, 0, 1))
	if hitT, ok := sphere.Hit(ray, 0.001); ok {
		t.Errorf("Expected no hit for ray leaving the surface, got t=%v", hitT)
	}
}

func TestUV_Mapping(t *testing.T) {
	tests := []struct {
		name      string
		normal    core.Vec3
		expectedU float64
		expectedV float64
	}{
		{"north pole", core.NewVec3(0, 1, 0), 0.5, 0.0},
		{"south pole", core.NewVec3(0, -1, 0), 0.5, 1.0},
		{"positive x equator", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"negative x equator", core.NewVec3(-1, 0, 0), 1.0, 0.5},
		{"positive z equator", core.NewVec3(0, 0, 1), 0.75, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := UV(tt.normal)

			const tolerance = 1e-9
			if math.Abs(u-tt.expectedU) > tolerance || math.Abs(v-tt.expectedV) > tolerance {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.expectedU, tt.expectedV, u, v)
			}
		})
	}
}

func TestSphere_ColorAt(t *testing.T) {
	white := core.NewColor(1, 1, 1)
	black := core.NewColor(0, 0, 0)
	tex := material.NewCheckerTexture(8, 8, 2, white, black)

	base := core.NewColor(0.5, 0.5, 0.5)
	plain := NewSphere(core.NewVec3(0, 0, 0), 1, material.NewDiffuse(base))
	textured := NewTexturedSphere(core.NewVec3(0, 0, 0), 1, material.NewDiffuse(base), tex)

	normal := core.NewVec3(1, 0, 0) // maps to (0.5, 0.5)

	if got := plain.ColorAt(normal); got != base {
		t.Errorf("Untextured sphere: expected base color %v, got %v", base, got)
	}

	want := base.Mul(tex.Sample(0.5, 0.5))
	if got := textured.ColorAt(normal); got != want {
		t.Errorf("Textured sphere: expected %v, got %v", want, got)
	}
}
