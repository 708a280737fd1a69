package scene

import (
	"math"
	"testing"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/core"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/geometry"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/material"
)

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	if len(s.Spheres) != 4 {
		t.Fatalf("Expected 4 spheres, got %d", len(s.Spheres))
	}
	if len(s.Textures) != 1 {
		t.Fatalf("Expected 1 owned texture, got %d", len(s.Textures))
	}

	ground := s.Spheres[3]
	if ground.Texture == nil {
		t.Errorf("Ground sphere should reference the checker texture")
	}
	if ground.Texture != s.Textures[0] {
		t.Errorf("Ground sphere texture should be owned by the scene")
	}

	for i, sphere := range s.Spheres {
		if sphere.Radius <= 0 {
			t.Errorf("Sphere %d has non-positive radius %v", i, sphere.Radius)
		}
	}
}

func TestScene_Animate(t *testing.T) {
	tests := []struct {
		name    string
		elapsed float64
	}{
		{"time zero", 0},
		{"quarter second", 0.25},
		{"one second", 1.0},
		{"late frame", 123.456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewDefaultScene()
			s.Animate(tt.elapsed)

			// Exact functional forms, relied on for reproducibility
			wantY := math.Sin(tt.elapsed*2) * 0.5
			wantX := math.Sin(tt.elapsed) * 0.5
			wantZ := -5 + math.Sin(tt.elapsed*1.5)*0.3

			if s.Spheres[0].Center.Y != wantY {
				t.Errorf("Sphere 0 bob: expected Y=%v, got %v", wantY, s.Spheres[0].Center.Y)
			}
			if s.Spheres[1].Center.X != wantX {
				t.Errorf("Sphere 1 sway: expected X=%v, got %v", wantX, s.Spheres[1].Center.X)
			}
			if s.Spheres[2].Center.Z != wantZ {
				t.Errorf("Sphere 2 oscillation: expected Z=%v, got %v", wantZ, s.Spheres[2].Center.Z)
			}

			wantLight := core.NewVec3(math.Sin(tt.elapsed)*3, 2, math.Cos(tt.elapsed)*3-3)
			if s.Light != wantLight {
				t.Errorf("Expected light at %v, got %v", wantLight, s.Light)
			}
		})
	}
}

func TestScene_NearestHit(t *testing.T) {
	s := NewDefaultScene()
	s.Animate(0)

	// Aim at the blue diffuse sphere at (2,0,-5) from straight ahead
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := s.NearestHit(ray, 0.001)
	if !ok {
		t.Fatalf("Expected a hit")
	}

	const tolerance = 1e-9
	if math.Abs(hit.T-4.0) > tolerance {
		t.Errorf("Expected t=4, got %v", hit.T)
	}
	if hit.Sphere != s.Spheres[2] {
		t.Errorf("Expected the blue sphere to be hit")
	}
}

func TestScene_NearestHitMiss(t *testing.T) {
	s := NewDefaultScene()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	if hit, ok := s.NearestHit(ray, 0.001); ok {
		t.Errorf("Expected a miss, got hit at t=%v", hit.T)
	}
}

func TestScene_NearestHitTieBreak(t *testing.T) {
	// Two identical spheres at the same position: the first in scene order
	// must win on the exactly equal t.
	first := geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0,
		material.NewDiffuse(core.NewColor(1, 0, 0)))
	second := geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0,
		material.NewDiffuse(core.NewColor(0, 1, 0)))
	s := &Scene{Spheres: []*geometry.Sphere{first, second}}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := s.NearestHit(ray, 0.001)
	if !ok {
		t.Fatalf("Expected a hit")
	}
	if hit.Sphere != first {
		t.Errorf("Tie-break should pick the first sphere in scene order")
	}
}
