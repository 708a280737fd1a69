package scene

import (
	"math"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/core"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/geometry"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/material"
)

// Scene holds an ordered collection of spheres, the textures they
// reference, and the current position of the orbiting point light.
// Animate mutates the scene exactly once per frame, before any ray for
// that frame is cast; the scene is treated as an immutable snapshot while
// a frame is being sampled.
type Scene struct {
	Spheres  []*geometry.Sphere
	Textures []*material.Texture
	Light    core.Vec3
}

// NewDefaultScene creates the standard animated scene: a red metallic
// sphere, a glass sphere, a blue diffuse sphere, and a large gray ground
// sphere carrying a checkerboard texture.
func NewDefaultScene() *Scene {
	checker := material.NewCheckerTexture(64, 64, 8,
		core.NewColor(1.0, 1.0, 1.0),
		core.NewColor(0.4, 0.4, 0.4))

	s := &Scene{
		Spheres: []*geometry.Sphere{
			geometry.NewSphere(core.NewVec3(-2, 0, -5), 1.0,
				material.NewMetallic(core.NewColor(0.8, 0.2, 0.2), 0.9)),
			geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0,
				material.NewGlass(core.NewColor(0.9, 0.9, 0.9), 0.9, 1.5)),
			geometry.NewSphere(core.NewVec3(2, 0, -5), 1.0,
				material.NewDiffuse(core.NewColor(0.2, 0.2, 0.8))),
			geometry.NewTexturedSphere(core.NewVec3(0, -101, -5), 100.0,
				material.NewDiffuse(core.NewColor(0.5, 0.5, 0.5)), checker),
		},
		Textures: []*material.Texture{checker},
	}

	s.Animate(0)
	return s
}

// Animate advances the scene to the given elapsed time in seconds. The
// three foreground spheres follow fixed periodic paths (vertical bob,
// horizontal sway, depth oscillation) and the point light orbits the
// scene. The functional forms are part of the scene's identity and are
// relied on by deterministic tests.
func (s *Scene) Animate(elapsed float64) {
	if len(s.Spheres) >= 3 {
		s.Spheres[0].Center.Y = math.Sin(elapsed*2) * 0.5
		s.Spheres[1].Center.X = math.Sin(elapsed) * 0.5
		s.Spheres[2].Center.Z = -5 + math.Sin(elapsed*1.5)*0.3
	}

	s.Light = core.NewVec3(math.Sin(elapsed)*3, 2, math.Cos(elapsed)*3-3)
}

// NearestHit finds the closest intersection along the ray with t > tMin.
// All spheres are scanned brute force; with a handful of primitives this
// beats any acceleration structure. When two spheres produce exactly equal
// t, the one earlier in scene order wins — a deliberate, documented
// tie-break policy, since it is observable in rendered output.
func (s *Scene) NearestHit(ray core.Ray, tMin float64) (*geometry.HitRecord, bool) {
	var closest *geometry.Sphere
	closestT := math.MaxFloat64

	for _, sphere := range s.Spheres {
		if t, ok := sphere.Hit(ray, tMin); ok && t < closestT {
			closestT = t
			closest = sphere
		}
	}

	if closest == nil {
		return nil, false
	}
	return closest.Record(ray, closestT), true
}
