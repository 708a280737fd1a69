package geometry

import (
	"math"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/core"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/material"
)

// Sphere represents a sphere with a material and an optional texture.
// The texture reference is non-owning; the scene owns all textures.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
	Texture  *material.Texture
}

// NewSphere creates a new untextured sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// NewTexturedSphere creates a new sphere with a texture reference
func NewTexturedSphere(center core.Vec3, radius float64, mat material.Material, tex *material.Texture) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat, Texture: tex}
}

// HitRecord contains information about a ray-sphere intersection.
// Color is the material color with any texture contribution resolved.
type HitRecord struct {
	T      float64
	Point  core.Vec3
	Normal core.Vec3
	Color  core.Color
	Sphere *Sphere
}

// Hit tests if a ray intersects the sphere and returns the smallest
// parameter t greater than tMin. The near surface is preferred; the far
// root is used when the ray starts inside the sphere.
func (s *Sphere) Hit(ray core.Ray, tMin float64) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= tMin {
		root = (-halfB + sqrtD) / a
		if root <= tMin {
			return 0, false
		}
	}

	return root, true
}

// Normal returns the outward surface normal at a point on the sphere
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Multiply(1.0 / s.Radius)
}

// UV maps a unit surface normal to spherical texture coordinates in [0,1)²
func UV(normal core.Vec3) (u, v float64) {
	// Guard asin against normals a rounding error above unit length
	y := math.Max(-1, math.Min(1, normal.Y))
	u = 0.5 + math.Atan2(normal.Z, normal.X)/(2*math.Pi)
	v = 0.5 - math.Asin(y)/math.Pi
	return u, v
}

// ColorAt resolves the surface color for a unit normal: the base material
// color, multiplied component-wise by the texture sample when textured.
func (s *Sphere) ColorAt(normal core.Vec3) core.Color {
	if s.Texture == nil {
		return s.Material.BaseColor
	}
	u, v := UV(normal)
	return s.Material.BaseColor.Mul(s.Texture.Sample(u, v))
}

// Record builds the hit record for an intersection at parameter t
func (s *Sphere) Record(ray core.Ray, t float64) *HitRecord {
	point := ray.At(t)
	normal := s.Normal(point)
	return &HitRecord{
		T:      t,
		Point:  point,
		Normal: normal,
		Color:  s.ColorAt(normal),
		Sphere: s,
	}
}
