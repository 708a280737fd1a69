package renderer

import (
	"math"
	"math/rand"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/core"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/geometry"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/scene"
)

// Raytracer evaluates the recursive Whitted-style shading algorithm over a
// scene snapshot. It holds no hidden mutable state: randomness for jitter
// and indirect bounces is passed in explicitly, so Shade is safe to call
// from multiple goroutines against the same frame snapshot.
type Raytracer struct {
	scene  *scene.Scene
	config Config
}

// NewRaytracer creates a raytracer for a scene with the given configuration
func NewRaytracer(s *scene.Scene, config Config) *Raytracer {
	return &Raytracer{scene: s, config: config}
}

// Scene returns the scene being rendered
func (rt *Raytracer) Scene() *scene.Scene {
	return rt.scene
}

// Config returns the active configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// SetConfig replaces the active configuration
func (rt *Raytracer) SetConfig(config Config) {
	rt.config = config
}

// Shade returns the color seen along a ray. Recursion depth increases by
// one per nested ray; past the hard cap the sky color is returned. The
// result has every channel clamped to [0,1].
func (rt *Raytracer) Shade(ray core.Ray, depth int, random *rand.Rand) core.Color {
	if depth > rt.config.MaxDepth {
		return rt.config.SkyColor
	}

	hit, ok := rt.scene.NearestHit(ray, rt.config.Epsilon)
	if !ok {
		return rt.config.SkyColor
	}

	result := rt.directLight(hit)
	mat := hit.Sphere.Material

	// Mirror reflection, blended by the metallic weight
	if mat.Metallic > 0 {
		reflected := ray.Direction.Reflect(hit.Normal)
		reflectRay := core.NewRay(rt.offsetPoint(hit, hit.Normal), reflected)
		reflectColor := rt.Shade(reflectRay, depth+1, random)
		result = result.Lerp(reflectColor, mat.Metallic)
	}

	// Fresnel-weighted refraction, blended by the transparency weight
	if mat.Transparency > 0 {
		if transmitted, ok := rt.refractedLight(ray, hit, depth, random); ok {
			result = result.Lerp(transmitted, mat.Transparency)
		}
	}

	// One bounce of indirect diffuse light, additive rather than blended
	if depth < rt.config.GIDepth && mat.Metallic < 0.5 {
		giDir := core.SampleCosineHemisphere(hit.Normal, random.Float64(), random.Float64())
		giRay := core.NewRay(rt.offsetPoint(hit, hit.Normal), giDir)
		giColor := rt.Shade(giRay, depth+1, random)
		result = result.Add(giColor.Mul(hit.Color).Scale(rt.config.GIStrength))
	}

	return result.Clamp()
}

// directLight computes the shadowed direct contribution of the orbiting
// point light at the hit point
func (rt *Raytracer) directLight(hit *geometry.HitRecord) core.Color {
	lightDir := rt.scene.Light.Subtract(hit.Point).Normalize()

	intensity := rt.config.AmbientFloor
	if !rt.inShadow(hit, lightDir) {
		intensity = math.Max(rt.config.AmbientFloor, hit.Normal.Dot(lightDir))
	}

	return hit.Color.Scale(intensity)
}

// inShadow casts a shadow ray toward the light. The point is shadowed when
// the ray strikes any sphere other than the one being shaded.
func (rt *Raytracer) inShadow(hit *geometry.HitRecord, lightDir core.Vec3) bool {
	shadowRay := core.NewRay(rt.offsetPoint(hit, hit.Normal), lightDir)
	blocker, ok := rt.scene.NearestHit(shadowRay, rt.config.Epsilon)
	return ok && blocker.Sphere != hit.Sphere
}

// refractedLight traces the transparent contribution: the refracted and
// reflected rays at a dielectric boundary, blended by the Fresnel factor.
// Returns false under total internal reflection, in which case the
// transparent term is skipped entirely.
func (rt *Raytracer) refractedLight(ray core.Ray, hit *geometry.HitRecord, depth int, random *rand.Rand) (core.Color, bool) {
	mat := hit.Sphere.Material

	// Entering or exiting the sphere decides the index ratio and normal side
	normal := hit.Normal
	etaRatio := 1.0 / mat.RefractiveIndex
	if ray.Direction.Dot(hit.Normal) > 0 {
		normal = hit.Normal.Negate()
		etaRatio = mat.RefractiveIndex
	}

	refracted, ok := ray.Direction.Refract(normal, etaRatio)
	if !ok {
		return core.Color{}, false
	}

	cosTheta := math.Min(-ray.Direction.Dot(normal), 1.0)
	fresnel := reflectance(cosTheta, etaRatio)

	refractRay := core.NewRay(rt.offsetPointAgainst(hit, normal), refracted)
	refractColor := rt.Shade(refractRay, depth+1, random)

	reflected := ray.Direction.Reflect(normal)
	reflectRay := core.NewRay(rt.offsetPoint(hit, normal), reflected)
	reflectColor := rt.Shade(reflectRay, depth+1, random)

	return refractColor.Scale(1 - fresnel).Add(reflectColor.Scale(fresnel)), true
}

// offsetPoint nudges the hit point outward along the normal to avoid
// re-intersecting the surface just left
func (rt *Raytracer) offsetPoint(hit *geometry.HitRecord, normal core.Vec3) core.Vec3 {
	return hit.Point.Add(normal.Multiply(rt.config.Epsilon))
}

// offsetPointAgainst nudges the hit point inward, against the normal
func (rt *Raytracer) offsetPointAgainst(hit *geometry.HitRecord, normal core.Vec3) core.Vec3 {
	return hit.Point.Subtract(normal.Multiply(rt.config.Epsilon))
}

// reflectance calculates the Fresnel reflectance using Schlick's approximation
func reflectance(cosine, etaRatio float64) float64 {
	r0 := (1 - etaRatio) / (1 + etaRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
