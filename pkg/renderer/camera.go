package renderer

import (
	"math"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/core"
)

// Camera generates rays for a viewport from an orbit position. The
// position orbits the origin at the given distance, while ray directions
// use a fixed look-down-negative-z mapping.
type Camera struct {
	origin core.Vec3
	width  int
	height int
}

// NewOrbitCamera creates a camera positioned on an orbit around the origin:
// pos = distance * (sin(angleX)cos(angleY), sin(angleY), cos(angleX)cos(angleY))
func NewOrbitCamera(angleX, angleY, distance float64, width, height int) *Camera {
	origin := core.NewVec3(
		distance*math.Sin(angleX)*math.Cos(angleY),
		distance*math.Sin(angleY),
		distance*math.Cos(angleX)*math.Cos(angleY),
	)
	return &Camera{origin: origin, width: width, height: height}
}

// Origin returns the camera position
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// Size returns the viewport dimensions in pixels
func (c *Camera) Size() (width, height int) {
	return c.width, c.height
}

// GetRay generates the ray for pixel (x, y) with sub-pixel jitter offsets
// in [-0.5, 0.5). The pixel maps to normalized device coordinates in
// [-1,1] with the vertical axis corrected by the aspect ratio, and the
// direction is normalize(u, -v, -1).
func (c *Camera) GetRay(x, y int, jitterX, jitterY float64) core.Ray {
	u := (float64(x)+jitterX)/float64(c.width)*2.0 - 1.0
	v := (float64(y)+jitterY)/float64(c.height)*2.0 - 1.0
	v *= float64(c.height) / float64(c.width)

	direction := core.NewVec3(u, -v, -1)
	return core.NewRay(c.origin, direction)
}
