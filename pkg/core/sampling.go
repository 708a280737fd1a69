package core

import "math"

// SampleCosineHemisphere generates a cosine-weighted direction in the
// hemisphere around the unit normal from two uniform [0,1) samples.
// The polar angle is acos(sqrt(u1)) and the azimuth 2π*u2, so directions
// cluster toward the normal with density proportional to cos(θ).
func SampleCosineHemisphere(normal Vec3, u1, u2 float64) Vec3 {
	cosTheta := math.Sqrt(u1)
	sinTheta := math.Sqrt(1.0 - u1)
	phi := 2.0 * math.Pi * u2

	x := sinTheta * math.Cos(phi)
	y := sinTheta * math.Sin(phi)

	// Create local coordinate system around normal
	// Find a vector not parallel to the normal
	var nt Vec3
	if math.Abs(normal.X) > 0.1 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}

	// Create orthonormal basis
	tangent := nt.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	// Transform to world space
	return tangent.Multiply(x).Add(bitangent.Multiply(y)).Add(normal.Multiply(cosTheta))
}
