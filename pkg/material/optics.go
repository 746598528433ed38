package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit direction uv through a surface with unit normal n using
// Snell's law. etaT is the index on the far side of n and etaI the index on the
// side n points to. When uv leaves through the back of n the indices are swapped
// and the normal flipped. ok is false on total internal reflection.
func Refract(uv, n core.Vec3, etaT, etaI float64) (core.Vec3, bool) {
	cosI := -math.Max(-1, math.Min(1, uv.Dot(n)))
	if cosI < 0 {
		// Ray is inside the object
		return Refract(uv, n.Negate(), etaI, etaT)
	}

	eta := etaI / etaT
	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return core.Vec3{}, false
	}
	return uv.Multiply(eta).Add(n.Multiply(eta*cosI - math.Sqrt(k))), true
}
