package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape is implemented by every primitive: Sphere, Plane, CheckerboardPlane,
// AxisAlignedBox and OrientedBox.
type Shape interface {
	// Intersect returns the smallest non-negative t at which the ray meets the
	// surface, measured in the ray's own parametrization.
	Intersect(ray core.Ray) (float64, bool)

	// NormalAt returns the unit normal at a point on (or very near) the surface.
	NormalAt(point core.Vec3) core.Vec3

	// MaterialAt returns the material to shade the given surface point with.
	MaterialAt(point core.Vec3) material.Material

	Position() core.Vec3
	SetPosition(position core.Vec3)
	SetMaterial(mat material.Material)
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point    core.Vec3         // Point of intersection
	Normal   core.Vec3         // Unit surface normal at the intersection
	Material material.Material // Material sampled at Point
	Distance float64           // Parameter t along the ray
}

// NewHitRecord evaluates shape at parameter t along ray
func NewHitRecord(shape Shape, ray core.Ray, t float64) HitRecord {
	point := ray.At(t)
	return HitRecord{
		Point:    point,
		Normal:   shape.NormalAt(point),
		Material: shape.MaterialAt(point),
		Distance: t,
	}
}
