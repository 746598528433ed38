package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Project the center onto the ray; dividing by |dir|² keeps t in ray units
	l := s.Center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	tca := l.Dot(ray.Direction) / a

	// Squared distance between the center and the closest point on the ray
	d2 := l.LengthSquared() - tca*tca*a
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}

	thc := math.Sqrt((r2 - d2) / a)
	t0 := tca - thc
	t1 := tca + thc
	if t0 < 0 {
		// Origin is inside the sphere; use the far root
		t0 = t1
	}
	if t0 < 0 {
		return 0, false
	}
	return t0, true
}

// NormalAt returns the outward unit normal
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// MaterialAt returns the sphere's material
func (s *Sphere) MaterialAt(core.Vec3) material.Material {
	return s.Material
}

// Position returns the center
func (s *Sphere) Position() core.Vec3 { return s.Center }

// SetPosition moves the center
func (s *Sphere) SetPosition(position core.Vec3) { s.Center = position }

// SetMaterial replaces the material
func (s *Sphere) SetMaterial(mat material.Material) { s.Material = mat }
