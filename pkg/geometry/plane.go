package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const parallelEpsilon = 1e-6

// Plane represents the infinite plane {p : p·Normal = Distance}
type Plane struct {
	Normal   core.Vec3 // Unit normal
	Distance float64   // Signed distance from the world origin along Normal
	Material material.Material
}

// NewPlane creates a new plane. The normal is normalized.
func NewPlane(normal core.Vec3, distance float64, mat material.Material) *Plane {
	return &Plane{
		Normal:   normal.Normalize(),
		Distance: distance,
		Material: mat,
	}
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Ray is (nearly) parallel to the plane
	if math.Abs(denominator) <= parallelEpsilon {
		return 0, false
	}

	toPlane := p.Normal.Multiply(p.Distance).Subtract(ray.Origin)
	t := toPlane.Dot(p.Normal) / denominator
	return t, t >= 0
}

// NormalAt returns whichever of ±Normal points from the point back toward the world origin,
// which is where the camera sits.
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	if point.Add(p.Normal).Length() <= point.Length() {
		return p.Normal
	}
	return p.Normal.Negate()
}

// MaterialAt returns the plane's material
func (p *Plane) MaterialAt(core.Vec3) material.Material {
	return p.Material
}

// Position returns the point of the plane closest to the origin
func (p *Plane) Position() core.Vec3 {
	return p.Normal.Multiply(p.Distance)
}

// SetPosition moves the plane along its normal so that it contains position
func (p *Plane) SetPosition(position core.Vec3) {
	p.Distance = position.Dot(p.Normal)
}

// SetMaterial replaces the material
func (p *Plane) SetMaterial(mat material.Material) { p.Material = mat }

// CheckerboardPlane is a plane whose material alternates on a world-space grid of cubic tiles
type CheckerboardPlane struct {
	Plane
	Alternate material.Material // Used on tiles with odd parity
	TileSize  float64
}

// NewCheckerboardPlane creates a checkerboard plane. even is used where
// floor(x/size)+floor(y/size)+floor(z/size) is even, odd elsewhere.
func NewCheckerboardPlane(normal core.Vec3, distance float64, even, odd material.Material, tileSize float64) *CheckerboardPlane {
	return &CheckerboardPlane{
		Plane:     *NewPlane(normal, distance, even),
		Alternate: odd,
		TileSize:  tileSize,
	}
}

// MaterialAt picks the tile material for the point
func (c *CheckerboardPlane) MaterialAt(point core.Vec3) material.Material {
	x := int(math.Floor(point.X / c.TileSize))
	y := int(math.Floor(point.Y / c.TileSize))
	z := int(math.Floor(point.Z / c.TileSize))
	if (x+y+z)%2 == 0 {
		return c.Material
	}
	return c.Alternate
}

// SetMaterials replaces both tile materials
func (c *CheckerboardPlane) SetMaterials(even, odd material.Material) {
	c.Material = even
	c.Alternate = odd
}
