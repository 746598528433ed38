package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// faceEpsilon is the tolerance used to decide which face a hit point lies on
const faceEpsilon = 1e-4

// AxisAlignedBox is a box whose faces are perpendicular to the world axes
type AxisAlignedBox struct {
	Min      core.Vec3 // Corner with the smallest coordinates
	Size     core.Vec3 // Extent along each axis
	Material material.Material
}

// NewAxisAlignedBox creates a box spanning [min, min+size]
func NewAxisAlignedBox(min, size core.Vec3, mat material.Material) *AxisAlignedBox {
	return &AxisAlignedBox{
		Min:      min,
		Size:     size,
		Material: mat,
	}
}

// NewCube creates an axis-aligned cube centered at center with the given side length
func NewCube(center core.Vec3, side float64, mat material.Material) *AxisAlignedBox {
	half := core.NewVec3(side/2, side/2, side/2)
	return NewAxisAlignedBox(center.Subtract(half), core.NewVec3(side, side, side), mat)
}

// Intersect tests the ray against the three slabs of the box
func (b *AxisAlignedBox) Intersect(ray core.Ray) (float64, bool) {
	return intersectSlabs(ray.Origin, ray.Direction, b.Min, b.Min.Add(b.Size))
}

// NormalAt returns the normal of the face the point lies on
func (b *AxisAlignedBox) NormalAt(point core.Vec3) core.Vec3 {
	return faceNormal(point, b.Min, b.Min.Add(b.Size))
}

// MaterialAt returns the box's material
func (b *AxisAlignedBox) MaterialAt(core.Vec3) material.Material {
	return b.Material
}

// Position returns the minimum corner
func (b *AxisAlignedBox) Position() core.Vec3 { return b.Min }

// SetPosition moves the minimum corner
func (b *AxisAlignedBox) SetPosition(position core.Vec3) { b.Min = position }

// SetMaterial replaces the material
func (b *AxisAlignedBox) SetMaterial(mat material.Material) { b.Material = mat }

// Center returns the center of the box
func (b *AxisAlignedBox) Center() core.Vec3 {
	return b.Min.Add(b.Size.Multiply(0.5))
}

// OrientedBox is a box rotated about its center
type OrientedBox struct {
	center   core.Vec3
	size     core.Vec3 // Full extent along each local axis
	rotation core.Vec3 // Radians around X, Y, Z (applied in that order)
	basis    core.Basis
	Material material.Material
}

// NewOrientedBox creates a box of the given full size, rotated around its center
func NewOrientedBox(center, size, rotation core.Vec3, mat material.Material) *OrientedBox {
	return &OrientedBox{
		center:   center,
		size:     size,
		rotation: rotation,
		basis:    core.NewBasis(rotation),
		Material: mat,
	}
}

// Intersect transforms the ray into the box frame and runs the slab test there.
// The local direction is not renormalized, so t stays in world ray units.
func (b *OrientedBox) Intersect(ray core.Ray) (float64, bool) {
	origin := b.basis.ToLocal(ray.Origin.Subtract(b.center))
	direction := b.basis.ToLocal(ray.Direction)
	half := b.size.Multiply(0.5)
	return intersectSlabs(origin, direction, half.Negate(), half)
}

// NormalAt finds the face in local space and rotates its normal back to world space
func (b *OrientedBox) NormalAt(point core.Vec3) core.Vec3 {
	local := b.basis.ToLocal(point.Subtract(b.center))
	half := b.size.Multiply(0.5)
	n := faceNormal(local, half.Negate(), half)
	return b.basis.ToWorld(n).Normalize()
}

// MaterialAt returns the box's material
func (b *OrientedBox) MaterialAt(core.Vec3) material.Material {
	return b.Material
}

// Position returns the center
func (b *OrientedBox) Position() core.Vec3 { return b.center }

// SetPosition moves the center
func (b *OrientedBox) SetPosition(position core.Vec3) { b.center = position }

// SetMaterial replaces the material
func (b *OrientedBox) SetMaterial(mat material.Material) { b.Material = mat }

// Size returns the full extent along each local axis
func (b *OrientedBox) Size() core.Vec3 { return b.size }

// Rotation returns the rotation angles in radians
func (b *OrientedBox) Rotation() core.Vec3 { return b.rotation }

// SetRotation replaces the rotation angles and rebuilds the local frame
func (b *OrientedBox) SetRotation(rotation core.Vec3) {
	b.rotation = rotation
	b.basis = core.NewBasis(rotation)
}

// Axis returns local axis i in world coordinates
func (b *OrientedBox) Axis(i int) core.Vec3 {
	return b.basis.Axis(i)
}

// intersectSlabs intersects the ray with the box [lo, hi].
// Zero direction components are not special-cased: the divisions produce ±Inf or
// NaN and the comparisons below decide the outcome exactly as IEEE arithmetic does.
func intersectSlabs(origin, direction, lo, hi core.Vec3) (float64, bool) {
	tmin, tmax := slab(origin.X, direction.X, lo.X, hi.X)

	for axis := 1; axis < 3; axis++ {
		tlo, thi := slab(origin.At(axis), direction.At(axis), lo.At(axis), hi.At(axis))
		if tmin > thi || tlo > tmax {
			return 0, false
		}
		if tlo > tmin {
			tmin = tlo
		}
		if thi < tmax {
			tmax = thi
		}
	}

	// Origin inside the box: report the exit point
	t := tmin
	if tmin < 0 {
		t = tmax
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

func slab(origin, direction, lo, hi float64) (float64, float64) {
	t0 := (lo - origin) / direction
	t1 := (hi - origin) / direction
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1
}

// faceNormal returns the axis normal of the face of [lo, hi] that point lies on
func faceNormal(point, lo, hi core.Vec3) core.Vec3 {
	switch {
	case point.X < lo.X+faceEpsilon:
		return core.NewVec3(-1, 0, 0)
	case point.X > hi.X-faceEpsilon:
		return core.NewVec3(1, 0, 0)
	case point.Y < lo.Y+faceEpsilon:
		return core.NewVec3(0, -1, 0)
	case point.Y > hi.Y-faceEpsilon:
		return core.NewVec3(0, 1, 0)
	case point.Z < lo.Z+faceEpsilon:
		return core.NewVec3(0, 0, -1)
	default:
		return core.NewVec3(0, 0, 1)
	}
}
