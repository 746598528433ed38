package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Builder assembles a Scene. Shapes and lights added after WithTransform have
// their position moved by that transform; orientation and size are left alone.
type Builder struct {
	shapes    []geometry.Shape
	lights    []lights.PointLight
	transform core.Mat4
}

// NewBuilder creates an empty builder with the identity transform
func NewBuilder() *Builder {
	return &Builder{transform: core.Identity()}
}

// WithTransform sets the placement transform for subsequently added shapes and lights
func (b *Builder) WithTransform(transform core.Mat4) *Builder {
	b.transform = transform
	return b
}

// ResetTransform restores the identity placement transform
func (b *Builder) ResetTransform() *Builder {
	b.transform = core.Identity()
	return b
}

// Add places a shape with the current transform and appends it
func (b *Builder) Add(shape geometry.Shape) *Builder {
	shape.SetPosition(b.transform.TransformPoint(shape.Position()))
	b.shapes = append(b.shapes, shape)
	return b
}

// AddSphere adds a sphere
func (b *Builder) AddSphere(center core.Vec3, radius float64, mat material.Material) *Builder {
	return b.Add(geometry.NewSphere(center, radius, mat))
}

// AddPlane adds an infinite plane {p : p·normal = distance}
func (b *Builder) AddPlane(normal core.Vec3, distance float64, mat material.Material) *Builder {
	return b.Add(geometry.NewPlane(normal, distance, mat))
}

// AddCheckerboard adds a plane tiled with two alternating materials
func (b *Builder) AddCheckerboard(normal core.Vec3, distance float64, even, odd material.Material, tileSize float64) *Builder {
	return b.Add(geometry.NewCheckerboardPlane(normal, distance, even, odd, tileSize))
}

// AddBox adds an axis-aligned box spanning [min, min+size]
func (b *Builder) AddBox(min, size core.Vec3, mat material.Material) *Builder {
	return b.Add(geometry.NewAxisAlignedBox(min, size, mat))
}

// AddCube adds an axis-aligned cube centered at center
func (b *Builder) AddCube(center core.Vec3, side float64, mat material.Material) *Builder {
	return b.Add(geometry.NewCube(center, side, mat))
}

// AddOrientedBox adds a box of full size rotated around its center (radians)
func (b *Builder) AddOrientedBox(center, size, rotation core.Vec3, mat material.Material) *Builder {
	return b.Add(geometry.NewOrientedBox(center, size, rotation, mat))
}

// AddLight adds a point light
func (b *Builder) AddLight(position core.Vec3, intensity float64) *Builder {
	b.lights = append(b.lights, lights.NewPointLight(b.transform.TransformPoint(position), intensity))
	return b
}

// Build returns the assembled scene. The builder may keep adding to a new scene afterwards.
func (b *Builder) Build() *Scene {
	s := &Scene{
		Shapes: b.shapes,
		Lights: b.lights,
	}
	b.shapes = nil
	b.lights = nil
	return s
}
