package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the unclamped color seen along a primary ray
	RayColor(ray core.Ray, scene *scene.Scene) core.Vec3
}

// RayCounts tallies the rays an integrator traced
type RayCounts struct {
	Primary   int // Camera rays
	Secondary int // Reflection and refraction rays
	Shadow    int // Shadow probes toward lights
}

// Add returns the element-wise sum of two tallies
func (c RayCounts) Add(other RayCounts) RayCounts {
	return RayCounts{
		Primary:   c.Primary + other.Primary,
		Secondary: c.Secondary + other.Secondary,
		Shadow:    c.Shadow + other.Shadow,
	}
}

// Total returns the number of rays of every kind
func (c RayCounts) Total() int {
	return c.Primary + c.Secondary + c.Shadow
}
