package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is an omnidirectional light with no distance falloff
type PointLight struct {
	Position  core.Vec3
	Intensity float64 // assumed positive
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, intensity float64) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Sample returns the unit direction from point toward the light and the distance to it
func (l PointLight) Sample(point core.Vec3) (direction core.Vec3, distance float64) {
	toLight := l.Position.Subtract(point)
	distance = toLight.Length()
	return toLight.Normalize(), distance
}
