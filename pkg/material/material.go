package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Material describes how a surface responds to light.
// Albedo weights the diffuse, specular, mirror-reflection and transmission terms
// (X, Y, Z, W respectively). The weights are non-negative and need not sum to 1.
type Material struct {
	DiffuseColor     core.Vec3
	Albedo           core.Vec4
	SpecularExponent float64
	RefractiveIndex  float64 // 1.0 is vacuum
}

// NewMaterial creates a new material
func NewMaterial(diffuseColor core.Vec3, albedo core.Vec4, specularExponent, refractiveIndex float64) Material {
	return Material{
		DiffuseColor:     diffuseColor,
		Albedo:           albedo,
		SpecularExponent: specularExponent,
		RefractiveIndex:  refractiveIndex,
	}
}

// DiffuseWeight returns the albedo weight of the diffuse term
func (m Material) DiffuseWeight() float64 { return m.Albedo.X }

// SpecularWeight returns the albedo weight of the specular highlight
func (m Material) SpecularWeight() float64 { return m.Albedo.Y }

// ReflectionWeight returns the albedo weight of the mirror reflection
func (m Material) ReflectionWeight() float64 { return m.Albedo.Z }

// RefractionWeight returns the albedo weight of the transmitted light
func (m Material) RefractionWeight() float64 { return m.Albedo.W }
