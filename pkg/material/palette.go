package material

import (
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var palette = map[string]Material{
	"ivory":        NewMaterial(core.NewVec3(0.4, 0.4, 0.3), core.NewVec4(0.9, 0.5, 0.1, 0.0), 50, 1.0),
	"red_rubber":   NewMaterial(core.NewVec3(0.3, 0.1, 0.1), core.NewVec4(1.4, 0.3, 0.0, 0.0), 10, 1.0),
	"green_rubber": NewMaterial(core.NewVec3(0.1, 0.3, 0.1), core.NewVec4(1.4, 0.3, 0.0, 0.0), 10, 1.0),
	"glass":        NewMaterial(core.NewVec3(0.6, 0.7, 0.8), core.NewVec4(0.0, 0.5, 0.1, 0.8), 125, 1.5),
	"mirror":       NewMaterial(core.NewVec3(1.0, 1.0, 1.0), core.NewVec4(0.0, 10.0, 0.8, 0.0), 1425, 1.0),
	"white":        NewMaterial(core.NewVec3(0.3, 0.3, 0.3), core.NewVec4(1.0, 0.1, 0.0, 0.0), 10, 1.0),
	"black":        NewMaterial(core.NewVec3(0.3, 0.2, 0.1), core.NewVec4(1.0, 0.1, 0.0, 0.0), 10, 1.0),
}

// Lookup returns the named palette material
func Lookup(name string) (Material, bool) {
	m, ok := palette[name]
	return m, ok
}

// Names returns the palette names in sorted order
func Names() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ivory is the reference off-white material
func Ivory() Material { return palette["ivory"] }

// RedRubber is the reference dull red material
func RedRubber() Material { return palette["red_rubber"] }

// Glass is a mostly transmissive material with index 1.5
func Glass() Material { return palette["glass"] }

// Mirror is a strongly reflective material
func Mirror() Material { return palette["mirror"] }

// Zero is the material given to unrecognized names: black with no weights. Its
// refractive index is that of vacuum so refraction stays well defined.
func Zero() Material {
	return NewMaterial(core.Vec3{}, core.Vec4{}, 0, 1)
}
