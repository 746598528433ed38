package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates the four-sphere scene lit by a single light
func NewDefaultScene() *Scene {
	ivory := material.Ivory()
	redRubber := material.RedRubber()

	return NewBuilder().
		AddSphere(core.NewVec3(-3, 3, -16), 2, ivory).
		AddSphere(core.NewVec3(-5.0, -5.5, -12), 5, redRubber).
		AddSphere(core.NewVec3(1.5, -0.5, -18), 3, redRubber).
		AddSphere(core.NewVec3(7, 5, -18), 4, ivory).
		AddLight(core.NewVec3(-20, 20, 20), 1.5).
		Build()
}

// NewShowcaseScene creates a scene exercising every primitive and material:
// a checkerboard floor, glass and mirror spheres, a cube and a rotated box, three lights.
func NewShowcaseScene() *Scene {
	white, _ := material.Lookup("white")
	black, _ := material.Lookup("black")
	greenRubber, _ := material.Lookup("green_rubber")

	b := NewBuilder()

	// Floor at y = -4
	b.AddCheckerboard(core.NewVec3(0, 1, 0), -4, white, black, 2)

	b.AddSphere(core.NewVec3(-3, 0, -16), 2, material.Ivory())
	b.AddSphere(core.NewVec3(-1.0, -1.5, -12), 2, material.Glass())
	b.AddSphere(core.NewVec3(1.5, -0.5, -18), 3, material.RedRubber())
	b.AddSphere(core.NewVec3(7, 5, -18), 4, material.Mirror())

	// Both boxes rest on the floor
	b.AddCube(core.NewVec3(-7, -3, -14), 2, greenRubber)
	b.AddOrientedBox(core.NewVec3(4, -2.5, -11), core.NewVec3(2, 3, 2), core.NewVec3(0, math.Pi/6, 0), material.Ivory())

	b.AddLight(core.NewVec3(-20, 20, 20), 1.5)
	b.AddLight(core.NewVec3(30, 50, -25), 1.8)
	b.AddLight(core.NewVec3(30, 20, 30), 1.7)

	return b.Build()
}
