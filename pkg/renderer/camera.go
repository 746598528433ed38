package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera is a pinhole camera at the world origin looking down -Z with +Y up
type Camera struct {
	width      int
	height     int
	tanHalfFOV float64
}

// NewCamera creates a camera for an image of width x height pixels with a vertical
// field of view in radians. The horizontal extent follows the aspect ratio.
func NewCamera(width, height int, fov float64) *Camera {
	return &Camera{
		width:      width,
		height:     height,
		tanHalfFOV: math.Tan(fov / 2),
	}
}

// GetRay returns the unit-direction primary ray through the center of pixel (i, j).
// Row j = 0 is the top of the image.
func (c *Camera) GetRay(i, j int) core.Ray {
	w := float64(c.width)
	h := float64(c.height)
	x := (2*(float64(i)+0.5)/w - 1) * c.tanHalfFOV * w / h
	y := -(2*(float64(j)+0.5)/h - 1) * c.tanHalfFOV
	return core.NewRay(core.Vec3{}, core.NewVec3(x, y, -1).Normalize())
}
