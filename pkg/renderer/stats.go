package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int                  // Total number of pixels rendered
	Rays        integrator.RayCounts // Rays traced, by kind
	NumWorkers  int                  // Workers used
	Elapsed     time.Duration        // Wall-clock render time
}

// RaysPerPixel returns the average number of rays traced per pixel
func (s RenderStats) RaysPerPixel() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.Rays.Total()) / float64(s.TotalPixels)
}
