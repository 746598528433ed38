package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// DefaultMaxDistance is the ray range beyond which hits are ignored
const DefaultMaxDistance = 1000.0

// Scene contains all the elements needed for rendering.
// Shapes and lights must not be mutated while a render is in progress.
type Scene struct {
	Shapes []geometry.Shape    // Objects in the scene
	Lights []lights.PointLight // Lights in the scene
}

// Intersect finds the nearest hit along the ray whose distance is strictly below
// maxDistance. When two shapes report the same distance the one added first wins.
func (s *Scene) Intersect(ray core.Ray, maxDistance float64) (geometry.HitRecord, bool) {
	var closest geometry.Shape
	closestDist := maxDistance

	for _, shape := range s.Shapes {
		if dist, isHit := shape.Intersect(ray); isHit && dist < closestDist {
			closestDist = dist
			closest = shape
		}
	}

	if closest == nil {
		return geometry.HitRecord{}, false
	}
	return geometry.NewHitRecord(closest, ray, closestDist), true
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
