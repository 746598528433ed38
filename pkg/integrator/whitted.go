package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WhittedConfig contains the parameters of the recursive ray caster
type WhittedConfig struct {
	MaxDepth       int          // Rays deeper than this return the background
	Background     core.Vec3    // Color of rays that escape the scene
	Shading        ShadingModel // Specular model for direct lighting
	ShadowEpsilon  float64      // Offset of shadow probe origins along the normal
	SurfaceEpsilon float64      // Offset of reflection/refraction origins along the normal
	MaxDistance    float64      // Hits at or beyond this distance are ignored
}

// DefaultWhittedConfig returns the reference parameters
func DefaultWhittedConfig() WhittedConfig {
	return WhittedConfig{
		MaxDepth:       4,
		Background:     core.NewVec3(0.2, 0.7, 0.8),
		Shading:        ShadingNone,
		ShadowEpsilon:  1e-3,
		SurfaceEpsilon: 1e-3,
		MaxDistance:    scene.DefaultMaxDistance,
	}
}

// WhittedIntegrator implements recursive ray tracing with direct lighting, hard
// shadows, mirror reflection and refraction. It keeps running ray counts and is
// therefore not safe for concurrent use; give each worker its own instance.
type WhittedIntegrator struct {
	config WhittedConfig
	counts RayCounts
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator(config WhittedConfig) *WhittedIntegrator {
	return &WhittedIntegrator{config: config}
}

// Config returns the integrator's parameters
func (wi *WhittedIntegrator) Config() WhittedConfig {
	return wi.config
}

// Counts returns the rays traced since the last reset
func (wi *WhittedIntegrator) Counts() RayCounts {
	return wi.counts
}

// ResetCounts zeroes the ray tallies
func (wi *WhittedIntegrator) ResetCounts() {
	wi.counts = RayCounts{}
}

// RayColor casts a primary ray
func (wi *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene) core.Vec3 {
	return wi.CastRay(ray, s, 0)
}

// CastRay returns the color seen along ray at the given recursion depth. The
// direction must be unit length. The result is not clamped.
func (wi *WhittedIntegrator) CastRay(ray core.Ray, s *scene.Scene, depth int) core.Vec3 {
	if depth > wi.config.MaxDepth {
		return wi.config.Background
	}

	if depth == 0 {
		wi.counts.Primary++
	} else {
		wi.counts.Secondary++
	}

	hit, isHit := s.Intersect(ray, wi.config.MaxDistance)
	if !isHit {
		return wi.config.Background
	}

	dir := ray.Direction
	mat := hit.Material

	// The diffuse-only model never uses the secondary colors, so it does not trace them
	var reflectColor, refractColor core.Vec3
	if wi.config.Shading != ShadingNone {
		reflectColor = wi.traceReflection(dir, hit.Point, hit.Normal, s, depth)
		refractColor = wi.traceRefraction(dir, hit.Point, hit.Normal, mat.RefractiveIndex, s, depth)
	}

	diffuse, specular := 0.0, 0.0
	for _, light := range s.Lights {
		lightDir, lightDist := light.Sample(hit.Point)
		if wi.occluded(hit.Point, hit.Normal, lightDir, lightDist, s) {
			continue
		}

		diffuse += light.Intensity * math.Max(0, lightDir.Dot(hit.Normal))

		switch wi.config.Shading {
		case ShadingPhong:
			mirrored := material.Reflect(lightDir.Negate(), hit.Normal).Negate()
			specular += math.Pow(math.Max(0, mirrored.Dot(dir)), mat.SpecularExponent) * light.Intensity
		case ShadingBlinnPhong:
			half := lightDir.Subtract(dir).Normalize()
			specular += math.Pow(math.Max(0, half.Dot(hit.Normal)), mat.SpecularExponent) * light.Intensity
		}
	}

	color := mat.DiffuseColor.Multiply(diffuse).Multiply(mat.DiffuseWeight())
	if wi.config.Shading == ShadingNone {
		return color
	}
	return color.
		Add(core.NewVec3(1, 1, 1).Multiply(specular).Multiply(mat.SpecularWeight())).
		Add(reflectColor.Multiply(mat.ReflectionWeight())).
		Add(refractColor.Multiply(mat.RefractionWeight()))
}

func (wi *WhittedIntegrator) traceReflection(dir, point, normal core.Vec3, s *scene.Scene, depth int) core.Vec3 {
	reflectDir := material.Reflect(dir, normal).Normalize()
	origin := OffsetOrigin(point, reflectDir, normal, wi.config.SurfaceEpsilon)
	return wi.CastRay(core.NewRay(origin, reflectDir), s, depth+1)
}

// traceRefraction returns black on total internal reflection
func (wi *WhittedIntegrator) traceRefraction(dir, point, normal core.Vec3, index float64, s *scene.Scene, depth int) core.Vec3 {
	refracted, ok := material.Refract(dir, normal, index, 1.0)
	if !ok {
		return core.Vec3{}
	}
	refractDir := refracted.Normalize()
	origin := OffsetOrigin(point, refractDir, normal, wi.config.SurfaceEpsilon)
	return wi.CastRay(core.NewRay(origin, refractDir), s, depth+1)
}

// occluded reports whether any shape lies between point and a light at lightDist
func (wi *WhittedIntegrator) occluded(point, normal, lightDir core.Vec3, lightDist float64, s *scene.Scene) bool {
	wi.counts.Shadow++
	origin := OffsetOrigin(point, lightDir, normal, wi.config.ShadowEpsilon)
	hit, isHit := s.Intersect(core.NewRay(origin, lightDir), wi.config.MaxDistance)
	return isHit && hit.Point.Subtract(origin).Length() < lightDist
}

// OffsetOrigin moves point off the surface by eps along the normal, onto the side
// that direction leaves toward.
func OffsetOrigin(point, direction, normal core.Vec3, eps float64) core.Vec3 {
	if direction.Dot(normal) < 0 {
		return point.Subtract(normal.Multiply(eps))
	}
	return point.Add(normal.Multiply(eps))
}
