package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate
var ErrInvalidConfig = errors.New("invalid render config")

// Config contains rendering configuration
type Config struct {
	Width          int                     // Image width in pixels
	Height         int                     // Image height in pixels
	FOV            float64                 // Vertical field of view in radians
	MaxDepth       int                     // Maximum recursion depth
	Background     core.Vec3               // Color of rays that hit nothing
	Shading        integrator.ShadingModel // Specular model
	ShadowEpsilon  float64                 // Shadow probe origin offset
	SurfaceEpsilon float64                 // Reflection/refraction origin offset
	MaxDistance    float64                 // Ray range; hits at or beyond are ignored
	NumWorkers     int                     // Number of parallel workers (0 = auto-detect CPU count)
}

// DefaultConfig returns the reference rendering parameters
func DefaultConfig() Config {
	return Config{
		Width:          1024,
		Height:         768,
		FOV:            math.Pi / 2,
		MaxDepth:       4,
		Background:     core.NewVec3(0.2, 0.7, 0.8),
		Shading:        integrator.ShadingNone,
		ShadowEpsilon:  1e-3,
		SurfaceEpsilon: 1e-3,
		MaxDistance:    scene.DefaultMaxDistance,
		NumWorkers:     0,
	}
}

// Validate reports the first unusable setting
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case !(c.FOV > 0 && c.FOV < math.Pi):
		return fmt.Errorf("%w: field of view %g must be in (0, pi)", ErrInvalidConfig, c.FOV)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d is negative", ErrInvalidConfig, c.MaxDepth)
	case c.ShadowEpsilon < 0 || c.SurfaceEpsilon < 0:
		return fmt.Errorf("%w: epsilons must not be negative", ErrInvalidConfig)
	case !(c.MaxDistance > 0):
		return fmt.Errorf("%w: max distance %g must be positive", ErrInvalidConfig, c.MaxDistance)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count %d is negative", ErrInvalidConfig, c.NumWorkers)
	}
	switch c.Shading {
	case integrator.ShadingNone, integrator.ShadingPhong, integrator.ShadingBlinnPhong:
	default:
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.Shading)
	}
	return nil
}

// WhittedConfig extracts the integrator parameters
func (c Config) WhittedConfig() integrator.WhittedConfig {
	return integrator.WhittedConfig{
		MaxDepth:       c.MaxDepth,
		Background:     c.Background,
		Shading:        c.Shading,
		ShadowEpsilon:  c.ShadowEpsilon,
		SurfaceEpsilon: c.SurfaceEpsilon,
		MaxDistance:    c.MaxDistance,
	}
}
