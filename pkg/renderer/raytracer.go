package renderer

import (
	"context"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Raytracer renders a scene with one primary ray per pixel
type Raytracer struct {
	scene  *scene.Scene
	config Config
	camera *Camera
	logger core.Logger
}

// NewRaytracer validates the configuration and creates a raytracer. A nil logger
// discards log output.
func NewRaytracer(s *scene.Scene, config Config, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Raytracer{
		scene:  s,
		config: config,
		camera: NewCamera(config.Width, config.Height, config.FOV),
		logger: logger,
	}, nil
}

// Camera returns the camera used for primary rays
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Render traces every pixel in parallel, one row per task. The scene must not be
// modified until Render returns. On cancellation the partially filled framebuffer
// is returned together with ctx's error.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	start := time.Now()
	fb := NewFramebuffer(rt.config.Width, rt.config.Height)

	pool := NewWorkerPool(rt.scene, rt.camera, fb, rt.config.WhittedConfig(), rt.config.NumWorkers)
	rt.logger.Printf("Rendering %dx%d with %s shading (using %d workers)...\n",
		fb.Width, fb.Height, rt.config.Shading, pool.GetNumWorkers())

	pool.Start(ctx)
	for j := 0; j < fb.Height; j++ {
		pool.SubmitTask(ScanlineTask{Row: j})
	}

	stats := RenderStats{
		TotalPixels: fb.Width * fb.Height,
		NumWorkers:  pool.GetNumWorkers(),
	}
	var firstErr error
	for j := 0; j < fb.Height; j++ {
		result, _ := pool.GetResult()
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.Rays = stats.Rays.Add(result.Stats)
	}
	pool.Stop()

	stats.Elapsed = time.Since(start)
	if firstErr != nil {
		rt.logger.Printf("Rendering cancelled: %v\n", firstErr)
		return fb, stats, firstErr
	}

	rt.logger.Printf("Render completed in %v (%d primary, %d secondary, %d shadow rays)\n",
		stats.Elapsed, stats.Rays.Primary, stats.Rays.Secondary, stats.Rays.Shadow)
	return fb, stats, nil
}

// RenderSerial traces every pixel on the calling goroutine
func (rt *Raytracer) RenderSerial() (*Framebuffer, RenderStats) {
	start := time.Now()
	fb := NewFramebuffer(rt.config.Width, rt.config.Height)
	wi := integrator.NewWhittedIntegrator(rt.config.WhittedConfig())

	for j := 0; j < fb.Height; j++ {
		renderRow(wi, rt.scene, rt.camera, fb, j)
	}

	return fb, RenderStats{
		TotalPixels: fb.Width * fb.Height,
		Rays:        wi.Counts(),
		NumWorkers:  1,
		Elapsed:     time.Since(start),
	}
}
