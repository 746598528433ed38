package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ScanlineTask asks a worker to render one row of the framebuffer
type ScanlineTask struct {
	Row int
}

// ScanlineResult contains the result from rendering a row
type ScanlineResult struct {
	Row   int
	Stats integrator.RayCounts
	Error error
}

// WorkerPool manages parallel scanline rendering
type WorkerPool struct {
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders rows with its own integrator. Rows are disjoint, so workers
// write to the shared framebuffer without locking.
type Worker struct {
	ID          int
	integrator  *integrator.WhittedIntegrator
	scene       *scene.Scene
	camera      *Camera
	framebuffer *Framebuffer
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(s *scene.Scene, camera *Camera, fb *Framebuffer, config integrator.WhittedConfig, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ScanlineTask, fb.Height),   // Buffer for every row
		resultQueue: make(chan ScanlineResult, fb.Height), // Buffer for every result
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			integrator:  integrator.NewWhittedIntegrator(config),
			scene:       s,
			camera:      camera,
			framebuffer: fb,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. Rows submitted after ctx is cancelled are reported
// with ctx's error instead of being rendered.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row to the worker pool
func (wp *WorkerPool) SubmitTask(task ScanlineTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (ScanlineResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			w.resultQueue <- ScanlineResult{Row: task.Row, Error: err}
			continue
		}

		w.integrator.ResetCounts()
		renderRow(w.integrator, w.scene, w.camera, w.framebuffer, task.Row)

		w.resultQueue <- ScanlineResult{
			Row:   task.Row,
			Stats: w.integrator.Counts(),
		}
	}
}

// renderRow fills row j of the framebuffer
func renderRow(wi *integrator.WhittedIntegrator, s *scene.Scene, camera *Camera, fb *Framebuffer, j int) {
	for i := 0; i < fb.Width; i++ {
		fb.Set(i, j, wi.RayColor(camera.GetRay(i, j), s))
	}
}
