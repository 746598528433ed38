package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName string
	file      string
	width     int
	height    int
	fovDeg    float64
	depth     int
	shading   string
	workers   int
	output    string
	format    string
	strict    bool
}

func main() {
	defaults := renderer.DefaultConfig()

	// Parse command line flags
	var opts options
	flag.StringVar(&opts.sceneName, "scene", "default", "Built-in scene name (ignored when -file is set)")
	flag.StringVar(&opts.file, "file", "", "Scene description file (delimited text)")
	flag.IntVar(&opts.width, "width", defaults.Width, "Image width in pixels")
	flag.IntVar(&opts.height, "height", defaults.Height, "Image height in pixels")
	flag.Float64Var(&opts.fovDeg, "fov", defaults.FOV*180/math.Pi, "Vertical field of view in degrees")
	flag.IntVar(&opts.depth, "depth", defaults.MaxDepth, "Maximum recursion depth")
	flag.StringVar(&opts.shading, "shading", defaults.Shading.String(), "Shading model: None, Phong or Blinn-Phong")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.StringVar(&opts.output, "output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	flag.StringVar(&opts.format, "format", "ppm", "Output format: ppm or png")
	flag.BoolVar(&opts.strict, "strict", false, "Reject unknown materials and record kinds in scene files")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		printHelp()
		return
	}

	if err := run(opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-9s - %s\n", info.Name, info.Description)
	}
	fmt.Println()
	fmt.Println("Scene files hold a header line followed by rows such as:")
	fmt.Println("  Sphere,x,y,z,radius,material")
	fmt.Println("  Cube,cx,cy,cz,material,side,rx,ry,rz")
	fmt.Println("  Parallelepiped,cx,cy,cz,material,sx,sy,sz,rx,ry,rz")
	fmt.Println("  Plane,nx,ny,nz,distance,material")
	fmt.Println("  Checkerboard,nx,ny,nz,distance,material1,material2,tile")
	fmt.Println("  Lights,x,y,z,intensity")
}

func run(opts options) error {
	fmt.Println("Starting Whitted Raytracer...")
	logger := renderer.NewDefaultLogger()

	config, err := buildConfig(opts)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	selectedScene, name, err := createScene(opts, logger)
	if err != nil {
		return err
	}
	fmt.Printf("Using %s scene (%d shapes, %d lights)...\n", name, len(selectedScene.Shapes), len(selectedScene.Lights))

	raytracer, err := renderer.NewRaytracer(selectedScene, config, logger)
	if err != nil {
		return err
	}
	fb, stats, err := raytracer.Render(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Rays per pixel: %.1f\n", stats.RaysPerPixel())

	filename := opts.output
	if filename == "" {
		outputDir := filepath.Join("output", name)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format))
	}

	if err := output.Save(filename, fb, format); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// buildConfig converts command line options into a validated render config
func buildConfig(opts options) (renderer.Config, error) {
	shading, err := integrator.ParseShadingModel(opts.shading)
	if err != nil {
		return renderer.Config{}, err
	}

	config := renderer.DefaultConfig()
	config.Width = opts.width
	config.Height = opts.height
	config.FOV = opts.fovDeg * math.Pi / 180
	config.MaxDepth = opts.depth
	config.Shading = shading
	config.NumWorkers = opts.workers

	if err := config.Validate(); err != nil {
		return renderer.Config{}, err
	}
	return config, nil
}

// createScene loads the scene file when one is given, otherwise the named built-in
// scene. The returned name is used for the output directory.
func createScene(opts options, logger core.Logger) (*scene.Scene, string, error) {
	if opts.file == "" {
		s, err := scene.NewBuiltinScene(opts.sceneName)
		if err != nil {
			return nil, "", err
		}
		return s, opts.sceneName, nil
	}

	loadOpts := loaders.DefaultOptions()
	loadOpts.Logger = logger
	if opts.strict {
		loadOpts.UnknownMaterial = loaders.PolicyReject
		loadOpts.UnknownKind = loaders.PolicyReject
	}

	s, err := loaders.LoadScene(opts.file, loadOpts)
	if err != nil {
		return nil, "", err
	}
	name := strings.TrimSuffix(filepath.Base(opts.file), filepath.Ext(opts.file))
	return s, name, nil
}
