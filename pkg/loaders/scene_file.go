package loaders

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var (
	// ErrUnknownMaterial is returned for material names outside the palette under PolicyReject
	ErrUnknownMaterial = errors.New("unknown material")
	// ErrUnknownKind is returned for unrecognized record kinds under PolicyReject
	ErrUnknownKind = errors.New("unknown record kind")
	// ErrMissingField is returned when a row has fewer fields than its kind needs
	ErrMissingField = errors.New("missing field")
)

// Policy decides what happens to unrecognized names in a scene file
type Policy int

const (
	// PolicyDefault logs and continues: unknown materials become the zero material
	// and unknown record kinds are skipped
	PolicyDefault Policy = iota
	// PolicyReject aborts the load
	PolicyReject
)

// Options controls scene file parsing
type Options struct {
	Comma           rune        // Field delimiter
	UnknownMaterial Policy      // Handling of material names missing from the palette
	UnknownKind     Policy      // Handling of unrecognized first fields
	Logger          core.Logger // Receives notes about defaulted or skipped rows; may be nil
}

// DefaultOptions returns comma-delimited parsing that defaults unknown
// materials and skips unknown rows
func DefaultOptions() Options {
	return Options{
		Comma:           ',',
		UnknownMaterial: PolicyDefault,
		UnknownKind:     PolicyDefault,
	}
}

// ParseError identifies the row that failed to load
type ParseError struct {
	Line int    // 1-based line number in the input
	Kind string // First field of the row
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadScene loads and parses a scene file
func LoadScene(filename string, opts Options) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	return ParseScene(file, opts)
}

// ParseScene reads a header line followed by one record per row. Supported rows
// (angles in degrees):
//
//	Sphere,x,y,z,radius,material
//	Cube,cx,cy,cz,material,side,rx,ry,rz
//	Parallelepiped,cx,cy,cz,material,sx,sy,sz,rx,ry,rz
//	Plane,nx,ny,nz,distance,material
//	Checkerboard,nx,ny,nz,distance,material1,material2,tile
//	Lights,x,y,z,intensity
//
// Any malformed row aborts the load with a *ParseError.
func ParseScene(reader io.Reader, opts Options) (*scene.Scene, error) {
	r := csv.NewReader(reader)
	r.Comma = opts.Comma
	if r.Comma == 0 {
		r.Comma = ','
	}
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	p := &sceneParser{
		builder: scene.NewBuilder(),
		opts:    opts,
	}

	header := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading scene: %w", err)
		}
		if header {
			header = false
			continue
		}

		line, _ := r.FieldPos(0)
		if err := p.parseRecord(line, record); err != nil {
			return nil, err
		}
	}

	return p.builder.Build(), nil
}

type sceneParser struct {
	builder *scene.Builder
	opts    Options
}

// recordParser reads typed fields from one row and remembers the first failure
type recordParser struct {
	fields []string
	err    error
}

func (rp *recordParser) float(i int, name string) float64 {
	if rp.err != nil {
		return 0
	}
	if i >= len(rp.fields) {
		rp.err = fmt.Errorf("%w: %s (column %d)", ErrMissingField, name, i+1)
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rp.fields[i]), 64)
	if err != nil {
		rp.err = fmt.Errorf("invalid %s '%s': %w", name, rp.fields[i], err)
		return 0
	}
	return v
}

func (rp *recordParser) vec3(i int, name string) core.Vec3 {
	return core.NewVec3(rp.float(i, name+" x"), rp.float(i+1, name+" y"), rp.float(i+2, name+" z"))
}

// radians reads three angles in degrees
func (rp *recordParser) radians(i int) core.Vec3 {
	deg := rp.vec3(i, "rotation")
	return deg.Multiply(math.Pi / 180)
}

func (rp *recordParser) text(i int, name string) string {
	if rp.err != nil {
		return ""
	}
	if i >= len(rp.fields) {
		rp.err = fmt.Errorf("%w: %s (column %d)", ErrMissingField, name, i+1)
		return ""
	}
	return strings.TrimSpace(rp.fields[i])
}

func (p *sceneParser) parseRecord(line int, record []string) error {
	kind := strings.TrimSpace(record[0])
	rp := &recordParser{fields: record}
	wrap := func(err error) error {
		return &ParseError{Line: line, Kind: kind, Err: err}
	}

	var add func() error
	switch strings.ToLower(kind) {
	case "sphere":
		center := rp.vec3(1, "center")
		radius := rp.float(4, "radius")
		name := rp.text(5, "material")
		add = func() error {
			mat, err := p.material(line, name)
			if err != nil {
				return err
			}
			p.builder.AddSphere(center, radius, mat)
			return nil
		}
	case "cube":
		center := rp.vec3(1, "center")
		name := rp.text(4, "material")
		side := rp.float(5, "side")
		rotation := rp.radians(6)
		add = func() error {
			mat, err := p.material(line, name)
			if err != nil {
				return err
			}
			p.addBox(center, core.NewVec3(side, side, side), rotation, mat)
			return nil
		}
	case "parallelepiped":
		center := rp.vec3(1, "center")
		name := rp.text(4, "material")
		size := rp.vec3(5, "size")
		rotation := rp.radians(8)
		add = func() error {
			mat, err := p.material(line, name)
			if err != nil {
				return err
			}
			p.addBox(center, size, rotation, mat)
			return nil
		}
	case "plane":
		normal := rp.vec3(1, "normal")
		distance := rp.float(4, "distance")
		name := rp.text(5, "material")
		add = func() error {
			mat, err := p.material(line, name)
			if err != nil {
				return err
			}
			p.builder.AddPlane(normal, distance, mat)
			return nil
		}
	case "checkerboard":
		normal := rp.vec3(1, "normal")
		distance := rp.float(4, "distance")
		evenName := rp.text(5, "material1")
		oddName := rp.text(6, "material2")
		tile := rp.float(7, "tile size")
		add = func() error {
			even, err := p.material(line, evenName)
			if err != nil {
				return err
			}
			odd, err := p.material(line, oddName)
			if err != nil {
				return err
			}
			p.builder.AddCheckerboard(normal, distance, even, odd, tile)
			return nil
		}
	case "lights", "light":
		position := rp.vec3(1, "position")
		intensity := rp.float(4, "intensity")
		add = func() error {
			p.builder.AddLight(position, intensity)
			return nil
		}
	default:
		if p.opts.UnknownKind == PolicyReject {
			return wrap(fmt.Errorf("%w: %q", ErrUnknownKind, kind))
		}
		p.logf("line %d: skipping unknown record kind %q\n", line, kind)
		return nil
	}

	if rp.err != nil {
		return wrap(rp.err)
	}
	if err := add(); err != nil {
		return wrap(err)
	}
	return nil
}

// addBox keeps unrotated boxes axis-aligned
func (p *sceneParser) addBox(center, size, rotation core.Vec3, mat material.Material) {
	if rotation == (core.Vec3{}) {
		p.builder.AddBox(center.Subtract(size.Multiply(0.5)), size, mat)
		return
	}
	p.builder.AddOrientedBox(center, size, rotation, mat)
}

func (p *sceneParser) material(line int, name string) (material.Material, error) {
	if mat, ok := material.Lookup(strings.ToLower(name)); ok {
		return mat, nil
	}
	if p.opts.UnknownMaterial == PolicyReject {
		return material.Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	p.logf("line %d: unknown material %q, using zero material\n", line, name)
	return material.Zero(), nil
}

func (p *sceneParser) logf(format string, args ...interface{}) {
	if p.opts.Logger != nil {
		p.opts.Logger.Printf(format, args...)
	}
}
