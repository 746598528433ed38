package loaders

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

const fullScene = `type,a,b,c,d,e,f,g,h,i,j
Sphere,-3,0,-16,2,ivory
# boxes
Cube,0,0,-5,red_rubber,2,0,0,0
Parallelepiped,0,0,-10,glass,2,4,6,0,0,90

Plane,0,1,0,-4,mirror
Checkerboard,0,1,0,-4,white,black,2
Lights,-20,20,20,1.5
`

func TestParseScene_AllKinds(t *testing.T) {
	s, err := ParseScene(strings.NewReader(fullScene), DefaultOptions())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(s.Shapes) != 5 {
		t.Fatalf("Expected 5 shapes, got %d", len(s.Shapes))
	}
	if len(s.Lights) != 1 {
		t.Fatalf("Expected 1 light, got %d", len(s.Lights))
	}

	sphere, ok := s.Shapes[0].(*geometry.Sphere)
	if !ok {
		t.Fatalf("Expected sphere, got %T", s.Shapes[0])
	}
	if sphere.Center != core.NewVec3(-3, 0, -16) || sphere.Radius != 2 || sphere.Material != material.Ivory() {
		t.Errorf("Unexpected sphere %+v", sphere)
	}

	cube, ok := s.Shapes[1].(*geometry.AxisAlignedBox)
	if !ok {
		t.Fatalf("Expected an axis-aligned box for an unrotated cube, got %T", s.Shapes[1])
	}
	if cube.Min != core.NewVec3(-1, -1, -6) || cube.Size != core.NewVec3(2, 2, 2) {
		t.Errorf("Unexpected cube min=%v size=%v", cube.Min, cube.Size)
	}

	box, ok := s.Shapes[2].(*geometry.OrientedBox)
	if !ok {
		t.Fatalf("Expected an oriented box for a rotated parallelepiped, got %T", s.Shapes[2])
	}
	if box.Position() != core.NewVec3(0, 0, -10) || box.Size() != core.NewVec3(2, 4, 6) {
		t.Errorf("Unexpected box center=%v size=%v", box.Position(), box.Size())
	}
	if math.Abs(box.Rotation().Z-math.Pi/2) > 1e-12 {
		t.Errorf("Expected 90 degrees converted to radians, got %v", box.Rotation())
	}

	plane, ok := s.Shapes[3].(*geometry.Plane)
	if !ok {
		t.Fatalf("Expected plane, got %T", s.Shapes[3])
	}
	if plane.Distance != -4 || plane.Material != material.Mirror() {
		t.Errorf("Unexpected plane %+v", plane)
	}

	checker, ok := s.Shapes[4].(*geometry.CheckerboardPlane)
	if !ok {
		t.Fatalf("Expected checkerboard, got %T", s.Shapes[4])
	}
	white, _ := material.Lookup("white")
	black, _ := material.Lookup("black")
	if checker.MaterialAt(core.NewVec3(0.5, -4, 0.5)) != white || checker.MaterialAt(core.NewVec3(2.5, -4, 0.5)) != black {
		t.Error("Expected white and black tiles")
	}

	if s.Lights[0].Position != core.NewVec3(-20, 20, 20) || s.Lights[0].Intensity != 1.5 {
		t.Errorf("Unexpected light %+v", s.Lights[0])
	}
}

func TestParseScene_HeaderOnly(t *testing.T) {
	s, err := ParseScene(strings.NewReader("kind,x,y,z\n"), DefaultOptions())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(s.Shapes) != 0 || len(s.Lights) != 0 {
		t.Errorf("Expected empty scene, got %d shapes and %d lights", len(s.Shapes), len(s.Lights))
	}
}

func TestParseScene_UnknownMaterial(t *testing.T) {
	input := "header\nSphere,0,0,-5,1,plutonium\n"

	t.Run("default", func(t *testing.T) {
		logger := &recordingLogger{}
		opts := DefaultOptions()
		opts.Logger = logger

		s, err := ParseScene(strings.NewReader(input), opts)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got := s.Shapes[0].MaterialAt(core.Vec3{}); got != material.Zero() {
			t.Errorf("Expected zero material, got %+v", got)
		}
		if len(logger.lines) != 1 || !strings.Contains(logger.lines[0], `line 2: unknown material "plutonium"`) {
			t.Errorf("Unexpected log %q", logger.lines)
		}
	})

	t.Run("reject", func(t *testing.T) {
		opts := DefaultOptions()
		opts.UnknownMaterial = PolicyReject

		s, err := ParseScene(strings.NewReader(input), opts)
		if s != nil {
			t.Error("Expected no scene on error")
		}
		if !errors.Is(err, ErrUnknownMaterial) {
			t.Fatalf("Expected ErrUnknownMaterial, got %v", err)
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) || parseErr.Line != 2 || parseErr.Kind != "Sphere" {
			t.Errorf("Expected ParseError at line 2, got %v", err)
		}
	})
}

func TestParseScene_UnknownKind(t *testing.T) {
	input := "header\nTorus,0,0,-5,1,0.5,ivory\nLights,0,10,0,1\n"

	t.Run("skip", func(t *testing.T) {
		logger := &recordingLogger{}
		opts := DefaultOptions()
		opts.Logger = logger

		s, err := ParseScene(strings.NewReader(input), opts)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(s.Shapes) != 0 || len(s.Lights) != 1 {
			t.Errorf("Expected the torus skipped and the light kept, got %d shapes and %d lights", len(s.Shapes), len(s.Lights))
		}
		if len(logger.lines) != 1 || !strings.Contains(logger.lines[0], `"Torus"`) {
			t.Errorf("Unexpected log %q", logger.lines)
		}
	})

	t.Run("reject", func(t *testing.T) {
		opts := DefaultOptions()
		opts.UnknownKind = PolicyReject

		_, err := ParseScene(strings.NewReader(input), opts)
		if !errors.Is(err, ErrUnknownKind) {
			t.Errorf("Expected ErrUnknownKind, got %v", err)
		}
	})
}

func TestParseScene_MalformedRows(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		line     int
		expected error
	}{
		{"missing radius", "h\nSphere,0,0,-5\n", 2, ErrMissingField},
		{"missing material", "h\nLights,0,0,0,1\nSphere,0,0,-5,1\n", 3, ErrMissingField},
		{"missing rotation", "h\nCube,0,0,-5,ivory,2,0,0\n", 2, ErrMissingField},
		{"missing tile", "h\nCheckerboard,0,1,0,-4,white,black\n", 2, ErrMissingField},
		{"missing intensity", "h\n\nLights,1,2,3\n", 3, ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene(strings.NewReader(tt.input), DefaultOptions())
			if !errors.Is(err, tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, err)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Expected *ParseError, got %T", err)
			}
			if parseErr.Line != tt.line {
				t.Errorf("Expected line %d, got %d", tt.line, parseErr.Line)
			}
		})
	}
}

func TestParseScene_InvalidNumber(t *testing.T) {
	_, err := ParseScene(strings.NewReader("h\nSphere,0,zero,-5,1,ivory\n"), DefaultOptions())

	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("Expected a wrapped *strconv.NumError, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2 (Sphere)") || !strings.Contains(err.Error(), "center y") {
		t.Errorf("Expected the row and field in the message, got %q", err.Error())
	}
}

func TestParseScene_CustomDelimiter(t *testing.T) {
	opts := DefaultOptions()
	opts.Comma = ';'

	s, err := ParseScene(strings.NewReader("h\nsphere; 1; 2; 3; 0.5; Glass\n"), opts)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	sphere := s.Shapes[0].(*geometry.Sphere)
	if sphere.Center != core.NewVec3(1, 2, 3) || sphere.Material != material.Glass() {
		t.Errorf("Unexpected sphere %+v", sphere)
	}
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.csv")
	if err := os.WriteFile(path, []byte(fullScene), 0o644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}

	s, err := LoadScene(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.GetPrimitiveCount() != 5 {
		t.Errorf("Expected 5 shapes, got %d", s.GetPrimitiveCount())
	}

	if _, err := LoadScene(filepath.Join(t.TempDir(), "missing.csv"), DefaultOptions()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}
