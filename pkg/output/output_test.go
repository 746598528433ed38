package output

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

func testFramebuffer() *renderer.Framebuffer {
	fb := renderer.NewFramebuffer(2, 1)
	fb.Set(0, 0, core.NewVec3(1, 0.5, -3))
	fb.Set(1, 0, core.NewVec3(0.2, 0.7, 7))
	return fb
}

// failingWriter accepts limit bytes and then fails
type failingWriter struct {
	limit int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, errors.New("disk full")
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, testFramebuffer()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := append([]byte("P6\n2 1\n255\n"), 255, 127, 0, 51, 178, 255)
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("Expected %q, got %q", expected, buf.Bytes())
	}
}

func TestWritePPM_WriteError(t *testing.T) {
	err := WritePPM(&failingWriter{limit: 4}, testFramebuffer())
	if err == nil {
		t.Fatal("Expected write error")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, testFramebuffer()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	r, g, b, a := img.At(1, 0).RGBA()
	if r>>8 != 51 || g>>8 != 178 || b>>8 != 255 || a>>8 != 255 {
		t.Errorf("Unexpected pixel (%d, %d, %d, %d)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	for _, format := range []Format{FormatPPM, FormatPNG} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(dir, "render."+string(format))
			if err := Save(path, testFramebuffer(), format); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("Failed to read output: %v", err)
			}
			var buf bytes.Buffer
			if err := Write(&buf, testFramebuffer(), format); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !bytes.Equal(data, buf.Bytes()) {
				t.Error("File contents differ from the in-memory encoding")
			}
		})
	}
}

func TestSave_Errors(t *testing.T) {
	dir := t.TempDir()

	if err := SavePPM(filepath.Join(dir, "missing", "render.ppm"), testFramebuffer()); err == nil {
		t.Error("Expected an error for a missing directory")
	}

	path := filepath.Join(dir, "render.gif")
	if err := Save(path, testFramebuffer(), Format("gif")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Error("No file should be created for an unknown format")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"ppm", FormatPPM, false},
		{"PNG", FormatPNG, false},
		{"jpeg", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if tt.wantErr != (err != nil) {
				t.Fatalf("Unexpected error state: %v", err)
			}
			if format != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, format)
			}
		})
	}
}
