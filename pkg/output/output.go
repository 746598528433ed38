package output

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// ErrUnknownFormat is returned for output formats other than ppm and png
var ErrUnknownFormat = errors.New("unknown output format")

// Format names an image file format
type Format string

const (
	FormatPPM Format = "ppm" // Binary portable pixmap (P6)
	FormatPNG Format = "png"
)

// ParseFormat converts a case-insensitive format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatPPM, FormatPNG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// WritePPM writes the framebuffer as a binary PPM: a "P6\n<w> <h>\n255\n" header
// followed by three bytes per pixel, top row first.
func WritePPM(w io.Writer, fb *renderer.Framebuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return fmt.Errorf("error writing PPM header: %w", err)
	}
	if _, err := bw.Write(fb.RGB()); err != nil {
		return fmt.Errorf("error writing PPM pixels: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error writing PPM pixels: %w", err)
	}
	return nil
}

// WritePNG encodes the framebuffer as an opaque PNG
func WritePNG(w io.Writer, fb *renderer.Framebuffer) error {
	if err := png.Encode(w, fb.ToImage()); err != nil {
		return fmt.Errorf("error encoding PNG: %w", err)
	}
	return nil
}

// Write encodes the framebuffer in the given format
func Write(w io.Writer, fb *renderer.Framebuffer, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, fb)
	case FormatPNG:
		return WritePNG(w, fb)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}

// Save writes the framebuffer to filename. The file is closed on every path and a
// close failure is reported when nothing failed earlier.
func Save(filename string, fb *renderer.Framebuffer, format Format) (err error) {
	format, err = ParseFormat(string(format))
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing %s: %w", filename, cerr)
		}
	}()

	return Write(file, fb, format)
}

// SavePPM writes the framebuffer to filename as a binary PPM
func SavePPM(filename string, fb *renderer.Framebuffer) error {
	return Save(filename, fb, FormatPPM)
}

// SavePNG writes the framebuffer to filename as a PNG
func SavePNG(filename string, fb *renderer.Framebuffer) error {
	return Save(filename, fb, FormatPNG)
}
