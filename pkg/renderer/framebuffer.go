package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Framebuffer holds unclamped pixel colors in row-major order, top row first
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (i, j)
func (f *Framebuffer) At(i, j int) core.Vec3 {
	return f.Pixels[i+j*f.Width]
}

// Set stores the color of pixel (i, j)
func (f *Framebuffer) Set(i, j int, c core.Vec3) {
	f.Pixels[i+j*f.Width] = c
}

// RGB returns three bytes per pixel in row-major order
func (f *Framebuffer) RGB() []byte {
	buf := make([]byte, 0, 3*len(f.Pixels))
	for _, p := range f.Pixels {
		buf = append(buf, ChannelByte(p.X), ChannelByte(p.Y), ChannelByte(p.Z))
	}
	return buf
}

// ToImage converts the framebuffer to an opaque RGBA image
func (f *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for j := 0; j < f.Height; j++ {
		for i := 0; i < f.Width; i++ {
			p := f.At(i, j)
			img.SetRGBA(i, j, color.RGBA{
				R: ChannelByte(p.X),
				G: ChannelByte(p.Y),
				B: ChannelByte(p.Z),
				A: 255,
			})
		}
	}
	return img
}

// ChannelByte clamps v to [0, 1] and scales it to [0, 255], truncating.
// NaN maps to 255.
func ChannelByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if !(v <= 1) {
		return 255
	}
	return uint8(255 * v)
}
