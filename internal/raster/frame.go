package raster

import (
	"image"
	"image/color"
	"math"
)

// Frame is one S×S grid of intensities in [0,1], row-major from the top.
type Frame struct {
	Size int
	Pix  []float32
}

// NewFrame allocates a black s×s frame.
func NewFrame(s int) *Frame {
	if s < 0 {
		s = 0
	}
	return &Frame{Size: s, Pix: make([]float32, s*s)}
}

func (f *Frame) At(x, y int) color.Color {
	return color.Gray{Y: f.Gray(x, y)}
}

// Intensity returns the value at (x, y), 0 outside the frame.
func (f *Frame) Intensity(x, y int) float32 {
	if x < 0 || y < 0 || x >= f.Size || y >= f.Size {
		return 0
	}
	return f.Pix[y*f.Size+x]
}

// Gray quantizes the intensity at (x, y) to 8 bits.
func (f *Frame) Gray(x, y int) uint8 {
	return uint8(math.Round(float64(f.Intensity(x, y)) * 255))
}

func (f *Frame) Bounds() image.Rectangle { return image.Rect(0, 0, f.Size, f.Size) }

func (f *Frame) ColorModel() color.Model { return color.GrayModel }

// Matches counts pixels at full intensity, the lit part of a highlight mask.
func (f *Frame) Matches() int {
	n := 0
	for _, v := range f.Pix {
		if v == 1.0 {
			n++
		}
	}
	return n
}
