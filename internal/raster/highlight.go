package raster

import "bitty/internal/bytestore"

// ReferencePolicy selects how the highlighted value is derived from the
// pointer while the primary button is held.
type ReferencePolicy int

const (
	// SampleUnderPointer reads the byte under the pointer through Sample.
	SampleUnderPointer ReferencePolicy = iota
	// PointerXScale scales the pointer X across the canvas width to 0..255
	// and ignores Y.
	PointerXScale
)

func (p ReferencePolicy) String() string {
	switch p {
	case SampleUnderPointer:
		return "sample"
	case PointerXScale:
		return "x-scale"
	}
	return "unknown"
}

// Next cycles to the other policy.
func (p ReferencePolicy) Next() ReferencePolicy {
	if p == SampleUnderPointer {
		return PointerXScale
	}
	return SampleUnderPointer
}

// Reference returns the value every pixel is compared against.
func Reference(words bytestore.WordView, s int, ptr PointerState, policy ReferencePolicy) uint8 {
	if s <= 0 {
		return 0
	}
	switch policy {
	case PointerXScale:
		v := ptr.X / float64(s) * 255
		if v <= 0 {
			return 0
		}
		if v >= 255 {
			return 255
		}
		return uint8(v)
	default:
		px, py := ptr.Pixel()
		return Sample(words, s, px, py)
	}
}

// Evaluate returns the displayed intensity of a pixel holding value. Inactive
// pointers give plain grayscale, active ones a binary equality mask.
func Evaluate(value, ref uint8, active bool) float32 {
	if !active {
		return float32(value) / 255.0
	}
	if value == ref {
		return 1.0
	}
	return 0.0
}
