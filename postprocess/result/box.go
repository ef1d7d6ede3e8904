package result

import (
	"fmt"
	"image"
	"math"
)

// Format is the representation the four Box coordinates are stored in
type Format int

const (
	// FormatXYXY stores (x0, y0, x1, y1) corner coordinates
	FormatXYXY Format = iota
	// FormatXYWH stores (x, y, width, height)
	FormatXYWH
)

// String returns a readable name of the box format
func (f Format) String() string {
	switch f {
	case FormatXYXY:
		return "xyxy"
	case FormatXYWH:
		return "xywh"
	default:
		return "unknown"
	}
}

// MarshalText encodes the format by name
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Space is the coordinate space a Box is expressed in
type Space int

const (
	// SpaceNormalized coordinates are in the range [0,1] relative to the
	// original image
	SpaceNormalized Space = iota
	// SpacePixel coordinates are in original image pixels
	SpacePixel
)

// String returns a readable name of the coordinate space
func (s Space) String() string {
	switch s {
	case SpaceNormalized:
		return "normalized"
	case SpacePixel:
		return "pixel"
	default:
		return "unknown"
	}
}

// MarshalText encodes the space by name
func (s Space) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Box is a rectangle in a named coordinate space.  Boxes are values and are
// never modified after creation, conversions return a new Box.
type Box struct {
	Coords [4]float32 `json:"coords"`
	Format Format     `json:"format"`
	Space  Space      `json:"space"`
}

// NewBoxXYXY creates a Box from corner coordinates, swapping them if needed
// so that x1 >= x0 and y1 >= y0
func NewBoxXYXY(x0, y0, x1, y1 float32, space Space) Box {

	if x1 < x0 {
		x0, x1 = x1, x0
	}

	if y1 < y0 {
		y0, y1 = y1, y0
	}

	return Box{
		Coords: [4]float32{x0, y0, x1, y1},
		Format: FormatXYXY,
		Space:  space,
	}
}

// NewBoxXYWH creates a Box from a top left position and size.  Negative sizes
// are clamped to zero
func NewBoxXYWH(x, y, w, h float32, space Space) Box {

	if w < 0 {
		w = 0
	}

	if h < 0 {
		h = 0
	}

	return Box{
		Coords: [4]float32{x, y, w, h},
		Format: FormatXYWH,
		Space:  space,
	}
}

// FullFrame returns the normalized box covering the whole image
func FullFrame() Box {
	return NewBoxXYXY(0, 0, 1, 1, SpaceNormalized)
}

// X0 returns the left edge
func (b Box) X0() float32 {
	return b.Coords[0]
}

// Y0 returns the top edge
func (b Box) Y0() float32 {
	return b.Coords[1]
}

// X1 returns the right edge
func (b Box) X1() float32 {
	if b.Format == FormatXYWH {
		return b.Coords[0] + b.Coords[2]
	}
	return b.Coords[2]
}

// Y1 returns the bottom edge
func (b Box) Y1() float32 {
	if b.Format == FormatXYWH {
		return b.Coords[1] + b.Coords[3]
	}
	return b.Coords[3]
}

// Width returns the width of the box
func (b Box) Width() float32 {
	if b.Format == FormatXYWH {
		return b.Coords[2]
	}
	return b.Coords[2] - b.Coords[0]
}

// Height returns the height of the box
func (b Box) Height() float32 {
	if b.Format == FormatXYWH {
		return b.Coords[3]
	}
	return b.Coords[3] - b.Coords[1]
}

// Degenerate returns true if the box has zero width or height
func (b Box) Degenerate() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// ToXYXY returns the box in corner format
func (b Box) ToXYXY() Box {
	return NewBoxXYXY(b.X0(), b.Y0(), b.X1(), b.Y1(), b.Space)
}

// ToXYWH returns the box in position and size format
func (b Box) ToXYWH() Box {
	return NewBoxXYWH(b.X0(), b.Y0(), b.Width(), b.Height(), b.Space)
}

// CropBox returns the normalized corners in the [y0, x0, y1, x1] order the
// landmark model crop expects
func (b Box) CropBox() [4]float32 {
	return [4]float32{b.Y0(), b.X0(), b.Y1(), b.X1()}
}

// Scale maps a normalized box into pixel space of an image with the given
// dimensions.  Pixel space boxes are returned unchanged
func (b Box) Scale(width, height int) Box {

	if b.Space == SpacePixel {
		return b
	}

	w := float32(width)
	h := float32(height)

	if b.Format == FormatXYWH {
		return NewBoxXYWH(b.Coords[0]*w, b.Coords[1]*h, b.Coords[2]*w, b.Coords[3]*h, SpacePixel)
	}

	return NewBoxXYXY(b.Coords[0]*w, b.Coords[1]*h, b.Coords[2]*w, b.Coords[3]*h, SpacePixel)
}

// Normalize maps a pixel space box into normalized space for an image with the
// given dimensions, clamping the result to [0,1]
func (b Box) Normalize(width, height int) Box {

	if b.Space == SpaceNormalized || width <= 0 || height <= 0 {
		return b
	}

	w := float32(width)
	h := float32(height)

	return NewBoxXYXY(
		clamp01(b.X0()/w), clamp01(b.Y0()/h),
		clamp01(b.X1()/w), clamp01(b.Y1()/h),
		SpaceNormalized,
	)
}

// Rect returns the box as an integer image.Rectangle for drawing
func (b Box) Rect() image.Rectangle {
	return image.Rect(
		int(math.Round(float64(b.X0()))), int(math.Round(float64(b.Y0()))),
		int(math.Round(float64(b.X1()))), int(math.Round(float64(b.Y1()))),
	)
}

// IoU calculates the Intersection over Union with another box in the same
// coordinate space
func (b Box) IoU(other Box) float32 {

	iw := min(b.X1(), other.X1()) - max(b.X0(), other.X0())
	ih := min(b.Y1(), other.Y1()) - max(b.Y0(), other.Y0())

	if iw <= 0 || ih <= 0 {
		return 0
	}

	inter := iw * ih
	union := b.Width()*b.Height() + other.Width()*other.Height() - inter

	if union <= 0 {
		return 0
	}

	return inter / union
}

// String returns the box coordinates as text
func (b Box) String() string {
	return fmt.Sprintf("%s %s [%.3f %.3f %.3f %.3f]", b.Space, b.Format,
		b.Coords[0], b.Coords[1], b.Coords[2], b.Coords[3])
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
