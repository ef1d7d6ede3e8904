// Package preprocess prepares frames for the pose models by padding them to a
// square and cropping detected regions
package preprocess

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

var (
	// PadColor is the color used for padding borders
	PadColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Padding is the number of pixels added to each edge of a frame to make it
// square
type Padding struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// SquarePadding calculates the padding needed to square a frame of the given
// dimensions.  The shorter axis is padded with floor(diff/2) pixels before
// and the remainder after, so the two sides always sum to the difference
func SquarePadding(width, height int) Padding {

	diff := height - width

	if diff > 0 {
		before := diff / 2
		return Padding{Left: before, Right: diff - before}
	}

	diff = -diff
	before := diff / 2

	return Padding{Top: before, Bottom: diff - before}
}

// Side returns the length of the square side for a frame of the given width
// after padding
func (p Padding) Side(width int) int {
	return width + p.Left + p.Right
}

// Zero returns true if no padding is applied
func (p Padding) Zero() bool {
	return p.Top == 0 && p.Bottom == 0 && p.Left == 0 && p.Right == 0
}

// PadToSquare copies src into dst with black borders on the shorter axis so
// that dst is square, and returns the padding applied
func PadToSquare(src gocv.Mat, dst *gocv.Mat) Padding {

	p := SquarePadding(src.Cols(), src.Rows())

	gocv.CopyMakeBorder(src, dst, p.Top, p.Bottom, p.Left, p.Right,
		gocv.BorderConstant, PadColor)

	return p
}

// SquareResize pads src to a square and scales it to size x size, this is the
// input expected by the pose detector model.  tmp holds the intermediate
// padded image and must be managed by the caller
func SquareResize(src gocv.Mat, tmp, dst *gocv.Mat, size int) Padding {

	p := PadToSquare(src, tmp)

	gocv.Resize(*tmp, dst, image.Pt(size, size), 0, 0, gocv.InterpolationLinear)

	return p
}
