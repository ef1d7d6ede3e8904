package preprocess

import (
	"errors"
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"
)

// ErrEmptyCrop is returned when a crop region has no area inside the frame
var ErrEmptyCrop = errors.New("crop region has zero area")

// CropRect converts a normalized crop box into a pixel rectangle clipped to
// a frame of the given dimensions.  The crop box uses the [y0, x0, y1, x1]
// ordering expected by the landmark models.
func CropRect(crop [4]float32, width, height int) image.Rectangle {

	y0 := int(math.Floor(float64(crop[0]) * float64(height)))
	x0 := int(math.Floor(float64(crop[1]) * float64(width)))
	y1 := int(math.Ceil(float64(crop[2]) * float64(height)))
	x1 := int(math.Ceil(float64(crop[3]) * float64(width)))

	return image.Rect(x0, y0, x1, y1).Intersect(image.Rect(0, 0, width, height))
}

// CropAndResize extracts the normalized crop region from src and scales it to
// size x size into dst
func CropAndResize(src gocv.Mat, crop [4]float32, size int, dst *gocv.Mat) error {

	rect := CropRect(crop, src.Cols(), src.Rows())

	if rect.Empty() {
		return fmt.Errorf("crop %v on %dx%d frame: %w", crop, src.Cols(), src.Rows(), ErrEmptyCrop)
	}

	region := src.Region(rect)
	defer region.Close()

	gocv.Resize(region, dst, image.Pt(size, size), 0, 0, gocv.InterpolationLinear)

	return nil
}
