package postprocess

import (
	"github.com/swdee/go-blazepose/postprocess/result"
)

// MapModelToImage maps a point from the square landmark model input space into
// pixel space of the original image.  box is the normalized region of the
// original image the model input was cropped from.  Depth is only divided by
// the model input size as it is relative to the body.  When the box has no
// extent along an axis the coordinate on that axis is returned unscaled.
func MapModelToImage(p result.Point, inputSize int, box result.Box,
	outWidth, outHeight int) result.Point {

	if box.Space == result.SpacePixel {
		box = box.Normalize(outWidth, outHeight)
	}

	out := p

	if inputSize <= 0 {
		return out
	}

	in := float32(inputSize)

	if bw := box.Width(); bw > 0 {
		out.X = float32(outWidth) * (p.X/in*bw + box.X0())
	}

	if bh := box.Height(); bh > 0 {
		out.Y = float32(outHeight) * (p.Y/in*bh + box.Y0())
	}

	out.Z = p.Z / in

	return out
}

// EnclosingBox returns the smallest pixel space box in (x, y, w, h) format
// containing all the given points.  A nil box is returned when there are no
// points, a single point results in a zero area box
func EnclosingBox(points []result.Point) *result.Box {

	if len(points) == 0 {
		return nil
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY

	for _, p := range points[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}

	box := result.NewBoxXYWH(minX, minY, maxX-minX, maxY-minY, result.SpacePixel)

	return &box
}
