package postprocess

import (
	"math"

	"github.com/swdee/go-blazepose/postprocess/result"
	"github.com/swdee/go-blazepose/preprocess"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// PoseDetector defines the struct for the pose detector model post processing.
// The detector outputs one classification logit per anchor and a row of
// geometry values per anchor holding consecutive (x, y) points in detector
// input pixels.
type PoseDetector struct {
	// Params are the Model configuration parameters
	Params PoseDetectorParams
}

// PoseDetectorParams defines the struct containing the detector parameters to
// use for post processing operations
type PoseDetectorParams struct {
	// InputSize is the side length of the square detector input tensor
	InputSize int
	// MinScore is the minimum probability an anchor must score to be used as
	// a region proposal
	MinScore float32
	// NMSThreshold is the maximum allowed Intersection Over Union (IoU)
	// between two proposals for both to be kept
	NMSThreshold float32
	// MaxDetections is the maximum number of proposals returned
	MaxDetections int
	// GeometryWidth is the number of geometry values per anchor
	GeometryWidth int
}

// PoseDetectorDefaultParams returns an instance of PoseDetectorParams
// configured with default values for the BlazePose detector featuring:
// - Input Size: 128
// - Min Score: 0.5
// - NMS Threshold: 0.3
// - Max Detections: 1
// - Geometry Width: 12
func PoseDetectorDefaultParams() PoseDetectorParams {
	return PoseDetectorParams{
		InputSize:     128,
		MinScore:      0.5,
		NMSThreshold:  0.3,
		MaxDetections: 1,
		GeometryWidth: 12,
	}
}

// NewPoseDetector returns an instance of the PoseDetector post processor
func NewPoseDetector(p PoseDetectorParams) *PoseDetector {
	return &PoseDetector{
		Params: p,
	}
}

// Frame describes the original image the detector input was made from
type Frame struct {
	Width  int
	Height int
	// Padding is the border added to square the image before it was scaled to
	// the detector input size
	Padding preprocess.Padding
}

// ArgMax returns the index of the largest value, the first index wins when
// several entries share the maximum.  It returns -1 for an empty slice
func ArgMax(values []float32) int {

	if len(values) == 0 {
		return -1
	}

	return floats.MaxIdx(toFloat64(values))
}

// Decode takes the detector classification scores and geometry outputs and
// returns the normalized region proposals in the original image.  When no
// anchor clears the minimum score a single full frame box is returned.  A
// buffer length mismatch also results in a full frame box along with an error
// wrapping ErrDegenerateInput.
func (d *PoseDetector) Decode(scores, geometry []float32, frame Frame) ([]result.Box, error) {

	full := []result.Box{result.FullFrame()}

	n := len(scores)
	k := d.Params.GeometryWidth

	if n == 0 || k < 2 || len(geometry) != n*k {
		return full, xerrors.Errorf("detector output of %d scores and %d geometry values with row width %d: %w",
			n, len(geometry), k, ErrDegenerateInput)
	}

	if frame.Width <= 0 || frame.Height <= 0 {
		return full, xerrors.Errorf("frame size %dx%d: %w", frame.Width, frame.Height, ErrDegenerateInput)
	}

	vals := toFloat64(scores)
	rows := mat.NewDense(n, k, toFloat64(geometry))

	// compare in logit space to avoid applying sigmoid to every anchor
	floor := float64(unsigmoid(d.Params.MinScore))

	var boxes []result.Box

	for tried := 0; tried < n && len(boxes) < d.Params.MaxDetections; tried++ {

		idx := floats.MaxIdx(vals)

		if vals[idx] < floor || math.IsInf(vals[idx], -1) {
			break
		}

		// remove anchor from next arg-max search
		vals[idx] = math.Inf(-1)

		box, ok := d.anchorBox(rows.RawRowView(idx), frame)

		if !ok || d.suppressed(box, boxes) {
			continue
		}

		boxes = append(boxes, box)
	}

	if len(boxes) == 0 {
		return full, nil
	}

	return boxes, nil
}

// AnchorPoints rescales an anchor geometry row of consecutive (x, y) values
// from detector input pixels into original image pixels
func (d *PoseDetector) AnchorPoints(row []float64, frame Frame) []result.Point {

	side := float64(frame.Padding.Side(frame.Width))
	in := float64(d.Params.InputSize)

	points := make([]result.Point, 0, len(row)/2)

	for i := 0; i+1 < len(row); i += 2 {
		points = append(points, result.Point{
			X: float32(side*(row[i]/in) - float64(frame.Padding.Left)),
			Y: float32(side*(row[i+1]/in) - float64(frame.Padding.Top)),
		})
	}

	return points
}

// anchorBox returns the normalized box enclosing the anchors points
func (d *PoseDetector) anchorBox(row []float64, frame Frame) (result.Box, bool) {

	enc := EnclosingBox(d.AnchorPoints(row, frame))

	if enc == nil {
		return result.Box{}, false
	}

	box := enc.Normalize(frame.Width, frame.Height)

	if box.Degenerate() {
		return result.Box{}, false
	}

	return box, true
}

// suppressed returns true if the box overlaps an already kept box by more
// than the NMS threshold
func (d *PoseDetector) suppressed(box result.Box, kept []result.Box) bool {

	for _, k := range kept {
		if box.IoU(k) > d.Params.NMSThreshold {
			return true
		}
	}

	return false
}
