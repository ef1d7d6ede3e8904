package postprocess

import (
	"math"

	"github.com/swdee/go-blazepose/postprocess/result"
	"github.com/swdee/go-blazepose/topology"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// PoseHeatmap defines the struct for the legacy single stage pose model post
// processing.  The model outputs a square heatmap per keypoint in HxWxN
// layout, the peak of each heatmap is the keypoint position and its value the
// score.
type PoseHeatmap struct {
	// Params are the Model configuration parameters
	Params PoseLandmarksParams
	// Topology is the keypoint layout of the model
	Topology topology.Topology
}

// PoseHeatmapDefaultParams returns an instance of PoseLandmarksParams
// configured for the legacy heatmap model with a 256 pixel input and
// minimum confidence of 0.2
func PoseHeatmapDefaultParams() PoseLandmarksParams {
	return PoseLandmarksParams{
		InputSize:     256,
		MinConfidence: 0.2,
	}
}

// NewPoseHeatmap returns an instance of the PoseHeatmap post processor
func NewPoseHeatmap(p PoseLandmarksParams, topo topology.Topology) *PoseHeatmap {
	return &PoseHeatmap{
		Params:   p,
		Topology: topo,
	}
}

// Decode takes the heatmap model output for the normalized region of the
// original image and returns the pose in pixel space of an image with the
// given output dimensions
func (h *PoseHeatmap) Decode(buf []float32, region result.Box, outWidth, outHeight int) (result.PoseResult, error) {

	pixelRegion := region.Scale(outWidth, outHeight)
	parts := h.Topology.NumKeypoints()

	side, ok := heatmapSide(len(buf), parts)

	if !ok {
		return EmptyResult(h.Topology, region, outWidth, outHeight),
			xerrors.Errorf("heatmap output of %d values is not square for %d parts: %w",
				len(buf), parts, ErrDegenerateInput)
	}

	cells := side * side
	maps := mat.NewDense(cells, parts, toFloat64(buf))
	heat := make([]float64, cells)

	// heatmap cell size in model input pixels
	scale := float32(h.Params.InputSize) / float32(side)

	all := make([]result.Keypoint, parts)

	for j := range all {
		mat.Col(heat, j, maps)

		idx := floats.MaxIdx(heat)
		score := probability(float32(heat[idx]))

		raw := result.Point{
			X: float32(idx%side) * scale,
			Y: float32(idx/side) * scale,
		}

		all[j] = result.Keypoint{
			Index:      j,
			Part:       h.Topology.Part(j),
			Position:   MapModelToImage(raw, h.Params.InputSize, region, outWidth, outHeight),
			Score:      score,
			Visibility: score,
			Presence:   score,
		}
	}

	return assemble(h.Topology, all, h.Params.MinConfidence, pixelRegion), nil
}

// heatmapSide returns the side length of the square heatmaps held in a buffer
// of the given length
func heatmapSide(length, parts int) (int, bool) {

	if parts <= 0 || length == 0 || length%parts != 0 {
		return 0, false
	}

	cells := length / parts
	side := int(math.Round(math.Sqrt(float64(cells))))

	return side, side*side == cells
}
