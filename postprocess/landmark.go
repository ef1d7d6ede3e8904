package postprocess

import (
	"github.com/swdee/go-blazepose/postprocess/result"
	"github.com/swdee/go-blazepose/topology"
	"golang.org/x/xerrors"
)

// landmarkChannels is the number of values per keypoint in the landmark
// output being x, y, z, visibility logit and presence logit
const landmarkChannels = 5

// PoseLandmarks defines the struct for the full and upper body landmark model
// post processing
type PoseLandmarks struct {
	// Params are the Model configuration parameters
	Params PoseLandmarksParams
	// Topology is the keypoint layout of the model
	Topology topology.Topology
}

// PoseLandmarksParams defines the struct containing the landmark parameters
// to use for post processing operations
type PoseLandmarksParams struct {
	// InputSize is the side length of the square landmark input tensor
	InputSize int
	// MinConfidence is the score a keypoint must be above to be retained
	MinConfidence float32
}

// PoseLandmarksDefaultParams returns an instance of PoseLandmarksParams
// configured for the BlazePose landmark models with a 256 pixel input and
// minimum confidence of 0.1
func PoseLandmarksDefaultParams() PoseLandmarksParams {
	return PoseLandmarksParams{
		InputSize:     256,
		MinConfidence: 0.1,
	}
}

// NewPoseLandmarks returns an instance of the PoseLandmarks post processor
func NewPoseLandmarks(p PoseLandmarksParams, topo topology.Topology) *PoseLandmarks {
	return &PoseLandmarks{
		Params:   p,
		Topology: topo,
	}
}

// Decode takes the landmark model output for the normalized region of the
// original image and returns the pose in pixel space of an image with the
// given output dimensions.  The pose score is the mean confidence of the
// retained keypoints.
func (l *PoseLandmarks) Decode(buf []float32, region result.Box, outWidth, outHeight int) (result.PoseResult, error) {

	pixelRegion := region.Scale(outWidth, outHeight)
	want := l.Topology.NumKeypoints() * landmarkChannels

	if len(buf) != want {
		return EmptyResult(l.Topology, region, outWidth, outHeight),
			xerrors.Errorf("landmark output has %d values, expected %d: %w", len(buf), want, ErrDegenerateInput)
	}

	all := make([]result.Keypoint, l.Topology.NumKeypoints())

	for i := range all {
		row := buf[i*landmarkChannels : (i+1)*landmarkChannels]
		score := DecodeScore(row[3], row[4])

		raw := result.Point{X: row[0], Y: row[1], Z: row[2]}

		all[i] = result.Keypoint{
			Index:      i,
			Part:       l.Topology.Part(i),
			Position:   MapModelToImage(raw, l.Params.InputSize, region, outWidth, outHeight),
			Score:      score.Confidence,
			Visibility: score.Visibility,
			Presence:   score.Presence,
		}
	}

	return assemble(l.Topology, all, l.Params.MinConfidence, pixelRegion), nil
}

// DecodeWithFlag is the same as Decode but uses the models pose flag logit as
// the overall pose score
func (l *PoseLandmarks) DecodeWithFlag(buf []float32, flag float32, region result.Box,
	outWidth, outHeight int) (result.PoseResult, error) {

	res, err := l.Decode(buf, region, outWidth, outHeight)

	if err != nil {
		return res, err
	}

	res.Score = Sigmoid(flag)

	return res, nil
}
