// Package pipeline runs the two stage pose estimation on a frame.  An optional
// detector model locates regions containing a body, then the landmark model is
// run on each region and its output decoded into a PoseResult.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/swdee/go-blazepose/postprocess"
	"github.com/swdee/go-blazepose/postprocess/result"
	"github.com/swdee/go-blazepose/preprocess"
	"github.com/swdee/go-blazepose/topology"
	"gocv.io/x/gocv"
)

// State is the fixed processing mode of a Pipeline
type State int

const (
	// NoDetector passes the whole frame to the landmark model
	NoDetector State = iota
	// WithDetector runs the detector model to find body regions first
	WithDetector
)

// String returns the name of the state
func (s State) String() string {
	if s == WithDetector {
		return "with-detector"
	}
	return "no-detector"
}

// landmarkDecoder decodes a landmark model output buffer
type landmarkDecoder interface {
	Decode(buf []float32, region result.Box, outWidth, outHeight int) (result.PoseResult, error)
}

// Pipeline sequences the detector and landmark stages for each frame.  A
// Pipeline is not safe for concurrent use as the underlying models are not.
type Pipeline struct {
	cfg   Config
	log   *slog.Logger
	state State
	topo  topology.Topology

	detector    Model
	detDecoder  *postprocess.PoseDetector
	scoresIdx   int
	geometryIdx int

	landmark     Model
	lmDecoder    landmarkDecoder
	flagDecoder  *postprocess.PoseLandmarks
	landmarksIdx int
	// flagIdx is -1 when the model has no pose flag output
	flagIdx int
}

// New validates the Config, loads the models through the Registry and
// resolves the declared output nodes.  All failures are returned as a
// ConfigError
func New(reg Registry, cfg Config) (*Pipeline, error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	topo, err := topology.Get(cfg.Variant)

	if err != nil {
		return nil, &ConfigError{Field: "Variant", Reason: "unsupported topology variant", Err: err}
	}

	p := &Pipeline{
		cfg:     cfg,
		log:     cfg.logger(),
		state:   NoDetector,
		topo:    topo,
		flagIdx: -1,
	}

	if err := p.loadLandmark(reg); err != nil {
		return nil, err
	}

	if cfg.DetectorEnabled {
		if err := p.loadDetector(reg); err != nil {
			return nil, err
		}
	}

	p.log.Info("pose pipeline ready",
		slog.String("variant", cfg.Variant.String()),
		slog.String("state", p.state.String()),
		slog.Int("keypoints", topo.NumKeypoints()),
		slog.Int("landmarkInput", p.landmark.InputSize()),
	)

	return p, nil
}

// loadLandmark loads the landmark model and prepares its decoder
func (p *Pipeline) loadLandmark(reg Registry) error {

	m, err := reg.GetOrLoad(p.cfg.LandmarkPath)

	if err != nil {
		return &ConfigError{Field: "LandmarkPath", Reason: "failed to load model", Err: err}
	}

	if m.InputSize() <= 0 {
		return &ConfigError{Field: "LandmarkPath", Reason: "model has no square input"}
	}

	p.landmark = m

	p.landmarksIdx = 0
	if name := p.cfg.LandmarkOutputs.Landmarks; name != "" {
		idx, ok := outputIndex(m, name)
		if !ok {
			return &ConfigError{Field: "LandmarkOutputs.Landmarks", Reason: "model has no output node " + name}
		}
		p.landmarksIdx = idx
	}

	params := postprocess.PoseLandmarksParams{
		InputSize:     m.InputSize(),
		MinConfidence: p.cfg.MinConfidence,
	}

	if p.topo.Layout == topology.LayoutHeatmap {
		p.lmDecoder = postprocess.NewPoseHeatmap(params, p.topo)
		return nil
	}

	p.flagDecoder = postprocess.NewPoseLandmarks(params, p.topo)
	p.lmDecoder = p.flagDecoder

	if name := p.cfg.LandmarkOutputs.PoseFlag; name != "" {
		idx, ok := outputIndex(m, name)
		if !ok {
			return &ConfigError{Field: "LandmarkOutputs.PoseFlag", Reason: "model has no output node " + name}
		}
		p.flagIdx = idx
	}

	return nil
}

// loadDetector loads the detector model and prepares its decoder
func (p *Pipeline) loadDetector(reg Registry) error {

	m, err := reg.GetOrLoad(p.cfg.DetectorPath)

	if err != nil {
		return &ConfigError{Field: "DetectorPath", Reason: "failed to load model", Err: err}
	}

	if m.InputSize() <= 0 {
		return &ConfigError{Field: "DetectorPath", Reason: "model has no square input"}
	}

	var ok bool

	if p.scoresIdx, ok = outputIndex(m, p.cfg.DetectorOutputs.Scores); !ok {
		return &ConfigError{Field: "DetectorOutputs.Scores",
			Reason: "model has no output node " + p.cfg.DetectorOutputs.Scores}
	}

	if p.geometryIdx, ok = outputIndex(m, p.cfg.DetectorOutputs.Geometry); !ok {
		return &ConfigError{Field: "DetectorOutputs.Geometry",
			Reason: "model has no output node " + p.cfg.DetectorOutputs.Geometry}
	}

	p.detector = m
	p.detDecoder = postprocess.NewPoseDetector(postprocess.PoseDetectorParams{
		InputSize:     m.InputSize(),
		MinScore:      p.cfg.DetectorMinScore,
		NMSThreshold:  p.cfg.NMSThreshold,
		MaxDetections: p.cfg.MaxDetected,
		GeometryWidth: p.cfg.DetectorGeometryWidth,
	})
	p.state = WithDetector

	return nil
}

// State returns the processing mode fixed at construction
func (p *Pipeline) State() State {
	return p.state
}

// Topology returns the keypoint layout of the landmark model
func (p *Pipeline) Topology() topology.Topology {
	return p.topo
}

// Predict estimates the poses in a BGR frame and returns one PoseResult per
// region in region order, including regions where no keypoint was retained.
// Failures while processing the frame are logged and result in fewer
// keypoints, the only error returned is that of a cancelled context
func (p *Pipeline) Predict(ctx context.Context, frame gocv.Mat) ([]result.PoseResult, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if frame.Empty() {
		p.log.Warn("skipping empty frame")
		return nil, nil
	}

	scope := &matScope{}
	defer scope.Close()

	rgb := scope.NewMat()
	gocv.CvtColor(frame, rgb, gocv.ColorBGRToRGB)

	regions := p.regions(scope, *rgb)

	results := make([]result.PoseResult, 0, len(regions))

	for i, region := range regions {

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res := p.pose(scope, *rgb, region, i)
		res.ID = i
		results = append(results, res)
	}

	return results, nil
}

// regions returns the normalized body regions of the frame
func (p *Pipeline) regions(scope *matScope, rgb gocv.Mat) []result.Box {

	full := []result.Box{result.FullFrame()}

	if p.state == NoDetector {
		return full
	}

	tmp := scope.NewMat()
	input := scope.NewMat()

	pad := preprocess.SquareResize(rgb, tmp, input, p.detector.InputSize())

	outputs, err := p.detector.Execute(*input)

	if err != nil {
		p.log.Warn("detector inference failed, using full frame",
			slog.Any("error", err),
		)
		return full
	}

	if len(outputs) <= p.scoresIdx || len(outputs) <= p.geometryIdx {
		p.log.Warn("detector returned too few outputs, using full frame",
			slog.Int("outputs", len(outputs)),
		)
		return full
	}

	boxes, err := p.detDecoder.Decode(outputs[p.scoresIdx], outputs[p.geometryIdx],
		postprocess.Frame{Width: rgb.Cols(), Height: rgb.Rows(), Padding: pad})

	if err != nil {
		p.log.Warn("detector output could not be decoded, using full frame",
			slog.Any("error", err),
		)
	}

	return boxes
}

// pose runs the landmark model on a region of the frame
func (p *Pipeline) pose(scope *matScope, rgb gocv.Mat, region result.Box, id int) result.PoseResult {

	width, height := rgb.Cols(), rgb.Rows()
	size := p.landmark.InputSize()
	input := scope.NewMat()

	if err := preprocess.CropAndResize(rgb, region.CropBox(), size, input); err != nil {
		p.log.Warn("region has no area, using full frame",
			slog.Int("region", id),
			slog.String("box", region.String()),
			slog.Any("error", err),
		)

		region = result.FullFrame()

		if err := preprocess.CropAndResize(rgb, region.CropBox(), size, input); err != nil {
			return postprocess.EmptyResult(p.topo, region, width, height)
		}
	}

	outputs, err := p.landmark.Execute(*input)

	if err != nil {
		p.log.Warn("landmark inference failed",
			slog.Int("region", id),
			slog.Any("error", err),
		)
		return postprocess.EmptyResult(p.topo, region, width, height)
	}

	if len(outputs) <= p.landmarksIdx {
		p.log.Warn("landmark model returned too few outputs",
			slog.Int("region", id),
			slog.Int("outputs", len(outputs)),
		)
		return postprocess.EmptyResult(p.topo, region, width, height)
	}

	buf := outputs[p.landmarksIdx]

	var res result.PoseResult

	if p.flagIdx >= 0 && p.flagIdx < len(outputs) && len(outputs[p.flagIdx]) > 0 {
		res, err = p.flagDecoder.DecodeWithFlag(buf, outputs[p.flagIdx][0], region, width, height)
	} else {
		res, err = p.lmDecoder.Decode(buf, region, width, height)
	}

	if err != nil {
		p.log.Warn("landmark output could not be decoded",
			slog.Int("region", id),
			slog.Any("error", err),
		)
	}

	return res
}
