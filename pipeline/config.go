package pipeline

import (
	"io"
	"log/slog"

	"github.com/swdee/go-blazepose/topology"
)

// DetectorOutputs names the detector model output nodes by role
type DetectorOutputs struct {
	// Scores is the per anchor classification logits
	Scores string
	// Geometry is the per anchor geometry rows
	Geometry string
}

// LandmarkOutputs names the landmark model output nodes by role
type LandmarkOutputs struct {
	// Landmarks is the keypoint buffer, or the heatmaps for the legacy model
	Landmarks string
	// PoseFlag is the optional pose presence logit.  Leave empty to score a
	// pose by the mean confidence of its keypoints
	PoseFlag string
}

// Config is the complete set of options a Pipeline is built from
type Config struct {
	// Variant selects the landmark model topology
	Variant topology.Variant
	// DetectorEnabled runs the detector model to find regions, otherwise the
	// whole frame is passed to the landmark model
	DetectorEnabled bool
	// DetectorPath is the detector model file, required if DetectorEnabled
	DetectorPath string
	// LandmarkPath is the landmark model file
	LandmarkPath string
	// MinConfidence is the score a keypoint must be above to be retained
	MinConfidence float32
	// MaxDetected is the maximum number of regions the detector may return
	MaxDetected int
	// DetectorMinScore is the minimum probability of a detector anchor
	DetectorMinScore float32
	// NMSThreshold is the maximum overlap allowed between detector regions
	NMSThreshold float32
	// DetectorGeometryWidth is the number of geometry values per anchor
	DetectorGeometryWidth int
	DetectorOutputs       DetectorOutputs
	LandmarkOutputs       LandmarkOutputs
	// Logger receives per frame warnings, defaults to discarding them
	Logger *slog.Logger
}

// DefaultConfig returns the default Config for the given topology variant.
// Model paths must still be set by the caller
func DefaultConfig(v topology.Variant) Config {

	cfg := Config{
		Variant:               v,
		DetectorEnabled:       false,
		MinConfidence:         0.1,
		MaxDetected:           1,
		DetectorMinScore:      0.5,
		NMSThreshold:          0.3,
		DetectorGeometryWidth: 12,
		DetectorOutputs: DetectorOutputs{
			Scores:   "Identity_1",
			Geometry: "Identity",
		},
		LandmarkOutputs: LandmarkOutputs{
			Landmarks: "ld_3d",
			PoseFlag:  "output_poseflag",
		},
	}

	if v == topology.LegacySingle {
		cfg.MinConfidence = 0.2
		cfg.LandmarkOutputs = LandmarkOutputs{}
	}

	return cfg
}

// Validate checks the Config for missing or out of range values
func (c Config) Validate() error {

	if _, err := topology.Get(c.Variant); err != nil {
		return &ConfigError{Field: "Variant", Reason: "unsupported topology variant", Err: err}
	}

	if c.LandmarkPath == "" {
		return &ConfigError{Field: "LandmarkPath", Reason: "model path is required"}
	}

	if c.MinConfidence < 0 || c.MinConfidence >= 1 {
		return &ConfigError{Field: "MinConfidence", Reason: "must be in the range [0,1)"}
	}

	if !c.DetectorEnabled {
		return nil
	}

	if c.Variant == topology.LegacySingle {
		return &ConfigError{Field: "DetectorEnabled", Reason: "legacy model has no detector stage"}
	}

	if c.DetectorPath == "" {
		return &ConfigError{Field: "DetectorPath", Reason: "model path is required when the detector is enabled"}
	}

	if c.MaxDetected < 1 {
		return &ConfigError{Field: "MaxDetected", Reason: "must be at least 1"}
	}

	if c.DetectorMinScore < 0 || c.DetectorMinScore >= 1 {
		return &ConfigError{Field: "DetectorMinScore", Reason: "must be in the range [0,1)"}
	}

	if c.NMSThreshold <= 0 || c.NMSThreshold > 1 {
		return &ConfigError{Field: "NMSThreshold", Reason: "must be in the range (0,1]"}
	}

	if c.DetectorGeometryWidth < 2 || c.DetectorGeometryWidth%2 != 0 {
		return &ConfigError{Field: "DetectorGeometryWidth", Reason: "must be a positive even number"}
	}

	return nil
}

// logger returns the configured logger or one that discards everything
func (c Config) logger() *slog.Logger {

	if c.Logger != nil {
		return c.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
