//go:build matprofile

package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/swdee/go-blazepose/topology"
	"gocv.io/x/gocv"
)

// TestPredictReleasesMats checks no Mat outlives Predict on the normal and
// degraded paths.  Run with -tags matprofile
func TestPredictReleasesMats(t *testing.T) {

	frame := testFrame()
	defer frame.Close()

	empty := gocv.NewMat()
	defer empty.Close()

	noDet := DefaultConfig(topology.Full)
	noDet.LandmarkPath = "l"
	noDet.LandmarkOutputs.PoseFlag = ""

	withDet := noDet
	withDet.DetectorEnabled = true
	withDet.DetectorPath = "d"

	tests := []struct {
		name  string
		cfg   Config
		det   *fakeModel
		lm    *fakeModel
		frame gocv.Mat
	}{
		{
			name:  "no detector",
			cfg:   noDet,
			lm:    &fakeModel{size: 256, names: []string{"ld_3d"}, outputs: [][]float32{landmarkBuffer(10, 10)}},
			frame: frame,
		},
		{
			name:  "empty frame",
			cfg:   noDet,
			lm:    &fakeModel{size: 256, names: []string{"ld_3d"}},
			frame: empty,
		},
		{
			name:  "detector error",
			cfg:   withDet,
			det:   &fakeModel{size: 128, names: []string{"Identity", "Identity_1"}, err: errors.New("npu fault")},
			lm:    &fakeModel{size: 256, names: []string{"ld_3d"}, outputs: [][]float32{landmarkBuffer(10, 10)}},
			frame: frame,
		},
		{
			name:  "landmark error",
			cfg:   withDet,
			det:   &fakeModel{size: 128, names: []string{"Identity", "Identity_1"}, outputs: [][]float32{make([]float32, 12), {-5}}},
			lm:    &fakeModel{size: 256, names: []string{"ld_3d"}, err: errors.New("npu fault")},
			frame: frame,
		},
	}

	for _, tc := range tests {
		models := map[string]*fakeModel{"l": tc.lm}
		if tc.det != nil {
			models["d"] = tc.det
		}

		p, err := New(registryOf(models), tc.cfg)

		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}

		before := gocv.MatProfile.Count()

		if _, err := p.Predict(context.Background(), tc.frame); err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}

		if after := gocv.MatProfile.Count(); after != before {
			t.Errorf("%s: %d mats leaked", tc.name, after-before)
		}
	}
}
