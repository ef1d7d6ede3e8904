package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/swdee/go-blazepose/postprocess/result"
)

func TestRunnerTiming(t *testing.T) {

	r := &runner{}

	if r.average() != 0 || r.fps() != 0 {
		t.Errorf("expected zero timing before any frame")
	}

	r.frames = 4
	r.total = 100 * time.Millisecond

	if r.average() != 25*time.Millisecond {
		t.Errorf("average = %s, want 25ms", r.average())
	}

	if r.fps() != 40 {
		t.Errorf("fps = %f, want 40", r.fps())
	}
}

func TestPrintSummaryShowsDuration(t *testing.T) {

	color.NoColor = true

	var buf bytes.Buffer

	box := result.NewBoxXYWH(1, 2, 3, 4, result.SpacePixel)
	poses := []result.PoseResult{{
		ID:        0,
		Score:     0.9,
		Keypoints: []result.Keypoint{{Part: "nose", Score: 0.9}},
		Box:       &box,
	}}

	printSummary(&buf, "person.jpg", 12500*time.Microsecond, poses)

	out := buf.String()

	if !strings.Contains(out, "person.jpg: 1 pose(s) in 12.5ms") {
		t.Errorf("summary missing duration: %q", out)
	}

	if !strings.Contains(out, "pose 0: score 0.90") {
		t.Errorf("summary missing pose line: %q", out)
	}
}

func TestRunRejectsUnknownVariant(t *testing.T) {

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := run(options{variant: "quadruped", core: "auto", image: "x.jpg"}, logger, "test")

	if err == nil || !strings.Contains(err.Error(), "quadruped") {
		t.Errorf("expected unknown variant error, got %v", err)
	}
}
