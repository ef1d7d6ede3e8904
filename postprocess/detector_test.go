package postprocess

import (
	"errors"
	"testing"

	"github.com/swdee/go-blazepose/postprocess/result"
	"github.com/swdee/go-blazepose/preprocess"
)

// anchorRow returns a geometry row with six points spread over the given
// detector input pixel rectangle
func anchorRow(x0, y0, x1, y1 float32) []float32 {
	return []float32{
		x0, y0, x1, y1,
		x0, y1, x1, y0,
		(x0 + x1) / 2, (y0 + y1) / 2,
		x0, (y0 + y1) / 2,
	}
}

func TestArgMaxFirstOccurrence(t *testing.T) {

	tests := []struct {
		values []float32
		want   int
	}{
		{[]float32{1, 3, 2, 3}, 1},
		{[]float32{5, 5}, 0},
		{[]float32{-1, -2, -1}, 0},
		{[]float32{0, 1}, 1},
		{nil, -1},
	}

	for _, tc := range tests {
		if got := ArgMax(tc.values); got != tc.want {
			t.Errorf("ArgMax(%v) = %d, want %d", tc.values, got, tc.want)
		}
	}
}

func TestDetectorDecodeBestAnchor(t *testing.T) {

	d := NewPoseDetector(PoseDetectorDefaultParams())

	scores := []float32{-5, 3, 3, -1}
	geometry := make([]float32, 0, 4*12)
	geometry = append(geometry, anchorRow(0, 0, 10, 10)...)
	geometry = append(geometry, anchorRow(32, 32, 96, 64)...)
	geometry = append(geometry, anchorRow(0, 64, 64, 128)...)
	geometry = append(geometry, anchorRow(1, 1, 2, 2)...)

	boxes, err := d.Decode(scores, geometry, Frame{Width: 640, Height: 640})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(boxes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(boxes))
	}

	// tie between anchors 1 and 2 is won by the lower index
	want := result.NewBoxXYXY(0.25, 0.25, 0.75, 0.5, result.SpaceNormalized)

	if boxes[0] != want {
		t.Errorf("box = %s, want %s", boxes[0], want)
	}
}

func TestDetectorDecodeRescale(t *testing.T) {

	d := NewPoseDetector(PoseDetectorDefaultParams())
	row := toFloat64(anchorRow(32, 32, 96, 64))

	// square frame without padding scales by outputSize / inputSize
	pts := d.AnchorPoints(row, Frame{Width: 256, Height: 256})

	if pts[0] != (result.Point{X: 64, Y: 64}) || pts[1] != (result.Point{X: 192, Y: 128}) {
		t.Errorf("unexpected points %v", pts[:2])
	}

	// 640x480 is padded by 80 rows top and bottom to a 640 square
	frame := Frame{Width: 640, Height: 480, Padding: preprocess.SquarePadding(640, 480)}
	pts = d.AnchorPoints(row, frame)

	if pts[0] != (result.Point{X: 160, Y: 80}) || pts[1] != (result.Point{X: 480, Y: 240}) {
		t.Errorf("unexpected padded points %v", pts[:2])
	}
}

func TestDetectorDecodeBelowFloor(t *testing.T) {

	d := NewPoseDetector(PoseDetectorDefaultParams())

	scores := []float32{-3, -2}
	geometry := append(anchorRow(0, 0, 64, 64), anchorRow(64, 64, 128, 128)...)

	boxes, err := d.Decode(scores, geometry, Frame{Width: 320, Height: 320})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(boxes) != 1 || boxes[0] != result.FullFrame() {
		t.Errorf("expected full frame box, got %v", boxes)
	}
}

func TestDetectorDecodeDegenerate(t *testing.T) {

	d := NewPoseDetector(PoseDetectorDefaultParams())

	// geometry row count does not match scores
	boxes, err := d.Decode([]float32{1, 2}, anchorRow(0, 0, 64, 64), Frame{Width: 320, Height: 320})

	if !errors.Is(err, ErrDegenerateInput) {
		t.Errorf("expected ErrDegenerateInput, got %v", err)
	}

	if len(boxes) != 1 || boxes[0] != result.FullFrame() {
		t.Errorf("expected full frame box, got %v", boxes)
	}

	// best anchor has all points at one location so falls back
	row := make([]float32, 12)
	for i := range row {
		row[i] = 50
	}

	boxes, err = d.Decode([]float32{4}, row, Frame{Width: 320, Height: 320})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(boxes) != 1 || boxes[0] != result.FullFrame() {
		t.Errorf("expected full frame box for zero area anchor, got %v", boxes)
	}
}

func TestDetectorDecodeMultiple(t *testing.T) {

	p := PoseDetectorDefaultParams()
	p.MaxDetections = 3
	d := NewPoseDetector(p)

	scores := []float32{4, 3, 2, 1}
	geometry := make([]float32, 0, 4*12)
	geometry = append(geometry, anchorRow(0, 0, 64, 64)...)
	// overlaps the first anchor and is suppressed
	geometry = append(geometry, anchorRow(2, 2, 64, 64)...)
	geometry = append(geometry, anchorRow(64, 64, 128, 128)...)
	geometry = append(geometry, anchorRow(64, 0, 128, 64)...)

	boxes, err := d.Decode(scores, geometry, Frame{Width: 128, Height: 128})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []result.Box{
		result.NewBoxXYXY(0, 0, 0.5, 0.5, result.SpaceNormalized),
		result.NewBoxXYXY(0.5, 0.5, 1, 1, result.SpaceNormalized),
		result.NewBoxXYXY(0.5, 0, 1, 0.5, result.SpaceNormalized),
	}

	if len(boxes) != len(want) {
		t.Fatalf("expected %d boxes, got %d: %v", len(want), len(boxes), boxes)
	}

	for i := range want {
		if boxes[i] != want[i] {
			t.Errorf("box %d = %s, want %s", i, boxes[i], want[i])
		}
	}
}
