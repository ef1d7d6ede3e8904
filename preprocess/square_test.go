package preprocess

import (
	"image"
	"testing"

	"gocv.io/x/gocv"
)

func TestSquarePadding(t *testing.T) {

	tests := []struct {
		width  int
		height int
		want   Padding
	}{
		{640, 480, Padding{Top: 80, Bottom: 80}},
		{480, 640, Padding{Left: 80, Right: 80}},
		{100, 97, Padding{Top: 1, Bottom: 2}},
		{97, 100, Padding{Left: 1, Right: 2}},
		{256, 256, Padding{}},
	}

	for _, tc := range tests {
		got := SquarePadding(tc.width, tc.height)

		if got != tc.want {
			t.Errorf("SquarePadding(%d, %d) = %+v, want %+v", tc.width, tc.height, got, tc.want)
		}
	}
}

func TestSquarePaddingSplitsDifference(t *testing.T) {

	for w := 1; w <= 40; w++ {
		for h := 1; h <= 40; h++ {
			p := SquarePadding(w, h)

			diff := h - w
			before, after := p.Left, p.Right

			if diff < 0 {
				diff = -diff
				before, after = p.Top, p.Bottom
			}

			if before+after != diff || before != diff/2 {
				t.Fatalf("SquarePadding(%d, %d) = %+v does not split diff %d", w, h, p, diff)
			}

			if w+p.Left+p.Right != h+p.Top+p.Bottom {
				t.Fatalf("SquarePadding(%d, %d) = %+v is not square", w, h, p)
			}
		}
	}
}

func TestPadToSquare(t *testing.T) {

	img := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer img.Close()

	sq := gocv.NewMat()
	defer sq.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	p := SquareResize(img, &sq, &dst, 128)

	if sq.Cols() != 640 || sq.Rows() != 640 {
		t.Errorf("expected 640x640 padded image, got %dx%d", sq.Cols(), sq.Rows())
	}

	if dst.Cols() != 128 || dst.Rows() != 128 {
		t.Errorf("expected 128x128 resized image, got %dx%d", dst.Cols(), dst.Rows())
	}

	if p.Side(640) != 640 || p.Zero() {
		t.Errorf("unexpected padding %+v", p)
	}
}

func TestCropRect(t *testing.T) {

	tests := []struct {
		crop [4]float32
		want image.Rectangle
	}{
		{[4]float32{0, 0, 1, 1}, image.Rect(0, 0, 640, 480)},
		// y0, x0, y1, x1 ordering
		{[4]float32{0.25, 0.5, 0.75, 1}, image.Rect(320, 120, 640, 360)},
		{[4]float32{-0.5, -0.5, 2, 2}, image.Rect(0, 0, 640, 480)},
	}

	for _, tc := range tests {
		got := CropRect(tc.crop, 640, 480)

		if got != tc.want {
			t.Errorf("CropRect(%v) = %v, want %v", tc.crop, got, tc.want)
		}
	}
}

func TestCropAndResize(t *testing.T) {

	img := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer img.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	if err := CropAndResize(img, [4]float32{0.1, 0.2, 0.9, 0.6}, 256, &dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dst.Cols() != 256 || dst.Rows() != 256 {
		t.Errorf("expected 256x256 crop, got %dx%d", dst.Cols(), dst.Rows())
	}

	if err := CropAndResize(img, [4]float32{0.5, 0.5, 0.5, 0.9}, 256, &dst); err == nil {
		t.Error("expected error for zero area crop")
	}
}
