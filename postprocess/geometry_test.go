package postprocess

import (
	"testing"

	"github.com/swdee/go-blazepose/postprocess/result"
)

func TestMapModelToImageBoxCenter(t *testing.T) {

	box := result.NewBoxXYXY(0.25, 0.25, 0.75, 0.75, result.SpaceNormalized)
	got := MapModelToImage(result.Point{X: 128, Y: 128, Z: 64}, 256, box, 640, 480)

	if got.X != 320 || got.Y != 240 {
		t.Errorf("center mapped to (%f, %f), want (320, 240)", got.X, got.Y)
	}

	if got.Z != 0.25 {
		t.Errorf("depth mapped to %f, want 0.25", got.Z)
	}

	// the same box given in pixel space maps identically
	px := MapModelToImage(result.Point{X: 128, Y: 128}, 256, box.Scale(640, 480), 640, 480)

	if px.X != 320 || px.Y != 240 {
		t.Errorf("pixel box center mapped to (%f, %f), want (320, 240)", px.X, px.Y)
	}
}

func TestMapModelToImageDegenerateAxis(t *testing.T) {

	// zero width box leaves x unscaled but still maps y
	box := result.NewBoxXYXY(0.5, 0, 0.5, 1, result.SpaceNormalized)
	got := MapModelToImage(result.Point{X: 17, Y: 128}, 256, box, 640, 480)

	if got.X != 17 {
		t.Errorf("x = %f, want unscaled 17", got.X)
	}

	if got.Y != 240 {
		t.Errorf("y = %f, want 240", got.Y)
	}
}

func TestEnclosingBox(t *testing.T) {

	if EnclosingBox(nil) != nil {
		t.Error("expected nil box for no points")
	}

	single := EnclosingBox([]result.Point{{X: 10, Y: 20}})

	if single == nil || single.X0() != 10 || single.Y0() != 20 || single.Width() != 0 || single.Height() != 0 {
		t.Errorf("single point box = %v, want zero area box at (10, 20)", single)
	}

	box := EnclosingBox([]result.Point{{X: 5, Y: 40}, {X: 30, Y: 10}, {X: 12, Y: 25}})
	want := result.NewBoxXYWH(5, 10, 25, 30, result.SpacePixel)

	if box == nil || *box != want {
		t.Errorf("EnclosingBox = %v, want %s", box, want)
	}
}
