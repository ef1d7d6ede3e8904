package pipeline

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestMatScopeCloseReleasesAll(t *testing.T) {

	scope := &matScope{}

	mats := []*gocv.Mat{scope.NewMat(), scope.NewMat(), scope.NewMat()}

	src := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8UC3)
	defer src.Close()

	src.CopyTo(mats[1])

	for i, m := range mats {
		if m.Ptr() == nil {
			t.Fatalf("mat %d was not allocated", i)
		}
	}

	scope.Close()

	for i, m := range mats {
		if m.Ptr() != nil {
			t.Errorf("mat %d still allocated after Close", i)
		}
	}

	if len(scope.mats) != 0 {
		t.Errorf("scope still tracks %d mats", len(scope.mats))
	}

	// a closed scope can be reused and closed again
	scope.NewMat()
	scope.Close()
}
