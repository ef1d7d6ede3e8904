//go:build integration
// +build integration

package blazepose

import (
	"os"
	"testing"

	"gocv.io/x/gocv"
)

func TestModelExecute(t *testing.T) {

	modelFile := os.Getenv("RKNN_MODEL")

	if modelFile == "" {
		t.Fatalf("No Model file provided in RKNN_MODEL")
	}

	reg := NewRegistry(NPUCoreAuto)
	defer reg.Close()

	m, err := reg.GetOrLoad(modelFile)

	if err != nil {
		t.Fatalf("GetOrLoad failed: %v", err)
	}

	again, err := reg.GetOrLoad(modelFile)

	if err != nil || again != m {
		t.Fatalf("expected cached model, got %v %v", again, err)
	}

	if m.InputSize() <= 0 {
		t.Fatalf("expected square model input, got %d", m.InputSize())
	}

	img := gocv.NewMatWithSize(m.InputSize(), m.InputSize(), gocv.MatTypeCV8UC3)
	defer img.Close()

	outputs, err := m.Execute(img)

	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(outputs) != len(m.OutputNames()) {
		t.Fatalf("expected %d outputs, got %d", len(m.OutputNames()), len(outputs))
	}

	for i, buf := range outputs {
		if len(buf) == 0 {
			t.Errorf("output %d (%s) is empty", i, m.OutputNames()[i])
		}
	}
}
