package blazepose

import (
	"fmt"
	"io"

	"gocv.io/x/gocv"
)

// Model adapts a Runtime to the model interface used by the pose pipeline
type Model struct {
	path  string
	rt    *Runtime
	size  int
	names []string
}

// NewModel loads the model file onto the given NPU cores.  The model must
// have a single square image input
func NewModel(path string, core CoreMask) (*Model, error) {

	rt, err := NewRuntime(path, core)

	if err != nil {
		return nil, fmt.Errorf("error loading model %s: %w", path, err)
	}

	if len(rt.InputAttrs()) != 1 {
		rt.Close()
		return nil, fmt.Errorf("model %s has %d inputs, expected 1", path, len(rt.InputAttrs()))
	}

	size := rt.InputAttrs()[0].SquareSize()

	if size <= 0 {
		rt.Close()
		return nil, fmt.Errorf("model %s input is not a square image: %s", path, rt.InputAttrs()[0])
	}

	names := make([]string, len(rt.OutputAttrs()))

	for i, attr := range rt.OutputAttrs() {
		names[i] = attr.Name
	}

	return &Model{
		path:  path,
		rt:    rt,
		size:  size,
		names: names,
	}, nil
}

// Path returns the file the model was loaded from
func (m *Model) Path() string {
	return m.path
}

// InputSize returns the side length of the square model input
func (m *Model) InputSize() int {
	return m.size
}

// OutputNames returns the output tensor names in output order
func (m *Model) OutputNames() []string {
	return m.names
}

// Execute runs the model on an RGB image and returns a copy of every output
// as float32
func (m *Model) Execute(img gocv.Mat) ([][]float32, error) {

	outputs, err := m.rt.Inference([]gocv.Mat{img})

	if err != nil {
		return nil, fmt.Errorf("inference on %s failed: %w", m.path, err)
	}

	defer outputs.Free()

	return outputs.Copy(), nil
}

// Query writes the model tensor information to w
func (m *Model) Query(w io.Writer) error {
	return m.rt.Query(w)
}

// Close releases the model from the NPU
func (m *Model) Close() error {

	if m.rt == nil {
		return nil
	}

	return m.rt.Close()
}
