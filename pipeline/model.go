package pipeline

import (
	"gocv.io/x/gocv"
)

// Model is a loaded inference model
type Model interface {
	// InputSize is the side length of the square model input
	InputSize() int
	// OutputNames are the output node names in output order
	OutputNames() []string
	// Execute runs the model on an RGB image of InputSize and returns one flat
	// buffer per output node
	Execute(img gocv.Mat) ([][]float32, error)
}

// Registry loads models, returning the same Model for repeat requests of a
// path
type Registry interface {
	GetOrLoad(path string) (Model, error)
}

// LoaderFunc adapts a function to the Registry interface
type LoaderFunc func(path string) (Model, error)

// GetOrLoad calls f(path)
func (f LoaderFunc) GetOrLoad(path string) (Model, error) {
	return f(path)
}

// outputIndex returns the position of the named output node
func outputIndex(m Model, name string) (int, bool) {

	for i, n := range m.OutputNames() {
		if n == name {
			return i, true
		}
	}

	return -1, false
}
