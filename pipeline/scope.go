package pipeline

import (
	"gocv.io/x/gocv"
)

// matScope tracks the temporary Mats created while processing a frame so
// they are all released together
type matScope struct {
	mats []*gocv.Mat
}

// NewMat creates an empty Mat owned by the scope
func (s *matScope) NewMat() *gocv.Mat {
	m := gocv.NewMat()
	s.mats = append(s.mats, &m)
	return &m
}

// Close releases every Mat created by the scope
func (s *matScope) Close() {

	for _, m := range s.mats {
		m.Close()
	}

	s.mats = nil
}
