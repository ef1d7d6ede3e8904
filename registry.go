package blazepose

import (
	"errors"
	"fmt"
	"sync"
)

// Registry loads models on first request and returns the same Model for
// every later request of the same path.  It is safe for concurrent use
type Registry struct {
	core   CoreMask
	mu     sync.Mutex
	models map[string]*Model
	closed bool
	// load is replaced in tests
	load func(path string, core CoreMask) (*Model, error)
}

// NewRegistry returns a Registry that loads models onto the given NPU cores
func NewRegistry(core CoreMask) *Registry {
	return &Registry{
		core:   core,
		models: make(map[string]*Model),
		load:   NewModel,
	}
}

// GetOrLoad returns the Model for path, loading it if this is the first
// request.  Failed loads are not cached so they can be retried
func (r *Registry) GetOrLoad(path string) (*Model, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, fmt.Errorf("registry closed, can not load %s", path)
	}

	if m, ok := r.models[path]; ok {
		return m, nil
	}

	m, err := r.load(path, r.core)

	if err != nil {
		return nil, err
	}

	r.models[path] = m

	return m, nil
}

// Len returns the number of loaded models
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.models)
}

// Close releases every loaded model.  The Registry can not be used after
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}

	r.closed = true

	var errs []error

	for path, m := range r.models {
		if err := m.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing model %s: %w", path, err))
		}
	}

	r.models = nil

	return errors.Join(errs...)
}
