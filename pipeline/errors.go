package pipeline

import (
	"errors"
	"fmt"

	"github.com/swdee/go-blazepose/postprocess"
)

// ErrDegenerateInput is returned by the decoders for buffers and boxes that
// can not be decoded.  Pipeline recovers from it and it never leaves Predict
var ErrDegenerateInput = postprocess.ErrDegenerateInput

// ConfigError reports an invalid configuration or a model that could not be
// prepared.  It is only returned by New before any frame is processed
type ConfigError struct {
	// Field is the Config field at fault
	Field string
	// Reason describes the problem
	Reason string
	// Err is the underlying error if any
	Err error
}

// Error implements the error interface
func (e *ConfigError) Error() string {

	if e.Err != nil {
		return fmt.Sprintf("invalid config %s: %s: %v", e.Field, e.Reason, e.Err)
	}

	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError returns true if err is or wraps a ConfigError
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
