package postprocess

import (
	"errors"
)

// ErrDegenerateInput is returned by the decoders when an inference buffer or
// box can not be decoded, such as a buffer of the wrong length or a zero area
// crop.  The decoder still returns a safe default result alongside it.
var ErrDegenerateInput = errors.New("degenerate input")
