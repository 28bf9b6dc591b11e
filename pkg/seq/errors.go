package seq

import (
	"context"
	"errors"
)

var (
	// ErrInvalidChunkSize reports a chunk size below 1 at construction.
	ErrInvalidChunkSize = errors.New("seq: chunk size must be at least 1")

	// ErrIndexOutOfBounds reports a logical index outside [First, Last].
	ErrIndexOutOfBounds = errors.New("seq: index out of bounds")

	// ErrEmptyChunk reports an empty group passed to FromChunks.
	ErrEmptyChunk = errors.New("seq: empty chunk")
)

// UnwrapJoined returns the individual errors behind a joined error, or a
// single-element slice for a plain error, or an empty slice for nil.
func UnwrapJoined(err error) []error {
	if err == nil {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCanceled reports whether err stems from context cancellation or a
// deadline.
func IsCanceled(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
