package flow

import (
	"context"

	"github.com/polyatomic/sciutil/pkg/seq"
)

// Flow carries a sequence with context to enable fluent chaining. Once a
// step fails, every later step is skipped and the error is kept.
type Flow[T any] struct {
	ctx context.Context
	s   *seq.Chunked[T]
	err error
}

// From builds a new sequence from values and starts a flow over it.
func From[T any](ctx context.Context, values []T, chunkSize int) Flow[T] {
	s, err := seq.New(values, chunkSize)
	return Flow[T]{ctx: ctx, s: s, err: err}
}

// Wrap starts a flow over an existing sequence.
func Wrap[T any](ctx context.Context, s *seq.Chunked[T]) Flow[T] {
	return Flow[T]{ctx: ctx, s: s}
}

// Then composes a step that already returns a sequence or an error.
func (f Flow[T]) Then(op func(ctx context.Context, s *seq.Chunked[T]) (*seq.Chunked[T], error)) Flow[T] {
	if f.err != nil {
		return f
	}
	next, err := op(f.ctx, f.s)
	return Flow[T]{ctx: f.ctx, s: next, err: err}
}

// Map applies a pure element transform, preserving chunk boundaries.
func (f Flow[T]) Map(fn func(ctx context.Context, v T) T) Flow[T] {
	if f.err != nil {
		return f
	}
	return Flow[T]{ctx: f.ctx, s: seq.Map(f.ctx, f.s, fn)}
}

// TryMap applies an element transform that can fail.
func (f Flow[T]) TryMap(fn func(ctx context.Context, v T) (T, error)) Flow[T] {
	if f.err != nil {
		return f
	}
	next, err := seq.TryMap(f.ctx, f.s, fn)
	return Flow[T]{ctx: f.ctx, s: next, err: err}
}

// Slice narrows the flow to the inclusive 1-based logical range from..to.
func (f Flow[T]) Slice(from, to int) Flow[T] {
	if f.err != nil {
		return f
	}
	next, err := f.s.Slice(from, to)
	return Flow[T]{ctx: f.ctx, s: next, err: err}
}

// Tee triggers a side effect on the current sequence without changing it.
func (f Flow[T]) Tee(fn func(ctx context.Context, s *seq.Chunked[T])) Flow[T] {
	if f.err != nil {
		return f
	}
	fn(f.ctx, f.s)
	return f
}

// Err returns the first recorded error, if any.
func (f Flow[T]) Err() error {
	return f.err
}

// Value collapses the flow to its sequence and error.
func (f Flow[T]) Value() (*seq.Chunked[T], error) {
	return f.s, f.err
}

// Finally collapses the flow to a sequence via success/failure handlers.
func (f Flow[T]) Finally(
	onSuccess func(ctx context.Context, s *seq.Chunked[T]) *seq.Chunked[T],
	onFailure func(ctx context.Context, err error) *seq.Chunked[T],
) *seq.Chunked[T] {
	if f.err != nil {
		return onFailure(f.ctx, f.err)
	}
	return onSuccess(f.ctx, f.s)
}
