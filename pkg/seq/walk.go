package seq

import (
	"context"
	"errors"
)

// ForEach invokes f once per element in canonical order: chunk order, then
// within-chunk order. Side effects are the caller's responsibility.
func ForEach[T any](ctx context.Context, s *Chunked[T], f func(ctx context.Context, v T)) {
	for _, chunk := range s.chunks {
		for _, v := range chunk {
			f(ctx, v)
		}
	}
}

// Map applies f to every element and returns a new sequence with the exact
// chunk boundaries of the input, including irregular FromChunks boundaries.
// It is a structure-preserving transform, not a re-partition.
func Map[In, Out any](ctx context.Context, s *Chunked[In], f func(ctx context.Context, v In) Out) *Chunked[Out] {
	chunks := make([][]Out, len(s.chunks))
	for ci, chunk := range s.chunks {
		mapped := make([]Out, len(chunk))
		for i, v := range chunk {
			mapped[i] = f(ctx, v)
		}
		chunks[ci] = mapped
	}
	return stamp(chunks, s.size)
}

// Fold performs a left fold over all elements in canonical order. The
// callback receives the element before the accumulator.
func Fold[T, A any](ctx context.Context, s *Chunked[T], init A, f func(ctx context.Context, v T, acc A) A) A {
	acc := init
	for _, chunk := range s.chunks {
		for _, v := range chunk {
			acc = f(ctx, v, acc)
		}
	}
	return acc
}

// TryMap is Map for callbacks that can fail. The first error aborts the
// traversal and is returned unwrapped; no partial result is produced.
func TryMap[In, Out any](ctx context.Context, s *Chunked[In], f func(ctx context.Context, v In) (Out, error)) (*Chunked[Out], error) {
	chunks := make([][]Out, len(s.chunks))
	for ci, chunk := range s.chunks {
		mapped := make([]Out, len(chunk))
		for i, v := range chunk {
			out, err := f(ctx, v)
			if err != nil {
				return nil, err
			}
			mapped[i] = out
		}
		chunks[ci] = mapped
	}
	return stamp(chunks, s.size), nil
}

// TryFold is Fold for callbacks that can fail. The first error aborts the
// traversal and is returned with the zero accumulator.
func TryFold[T, A any](ctx context.Context, s *Chunked[T], init A, f func(ctx context.Context, v T, acc A) (A, error)) (A, error) {
	acc := init
	for _, chunk := range s.chunks {
		for _, v := range chunk {
			next, err := f(ctx, v, acc)
			if err != nil {
				var zero A
				return zero, err
			}
			acc = next
		}
	}
	return acc, nil
}

// TryForEach invokes f per element and stops at the first error.
func TryForEach[T any](ctx context.Context, s *Chunked[T], f func(ctx context.Context, v T) error) error {
	for _, chunk := range s.chunks {
		for _, v := range chunk {
			if err := f(ctx, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// ForEachErr invokes f for every element regardless of failures and joins
// the collected errors. UnwrapJoined recovers the individual parts.
func ForEachErr[T any](ctx context.Context, s *Chunked[T], f func(ctx context.Context, v T) error) error {
	var errs []error
	for _, chunk := range s.chunks {
		for _, v := range chunk {
			if err := f(ctx, v); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
