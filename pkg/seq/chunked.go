package seq

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Chunked is an immutable, ordered sequence stored as fixed-size groups.
// Every chunk except the last holds exactly ChunkSize elements; the last may
// be shorter. Instances are never mutated after construction, so concurrent
// read-only use needs no synchronization. Heterogeneous sequences
// instantiate T as any.
type Chunked[T any] struct {
	chunks    [][]T
	size      int
	id        uuid.UUID
	createdAt time.Time
}

func stamp[T any](chunks [][]T, size int) *Chunked[T] {
	return &Chunked[T]{
		chunks:    chunks,
		size:      size,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// New partitions values front to back into chunks of chunkSize elements,
// with a shorter trailing chunk when the length is not a multiple of the
// size. A chunkSize larger than len(values) is clamped to len(values).
func New[T any](values []T, chunkSize int) (*Chunked[T], error) {
	if chunkSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, chunkSize)
	}

	total := len(values)
	if total == 0 {
		return stamp[T](nil, chunkSize), nil
	}

	n := chunkSize
	if n > total {
		n = total
	}

	full := total / n
	rem := total % n

	chunks := make([][]T, 0, full+1)
	for i := 0; i < full; i++ {
		chunk := make([]T, n)
		copy(chunk, values[i*n:(i+1)*n])
		chunks = append(chunks, chunk)
	}
	if rem != 0 {
		chunk := make([]T, rem)
		copy(chunk, values[full*n:])
		chunks = append(chunks, chunk)
	}

	return stamp(chunks, n), nil
}

// MustNew is New, panicking on an invalid chunk size.
func MustNew[T any](values []T, chunkSize int) *Chunked[T] {
	s, err := New(values, chunkSize)
	if err != nil {
		panic(err)
	}
	return s
}

// FromChunks adopts an already-chunked representation verbatim. The groups
// are copied, not aliased, and need not be uniform; the recorded chunk size
// is the length of the first group. Empty groups are rejected.
func FromChunks[T any](groups [][]T) (*Chunked[T], error) {
	if len(groups) == 0 {
		return stamp[T](nil, 0), nil
	}

	chunks := make([][]T, len(groups))
	for i, g := range groups {
		if len(g) == 0 {
			return nil, fmt.Errorf("%w: group %d", ErrEmptyChunk, i+1)
		}
		chunk := make([]T, len(g))
		copy(chunk, g)
		chunks[i] = chunk
	}

	return stamp(chunks, len(groups[0])), nil
}

// Get returns the element at 1-based logical index i. Chunks are walked
// cumulatively, so the lookup stays correct when the final chunk is short
// or when the groups are irregular.
func (s *Chunked[T]) Get(i int) (T, error) {
	var zero T
	if i < s.First() || i > s.Last() {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, s.Last())
	}

	consumed := 0
	for _, chunk := range s.chunks {
		if i <= consumed+len(chunk) {
			return chunk[i-consumed-1], nil
		}
		consumed += len(chunk)
	}

	return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, s.Last())
}

// Slice collects the elements at the 1-based logical indices from..to
// (inclusive) and re-chunks them with the receiver's chunk size. Each index
// is resolved with direct division and remainder against the chunk size.
// For sequences built by New this agrees with Get; for irregular FromChunks
// input the two resolutions can disagree, and Slice fails when an index
// lands outside its computed chunk.
func (s *Chunked[T]) Slice(from, to int) (*Chunked[T], error) {
	if from < s.First() || to > s.Last() || from > to {
		return nil, fmt.Errorf("%w: range %d..%d, length %d", ErrIndexOutOfBounds, from, to, s.Last())
	}

	out := make([]T, 0, to-from+1)
	for i := from; i <= to; i++ {
		ci := (i - 1) / s.size
		off := (i - 1) % s.size
		if ci >= len(s.chunks) || off >= len(s.chunks[ci]) {
			return nil, fmt.Errorf("%w: index %d resolves outside chunk %d", ErrIndexOutOfBounds, i, ci+1)
		}
		out = append(out, s.chunks[ci][off])
	}

	return New(out, s.size)
}

// First returns the lowest valid logical index.
func (s *Chunked[T]) First() int {
	return 1
}

// Last returns the highest valid logical index, computed by summing chunk
// lengths rather than multiplying by the chunk size.
func (s *Chunked[T]) Last() int {
	total := 0
	for _, chunk := range s.chunks {
		total += len(chunk)
	}
	return total
}

// Len is an alias for Last.
func (s *Chunked[T]) Len() int {
	return s.Last()
}

// ChunkSize returns the effective chunk size chosen at construction.
func (s *Chunked[T]) ChunkSize() int {
	return s.size
}

// ChunkCount returns the number of chunks.
func (s *Chunked[T]) ChunkCount() int {
	return len(s.chunks)
}

// ChunkAt returns a copy of the 1-based k-th chunk.
func (s *Chunked[T]) ChunkAt(k int) ([]T, error) {
	if k < 1 || k > len(s.chunks) {
		return nil, fmt.Errorf("%w: chunk %d, count %d", ErrIndexOutOfBounds, k, len(s.chunks))
	}
	chunk := make([]T, len(s.chunks[k-1]))
	copy(chunk, s.chunks[k-1])
	return chunk, nil
}

// Flatten returns the elements as a plain ordered slice. It is the inverse
// of New: New(s.Flatten(), s.ChunkSize()) reproduces the same partition.
func (s *Chunked[T]) Flatten() []T {
	out := make([]T, 0, s.Last())
	for _, chunk := range s.chunks {
		out = append(out, chunk...)
	}
	return out
}

func (s *Chunked[T]) Id() uuid.UUID {
	return s.id
}

// CreatedAt is the construction time (UTC). Derived instances are stamped
// anew.
func (s *Chunked[T]) CreatedAt() time.Time {
	return s.createdAt
}
