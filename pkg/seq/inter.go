package seq

// Indexed is the read-only element-access view of a sequence.
type Indexed[T any] interface {
	// Get returns the element at 1-based logical index i
	Get(i int) (T, error)
	// First returns the lowest valid logical index
	First() int
	// Last returns the highest valid logical index
	Last() int
}

// Sequence extends Indexed with structure queries and flattening.
type Sequence[T any] interface {
	Indexed[T]
	// ChunkSize returns the effective chunk size chosen at construction
	ChunkSize() int
	// ChunkCount returns the number of chunks
	ChunkCount() int
	// Flatten returns the elements as a plain ordered slice
	Flatten() []T
}

var _ Sequence[int] = (*Chunked[int])(nil)
