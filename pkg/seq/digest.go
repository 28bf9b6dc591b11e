package seq

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Digest fingerprints element order and chunk boundaries. Two sequences
// with equal digests hold the same formatted elements partitioned the same
// way; it is a debug and test aid, not a cryptographic hash.
func Digest[T any](s *Chunked[T]) uint64 {
	d := xxhash.New()
	for _, chunk := range s.chunks {
		for _, v := range chunk {
			fmt.Fprintf(d, "%v\x1f", v)
		}
		d.Write([]byte{0x1e})
	}
	return d.Sum64()
}

// Boundaries returns the chunk lengths in order, for structural comparison
// independent of element values.
func Boundaries[T any](s *Chunked[T]) []int {
	out := make([]int, len(s.chunks))
	for i, chunk := range s.chunks {
		out[i] = len(chunk)
	}
	return out
}
