package inspect

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/polyatomic/sciutil/pkg/introspect"
	"github.com/polyatomic/sciutil/pkg/seq"
)

const lineSep = "------------------------------"

// Describe writes one line per element: running 1-based index, runtime type
// name, field count and value. Intended for interactive inspection only.
func Describe[T any](w io.Writer, s *seq.Chunked[T]) {
	for i, v := range s.Flatten() {
		fmt.Fprintf(w, "%4d  %-24s fields=%-3d %v\n",
			i+1, introspect.TypeName(v), introspect.FieldCount(v), v)
	}
	fmt.Fprintln(w, lineSep)
}

// Banner writes a bold section header followed by a separator line.
func Banner(w io.Writer, title string) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w, out.String(title).Bold().String())
	fmt.Fprintln(w, lineSep)
}

// Log emits a structured one-shot dump of the sequence's shape.
func Log[T any](logger *zap.Logger, s *seq.Chunked[T]) {
	logger.Debug("chunked sequence",
		zap.String("id", s.Id().String()),
		zap.Int("length", s.Len()),
		zap.Int("chunks", s.ChunkCount()),
		zap.Int("chunk_size", s.ChunkSize()),
		zap.Ints("boundaries", seq.Boundaries(s)),
		zap.Uint64("digest", seq.Digest(s)),
	)
}
