// Package inspect provides debug formatting for chunked sequences: a
// per-element description with runtime type information, a terminal banner,
// and a structured zap dump of the sequence shape.
//
// Nothing here is required for correctness; the core container does no
// logging or printing of its own.
package inspect
