// Package introspect contains small reflect helpers used for interactive
// inspection: runtime type names, struct field counts, exported method
// listings and typed-nil detection.
package introspect
