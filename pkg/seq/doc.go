// Package seq provides Chunked[T], an immutable ordered sequence stored as
// fixed-size chunks (the last chunk may be shorter), with indexed access,
// slicing, mapping and folding over the logical flattened view.
//
// Highlights:
// - New/MustNew/FromChunks: partition a flat slice or adopt existing groups
// - Get: 1-based scalar access via a cumulative walk over chunks
// - Slice: 1-based range access via direct div/mod index resolution
// - First/Last/Len/Flatten: logical bounds and order-preserving flattening
// - ForEach/Map/Fold: canonical-order traversal; Map preserves boundaries
// - TryMap/TryFold/TryForEach/ForEachErr: failing-callback variants
// - Digest/Boundaries: structural fingerprints for debugging and tests
//
// Note that Get and Slice deliberately resolve indices differently: Get
// walks chunks cumulatively while Slice divides by the chunk size. For
// sequences built by New the two always agree; for irregular FromChunks
// groups they can diverge, which Slice surfaces as ErrIndexOutOfBounds.
package seq
