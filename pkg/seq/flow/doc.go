// Package flow provides a minimal fluent Flow[T] for synchronous
// composition of transforms over seq.Chunked[T] values.
//
// Highlights:
// - From/Wrap: start a flow from raw values or an existing sequence
// - Then/TryMap: compose error-returning steps
// - Map/Slice: pure transforms
// - Tee: trigger side effects without changing the sequence
// - Err/Value/Finally: collapse the flow to a result
//
// Flow is ideal for call sites that assemble, narrow and transform a
// sequence in one expression without intermediate error plumbing.
package flow
