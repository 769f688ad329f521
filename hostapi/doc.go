// Package hostapi declares the lower interface of the array facade: the
// opaque handle type, the element class tags, and the Host interface
// listing every primitive the facade consumes from the numerical
// runtime that loads it.
//
// The package carries no behavior of its own beyond the process-wide
// host binding. Production embeddings bind the real runtime ABI; tests
// bind the in-memory host from package hostmock.
package hostapi
