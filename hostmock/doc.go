// Package hostmock provides an in-memory implementation of
// hostapi.Host backed by a handle table.
//
// It exists for tests and for the demo runner: every allocation and
// destruction is visible through LiveCount, every error raise is
// recorded through Raised, and workspace bindings live in plain maps.
// Numeric storage is real memory, so data pointers obtained through the
// facade read and write the same bytes a production host would expose.
//
// The mock is not safe for concurrent use, matching the host's
// single-threaded gateway contract.
package hostmock
