// Package mx is the typed, value-semantics facade over the host's
// opaque array handles.
//
// Three ownership flavors form the core lattice:
//
//	Array     - exclusive owner; destroys its handle on Destroy
//	ArrayRef  - mutable non-owning view
//	ArrayCref - immutable non-owning view
//
// Conversions run one way, Array -> ArrayRef -> ArrayCref; going back
// requires an explicit Duplicate. Only Array ever destroys a handle,
// and Release is the single escape hatch that lets a handle outlive its
// owner. Views stay valid only while the owning Array (or host stack
// slot) is live; the layer does not track that, callers guarantee it.
//
// The typed flavors (TypedArray, TypedRef, TypedCref) fix an element
// type at construction, checking the host class tag once at that
// boundary. Character, struct, object and cell arrays layer their
// protocols on the same machinery without duplicating ownership logic.
//
// Every operation requires a bound host (hostapi.Bind); factories and
// introspection delegate to it and surface failures as *errors.Error
// values carrying the identifier of the failing operation.
package mx
