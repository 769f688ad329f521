package hostapi

import (
	"sync"
	"unsafe"
)

// Handle is the host's opaque reference to an array object. Handle 0 is
// the null handle and never refers to a live array. The host owns the
// referenced memory; destruction is explicit through Host.Destroy.
type Handle uintptr

// Null is the null handle.
const Null Handle = 0

// EntryPoint is the signature of the single gateway function the host
// invokes when it dispatches into an extension: a run of output slots to
// fill and a run of input argument handles.
type EntryPoint func(out []Handle, in []Handle)

// Host is the lower interface of the facade: the set of primitives the
// host runtime provides to extensions. Allocation calls return Null on
// failure. Handles passed to introspection calls are assumed live; the
// facade performs its own null checks before crossing this boundary.
//
// The host is single-threaded within a gateway invocation, so
// implementations are not required to be safe for concurrent use.
type Host interface {
	// Array lifecycle. CreateCharFromBytes allocates one spare
	// zero-initialized code unit beyond the widened input bytes.
	CreateUninitNumeric(class ClassID, dims []int, cx Complexity) Handle
	CreateNumeric(class ClassID, dims []int, cx Complexity) Handle
	CreateLogical(dims []int) Handle
	CreateCharArray(dims []int) Handle
	CreateCharFromBytes(b []byte) Handle
	CreateStruct(dims []int, fields []string) Handle
	CreateCell(dims []int) Handle
	Destroy(h Handle)
	Duplicate(h Handle) Handle

	// Introspection. Dims always has length >= 2 for a live handle.
	Rank(h Handle) int
	Dims(h Handle) []int
	NumElements(h Handle) int
	ElementSize(h Handle) int
	ClassIDOf(h Handle) ClassID
	ClassNameOf(h Handle) string
	Data(h Handle) unsafe.Pointer
	IsComplex(h Handle) bool
	IsSparse(h Handle) bool

	// Mutation.
	SetDims(h Handle, dims []int) error

	// Struct field schema. FieldNumber returns -1 on a miss, FieldName
	// returns "" for an out-of-range index. SetFieldByNumber adopts the
	// value handle; a previously set field slot is destroyed.
	FieldCount(h Handle) int
	FieldName(h Handle, index int) string
	FieldNumber(h Handle, name string) int
	GetFieldByNumber(h Handle, i, field int) Handle
	SetFieldByNumber(h Handle, i, field int, value Handle)
	AddField(h Handle, name string) bool
	RemoveField(h Handle, index int)
	SetClassName(h Handle, name string) error

	// Cell elements, keyed by linear index. GetCell returns Null for an
	// unset slot; SetCell adopts the value handle.
	GetCell(h Handle, i int) Handle
	SetCell(h Handle, i int, value Handle)

	// Object properties.
	GetProperty(h Handle, i int, name string) Handle
	SetProperty(h Handle, i int, name string, value Handle)

	// Workspace variable exchange. PutVariable copies the value in;
	// GetVariable returns a fresh copy owned by the caller;
	// GetVariablePtr returns a borrowed handle valid until the
	// workspace mutates. Both return Null when the name is unbound.
	PutVariable(workspace, name string, value Handle) error
	GetVariable(workspace, name string) Handle
	GetVariablePtr(workspace, name string) Handle

	// Gateway error reporting and runtime state switches.
	RaiseError(id, message string)
	SetTrapFlag(on bool) bool
	Lock()
	Unlock()
	IsLocked() bool
}

var (
	currentMu sync.RWMutex
	current   Host
)

// Bind installs the process-wide host. It must be called once before any
// facade operation, normally by the extension loader (or by tests
// installing a mock). Binding is not synchronized with in-flight
// operations; the host is single-threaded per invocation.
func Bind(h Host) {
	currentMu.Lock()
	current = h
	currentMu.Unlock()
}

// Current returns the bound host. It panics when no host is bound: an
// unbound host is a wiring bug in the embedding program, not a runtime
// condition the facade can report through its own error channel.
func Current() Host {
	currentMu.RLock()
	h := current
	currentMu.RUnlock()
	if h == nil {
		panic("hostapi: no host bound; call hostapi.Bind first")
	}
	return h
}
