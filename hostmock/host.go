package hostmock

import (
	"unsafe"

	"github.com/matlabw/mex-runtime/hostapi"
)

// Host is an in-memory implementation of hostapi.Host backed by a
// handle table. It tracks live handles so tests can assert exact
// allocation and destruction counts, and records every error raise.
type Host struct {
	entries    []entry
	freeList   []hostapi.Handle
	workspaces map[string]map[string]hostapi.Handle
	raised     []RaisedError
	trapFlag   bool
	lockCount  int
}

type entry struct {
	arr   *array
	valid bool
}

// array is the host-side array object a handle refers to.
type array struct {
	class     hostapi.ClassID
	className string
	complex   bool
	dims      []int
	data      []byte
	fields    []string
	fieldVals [][]hostapi.Handle // per linear index, per field
	cells     []hostapi.Handle
}

// RaisedError records one call to RaiseError.
type RaisedError struct {
	ID      string
	Message string
}

// New creates an empty mock host.
func New() *Host {
	return &Host{
		entries:    make([]entry, 0, 64),
		freeList:   make([]hostapi.Handle, 0, 16),
		workspaces: make(map[string]map[string]hostapi.Handle),
	}
}

// LiveCount returns the number of live handles, including handles owned
// by struct fields, cell elements and workspace bindings.
func (h *Host) LiveCount() int {
	count := 0
	for _, e := range h.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Raised returns the recorded error raises in order.
func (h *Host) Raised() []RaisedError {
	return h.raised
}

func (h *Host) insert(a *array) hostapi.Handle {
	e := entry{arr: a, valid: true}

	if len(h.freeList) > 0 {
		handle := h.freeList[len(h.freeList)-1]
		h.freeList = h.freeList[:len(h.freeList)-1]
		h.entries[handle-1] = e
		return handle
	}

	h.entries = append(h.entries, e)
	return hostapi.Handle(len(h.entries))
}

func (h *Host) lookup(handle hostapi.Handle) *array {
	if handle == hostapi.Null {
		return nil
	}
	idx := int(handle) - 1
	if idx >= len(h.entries) || !h.entries[idx].valid {
		return nil
	}
	return h.entries[idx].arr
}

// normDims pads a single-dimension request with a leading 1; the host
// guarantees rank >= 2 on every live handle.
func normDims(dims []int) []int {
	if len(dims) == 0 {
		return nil
	}
	for _, d := range dims {
		if d < 0 {
			return nil
		}
	}
	if len(dims) == 1 {
		return []int{1, dims[0]}
	}
	out := make([]int, len(dims))
	copy(out, dims)
	return out
}

func elemCount(dims []int) int {
	n := 1
	for _, d := range dims {
		n *= d
	}
	return n
}

// CreateUninitNumeric allocates a numeric array without initializing its
// contents. The storage is filled with a recognizable garbage pattern so
// callers that assume zeroing are flushed out by tests.
func (h *Host) CreateUninitNumeric(class hostapi.ClassID, dims []int, cx hostapi.Complexity) hostapi.Handle {
	handle := h.createNumeric(class, dims, cx)
	if a := h.lookup(handle); a != nil {
		for i := range a.data {
			a.data[i] = 0xCB
		}
	}
	return handle
}

// CreateNumeric allocates a zero-initialized numeric array.
func (h *Host) CreateNumeric(class hostapi.ClassID, dims []int, cx hostapi.Complexity) hostapi.Handle {
	return h.createNumeric(class, dims, cx)
}

func (h *Host) createNumeric(class hostapi.ClassID, dims []int, cx hostapi.Complexity) hostapi.Handle {
	if !class.IsNumeric() {
		return hostapi.Null
	}
	nd := normDims(dims)
	if nd == nil {
		return hostapi.Null
	}
	size := elemCount(nd) * class.ElementSize()
	if cx == hostapi.Complex {
		size *= 2
	}
	return h.insert(&array{
		class:   class,
		complex: cx == hostapi.Complex,
		dims:    nd,
		data:    make([]byte, size),
	})
}

// CreateLogical allocates a zero-initialized logical array.
func (h *Host) CreateLogical(dims []int) hostapi.Handle {
	nd := normDims(dims)
	if nd == nil {
		return hostapi.Null
	}
	return h.insert(&array{
		class: hostapi.ClassLogical,
		dims:  nd,
		data:  make([]byte, elemCount(nd)),
	})
}

// CreateCharArray allocates a zero-initialized character array of
// UTF-16 code units.
func (h *Host) CreateCharArray(dims []int) hostapi.Handle {
	nd := normDims(dims)
	if nd == nil {
		return hostapi.Null
	}
	return h.insert(&array{
		class: hostapi.ClassChar,
		dims:  nd,
		data:  make([]byte, elemCount(nd)*2),
	})
}

// CreateCharFromBytes allocates a 1x(N+1) character array whose first N
// code units are the widened input bytes. The extra slot stays zero; it
// is the same spare terminator slot every char allocation path carries.
func (h *Host) CreateCharFromBytes(b []byte) hostapi.Handle {
	handle := h.CreateCharArray([]int{1, len(b) + 1})
	a := h.lookup(handle)
	units := unsafe.Slice((*uint16)(unsafe.Pointer(unsafe.SliceData(a.data))), len(b)+1)
	for i, c := range b {
		units[i] = uint16(c)
	}
	return handle
}

// CreateStruct allocates a struct array with the declared field schema.
// Every field slot starts out null.
func (h *Host) CreateStruct(dims []int, fields []string) hostapi.Handle {
	nd := normDims(dims)
	if nd == nil {
		return hostapi.Null
	}
	for _, f := range fields {
		if f == "" {
			return hostapi.Null
		}
	}
	n := elemCount(nd)
	vals := make([][]hostapi.Handle, n)
	for i := range vals {
		vals[i] = make([]hostapi.Handle, len(fields))
	}
	names := make([]string, len(fields))
	copy(names, fields)
	return h.insert(&array{
		class:     hostapi.ClassStruct,
		dims:      nd,
		fields:    names,
		fieldVals: vals,
	})
}

// CreateCell allocates a cell array with null elements.
func (h *Host) CreateCell(dims []int) hostapi.Handle {
	nd := normDims(dims)
	if nd == nil {
		return hostapi.Null
	}
	return h.insert(&array{
		class: hostapi.ClassCell,
		dims:  nd,
		cells: make([]hostapi.Handle, elemCount(nd)),
	})
}

// Destroy releases a handle. Handles owned by struct fields and cell
// elements are destroyed recursively; destroying the null handle is a
// no-op.
func (h *Host) Destroy(handle hostapi.Handle) {
	a := h.lookup(handle)
	if a == nil {
		return
	}
	for _, elem := range a.fieldVals {
		for _, fh := range elem {
			h.Destroy(fh)
		}
	}
	for _, ch := range a.cells {
		h.Destroy(ch)
	}
	idx := int(handle) - 1
	h.entries[idx] = entry{}
	h.freeList = append(h.freeList, handle)
}

// Duplicate deep-copies an array, including struct field values and
// cell elements.
func (h *Host) Duplicate(handle hostapi.Handle) hostapi.Handle {
	a := h.lookup(handle)
	if a == nil {
		return hostapi.Null
	}

	dup := &array{
		class:     a.class,
		className: a.className,
		complex:   a.complex,
		dims:      append([]int(nil), a.dims...),
		data:      append([]byte(nil), a.data...),
		fields:    append([]string(nil), a.fields...),
	}
	if a.fieldVals != nil {
		dup.fieldVals = make([][]hostapi.Handle, len(a.fieldVals))
		for i, elem := range a.fieldVals {
			dup.fieldVals[i] = make([]hostapi.Handle, len(elem))
			for j, fh := range elem {
				dup.fieldVals[i][j] = h.Duplicate(fh)
			}
		}
	}
	if a.cells != nil {
		dup.cells = make([]hostapi.Handle, len(a.cells))
		for i, ch := range a.cells {
			dup.cells[i] = h.Duplicate(ch)
		}
	}
	return h.insert(dup)
}

// Rank returns the number of dimensions.
func (h *Host) Rank(handle hostapi.Handle) int {
	if a := h.lookup(handle); a != nil {
		return len(a.dims)
	}
	return 0
}

// Dims returns the dimension sizes of the array.
func (h *Host) Dims(handle hostapi.Handle) []int {
	if a := h.lookup(handle); a != nil {
		return a.dims
	}
	return nil
}

// NumElements returns the element count.
func (h *Host) NumElements(handle hostapi.Handle) int {
	if a := h.lookup(handle); a != nil {
		return elemCount(a.dims)
	}
	return 0
}

// ElementSize returns the per-element byte size.
func (h *Host) ElementSize(handle hostapi.Handle) int {
	if a := h.lookup(handle); a != nil {
		return a.class.ElementSize()
	}
	return 0
}

// ClassIDOf returns the element class tag.
func (h *Host) ClassIDOf(handle hostapi.Handle) hostapi.ClassID {
	if a := h.lookup(handle); a != nil {
		return a.class
	}
	return hostapi.ClassUnknown
}

// ClassNameOf returns the class name, which for object arrays is the
// tag attached by SetClassName.
func (h *Host) ClassNameOf(handle hostapi.Handle) string {
	a := h.lookup(handle)
	if a == nil {
		return ""
	}
	if a.className != "" {
		return a.className
	}
	return a.class.String()
}

// Data returns a pointer to the flat column-major element storage.
func (h *Host) Data(handle hostapi.Handle) unsafe.Pointer {
	a := h.lookup(handle)
	if a == nil || len(a.data) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(a.data))
}

// IsComplex reports interleaved-complex storage.
func (h *Host) IsComplex(handle hostapi.Handle) bool {
	if a := h.lookup(handle); a != nil {
		return a.complex
	}
	return false
}

// IsSparse always reports false; the mock carries only full arrays.
func (h *Host) IsSparse(handle hostapi.Handle) bool {
	return false
}

// SetDims replaces the dimension vector. The element count may change;
// storage is grown zero-filled when the new shape needs more room.
func (h *Host) SetDims(handle hostapi.Handle, dims []int) error {
	a := h.lookup(handle)
	if a == nil {
		return errInvalidHandle
	}
	nd := normDims(dims)
	if nd == nil {
		return errBadDims
	}
	a.dims = nd
	want := elemCount(nd) * a.class.ElementSize()
	if a.complex {
		want *= 2
	}
	if want > len(a.data) {
		grown := make([]byte, want)
		copy(grown, a.data)
		a.data = grown
	}
	return nil
}
