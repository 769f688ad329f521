package hostmock

import (
	"errors"

	"github.com/matlabw/mex-runtime/hostapi"
)

var (
	errInvalidHandle = errors.New("invalid handle")
	errBadDims       = errors.New("invalid dimensions")
	errBadName       = errors.New("invalid name")
	errNotStruct     = errors.New("handle is not a struct array")
)

// FieldCount returns the number of fields in the shared schema.
func (h *Host) FieldCount(handle hostapi.Handle) int {
	if a := h.lookup(handle); a != nil {
		return len(a.fields)
	}
	return 0
}

// FieldName returns the name of the field at index, or "" when the
// index is out of range.
func (h *Host) FieldName(handle hostapi.Handle, index int) string {
	a := h.lookup(handle)
	if a == nil || index < 0 || index >= len(a.fields) {
		return ""
	}
	return a.fields[index]
}

// FieldNumber returns the index of the named field, or -1 on a miss.
func (h *Host) FieldNumber(handle hostapi.Handle, name string) int {
	a := h.lookup(handle)
	if a == nil {
		return -1
	}
	for i, f := range a.fields {
		if f == name {
			return i
		}
	}
	return -1
}

// GetFieldByNumber returns the handle stored in the field slot. The
// struct array retains ownership; Null means the slot is unset.
func (h *Host) GetFieldByNumber(handle hostapi.Handle, i, field int) hostapi.Handle {
	a := h.lookup(handle)
	if a == nil || i < 0 || i >= len(a.fieldVals) || field < 0 || field >= len(a.fields) {
		return hostapi.Null
	}
	return a.fieldVals[i][field]
}

// SetFieldByNumber adopts value into the field slot, destroying any
// previous occupant.
func (h *Host) SetFieldByNumber(handle hostapi.Handle, i, field int, value hostapi.Handle) {
	a := h.lookup(handle)
	if a == nil || i < 0 || i >= len(a.fieldVals) || field < 0 || field >= len(a.fields) {
		return
	}
	if prev := a.fieldVals[i][field]; prev != hostapi.Null && prev != value {
		h.Destroy(prev)
	}
	a.fieldVals[i][field] = value
}

// AddField appends a field to the shared schema; every element gains an
// unset slot.
func (h *Host) AddField(handle hostapi.Handle, name string) bool {
	a := h.lookup(handle)
	if a == nil || a.class != hostapi.ClassStruct || name == "" {
		return false
	}
	for _, f := range a.fields {
		if f == name {
			return false
		}
	}
	a.fields = append(a.fields, name)
	for i := range a.fieldVals {
		a.fieldVals[i] = append(a.fieldVals[i], hostapi.Null)
	}
	return true
}

// RemoveField drops the field at index from the shared schema, destroying
// every element's slot for it.
func (h *Host) RemoveField(handle hostapi.Handle, index int) {
	a := h.lookup(handle)
	if a == nil || index < 0 || index >= len(a.fields) {
		return
	}
	a.fields = append(a.fields[:index], a.fields[index+1:]...)
	for i := range a.fieldVals {
		if fh := a.fieldVals[i][index]; fh != hostapi.Null {
			h.Destroy(fh)
		}
		a.fieldVals[i] = append(a.fieldVals[i][:index], a.fieldVals[i][index+1:]...)
	}
}

// SetClassName tags a struct array as an object of the named class.
func (h *Host) SetClassName(handle hostapi.Handle, name string) error {
	a := h.lookup(handle)
	if a == nil {
		return errInvalidHandle
	}
	if a.class != hostapi.ClassStruct {
		return errNotStruct
	}
	a.class = hostapi.ClassObject
	a.className = name
	return nil
}

// GetProperty returns the property value of an object element. The mock
// stores object properties in the underlying struct fields; the handle
// is borrowed from the object array.
func (h *Host) GetProperty(handle hostapi.Handle, i int, name string) hostapi.Handle {
	field := h.FieldNumber(handle, name)
	if field < 0 {
		return hostapi.Null
	}
	return h.GetFieldByNumber(handle, i, field)
}

// SetProperty copies value into the property slot of an object element.
func (h *Host) SetProperty(handle hostapi.Handle, i int, name string, value hostapi.Handle) {
	field := h.FieldNumber(handle, name)
	if field < 0 {
		return
	}
	h.SetFieldByNumber(handle, i, field, h.Duplicate(value))
}

// GetCell returns the handle stored at the linear index. The cell array
// retains ownership; Null means the slot is unset.
func (h *Host) GetCell(handle hostapi.Handle, i int) hostapi.Handle {
	a := h.lookup(handle)
	if a == nil || i < 0 || i >= len(a.cells) {
		return hostapi.Null
	}
	return a.cells[i]
}

// SetCell adopts value into the cell slot, destroying any previous
// occupant.
func (h *Host) SetCell(handle hostapi.Handle, i int, value hostapi.Handle) {
	a := h.lookup(handle)
	if a == nil || i < 0 || i >= len(a.cells) {
		return
	}
	if prev := a.cells[i]; prev != hostapi.Null && prev != value {
		h.Destroy(prev)
	}
	a.cells[i] = value
}
