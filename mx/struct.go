package mx

import (
	"github.com/matlabw/mex-runtime/errors"
	"github.com/matlabw/mex-runtime/hostapi"
)

// FieldIndex identifies a struct field within the shared schema. It
// stays valid until AddField or RemoveField mutates the schema; cached
// indices must be refetched after that.
type FieldIndex int

// InvalidFieldIndex is the sentinel returned for unknown field names.
const InvalidFieldIndex FieldIndex = -1

func structFieldCount(v view, id string) (int, error) {
	if err := v.check(id); err != nil {
		return 0, err
	}
	return host().FieldCount(v.h), nil
}

func structFieldName(v view, id string, f FieldIndex) (string, error) {
	if err := v.check(id); err != nil {
		return "", err
	}
	name := host().FieldName(v.h, int(f))
	if name == "" {
		return "", errors.New(id, "failed to get field name")
	}
	return name, nil
}

// structFieldIndex never fails: unknown names and invalid handles both
// report the sentinel.
func structFieldIndex(v view, name string) FieldIndex {
	if v.h == hostapi.Null {
		return InvalidFieldIndex
	}
	idx := host().FieldNumber(v.h, name)
	if idx < 0 {
		return InvalidFieldIndex
	}
	return FieldIndex(idx)
}

// structCheckIndex validates the linear element index against the
// array extent.
func structCheckIndex(v view, id string, i int) error {
	if err := v.check(id); err != nil {
		return err
	}
	if n := host().NumElements(v.h); i < 0 || i >= n {
		return errors.Newf(id, "element index %d out of range (element count %d)", i, n)
	}
	return nil
}

// structGetField distinguishes "absent" (unset slot or unknown name,
// ok=false) from failure (out-of-range index, error).
func structGetField(v view, id string, i int, f FieldIndex) (hostapi.Handle, bool, error) {
	if err := structCheckIndex(v, id, i); err != nil {
		return hostapi.Null, false, err
	}
	if f == InvalidFieldIndex {
		return hostapi.Null, false, nil
	}
	if count := host().FieldCount(v.h); int(f) >= count {
		return hostapi.Null, false, errors.FieldIndexOutOfRange(id, int(f), count)
	}
	field := host().GetFieldByNumber(v.h, i, int(f))
	if field == hostapi.Null {
		return hostapi.Null, false, nil
	}
	return field, true, nil
}

func structCheckSettable(v view, id string, i int, f FieldIndex) error {
	if err := structCheckIndex(v, id, i); err != nil {
		return err
	}
	if f == InvalidFieldIndex {
		return errors.New(id, "invalid field index")
	}
	if count := host().FieldCount(v.h); int(f) >= count {
		return errors.FieldIndexOutOfRange(id, int(f), count)
	}
	return nil
}

// structSetFieldCopy deep-copies value into the field slot.
func structSetFieldCopy(v view, id string, i int, f FieldIndex, value ArrayCref) error {
	if err := structCheckSettable(v, id, i, f); err != nil {
		return err
	}
	dup, err := value.Duplicate()
	if err != nil {
		return err
	}
	host().SetFieldByNumber(v.h, i, int(f), dup.Release())
	return nil
}

// structSetFieldMove transfers ownership of value into the host.
func structSetFieldMove(v view, id string, i int, f FieldIndex, value *Array) error {
	if err := structCheckSettable(v, id, i, f); err != nil {
		return err
	}
	if !value.IsValid() {
		return errors.InvalidArray(id)
	}
	host().SetFieldByNumber(v.h, i, int(f), value.Release())
	return nil
}

func structAddField(v view, id, name string) error {
	if err := v.check(id); err != nil {
		return err
	}
	if name == "" {
		return errors.InvalidName(id, "field")
	}
	if !host().AddField(v.h, name) {
		return errors.New(id, "failed to add field")
	}
	return nil
}

// structRemoveField with the sentinel is a no-op, mirroring removal by
// a name that was never present.
func structRemoveField(v view, id string, f FieldIndex) error {
	if err := v.check(id); err != nil {
		return err
	}
	if f == InvalidFieldIndex {
		return nil
	}
	if count := host().FieldCount(v.h); int(f) >= count {
		return errors.FieldIndexOutOfRange(id, int(f), count)
	}
	host().RemoveField(v.h, int(f))
	return nil
}

// StructArray is the owning struct-array flavor. The field schema is
// shared across every linear index of the array.
type StructArray struct {
	Array
}

// ToStruct refines an owning Array into a StructArray. Ownership moves
// on success.
func ToStruct(a *Array) (StructArray, error) {
	const id = "matlabw:mx:StructArray:from"
	ok, err := a.IsStruct()
	if err != nil {
		return StructArray{}, err
	}
	if !ok {
		class, _ := a.ClassID()
		return StructArray{}, errors.TypeMismatch(id, "struct", class.String())
	}
	return StructArray{Array{view{a.Release()}}}, nil
}

// Ref returns the mutable struct view.
func (s StructArray) Ref() (StructRef, error) {
	r, err := s.Array.Ref()
	if err != nil {
		return StructRef{}, err
	}
	return StructRef{r}, nil
}

// Cref returns the immutable struct view.
func (s StructArray) Cref() (StructCref, error) {
	c, err := s.Array.Cref()
	if err != nil {
		return StructCref{}, err
	}
	return StructCref{c}, nil
}

// FieldCount returns the number of fields in the schema.
func (s StructArray) FieldCount() (int, error) {
	return structFieldCount(s.view, "matlabw:mx:StructArray:getFieldCount")
}

// FieldName returns the name of the field at f.
func (s StructArray) FieldName(f FieldIndex) (string, error) {
	return structFieldName(s.view, "matlabw:mx:StructArray:getFieldName", f)
}

// FieldIndexOf returns the index of the named field, or the sentinel on
// a miss. It never fails.
func (s StructArray) FieldIndexOf(name string) FieldIndex {
	return structFieldIndex(s.view, name)
}

// GetField returns a mutable view of the named field of element i.
// ok is false when the field is unknown or its slot is unset.
func (s StructArray) GetField(i int, name string) (ArrayRef, bool, error) {
	return s.GetFieldByNumber(i, s.FieldIndexOf(name))
}

// GetFieldByNumber is GetField keyed by field index.
func (s StructArray) GetFieldByNumber(i int, f FieldIndex) (ArrayRef, bool, error) {
	h, ok, err := structGetField(s.view, "matlabw:mx:StructArray:getField", i, f)
	if err != nil || !ok {
		return ArrayRef{}, false, err
	}
	return ArrayRef{view{h}}, true, nil
}

// Field is GetField for element 0.
func (s StructArray) Field(name string) (ArrayRef, bool, error) {
	return s.GetField(0, name)
}

// SetField copies value into the named field slot of element i.
func (s StructArray) SetField(i int, name string, value ArrayCref) error {
	return s.SetFieldByNumber(i, s.FieldIndexOf(name), value)
}

// SetFieldByNumber is SetField keyed by field index.
func (s StructArray) SetFieldByNumber(i int, f FieldIndex, value ArrayCref) error {
	return structSetFieldCopy(s.view, "matlabw:mx:StructArray:setField", i, f, value)
}

// SetFieldMove moves value into the named field slot of element i; the
// host takes ownership and value is nulled.
func (s StructArray) SetFieldMove(i int, name string, value *Array) error {
	return s.SetFieldMoveByNumber(i, s.FieldIndexOf(name), value)
}

// SetFieldMoveByNumber is SetFieldMove keyed by field index.
func (s StructArray) SetFieldMoveByNumber(i int, f FieldIndex, value *Array) error {
	return structSetFieldMove(s.view, "matlabw:mx:StructArray:setField", i, f, value)
}

// AddField appends a field to the shared schema. Cached field indices
// are invalidated.
func (s StructArray) AddField(name string) error {
	return structAddField(s.view, "matlabw:mx:StructArray:addField", name)
}

// RemoveField removes the named field from the shared schema. Cached
// field indices are invalidated.
func (s StructArray) RemoveField(name string) error {
	if name == "" {
		return errors.InvalidName("matlabw:mx:StructArray:removeField", "field")
	}
	return s.RemoveFieldByNumber(s.FieldIndexOf(name))
}

// RemoveFieldByNumber is RemoveField keyed by field index.
func (s StructArray) RemoveFieldByNumber(f FieldIndex) error {
	return structRemoveField(s.view, "matlabw:mx:StructArray:removeField", f)
}

// StructRef is the mutable non-owning struct flavor.
type StructRef struct {
	ArrayRef
}

// StructRefOf refines a mutable view, validating the struct class once.
func StructRefOf(r ArrayRef) (StructRef, error) {
	const id = "matlabw:mx:StructArrayRef:from"
	ok, err := r.IsStruct()
	if err != nil {
		return StructRef{}, err
	}
	if !ok {
		class, _ := r.ClassID()
		return StructRef{}, errors.TypeMismatch(id, "struct", class.String())
	}
	return StructRef{r}, nil
}

// Cref narrows the struct view to immutable.
func (s StructRef) Cref() StructCref {
	return StructCref{s.ArrayRef.Cref()}
}

// FieldCount returns the number of fields in the schema.
func (s StructRef) FieldCount() (int, error) {
	return structFieldCount(s.view, "matlabw:mx:StructArrayRef:getFieldCount")
}

// FieldName returns the name of the field at f.
func (s StructRef) FieldName(f FieldIndex) (string, error) {
	return structFieldName(s.view, "matlabw:mx:StructArrayRef:getFieldName", f)
}

// FieldIndexOf returns the index of the named field, or the sentinel on
// a miss. It never fails.
func (s StructRef) FieldIndexOf(name string) FieldIndex {
	return structFieldIndex(s.view, name)
}

// GetField returns a mutable view of the named field of element i.
func (s StructRef) GetField(i int, name string) (ArrayRef, bool, error) {
	return s.GetFieldByNumber(i, s.FieldIndexOf(name))
}

// GetFieldByNumber is GetField keyed by field index.
func (s StructRef) GetFieldByNumber(i int, f FieldIndex) (ArrayRef, bool, error) {
	h, ok, err := structGetField(s.view, "matlabw:mx:StructArrayRef:getField", i, f)
	if err != nil || !ok {
		return ArrayRef{}, false, err
	}
	return ArrayRef{view{h}}, true, nil
}

// Field is GetField for element 0.
func (s StructRef) Field(name string) (ArrayRef, bool, error) {
	return s.GetField(0, name)
}

// SetField copies value into the named field slot of element i.
func (s StructRef) SetField(i int, name string, value ArrayCref) error {
	return s.SetFieldByNumber(i, s.FieldIndexOf(name), value)
}

// SetFieldByNumber is SetField keyed by field index.
func (s StructRef) SetFieldByNumber(i int, f FieldIndex, value ArrayCref) error {
	return structSetFieldCopy(s.view, "matlabw:mx:StructArrayRef:setField", i, f, value)
}

// SetFieldMove moves value into the named field slot of element i.
func (s StructRef) SetFieldMove(i int, name string, value *Array) error {
	return s.SetFieldMoveByNumber(i, s.FieldIndexOf(name), value)
}

// SetFieldMoveByNumber is SetFieldMove keyed by field index.
func (s StructRef) SetFieldMoveByNumber(i int, f FieldIndex, value *Array) error {
	return structSetFieldMove(s.view, "matlabw:mx:StructArrayRef:setField", i, f, value)
}

// AddField appends a field to the shared schema.
func (s StructRef) AddField(name string) error {
	return structAddField(s.view, "matlabw:mx:StructArrayRef:addField", name)
}

// RemoveField removes the named field from the shared schema.
func (s StructRef) RemoveField(name string) error {
	if name == "" {
		return errors.InvalidName("matlabw:mx:StructArrayRef:removeField", "field")
	}
	return s.RemoveFieldByNumber(s.FieldIndexOf(name))
}

// RemoveFieldByNumber is RemoveField keyed by field index.
func (s StructRef) RemoveFieldByNumber(f FieldIndex) error {
	return structRemoveField(s.view, "matlabw:mx:StructArrayRef:removeField", f)
}

// StructCref is the immutable non-owning struct flavor: schema queries
// and read-only field access.
type StructCref struct {
	ArrayCref
}

// StructCrefOf refines an immutable view, validating the struct class
// once.
func StructCrefOf(c ArrayCref) (StructCref, error) {
	const id = "matlabw:mx:StructArrayCref:from"
	ok, err := c.IsStruct()
	if err != nil {
		return StructCref{}, err
	}
	if !ok {
		class, _ := c.ClassID()
		return StructCref{}, errors.TypeMismatch(id, "struct", class.String())
	}
	return StructCref{c}, nil
}

// FieldCount returns the number of fields in the schema.
func (s StructCref) FieldCount() (int, error) {
	return structFieldCount(s.view, "matlabw:mx:StructArrayCref:getFieldCount")
}

// FieldName returns the name of the field at f.
func (s StructCref) FieldName(f FieldIndex) (string, error) {
	return structFieldName(s.view, "matlabw:mx:StructArrayCref:getFieldName", f)
}

// FieldIndexOf returns the index of the named field, or the sentinel on
// a miss. It never fails.
func (s StructCref) FieldIndexOf(name string) FieldIndex {
	return structFieldIndex(s.view, name)
}

// GetField returns an immutable view of the named field of element i.
func (s StructCref) GetField(i int, name string) (ArrayCref, bool, error) {
	return s.GetFieldByNumber(i, s.FieldIndexOf(name))
}

// GetFieldByNumber is GetField keyed by field index.
func (s StructCref) GetFieldByNumber(i int, f FieldIndex) (ArrayCref, bool, error) {
	h, ok, err := structGetField(s.view, "matlabw:mx:StructArrayCref:getField", i, f)
	if err != nil || !ok {
		return ArrayCref{}, false, err
	}
	return ArrayCref{view{h}}, true, nil
}

// Field is GetField for element 0.
func (s StructCref) Field(name string) (ArrayCref, bool, error) {
	return s.GetField(0, name)
}
