package mx

import (
	"unsafe"

	"github.com/matlabw/mex-runtime/errors"
	"github.com/matlabw/mex-runtime/hostapi"
)

// Viewer is the vocabulary every handle flavor shares: any wrapper that
// can surface its raw host handle. DataAs and ScalarAs accept any
// Viewer, as do the composite helpers.
type Viewer interface {
	// Raw returns the wrapped host handle, Null for an empty wrapper.
	Raw() hostapi.Handle

	// IsValid reports whether the wrapper refers to a live handle.
	IsValid() bool
}

func host() hostapi.Host {
	return hostapi.Current()
}

// view is the common introspection core embedded by every flavor. It
// never owns the handle it wraps.
type view struct {
	h hostapi.Handle
}

// Raw returns the wrapped host handle.
func (v view) Raw() hostapi.Handle {
	return v.h
}

// IsValid reports whether the wrapper refers to a live handle.
func (v view) IsValid() bool {
	return v.h != hostapi.Null
}

func (v view) check(id string) error {
	if v.h == hostapi.Null {
		return errors.InvalidArray(id)
	}
	return nil
}

// Rank returns the number of dimensions.
func (v view) Rank() (int, error) {
	if err := v.check("matlabw:mx:Array:getRank"); err != nil {
		return 0, err
	}
	return host().Rank(v.h), nil
}

// Dims returns the dimension sizes. The slice is a view of host state;
// callers must not retain it across mutations.
func (v view) Dims() ([]int, error) {
	if err := v.check("matlabw:mx:Array:getDims"); err != nil {
		return nil, err
	}
	return host().Dims(v.h), nil
}

// DimM returns the number of rows.
func (v view) DimM() (int, error) {
	if err := v.check("matlabw:mx:Array:getDimM"); err != nil {
		return 0, err
	}
	return host().Dims(v.h)[0], nil
}

// DimN returns the number of columns: the product of every dimension
// after the first.
func (v view) DimN() (int, error) {
	if err := v.check("matlabw:mx:Array:getDimN"); err != nil {
		return 0, err
	}
	n := 1
	for _, d := range host().Dims(v.h)[1:] {
		n *= d
	}
	return n, nil
}

// NumElements returns the total element count.
func (v view) NumElements() (int, error) {
	if err := v.check("matlabw:mx:Array:getSize"); err != nil {
		return 0, err
	}
	return host().NumElements(v.h), nil
}

// ElementSize returns the per-element byte size.
func (v view) ElementSize() (int, error) {
	if err := v.check("matlabw:mx:Array:getSizeOfElement"); err != nil {
		return 0, err
	}
	return host().ElementSize(v.h), nil
}

// ClassID returns the element class tag.
func (v view) ClassID() (hostapi.ClassID, error) {
	if err := v.check("matlabw:mx:Array:getClassId"); err != nil {
		return hostapi.ClassUnknown, err
	}
	return host().ClassIDOf(v.h), nil
}

// ClassName returns the class name reported by the host.
func (v view) ClassName() (string, error) {
	if err := v.check("matlabw:mx:Array:getClassName"); err != nil {
		return "", err
	}
	return host().ClassNameOf(v.h), nil
}

// IsNumeric reports whether the element class is numeric.
func (v view) IsNumeric() (bool, error) {
	if err := v.check("matlabw:mx:Array:isNumeric"); err != nil {
		return false, err
	}
	return host().ClassIDOf(v.h).IsNumeric(), nil
}

// IsComplex reports interleaved-complex element storage.
func (v view) IsComplex() (bool, error) {
	if err := v.check("matlabw:mx:Array:isComplex"); err != nil {
		return false, err
	}
	return host().IsComplex(v.h), nil
}

// IsEmpty reports a zero element count.
func (v view) IsEmpty() (bool, error) {
	if err := v.check("matlabw:mx:Array:isEmpty"); err != nil {
		return false, err
	}
	return host().NumElements(v.h) == 0, nil
}

// IsScalar reports a single-element array.
func (v view) IsScalar() (bool, error) {
	if err := v.check("matlabw:mx:Array:isScalar"); err != nil {
		return false, err
	}
	return host().NumElements(v.h) == 1, nil
}

func (v view) isClassID(id string, class hostapi.ClassID) (bool, error) {
	if err := v.check(id); err != nil {
		return false, err
	}
	return host().ClassIDOf(v.h) == class, nil
}

// IsDouble reports a double element class.
func (v view) IsDouble() (bool, error) {
	return v.isClassID("matlabw:mx:Array:isDouble", hostapi.ClassDouble)
}

// IsSingle reports a single element class.
func (v view) IsSingle() (bool, error) {
	return v.isClassID("matlabw:mx:Array:isSingle", hostapi.ClassSingle)
}

// IsInt8 reports an int8 element class.
func (v view) IsInt8() (bool, error) {
	return v.isClassID("matlabw:mx:Array:isInt8", hostapi.ClassInt8)
}

// IsUint8 reports a uint8 element class.
func (v view) IsUint8() (bool, error) {
	return v.isClassID("matlabw:mx:Array:isUint8", hostapi.ClassUint8)
}

// IsInt16 reports an int16 element class.
func (v view) IsInt16() (bool, error) {
	return v.isClassID("matlabw:mx:Array:isInt16", hostapi.ClassInt16)
}

// IsUint16 reports a uint16 element class.
func (v view) IsUint16() (bool, error) {
	return v.isClassID("matlabw:mx:Array:isUint16", hostapi.ClassUint16)
}

// IsInt32 reports an int32 element class.
func (v view) IsInt32() (bool, error) {
	return v.isClassID("matlabw:mx:Array:isInt32", hostapi.ClassInt32)
}

// IsUint32 reports a uint32 element class.
func (v view) IsUint32() (bool, error) {
	return v.isClassID("matlabw:mx:Array:isUint32", hostapi.ClassUint32)
}

// IsInt64 reports an int64 element class.
func (v view) IsInt64() (bool, error) {
	return v.isClassID("matlabw:mx:Array:isInt64", hostapi.ClassInt64)
}

// IsUint64 reports a uint64 element class.
func (v view) IsUint64() (bool, error) {
	return v.isClassID("matlabw:mx:Array:isUint64", hostapi.ClassUint64)
}

// IsSparse reports sparse storage.
func (v view) IsSparse() (bool, error) {
	if err := v.check("matlabw:mx:Array:isSparse"); err != nil {
		return false, err
	}
	return host().IsSparse(v.h), nil
}

// IsChar reports a character element class.
func (v view) IsChar() (bool, error) {
	return v.isClassID("matlabw:mx:Array:isChar", hostapi.ClassChar)
}

// IsLogical reports a logical element class.
func (v view) IsLogical() (bool, error) {
	return v.isClassID("matlabw:mx:Array:isLogical", hostapi.ClassLogical)
}

// IsLogicalScalar reports a 1x1 logical array.
func (v view) IsLogicalScalar() (bool, error) {
	if err := v.check("matlabw:mx:Array:isLogicalScalar"); err != nil {
		return false, err
	}
	return host().ClassIDOf(v.h) == hostapi.ClassLogical && host().NumElements(v.h) == 1, nil
}

// IsLogicalScalarTrue reports a 1x1 logical array holding true.
func (v view) IsLogicalScalarTrue() (bool, error) {
	ok, err := v.IsLogicalScalar()
	if err != nil || !ok {
		return false, err
	}
	p := host().Data(v.h)
	if p == nil {
		return false, nil
	}
	return *(*uint8)(p) != 0, nil
}

// IsStruct reports a struct element class.
func (v view) IsStruct() (bool, error) {
	return v.isClassID("matlabw:mx:Array:isStruct", hostapi.ClassStruct)
}

// IsCell reports a cell element class.
func (v view) IsCell() (bool, error) {
	return v.isClassID("matlabw:mx:Array:isCell", hostapi.ClassCell)
}

// IsClass reports whether the array's class name equals name.
func (v view) IsClass(name string) (bool, error) {
	const id = "matlabw:mx:Array:isClass"
	if err := v.check(id); err != nil {
		return false, err
	}
	if name == "" {
		return false, errors.InvalidName(id, "class")
	}
	return host().ClassNameOf(v.h) == name, nil
}

// Data returns the raw pointer to the flat element storage. Typed
// access goes through DataAs or the typed flavors.
func (v view) Data() (unsafe.Pointer, error) {
	if err := v.check("matlabw:mx:Array:getData"); err != nil {
		return nil, err
	}
	return host().Data(v.h), nil
}

// Duplicate deep-copies the array into a fresh owning wrapper. Cloning
// is always spelled out at the call site; there is no implicit copy of
// owning handles.
func (v view) Duplicate() (Array, error) {
	const id = "matlabw:mx:Array:duplicate"
	if err := v.check(id); err != nil {
		return Array{}, err
	}
	dup := host().Duplicate(v.h)
	if dup == hostapi.Null {
		return Array{}, errors.New(id, "failed to duplicate array")
	}
	return Array{view{dup}}, nil
}
