package mx

import (
	"unsafe"

	"github.com/matlabw/mex-runtime/errors"
	"github.com/matlabw/mex-runtime/hostapi"
)

// Char is one UTF-16 code unit of a character array.
type Char uint16

// Logical is one element of a logical array.
type Logical uint8

// Element constrains the element types the typed flavors support.
// complex128 and complex64 map onto the host's interleaved-complex
// double and single storage.
type Element interface {
	~float64 | ~float32 | ~int8 | ~uint8 | ~int16 | ~uint16 |
		~int32 | ~uint32 | ~int64 | ~uint64 | ~complex64 | ~complex128
}

// classOf maps an element type to its host class tag and complexity.
// Unspecialized types report ClassUnknown.
func classOf[T Element]() (hostapi.ClassID, hostapi.Complexity) {
	var zero T
	switch any(zero).(type) {
	case float64:
		return hostapi.ClassDouble, hostapi.Real
	case float32:
		return hostapi.ClassSingle, hostapi.Real
	case int8:
		return hostapi.ClassInt8, hostapi.Real
	case uint8:
		return hostapi.ClassUint8, hostapi.Real
	case int16:
		return hostapi.ClassInt16, hostapi.Real
	case uint16:
		return hostapi.ClassUint16, hostapi.Real
	case int32:
		return hostapi.ClassInt32, hostapi.Real
	case uint32:
		return hostapi.ClassUint32, hostapi.Real
	case int64:
		return hostapi.ClassInt64, hostapi.Real
	case uint64:
		return hostapi.ClassUint64, hostapi.Real
	case Char:
		return hostapi.ClassChar, hostapi.Real
	case Logical:
		return hostapi.ClassLogical, hostapi.Real
	case complex128:
		return hostapi.ClassDouble, hostapi.Complex
	case complex64:
		return hostapi.ClassSingle, hostapi.Complex
	default:
		return hostapi.ClassUnknown, hostapi.Real
	}
}

// checkClass validates that the handle's class matches T. The check
// runs once at the construction boundary; element access does not
// repeat it.
func checkClass[T Element](id string, v view) error {
	if err := v.check(id); err != nil {
		return err
	}
	class, cx := classOf[T]()
	got := host().ClassIDOf(v.h)
	if class == hostapi.ClassUnknown || got != class {
		return errors.TypeMismatch(id, class.String(), got.String())
	}
	if host().IsComplex(v.h) != (cx == hostapi.Complex) {
		return errors.TypeMismatch(id, class.String()+" complexity", got.String())
	}
	return nil
}

// typedData reinterprets the host storage as a []T over the flat
// column-major element order.
func typedData[T Element](v view) []T {
	n := host().NumElements(v.h)
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(host().Data(v.h)), n)
}

// DataAs returns the element storage of any flavor as a []T, failing
// with the given identifier when the class does not match. The id is
// the caller's, so mismatches report the failing site.
func DataAs[T Element](id string, v Viewer) ([]T, error) {
	w := view{v.Raw()}
	if err := checkClass[T](id, w); err != nil {
		return nil, err
	}
	return typedData[T](w), nil
}

// ScalarAs returns element 0 of the array as a T.
func ScalarAs[T Element](id string, v Viewer) (T, error) {
	data, err := DataAs[T](id, v)
	if err != nil {
		var zero T
		return zero, err
	}
	if len(data) == 0 {
		var zero T
		return zero, errors.New(id, "array has no elements")
	}
	return data[0], nil
}

// TypedArray is the owning flavor refined with an element type fixed at
// construction.
type TypedArray[T Element] struct {
	Array
}

// ToTyped refines an owning Array into a TypedArray. Ownership moves on
// success and stays with the input on failure.
func ToTyped[T Element](a *Array) (TypedArray[T], error) {
	if err := checkClass[T]("matlabw:mx:TypedArray:from", a.view); err != nil {
		return TypedArray[T]{}, err
	}
	return TypedArray[T]{Array{view{a.Release()}}}, nil
}

// Data returns the elements in the host's flat column-major order. The
// slice aliases host storage; it is valid while the array is.
func (a TypedArray[T]) Data() ([]T, error) {
	if err := a.check("matlabw:mx:TypedArray:getData"); err != nil {
		return nil, err
	}
	return typedData[T](a.view), nil
}

// Scalar returns element 0.
func (a TypedArray[T]) Scalar() (T, error) {
	return ScalarAs[T]("matlabw:mx:TypedArray:getScalar", a)
}

// Ref returns the mutable typed view.
func (a TypedArray[T]) Ref() (TypedRef[T], error) {
	if err := a.check("matlabw:mx:TypedArray:ref"); err != nil {
		return TypedRef[T]{}, err
	}
	return TypedRef[T]{ArrayRef{a.view}}, nil
}

// Cref returns the immutable typed view.
func (a TypedArray[T]) Cref() (TypedCref[T], error) {
	if err := a.check("matlabw:mx:TypedArray:cref"); err != nil {
		return TypedCref[T]{}, err
	}
	return TypedCref[T]{ArrayCref{a.view}}, nil
}

// TypedRef is the mutable non-owning flavor with a fixed element type.
type TypedRef[T Element] struct {
	ArrayRef
}

// TypedRefOf refines a mutable view, validating the element class once.
func TypedRefOf[T Element](r ArrayRef) (TypedRef[T], error) {
	if err := checkClass[T]("matlabw:mx:TypedArrayRef:from", r.view); err != nil {
		return TypedRef[T]{}, err
	}
	return TypedRef[T]{r}, nil
}

// Data returns the elements in the host's flat column-major order.
func (r TypedRef[T]) Data() ([]T, error) {
	if err := r.check("matlabw:mx:TypedArrayRef:getData"); err != nil {
		return nil, err
	}
	return typedData[T](r.view), nil
}

// Scalar returns element 0.
func (r TypedRef[T]) Scalar() (T, error) {
	return ScalarAs[T]("matlabw:mx:TypedArrayRef:getScalar", r)
}

// Cref narrows the typed view to immutable.
func (r TypedRef[T]) Cref() TypedCref[T] {
	return TypedCref[T]{ArrayCref{r.view}}
}

// TypedCref is the immutable non-owning flavor with a fixed element
// type. Its Data slice must be treated as read-only.
type TypedCref[T Element] struct {
	ArrayCref
}

// TypedCrefOf refines an immutable view, validating the element class
// once.
func TypedCrefOf[T Element](c ArrayCref) (TypedCref[T], error) {
	if err := checkClass[T]("matlabw:mx:TypedArrayCref:from", c.view); err != nil {
		return TypedCref[T]{}, err
	}
	return TypedCref[T]{c}, nil
}

// Data returns the elements in the host's flat column-major order.
// Callers must not write through the returned slice.
func (c TypedCref[T]) Data() ([]T, error) {
	if err := c.check("matlabw:mx:TypedArrayCref:getData"); err != nil {
		return nil, err
	}
	return typedData[T](c.view), nil
}

// Scalar returns element 0.
func (c TypedCref[T]) Scalar() (T, error) {
	return ScalarAs[T]("matlabw:mx:TypedArrayCref:getScalar", c)
}
