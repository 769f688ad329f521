package mx

import (
	"github.com/matlabw/mex-runtime/errors"
	"github.com/matlabw/mex-runtime/hostapi"
)

// MakeUninitNumericArray allocates a numeric array whose contents are
// undefined. Callers must write every element before handing the array
// out.
func MakeUninitNumericArray[T Element](dims ...int) (TypedArray[T], error) {
	const id = "matlabw:mx:makeUninitNumericArray"
	class, cx := classOf[T]()
	if !class.IsNumeric() {
		return TypedArray[T]{}, errors.TypeMismatch(id, "numeric", class.String())
	}
	h := host().CreateUninitNumeric(class, dims, cx)
	if h == hostapi.Null {
		return TypedArray[T]{}, errors.AllocationFailed(id, "numeric array")
	}
	return TypedArray[T]{Array{view{h}}}, nil
}

// MakeNumericArray allocates a zero-initialized numeric array.
func MakeNumericArray[T Element](dims ...int) (TypedArray[T], error) {
	const id = "matlabw:mx:makeNumericArray"
	class, cx := classOf[T]()
	if !class.IsNumeric() {
		return TypedArray[T]{}, errors.TypeMismatch(id, "numeric", class.String())
	}
	h := host().CreateNumeric(class, dims, cx)
	if h == hostapi.Null {
		return TypedArray[T]{}, errors.AllocationFailed(id, "numeric array")
	}
	return TypedArray[T]{Array{view{h}}}, nil
}

// MakeNumericScalar allocates a 1x1 numeric array holding value.
func MakeNumericScalar[T Element](value T) (TypedArray[T], error) {
	a, err := MakeNumericArray[T](1, 1)
	if err != nil {
		return TypedArray[T]{}, err
	}
	data, err := a.Data()
	if err != nil {
		a.Destroy()
		return TypedArray[T]{}, err
	}
	data[0] = value
	return a, nil
}

// MakeLogicalScalar allocates a 1x1 logical array holding value.
func MakeLogicalScalar(value bool) (TypedArray[Logical], error) {
	const id = "matlabw:mx:makeLogicalScalar"
	h := host().CreateLogical([]int{1, 1})
	if h == hostapi.Null {
		return TypedArray[Logical]{}, errors.AllocationFailed(id, "logical array")
	}
	a := TypedArray[Logical]{Array{view{h}}}
	if value {
		data, err := a.Data()
		if err != nil {
			a.Destroy()
			return TypedArray[Logical]{}, err
		}
		data[0] = 1
	}
	return a, nil
}

// MakeCharArray allocates a zero-initialized character array.
func MakeCharArray(dims ...int) (CharArray, error) {
	const id = "matlabw:mx:makeCharArray"
	h := host().CreateCharArray(dims)
	if h == hostapi.Null {
		return CharArray{}, errors.AllocationFailed(id, "char array")
	}
	return CharArray{TypedArray[Char]{Array{view{h}}}}, nil
}

// MakeString allocates a single-string character array from a byte
// string; each byte widens to one code unit. The host allocates the
// same spare terminator slot MakeUTF16String does, so the string views
// exclude it and never the input bytes.
func MakeString(s string) (CharArray, error) {
	const id = "matlabw:mx:makeCharArray"
	h := host().CreateCharFromBytes([]byte(s))
	if h == hostapi.Null {
		return CharArray{}, errors.AllocationFailed(id, "char array")
	}
	return CharArray{TypedArray[Char]{Array{view{h}}}}, nil
}

// MakeUTF16String allocates a single-string character array from UTF-16
// code units. One extra slot is allocated beyond the copied units; the
// host zero-initializes it, and the string views exclude it.
func MakeUTF16String(units []uint16) (CharArray, error) {
	a, err := MakeCharArray(len(units) + 1)
	if err != nil {
		return CharArray{}, err
	}
	data, err := a.Data()
	if err != nil {
		a.Destroy()
		return CharArray{}, err
	}
	for i, u := range units {
		data[i] = Char(u)
	}
	return a, nil
}

// MakeStructArray allocates a struct array with the declared field
// schema; every field slot starts out unset.
func MakeStructArray(dims []int, fields ...string) (StructArray, error) {
	const id = "matlabw:mx:makeStructArray"
	for _, f := range fields {
		if f == "" {
			return StructArray{}, errors.InvalidName(id, "field")
		}
	}
	h := host().CreateStruct(dims, fields)
	if h == hostapi.Null {
		return StructArray{}, errors.AllocationFailed(id, "struct array")
	}
	return StructArray{Array{view{h}}}, nil
}

// MakeCellArray allocates a cell array with unset element slots.
func MakeCellArray(dims ...int) (CellArray, error) {
	const id = "matlabw:mx:makeCellArray"
	h := host().CreateCell(dims)
	if h == hostapi.Null {
		return CellArray{}, errors.AllocationFailed(id, "cell array")
	}
	return CellArray{Array{view{h}}}, nil
}
