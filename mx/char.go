package mx

import (
	"github.com/matlabw/mex-runtime/errors"
)

// charIsSingleString: rank <= 2 and a single row. Only this shape
// converts to a contiguous string view.
func charIsSingleString(v view, id string) (bool, error) {
	if err := v.check(id); err != nil {
		return false, err
	}
	if host().Rank(v.h) > 2 {
		return false, nil
	}
	return host().Dims(v.h)[0] == 1, nil
}

// charUnits returns the code units of a single string. The count is
// DimN with one trailing NUL slot excluded: every string factory path
// allocates one spare slot that the host zero-initializes, and that
// terminator is not part of the string.
func charUnits(v view, id string) ([]Char, error) {
	ok, err := charIsSingleString(v, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(id, "array must be a single string")
	}
	if err := checkClass[Char](id, v); err != nil {
		return nil, err
	}
	units := typedData[Char](v)
	if n := len(units); n > 0 && units[n-1] == 0 {
		units = units[:n-1]
	}
	return units, nil
}

// charToASCII truncates each code unit to its low byte.
func charToASCII(v view, id string) (string, error) {
	units, err := charUnits(v, id)
	if err != nil {
		return "", err
	}
	out := make([]byte, len(units))
	for i, u := range units {
		out[i] = byte(u)
	}
	return string(out), nil
}

// ToASCII converts any character-array view to a byte string. Non-char
// classes and multi-row arrays fail.
func ToASCII(v Viewer) (string, error) {
	return charToASCII(view{v.Raw()}, "matlabw:mx:toAscii")
}

// CharArray is the owning character-array flavor. Storage is UTF-16
// code units.
type CharArray struct {
	TypedArray[Char]
}

// ToChar refines an owning Array into a CharArray. Ownership moves on
// success.
func ToChar(a *Array) (CharArray, error) {
	t, err := ToTyped[Char](a)
	if err != nil {
		return CharArray{}, err
	}
	return CharArray{t}, nil
}

// IsSingleString reports rank <= 2 with a single row.
func (a CharArray) IsSingleString() (bool, error) {
	return charIsSingleString(a.view, "matlabw:mx:CharArray:isSingleString")
}

// ToASCII converts the single string to bytes, truncating each code
// unit to its low byte. It fails when the array is not a single string.
func (a CharArray) ToASCII() (string, error) {
	return charToASCII(a.view, "matlabw:mx:CharArray:toAscii")
}

// UTF16 returns the borrowed code-unit view of the single string.
func (a CharArray) UTF16() ([]Char, error) {
	return charUnits(a.view, "matlabw:mx:CharArray:utf16View")
}

// Ref returns the mutable character view.
func (a CharArray) Ref() (CharRef, error) {
	r, err := a.TypedArray.Ref()
	if err != nil {
		return CharRef{}, err
	}
	return CharRef{r}, nil
}

// Cref returns the immutable character view.
func (a CharArray) Cref() (CharCref, error) {
	c, err := a.TypedArray.Cref()
	if err != nil {
		return CharCref{}, err
	}
	return CharCref{c}, nil
}

// CharRef is the mutable non-owning character flavor.
type CharRef struct {
	TypedRef[Char]
}

// CharRefOf refines a mutable view, validating the char class once.
func CharRefOf(r ArrayRef) (CharRef, error) {
	t, err := TypedRefOf[Char](r)
	if err != nil {
		return CharRef{}, err
	}
	return CharRef{t}, nil
}

// IsSingleString reports rank <= 2 with a single row.
func (r CharRef) IsSingleString() (bool, error) {
	return charIsSingleString(r.view, "matlabw:mx:CharArrayRef:isSingleString")
}

// ToASCII converts the single string to bytes.
func (r CharRef) ToASCII() (string, error) {
	return charToASCII(r.view, "matlabw:mx:CharArrayRef:toAscii")
}

// UTF16 returns the borrowed code-unit view of the single string.
func (r CharRef) UTF16() ([]Char, error) {
	return charUnits(r.view, "matlabw:mx:CharArrayRef:utf16View")
}

// Cref narrows the character view to immutable.
func (r CharRef) Cref() CharCref {
	return CharCref{r.TypedRef.Cref()}
}

// CharCref is the immutable non-owning character flavor.
type CharCref struct {
	TypedCref[Char]
}

// CharCrefOf refines an immutable view, validating the char class once.
func CharCrefOf(c ArrayCref) (CharCref, error) {
	t, err := TypedCrefOf[Char](c)
	if err != nil {
		return CharCref{}, err
	}
	return CharCref{t}, nil
}

// IsSingleString reports rank <= 2 with a single row.
func (c CharCref) IsSingleString() (bool, error) {
	return charIsSingleString(c.view, "matlabw:mx:CharArrayCref:isSingleString")
}

// ToASCII converts the single string to bytes.
func (c CharCref) ToASCII() (string, error) {
	return charToASCII(c.view, "matlabw:mx:CharArrayCref:toAscii")
}

// UTF16 returns the borrowed code-unit view of the single string.
func (c CharCref) UTF16() ([]Char, error) {
	return charUnits(c.view, "matlabw:mx:CharArrayCref:utf16View")
}
