package mx

import (
	"github.com/matlabw/mex-runtime/errors"
	"github.com/matlabw/mex-runtime/hostapi"
)

func cellCheckIndex(v view, id string, i int) error {
	if err := v.check(id); err != nil {
		return err
	}
	if n := host().NumElements(v.h); i < 0 || i >= n {
		return errors.Newf(id, "cell index %d out of range (element count %d)", i, n)
	}
	return nil
}

// cellGet distinguishes "unset slot" (ok=false) from failure.
func cellGet(v view, id string, i int) (hostapi.Handle, bool, error) {
	if err := cellCheckIndex(v, id, i); err != nil {
		return hostapi.Null, false, err
	}
	h := host().GetCell(v.h, i)
	if h == hostapi.Null {
		return hostapi.Null, false, nil
	}
	return h, true, nil
}

func cellSetCopy(v view, id string, i int, value ArrayCref) error {
	if err := cellCheckIndex(v, id, i); err != nil {
		return err
	}
	dup, err := value.Duplicate()
	if err != nil {
		return err
	}
	host().SetCell(v.h, i, dup.Release())
	return nil
}

func cellSetMove(v view, id string, i int, value *Array) error {
	if err := cellCheckIndex(v, id, i); err != nil {
		return err
	}
	if !value.IsValid() {
		return errors.InvalidArray(id)
	}
	host().SetCell(v.h, i, value.Release())
	return nil
}

// CellArray is the owning cell-array flavor. Each element is itself an
// untyped array handle owned by the cell array; typed iteration is
// unavailable.
type CellArray struct {
	Array
}

// ToCell refines an owning Array into a CellArray. Ownership moves on
// success.
func ToCell(a *Array) (CellArray, error) {
	const id = "matlabw:mx:CellArray:from"
	ok, err := a.IsCell()
	if err != nil {
		return CellArray{}, err
	}
	if !ok {
		class, _ := a.ClassID()
		return CellArray{}, errors.TypeMismatch(id, "cell", class.String())
	}
	return CellArray{Array{view{a.Release()}}}, nil
}

// Ref returns the mutable cell view.
func (c CellArray) Ref() (CellRef, error) {
	r, err := c.Array.Ref()
	if err != nil {
		return CellRef{}, err
	}
	return CellRef{r}, nil
}

// Cref returns the immutable cell view.
func (c CellArray) Cref() (CellCref, error) {
	cr, err := c.Array.Cref()
	if err != nil {
		return CellCref{}, err
	}
	return CellCref{cr}, nil
}

// Get returns a mutable view of the element at linear index i. ok is
// false when the slot is unset.
func (c CellArray) Get(i int) (ArrayRef, bool, error) {
	h, ok, err := cellGet(c.view, "matlabw:mx:CellArray:getCell", i)
	if err != nil || !ok {
		return ArrayRef{}, false, err
	}
	return ArrayRef{view{h}}, true, nil
}

// Set copies value into the element slot at linear index i.
func (c CellArray) Set(i int, value ArrayCref) error {
	return cellSetCopy(c.view, "matlabw:mx:CellArray:setCell", i, value)
}

// SetMove moves value into the element slot at linear index i; the host
// takes ownership and value is nulled.
func (c CellArray) SetMove(i int, value *Array) error {
	return cellSetMove(c.view, "matlabw:mx:CellArray:setCell", i, value)
}

// CellRef is the mutable non-owning cell flavor.
type CellRef struct {
	ArrayRef
}

// CellRefOf refines a mutable view, validating the cell class once.
func CellRefOf(r ArrayRef) (CellRef, error) {
	const id = "matlabw:mx:CellArrayRef:from"
	ok, err := r.IsCell()
	if err != nil {
		return CellRef{}, err
	}
	if !ok {
		class, _ := r.ClassID()
		return CellRef{}, errors.TypeMismatch(id, "cell", class.String())
	}
	return CellRef{r}, nil
}

// Cref narrows the cell view to immutable.
func (c CellRef) Cref() CellCref {
	return CellCref{c.ArrayRef.Cref()}
}

// Get returns a mutable view of the element at linear index i.
func (c CellRef) Get(i int) (ArrayRef, bool, error) {
	h, ok, err := cellGet(c.view, "matlabw:mx:CellArrayRef:getCell", i)
	if err != nil || !ok {
		return ArrayRef{}, false, err
	}
	return ArrayRef{view{h}}, true, nil
}

// Set copies value into the element slot at linear index i.
func (c CellRef) Set(i int, value ArrayCref) error {
	return cellSetCopy(c.view, "matlabw:mx:CellArrayRef:setCell", i, value)
}

// SetMove moves value into the element slot at linear index i.
func (c CellRef) SetMove(i int, value *Array) error {
	return cellSetMove(c.view, "matlabw:mx:CellArrayRef:setCell", i, value)
}

// CellCref is the immutable non-owning cell flavor.
type CellCref struct {
	ArrayCref
}

// CellCrefOf refines an immutable view, validating the cell class once.
func CellCrefOf(c ArrayCref) (CellCref, error) {
	const id = "matlabw:mx:CellArrayCref:from"
	ok, err := c.IsCell()
	if err != nil {
		return CellCref{}, err
	}
	if !ok {
		class, _ := c.ClassID()
		return CellCref{}, errors.TypeMismatch(id, "cell", class.String())
	}
	return CellCref{c}, nil
}

// Get returns an immutable view of the element at linear index i.
func (c CellCref) Get(i int) (ArrayCref, bool, error) {
	h, ok, err := cellGet(c.view, "matlabw:mx:CellArrayCref:getCell", i)
	if err != nil || !ok {
		return ArrayCref{}, false, err
	}
	return ArrayCref{view{h}}, true, nil
}
