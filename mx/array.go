package mx

import (
	"github.com/matlabw/mex-runtime/errors"
	"github.com/matlabw/mex-runtime/hostapi"
)

// Array is the owning handle flavor: exactly one Array refers to any
// live handle, and dropping it without Release must be paired with
// Destroy. The zero value is the null array.
//
// Array has move semantics: plain struct assignment aliases the handle,
// so transfer ownership with Release/Adopt (or slice assignment followed
// by Release, as the gateway does) and clone with Duplicate.
type Array struct {
	view
}

// Adopt wraps a raw host handle in an owning Array. The caller must
// hold ownership of the handle; adopting Null yields the null array.
func Adopt(raw hostapi.Handle) Array {
	return Array{view{raw}}
}

// Release returns the raw handle and nulls the array without destroying
// it. This is the only way a handle survives its owning wrapper.
func (a *Array) Release() hostapi.Handle {
	raw := a.h
	a.h = hostapi.Null
	return raw
}

// Destroy releases the host allocation and nulls the array. Destroying
// a null array is a no-op, so Destroy is safe to defer unconditionally.
func (a *Array) Destroy() {
	if a.h != hostapi.Null {
		host().Destroy(a.h)
		a.h = hostapi.Null
	}
}

// Resize delegates the reshape to the host. The element-count product
// may differ from the old shape; content semantics follow the host.
func (a Array) Resize(dims ...int) error {
	const id = "matlabw:mx:Array:resize"
	if err := a.check(id); err != nil {
		return err
	}
	if err := host().SetDims(a.h, dims); err != nil {
		return errors.Wrap(id, "failed to resize array", err)
	}
	return nil
}

// Ref returns a mutable non-owning view. It fails on the null array.
func (a Array) Ref() (ArrayRef, error) {
	if err := a.check("matlabw:mx:Array:ref"); err != nil {
		return ArrayRef{}, err
	}
	return ArrayRef{view{a.h}}, nil
}

// Cref returns an immutable non-owning view. It fails on the null
// array.
func (a Array) Cref() (ArrayCref, error) {
	if err := a.check("matlabw:mx:Array:cref"); err != nil {
		return ArrayCref{}, err
	}
	return ArrayCref{view{a.h}}, nil
}

// ArrayRef is the mutable non-owning flavor. It is valid only while the
// owning Array (or host stack slot) it was taken from stays live; the
// layer does not track that, callers guarantee it.
type ArrayRef struct {
	view
}

// NewRef wraps a raw handle in a mutable view. Null handles are
// rejected; a view never refers to nothing.
func NewRef(raw hostapi.Handle) (ArrayRef, error) {
	if raw == hostapi.Null {
		return ArrayRef{}, errors.InvalidArray("matlabw:mx:ArrayRef:new")
	}
	return ArrayRef{view{raw}}, nil
}

// Cref narrows the view to immutable.
func (r ArrayRef) Cref() ArrayCref {
	return ArrayCref{r.view}
}

// ArrayCref is the immutable non-owning flavor: it carries no mutating
// operation, which is what makes a const view safe to hand out.
type ArrayCref struct {
	view
}

// NewCref wraps a raw handle in an immutable view. Null handles are
// rejected.
func NewCref(raw hostapi.Handle) (ArrayCref, error) {
	if raw == hostapi.Null {
		return ArrayCref{}, errors.InvalidArray("matlabw:mx:ArrayCref:new")
	}
	return ArrayCref{view{raw}}, nil
}
