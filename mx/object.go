package mx

import (
	"github.com/matlabw/mex-runtime/errors"
)

// MakeObjectArray attaches a class name to a struct array, turning it
// into an object array. The struct is consumed: on success its handle
// carries the tag and ownership returns to the caller as an untyped
// Array. On failure the struct stays intact.
func MakeObjectArray(src *StructArray, className string) (Array, error) {
	const id = "matlabw:mx:makeObjectArray"

	if !src.IsValid() {
		return Array{}, errors.New(id, "invalid source array")
	}
	if className == "" {
		return Array{}, errors.InvalidName(id, "class")
	}

	if err := host().SetClassName(src.Raw(), className); err != nil {
		return Array{}, errors.Wrap(id, "failed to set class name", err)
	}
	return Array{view{src.Release()}}, nil
}
