package mx

import (
	"github.com/matlabw/mex-runtime/errors"
	"github.com/matlabw/mex-runtime/hostapi"
)

// GetProperty returns the named property of object element i. ok is
// false when the host reports no such property.
func GetProperty(array ArrayRef, i int, name string) (ArrayCref, bool, error) {
	const id = "matlabw:mx:getProperty"
	if err := array.check(id); err != nil {
		return ArrayCref{}, false, err
	}
	if name == "" {
		return ArrayCref{}, false, errors.InvalidName(id, "property")
	}
	prop := host().GetProperty(array.Raw(), i, name)
	if prop == hostapi.Null {
		return ArrayCref{}, false, nil
	}
	return ArrayCref{view{prop}}, true, nil
}

// GetPropertyOf is GetProperty for element 0.
func GetPropertyOf(array ArrayRef, name string) (ArrayCref, bool, error) {
	return GetProperty(array, 0, name)
}

// SetProperty copies value into the named property of object element i.
func SetProperty(array ArrayRef, i int, name string, value ArrayCref) error {
	const id = "matlabw:mx:setProperty"
	if err := array.check(id); err != nil {
		return err
	}
	if name == "" {
		return errors.InvalidName(id, "property")
	}
	if err := value.check(id); err != nil {
		return err
	}
	host().SetProperty(array.Raw(), i, name, value.Raw())
	return nil
}

// SetPropertyOf is SetProperty for element 0.
func SetPropertyOf(array ArrayRef, name string, value ArrayCref) error {
	return SetProperty(array, 0, name, value)
}
