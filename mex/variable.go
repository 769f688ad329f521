package mex

import (
	"github.com/matlabw/mex-runtime/errors"
	"github.com/matlabw/mex-runtime/hostapi"
	"github.com/matlabw/mex-runtime/mx"
)

// PutVariable copies value into the named workspace variable. The
// caller keeps ownership of value; the workspace receives its own copy.
func PutVariable(ws hostapi.Workspace, name string, value mx.ArrayCref) error {
	const id = "matlabw:mex:Workspace:putVariable"

	wsName, ok := ws.Name()
	if !ok {
		return errors.Newf(id, "unknown workspace %d", int(ws))
	}
	if name == "" {
		return errors.InvalidName(id, "variable")
	}
	if !value.IsValid() {
		return errors.InvalidArray(id)
	}
	if err := hostapi.Current().PutVariable(wsName, name, value.Raw()); err != nil {
		return errors.Wrap(id, "failed to put variable "+name, err)
	}
	return nil
}

// GetVariable fetches an owned copy of the named workspace variable.
// The second result is false when the variable does not exist.
func GetVariable(ws hostapi.Workspace, name string) (mx.Array, bool, error) {
	const id = "matlabw:mex:Workspace:getVariable"

	wsName, ok := ws.Name()
	if !ok {
		return mx.Array{}, false, errors.Newf(id, "unknown workspace %d", int(ws))
	}
	if name == "" {
		return mx.Array{}, false, errors.InvalidName(id, "variable")
	}
	h := hostapi.Current().GetVariable(wsName, name)
	if h == hostapi.Null {
		return mx.Array{}, false, nil
	}
	return mx.Adopt(h), true, nil
}

// GetVariableCref fetches a borrowed immutable view of the named
// workspace variable. The workspace keeps ownership; the view stays
// valid only as long as the variable stays bound. The second result is
// false when the variable does not exist.
func GetVariableCref(ws hostapi.Workspace, name string) (mx.ArrayCref, bool, error) {
	const id = "matlabw:mex:Workspace:getVariableRef"

	wsName, ok := ws.Name()
	if !ok {
		return mx.ArrayCref{}, false, errors.Newf(id, "unknown workspace %d", int(ws))
	}
	if name == "" {
		return mx.ArrayCref{}, false, errors.InvalidName(id, "variable")
	}
	h := hostapi.Current().GetVariablePtr(wsName, name)
	if h == hostapi.Null {
		return mx.ArrayCref{}, false, nil
	}
	cref, err := mx.NewCref(h)
	if err != nil {
		return mx.ArrayCref{}, false, err
	}
	return cref, true, nil
}
