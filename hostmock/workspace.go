package hostmock

import (
	"github.com/matlabw/mex-runtime/hostapi"
)

// PutVariable copies value into the named workspace binding. A previous
// binding under the same name is destroyed.
func (h *Host) PutVariable(workspace, name string, value hostapi.Handle) error {
	if workspace == "" || name == "" {
		return errBadName
	}
	if h.lookup(value) == nil {
		return errInvalidHandle
	}
	ws := h.workspaces[workspace]
	if ws == nil {
		ws = make(map[string]hostapi.Handle)
		h.workspaces[workspace] = ws
	}
	if prev, ok := ws[name]; ok {
		h.Destroy(prev)
	}
	ws[name] = h.Duplicate(value)
	return nil
}

// GetVariable returns a fresh copy of the named binding, owned by the
// caller. Null when the name is unbound.
func (h *Host) GetVariable(workspace, name string) hostapi.Handle {
	stored := h.GetVariablePtr(workspace, name)
	if stored == hostapi.Null {
		return hostapi.Null
	}
	return h.Duplicate(stored)
}

// GetVariablePtr returns the stored binding itself, borrowed; it stays
// valid until the workspace mutates. Null when the name is unbound.
func (h *Host) GetVariablePtr(workspace, name string) hostapi.Handle {
	ws := h.workspaces[workspace]
	if ws == nil {
		return hostapi.Null
	}
	return ws[name]
}

// RaiseError records the raise; the gateway returns to the host right
// after calling it, so recording is all the mock needs to do.
func (h *Host) RaiseError(id, message string) {
	h.raised = append(h.raised, RaisedError{ID: id, Message: message})
}

// SetTrapFlag flips the trap switch and returns the prior value.
func (h *Host) SetTrapFlag(on bool) bool {
	prev := h.trapFlag
	h.trapFlag = on
	return prev
}

// TrapFlag reports the current trap switch, for test assertions.
func (h *Host) TrapFlag() bool {
	return h.trapFlag
}

// Lock pins the extension in memory. Locks nest.
func (h *Host) Lock() {
	h.lockCount++
}

// Unlock undoes one Lock.
func (h *Host) Unlock() {
	if h.lockCount > 0 {
		h.lockCount--
	}
}

// IsLocked reports whether any lock is outstanding.
func (h *Host) IsLocked() bool {
	return h.lockCount > 0
}
