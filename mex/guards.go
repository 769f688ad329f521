package mex

import "github.com/matlabw/mex-runtime/hostapi"

// TrapGuard scopes a change to the host's error trap flag. Restore puts
// the previous value back and is safe to call more than once, so it can
// sit in a defer next to an early Restore on a fast path.
type TrapGuard struct {
	prev bool
	done bool
}

// NewTrapGuard sets the trap flag and remembers the previous state.
func NewTrapGuard(trap bool) *TrapGuard {
	return &TrapGuard{prev: hostapi.Current().SetTrapFlag(trap)}
}

// Restore puts the trap flag back to its value before the guard.
func (g *TrapGuard) Restore() {
	if g.done {
		return
	}
	g.done = true
	hostapi.Current().SetTrapFlag(g.prev)
}

// LockGuard scopes a lock on the extension so the host cannot unload it
// while the guard is live. Unlock is idempotent.
type LockGuard struct {
	done bool
}

// NewLockGuard locks the extension in place.
func NewLockGuard() *LockGuard {
	hostapi.Current().Lock()
	return &LockGuard{}
}

// Unlock releases the guard's lock.
func (g *LockGuard) Unlock() {
	if g.done {
		return
	}
	g.done = true
	hostapi.Current().Unlock()
}
