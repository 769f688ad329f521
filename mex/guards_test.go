package mex_test

import (
	"testing"

	"github.com/matlabw/mex-runtime/mex"
)

func TestTrapGuard(t *testing.T) {
	m := bind(t)

	g := mex.NewTrapGuard(true)
	if !m.TrapFlag() {
		t.Fatal("trap flag not set by guard")
	}
	g.Restore()
	if m.TrapFlag() {
		t.Fatal("trap flag not restored")
	}
	// Restore is idempotent even after the flag changed again.
	m.SetTrapFlag(true)
	g.Restore()
	if !m.TrapFlag() {
		t.Fatal("second restore clobbered the flag")
	}
}

func TestTrapGuardNesting(t *testing.T) {
	m := bind(t)

	outer := mex.NewTrapGuard(true)
	inner := mex.NewTrapGuard(false)
	if m.TrapFlag() {
		t.Fatal("inner guard did not clear the flag")
	}
	inner.Restore()
	if !m.TrapFlag() {
		t.Fatal("inner restore lost the outer state")
	}
	outer.Restore()
	if m.TrapFlag() {
		t.Fatal("outer restore lost the initial state")
	}
}

func TestLockGuard(t *testing.T) {
	m := bind(t)

	g := mex.NewLockGuard()
	if !m.IsLocked() {
		t.Fatal("extension not locked")
	}
	g.Unlock()
	if m.IsLocked() {
		t.Fatal("extension still locked after unlock")
	}
	g.Unlock()
	if m.IsLocked() {
		t.Fatal("double unlock changed lock state")
	}
}

func TestLockGuardNesting(t *testing.T) {
	m := bind(t)

	a := mex.NewLockGuard()
	b := mex.NewLockGuard()
	a.Unlock()
	if !m.IsLocked() {
		t.Fatal("lock dropped while a guard is still live")
	}
	b.Unlock()
	if m.IsLocked() {
		t.Fatal("extension still locked after all guards released")
	}
}
