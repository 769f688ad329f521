package mx_test

import (
	"testing"

	"github.com/matlabw/mex-runtime/errors"
	"github.com/matlabw/mex-runtime/mx"
)

func TestStringRoundTrip(t *testing.T) {
	bind(t)

	a, err := mx.MakeString("hello")
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	defer a.Destroy()

	if ok, err := a.IsSingleString(); err != nil || !ok {
		t.Fatalf("IsSingleString = %v, %v; want true", ok, err)
	}
	got, err := a.ToASCII()
	if err != nil {
		t.Fatalf("toAscii: %v", err)
	}
	if got != "hello" {
		t.Fatalf("toAscii = %q, want %q", got, "hello")
	}
	units, err := a.UTF16()
	if err != nil {
		t.Fatalf("utf16: %v", err)
	}
	if len(units) != 5 {
		t.Fatalf("len(units) = %d, want 5", len(units))
	}
	// The allocation carries the spare terminator slot; the views hide it.
	if n, _ := a.NumElements(); n != 6 {
		t.Fatalf("num elements = %d, want 6", n)
	}
}

func TestStringRoundTripPreservesTrailingNUL(t *testing.T) {
	bind(t)

	a, err := mx.MakeString("ab\x00")
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	defer a.Destroy()

	// Only the spare slot is excluded, never a NUL byte the caller put in.
	got, err := a.ToASCII()
	if err != nil {
		t.Fatalf("toAscii: %v", err)
	}
	if got != "ab\x00" {
		t.Fatalf("toAscii = %q, want %q", got, "ab\x00")
	}
	units, err := a.UTF16()
	if err != nil {
		t.Fatalf("utf16: %v", err)
	}
	if len(units) != 3 || units[2] != 0 {
		t.Fatalf("units = %v, want [a b 0]", units)
	}
}

func TestUTF16StringTerminatorSlot(t *testing.T) {
	bind(t)

	in := []uint16{0x0048, 0x0069, 0x263A}
	a, err := mx.MakeUTF16String(in)
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	defer a.Destroy()

	// The allocation carries one spare zero slot after the code units.
	if n, _ := a.NumElements(); n != len(in)+1 {
		t.Fatalf("num elements = %d, want %d", n, len(in)+1)
	}

	// The string views exclude it.
	units, err := a.UTF16()
	if err != nil {
		t.Fatalf("utf16: %v", err)
	}
	if len(units) != len(in) {
		t.Fatalf("len(units) = %d, want %d", len(units), len(in))
	}
	for i, u := range in {
		if uint16(units[i]) != u {
			t.Fatalf("unit %d = %#x, want %#x", i, units[i], u)
		}
	}

	// Each code unit truncates to its low byte.
	got, err := a.ToASCII()
	if err != nil {
		t.Fatalf("toAscii: %v", err)
	}
	if got != "Hi\x3a" {
		t.Fatalf("toAscii = %q, want %q", got, "Hi\x3a")
	}
}

func TestEmptyString(t *testing.T) {
	bind(t)

	a, err := mx.MakeString("")
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	defer a.Destroy()

	if ok, _ := a.IsSingleString(); !ok {
		t.Fatal("IsSingleString = false on an empty string")
	}
	if got, err := a.ToASCII(); err != nil || got != "" {
		t.Fatalf("toAscii = %q, %v; want empty", got, err)
	}
}

func TestToASCIIRequiresSingleString(t *testing.T) {
	bind(t)

	a, err := mx.MakeCharArray(2, 3)
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	defer a.Destroy()

	if ok, _ := a.IsSingleString(); ok {
		t.Fatal("IsSingleString = true on a 2x3 char matrix")
	}
	_, err = a.ToASCII()
	if err == nil {
		t.Fatal("toAscii on a char matrix succeeded")
	}
	if got := errors.IDOf(err); got != "matlabw:mx:CharArray:toAscii" {
		t.Fatalf("error id = %q", got)
	}
}

func TestCharRefinementRejectsNumeric(t *testing.T) {
	bind(t)

	a, err := mx.MakeNumericScalar(1.0)
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	defer a.Destroy()

	cref, err := a.Array.Cref()
	if err != nil {
		t.Fatalf("cref: %v", err)
	}
	if _, err := mx.CharCrefOf(cref); err == nil {
		t.Fatal("char refinement of a double array succeeded")
	}
}

func TestFreeToASCIIOnAnyView(t *testing.T) {
	bind(t)

	a, err := mx.MakeString("ok")
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	defer a.Destroy()

	ref, err := a.Array.Ref()
	if err != nil {
		t.Fatalf("ref: %v", err)
	}
	if got, err := mx.ToASCII(ref); err != nil || got != "ok" {
		t.Fatalf("ToASCII = %q, %v; want %q", got, err, "ok")
	}
}
