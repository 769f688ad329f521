package mx_test

import (
	"testing"

	"github.com/matlabw/mex-runtime/mx"
)

func TestCellSetGetCopy(t *testing.T) {
	m := bind(t)

	c, err := mx.MakeCellArray(1, 3)
	if err != nil {
		t.Fatalf("make cell: %v", err)
	}
	defer c.Destroy()

	v, err := mx.MakeString("elem")
	if err != nil {
		t.Fatalf("make string: %v", err)
	}
	defer v.Destroy()
	cref, err := v.Array.Cref()
	if err != nil {
		t.Fatalf("cref: %v", err)
	}

	if err := c.Set(1, cref); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !v.IsValid() {
		t.Fatal("source consumed by copying set")
	}

	got, ok, err := c.Get(1)
	if err != nil || !ok {
		t.Fatalf("get = ok=%v, %v", ok, err)
	}
	if s, err := mx.ToASCII(got); err != nil || s != "elem" {
		t.Fatalf("element = %q, %v; want elem", s, err)
	}
	// The stored element is a copy, distinct from the source handle.
	if got.Raw() == v.Raw() {
		t.Fatal("cell stored the source handle instead of a copy")
	}
	if n := m.LiveCount(); n != 3 {
		t.Fatalf("live count = %d, want 3", n)
	}
}

func TestCellSetMove(t *testing.T) {
	m := bind(t)

	c, err := mx.MakeCellArray(2)
	if err != nil {
		t.Fatalf("make cell: %v", err)
	}

	v, err := mx.MakeNumericScalar(6.0)
	if err != nil {
		t.Fatalf("make scalar: %v", err)
	}
	if err := c.SetMove(0, &v.Array); err != nil {
		t.Fatalf("set move: %v", err)
	}
	if v.IsValid() {
		t.Fatal("source still valid after move")
	}

	c.Destroy()
	if n := m.LiveCount(); n != 0 {
		t.Fatalf("live count = %d, want 0 (elements owned by the cell)", n)
	}
}

func TestCellUnsetAndOutOfRange(t *testing.T) {
	bind(t)

	c, err := mx.MakeCellArray(1, 2)
	if err != nil {
		t.Fatalf("make cell: %v", err)
	}
	defer c.Destroy()

	if _, ok, err := c.Get(0); ok || err != nil {
		t.Fatalf("unset slot = ok=%v, %v; want absent", ok, err)
	}
	if _, _, err := c.Get(2); err == nil {
		t.Fatal("out-of-range get succeeded")
	}
	if _, _, err := c.Get(-1); err == nil {
		t.Fatal("negative index get succeeded")
	}
}

func TestCellRefinement(t *testing.T) {
	bind(t)

	c, err := mx.MakeCellArray(1, 1)
	if err != nil {
		t.Fatalf("make cell: %v", err)
	}
	defer c.Destroy()

	ref, err := c.Array.Ref()
	if err != nil {
		t.Fatalf("ref: %v", err)
	}
	if _, err := mx.CellRefOf(ref); err != nil {
		t.Fatalf("cell refinement: %v", err)
	}

	d, err := mx.MakeNumericScalar(1.0)
	if err != nil {
		t.Fatalf("make scalar: %v", err)
	}
	defer d.Destroy()
	dref, err := d.Array.Ref()
	if err != nil {
		t.Fatalf("ref: %v", err)
	}
	if _, err := mx.CellRefOf(dref); err == nil {
		t.Fatal("cell refinement of a double array succeeded")
	}
}
