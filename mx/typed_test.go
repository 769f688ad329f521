package mx_test

import (
	"testing"
	"unsafe"

	"github.com/matlabw/mex-runtime/errors"
	"github.com/matlabw/mex-runtime/mx"
)

func TestNumericScalarRoundTrip(t *testing.T) {
	bind(t)

	t.Run("double", func(t *testing.T) {
		a, err := mx.MakeNumericScalar(2.25)
		if err != nil {
			t.Fatalf("make: %v", err)
		}
		defer a.Destroy()
		if got, err := a.Scalar(); err != nil || got != 2.25 {
			t.Fatalf("scalar = %v, %v; want 2.25", got, err)
		}
	})

	t.Run("int32", func(t *testing.T) {
		a, err := mx.MakeNumericScalar[int32](-7)
		if err != nil {
			t.Fatalf("make: %v", err)
		}
		defer a.Destroy()
		if got, err := a.Scalar(); err != nil || got != -7 {
			t.Fatalf("scalar = %v, %v; want -7", got, err)
		}
	})

	t.Run("complex", func(t *testing.T) {
		a, err := mx.MakeNumericScalar(complex(1.5, -2.5))
		if err != nil {
			t.Fatalf("make: %v", err)
		}
		defer a.Destroy()
		if ok, _ := a.IsComplex(); !ok {
			t.Fatal("IsComplex = false on a complex scalar")
		}
		if got, err := a.Scalar(); err != nil || got != complex(1.5, -2.5) {
			t.Fatalf("scalar = %v, %v; want 1.5-2.5i", got, err)
		}
	})
}

func TestDataAliasesHostStorage(t *testing.T) {
	bind(t)

	a, err := mx.MakeNumericArray[float64](1, 4)
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	defer a.Destroy()

	data, err := a.Data()
	if err != nil {
		t.Fatalf("data: %v", err)
	}
	for i := range data {
		data[i] = float64(i) + 0.5
	}

	// A second slice over the same handle sees the writes.
	cref, err := a.Cref()
	if err != nil {
		t.Fatalf("cref: %v", err)
	}
	again, err := cref.Data()
	if err != nil {
		t.Fatalf("cref data: %v", err)
	}
	for i, v := range again {
		if v != float64(i)+0.5 {
			t.Fatalf("element %d = %v, want %v", i, v, float64(i)+0.5)
		}
	}
}

func TestUninitArrayHasFullExtent(t *testing.T) {
	bind(t)

	a, err := mx.MakeUninitNumericArray[float64](2, 2)
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	defer a.Destroy()

	data, err := a.Data()
	if err != nil {
		t.Fatalf("data: %v", err)
	}
	if len(data) != 4 {
		t.Fatalf("len(data) = %d, want 4", len(data))
	}
	// Contents are undefined until written; writing every element is the
	// caller's contract.
	for i := range data {
		data[i] = float64(i)
	}
}

func TestToTypedValidatesClassOnce(t *testing.T) {
	m := bind(t)

	ta, err := mx.MakeNumericScalar(1.0)
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	a := ta.Array

	// Mismatched element type fails and leaves ownership with the input.
	if _, err := mx.ToTyped[int32](&a); err == nil {
		t.Fatal("ToTyped[int32] on a double array succeeded")
	} else if errors.IDOf(err) != "matlabw:mx:TypedArray:from" {
		t.Fatalf("error id = %q", errors.IDOf(err))
	}
	if !a.IsValid() {
		t.Fatal("input consumed by failed refinement")
	}

	typed, err := mx.ToTyped[float64](&a)
	if err != nil {
		t.Fatalf("ToTyped[float64]: %v", err)
	}
	if a.IsValid() {
		t.Fatal("input still valid after successful refinement")
	}

	typed.Destroy()
	if got := m.LiveCount(); got != 0 {
		t.Fatalf("live count = %d, want 0", got)
	}
}

func TestDataAsReportsCallerSite(t *testing.T) {
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

	_, err = mx.DataAs[int32]("myext:readInput", cref)
	if err == nil {
		t.Fatal("DataAs[int32] on a double array succeeded")
	}
	if got := errors.IDOf(err); got != "myext:readInput" {
		t.Fatalf("error id = %q, want the caller's identifier", got)
	}
}

func TestComplexityMismatchRejected(t *testing.T) {
	bind(t)

	a, err := mx.MakeNumericScalar(complex(1, 2))
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	defer a.Destroy()

	cref, err := a.Array.Cref()
	if err != nil {
		t.Fatalf("cref: %v", err)
	}
	// Same class tag (double) but real vs interleaved-complex storage.
	if _, err := mx.TypedCrefOf[float64](cref); err == nil {
		t.Fatal("real refinement of a complex array succeeded")
	}
}

func TestTypedViewsShareStorage(t *testing.T) {
	bind(t)

	a, err := mx.MakeNumericArray[int16](1, 3)
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	defer a.Destroy()

	ref, err := a.Ref()
	if err != nil {
		t.Fatalf("ref: %v", err)
	}
	data, err := ref.Data()
	if err != nil {
		t.Fatalf("ref data: %v", err)
	}
	data[2] = 42

	got, err := a.Data()
	if err != nil {
		t.Fatalf("data: %v", err)
	}
	if got[2] != 42 {
		t.Fatalf("write through ref not visible: element 2 = %d", got[2])
	}
}

func TestDataAsAliasesRawData(t *testing.T) {
	bind(t)

	a, err := mx.MakeNumericArray[float64](1, 2)
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	defer a.Destroy()

	raw, err := a.Array.Data()
	if err != nil {
		t.Fatalf("raw data: %v", err)
	}
	cref, err := a.Array.Cref()
	if err != nil {
		t.Fatalf("cref: %v", err)
	}
	typed, err := mx.DataAs[float64]("typedtest:alias", cref)
	if err != nil {
		t.Fatalf("DataAs: %v", err)
	}
	if unsafe.Pointer(unsafe.SliceData(typed)) != raw {
		t.Fatal("typed data does not alias the raw data pointer")
	}
}
