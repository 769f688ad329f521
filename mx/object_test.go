package mx_test

import (
	"testing"

	"github.com/matlabw/mex-runtime/mx"
)

func TestMakeObjectArray(t *testing.T) {
	m := bind(t)

	s := makeStruct(t, []int{1, 1}, "re", "im")

	re, err := mx.MakeNumericScalar(1.5)
	if err != nil {
		t.Fatalf("make re: %v", err)
	}
	if err := s.SetFieldMove(0, "re", &re.Array); err != nil {
		t.Fatalf("set re: %v", err)
	}

	obj, err := mx.MakeObjectArray(&s, "Complex")
	if err != nil {
		t.Fatalf("make object: %v", err)
	}
	defer obj.Destroy()

	if s.IsValid() {
		t.Fatal("source struct still valid after conversion")
	}
	if name, err := obj.ClassName(); err != nil || name != "Complex" {
		t.Fatalf("class name = %q, %v; want Complex", name, err)
	}
	if ok, err := obj.IsClass("Complex"); err != nil || !ok {
		t.Fatalf("IsClass(Complex) = %v, %v; want true", ok, err)
	}
	if ok, _ := obj.IsStruct(); ok {
		t.Fatal("object still reports the struct class")
	}

	// The field set before conversion reads back as a property.
	ref, err := obj.Ref()
	if err != nil {
		t.Fatalf("ref: %v", err)
	}
	prop, ok, err := mx.GetPropertyOf(ref, "re")
	if err != nil || !ok {
		t.Fatalf("get property = ok=%v, %v", ok, err)
	}
	if v, err := mx.ScalarAs[float64]("objecttest:re", prop); err != nil || v != 1.5 {
		t.Fatalf("re = %v, %v; want 1.5", v, err)
	}

	// Conversion retags in place; no handle was copied or leaked.
	if n := m.LiveCount(); n != 2 {
		t.Fatalf("live count = %d, want 2", n)
	}
}

func TestMakeObjectArrayValidation(t *testing.T) {
	bind(t)

	s := makeStruct(t, []int{1, 1}, "x")
	defer s.Destroy()

	if _, err := mx.MakeObjectArray(&s, ""); err == nil {
		t.Fatal("empty class name succeeded")
	}
	// Failure leaves the source intact.
	if !s.IsValid() {
		t.Fatal("source consumed by failed conversion")
	}

	var null mx.StructArray
	if _, err := mx.MakeObjectArray(&null, "Thing"); err == nil {
		t.Fatal("null source succeeded")
	}
}

func TestSetProperty(t *testing.T) {
	bind(t)

	s := makeStruct(t, []int{1, 1}, "im")
	obj, err := mx.MakeObjectArray(&s, "Complex")
	if err != nil {
		t.Fatalf("make object: %v", err)
	}
	defer obj.Destroy()

	v, err := mx.MakeNumericScalar(-2.0)
	if err != nil {
		t.Fatalf("make scalar: %v", err)
	}
	defer v.Destroy()
	cref, err := v.Array.Cref()
	if err != nil {
		t.Fatalf("cref: %v", err)
	}

	ref, err := obj.Ref()
	if err != nil {
		t.Fatalf("ref: %v", err)
	}
	if err := mx.SetPropertyOf(ref, "im", cref); err != nil {
		t.Fatalf("set property: %v", err)
	}

	prop, ok, err := mx.GetPropertyOf(ref, "im")
	if err != nil || !ok {
		t.Fatalf("get property = ok=%v, %v", ok, err)
	}
	if got, err := mx.ScalarAs[float64]("objecttest:im", prop); err != nil || got != -2.0 {
		t.Fatalf("im = %v, %v; want -2", got, err)
	}
	// Property assignment copies; the source handle stays distinct.
	if prop.Raw() == v.Raw() {
		t.Fatal("property stored the source handle instead of a copy")
	}
}
