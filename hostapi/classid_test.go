package hostapi

import "testing"

func TestClassID_String(t *testing.T) {
	tests := []struct {
		class ClassID
		want  string
	}{
		{ClassDouble, "double"},
		{ClassSingle, "single"},
		{ClassChar, "char"},
		{ClassStruct, "struct"},
		{ClassCell, "cell"},
		{ClassLogical, "logical"},
		{ClassFunction, "function_handle"},
		{ClassID(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("ClassID(%d).String() = %q, want %q", tt.class, got, tt.want)
		}
	}
}

func TestClassID_IsNumeric(t *testing.T) {
	numeric := []ClassID{ClassDouble, ClassSingle, ClassInt8, ClassUint8, ClassInt16, ClassUint16, ClassInt32, ClassUint32, ClassInt64, ClassUint64}
	for _, c := range numeric {
		if !c.IsNumeric() {
			t.Errorf("%s should be numeric", c)
		}
	}
	other := []ClassID{ClassUnknown, ClassCell, ClassStruct, ClassLogical, ClassChar, ClassFunction}
	for _, c := range other {
		if c.IsNumeric() {
			t.Errorf("%s should not be numeric", c)
		}
	}
}

func TestClassID_ElementSize(t *testing.T) {
	tests := []struct {
		class ClassID
		want  int
	}{
		{ClassDouble, 8},
		{ClassSingle, 4},
		{ClassInt64, 8},
		{ClassUint32, 4},
		{ClassInt16, 2},
		{ClassChar, 2},
		{ClassUint8, 1},
		{ClassLogical, 1},
		{ClassStruct, 0},
		{ClassCell, 0},
	}

	for _, tt := range tests {
		if got := tt.class.ElementSize(); got != tt.want {
			t.Errorf("%s.ElementSize() = %d, want %d", tt.class, got, tt.want)
		}
	}
}

func TestWorkspace_Name(t *testing.T) {
	tests := []struct {
		ws   Workspace
		want string
		ok   bool
	}{
		{WorkspaceBase, "base", true},
		{WorkspaceCaller, "caller", true},
		{WorkspaceGlobal, "global", true},
		{Workspace(7), "", false},
	}

	for _, tt := range tests {
		got, ok := tt.ws.Name()
		if got != tt.want || ok != tt.ok {
			t.Errorf("Workspace(%d).Name() = (%q, %v), want (%q, %v)", tt.ws, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBindCurrent(t *testing.T) {
	defer Bind(nil)

	Bind(nil)
	func() {
		defer func() {
			if recover() == nil {
				t.Error("Current() should panic when no host is bound")
			}
		}()
		Current()
	}()
}
