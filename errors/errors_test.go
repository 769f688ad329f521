package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "id and detail",
			err:  New("matlabw:mx:Array:getRank", "accessing invalid array"),
			want: "matlabw:mx:Array:getRank: accessing invalid array",
		},
		{
			name: "id only",
			err:  &Error{ID: "matlabw:mx:Array:resize"},
			want: "matlabw:mx:Array:resize",
		},
		{
			name: "with cause",
			err:  Wrap("matlabw:mex:putVariable", "failed to put variable", fmt.Errorf("workspace gone")),
			want: "matlabw:mex:putVariable: failed to put variable (caused by: workspace gone)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	a := New("matlabw:mx:Array:getDataAs", "type must match the array class ID")
	b := New("matlabw:mx:Array:getDataAs", "different message")
	c := New("matlabw:mx:Array:getData", "")

	if !errors.Is(a, b) {
		t.Error("errors with the same identifier should match")
	}
	if errors.Is(a, c) {
		t.Error("errors with different identifiers should not match")
	}
	if errors.Is(a, fmt.Errorf("plain")) {
		t.Error("structured error should not match a plain error")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Wrap("matlabw:mex:gateway", "dispatch failed", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable through Unwrap")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		err    *Error
		wantID string
	}{
		{InvalidArray("matlabw:mx:Array:getDims"), "matlabw:mx:Array:getDims"},
		{TypeMismatch("matlabw:mx:Array:getDataAs", "double", "int32"), "matlabw:mx:Array:getDataAs"},
		{InvalidName("matlabw:mex:putVariable", "variable"), "matlabw:mex:putVariable"},
		{AllocationFailed("matlabw:mx:makeNumericArray", "numeric array"), "matlabw:mx:makeNumericArray"},
		{HostCall("matlabw:mx:Array:resize", "set-dimensions"), "matlabw:mx:Array:resize"},
		{FieldIndexOutOfRange("matlabw:mx:StructArray:getField", 4, 2), "matlabw:mx:StructArray:getField"},
	}

	for _, tt := range tests {
		if tt.err.ID != tt.wantID {
			t.Errorf("ID = %q, want %q", tt.err.ID, tt.wantID)
		}
		if tt.err.Detail == "" {
			t.Errorf("%s: empty detail", tt.wantID)
		}
	}
}

func TestIDOf(t *testing.T) {
	if got := IDOf(New("matlabw:mx:toAscii", "x")); got != "matlabw:mx:toAscii" {
		t.Errorf("IDOf = %q", got)
	}
	if got := IDOf(fmt.Errorf("plain")); got != "" {
		t.Errorf("IDOf(plain) = %q, want empty", got)
	}
}
