package hostapi

// ClassID is the element-kind tag the host attaches to every array
// handle. The numeric values follow the host's own tag order and must
// not be reordered.
type ClassID int32

const (
	ClassUnknown ClassID = iota
	ClassCell
	ClassStruct
	ClassLogical
	ClassChar
	ClassVoid
	ClassDouble
	ClassSingle
	ClassInt8
	ClassUint8
	ClassInt16
	ClassUint16
	ClassInt32
	ClassUint32
	ClassInt64
	ClassUint64
	ClassFunction
	ClassObject
)

var classNames = map[ClassID]string{
	ClassUnknown:  "unknown",
	ClassCell:     "cell",
	ClassStruct:   "struct",
	ClassLogical:  "logical",
	ClassChar:     "char",
	ClassVoid:     "void",
	ClassDouble:   "double",
	ClassSingle:   "single",
	ClassInt8:     "int8",
	ClassUint8:    "uint8",
	ClassInt16:    "int16",
	ClassUint16:   "uint16",
	ClassInt32:    "int32",
	ClassUint32:   "uint32",
	ClassInt64:    "int64",
	ClassUint64:   "uint64",
	ClassFunction: "function_handle",
	ClassObject:   "object",
}

// String returns the host-facing class name for the id.
func (c ClassID) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "unknown"
}

// IsNumeric reports whether the class is one of the numeric element
// kinds (floating point or integer).
func (c ClassID) IsNumeric() bool {
	return c >= ClassDouble && c <= ClassUint64
}

// ElementSize returns the in-memory size of one element of the class in
// bytes, or 0 for classes without a fixed element size.
func (c ClassID) ElementSize() int {
	switch c {
	case ClassDouble, ClassInt64, ClassUint64:
		return 8
	case ClassSingle, ClassInt32, ClassUint32:
		return 4
	case ClassInt16, ClassUint16, ClassChar:
		return 2
	case ClassInt8, ClassUint8, ClassLogical:
		return 1
	default:
		return 0
	}
}

// Complexity selects real or interleaved-complex storage for numeric
// arrays.
type Complexity int32

const (
	Real Complexity = iota
	Complex
)

// Workspace names a host-side variable scope.
type Workspace int32

const (
	WorkspaceBase Workspace = iota
	WorkspaceCaller
	WorkspaceGlobal
)

// Name returns the host's name for the workspace. Unknown values yield
// false.
func (w Workspace) Name() (string, bool) {
	switch w {
	case WorkspaceBase:
		return "base", true
	case WorkspaceCaller:
		return "caller", true
	case WorkspaceGlobal:
		return "global", true
	default:
		return "", false
	}
}
