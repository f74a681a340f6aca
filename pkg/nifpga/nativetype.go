package nifpga

import (
	"fmt"
	"math/bits"
)

// ptrSize is the platform pointer width in bytes.
const ptrSize = bits.UintSize / 8

// NativeType identifies the native storage of one declared call argument.
// The set is closed: it covers the fixed-width scalars the driver traffics
// in, a pointer-sized slot for out-parameters and buffers, and a C string
// for path and name arguments. Function descriptors are written in terms of
// NativeType; the logical DataType and FifoPropertyType enumerations lower
// onto it.
type NativeType uint8

const (
	// Bool travels as a single unsigned byte, zero or one.
	Bool NativeType = iota + 1
	I8
	U8
	I16
	U16
	I32
	U32
	I64
	U64
	// F32 and F64 are IEEE-754 single and double precision.
	F32
	F64
	// Ptr is a pointer-sized slot: out-parameter storage, array buffers,
	// and opaque contexts. The callee may write through it; the caller owns
	// the memory.
	Ptr
	// CStr is a NUL-terminated C string argument. The binding allocates the
	// native buffer for the duration of the call.
	CStr
	// USize is the C size_t: an unsigned integer as wide as a pointer, used
	// for element counts and depths.
	USize
)

var nativeTypeNames = map[NativeType]string{
	Bool:  "Bool",
	I8:    "I8",
	U8:    "U8",
	I16:   "I16",
	U16:   "U16",
	I32:   "I32",
	U32:   "U32",
	I64:   "I64",
	U64:   "U64",
	F32:   "F32",
	F64:   "F64",
	Ptr:   "Ptr",
	CStr:  "CStr",
	USize: "USize",
}

func (t NativeType) String() string {
	if s, ok := nativeTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("NativeType(%d)", uint8(t))
}

// valid reports whether t is a member of the closed set.
func (t NativeType) valid() bool {
	_, ok := nativeTypeNames[t]
	return ok
}

// Size returns the storage width in bytes. Pointer-shaped types report the
// platform word size.
func (t NativeType) Size() int {
	switch t {
	case Bool, I8, U8:
		return 1
	case I16, U16:
		return 2
	case I32, U32, F32:
		return 4
	case I64, U64, F64:
		return 8
	case Ptr, CStr, USize:
		return ptrSize
	}
	return 0
}
