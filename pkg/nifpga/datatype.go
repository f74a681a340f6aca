package nifpga

import "fmt"

// DataType enumerates the logical kinds a register, indicator, or FIFO
// element can have. The numbering is fixed and mirrors the interface files
// generated for FPGA designs; do not renumber.
type DataType int

const (
	BoolType DataType = iota + 1
	I8Type
	U8Type
	I16Type
	U16Type
	I32Type
	U32Type
	I64Type
	U64Type
	SglType
	DblType
	// FxpType values travel as raw unsigned 32-bit words; interpreting the
	// binary point is the caller's concern.
	FxpType
	// ClusterType values travel as packed unsigned 32-bit words.
	ClusterType
)

// DataTypes lists every logical kind in declaration order.
var DataTypes = []DataType{
	BoolType, I8Type, U8Type, I16Type, U16Type, I32Type, U32Type,
	I64Type, U64Type, SglType, DblType, FxpType, ClusterType,
}

var dataTypeNames = map[DataType]string{
	BoolType:    "Bool",
	I8Type:      "I8",
	U8Type:      "U8",
	I16Type:     "I16",
	U16Type:     "U16",
	I32Type:     "I32",
	U32Type:     "U32",
	I64Type:     "I64",
	U64Type:     "U64",
	SglType:     "Sgl",
	DblType:     "Dbl",
	FxpType:     "Fxp",
	ClusterType: "Cluster",
}

func (d DataType) String() string {
	if s, ok := dataTypeNames[d]; ok {
		return s
	}
	return fmt.Sprintf("DataType(%d)", int(d))
}

// NativeType returns the native storage for values of this kind. The mapping
// is total over the enumeration and never changes at runtime: booleans are
// single unsigned bytes, fixed-point and cluster values are raw unsigned
// 32-bit words, everything else is the matching fixed-width scalar.
func (d DataType) NativeType() NativeType {
	switch d {
	case BoolType:
		return U8
	case I8Type:
		return I8
	case U8Type:
		return U8
	case I16Type:
		return I16
	case U16Type:
		return U16
	case I32Type:
		return I32
	case U32Type:
		return U32
	case I64Type:
		return I64
	case U64Type:
		return U64
	case SglType:
		return F32
	case DblType:
		return F64
	case FxpType:
		return U32
	case ClusterType:
		return U32
	}
	panic(fmt.Sprintf("nifpga: NativeType of invalid %v", d))
}

// IsSigned reports whether values of this kind are interpreted as signed.
// True exactly for the signed integers and the floating-point kinds.
// Fixed-point and cluster storage must never be sign-extended.
func (d DataType) IsSigned() bool {
	switch d {
	case I8Type, I16Type, I32Type, I64Type, SglType, DblType:
		return true
	}
	return false
}
