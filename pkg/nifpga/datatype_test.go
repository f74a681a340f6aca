package nifpga

import "testing"

func TestDataTypeNumbering(t *testing.T) {
	// The numbering crosses the native boundary through generated
	// interfaces; it must stay dense starting at one.
	for i, d := range DataTypes {
		if int(d) != i+1 {
			t.Fatalf("DataTypes[%d] = %d, want %d", i, int(d), i+1)
		}
	}
	if len(DataTypes) != 13 {
		t.Fatalf("expected 13 kinds, got %d", len(DataTypes))
	}
}

func TestDataTypeNativeType(t *testing.T) {
	cases := []struct {
		d    DataType
		want NativeType
	}{
		{BoolType, U8},
		{I8Type, I8},
		{U8Type, U8},
		{I16Type, I16},
		{U16Type, U16},
		{I32Type, I32},
		{U32Type, U32},
		{I64Type, I64},
		{U64Type, U64},
		{SglType, F32},
		{DblType, F64},
		{FxpType, U32},
		{ClusterType, U32},
	}
	for _, c := range cases {
		if got := c.d.NativeType(); got != c.want {
			t.Errorf("%v.NativeType() = %v, want %v", c.d, got, c.want)
		}
	}
}

func TestDataTypeIsSigned(t *testing.T) {
	signed := map[DataType]bool{
		I8Type: true, I16Type: true, I32Type: true, I64Type: true,
		SglType: true, DblType: true,
	}
	for _, d := range DataTypes {
		if got := d.IsSigned(); got != signed[d] {
			t.Errorf("%v.IsSigned() = %v, want %v", d, got, signed[d])
		}
	}
}

func TestDataTypeString(t *testing.T) {
	if got := SglType.String(); got != "Sgl" {
		t.Errorf("SglType.String() = %q", got)
	}
	if got := DataType(99).String(); got != "DataType(99)" {
		t.Errorf("invalid String() = %q", got)
	}
}

func TestNativeTypeSize(t *testing.T) {
	cases := []struct {
		t    NativeType
		want int
	}{
		{Bool, 1}, {I8, 1}, {U8, 1},
		{I16, 2}, {U16, 2},
		{I32, 4}, {U32, 4}, {F32, 4},
		{I64, 8}, {U64, 8}, {F64, 8},
		{Ptr, ptrSize}, {CStr, ptrSize}, {USize, ptrSize},
	}
	for _, c := range cases {
		if got := c.t.Size(); got != c.want {
			t.Errorf("%v.Size() = %d, want %d", c.t, got, c.want)
		}
	}
	if NativeType(0).Size() != 0 {
		t.Error("invalid type should have zero size")
	}
}
