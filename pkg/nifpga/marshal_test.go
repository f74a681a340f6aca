package nifpga

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func mustMarshalOne(t *testing.T, typ NativeType, v any) uint64 {
	t.Helper()
	w, _, err := marshalOne(typ, v)
	if err != nil {
		t.Fatalf("marshalOne(%v, %v): %v", typ, v, err)
	}
	return w
}

func TestMarshalScalarWords(t *testing.T) {
	cases := []struct {
		typ  NativeType
		v    any
		want uint64
	}{
		{Bool, true, 1},
		{Bool, false, 0},
		{Bool, uint8(7), 7},
		{U8, uint8(0xAB), 0xAB},
		{U16, uint16(0xBEEF), 0xBEEF},
		{U32, uint32(0xDEADBEEF), 0xDEADBEEF},
		{U64, uint64(0x0123456789ABCDEF), 0x0123456789ABCDEF},
		{U32, 42, 42},
		{I8, int8(-1), 0xFFFFFFFFFFFFFFFF},
		{I16, int16(-2), 0xFFFFFFFFFFFFFFFE},
		{I32, int32(-50400), ^uint64(50400 - 1)},
		{I64, int64(5), 5},
		{I32, -7, ^uint64(7 - 1)},
		{F32, float32(1.5), uint64(math.Float32bits(1.5))},
		{F64, 2.25, math.Float64bits(2.25)},
		{USize, 512, 512},
		{USize, uint64(16), 16},
	}
	for _, c := range cases {
		if got := mustMarshalOne(t, c.typ, c.v); got != c.want {
			t.Errorf("marshalOne(%v, %v) = %#x, want %#x", c.typ, c.v, got, c.want)
		}
	}
}

func TestMarshalRejectsMismatchedScalars(t *testing.T) {
	cases := []struct {
		typ NativeType
		v   any
	}{
		{U32, uint16(5)},
		{U32, int64(5)},
		{I8, int16(5)},
		{I8, 200},
		{U8, 256},
		{U16, -1},
		{Bool, 1},
		{USize, -1},
		{F32, "1.5"},
		{CStr, 7},
	}
	for _, c := range cases {
		if _, _, err := marshalOne(c.typ, c.v); err == nil {
			t.Errorf("marshalOne(%v, %T) should fail", c.typ, c.v)
		}
	}
}

func TestMarshalPointer(t *testing.T) {
	if got := mustMarshalOne(t, Ptr, nil); got != 0 {
		t.Fatalf("nil pointer word = %#x", got)
	}
	if got := mustMarshalOne(t, Ptr, uintptr(0xD00D)); got != 0xD00D {
		t.Fatalf("uintptr word = %#x", got)
	}

	var session uint32
	w, keep, err := marshalOne(Ptr, &session)
	if err != nil {
		t.Fatalf("pointer: %v", err)
	}
	if w == 0 || keep == nil {
		t.Fatal("typed pointer should produce a nonzero word and a referent to keep")
	}

	buf := make([]uint32, 4)
	w, _, err = marshalOne(Ptr, buf)
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	if w != uint64(reflect.ValueOf(buf).Pointer()) {
		t.Fatal("slice word is not the element base address")
	}

	if _, _, err := marshalOne(Ptr, []uint32{}); err == nil {
		t.Fatal("empty slice should be rejected; there is no address to take")
	}
	if _, _, err := marshalOne(Ptr, 42); err == nil {
		t.Fatal("plain int is not pointer-shaped")
	}
}

func TestMarshalCString(t *testing.T) {
	w, keep, err := marshalOne(CStr, "fpga.lvbitx")
	if err != nil {
		t.Fatalf("string: %v", err)
	}
	buf, ok := keep.([]byte)
	if !ok {
		t.Fatalf("kept value is %T, want []byte", keep)
	}
	if string(buf) != "fpga.lvbitx\x00" {
		t.Fatalf("buffer = %q", buf)
	}
	if w != uint64(reflect.ValueOf(buf).Pointer()) {
		t.Fatal("word does not point at the buffer")
	}

	w2, keep2, err := marshalOne(CStr, []byte("RIO0"))
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	if w2 == 0 || string(keep2.([]byte)) != "RIO0\x00" {
		t.Fatalf("bytes buffer = %q", keep2)
	}
}

func TestMarshalArgs(t *testing.T) {
	fn := FunctionInfo{
		Name:   "ReadU32",
		Symbol: "NiFpga_ReadU32",
		Args: []NamedArg{
			{"session", U32},
			{"indicator", U32},
			{"value", Ptr},
		},
	}

	var out uint32
	m, err := marshalArgs(&fn, []any{uint32(7), uint32(0x8001), &out})
	if err != nil {
		t.Fatalf("marshalArgs: %v", err)
	}
	if len(m.words) != 3 {
		t.Fatalf("words = %v", m.words)
	}
	if m.words[0] != 7 || m.words[1] != 0x8001 || m.words[2] == 0 {
		t.Fatalf("words = %#x", m.words)
	}
	if len(m.keep) != 1 {
		t.Fatalf("keep = %v", m.keep)
	}

	_, err = marshalArgs(&fn, []any{uint32(7)})
	if !errors.Is(err, ErrArgument) {
		t.Fatalf("count mismatch error = %v", err)
	}
	if !strings.Contains(err.Error(), "ReadU32") {
		t.Errorf("message %q does not name the function", err.Error())
	}

	_, err = marshalArgs(&fn, []any{"seven", uint32(0x8001), &out})
	if !errors.Is(err, ErrArgument) {
		t.Fatalf("type mismatch error = %v", err)
	}
	if !strings.Contains(err.Error(), `"session"`) {
		t.Errorf("message %q does not name the offending argument", err.Error())
	}
}
