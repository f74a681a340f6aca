package dynlib

import (
	"testing"
	"unsafe"
)

func TestScalarRoundTrips(t *testing.T) {
	var u8 uint8
	PutUint8(uintptr(unsafe.Pointer(&u8)), 0xAB)
	if got := Uint8At(uintptr(unsafe.Pointer(&u8))); got != 0xAB {
		t.Fatalf("uint8 round trip: got %#x", got)
	}

	var u16 uint16
	PutUint16(uintptr(unsafe.Pointer(&u16)), 0xBEEF)
	if got := Uint16At(uintptr(unsafe.Pointer(&u16))); got != 0xBEEF {
		t.Fatalf("uint16 round trip: got %#x", got)
	}

	var u32 uint32
	PutUint32(uintptr(unsafe.Pointer(&u32)), 0xDEADBEEF)
	if got := Uint32At(uintptr(unsafe.Pointer(&u32))); got != 0xDEADBEEF {
		t.Fatalf("uint32 round trip: got %#x", got)
	}

	var u64 uint64
	PutUint64(uintptr(unsafe.Pointer(&u64)), 0x0123456789ABCDEF)
	if got := Uint64At(uintptr(unsafe.Pointer(&u64))); got != 0x0123456789ABCDEF {
		t.Fatalf("uint64 round trip: got %#x", got)
	}

	var i32 int32
	PutInt32(uintptr(unsafe.Pointer(&i32)), -50400)
	if got := Int32At(uintptr(unsafe.Pointer(&i32))); got != -50400 {
		t.Fatalf("int32 round trip: got %d", got)
	}

	var f32 float32
	PutFloat32(uintptr(unsafe.Pointer(&f32)), 1.5)
	if got := Float32At(uintptr(unsafe.Pointer(&f32))); got != 1.5 {
		t.Fatalf("float32 round trip: got %v", got)
	}

	var f64 float64
	PutFloat64(uintptr(unsafe.Pointer(&f64)), -2.25)
	if got := Float64At(uintptr(unsafe.Pointer(&f64))); got != -2.25 {
		t.Fatalf("float64 round trip: got %v", got)
	}
}

func TestStringAt(t *testing.T) {
	buf := []byte("libNiFpga.so\x00trailing")
	got := StringAt(uintptr(unsafe.Pointer(&buf[0])))
	if got != "libNiFpga.so" {
		t.Fatalf("StringAt: got %q", got)
	}
	if StringAt(0) != "" {
		t.Fatal("StringAt(0) should be empty")
	}
}

func TestSliceViewsAreLive(t *testing.T) {
	words := make([]uint32, 4)
	view := Uint32SliceAt(uintptr(unsafe.Pointer(&words[0])), len(words))
	view[2] = 7
	if words[2] != 7 {
		t.Fatalf("write through view not visible: %v", words)
	}

	raw := make([]byte, 8)
	b := BytesAt(uintptr(unsafe.Pointer(&raw[0])), len(raw))
	copy(b, "ABCD")
	if string(raw[:4]) != "ABCD" {
		t.Fatalf("byte view not live: %q", raw)
	}
}
