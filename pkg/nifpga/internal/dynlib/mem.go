package dynlib

import "unsafe"

// Raw-memory accessors for pointer-valued call arguments. The real driver
// writes out-parameters through these addresses natively; the simulated
// backend uses the helpers below to do the same from Go. Addresses must come
// from a live pointer marshaled into the current call; the marshaling layer
// keeps the referent alive until the call returns.

// Uint8At reads the byte at p.
func Uint8At(p uintptr) uint8 { return *(*uint8)(unsafe.Pointer(p)) }

// PutUint8 writes v at p.
func PutUint8(p uintptr, v uint8) { *(*uint8)(unsafe.Pointer(p)) = v }

// Uint16At reads the 16-bit word at p.
func Uint16At(p uintptr) uint16 { return *(*uint16)(unsafe.Pointer(p)) }

// PutUint16 writes v at p.
func PutUint16(p uintptr, v uint16) { *(*uint16)(unsafe.Pointer(p)) = v }

// Uint32At reads the 32-bit word at p.
func Uint32At(p uintptr) uint32 { return *(*uint32)(unsafe.Pointer(p)) }

// PutUint32 writes v at p.
func PutUint32(p uintptr, v uint32) { *(*uint32)(unsafe.Pointer(p)) = v }

// Uint64At reads the 64-bit word at p.
func Uint64At(p uintptr) uint64 { return *(*uint64)(unsafe.Pointer(p)) }

// PutUint64 writes v at p.
func PutUint64(p uintptr, v uint64) { *(*uint64)(unsafe.Pointer(p)) = v }

// Int32At reads the signed 32-bit word at p.
func Int32At(p uintptr) int32 { return *(*int32)(unsafe.Pointer(p)) }

// PutInt32 writes v at p.
func PutInt32(p uintptr, v int32) { *(*int32)(unsafe.Pointer(p)) = v }

// PutFloat32 writes v at p.
func PutFloat32(p uintptr, v float32) { *(*float32)(unsafe.Pointer(p)) = v }

// Float32At reads the float at p.
func Float32At(p uintptr) float32 { return *(*float32)(unsafe.Pointer(p)) }

// PutFloat64 writes v at p.
func PutFloat64(p uintptr, v float64) { *(*float64)(unsafe.Pointer(p)) = v }

// Float64At reads the double at p.
func Float64At(p uintptr) float64 { return *(*float64)(unsafe.Pointer(p)) }

// PutPointer writes a pointer-sized value at p.
func PutPointer(p uintptr, v uintptr) { *(*uintptr)(unsafe.Pointer(p)) = v }

// PointerAt reads a pointer-sized value at p.
func PointerAt(p uintptr) uintptr { return *(*uintptr)(unsafe.Pointer(p)) }

// StringAt reads the NUL-terminated C string at p. An empty string is
// returned for a nil address.
func StringAt(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for Uint8At(p+uintptr(n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

// BytesAt returns a live view of n bytes at p. Writes through the slice are
// visible to the owner of the memory.
func BytesAt(p uintptr, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

// Uint32SliceAt returns a live view of n 32-bit words at p.
func Uint32SliceAt(p uintptr, n int) []uint32 {
	return unsafe.Slice((*uint32)(unsafe.Pointer(p)), n)
}

// Uint64SliceAt returns a live view of n 64-bit words at p.
func Uint64SliceAt(p uintptr, n int) []uint64 {
	return unsafe.Slice((*uint64)(unsafe.Pointer(p)), n)
}
