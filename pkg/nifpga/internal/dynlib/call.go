//go:build linux || darwin || freebsd || windows

package dynlib

import (
	"fmt"
	"unsafe"

	"github.com/jupiterrider/ffi"
)

// ffiType converts a Kind to its libffi type descriptor.
// This is the only place where the mapping between argument kinds and libffi
// types exists.
func ffiType(k Kind) (*ffi.Type, error) {
	switch k {
	case KindUint8:
		return &ffi.TypeUint8, nil
	case KindInt8:
		return &ffi.TypeSint8, nil
	case KindUint16:
		return &ffi.TypeUint16, nil
	case KindInt16:
		return &ffi.TypeSint16, nil
	case KindUint32:
		return &ffi.TypeUint32, nil
	case KindInt32:
		return &ffi.TypeSint32, nil
	case KindUint64:
		return &ffi.TypeUint64, nil
	case KindInt64:
		return &ffi.TypeSint64, nil
	case KindFloat32:
		return &ffi.TypeFloat, nil
	case KindFloat64:
		return &ffi.TypeDouble, nil
	case KindPointer:
		return &ffi.TypePointer, nil
	default:
		return nil, fmt.Errorf("dynlib: unknown argument kind %d", k)
	}
}

// Fn is one prepared native function: a resolved symbol address plus a call
// interface describing its argument layout. Every bound function returns the
// driver's signed 32-bit status code; out-values travel through
// caller-supplied pointer arguments.
type Fn struct {
	addr  uintptr
	cif   ffi.Cif
	nargs int
}

// Prep resolves symbol in the library and prepares its call interface from
// the declared argument kinds. Prep runs once per declared function, at
// binding construction; a missing symbol or unrepresentable signature is a
// construction failure.
func (l *Lib) Prep(symbol string, args []Kind) (*Fn, error) {
	addr, err := l.Symbol(symbol)
	if err != nil {
		return nil, err
	}
	atypes := make([]*ffi.Type, len(args))
	for i, k := range args {
		if atypes[i], err = ffiType(k); err != nil {
			return nil, fmt.Errorf("dynlib: %s argument %d: %v", symbol, i, err)
		}
	}
	fn := &Fn{addr: addr, nargs: len(args)}
	if st := ffi.PrepCif(&fn.cif, ffi.DefaultAbi, uint32(len(args)), &ffi.TypeSint32, atypes...); st != ffi.OK {
		return nil, fmt.Errorf("dynlib: preparing call interface for %s: status %d", symbol, st)
	}
	return fn, nil
}

// Call invokes the native function. words carries one 64-bit slot per
// declared argument holding the argument's raw little-endian bit pattern;
// the native call reads only the low bytes each argument type covers. The
// returned value is the native status code, unclassified.
//
// Call blocks the calling goroutine for the duration of the native call and
// takes no locks of its own.
func (f *Fn) Call(words []uint64) int32 {
	if len(words) != f.nargs {
		// Argument arity is validated during marshaling; reaching this
		// indicates a bug in the caller, not a native condition.
		panic(fmt.Sprintf("dynlib: call with %d words, want %d", len(words), f.nargs))
	}
	var ret uint64
	if f.nargs == 0 {
		ffi.Call(&f.cif, f.addr, unsafe.Pointer(&ret))
		return int32(ret)
	}
	avalues := make([]unsafe.Pointer, len(words))
	for i := range words {
		avalues[i] = unsafe.Pointer(&words[i])
	}
	ffi.Call(&f.cif, f.addr, unsafe.Pointer(&ret), avalues...)
	return int32(ret)
}
