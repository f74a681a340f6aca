package nifpga

import (
	"errors"
	"fmt"

	"github.com/waborder/nifpga-go/pkg/nifpga/internal/dynlib"
)

// NativeCall invokes one resolved native function. words carries one 64-bit
// slot per declared argument with the argument's raw bit pattern; the
// returned value is the unclassified native status code.
type NativeCall func(words []uint64) Status

// Backend resolves declared native entry points into callables. The
// production backend wraps the platform loader; mockfpga provides an
// in-memory implementation for tests and hardware-free development.
type Backend interface {
	// Resolve returns the callable for symbol with the declared argument
	// layout. A missing symbol is a construction-time failure and should
	// wrap ErrSymbolNotFound.
	Resolve(symbol string, args []NativeType) (NativeCall, error)
	// Close releases whatever the backend holds. Callers guarantee no call
	// is in flight.
	Close() error
}

// nativeKind lowers a NativeType to the foreign-call layer's argument kind.
// This is the only place where the mapping between the two vocabularies
// exists. CStr lowers to a pointer: the marshaler has already produced the
// buffer address by the time the call layer sees the argument.
func nativeKind(t NativeType) (dynlib.Kind, error) {
	switch t {
	case Bool, U8:
		return dynlib.KindUint8, nil
	case I8:
		return dynlib.KindInt8, nil
	case U16:
		return dynlib.KindUint16, nil
	case I16:
		return dynlib.KindInt16, nil
	case U32:
		return dynlib.KindUint32, nil
	case I32:
		return dynlib.KindInt32, nil
	case U64:
		return dynlib.KindUint64, nil
	case I64:
		return dynlib.KindInt64, nil
	case F32:
		return dynlib.KindFloat32, nil
	case F64:
		return dynlib.KindFloat64, nil
	case Ptr, CStr, USize:
		// size_t shares the pointer's width and register class on every
		// supported ABI.
		return dynlib.KindPointer, nil
	default:
		return 0, fmt.Errorf("%w: no native representation for %v", ErrDescriptor, t)
	}
}

// dynBackend adapts a loaded shared library to the Backend interface.
type dynBackend struct {
	lib *dynlib.Lib
}

func openDynBackend(file string) (Backend, error) {
	lib, err := dynlib.Open(file)
	if err != nil {
		return nil, err
	}
	return &dynBackend{lib: lib}, nil
}

func (b *dynBackend) Resolve(symbol string, args []NativeType) (NativeCall, error) {
	kinds := make([]dynlib.Kind, len(args))
	for i, t := range args {
		k, err := nativeKind(t)
		if err != nil {
			return nil, err
		}
		kinds[i] = k
	}
	fn, err := b.lib.Prep(symbol, kinds)
	if err != nil {
		if errors.Is(err, dynlib.ErrSymbol) {
			return nil, fmt.Errorf("%w: %v", ErrSymbolNotFound, err)
		}
		return nil, err
	}
	return func(words []uint64) Status {
		return Status(fn.Call(words))
	}, nil
}

func (b *dynBackend) Close() error {
	return b.lib.Close()
}
