package dynlib

import (
	"errors"
	"fmt"
)

// Kind identifies the native storage of a single call argument. The set is
// closed: every argument a descriptor can declare lowers to exactly one Kind.
type Kind uint8

const (
	KindUint8 Kind = iota
	KindInt8
	KindUint16
	KindInt16
	KindUint32
	KindInt32
	KindUint64
	KindInt64
	KindFloat32
	KindFloat64
	// KindPointer covers every pointer-shaped argument: out-parameters,
	// buffers, opaque contexts, and C strings already lowered to an address.
	KindPointer
)

// ErrUnsupportedPlatform reports that no native loader exists for the
// current GOOS.
var ErrUnsupportedPlatform = errors.New("nifpga/internal/dynlib: no native library support on this platform")

// ErrNotFound reports that the platform loader could not locate or load the
// requested library file. The loader's own diagnostic text is attached by
// Open.
var ErrNotFound = errors.New("nifpga/internal/dynlib: library not found")

// ErrSymbol reports that a declared symbol is absent from a loaded library.
var ErrSymbol = errors.New("nifpga/internal/dynlib: symbol not found")

// Lib is one loaded native library. It is created by Open, owns the platform
// handle, and is not reloaded or duplicated. Lib performs no locking of its
// own; callers serialize Close against in-flight calls.
type Lib struct {
	handle uintptr
	file   string
}

// Open loads the named library file through the platform's standard
// resolution order. It makes exactly one attempt: no alternate search paths,
// no retries. Failures wrap ErrNotFound (or ErrUnsupportedPlatform where no
// loader exists) and preserve the platform loader's own message.
func Open(file string) (*Lib, error) {
	h, err := dlOpen(file)
	if err != nil {
		return nil, err
	}
	return &Lib{handle: h, file: file}, nil
}

// File returns the artifact name this library was loaded from.
func (l *Lib) File() string { return l.file }

// Symbol resolves name against the library. Resolution happens once per
// declared function, at binding construction.
func (l *Lib) Symbol(name string) (uintptr, error) {
	addr, err := dlSym(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %q in %s (%v)", ErrSymbol, name, l.file, err)
	}
	return addr, nil
}

// Close releases the platform handle. The caller guarantees no call is in
// flight.
func (l *Lib) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := dlClose(l.handle)
	l.handle = 0
	return err
}
