package nifpga

import "errors"

// ErrLibraryNotFound indicates the native driver library could not be
// located or loaded. The wrapped message carries the platform remediation
// text and the loader's own diagnostic.
var ErrLibraryNotFound = errors.New("native library not found")

// ErrUnsupportedPlatform indicates the host OS has no native driver support
// at all, as opposed to a missing installation.
var ErrUnsupportedPlatform = errors.New("platform not supported by the native driver")

// ErrSymbolNotFound indicates a declared native symbol is absent from the
// loaded library, typically a driver version mismatch. Raised at binding
// construction, never per call.
var ErrSymbolNotFound = errors.New("symbol not found in native library")

// ErrUnknownFunction indicates a call referenced a logical name no
// descriptor declared.
var ErrUnknownFunction = errors.New("function not declared")

// ErrArgument indicates a call's arguments do not match the declared
// descriptor, by count or by type. The wrapped message names the offending
// argument.
var ErrArgument = errors.New("argument mismatch")

// ErrDescriptor indicates an invalid function descriptor at construction:
// empty names, an unknown argument type, or a duplicate logical name.
var ErrDescriptor = errors.New("invalid function descriptor")

// ErrLibraryClosed is returned by operations on a closed library.
var ErrLibraryClosed = errors.New("library closed")

// ErrNilBackend indicates OpenWith was handed a nil backend.
var ErrNilBackend = errors.New("nil backend")
