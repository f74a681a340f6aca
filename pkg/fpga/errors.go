package fpga

import "errors"

var (
	// ErrNilLibrary indicates Open was given no bound library.
	ErrNilLibrary = errors.New("fpga: nil library")

	// ErrClosed indicates the session has been closed.
	ErrClosed = errors.New("fpga: session closed")
)
