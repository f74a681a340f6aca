package fpga

import (
	"github.com/waborder/nifpga-go/pkg/nifpga"
)

// OpenFlag adjusts how a session is opened. Flags combine with bitwise or.
type OpenFlag uint32

const (
	// NoRun opens the session without running the FPGA VI.
	NoRun OpenFlag = OpenFlag(nifpga.OpenAttributeNoRun)
	// BitfilePathIsUTF8 marks the bitfile path as UTF-8 encoded.
	BitfilePathIsUTF8 OpenFlag = OpenFlag(nifpga.OpenAttributeBitfilePathIsUTF8)
)

// RunFlag adjusts how the FPGA VI is run.
type RunFlag uint32

// WaitUntilDone blocks Run until the FPGA VI stops executing.
const WaitUntilDone RunFlag = RunFlag(nifpga.RunAttributeWaitUntilDone)

// CloseFlag adjusts how a session is closed.
type CloseFlag uint32

// NoResetIfLastSession leaves the FPGA VI running when the last session
// closes.
const NoResetIfLastSession CloseFlag = CloseFlag(nifpga.CloseAttributeNoResetIfLastSession)

// Session is one opened FPGA session: the driver handle plus the bound
// library that issued it. The zero value is not usable; construct with
// Open.
type Session struct {
	lib    *nifpga.Library
	handle nifpga.Session
	closed bool
}

// Open opens a session against the FPGA described by bitfile on the named
// RIO resource. The signature must match the one embedded in the bitfile;
// the driver rejects mismatches. Unless NoRun is set the FPGA VI starts
// running immediately.
func Open(lib *nifpga.Library, bitfile, signature, resource string, flags OpenFlag) (*Session, error) {
	if lib == nil {
		return nil, ErrNilLibrary
	}
	var handle nifpga.Session
	if err := lib.Call("Open", bitfile, signature, resource, uint32(flags), &handle); err != nil {
		return nil, err
	}
	return &Session{lib: lib, handle: handle}, nil
}

// call invokes a driver function with the session handle prepended.
func (s *Session) call(name string, args ...any) error {
	if s == nil || s.closed {
		return ErrClosed
	}
	return s.lib.Call(name, append([]any{s.handle}, args...)...)
}

// Handle returns the raw driver session handle, for calls made directly
// against the library.
func (s *Session) Handle() nifpga.Session {
	return s.handle
}

// Run starts the FPGA VI.
func (s *Session) Run(flags RunFlag) error {
	return s.call("Run", uint32(flags))
}

// Abort stops the FPGA VI immediately.
func (s *Session) Abort() error {
	return s.call("Abort")
}

// Reset stops the FPGA VI and restores the default state of all controls,
// indicators, and FIFOs.
func (s *Session) Reset() error {
	return s.call("Reset")
}

// Download redeploys the bitfile to the FPGA, discarding its current
// state.
func (s *Session) Download() error {
	return s.call("Download")
}

// State reports what the FPGA VI is currently doing.
func (s *Session) State() (nifpga.FpgaViState, error) {
	var raw uint32
	if err := s.call("GetFpgaViState", &raw); err != nil {
		return nifpga.FpgaViStateInvalid, err
	}
	return nifpga.FpgaViState(int32(raw)), nil
}

// Close releases the session. Unless NoResetIfLastSession is set, closing
// the last session resets the FPGA. Further method calls return ErrClosed.
func (s *Session) Close(flags CloseFlag) error {
	if s == nil || s.closed {
		return ErrClosed
	}
	if err := s.lib.Call("Close", s.handle, uint32(flags)); err != nil {
		return err
	}
	s.closed = true
	return nil
}
