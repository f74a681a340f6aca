package nifpga

import "fmt"

// Session is the opaque 32-bit handle the driver issues per opened FPGA
// session. It is passed through unchanged on every call.
type Session = uint32

// IrqContext is the opaque pointer-sized handle for a reserved interrupt
// wait context.
type IrqContext = uintptr

// Attribute flags and sentinels passed through unchanged to native calls.
// The numeric values are part of the driver's wire contract; do not change
// them.
const (
	// OpenAttributeNoRun opens a session without running the FPGA VI.
	OpenAttributeNoRun uint32 = 1
	// OpenAttributeBitfilePathIsUTF8 marks the bitfile path argument as
	// UTF-8 encoded.
	OpenAttributeBitfilePathIsUTF8 uint32 = 2
	// RunAttributeWaitUntilDone blocks Run until the FPGA VI stops.
	RunAttributeWaitUntilDone uint32 = 1
	// CloseAttributeNoResetIfLastSession leaves the FPGA running when the
	// last session closes.
	CloseAttributeNoResetIfLastSession uint32 = 1
	// InfiniteTimeout disables the timeout on calls that accept one.
	InfiniteTimeout uint32 = 0xFFFFFFFF
)

// FpgaViState describes what the FPGA VI is currently doing, as reported by
// the driver.
type FpgaViState int32

const (
	// FpgaViStateNotRunning: the VI has been downloaded and not run, or was
	// aborted or reset.
	FpgaViStateNotRunning FpgaViState = 0
	// FpgaViStateInvalid: an error occurred and the state is unknown.
	FpgaViStateInvalid FpgaViState = 1
	// FpgaViStateRunning: the VI is currently executing.
	FpgaViStateRunning FpgaViState = 2
	// FpgaViStateNaturallyStopped: the VI stopped on its own rather than by
	// abort or reset.
	FpgaViStateNaturallyStopped FpgaViState = 3
)

func (s FpgaViState) String() string {
	switch s {
	case FpgaViStateNotRunning:
		return "NotRunning"
	case FpgaViStateInvalid:
		return "Invalid"
	case FpgaViStateRunning:
		return "Running"
	case FpgaViStateNaturallyStopped:
		return "NaturallyStopped"
	}
	return fmt.Sprintf("FpgaViState(%d)", int32(s))
}
