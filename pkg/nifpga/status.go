package nifpga

import (
	"errors"
	"fmt"
	"strconv"
)

// Status is the signed 32-bit code every native call returns. Zero is
// success, positive codes are warnings worth surfacing, negative codes are
// errors. The named constants below are the codes the driver documents;
// classification does not depend on a code being named.
type Status int32

// StatusSuccess reports no errors or warnings.
const StatusSuccess Status = 0

// Documented error codes. The warning form of a condition is the positive
// counterpart of its error code, per the driver convention.
const (
	// StatusFifoTimeout: the timeout expired before the FIFO operation
	// could complete.
	StatusFifoTimeout Status = -50400
	// StatusTransferAborted: the transfer was aborted by the client; no
	// transfer is in progress.
	StatusTransferAborted Status = -50405
	// StatusMemoryFull: a memory allocation failed.
	StatusMemoryFull Status = -52000
	// StatusSoftwareFault: an unexpected software error occurred.
	StatusSoftwareFault Status = -52003
	// StatusInvalidParameter: a parameter to a function was not valid.
	StatusInvalidParameter Status = -52005
	// StatusResourceNotFound: a required resource was not found, such as
	// the driver library or the RIO resource itself.
	StatusResourceNotFound Status = -52006
	// StatusResourceNotInitialized: a required resource was not properly
	// initialized, e.g. an IRQ context that was never reserved.
	StatusResourceNotInitialized Status = -52010
	// StatusFpgaAlreadyRunning: the FPGA VI is already running.
	StatusFpgaAlreadyRunning Status = -61003
	// StatusDownloadError: downloading the VI to the FPGA device failed.
	StatusDownloadError Status = -61018
	// StatusDeviceTypeMismatch: the bitfile was not compiled for the
	// specified resource's device type.
	StatusDeviceTypeMismatch Status = -61024
	// StatusCommunicationTimeout: communication between the host and the
	// FPGA target broke down.
	StatusCommunicationTimeout Status = -61046
	// StatusIrqTimeout: the timeout expired before any waited-on IRQ was
	// asserted.
	StatusIrqTimeout Status = -61060
	// StatusCorruptBitfile: the bitfile is invalid or corrupt.
	StatusCorruptBitfile Status = -61070
	// StatusBadDepth: the requested FIFO depth is zero or unsupported by
	// the hardware.
	StatusBadDepth Status = -61072
	// StatusBadReadWriteCount: the element count exceeds the FIFO depth, or
	// more elements were released than had been acquired.
	StatusBadReadWriteCount Status = -61073
	// StatusClockLostLock: a derived clock lost lock with its base clock
	// while the VI executed.
	StatusClockLostLock Status = -61083
	// StatusFpgaBusy: the FPGA is busy; stop all other activity first.
	StatusFpgaBusy Status = -61141
	// StatusFpgaBusyFpgaInterfaceCApi: the FPGA is busy operating in FPGA
	// Interface C API mode.
	StatusFpgaBusyFpgaInterfaceCApi Status = -61200
	// StatusFpgaBusyScanInterface: the chassis is in Scan Interface
	// programming mode; switch to FPGA programming mode and redeploy.
	StatusFpgaBusyScanInterface Status = -61201
	// StatusFpgaBusyFpgaInterface: the FPGA is busy operating in FPGA
	// Interface mode.
	StatusFpgaBusyFpgaInterface Status = -61202
	// StatusFpgaBusyInteractive: the FPGA is busy operating in Interactive
	// mode.
	StatusFpgaBusyInteractive Status = -61203
	// StatusFpgaBusyEmulation: the FPGA is busy operating in Emulation
	// mode.
	StatusFpgaBusyEmulation Status = -61204
	// StatusResetCalledWithImplicitEnableRemoval: Reset is unsupported for
	// bitfiles that allow removal of implicit enable signals in
	// single-cycle timed loops.
	StatusResetCalledWithImplicitEnableRemoval Status = -61211
	// StatusAbortCalledWithImplicitEnableRemoval: Abort is unsupported for
	// bitfiles that allow removal of implicit enable signals in
	// single-cycle timed loops.
	StatusAbortCalledWithImplicitEnableRemoval Status = -61212
	// StatusCloseAndResetCalledWithImplicitEnableRemoval: close-and-reset
	// is unsupported for such bitfiles; close with
	// CloseAttributeNoResetIfLastSession instead.
	StatusCloseAndResetCalledWithImplicitEnableRemoval Status = -61213
	// StatusImplicitEnableRemovalButNotYetRun: the method is unsupported
	// before the bitfile has run.
	StatusImplicitEnableRemovalButNotYetRun Status = -61214
	// StatusRunAfterStoppedCalledWithImplicitEnableRemoval: such bitfiles
	// run only once; download again before re-running.
	StatusRunAfterStoppedCalledWithImplicitEnableRemoval Status = -61215
	// StatusGatedClockHandshakingViolation: a gated clock violated the
	// handshaking protocol.
	StatusGatedClockHandshakingViolation Status = -61216
	// StatusElementsNotPermissibleToBeAcquired: more elements were
	// requested than remain unacquired in the host memory FIFO.
	StatusElementsNotPermissibleToBeAcquired Status = -61219
	// StatusFpgaBusyConfiguration: the FPGA is in configuration or
	// discovery mode; retry after it completes.
	StatusFpgaBusyConfiguration Status = -61252
	// StatusInternalError: an unexpected internal error occurred.
	StatusInternalError Status = -61499
	// StatusTotalDmaFifoDepthExceeded: the combined depth of all DMA FIFOs
	// exceeds what the controller supports.
	StatusTotalDmaFifoDepthExceeded Status = -63003
	// StatusAccessDenied: access to the remote system was denied.
	StatusAccessDenied Status = -63033
	// StatusHostVersionMismatch: the host driver software is too old for
	// the target; upgrade the host.
	StatusHostVersionMismatch Status = -63038
	// StatusRpcConnectionError: no connection could be established to the
	// remote device.
	StatusRpcConnectionError Status = -63040
	// StatusRpcSessionError: the RPC session is invalid; the target may
	// have rebooted.
	StatusRpcSessionError Status = -63043
	// StatusFifoReserved: another session is accessing the FIFO.
	StatusFifoReserved Status = -63082
	// StatusFifoElementsCurrentlyAcquired: the operation requires all
	// acquired elements to be released first.
	StatusFifoElementsCurrentlyAcquired Status = -63083
	// StatusMisalignedAccess: the address is not a multiple of the data
	// type size.
	StatusMisalignedAccess Status = -63084
	// StatusControlOrIndicatorTooLarge: the control or indicator data
	// exceeds the maximum size supported on this target.
	StatusControlOrIndicatorTooLarge Status = -63085
	// StatusBitfileReadError: a valid bitfile is required, or the bitfile
	// is newer than the installed software.
	StatusBitfileReadError Status = -63101
	// StatusSignatureMismatch: the supplied signature does not match the
	// bitfile's signature.
	StatusSignatureMismatch Status = -63106
	// StatusIncompatibleBitfile: the bitfile is incompatible with the
	// installed driver version on host or target.
	StatusIncompatibleBitfile Status = -63107
	// StatusInvalidResourceName: the resource name is invalid or the
	// device was not found.
	StatusInvalidResourceName Status = -63192
	// StatusFeatureNotSupported: the requested feature is not supported.
	StatusFeatureNotSupported Status = -63193
	// StatusVersionMismatch: the driver software on the target is not
	// compatible with this software; upgrade the target.
	StatusVersionMismatch Status = -63194
	// StatusInvalidSession: the session is invalid or has been closed.
	StatusInvalidSession Status = -63195
	// StatusOutOfHandles: the maximum number of open FPGA sessions has
	// been reached.
	StatusOutOfHandles Status = -63198
)

// statusNames registers the documented codes. Positive counterparts resolve
// through the same table in Name.
var statusNames = map[Status]string{
	StatusSuccess:                "Success",
	StatusFifoTimeout:            "FifoTimeout",
	StatusTransferAborted:        "TransferAborted",
	StatusMemoryFull:             "MemoryFull",
	StatusSoftwareFault:          "SoftwareFault",
	StatusInvalidParameter:       "InvalidParameter",
	StatusResourceNotFound:       "ResourceNotFound",
	StatusResourceNotInitialized: "ResourceNotInitialized",

	StatusFpgaAlreadyRunning:        "FpgaAlreadyRunning",
	StatusDownloadError:             "DownloadError",
	StatusDeviceTypeMismatch:        "DeviceTypeMismatch",
	StatusCommunicationTimeout:      "CommunicationTimeout",
	StatusIrqTimeout:                "IrqTimeout",
	StatusCorruptBitfile:            "CorruptBitfile",
	StatusBadDepth:                  "BadDepth",
	StatusBadReadWriteCount:         "BadReadWriteCount",
	StatusClockLostLock:             "ClockLostLock",
	StatusFpgaBusy:                  "FpgaBusy",
	StatusFpgaBusyFpgaInterfaceCApi: "FpgaBusyFpgaInterfaceCApi",
	StatusFpgaBusyScanInterface:     "FpgaBusyScanInterface",
	StatusFpgaBusyFpgaInterface:     "FpgaBusyFpgaInterface",
	StatusFpgaBusyInteractive:       "FpgaBusyInteractive",
	StatusFpgaBusyEmulation:         "FpgaBusyEmulation",

	StatusResetCalledWithImplicitEnableRemoval:           "ResetCalledWithImplicitEnableRemoval",
	StatusAbortCalledWithImplicitEnableRemoval:           "AbortCalledWithImplicitEnableRemoval",
	StatusCloseAndResetCalledWithImplicitEnableRemoval:   "CloseAndResetCalledWithImplicitEnableRemoval",
	StatusImplicitEnableRemovalButNotYetRun:              "ImplicitEnableRemovalButNotYetRun",
	StatusRunAfterStoppedCalledWithImplicitEnableRemoval: "RunAfterStoppedCalledWithImplicitEnableRemoval",
	StatusGatedClockHandshakingViolation:                 "GatedClockHandshakingViolation",
	StatusElementsNotPermissibleToBeAcquired:             "ElementsNotPermissibleToBeAcquired",
	StatusFpgaBusyConfiguration:                          "FpgaBusyConfiguration",

	StatusInternalError:                 "InternalError",
	StatusTotalDmaFifoDepthExceeded:     "TotalDmaFifoDepthExceeded",
	StatusAccessDenied:                  "AccessDenied",
	StatusHostVersionMismatch:           "HostVersionMismatch",
	StatusRpcConnectionError:            "RpcConnectionError",
	StatusRpcSessionError:               "RpcSessionError",
	StatusFifoReserved:                  "FifoReserved",
	StatusFifoElementsCurrentlyAcquired: "FifoElementsCurrentlyAcquired",
	StatusMisalignedAccess:              "MisalignedAccess",
	StatusControlOrIndicatorTooLarge:    "ControlOrIndicatorTooLarge",
	StatusBitfileReadError:              "BitfileReadError",
	StatusSignatureMismatch:             "SignatureMismatch",
	StatusIncompatibleBitfile:           "IncompatibleBitfile",
	StatusInvalidResourceName:           "InvalidResourceName",
	StatusFeatureNotSupported:           "FeatureNotSupported",
	StatusVersionMismatch:               "VersionMismatch",
	StatusInvalidSession:                "InvalidSession",
	StatusOutOfHandles:                  "OutOfHandles",
}

// IsSuccess reports whether the code is exactly zero.
func (s Status) IsSuccess() bool { return s == 0 }

// IsWarning reports whether the code is positive: the call completed but
// with a condition the caller likely needs to know about.
func (s Status) IsWarning() bool { return s > 0 }

// IsError reports whether the code is negative: the call failed.
func (s Status) IsError() bool { return s < 0 }

// Name returns the documented condition name, "" if the code is not
// registered. A positive code whose negation is registered resolves to the
// warning form of that condition.
func (s Status) Name() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	if s > 0 {
		if n, ok := statusNames[-s]; ok {
			return n + "Warning"
		}
	}
	return ""
}

// String renders the name with the raw code, or just the raw code when the
// condition is not registered.
func (s Status) String() string {
	if n := s.Name(); n != "" {
		return fmt.Sprintf("%s (%d)", n, int32(s))
	}
	return "status " + strconv.FormatInt(int64(s), 10)
}

// StatusError is the condition a bound call surfaces for any non-zero
// status code. It carries the logical function name that produced the code,
// the code itself, and through Status the band and documented name when
// known. A non-zero code is never dropped silently.
type StatusError struct {
	// Func is the logical name the function was invoked by.
	Func string
	// Status is the raw native code.
	Status Status
}

func (e *StatusError) Error() string {
	band := "error"
	if e.Status.IsWarning() {
		band = "warning"
	}
	return fmt.Sprintf("nifpga: %s returned %s %v", e.Func, band, e.Status)
}

// AsStatus extracts the native status from err, unwrapping as needed.
func AsStatus(err error) (Status, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status, true
	}
	return 0, false
}

// IsStatus reports whether err carries exactly the native status s.
func IsStatus(err error, s Status) bool {
	got, ok := AsStatus(err)
	return ok && got == s
}

// check classifies a native status for the named logical function: nil for
// success, *StatusError for anything else.
func check(fn string, s Status) error {
	if s.IsSuccess() {
		return nil
	}
	return &StatusError{Func: fn, Status: s}
}
