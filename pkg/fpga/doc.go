// Package fpga provides a high-level API for National Instruments FPGA
// targets on top of the status-checked driver binding in pkg/nifpga.
//
// A Session pairs a driver session handle with the bound library that
// issued it. Its methods cover the full driver surface by type: session
// lifecycle, typed register and register-array access, host-memory DMA
// FIFOs, and interrupts.
//
// # Usage
//
//	lib, err := nifpga.OpenDriver(nifpga.Config{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer lib.Close()
//
//	sess, err := fpga.Open(lib, "design.lvbitx", "A1B2C3D4", "RIO0", 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer sess.Close(0)
//
//	count, err := sess.ReadU32(indicatorCount)
//	fifo := sess.Fifo(0)
//	if _, err := fifo.Configure(8192); err != nil {
//		log.Fatal(err)
//	}
//
// Driver failures surface unchanged as *nifpga.StatusError, so callers can
// branch on codes with nifpga.IsStatus. The package adds its own errors
// only for structural misuse (nil library, closed session).
//
// # Concurrency
//
// Sessions add no locking of their own. Concurrent calls on one session
// are only as safe as the native driver's reentrancy, and Close must not
// race in-flight calls; this is the same contract as pkg/nifpga.
package fpga
