// Package mockfpga provides an in-memory driver backend for testing and examples.
//
// Mockfpga implements the nifpga.Backend interface with a simulated FPGA
// target, allowing session, register, FIFO, and interrupt code paths to run
// without NI hardware or an installed driver library. Behavior follows the
// real entry points closely enough for unit tests: sessions are issued and
// validated, registers hold what was written, FIFOs queue elements, and
// status codes come back through the same classification path production
// calls use.
//
// # Features
//
//   - Full session lifecycle (Open, Run, Abort, Reset, Download, Close, VI state)
//   - Scalar and array register storage per session
//   - Host-memory DMA FIFO simulation with depth, acquire/release, and properties
//   - Interrupt reservation, wait, and acknowledge with test-driven assertion
//   - Scripted statuses for driving warning and error paths
//   - Omitted symbols for exercising construction-time resolution failures
//
// # Usage
//
// Bind the driver function table against a simulated target:
//
//	import (
//	    "github.com/waborder/nifpga-go/pkg/nifpga"
//	    "github.com/waborder/nifpga-go/pkg/nifpga/mockfpga"
//	)
//
//	target := mockfpga.New()
//	lib, err := nifpga.OpenWith(nifpga.Config{LibraryName: "NiFpga"}, target, nifpga.DriverFunctions())
//	if err != nil {
//	    // handle
//	}
//	defer lib.Close()
//
//	var session uint32
//	err = lib.Call("Open", "design.lvbitx", "SIGNATURE", "RIO0", nifpga.OpenAttributeNoRun, &session)
//
// Drive the device side from the test:
//
//	target.Poke(session, 0x8000, 42)        // the design updates an indicator
//	target.Feed(session, 0, 1, 2, 3)        // the design fills a target-to-host FIFO
//	target.RaiseIrqs(session, 1<<3)         // the design asserts IRQ 3
//
// Force specific statuses:
//
//	target.Script("NiFpga_Run", nifpga.StatusFpgaAlreadyRunning)
//
// # Limitations
//
// Mockfpga is designed for testing and examples only:
//   - Calls never block; an unsatisfied FIFO read or IRQ wait is an
//     immediate timeout regardless of the timeout argument
//   - One outstanding FIFO acquisition per FIFO; a release must cover
//     exactly the acquired count
//   - No bitfile parsing; any nonempty path is accepted
//   - Timing, DMA throughput, and device discovery are not simulated
//
// For real hardware, open the library through nifpga.OpenDriver, which loads
// the installed NiFpga artifact for the platform.
package mockfpga
