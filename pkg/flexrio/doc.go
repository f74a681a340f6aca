// Package flexrio binds the FlexRIO support API for routing signals
// between trigger lines and DStar terminals on FlexRIO devices.
//
// The support library ships with the FlexRIO driver separately from the
// FPGA Interface C API; it shares the session handles issued by pkg/nifpga
// but lives in its own native library. Routing is the one operation the
// generated FPGA interface cannot express, so this package stays small.
//
//	rio, err := flexrio.Open(nifpga.Config{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer rio.Close()
//
//	ticket, err := rio.RouteSignal(sess.Handle(), "PXI_Trig0", "DStarA")
//
// Route tickets identify established routes; the driver tears routes down
// when the session closes.
package flexrio
