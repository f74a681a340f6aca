package fpga

import (
	"github.com/waborder/nifpga-go/pkg/nifpga"
)

// Irq gives access to the interrupt lines of the FPGA design.
type Irq struct {
	s *Session
}

// Irq returns the session's interrupt accessor.
func (s *Session) Irq() Irq {
	return Irq{s: s}
}

// ReserveContext reserves a wait context. Each concurrently waiting
// goroutine needs its own context, and every reserved context must be
// unreserved before the session closes.
func (i Irq) ReserveContext() (nifpga.IrqContext, error) {
	var ctx nifpga.IrqContext
	err := i.s.call("ReserveIrqContext", &ctx)
	return ctx, err
}

// UnreserveContext releases a reserved wait context.
func (i Irq) UnreserveContext(ctx nifpga.IrqContext) error {
	return i.s.call("UnreserveIrqContext", ctx)
}

// Wait blocks until one of the interrupt lines in the irqs mask asserts or
// the timeout in milliseconds elapses. The asserted mask is only
// meaningful when timedOut is false. Waiting does not acknowledge;
// re-waiting without Acknowledge returns immediately.
func (i Irq) Wait(ctx nifpga.IrqContext, irqs uint32, timeout uint32) (asserted uint32, timedOut bool, err error) {
	var raw uint8
	err = i.s.call("WaitOnIrqs", ctx, irqs, timeout, &asserted, &raw)
	return asserted, raw != 0, err
}

// Acknowledge clears the given interrupt lines so the FPGA VI can assert
// them again.
func (i Irq) Acknowledge(irqs uint32) error {
	return i.s.call("AcknowledgeIrqs", irqs)
}
