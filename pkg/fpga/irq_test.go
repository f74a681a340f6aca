package fpga

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waborder/nifpga-go/pkg/nifpga"
)

func TestIrqWaitAndAcknowledge(t *testing.T) {
	target, sess := newTestSession(t, NoRun)
	irq := sess.Irq()

	ctx, err := irq.ReserveContext()
	require.NoError(t, err)
	require.NotZero(t, ctx)

	asserted, timedOut, err := irq.Wait(ctx, 0b11, 0)
	require.NoError(t, err)
	require.True(t, timedOut)
	require.Zero(t, asserted)

	require.NoError(t, target.RaiseIrqs(sess.Handle(), 0b101))
	asserted, timedOut, err = irq.Wait(ctx, 0b100, nifpga.InfiniteTimeout)
	require.NoError(t, err)
	require.False(t, timedOut)
	require.Equal(t, uint32(0b100), asserted)

	// Waiting does not acknowledge: the line stays asserted until cleared.
	asserted, timedOut, err = irq.Wait(ctx, 0b100, 0)
	require.NoError(t, err)
	require.False(t, timedOut)
	require.Equal(t, uint32(0b100), asserted)

	require.NoError(t, irq.Acknowledge(0b100))
	_, timedOut, err = irq.Wait(ctx, 0b100, 0)
	require.NoError(t, err)
	require.True(t, timedOut)

	// The other raised line was not acknowledged.
	asserted, timedOut, err = irq.Wait(ctx, 0b001, 0)
	require.NoError(t, err)
	require.False(t, timedOut)
	require.Equal(t, uint32(0b001), asserted)

	require.NoError(t, irq.UnreserveContext(ctx))
}

func TestIrqContextLifecycle(t *testing.T) {
	_, sess := newTestSession(t, NoRun)
	irq := sess.Irq()

	ctx, err := irq.ReserveContext()
	require.NoError(t, err)

	other, err := irq.ReserveContext()
	require.NoError(t, err)
	require.NotEqual(t, ctx, other)

	require.NoError(t, irq.UnreserveContext(ctx))
	_, _, err = irq.Wait(ctx, 1, 0)
	require.True(t, nifpga.IsStatus(err, nifpga.StatusResourceNotInitialized), "got %v", err)
	err = irq.UnreserveContext(ctx)
	require.True(t, nifpga.IsStatus(err, nifpga.StatusResourceNotInitialized), "got %v", err)

	require.NoError(t, irq.UnreserveContext(other))
}
