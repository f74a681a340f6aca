package flexrio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/waborder/nifpga-go/pkg/nifpga"
	"github.com/waborder/nifpga-go/pkg/nifpga/mockfpga"
)

func TestRouteSignal(t *testing.T) {
	target := mockfpga.New()
	rio, err := OpenWith(nifpga.Config{}, target)
	require.NoError(t, err)
	defer rio.Close()

	ticket, err := rio.RouteSignal(1, "PXI_Trig0", "DStarA")
	require.NoError(t, err)
	require.Equal(t, int32(0), ticket)
	require.Equal(t, []string{"niFlexRio_RouteSignal"}, target.Calls())
}

func TestRouteSignalDriverError(t *testing.T) {
	target := mockfpga.New()
	target.Script("niFlexRio_RouteSignal", nifpga.StatusInvalidParameter)
	rio, err := OpenWith(nifpga.Config{}, target)
	require.NoError(t, err)
	defer rio.Close()

	_, err = rio.RouteSignal(1, "PXI_Trig0", "nowhere")
	require.True(t, nifpga.IsStatus(err, nifpga.StatusInvalidParameter), "got %v", err)
}

func TestMissingSupportLibrarySymbol(t *testing.T) {
	target := mockfpga.New()
	target.Omit("niFlexRio_RouteSignal")
	_, err := OpenWith(nifpga.Config{}, target)
	require.ErrorIs(t, err, nifpga.ErrSymbolNotFound)
	require.True(t, target.Closed())
}

func TestFunctionDescriptors(t *testing.T) {
	funcs := Functions()
	require.Len(t, funcs, 1)
	require.Equal(t,
		"RouteSignal = niFlexRio_RouteSignal(session U32, source CStr, destination CStr, routeTicket Ptr)",
		funcs[0].String())
}
