package flexrio

import (
	"github.com/waborder/nifpga-go/pkg/nifpga"
)

// LibraryName is the logical name of the FlexRIO support library. The
// platform loader derives NiFlexRioApi.dll or libNiFlexRioApi.so from it.
const LibraryName = "NiFlexRioApi"

// Functions declares the FlexRIO entry points this package binds.
func Functions() []nifpga.FunctionInfo {
	return []nifpga.FunctionInfo{
		{
			Name:   "RouteSignal",
			Symbol: "niFlexRio_RouteSignal",
			Args: []nifpga.NamedArg{
				{Name: "session", Type: nifpga.U32},
				{Name: "source", Type: nifpga.CStr},
				{Name: "destination", Type: nifpga.CStr},
				{Name: "routeTicket", Type: nifpga.Ptr},
			},
		},
	}
}

// Library is the bound FlexRIO support API.
type Library struct {
	lib *nifpga.Library
}

// Open loads the FlexRIO support library and binds its entry points.
// cfg.LibraryName defaults to LibraryName.
func Open(cfg nifpga.Config) (*Library, error) {
	if cfg.LibraryName == "" {
		cfg.LibraryName = LibraryName
	}
	lib, err := nifpga.Open(cfg, Functions())
	if err != nil {
		return nil, err
	}
	return &Library{lib: lib}, nil
}

// OpenWith binds the FlexRIO entry points against an already-opened
// backend.
func OpenWith(cfg nifpga.Config, backend nifpga.Backend) (*Library, error) {
	if cfg.LibraryName == "" {
		cfg.LibraryName = LibraryName
	}
	lib, err := nifpga.OpenWith(cfg, backend, Functions())
	if err != nil {
		return nil, err
	}
	return &Library{lib: lib}, nil
}

// RouteSignal routes the source signal onto the destination terminal for
// the session's device and returns the ticket identifying the established
// route.
func (l *Library) RouteSignal(session nifpga.Session, source, destination string) (int32, error) {
	var ticket int32
	if err := l.lib.Call("RouteSignal", session, source, destination, &ticket); err != nil {
		return 0, err
	}
	return ticket, nil
}

// Close releases the native library.
func (l *Library) Close() error {
	return l.lib.Close()
}
