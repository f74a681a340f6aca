package nifpga

import "github.com/waborder/nifpga-go/pkg/nifpga/logging"

// Config expresses the knobs for binding a native library.
type Config struct {
	// LibraryName is the logical library name; the platform artifact is
	// derived from it (NiFpga -> NiFpga.dll, libNiFpga.so, or
	// NiFpga.framework). Open requires it; OpenWith ignores it when a
	// backend is supplied directly.
	LibraryName string

	// Logger receives open/close events and per-call status diagnostics.
	// Nil discards them.
	Logger logging.Logger

	// TolerableWarnings lists warning codes to treat as informational:
	// they are logged and the call returns nil instead of a StatusError.
	// Error codes here are ignored; errors always surface.
	TolerableWarnings []Status
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}

func (c Config) tolerates(s Status) bool {
	if !s.IsWarning() {
		return false
	}
	for _, w := range c.TolerableWarnings {
		if w == s {
			return true
		}
	}
	return false
}
