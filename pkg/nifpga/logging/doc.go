// Package logging provides a minimal logging facade for the FPGA driver
// binding.
//
// This package defines a Logger interface that wraps a subset of the
// standard library's log/slog functionality. The interface is intentionally
// small to allow applications to provide custom implementations for testing
// or integration with existing logging systems.
//
// # Logger Interface
//
// The Logger interface provides context-aware logging methods:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
// The package provides a default slog-backed implementation:
//
//	import (
//	    "log/slog"
//	    "github.com/waborder/nifpga-go/pkg/nifpga/logging"
//	)
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// Library code that receives no logger falls back to Discard, which drops
// everything; binding diagnostics never print unless an application asks
// for them.
//
// # Usage
//
// Loggers are threaded through the binding configuration:
//
//	logger := logging.New(nil)
//	logger.Info(ctx, "driver bound", "library", "NiFpga", "functions", 96)
//
// Applications can provide custom Logger implementations by satisfying the
// five interface methods.
package logging
