// Package dynlib hosts the thin foreign-call layer that links the Go API to
// a native shared library at runtime. All loader and unsafe pointer
// complexity is isolated here: the platform dlopen/LoadLibrary mechanics,
// libffi call-interface preparation, and the raw-memory helpers used by the
// simulated backend. Nothing outside pkg/nifpga should import this package.
package dynlib
