// Package nifpga binds the NI FPGA Interface C API driver library at
// runtime. Callers describe the entry points they need as FunctionInfo
// descriptors; Open loads the platform artifact, resolves every symbol up
// front, and returns a Library whose Call method marshals Go arguments into
// native words, invokes the entry point, and maps the returned status code
// to a Go error. Warnings listed in Config.TolerableWarnings are logged and
// swallowed; everything else surfaces as a StatusError.
package nifpga
