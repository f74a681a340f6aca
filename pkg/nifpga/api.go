package nifpga

// DriverLibraryName is the logical name of the FPGA Interface C API driver
// library. The platform loader derives NiFpga.dll, libNiFpga.so, or
// NiFpga.framework from it.
const DriverLibraryName = "NiFpga"

// driverPrefix is the exported symbol prefix of the public C API entry
// points.
const driverPrefix = "NiFpga_"

// scalarDataTypes lists the kinds with dedicated native register and FIFO
// entry points. Fixed-point and cluster values have none; they travel
// through the array functions as packed words.
var scalarDataTypes = []DataType{
	BoolType, I8Type, U8Type, I16Type, U16Type, I32Type, U32Type,
	I64Type, U64Type, SglType, DblType,
}

// DriverFunctions declares every public entry point of the FPGA Interface
// C API: session lifecycle, typed register and array access, interrupts,
// host-memory DMA FIFO control and transfer, and FIFO property accessors.
// The descriptor list is the input to Open and is regenerated per call, so
// callers may customize it.
func DriverFunctions() []FunctionInfo {
	funcs := []FunctionInfo{
		{
			Name:   "Open",
			Symbol: driverPrefix + "Open",
			Args: []NamedArg{
				{"bitfile", CStr},
				{"signature", CStr},
				{"resource", CStr},
				{"attribute", U32},
				{"session", Ptr},
			},
		},
		{
			Name:   "Run",
			Symbol: driverPrefix + "Run",
			Args:   []NamedArg{{"session", U32}, {"attribute", U32}},
		},
		{
			Name:   "Abort",
			Symbol: driverPrefix + "Abort",
			Args:   []NamedArg{{"session", U32}},
		},
		{
			Name:   "Reset",
			Symbol: driverPrefix + "Reset",
			Args:   []NamedArg{{"session", U32}},
		},
		{
			Name:   "Download",
			Symbol: driverPrefix + "Download",
			Args:   []NamedArg{{"session", U32}},
		},
		{
			Name:   "Close",
			Symbol: driverPrefix + "Close",
			Args:   []NamedArg{{"session", U32}, {"attribute", U32}},
		},
		{
			Name:   "GetFpgaViState",
			Symbol: "NiFpgaDll_GetFpgaViState",
			Args:   []NamedArg{{"session", U32}, {"state", Ptr}},
		},
	}

	// Typed register access: Read/Write per scalar kind, then the array
	// forms.
	for _, d := range scalarDataTypes {
		funcs = append(funcs, FunctionInfo{
			Name:   "Read" + d.String(),
			Symbol: driverPrefix + "Read" + d.String(),
			Args: []NamedArg{
				{"session", U32},
				{"indicator", U32},
				{"value", Ptr},
			},
		})
		funcs = append(funcs, FunctionInfo{
			Name:   "Write" + d.String(),
			Symbol: driverPrefix + "Write" + d.String(),
			Args: []NamedArg{
				{"session", U32},
				{"control", U32},
				{"value", d.NativeType()},
			},
		})
	}
	for _, d := range scalarDataTypes {
		funcs = append(funcs, FunctionInfo{
			Name:   "ReadArray" + d.String(),
			Symbol: driverPrefix + "ReadArray" + d.String(),
			Args: []NamedArg{
				{"session", U32},
				{"indicator", U32},
				{"array", Ptr},
				{"size", USize},
			},
		})
		funcs = append(funcs, FunctionInfo{
			Name:   "WriteArray" + d.String(),
			Symbol: driverPrefix + "WriteArray" + d.String(),
			Args: []NamedArg{
				{"session", U32},
				{"control", U32},
				{"array", Ptr},
				{"size", USize},
			},
		})
	}

	// Interrupts.
	funcs = append(funcs,
		FunctionInfo{
			Name:   "ReserveIrqContext",
			Symbol: driverPrefix + "ReserveIrqContext",
			Args:   []NamedArg{{"session", U32}, {"context", Ptr}},
		},
		FunctionInfo{
			Name:   "UnreserveIrqContext",
			Symbol: driverPrefix + "UnreserveIrqContext",
			Args:   []NamedArg{{"session", U32}, {"context", Ptr}},
		},
		FunctionInfo{
			Name:   "WaitOnIrqs",
			Symbol: driverPrefix + "WaitOnIrqs",
			Args: []NamedArg{
				{"session", U32},
				{"context", Ptr},
				{"irqs", U32},
				{"timeout", U32},
				{"irqsAsserted", Ptr},
				{"timedOut", Ptr},
			},
		},
		FunctionInfo{
			Name:   "AcknowledgeIrqs",
			Symbol: driverPrefix + "AcknowledgeIrqs",
			Args:   []NamedArg{{"session", U32}, {"irqs", U32}},
		},
	)

	// FIFO control.
	funcs = append(funcs,
		FunctionInfo{
			Name:   "ConfigureFifo",
			Symbol: driverPrefix + "ConfigureFifo",
			Args:   []NamedArg{{"session", U32}, {"fifo", U32}, {"depth", USize}},
		},
		FunctionInfo{
			Name:   "ConfigureFifo2",
			Symbol: driverPrefix + "ConfigureFifo2",
			Args: []NamedArg{
				{"session", U32},
				{"fifo", U32},
				{"requestedDepth", USize},
				{"actualDepth", Ptr},
			},
		},
		FunctionInfo{
			Name:   "StartFifo",
			Symbol: driverPrefix + "StartFifo",
			Args:   []NamedArg{{"session", U32}, {"fifo", U32}},
		},
		FunctionInfo{
			Name:   "StopFifo",
			Symbol: driverPrefix + "StopFifo",
			Args:   []NamedArg{{"session", U32}, {"fifo", U32}},
		},
		FunctionInfo{
			Name:   "ReleaseFifoElements",
			Symbol: driverPrefix + "ReleaseFifoElements",
			Args:   []NamedArg{{"session", U32}, {"fifo", U32}, {"elements", USize}},
		},
		FunctionInfo{
			Name:   "GetPeerToPeerFifoEndpoint",
			Symbol: driverPrefix + "GetPeerToPeerFifoEndpoint",
			Args:   []NamedArg{{"session", U32}, {"fifo", U32}, {"endpoint", Ptr}},
		},
		FunctionInfo{
			Name:   "CommitFifoConfiguration",
			Symbol: driverPrefix + "CommitFifoConfiguration",
			Args:   []NamedArg{{"session", U32}, {"fifo", U32}},
		},
	)

	// FIFO transfer per scalar kind: blocking read/write plus the
	// zero-copy acquire forms.
	for _, d := range scalarDataTypes {
		funcs = append(funcs, FunctionInfo{
			Name:   "ReadFifo" + d.String(),
			Symbol: driverPrefix + "ReadFifo" + d.String(),
			Args: []NamedArg{
				{"session", U32},
				{"fifo", U32},
				{"data", Ptr},
				{"numberOfElements", USize},
				{"timeout", U32},
				{"elementsRemaining", Ptr},
			},
		})
		funcs = append(funcs, FunctionInfo{
			Name:   "WriteFifo" + d.String(),
			Symbol: driverPrefix + "WriteFifo" + d.String(),
			Args: []NamedArg{
				{"session", U32},
				{"fifo", U32},
				{"data", Ptr},
				{"numberOfElements", USize},
				{"timeout", U32},
				{"emptyElementsRemaining", Ptr},
			},
		})
	}
	for _, d := range scalarDataTypes {
		funcs = append(funcs, FunctionInfo{
			Name:   "AcquireFifoReadElements" + d.String(),
			Symbol: driverPrefix + "AcquireFifoReadElements" + d.String(),
			Args: []NamedArg{
				{"session", U32},
				{"fifo", U32},
				{"elements", Ptr},
				{"elementsRequested", USize},
				{"timeout", U32},
				{"elementsAcquired", Ptr},
				{"elementsRemaining", Ptr},
			},
		})
		funcs = append(funcs, FunctionInfo{
			Name:   "AcquireFifoWriteElements" + d.String(),
			Symbol: driverPrefix + "AcquireFifoWriteElements" + d.String(),
			Args: []NamedArg{
				{"session", U32},
				{"fifo", U32},
				{"elements", Ptr},
				{"elementsRequested", USize},
				{"timeout", U32},
				{"elementsAcquired", Ptr},
				{"elementsRemaining", Ptr},
			},
		})
	}

	// FIFO property accessors per property storage kind.
	for _, t := range []FifoPropertyType{FifoI32, FifoU32, FifoI64, FifoU64, FifoPtr} {
		funcs = append(funcs, FunctionInfo{
			Name:   "GetFifoProperty" + t.String(),
			Symbol: driverPrefix + "GetFifoProperty" + t.String(),
			Args: []NamedArg{
				{"session", U32},
				{"fifo", U32},
				{"property", I32},
				{"value", Ptr},
			},
		})
		funcs = append(funcs, FunctionInfo{
			Name:   "SetFifoProperty" + t.String(),
			Symbol: driverPrefix + "SetFifoProperty" + t.String(),
			Args: []NamedArg{
				{"session", U32},
				{"fifo", U32},
				{"property", I32},
				{"value", t.NativeType()},
			},
		})
	}

	return funcs
}

// OpenDriver binds the full driver function set. The returned library is
// what pkg/fpga sessions are built on.
func OpenDriver(cfg Config) (*Library, error) {
	if cfg.LibraryName == "" {
		cfg.LibraryName = DriverLibraryName
	}
	return Open(cfg, DriverFunctions())
}
