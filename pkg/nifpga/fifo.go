package nifpga

import "fmt"

// FifoPropertyType enumerates the native storage kinds a FIFO property can
// have. The numbering is fixed; values cross the native boundary.
type FifoPropertyType int

const (
	FifoI32 FifoPropertyType = iota + 1
	FifoU32
	FifoI64
	FifoU64
	FifoPtr
)

var fifoPropertyTypeNames = map[FifoPropertyType]string{
	FifoI32: "I32",
	FifoU32: "U32",
	FifoI64: "I64",
	FifoU64: "U64",
	FifoPtr: "Ptr",
}

func (t FifoPropertyType) String() string {
	if s, ok := fifoPropertyTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("FifoPropertyType(%d)", int(t))
}

// NativeType returns the native storage for properties of this kind.
func (t FifoPropertyType) NativeType() NativeType {
	switch t {
	case FifoI32:
		return I32
	case FifoU32:
		return U32
	case FifoI64:
		return I64
	case FifoU64:
		return U64
	case FifoPtr:
		return Ptr
	}
	panic(fmt.Sprintf("nifpga: NativeType of invalid %v", t))
}

// FifoProperty enumerates the configurable properties of a host-memory DMA
// FIFO. The numbering is fixed; values are passed to the native property
// accessors unchanged.
type FifoProperty int

const (
	FifoPropertyBytesPerElement FifoProperty = iota + 1
	FifoPropertyBufferAllocationGranularityElements
	FifoPropertyBufferSizeElements
	FifoPropertyMirroredElements
	FifoPropertyDmaBufferType
	FifoPropertyDmaBuffer
	FifoPropertyFlowControl
	FifoPropertyElementsCurrentlyAcquired
	FifoPropertyPreferredNumaNode
)

var fifoPropertyNames = map[FifoProperty]string{
	FifoPropertyBytesPerElement:                     "BytesPerElement",
	FifoPropertyBufferAllocationGranularityElements: "BufferAllocationGranularityElements",
	FifoPropertyBufferSizeElements:                  "BufferSizeElements",
	FifoPropertyMirroredElements:                    "MirroredElements",
	FifoPropertyDmaBufferType:                       "DmaBufferType",
	FifoPropertyDmaBuffer:                           "DmaBuffer",
	FifoPropertyFlowControl:                         "FlowControl",
	FifoPropertyElementsCurrentlyAcquired:           "ElementsCurrentlyAcquired",
	FifoPropertyPreferredNumaNode:                   "PreferredNumaNode",
}

func (p FifoProperty) String() string {
	if s, ok := fifoPropertyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("FifoProperty(%d)", int(p))
}

// fifoPropertyTypes is the fixed association between each property and its
// storage kind. Consult it before interpreting any property value; the
// association never changes.
var fifoPropertyTypes = map[FifoProperty]FifoPropertyType{
	FifoPropertyBytesPerElement:                     FifoU32,
	FifoPropertyBufferAllocationGranularityElements: FifoU32,
	FifoPropertyBufferSizeElements:                  FifoU64,
	FifoPropertyMirroredElements:                    FifoU64,
	FifoPropertyDmaBufferType:                       FifoI32,
	FifoPropertyDmaBuffer:                           FifoPtr,
	FifoPropertyFlowControl:                         FifoI32,
	FifoPropertyElementsCurrentlyAcquired:           FifoU64,
	FifoPropertyPreferredNumaNode:                   FifoI32,
}

// Type returns the storage kind of the property.
func (p FifoProperty) Type() FifoPropertyType {
	t, ok := fifoPropertyTypes[p]
	if !ok {
		panic(fmt.Sprintf("nifpga: Type of invalid %v", p))
	}
	return t
}

// FlowControl selects whether a FIFO enforces flow control. With flow
// control disabled the FIFO overwrites data and the FPGA fully controls
// when data transfers, which suits waveform regeneration or most-recent-data
// use. For host-to-target FIFOs flow control is only disabled once the
// entire FIFO has been written; for target-to-host FIFOs it is disabled on
// start.
type FlowControl int32

const (
	FlowControlDisabled FlowControl = 1
	// FlowControlEnabled is the default FIFO behavior: no data is lost, data
	// only moves when there is room for it.
	FlowControlEnabled FlowControl = 2
)

func (f FlowControl) String() string {
	switch f {
	case FlowControlDisabled:
		return "Disabled"
	case FlowControlEnabled:
		return "Enabled"
	}
	return fmt.Sprintf("FlowControl(%d)", int32(f))
}

// DmaBufferType selects who allocates the host memory behind a DMA FIFO.
type DmaBufferType int32

const (
	// DmaBufferAllocatedByRIO lets the driver size and allocate a buffer
	// meeting the other configured properties.
	DmaBufferAllocatedByRIO DmaBufferType = 1
	// DmaBufferAllocatedByUser means the caller allocates the buffer and
	// supplies it through the DmaBuffer property; the driver uses it as the
	// FIFO's underlying host memory.
	DmaBufferAllocatedByUser DmaBufferType = 2
)

func (d DmaBufferType) String() string {
	switch d {
	case DmaBufferAllocatedByRIO:
		return "AllocatedByRIO"
	case DmaBufferAllocatedByUser:
		return "AllocatedByUser"
	}
	return fmt.Sprintf("DmaBufferType(%d)", int32(d))
}
