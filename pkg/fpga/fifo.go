package fpga

import (
	"fmt"

	"github.com/waborder/nifpga-go/pkg/nifpga"
)

// Fifo addresses one host-memory DMA FIFO of a session by number. The
// zero-size value is cheap; construct with Session.Fifo per call site or
// keep one around.
type Fifo struct {
	s  *Session
	id uint32
}

// Fifo returns an accessor for the numbered DMA FIFO.
func (s *Session) Fifo(id uint32) Fifo {
	return Fifo{s: s, id: id}
}

// Configure requests a host buffer depth in elements and returns the depth
// the driver actually allocated, which may be larger.
func (f Fifo) Configure(requestedDepth uint) (uint, error) {
	var actual uintptr
	if err := f.s.call("ConfigureFifo2", f.id, requestedDepth, &actual); err != nil {
		return 0, err
	}
	return uint(actual), nil
}

// Start begins DMA transfers between host memory and the FPGA. Reads and
// writes start a stopped FIFO implicitly; Start is for paying the startup
// cost early.
func (f Fifo) Start() error {
	return f.s.call("StartFifo", f.id)
}

// Stop halts DMA transfers and releases the FIFO's resources.
func (f Fifo) Stop() error {
	return f.s.call("StopFifo", f.id)
}

// Commit applies property changes that the driver defers until
// configuration commit.
func (f Fifo) Commit() error {
	return f.s.call("CommitFifoConfiguration", f.id)
}

// PeerToPeerEndpoint returns the endpoint number for wiring this FIFO into
// a peer-to-peer stream.
func (f Fifo) PeerToPeerEndpoint() (uint32, error) {
	var endpoint uint32
	err := f.s.call("GetPeerToPeerFifoEndpoint", f.id, &endpoint)
	return endpoint, err
}

// ReleaseElements returns elements taken by an acquire call to the FIFO.
func (f Fifo) ReleaseElements(n uint) error {
	return f.s.call("ReleaseFifoElements", f.id, n)
}

// Property reads a FIFO property through the accessor matching its storage
// kind. The value is returned as the raw 64-bit word; signed kinds are
// sign-extended.
func (f Fifo) Property(p nifpga.FifoProperty) (uint64, error) {
	if !validProperty(p) {
		return 0, fmt.Errorf("fpga: unknown FIFO property %v", p)
	}
	switch p.Type() {
	case nifpga.FifoI32:
		var v int32
		err := f.s.call("GetFifoPropertyI32", f.id, int32(p), &v)
		return uint64(int64(v)), err
	case nifpga.FifoU32:
		var v uint32
		err := f.s.call("GetFifoPropertyU32", f.id, int32(p), &v)
		return uint64(v), err
	case nifpga.FifoI64:
		var v int64
		err := f.s.call("GetFifoPropertyI64", f.id, int32(p), &v)
		return uint64(v), err
	case nifpga.FifoU64:
		var v uint64
		err := f.s.call("GetFifoPropertyU64", f.id, int32(p), &v)
		return v, err
	default:
		var v uintptr
		err := f.s.call("GetFifoPropertyPtr", f.id, int32(p), &v)
		return uint64(v), err
	}
}

// SetProperty writes a FIFO property through the accessor matching its
// storage kind. Most properties only take effect on the next Start or
// Commit.
func (f Fifo) SetProperty(p nifpga.FifoProperty, value uint64) error {
	if !validProperty(p) {
		return fmt.Errorf("fpga: unknown FIFO property %v", p)
	}
	switch p.Type() {
	case nifpga.FifoI32:
		return f.s.call("SetFifoPropertyI32", f.id, int32(p), int32(value))
	case nifpga.FifoU32:
		return f.s.call("SetFifoPropertyU32", f.id, int32(p), uint32(value))
	case nifpga.FifoI64:
		return f.s.call("SetFifoPropertyI64", f.id, int32(p), int64(value))
	case nifpga.FifoU64:
		return f.s.call("SetFifoPropertyU64", f.id, int32(p), value)
	default:
		return f.s.call("SetFifoPropertyPtr", f.id, int32(p), uintptr(value))
	}
}

func validProperty(p nifpga.FifoProperty) bool {
	return p >= nifpga.FifoPropertyBytesPerElement && p <= nifpga.FifoPropertyPreferredNumaNode
}

// transfer runs one typed FIFO read or write. A nil data pointer with a
// zero count is how the driver is asked for just the remaining-elements
// count.
func (f Fifo) transfer(name string, data any, n int, timeout uint32) (uint, error) {
	var remaining uintptr
	err := f.s.call(name, f.id, data, n, timeout, &remaining)
	return uint(remaining), err
}

func slicePtr[T any](s []T) any {
	if len(s) == 0 {
		return nil
	}
	return s
}

// ReadBool reads len(out) elements from a target-to-host FIFO of booleans.
// The returned count is the elements still queued afterwards; on a timeout
// nothing is transferred.
func (f Fifo) ReadBool(out []bool, timeout uint32) (uint, error) {
	raw := make([]uint8, len(out))
	remaining, err := f.transfer("ReadFifoBool", slicePtr(raw), len(raw), timeout)
	if err != nil {
		return remaining, err
	}
	for i, b := range raw {
		out[i] = b != 0
	}
	return remaining, nil
}

// WriteBool writes values to a host-to-target FIFO of booleans. The
// returned count is the empty slots still available afterwards.
func (f Fifo) WriteBool(values []bool, timeout uint32) (uint, error) {
	raw := make([]uint8, len(values))
	for i, b := range values {
		if b {
			raw[i] = 1
		}
	}
	return f.transfer("WriteFifoBool", slicePtr(raw), len(raw), timeout)
}

// ReadI8 reads len(out) elements from the FIFO.
func (f Fifo) ReadI8(out []int8, timeout uint32) (uint, error) {
	return f.transfer("ReadFifoI8", slicePtr(out), len(out), timeout)
}

// WriteI8 writes the values to the FIFO.
func (f Fifo) WriteI8(values []int8, timeout uint32) (uint, error) {
	return f.transfer("WriteFifoI8", slicePtr(values), len(values), timeout)
}

// ReadU8 reads len(out) elements from the FIFO.
func (f Fifo) ReadU8(out []uint8, timeout uint32) (uint, error) {
	return f.transfer("ReadFifoU8", slicePtr(out), len(out), timeout)
}

// WriteU8 writes the values to the FIFO.
func (f Fifo) WriteU8(values []uint8, timeout uint32) (uint, error) {
	return f.transfer("WriteFifoU8", slicePtr(values), len(values), timeout)
}

// ReadI16 reads len(out) elements from the FIFO.
func (f Fifo) ReadI16(out []int16, timeout uint32) (uint, error) {
	return f.transfer("ReadFifoI16", slicePtr(out), len(out), timeout)
}

// WriteI16 writes the values to the FIFO.
func (f Fifo) WriteI16(values []int16, timeout uint32) (uint, error) {
	return f.transfer("WriteFifoI16", slicePtr(values), len(values), timeout)
}

// ReadU16 reads len(out) elements from the FIFO.
func (f Fifo) ReadU16(out []uint16, timeout uint32) (uint, error) {
	return f.transfer("ReadFifoU16", slicePtr(out), len(out), timeout)
}

// WriteU16 writes the values to the FIFO.
func (f Fifo) WriteU16(values []uint16, timeout uint32) (uint, error) {
	return f.transfer("WriteFifoU16", slicePtr(values), len(values), timeout)
}

// ReadI32 reads len(out) elements from the FIFO.
func (f Fifo) ReadI32(out []int32, timeout uint32) (uint, error) {
	return f.transfer("ReadFifoI32", slicePtr(out), len(out), timeout)
}

// WriteI32 writes the values to the FIFO.
func (f Fifo) WriteI32(values []int32, timeout uint32) (uint, error) {
	return f.transfer("WriteFifoI32", slicePtr(values), len(values), timeout)
}

// ReadU32 reads len(out) elements from the FIFO.
func (f Fifo) ReadU32(out []uint32, timeout uint32) (uint, error) {
	return f.transfer("ReadFifoU32", slicePtr(out), len(out), timeout)
}

// WriteU32 writes the values to the FIFO.
func (f Fifo) WriteU32(values []uint32, timeout uint32) (uint, error) {
	return f.transfer("WriteFifoU32", slicePtr(values), len(values), timeout)
}

// ReadI64 reads len(out) elements from the FIFO.
func (f Fifo) ReadI64(out []int64, timeout uint32) (uint, error) {
	return f.transfer("ReadFifoI64", slicePtr(out), len(out), timeout)
}

// WriteI64 writes the values to the FIFO.
func (f Fifo) WriteI64(values []int64, timeout uint32) (uint, error) {
	return f.transfer("WriteFifoI64", slicePtr(values), len(values), timeout)
}

// ReadU64 reads len(out) elements from the FIFO.
func (f Fifo) ReadU64(out []uint64, timeout uint32) (uint, error) {
	return f.transfer("ReadFifoU64", slicePtr(out), len(out), timeout)
}

// WriteU64 writes the values to the FIFO.
func (f Fifo) WriteU64(values []uint64, timeout uint32) (uint, error) {
	return f.transfer("WriteFifoU64", slicePtr(values), len(values), timeout)
}

// ReadSgl reads len(out) elements from the FIFO.
func (f Fifo) ReadSgl(out []float32, timeout uint32) (uint, error) {
	return f.transfer("ReadFifoSgl", slicePtr(out), len(out), timeout)
}

// WriteSgl writes the values to the FIFO.
func (f Fifo) WriteSgl(values []float32, timeout uint32) (uint, error) {
	return f.transfer("WriteFifoSgl", slicePtr(values), len(values), timeout)
}

// ReadDbl reads len(out) elements from the FIFO.
func (f Fifo) ReadDbl(out []float64, timeout uint32) (uint, error) {
	return f.transfer("ReadFifoDbl", slicePtr(out), len(out), timeout)
}

// WriteDbl writes the values to the FIFO.
func (f Fifo) WriteDbl(values []float64, timeout uint32) (uint, error) {
	return f.transfer("WriteFifoDbl", slicePtr(values), len(values), timeout)
}
