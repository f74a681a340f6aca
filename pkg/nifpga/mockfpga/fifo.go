package mockfpga

import (
	"fmt"
	"reflect"

	"github.com/waborder/nifpga-go/pkg/nifpga"
	"github.com/waborder/nifpga-go/pkg/nifpga/internal/dynlib"
)

// fifo is one simulated host-memory DMA FIFO. Elements are stored one per
// word regardless of their native width; depth zero means unbounded.
type fifo struct {
	depth    uint64
	started  bool
	data     []uint64
	acquired *acquisition
	props    map[nifpga.FifoProperty]uint64
}

// acquisition is the single outstanding zero-copy region of a fifo. The
// backing slice keeps the memory handed out through the elements pointer
// alive until release.
type acquisition struct {
	read  bool
	count uint64
	size  int
	buf   []uint64
}

func (s *session) fifo(id uint32) *fifo {
	f, ok := s.fifos[id]
	if !ok {
		f = &fifo{props: map[nifpga.FifoProperty]uint64{
			nifpga.FifoPropertyDmaBufferType: uint64(nifpga.DmaBufferAllocatedByRIO),
			nifpga.FifoPropertyFlowControl:   uint64(nifpga.FlowControlEnabled),
		}}
		s.fifos[id] = f
	}
	return f
}

func (t *Target) configureFifo(words []uint64) nifpga.Status {
	s, st := t.lookup(words[0])
	if st != nifpga.StatusSuccess {
		return st
	}
	s.fifo(uint32(words[1])).depth = words[2]
	return nifpga.StatusSuccess
}

func (t *Target) configureFifo2(words []uint64) nifpga.Status {
	s, st := t.lookup(words[0])
	if st != nifpga.StatusSuccess {
		return st
	}
	s.fifo(uint32(words[1])).depth = words[2]
	if words[3] != 0 {
		dynlib.PutPointer(uintptr(words[3]), uintptr(words[2]))
	}
	return nifpga.StatusSuccess
}

func (t *Target) startFifo(words []uint64) nifpga.Status {
	s, st := t.lookup(words[0])
	if st != nifpga.StatusSuccess {
		return st
	}
	s.fifo(uint32(words[1])).started = true
	return nifpga.StatusSuccess
}

func (t *Target) stopFifo(words []uint64) nifpga.Status {
	s, st := t.lookup(words[0])
	if st != nifpga.StatusSuccess {
		return st
	}
	f := s.fifo(uint32(words[1]))
	f.started = false
	f.acquired = nil
	return nifpga.StatusSuccess
}

func (t *Target) commitFifo(words []uint64) nifpga.Status {
	_, st := t.lookup(words[0])
	return st
}

func (t *Target) p2pEndpoint(words []uint64) nifpga.Status {
	_, st := t.lookup(words[0])
	if st != nifpga.StatusSuccess {
		return st
	}
	dynlib.PutUint32(uintptr(words[2]), 0x70000000|uint32(words[1]))
	return nifpga.StatusSuccess
}

// readFifo transfers queued elements into the caller's buffer. A read that
// cannot be satisfied from the queue is an immediate timeout; nothing is
// transferred.
func (t *Target) readFifo(size int) func([]uint64) nifpga.Status {
	return func(words []uint64) nifpga.Status {
		s, st := t.lookup(words[0])
		if st != nifpga.StatusSuccess {
			return st
		}
		f := s.fifo(uint32(words[1]))
		f.started = true
		n := words[3]
		if uint64(len(f.data)) < n {
			if words[5] != 0 {
				dynlib.PutPointer(uintptr(words[5]), uintptr(len(f.data)))
			}
			return nifpga.StatusFifoTimeout
		}
		base := uintptr(words[2])
		for i := uint64(0); i < n; i++ {
			putElem(base+uintptr(i)*uintptr(size), size, f.data[i])
		}
		f.data = append([]uint64(nil), f.data[n:]...)
		if words[5] != 0 {
			dynlib.PutPointer(uintptr(words[5]), uintptr(len(f.data)))
		}
		return nifpga.StatusSuccess
	}
}

// writeFifo queues elements from the caller's buffer. A write that would
// exceed the configured depth is an immediate timeout; nothing is queued.
func (t *Target) writeFifo(size int) func([]uint64) nifpga.Status {
	return func(words []uint64) nifpga.Status {
		s, st := t.lookup(words[0])
		if st != nifpga.StatusSuccess {
			return st
		}
		f := s.fifo(uint32(words[1]))
		f.started = true
		n := words[3]
		if f.depth != 0 && uint64(len(f.data))+n > f.depth {
			if words[5] != 0 {
				dynlib.PutPointer(uintptr(words[5]), uintptr(f.depth-uint64(len(f.data))))
			}
			return nifpga.StatusFifoTimeout
		}
		base := uintptr(words[2])
		for i := uint64(0); i < n; i++ {
			f.data = append(f.data, elemAt(base+uintptr(i)*uintptr(size), size))
		}
		if words[5] != 0 {
			var empty uint64
			if f.depth != 0 {
				empty = f.depth - uint64(len(f.data))
			}
			dynlib.PutPointer(uintptr(words[5]), uintptr(empty))
		}
		return nifpga.StatusSuccess
	}
}

func (t *Target) acquireRead(size int) func([]uint64) nifpga.Status {
	return func(words []uint64) nifpga.Status {
		s, st := t.lookup(words[0])
		if st != nifpga.StatusSuccess {
			return st
		}
		f := s.fifo(uint32(words[1]))
		if f.acquired != nil {
			return nifpga.StatusFifoElementsCurrentlyAcquired
		}
		req := words[3]
		if uint64(len(f.data)) < req {
			if words[6] != 0 {
				dynlib.PutPointer(uintptr(words[6]), uintptr(len(f.data)))
			}
			return nifpga.StatusFifoTimeout
		}
		buf := make([]uint64, max(int(req), 1))
		base := reflect.ValueOf(buf).Pointer()
		for i := uint64(0); i < req; i++ {
			putElem(base+uintptr(i)*uintptr(size), size, f.data[i])
		}
		f.acquired = &acquisition{read: true, count: req, size: size, buf: buf}
		dynlib.PutPointer(uintptr(words[2]), base)
		if words[5] != 0 {
			dynlib.PutPointer(uintptr(words[5]), uintptr(req))
		}
		if words[6] != 0 {
			dynlib.PutPointer(uintptr(words[6]), uintptr(uint64(len(f.data))-req))
		}
		return nifpga.StatusSuccess
	}
}

func (t *Target) acquireWrite(size int) func([]uint64) nifpga.Status {
	return func(words []uint64) nifpga.Status {
		s, st := t.lookup(words[0])
		if st != nifpga.StatusSuccess {
			return st
		}
		f := s.fifo(uint32(words[1]))
		if f.acquired != nil {
			return nifpga.StatusFifoElementsCurrentlyAcquired
		}
		req := words[3]
		if f.depth != 0 && uint64(len(f.data))+req > f.depth {
			if words[6] != 0 {
				dynlib.PutPointer(uintptr(words[6]), uintptr(f.depth-uint64(len(f.data))))
			}
			return nifpga.StatusFifoTimeout
		}
		buf := make([]uint64, max(int(req), 1))
		f.acquired = &acquisition{read: false, count: req, size: size, buf: buf}
		dynlib.PutPointer(uintptr(words[2]), reflect.ValueOf(buf).Pointer())
		if words[5] != 0 {
			dynlib.PutPointer(uintptr(words[5]), uintptr(req))
		}
		if words[6] != 0 {
			var room uint64
			if f.depth != 0 {
				room = f.depth - uint64(len(f.data)) - req
			}
			dynlib.PutPointer(uintptr(words[6]), uintptr(room))
		}
		return nifpga.StatusSuccess
	}
}

// releaseElements completes the outstanding acquisition. A release must
// cover exactly the acquired count; releasing zero when nothing is
// acquired succeeds.
func (t *Target) releaseElements(words []uint64) nifpga.Status {
	s, st := t.lookup(words[0])
	if st != nifpga.StatusSuccess {
		return st
	}
	f := s.fifo(uint32(words[1]))
	n := words[2]
	a := f.acquired
	if a == nil {
		if n == 0 {
			return nifpga.StatusSuccess
		}
		return nifpga.StatusBadReadWriteCount
	}
	if n != a.count {
		return nifpga.StatusBadReadWriteCount
	}
	if a.read {
		f.data = append([]uint64(nil), f.data[n:]...)
	} else {
		base := reflect.ValueOf(a.buf).Pointer()
		for i := uint64(0); i < n; i++ {
			f.data = append(f.data, elemAt(base+uintptr(i)*uintptr(a.size), a.size))
		}
	}
	f.acquired = nil
	return nifpga.StatusSuccess
}

func (t *Target) getProperty(pt nifpga.FifoPropertyType) func([]uint64) nifpga.Status {
	return func(words []uint64) nifpga.Status {
		s, st := t.lookup(words[0])
		if st != nifpga.StatusSuccess {
			return st
		}
		p := nifpga.FifoProperty(int32(words[2]))
		if !validProperty(p) || p.Type() != pt {
			return nifpga.StatusInvalidParameter
		}
		f := s.fifo(uint32(words[1]))
		putElem(uintptr(words[3]), pt.NativeType().Size(), f.props[p])
		return nifpga.StatusSuccess
	}
}

func (t *Target) setProperty(pt nifpga.FifoPropertyType) func([]uint64) nifpga.Status {
	return func(words []uint64) nifpga.Status {
		s, st := t.lookup(words[0])
		if st != nifpga.StatusSuccess {
			return st
		}
		p := nifpga.FifoProperty(int32(words[2]))
		if !validProperty(p) || p.Type() != pt {
			return nifpga.StatusInvalidParameter
		}
		f := s.fifo(uint32(words[1]))
		f.props[p] = mask(words[3], pt.NativeType().Size())
		return nifpga.StatusSuccess
	}
}

func validProperty(p nifpga.FifoProperty) bool {
	return p >= nifpga.FifoPropertyBytesPerElement && p <= nifpga.FifoPropertyPreferredNumaNode
}

// Feed appends elements to a FIFO as the device side would fill a
// target-to-host stream.
func (t *Target) Feed(session, fifoID uint32, words ...uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[session]
	if !ok {
		return fmt.Errorf("mockfpga: unknown session %d", session)
	}
	f := s.fifo(fifoID)
	f.data = append(f.data, words...)
	return nil
}

// FifoContents returns a copy of the queued elements, head first.
func (t *Target) FifoContents(session, fifoID uint32) ([]uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[session]
	if !ok {
		return nil, fmt.Errorf("mockfpga: unknown session %d", session)
	}
	return append([]uint64(nil), s.fifo(fifoID).data...), nil
}
