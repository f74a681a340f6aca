package mockfpga

import (
	"fmt"
	"strings"
	"sync"

	"github.com/waborder/nifpga-go/pkg/nifpga"
	"github.com/waborder/nifpga-go/pkg/nifpga/internal/dynlib"
)

// Target simulates one FPGA device behind the driver's entry points. The
// zero value is not usable; construct with New. All methods are safe for
// concurrent use; every simulated call runs under one target-wide lock.
type Target struct {
	mu sync.Mutex

	nextSession uint32
	sessions    map[uint32]*session

	omitted  map[string]bool
	scripted map[string][]nifpga.Status
	calls    []string
	closed   bool
}

// session is the state behind one issued session handle.
type session struct {
	bitfile   string
	signature string
	resource  string
	state     nifpga.FpgaViState
	registers map[uint32]uint64
	arrays    map[uint32][]uint64
	fifos     map[uint32]*fifo
	contexts  map[uintptr]bool
	nextCtx   uintptr
	asserted  uint32
}

// New returns a target with no sessions and default behavior for every
// driver entry point.
func New() *Target {
	return &Target{
		nextSession: 1,
		sessions:    make(map[uint32]*session),
		omitted:     make(map[string]bool),
		scripted:    make(map[string][]nifpga.Status),
	}
}

// Omit marks native symbols as absent so that binding against this target
// fails resolution, the way an old driver installation would. Must be called
// before nifpga.OpenWith.
func (t *Target) Omit(symbols ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, s := range symbols {
		t.omitted[s] = true
	}
}

// Script queues statuses for a symbol: each call of the symbol pops one and
// returns it instead of running the simulated behavior. An empty queue means
// normal behavior.
func (t *Target) Script(symbol string, statuses ...nifpga.Status) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scripted[symbol] = append(t.scripted[symbol], statuses...)
}

// Calls returns the native symbols invoked so far, in order.
func (t *Target) Calls() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.calls...)
}

// OpenSessions returns the number of sessions currently issued.
func (t *Target) OpenSessions() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

// Closed reports whether the backend has been released.
func (t *Target) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// Resolve implements nifpga.Backend. Every symbol resolves unless listed by
// Omit; symbols without dedicated simulation run a recorder that reports
// success.
func (t *Target) Resolve(symbol string, args []nifpga.NativeType) (nifpga.NativeCall, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.omitted[symbol] {
		return nil, fmt.Errorf("%w: %s", nifpga.ErrSymbolNotFound, symbol)
	}
	h := t.dispatch(symbol)
	return func(words []uint64) nifpga.Status {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.calls = append(t.calls, symbol)
		if q := t.scripted[symbol]; len(q) > 0 {
			t.scripted[symbol] = q[1:]
			return q[0]
		}
		return h(words)
	}, nil
}

// Close implements nifpga.Backend.
func (t *Target) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}

// dispatch picks the simulated behavior for a symbol. Called with the
// target lock held; the returned handlers assume the same.
func (t *Target) dispatch(symbol string) func([]uint64) nifpga.Status {
	if symbol == "NiFpgaDll_GetFpgaViState" {
		return t.viState
	}
	name := strings.TrimPrefix(symbol, "NiFpga_")
	switch name {
	case "Open":
		return t.open
	case "Run":
		return t.run
	case "Abort":
		return t.abort
	case "Reset":
		return t.reset
	case "Download":
		return t.download
	case "Close":
		return t.closeSession
	case "ReserveIrqContext":
		return t.reserveIrq
	case "UnreserveIrqContext":
		return t.unreserveIrq
	case "WaitOnIrqs":
		return t.waitOnIrqs
	case "AcknowledgeIrqs":
		return t.acknowledgeIrqs
	case "ConfigureFifo":
		return t.configureFifo
	case "ConfigureFifo2":
		return t.configureFifo2
	case "StartFifo":
		return t.startFifo
	case "StopFifo":
		return t.stopFifo
	case "ReleaseFifoElements":
		return t.releaseElements
	case "GetPeerToPeerFifoEndpoint":
		return t.p2pEndpoint
	case "CommitFifoConfiguration":
		return t.commitFifo
	}

	for _, fam := range []struct {
		prefix string
		make   func(int) func([]uint64) nifpga.Status
	}{
		{"ReadFifo", t.readFifo},
		{"WriteFifo", t.writeFifo},
		{"AcquireFifoReadElements", t.acquireRead},
		{"AcquireFifoWriteElements", t.acquireWrite},
		{"ReadArray", t.readArray},
		{"WriteArray", t.writeArray},
		{"Read", t.readRegister},
		{"Write", t.writeRegister},
	} {
		if kind, ok := strings.CutPrefix(name, fam.prefix); ok {
			if size, ok := elemBytes(kind); ok {
				return fam.make(size)
			}
		}
	}
	if kind, ok := strings.CutPrefix(name, "GetFifoProperty"); ok {
		if pt, ok := propertyKind(kind); ok {
			return t.getProperty(pt)
		}
	}
	if kind, ok := strings.CutPrefix(name, "SetFifoProperty"); ok {
		if pt, ok := propertyKind(kind); ok {
			return t.setProperty(pt)
		}
	}
	return t.generic
}

// elemBytes maps a typed entry point suffix ("U32", "Dbl", ...) to its
// element width. Fixed-point and cluster kinds have no typed entry points.
func elemBytes(kind string) (int, bool) {
	for _, d := range nifpga.DataTypes {
		if d == nifpga.FxpType || d == nifpga.ClusterType {
			continue
		}
		if d.String() == kind {
			return d.NativeType().Size(), true
		}
	}
	return 0, false
}

// propertyKind maps a property accessor suffix to its storage kind.
func propertyKind(kind string) (nifpga.FifoPropertyType, bool) {
	for _, pt := range []nifpga.FifoPropertyType{
		nifpga.FifoI32, nifpga.FifoU32, nifpga.FifoI64, nifpga.FifoU64, nifpga.FifoPtr,
	} {
		if pt.String() == kind {
			return pt, true
		}
	}
	return 0, false
}

// putElem stores the low size bytes of w at p.
func putElem(p uintptr, size int, w uint64) {
	switch size {
	case 1:
		dynlib.PutUint8(p, uint8(w))
	case 2:
		dynlib.PutUint16(p, uint16(w))
	case 4:
		dynlib.PutUint32(p, uint32(w))
	default:
		dynlib.PutUint64(p, w)
	}
}

// elemAt loads size bytes at p, zero-extended.
func elemAt(p uintptr, size int) uint64 {
	switch size {
	case 1:
		return uint64(dynlib.Uint8At(p))
	case 2:
		return uint64(dynlib.Uint16At(p))
	case 4:
		return uint64(dynlib.Uint32At(p))
	default:
		return dynlib.Uint64At(p)
	}
}

// mask truncates w to size bytes.
func mask(w uint64, size int) uint64 {
	if size >= 8 {
		return w
	}
	return w & (1<<(8*size) - 1)
}

func (t *Target) lookup(word uint64) (*session, nifpga.Status) {
	s, ok := t.sessions[uint32(word)]
	if !ok {
		return nil, nifpga.StatusInvalidSession
	}
	return s, nifpga.StatusSuccess
}

func (t *Target) generic([]uint64) nifpga.Status {
	return nifpga.StatusSuccess
}

func (t *Target) open(words []uint64) nifpga.Status {
	s := &session{
		bitfile:   dynlib.StringAt(uintptr(words[0])),
		signature: dynlib.StringAt(uintptr(words[1])),
		resource:  dynlib.StringAt(uintptr(words[2])),
		state:     nifpga.FpgaViStateRunning,
		registers: make(map[uint32]uint64),
		arrays:    make(map[uint32][]uint64),
		fifos:     make(map[uint32]*fifo),
		contexts:  make(map[uintptr]bool),
		nextCtx:   1,
	}
	if s.bitfile == "" {
		return nifpga.StatusBitfileReadError
	}
	if s.resource == "" {
		return nifpga.StatusInvalidResourceName
	}
	if uint32(words[3])&nifpga.OpenAttributeNoRun != 0 {
		s.state = nifpga.FpgaViStateNotRunning
	}
	id := t.nextSession
	t.nextSession++
	t.sessions[id] = s
	dynlib.PutUint32(uintptr(words[4]), id)
	return nifpga.StatusSuccess
}

func (t *Target) run(words []uint64) nifpga.Status {
	s, st := t.lookup(words[0])
	if st != nifpga.StatusSuccess {
		return st
	}
	if s.state == nifpga.FpgaViStateRunning {
		return nifpga.StatusFpgaAlreadyRunning
	}
	if uint32(words[1])&nifpga.RunAttributeWaitUntilDone != 0 {
		s.state = nifpga.FpgaViStateNaturallyStopped
		return nifpga.StatusSuccess
	}
	s.state = nifpga.FpgaViStateRunning
	return nifpga.StatusSuccess
}

func (t *Target) abort(words []uint64) nifpga.Status {
	s, st := t.lookup(words[0])
	if st != nifpga.StatusSuccess {
		return st
	}
	s.state = nifpga.FpgaViStateNotRunning
	return nifpga.StatusSuccess
}

func (t *Target) reset(words []uint64) nifpga.Status {
	s, st := t.lookup(words[0])
	if st != nifpga.StatusSuccess {
		return st
	}
	s.state = nifpga.FpgaViStateNotRunning
	s.registers = make(map[uint32]uint64)
	s.arrays = make(map[uint32][]uint64)
	return nifpga.StatusSuccess
}

func (t *Target) download(words []uint64) nifpga.Status {
	s, st := t.lookup(words[0])
	if st != nifpga.StatusSuccess {
		return st
	}
	s.state = nifpga.FpgaViStateNotRunning
	s.registers = make(map[uint32]uint64)
	s.arrays = make(map[uint32][]uint64)
	return nifpga.StatusSuccess
}

func (t *Target) closeSession(words []uint64) nifpga.Status {
	_, st := t.lookup(words[0])
	if st != nifpga.StatusSuccess {
		return st
	}
	delete(t.sessions, uint32(words[0]))
	return nifpga.StatusSuccess
}

func (t *Target) viState(words []uint64) nifpga.Status {
	s, st := t.lookup(words[0])
	if st != nifpga.StatusSuccess {
		return st
	}
	dynlib.PutUint32(uintptr(words[1]), uint32(s.state))
	return nifpga.StatusSuccess
}

func (t *Target) readRegister(size int) func([]uint64) nifpga.Status {
	return func(words []uint64) nifpga.Status {
		s, st := t.lookup(words[0])
		if st != nifpga.StatusSuccess {
			return st
		}
		putElem(uintptr(words[2]), size, s.registers[uint32(words[1])])
		return nifpga.StatusSuccess
	}
}

func (t *Target) writeRegister(size int) func([]uint64) nifpga.Status {
	return func(words []uint64) nifpga.Status {
		s, st := t.lookup(words[0])
		if st != nifpga.StatusSuccess {
			return st
		}
		s.registers[uint32(words[1])] = mask(words[2], size)
		return nifpga.StatusSuccess
	}
}

func (t *Target) readArray(size int) func([]uint64) nifpga.Status {
	return func(words []uint64) nifpga.Status {
		s, st := t.lookup(words[0])
		if st != nifpga.StatusSuccess {
			return st
		}
		stored := s.arrays[uint32(words[1])]
		base := uintptr(words[2])
		n := int(words[3])
		for i := 0; i < n; i++ {
			var w uint64
			if i < len(stored) {
				w = stored[i]
			}
			putElem(base+uintptr(i*size), size, w)
		}
		return nifpga.StatusSuccess
	}
}

func (t *Target) writeArray(size int) func([]uint64) nifpga.Status {
	return func(words []uint64) nifpga.Status {
		s, st := t.lookup(words[0])
		if st != nifpga.StatusSuccess {
			return st
		}
		base := uintptr(words[2])
		n := int(words[3])
		arr := make([]uint64, n)
		for i := 0; i < n; i++ {
			arr[i] = elemAt(base+uintptr(i*size), size)
		}
		s.arrays[uint32(words[1])] = arr
		return nifpga.StatusSuccess
	}
}

func (t *Target) reserveIrq(words []uint64) nifpga.Status {
	s, st := t.lookup(words[0])
	if st != nifpga.StatusSuccess {
		return st
	}
	ctx := s.nextCtx
	s.nextCtx++
	s.contexts[ctx] = true
	dynlib.PutPointer(uintptr(words[1]), ctx)
	return nifpga.StatusSuccess
}

func (t *Target) unreserveIrq(words []uint64) nifpga.Status {
	s, st := t.lookup(words[0])
	if st != nifpga.StatusSuccess {
		return st
	}
	ctx := uintptr(words[1])
	if !s.contexts[ctx] {
		return nifpga.StatusResourceNotInitialized
	}
	delete(s.contexts, ctx)
	return nifpga.StatusSuccess
}

// waitOnIrqs never blocks: asserted lines are reported immediately and
// anything else is an immediate timeout, regardless of the timeout word.
func (t *Target) waitOnIrqs(words []uint64) nifpga.Status {
	s, st := t.lookup(words[0])
	if st != nifpga.StatusSuccess {
		return st
	}
	if !s.contexts[uintptr(words[1])] {
		return nifpga.StatusResourceNotInitialized
	}
	hit := s.asserted & uint32(words[2])
	if words[4] != 0 {
		dynlib.PutUint32(uintptr(words[4]), hit)
	}
	if words[5] != 0 {
		if hit != 0 {
			dynlib.PutUint8(uintptr(words[5]), 0)
		} else {
			dynlib.PutUint8(uintptr(words[5]), 1)
		}
	}
	return nifpga.StatusSuccess
}

func (t *Target) acknowledgeIrqs(words []uint64) nifpga.Status {
	s, st := t.lookup(words[0])
	if st != nifpga.StatusSuccess {
		return st
	}
	s.asserted &^= uint32(words[1])
	return nifpga.StatusSuccess
}

// Poke stores a register word the way the running design would update an
// indicator.
func (t *Target) Poke(session, offset uint32, word uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[session]
	if !ok {
		return fmt.Errorf("mockfpga: unknown session %d", session)
	}
	s.registers[offset] = word
	return nil
}

// Peek returns the register word currently stored at offset.
func (t *Target) Peek(session, offset uint32) (uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[session]
	if !ok {
		return 0, fmt.Errorf("mockfpga: unknown session %d", session)
	}
	return s.registers[offset], nil
}

// PokeArray stores array elements the way the running design would.
func (t *Target) PokeArray(session, offset uint32, words ...uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[session]
	if !ok {
		return fmt.Errorf("mockfpga: unknown session %d", session)
	}
	s.arrays[offset] = append([]uint64(nil), words...)
	return nil
}

// RaiseIrqs asserts interrupt lines as the running design would.
func (t *Target) RaiseIrqs(session, irqs uint32) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[session]
	if !ok {
		return fmt.Errorf("mockfpga: unknown session %d", session)
	}
	s.asserted |= irqs
	return nil
}

var _ nifpga.Backend = (*Target)(nil)
