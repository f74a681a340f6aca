package nifpga

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/waborder/nifpga-go/pkg/nifpga/internal/dynlib"
)

// fakeBackend resolves every symbol not listed as missing and dispatches
// calls to per-symbol handlers. The default handler reports success.
type fakeBackend struct {
	missing  map[string]bool
	handlers map[string]func(words []uint64) Status
	resolved []string
	closed   bool
}

func (b *fakeBackend) Resolve(symbol string, args []NativeType) (NativeCall, error) {
	if b.missing[symbol] {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}
	b.resolved = append(b.resolved, symbol)
	h := b.handlers[symbol]
	return func(words []uint64) Status {
		if h == nil {
			return StatusSuccess
		}
		return h(words)
	}, nil
}

func (b *fakeBackend) Close() error {
	b.closed = true
	return nil
}

func testFuncs() []FunctionInfo {
	return []FunctionInfo{
		{Name: "Open", Symbol: "NiFpga_Open", Args: []NamedArg{
			{"bitfile", CStr},
			{"signature", CStr},
			{"resource", CStr},
			{"attribute", U32},
			{"session", Ptr},
		}},
		{Name: "ReadU32", Symbol: "NiFpga_ReadU32", Args: []NamedArg{
			{"session", U32},
			{"indicator", U32},
			{"value", Ptr},
		}},
		{Name: "Close", Symbol: "NiFpga_Close", Args: []NamedArg{
			{"session", U32},
			{"attribute", U32},
		}},
	}
}

func TestOpenWithBindsEverythingUpFront(t *testing.T) {
	b := &fakeBackend{}
	lib, err := OpenWith(Config{LibraryName: "NiFpga"}, b, testFuncs())
	if err != nil {
		t.Fatalf("OpenWith: %v", err)
	}
	defer lib.Close()

	if len(b.resolved) != 3 {
		t.Fatalf("resolved %v, want all three symbols at construction", b.resolved)
	}
	got := lib.Functions()
	if len(got) != 3 || got[0].Name != "Open" || got[1].Name != "ReadU32" || got[2].Name != "Close" {
		t.Fatalf("Functions() = %v", got)
	}
	if lib.Name() != "NiFpga" {
		t.Fatalf("Name() = %q", lib.Name())
	}
}

func TestOpenWithFailsFastOnMissingSymbol(t *testing.T) {
	b := &fakeBackend{missing: map[string]bool{"NiFpga_ReadU32": true}}
	lib, err := OpenWith(Config{}, b, testFuncs())
	if !errors.Is(err, ErrSymbolNotFound) {
		t.Fatalf("error = %v, want ErrSymbolNotFound", err)
	}
	if !strings.Contains(err.Error(), "ReadU32") {
		t.Errorf("message %q does not name the unbindable function", err.Error())
	}
	if lib != nil {
		t.Fatal("no library may exist with unbound functions")
	}
	if !b.closed {
		t.Fatal("backend leaked after failed construction")
	}
}

func TestOpenWithRejectsBadDescriptors(t *testing.T) {
	dup := append(testFuncs(), FunctionInfo{
		Name: "Open", Symbol: "NiFpga_Open2",
	})
	b := &fakeBackend{}
	if _, err := OpenWith(Config{}, b, dup); !errors.Is(err, ErrDescriptor) {
		t.Fatalf("duplicate name error = %v", err)
	}
	if !b.closed {
		t.Fatal("backend leaked after duplicate name")
	}

	b2 := &fakeBackend{}
	bad := []FunctionInfo{{Symbol: "NiFpga_Open"}}
	if _, err := OpenWith(Config{}, b2, bad); !errors.Is(err, ErrDescriptor) {
		t.Fatalf("invalid descriptor error = %v", err)
	}
	if !b2.closed {
		t.Fatal("backend leaked after invalid descriptor")
	}
}

func TestOpenWithRejectsNilBackend(t *testing.T) {
	if _, err := OpenWith(Config{}, nil, testFuncs()); !errors.Is(err, ErrNilBackend) {
		t.Fatalf("error = %v", err)
	}
}

func TestOpenRejectsEmptyLibraryName(t *testing.T) {
	if _, err := Open(Config{}, testFuncs()); !errors.Is(err, ErrLibraryNotFound) {
		t.Fatalf("error = %v", err)
	}
}

func TestCallMarshalsArgumentsAndWritesResults(t *testing.T) {
	b := &fakeBackend{handlers: map[string]func([]uint64) Status{
		"NiFpga_Open": func(words []uint64) Status {
			if got := dynlib.StringAt(uintptr(words[0])); got != "fpga.lvbitx" {
				return StatusBitfileReadError
			}
			if got := dynlib.StringAt(uintptr(words[2])); got != "RIO0" {
				return StatusInvalidResourceName
			}
			if uint32(words[3]) != OpenAttributeNoRun {
				return StatusInvalidParameter
			}
			dynlib.PutUint32(uintptr(words[4]), 0x5EBA11)
			return StatusSuccess
		},
		"NiFpga_ReadU32": func(words []uint64) Status {
			dynlib.PutUint32(uintptr(words[2]), uint32(words[1])+1)
			return StatusSuccess
		},
	}}
	lib, err := OpenWith(Config{LibraryName: "NiFpga"}, b, testFuncs())
	if err != nil {
		t.Fatalf("OpenWith: %v", err)
	}
	defer lib.Close()

	var session uint32
	err = lib.Call("Open", "fpga.lvbitx", "SIGNATURE", "RIO0", OpenAttributeNoRun, &session)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if session != 0x5EBA11 {
		t.Fatalf("session = %#x", session)
	}

	var value uint32
	if err := lib.Call("ReadU32", session, uint32(0x8000), &value); err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if value != 0x8001 {
		t.Fatalf("value = %#x", value)
	}
}

func TestCallClassifiesStatus(t *testing.T) {
	b := &fakeBackend{handlers: map[string]func([]uint64) Status{
		"NiFpga_ReadU32": func([]uint64) Status { return StatusInvalidSession },
		"NiFpga_Close":   func([]uint64) Status { return Status(-61999) },
	}}
	lib, err := OpenWith(Config{}, b, testFuncs())
	if err != nil {
		t.Fatalf("OpenWith: %v", err)
	}
	defer lib.Close()

	var value uint32
	err = lib.Call("ReadU32", uint32(1), uint32(2), &value)
	if !IsStatus(err, StatusInvalidSession) {
		t.Fatalf("error = %v", err)
	}
	if !strings.Contains(err.Error(), "ReadU32") || !strings.Contains(err.Error(), "InvalidSession") {
		t.Errorf("message %q incomplete", err.Error())
	}

	// A code missing from the registry still surfaces with its raw value
	// and the function that produced it.
	err = lib.Call("Close", uint32(1), uint32(0))
	if !IsStatus(err, Status(-61999)) {
		t.Fatalf("error = %v", err)
	}
	if !strings.Contains(err.Error(), "Close") || !strings.Contains(err.Error(), "-61999") {
		t.Errorf("message %q incomplete", err.Error())
	}
}

func TestWarningsSurfaceUnlessTolerated(t *testing.T) {
	warned := -StatusFifoTimeout
	b := &fakeBackend{handlers: map[string]func([]uint64) Status{
		"NiFpga_Close": func([]uint64) Status { return warned },
	}}

	lib, err := OpenWith(Config{}, b, testFuncs())
	if err != nil {
		t.Fatalf("OpenWith: %v", err)
	}
	err = lib.Call("Close", uint32(1), uint32(0))
	if !IsStatus(err, warned) {
		t.Fatalf("warning did not surface: %v", err)
	}
	if !strings.Contains(err.Error(), "warning") {
		t.Errorf("message %q does not mark the band", err.Error())
	}
	lib.Close()

	b2 := &fakeBackend{handlers: b.handlers}
	lib2, err := OpenWith(Config{TolerableWarnings: []Status{warned}}, b2, testFuncs())
	if err != nil {
		t.Fatalf("OpenWith: %v", err)
	}
	defer lib2.Close()
	if err := lib2.Call("Close", uint32(1), uint32(0)); err != nil {
		t.Fatalf("tolerated warning surfaced: %v", err)
	}
}

func TestToleranceNeverSwallowsErrors(t *testing.T) {
	b := &fakeBackend{handlers: map[string]func([]uint64) Status{
		"NiFpga_Close": func([]uint64) Status { return StatusInvalidSession },
	}}
	// Listing an error code has no effect; only warnings are tolerable.
	lib, err := OpenWith(Config{TolerableWarnings: []Status{StatusInvalidSession}}, b, testFuncs())
	if err != nil {
		t.Fatalf("OpenWith: %v", err)
	}
	defer lib.Close()
	if err := lib.Call("Close", uint32(1), uint32(0)); !IsStatus(err, StatusInvalidSession) {
		t.Fatalf("error was swallowed: %v", err)
	}
}

func TestCallUnknownFunction(t *testing.T) {
	lib, err := OpenWith(Config{}, &fakeBackend{}, testFuncs())
	if err != nil {
		t.Fatalf("OpenWith: %v", err)
	}
	defer lib.Close()
	if err := lib.Call("Readu32"); !errors.Is(err, ErrUnknownFunction) {
		t.Fatalf("error = %v", err)
	}
}

func TestCallArgumentMismatch(t *testing.T) {
	lib, err := OpenWith(Config{}, &fakeBackend{}, testFuncs())
	if err != nil {
		t.Fatalf("OpenWith: %v", err)
	}
	defer lib.Close()

	if err := lib.Call("Close", uint32(1)); !errors.Is(err, ErrArgument) {
		t.Fatalf("count mismatch error = %v", err)
	}
	if err := lib.Call("Close", "one", uint32(0)); !errors.Is(err, ErrArgument) {
		t.Fatalf("type mismatch error = %v", err)
	}
}

func TestCloseIsTerminal(t *testing.T) {
	b := &fakeBackend{}
	lib, err := OpenWith(Config{}, b, testFuncs())
	if err != nil {
		t.Fatalf("OpenWith: %v", err)
	}
	if err := lib.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if !b.closed {
		t.Fatal("backend not released")
	}
	if err := lib.Close(); !errors.Is(err, ErrLibraryClosed) {
		t.Fatalf("second close error = %v", err)
	}
	if err := lib.Call("Close", uint32(1), uint32(0)); !errors.Is(err, ErrLibraryClosed) {
		t.Fatalf("call after close error = %v", err)
	}
}

func TestFuncReturnsIsolatedDescriptor(t *testing.T) {
	lib, err := OpenWith(Config{}, &fakeBackend{}, testFuncs())
	if err != nil {
		t.Fatalf("OpenWith: %v", err)
	}
	defer lib.Close()

	f, ok := lib.Func("Open")
	if !ok {
		t.Fatal("Open not registered")
	}
	f.Args[0].Name = "mutated"
	again, _ := lib.Func("Open")
	if again.Args[0].Name != "bitfile" {
		t.Fatal("registered descriptor was mutated through the returned copy")
	}
	if _, ok := lib.Func("missing"); ok {
		t.Fatal("lookup of unregistered name succeeded")
	}
}

func TestConcurrentCalls(t *testing.T) {
	b := &fakeBackend{handlers: map[string]func([]uint64) Status{
		"NiFpga_ReadU32": func(words []uint64) Status {
			dynlib.PutUint32(uintptr(words[2]), uint32(words[1]))
			return StatusSuccess
		},
	}}
	lib, err := OpenWith(Config{}, b, testFuncs())
	if err != nil {
		t.Fatalf("OpenWith: %v", err)
	}
	defer lib.Close()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			var value uint32
			for i := 0; i < 100; i++ {
				want := uint32(g*1000 + i)
				if err := lib.Call("ReadU32", uint32(1), want, &value); err != nil {
					t.Errorf("call: %v", err)
					return
				}
				if value != want {
					t.Errorf("value = %d, want %d", value, want)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}
