package nifpga

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// boundFunc is one declared entry point after construction: the immutable
// descriptor plus the resolved callable.
type boundFunc struct {
	info FunctionInfo
	call NativeCall
}

// Library is a set of native entry points bound against one loaded library,
// each invoked by logical name with its return status checked. Binding
// happens exactly once, at construction; there is no rebind or unbind.
//
// Individual calls take no library-level locks: whatever goroutine invokes
// a bound function blocks for the duration of the native call, and
// concurrent calls are only as safe as the native library's own reentrancy.
// Close must not race in-flight calls.
type Library struct {
	cfg     Config
	backend Backend
	funcs   map[string]*boundFunc
	order   []string

	mu     sync.Mutex
	closed bool
}

// Open loads the platform artifact for cfg.LibraryName and binds the given
// function descriptors against it. A library that cannot be located fails
// with the platform remediation wrapped around ErrLibraryNotFound; any
// declared symbol missing from a loaded library fails construction with
// ErrSymbolNotFound.
func Open(cfg Config, funcs []FunctionInfo) (*Library, error) {
	if cfg.LibraryName == "" {
		return nil, fmt.Errorf("%w: empty library name", ErrLibraryNotFound)
	}
	backend, err := loadArtifact(cfg.LibraryName)
	if err != nil {
		return nil, err
	}
	return OpenWith(cfg, backend, funcs)
}

// OpenWith binds function descriptors against an already-opened backend.
// On any construction failure the backend is closed before returning.
func OpenWith(cfg Config, backend Backend, funcs []FunctionInfo) (*Library, error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	l := &Library{
		cfg:     cfg,
		backend: backend,
		funcs:   make(map[string]*boundFunc, len(funcs)),
		order:   make([]string, 0, len(funcs)),
	}
	for _, f := range funcs {
		if err := f.validate(); err != nil {
			backend.Close()
			return nil, err
		}
		if _, dup := l.funcs[f.Name]; dup {
			backend.Close()
			return nil, fmt.Errorf("%w: duplicate logical name %q", ErrDescriptor, f.Name)
		}
		f = f.clone()
		call, err := backend.Resolve(f.Symbol, f.argTypes())
		if err != nil {
			backend.Close()
			return nil, fmt.Errorf("binding %s: %w", f.Name, err)
		}
		l.funcs[f.Name] = &boundFunc{info: f, call: call}
		l.order = append(l.order, f.Name)
	}
	cfg.logger().Info(context.Background(), "native library bound",
		"library", cfg.LibraryName, "functions", len(l.order))
	runtime.SetFinalizer(l, (*Library).finalize)
	return l, nil
}

// Call invokes the bound function registered under the logical name with
// positional arguments typed per its descriptor. Arguments are marshaled to
// their native representations, exactly one native call is performed, and
// the returned status code is classified: success returns nil, warnings and
// errors return a *StatusError carrying the code and the logical name.
// Warnings listed in Config.TolerableWarnings are logged and return nil.
//
// Out-parameter storage is allocated and owned by the caller; the binding
// never retains it past the call.
func (l *Library) Call(name string, args ...any) error {
	if l == nil {
		return ErrLibraryClosed
	}
	l.mu.Lock()
	closed := l.closed
	l.mu.Unlock()
	if closed {
		return fmt.Errorf("%w: %s", ErrLibraryClosed, name)
	}
	fn, ok := l.funcs[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	m, err := marshalArgs(&fn.info, args)
	if err != nil {
		return err
	}
	status := fn.call(m.words)
	// Marshaled pointer referents and string buffers must survive until the
	// native call has returned.
	runtime.KeepAlive(m.keep)
	if err := check(name, status); err != nil {
		if l.cfg.tolerates(status) {
			l.cfg.logger().Warn(context.Background(), "tolerated warning",
				"function", name, "status", status.String())
			return nil
		}
		l.cfg.logger().Debug(context.Background(), "call failed",
			"function", name, "status", status.String())
		return err
	}
	return nil
}

// Func returns the registered descriptor for a logical name.
func (l *Library) Func(name string) (FunctionInfo, bool) {
	if l == nil {
		return FunctionInfo{}, false
	}
	fn, ok := l.funcs[name]
	if !ok {
		return FunctionInfo{}, false
	}
	return fn.info.clone(), true
}

// Functions returns the registered descriptors in declaration order.
func (l *Library) Functions() []FunctionInfo {
	if l == nil {
		return nil
	}
	out := make([]FunctionInfo, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.funcs[name].info.clone())
	}
	return out
}

// Name returns the logical library name the binding was constructed with.
func (l *Library) Name() string {
	if l == nil {
		return ""
	}
	return l.cfg.LibraryName
}

// Close releases the backend. The second close returns ErrLibraryClosed.
// The caller guarantees no call is in flight.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrLibraryClosed
	}
	l.closed = true
	l.mu.Unlock()
	runtime.SetFinalizer(l, nil)
	err := l.backend.Close()
	l.cfg.logger().Info(context.Background(), "native library closed",
		"library", l.cfg.LibraryName)
	return err
}

func (l *Library) finalize() {
	// Safety net for leaked libraries; errors have nowhere to go.
	_ = l.Close()
}
