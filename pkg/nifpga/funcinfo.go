package nifpga

import (
	"fmt"
	"strings"
)

// NamedArg declares one argument of a native entry point: the name used in
// diagnostics and the native storage the value marshals to.
type NamedArg struct {
	Name string
	Type NativeType
}

// FunctionInfo declares one native entry point: the logical name callers
// invoke it by, the symbol exported by the native library, and the ordered
// argument list. Descriptors are copied at registration and immutable
// afterwards.
type FunctionInfo struct {
	// Name is the logical name, e.g. "ReadU32".
	Name string
	// Symbol is the exported native symbol, e.g. "NiFpga_ReadU32".
	Symbol string
	// Args declares the call arguments in order. Argument names surface in
	// mismatch diagnostics; calls themselves are positional.
	Args []NamedArg
}

// String renders the descriptor as "Name = Symbol(name type, ...)".
func (f FunctionInfo) String() string {
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteString(" = ")
	b.WriteString(f.Symbol)
	b.WriteByte('(')
	for i, a := range f.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.Name)
		b.WriteByte(' ')
		b.WriteString(a.Type.String())
	}
	b.WriteByte(')')
	return b.String()
}

// clone returns a deep copy so registered descriptors cannot be mutated
// through the caller's slice.
func (f FunctionInfo) clone() FunctionInfo {
	c := f
	c.Args = append([]NamedArg(nil), f.Args...)
	return c
}

// validate rejects malformed descriptors before any symbol resolution runs.
func (f FunctionInfo) validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: empty logical name (symbol %q)", ErrDescriptor, f.Symbol)
	}
	if f.Symbol == "" {
		return fmt.Errorf("%w: %s has no native symbol", ErrDescriptor, f.Name)
	}
	for i, a := range f.Args {
		if a.Name == "" {
			return fmt.Errorf("%w: %s argument %d is unnamed", ErrDescriptor, f.Name, i)
		}
		if !a.Type.valid() {
			return fmt.Errorf("%w: %s argument %q has unknown type %v", ErrDescriptor, f.Name, a.Name, a.Type)
		}
	}
	return nil
}

// argTypes returns the ordered native types of the declared arguments.
func (f FunctionInfo) argTypes() []NativeType {
	ts := make([]NativeType, len(f.Args))
	for i, a := range f.Args {
		ts[i] = a.Type
	}
	return ts
}
