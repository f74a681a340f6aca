package nifpga

import (
	"errors"
	"strings"
	"testing"
)

func TestFunctionInfoString(t *testing.T) {
	f := FunctionInfo{
		Name:   "ReadU32",
		Symbol: "NiFpga_ReadU32",
		Args: []NamedArg{
			{"session", U32},
			{"indicator", U32},
			{"value", Ptr},
		},
	}
	want := "ReadU32 = NiFpga_ReadU32(session U32, indicator U32, value Ptr)"
	if got := f.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestFunctionInfoValidate(t *testing.T) {
	good := FunctionInfo{
		Name:   "Abort",
		Symbol: "NiFpga_Abort",
		Args:   []NamedArg{{"session", U32}},
	}
	if err := good.validate(); err != nil {
		t.Fatalf("valid descriptor rejected: %v", err)
	}

	cases := []struct {
		name string
		f    FunctionInfo
		frag string
	}{
		{
			name: "empty logical name",
			f:    FunctionInfo{Symbol: "NiFpga_Abort"},
			frag: "empty logical name",
		},
		{
			name: "empty symbol",
			f:    FunctionInfo{Name: "Abort"},
			frag: "no native symbol",
		},
		{
			name: "unnamed argument",
			f: FunctionInfo{Name: "Abort", Symbol: "NiFpga_Abort",
				Args: []NamedArg{{"", U32}}},
			frag: "argument 0 is unnamed",
		},
		{
			name: "unknown argument type",
			f: FunctionInfo{Name: "Abort", Symbol: "NiFpga_Abort",
				Args: []NamedArg{{"session", NativeType(99)}}},
			frag: "unknown type",
		},
	}
	for _, c := range cases {
		err := c.f.validate()
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !errors.Is(err, ErrDescriptor) {
			t.Errorf("%s: error %v does not wrap ErrDescriptor", c.name, err)
		}
		if !strings.Contains(err.Error(), c.frag) {
			t.Errorf("%s: message %q missing %q", c.name, err.Error(), c.frag)
		}
	}
}

func TestFunctionInfoCloneIsIndependent(t *testing.T) {
	f := FunctionInfo{
		Name:   "Run",
		Symbol: "NiFpga_Run",
		Args:   []NamedArg{{"session", U32}, {"attribute", U32}},
	}
	c := f.clone()
	c.Args[0].Name = "mutated"
	if f.Args[0].Name != "session" {
		t.Fatal("clone shares argument storage with the original")
	}
}

func TestArgTypesOrder(t *testing.T) {
	f := FunctionInfo{
		Name:   "ConfigureFifo",
		Symbol: "NiFpga_ConfigureFifo",
		Args:   []NamedArg{{"session", U32}, {"fifo", U32}, {"depth", USize}},
	}
	got := f.argTypes()
	want := []NativeType{U32, U32, USize}
	if len(got) != len(want) {
		t.Fatalf("argTypes() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("argTypes()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
