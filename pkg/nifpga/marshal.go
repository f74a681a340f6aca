package nifpga

import (
	"fmt"
	"math"
	"reflect"
)

// marshaled is one call's native argument frame: a 64-bit word per declared
// argument holding the raw bit pattern, plus every Go value that must stay
// reachable until the native call returns (pointer referents and C string
// buffers).
type marshaled struct {
	words []uint64
	keep  []any
}

// marshalArgs lowers positional Go arguments onto fn's declared native
// types. Count and type mismatches wrap ErrArgument and name the argument.
func marshalArgs(fn *FunctionInfo, args []any) (marshaled, error) {
	var m marshaled
	if len(args) != len(fn.Args) {
		return m, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrArgument, fn.Name, len(fn.Args), len(args))
	}
	m.words = make([]uint64, len(args))
	for i, decl := range fn.Args {
		w, keep, err := marshalOne(decl.Type, args[i])
		if err != nil {
			return marshaled{}, fmt.Errorf("%w: %s argument %q: %v", ErrArgument, fn.Name, decl.Name, err)
		}
		m.words[i] = w
		if keep != nil {
			m.keep = append(m.keep, keep)
		}
	}
	return m, nil
}

func marshalOne(t NativeType, v any) (word uint64, keep any, err error) {
	switch t {
	case Bool:
		switch x := v.(type) {
		case bool:
			if x {
				return 1, nil, nil
			}
			return 0, nil, nil
		case uint8:
			return uint64(x), nil, nil
		}
	case I8:
		return intWord(t, v, math.MinInt8, math.MaxInt8)
	case I16:
		return intWord(t, v, math.MinInt16, math.MaxInt16)
	case I32:
		return intWord(t, v, math.MinInt32, math.MaxInt32)
	case I64:
		return intWord(t, v, math.MinInt64, math.MaxInt64)
	case U8:
		return uintWord(t, v, math.MaxUint8)
	case U16:
		return uintWord(t, v, math.MaxUint16)
	case U32:
		return uintWord(t, v, math.MaxUint32)
	case U64:
		return uintWord(t, v, math.MaxUint64)
	case F32:
		switch x := v.(type) {
		case float32:
			return uint64(math.Float32bits(x)), nil, nil
		case float64:
			return uint64(math.Float32bits(float32(x))), nil, nil
		case int:
			return uint64(math.Float32bits(float32(x))), nil, nil
		}
	case F64:
		switch x := v.(type) {
		case float64:
			return math.Float64bits(x), nil, nil
		case float32:
			return math.Float64bits(float64(x)), nil, nil
		case int:
			return math.Float64bits(float64(x)), nil, nil
		}
	case Ptr:
		return ptrWord(v)
	case USize:
		switch x := v.(type) {
		case int:
			if x < 0 {
				return 0, nil, fmt.Errorf("%d out of range for USize", x)
			}
			return uint64(x), nil, nil
		case uint:
			return uint64(x), nil, nil
		case uintptr:
			return uint64(x), nil, nil
		case uint32:
			return uint64(x), nil, nil
		case uint64:
			if ptrSize == 4 && x > math.MaxUint32 {
				return 0, nil, fmt.Errorf("%d out of range for USize", x)
			}
			return x, nil, nil
		}
	case CStr:
		switch x := v.(type) {
		case string:
			buf := make([]byte, len(x)+1)
			copy(buf, x)
			return uint64(reflect.ValueOf(buf).Pointer()), buf, nil
		case []byte:
			buf := make([]byte, len(x)+1)
			copy(buf, x)
			return uint64(reflect.ValueOf(buf).Pointer()), buf, nil
		}
	}
	return 0, nil, fmt.Errorf("cannot use %T as %v", v, t)
}

// intWord accepts the exact fixed-width signed type for t, or a plain int
// subjected to a range check.
func intWord(t NativeType, v any, lo, hi int64) (uint64, any, error) {
	var x int64
	switch n := v.(type) {
	case int8:
		if t != I8 {
			return 0, nil, fmt.Errorf("cannot use %T as %v", v, t)
		}
		x = int64(n)
	case int16:
		if t != I16 {
			return 0, nil, fmt.Errorf("cannot use %T as %v", v, t)
		}
		x = int64(n)
	case int32:
		if t != I32 {
			return 0, nil, fmt.Errorf("cannot use %T as %v", v, t)
		}
		x = int64(n)
	case int64:
		if t != I64 {
			return 0, nil, fmt.Errorf("cannot use %T as %v", v, t)
		}
		x = n
	case int:
		x = int64(n)
		if x < lo || x > hi {
			return 0, nil, fmt.Errorf("%d out of range for %v", n, t)
		}
	default:
		return 0, nil, fmt.Errorf("cannot use %T as %v", v, t)
	}
	return uint64(x), nil, nil
}

// uintWord accepts the exact fixed-width unsigned type for t, or a plain
// non-negative int subjected to a range check.
func uintWord(t NativeType, v any, hi uint64) (uint64, any, error) {
	var x uint64
	switch n := v.(type) {
	case uint8:
		if t != U8 {
			return 0, nil, fmt.Errorf("cannot use %T as %v", v, t)
		}
		x = uint64(n)
	case uint16:
		if t != U16 {
			return 0, nil, fmt.Errorf("cannot use %T as %v", v, t)
		}
		x = uint64(n)
	case uint32:
		if t != U32 {
			return 0, nil, fmt.Errorf("cannot use %T as %v", v, t)
		}
		x = uint64(n)
	case uint64:
		if t != U64 {
			return 0, nil, fmt.Errorf("cannot use %T as %v", v, t)
		}
		x = n
	case int:
		if n < 0 {
			return 0, nil, fmt.Errorf("%d out of range for %v", n, t)
		}
		x = uint64(n)
		if x > hi {
			return 0, nil, fmt.Errorf("%d out of range for %v", n, t)
		}
	default:
		return 0, nil, fmt.Errorf("cannot use %T as %v", v, t)
	}
	return x, nil, nil
}

// ptrWord lowers pointer-shaped values: typed pointers and slices through
// reflection, raw uintptr verbatim, nil as the null pointer. The original
// value is retained so the referent stays reachable across the call.
func ptrWord(v any) (uint64, any, error) {
	if v == nil {
		return 0, nil, nil
	}
	if x, ok := v.(uintptr); ok {
		return uint64(x), nil, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer:
		return uint64(rv.Pointer()), v, nil
	case reflect.Slice:
		if rv.Len() == 0 {
			return 0, nil, fmt.Errorf("empty slice for Ptr argument")
		}
		return uint64(rv.Pointer()), v, nil
	}
	return 0, nil, fmt.Errorf("cannot use %T as Ptr", v)
}
