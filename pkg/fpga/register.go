package fpga

// Typed access to the controls and indicators of the running FPGA VI. The
// offsets are the ones the FPGA Interface C API generator emits for the
// design; registers wider than 64 bits travel through the array forms.

// ReadBool reads the boolean indicator at the given offset.
func (s *Session) ReadBool(indicator uint32) (bool, error) {
	var v uint8
	if err := s.call("ReadBool", indicator, &v); err != nil {
		return false, err
	}
	return v != 0, nil
}

// WriteBool writes the boolean control at the given offset.
func (s *Session) WriteBool(control uint32, value bool) error {
	var v uint8
	if value {
		v = 1
	}
	return s.call("WriteBool", control, v)
}

// ReadI8 reads a signed 8-bit indicator.
func (s *Session) ReadI8(indicator uint32) (int8, error) {
	var v int8
	err := s.call("ReadI8", indicator, &v)
	return v, err
}

// WriteI8 writes a signed 8-bit control.
func (s *Session) WriteI8(control uint32, value int8) error {
	return s.call("WriteI8", control, value)
}

// ReadU8 reads an unsigned 8-bit indicator.
func (s *Session) ReadU8(indicator uint32) (uint8, error) {
	var v uint8
	err := s.call("ReadU8", indicator, &v)
	return v, err
}

// WriteU8 writes an unsigned 8-bit control.
func (s *Session) WriteU8(control uint32, value uint8) error {
	return s.call("WriteU8", control, value)
}

// ReadI16 reads a signed 16-bit indicator.
func (s *Session) ReadI16(indicator uint32) (int16, error) {
	var v int16
	err := s.call("ReadI16", indicator, &v)
	return v, err
}

// WriteI16 writes a signed 16-bit control.
func (s *Session) WriteI16(control uint32, value int16) error {
	return s.call("WriteI16", control, value)
}

// ReadU16 reads an unsigned 16-bit indicator.
func (s *Session) ReadU16(indicator uint32) (uint16, error) {
	var v uint16
	err := s.call("ReadU16", indicator, &v)
	return v, err
}

// WriteU16 writes an unsigned 16-bit control.
func (s *Session) WriteU16(control uint32, value uint16) error {
	return s.call("WriteU16", control, value)
}

// ReadI32 reads a signed 32-bit indicator.
func (s *Session) ReadI32(indicator uint32) (int32, error) {
	var v int32
	err := s.call("ReadI32", indicator, &v)
	return v, err
}

// WriteI32 writes a signed 32-bit control.
func (s *Session) WriteI32(control uint32, value int32) error {
	return s.call("WriteI32", control, value)
}

// ReadU32 reads an unsigned 32-bit indicator.
func (s *Session) ReadU32(indicator uint32) (uint32, error) {
	var v uint32
	err := s.call("ReadU32", indicator, &v)
	return v, err
}

// WriteU32 writes an unsigned 32-bit control.
func (s *Session) WriteU32(control uint32, value uint32) error {
	return s.call("WriteU32", control, value)
}

// ReadI64 reads a signed 64-bit indicator.
func (s *Session) ReadI64(indicator uint32) (int64, error) {
	var v int64
	err := s.call("ReadI64", indicator, &v)
	return v, err
}

// WriteI64 writes a signed 64-bit control.
func (s *Session) WriteI64(control uint32, value int64) error {
	return s.call("WriteI64", control, value)
}

// ReadU64 reads an unsigned 64-bit indicator.
func (s *Session) ReadU64(indicator uint32) (uint64, error) {
	var v uint64
	err := s.call("ReadU64", indicator, &v)
	return v, err
}

// WriteU64 writes an unsigned 64-bit control.
func (s *Session) WriteU64(control uint32, value uint64) error {
	return s.call("WriteU64", control, value)
}

// ReadSgl reads a single-precision float indicator.
func (s *Session) ReadSgl(indicator uint32) (float32, error) {
	var v float32
	err := s.call("ReadSgl", indicator, &v)
	return v, err
}

// WriteSgl writes a single-precision float control.
func (s *Session) WriteSgl(control uint32, value float32) error {
	return s.call("WriteSgl", control, value)
}

// ReadDbl reads a double-precision float indicator.
func (s *Session) ReadDbl(indicator uint32) (float64, error) {
	var v float64
	err := s.call("ReadDbl", indicator, &v)
	return v, err
}

// WriteDbl writes a double-precision float control.
func (s *Session) WriteDbl(control uint32, value float64) error {
	return s.call("WriteDbl", control, value)
}

// ReadArrayBool fills out from the boolean array indicator. Reading zero
// elements is a no-op.
func (s *Session) ReadArrayBool(indicator uint32, out []bool) error {
	if len(out) == 0 {
		return nil
	}
	raw := make([]uint8, len(out))
	if err := s.call("ReadArrayBool", indicator, raw, len(raw)); err != nil {
		return err
	}
	for i, b := range raw {
		out[i] = b != 0
	}
	return nil
}

// WriteArrayBool writes values to the boolean array control.
func (s *Session) WriteArrayBool(control uint32, values []bool) error {
	if len(values) == 0 {
		return nil
	}
	raw := make([]uint8, len(values))
	for i, b := range values {
		if b {
			raw[i] = 1
		}
	}
	return s.call("WriteArrayBool", control, raw, len(raw))
}

// ReadArrayI8 fills out from the array indicator.
func (s *Session) ReadArrayI8(indicator uint32, out []int8) error {
	if len(out) == 0 {
		return nil
	}
	return s.call("ReadArrayI8", indicator, out, len(out))
}

// WriteArrayI8 writes values to the array control.
func (s *Session) WriteArrayI8(control uint32, values []int8) error {
	if len(values) == 0 {
		return nil
	}
	return s.call("WriteArrayI8", control, values, len(values))
}

// ReadArrayU8 fills out from the array indicator.
func (s *Session) ReadArrayU8(indicator uint32, out []uint8) error {
	if len(out) == 0 {
		return nil
	}
	return s.call("ReadArrayU8", indicator, out, len(out))
}

// WriteArrayU8 writes values to the array control.
func (s *Session) WriteArrayU8(control uint32, values []uint8) error {
	if len(values) == 0 {
		return nil
	}
	return s.call("WriteArrayU8", control, values, len(values))
}

// ReadArrayI16 fills out from the array indicator.
func (s *Session) ReadArrayI16(indicator uint32, out []int16) error {
	if len(out) == 0 {
		return nil
	}
	return s.call("ReadArrayI16", indicator, out, len(out))
}

// WriteArrayI16 writes values to the array control.
func (s *Session) WriteArrayI16(control uint32, values []int16) error {
	if len(values) == 0 {
		return nil
	}
	return s.call("WriteArrayI16", control, values, len(values))
}

// ReadArrayU16 fills out from the array indicator.
func (s *Session) ReadArrayU16(indicator uint32, out []uint16) error {
	if len(out) == 0 {
		return nil
	}
	return s.call("ReadArrayU16", indicator, out, len(out))
}

// WriteArrayU16 writes values to the array control.
func (s *Session) WriteArrayU16(control uint32, values []uint16) error {
	if len(values) == 0 {
		return nil
	}
	return s.call("WriteArrayU16", control, values, len(values))
}

// ReadArrayI32 fills out from the array indicator.
func (s *Session) ReadArrayI32(indicator uint32, out []int32) error {
	if len(out) == 0 {
		return nil
	}
	return s.call("ReadArrayI32", indicator, out, len(out))
}

// WriteArrayI32 writes values to the array control.
func (s *Session) WriteArrayI32(control uint32, values []int32) error {
	if len(values) == 0 {
		return nil
	}
	return s.call("WriteArrayI32", control, values, len(values))
}

// ReadArrayU32 fills out from the array indicator.
func (s *Session) ReadArrayU32(indicator uint32, out []uint32) error {
	if len(out) == 0 {
		return nil
	}
	return s.call("ReadArrayU32", indicator, out, len(out))
}

// WriteArrayU32 writes values to the array control.
func (s *Session) WriteArrayU32(control uint32, values []uint32) error {
	if len(values) == 0 {
		return nil
	}
	return s.call("WriteArrayU32", control, values, len(values))
}

// ReadArrayI64 fills out from the array indicator.
func (s *Session) ReadArrayI64(indicator uint32, out []int64) error {
	if len(out) == 0 {
		return nil
	}
	return s.call("ReadArrayI64", indicator, out, len(out))
}

// WriteArrayI64 writes values to the array control.
func (s *Session) WriteArrayI64(control uint32, values []int64) error {
	if len(values) == 0 {
		return nil
	}
	return s.call("WriteArrayI64", control, values, len(values))
}

// ReadArrayU64 fills out from the array indicator.
func (s *Session) ReadArrayU64(indicator uint32, out []uint64) error {
	if len(out) == 0 {
		return nil
	}
	return s.call("ReadArrayU64", indicator, out, len(out))
}

// WriteArrayU64 writes values to the array control.
func (s *Session) WriteArrayU64(control uint32, values []uint64) error {
	if len(values) == 0 {
		return nil
	}
	return s.call("WriteArrayU64", control, values, len(values))
}

// ReadArraySgl fills out from the array indicator.
func (s *Session) ReadArraySgl(indicator uint32, out []float32) error {
	if len(out) == 0 {
		return nil
	}
	return s.call("ReadArraySgl", indicator, out, len(out))
}

// WriteArraySgl writes values to the array control.
func (s *Session) WriteArraySgl(control uint32, values []float32) error {
	if len(values) == 0 {
		return nil
	}
	return s.call("WriteArraySgl", control, values, len(values))
}

// ReadArrayDbl fills out from the array indicator.
func (s *Session) ReadArrayDbl(indicator uint32, out []float64) error {
	if len(out) == 0 {
		return nil
	}
	return s.call("ReadArrayDbl", indicator, out, len(out))
}

// WriteArrayDbl writes values to the array control.
func (s *Session) WriteArrayDbl(control uint32, values []float64) error {
	if len(values) == 0 {
		return nil
	}
	return s.call("WriteArrayDbl", control, values, len(values))
}
