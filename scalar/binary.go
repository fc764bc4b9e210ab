package scalar

import (
	"math"

	"github.com/wippyai/vtkio/errors"
)

// Int8FromByte reinterprets the bits of b as a two's-complement int8.
//
// Both types are eight bits wide, so the mapping is total and lossless:
// 0x00..0x7F map to 0..127 and 0x80..0xFF map to -128..-1. It is never a
// range-checked numeric conversion.
func Int8FromByte(b byte) int8 {
	return int8(b)
}

// ByteFromInt8 is the inverse of Int8FromByte.
func ByteFromInt8(v int8) byte {
	return byte(v)
}

// Int8sFromBytes reinterprets every byte of b with Int8FromByte.
func Int8sFromBytes(b []byte) []int8 {
	out := make([]int8, len(b))
	for i, c := range b {
		out[i] = Int8FromByte(c)
	}
	return out
}

// DecodeBinary decodes one fixed-width value of type T from the start of in
// at the given byte order. One-byte types ignore the order.
//
// If fewer than T's size bytes remain, the error is incomplete and reports
// how many more bytes are needed; in is returned untouched.
func DecodeBinary[T Scalar](in []byte, order ByteOrder) (T, []byte, error) {
	var zero T
	size := TypeOf[T]().Size()
	if len(in) < size {
		return zero, in, errors.Incomplete(errors.PhaseDecode, nil, size-len(in))
	}
	return getBinary[T](in, order.codec()), in[size:], nil
}

// getBinary reads one T from the front of b, which must hold enough bytes.
func getBinary[T Scalar](b []byte, bo byteOrder) T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = b[0]
	case *int8:
		*p = Int8FromByte(b[0])
	case *uint16:
		*p = bo.Uint16(b)
	case *int16:
		*p = int16(bo.Uint16(b))
	case *uint32:
		*p = bo.Uint32(b)
	case *int32:
		*p = int32(bo.Uint32(b))
	case *uint64:
		*p = bo.Uint64(b)
	case *int64:
		*p = int64(bo.Uint64(b))
	case *float32:
		*p = math.Float32frombits(bo.Uint32(b))
	case *float64:
		*p = math.Float64frombits(bo.Uint64(b))
	}
	return v
}

// AppendBinary appends the fixed-width encoding of v at the given byte order.
func AppendBinary[T Scalar](dst []byte, v T, order ByteOrder) []byte {
	bo := order.codec()
	switch x := any(v).(type) {
	case uint8:
		return append(dst, x)
	case int8:
		return append(dst, ByteFromInt8(x))
	case uint16:
		return bo.AppendUint16(dst, x)
	case int16:
		return bo.AppendUint16(dst, uint16(x))
	case uint32:
		return bo.AppendUint32(dst, x)
	case int32:
		return bo.AppendUint32(dst, uint32(x))
	case uint64:
		return bo.AppendUint64(dst, x)
	case int64:
		return bo.AppendUint64(dst, uint64(x))
	case float32:
		return bo.AppendUint32(dst, math.Float32bits(x))
	case float64:
		return bo.AppendUint64(dst, math.Float64bits(x))
	}
	return dst
}

// AppendBinarySlice appends every element of vs back to back, with no
// padding between elements.
func AppendBinarySlice[T Scalar](dst []byte, vs []T, order ByteOrder) []byte {
	for _, v := range vs {
		dst = AppendBinary(dst, v, order)
	}
	return dst
}
