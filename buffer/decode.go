package buffer

import (
	"github.com/wippyai/vtkio/errors"
	"github.com/wippyai/vtkio/scalar"
)

// Decode reads n elements of runtime type t from the start of in and returns
// them as a Buffer together with the unconsumed input.
//
// Bit arrays are read with scalar.DecodeBits and come back as an
// unsigned_char buffer: packed bytes in Binary mode, one 0/1 byte per
// element in ASCII mode. Errors are those of the scalar layer; in is returned
// untouched on failure.
func Decode(in []byte, t scalar.ElementType, n int, enc scalar.Encoding, order scalar.ByteOrder) (Buffer, []byte, error) {
	switch t {
	case scalar.Bit:
		v, rest, err := scalar.DecodeBits(in, n, enc)
		return wrap(v, rest, err)
	case scalar.U8:
		v, rest, err := scalar.DecodeBytes(in, n, enc)
		return wrap(v, rest, err)
	case scalar.I8:
		v, rest, err := scalar.DecodeInt8s(in, n, enc)
		return wrap(v, rest, err)
	case scalar.U16:
		return decodeVec[uint16](in, n, enc, order)
	case scalar.I16:
		return decodeVec[int16](in, n, enc, order)
	case scalar.U32:
		return decodeVec[uint32](in, n, enc, order)
	case scalar.I32:
		return decodeVec[int32](in, n, enc, order)
	case scalar.U64:
		return decodeVec[uint64](in, n, enc, order)
	case scalar.I64:
		return decodeVec[int64](in, n, enc, order)
	case scalar.F32:
		return decodeVec[float32](in, n, enc, order)
	case scalar.F64:
		return decodeVec[float64](in, n, enc, order)
	}
	return nil, in, errors.Unsupported(errors.PhaseDecode, nil, "element type "+t.String())
}

func decodeVec[T scalar.Scalar](in []byte, n int, enc scalar.Encoding, order scalar.ByteOrder) (Buffer, []byte, error) {
	v, rest, err := scalar.DecodeN[T](in, n, enc, order)
	return wrap(v, rest, err)
}

func wrap[T scalar.Scalar](v []T, rest []byte, err error) (Buffer, []byte, error) {
	if err != nil {
		return nil, rest, err
	}
	return New(v), rest, nil
}
