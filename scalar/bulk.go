package scalar

import (
	"fmt"
	"math"
	"slices"

	"github.com/wippyai/vtkio/errors"
)

// DecodeN decodes exactly n values of type T.
//
// In ASCII mode it consumes n tokens separated by any whitespace, including
// newlines. In Binary mode it consumes n*size contiguous bytes. The returned
// slice never holds more than n elements. On error, in is returned untouched.
func DecodeN[T Scalar](in []byte, n int, enc Encoding, order ByteOrder) ([]T, []byte, error) {
	if n < 0 {
		return nil, in, errors.InvalidInput(errors.PhaseDecode, nil, "negative element count")
	}
	if enc == Binary {
		size := TypeOf[T]().Size()
		if n > len(in)/size {
			return nil, in, errors.Incomplete(errors.PhaseDecode, nil, shortfall(n, size, len(in)))
		}
		bo := order.codec()
		out := make([]T, n)
		for i := range out {
			out[i] = getBinary[T](in[i*size:], bo)
		}
		return out, in[n*size:], nil
	}

	out := make([]T, 0, min(n, len(in)))
	rest := in
	for len(out) < n {
		rest = SkipWhitespace(rest)
		v, r, err := DecodeASCII[T](rest)
		if err != nil {
			return nil, in, err
		}
		out = append(out, v)
		rest = r
	}
	return out, rest, nil
}

// DecodeBytes decodes n unsigned bytes. In Binary mode the byte span is
// copied out whole; byte order does not apply.
func DecodeBytes(in []byte, n int, enc Encoding) ([]byte, []byte, error) {
	if enc != Binary {
		return DecodeN[uint8](in, n, enc, NativeEndian)
	}
	if n < 0 {
		return nil, in, errors.InvalidInput(errors.PhaseDecode, nil, "negative element count")
	}
	if len(in) < n {
		return nil, in, errors.Incomplete(errors.PhaseDecode, nil, n-len(in))
	}
	return slices.Clone(in[:n]), in[n:], nil
}

// DecodeInt8s decodes n signed bytes. In Binary mode each byte is
// reinterpreted with Int8FromByte.
func DecodeInt8s(in []byte, n int, enc Encoding) ([]int8, []byte, error) {
	if enc != Binary {
		return DecodeN[int8](in, n, enc, NativeEndian)
	}
	if n < 0 {
		return nil, in, errors.InvalidInput(errors.PhaseDecode, nil, "negative element count")
	}
	if len(in) < n {
		return nil, in, errors.Incomplete(errors.PhaseDecode, nil, n-len(in))
	}
	return Int8sFromBytes(in[:n]), in[n:], nil
}

// shortfall returns how many bytes are missing when n elements of size bytes
// are wanted and have bytes are present. A byte length that does not fit in
// an int saturates at math.MaxInt.
func shortfall(n, size, have int) int {
	if n > math.MaxInt/size {
		return math.MaxInt
	}
	return n*size - have
}

// PackedLen returns the number of bytes holding n packed bits.
func PackedLen(n int) int {
	l := n / 8
	if n%8 != 0 {
		l++
	}
	return l
}

// DecodeBits decodes a bit array of n booleans. Binary mode returns the
// ceil(n/8) packed bytes; ASCII mode still reads one token per boolean and
// returns one byte per element. ASCII tokens other than 0 and 1 are
// malformed.
func DecodeBits(in []byte, n int, enc Encoding) ([]byte, []byte, error) {
	if enc != Binary {
		bits, rest, err := DecodeN[uint8](in, n, enc, NativeEndian)
		if err != nil {
			return nil, in, err
		}
		for i, b := range bits {
			if b > 1 {
				return nil, in, errors.Malformed(errors.PhaseDecode, nil,
					fmt.Sprintf("bit %d is %d, want 0 or 1", i, b))
			}
		}
		return bits, rest, nil
	}
	if n < 0 {
		return nil, in, errors.InvalidInput(errors.PhaseDecode, nil, "negative element count")
	}
	nbytes := PackedLen(n)
	if len(in) < nbytes {
		return nil, in, errors.Incomplete(errors.PhaseDecode, nil, nbytes-len(in))
	}
	return slices.Clone(in[:nbytes]), in[nbytes:], nil
}
