package buffer

import (
	"math"

	"github.com/wippyai/vtkio/scalar"
)

// Buffer is a homogeneous numeric array whose element type is fixed for its
// lifetime.
type Buffer interface {
	ElementType() scalar.ElementType
	Len() int

	// AppendBinary appends every element at the given byte order, back to
	// back.
	AppendBinary(dst []byte, order scalar.ByteOrder) []byte

	// AppendText appends every element as a decimal token, separated by
	// single spaces. No trailing separator is written.
	AppendText(dst []byte) []byte

	String() string

	sealed()
}

// Vec is the Buffer implementation for element type T.
type Vec[T scalar.Scalar] []T

// New returns a Buffer over vs without copying.
func New[T scalar.Scalar](vs []T) Buffer {
	if vs == nil {
		vs = []T{}
	}
	return Vec[T](vs)
}

// Of returns a Buffer holding the given values.
func Of[T scalar.Scalar](vs ...T) Buffer {
	return New(vs)
}

func (v Vec[T]) ElementType() scalar.ElementType { return scalar.TypeOf[T]() }
func (v Vec[T]) Len() int                        { return len(v) }
func (v Vec[T]) sealed()                         {}

func (v Vec[T]) AppendBinary(dst []byte, order scalar.ByteOrder) []byte {
	return scalar.AppendBinarySlice(dst, []T(v), order)
}

func (v Vec[T]) AppendText(dst []byte) []byte {
	for i, x := range v {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = scalar.AppendText(dst, x)
	}
	return dst
}

func (v Vec[T]) String() string {
	return string(v.AppendText(nil))
}

// As returns the typed contents of b. It reports false when b does not hold
// elements of type T; no conversion is attempted.
func As[T scalar.Scalar](b Buffer) ([]T, bool) {
	v, ok := b.(Vec[T])
	if !ok {
		return nil, false
	}
	return []T(v), true
}

// Equal reports whether a and b have the same element type and the same
// elements. Floats compare by bit pattern, so NaN payloads must match too.
func Equal(a, b Buffer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.ElementType() != b.ElementType() || a.Len() != b.Len() {
		return false
	}
	switch x := a.(type) {
	case Vec[float32]:
		y := b.(Vec[float32])
		for i := range x {
			if math.Float32bits(x[i]) != math.Float32bits(y[i]) {
				return false
			}
		}
		return true
	case Vec[float64]:
		y := b.(Vec[float64])
		for i := range x {
			if math.Float64bits(x[i]) != math.Float64bits(y[i]) {
				return false
			}
		}
		return true
	case Vec[uint8]:
		return equalInts(x, b.(Vec[uint8]))
	case Vec[int8]:
		return equalInts(x, b.(Vec[int8]))
	case Vec[uint16]:
		return equalInts(x, b.(Vec[uint16]))
	case Vec[int16]:
		return equalInts(x, b.(Vec[int16]))
	case Vec[uint32]:
		return equalInts(x, b.(Vec[uint32]))
	case Vec[int32]:
		return equalInts(x, b.(Vec[int32]))
	case Vec[uint64]:
		return equalInts(x, b.(Vec[uint64]))
	case Vec[int64]:
		return equalInts(x, b.(Vec[int64]))
	}
	return false
}

func equalInts[T scalar.Scalar](a, b Vec[T]) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// NonFinite returns the index of the first NaN or infinite element of b, or
// -1 when every element is finite. Integer buffers always return -1.
func NonFinite(b Buffer) int {
	switch x := b.(type) {
	case Vec[float32]:
		for i, f := range x {
			if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
				return i
			}
		}
	case Vec[float64]:
		for i, f := range x {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return i
			}
		}
	}
	return -1
}

// Head returns a buffer over at most the first n elements of b, sharing its
// storage.
func Head(b Buffer, n int) Buffer {
	if n >= b.Len() {
		return b
	}
	n = max(n, 0)
	switch x := b.(type) {
	case Vec[uint8]:
		return x[:n]
	case Vec[int8]:
		return x[:n]
	case Vec[uint16]:
		return x[:n]
	case Vec[int16]:
		return x[:n]
	case Vec[uint32]:
		return x[:n]
	case Vec[int32]:
		return x[:n]
	case Vec[uint64]:
		return x[:n]
	case Vec[int64]:
		return x[:n]
	case Vec[float32]:
		return x[:n]
	case Vec[float64]:
		return x[:n]
	}
	return b
}
