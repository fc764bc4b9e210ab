package scalar

import (
	"encoding/binary"
	"strings"
)

// ElementType identifies the numeric type stored in a VTK data array.
type ElementType uint8

const (
	Bit ElementType = iota
	U8
	I8
	U16
	I16
	U32
	I32
	U64
	I64
	F32
	F64
)

var tagNames = [...]string{
	Bit: "bit",
	U8:  "unsigned_char",
	I8:  "char",
	U16: "unsigned_short",
	I16: "short",
	U32: "unsigned_int",
	I32: "int",
	U64: "unsigned_long",
	I64: "long",
	F32: "float",
	F64: "double",
}

var shortNames = [...]string{
	Bit: "bit",
	U8:  "u8",
	I8:  "i8",
	U16: "u16",
	I16: "i16",
	U32: "u32",
	I32: "i32",
	U64: "u64",
	I64: "i64",
	F32: "f32",
	F64: "f64",
}

var sizes = [...]int{
	Bit: 0,
	U8:  1,
	I8:  1,
	U16: 2,
	I16: 2,
	U32: 4,
	I32: 4,
	U64: 8,
	I64: 8,
	F32: 4,
	F64: 8,
}

// String returns the short Go-style name (u8, f64, ...).
func (t ElementType) String() string {
	if int(t) < len(shortNames) {
		return shortNames[t]
	}
	return "unknown"
}

// Tag returns the VTK type tag written in section headers.
func (t ElementType) Tag() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// Size returns the width in bytes of one binary element. Bit arrays are
// packed and report 0.
func (t ElementType) Size() int {
	if int(t) < len(sizes) {
		return sizes[t]
	}
	return 0
}

// Bits returns the width in bits of one element.
func (t ElementType) Bits() int {
	if t == Bit {
		return 1
	}
	return t.Size() * 8
}

// IsFloat reports whether t is f32 or f64.
func (t ElementType) IsFloat() bool {
	return t == F32 || t == F64
}

// IsSigned reports whether t is a signed integer type.
func (t ElementType) IsSigned() bool {
	switch t {
	case I8, I16, I32, I64:
		return true
	}
	return false
}

// Valid reports whether t is one of the defined element types.
func (t ElementType) Valid() bool {
	return int(t) < len(tagNames)
}

// ParseTag maps a VTK type tag to its element type. Matching is
// case-insensitive, as legacy writers disagree on capitalisation.
func ParseTag(tag string) (ElementType, bool) {
	tag = strings.ToLower(tag)
	for t, name := range tagNames {
		if name == tag {
			return ElementType(t), true
		}
	}
	if tag == "vtkidtype" {
		return I32, true
	}
	return 0, false
}

// Scalar is the set of Go types that can be stored in a VTK data array.
type Scalar interface {
	uint8 | int8 | uint16 | int16 | uint32 | int32 | uint64 | int64 | float32 | float64
}

// TypeOf returns the element type for T.
func TypeOf[T Scalar]() ElementType {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return U8
	case int8:
		return I8
	case uint16:
		return U16
	case int16:
		return I16
	case uint32:
		return U32
	case int32:
		return I32
	case uint64:
		return U64
	case int64:
		return I64
	case float32:
		return F32
	case float64:
		return F64
	}
	panic("scalar: unreachable element type")
}

// Encoding selects how bulk data is stored in a file.
//
// Keywords and sizes are always ASCII. In Binary files, array payloads are
// placed immediately after the newline ending their keyword line.
type Encoding uint8

const (
	ASCII Encoding = iota
	Binary
)

// String returns the keyword used in the file header.
func (e Encoding) String() string {
	if e == Binary {
		return "BINARY"
	}
	return "ASCII"
}

// ParseEncoding accepts "ascii" or "binary" in any case.
func ParseEncoding(s string) (Encoding, bool) {
	switch strings.ToLower(s) {
	case "ascii":
		return ASCII, true
	case "binary":
		return Binary, true
	}
	return 0, false
}

// ByteOrder selects the byte order of multi-byte binary values.
type ByteOrder uint8

const (
	NativeEndian ByteOrder = iota
	LittleEndian
	BigEndian
)

// String returns a short name for the order.
func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "le"
	case BigEndian:
		return "be"
	}
	return "native"
}

// ParseByteOrder accepts native, le/little or be/big.
func ParseByteOrder(s string) (ByteOrder, bool) {
	switch strings.ToLower(s) {
	case "native", "":
		return NativeEndian, true
	case "le", "little", "little-endian":
		return LittleEndian, true
	case "be", "big", "big-endian":
		return BigEndian, true
	}
	return 0, false
}

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

func (o ByteOrder) codec() byteOrder {
	switch o {
	case LittleEndian:
		return binary.LittleEndian
	case BigEndian:
		return binary.BigEndian
	}
	return binary.NativeEndian
}
