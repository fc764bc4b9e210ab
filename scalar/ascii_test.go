package scalar

import (
	"math"
	"testing"

	"github.com/wippyai/vtkio/errors"
)

func TestDecodeASCIIReal(t *testing.T) {
	tests := []struct {
		in   string
		want float32
	}{
		{"-0.00005", -0.00005},
		{"4.", 4.0},
		{"3", 3.0},
		{"-.3", -0.3},
		{"+.5", 0.5},
		{"3e3", 3000.0},
		{"-3.2e2", -320.0},
		{"1.5E-1", 0.15},
		{"7e+1", 70},
	}

	for _, tt := range tests {
		got, rest, err := DecodeASCII[float32]([]byte(tt.in))
		if err != nil {
			t.Errorf("DecodeASCII(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DecodeASCII(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if len(rest) != 0 {
			t.Errorf("DecodeASCII(%q) left %q", tt.in, rest)
		}
	}
}

func TestDecodeASCIIInteger(t *testing.T) {
	if v, _, err := DecodeASCII[int32]([]byte("-1")); err != nil || v != -1 {
		t.Errorf("int32 -1: got %v, %v", v, err)
	}
	if v, _, err := DecodeASCII[int32]([]byte("+1")); err != nil || v != 1 {
		t.Errorf("int32 +1: got %v, %v", v, err)
	}
	if v, _, err := DecodeASCII[int32]([]byte("43242")); err != nil || v != 43242 {
		t.Errorf("int32 43242: got %v, %v", v, err)
	}
	if v, _, err := DecodeASCII[uint8]([]byte("255")); err != nil || v != 255 {
		t.Errorf("uint8 255: got %v, %v", v, err)
	}
	if v, _, err := DecodeASCII[int8]([]byte("-128")); err != nil || v != -128 {
		t.Errorf("int8 -128: got %v, %v", v, err)
	}
	if v, _, err := DecodeASCII[uint64]([]byte("18446744073709551615")); err != nil || v != math.MaxUint64 {
		t.Errorf("uint64 max: got %v, %v", v, err)
	}
}

func TestDecodeASCIIRemainder(t *testing.T) {
	v, rest, err := DecodeASCII[float64]([]byte("2.5 next"))
	if err != nil {
		t.Fatalf("DecodeASCII: %v", err)
	}
	if v != 2.5 || string(rest) != " next" {
		t.Errorf("got %v rest %q", v, rest)
	}

	// An incomplete exponent is left for the caller.
	v, rest, err = DecodeASCII[float64]([]byte("3e"))
	if err != nil {
		t.Fatalf("DecodeASCII: %v", err)
	}
	if v != 3 || string(rest) != "e" {
		t.Errorf("got %v rest %q", v, rest)
	}

	// Newlines are not inter-token space for single values.
	_, _, err = DecodeASCII[int32]([]byte("\n5"))
	if !errors.IsMalformed(err) {
		t.Errorf("leading newline: expected malformed, got %v", err)
	}
}

func TestDecodeASCIIFailures(t *testing.T) {
	tests := []struct {
		name string
		in   string
		fn   func([]byte) error
		kind errors.Kind
	}{
		{"empty unsigned", "", decodeErr[uint32], errors.KindIncomplete},
		{"empty real", "", decodeErr[float32], errors.KindIncomplete},
		{"lone sign", "-", decodeErr[int16], errors.KindIncomplete},
		{"lone sign real", "+", decodeErr[float64], errors.KindIncomplete},
		{"lone dot at end", ".", decodeErr[float64], errors.KindIncomplete},
		{"letters", "abc", decodeErr[float32], errors.KindMalformed},
		{"sign on unsigned", "-1", decodeErr[uint16], errors.KindMalformed},
		{"dot alone", ". ", decodeErr[float32], errors.KindMalformed},
		{"u8 overflow", "256", decodeErr[uint8], errors.KindOverflow},
		{"i8 overflow", "-129", decodeErr[int8], errors.KindOverflow},
		{"u16 overflow", "70000", decodeErr[uint16], errors.KindOverflow},
		{"f32 overflow", "1e39", decodeErr[float32], errors.KindOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn([]byte(tt.in))
			if err == nil {
				t.Fatalf("expected error for %q", tt.in)
			}
			e, ok := err.(*errors.Error)
			if !ok {
				t.Fatalf("expected *errors.Error, got %T", err)
			}
			if e.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v (%v)", e.Kind, tt.kind, err)
			}
		})
	}
}

func decodeErr[T Scalar](in []byte) error {
	_, _, err := DecodeASCII[T](in)
	return err
}

func TestScanReal(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{"1.", 2},
		{".1", 2},
		{"1.25e10 ", 7},
		{"-1e-3,", 5},
		{"5E", 1},
		{"5e+", 1},
		{"12 34", 2},
	}
	for _, tt := range tests {
		got, err := ScanReal([]byte(tt.in))
		if err != nil {
			t.Errorf("ScanReal(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ScanReal(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSkip(t *testing.T) {
	if got := string(SkipSpace([]byte(" \t\n x"))); got != "\n x" {
		t.Errorf("SkipSpace = %q", got)
	}
	if got := string(SkipWhitespace([]byte(" \t\r\n x"))); got != "x" {
		t.Errorf("SkipWhitespace = %q", got)
	}
}

func TestAppendText(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{string(AppendText(nil, float32(1))), "1"},
		{string(AppendText(nil, float32(0.1))), "0.1"},
		{string(AppendText(nil, float64(-2.5))), "-2.5"},
		{string(AppendText(nil, float64(4000))), "4000"},
		{string(AppendText(nil, float32(1e-7))), "0.0000001"},
		{string(AppendText(nil, int8(-128))), "-128"},
		{string(AppendText(nil, uint8(255))), "255"},
		{string(AppendText(nil, int64(math.MinInt64))), "-9223372036854775808"},
		{string(AppendText(nil, uint64(math.MaxUint64))), "18446744073709551615"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("AppendText = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestAppendTextReadsBack(t *testing.T) {
	floats := []float32{0, 1, -1, 0.15625, 3.4028235e38, 1.1754944e-38, 123.456, -7.25e-5}
	for _, f := range floats {
		text := AppendText(nil, f)
		got, _, err := DecodeASCII[float32](text)
		if err != nil {
			t.Errorf("read back %q: %v", text, err)
			continue
		}
		if math.Float32bits(got) != math.Float32bits(f) {
			t.Errorf("read back %q = %v, want %v", text, got, f)
		}
	}

	doubles := []float64{math.Pi, math.SmallestNonzeroFloat64 * 1e10, 1e300, -0.5}
	for _, f := range doubles {
		text := AppendText(nil, f)
		got, _, err := DecodeASCII[float64](text)
		if err != nil {
			t.Errorf("read back %q: %v", text, err)
			continue
		}
		if got != f {
			t.Errorf("read back %q = %v, want %v", text, got, f)
		}
	}
}
