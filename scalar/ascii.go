package scalar

import (
	stderrors "errors"
	"strconv"

	"github.com/wippyai/vtkio/errors"
)

// SkipSpace drops leading spaces and tabs. Newlines are kept because they
// end keyword lines.
func SkipSpace(in []byte) []byte {
	i := 0
	for i < len(in) && (in[i] == ' ' || in[i] == '\t') {
		i++
	}
	return in[i:]
}

// SkipWhitespace drops leading spaces, tabs, carriage returns and newlines.
func SkipWhitespace(in []byte) []byte {
	i := 0
	for i < len(in) && isSpace(in[i]) {
		i++
	}
	return in[i:]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func countDigits(in []byte) int {
	n := 0
	for n < len(in) && isDigit(in[n]) {
		n++
	}
	return n
}

func isSign(c byte) bool {
	return c == '+' || c == '-'
}

// errAt reports an empty remainder as incomplete and anything else as
// malformed.
func errAt(in []byte, i int, what string) error {
	if i >= len(in) {
		return errors.Incomplete(errors.PhaseDecode, nil, 1)
	}
	return errors.Malformed(errors.PhaseDecode, nil, "expected "+what+", found "+strconv.QuoteRune(rune(in[i])))
}

// ScanUnsigned returns the length of the unsigned integer token at the start
// of in.
func ScanUnsigned(in []byte) (int, error) {
	n := countDigits(in)
	if n == 0 {
		return 0, errAt(in, 0, "digit")
	}
	return n, nil
}

// ScanInteger returns the length of the signed integer token at the start of
// in.
func ScanInteger(in []byte) (int, error) {
	i := 0
	if i < len(in) && isSign(in[i]) {
		i++
	}
	n := countDigits(in[i:])
	if n == 0 {
		return 0, errAt(in, i, "digit")
	}
	return i + n, nil
}

// ScanReal returns the length of the real number token at the start of in.
// An exponent is consumed only when it is complete; "3e" scans as "3".
func ScanReal(in []byte) (int, error) {
	i := 0
	if i < len(in) && isSign(in[i]) {
		i++
	}
	intDigits := countDigits(in[i:])
	i += intDigits

	if i < len(in) && in[i] == '.' {
		frac := countDigits(in[i+1:])
		if intDigits == 0 && frac == 0 {
			return 0, errAt(in, i+1, "digit")
		}
		i += 1 + frac
	} else if intDigits == 0 {
		return 0, errAt(in, i, "digit or '.'")
	}

	if i < len(in) && (in[i] == 'e' || in[i] == 'E') {
		j := i + 1
		if j < len(in) && isSign(in[j]) {
			j++
		}
		if n := countDigits(in[j:]); n > 0 {
			i = j + n
		}
	}
	return i, nil
}

// scanToken picks the grammar for t.
func scanToken(t ElementType, in []byte) (int, error) {
	switch {
	case t.IsFloat():
		return ScanReal(in)
	case t.IsSigned():
		return ScanInteger(in)
	default:
		return ScanUnsigned(in)
	}
}

// DecodeASCII decodes one value of type T from the start of in and returns
// the unconsumed remainder. Leading whitespace is not skipped.
func DecodeASCII[T Scalar](in []byte) (T, []byte, error) {
	var zero T
	t := TypeOf[T]()
	n, err := scanToken(t, in)
	if err != nil {
		return zero, in, err
	}
	v, err := ParseToken[T](string(in[:n]))
	if err != nil {
		return zero, in, err
	}
	return v, in[n:], nil
}

// ParseToken converts a token already matched by the grammar to T.
func ParseToken[T Scalar](tok string) (T, error) {
	t := TypeOf[T]()
	switch {
	case t.IsFloat():
		f, err := strconv.ParseFloat(tok, t.Bits())
		if err != nil {
			return 0, numError(err, tok, t)
		}
		return T(f), nil
	case t.IsSigned():
		i, err := strconv.ParseInt(tok, 10, t.Bits())
		if err != nil {
			return 0, numError(err, tok, t)
		}
		return T(i), nil
	default:
		u, err := strconv.ParseUint(tok, 10, t.Bits())
		if err != nil {
			return 0, numError(err, tok, t)
		}
		return T(u), nil
	}
}

func numError(err error, tok string, t ElementType) error {
	if stderrors.Is(err, strconv.ErrRange) {
		return errors.Overflow(errors.PhaseDecode, nil, tok, t.Tag())
	}
	return errors.Malformed(errors.PhaseDecode, nil, "invalid "+t.Tag()+" token "+strconv.Quote(tok))
}

// AppendText appends the canonical ASCII rendering of v. Floats use the
// shortest representation that reads back to the same value, without an
// exponent.
func AppendText[T Scalar](dst []byte, v T) []byte {
	switch x := any(v).(type) {
	case float32:
		return strconv.AppendFloat(dst, float64(x), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(dst, x, 'f', -1, 64)
	}
	if TypeOf[T]().IsSigned() {
		return strconv.AppendInt(dst, int64(v), 10)
	}
	return strconv.AppendUint(dst, uint64(v), 10)
}
