package reader

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/vtkio/buffer"
	"github.com/wippyai/vtkio/errors"
	"github.com/wippyai/vtkio/scalar"
)

// errEnd reports that only whitespace is left where a section may start.
var errEnd = stderrors.New("end of input")

type parser struct {
	log   *zap.Logger
	src   []byte
	in    []byte
	enc   scalar.Encoding
	order scalar.ByteOrder
}

// offset returns the position of the next unread byte.
func (p *parser) offset() int {
	return len(p.src) - len(p.in)
}

func incomplete(path []string) error {
	return errors.Incomplete(errors.PhaseDecode, path, 1)
}

func malformed(path []string, format string, args ...any) error {
	return errors.Malformed(errors.PhaseDecode, path, fmt.Sprintf(format, args...))
}

// missing reports a required section absent at the end of input. More input
// could still supply it, so it is incomplete rather than malformed.
func missing(path []string, section string) error {
	e := errors.Incomplete(errors.PhaseDecode, path, 1)
	e.Detail = "input ends before " + section
	return e
}

// product multiplies two section counts, rejecting results that do not fit
// in an int.
func product(path []string, a, b int) (int, error) {
	if a != 0 && b > math.MaxInt/a {
		return 0, malformed(path, "element count %d x %d overflows", a, b)
	}
	return a * b, nil
}

func quote(s string) string {
	return strconv.Quote(s)
}

func join(prefix []string, parts ...string) []string {
	return append(append(make([]string, 0, len(prefix)+len(parts)), prefix...), parts...)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// line consumes one whole line and returns it without its terminator.
func (p *parser) line(path []string) (string, error) {
	i := bytes.IndexByte(p.in, '\n')
	if i < 0 {
		return "", incomplete(path)
	}
	s := string(p.in[:i])
	p.in = p.in[i+1:]
	return strings.TrimSuffix(s, "\r"), nil
}

// keyword skips blank lines and returns the next word upper-cased. It
// returns errEnd when nothing but whitespace remains.
func (p *parser) keyword(path []string) (string, error) {
	p.in = scalar.SkipWhitespace(p.in)
	if len(p.in) == 0 {
		return "", errEnd
	}
	w, err := p.word(path)
	return strings.ToUpper(w), err
}

// word reads the next blank-separated token on the current line. A token
// running into the end of input may be cut short and is incomplete.
func (p *parser) word(path []string) (string, error) {
	p.in = scalar.SkipSpace(p.in)
	n := 0
	for n < len(p.in) && !isSpace(p.in[n]) {
		n++
	}
	if n == len(p.in) {
		return "", incomplete(path)
	}
	if n == 0 {
		return "", malformed(path, "unexpected end of line")
	}
	w := string(p.in[:n])
	p.in = p.in[n:]
	return w, nil
}

// name reads a section or array name, which may sit on a new line.
func (p *parser) name(path []string) (string, error) {
	p.in = scalar.SkipWhitespace(p.in)
	return p.word(path)
}

func (p *parser) count(path []string) (int, error) {
	w, err := p.word(path)
	if err != nil {
		return 0, err
	}
	if n, err := scalar.ScanUnsigned([]byte(w)); err != nil || n != len(w) {
		return 0, malformed(path, "expected a count, found %s", quote(w))
	}
	v, err := scalar.ParseToken[uint32](w)
	if err != nil {
		return 0, errors.WithPath(errors.PhaseDecode, err, path...)
	}
	return int(v), nil
}

func (p *parser) real(path []string) (float64, error) {
	w, err := p.word(path)
	if err != nil {
		return 0, err
	}
	if n, err := scalar.ScanReal([]byte(w)); err != nil || n != len(w) {
		return 0, malformed(path, "expected a number, found %s", quote(w))
	}
	v, err := scalar.ParseToken[float64](w)
	if err != nil {
		return 0, errors.WithPath(errors.PhaseDecode, err, path...)
	}
	return v, nil
}

func (p *parser) triple(path []string) ([3]float64, error) {
	var v [3]float64
	for i := range v {
		f, err := p.real(path)
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, p.eol(path)
}

func (p *parser) dataType(path []string) (scalar.ElementType, error) {
	w, err := p.word(path)
	if err != nil {
		return 0, err
	}
	t, ok := scalar.ParseTag(w)
	if !ok {
		return 0, errors.New(errors.PhaseDecode, errors.KindMalformed).
			Path(path...).
			Type(w).
			Detail("unknown data type").
			Build()
	}
	return t, nil
}

// eol consumes trailing blanks and the newline that ends a keyword line.
// Binary payloads start right after it.
func (p *parser) eol(path []string) error {
	p.in = scalar.SkipSpace(p.in)
	if len(p.in) > 0 && p.in[0] == '\r' {
		p.in = p.in[1:]
	}
	if len(p.in) == 0 {
		return incomplete(path)
	}
	if p.in[0] != '\n' {
		return malformed(path, "unexpected %s at end of line", quote(string(p.in[:min(len(p.in), 16)])))
	}
	p.in = p.in[1:]
	return nil
}

// atEOL reports whether the current line has no further tokens.
func (p *parser) atEOL() bool {
	rest := scalar.SkipSpace(p.in)
	return len(rest) > 0 && (rest[0] == '\n' || rest[0] == '\r')
}

// peek reports whether the next section starts with kw. In binary mode the
// keyword must start at the current byte, since anything else is payload.
func (p *parser) peek(path []string, kw string) (bool, error) {
	rest := p.in
	if p.enc == scalar.ASCII {
		rest = scalar.SkipWhitespace(rest)
	}
	if len(rest) <= len(kw) {
		if bytes.EqualFold(rest, []byte(kw)[:len(rest)]) {
			return false, incomplete(path)
		}
		return false, nil
	}
	return bytes.EqualFold(rest[:len(kw)], []byte(kw)) && isSpace(rest[len(kw)]), nil
}

// data decodes n elements of type t from the current position.
func (p *parser) data(path []string, t scalar.ElementType, n int) (buffer.Buffer, error) {
	if size := t.Size(); size > 1 && n > math.MaxInt/size {
		return nil, malformed(path, "%d %s values overflow the addressable size", n, t.Tag())
	}
	if ce := p.log.Check(zap.DebugLevel, "section"); ce != nil {
		ce.Write(zap.Strings("path", path), zap.Stringer("type", t), zap.Int("count", n), zap.Int("offset", p.offset()))
	}
	b, rest, err := buffer.Decode(p.in, t, n, p.enc, p.order)
	if err != nil {
		return nil, errors.WithPath(errors.PhaseDecode, err, path...)
	}
	p.in = rest
	return b, nil
}
