package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // document to bytes
	PhaseDecode   Phase = "decode"   // bytes to document
	PhaseValidate Phase = "validate" // construction-time checks
)

// Kind categorizes the error
type Kind string

const (
	KindIncomplete   Kind = "incomplete"
	KindMalformed    Kind = "malformed"
	KindOverflow     Kind = "overflow"
	KindTypeMismatch Kind = "type_mismatch"
	KindIO           Kind = "io"
	KindFormat       Kind = "format"
	KindInvalidInput Kind = "invalid_input"
	KindUnsupported  Kind = "unsupported"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string // VTK type tag involved, if any
	Detail string
	Path   []string
	Needed int // bytes still required, only for KindIncomplete
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// PathString returns the section path joined with dots.
func (e *Error) PathString() string {
	return strings.Join(e.Path, ".")
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the section path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the VTK type tag
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Incomplete creates an error signalling that needed more bytes are required
// before decoding can make progress.
func Incomplete(phase Phase, path []string, needed int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIncomplete,
		Path:   path,
		Needed: needed,
		Detail: fmt.Sprintf("need %d more bytes", needed),
	}
}

// Malformed creates an error for input that violates the grammar
func Malformed(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMalformed,
		Path:   path,
		Detail: detail,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, targetType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Path:   path,
		Type:   targetType,
		Detail: fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:  value,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, want, got string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		Type:   got,
		Detail: fmt.Sprintf("expected %s", want),
	}
}

// IO creates an error for a failed write or read on the underlying stream.
// The cause is kept so OS error codes stay reachable through errors.As.
func IO(phase Phase, path []string, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindIO,
		Path:  path,
		Cause: cause,
	}
}

// Format creates an error for a value that cannot be rendered in the target grammar
func Format(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFormat,
		Path:   path,
		Detail: detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Path:   path,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, path []string, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Path:   path,
		Detail: what,
	}
}

// WithPath returns a copy of err with prefix prepended to its path. Errors
// that are not *Error are wrapped as KindIO failures under the prefix.
func WithPath(phase Phase, err error, prefix ...string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if !stderrors.As(err, &e) {
		return IO(phase, prefix, err)
	}
	cp := *e
	cp.Path = append(append(make([]string, 0, len(prefix)+len(e.Path)), prefix...), e.Path...)
	return &cp
}

// IsIncomplete reports whether err signals that more input is required.
func IsIncomplete(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == KindIncomplete
}

// IsMalformed reports whether err signals a grammar violation.
func IsMalformed(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == KindMalformed
}

// Needed returns how many more bytes an incomplete error asks for.
func Needed(err error) (int, bool) {
	var e *Error
	if stderrors.As(err, &e) && e.Kind == KindIncomplete {
		return e.Needed, true
	}
	return 0, false
}
