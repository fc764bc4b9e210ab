package writer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/wippyai/vtkio/buffer"
	"github.com/wippyai/vtkio/errors"
	"github.com/wippyai/vtkio/scalar"
	"github.com/wippyai/vtkio/vtk"
)

// Sink receives the serialized file. BinarySink and TextSink are the only
// implementations; they share the section sequencing in this package and
// differ only in how bulk data is laid out.
type Sink interface {
	// Encoding reports the body format the sink produces.
	Encoding() scalar.Encoding

	// Written returns the number of bytes passed to the underlying writer.
	Written() int64

	writeString(s string) error
	writeFileType() error
	writeCellTypes(types []vtk.CellType, order scalar.ByteOrder) error
	writeU32s(vs []uint32, order scalar.ByteOrder) error
	writeBuffer(b buffer.Buffer, order scalar.ByteOrder) error
}

// out counts bytes and keeps a scratch slice for encoding.
type out struct {
	w       io.Writer
	scratch []byte
	n       int64
}

func (o *out) write(p []byte) error {
	n, err := o.w.Write(p)
	o.n += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return err
}

func (o *out) writeString(s string) error {
	n, err := io.WriteString(o.w, s)
	o.n += int64(n)
	if err == nil && n < len(s) {
		err = io.ErrShortWrite
	}
	return err
}

// Written returns the number of bytes passed to the underlying writer.
func (o *out) Written() int64 { return o.n }

// BinarySink writes bulk data as fixed-width elements followed by a newline.
type BinarySink struct {
	out
}

// NewBinarySink returns a sink writing binary bodies to w.
func NewBinarySink(w io.Writer) *BinarySink {
	return &BinarySink{out: out{w: w}}
}

func (*BinarySink) Encoding() scalar.Encoding { return scalar.Binary }

func (s *BinarySink) writeFileType() error {
	return s.writeString("BINARY\n\n")
}

func (s *BinarySink) writeCellTypes(types []vtk.CellType, order scalar.ByteOrder) error {
	b := s.scratch[:0]
	for _, t := range types {
		b = scalar.AppendBinary(b, int32(t), order)
	}
	b = append(b, '\n')
	s.scratch = b
	return s.write(b)
}

func (s *BinarySink) writeU32s(vs []uint32, order scalar.ByteOrder) error {
	return s.writeBuffer(buffer.New(vs), order)
}

func (s *BinarySink) writeBuffer(b buffer.Buffer, order scalar.ByteOrder) error {
	p := b.AppendBinary(s.scratch[:0], order)
	p = append(p, '\n')
	s.scratch = p
	return s.write(p)
}

// TextSink writes bulk data as space-separated decimal tokens.
type TextSink struct {
	out
}

// NewTextSink returns a sink writing ASCII bodies to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{out: out{w: w}}
}

func (*TextSink) Encoding() scalar.Encoding { return scalar.ASCII }

func (s *TextSink) writeFileType() error {
	return s.writeString("ASCII\n\n")
}

// writeCellTypes puts one code per line and ends with a blank line.
func (s *TextSink) writeCellTypes(types []vtk.CellType, _ scalar.ByteOrder) error {
	b := s.scratch[:0]
	for _, t := range types {
		b = strconv.AppendInt(b, int64(t), 10)
		b = append(b, '\n')
	}
	b = append(b, '\n')
	s.scratch = b
	return s.write(b)
}

func (s *TextSink) writeU32s(vs []uint32, order scalar.ByteOrder) error {
	return s.writeBuffer(buffer.New(vs), order)
}

// writeBuffer rejects NaN and infinities, which the ASCII grammar cannot
// express.
func (s *TextSink) writeBuffer(b buffer.Buffer, _ scalar.ByteOrder) error {
	if i := buffer.NonFinite(b); i >= 0 {
		return errors.New(errors.PhaseEncode, errors.KindFormat).
			Type(b.ElementType().Tag()).
			Value(i).
			Detail("element %d is not finite", i).
			Build()
	}
	p := b.AppendText(s.scratch[:0])
	p = append(p, '\n')
	s.scratch = p
	return s.write(p)
}

// NewSink returns the sink producing enc bodies.
func NewSink(w io.Writer, enc scalar.Encoding) (Sink, error) {
	switch enc {
	case scalar.ASCII:
		return NewTextSink(w), nil
	case scalar.Binary:
		return NewBinarySink(w), nil
	}
	return nil, errors.InvalidInput(errors.PhaseEncode, []string{"header", "file_type"}, fmt.Sprintf("unknown encoding %d", enc))
}
