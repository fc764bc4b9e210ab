package vtkio

import (
	"io"

	"github.com/wippyai/vtkio/errors"
	"github.com/wippyai/vtkio/reader"
	"github.com/wippyai/vtkio/scalar"
	"github.com/wippyai/vtkio/vtk"
	"github.com/wippyai/vtkio/writer"
)

// Read decodes a legacy VTK file from r, assuming big-endian binary data.
func Read(r io.Reader) (*vtk.Document, error) {
	return reader.Read(r, reader.DefaultOptions())
}

// ReadOrder decodes a legacy VTK file whose binary data uses order.
func ReadOrder(r io.Reader, order scalar.ByteOrder) (*vtk.Document, error) {
	return reader.Read(r, reader.Options{ByteOrder: order})
}

// Write validates doc and writes it to w in its declared encoding. It returns
// the number of bytes written.
func Write(w io.Writer, doc *vtk.Document, order scalar.ByteOrder) (int64, error) {
	if doc == nil {
		return 0, errors.InvalidInput(errors.PhaseValidate, nil, "nil document")
	}
	if err := doc.Validate(); err != nil {
		return 0, err
	}
	return writer.Encode(w, doc, order)
}
