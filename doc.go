// Package vtkio reads and writes legacy VTK data files.
//
// Legacy VTK is a keyword grammar with an ASCII header and bulk numeric
// arrays stored either as decimal text or as fixed-width binary values. This
// module models a file as a vtk.Document and moves it to and from bytes.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	vtkio/           Root package with Read and Write shortcuts
//	├── scalar/      Element types and per-value ASCII/binary codecs
//	├── buffer/      Type-erased numeric arrays over scalar types
//	├── vtk/         Document model, validation and equality
//	├── writer/      Serialization through ASCII or binary sinks
//	├── reader/      Parsing back into the document model
//	├── errors/      Structured error types with section paths
//	├── testbed/     Sample documents for every dataset kind
//	└── cmd/vtkconv/ Command line inspector and converter
//
// # Quick Start
//
// Build and write a triangle:
//
//	doc, err := vtk.NewDocument("Triangle", scalar.ASCII, &vtk.PolyData{
//	    Points:   buffer.Of[float32](0, 0, 0, 1, 0, 0, 0, 1, 0),
//	    Polygons: &vtk.Cells{NumCells: 1, Vertices: []uint32{3, 0, 1, 2}},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := vtkio.Write(os.Stdout, doc, scalar.BigEndian); err != nil {
//	    log.Fatal(err)
//	}
//
// Read it back:
//
//	doc, err := vtkio.Read(f)
//
// # Byte Order
//
// Binary legacy files do not record their byte order. Read and Write use
// big-endian unless told otherwise; reader.Options and the order argument of
// Write select another.
//
// # Errors
//
// Every failure is an *errors.Error carrying the phase (encode, decode or
// validate), a kind and the dotted path of the section involved, such as
// "dataset.poly_data.points.data". Truncated input is reported as incomplete
// and never as malformed.
//
// # Thread Safety
//
// Documents are plain values with no internal locking. A sink belongs to one
// write call. The package loggers in writer and reader may be replaced at any
// time.
package vtkio
