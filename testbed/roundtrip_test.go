package testbed

import (
	"bytes"
	"testing"

	"github.com/wippyai/vtkio/errors"
	"github.com/wippyai/vtkio/reader"
	"github.com/wippyai/vtkio/scalar"
	"github.com/wippyai/vtkio/vtk"
	"github.com/wippyai/vtkio/writer"
)

var encodings = []scalar.Encoding{scalar.ASCII, scalar.Binary}

func encode(t *testing.T, doc *vtk.Document, order scalar.ByteOrder) []byte {
	t.Helper()
	var b bytes.Buffer
	n, err := writer.Encode(&b, doc, order)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if n != int64(b.Len()) {
		t.Fatalf("encode reported %d bytes, wrote %d", n, b.Len())
	}
	return b.Bytes()
}

func TestSamplesValidate(t *testing.T) {
	for _, enc := range encodings {
		for _, doc := range Samples(enc) {
			t.Run(enc.String()+"/"+doc.DataSet.Kind().String(), func(t *testing.T) {
				if err := doc.Validate(); err != nil {
					t.Fatalf("validate: %v", err)
				}
			})
		}
	}
}

func TestRoundTrip(t *testing.T) {
	orders := []scalar.ByteOrder{scalar.BigEndian, scalar.LittleEndian, scalar.NativeEndian}
	for _, enc := range encodings {
		for _, order := range orders {
			for _, kind := range Kinds() {
				name := enc.String() + "/" + order.String() + "/" + kind.String()
				t.Run(name, func(t *testing.T) {
					doc := Sample(kind, enc)
					data := encode(t, doc, order)

					got, err := reader.Decode(data, reader.Options{ByteOrder: order})
					if err != nil {
						t.Fatalf("decode: %v\n%q", err, data)
					}
					if !vtk.Equal(got, doc) {
						t.Errorf("round trip changed the document\n%q", data)
					}
				})
			}
		}
	}
}

func TestRoundTripStable(t *testing.T) {
	for _, enc := range encodings {
		for _, kind := range Kinds() {
			t.Run(enc.String()+"/"+kind.String(), func(t *testing.T) {
				first := encode(t, Sample(kind, enc), scalar.LittleEndian)
				doc, err := reader.Decode(first, reader.Options{ByteOrder: scalar.LittleEndian})
				if err != nil {
					t.Fatalf("decode: %v", err)
				}
				if second := encode(t, doc, scalar.LittleEndian); !bytes.Equal(first, second) {
					t.Errorf("re-encoding differs\nfirst:  %q\nsecond: %q", first, second)
				}
			})
		}
	}
}

func TestRoundTripOrderMismatch(t *testing.T) {
	doc := Sample(vtk.KindField, scalar.Binary)
	data := encode(t, doc, scalar.LittleEndian)

	got, err := reader.Decode(data, reader.Options{ByteOrder: scalar.BigEndian})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if vtk.Equal(got, doc) {
		t.Error("little-endian payload read as big-endian should not match")
	}
}

func TestASCIIIgnoresOrder(t *testing.T) {
	for _, kind := range Kinds() {
		doc := Sample(kind, scalar.ASCII)
		be := encode(t, doc, scalar.BigEndian)
		le := encode(t, doc, scalar.LittleEndian)
		if !bytes.Equal(be, le) {
			t.Errorf("%s: ASCII output depends on byte order", kind)
		}
	}
}

func TestTruncatedSamplesAreIncomplete(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			data := encode(t, Sample(kind, scalar.Binary), scalar.BigEndian)
			// Cuts into the final section.
			_, err := reader.Decode(data[:len(data)-3], reader.DefaultOptions())
			if !errors.IsIncomplete(err) {
				t.Errorf("truncated %s: %v, want incomplete", kind, err)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("mesh"); ok {
		t.Error("ParseKind accepted an unknown name")
	}
	if Sample(vtk.DataSetKind(99), scalar.ASCII) != nil {
		t.Error("Sample returned a document for an unknown kind")
	}
}

func shift(e vtk.Extent, by int32) vtk.Extent {
	for i := range e.Min {
		e.Min[i] += by
		e.Max[i] += by
	}
	return e
}

func TestRoundTripShiftedExtent(t *testing.T) {
	for _, kind := range []vtk.DataSetKind{vtk.KindImageData, vtk.KindStructuredGrid, vtk.KindRectilinearGrid} {
		for _, enc := range encodings {
			t.Run(enc.String()+"/"+kind.String(), func(t *testing.T) {
				doc := Sample(kind, enc)
				switch ds := doc.DataSet.(type) {
				case *vtk.ImageData:
					ds.Extent = shift(ds.Extent, 3)
				case *vtk.StructuredGrid:
					ds.Extent = shift(ds.Extent, -2)
				case *vtk.RectilinearGrid:
					ds.Extent = shift(ds.Extent, 1)
				}
				if err := doc.Validate(); err != nil {
					t.Fatalf("validate: %v", err)
				}
				got, err := reader.Decode(encode(t, doc, scalar.BigEndian), reader.DefaultOptions())
				if err != nil {
					t.Fatalf("decode: %v", err)
				}
				if !vtk.Equal(got, doc) {
					t.Error("round trip changed the document")
				}
			})
		}
	}
}
