package reader_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/vtkio/buffer"
	"github.com/wippyai/vtkio/errors"
	"github.com/wippyai/vtkio/reader"
	"github.com/wippyai/vtkio/scalar"
	"github.com/wippyai/vtkio/vtk"
)

const triangleASCII = "# vtk DataFile Version 2.0\n" +
	"Triangle example\n" +
	"ASCII\n" +
	"\n" +
	"DATASET POLYDATA\n" +
	"POINTS 3 float\n" +
	"0 0 0 1 0 0 0 1 0\n" +
	"\n" +
	"POLYGONS 1 4\n" +
	"3 0 1 2\n" +
	"\n" +
	"POINT_DATA 3\n" +
	"\n" +
	"SCALARS temp float 1\n" +
	"LOOKUP_TABLE default\n" +
	"1 2 3\n" +
	"\n" +
	"CELL_DATA 1\n" +
	"\n"

func unstructuredBinary() []byte {
	var b []byte
	b = append(b, "# vtk DataFile Version 4.2\nbin\nBINARY\n\n"...)
	b = append(b, "DATASET UNSTRUCTURED_GRID\nPOINTS 1 float\n"...)
	b = append(b, 0x3F, 0x80, 0, 0, 0x40, 0, 0, 0, 0x40, 0x40, 0, 0, '\n')
	b = append(b, "\nCELLS 1 2\n"...)
	b = append(b, 0, 0, 0, 1, 0, 0, 0, 0, '\n')
	b = append(b, "\nCELL_TYPES 1\n"...)
	b = append(b, 0, 0, 0, 1, '\n')
	b = append(b, "\nPOINT_DATA 1\n\nCELL_DATA 1\n\n"...)
	return b
}

func decode(t *testing.T, s string) *vtk.Document {
	t.Helper()
	doc, err := reader.Decode([]byte(s), reader.DefaultOptions())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return doc
}

func asError(t *testing.T, err error) *errors.Error {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error %T is not *errors.Error: %v", err, err)
	}
	return e
}

func TestDecodePolyDataASCII(t *testing.T) {
	doc := decode(t, triangleASCII)
	want := &vtk.Document{
		Version:  vtk.Version{Major: 2, Minor: 0},
		Title:    "Triangle example",
		Encoding: scalar.ASCII,
		DataSet: &vtk.PolyData{
			Points:   buffer.Of[float32](0, 0, 0, 1, 0, 0, 0, 1, 0),
			Polygons: &vtk.Cells{NumCells: 1, Vertices: []uint32{3, 0, 1, 2}},
			Attributes: vtk.Attributes{
				Point: []vtk.NamedAttribute{
					{Name: "temp", Attribute: &vtk.Scalars{NumComp: 1, Data: buffer.Of[float32](1, 2, 3)}},
				},
			},
		},
	}
	if !vtk.Equal(doc, want) {
		t.Errorf("decoded %+v, want %+v", doc, want)
	}
	s := doc.DataSet.(*vtk.PolyData).Attributes.Point[0].Attribute.(*vtk.Scalars)
	if s.LookupTable != nil {
		t.Errorf("default lookup table decoded as %q, want nil", *s.LookupTable)
	}
}

func TestDecodeUnstructuredGridBinary(t *testing.T) {
	doc, err := reader.Decode(unstructuredBinary(), reader.DefaultOptions())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Encoding != scalar.Binary || doc.Version != vtk.DefaultVersion || doc.Title != "bin" {
		t.Errorf("header = %v %v %q", doc.Encoding, doc.Version, doc.Title)
	}
	ug, ok := doc.DataSet.(*vtk.UnstructuredGrid)
	if !ok {
		t.Fatalf("dataset %T, want *vtk.UnstructuredGrid", doc.DataSet)
	}
	if !buffer.Equal(ug.Points, buffer.Of[float32](1, 2, 3)) {
		t.Errorf("points = %v", ug.Points)
	}
	if ug.Cells.NumCells != 1 || len(ug.Cells.Vertices) != 2 || ug.Cells.Vertices[0] != 1 || ug.Cells.Vertices[1] != 0 {
		t.Errorf("cells = %+v", ug.Cells)
	}
	if len(ug.CellTypes) != 1 || ug.CellTypes[0] != vtk.CellVertex {
		t.Errorf("cell types = %v", ug.CellTypes)
	}
	if !ug.Attributes.Empty() {
		t.Errorf("attributes = %+v, want empty", ug.Attributes)
	}
}

func TestDecodeByteOrder(t *testing.T) {
	header := "# vtk DataFile Version 4.2\n\nBINARY\nFIELD f 1\na 1 1 unsigned_short\n"
	tests := []struct {
		name    string
		order   scalar.ByteOrder
		payload []byte
	}{
		{"big", scalar.BigEndian, []byte{0x01, 0x02}},
		{"little", scalar.LittleEndian, []byte{0x02, 0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]byte(header), tt.payload...)
			in = append(in, '\n')
			doc, err := reader.Decode(in, reader.Options{ByteOrder: tt.order})
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			f := doc.DataSet.(*vtk.Field)
			if f.Name != "f" || len(f.Arrays) != 1 {
				t.Fatalf("field = %+v", f)
			}
			if !buffer.Equal(f.Arrays[0].Data, buffer.Of[uint16](0x0102)) {
				t.Errorf("data = %v, want [258]", f.Arrays[0].Data)
			}
		})
	}
}

func TestDecodeHeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		path string
	}{
		{"not vtk", "hello\ntitle\nASCII\n", "header.version"},
		{"bad version", "# vtk DataFile Version x.1\ntitle\nASCII\n", "header.version"},
		{"signed version", "# vtk DataFile Version -2.0\ntitle\nASCII\n", "header.version"},
		{"file type", "# vtk DataFile Version 2.0\ntitle\nTEXT\n", "header.file_type"},
		{"dataset keyword", "# vtk DataFile Version 2.0\ntitle\nASCII\nPOINTS 3 float\n", "dataset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reader.Decode([]byte(tt.in), reader.DefaultOptions())
			e := asError(t, err)
			if e.Kind != errors.KindMalformed {
				t.Errorf("kind = %s, want malformed (%v)", e.Kind, err)
			}
			if e.PathString() != tt.path {
				t.Errorf("path = %s, want %s", e.PathString(), tt.path)
			}
		})
	}
}

func TestDecodeVersionWithoutMinor(t *testing.T) {
	doc := decode(t, "# vtk DataFile Version 3\n\nASCII\nFIELD f 0\n")
	if doc.Version != (vtk.Version{Major: 3}) {
		t.Errorf("version = %v, want 3.0", doc.Version)
	}
	if doc.Title != "" {
		t.Errorf("title = %q, want empty", doc.Title)
	}
}

func TestDecodeTruncatedIsIncomplete(t *testing.T) {
	inputs := map[string][]byte{
		"ascii":  []byte(triangleASCII),
		"binary": unstructuredBinary(),
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			for n := range len(in) {
				_, err := reader.Decode(in[:n], reader.DefaultOptions())
				if err == nil {
					continue
				}
				if !errors.IsIncomplete(err) {
					t.Fatalf("prefix %d (%q): %v, want incomplete", n, in[:n], err)
				}
				if errors.IsMalformed(err) {
					t.Fatalf("prefix %d reported as both incomplete and malformed", n)
				}
			}
		})
	}
}

func TestDecodeIncompleteSections(t *testing.T) {
	tests := []struct {
		name string
		in   string
		path string
	}{
		{"no dataset", "# vtk DataFile Version 2.0\nt\nASCII\n\n", "dataset"},
		{"no points", "# vtk DataFile Version 2.0\nt\nASCII\nDATASET POLYDATA\n", "dataset.poly_data.points"},
		{"no cells", "# vtk DataFile Version 2.0\nt\nASCII\nDATASET UNSTRUCTURED_GRID\nPOINTS 0 float\n", "dataset.unstructured_grid.cells"},
		{"no dimensions", "# vtk DataFile Version 2.0\nt\nASCII\nDATASET STRUCTURED_POINTS\nORIGIN 0 0 0\n", "dataset.image_data.dimensions"},
		{"no z", "# vtk DataFile Version 2.0\nt\nASCII\nDATASET RECTILINEAR_GRID\nDIMENSIONS 1 1 1\nX_COORDINATES 1 float\n0\nY_COORDINATES 1 float\n0\n", "dataset.rectilinear_grid.z_coordinates"},
		{"short data", "# vtk DataFile Version 2.0\nt\nASCII\nDATASET POLYDATA\nPOINTS 2 float\n0 0 0 1", "dataset.poly_data.points.data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reader.Decode([]byte(tt.in), reader.DefaultOptions())
			e := asError(t, err)
			if e.Kind != errors.KindIncomplete {
				t.Errorf("kind = %s, want incomplete (%v)", e.Kind, err)
			}
			if e.PathString() != tt.path {
				t.Errorf("path = %s, want %s", e.PathString(), tt.path)
			}
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	const head = "# vtk DataFile Version 2.0\nt\nASCII\n"
	tests := []struct {
		name string
		in   string
		path string
	}{
		{"type tag", head + "DATASET POLYDATA\nPOINTS 1 flaot\n0 0 0\n", "dataset.poly_data.points.header"},
		{"count", head + "DATASET POLYDATA\nPOINTS x float\n0 0 0\n", "dataset.poly_data.points.header"},
		{"data token", head + "DATASET POLYDATA\nPOINTS 1 float\n0 abc 0\n", "dataset.poly_data.points.data"},
		{"trailing token", head + "DATASET POLYDATA\nPOINTS 1 float extra\n0 0 0\n", "dataset.poly_data.points.header"},
		{"foreign section", head + "DATASET POLYDATA\nCELL_TYPES 1\n1\n", "dataset.poly_data"},
		{"unknown section", head + "DATASET POLYDATA\nBOGUS 1\n", "dataset.poly_data"},
		{"attribute outside block", head + "DATASET POLYDATA\nPOINTS 0 float\nSCALARS s float 1\n", "dataset.poly_data"},
		{"attribute data", head + "DATASET POLYDATA\nPOINTS 1 float\n0 0 0\nPOINT_DATA 1\nVECTORS v float\n1 2 x\n", "point_data.vectors.data"},
		{"after field", head + "FIELD f 0\nPOINTS 1 float\n", "dataset.field"},
		{"array too large", head + "FIELD f 1\na 1073741824 2147483648 double\n", "dataset.field.field_array.data"},
		{"bit token", head + "DATASET POLYDATA\nPOINTS 2 float\n0 0 0 1 1 1\nPOINT_DATA 2\nSCALARS b bit\n0 2\n", "point_data.scalars.data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reader.Decode([]byte(tt.in), reader.DefaultOptions())
			e := asError(t, err)
			if e.Kind != errors.KindMalformed {
				t.Errorf("kind = %s, want malformed (%v)", e.Kind, err)
			}
			if e.PathString() != tt.path {
				t.Errorf("path = %s, want %s", e.PathString(), tt.path)
			}
		})
	}
}

func TestDecodeUnsupported(t *testing.T) {
	const head = "# vtk DataFile Version 5.1\nt\nASCII\n"
	tests := []struct {
		name string
		in   string
	}{
		{"dataset type", head + "DATASET UNSTRUCTURED_BLOB\n"},
		{"offsets layout", head + "DATASET UNSTRUCTURED_GRID\nPOINTS 0 float\nCELLS 2 6\nOFFSETS vtktypeint64\n0 3 6\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reader.Decode([]byte(tt.in), reader.DefaultOptions())
			if e := asError(t, err); e.Kind != errors.KindUnsupported {
				t.Errorf("kind = %s, want unsupported (%v)", e.Kind, err)
			}
		})
	}
}

func TestDecodeScalarsVariants(t *testing.T) {
	const head = "# vtk DataFile Version 2.0\nt\nASCII\nDATASET POLYDATA\nPOINTS 2 float\n0 0 0 1 1 1\nPOINT_DATA 2\n"
	tests := []struct {
		name    string
		body    string
		table   string
		numComp uint32
		data    buffer.Buffer
	}{
		{"default table", "SCALARS s float 1\nLOOKUP_TABLE default\n1 2\n", "", 1, buffer.Of[float32](1, 2)},
		{"named table", "SCALARS s int 1\nLOOKUP_TABLE heat\n1 2\n", "heat", 1, buffer.Of[int32](1, 2)},
		{"implicit components", "SCALARS s double\nLOOKUP_TABLE default\n1.5 2.5\n", "", 1, buffer.Of[float64](1.5, 2.5)},
		{"no table line", "SCALARS s short 2\n1 2 3 4\n", "", 2, buffer.Of[int16](1, 2, 3, 4)},
		{"bit", "SCALARS flags bit 1\nLOOKUP_TABLE default\n1 0\n", "", 1, buffer.Of[uint8](1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := decode(t, head+tt.body)
			s := doc.DataSet.(*vtk.PolyData).Attributes.Point[0].Attribute.(*vtk.Scalars)
			if tt.table == "" && s.LookupTable != nil {
				t.Errorf("lookup table = %q, want nil", *s.LookupTable)
			}
			if tt.table != "" && (s.LookupTable == nil || *s.LookupTable != tt.table) {
				t.Errorf("lookup table = %v, want %q", s.LookupTable, tt.table)
			}
			if s.NumComp != tt.numComp {
				t.Errorf("numComp = %d, want %d", s.NumComp, tt.numComp)
			}
			if !buffer.Equal(s.Data, tt.data) {
				t.Errorf("data = %v, want %v", s.Data, tt.data)
			}
		})
	}
}

func TestDecodeBinaryBits(t *testing.T) {
	in := []byte("# vtk DataFile Version 4.2\nt\nBINARY\nFIELD f 1\nmask 1 9 bit\n")
	in = append(in, 0xA5, 0x80, '\n')
	doc, err := reader.Decode(in, reader.DefaultOptions())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := doc.DataSet.(*vtk.Field).Arrays[0].Data
	if !buffer.Equal(got, buffer.Of[uint8](0xA5, 0x80)) {
		t.Errorf("bits = %v, want packed [165 128]", got)
	}
}

func TestDecodeColorsAndTables(t *testing.T) {
	t.Run("binary", func(t *testing.T) {
		in := []byte("# vtk DataFile Version 4.2\nt\nBINARY\nDATASET STRUCTURED_POINTS\nDIMENSIONS 1 1 1\nPOINT_DATA 1\n")
		in = append(in, "COLOR_SCALARS c 3\n"...)
		in = append(in, 255, 0, 128, '\n')
		in = append(in, "LOOKUP_TABLE lut 1\n"...)
		in = append(in, 1, 2, 3, 4, '\n')
		doc, err := reader.Decode(in, reader.DefaultOptions())
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		attrs := doc.DataSet.(*vtk.ImageData).Attributes.Point
		if len(attrs) != 2 {
			t.Fatalf("got %d attributes, want 2", len(attrs))
		}
		c := attrs[0].Attribute.(*vtk.ColorScalars)
		if c.NumComp != 3 || !buffer.Equal(c.Data, buffer.Of[uint8](255, 0, 128)) {
			t.Errorf("color scalars = %+v", c)
		}
		lut := attrs[1].Attribute.(*vtk.LookupTable)
		if attrs[1].Name != "lut" || !buffer.Equal(lut.Data, buffer.Of[uint8](1, 2, 3, 4)) {
			t.Errorf("lookup table %s = %v", attrs[1].Name, lut.Data)
		}
	})
	t.Run("ascii", func(t *testing.T) {
		doc := decode(t, "# vtk DataFile Version 2.0\nt\nASCII\nDATASET STRUCTURED_POINTS\nDIMENSIONS 1 1 1\n"+
			"POINT_DATA 1\nCOLOR_SCALARS c 2\n1 0.5\n")
		c := doc.DataSet.(*vtk.ImageData).Attributes.Point[0].Attribute.(*vtk.ColorScalars)
		if !buffer.Equal(c.Data, buffer.Of[float32](1, 0.5)) {
			t.Errorf("color data = %v", c.Data)
		}
	})
}

func TestDecodeImageDataDefaults(t *testing.T) {
	doc := decode(t, "# vtk DataFile Version 2.0\nt\nASCII\nDATASET STRUCTURED_POINTS\nDIMENSIONS 3 2 1\n")
	img := doc.DataSet.(*vtk.ImageData)
	if img.Extent != vtk.DimsExtent(3, 2, 1) {
		t.Errorf("extent = %v", img.Extent)
	}
	if img.Origin != [3]float64{} || img.Spacing != [3]float64{1, 1, 1} {
		t.Errorf("origin %v spacing %v", img.Origin, img.Spacing)
	}

	doc = decode(t, "# vtk DataFile Version 1.0\nt\nASCII\nDATASET STRUCTURED_POINTS\n"+
		"ASPECT_RATIO 0.5 2 4\nORIGIN -1 0 1.25\nDIMENSIONS 1 1 1\n")
	img = doc.DataSet.(*vtk.ImageData)
	if img.Spacing != [3]float64{0.5, 2, 4} || img.Origin != [3]float64{-1, 0, 1.25} {
		t.Errorf("origin %v spacing %v", img.Origin, img.Spacing)
	}
}

func TestDecodeLenientSyntax(t *testing.T) {
	in := "# VTK DataFile Version 2.0\r\ncrlf\r\nascii\r\n\r\n" +
		"dataset polydata\r\n" +
		"points 1 FLOAT\r\n" +
		"1 2 3\r\n" +
		"vertices 1 2\r\n" +
		"1 0\r\n"
	doc := decode(t, in)
	if doc.Title != "crlf" {
		t.Errorf("title = %q", doc.Title)
	}
	pd := doc.DataSet.(*vtk.PolyData)
	if !buffer.Equal(pd.Points, buffer.Of[float32](1, 2, 3)) {
		t.Errorf("points = %v", pd.Points)
	}
	if pd.Vertices == nil || pd.Vertices.NumCells != 1 {
		t.Errorf("vertices = %+v", pd.Vertices)
	}
}

func TestDecodeFieldAttribute(t *testing.T) {
	doc := decode(t, "# vtk DataFile Version 2.0\nt\nASCII\nDATASET STRUCTURED_GRID\nDIMENSIONS 1 1 1\n"+
		"POINTS 1 float\n0 0 0\nCELL_DATA 1\nFIELD extra 2\n"+
		"ids 1 1 vtkIdType\n7\n"+
		"pair 2 1 double\n0.25 0.75\n")
	sg := doc.DataSet.(*vtk.StructuredGrid)
	if len(sg.Attributes.Cell) != 1 || sg.Attributes.Cell[0].Name != "extra" {
		t.Fatalf("cell attributes = %+v", sg.Attributes.Cell)
	}
	f := sg.Attributes.Cell[0].Attribute.(*vtk.FieldAttribute)
	if len(f.Arrays) != 2 {
		t.Fatalf("arrays = %+v", f.Arrays)
	}
	if a := f.Arrays[0]; a.Name != "ids" || !buffer.Equal(a.Data, buffer.Of[int32](7)) {
		t.Errorf("array 0 = %+v", a)
	}
	if a := f.Arrays[1]; a.NumComp != 2 || a.NumTuples() != 1 || !buffer.Equal(a.Data, buffer.Of[float64](0.25, 0.75)) {
		t.Errorf("array 1 = %+v", a)
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, stderrors.New("boom") }

func TestReadIOError(t *testing.T) {
	_, err := reader.Read(errReader{}, reader.DefaultOptions())
	if e := asError(t, err); e.Kind != errors.KindIO {
		t.Errorf("kind = %s, want io", e.Kind)
	}
}

func TestRead(t *testing.T) {
	doc, err := reader.Read(strings.NewReader(triangleASCII), reader.DefaultOptions())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if doc.DataSet.Kind() != vtk.KindPolyData {
		t.Errorf("kind = %v", doc.DataSet.Kind())
	}
}

func TestDecodeHugeCountsBinary(t *testing.T) {
	const head = "# vtk DataFile Version 2.0\nt\nBINARY\n"
	tests := []struct {
		name string
		in   string
		kind errors.Kind
	}{
		{"field array", head + "FIELD f 1\na 1073741824 2147483648 double\n", errors.KindMalformed},
		{"points", head + "DATASET POLYDATA\nPOINTS 4294967295 double\n", errors.KindIncomplete},
		{"bits", head + "FIELD f 1\na 65536 65536 bit\n", errors.KindIncomplete},
		{"count product", head + "FIELD f 1\na 4294967295 4294967295 bit\n", errors.KindMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reader.Decode([]byte(tt.in), reader.DefaultOptions())
			if e := asError(t, err); e.Kind != tt.kind {
				t.Errorf("kind = %s, want %s (%v)", e.Kind, tt.kind, err)
			}
		})
	}
}

func TestSetLoggerNil(t *testing.T) {
	reader.SetLogger(zap.NewExample())
	reader.SetLogger(nil)
	if reader.Logger() == nil {
		t.Fatal("nil logger after reset")
	}
	decode(t, triangleASCII)
}

func TestDecodeLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	reader.SetLogger(zap.New(core))
	defer reader.SetLogger(nil)

	decode(t, triangleASCII)
	if _, err := reader.Decode([]byte("bad\n"), reader.DefaultOptions()); err == nil {
		t.Fatal("expected error")
	}

	done := logs.FilterMessage("decode done").All()
	if len(done) != 1 {
		t.Fatalf("got %d decode done entries, want 1", len(done))
	}
	if got := done[0].ContextMap()["dataset"]; got != "poly_data" {
		t.Errorf("dataset field = %v", got)
	}
	if done[0].LoggerName != "vtk.reader" {
		t.Errorf("logger name = %q", done[0].LoggerName)
	}
	if logs.FilterMessage("decode failed").Len() != 1 {
		t.Error("missing decode failed entry")
	}
	if logs.FilterMessage("section").Len() == 0 {
		t.Error("missing section entries")
	}
}
