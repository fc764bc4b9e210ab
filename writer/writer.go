package writer

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/vtkio/buffer"
	"github.com/wippyai/vtkio/errors"
	"github.com/wippyai/vtkio/scalar"
	"github.com/wippyai/vtkio/vtk"
)

// WriteVTK writes doc to s with multi-byte values in native byte order and
// returns s for chaining.
func WriteVTK[S Sink](s S, doc *vtk.Document) (S, error) {
	return s, write(s, doc, scalar.NativeEndian)
}

// WriteVTKLE writes doc to s with little-endian binary values.
func WriteVTKLE[S Sink](s S, doc *vtk.Document) (S, error) {
	return s, write(s, doc, scalar.LittleEndian)
}

// WriteVTKBE writes doc to s with big-endian binary values, the byte order
// most legacy readers assume.
func WriteVTKBE[S Sink](s S, doc *vtk.Document) (S, error) {
	return s, write(s, doc, scalar.BigEndian)
}

// Encode writes doc to w in the encoding the document declares.
func Encode(w io.Writer, doc *vtk.Document, order scalar.ByteOrder) (int64, error) {
	if doc == nil {
		return 0, errors.InvalidInput(errors.PhaseEncode, nil, "nil document")
	}
	s, err := NewSink(w, doc.Encoding)
	if err != nil {
		return 0, err
	}
	err = write(s, doc, order)
	return s.Written(), err
}

// write serializes doc in one pass. The sink may hold a truncated prefix
// when it fails.
func write(s Sink, doc *vtk.Document, order scalar.ByteOrder) error {
	if doc == nil {
		return errors.InvalidInput(errors.PhaseEncode, nil, "nil document")
	}
	e := &encoder{sink: s, order: order, version: doc.Version, log: Logger()}
	if err := e.document(doc); err != nil {
		e.log.Debug("write failed", zap.Int64("written", s.Written()), zap.Error(err))
		return err
	}
	e.log.Debug("write done",
		zap.Stringer("encoding", s.Encoding()),
		zap.Stringer("order", order),
		zap.Int64("bytes", s.Written()))
	return nil
}

type encoder struct {
	sink    Sink
	log     *zap.Logger
	order   scalar.ByteOrder
	version vtk.Version
}

// fail attaches path to a sink failure. Plain errors become io errors with
// the underlying error kept as cause.
func fail(err error, path ...string) error {
	return errors.WithPath(errors.PhaseEncode, err, path...)
}

func path(parts ...string) []string { return parts }

func join(prefix []string, parts ...string) []string {
	return append(append(make([]string, 0, len(prefix)+len(parts)), prefix...), parts...)
}

func (e *encoder) printf(p []string, format string, args ...any) error {
	if err := e.sink.writeString(fmt.Sprintf(format, args...)); err != nil {
		return fail(err, p...)
	}
	return nil
}

func (e *encoder) buf(p []string, b buffer.Buffer) error {
	if b == nil {
		return errors.InvalidInput(errors.PhaseEncode, p, "missing data")
	}
	if err := e.sink.writeBuffer(b, e.order); err != nil {
		return fail(err, p...)
	}
	return nil
}

func (e *encoder) section(p []string, count int) {
	if ce := e.log.Check(zap.DebugLevel, "section"); ce != nil {
		ce.Write(zap.Strings("path", p), zap.Int("count", count))
	}
}

func (e *encoder) document(doc *vtk.Document) error {
	if err := e.printf(path("header", "version"), "# vtk DataFile Version %d.%d\n", doc.Version.Major, doc.Version.Minor); err != nil {
		return err
	}
	if err := e.printf(path("header", "title"), "%s\n", doc.Title); err != nil {
		return err
	}
	if err := e.sink.writeFileType(); err != nil {
		return fail(err, "header", "file_type")
	}

	if doc.DataSet == nil {
		return errors.InvalidInput(errors.PhaseEncode, path("dataset"), "document has no dataset")
	}
	p := path("dataset", doc.DataSet.Kind().String())
	var err error
	switch ds := doc.DataSet.(type) {
	case *vtk.Field:
		err = e.fieldArrays(p, ds.Name, ds.Arrays)
	case *vtk.PolyData:
		err = e.polyData(p, ds)
	case *vtk.UnstructuredGrid:
		err = e.unstructuredGrid(p, ds)
	case *vtk.ImageData:
		err = e.imageData(p, ds)
	case *vtk.StructuredGrid:
		err = e.structuredGrid(p, ds)
	case *vtk.RectilinearGrid:
		err = e.rectilinearGrid(p, ds)
	default:
		err = errors.Unsupported(errors.PhaseEncode, p, fmt.Sprintf("dataset %T", ds))
	}
	if err != nil {
		return err
	}
	return e.printf(path("newline"), "\n")
}

func (e *encoder) tags(p []string, keyword string) error {
	return e.printf(join(p, "tags"), "DATASET %s\n", keyword)
}

// fieldArrays writes a FIELD header and its arrays. It serves both the FIELD
// dataset and FIELD attributes.
func (e *encoder) fieldArrays(p []string, name string, arrays []vtk.FieldArray) error {
	if err := e.printf(join(p, "header"), "FIELD %s %d\n", name, len(arrays)); err != nil {
		return err
	}
	e.section(p, len(arrays))
	ap := join(p, "field_array")
	for _, a := range arrays {
		if a.Data == nil {
			return errors.New(errors.PhaseEncode, errors.KindInvalidInput).Path(join(ap, "data")...).
				Detail("field array %s has no data", a.Name).Build()
		}
		if a.NumComp == 0 {
			return errors.New(errors.PhaseEncode, errors.KindInvalidInput).Path(join(ap, "sizes")...).
				Detail("field array %s has zero components", a.Name).Build()
		}
		if err := e.printf(join(ap, "header"), "%s %d %d %s\n",
			a.Name, a.NumComp, a.NumTuples(), a.Data.ElementType().Tag()); err != nil {
			return err
		}
		if err := e.buf(join(ap, "data"), a.Data); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) points(p []string, points buffer.Buffer) (int, error) {
	pp := join(p, "points")
	if points == nil {
		return 0, errors.InvalidInput(errors.PhaseEncode, join(pp, "data"), "missing points")
	}
	n := points.Len() / 3
	if err := e.printf(join(pp, "header"), "POINTS %d %s\n", n, points.ElementType().Tag()); err != nil {
		return 0, err
	}
	e.section(pp, n)
	return n, e.buf(join(pp, "data"), points)
}

func (e *encoder) polyData(p []string, ds *vtk.PolyData) error {
	if err := e.tags(p, "POLYDATA"); err != nil {
		return err
	}
	numPoints, err := e.points(p, ds.Points)
	if err != nil {
		return err
	}
	if err := e.printf(path("newline"), "\n"); err != nil {
		return err
	}

	numCells := 0
	for _, g := range ds.Topology() {
		gp := join(p, g.Kind.String())
		if err := e.printf(join(gp, "tags"), "%s", g.Kind.Keyword()); err != nil {
			return err
		}
		if err := e.printf(join(gp, "sizes"), " %d %d\n", g.Cells.NumCells, len(g.Cells.Vertices)); err != nil {
			return err
		}
		e.section(gp, int(g.Cells.NumCells))
		if err := e.sink.writeU32s(g.Cells.Vertices, e.order); err != nil {
			return fail(err, join(gp, "data")...)
		}
		numCells += int(g.Cells.NumCells)
	}
	return e.attributes(ds.Attributes, numPoints, numCells)
}

func (e *encoder) unstructuredGrid(p []string, ds *vtk.UnstructuredGrid) error {
	if err := e.tags(p, "UNSTRUCTURED_GRID"); err != nil {
		return err
	}
	numPoints, err := e.points(p, ds.Points)
	if err != nil {
		return err
	}

	cp := join(p, "cells")
	if err := e.printf(join(cp, "header"), "\nCELLS %d %d\n", ds.Cells.NumCells, len(ds.Cells.Vertices)); err != nil {
		return err
	}
	e.section(cp, int(ds.Cells.NumCells))
	if err := e.sink.writeU32s(ds.Cells.Vertices, e.order); err != nil {
		return fail(err, join(cp, "data")...)
	}

	tp := join(p, "cell_types")
	if err := e.printf(join(tp, "header"), "\nCELL_TYPES %d\n", len(ds.CellTypes)); err != nil {
		return err
	}
	if err := e.sink.writeCellTypes(ds.CellTypes, e.order); err != nil {
		return fail(err, join(tp, "data")...)
	}
	return e.attributes(ds.Attributes, numPoints, int(ds.Cells.NumCells))
}

func (e *encoder) dimensions(p []string, ext vtk.Extent) error {
	d := ext.Dims()
	return e.printf(join(p, "dimensions"), "DIMENSIONS %d %d %d\n", d[0], d[1], d[2])
}

func (e *encoder) imageData(p []string, ds *vtk.ImageData) error {
	if err := e.tags(p, "STRUCTURED_POINTS"); err != nil {
		return err
	}
	if err := e.dimensions(p, ds.Extent); err != nil {
		return err
	}
	if err := e.printf(join(p, "origin"), "ORIGIN %s\n", triple(ds.Origin)); err != nil {
		return err
	}

	keyword := "SPACING"
	if e.version.Major < 2 {
		keyword = "ASPECT_RATIO"
	}
	sp := join(p, "spacing")
	if err := e.printf(join(sp, "tags"), "%s", keyword); err != nil {
		return err
	}
	if err := e.printf(join(sp, "sizes"), " %s\n", triple(ds.Spacing)); err != nil {
		return err
	}
	return e.attributes(ds.Attributes, ds.Extent.NumPoints(), 0)
}

func triple(v [3]float64) string {
	b := scalar.AppendText(nil, v[0])
	b = append(b, ' ')
	b = scalar.AppendText(b, v[1])
	b = append(b, ' ')
	b = scalar.AppendText(b, v[2])
	return string(b)
}

// structuredGrid declares exactly one cell in CELL_DATA whatever the grid
// dimensions, matching the established legacy output.
func (e *encoder) structuredGrid(p []string, ds *vtk.StructuredGrid) error {
	if err := e.tags(p, "STRUCTURED_GRID"); err != nil {
		return err
	}
	if err := e.dimensions(p, ds.Extent); err != nil {
		return err
	}
	numPoints, err := e.points(p, ds.Points)
	if err != nil {
		return err
	}
	if want := ds.Extent.NumPoints(); want != numPoints {
		return errors.New(errors.PhaseEncode, errors.KindInvalidInput).
			Path(join(p, "points", "sizes")...).
			Detail("%d points for dimensions %v (%d nodes)", numPoints, ds.Extent.Dims(), want).
			Build()
	}
	return e.attributes(ds.Attributes, numPoints, 1)
}

func (e *encoder) rectilinearGrid(p []string, ds *vtk.RectilinearGrid) error {
	if err := e.tags(p, "RECTILINEAR_GRID"); err != nil {
		return err
	}
	if err := e.dimensions(p, ds.Extent); err != nil {
		return err
	}
	axes := [...]struct {
		name, keyword string
		data          buffer.Buffer
	}{
		{"x_coordinates", "X_COORDINATES", ds.X},
		{"y_coordinates", "Y_COORDINATES", ds.Y},
		{"z_coordinates", "Z_COORDINATES", ds.Z},
	}
	var n [3]int
	for i, ax := range axes {
		ap := join(p, ax.name)
		if ax.data == nil {
			return errors.InvalidInput(errors.PhaseEncode, join(ap, "data"), "missing coordinates")
		}
		n[i] = ax.data.Len()
		if err := e.printf(join(ap, "header"), "%s %d %s\n", ax.keyword, n[i], ax.data.ElementType().Tag()); err != nil {
			return err
		}
		e.section(ap, n[i])
		if err := e.buf(join(ap, "data"), ax.data); err != nil {
			return err
		}
	}
	numCells := max(n[0]-1, 0) * max(n[1]-1, 0) * max(n[2]-1, 0)
	return e.attributes(ds.Attributes, n[0]*n[1]*n[2], numCells)
}

// attributes writes both POINT_DATA and CELL_DATA blocks, even when empty.
func (e *encoder) attributes(attrs vtk.Attributes, numPoints, numCells int) error {
	if err := e.printf(path("point_data", "header"), "\nPOINT_DATA %d\n", numPoints); err != nil {
		return err
	}
	if err := e.attributeList(path("point_data"), attrs.Point); err != nil {
		return err
	}
	if err := e.printf(path("cell_data", "header"), "\nCELL_DATA %d\n", numCells); err != nil {
		return err
	}
	return e.attributeList(path("cell_data"), attrs.Cell)
}

func (e *encoder) attributeList(p []string, list []vtk.NamedAttribute) error {
	for _, na := range list {
		if err := e.printf(path("newline"), "\n"); err != nil {
			return err
		}
		if err := e.attribute(p, na); err != nil {
			return err
		}
	}
	return nil
}

func tag(b buffer.Buffer) string {
	if b == nil {
		return scalar.F32.Tag()
	}
	return b.ElementType().Tag()
}

func (e *encoder) attribute(p []string, na vtk.NamedAttribute) error {
	if na.Attribute == nil {
		return errors.InvalidInput(errors.PhaseEncode, join(p, na.Name), "missing attribute")
	}
	ap := join(p, na.Attribute.Kind().String())
	e.section(ap, 0)
	hp := join(ap, "header")
	dp := join(ap, "data")

	switch a := na.Attribute.(type) {
	case *vtk.Scalars:
		if err := e.printf(hp, "SCALARS %s %s %d\n", na.Name, tag(a.Data), a.NumComp); err != nil {
			return err
		}
		if err := e.printf(join(ap, "lookup_table"), "LOOKUP_TABLE %s\n", a.LookupTableName()); err != nil {
			return err
		}
		return e.buf(dp, a.Data)
	case *vtk.ColorScalars:
		if err := e.printf(hp, "COLOR_SCALARS %s %d\n", na.Name, a.NumComp); err != nil {
			return err
		}
		return e.buf(dp, a.Data)
	case *vtk.LookupTable:
		size := 0
		if a.Data != nil {
			size = a.Data.Len() / 4
		}
		if err := e.printf(hp, "LOOKUP_TABLE %s %d\n", na.Name, size); err != nil {
			return err
		}
		return e.buf(dp, a.Data)
	case *vtk.Vectors:
		if err := e.printf(hp, "VECTORS %s %s\n", na.Name, tag(a.Data)); err != nil {
			return err
		}
		return e.buf(dp, a.Data)
	case *vtk.Normals:
		if err := e.printf(hp, "NORMALS %s %s\n", na.Name, tag(a.Data)); err != nil {
			return err
		}
		return e.buf(dp, a.Data)
	case *vtk.TextureCoordinates:
		if err := e.printf(hp, "TEXTURE_COORDINATES %s %d %s\n", na.Name, a.Dim, tag(a.Data)); err != nil {
			return err
		}
		return e.buf(dp, a.Data)
	case *vtk.Tensors:
		if err := e.printf(hp, "TENSORS %s %s\n", na.Name, tag(a.Data)); err != nil {
			return err
		}
		return e.buf(dp, a.Data)
	case *vtk.FieldAttribute:
		return e.fieldArrays(ap, na.Name, a.Arrays)
	}
	return errors.Unsupported(errors.PhaseEncode, ap, fmt.Sprintf("attribute %T", na.Attribute))
}

// String renders doc in its declared encoding with big-endian binary values.
func String(doc *vtk.Document) (string, error) {
	var b strings.Builder
	_, err := Encode(&b, doc, scalar.BigEndian)
	return b.String(), err
}
