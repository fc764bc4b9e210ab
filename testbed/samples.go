// Package testbed provides sample documents for every dataset kind and every
// attribute kind. Round-trip tests and the vtkconv -sample flag share them.
package testbed

import (
	"github.com/wippyai/vtkio/buffer"
	"github.com/wippyai/vtkio/scalar"
	"github.com/wippyai/vtkio/vtk"
)

// Kinds lists every dataset kind in declaration order.
func Kinds() []vtk.DataSetKind {
	return []vtk.DataSetKind{
		vtk.KindField,
		vtk.KindPolyData,
		vtk.KindUnstructuredGrid,
		vtk.KindImageData,
		vtk.KindStructuredGrid,
		vtk.KindRectilinearGrid,
	}
}

// ParseKind maps a snake_case dataset name such as "poly_data" to its kind.
func ParseKind(name string) (vtk.DataSetKind, bool) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Sample returns a valid document of the given kind whose color data matches
// enc. It returns nil for an unknown kind.
func Sample(kind vtk.DataSetKind, enc scalar.Encoding) *vtk.Document {
	var ds vtk.DataSet
	switch kind {
	case vtk.KindField:
		ds = fieldSample()
	case vtk.KindPolyData:
		ds = polyDataSample(enc)
	case vtk.KindUnstructuredGrid:
		ds = unstructuredSample(enc)
	case vtk.KindImageData:
		ds = imageSample()
	case vtk.KindStructuredGrid:
		ds = structuredSample()
	case vtk.KindRectilinearGrid:
		ds = rectilinearSample()
	default:
		return nil
	}
	return &vtk.Document{
		Version:  vtk.DefaultVersion,
		Title:    kind.String() + " sample",
		Encoding: enc,
		DataSet:  ds,
	}
}

// Samples returns one document per kind.
func Samples(enc scalar.Encoding) []*vtk.Document {
	kinds := Kinds()
	docs := make([]*vtk.Document, len(kinds))
	for i, k := range kinds {
		docs[i] = Sample(k, enc)
	}
	return docs
}

// colors returns n color components spread over [0, 1], stored the way enc
// requires.
func colors(enc scalar.Encoding, n int) buffer.Buffer {
	if enc == scalar.Binary {
		v := make([]uint8, n)
		for i := range v {
			v[i] = uint8(i * 255 / max(n-1, 1))
		}
		return buffer.New(v)
	}
	v := make([]float32, n)
	for i := range v {
		v[i] = float32(i) / float32(max(n-1, 1))
	}
	return buffer.New(v)
}

func ramp[T scalar.Scalar](n int, start, step T) buffer.Buffer {
	v := make([]T, n)
	for i := range v {
		v[i] = start + T(i)*step
	}
	return buffer.New(v)
}

// fieldSample holds one array of every storable element type.
func fieldSample() *vtk.Field {
	return &vtk.Field{
		Name: "everything",
		Arrays: []vtk.FieldArray{
			{Name: "u8", NumComp: 1, Data: buffer.Of[uint8](0, 1, 255)},
			{Name: "i8", NumComp: 1, Data: buffer.Of[int8](-128, 0, 127)},
			{Name: "u16", NumComp: 3, Data: buffer.Of[uint16](0, 1, 65535)},
			{Name: "i16", NumComp: 1, Data: buffer.Of[int16](-32768, 32767)},
			{Name: "u32", NumComp: 2, Data: buffer.Of[uint32](0, 1, 2, 4294967295)},
			{Name: "i32", NumComp: 1, Data: buffer.Of[int32](-2147483648, 2147483647)},
			{Name: "u64", NumComp: 1, Data: buffer.Of[uint64](18446744073709551615)},
			{Name: "i64", NumComp: 1, Data: buffer.Of[int64](-9223372036854775808, 9223372036854775807)},
			{Name: "f32", NumComp: 2, Data: buffer.Of[float32](0.1, -2.5, 3e-5, 1e20)},
			{Name: "f64", NumComp: 1, Data: buffer.Of[float64](0.1, -1e-300, 6.02214076e23)},
		},
	}
}

// polyDataSample is a unit quad carrying all four topology groups and every
// attribute kind in POINT_DATA.
func polyDataSample(enc scalar.Encoding) *vtk.PolyData {
	table := "lut"
	return &vtk.PolyData{
		Points:         buffer.Of[float32](0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0),
		Vertices:       &vtk.Cells{NumCells: 1, Vertices: []uint32{1, 0}},
		Lines:          &vtk.Cells{NumCells: 1, Vertices: []uint32{2, 0, 1}},
		Polygons:       &vtk.Cells{NumCells: 1, Vertices: []uint32{4, 0, 1, 2, 3}},
		TriangleStrips: &vtk.Cells{NumCells: 1, Vertices: []uint32{4, 0, 1, 3, 2}},
		Attributes: vtk.Attributes{
			Point: []vtk.NamedAttribute{
				{Name: "temperature", Attribute: &vtk.Scalars{NumComp: 1, LookupTable: &table, Data: buffer.Of[float64](0.5, 1.25, -3, 42)}},
				{Name: "rgb", Attribute: &vtk.ColorScalars{NumComp: 3, Data: colors(enc, 12)}},
				{Name: "lut", Attribute: &vtk.LookupTable{Data: colors(enc, 8)}},
				{Name: "velocity", Attribute: &vtk.Vectors{Data: ramp[float32](12, -1, 0.5)}},
				{Name: "normals", Attribute: &vtk.Normals{Data: buffer.Of[float32](0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1)}},
				{Name: "uv", Attribute: &vtk.TextureCoordinates{Dim: 2, Data: buffer.Of[float32](0, 0, 1, 0, 1, 1, 0, 1)}},
				{Name: "stress", Attribute: &vtk.Tensors{Data: ramp[float64](36, 0, 0.125)}},
				{Name: "extra", Attribute: &vtk.FieldAttribute{Arrays: []vtk.FieldArray{
					{Name: "ids", NumComp: 1, Data: buffer.Of[int64](10, 11, 12, 13)},
					{Name: "pairs", NumComp: 2, Data: buffer.Of[uint16](1, 2, 3, 4, 5, 6, 7, 8)},
				}}},
			},
			Cell: []vtk.NamedAttribute{
				{Name: "cell_id", Attribute: &vtk.Scalars{NumComp: 1, Data: buffer.Of[int32](0, 1, 2, 3)}},
				{Name: "flow", Attribute: &vtk.Vectors{Data: ramp[float64](12, 1, 1)}},
			},
		},
	}
}

// unstructuredSample mixes a tetrahedron, a triangle and a vertex.
func unstructuredSample(enc scalar.Encoding) *vtk.UnstructuredGrid {
	return &vtk.UnstructuredGrid{
		Points: buffer.Of[float64](0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1),
		Cells: vtk.Cells{NumCells: 3, Vertices: []uint32{
			4, 0, 1, 2, 3,
			3, 0, 1, 2,
			1, 3,
		}},
		CellTypes: []vtk.CellType{vtk.CellTetra, vtk.CellTriangle, vtk.CellVertex},
		Attributes: vtk.Attributes{
			Point: []vtk.NamedAttribute{
				{Name: "level", Attribute: &vtk.Scalars{NumComp: 1, Data: buffer.Of[uint16](1, 2, 3, 4)}},
			},
			Cell: []vtk.NamedAttribute{
				{Name: "pair", Attribute: &vtk.Scalars{NumComp: 2, Data: buffer.Of[int8](-1, 1, -2, 2, -3, 3)}},
				{Name: "shade", Attribute: &vtk.ColorScalars{NumComp: 1, Data: colors(enc, 3)}},
			},
		},
	}
}

// imageSample is a 3x2x2 lattice. ImageData declares no cells, so only
// point attributes are present.
func imageSample() *vtk.ImageData {
	return &vtk.ImageData{
		Extent:  vtk.DimsExtent(3, 2, 2),
		Origin:  [3]float64{0.5, -1, 2},
		Spacing: [3]float64{0.25, 0.5, 1},
		Attributes: vtk.Attributes{
			Point: []vtk.NamedAttribute{
				{Name: "density", Attribute: &vtk.Scalars{NumComp: 1, Data: ramp[uint8](12, 0, 20)}},
				{Name: "gradient", Attribute: &vtk.Vectors{Data: ramp[float32](36, 0, 0.25)}},
			},
		},
	}
}

// structuredSample is a 2x2x1 curvilinear sheet. Its single CELL_DATA tuple
// follows the legacy one-cell convention.
func structuredSample() *vtk.StructuredGrid {
	return &vtk.StructuredGrid{
		Extent: vtk.DimsExtent(2, 2, 1),
		Points: buffer.Of[float32](0, 0, 0, 1, 0, 0.1, 0, 1, 0.2, 1, 1, 0.3),
		Attributes: vtk.Attributes{
			Point: []vtk.NamedAttribute{
				{Name: "normals", Attribute: &vtk.Normals{Data: ramp[float32](12, 0, 0.5)}},
			},
			Cell: []vtk.NamedAttribute{
				{Name: "pressure", Attribute: &vtk.Scalars{NumComp: 1, Data: buffer.Of[float32](7.5)}},
			},
		},
	}
}

// rectilinearSample uses a different element type on each axis.
func rectilinearSample() *vtk.RectilinearGrid {
	return &vtk.RectilinearGrid{
		Extent: vtk.DimsExtent(3, 2, 2),
		X:      buffer.Of[float64](0, 0.5, 2),
		Y:      buffer.Of[float32](-1, 1),
		Z:      buffer.Of[int32](0, 10),
		Attributes: vtk.Attributes{
			Point: []vtk.NamedAttribute{
				{Name: "index", Attribute: &vtk.Scalars{NumComp: 1, Data: ramp[int64](12, -6, 1)}},
			},
			Cell: []vtk.NamedAttribute{
				{Name: "owner", Attribute: &vtk.Scalars{NumComp: 1, Data: buffer.Of[uint32](1, 2)}},
				{Name: "coords", Attribute: &vtk.TextureCoordinates{Dim: 3, Data: ramp[float32](6, 0, 1)}},
			},
		},
	}
}
