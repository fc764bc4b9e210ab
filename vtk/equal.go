package vtk

import (
	"slices"

	"github.com/wippyai/vtkio/buffer"
)

// Equal reports whether a and b describe the same document. Buffers are
// compared with buffer.Equal, so floats must match bit for bit. Extents
// compare by node counts only, since a legacy file records DIMENSIONS and
// no index offset.
func Equal(a, b *Document) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Version == b.Version &&
		a.Title == b.Title &&
		a.Encoding == b.Encoding &&
		EqualDataSet(a.DataSet, b.DataSet)
}

// EqualDataSet reports whether a and b are the same variant with equal
// contents.
func EqualDataSet(a, b DataSet) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Field:
		y := b.(*Field)
		return x.Name == y.Name && equalArrays(x.Arrays, y.Arrays)
	case *PolyData:
		y := b.(*PolyData)
		return buffer.Equal(x.Points, y.Points) &&
			equalCellsPtr(x.Vertices, y.Vertices) &&
			equalCellsPtr(x.Lines, y.Lines) &&
			equalCellsPtr(x.Polygons, y.Polygons) &&
			equalCellsPtr(x.TriangleStrips, y.TriangleStrips) &&
			EqualAttributes(x.Attributes, y.Attributes)
	case *UnstructuredGrid:
		y := b.(*UnstructuredGrid)
		return buffer.Equal(x.Points, y.Points) &&
			equalCells(x.Cells, y.Cells) &&
			slices.Equal(x.CellTypes, y.CellTypes) &&
			EqualAttributes(x.Attributes, y.Attributes)
	case *ImageData:
		y := b.(*ImageData)
		return x.Extent.Dims() == y.Extent.Dims() && x.Origin == y.Origin && x.Spacing == y.Spacing &&
			EqualAttributes(x.Attributes, y.Attributes)
	case *StructuredGrid:
		y := b.(*StructuredGrid)
		return x.Extent.Dims() == y.Extent.Dims() && buffer.Equal(x.Points, y.Points) &&
			EqualAttributes(x.Attributes, y.Attributes)
	case *RectilinearGrid:
		y := b.(*RectilinearGrid)
		return x.Extent.Dims() == y.Extent.Dims() &&
			buffer.Equal(x.X, y.X) && buffer.Equal(x.Y, y.Y) && buffer.Equal(x.Z, y.Z) &&
			EqualAttributes(x.Attributes, y.Attributes)
	}
	return false
}

// EqualAttributes compares both attribute lists in order.
func EqualAttributes(a, b Attributes) bool {
	return slices.EqualFunc(a.Point, b.Point, equalNamed) &&
		slices.EqualFunc(a.Cell, b.Cell, equalNamed)
}

func equalNamed(a, b NamedAttribute) bool {
	return a.Name == b.Name && EqualAttribute(a.Attribute, b.Attribute)
}

// EqualAttribute reports whether a and b are the same variant with equal
// contents.
func EqualAttribute(a, b Attribute) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Scalars:
		y := b.(*Scalars)
		return x.NumComp == y.NumComp && x.LookupTableName() == y.LookupTableName() &&
			buffer.Equal(x.Data, y.Data)
	case *ColorScalars:
		y := b.(*ColorScalars)
		return x.NumComp == y.NumComp && buffer.Equal(x.Data, y.Data)
	case *LookupTable:
		return buffer.Equal(x.Data, b.(*LookupTable).Data)
	case *Vectors:
		return buffer.Equal(x.Data, b.(*Vectors).Data)
	case *Normals:
		return buffer.Equal(x.Data, b.(*Normals).Data)
	case *TextureCoordinates:
		y := b.(*TextureCoordinates)
		return x.Dim == y.Dim && buffer.Equal(x.Data, y.Data)
	case *Tensors:
		return buffer.Equal(x.Data, b.(*Tensors).Data)
	case *FieldAttribute:
		return equalArrays(x.Arrays, b.(*FieldAttribute).Arrays)
	}
	return false
}

func equalArrays(a, b []FieldArray) bool {
	return slices.EqualFunc(a, b, func(x, y FieldArray) bool {
		return x.Name == y.Name && x.NumComp == y.NumComp && buffer.Equal(x.Data, y.Data)
	})
}

func equalCells(a, b Cells) bool {
	return a.NumCells == b.NumCells && slices.Equal(a.Vertices, b.Vertices)
}

func equalCellsPtr(a, b *Cells) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equalCells(*a, *b)
}
