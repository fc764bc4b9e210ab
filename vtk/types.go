package vtk

import (
	"fmt"

	"github.com/wippyai/vtkio/buffer"
	"github.com/wippyai/vtkio/scalar"
)

// Version is the file format version written in the first header line.
type Version struct {
	Major uint8
	Minor uint8
}

// DefaultVersion is the newest legacy version whose cell layout this module
// reads and writes.
var DefaultVersion = Version{Major: 4, Minor: 2}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Document is a complete legacy VTK file.
type Document struct {
	DataSet  DataSet
	Title    string
	Version  Version
	Encoding scalar.Encoding
}

// NewDocument assembles a document at DefaultVersion and validates it.
func NewDocument(title string, enc scalar.Encoding, ds DataSet) (*Document, error) {
	doc := &Document{
		Version:  DefaultVersion,
		Title:    title,
		Encoding: enc,
		DataSet:  ds,
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// DataSetKind discriminates the dataset variants.
type DataSetKind uint8

const (
	KindField DataSetKind = iota
	KindPolyData
	KindUnstructuredGrid
	KindImageData
	KindStructuredGrid
	KindRectilinearGrid
)

var dataSetNames = [...]string{
	KindField:            "field",
	KindPolyData:         "poly_data",
	KindUnstructuredGrid: "unstructured_grid",
	KindImageData:        "image_data",
	KindStructuredGrid:   "structured_grid",
	KindRectilinearGrid:  "rectilinear_grid",
}

var dataSetKeywords = [...]string{
	KindField:            "FIELD",
	KindPolyData:         "POLYDATA",
	KindUnstructuredGrid: "UNSTRUCTURED_GRID",
	KindImageData:        "STRUCTURED_POINTS",
	KindStructuredGrid:   "STRUCTURED_GRID",
	KindRectilinearGrid:  "RECTILINEAR_GRID",
}

// String returns the snake_case name used in error paths.
func (k DataSetKind) String() string {
	if int(k) < len(dataSetNames) {
		return dataSetNames[k]
	}
	return "unknown"
}

// Keyword returns the legacy DATASET keyword. Field datasets have none and
// report FIELD.
func (k DataSetKind) Keyword() string {
	if int(k) < len(dataSetKeywords) {
		return dataSetKeywords[k]
	}
	return ""
}

// DataSet is one of *Field, *PolyData, *UnstructuredGrid, *ImageData,
// *StructuredGrid or *RectilinearGrid.
type DataSet interface {
	Kind() DataSetKind
	isDataSet()
}

// FieldArray is one named array of a FIELD block. Data holds NumComp
// components per tuple.
type FieldArray struct {
	Data    buffer.Buffer
	Name    string
	NumComp uint32
}

// NumTuples returns Data.Len() / NumComp, or 0 when NumComp is 0.
func (a FieldArray) NumTuples() int {
	if a.NumComp == 0 || a.Data == nil {
		return 0
	}
	return a.Data.Len() / int(a.NumComp)
}

// Field is a dataset made only of field arrays.
type Field struct {
	Name   string
	Arrays []FieldArray
}

// Cells is flattened connectivity: for every cell, its vertex count followed
// by that many point indices.
type Cells struct {
	Vertices []uint32
	NumCells uint32
}

// PolyData is polygonal geometry. Nil topology groups are not written.
type PolyData struct {
	Points         buffer.Buffer
	Vertices       *Cells
	Lines          *Cells
	Polygons       *Cells
	TriangleStrips *Cells
	Attributes     Attributes
}

// UnstructuredGrid is arbitrary cell geometry with one CellType per cell.
type UnstructuredGrid struct {
	Points     buffer.Buffer
	CellTypes  []CellType
	Cells      Cells
	Attributes Attributes
}

// ImageData is a regular grid defined by origin and spacing. It is written
// with the legacy STRUCTURED_POINTS keyword.
type ImageData struct {
	Attributes Attributes
	Extent     Extent
	Origin     [3]float64
	Spacing    [3]float64
}

// StructuredGrid is a curvilinear grid with one explicit point per node.
type StructuredGrid struct {
	Points     buffer.Buffer
	Attributes Attributes
	Extent     Extent
}

// RectilinearGrid is an axis-aligned grid with independent coordinates per
// axis.
type RectilinearGrid struct {
	X          buffer.Buffer
	Y          buffer.Buffer
	Z          buffer.Buffer
	Attributes Attributes
	Extent     Extent
}

func (*Field) Kind() DataSetKind            { return KindField }
func (*PolyData) Kind() DataSetKind         { return KindPolyData }
func (*UnstructuredGrid) Kind() DataSetKind { return KindUnstructuredGrid }
func (*ImageData) Kind() DataSetKind        { return KindImageData }
func (*StructuredGrid) Kind() DataSetKind   { return KindStructuredGrid }
func (*RectilinearGrid) Kind() DataSetKind  { return KindRectilinearGrid }

func (*Field) isDataSet()            {}
func (*PolyData) isDataSet()         {}
func (*UnstructuredGrid) isDataSet() {}
func (*ImageData) isDataSet()        {}
func (*StructuredGrid) isDataSet()   {}
func (*RectilinearGrid) isDataSet()  {}

// AttributesOf returns the attribute block of ds, or nil for Field datasets.
func AttributesOf(ds DataSet) *Attributes {
	switch d := ds.(type) {
	case *PolyData:
		return &d.Attributes
	case *UnstructuredGrid:
		return &d.Attributes
	case *ImageData:
		return &d.Attributes
	case *StructuredGrid:
		return &d.Attributes
	case *RectilinearGrid:
		return &d.Attributes
	}
	return nil
}

// DeclaredCounts returns the tuple counts written after POINT_DATA and
// CELL_DATA for ds.
//
// The counts follow the legacy writer exactly: image data always declares
// zero cells and structured grids always declare one cell, whatever their
// dimensions. Rectilinear grids declare the product of (axis length - 1),
// clamped at zero.
func DeclaredCounts(ds DataSet) (points, cells int) {
	switch d := ds.(type) {
	case *PolyData:
		return pointCount(d.Points), polyCellCount(d)
	case *UnstructuredGrid:
		return pointCount(d.Points), int(d.Cells.NumCells)
	case *ImageData:
		return d.Extent.NumPoints(), 0
	case *StructuredGrid:
		return pointCount(d.Points), 1
	case *RectilinearGrid:
		nx, ny, nz := bufLen(d.X), bufLen(d.Y), bufLen(d.Z)
		return nx * ny * nz, max(nx-1, 0) * max(ny-1, 0) * max(nz-1, 0)
	}
	return 0, 0
}

func bufLen(b buffer.Buffer) int {
	if b == nil {
		return 0
	}
	return b.Len()
}

func pointCount(b buffer.Buffer) int {
	return bufLen(b) / 3
}

func polyCellCount(d *PolyData) int {
	n := 0
	for _, c := range d.Topology() {
		n += int(c.Cells.NumCells)
	}
	return n
}

// TopologyKind names a PolyData connectivity group.
type TopologyKind uint8

const (
	TopologyVertices TopologyKind = iota
	TopologyLines
	TopologyPolygons
	TopologyTriangleStrips
)

var topologyKeywords = [...]string{
	TopologyVertices:       "VERTICES",
	TopologyLines:          "LINES",
	TopologyPolygons:       "POLYGONS",
	TopologyTriangleStrips: "TRIANGLE_STRIPS",
}

var topologyNames = [...]string{
	TopologyVertices:       "vertices",
	TopologyLines:          "lines",
	TopologyPolygons:       "polygons",
	TopologyTriangleStrips: "triangle_strips",
}

// Keyword returns the section keyword of the group.
func (k TopologyKind) Keyword() string {
	if int(k) < len(topologyKeywords) {
		return topologyKeywords[k]
	}
	return ""
}

func (k TopologyKind) String() string {
	if int(k) < len(topologyNames) {
		return topologyNames[k]
	}
	return "unknown"
}

// ParseTopology maps a section keyword to its group.
func ParseTopology(keyword string) (TopologyKind, bool) {
	for i, kw := range topologyKeywords {
		if kw == keyword {
			return TopologyKind(i), true
		}
	}
	return 0, false
}

// TopologyGroup is one present connectivity group of a PolyData.
type TopologyGroup struct {
	Cells *Cells
	Kind  TopologyKind
}

// Topology returns the present groups in file order: vertices, lines,
// polygons, triangle strips.
func (d *PolyData) Topology() []TopologyGroup {
	var groups []TopologyGroup
	for i, c := range [...]*Cells{d.Vertices, d.Lines, d.Polygons, d.TriangleStrips} {
		if c != nil {
			groups = append(groups, TopologyGroup{Kind: TopologyKind(i), Cells: c})
		}
	}
	return groups
}

// SetTopology stores c in the group named by k.
func (d *PolyData) SetTopology(k TopologyKind, c *Cells) {
	switch k {
	case TopologyVertices:
		d.Vertices = c
	case TopologyLines:
		d.Lines = c
	case TopologyPolygons:
		d.Polygons = c
	case TopologyTriangleStrips:
		d.TriangleStrips = c
	}
}
