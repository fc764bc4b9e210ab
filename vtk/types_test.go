package vtk

import (
	"testing"

	"github.com/wippyai/vtkio/buffer"
)

func TestExtentDims(t *testing.T) {
	e := Extent{Min: [3]int32{-1, 0, 5}, Max: [3]int32{1, 0, 9}}
	if got := e.Dims(); got != [3]uint32{3, 1, 5} {
		t.Errorf("Dims() = %v", got)
	}
	if e.NumPoints() != 15 {
		t.Errorf("NumPoints() = %d", e.NumPoints())
	}
	if !e.Valid() {
		t.Error("extent should be valid")
	}

	bad := Extent{Max: [3]int32{-1, 0, 0}}
	if bad.Valid() || bad.Dims()[0] != 0 {
		t.Errorf("decreasing axis: valid=%v dims=%v", bad.Valid(), bad.Dims())
	}

	if DimsExtent(4, 5, 6).Dims() != [3]uint32{4, 5, 6} {
		t.Error("DimsExtent does not invert Dims")
	}
}

func TestDeclaredCounts(t *testing.T) {
	tests := []struct {
		name          string
		ds            DataSet
		points, cells int
	}{
		{"field", &Field{}, 0, 0},
		{
			"poly data sums groups",
			&PolyData{
				Points:   buffer.Of[float32](0, 0, 0, 1, 1, 1),
				Vertices: &Cells{NumCells: 2},
				Lines:    &Cells{NumCells: 1},
			},
			2, 3,
		},
		{
			"unstructured",
			&UnstructuredGrid{Points: buffer.Of[float64](0, 0, 0), Cells: Cells{NumCells: 4}},
			1, 4,
		},
		{"image data has no cells", &ImageData{Extent: DimsExtent(3, 3, 3)}, 27, 0},
		{
			"structured grid always one cell",
			&StructuredGrid{Extent: DimsExtent(3, 3, 3), Points: buffer.New(make([]float32, 81))},
			27, 1,
		},
		{
			"rectilinear",
			&RectilinearGrid{X: buffer.Of[float32](0, 1, 2), Y: buffer.Of[float32](0, 1), Z: buffer.Of[float32](0)},
			6, 0,
		},
		{
			"rectilinear 3d",
			&RectilinearGrid{X: buffer.Of[float32](0, 1, 2), Y: buffer.Of[float32](0, 1), Z: buffer.Of[float32](0, 1)},
			12, 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, c := DeclaredCounts(tt.ds)
			if p != tt.points || c != tt.cells {
				t.Errorf("DeclaredCounts = (%d, %d), want (%d, %d)", p, c, tt.points, tt.cells)
			}
		})
	}
}

func TestTopologyOrder(t *testing.T) {
	pd := &PolyData{
		TriangleStrips: &Cells{NumCells: 1},
		Vertices:       &Cells{NumCells: 2},
	}
	groups := pd.Topology()
	if len(groups) != 2 {
		t.Fatalf("got %d groups", len(groups))
	}
	if groups[0].Kind != TopologyVertices || groups[1].Kind != TopologyTriangleStrips {
		t.Errorf("order = %v, %v", groups[0].Kind, groups[1].Kind)
	}

	k, ok := ParseTopology("POLYGONS")
	if !ok || k != TopologyPolygons {
		t.Errorf("ParseTopology = %v, %v", k, ok)
	}
	pd.SetTopology(k, &Cells{NumCells: 3})
	if pd.Polygons == nil || pd.Polygons.NumCells != 3 {
		t.Error("SetTopology did not store polygons")
	}
}

func TestCells(t *testing.T) {
	c := Cells{NumCells: 2, Vertices: []uint32{3, 0, 1, 2, 2, 4, 3}}
	n, exact := c.Count()
	if n != 2 || !exact {
		t.Errorf("Count() = %d, %v", n, exact)
	}
	if c.MaxIndex() != 4 {
		t.Errorf("MaxIndex() = %d", c.MaxIndex())
	}
	if (Cells{}).MaxIndex() != -1 {
		t.Error("empty connectivity should report -1")
	}
}

func TestNames(t *testing.T) {
	if CellHexahedron.String() != "hexahedron" || CellType(99).String() != "cell_type(99)" {
		t.Error("cell type names")
	}
	if CellType(99).Known() || !CellWedge.Known() {
		t.Error("Known()")
	}
	if KindImageData.Keyword() != "STRUCTURED_POINTS" || KindImageData.String() != "image_data" {
		t.Error("image data names")
	}
	if k, ok := ParseAttributeKind("TEXTURE_COORDINATES"); !ok || k != AttrTextureCoordinates {
		t.Errorf("ParseAttributeKind = %v, %v", k, ok)
	}
	if _, ok := ParseAttributeKind("GLOBAL_IDS"); ok {
		t.Error("unknown attribute keyword accepted")
	}
	if (&Scalars{}).LookupTableName() != "default" {
		t.Error("nil lookup table should be default")
	}
	if (Version{Major: 2, Minor: 0}).String() != "2.0" {
		t.Error("version string")
	}
}

func TestEqual(t *testing.T) {
	mk := func(v float32, table *string) *Document {
		return &Document{
			Version: DefaultVersion,
			Title:   "t",
			DataSet: &PolyData{
				Points: buffer.Of[float32](v, 0, 0),
				Attributes: Attributes{Point: []NamedAttribute{
					{Name: "s", Attribute: &Scalars{NumComp: 1, LookupTable: table, Data: buffer.Of[float32](1)}},
				}},
			},
		}
	}
	def := DefaultLookupTable
	if !Equal(mk(1, nil), mk(1, &def)) {
		t.Error("explicit default table should equal nil table")
	}
	if Equal(mk(1, nil), mk(2, nil)) {
		t.Error("different points compared equal")
	}
	other := "other"
	if Equal(mk(1, nil), mk(1, &other)) {
		t.Error("different tables compared equal")
	}
	if Equal(mk(1, nil), &Document{Version: DefaultVersion, Title: "t", DataSet: &Field{}}) {
		t.Error("different dataset kinds compared equal")
	}
}

func TestEqualExtentByDims(t *testing.T) {
	shifted := Extent{Min: [3]int32{1, 1, 1}, Max: [3]int32{2, 2, 2}}
	a := &ImageData{Extent: shifted, Spacing: [3]float64{1, 1, 1}}
	b := &ImageData{Extent: DimsExtent(2, 2, 2), Spacing: [3]float64{1, 1, 1}}
	if !EqualDataSet(a, b) {
		t.Errorf("%v and %v have the same dimensions", shifted, b.Extent)
	}
	b.Extent = DimsExtent(2, 2, 3)
	if EqualDataSet(a, b) {
		t.Error("different dimensions compared equal")
	}
}
