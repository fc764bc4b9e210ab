package vtk

import "strconv"

// CellType is the legacy numeric cell type code written in CELL_TYPES.
type CellType int32

const (
	CellVertex              CellType = 1
	CellPolyVertex          CellType = 2
	CellLine                CellType = 3
	CellPolyLine            CellType = 4
	CellTriangle            CellType = 5
	CellTriangleStrip       CellType = 6
	CellPolygon             CellType = 7
	CellPixel               CellType = 8
	CellQuad                CellType = 9
	CellTetra               CellType = 10
	CellVoxel               CellType = 11
	CellHexahedron          CellType = 12
	CellWedge               CellType = 13
	CellPyramid             CellType = 14
	CellQuadraticEdge       CellType = 21
	CellQuadraticTriangle   CellType = 22
	CellQuadraticQuad       CellType = 23
	CellQuadraticTetra      CellType = 24
	CellQuadraticHexahedron CellType = 25
)

var cellTypeNames = map[CellType]string{
	CellVertex:              "vertex",
	CellPolyVertex:          "poly_vertex",
	CellLine:                "line",
	CellPolyLine:            "poly_line",
	CellTriangle:            "triangle",
	CellTriangleStrip:       "triangle_strip",
	CellPolygon:             "polygon",
	CellPixel:               "pixel",
	CellQuad:                "quad",
	CellTetra:               "tetra",
	CellVoxel:               "voxel",
	CellHexahedron:          "hexahedron",
	CellWedge:               "wedge",
	CellPyramid:             "pyramid",
	CellQuadraticEdge:       "quadratic_edge",
	CellQuadraticTriangle:   "quadratic_triangle",
	CellQuadraticQuad:       "quadratic_quad",
	CellQuadraticTetra:      "quadratic_tetra",
	CellQuadraticHexahedron: "quadratic_hexahedron",
}

// String returns the cell type name, or the bare code for codes without a
// name.
func (c CellType) String() string {
	if name, ok := cellTypeNames[c]; ok {
		return name
	}
	return "cell_type(" + strconv.Itoa(int(c)) + ")"
}

// Known reports whether c is one of the named codes.
func (c CellType) Known() bool {
	_, ok := cellTypeNames[c]
	return ok
}

// Count walks the connectivity and returns the number of cells it encodes
// and whether it was consumed exactly.
func (c Cells) Count() (int, bool) {
	n := 0
	for i := 0; i < len(c.Vertices); {
		i += 1 + int(c.Vertices[i])
		if i > len(c.Vertices) {
			return n, false
		}
		n++
	}
	return n, true
}

// MaxIndex returns the largest point index referenced, or -1 when there is
// none. The connectivity must be well formed.
func (c Cells) MaxIndex() int {
	best := -1
	for i := 0; i < len(c.Vertices); {
		size := int(c.Vertices[i])
		for _, id := range c.Vertices[i+1 : min(i+1+size, len(c.Vertices))] {
			best = max(best, int(id))
		}
		i += 1 + size
	}
	return best
}
