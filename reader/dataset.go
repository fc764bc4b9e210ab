package reader

import (
	"strings"

	"github.com/wippyai/vtkio/buffer"
	"github.com/wippyai/vtkio/errors"
	"github.com/wippyai/vtkio/scalar"
	"github.com/wippyai/vtkio/vtk"
)

// geometry collects the sections of one DATASET block. Sections may appear
// in any order; build checks that the required ones were seen.
type geometry struct {
	points    buffer.Buffer
	coords    [3]buffer.Buffer
	cells     *vtk.Cells
	topology  [4]*vtk.Cells
	cellTypes []vtk.CellType
	dims      *[3]uint32
	attrs     vtk.Attributes
	origin    [3]float64
	spacing   [3]float64
	kind      vtk.DataSetKind
}

// block tracks the attribute list that POINT_DATA or CELL_DATA opened.
type block struct {
	list   *[]vtk.NamedAttribute
	name   string
	tuples int
}

var coordKeywords = [...]string{"X_COORDINATES", "Y_COORDINATES", "Z_COORDINATES"}

func parseDataSetKind(kw string) (vtk.DataSetKind, bool) {
	for _, k := range []vtk.DataSetKind{
		vtk.KindPolyData,
		vtk.KindUnstructuredGrid,
		vtk.KindImageData,
		vtk.KindStructuredGrid,
		vtk.KindRectilinearGrid,
	} {
		if k.Keyword() == kw {
			return k, true
		}
	}
	return 0, false
}

// accepts reports whether a dataset of kind k may carry the section kw.
func accepts(k vtk.DataSetKind, kw string) bool {
	switch kw {
	case "POINTS":
		return k == vtk.KindPolyData || k == vtk.KindUnstructuredGrid || k == vtk.KindStructuredGrid
	case "VERTICES", "LINES", "POLYGONS", "TRIANGLE_STRIPS":
		return k == vtk.KindPolyData
	case "CELLS", "CELL_TYPES":
		return k == vtk.KindUnstructuredGrid
	case "DIMENSIONS":
		return k == vtk.KindImageData || k == vtk.KindStructuredGrid || k == vtk.KindRectilinearGrid
	case "ORIGIN", "SPACING", "ASPECT_RATIO":
		return k == vtk.KindImageData
	case "X_COORDINATES", "Y_COORDINATES", "Z_COORDINATES":
		return k == vtk.KindRectilinearGrid
	case "POINT_DATA", "CELL_DATA":
		return true
	}
	return false
}

func (p *parser) dataset() (vtk.DataSet, error) {
	path := []string{"dataset"}
	w, err := p.word(path)
	if err != nil {
		return nil, err
	}
	kind, ok := parseDataSetKind(strings.ToUpper(w))
	if !ok {
		return nil, errors.Unsupported(errors.PhaseDecode, path, "dataset type "+quote(w))
	}
	if err := p.eol(path); err != nil {
		return nil, err
	}

	g := &geometry{kind: kind, spacing: [3]float64{1, 1, 1}}
	base := []string{"dataset", kind.String()}
	var cur *block
	for {
		kw, err := p.keyword(base)
		if err == errEnd {
			break
		}
		if err != nil {
			return nil, err
		}

		if ak, ok := vtk.ParseAttributeKind(kw); ok && cur != nil {
			na, err := p.attribute(ak, cur.name, cur.tuples)
			if err != nil {
				return nil, err
			}
			*cur.list = append(*cur.list, na)
			continue
		}
		if !accepts(kind, kw) {
			return nil, malformed(base, "unexpected section %s in %s", quote(kw), kind.Keyword())
		}

		switch kw {
		case "POINT_DATA", "CELL_DATA":
			b := &block{name: strings.ToLower(kw), list: &g.attrs.Point}
			if kw == "CELL_DATA" {
				b.list = &g.attrs.Cell
			}
			hp := []string{b.name, "header"}
			if b.tuples, err = p.count(hp); err != nil {
				return nil, err
			}
			if err := p.eol(hp); err != nil {
				return nil, err
			}
			cur = b
		case "POINTS":
			g.points, err = p.points(join(base, "points"))
		case "CELLS":
			g.cells, err = p.cellList(join(base, "cells"))
		case "CELL_TYPES":
			g.cellTypes, err = p.cellTypes(join(base, "cell_types"))
		case "DIMENSIONS":
			g.dims, err = p.dimensions(join(base, "dimensions"))
		case "ORIGIN":
			g.origin, err = p.triple(join(base, "origin"))
		case "SPACING", "ASPECT_RATIO":
			g.spacing, err = p.triple(join(base, "spacing"))
		case "X_COORDINATES", "Y_COORDINATES", "Z_COORDINATES":
			i := strings.IndexByte("XYZ", kw[0])
			g.coords[i], err = p.coordinates(join(base, strings.ToLower(kw)))
		default:
			tk, _ := vtk.ParseTopology(kw)
			g.topology[tk], err = p.cellList(join(base, tk.String()))
		}
		if err != nil {
			return nil, err
		}
	}
	return g.build(base)
}

// points reads "POINTS n type" and 3n values.
func (p *parser) points(path []string) (buffer.Buffer, error) {
	hp := join(path, "header")
	n, err := p.count(hp)
	if err != nil {
		return nil, err
	}
	t, err := p.dataType(hp)
	if err != nil {
		return nil, err
	}
	if err := p.eol(hp); err != nil {
		return nil, err
	}
	size, err := product(hp, 3, n)
	if err != nil {
		return nil, err
	}
	return p.data(join(path, "data"), t, size)
}

// cellList reads "KEYWORD n size" followed by size unsigned indices. The
// split OFFSETS/CONNECTIVITY layout of newer files is rejected.
func (p *parser) cellList(path []string) (*vtk.Cells, error) {
	hp := join(path, "sizes")
	n, err := p.count(hp)
	if err != nil {
		return nil, err
	}
	size, err := p.count(hp)
	if err != nil {
		return nil, err
	}
	if err := p.eol(hp); err != nil {
		return nil, err
	}
	dp := join(path, "data")
	offsets, err := p.peek(dp, "OFFSETS")
	if err != nil {
		return nil, err
	}
	if offsets {
		return nil, errors.Unsupported(errors.PhaseDecode, dp, "OFFSETS/CONNECTIVITY cell layout")
	}
	b, err := p.data(dp, scalar.U32, size)
	if err != nil {
		return nil, err
	}
	vs, _ := buffer.As[uint32](b)
	return &vtk.Cells{NumCells: uint32(n), Vertices: vs}, nil
}

func (p *parser) cellTypes(path []string) ([]vtk.CellType, error) {
	hp := join(path, "header")
	n, err := p.count(hp)
	if err != nil {
		return nil, err
	}
	if err := p.eol(hp); err != nil {
		return nil, err
	}
	b, err := p.data(join(path, "data"), scalar.I32, n)
	if err != nil {
		return nil, err
	}
	codes, _ := buffer.As[int32](b)
	types := make([]vtk.CellType, len(codes))
	for i, c := range codes {
		types[i] = vtk.CellType(c)
	}
	return types, nil
}

func (p *parser) dimensions(path []string) (*[3]uint32, error) {
	var d [3]uint32
	for i := range d {
		n, err := p.count(path)
		if err != nil {
			return nil, err
		}
		d[i] = uint32(n)
	}
	return &d, p.eol(path)
}

func (p *parser) coordinates(path []string) (buffer.Buffer, error) {
	hp := join(path, "header")
	n, err := p.count(hp)
	if err != nil {
		return nil, err
	}
	t, err := p.dataType(hp)
	if err != nil {
		return nil, err
	}
	if err := p.eol(hp); err != nil {
		return nil, err
	}
	return p.data(join(path, "data"), t, n)
}

func (g *geometry) build(base []string) (vtk.DataSet, error) {
	switch g.kind {
	case vtk.KindPolyData:
		if g.points == nil {
			return nil, missing(join(base, "points"), "POINTS")
		}
		ds := &vtk.PolyData{Points: g.points, Attributes: g.attrs}
		for k, c := range g.topology {
			if c != nil {
				ds.SetTopology(vtk.TopologyKind(k), c)
			}
		}
		return ds, nil
	case vtk.KindUnstructuredGrid:
		switch {
		case g.points == nil:
			return nil, missing(join(base, "points"), "POINTS")
		case g.cells == nil:
			return nil, missing(join(base, "cells"), "CELLS")
		case g.cellTypes == nil:
			return nil, missing(join(base, "cell_types"), "CELL_TYPES")
		}
		return &vtk.UnstructuredGrid{
			Points:     g.points,
			Cells:      *g.cells,
			CellTypes:  g.cellTypes,
			Attributes: g.attrs,
		}, nil
	case vtk.KindImageData:
		if g.dims == nil {
			return nil, missing(join(base, "dimensions"), "DIMENSIONS")
		}
		return &vtk.ImageData{
			Extent:     vtk.DimsExtent(g.dims[0], g.dims[1], g.dims[2]),
			Origin:     g.origin,
			Spacing:    g.spacing,
			Attributes: g.attrs,
		}, nil
	case vtk.KindStructuredGrid:
		switch {
		case g.dims == nil:
			return nil, missing(join(base, "dimensions"), "DIMENSIONS")
		case g.points == nil:
			return nil, missing(join(base, "points"), "POINTS")
		}
		return &vtk.StructuredGrid{
			Extent:     vtk.DimsExtent(g.dims[0], g.dims[1], g.dims[2]),
			Points:     g.points,
			Attributes: g.attrs,
		}, nil
	default:
		if g.dims == nil {
			return nil, missing(join(base, "dimensions"), "DIMENSIONS")
		}
		for i, c := range g.coords {
			if c == nil {
				return nil, missing(join(base, strings.ToLower(coordKeywords[i])), coordKeywords[i])
			}
		}
		return &vtk.RectilinearGrid{
			Extent:     vtk.DimsExtent(g.dims[0], g.dims[1], g.dims[2]),
			X:          g.coords[0],
			Y:          g.coords[1],
			Z:          g.coords[2],
			Attributes: g.attrs,
		}, nil
	}
}

// fieldDataSet reads a top-level FIELD block. Nothing may follow it.
func (p *parser) fieldDataSet() (vtk.DataSet, error) {
	path := []string{"dataset", vtk.KindField.String()}
	name, arrays, err := p.field(path)
	if err != nil {
		return nil, err
	}
	if kw, err := p.keyword(path); err != errEnd {
		if err != nil {
			return nil, err
		}
		return nil, malformed(path, "unexpected section %s after FIELD data", quote(kw))
	}
	return &vtk.Field{Name: name, Arrays: arrays}, nil
}

// field reads "name count" after a FIELD keyword, then count arrays of the
// form "name numComp numTuples type" plus payload.
func (p *parser) field(path []string) (string, []vtk.FieldArray, error) {
	hp := join(path, "header")
	name, err := p.word(hp)
	if err != nil {
		return "", nil, err
	}
	n, err := p.count(hp)
	if err != nil {
		return "", nil, err
	}
	if err := p.eol(hp); err != nil {
		return "", nil, err
	}

	ap := join(path, "field_array")
	ahp := join(ap, "header")
	arrays := make([]vtk.FieldArray, 0, min(n, len(p.in)))
	for range n {
		var a vtk.FieldArray
		if a.Name, err = p.name(ahp); err != nil {
			return "", nil, err
		}
		numComp, err := p.count(ahp)
		if err != nil {
			return "", nil, err
		}
		numTuples, err := p.count(ahp)
		if err != nil {
			return "", nil, err
		}
		t, err := p.dataType(ahp)
		if err != nil {
			return "", nil, err
		}
		if err := p.eol(ahp); err != nil {
			return "", nil, err
		}
		a.NumComp = uint32(numComp)
		size, err := product(ahp, numComp, numTuples)
		if err != nil {
			return "", nil, err
		}
		if a.Data, err = p.data(join(ap, "data"), t, size); err != nil {
			return "", nil, err
		}
		arrays = append(arrays, a)
	}
	return name, arrays, nil
}
