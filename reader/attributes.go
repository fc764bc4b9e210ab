package reader

import (
	"github.com/wippyai/vtkio/buffer"
	"github.com/wippyai/vtkio/scalar"
	"github.com/wippyai/vtkio/vtk"
)

// colorType is the storage type of color data for the current encoding.
func (p *parser) colorType() scalar.ElementType {
	if p.enc == scalar.Binary {
		return scalar.U8
	}
	return scalar.F32
}

// attribute reads one attribute section of a POINT_DATA or CELL_DATA block
// holding tuples entries. The keyword has already been consumed.
func (p *parser) attribute(kind vtk.AttributeKind, blockName string, tuples int) (vtk.NamedAttribute, error) {
	path := []string{blockName, kind.String()}
	hp := join(path, "header")
	dp := join(path, "data")

	if kind == vtk.AttrField {
		name, arrays, err := p.field(path)
		if err != nil {
			return vtk.NamedAttribute{}, err
		}
		return vtk.NamedAttribute{Name: name, Attribute: &vtk.FieldAttribute{Arrays: arrays}}, nil
	}

	name, err := p.word(hp)
	if err != nil {
		return vtk.NamedAttribute{}, err
	}
	na := vtk.NamedAttribute{Name: name}

	switch kind {
	case vtk.AttrScalars:
		a, err := p.scalars(path, tuples)
		if err != nil {
			return na, err
		}
		na.Attribute = a
	case vtk.AttrColorScalars:
		numComp, err := p.count(hp)
		if err != nil {
			return na, err
		}
		if err := p.eol(hp); err != nil {
			return na, err
		}
		n, err := product(hp, tuples, numComp)
		if err != nil {
			return na, err
		}
		data, err := p.data(dp, p.colorType(), n)
		if err != nil {
			return na, err
		}
		na.Attribute = &vtk.ColorScalars{NumComp: uint32(numComp), Data: data}
	case vtk.AttrLookupTable:
		size, err := p.count(hp)
		if err != nil {
			return na, err
		}
		if err := p.eol(hp); err != nil {
			return na, err
		}
		n, err := product(hp, 4, size)
		if err != nil {
			return na, err
		}
		data, err := p.data(dp, p.colorType(), n)
		if err != nil {
			return na, err
		}
		na.Attribute = &vtk.LookupTable{Data: data}
	case vtk.AttrTextureCoordinates:
		dim, err := p.count(hp)
		if err != nil {
			return na, err
		}
		data, err := p.typedData(path, tuples*dim)
		if err != nil {
			return na, err
		}
		na.Attribute = &vtk.TextureCoordinates{Dim: uint32(dim), Data: data}
	case vtk.AttrVectors:
		data, err := p.typedData(path, 3*tuples)
		if err != nil {
			return na, err
		}
		na.Attribute = &vtk.Vectors{Data: data}
	case vtk.AttrNormals:
		data, err := p.typedData(path, 3*tuples)
		if err != nil {
			return na, err
		}
		na.Attribute = &vtk.Normals{Data: data}
	case vtk.AttrTensors:
		data, err := p.typedData(path, 9*tuples)
		if err != nil {
			return na, err
		}
		na.Attribute = &vtk.Tensors{Data: data}
	}
	return na, nil
}

// typedData reads the trailing type tag of a header line, then n values.
func (p *parser) typedData(path []string, n int) (buffer.Buffer, error) {
	hp := join(path, "header")
	t, err := p.dataType(hp)
	if err != nil {
		return nil, err
	}
	if err := p.eol(hp); err != nil {
		return nil, err
	}
	return p.data(join(path, "data"), t, n)
}

// scalars reads "SCALARS name type [numComp]" and the optional LOOKUP_TABLE
// line. A table named "default" is stored as nil.
func (p *parser) scalars(path []string, tuples int) (*vtk.Scalars, error) {
	hp := join(path, "header")
	t, err := p.dataType(hp)
	if err != nil {
		return nil, err
	}
	numComp := 1
	if !p.atEOL() {
		if numComp, err = p.count(hp); err != nil {
			return nil, err
		}
	}
	if err := p.eol(hp); err != nil {
		return nil, err
	}

	s := &vtk.Scalars{NumComp: uint32(numComp)}
	lp := join(path, "lookup_table")
	ok, err := p.peek(lp, "LOOKUP_TABLE")
	if err != nil {
		return nil, err
	}
	if ok {
		if _, err := p.keyword(lp); err != nil {
			return nil, err
		}
		table, err := p.word(lp)
		if err != nil {
			return nil, err
		}
		if err := p.eol(lp); err != nil {
			return nil, err
		}
		if table != vtk.DefaultLookupTable {
			s.LookupTable = &table
		}
	}

	n, err := product(join(path, "header"), tuples, numComp)
	if err != nil {
		return nil, err
	}
	if s.Data, err = p.data(join(path, "data"), t, n); err != nil {
		return nil, err
	}
	return s, nil
}
