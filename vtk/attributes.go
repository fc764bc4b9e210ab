package vtk

import "github.com/wippyai/vtkio/buffer"

// Attributes holds the point and cell attribute lists of a dataset. Order is
// preserved; names need not be unique.
type Attributes struct {
	Point []NamedAttribute
	Cell  []NamedAttribute
}

// Empty reports whether both lists are empty.
func (a Attributes) Empty() bool {
	return len(a.Point) == 0 && len(a.Cell) == 0
}

// NamedAttribute pairs an attribute with its section name.
type NamedAttribute struct {
	Attribute Attribute
	Name      string
}

// AttributeKind discriminates the attribute variants.
type AttributeKind uint8

const (
	AttrScalars AttributeKind = iota
	AttrColorScalars
	AttrLookupTable
	AttrVectors
	AttrNormals
	AttrTextureCoordinates
	AttrTensors
	AttrField
)

var attributeNames = [...]string{
	AttrScalars:            "scalars",
	AttrColorScalars:       "color_scalars",
	AttrLookupTable:        "lookup_table",
	AttrVectors:            "vectors",
	AttrNormals:            "normals",
	AttrTextureCoordinates: "texture_coordinates",
	AttrTensors:            "tensors",
	AttrField:              "field",
}

var attributeKeywords = [...]string{
	AttrScalars:            "SCALARS",
	AttrColorScalars:       "COLOR_SCALARS",
	AttrLookupTable:        "LOOKUP_TABLE",
	AttrVectors:            "VECTORS",
	AttrNormals:            "NORMALS",
	AttrTextureCoordinates: "TEXTURE_COORDINATES",
	AttrTensors:            "TENSORS",
	AttrField:              "FIELD",
}

func (k AttributeKind) String() string {
	if int(k) < len(attributeNames) {
		return attributeNames[k]
	}
	return "unknown"
}

// Keyword returns the section keyword that introduces the attribute.
func (k AttributeKind) Keyword() string {
	if int(k) < len(attributeKeywords) {
		return attributeKeywords[k]
	}
	return ""
}

// ParseAttributeKind maps a section keyword to its attribute kind.
func ParseAttributeKind(keyword string) (AttributeKind, bool) {
	for i, kw := range attributeKeywords {
		if kw == keyword {
			return AttributeKind(i), true
		}
	}
	return 0, false
}

// Attribute is one of *Scalars, *ColorScalars, *LookupTable, *Vectors,
// *Normals, *TextureCoordinates, *Tensors or *FieldAttribute.
type Attribute interface {
	Kind() AttributeKind
	isAttribute()
}

// Scalars holds NumComp components per tuple. A nil LookupTable is written
// as "default".
type Scalars struct {
	Data        buffer.Buffer
	LookupTable *string
	NumComp     uint32
}

// ColorScalars holds NumComp color components per tuple, in [0, 1]. Binary
// files store them as unsigned_char, ASCII files as float.
type ColorScalars struct {
	Data    buffer.Buffer
	NumComp uint32
}

// LookupTable is a palette of packed RGBA entries; Data.Len() is a multiple
// of 4.
type LookupTable struct {
	Data buffer.Buffer
}

// Vectors holds three components per tuple.
type Vectors struct {
	Data buffer.Buffer
}

// Normals holds three components per tuple.
type Normals struct {
	Data buffer.Buffer
}

// TextureCoordinates holds Dim components per tuple, Dim in 1..3.
type TextureCoordinates struct {
	Data buffer.Buffer
	Dim  uint32
}

// Tensors holds nine components (a 3x3 matrix) per tuple.
type Tensors struct {
	Data buffer.Buffer
}

// FieldAttribute is a FIELD block nested in POINT_DATA or CELL_DATA.
type FieldAttribute struct {
	Arrays []FieldArray
}

func (*Scalars) Kind() AttributeKind            { return AttrScalars }
func (*ColorScalars) Kind() AttributeKind       { return AttrColorScalars }
func (*LookupTable) Kind() AttributeKind        { return AttrLookupTable }
func (*Vectors) Kind() AttributeKind            { return AttrVectors }
func (*Normals) Kind() AttributeKind            { return AttrNormals }
func (*TextureCoordinates) Kind() AttributeKind { return AttrTextureCoordinates }
func (*Tensors) Kind() AttributeKind            { return AttrTensors }
func (*FieldAttribute) Kind() AttributeKind     { return AttrField }

func (*Scalars) isAttribute()            {}
func (*ColorScalars) isAttribute()       {}
func (*LookupTable) isAttribute()        {}
func (*Vectors) isAttribute()            {}
func (*Normals) isAttribute()            {}
func (*TextureCoordinates) isAttribute() {}
func (*Tensors) isAttribute()            {}
func (*FieldAttribute) isAttribute()     {}

// DefaultLookupTable is the table name written when Scalars names none.
const DefaultLookupTable = "default"

// LookupTableName returns the table name to write for s.
func (s *Scalars) LookupTableName() string {
	if s.LookupTable == nil {
		return DefaultLookupTable
	}
	return *s.LookupTable
}
