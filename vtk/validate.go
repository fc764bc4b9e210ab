package vtk

import (
	"fmt"
	"strings"

	"github.com/wippyai/vtkio/buffer"
	"github.com/wippyai/vtkio/errors"
	"github.com/wippyai/vtkio/scalar"
)

// MaxTitleLen is the longest title legacy readers accept.
const MaxTitleLen = 256

// Validate checks the document for structural validity. The first violation
// is returned as an *errors.Error with PhaseValidate and a path naming the
// offending section.
func (d *Document) Validate() error {
	if err := d.validateHeader(); err != nil {
		return err
	}
	if d.DataSet == nil {
		return invalid([]string{"dataset"}, "document has no dataset")
	}
	path := []string{"dataset", d.DataSet.Kind().String()}
	switch ds := d.DataSet.(type) {
	case *Field:
		return validateField(path, ds.Name, ds.Arrays)
	case *PolyData:
		return d.validatePolyData(path, ds)
	case *UnstructuredGrid:
		return d.validateUnstructuredGrid(path, ds)
	case *ImageData:
		return d.validateImageData(path, ds)
	case *StructuredGrid:
		return d.validateStructuredGrid(path, ds)
	case *RectilinearGrid:
		return d.validateRectilinearGrid(path, ds)
	}
	return errors.Unsupported(errors.PhaseValidate, path, fmt.Sprintf("dataset %T", d.DataSet))
}

// ValidateTitle reports whether title fits on the single header line.
func ValidateTitle(title string) error {
	path := []string{"header", "title"}
	if strings.ContainsAny(title, "\r\n") {
		return invalid(path, "title contains a line break")
	}
	if len(title) > MaxTitleLen {
		return invalid(path, fmt.Sprintf("title is %d bytes, limit is %d", len(title), MaxTitleLen))
	}
	return nil
}

// ValidateName reports whether name can be written as a single section token.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	if strings.ContainsAny(name, " \t\r\n") {
		return fmt.Errorf("name %q contains whitespace", name)
	}
	return nil
}

func invalid(path []string, detail string) error {
	return errors.InvalidInput(errors.PhaseValidate, path, detail)
}

func sub(path []string, parts ...string) []string {
	return append(append(make([]string, 0, len(path)+len(parts)), path...), parts...)
}

func (d *Document) validateHeader() error {
	if err := ValidateTitle(d.Title); err != nil {
		return err
	}
	if d.Encoding != scalar.ASCII && d.Encoding != scalar.Binary {
		return invalid([]string{"header", "file_type"}, fmt.Sprintf("unknown encoding %d", d.Encoding))
	}
	return nil
}

func validateName(path []string, name string) error {
	if err := ValidateName(name); err != nil {
		return invalid(sub(path, "name"), err.Error())
	}
	return nil
}

func validatePoints(path []string, points buffer.Buffer) error {
	if points == nil {
		return invalid(path, "missing points")
	}
	if points.Len()%3 != 0 {
		return invalid(path, fmt.Sprintf("%d coordinates is not a whole number of points", points.Len()))
	}
	return nil
}

func validateCells(path []string, c *Cells, numPoints int) error {
	n, exact := c.Count()
	if !exact {
		return invalid(path, "connectivity ends inside a cell")
	}
	if n != int(c.NumCells) {
		return invalid(path, fmt.Sprintf("connectivity holds %d cells, %d declared", n, c.NumCells))
	}
	if m := c.MaxIndex(); m >= numPoints {
		return invalid(path, fmt.Sprintf("point index %d out of range (%d points)", m, numPoints))
	}
	return nil
}

func validateExtent(path []string, e Extent) error {
	if !e.Valid() {
		return invalid(sub(path, "extent"), fmt.Sprintf("extent %v decreases", e))
	}
	return nil
}

func validateField(path []string, name string, arrays []FieldArray) error {
	if err := validateName(path, name); err != nil {
		return err
	}
	for _, a := range arrays {
		ap := sub(path, a.Name)
		if err := validateName(ap, a.Name); err != nil {
			return err
		}
		if a.Data == nil {
			return invalid(sub(ap, "data"), "missing data")
		}
		if a.NumComp == 0 {
			return invalid(sub(ap, "sizes"), "field array has zero components")
		}
		if a.Data.Len()%int(a.NumComp) != 0 {
			return invalid(sub(ap, "sizes"), fmt.Sprintf("%d values is not a whole number of %d-component tuples", a.Data.Len(), a.NumComp))
		}
	}
	return nil
}

func (d *Document) validatePolyData(path []string, ds *PolyData) error {
	if err := validatePoints(sub(path, "points"), ds.Points); err != nil {
		return err
	}
	np := ds.Points.Len() / 3
	for _, g := range ds.Topology() {
		if err := validateCells(sub(path, g.Kind.String()), g.Cells, np); err != nil {
			return err
		}
	}
	return d.validateAttributes(ds, ds.Attributes)
}

func (d *Document) validateUnstructuredGrid(path []string, ds *UnstructuredGrid) error {
	if err := validatePoints(sub(path, "points"), ds.Points); err != nil {
		return err
	}
	if err := validateCells(sub(path, "cells"), &ds.Cells, ds.Points.Len()/3); err != nil {
		return err
	}
	if len(ds.CellTypes) != int(ds.Cells.NumCells) {
		return invalid(sub(path, "cell_types"), fmt.Sprintf("%d cell types for %d cells", len(ds.CellTypes), ds.Cells.NumCells))
	}
	return d.validateAttributes(ds, ds.Attributes)
}

func (d *Document) validateImageData(path []string, ds *ImageData) error {
	if err := validateExtent(path, ds.Extent); err != nil {
		return err
	}
	return d.validateAttributes(ds, ds.Attributes)
}

func (d *Document) validateStructuredGrid(path []string, ds *StructuredGrid) error {
	if err := validateExtent(path, ds.Extent); err != nil {
		return err
	}
	if err := validatePoints(sub(path, "points"), ds.Points); err != nil {
		return err
	}
	if np, want := ds.Points.Len()/3, ds.Extent.NumPoints(); np != want {
		return invalid(sub(path, "points"), fmt.Sprintf("%d points for dimensions %v", np, ds.Extent.Dims()))
	}
	return d.validateAttributes(ds, ds.Attributes)
}

func (d *Document) validateRectilinearGrid(path []string, ds *RectilinearGrid) error {
	if err := validateExtent(path, ds.Extent); err != nil {
		return err
	}
	dims := ds.Extent.Dims()
	for i, c := range [...]buffer.Buffer{ds.X, ds.Y, ds.Z} {
		cp := sub(path, [...]string{"x_coordinates", "y_coordinates", "z_coordinates"}[i])
		if c == nil {
			return invalid(cp, "missing coordinates")
		}
		if c.Len() != int(dims[i]) {
			return invalid(cp, fmt.Sprintf("%d coordinates for dimension %d", c.Len(), dims[i]))
		}
	}
	return d.validateAttributes(ds, ds.Attributes)
}

func (d *Document) validateAttributes(ds DataSet, attrs Attributes) error {
	np, nc := DeclaredCounts(ds)
	for _, a := range attrs.Point {
		if err := d.validateAttribute([]string{"point_data"}, a, np); err != nil {
			return err
		}
	}
	for _, a := range attrs.Cell {
		if err := d.validateAttribute([]string{"cell_data"}, a, nc); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) validateAttribute(path []string, na NamedAttribute, tuples int) error {
	if na.Attribute == nil {
		return invalid(sub(path, na.Name), "missing attribute")
	}
	path = sub(path, na.Attribute.Kind().String())
	if err := validateName(path, na.Name); err != nil {
		return err
	}

	switch a := na.Attribute.(type) {
	case *Scalars:
		if a.NumComp < 1 || a.NumComp > 4 {
			return invalid(sub(path, "header"), fmt.Sprintf("scalars need 1 to 4 components, got %d", a.NumComp))
		}
		if a.LookupTable != nil {
			if err := ValidateName(*a.LookupTable); err != nil {
				return invalid(sub(path, "lookup_table"), err.Error())
			}
		}
		return checkLen(path, a.Data, tuples*int(a.NumComp))
	case *ColorScalars:
		if a.NumComp == 0 {
			return invalid(sub(path, "header"), "color scalars need at least one component")
		}
		if err := d.checkColorType(path, a.Data); err != nil {
			return err
		}
		return checkLen(path, a.Data, tuples*int(a.NumComp))
	case *LookupTable:
		if a.Data == nil {
			return invalid(sub(path, "data"), "missing data")
		}
		if a.Data.Len()%4 != 0 {
			return invalid(sub(path, "data"), fmt.Sprintf("%d values is not a whole number of RGBA entries", a.Data.Len()))
		}
		return d.checkColorType(path, a.Data)
	case *Vectors:
		return checkLen(path, a.Data, tuples*3)
	case *Normals:
		return checkLen(path, a.Data, tuples*3)
	case *TextureCoordinates:
		if a.Dim < 1 || a.Dim > 3 {
			return invalid(sub(path, "header"), fmt.Sprintf("texture coordinates need 1 to 3 dimensions, got %d", a.Dim))
		}
		return checkLen(path, a.Data, tuples*int(a.Dim))
	case *Tensors:
		return checkLen(path, a.Data, tuples*9)
	case *FieldAttribute:
		return validateField(path, na.Name, a.Arrays)
	}
	return errors.Unsupported(errors.PhaseValidate, path, fmt.Sprintf("attribute %T", na.Attribute))
}

func checkLen(path []string, b buffer.Buffer, want int) error {
	if b == nil {
		return invalid(sub(path, "data"), "missing data")
	}
	if b.Len() != want {
		return invalid(sub(path, "data"), fmt.Sprintf("%d values, want %d", b.Len(), want))
	}
	return nil
}

// checkColorType enforces the element type the grammar implies for color
// data: unsigned_char in binary files, float in ASCII files.
func (d *Document) checkColorType(path []string, b buffer.Buffer) error {
	if b == nil {
		return invalid(sub(path, "data"), "missing data")
	}
	want := scalar.F32
	if d.Encoding == scalar.Binary {
		want = scalar.U8
	}
	if b.ElementType() != want {
		return errors.TypeMismatch(errors.PhaseValidate, sub(path, "data"), want.Tag(), b.ElementType().Tag())
	}
	return nil
}
