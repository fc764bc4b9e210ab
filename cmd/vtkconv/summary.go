package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/vtkio/buffer"
	"github.com/wippyai/vtkio/vtk"
)

// previewLen is how many values a one-line preview shows.
const previewLen = 8

// entry is one section of a document as listed by -info and the browser.
type entry struct {
	data   buffer.Buffer
	path   string
	name   string
	detail string
}

func (e entry) label() string {
	if e.name == "" {
		return e.path
	}
	return e.path + " " + e.name
}

// preview renders up to n leading values of the entry.
func (e entry) preview(n int) string {
	if e.data == nil {
		return ""
	}
	s := buffer.Head(e.data, n).String()
	if e.data.Len() > n {
		s += " ..."
	}
	return s
}

func describe(b buffer.Buffer) string {
	if b == nil {
		return "no data"
	}
	return fmt.Sprintf("%d x %s", b.Len(), b.ElementType().Tag())
}

// entries flattens doc into the sections it would be written as.
func entries(doc *vtk.Document) []entry {
	list := []entry{{
		path:   "header",
		detail: fmt.Sprintf("version %s, %s, title %q", doc.Version, doc.Encoding, doc.Title),
	}}
	if doc.DataSet == nil {
		return list
	}
	kind := doc.DataSet.Kind()
	base := "dataset." + kind.String()
	numPoints, numCells := vtk.DeclaredCounts(doc.DataSet)
	list = append(list, entry{
		path:   base,
		detail: fmt.Sprintf("%s, %d points, %d cells", kind.Keyword(), numPoints, numCells),
	})

	switch ds := doc.DataSet.(type) {
	case *vtk.Field:
		list = append(list, fieldEntries(base, ds.Name, ds.Arrays)...)
	case *vtk.PolyData:
		list = append(list, entry{path: base + ".points", detail: describe(ds.Points), data: ds.Points})
		for _, g := range ds.Topology() {
			list = append(list, cellEntry(base+"."+g.Kind.String(), g.Cells))
		}
	case *vtk.UnstructuredGrid:
		list = append(list,
			entry{path: base + ".points", detail: describe(ds.Points), data: ds.Points},
			cellEntry(base+".cells", &ds.Cells),
			entry{path: base + ".cell_types", detail: cellTypeCounts(ds.CellTypes)},
		)
	case *vtk.ImageData:
		list = append(list, entry{
			path:   base + ".extent",
			detail: fmt.Sprintf("%v origin %v spacing %v", ds.Extent, ds.Origin, ds.Spacing),
		})
	case *vtk.StructuredGrid:
		list = append(list,
			entry{path: base + ".extent", detail: ds.Extent.String()},
			entry{path: base + ".points", detail: describe(ds.Points), data: ds.Points},
		)
	case *vtk.RectilinearGrid:
		list = append(list,
			entry{path: base + ".x_coordinates", detail: describe(ds.X), data: ds.X},
			entry{path: base + ".y_coordinates", detail: describe(ds.Y), data: ds.Y},
			entry{path: base + ".z_coordinates", detail: describe(ds.Z), data: ds.Z},
		)
	}

	if attrs := vtk.AttributesOf(doc.DataSet); attrs != nil {
		list = append(list, attributeEntries("point_data", attrs.Point)...)
		list = append(list, attributeEntries("cell_data", attrs.Cell)...)
	}
	return list
}

func cellEntry(path string, c *vtk.Cells) entry {
	return entry{
		path:   path,
		detail: fmt.Sprintf("%d cells, %d indices", c.NumCells, len(c.Vertices)),
		data:   buffer.New(c.Vertices),
	}
}

func cellTypeCounts(types []vtk.CellType) string {
	counts := make(map[vtk.CellType]int)
	var order []vtk.CellType
	for _, t := range types {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}
	parts := make([]string, len(order))
	for i, t := range order {
		parts[i] = fmt.Sprintf("%s x%d", t, counts[t])
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func fieldEntries(base, name string, arrays []vtk.FieldArray) []entry {
	list := []entry{{path: base, name: name, detail: fmt.Sprintf("%d arrays", len(arrays))}}
	for _, a := range arrays {
		list = append(list, entry{
			path:   base + ".field_array",
			name:   a.Name,
			detail: fmt.Sprintf("%s, %d components, %d tuples", describe(a.Data), a.NumComp, a.NumTuples()),
			data:   a.Data,
		})
	}
	return list
}

func attributeEntries(block string, list []vtk.NamedAttribute) []entry {
	var out []entry
	for _, na := range list {
		if na.Attribute == nil {
			continue
		}
		path := block + "." + na.Attribute.Kind().String()
		switch a := na.Attribute.(type) {
		case *vtk.Scalars:
			out = append(out, entry{path: path, name: na.Name, data: a.Data,
				detail: fmt.Sprintf("%s, %d components, table %s", describe(a.Data), a.NumComp, a.LookupTableName())})
		case *vtk.ColorScalars:
			out = append(out, entry{path: path, name: na.Name, data: a.Data,
				detail: fmt.Sprintf("%s, %d components", describe(a.Data), a.NumComp)})
		case *vtk.LookupTable:
			out = append(out, entry{path: path, name: na.Name, data: a.Data, detail: describe(a.Data)})
		case *vtk.Vectors:
			out = append(out, entry{path: path, name: na.Name, data: a.Data, detail: describe(a.Data)})
		case *vtk.Normals:
			out = append(out, entry{path: path, name: na.Name, data: a.Data, detail: describe(a.Data)})
		case *vtk.TextureCoordinates:
			out = append(out, entry{path: path, name: na.Name, data: a.Data,
				detail: fmt.Sprintf("%s, dim %d", describe(a.Data), a.Dim)})
		case *vtk.Tensors:
			out = append(out, entry{path: path, name: na.Name, data: a.Data, detail: describe(a.Data)})
		case *vtk.FieldAttribute:
			out = append(out, fieldEntries(path, na.Name, a.Arrays)...)
		}
	}
	return out
}

var (
	pathStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#87CEEB"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// writeSummary prints one line per entry, plus a value preview. Styling is
// applied only when styled is set.
func writeSummary(w io.Writer, doc *vtk.Document, styled bool) error {
	for _, e := range entries(doc) {
		path, name, detail := e.path, e.name, e.detail
		if styled {
			path = pathStyle.Render(path)
			if name != "" {
				name = nameStyle.Render(name)
			}
			detail = detailStyle.Render(detail)
		}
		line := path
		if name != "" {
			line += " " + name
		}
		line += ": " + detail
		if p := e.preview(previewLen); p != "" {
			line += "\n    " + p
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
