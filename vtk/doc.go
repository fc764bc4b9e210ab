// Package vtk defines the in-memory model of a legacy VTK data file.
//
// A Document carries the header (version, title, encoding) and exactly one
// DataSet. DataSet and Attribute are sealed interfaces: the six dataset
// variants and eight attribute variants below are the only implementations.
//
//	Document
//	├── Field              named arrays, no geometry
//	├── PolyData           points + vertices/lines/polygons/strips
//	├── UnstructuredGrid   points + cells + per-cell types
//	├── ImageData          extent, origin, spacing (STRUCTURED_POINTS)
//	├── StructuredGrid     extent + explicit points
//	└── RectilinearGrid    extent + per-axis coordinates
//
// Every numeric array is a buffer.Buffer, so one dataset can mix element
// types freely.
//
// # Validation
//
// Validate checks the structural invariants the file grammar relies on:
// single-line titles, whole point triples, lookup tables of whole RGBA
// entries, non-decreasing extents, consistent connectivity and attribute
// lengths that match the counts declared in POINT_DATA and CELL_DATA.
// NewDocument validates at construction.
package vtk
