package vtk

import "fmt"

// Extent is an inclusive integer index box along three axes.
type Extent struct {
	Min [3]int32
	Max [3]int32
}

// DimsExtent returns the zero-based extent with the given number of nodes
// per axis.
func DimsExtent(nx, ny, nz uint32) Extent {
	return Extent{Max: [3]int32{int32(nx) - 1, int32(ny) - 1, int32(nz) - 1}}
}

// Dims returns the number of nodes per axis, max - min + 1. Decreasing axes
// report 0.
func (e Extent) Dims() [3]uint32 {
	var d [3]uint32
	for i := range d {
		if n := int64(e.Max[i]) - int64(e.Min[i]) + 1; n > 0 {
			d[i] = uint32(n)
		}
	}
	return d
}

// NumPoints returns the product of Dims.
func (e Extent) NumPoints() int {
	d := e.Dims()
	return int(d[0]) * int(d[1]) * int(d[2])
}

// Valid reports whether every axis is non-decreasing.
func (e Extent) Valid() bool {
	for i := range e.Min {
		if e.Max[i] < e.Min[i] {
			return false
		}
	}
	return true
}

func (e Extent) String() string {
	return fmt.Sprintf("[%d..%d, %d..%d, %d..%d]", e.Min[0], e.Max[0], e.Min[1], e.Max[1], e.Min[2], e.Max[2])
}
