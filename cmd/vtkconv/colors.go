package main

import (
	"fmt"
	"math"

	"github.com/wippyai/vtkio/buffer"
	"github.com/wippyai/vtkio/scalar"
	"github.com/wippyai/vtkio/vtk"
)

func convertColors(na vtk.NamedAttribute, enc scalar.Encoding) error {
	var err error
	switch a := na.Attribute.(type) {
	case *vtk.ColorScalars:
		a.Data, err = recolor(a.Data, enc)
	case *vtk.LookupTable:
		a.Data, err = recolor(a.Data, enc)
	}
	return err
}

// recolor moves color components between float [0, 1] and unsigned_char
// [0, 255] storage.
func recolor(b buffer.Buffer, enc scalar.Encoding) (buffer.Buffer, error) {
	if b == nil {
		return nil, nil
	}
	if enc == scalar.Binary {
		if b.ElementType() == scalar.U8 {
			return b, nil
		}
		fs, ok := buffer.As[float32](b)
		if !ok {
			return nil, fmt.Errorf("color data is %s, want float", b.ElementType().Tag())
		}
		out := make([]uint8, len(fs))
		for i, f := range fs {
			out[i] = uint8(math.Round(float64(min(max(f, 0), 1)) * 255))
		}
		return buffer.New(out), nil
	}

	if b.ElementType() == scalar.F32 {
		return b, nil
	}
	us, ok := buffer.As[uint8](b)
	if !ok {
		return nil, fmt.Errorf("color data is %s, want unsigned_char", b.ElementType().Tag())
	}
	out := make([]float32, len(us))
	for i, u := range us {
		out[i] = float32(u) / 255
	}
	return buffer.New(out), nil
}
