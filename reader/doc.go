// Package reader parses legacy VTK files into vtk.Document values.
//
// The parser is a thin driver over the scalar and buffer decode contract:
// it recognizes section keywords, reads their size fields, and hands every
// array payload to buffer.Decode. In BINARY files each payload starts right
// after the newline that ends its keyword line.
//
// Failures come in two families that are never conflated:
//
//   - incomplete (errors.KindIncomplete): the input ended early; more bytes
//     would let parsing continue
//   - malformed (errors.KindMalformed): the input violates the grammar
//
// Binary byte order is not recorded in legacy files, so it is chosen through
// Options. DefaultOptions uses big-endian, the order most legacy writers
// emit.
package reader
