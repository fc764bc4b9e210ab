// Package buffer provides the type-erased numeric array used for every data
// field of a VTK dataset.
//
// A Buffer holds exactly one of the ten scalar element types as a homogeneous
// sequence. The concrete implementation is the generic Vec[T]; Buffer is
// sealed so no other type can satisfy it, and every per-type dispatch in the
// module switches over scalar.ElementType exhaustively.
//
// # Key Operations
//
//   - New / Of: wrap a typed slice
//   - As: typed extraction, ok=false on mismatch (never converts)
//   - Decode: bulk decode a runtime-tagged array
//   - Equal: bit-exact comparison
//
// The String form is the canonical ASCII rendering: space-separated tokens
// that scalar.DecodeN reads back to the same values.
package buffer
