// Package scalar implements the primitive value layer of the legacy VTK
// format: decoding and encoding single numeric values, either as ASCII tokens
// or as fixed-width binary at a chosen byte order.
//
// # Element Types
//
// Ten element types are supported, each with a VTK type tag:
//
//	u8   unsigned_char    i8   char
//	u16  unsigned_short   i16  short
//	u32  unsigned_int     i32  int
//	u64  unsigned_long    i64  long
//	f32  float            f64  double
//
// The tag "bit" names packed boolean arrays. It has no Go element type of its
// own; DecodeBits returns the packed bytes.
//
// # ASCII Grammar
//
//	unsigned  digits
//	signed    [+-]? digits
//	real      [+-]? (digits '.' digits? | digits? '.' digits | digits) ([eE] [+-]? digits)?
//
// The real grammar accepts an exponent without a decimal point ("3e3").
// Single-value decoders do not skip leading whitespace. Bulk decoders accept
// any run of spaces, tabs, carriage returns and newlines between tokens.
//
// # Failures
//
// Every decoder distinguishes insufficient input (errors.KindIncomplete,
// with the number of bytes still needed) from malformed input
// (errors.KindMalformed). Narrowing an ASCII token that does not fit the
// target width fails with errors.KindOverflow.
//
// All functions are pure over their arguments and safe for concurrent use.
package scalar
