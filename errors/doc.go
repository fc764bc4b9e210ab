// Package errors provides structured error types for the vtkio library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: section path, VTK type tag, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindIO).
//		Path("dataset", "poly_data", "points", "data").
//		Cause(ioErr).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Incomplete(errors.PhaseDecode, path, 4)
//	err := errors.Malformed(errors.PhaseDecode, path, "expected digits")
//
// Decoding distinguishes two failure families that must never be conflated:
// KindIncomplete means more input is needed and the caller may retry with a
// longer buffer; KindMalformed means the input violates the grammar.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
