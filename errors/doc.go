// Package errors provides structured error types for the binrw read engine.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, stream offset, the decoded
// type's name, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindShortRead).
//		Type("uint32").
//		Offset(12).
//		Detail("not enough bytes: need 4, got 1").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ShortRead(errors.PhaseDecode, "uint32", 12, 4, 1)
//	err := errors.FieldMissing(path, "count")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
