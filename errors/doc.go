// Package errors provides structured error types for the loadout library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes the affected node and a cause
// chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindOutOfRange).
//		Node("Fireblast").
//		Detail("rank 9 exceeds max rank 3").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownNode(errors.PhaseResolve, "Fireblast")
//	err := errors.OutOfRange(errors.PhaseEncode, "Fireblast", "rank", 9, 3)
//
// All errors implement the standard error interface and support
// errors.Is/As. Two *Error values match under errors.Is when their Phase
// and Kind agree, so callers can classify failures without string
// matching.
package errors
