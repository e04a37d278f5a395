// Package errors provides structured error types for cellophane.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the wrapper kind, the release function, the pointer
// involved and an optional cause, usually the operating-system error.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRelease, errors.KindReleaseFailed).
//		Handle("CloseHandleWrapper").
//		Func("CloseHandle").
//		Ptr(p).
//		Cause(osErr).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.AlreadyReleased("LocalFreeWrapper")
//	err := errors.OutOfBounds(errors.PhaseRead, offset, size, memSize)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
