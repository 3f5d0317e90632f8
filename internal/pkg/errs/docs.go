// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for classification
//
// The generic value/object errors guard aggregate construction; the
// domain-flavoured ones (ConflictError, InsufficientStockError,
// ExternalServiceError, CompensationFailedError) classify saga and
// collaborator failures so handlers can decide between retrying through
// broker redelivery and swallowing a terminal business error.
package errs
