// Package errs provides standardized error types for the parcel service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value is outside its allowed bounds
//   - ObjectNotFoundError: for when an object cannot be found
//   - VersionIsInvalidError: for optimistic-concurrency version violations
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// This standardized approach improves error reporting and enables uniform
// error classification across the domain model, use cases, and adapters.
package errs
