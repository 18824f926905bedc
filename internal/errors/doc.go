// Package errors provides error handling conventions for the formcheck CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, exit code constants
// following standard Unix conventions, and re-exports of the
// cockroachdb/errors helpers used throughout the module.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, fcerrors.ErrFieldNotFound) {
//	    // handle unknown field
//	}
//
// # Exit Codes
//
// The package defines standard exit codes for CLI applications:
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, invalid form, configuration)
//   - ExitSystem (2): System-related error (I/O, terminal, permissions)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional suggestion.
// It supports unwrapping via [Unwrap] and [As]:
//
//	err := fcerrors.NewUserError(fcerrors.ErrInvalidDefinition, "Run: formcheck lint FILE")
//	var exitErr *fcerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
