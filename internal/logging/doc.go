// Package logging sets up log/slog for formcheck.
//
// Text output goes through [Handler], which colors levels when writing to a
// terminal and masks attribute values whose key looks secret (password,
// token, cvv...). JSON output uses the standard [slog.JSONHandler].
// [MultiHandler] fans records out to several handlers, which is how
// --log-file works.
//
// Loggers travel in contexts:
//
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("field state changed", "field", "zip")
//
// Tests route log output through t.Log with [ForTest].
package logging
