// Package session runs a live form: named fields bound to input controls,
// raw string input parsed per field kind, and a stream of change events.
//
// A session is the glue between an input source (stdin lines, a terminal UI,
// command-line flags) and the validation core. It is not safe for
// concurrent use; input sources drive it from a single goroutine.
package session
