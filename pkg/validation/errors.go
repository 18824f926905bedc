package validation

import "github.com/thoreinstein/formcheck/internal/errors"

var (
	// ErrDuplicateField is returned when a field is added to a form that
	// already tracks it, or appears twice in one call, under DuplicateReject.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrInvalidPattern is returned by Pattern for a regular expression that
	// does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidTag is returned by Tag for a rule the tag validator does not
	// understand.
	ErrInvalidTag = errors.New("invalid validation tag")
)
