package validation

import (
	"log/slog"
)

// EmptyPolicy decides how a field treats empty content.
type EmptyPolicy int

const (
	// EmptyShortCircuit maps empty content to StateDefault without calling
	// the validator.
	EmptyShortCircuit EmptyPolicy = iota
	// EmptyValidate always calls the validator.
	EmptyValidate
)

func (p EmptyPolicy) String() string {
	if p == EmptyValidate {
		return "validate"
	}
	return "short_circuit"
}

// InitialNotification decides whether the first evaluation of a form is
// reported to its observer.
type InitialNotification int

const (
	// InitialEager reports the first evaluation of a non-empty form, so
	// listeners start from a known value.
	InitialEager InitialNotification = iota
	// InitialSilent records the first evaluation and reports only later
	// flips.
	InitialSilent
)

func (n InitialNotification) String() string {
	if n == InitialSilent {
		return "silent"
	}
	return "eager"
}

// DuplicatePolicy decides what AddFields and ReplaceFields do with a field
// that is already tracked or appears twice.
type DuplicatePolicy int

const (
	// DuplicateReject fails the call with ErrDuplicateField and changes
	// nothing.
	DuplicateReject DuplicatePolicy = iota
	// DuplicateIgnore keeps the first occurrence and skips the rest.
	DuplicateIgnore
)

func (p DuplicatePolicy) String() string {
	if p == DuplicateIgnore {
		return "ignore"
	}
	return "reject"
}

// FieldOption configures a Field.
type FieldOption func(*fieldOptions)

type fieldOptions struct {
	initial     State
	emptyPolicy EmptyPolicy
	isEmpty     any
	gate        any
	onChange    func(State)
	logger      *slog.Logger
}

// WithInitialState sets the state a field has before its first
// Revalidate. Only StateUnknown and StateDefault are accepted; anything
// else becomes StateUnknown.
func WithInitialState(s State) FieldOption {
	return func(o *fieldOptions) {
		if s != StateDefault {
			s = StateUnknown
		}
		o.initial = s
	}
}

// WithEmptyPolicy sets how empty content is treated.
func WithEmptyPolicy(p EmptyPolicy) FieldOption {
	return func(o *fieldOptions) {
		o.emptyPolicy = p
	}
}

// WithEmptyCheck overrides the emptiness test. By default empty strings,
// empty byte slices and values whose IsZero method reports true are empty.
// The function's parameter type must match the field's content type.
func WithEmptyCheck[T any](fn func(T) bool) FieldOption {
	return func(o *fieldOptions) {
		o.isEmpty = fn
	}
}

// WithGate installs a pre-validation check. While it reports false,
// Revalidate leaves the field untouched and returns false. The function's
// parameter type must match the field's content type.
func WithGate[T any](fn func(T) bool) FieldOption {
	return func(o *fieldOptions) {
		o.gate = fn
	}
}

// WithStateHandler registers a function called with the new state on every
// transition, before the observer is notified.
func WithStateHandler(fn func(State)) FieldOption {
	return func(o *fieldOptions) {
		o.onChange = fn
	}
}

// WithFieldLogger sets the logger for transition logging.
func WithFieldLogger(l *slog.Logger) FieldOption {
	return func(o *fieldOptions) {
		o.logger = l
	}
}

// Option configures a Form.
type Option func(*Form)

// WithName names the form in log output.
func WithName(name string) Option {
	return func(f *Form) {
		f.name = name
	}
}

// WithObserver sets the form observer at construction, so the initial
// notification is delivered to it.
func WithObserver(o FormObserver) Option {
	return func(f *Form) {
		f.observer = o
	}
}

// WithFields adds fields at construction.
func WithFields(fields ...Validatable) Option {
	return func(f *Form) {
		f.pending = append(f.pending, fields...)
	}
}

// WithDuplicatePolicy sets the duplicate membership policy.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(f *Form) {
		f.duplicates = p
	}
}

// WithInitialNotification sets the initial notification policy.
func WithInitialNotification(n InitialNotification) Option {
	return func(f *Form) {
		f.initial = n
	}
}

// WithLogger sets the logger for aggregate transition logging.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}
