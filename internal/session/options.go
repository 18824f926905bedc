package session

import (
	"log/slog"

	"github.com/thoreinstein/formcheck/pkg/validation"
)

// Option configures a Session.
type Option func(*Session)

// WithListener registers fn for every event.
func WithListener(fn Listener) Option {
	return func(s *Session) {
		if fn != nil {
			s.listeners = append(s.listeners, fn)
		}
	}
}

// WithEmptyPolicy sets the empty content policy for every field.
func WithEmptyPolicy(p validation.EmptyPolicy) Option {
	return func(s *Session) {
		s.emptyPolicy = p
	}
}

// WithInitialNotification sets the form's initial notification policy.
func WithInitialNotification(n validation.InitialNotification) Option {
	return func(s *Session) {
		s.initial = n
	}
}

// WithDuplicatePolicy decides what happens when a field name is added
// twice.
func WithDuplicatePolicy(p validation.DuplicatePolicy) Option {
	return func(s *Session) {
		s.duplicates = p
	}
}

// WithLogger sets the logger for the session, its form and its fields.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}
