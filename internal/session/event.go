package session

import "github.com/thoreinstein/formcheck/pkg/validation"

// EventKind distinguishes session events.
type EventKind int

const (
	// FieldChanged is published when a field changes state.
	FieldChanged EventKind = iota
	// FormChanged is published when the form's validity flips.
	FormChanged
)

func (k EventKind) String() string {
	if k == FormChanged {
		return "form_changed"
	}
	return "field_changed"
}

// Event describes a change in the session. Field and State are set for
// FieldChanged. Valid is set only for FormChanged; field events carry no
// aggregate, since one may fire mid-revalidation before the form settles.
type Event struct {
	Kind  EventKind
	Field string
	State validation.State
	Valid bool
}

// Listener receives session events synchronously.
type Listener func(Event)
