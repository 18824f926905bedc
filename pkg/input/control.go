package input

import (
	"time"

	"github.com/thoreinstein/formcheck/pkg/validation"
)

// Control binds a field to an input source. Content is always stored, but
// the field is revalidated only when the event that carried it is one of
// the control's triggers.
type Control[T any] struct {
	field    *validation.Field[T]
	triggers Event
}

// NewControl returns a control for field that revalidates on triggers.
func NewControl[T any](field *validation.Field[T], triggers Event) *Control[T] {
	return &Control[T]{field: field, triggers: triggers}
}

// NewToggle returns a control for a switch, revalidated on ValueChanged.
func NewToggle(field *validation.Field[bool]) *Control[bool] {
	return NewControl(field, ValueChanged)
}

// NewNumber returns a control for a slider or stepper, revalidated on
// ValueChanged.
func NewNumber(field *validation.Field[float64]) *Control[float64] {
	return NewControl(field, ValueChanged)
}

// NewDate returns a control for a date picker, revalidated on ValueChanged.
func NewDate(field *validation.Field[time.Time]) *Control[time.Time] {
	return NewControl(field, ValueChanged)
}

// Field returns the bound field.
func (c *Control[T]) Field() *validation.Field[T] { return c.field }

// Value returns the field content.
func (c *Control[T]) Value() T { return c.field.Content() }

// Triggers returns the events that revalidate the field.
func (c *Control[T]) Triggers() Event { return c.triggers }

// SetTriggers replaces the trigger set.
func (c *Control[T]) SetTriggers(ev Event) { c.triggers = ev }

// Set stores v and, if ev is a trigger, revalidates. It reports whether the
// field state changed.
func (c *Control[T]) Set(v T, ev Event) bool {
	c.field.SetContent(v)
	return c.Send(ev)
}

// Send fires ev without changing content.
func (c *Control[T]) Send(ev Event) bool {
	if !c.triggers.Overlaps(ev) {
		return false
	}
	return c.field.Revalidate()
}
