package validation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/thoreinstein/formcheck/internal/logging"
	"github.com/thoreinstein/formcheck/internal/transition"
)

// Field is a single validated input: content, a validator and the state the
// validator produced on the last Revalidate.
//
// The field does not own its observer. A Form installs itself as the
// observer when the field is added and clears the slot when it is removed,
// after which Revalidate still works but notifies nobody.
type Field[T any] struct {
	name      string
	id        string
	content   T
	validator Validator[T]
	machine   *transition.Machine
	observer  FieldObserver

	emptyPolicy EmptyPolicy
	isEmpty     func(T) bool
	gate        func(T) bool
	onChange    func(State)
	logger      *slog.Logger
}

// NewField creates a field named name validated by v. v may be nil, in
// which case the field validates to StateUnknown until a validator is set.
//
// NewField panics if WithEmptyCheck or WithGate was given a function whose
// parameter type is not T.
func NewField[T any](name string, v Validator[T], opts ...FieldOption) *Field[T] {
	o := fieldOptions{initial: StateDefault}
	for _, opt := range opts {
		opt(&o)
	}

	f := &Field[T]{
		name:        name,
		id:          uuid.NewString(),
		validator:   v,
		machine:     transition.New(o.initial.String(), stateNameList()...),
		emptyPolicy: o.emptyPolicy,
		isEmpty:     defaultIsEmpty[T],
		onChange:    o.onChange,
		logger:      o.logger,
	}
	if f.logger == nil {
		f.logger = logging.NewDiscard()
	}
	f.logger = f.logger.With("field", name, "field_id", f.id)

	if o.isEmpty != nil {
		f.isEmpty = mustFunc[T](o.isEmpty, "WithEmptyCheck")
	}
	if o.gate != nil {
		f.gate = mustFunc[T](o.gate, "WithGate")
	}
	return f
}

func mustFunc[T any](fn any, option string) func(T) bool {
	typed, ok := fn.(func(T) bool)
	if !ok {
		var zero T
		panic(fmt.Sprintf("validation: %s expects func(%T) bool, got %T", option, zero, fn))
	}
	return typed
}

// Name returns the field name.
func (f *Field[T]) Name() string { return f.name }

// ID returns a unique identifier used to correlate log lines.
func (f *Field[T]) ID() string { return f.id }

// Content returns the current content.
func (f *Field[T]) Content() T { return f.content }

// SetContent replaces the content without revalidating.
func (f *Field[T]) SetContent(content T) { f.content = content }

// Update replaces the content and revalidates, reporting whether the state
// changed.
func (f *Field[T]) Update(content T) bool {
	f.content = content
	return f.Revalidate()
}

// Validator returns the current validator.
func (f *Field[T]) Validator() Validator[T] { return f.validator }

// SetValidator replaces the validator. It does not revalidate; call
// Revalidate for an immediate re-check.
func (f *Field[T]) SetValidator(v Validator[T]) { f.validator = v }

// State returns the state computed by the last Revalidate, or the initial
// state if Revalidate has not run.
func (f *Field[T]) State() State {
	s, err := ParseState(f.machine.Current())
	if err != nil {
		return StateUnknown
	}
	return s
}

// IsValid reports whether State is StateValid.
func (f *Field[T]) IsValid() bool { return f.State() == StateValid }

// Observer returns the current observer, or nil.
func (f *Field[T]) Observer() FieldObserver { return f.observer }

// SetObserver replaces the observer slot.
func (f *Field[T]) SetObserver(o FieldObserver) { f.observer = o }

// Revalidate recomputes the state from the content and reports whether it
// changed. On a change the state handler and then the observer are called
// synchronously before Revalidate returns; an unchanged state notifies
// nobody.
//
// The state is StateUnknown without a validator, StateDefault for empty
// content under EmptyShortCircuit, and the validator's result otherwise. A
// closed gate makes Revalidate a no-op.
func (f *Field[T]) Revalidate() bool {
	next, ok := f.evaluate()
	if !ok {
		f.logger.Log(context.Background(), logging.LevelTrace, "validation gated")
		return false
	}

	prev := f.State()
	changed, err := f.machine.MoveTo(next.String())
	if err != nil {
		f.logger.Error("recording state", "state", next, "error", err)
		return false
	}
	if !changed {
		return false
	}

	f.logger.Debug("field state changed", "from", prev, "to", next)
	if f.onChange != nil {
		f.onChange(next)
	}
	if f.observer != nil {
		f.observer.FieldStateChanged(f)
	}
	return true
}

func (f *Field[T]) evaluate() (State, bool) {
	if f.validator == nil {
		return StateUnknown, true
	}
	if f.gate != nil && !f.gate(f.content) {
		return StateUnknown, false
	}
	if f.emptyPolicy == EmptyShortCircuit && f.isEmpty(f.content) {
		return StateDefault, true
	}

	s := f.validator.Validate(f.content)
	if !s.known() {
		return StateUnknown, true
	}
	return s, true
}

func defaultIsEmpty[T any](content T) bool {
	switch c := any(content).(type) {
	case string:
		return c == ""
	case []byte:
		return len(c) == 0
	case interface{ IsZero() bool }:
		return c.IsZero()
	}
	return false
}
