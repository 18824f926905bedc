package validation

import (
	"log/slog"
	"slices"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/logging"
	"github.com/thoreinstein/formcheck/internal/transition"
)

// Aggregate states. aggregatePending is the unset sentinel: no value has
// been announced yet, so the first evaluation always counts as a change.
const (
	aggregatePending = "pending"
	aggregateValid   = "valid"
	aggregateInvalid = "invalid"
)

// Form aggregates fields into one validity signal. It is valid when every
// field is StateValid; an empty form is vacuously valid.
//
// The form is the observer of each of its fields. Its own observer is
// called only when the aggregate flips, never twice in a row with the same
// value.
type Form struct {
	name       string
	fields     []Validatable
	pending    []Validatable
	aggregate  *transition.Machine
	observer   FormObserver
	duplicates DuplicatePolicy
	initial    InitialNotification
	logger     *slog.Logger
	batching   int
}

// New creates a form. Fields given with WithFields are added after all
// options are applied, so an observer given with WithObserver receives the
// initial notification.
func New(opts ...Option) (*Form, error) {
	f := &Form{
		aggregate: transition.New(aggregatePending, aggregateValid, aggregateInvalid),
		logger:    logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With("form", f.name)

	pending := f.pending
	f.pending = nil
	if len(pending) > 0 {
		if err := f.AddFields(pending...); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Name returns the form name.
func (f *Form) Name() string { return f.name }

// Fields returns a copy of the tracked fields in insertion order.
func (f *Form) Fields() []Validatable {
	return slices.Clone(f.fields)
}

// Len returns the number of tracked fields.
func (f *Form) Len() int { return len(f.fields) }

// Contains reports whether field is tracked by the form.
func (f *Form) Contains(field Validatable) bool {
	return f.indexOf(field) >= 0
}

// Observer returns the form observer, or nil.
func (f *Form) Observer() FormObserver { return f.observer }

// SetObserver replaces the form observer.
func (f *Form) SetObserver(o FormObserver) { f.observer = o }

// IsValid reports whether every tracked field is StateValid. It is computed
// on every call.
func (f *Form) IsValid() bool {
	for _, field := range f.fields {
		if field.State() != StateValid {
			return false
		}
	}
	return true
}

// AddFields appends fields, makes the form their observer and re-evaluates
// the aggregate. nil fields are skipped. Under DuplicateReject a field that
// is already tracked, or repeated in fields, fails the call with
// ErrDuplicateField and nothing is added.
func (f *Form) AddFields(fields ...Validatable) error {
	admitted, err := f.admit(fields, f.fields)
	if err != nil {
		return err
	}
	if len(admitted) == 0 {
		return nil
	}

	for _, field := range admitted {
		f.fields = append(f.fields, field)
		field.SetObserver(f)
	}
	f.logger.Debug("fields added", "count", len(admitted), "total", len(f.fields))
	f.evaluate()
	return nil
}

// RemoveFields stops tracking fields, clears their observer slot and
// re-evaluates the aggregate. Fields the form does not track are ignored.
func (f *Form) RemoveFields(fields ...Validatable) {
	removed := 0
	for _, field := range fields {
		i := f.indexOf(field)
		if i < 0 {
			continue
		}
		f.detach(field)
		f.fields = slices.Delete(f.fields, i, i+1)
		removed++
	}
	if removed == 0 {
		return
	}

	f.logger.Debug("fields removed", "count", removed, "total", len(f.fields))
	f.evaluate()
}

// ReplaceFields detaches every tracked field, tracks fields instead and
// re-evaluates once. Duplicates within fields follow the duplicate policy;
// on error the form is unchanged.
func (f *Form) ReplaceFields(fields ...Validatable) error {
	admitted, err := f.admit(fields, nil)
	if err != nil {
		return err
	}

	for _, field := range f.fields {
		f.detach(field)
	}
	f.fields = admitted
	for _, field := range f.fields {
		field.SetObserver(f)
	}

	f.logger.Debug("fields replaced", "total", len(f.fields))
	f.evaluate()
	return nil
}

// Revalidate revalidates every tracked field and re-evaluates the aggregate
// once afterwards, so intermediate combinations are never reported. It
// reports whether any field changed state.
func (f *Form) Revalidate() bool {
	snapshot := slices.Clone(f.fields)

	f.batching++
	changed := false
	for _, field := range snapshot {
		if field.Revalidate() {
			changed = true
		}
	}
	f.batching--

	if f.batching == 0 {
		f.evaluate()
	}
	return changed
}

// FieldStateChanged implements FieldObserver. Notifications from fields the
// form no longer tracks are ignored.
func (f *Form) FieldStateChanged(field Validatable) {
	if !f.Contains(field) {
		f.logger.Debug("ignoring change from untracked field", "field", field.Name())
		return
	}
	if f.batching > 0 {
		return
	}
	f.evaluate()
}

// evaluate recomputes the aggregate and notifies the observer if it flipped.
// The new value is recorded before the observer runs, so an observer that
// mutates the form sees a consistent baseline.
func (f *Form) evaluate() {
	first := f.aggregate.Current() == aggregatePending
	if first && len(f.fields) == 0 {
		return
	}

	valid := f.IsValid()
	target := aggregateInvalid
	if valid {
		target = aggregateValid
	}

	changed, err := f.aggregate.MoveTo(target)
	if err != nil {
		f.logger.Error("recording aggregate", "error", err)
		return
	}
	if !changed {
		return
	}
	if first && f.initial == InitialSilent {
		f.logger.Debug("initial validity recorded", "valid", valid)
		return
	}

	f.logger.Debug("form validity changed", "valid", valid)
	if f.observer != nil {
		f.observer.FormValidityChanged(valid)
	}
}

// admit filters candidates against existing members according to the
// duplicate policy.
func (f *Form) admit(candidates, existing []Validatable) ([]Validatable, error) {
	admitted := make([]Validatable, 0, len(candidates))
	for _, field := range candidates {
		if field == nil {
			continue
		}
		if slices.Contains(existing, field) || slices.Contains(admitted, field) {
			if f.duplicates == DuplicateIgnore {
				continue
			}
			return nil, errors.Wrapf(ErrDuplicateField, "%q", field.Name())
		}
		admitted = append(admitted, field)
	}
	return admitted, nil
}

// detach clears field's observer slot if it still points at this form.
func (f *Form) detach(field Validatable) {
	if obs, ok := field.Observer().(*Form); ok && obs == f {
		field.SetObserver(nil)
	}
}

func (f *Form) indexOf(field Validatable) int {
	if field == nil {
		return -1
	}
	return slices.Index(f.fields, field)
}
