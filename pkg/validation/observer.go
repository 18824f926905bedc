package validation

// Validatable is the view a Form has of a field. *Field[T] implements it for
// every content type, which lets one form hold fields of different types.
// Implementations must be comparable; forms track members by identity.
type Validatable interface {
	// Name identifies the field in logs and reports.
	Name() string
	// State returns the state computed by the last Revalidate.
	State() State
	// Revalidate recomputes State and reports whether it changed. When it
	// changed, the observer is notified before Revalidate returns.
	Revalidate() bool
	// Observer returns the current observer, or nil.
	Observer() FieldObserver
	// SetObserver replaces the observer slot. nil detaches the field.
	SetObserver(o FieldObserver)
}

// FieldObserver is notified when a field's state changes.
type FieldObserver interface {
	FieldStateChanged(field Validatable)
}

// FormObserver is notified when a form's aggregate validity flips.
type FormObserver interface {
	FormValidityChanged(valid bool)
}

// FieldObserverFunc adapts a function to a FieldObserver.
type FieldObserverFunc func(field Validatable)

// FieldStateChanged calls f.
func (f FieldObserverFunc) FieldStateChanged(field Validatable) {
	f(field)
}

// FormObserverFunc adapts a function to a FormObserver.
type FormObserverFunc func(valid bool)

// FormValidityChanged calls f.
func (f FormObserverFunc) FormValidityChanged(valid bool) {
	f(valid)
}
