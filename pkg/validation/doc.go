// Package validation is a reactive field-validation engine.
//
// A [Field] holds mutable content, a [Validator] and a derived [State]. A
// [Form] aggregates any number of fields into a single validity signal and
// notifies its observer only when that signal actually flips.
//
// # Data flow
//
// An input source (a terminal widget, an HTTP handler, a test) mutates a
// field's content and calls [Field.Revalidate]. If the computed state differs
// from the previous one the field notifies its observer, normally the owning
// form, before Revalidate returns. The form recomputes its aggregate and, if
// that changed, calls [FormObserver.FormValidityChanged]. Updates are always
// ordered field, then form, then external listener.
//
//	zip := validation.NewField("zip", validation.ZipCode())
//	phone := validation.NewField("phone", validation.PhoneNumber())
//
//	form, err := validation.New(
//		validation.WithFields(zip, phone),
//		validation.WithObserver(validation.FormObserverFunc(func(valid bool) {
//			fmt.Println("form valid:", valid)
//		})),
//	)
//	if err != nil {
//		return err
//	}
//
//	zip.Update("12345")
//	phone.Update("555-123-4567") // prints "form valid: true"
//
// # Concurrency
//
// The engine is synchronous and single-threaded. Fields and forms must be
// driven from one goroutine; there is no locking.
//
// # Policies
//
// Behavior that differs between reasonable implementations is explicit:
//
//   - Empty content: [EmptyShortCircuit] (default) maps empty content to
//     [StateDefault] without consulting the validator; [EmptyValidate] always
//     calls the validator.
//   - Initial notification: [InitialEager] (default) notifies the form
//     observer on the first evaluation of a non-empty form; [InitialSilent]
//     records it without notifying.
//   - Duplicate members: [DuplicateReject] (default) fails the whole call with
//     [ErrDuplicateField]; [DuplicateIgnore] skips duplicates.
//   - Re-entrancy: forms snapshot their member list before iterating and
//     record the new aggregate before notifying, so an observer may add or
//     remove fields from inside its callback.
package validation
