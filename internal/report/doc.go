// Package report collects and prints the outcome of checking a form.
//
// Two kinds of output share one [Reporter]:
//
//   - [Result]: issues found while linting a form definition, each with a
//     [Severity] and the field it concerns.
//   - [Snapshot]: the state of every field of a live form plus the
//     aggregate validity.
//
// Both render as colored text for terminals or as JSON:
//
//	r := report.NewReporter(os.Stdout, report.FormatText)
//	if err := r.Snapshot(sess.Snapshot()); err != nil {
//		return err
//	}
package report
