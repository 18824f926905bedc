package report

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/formcheck/internal/errors"
)

// Severity represents the impact of an issue.
type Severity int

const (
	// SeverityError makes a definition unusable.
	SeverityError Severity = iota
	// SeverityWarning flags a definition that works but is likely wrong.
	SeverityWarning
	// SeverityInfo is informational.
	SeverityInfo
)

var severityNames = map[Severity]string{
	SeverityError:   "error",
	SeverityWarning: "warning",
	SeverityInfo:    "info",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	for sev, name := range severityNames {
		if name == string(text) {
			*s = sev
			return nil
		}
	}
	return errors.Newf("unknown severity %q", text)
}

// Issue is a single problem found in a definition.
type Issue struct {
	Severity Severity          `json:"severity"`
	Field    string            `json:"field,omitempty"`
	Message  string            `json:"message"`
	Value    any               `json:"value,omitempty"`
	Context  map[string]string `json:"context,omitempty"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Field != "" {
		fmt.Fprintf(&sb, "field %q: ", i.Field)
	}
	sb.WriteString(i.Message)
	if i.Value != nil {
		fmt.Fprintf(&sb, " (got %v)", i.Value)
	}
	return sb.String()
}

// Result aggregates issues. The zero value is ready to use.
type Result struct {
	Source string  `json:"source,omitempty"`
	Issues []Issue `json:"issues"`
}

func (r *Result) add(sev Severity, field, message string, value any) *Issue {
	r.Issues = append(r.Issues, Issue{
		Severity: sev,
		Field:    field,
		Message:  message,
		Value:    value,
	})
	return &r.Issues[len(r.Issues)-1]
}

// AddError records a blocking issue. The returned issue may be given
// context until the next Add call.
func (r *Result) AddError(field, message string, value any) *Issue {
	return r.add(SeverityError, field, message, value)
}

// AddWarning records a non-blocking issue.
func (r *Result) AddWarning(field, message string, value any) *Issue {
	return r.add(SeverityWarning, field, message, value)
}

// AddInfo records an informational note.
func (r *Result) AddInfo(field, message string, value any) *Issue {
	return r.add(SeverityInfo, field, message, value)
}

// HasErrors reports whether any issue is an error.
func (r *Result) HasErrors() bool { return len(r.bySeverity(SeverityError)) > 0 }

// HasWarnings reports whether any issue is a warning.
func (r *Result) HasWarnings() bool { return len(r.bySeverity(SeverityWarning)) > 0 }

// Errors returns the error issues.
func (r *Result) Errors() []Issue { return r.bySeverity(SeverityError) }

// Warnings returns the warning issues.
func (r *Result) Warnings() []Issue { return r.bySeverity(SeverityWarning) }

// Infos returns the informational issues.
func (r *Result) Infos() []Issue { return r.bySeverity(SeverityInfo) }

// Err returns nil if the result has no errors, and otherwise an error
// matching errors.ErrInvalidDefinition that lists them.
func (r *Result) Err() error {
	issues := r.Errors()
	if len(issues) == 0 {
		return nil
	}
	msgs := make([]string, len(issues))
	for i, issue := range issues {
		msgs[i] = issue.Error()
	}
	return errors.Wrap(errors.ErrInvalidDefinition, strings.Join(msgs, "; "))
}

func (r *Result) bySeverity(sev Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == sev {
			res = append(res, i)
		}
	}
	return res
}
