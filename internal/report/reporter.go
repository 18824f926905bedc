package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/pkg/validation"
)

// Format specifies the output format.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// ParseFormat accepts "text" or "json"; anything else is an error.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	}
	return "", errors.Newf("unknown output format %q (want text or json)", s)
}

const maxValueWidth = 50

// Reporter writes results and snapshots.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{out: out, format: format}
}

// Result writes a lint result.
func (r *Reporter) Result(result *Result) error {
	if result == nil {
		return nil
	}
	if r.format == FormatJSON {
		return r.writeJSON(result)
	}

	header := "Definition"
	if result.Source != "" {
		header = result.Source
	}

	errs, warns, infos := result.Errors(), result.Warnings(), result.Infos()
	if len(errs) == 0 && len(warns) == 0 {
		fmt.Fprintf(r.out, "%s %s is valid\n", color.GreenString("✓"), header)
		r.printIssues("Notes:", infos, color.FgCyan)
		return nil
	}

	var summary []string
	if len(errs) > 0 {
		summary = append(summary, color.RedString("%d error(s)", len(errs)))
	}
	if len(warns) > 0 {
		summary = append(summary, color.YellowString("%d warning(s)", len(warns)))
	}
	fmt.Fprintf(r.out, "%s: %s\n\n", header, strings.Join(summary, ", "))

	r.printIssues("Errors:", errs, color.FgRed)
	r.printIssues("Warnings:", warns, color.FgYellow)
	r.printIssues("Notes:", infos, color.FgCyan)
	return nil
}

// Snapshot writes the state of a form.
func (r *Reporter) Snapshot(s Snapshot) error {
	if r.format == FormatJSON {
		return r.writeJSON(s)
	}

	verdict := color.RedString("invalid")
	if s.Valid {
		verdict = color.GreenString("valid")
	}
	fmt.Fprintf(r.out, "Form %s: %s\n", s.Form, verdict)

	width := 0
	for _, f := range s.Fields {
		width = max(width, len(f.Name))
	}
	for _, f := range s.Fields {
		fmt.Fprintf(r.out, "  %s %-*s  %s\n", stateMark(f.State), width, f.Name, truncate(f.Value))
	}
	return nil
}

func (r *Reporter) writeJSON(v any) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(v), "encoding JSON report")
}

func (r *Reporter) printIssues(title string, issues []Issue, c color.Attribute) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintln(r.out, title)
	for _, i := range issues {
		r.printIssue(i, c)
	}
	fmt.Fprintln(r.out)
}

func (r *Reporter) printIssue(i Issue, c color.Attribute) {
	dim := color.New(color.FgHiBlack)

	var sb strings.Builder
	sb.WriteString("  • ")
	if i.Field != "" {
		sb.WriteString(color.New(c).Sprint(i.Field))
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)

	if len(i.Context) > 0 {
		parts := make([]string, 0, len(i.Context))
		for k, v := range i.Context {
			parts = append(parts, k+"="+v)
		}
		sort.Strings(parts)
		sb.WriteString(" ")
		sb.WriteString(dim.Sprintf("(%s)", strings.Join(parts, ", ")))
	}
	if i.Value != nil {
		sb.WriteString(dim.Sprintf(" [%s]", truncate(fmt.Sprint(i.Value))))
	}

	fmt.Fprintln(r.out, sb.String())
}

func stateMark(s validation.State) string {
	switch s {
	case validation.StateValid:
		return color.GreenString("✓ %-7s", s)
	case validation.StateInvalid:
		return color.RedString("✗ %-7s", s)
	default:
		return color.New(color.FgHiBlack).Sprintf("· %-7s", s)
	}
}

func truncate(s string) string {
	if len(s) > maxValueWidth {
		return s[:maxValueWidth-3] + "..."
	}
	return s
}
