package formdef

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/thoreinstein/formcheck/internal/report"
	"github.com/thoreinstein/formcheck/internal/session"
)

// Lint checks def and reports every problem found. A result without errors
// can be built.
func Lint(def *Definition) *report.Result {
	result := &report.Result{}
	if def == nil {
		result.AddError("", "definition is empty", nil)
		return result
	}

	if strings.TrimSpace(def.Name) == "" {
		result.AddError("name", "form name is required", nil)
	}
	if len(def.Fields) == 0 {
		result.AddWarning("fields", "form has no fields and is always valid", nil)
	}

	seen := make(map[string]int, len(def.Fields))
	for i, f := range def.Fields {
		key := f.Name
		if key == "" {
			key = fmt.Sprintf("fields[%d]", i)
		}
		lintField(result, key, f)

		if f.Name == "" {
			continue
		}
		if first, dup := seen[f.Name]; dup {
			result.AddError(key, "duplicate field name", nil).Context = map[string]string{
				"first": fmt.Sprintf("fields[%d]", first),
			}
			continue
		}
		seen[f.Name] = i
	}
	return result
}

func lintField(result *report.Result, key string, f FieldDef) {
	if f.Name == "" {
		result.AddError(key, "field name is required", nil)
	} else if msg := checkName(f.Name); msg != "" {
		result.AddError(key, msg, f.Name)
	}

	kind := session.Kind(f.KindOrDefault())
	if !kind.Valid() {
		result.AddError(key, "unknown kind", f.Kind).Context = map[string]string{
			"allowed": kindList(),
		}
		return
	}

	if _, err := formatterFor(f.Formatter); err != nil {
		result.AddError(key, err.Error(), nil)
	} else if kind != session.KindText && f.Formatter != "" && f.Formatter != FormatterNone {
		result.AddError(key, "formatters only apply to text fields", f.Formatter)
	}

	if f.Validator == nil {
		result.AddWarning(key, "no validator; the field stays unknown and the form can never be valid", nil)
	} else if err := checkValidator(kind, f.Validator); err != nil {
		result.AddError(key, err.Error(), nil).Context = map[string]string{
			"kind": string(kind),
			"type": f.Validator.Type,
		}
	} else if suggested := formatterHint(kind, f); suggested != "" {
		result.AddInfo(key, "the "+suggested+" formatter shapes input for this validator", suggested)
	}

	if err := checkInitial(kind, f.Initial); err != nil {
		result.AddError(key, "initial value does not parse", f.Initial)
	}
	if _, err := parseTriggers(f.Triggers); err != nil {
		result.AddError(key, err.Error(), nil)
	}
	if f.Secret && kind != session.KindText {
		result.AddWarning(key, "secret only masks text fields", nil)
	}
}

// formatterHint names the formatter matching a text field's validator when
// the field has none.
func formatterHint(kind session.Kind, f FieldDef) string {
	if kind != session.KindText || (f.Formatter != "" && f.Formatter != FormatterNone) {
		return ""
	}
	switch f.Validator.Type {
	case ValidatorZip:
		return FormatterZip
	case ValidatorPhone:
		return FormatterPhone
	}
	return ""
}

func kindList() string {
	names := make([]string, len(session.Kinds))
	for i, k := range session.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// checkName rejects names the line protocol of the watch command cannot
// address.
func checkName(name string) string {
	if strings.HasPrefix(name, "!") {
		return "field name must not start with '!'"
	}
	if strings.ContainsRune(name, '=') {
		return "field name must not contain '='"
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return "field name must not contain whitespace"
	}
	return ""
}
