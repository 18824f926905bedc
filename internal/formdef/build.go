package formdef

import (
	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/session"
)

// Build lints def and, if it has no errors, creates a session with one
// control per field. Each field settles on its initial value before the
// form evaluates, and all fields join the form together, so the first
// form notification reflects the real initial state.
func Build(def *Definition, opts ...session.Option) (*session.Session, error) {
	if err := Lint(def).Err(); err != nil {
		return nil, err
	}

	s, err := session.New(def.Name, opts...)
	if err != nil {
		return nil, err
	}
	err = s.Batch(func() error {
		for _, f := range def.Fields {
			if err := addField(s, f); err != nil {
				return errors.Wrapf(err, "field %q", f.Name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func addField(s *session.Session, f FieldDef) error {
	triggers, err := parseTriggers(f.Triggers)
	if err != nil {
		return err
	}
	meta := session.Meta{
		Label:    f.Label,
		Secret:   f.Secret,
		Triggers: triggers,
		Initial:  f.Initial,
	}

	switch session.Kind(f.KindOrDefault()) {
	case session.KindText:
		v, err := textValidator(f.Validator)
		if err != nil {
			return err
		}
		formatter, err := formatterFor(f.Formatter)
		if err != nil {
			return err
		}
		return s.AddText(f.Name, v, formatter, meta)
	case session.KindBool:
		v, err := boolValidator(f.Validator)
		if err != nil {
			return err
		}
		return s.AddBool(f.Name, v, meta)
	case session.KindNumber:
		v, err := numberValidator(f.Validator)
		if err != nil {
			return err
		}
		return s.AddNumber(f.Name, v, meta)
	case session.KindDate:
		v, err := dateValidator(f.Validator)
		if err != nil {
			return err
		}
		return s.AddDate(f.Name, v, meta)
	}
	return errors.Newf("unknown kind %q", f.Kind)
}
