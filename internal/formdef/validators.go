package formdef

import (
	"math"
	"strings"
	"time"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/session"
	"github.com/thoreinstein/formcheck/pkg/format"
	"github.com/thoreinstein/formcheck/pkg/input"
	"github.com/thoreinstein/formcheck/pkg/validation"
)

// ErrUnsupportedValidator is returned for a validator type that does not
// exist or does not apply to the field kind.
var ErrUnsupportedValidator = errors.New("unsupported validator")

func unsupported(spec *ValidatorSpec, kind session.Kind) error {
	return errors.Wrapf(ErrUnsupportedValidator, "%q for %s fields", spec.Type, kind)
}

func textValidator(spec *ValidatorSpec) (validation.Validator[string], error) {
	if spec == nil {
		return nil, nil
	}
	switch spec.Type {
	case ValidatorZip:
		return validation.ZipCode(), nil
	case ValidatorPhone:
		return validation.PhoneNumber(), nil
	case ValidatorDigits:
		if spec.Length <= 0 {
			return nil, errors.Newf("digits validator needs a positive length, got %d", spec.Length)
		}
		return validation.Digits(spec.Length), nil
	case ValidatorPattern:
		if spec.Pattern == "" {
			return nil, errors.New("pattern validator needs a pattern")
		}
		return validation.Pattern(spec.Pattern)
	case ValidatorTag:
		if spec.Tag == "" {
			return nil, errors.New("tag validator needs a tag")
		}
		return validation.Tag[string](spec.Tag)
	case ValidatorRequired:
		return validation.Predicate(func(s string) bool { return strings.TrimSpace(s) != "" }), nil
	}
	return nil, unsupported(spec, session.KindText)
}

func boolValidator(spec *ValidatorSpec) (validation.Validator[bool], error) {
	if spec == nil {
		return nil, nil
	}
	switch spec.Type {
	case ValidatorChecked, ValidatorRequired:
		return validation.Checked(), nil
	}
	return nil, unsupported(spec, session.KindBool)
}

func numberValidator(spec *ValidatorSpec) (validation.Validator[float64], error) {
	if spec == nil {
		return nil, nil
	}
	switch spec.Type {
	case ValidatorRange:
		if spec.Min == nil && spec.Max == nil {
			return nil, errors.New("range validator needs min, max or both")
		}
		lo, hi := math.Inf(-1), math.Inf(1)
		if spec.Min != nil {
			lo = *spec.Min
		}
		if spec.Max != nil {
			hi = *spec.Max
		}
		if lo > hi {
			return nil, errors.Newf("range min %v is greater than max %v", lo, hi)
		}
		return validation.Range(lo, hi), nil
	case ValidatorTag:
		if spec.Tag == "" {
			return nil, errors.New("tag validator needs a tag")
		}
		return validation.Tag[float64](spec.Tag)
	case ValidatorRequired:
		return validation.Predicate(func(n float64) bool { return !math.IsNaN(n) }), nil
	}
	return nil, unsupported(spec, session.KindNumber)
}

func dateValidator(spec *ValidatorSpec) (validation.Validator[time.Time], error) {
	if spec == nil {
		return nil, nil
	}
	switch spec.Type {
	case ValidatorNotBefore:
		earliest, err := time.Parse(time.DateOnly, spec.Date)
		if err != nil {
			return nil, errors.Newf("not_before validator needs date in YYYY-MM-DD form, got %q", spec.Date)
		}
		return validation.NotBefore(earliest), nil
	case ValidatorRequired:
		return validation.Predicate(func(d time.Time) bool { return !d.IsZero() }), nil
	}
	return nil, unsupported(spec, session.KindDate)
}

// checkValidator builds the validator for a field only to see whether it
// can be built.
func checkValidator(kind session.Kind, spec *ValidatorSpec) error {
	var err error
	switch kind {
	case session.KindText:
		_, err = textValidator(spec)
	case session.KindBool:
		_, err = boolValidator(spec)
	case session.KindNumber:
		_, err = numberValidator(spec)
	case session.KindDate:
		_, err = dateValidator(spec)
	}
	return err
}

func formatterFor(name string) (format.Formatter, error) {
	switch name {
	case "", FormatterNone:
		return format.None(), nil
	case FormatterZip:
		return format.ZipCode(), nil
	case FormatterPhone:
		return format.PhoneNumber(), nil
	}
	return nil, errors.Newf("unknown formatter %q", name)
}

func parseTriggers(names []string) (input.Event, error) {
	var ev input.Event
	for _, name := range names {
		e, err := input.ParseEvent(name)
		if err != nil {
			return 0, err
		}
		ev |= e
	}
	return ev, nil
}

func checkInitial(kind session.Kind, raw string) error {
	var err error
	switch kind {
	case session.KindBool:
		_, err = session.ParseBool(raw)
	case session.KindNumber:
		_, err = session.ParseNumber(raw)
	case session.KindDate:
		_, err = session.ParseDate(raw)
	}
	return err
}
