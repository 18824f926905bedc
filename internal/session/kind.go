package session

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/thoreinstein/formcheck/internal/errors"
)

// Kind is the content type of a field.
type Kind string

const (
	KindText   Kind = "text"
	KindBool   Kind = "bool"
	KindNumber Kind = "number"
	KindDate   Kind = "date"
)

// Kinds lists every supported kind.
var Kinds = []Kind{KindText, KindBool, KindNumber, KindDate}

// Valid reports whether k is a supported kind.
func (k Kind) Valid() bool {
	return slices.Contains(Kinds, k)
}

// ParseBool parses raw input for a bool field. Empty input is false.
func ParseBool(raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Wrapf(errors.ErrInvalidValue, "%q is not a boolean", raw)
	}
	return b, nil
}

// ParseNumber parses raw input for a number field. Empty input clears the
// field and yields NaN.
func ParseNumber(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN(), nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) {
		return 0, errors.Wrapf(errors.ErrInvalidValue, "%q is not a number", raw)
	}
	return n, nil
}

// ParseDate parses raw input in YYYY-MM-DD form. Empty input clears the
// field and yields the zero time.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, errors.Wrapf(errors.ErrInvalidValue, "%q is not a date (want YYYY-MM-DD)", raw)
	}
	return d, nil
}

func formatNumber(n float64) string {
	if math.IsNaN(n) {
		return ""
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

func formatDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(time.DateOnly)
}
