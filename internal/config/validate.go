package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/report"
	"github.com/thoreinstein/formcheck/pkg/validation"
)

// CurrentVersion is the only supported config version.
const CurrentVersion = 1

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates a version other than CurrentVersion.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidChoice indicates a value outside a key's allowed set.
	ErrInvalidChoice = errors.New("invalid value")
)

var choices = []struct {
	key     string
	get     func(*Config) string
	set     func(*Config, string)
	allowed []string
}{
	{
		key:     "initial_notification",
		get:     func(c *Config) string { return c.InitialNotification },
		set:     func(c *Config, v string) { c.InitialNotification = v },
		allowed: []string{validation.InitialEager.String(), validation.InitialSilent.String()},
	},
	{
		key:     "empty_content",
		get:     func(c *Config) string { return c.EmptyContent },
		set:     func(c *Config, v string) { c.EmptyContent = v },
		allowed: []string{validation.EmptyShortCircuit.String(), validation.EmptyValidate.String()},
	},
	{
		key:     "duplicate_fields",
		get:     func(c *Config) string { return c.DuplicateFields },
		set:     func(c *Config, v string) { c.DuplicateFields = v },
		allowed: []string{validation.DuplicateReject.String(), validation.DuplicateIgnore.String()},
	},
	{
		key:     "output",
		get:     func(c *Config) string { return c.Output },
		set:     func(c *Config, v string) { c.Output = v },
		allowed: []string{string(report.FormatText), string(report.FormatJSON)},
	},
}

// Validate checks cfg and returns every problem, or nil.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error
	if cfg.Version != CurrentVersion {
		errs = append(errs, &VersionError{Version: cfg.Version})
	}
	for _, c := range choices {
		if v := c.get(cfg); !slices.Contains(c.allowed, v) {
			errs = append(errs, &ChoiceError{Key: c.key, Value: v, Allowed: c.allowed})
		}
	}
	return errs
}

// VersionError reports an unsupported version.
type VersionError struct {
	Version int
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%v: %d", ErrUnsupportedVersion, e.Version)
}

func (e *VersionError) Unwrap() error {
	return ErrUnsupportedVersion
}

// ChoiceError reports a value outside the allowed set for a key.
type ChoiceError struct {
	Key     string
	Value   string
	Allowed []string
}

func (e *ChoiceError) Error() string {
	return fmt.Sprintf("%s: %v %q (want %s)", e.Key, ErrInvalidChoice, e.Value, strings.Join(e.Allowed, " or "))
}

func (e *ChoiceError) Unwrap() error {
	return ErrInvalidChoice
}
