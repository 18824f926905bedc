package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/paths"
	"github.com/thoreinstein/formcheck/internal/report"
	"github.com/thoreinstein/formcheck/pkg/validation"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "FORMCHECK"

// Config holds formcheck settings.
type Config struct {
	Version             int    `mapstructure:"version" yaml:"version"`
	InitialNotification string `mapstructure:"initial_notification" yaml:"initial_notification"`
	EmptyContent        string `mapstructure:"empty_content" yaml:"empty_content"`
	DuplicateFields     string `mapstructure:"duplicate_fields" yaml:"duplicate_fields"`
	Output              string `mapstructure:"output" yaml:"output"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:             1,
		InitialNotification: validation.InitialEager.String(),
		EmptyContent:        validation.EmptyShortCircuit.String(),
		DuplicateFields:     validation.DuplicateReject.String(),
		Output:              string(report.FormatText),
	}
}

// Dir returns the directory searched for config.yaml after the current
// directory.
func Dir() string {
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir
	}
	return paths.ConfigDir()
}

// Init resets Viper and registers search paths, environment overrides and
// defaults. Call it once at startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName(strings.TrimSuffix(paths.ConfigFileName, filepath.Ext(paths.ConfigFileName)))
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault("version", d.Version)
	viper.SetDefault("initial_notification", d.InitialNotification)
	viper.SetDefault("empty_content", d.EmptyContent)
	viper.SetDefault("duplicate_fields", d.DuplicateFields)
	viper.SetDefault("output", d.Output)
}

// Load reads the configuration. With an explicit path the file must exist;
// otherwise a missing file yields the defaults. The result is validated.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
		case errors.As(err, &notFound), os.IsNotExist(err):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, errors.Wrap(errors.Mark(errors.New(strings.Join(msgs, "; ")), errors.ErrInvalidConfig), "validating config")
	}
	return &cfg, nil
}

// FileUsed returns the config file Load read, or "" if none.
func FileUsed() string {
	return viper.ConfigFileUsed()
}

// InitialPolicy returns the configured initial notification policy.
func (c *Config) InitialPolicy() validation.InitialNotification {
	if c.InitialNotification == validation.InitialSilent.String() {
		return validation.InitialSilent
	}
	return validation.InitialEager
}

// EmptyPolicy returns the configured empty content policy.
func (c *Config) EmptyPolicy() validation.EmptyPolicy {
	if c.EmptyContent == validation.EmptyValidate.String() {
		return validation.EmptyValidate
	}
	return validation.EmptyShortCircuit
}

// DuplicatePolicy returns the configured duplicate field policy.
func (c *Config) DuplicatePolicy() validation.DuplicatePolicy {
	if c.DuplicateFields == validation.DuplicateIgnore.String() {
		return validation.DuplicateIgnore
	}
	return validation.DuplicateReject
}

// OutputFormat returns the configured report format.
func (c *Config) OutputFormat() report.Format {
	if f, err := report.ParseFormat(c.Output); err == nil {
		return f
	}
	return report.FormatText
}
