package config

import (
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/paths"
	"github.com/thoreinstein/formcheck/pkg/fileutil"
)

// ErrUnknownKey indicates a key that is not a config setting.
var ErrUnknownKey = errors.New("unknown config key")

// Keys returns every settable key.
func Keys() []string {
	keys := []string{"version"}
	for _, c := range choices {
		keys = append(keys, c.key)
	}
	return keys
}

// Get returns the value of key as text.
func (c *Config) Get(key string) (string, error) {
	if key == "version" {
		return strconv.Itoa(c.Version), nil
	}
	for _, ch := range choices {
		if ch.key == key {
			return ch.get(c), nil
		}
	}
	return "", errors.Wrapf(ErrUnknownKey, "%q", key)
}

// Set assigns value to key. The result is not validated; Save does that.
func (c *Config) Set(key, value string) error {
	if key == "version" {
		v, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidValue, "version %q is not a number", value)
		}
		c.Version = v
		return nil
	}
	for _, ch := range choices {
		if ch.key == key {
			ch.set(c, value)
			return nil
		}
	}
	return errors.Wrapf(ErrUnknownKey, "%q", key)
}

// WritePath returns the file Save should write: the file Load read, or
// config.yaml in Dir.
func WritePath() string {
	if used := FileUsed(); used != "" {
		return used
	}
	return filepath.Join(Dir(), paths.ConfigFileName)
}

// Save validates cfg and writes it to path atomically, creating the parent
// directory if needed.
func Save(cfg *Config, path string) error {
	if errs := Validate(cfg); len(errs) > 0 {
		return errors.Mark(errs[0], errors.ErrInvalidConfig)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	if err := paths.EnsureParent(path, paths.DefaultDirPerm); err != nil {
		return err
	}
	return errors.Wrap(fileutil.AtomicWriteFile(path, data, 0o644), "writing config")
}
