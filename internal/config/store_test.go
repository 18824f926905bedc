package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/formcheck/internal/errors"
)

func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	for _, key := range Keys() {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("Get(%q) error = %v", key, err)
		}
	}

	if err := cfg.Set("empty_content", "validate"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got, _ := cfg.Get("empty_content"); got != "validate" {
		t.Errorf("Get(empty_content) = %q, want validate", got)
	}

	if err := cfg.Set("version", "2"); err != nil {
		t.Fatalf("Set(version) error = %v", err)
	}
	if cfg.Version != 2 {
		t.Errorf("Version = %d, want 2", cfg.Version)
	}

	if err := cfg.Set("version", "two"); !errors.Is(err, errors.ErrInvalidValue) {
		t.Errorf("Set(version, two) error = %v, want ErrInvalidValue", err)
	}
	if err := cfg.Set("color", "always"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Set(color) error = %v, want ErrUnknownKey", err)
	}
	if _, err := cfg.Get("color"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Get(color) error = %v, want ErrUnknownKey", err)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formcheck", "config.yaml")
	cfg := Default()
	cfg.Output = "json"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if !strings.Contains(string(data), "output: json") {
		t.Errorf("saved config = %q", data)
	}

	Init()
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Output != "json" {
		t.Errorf("Output = %q after reload, want json", loaded.Output)
	}
}

func TestSave_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.DuplicateFields = "merge"

	err := Save(cfg, path)
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Fatalf("Save() error = %v, want ErrInvalidConfig", err)
	}
	if !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("Save() error = %v, want ErrInvalidChoice", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("invalid config should not be written")
	}
}

func TestWritePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FORMCHECK_CONFIG_DIR", dir)
	t.Chdir(t.TempDir())
	Init()
	if _, err := Load(""); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got, want := WritePath(), filepath.Join(dir, "config.yaml"); got != want {
		t.Errorf("WritePath() = %q, want %q", got, want)
	}
}
