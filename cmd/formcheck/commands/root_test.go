package commands

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/fatih/color"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/logging"
)

func init() {
	color.NoColor = true
}

const signupYAML = `name: signup
fields:
  - name: zip
    label: ZIP code
    validator: {type: zip}
    formatter: zip
  - name: phone
    validator: {type: phone}
    formatter: phone
  - name: age
    kind: number
    validator: {type: range, min: 18, max: 120}
  - name: terms
    kind: bool
    validator: {type: checked}
`

// resetFlags restores every package-level flag variable after the test.
func resetFlags(t *testing.T) {
	t.Helper()
	verbosity, quiet, logFormat, logFile, configPath = 0, false, "text", "", ""
	validateSets, validateJSON, validateOut = nil, false, ""
	watchJSON, lintJSON, lintStrict, fieldsInteractive, initForce, initEdit, convertForce = false, false, false, false, false, false, false
	appConfig, configLoadErr = nil, nil
	t.Cleanup(func() {
		verbosity, quiet, logFormat, logFile, configPath = 0, false, "text", "", ""
		validateSets, validateJSON, validateOut = nil, false, ""
		watchJSON, lintJSON, lintStrict, fieldsInteractive, initForce, initEdit, convertForce = false, false, false, false, false, false, false
	})
}

// execute runs the root command with args and stdin, returning stdout and
// stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(t)
	t.Setenv("FORMCHECK_CONFIG_DIR", t.TempDir())

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	// Subcommands keep the context set by a previous run; clear it so they
	// inherit this test's context.
	for _, c := range rootCmd.Commands() {
		c.SetContext(nil) //nolint:staticcheck // nil makes cobra copy the root context
	}
	err := rootCmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

// writeDefinition writes content to name in a temp dir and returns the path.
func writeDefinition(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing definition: %v", err)
	}
	return path
}

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > logging.LevelTrace {
				below := tt.wantLevel - 4
				if logger.Enabled(t.Context(), below) {
					t.Errorf("expected level %v to be disabled", below)
				}
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"FORMCHECK_DEBUG=1", "1", slog.LevelDebug},
		{"FORMCHECK_DEBUG=true", "true", slog.LevelDebug},
		{"FORMCHECK_DEBUG=2", "2", logging.LevelTrace},
		{"FORMCHECK_DEBUG=0", "0", slog.LevelWarn},
		{"FORMCHECK_DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = 0
			t.Setenv("FORMCHECK_DEBUG", tt.envVal)

			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}
			if !slog.Default().Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
		})
	}
}

func TestSetupLogging_FlagPrecedence(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	t.Setenv("FORMCHECK_DEBUG", "2")
	verbosity = 1

	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	logger := slog.Default()
	if !logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("expected Info level to be enabled")
	}
	if logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("expected Debug level to be disabled (flag should override env var)")
	}
}

func TestSetupLogging_QuietMutualExclusion(t *testing.T) {
	origVerbosity, origQuiet := verbosity, quiet
	defer func() { verbosity, quiet = origVerbosity, origQuiet }()

	verbosity, quiet = 1, true

	err := setupLogging(rootCmd)
	if err == nil {
		t.Fatal("expected error for --quiet with --verbose")
	}
	if errors.ExitCode(err) != errors.ExitUser {
		t.Errorf("ExitCode() = %d, want %d", errors.ExitCode(err), errors.ExitUser)
	}
}

func TestSetupLogging_LogFile(t *testing.T) {
	origFile := logFile
	defer func() { logFile = origFile }()

	logFile = filepath.Join(t.TempDir(), "formcheck.log")
	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	slog.Error("field state changed", "field", "zip")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"field":"zip"`) {
		t.Errorf("log file should contain JSON record, got %q", data)
	}
}

func TestSetupLogging_LogFileBareName(t *testing.T) {
	origFile := logFile
	defer func() { logFile = origFile }()

	t.Cleanup(xdg.Reload)
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	xdg.Reload()

	logFile = "formcheck.log"
	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	slog.Error("field state changed", "field", "phone")

	data, err := os.ReadFile(filepath.Join(stateHome, "formcheck", "formcheck.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"field":"phone"`) {
		t.Errorf("log file should contain JSON record, got %q", data)
	}
}

func TestRoot_MissingConfigFile(t *testing.T) {
	path := writeDefinition(t, "form.yaml", signupYAML)

	_, _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "lint", path)
	if err == nil {
		t.Fatal("expected error for missing --config file")
	}
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestRoot_InvalidConfig(t *testing.T) {
	path := writeDefinition(t, "form.yaml", signupYAML)
	cfg := writeDefinition(t, "config.yaml", "version: 1\nempty_content: sometimes\n")

	_, _, err := execute(t, "", "--config", cfg, "lint", path)
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Fatalf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestRoot_ConfigOutputFormat(t *testing.T) {
	path := writeDefinition(t, "form.yaml", signupYAML)
	cfg := writeDefinition(t, "config.yaml", "version: 1\noutput: json\n")

	stdout, _, err := execute(t, "", "--config", cfg, "lint", path)
	if err != nil {
		t.Fatalf("lint error = %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(stdout), "{") {
		t.Errorf("output should be JSON when config sets output: json, got %q", stdout)
	}
}
