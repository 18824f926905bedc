// Package commands implements the CLI commands for formcheck.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/formcheck/cmd"
	"github.com/thoreinstein/formcheck/internal/config"
	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/logging"
	"github.com/thoreinstein/formcheck/internal/paths"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configPath holds the value of the --config flag.
var configPath string

// appConfig is the loaded configuration, nil until initConfig succeeds.
var appConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format (a bare name goes in the state directory)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: ./config.yaml or $XDG_CONFIG_HOME/formcheck/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("formcheck version {{.Version}}\n")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	appConfig, configLoadErr = config.Load(configPath)
}

var rootCmd = &cobra.Command{
	Use:   "formcheck",
	Short: "Validate forms field by field",
	Long: `formcheck loads a form definition (YAML or TOML), feeds input into its
fields and reports each field's state and whether the form as a whole is
valid.

Fields are validated as their content changes. The form is valid when every
field is valid.`,
	Example: `  # Write an example definition
  formcheck init

  # Check a definition for mistakes
  formcheck lint form.yaml

  # Validate a set of values
  formcheck validate form.yaml --set zip=90210 --set terms=true

  # Stream edits from stdin
  printf 'phone=555\nphone=5551234567\n' | formcheck watch form.yaml

  See Also: formcheck edit, formcheck fields`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("conflicting flags"), "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv("FORMCHECK_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primary slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primary = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primary = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primary}
	if logFile != "" {
		path := paths.LogFile(logFile)
		if err := paths.EnsureParent(path, 0); err != nil {
			return errors.NewUserError(err, "check the --log-file path")
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "check the --log-file path")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))
	return nil
}

// checkConfig reports config load errors, except for commands that work
// without a config.
func checkConfig(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	if used := config.FileUsed(); used != "" {
		logging.FromContext(cmd.Context()).Debug("config loaded", "path", used)
	}
	return nil
}

// currentConfig returns the loaded config, or the defaults if none was
// loaded.
func currentConfig() *config.Config {
	if appConfig == nil {
		return config.Default()
	}
	return appConfig
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
