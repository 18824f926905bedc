package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/formdef"
	"github.com/thoreinstein/formcheck/internal/logging"
	"github.com/thoreinstein/formcheck/internal/report"
	"github.com/thoreinstein/formcheck/internal/session"
)

// loadDefinition reads the definition at path, turning decode failures into
// user errors.
func loadDefinition(path string) (*formdef.Definition, error) {
	def, err := formdef.Load(path)
	if err != nil {
		if errors.Is(err, errors.ErrInvalidDefinition) {
			return nil, errors.NewUserError(err, "Check the file against 'formcheck init' output")
		}
		return nil, errors.NewUserError(err, fmt.Sprintf("Check that %s exists and is readable", path))
	}
	return def, nil
}

// openSession loads the definition at path and builds a session configured
// from the loaded config and the command's logger.
func openSession(cmd *cobra.Command, path string, opts ...session.Option) (*formdef.Definition, *session.Session, error) {
	def, err := loadDefinition(path)
	if err != nil {
		return nil, nil, err
	}

	cfg := currentConfig()
	base := []session.Option{
		session.WithInitialNotification(cfg.InitialPolicy()),
		session.WithEmptyPolicy(cfg.EmptyPolicy()),
		session.WithDuplicatePolicy(cfg.DuplicatePolicy()),
		session.WithLogger(logging.FromContext(cmd.Context())),
	}

	s, err := formdef.Build(def, append(base, opts...)...)
	if err != nil {
		if errors.Is(err, errors.ErrInvalidDefinition) {
			return nil, nil, errors.NewUserError(err, fmt.Sprintf("Run 'formcheck lint %s' for details", path))
		}
		return nil, nil, err
	}
	return def, s, nil
}

// outputFormat resolves the report format: --json wins over the config.
func outputFormat(jsonFlag bool) report.Format {
	if jsonFlag {
		return report.FormatJSON
	}
	return currentConfig().OutputFormat()
}

// parseAssignment splits "name=value".
func parseAssignment(s string) (name, value string, err error) {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", errors.Newf("invalid assignment %q (want name=value)", s)
	}
	return name, value, nil
}

// inputError classifies session errors for exit codes.
func inputError(err error) error {
	switch {
	case errors.Is(err, errors.ErrFieldNotFound):
		return errors.NewUserError(err, "Run 'formcheck fields FILE' to list field names")
	case errors.Is(err, errors.ErrInvalidValue):
		return errors.NewUserError(err, "")
	}
	return err
}

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
