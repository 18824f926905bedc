package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/formdef"
	"github.com/thoreinstein/formcheck/internal/report"
)

var (
	lintJSON   bool
	lintStrict bool
)

func init() {
	lintCmd.Flags().BoolVar(&lintJSON, "json", false, "output as JSON")
	lintCmd.Flags().BoolVar(&lintStrict, "strict", false, "fail on warnings as well as errors")
	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint FILE",
	Short: "Check a form definition for mistakes",
	Long: `Check a form definition without running it: duplicate or malformed field
names, unknown kinds, validators and formatters, formatters on non-text
fields, bad patterns and tags, initial values that do not parse.

Exits with status 1 when the definition has errors. Warnings alone do not
fail unless --strict is given. Notes are suggestions and never fail.`,
	Example: `  formcheck lint form.yaml
  formcheck lint form.toml --json
  formcheck lint form.yaml --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runLint,
}

func runLint(cmd *cobra.Command, args []string) error {
	path := args[0]
	def, err := loadDefinition(path)
	if err != nil {
		return err
	}

	result := formdef.Lint(def)
	result.Source = path
	if err := report.NewReporter(cmd.OutOrStdout(), outputFormat(lintJSON)).Result(result); err != nil {
		return err
	}

	if result.HasErrors() {
		return errors.NewUserError(result.Err(), fmt.Sprintf("Fix the %d error(s) above", len(result.Errors())))
	}
	if lintStrict && result.HasWarnings() {
		return errors.NewUserError(
			errors.Mark(errors.Newf("%s has %d warning(s)", path, len(result.Warnings())), errors.ErrInvalidDefinition),
			"Fix the warnings above or drop --strict",
		)
	}
	return nil
}
