package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/logging"
	"github.com/thoreinstein/formcheck/internal/report"
	"github.com/thoreinstein/formcheck/internal/tui"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit FILE",
	Short: "Fill in a form interactively",
	Long: `Open a terminal form with one input per field. Each field shows its state
as you type; formatted fields (zip, phone) are reformatted in place.

Keys: tab/shift+tab or up/down move between fields, enter submits once the
form is valid, esc or ctrl+c quits.

Requires an interactive terminal.`,
	Example: `  formcheck edit form.yaml`,
	Args:    cobra.ExactArgs(1),
	RunE:    runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if !logging.IsInteractive(in, out) {
		return errors.NewSystemError(errors.ErrNotTerminal, "Use 'formcheck watch' to feed edits from a pipe")
	}

	_, s, err := openSession(cmd, args[0])
	if err != nil {
		return err
	}

	submitted, err := tui.Run(cmd.Context(), s, in, out)
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	if !submitted {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}
	return report.NewReporter(out, currentConfig().OutputFormat()).Snapshot(s.Snapshot())
}
