package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/formcheck/internal/editor"
	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/formdef"
	"github.com/thoreinstein/formcheck/internal/paths"
	"github.com/thoreinstein/formcheck/internal/report"
	"github.com/thoreinstein/formcheck/pkg/fileutil"
)

// defaultDefinitionFile is written when init is given no path.
const defaultDefinitionFile = "form.yaml"

var (
	initForce bool
	initEdit  bool
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing file")
	initCmd.Flags().BoolVarP(&initEdit, "edit", "e", false, "open the file in $EDITOR and lint it afterwards")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [FILE]",
	Short: "Write an example form definition",
	Long: `Write an example form definition covering every field kind. The syntax
follows the file extension: .toml writes TOML, anything else YAML.

With --edit the file is opened in $FORMCHECK_EDITOR, $EDITOR or $VISUAL and
linted when the editor exits.`,
	Example: `  formcheck init
  formcheck init signup.toml
  formcheck init form.yaml --force --edit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := defaultDefinitionFile
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return errors.NewUserError(errors.Newf("%s already exists", path), "Use --force to overwrite")
	}

	data, err := formdef.Marshal(formdef.Example(), formdef.SyntaxFor(path))
	if err != nil {
		return err
	}
	if err := paths.EnsureParent(path, paths.DefaultDirPerm); err != nil {
		return errors.NewSystemError(err, "")
	}
	if err := fileutil.AtomicWriteFile(path, data, 0o644); err != nil {
		return errors.NewSystemError(err, "")
	}

	out := cmd.OutOrStdout()
	if !quiet {
		fmt.Fprintf(out, "Created %s\n", path)
	}
	if !initEdit {
		return nil
	}

	streams := editor.Streams{In: cmd.InOrStdin(), Out: out, Err: cmd.ErrOrStderr()}
	if err := editor.Open(cmd.Context(), path, streams, os.Getenv); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to your editor command")
	}

	def, err := loadDefinition(path)
	if err != nil {
		return err
	}
	result := formdef.Lint(def)
	result.Source = path
	if err := report.NewReporter(out, currentConfig().OutputFormat()).Result(result); err != nil {
		return err
	}
	if result.HasErrors() {
		return errors.NewUserError(result.Err(), fmt.Sprintf("Run 'formcheck init %s --force --edit' to start over", path))
	}
	return nil
}
