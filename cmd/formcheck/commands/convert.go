package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/formdef"
	"github.com/thoreinstein/formcheck/internal/paths"
	"github.com/thoreinstein/formcheck/pkg/fileutil"
)

var convertForce bool

func init() {
	convertCmd.Flags().BoolVarP(&convertForce, "force", "f", false, "overwrite an existing output file")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert SRC DST",
	Short: "Convert a form definition between YAML and TOML",
	Long: `Read a form definition and write it in the syntax of the destination's
extension (.toml for TOML, anything else YAML). Comments are not preserved.`,
	Example: `  formcheck convert form.yaml form.toml`,
	Args:    cobra.ExactArgs(2),
	RunE:    runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	src, dst := args[0], args[1]

	def, err := loadDefinition(src)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dst); err == nil && !convertForce {
		return errors.NewUserError(errors.Newf("%s already exists", dst), "Use --force to overwrite")
	}

	data, err := formdef.Marshal(def, formdef.SyntaxFor(dst))
	if err != nil {
		return err
	}
	if err := paths.EnsureParent(dst, paths.DefaultDirPerm); err != nil {
		return errors.NewSystemError(err, "")
	}
	if err := fileutil.AtomicWriteFile(dst, data, 0o644); err != nil {
		return errors.NewSystemError(err, "")
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", dst, formdef.SyntaxFor(dst))
	}
	return nil
}
