package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/paths"
	"github.com/thoreinstein/formcheck/internal/report"
	"github.com/thoreinstein/formcheck/pkg/fileutil"
	"github.com/thoreinstein/formcheck/pkg/validation"
)

var (
	validateSets []string
	validateJSON bool
	validateOut  string
)

func init() {
	validateCmd.Flags().StringArrayVar(&validateSets, "set", nil, "set a field value (name=value, repeatable)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output as JSON")
	validateCmd.Flags().StringVarP(&validateOut, "out", "o", "", "also write the JSON snapshot to this file")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate a set of field values",
	Long: `Load a form definition, apply values given with --set and report each
field's state. Every field then receives an end-of-editing event, so fields
that only validate when editing ends are checked too.

Exits with status 1 when the form is not valid.`,
	Example: `  formcheck validate form.yaml --set zip=90210 --set phone=5551234567
  formcheck validate form.yaml --set age=42 --json
  formcheck validate form.yaml --set terms=true -o snapshot.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	_, s, err := openSession(cmd, args[0])
	if err != nil {
		return err
	}

	for _, set := range validateSets {
		name, value, err := parseAssignment(set)
		if err != nil {
			return errors.NewUserError(err, "")
		}
		if err := s.Apply(name, value); err != nil {
			return inputError(err)
		}
	}
	for _, name := range s.Names() {
		if _, err := s.EndEditing(name); err != nil {
			return err
		}
	}

	snap := s.Snapshot()
	if validateOut != "" {
		if err := paths.EnsureParent(validateOut, paths.DefaultDirPerm); err != nil {
			return errors.NewSystemError(err, "")
		}
		if err := fileutil.AtomicWriteJSON(validateOut, snap, 0o644); err != nil {
			return errors.NewSystemError(err, "")
		}
	}

	if !quiet || validateJSON {
		if err := report.NewReporter(cmd.OutOrStdout(), outputFormat(validateJSON)).Snapshot(snap); err != nil {
			return err
		}
	}

	if !snap.Valid {
		bad := len(snap.Fields) - snap.Count(validation.StateValid)
		return errors.NewUserError(errors.ErrFormInvalid, fmt.Sprintf("%d field(s) are not valid", bad))
	}
	return nil
}
