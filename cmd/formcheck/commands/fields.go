package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/formdef"
	"github.com/thoreinstein/formcheck/internal/logging"
)

var fieldsInteractive bool

func init() {
	fieldsCmd.Flags().BoolVarP(&fieldsInteractive, "interactive", "i", false, "pick a field with a fuzzy finder")
	rootCmd.AddCommand(fieldsCmd)
}

var fieldsCmd = &cobra.Command{
	Use:   "fields FILE",
	Short: "List the fields of a form",
	Long: `List every field of a form definition with its kind, validator and
formatter. With --interactive, pick a field with a fuzzy finder and print
its details.`,
	Example: `  formcheck fields form.yaml
  formcheck fields form.yaml -i`,
	Args: cobra.ExactArgs(1),
	RunE: runFields,
}

func runFields(cmd *cobra.Command, args []string) error {
	def, err := loadDefinition(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(def.Fields) == 0 {
		fmt.Fprintln(out, "No fields defined.")
		return nil
	}

	if fieldsInteractive {
		if !logging.IsInteractive(cmd.InOrStdin(), out) {
			return errors.NewSystemError(errors.ErrNotTerminal, "Run without --interactive to list fields")
		}
		return pickField(out, def.Fields)
	}

	listFields(out, def.Fields)
	return nil
}

func listFields(out io.Writer, fields []formdef.FieldDef) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tVALIDATOR\tFORMATTER\tLABEL")
	for _, f := range fields {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			f.Name, f.KindOrDefault(), validatorName(f), orDash(f.Formatter), truncate(f.Label, 30))
	}
	_ = w.Flush()
}

func pickField(out io.Writer, fields []formdef.FieldDef) error {
	idx, err := fuzzyfinder.Find(
		fields,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", fields[i].Name, fields[i].KindOrDefault())
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return describeField(fields[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "field picker failed")
	}

	fmt.Fprint(out, describeField(fields[idx]))
	return nil
}

func describeField(f formdef.FieldDef) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name:      %s\n", f.Name)
	fmt.Fprintf(&b, "Kind:      %s\n", f.KindOrDefault())
	fmt.Fprintf(&b, "Label:     %s\n", orDash(f.Label))
	fmt.Fprintf(&b, "Validator: %s\n", validatorName(f))
	fmt.Fprintf(&b, "Formatter: %s\n", orDash(f.Formatter))
	if len(f.Triggers) > 0 {
		fmt.Fprintf(&b, "Triggers:  %s\n", strings.Join(f.Triggers, ", "))
	}
	if f.Initial != "" {
		initial := f.Initial
		if f.Secret {
			initial = logging.MaskValue(initial)
		}
		fmt.Fprintf(&b, "Initial:   %s\n", initial)
	}
	if f.Secret {
		b.WriteString("Secret:    yes\n")
	}
	return b.String()
}

func validatorName(f formdef.FieldDef) string {
	v := f.Validator
	if v == nil {
		return "-"
	}
	switch v.Type {
	case formdef.ValidatorDigits:
		return fmt.Sprintf("%s(%d)", v.Type, v.Length)
	case formdef.ValidatorPattern:
		return fmt.Sprintf("%s(%s)", v.Type, truncate(v.Pattern, 24))
	case formdef.ValidatorTag:
		return fmt.Sprintf("%s(%s)", v.Type, v.Tag)
	case formdef.ValidatorNotBefore:
		return fmt.Sprintf("%s(%s)", v.Type, v.Date)
	case formdef.ValidatorRange:
		lo, hi := "-inf", "+inf"
		if v.Min != nil {
			lo = fmt.Sprint(*v.Min)
		}
		if v.Max != nil {
			hi = fmt.Sprint(*v.Max)
		}
		return fmt.Sprintf("%s(%s..%s)", v.Type, lo, hi)
	}
	return v.Type
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
