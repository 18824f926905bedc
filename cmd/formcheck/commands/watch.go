package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/logging"
	"github.com/thoreinstein/formcheck/internal/report"
	"github.com/thoreinstein/formcheck/internal/session"
	"github.com/thoreinstein/formcheck/pkg/validation"
)

var watchJSON bool

func init() {
	watchCmd.Flags().BoolVar(&watchJSON, "json", false, "print events as JSON lines")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Stream edits from stdin and print state changes",
	Long: `Read edits from stdin, one per line, and print every field state change
and form validity change as it happens.

Line protocol:
  name=value   set the field's content (fires an editing event)
  !name        end editing on the field
  ?            print a snapshot of the form
  # comment    ignored, as are blank lines

Bad lines are reported on stderr and the stream continues.`,
	Example: `  printf 'zip=9021\nzip=90210\n?\n' | formcheck watch form.yaml
  formcheck watch form.yaml --json < edits.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

// watchEvent is the JSON line form of a session event. Valid is set only
// for form events.
type watchEvent struct {
	Event string           `json:"event"`
	Field string           `json:"field,omitempty"`
	State validation.State `json:"state"`
	Valid *bool            `json:"valid,omitempty"`
}

func runWatch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	format := outputFormat(watchJSON)

	_, s, err := openSession(cmd, args[0], session.WithListener(eventPrinter(out, format)))
	if err != nil {
		return err
	}
	return streamEdits(cmd, s, cmd.InOrStdin(), format)
}

func eventPrinter(out io.Writer, format report.Format) session.Listener {
	if format == report.FormatJSON {
		enc := json.NewEncoder(out)
		return func(ev session.Event) {
			line := watchEvent{Event: ev.Kind.String(), Field: ev.Field, State: ev.State}
			if ev.Kind == session.FormChanged {
				line.Valid = &ev.Valid
			}
			_ = enc.Encode(line)
		}
	}
	return func(ev session.Event) {
		if ev.Kind == session.FormChanged {
			verdict := color.RedString("invalid")
			if ev.Valid {
				verdict = color.GreenString("valid")
			}
			fmt.Fprintf(out, "form  %s\n", verdict)
			return
		}
		fmt.Fprintf(out, "field %s: %s\n", ev.Field, ev.State)
	}
}

func streamEdits(cmd *cobra.Command, s *session.Session, in io.Reader, format report.Format) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	reporter := report.NewReporter(cmd.OutOrStdout(), format)

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var err error
		switch {
		case line == "?":
			err = reporter.Snapshot(s.Snapshot())
		case strings.HasPrefix(line, "!"):
			_, err = s.EndEditing(strings.TrimSpace(line[1:]))
		default:
			var name, value string
			name, value, err = parseAssignment(line)
			if err == nil {
				err = s.Apply(name, value)
			}
		}
		if err != nil {
			logger.Debug("rejected edit", "line", lineNo, "error", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "line %d: %v\n", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "reading edits"), "")
	}
	return nil
}
