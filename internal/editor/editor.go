// Package editor opens form definitions in the user's text editor.
package editor

import (
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/thoreinstein/formcheck/internal/errors"
	"github.com/thoreinstein/formcheck/internal/logging"
)

// Streams are the terminal streams handed to the editor process.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Open runs the user's editor on path and waits for it to exit. The editor
// comes from $FORMCHECK_EDITOR, $EDITOR or $VISUAL, falling back to nano
// and then vi. The variable may carry arguments, as in "code --wait".
func Open(ctx context.Context, path string, streams Streams, getenv func(string) string) error {
	argv := Command(getenv)
	argv = append(argv, path)

	logging.FromContext(ctx).Debug("opening editor", "editor", argv[0], "path", path)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = streams.In
	cmd.Stdout = streams.Out
	cmd.Stderr = streams.Err
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}
	return nil
}

// Command returns the editor command line without the file argument.
func Command(getenv func(string) string) []string {
	for _, key := range []string{"FORMCHECK_EDITOR", "EDITOR", "VISUAL"} {
		if fields := strings.Fields(getenv(key)); len(fields) > 0 {
			return fields
		}
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return []string{"nano"}
	}
	return []string{"vi"}
}
