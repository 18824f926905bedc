// Package main is the entry point for the formcheck CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/thoreinstein/formcheck/cmd/formcheck/commands"
	"github.com/thoreinstein/formcheck/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := commands.Execute(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		os.Exit(errors.ExitCode(err))
	}
}
