// Command bigcalc is an arbitrary-precision unsigned integer calculator.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/4310V343k/labs-project-stuffs/internal/app"
	apperrors "github.com/4310V343k/labs-project-stuffs/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(apperrors.ExitCodeFor(err))
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
