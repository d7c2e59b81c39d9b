package app

import (
	"fmt"
	"io"

	apperrors "github.com/4310V343k/labs-project-stuffs/internal/errors"
	"github.com/4310V343k/labs-project-stuffs/internal/numio"
	"github.com/4310V343k/labs-project-stuffs/internal/ui"
)

// runGenerate creates random operand files and exits. The -gen flag selects
// which files to write ("A", "B" or "AB").
func (a *Application) runGenerate(out io.Writer) int {
	targets := map[string]string{}
	switch a.Config.GenTarget {
	case "A":
		targets["A"] = a.Config.AFile
	case "B":
		targets["B"] = a.Config.BFile
	case "AB":
		targets["A"] = a.Config.AFile
		targets["B"] = a.Config.BFile
	}

	for _, name := range []string{"A", "B"} {
		path, ok := targets[name]
		if !ok {
			continue
		}
		v, err := numio.GenerateOperand(a.Config.GenBytes)
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error generating operand %s: %v\n", name, err)
			return apperrors.ExitCodeFor(err)
		}
		decimal := v.String()
		if err := numio.WriteOperand(path, decimal); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error writing operand %s: %v\n", name, err)
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "%s✓%s Operand %s (%d digits) written to %s\n",
				ui.ColorGreen(), ui.ColorReset(), name, len(decimal), path)
		}
	}

	return apperrors.ExitSuccess
}
