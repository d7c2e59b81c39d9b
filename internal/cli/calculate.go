package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/4310V343k/labs-project-stuffs/internal/config"
	"github.com/4310V343k/labs-project-stuffs/internal/orchestration"
	"github.com/4310V343k/labs-project-stuffs/internal/sysinfo"
	"github.com/4310V343k/labs-project-stuffs/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user. It shows the requested operation, timeout, and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - op: The parsed operation.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, op orchestration.Operation, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Computing %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), op.Display(), ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "CPU: %s%s%s.\n", ui.ColorCyan(), sysinfo.CPUSummary(), ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
