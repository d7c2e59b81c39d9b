// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/4310V343k/labs-project-stuffs/internal/format"
	"github.com/4310V343k/labs-project-stuffs/internal/orchestration"
	"github.com/4310V343k/labs-project-stuffs/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the full result value.
	Verbose bool
}

// WriteResultToFile writes an operation result to a file. The header lines
// start with '#' and the value stands alone on its own line, so a result
// file can be fed back as an operand file.
//
// Parameters:
//   - res: The completed operation result.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(res orchestration.Result, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Calculation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s\n", res.Op.Display())
	fmt.Fprintf(file, "# Duration: %s\n", format.FormatExecutionDuration(res.Timings.Total))
	fmt.Fprintf(file, "# Digits: %d\n", res.Digits)
	if res.Remainder != "" {
		fmt.Fprintf(file, "# Remainder: %s\n", res.Remainder)
	}
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "%s\n", res.Value)

	return nil
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single-line result suitable for scripting.
//
// Parameters:
//   - res: The completed operation result.
//
// Returns:
//   - string: The formatted result string.
func FormatQuietResult(res orchestration.Result) string {
	if res.Op == orchestration.OpPrime {
		if res.Prime {
			return "prime"
		}
		return "composite"
	}
	return res.Value
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
// For division the remainder follows on its own line.
//
// Parameters:
//   - out: The output writer.
//   - res: The completed operation result.
func DisplayQuietResult(out io.Writer, res orchestration.Result) {
	fmt.Fprintln(out, FormatQuietResult(res))
	if res.Remainder != "" {
		fmt.Fprintln(out, res.Remainder)
	}
}

// DisplayResultWithConfig displays a result with the given output configuration.
// This is a unified function that handles all output modes.
//
// Parameters:
//   - out: The output writer.
//   - res: The completed operation result.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, res orchestration.Result, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, res)
	} else {
		DisplayResult(res, config.Verbose, true, out)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(res, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}
