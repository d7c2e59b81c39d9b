// Package config handles command-line parsing, environment variable
// overrides, and validation of the application configuration.
//
// Value priority: CLI flags > environment variables (BIGCALC_*) > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	apperrors "github.com/4310V343k/labs-project-stuffs/internal/errors"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "BIGCALC_"

// Default operand file paths, shared with the interactive screen.
const (
	DefaultAFile      = "num_a.txt"
	DefaultBFile      = "num_b.txt"
	DefaultResultFile = "result.txt"
)

// Operations supported by the calculator. Every front end validates the
// requested operation against this set.
var ValidOperations = []string{"add", "sub", "mul", "div", "pow", "sqrt", "prime", "cmp"}

// AppConfig holds the complete runtime configuration of the application.
type AppConfig struct {
	// Op is the arithmetic operation to perform.
	Op string
	// A and B are inline decimal operands. When empty, the operand is
	// loaded from AFile / BFile instead.
	A string
	B string
	// AFile and BFile are operand file paths.
	AFile string
	BFile string
	// Exponent is the power for the pow operation (1 to 3).
	Exponent int
	// OutputFile receives the rendered result when non-empty.
	OutputFile string
	// GenBytes is the operand size for the generate mode, in bytes.
	GenBytes int
	// GenTarget selects which operands to generate: "A", "B" or "AB".
	// Empty disables generation mode.
	GenTarget string
	// Timeout bounds the whole operation, including decimal conversion.
	Timeout time.Duration
	// MetricsAddr enables the Prometheus endpoint when non-empty.
	MetricsAddr string
	// Quiet suppresses everything but the result.
	Quiet bool
	// Verbose enables debug-level logging and full result display.
	Verbose bool
	// TUI launches the interactive calculator screen.
	TUI bool
	// NoColor disables ANSI colors in terminal output.
	NoColor bool
	// Completion names a shell to emit a completion script for, then exit.
	Completion string
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags left unset, and validates the result.
//
// Parameters:
//   - programName: The executable name used in usage output.
//   - args: Command-line arguments, excluding the program name.
//   - errWriter: Destination for usage and parse error messages.
//
// Returns:
//   - AppConfig: The validated configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var cfg AppConfig

	fs.StringVar(&cfg.Op, "op", "add", fmt.Sprintf("operation to perform (%s)", strings.Join(ValidOperations, ", ")))
	fs.StringVar(&cfg.A, "a", "", "operand A as a decimal string (overrides -a-file)")
	fs.StringVar(&cfg.B, "b", "", "operand B as a decimal string (overrides -b-file)")
	fs.StringVar(&cfg.AFile, "a-file", DefaultAFile, "file to load operand A from")
	fs.StringVar(&cfg.BFile, "b-file", DefaultBFile, "file to load operand B from")
	fs.IntVar(&cfg.Exponent, "exp", 2, "exponent for the pow operation (1-3)")
	fs.StringVar(&cfg.OutputFile, "output", "", "save the result to this file")
	fs.StringVar(&cfg.OutputFile, "o", "", "save the result to this file (shorthand)")
	fs.IntVar(&cfg.GenBytes, "gen-bytes", 1024, "random operand size in bytes for -gen")
	fs.StringVar(&cfg.GenTarget, "gen", "", `generate random operand(s) and exit: "A", "B" or "AB"`)
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "operation timeout (default chosen from hardware)")
	fs.StringVar(&cfg.MetricsAddr, "metrics-listen", "", "address for the Prometheus metrics endpoint (empty disables)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the result")
	fs.BoolVar(&cfg.Quiet, "q", false, "print only the result (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging and full result display")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable debug logging (shorthand)")
	fs.BoolVar(&cfg.TUI, "tui", false, "launch the interactive calculator screen")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&cfg.Completion, "completion", "", "generate a shell completion script (bash, zsh, fish, powershell) and exit")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)
	cfg = ApplyAdaptiveDefaults(cfg)

	if err := validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate checks cross-field constraints that flag parsing cannot express.
func validate(cfg AppConfig) error {
	if !isValidOperation(cfg.Op) {
		return apperrors.NewConfigError("unknown operation %q (valid: %s)", cfg.Op, strings.Join(ValidOperations, ", "))
	}
	if cfg.Op == "pow" && (cfg.Exponent < 1 || cfg.Exponent > 3) {
		return apperrors.NewConfigError("exponent must be between 1 and 3, got %d", cfg.Exponent)
	}
	if cfg.GenTarget != "" {
		switch cfg.GenTarget {
		case "A", "B", "AB":
		default:
			return apperrors.NewConfigError(`-gen must be "A", "B" or "AB", got %q`, cfg.GenTarget)
		}
		if cfg.GenBytes <= 0 {
			return apperrors.NewConfigError("gen-bytes must be positive, got %d", cfg.GenBytes)
		}
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.Quiet && cfg.Verbose {
		return apperrors.NewConfigError("quiet and verbose are mutually exclusive")
	}
	return nil
}

func isValidOperation(op string) bool {
	i := sort.SearchStrings(sortedOperations, op)
	return i < len(sortedOperations) && sortedOperations[i] == op
}

var sortedOperations = func() []string {
	ops := append([]string(nil), ValidOperations...)
	sort.Strings(ops)
	return ops
}()
