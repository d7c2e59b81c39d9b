package cli

import (
	"fmt"
	"io"

	"github.com/4310V343k/labs-project-stuffs/internal/format"
	"github.com/4310V343k/labs-project-stuffs/internal/orchestration"
	"github.com/4310V343k/labs-project-stuffs/internal/ui"
)

// DisplayResult writes a formatted, colorized operation result. Verbose mode
// prints the full value wrapped to the terminal width; otherwise values
// beyond the truncation limit are shown edges-only. details adds the
// per-phase timing breakdown.
func DisplayResult(res orchestration.Result, verbose, details bool, out io.Writer) {
	fmt.Fprintf(out, "\n--- %s%s%s ---\n", ui.ColorBold(), res.Op.Display(), ui.ColorReset())

	switch res.Op {
	case orchestration.OpPrime:
		displayPrimeVerdict(res, out)
	case orchestration.OpCmp:
		displayComparisonVerdict(res, out)
	default:
		displayValue("Result", res.Value, res.Digits, verbose, out)
		if res.Remainder != "" {
			displayValue("Remainder", res.Remainder, res.RemainderDigits, verbose, out)
		}
	}

	if res.NinesOK != nil {
		if *res.NinesOK {
			fmt.Fprintf(out, "Checksum: %scasting-out-nines passed%s\n", ui.ColorGreen(), ui.ColorReset())
		} else {
			fmt.Fprintf(out, "Checksum: %scasting-out-nines FAILED%s\n", ui.ColorRed(), ui.ColorReset())
		}
	}

	if details {
		displayTimings(res.Timings, out)
	}
}

// displayValue prints one numeric value with its digit count, applying
// thousand separators, truncation, or wrapping depending on size and mode.
func displayValue(label, value string, digits int, verbose bool, out io.Writer) {
	fmt.Fprintf(out, "%s (%s%d%s digits):\n", label, ui.ColorCyan(), digits, ui.ColorReset())

	switch {
	case verbose:
		fmt.Fprintln(out, format.WrapNumber(value))
	case digits > format.TruncationLimit:
		fmt.Fprintf(out, "%s %s(truncated)%s\n", format.TruncateNumber(value), ui.ColorYellow(), ui.ColorReset())
		fmt.Fprintf(out, "%sTip: use -v to display the full value.%s\n", ui.ColorYellow(), ui.ColorReset())
	default:
		fmt.Fprintln(out, format.FormatNumberString(value))
	}
}

// displayPrimeVerdict prints the primality verdict for the operand.
func displayPrimeVerdict(res orchestration.Result, out io.Writer) {
	operand := res.Value
	if res.Digits > format.TruncationLimit {
		operand = format.TruncateNumber(operand)
	}
	if res.Prime {
		fmt.Fprintf(out, "%s (%d digits) is %sprime%s.\n",
			operand, res.Digits, ui.ColorGreen(), ui.ColorReset())
	} else {
		fmt.Fprintf(out, "%s (%d digits) is %snot prime%s.\n",
			operand, res.Digits, ui.ColorRed(), ui.ColorReset())
	}
}

// displayComparisonVerdict prints the three-way comparison outcome.
func displayComparisonVerdict(res orchestration.Result, out io.Writer) {
	var verdict string
	switch {
	case res.Cmp < 0:
		verdict = "A < B"
	case res.Cmp > 0:
		verdict = "A > B"
	default:
		verdict = "A == B"
	}
	fmt.Fprintf(out, "%s%s%s (cmp = %d)\n", ui.ColorBlue(), verdict, ui.ColorReset(), res.Cmp)
}

// displayTimings prints the per-phase breakdown. Phases that did not run
// show "n/a" and cache hits show "cached".
func displayTimings(t orchestration.Timings, out io.Writer) {
	fmt.Fprintf(out, "\nTimings:\n")
	fmt.Fprintf(out, "  Parse A:  %s%s%s\n", ui.ColorYellow(), format.FormatPhaseMillis(t.ParseAMillis()), ui.ColorReset())
	fmt.Fprintf(out, "  Parse B:  %s%s%s\n", ui.ColorYellow(), format.FormatPhaseMillis(t.ParseBMillis()), ui.ColorReset())
	fmt.Fprintf(out, "  Compute:  %s%s%s\n", ui.ColorYellow(), format.FormatPhaseMillis(t.ComputeMillis()), ui.ColorReset())
	fmt.Fprintf(out, "  Render:   %s%s%s\n", ui.ColorYellow(), format.FormatPhaseMillis(t.RenderMillis()), ui.ColorReset())
	fmt.Fprintf(out, "  Total:    %s%s%s\n", ui.ColorYellow(), format.FormatExecutionDuration(t.Total), ui.ColorReset())
}
