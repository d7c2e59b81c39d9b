package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/4310V343k/labs-project-stuffs/internal/cli"
	apperrors "github.com/4310V343k/labs-project-stuffs/internal/errors"
	"github.com/4310V343k/labs-project-stuffs/internal/logging"
	"github.com/4310V343k/labs-project-stuffs/internal/numio"
	"github.com/4310V343k/labs-project-stuffs/internal/orchestration"
)

// runCalculate executes a single operation in batch mode and displays the
// result.
func (a *Application) runCalculate(ctx context.Context, recorder orchestration.MetricsRecorder, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	op, err := orchestration.ParseOperation(a.Config.Op)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	req, err := a.buildRequest(op)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, op, out)
	}

	orch := orchestration.New(a.Logger, recorder)
	res := cli.ComputeWithSpinner(!a.Config.Quiet, "computing "+op.Display(), func() orchestration.Result {
		return orch.Execute(ctx, req)
	})

	if res.Err != nil {
		a.Logger.Error("operation failed", res.Err, logging.String("op", a.Config.Op))
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", res.Err)
		return apperrors.ExitCodeFor(res.Err)
	}

	if err := cli.DisplayResultWithConfig(out, res, cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}

	return apperrors.ExitSuccess
}

// buildRequest resolves the operands for the configured operation. Inline
// flag values win; otherwise the operand is loaded from its file.
func (a *Application) buildRequest(op orchestration.Operation) (orchestration.Request, error) {
	req := orchestration.Request{Op: op, Exponent: a.Config.Exponent}

	operandA := a.Config.A
	if operandA == "" {
		loaded, err := numio.LoadOperand(a.Config.AFile)
		if err != nil {
			return req, fmt.Errorf("loading operand A: %w", err)
		}
		operandA = loaded
	}
	req.A = operandA

	if op.NeedsB() {
		operandB := a.Config.B
		if operandB == "" {
			loaded, err := numio.LoadOperand(a.Config.BFile)
			if err != nil {
				return req, fmt.Errorf("loading operand B: %w", err)
			}
			operandB = loaded
		}
		req.B = operandB
	}

	return req, nil
}
