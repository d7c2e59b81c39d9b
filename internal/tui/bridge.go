package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/4310V343k/labs-project-stuffs/internal/numio"
	"github.com/4310V343k/labs-project-stuffs/internal/orchestration"
	"github.com/4310V343k/labs-project-stuffs/internal/sysinfo"
)

// tickInterval is the refresh period of the elapsed timer and stats bar.
const tickInterval = 500 * time.Millisecond

// tickCmd returns a command that sends a TickMsg after the tick interval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// executeCmd runs one operation through the orchestrator. bubbletea runs
// the command on its own goroutine, so the heavy computation never blocks
// the UI loop. The timeout bounds this operation only; the session context
// stays live between executions.
func executeCmd(ctx context.Context, orch *orchestration.Orchestrator, req orchestration.Request, gen uint64, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		opCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		res := orch.Execute(opCtx, req)
		return ResultMsg{Result: res, Generation: gen}
	}
}

// generateCmd creates random operands of sizeBytes bytes for the targeted
// operands ("A", "B" or "AB").
func generateCmd(target string, sizeBytes int) tea.Cmd {
	return func() tea.Msg {
		var msg GeneratedMsg
		if target == "A" || target == "AB" {
			v, err := numio.GenerateOperand(sizeBytes)
			if err != nil {
				return GeneratedMsg{Err: err}
			}
			msg.A = v.String()
		}
		if target == "B" || target == "AB" {
			v, err := numio.GenerateOperand(sizeBytes)
			if err != nil {
				return GeneratedMsg{Err: err}
			}
			msg.B = v.String()
		}
		return msg
	}
}

// loadCmd loads both operands from their configured files. Either file
// failing to load aborts the load; the A value read so far is still carried
// so the caller can keep it.
func loadCmd(aPath, bPath string) tea.Cmd {
	return func() tea.Msg {
		a, err := numio.LoadOperand(aPath)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		b, err := numio.LoadOperand(bPath)
		if err != nil {
			return LoadedMsg{A: a, Err: err}
		}
		return LoadedMsg{A: a, B: b}
	}
}

// saveCmd writes the result value to path as an operand file.
func saveCmd(path, value string) tea.Cmd {
	return func() tea.Msg {
		return SavedMsg{Path: path, Err: numio.WriteOperand(path, value)}
	}
}

// sampleStatsCmd reads runtime stats for the status bar.
func sampleStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return StatsMsg{Stats: sysinfo.Sample()}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
