package tui

import (
	"time"

	"github.com/4310V343k/labs-project-stuffs/internal/orchestration"
	"github.com/4310V343k/labs-project-stuffs/internal/sysinfo"
)

// TickMsg drives the elapsed timer and runtime stat sampling.
type TickMsg time.Time

// ResultMsg carries a finished operation back to the UI. Generation guards
// against results from an execution the user has already superseded.
type ResultMsg struct {
	Result     orchestration.Result
	Generation uint64
}

// GeneratedMsg reports the outcome of random operand generation. A and B
// hold the new decimal values for the targeted operands; untouched operands
// are empty.
type GeneratedMsg struct {
	A   string
	B   string
	Err error
}

// LoadedMsg reports operands loaded from the configured files.
type LoadedMsg struct {
	A   string
	B   string
	Err error
}

// SavedMsg reports the outcome of writing the result file.
type SavedMsg struct {
	Path string
	Err  error
}

// StatsMsg delivers a runtime stats sample for the status bar.
type StatsMsg struct {
	Stats sysinfo.Stats
}

// ContextCancelledMsg signals that the parent context was canceled.
type ContextCancelledMsg struct {
	Err error
}
