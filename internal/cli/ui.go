//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"time"

	"github.com/briandowns/spinner"

	"github.com/4310V343k/labs-project-stuffs/internal/orchestration"
)

// SpinnerRefreshRate defines the refresh frequency of the progress spinner.
// 200ms keeps the animation smooth without flooding the terminal.
const SpinnerRefreshRate = 200 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of [ComputeWithSpinner] from a specific
// spinner implementation, facilitating easier testing and maintenance.
// It defines the essential controls for a spinner: starting, stopping, and
// updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface. This adapter allows the `spinner` library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
//
// Parameters:
//   - suffix: The string to display.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// ComputeWithSpinner runs fn while animating a terminal spinner labeled with
// message. When enabled is false (quiet mode, redirected output) fn runs
// without any animation.
func ComputeWithSpinner(enabled bool, message string, fn func() orchestration.Result) orchestration.Result {
	if !enabled {
		return fn()
	}
	s := newSpinner()
	s.UpdateSuffix(" " + message)
	s.Start()
	defer s.Stop()
	return fn()
}
