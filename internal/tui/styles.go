package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/4310V343k/labs-project-stuffs/internal/ui"
)

// Style variables for the calculator screen.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle        lipgloss.Style
	headerStyle       lipgloss.Style
	titleStyle        lipgloss.Style
	versionStyle      lipgloss.Style
	elapsedStyle      lipgloss.Style
	labelStyle        lipgloss.Style
	valueStyle        lipgloss.Style
	opStyle           lipgloss.Style
	opSelectedStyle   lipgloss.Style
	choiceStyle       lipgloss.Style
	choiceActiveStyle lipgloss.Style
	resultTitleStyle  lipgloss.Style
	staleStyle        lipgloss.Style
	successStyle      lipgloss.Style
	errorStyle        lipgloss.Style
	footerKeyStyle    lipgloss.Style
	footerDescStyle   lipgloss.Style
	statusIdleStyle   lipgloss.Style
	statusRunStyle    lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.Bg).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Background(t.Bg).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	opStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	opSelectedStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	choiceStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	choiceActiveStyle = lipgloss.NewStyle().
		Foreground(t.Info).
		Bold(true)

	resultTitleStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	staleStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	successStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statusIdleStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statusRunStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)
}
