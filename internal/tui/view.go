package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/4310V343k/labs-project-stuffs/internal/format"
	"github.com/4310V343k/labs-project-stuffs/internal/orchestration"
)

const (
	headerHeight  = 1
	footerHeight  = 2
	minViewHeight = 3
)

// layout recomputes panel dimensions after a resize.
func (m *Model) layout() {
	m.header.SetWidth(m.width)

	inner := m.width - 4
	if inner < 20 {
		inner = 20
	}
	m.result.Width = inner

	// The input panel height is fixed by its row count; the result panel
	// takes whatever is left.
	inputPanel := lipgloss.Height(m.renderInputPanel())
	h := m.height - headerHeight - footerHeight - inputPanel - 3
	if h < minViewHeight {
		h = minViewHeight
	}
	m.result.Height = h
}

// refreshResultView re-renders the result content into the viewport.
func (m *Model) refreshResultView() {
	if !m.haveResult {
		m.result.SetContent(labelStyle.Render("No result yet."))
		return
	}
	m.result.SetContent(m.renderResult(m.result.Width))
}

// View renders the entire calculator screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.header.View()
	inputs := panelStyle.Width(m.width - 2).Render(m.renderInputPanel())
	result := panelStyle.Width(m.width - 2).Render(m.renderResultPanel())
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, inputs, result, footer)
}

// renderInputPanel renders the operand inputs and selectors.
func (m Model) renderInputPanel() string {
	var b strings.Builder

	focusMark := func(f int) string {
		if m.focus == f {
			return valueStyle.Render("› ")
		}
		return "  "
	}

	b.WriteString(focusMark(focusOp))
	b.WriteString(labelStyle.Render("Operation:  "))
	for i, op := range orchestration.Operations {
		label := " " + op.Display() + " "
		if i == m.opIndex {
			b.WriteString(opSelectedStyle.Render("[" + op.Display() + "]"))
		} else {
			b.WriteString(opStyle.Render(label))
		}
	}
	b.WriteString("\n\n")

	row := func(f int, label string) {
		b.WriteString(focusMark(f))
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-11s", label)))
		b.WriteString(m.inputs[f].View())
		b.WriteString("\n")
	}

	row(focusA, "A:")
	row(focusB, "B:")
	row(focusAFile, "A file:")
	row(focusBFile, "B file:")

	b.WriteString(focusMark(focusGenBytes))
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-11s", "Gen bytes:")))
	b.WriteString(m.inputs[focusGenBytes].View())
	b.WriteString("   ")
	b.WriteString(focusMark(focusGenTarget))
	b.WriteString(labelStyle.Render("Target: "))
	for i, t := range genTargets {
		if i == m.genTargetIndex {
			b.WriteString(choiceActiveStyle.Render("(" + t + ")"))
		} else {
			b.WriteString(choiceStyle.Render(" " + t + " "))
		}
	}
	b.WriteString("\n")

	b.WriteString(focusMark(focusExponent))
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-11s", "Exponent:")))
	b.WriteString(m.inputs[focusExponent].View())

	return b.String()
}

// renderResultPanel renders the result title row and the scrollable body.
func (m Model) renderResultPanel() string {
	title := resultTitleStyle.Render("RESULT")
	if m.running {
		title += "  " + statusRunStyle.Render("computing...")
	} else if m.stale {
		title += "  " + staleStyle.Render("(stale: inputs changed)")
	}
	return title + "\n" + m.result.View()
}

// renderResult formats a completed operation for the viewport.
func (m Model) renderResult(width int) string {
	res := m.last
	var b strings.Builder

	if res.Err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", res.Err)))
		return b.String()
	}

	b.WriteString(valueStyle.Render(res.Op.Display()))
	b.WriteString("\n\n")

	switch res.Op {
	case orchestration.OpPrime:
		verdict := "not prime"
		style := errorStyle
		if res.Prime {
			verdict, style = "prime", successStyle
		}
		b.WriteString(fmt.Sprintf("%s (%d digits) is %s\n",
			format.TruncateNumber(res.Value), res.Digits, style.Render(verdict)))
	case orchestration.OpCmp:
		verdict := "A == B"
		if res.Cmp < 0 {
			verdict = "A < B"
		} else if res.Cmp > 0 {
			verdict = "A > B"
		}
		b.WriteString(choiceActiveStyle.Render(verdict) + "\n")
	default:
		b.WriteString(labelStyle.Render(fmt.Sprintf("Value (%d digits):", res.Digits)))
		b.WriteString("\n")
		b.WriteString(format.WrapNumberTo(res.Value, width))
		b.WriteString("\n")
		if res.Remainder != "" {
			b.WriteString(labelStyle.Render(fmt.Sprintf("Remainder (%d digits):", res.RemainderDigits)))
			b.WriteString("\n")
			b.WriteString(format.WrapNumberTo(res.Remainder, width))
			b.WriteString("\n")
		}
	}

	if res.NinesOK != nil {
		if *res.NinesOK {
			b.WriteString(successStyle.Render("casting-out-nines: passed") + "\n")
		} else {
			b.WriteString(errorStyle.Render("casting-out-nines: FAILED") + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Timings: "))
	b.WriteString(fmt.Sprintf("parse A %s | parse B %s | compute %s | render %s | total %s",
		format.FormatPhaseMillis(res.Timings.ParseAMillis()),
		format.FormatPhaseMillis(res.Timings.ParseBMillis()),
		format.FormatPhaseMillis(res.Timings.ComputeMillis()),
		format.FormatPhaseMillis(res.Timings.RenderMillis()),
		format.FormatExecutionDuration(res.Timings.Total)))

	return b.String()
}

// renderFooter renders the key help line and the status line.
func (m Model) renderFooter() string {
	help := strings.Join([]string{
		footerKeyStyle.Render("enter") + footerDescStyle.Render(" execute"),
		footerKeyStyle.Render("ctrl+g") + footerDescStyle.Render(" generate"),
		footerKeyStyle.Render("ctrl+l") + footerDescStyle.Render(" load"),
		footerKeyStyle.Render("ctrl+s") + footerDescStyle.Render(" save"),
		footerKeyStyle.Render("tab") + footerDescStyle.Render(" field"),
		footerKeyStyle.Render("esc") + footerDescStyle.Render(" quit"),
	}, footerDescStyle.Render(" · "))

	statusStyle := statusIdleStyle
	if m.statusErr {
		statusStyle = errorStyle
	} else if m.running {
		statusStyle = statusRunStyle
	}
	stats := labelStyle.Render(fmt.Sprintf("heap %s | goroutines %d",
		format.FormatBytes(m.stats.HeapAllocBytes), m.stats.Goroutines))

	return help + "\n" + statusStyle.Render(m.status) + "  " + stats
}
