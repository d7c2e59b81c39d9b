package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/4310V343k/labs-project-stuffs/internal/config"
	apperrors "github.com/4310V343k/labs-project-stuffs/internal/errors"
	"github.com/4310V343k/labs-project-stuffs/internal/format"
	"github.com/4310V343k/labs-project-stuffs/internal/orchestration"
	"github.com/4310V343k/labs-project-stuffs/internal/sysinfo"
)

// Focusable fields, in tab order. The first six index into Model.inputs.
const (
	focusA = iota
	focusB
	focusAFile
	focusBFile
	focusGenBytes
	focusExponent
	focusOp
	focusGenTarget
	focusCount
)

// genTargets lists the operand generation choices.
var genTargets = []string{"A", "B", "AB"}

// Model is the root bubbletea model for the calculator screen.
type Model struct {
	header HeaderModel
	inputs []textinput.Model
	result viewport.Model

	opIndex        int
	genTargetIndex int
	focus          int

	last       orchestration.Result
	haveResult bool
	stale      bool

	status    string
	statusErr bool
	stats     sysinfo.Stats

	running    bool
	generation uint64
	exitCode   int

	keymap KeyMap
	orch   *orchestration.Orchestrator
	config config.AppConfig

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new calculator model seeded from the configuration.
func NewModel(parentCtx context.Context, orch *orchestration.Orchestrator, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	newInput := func(value, placeholder string, width int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.SetValue(value)
		ti.Prompt = ""
		ti.Width = width
		return ti
	}

	inputs := make([]textinput.Model, 6)
	inputs[focusA] = newInput(cfg.A, "decimal digits", 48)
	inputs[focusB] = newInput(cfg.B, "decimal digits", 48)
	inputs[focusAFile] = newInput(cfg.AFile, config.DefaultAFile, 32)
	inputs[focusBFile] = newInput(cfg.BFile, config.DefaultBFile, 32)
	inputs[focusGenBytes] = newInput(strconv.Itoa(cfg.GenBytes), "bytes", 10)
	inputs[focusExponent] = newInput(strconv.Itoa(cfg.Exponent), "1-3", 4)
	inputs[focusA].Focus()

	opIndex := 0
	for i, op := range orchestration.Operations {
		if string(op) == cfg.Op {
			opIndex = i
			break
		}
	}

	return Model{
		header:   NewHeaderModel(version),
		inputs:   inputs,
		result:   viewport.New(80, 10),
		opIndex:  opIndex,
		keymap:   DefaultKeyMap(),
		orch:     orch,
		config:   cfg,
		ctx:      ctx,
		cancel:   cancel,
		exitCode: apperrors.ExitSuccess,
		status:   "Ready. Enter operands and press enter.",
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		sampleStatsCmd(),
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.refreshResultView()
		return m, nil

	case TickMsg:
		if m.running {
			return m, tea.Batch(tickCmd(), sampleStatsCmd())
		}
		return m, tickCmd()

	case StatsMsg:
		m.stats = msg.Stats
		return m, nil

	case ResultMsg:
		if msg.Generation != m.generation {
			return m, nil // stale result from a superseded execution
		}
		m.running = false
		m.header.SetDone()
		m.last = msg.Result
		m.haveResult = true
		m.stale = false
		if msg.Result.Err != nil {
			m.exitCode = apperrors.ExitCodeFor(msg.Result.Err)
			m.setStatus(fmt.Sprintf("operation failed: %v", msg.Result.Err), true)
		} else {
			m.exitCode = apperrors.ExitSuccess
			m.setStatus(fmt.Sprintf("%s finished in %s", msg.Result.Op.Display(),
				format.FormatExecutionDuration(msg.Result.Timings.Total)), false)
		}
		m.refreshResultView()
		return m, nil

	case GeneratedMsg:
		if msg.Err != nil {
			m.setStatus(fmt.Sprintf("generation failed: %v", msg.Err), true)
			return m, nil
		}
		var parts []string
		if msg.A != "" {
			m.inputs[focusA].SetValue(msg.A)
			parts = append(parts, fmt.Sprintf("A (%d digits)", len(msg.A)))
		}
		if msg.B != "" {
			m.inputs[focusB].SetValue(msg.B)
			parts = append(parts, fmt.Sprintf("B (%d digits)", len(msg.B)))
		}
		m.markStale()
		m.setStatus("generated "+strings.Join(parts, ", "), false)
		return m, nil

	case LoadedMsg:
		if msg.A != "" {
			m.inputs[focusA].SetValue(msg.A)
		}
		if msg.B != "" {
			m.inputs[focusB].SetValue(msg.B)
		}
		if msg.Err != nil {
			m.setStatus(fmt.Sprintf("load failed: %v", msg.Err), true)
		} else {
			m.markStale()
			m.setStatus(fmt.Sprintf("loaded A (%d digits), B (%d digits)", len(msg.A), len(msg.B)), false)
		}
		return m, nil

	case SavedMsg:
		if msg.Err != nil {
			m.setStatus(fmt.Sprintf("save failed: %v", msg.Err), true)
		} else {
			m.setStatus("result saved to "+msg.Path, false)
		}
		return m, nil

	case ContextCancelledMsg:
		m.exitCode = apperrors.ExitCodeFor(msg.Err)
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Execute):
		return m.startExecution()

	case key.Matches(msg, m.keymap.Generate):
		sizeBytes, err := strconv.Atoi(strings.TrimSpace(m.inputs[focusGenBytes].Value()))
		if err != nil || sizeBytes <= 0 {
			m.setStatus("gen bytes must be a positive integer", true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("generating %s operand(s) of %d bytes...", genTargets[m.genTargetIndex], sizeBytes), false)
		return m, generateCmd(genTargets[m.genTargetIndex], sizeBytes)

	case key.Matches(msg, m.keymap.Load):
		m.setStatus("loading operands...", false)
		return m, loadCmd(m.inputs[focusAFile].Value(), m.inputs[focusBFile].Value())

	case key.Matches(msg, m.keymap.Save):
		if !m.haveResult || m.last.Err != nil || m.last.Value == "" {
			m.setStatus("no result to save", true)
			return m, nil
		}
		path := m.config.OutputFile
		if path == "" {
			path = config.DefaultResultFile
		}
		return m, saveCmd(path, m.last.Value)

	case key.Matches(msg, m.keymap.NextField):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil

	case key.Matches(msg, m.keymap.PrevField):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil

	case key.Matches(msg, m.keymap.Up):
		return m.cycleChoice(-1), nil

	case key.Matches(msg, m.keymap.Down):
		return m.cycleChoice(1), nil

	case key.Matches(msg, m.keymap.PageUp):
		m.result.ViewUp()
		return m, nil

	case key.Matches(msg, m.keymap.PageDown):
		m.result.ViewDown()
		return m, nil
	}

	// Everything else goes to the focused text input.
	if m.focus < len(m.inputs) {
		before := m.inputs[m.focus].Value()
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		if m.inputs[m.focus].Value() != before {
			m.markStale()
		}
		return m, cmd
	}
	return m, nil
}

// cycleChoice moves the operation or generation target selector. Text
// fields ignore vertical navigation.
func (m Model) cycleChoice(delta int) Model {
	switch m.focus {
	case focusOp:
		n := len(orchestration.Operations)
		m.opIndex = (m.opIndex + delta + n) % n
		m.markStale()
	case focusGenTarget:
		n := len(genTargets)
		m.genTargetIndex = (m.genTargetIndex + delta + n) % n
	}
	return m
}

// setFocus moves keyboard focus, blurring the previous text input.
func (m *Model) setFocus(focus int) {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = focus
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

// startExecution validates the inputs and launches the operation.
func (m Model) startExecution() (tea.Model, tea.Cmd) {
	if m.running {
		m.setStatus("an operation is already running", true)
		return m, nil
	}

	op := orchestration.Operations[m.opIndex]
	a := strings.TrimSpace(m.inputs[focusA].Value())
	if a == "" {
		m.setStatus("operand A is empty (ctrl+g to generate, ctrl+l to load)", true)
		return m, nil
	}

	req := orchestration.Request{Op: op, A: a}
	if op.NeedsB() {
		b := strings.TrimSpace(m.inputs[focusB].Value())
		if b == "" {
			m.setStatus("operand B is empty (ctrl+g to generate, ctrl+l to load)", true)
			return m, nil
		}
		req.B = b
	}
	if op == orchestration.OpPow {
		exp, err := strconv.Atoi(strings.TrimSpace(m.inputs[focusExponent].Value()))
		if err != nil || exp < 1 || exp > 3 {
			m.setStatus("exponent must be 1, 2 or 3", true)
			return m, nil
		}
		req.Exponent = exp
	}

	m.generation++
	m.running = true
	m.header.Reset()
	m.setStatus(fmt.Sprintf("computing %s...", op.Display()), false)
	return m, executeCmd(m.ctx, m.orch, req, m.generation, m.config.Timeout)
}

// markStale flags the displayed result as out of date with the inputs.
func (m *Model) markStale() {
	if m.haveResult {
		m.stale = true
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, orch *orchestration.Orchestrator, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, orch, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}
