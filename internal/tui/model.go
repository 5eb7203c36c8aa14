// Package tui is the interactive bubbletea front-end: a menu of operations,
// two operand fields, a status line, and a history pane.
package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pengelbrecht/calc/internal/calculator"
	"github.com/pengelbrecht/calc/internal/log"
	"github.com/pengelbrecht/calc/internal/render"
	"github.com/pengelbrecht/calc/internal/repl"
	"github.com/pengelbrecht/calc/internal/styles"
)

type screen int

const (
	screenMenu screen = iota
	screenInput
	screenHistory
)

type itemKind int

const (
	itemOperation itemKind = iota
	itemHistory
	itemQuit
)

type menuItem struct {
	label string
	kind  itemKind
	op    calculator.Operator
}

var menuItems = []menuItem{
	{label: "Add", kind: itemOperation, op: calculator.Add},
	{label: "Subtract", kind: itemOperation, op: calculator.Subtract},
	{label: "Multiply", kind: itemOperation, op: calculator.Multiply},
	{label: "Divide", kind: itemOperation, op: calculator.Divide},
	{label: "History", kind: itemHistory},
	{label: "Quit", kind: itemQuit},
}

const statusInvalid = "invalid number"

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(styles.ColorBlue).MarginBottom(1)

// Model is the bubbletea model. It owns no evaluator state of its own;
// every operation goes through eval, which is only touched from Update.
type Model struct {
	eval   *calculator.Evaluator
	render *render.Renderer

	screen  screen
	cursor  int
	op      calculator.Operator
	inputs  [2]textinput.Model
	focus   int
	status  string
	isError bool

	quitting bool
}

// New creates a model over eval.
func New(eval *calculator.Evaluator, r *render.Renderer) Model {
	if eval == nil {
		eval = calculator.New()
	}
	if r == nil {
		r = render.New(render.DefaultOptions())
	}
	m := Model{eval: eval, render: r}
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 32
		ti.Width = 24
		ti.Prompt = "> "
		m.inputs[i] = ti
	}
	m.inputs[0].Placeholder = "first number"
	m.inputs[1].Placeholder = "second number"
	return m
}

// Run starts the program and blocks until the user quits.
func Run(eval *calculator.Evaluator, r *render.Renderer) error {
	defer muteLogs()()
	_, err := tea.NewProgram(New(eval, r)).Run()
	return err
}

// muteLogs discards log output while the program owns the terminal and
// returns a func restoring the previous writer.
func muteLogs() func() {
	prev := log.Output()
	log.SetOutput(io.Discard)
	return func() { log.SetOutput(prev) }
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forward(msg)
	}
	if key.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenInput:
		return m.updateInput(key)
	case screenHistory:
		return m.updateHistory(key)
	default:
		return m.updateMenu(key)
	}
}

func (m Model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "h":
		m.screen = screenHistory
	case "+", "-", "*", "/":
		op, _ := calculator.ParseOperator(key.String())
		return m.startInput(op)
	case "enter":
		item := menuItems[m.cursor]
		switch item.kind {
		case itemOperation:
			return m.startInput(item.op)
		case itemHistory:
			m.screen = screenHistory
		case itemQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateHistory(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "esc", "enter", "h":
		m.screen = screenMenu
	}
	return m, nil
}

func (m Model) startInput(op calculator.Operator) (tea.Model, tea.Cmd) {
	m.screen = screenInput
	m.op = op
	m.status = ""
	m.isError = false
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	return m.focusField(0)
}

func (m Model) focusField(i int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m, m.inputs[i].Focus()
}

func (m Model) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.inputs[m.focus].Blur()
		m.screen = screenMenu
		m.status = ""
		return m, nil
	case "tab", "shift+tab", "up", "down":
		return m.focusField(1 - m.focus)
	case "enter":
		if _, err := repl.ParseOperand(m.inputs[m.focus].Value()); err != nil {
			m.status = statusInvalid
			m.isError = true
			return m, nil
		}
		if m.focus == 0 {
			m.status = ""
			m.isError = false
			return m.focusField(1)
		}
		return m.submit()
	}
	return m.forward(key)
}

// submit validates both fields and applies the selected operation.
func (m Model) submit() (tea.Model, tea.Cmd) {
	var operands [2]float64
	for i := range m.inputs {
		v, err := repl.ParseOperand(m.inputs[i].Value())
		if err != nil {
			m.status = statusInvalid
			m.isError = true
			return m.focusField(i)
		}
		operands[i] = v
	}

	a, b := operands[0], operands[1]
	result, err := m.eval.Apply(m.op, a, b)
	m.inputs[m.focus].Blur()
	m.screen = screenMenu
	if err != nil {
		log.Warn("operation rejected", "op", m.op.String(), "a", a, "b", b, "err", err)
		m.status = m.render.Error(err)
		m.isError = true
		return m, nil
	}
	log.Debug("operation recorded", "op", m.op.String(), "a", a, "b", b, "result", result)
	entry, _ := m.eval.Last()
	m.status = m.render.Line(entry)
	m.isError = false
	return m, nil
}

// forward passes non-key messages and typing to the focused field.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.screen != screenInput {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("calc"))
	b.WriteString("\n")

	switch m.screen {
	case screenInput:
		b.WriteString(styles.RenderHeader(strings.ToUpper(m.op.String()[:1]) + m.op.String()[1:]))
		b.WriteString("\n\n")
		for i := range m.inputs {
			b.WriteString(m.inputs[i].View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(styles.RenderDim("enter confirm · tab switch field · esc back"))
	case screenHistory:
		b.WriteString(m.render.TableBlock(m.eval.History()))
		b.WriteString("\n\n")
		b.WriteString(styles.RenderDim("esc back · q quit"))
	default:
		for i, item := range menuItems {
			if i == m.cursor {
				b.WriteString(styles.SelectedStyle.Render(item.label))
			} else {
				b.WriteString(styles.ItemStyle.Render(item.label))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(styles.RenderDim("↑/↓ select · enter confirm · + - * / shortcut · h history · q quit"))
	}

	if status := m.status; status != "" {
		if m.isError && status == statusInvalid {
			status = styles.RenderError(status)
		}
		b.WriteString("\n\n")
		b.WriteString(status)
	}
	b.WriteString("\n")
	return b.String()
}
