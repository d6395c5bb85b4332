// Package repl is a small Elm-architecture bubbletea model: one input
// line, re-evaluated on every keystroke, with a scrolling history of
// input/output pairs. Grounded on the teacher's cmd/calcmark/tui/repl
// Model (textinput + history + lipgloss styling), trimmed down from a
// multi-variable notebook REPL to a single-expression calculator: no
// pinned variables, no slash commands, no split panes — just input →
// answer, previewed live on every keystroke and committed to the history
// on Enter.
package repl

import (
	"fmt"
	"strings"

	unitcalc "github.com/calcmark/unitcalc"
	"github.com/calcmark/unitcalc/cmd/unitcalc/config"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// historyEntry is one past input/output pair, shown above the live input
// line once the user presses Enter.
type historyEntry struct {
	input   string
	output  string
	isError bool
}

// Model is the REPL's bubbletea state: a text input plus a scrolling
// history of evaluated expressions, and the live preview of the current
// (possibly incomplete) input line.
type Model struct {
	input   textinput.Model
	history []historyEntry

	session *unitcalc.Session

	liveOutput  string
	liveIsError bool

	quitting bool
	width    int

	styles styles
}

type styles struct {
	prompt lipgloss.Style
	output lipgloss.Style
	errMsg lipgloss.Style
	hint   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true),
		output: lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
		errMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")),
		hint:   lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

// New creates a REPL model whose Session is configured from cfg — the
// same default-degree / allow-trailing-operators settings the one-shot
// `unitcalc eval` command uses, so the two surfaces agree.
func New(cfg *config.Config) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "3 feet to meters"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 70

	return Model{
		input:   ti,
		session: unitcalc.NewSession(cfg.AllowTrailingOperators, cfg.DegreeUnit()),
		width:   80,
		styles:  defaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.commit()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = m.width - 6
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.reevaluate()
	return m, cmd
}

// commit evaluates the current line for good, appends it to history, and
// clears the input — allowing the next line to reference this one's
// answer via "ans".
func (m Model) commit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}
	result, err := m.session.Eval(line, false)
	entry := historyEntry{input: line}
	if err != nil {
		entry.output = err.Error()
		entry.isError = true
	} else {
		entry.output = result.String()
	}
	m.history = append(m.history, entry)
	m.input.SetValue("")
	m.liveOutput = ""
	return m, nil
}

// reevaluate re-runs the live (uncommitted) input line every keystroke,
// without touching the session's remembered "ans" — a failed partial
// keystroke (e.g. "3 fe") is expected and just shows no live output.
func (m *Model) reevaluate() {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		m.liveOutput = ""
		m.liveIsError = false
		return
	}
	result, err := unitcalc.Eval(line, true, m.session.DefaultDegree, false)
	if err != nil {
		m.liveOutput = ""
		m.liveIsError = false
		return
	}
	m.liveOutput = result.String()
	m.liveIsError = false
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	for _, h := range m.history {
		fmt.Fprintf(&b, "%s %s\n", m.styles.prompt.Render(">"), h.input)
		if h.isError {
			fmt.Fprintf(&b, "  %s\n", m.styles.errMsg.Render(h.output))
		} else {
			fmt.Fprintf(&b, "  %s\n", m.styles.output.Render(h.output))
		}
	}
	b.WriteString(m.input.View())
	if m.liveOutput != "" {
		fmt.Fprintf(&b, "  %s\n", m.styles.hint.Render("= "+m.liveOutput))
	}
	return b.String()
}
