package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/swinglang/swingscript/swing"
)

// historyEntry is one line of the transcript. Exactly one of value and err
// is set for evaluated lines; command feedback only sets value.
type historyEntry struct {
	input string
	value string
	err   error
}

// recall walks previously evaluated lines, newest first.
type recall struct {
	lines []string
	pos   int // -1 when not browsing
}

func (r *recall) add(line string) {
	r.lines = append(r.lines, line)
	r.pos = -1
}

func (r *recall) reset() { r.pos = -1 }

func (r *recall) older() (string, bool) {
	if len(r.lines) == 0 {
		return "", false
	}
	switch {
	case r.pos == -1:
		r.pos = len(r.lines) - 1
	case r.pos > 0:
		r.pos--
	}
	return r.lines[r.pos], true
}

// newer steps towards the present. Stepping past the newest line leaves
// browsing mode with an empty input.
func (r *recall) newer() (string, bool) {
	if r.pos == -1 {
		return "", false
	}
	if r.pos < len(r.lines)-1 {
		r.pos++
		return r.lines[r.pos], true
	}
	r.pos = -1
	return "", true
}

type panel int

const (
	panelNone panel = iota
	panelHelp
	panelVars
)

func (p panel) toggle(to panel) panel {
	if p == to {
		return panelNone
	}
	return to
}

type replModel struct {
	input   textinput.Model
	engine  *swing.Engine
	st      styles
	entries []historyEntry
	recall  recall
	panel   panel
	width   int
	height  int

	quitting bool
	ready    bool
}

// replKeys holds the bindings that act on the model directly. Panels and
// resets are reached through the ':' commands.
type replKeys struct {
	Older    key.Binding
	Newer    key.Binding
	Complete key.Binding
	Submit   key.Binding
	Quit     key.Binding
}

var keys = replKeys{
	Older:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "recall an earlier line")),
	Newer:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "recall a later line")),
	Complete: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete keywords and names")),
	Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "evaluate the line")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "leave the repl")),
}

func newREPLModel(engine *swing.Engine, prompt string) replModel {
	st := newStyles(lipgloss.DefaultRenderer())

	in := textinput.New()
	in.Prompt = prompt
	in.PromptStyle = st.prompt
	in.Placeholder = "yehai x = 2 * 3"
	in.CharLimit = 500
	in.Width = 60
	in.Focus()

	return replModel{
		input:  in,
		engine: engine,
		st:     st,
		recall: recall{pos: -1},
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-10, 10)
		m.ready = true
		return m, nil
	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey applies the bindings in keys. Unhandled keys go to the text
// input.
func (m replModel) handleKey(msg tea.KeyMsg) (replModel, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit, true
	case key.Matches(msg, keys.Older):
		if line, ok := m.recall.older(); ok {
			m.setInput(line)
		}
	case key.Matches(msg, keys.Newer):
		if line, ok := m.recall.newer(); ok {
			m.setInput(line)
		}
	case key.Matches(msg, keys.Complete):
		m.complete()
	case key.Matches(msg, keys.Submit):
		next, cmd := m.submit()
		return next, cmd, true
	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m *replModel) setInput(line string) {
	m.input.SetValue(line)
	m.input.CursorEnd()
}

func (m replModel) submit() (replModel, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}
	m.input.SetValue("")

	if strings.HasPrefix(line, ":") {
		m.recall.reset()
		return m.runCommand(line)
	}

	entry := historyEntry{input: line}
	if val, err := runLine(m.engine, line); err != nil {
		entry.err = err
	} else {
		entry.value = val.String()
	}
	m.entries = append(m.entries, entry)
	m.recall.add(line)
	return m, nil
}

func (m replModel) runCommand(line string) (replModel, tea.Cmd) {
	name := strings.Fields(line)[0]
	switch name {
	case ":help", ":h":
		m.panel = m.panel.toggle(panelHelp)
	case ":vars", ":v":
		m.panel = m.panel.toggle(panelVars)
	case ":clear", ":c":
		m.entries = nil
	case ":reset", ":r":
		m.engine.Reset()
		m.entries = append(m.entries, historyEntry{input: line, value: "Environment reset"})
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.entries = append(m.entries, historyEntry{input: line, err: fmt.Errorf("Unknown command: %s", name)})
	}
	return m, nil
}

// complete fills in a unique completion or lists the candidates.
func (m *replModel) complete() {
	current := m.input.Value()
	lines := completeLine(m.engine, current)
	switch len(lines) {
	case 0:
	case 1:
		m.setInput(lines[0])
	default:
		m.entries = append(m.entries, historyEntry{
			value: "Completions: " + strings.Join(completions(m.engine, current), ", "),
		})
	}
}

func runTUI(engine *swing.Engine, prompt string) error {
	_, err := tea.NewProgram(newREPLModel(engine, prompt), tea.WithAltScreen()).Run()
	return err
}
