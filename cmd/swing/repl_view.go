package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/swinglang/swingscript/swing"
)

// styles groups every lipgloss style the full-screen REPL draws with. They
// are built from one renderer so a caller can pin the colour profile.
type styles struct {
	header    lipgloss.Style
	muted     lipgloss.Style
	prompt    lipgloss.Style
	result    lipgloss.Style
	errLabel  lipgloss.Style
	traceback lipgloss.Style
	source    lipgloss.Style
	caret     lipgloss.Style
	title     lipgloss.Style
	name      lipgloss.Style
	keyword   lipgloss.Style
	panel     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	var (
		blue  = lipgloss.Color("#3B82F6")
		green = lipgloss.Color("#10B981")
		red   = lipgloss.Color("#EF4444")
		grey  = lipgloss.Color("#6B7280")
		amber = lipgloss.Color("#F59E0B")
		pink  = lipgloss.Color("#EC4899")
	)
	return styles{
		header:    r.NewStyle().Foreground(blue).Bold(true).Padding(0, 1),
		muted:     r.NewStyle().Foreground(grey),
		prompt:    r.NewStyle().Foreground(blue).Bold(true),
		result:    r.NewStyle().Foreground(green),
		errLabel:  r.NewStyle().Foreground(red).Bold(true),
		traceback: r.NewStyle().Foreground(amber),
		source:    r.NewStyle(),
		caret:     r.NewStyle().Foreground(pink).Bold(true),
		title:     r.NewStyle().Foreground(blue).Bold(true),
		name:      r.NewStyle().Foreground(amber),
		keyword:   r.NewStyle().Foreground(pink),
		panel:     r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(blue).Padding(0, 1),
	}
}

func (m replModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.quitting {
		return m.st.muted.Render("Alvida!") + "\n"
	}

	var side string
	switch m.panel {
	case panelHelp:
		side = m.renderHelp()
	case panelVars:
		side = m.renderVars()
	}

	var b strings.Builder
	b.WriteString(m.st.header.Render("SwingScript REPL") + " " + m.st.muted.Render(version) + "\n")
	b.WriteString(m.st.muted.Render(strings.Repeat("─", min(max(m.width-2, 0), 60))) + "\n\n")

	budget := m.height - 7
	if side != "" {
		budget -= lipgloss.Height(side) + 1
	}
	for _, block := range m.transcript(budget) {
		b.WriteString(block)
	}

	if side != "" {
		b.WriteString(side + "\n")
	}
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(m.st.muted.Render("↑/↓ recall  tab complete  :help  :vars  ctrl+c quit"))
	return b.String()
}

// transcript renders the newest entries that fit in lines rows. The latest
// entry is always shown.
func (m replModel) transcript(lines int) []string {
	var blocks []string
	used := 0
	for i := len(m.entries) - 1; i >= 0; i-- {
		block := m.renderEntry(m.entries[i])
		height := strings.Count(block, "\n")
		if used+height > lines && len(blocks) > 0 {
			break
		}
		used += height
		blocks = append(blocks, block)
	}
	for i, j := 0, len(blocks)-1; i < j; i, j = i+1, j-1 {
		blocks[i], blocks[j] = blocks[j], blocks[i]
	}
	return blocks
}

func (m replModel) renderEntry(e historyEntry) string {
	var b strings.Builder
	if e.input != "" {
		b.WriteString(m.st.muted.Render("  › ") + e.input + "\n")
	}
	if e.err != nil {
		b.WriteString(indent(renderStyledError(e.err, m.st), "    ") + "\n")
	} else {
		b.WriteString("  " + m.st.result.Render("→ "+e.value) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// renderStyledError draws an error in parts: the traceback header and its
// frames, the kind label, then the source line with the carets under it in
// their own colour. Errors from outside the language are shown as is.
func renderStyledError(err error, st styles) string {
	var swingErr *swing.Error
	if !errors.As(err, &swingErr) {
		return st.errLabel.Render(err.Error())
	}

	var lines []string
	if swingErr.Kind == swing.RuntimeError {
		frames := strings.Split(strings.TrimSuffix(swingErr.Traceback(), "\n"), "\n")
		lines = append(lines, st.traceback.Render(frames[0]))
		for _, frame := range frames[1:] {
			lines = append(lines, st.muted.Render(frame))
		}
	}
	lines = append(lines, st.errLabel.Render(swingErr.Kind.String()+":")+" "+swingErr.Details)

	// CodeFrame alternates source lines and caret lines.
	for i, line := range strings.Split(swingErr.CodeFrame(), "\n") {
		if i%2 == 0 {
			lines = append(lines, st.source.Render(line))
		} else {
			lines = append(lines, st.caret.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func (m replModel) renderVars() string {
	env := m.engine.Env()
	names := env.Names()
	if len(names) == 0 {
		return m.st.panel.Render(m.st.muted.Render("No variables defined"))
	}

	rows := []string{m.st.title.Render("Variables")}
	for _, name := range names {
		val, _ := env.Get(name)
		rows = append(rows, fmt.Sprintf("  %s = %s %s",
			m.st.name.Render(name), val, m.st.muted.Render("("+val.Kind().String()+")")))
	}
	return m.st.panel.Render(strings.Join(rows, "\n"))
}

var keywordHelp = []struct {
	word string
	desc string
}{
	{swing.KeywordVar, "bind a name: yehai x = 1"},
	{swing.KeywordAnd, "logical and, yields 1 or 0"},
	{swing.KeywordOr, "logical or, yields 1 or 0"},
	{swing.KeywordNot, "logical not: na 0 is 1"},
}

var commandHelp = []struct {
	name string
	desc string
}{
	{":help", "toggle this panel"},
	{":vars", "toggle the variables panel"},
	{":clear", "clear the transcript"},
	{":reset", "drop bindings, keep null, sach and jhut"},
	{":quit", "leave the repl"},
}

func (m replModel) renderHelp() string {
	row := func(label string, style lipgloss.Style, desc string) string {
		return "  " + style.Render(fmt.Sprintf("%-8s", label)) + " " + m.st.muted.Render(desc)
	}

	rows := []string{m.st.title.Render("Keys")}
	for _, b := range []key.Binding{keys.Older, keys.Newer, keys.Complete, keys.Submit, keys.Quit} {
		h := b.Help()
		rows = append(rows, row(h.Key, m.st.name, h.Desc))
	}
	rows = append(rows, "", m.st.title.Render("Commands"))
	for _, c := range commandHelp {
		rows = append(rows, row(c.name, m.st.name, c.desc))
	}
	rows = append(rows, "", m.st.title.Render("Keywords"))
	for _, k := range keywordHelp {
		rows = append(rows, row(k.word, m.st.keyword, k.desc))
	}
	return m.st.panel.Render(strings.Join(rows, "\n"))
}
