package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/cellophane"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
)

type interactiveModel struct {
	probes   map[string]error
	all      []cellophane.Binding
	visible  []cellophane.Binding
	filter   textinput.Model
	selected int
}

type probedMsg struct {
	err  error
	kind string
}

func newInteractiveModel(bindings []cellophane.Binding) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "kind, function or library"
	ti.Prompt = "filter: "
	ti.Width = 40
	ti.Focus()

	m := &interactiveModel{
		all:    bindings,
		filter: ti,
		probes: make(map[string]error),
	}
	m.applyFilter()
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.filter.Value() == "" {
				return m, tea.Quit
			}
			m.filter.SetValue("")
			m.applyFilter()
			return m, nil

		case "up", "ctrl+k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down", "ctrl+j":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
			return m, nil

		case "enter":
			if b, ok := m.current(); ok {
				return m, probeCmd(b)
			}
			return m, nil
		}

	case probedMsg:
		m.probes[msg.kind] = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	before := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

func probeCmd(b cellophane.Binding) tea.Cmd {
	return func() tea.Msg {
		return probedMsg{kind: b.Kind, err: b.Resolve()}
	}
}

// applyFilter keeps the bindings whose kind, function or library contains
// the filter text, case-insensitively.
func (m *interactiveModel) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for _, b := range m.all {
		if q == "" ||
			strings.Contains(strings.ToLower(b.Kind), q) ||
			strings.Contains(strings.ToLower(b.Function), q) ||
			strings.Contains(strings.ToLower(b.Library), q) {
			m.visible = append(m.visible, b)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

func (m *interactiveModel) current() (cellophane.Binding, bool) {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return cellophane.Binding{}, false
	}
	return m.visible[m.selected], true
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("cellophane"))
	fmt.Fprintf(&b, " %d wrapper kinds\n\n", len(m.all))
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("No matching kinds."))
		b.WriteString("\n")
	}
	for i, binding := range m.visible {
		line := binding.Kind
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if binding, ok := m.current(); ok {
		b.WriteString("\n")
		b.WriteString(detailStyle.Render(m.detail(binding)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("type to filter • ↑/↓ select • enter probe • esc clear/quit"))
	return b.String()
}

func (m *interactiveModel) detail(binding cellophane.Binding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "release  %s\n", funcStyle.Render(binding.Function))
	fmt.Fprintf(&b, "library  %s", typeStyle.Render(binding.Library))
	if binding.Context != "" {
		fmt.Fprintf(&b, "\ncontext  %s", typeStyle.Render(binding.Context))
	}

	err, probed := m.probes[binding.Kind]
	switch {
	case !probed:
		b.WriteString("\n" + helpStyle.Render("not probed"))
	case err != nil:
		b.WriteString("\n" + errorStyle.Render(fmt.Sprintf("unresolved: %v", err)))
	default:
		b.WriteString("\n" + resultStyle.Render("resolved"))
	}
	return b.String()
}

func runInteractive(bindings []cellophane.Binding) error {
	p := tea.NewProgram(newInteractiveModel(bindings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
