package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zaolin/devconsole/console"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	groupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const (
	markerCollapsed = "▸"
	markerExpanded  = "▾"
	headerHeight    = 2
	footerHeight    = 2
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	All    key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.All, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "expand/collapse"),
	),
	All: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "expand all"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model shows recorded debug groups, each collapsed until toggled
type Model struct {
	groups   []console.Group
	expanded []bool
	cursor   int
	viewport viewport.Model
	help     help.Model
	ready    bool
}

// New creates a viewer model
func New(groups []console.Group) Model {
	return Model{
		groups:   groups,
		expanded: make([]bool, len(groups)),
		help:     help.New(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-headerHeight-footerHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.groups)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Toggle):
			if len(m.groups) > 0 {
				m.expanded[m.cursor] = !m.expanded[m.cursor]
			}
		case key.Matches(msg, keys.All):
			all := !m.allExpanded()
			for i := range m.expanded {
				m.expanded[i] = all
			}
		}
	}

	if m.ready {
		content, cursorLine := m.render()
		m.viewport.SetContent(content)
		m.follow(cursorLine)
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("devconsole: %d debug group(s)", len(m.groups))))
	b.WriteString("\n\n")

	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		content, _ := m.render()
		b.WriteString(content)
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys))

	return b.String()
}

// Expanded reports whether group i is expanded
func (m Model) Expanded(i int) bool {
	return i >= 0 && i < len(m.expanded) && m.expanded[i]
}

// Cursor returns the index of the selected group
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) allExpanded() bool {
	for _, e := range m.expanded {
		if !e {
			return false
		}
	}
	return true
}

// render draws the groups and returns the line the cursor is on
func (m Model) render() (string, int) {
	if len(m.groups) == 0 {
		return emptyStyle.Render("no debug output recorded"), 0
	}

	var lines []string
	cursorLine := 0
	for i, g := range m.groups {
		marker := markerCollapsed
		if m.expanded[i] {
			marker = markerExpanded
		}
		title := fmt.Sprintf("%s %s", marker, g.Title)
		if i == m.cursor {
			cursorLine = len(lines)
			title = cursorStyle.Render(title)
		} else {
			title = groupStyle.Render(title)
		}
		lines = append(lines, title)

		if !m.expanded[i] {
			continue
		}
		for _, l := range g.Lines {
			for _, text := range strings.Split(console.Render(true, l.Segments...), "\n") {
				lines = append(lines, "    "+text)
			}
		}
	}
	return strings.Join(lines, "\n"), cursorLine
}

// follow scrolls the viewport so the cursor line stays visible
func (m *Model) follow(line int) {
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// Run shows groups until the user quits
func Run(groups []console.Group) error {
	p := tea.NewProgram(New(groups), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
