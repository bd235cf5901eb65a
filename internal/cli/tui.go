package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/ganttline/pkg/task"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// errNoSelection is returned when the user leaves a picker without choosing.
var errNoSelection = errors.New("no task selected")

// =============================================================================
// TaskListModel - Interactive task selection
// =============================================================================

// TaskListModel is the bubbletea model for picking one task.
type TaskListModel struct {
	Title    string
	Tasks    []task.Task
	Cursor   int
	Selected *task.Task
	Height   int
	Offset   int

	// Disabled marks tasks that cannot be picked. They are shown dimmed.
	Disabled func(task.Task) bool
}

// NewTaskListModel creates a new task list model.
func NewTaskListModel(title string, tasks []task.Task) TaskListModel {
	return TaskListModel{
		Title:  title,
		Tasks:  tasks,
		Height: 15,
	}
}

func (m TaskListModel) Init() tea.Cmd {
	return nil
}

func (m TaskListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Tasks)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Tasks) == 0 {
				return m, tea.Quit
			}
			t := m.Tasks[m.Cursor]
			if m.disabled(t) {
				return m, nil
			}
			m.Selected = &t
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m TaskListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Tasks))
	for i := m.Offset; i < end; i++ {
		t := m.Tasks[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		dates := fmt.Sprintf("%s → %s", t.Start.Format("2006-01-02"), t.End.Format("2006-01-02"))
		line := fmt.Sprintf("%s%-12s %-28s %s", cursor, t.ID, t.Name, listDimStyle.Render(dates))

		switch {
		case m.disabled(t):
			b.WriteString(listDimStyle.Render(line))
		case i == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.Tasks)), len(m.Tasks))))
	return b.String()
}

func (m TaskListModel) disabled(t task.Task) bool {
	return m.Disabled != nil && m.Disabled(t)
}

// =============================================================================
// Helpers
// =============================================================================

// interactive reports whether prompts can be shown.
func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// pickTask runs the picker and returns the chosen task.
func pickTask(ctx context.Context, m TaskListModel) (task.Task, error) {
	if !interactive() {
		return task.Task{}, errors.New("task argument required (no terminal for interactive selection)")
	}
	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return task.Task{}, err
	}
	if sel := final.(TaskListModel).Selected; sel != nil {
		return *sel, nil
	}
	return task.Task{}, errNoSelection
}
