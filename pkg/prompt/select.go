package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

// selectModel represents the Bubble Tea model for project selection.
type selectModel struct {
	choices  []Choice
	filtered []Choice
	cursor   int
	filter   string
	selected *Choice
	quitting bool
}

func initialSelectModel(choices []Choice) selectModel {
	return selectModel{
		choices:  choices,
		filtered: choices,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		if m.cursor < len(m.filtered) {
			selected := m.filtered[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	case tea.KeyEsc:
		if m.filter == "" {
			m.quitting = true
			return m, tea.Quit
		}
		m.setFilter("")
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown, tea.KeyTab:
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case tea.KeyBackspace:
		if m.filter != "" {
			runes := []rune(m.filter)
			m.setFilter(string(runes[:len(runes)-1]))
		}
	case tea.KeyRunes:
		m.setFilter(m.filter + string(key.Runes))
	}
	return m, nil
}

func (m *selectModel) setFilter(filter string) {
	m.filter = filter
	if filter == "" {
		m.filtered = m.choices
	} else {
		needle := strings.ToLower(filter)
		m.filtered = lo.Filter(m.choices, func(c Choice, _ int) bool {
			return strings.Contains(strings.ToLower(c.Name), needle)
		})
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var s strings.Builder
	s.WriteString("? Choose project:  [Use arrows to move, type to filter]\n\n")
	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}

	if len(m.filtered) == 0 {
		s.WriteString("  (no match)\n")
	}
	for i, choice := range m.filtered {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s.WriteString(fmt.Sprintf("%s %s\n", cursor, formatChoice(choice)))
	}

	s.WriteString("\nPress Enter to select, Ctrl+C to quit")
	if m.filter != "" {
		s.WriteString(", Esc to clear filter")
	} else {
		s.WriteString(", Esc to cancel")
	}
	return s.String()
}

func formatChoice(choice Choice) string {
	result := choice.Name
	if choice.Status != "" {
		result += fmt.Sprintf(" [%s]", choice.Status)
	}
	if choice.Path != "" {
		result += "  " + choice.Path
	}
	return result
}

// runSelectProgram runs the Bubble Tea program for project selection.
func runSelectProgram(choices []Choice) (Choice, error) {
	finalModel, err := tea.NewProgram(initialSelectModel(choices)).Run()
	if err != nil {
		return Choice{}, fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return Choice{}, fmt.Errorf("unexpected model type %T", finalModel)
	}
	if model.selected == nil {
		return Choice{}, ErrNoSelection
	}
	return *model.selected, nil
}
